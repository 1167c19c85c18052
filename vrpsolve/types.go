package vrpsolve

import "errors"

// ErrNoFeasibleRoute signals that construction could not place a single
// feasible stop for any vehicle: degenerate infeasibility (spec: "no_solution
// iff construction could not place a single feasible vehicle route stop at
// all under the given drivers").
var ErrNoFeasibleRoute = errors.New("vrpsolve: no feasible stop placement for any vehicle")

// Options mirrors the teacher's Options/DefaultOptions pattern (tsp.Options).
type Options struct {
	// MaxStopsPerVehicle bounds the unary-demand capacity dimension.
	MaxStopsPerVehicle int

	// MaxSolveSeconds bounds the local-search phase only; construction is a
	// bounded greedy procedure and is never time-limited.
	MaxSolveSeconds int

	// TabuTenure is the length of the short tabu list local search keeps to
	// avoid immediately reversing its last accepted moves.
	TabuTenure int
}

// DefaultOptions returns spec-mandated defaults. Required-vs-optional
// visit preference is enforced structurally by construct.go's required-
// first insertion order, not by an objective penalty.
func DefaultOptions() Options {
	return Options{
		MaxStopsPerVehicle: 15,
		MaxSolveSeconds:    60,
		TabuTenure:         20,
	}
}

// Input is everything Solve needs: vehicles, expanded nodes (in the same
// order used to build TimeMatrix), disjunction groups keyed by base id, and
// a required/optional flag per base id.
type Input struct {
	Vehicles   []Vehicle
	Nodes      []Node
	Groups     map[string][]int // baseID -> node indices (into Nodes)
	Required   map[string]bool  // baseID -> required
	TimeMatrix TimeMatrix
}

// Vehicle is the subset of model.Vehicle vrpsolve needs to run.
type Vehicle struct {
	DriverID string
	AbsStart int
	AbsEnd   int
}

// Node is the subset of model.ExpandedNode vrpsolve needs to run.
type Node struct {
	BaseID  string
	Stay    int
	TWStart int
	TWEnd   int
}

// TimeMatrix is the minimal read-only interface Solve needs from
// matrix.Dense, so this package does not have to import matrix directly.
type TimeMatrix interface {
	At(row, col int) (float64, error)
}

// Stop is one visit in a constructed route: index into Input.Nodes plus the
// timing fields the extractor needs to produce model.RouteStop values.
type Stop struct {
	NodeIdx    int
	ArrivalMin float64
	DepartMin  float64
	TravelMin  float64
}

// Route is one vehicle's ordered stop list plus totals, in the same shape
// as model.Route minus the driver-facing id (callers attach that).
type Route struct {
	Stops               []Stop
	TravelMinutes       float64
	StayMinutes         float64
	EndTime             float64
	OvertimeMinutes     float64
	ReturnTravelMinutes float64
}

// Result is Solve's output: one Route per input vehicle (same order/index
// correspondence as Input.Vehicles) and the base ids left unassigned.
type Result struct {
	Routes     []Route
	Unassigned []string
}
