package vrptw

import (
	"errors"
	"math"
	"sort"

	"github.com/fleetroute/vrptw/backfill"
	"github.com/fleetroute/vrptw/expand"
	"github.com/fleetroute/vrptw/geo"
	"github.com/fleetroute/vrptw/model"
	"github.com/fleetroute/vrptw/resequence"
	"github.com/fleetroute/vrptw/sweep"
	"github.com/fleetroute/vrptw/timematrix"
	"github.com/fleetroute/vrptw/vrpsolve"
)

// Default parameter values, matching spec.md §6's entry-point signature
// (Go has no default-argument syntax, so these are exported constants
// callers can pass through or override).
const (
	DefaultSpeedKMPH          = 40.0
	DefaultMaxSolveSeconds    = 60
	DefaultMaxStopsPerVehicle = 15
)

// BuildGlobalPlan is the core entry point: it expands targets into dated
// clones, assigns them to driver-days with at most one clone per target, then
// backfills and re-sequences the result. It never panics or returns a Go
// error for routine scheduling failures - those surface as Plan.Status and
// Plan.Unassigned; only a caller-facing message accompanies a hard failure.
func BuildGlobalPlan(
	dates []string,
	branch model.Branch,
	driversByDate map[string][]model.Driver,
	targets []model.Target,
	speedKMPH float64,
	maxSolveSeconds int,
	maxStopsPerVehicle int,
) model.Plan {
	if len(dates) == 0 {
		return model.Plan{Status: model.StatusError, Message: "No dates provided"}
	}

	exp, err := expand.Expand(dates, driversByDate, targets)
	if err != nil {
		return model.Plan{Status: model.StatusError, Message: err.Error()}
	}
	if len(exp.Vehicles) == 0 {
		return model.Plan{Status: model.StatusError, Message: "No drivers provided for given dates"}
	}

	depot := geo.Point{Lat: branch.Lat, Lon: branch.Lon}
	points := make([]geo.Point, len(exp.Nodes))
	for i, n := range exp.Nodes {
		points[i] = geo.Point{Lat: n.Lat, Lon: n.Lon}
	}
	dm, err := timematrix.Build(depot, points, speedKMPH)
	if err != nil {
		return model.Plan{Status: model.StatusError, Message: err.Error()}
	}

	input := buildSolverInput(exp, targets, dm, maxStopsPerVehicle, maxSolveSeconds)
	opts := vrpsolve.DefaultOptions()
	opts.MaxSolveSeconds = maxSolveSeconds
	opts.MaxStopsPerVehicle = maxStopsPerVehicle

	solved, err := vrpsolve.Solve(input, opts)
	if err != nil {
		if errors.Is(err, vrpsolve.ErrNoFeasibleRoute) {
			return noSolutionPlan(dates, targets)
		}
		return model.Plan{Status: model.StatusError, Message: err.Error()}
	}

	routes := make([]model.Route, len(exp.Vehicles))
	for v, r := range solved.Routes {
		routes[v] = toModelRoute(exp.Vehicles[v].DriverID, r, exp.Nodes)
	}

	coords := baseCoords(targets)
	travelFn := travelMinutesFunc(speedKMPH)

	slots := vehicleSlots(exp.Vehicles)
	routes, stillUnassigned := sweep.Sweep(slots, routes, remainingCandidates(exp, solved.Unassigned), branch, coords, maxStopsPerVehicle, travelFn)
	routes = backfill.Backfill(slots, routes, branch, coords, travelFn)

	hasWindow := hasWindowFunc(targets)
	for i, r := range routes {
		out, rerr := resequence.Resequence(r, exp.Vehicles[i], branch, speedKMPH, func(id string) model.Branch { return coords[id] }, hasWindow)
		if rerr == nil {
			routes[i] = out
		}
	}

	schedules := assembleSchedules(dates, exp.Vehicles, routes)

	sort.Strings(stillUnassigned)
	return model.Plan{
		Status:     model.StatusSuccess,
		Dates:      dates,
		Schedules:  schedules,
		Unassigned: stillUnassigned,
		Warnings:   exp.MissingDates,
	}
}

func noSolutionPlan(dates []string, targets []model.Target) model.Plan {
	unassigned := make([]string, len(targets))
	for i, t := range targets {
		unassigned[i] = t.ID
	}
	sort.Strings(unassigned)
	return model.Plan{Status: model.StatusNoSolution, Dates: dates, Unassigned: unassigned}
}

// buildSolverInput translates expand's string-keyed output into vrpsolve's
// integer-indexed Input, and folds the caller's per-target Required flags
// into a baseID-keyed map (a target absent from this map is never required).
func buildSolverInput(exp expand.Result, targets []model.Target, dm interface {
	At(row, col int) (float64, error)
}, maxStopsPerVehicle, maxSolveSeconds int) vrpsolve.Input {
	required := make(map[string]bool, len(targets))
	for _, t := range targets {
		required[t.ID] = t.Required
	}

	nodeIndex := make(map[string]int, len(exp.Nodes))
	nodes := make([]vrpsolve.Node, len(exp.Nodes))
	for i, n := range exp.Nodes {
		nodeIndex[n.NodeID] = i
		nodes[i] = vrpsolve.Node{BaseID: n.BaseID, Stay: n.Stay, TWStart: n.TWStart, TWEnd: n.TWEnd}
	}

	groups := make(map[string][]int, len(exp.Groups))
	for baseID, nodeIDs := range exp.Groups {
		idxs := make([]int, len(nodeIDs))
		for i, id := range nodeIDs {
			idxs[i] = nodeIndex[id]
		}
		groups[baseID] = idxs
	}

	vehicles := make([]vrpsolve.Vehicle, len(exp.Vehicles))
	for i, v := range exp.Vehicles {
		vehicles[i] = vrpsolve.Vehicle{DriverID: v.DriverID, AbsStart: v.AbsStart, AbsEnd: v.AbsEnd}
	}

	// dm already implements the narrower TimeMatrix interface vrpsolve wants.
	return vrpsolve.Input{
		Vehicles:   vehicles,
		Nodes:      nodes,
		Groups:     groups,
		Required:   required,
		TimeMatrix: dm,
	}
}

func toModelRoute(driverID string, r vrpsolve.Route, nodes []model.ExpandedNode) model.Route {
	stops := make([]model.RouteStop, len(r.Stops))
	for i, s := range r.Stops {
		n := nodes[s.NodeIdx]
		stops[i] = model.RouteStop{
			TargetID:      n.BaseID,
			ArrivalMin:    s.ArrivalMin,
			DepartMin:     s.DepartMin,
			TravelMinutes: s.TravelMin,
			StayMinutes:   float64(n.Stay),
		}
	}
	return model.Route{
		DriverID:            driverID,
		Stops:               stops,
		TravelMinutes:       r.TravelMinutes,
		StayMinutes:         r.StayMinutes,
		EndTime:             r.EndTime,
		OvertimeMinutes:     r.OvertimeMinutes,
		ReturnTravelMinutes: r.ReturnTravelMinutes,
	}
}

// baseCoords maps each base target id to its point, for the sweep/backfill/
// resequence stages which operate on base ids rather than expanded nodes.
func baseCoords(targets []model.Target) map[string]model.Branch {
	coords := make(map[string]model.Branch, len(targets))
	for _, t := range targets {
		coords[t.ID] = model.Branch{Lat: t.Lat, Lon: t.Lon}
	}
	return coords
}

func hasWindowFunc(targets []model.Target) resequence.HasTimeWindow {
	windowed := make(map[string]bool, len(targets))
	for _, t := range targets {
		windowed[t.ID] = t.TimeWindow != nil || t.DateTimeWindow != nil
	}
	return func(id string) bool { return windowed[id] }
}

func travelMinutesFunc(speedKMPH float64) func(from, to model.Branch) float64 {
	return func(from, to model.Branch) float64 {
		km := geo.HaversineKM(geo.Point{Lat: from.Lat, Lon: from.Lon}, geo.Point{Lat: to.Lat, Lon: to.Lon})
		mins, err := geo.TravelTimeMinutes(km, speedKMPH)
		if err != nil {
			return 0
		}
		return math.Ceil(mins)
	}
}

func vehicleSlots(vehicles []model.Vehicle) []sweep.VehicleSlot {
	slots := make([]sweep.VehicleSlot, len(vehicles))
	for i, v := range vehicles {
		slots[i] = sweep.VehicleSlot{DriverID: v.DriverID, Date: v.Date, DayIdx: v.DayIdx, AbsStart: v.AbsStart, AbsEnd: v.AbsEnd}
	}
	return slots
}

// remainingCandidates returns one Candidate per base id vrpsolve left
// unassigned, for the greedy sweeper to attempt.
func remainingCandidates(exp expand.Result, unassignedBaseIDs []string) []sweep.Candidate {
	byBase := make(map[string]model.ExpandedNode, len(exp.Nodes))
	for _, n := range exp.Nodes {
		if _, ok := byBase[n.BaseID]; !ok {
			byBase[n.BaseID] = n
		}
	}
	out := make([]sweep.Candidate, 0, len(unassignedBaseIDs))
	for _, id := range unassignedBaseIDs {
		n, ok := byBase[id]
		if !ok {
			continue
		}
		out = append(out, sweep.Candidate{ID: id, Lat: n.Lat, Lon: n.Lon, StayMinutes: n.Stay})
	}
	return out
}

// assembleSchedules groups every vehicle's route under its date, mirroring
// the original's behavior of unconditionally appending every vehicle's
// route even when it carries zero stops. Schedule.Unassigned is left empty
// here: the original never populates per-date unassigned lists either, only
// the top-level plan-wide one.
func assembleSchedules(dates []string, vehicles []model.Vehicle, routes []model.Route) []model.Schedule {
	byDate := make(map[string][]model.Route, len(dates))
	for i, v := range vehicles {
		byDate[v.Date] = append(byDate[v.Date], routes[i])
	}

	schedules := make([]model.Schedule, len(dates))
	for i, d := range dates {
		schedules[i] = model.Schedule{
			Date:   d,
			Status: model.StatusSuccess,
			Routes: byDate[d],
		}
	}
	return schedules
}
