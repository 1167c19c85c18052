package resequence

import (
	"github.com/fleetroute/vrptw/geo"
	"github.com/fleetroute/vrptw/matrix"
	"github.com/fleetroute/vrptw/model"
	"github.com/fleetroute/vrptw/tsp"
)

// maxExactStops bounds the exact Held-Karp tier: spec.md §4.8 allows up to
// 20 stops for the exact DP, but the teacher's Held-Karp implementation
// itself caps at tsp.MaxExactN=16 vertices as a hard resource guard
// (tsp/exact.go's ErrSizeTooLarge). The route's matrix holds the depot plus
// every stop, so at most tsp.MaxExactN-1 stops are sent to the exact tier.
const maxExactStops = tsp.MaxExactN - 1

// HasTimeWindow reports whether a base target id carries a time_window or
// datetime_window constraint. Routes with any such stop are left untouched.
type HasTimeWindow func(targetID string) bool

// Coords resolves a target id to its point, for rebuilding the route's own
// distance matrix in real (non-ceiled) minutes.
type Coords func(targetID string) model.Branch

// Resequence re-orders route's stops to minimize total travel distance when
// it qualifies (>=3 stops, none time-windowed), and returns it unchanged
// otherwise.
func Resequence(route model.Route, vehicle model.Vehicle, depotPt model.Branch, speedKMPH float64, coords Coords, hasWindow HasTimeWindow) (model.Route, error) {
	if !qualifies(route, hasWindow) {
		return route, nil
	}

	m := len(route.Stops)
	points := make([]geo.Point, m)
	for i, s := range route.Stops {
		p := coords(s.TargetID)
		points[i] = geo.Point{Lat: p.Lat, Lon: p.Lon}
	}
	depot := geo.Point{Lat: depotPt.Lat, Lon: depotPt.Lon}

	dm, err := buildRealMatrix(depot, points, speedKMPH)
	if err != nil {
		return route, err
	}

	opts := tsp.DefaultOptions()
	if m <= maxExactStops {
		opts.Algo = tsp.ExactHeldKarp
	} else {
		opts.Algo = tsp.TwoOptOnly
		opts.TwoOptMaxIters = 3 * m * m // 2-opt to a local optimum, capped at 3·m² accepted moves
	}

	result, err := tsp.SolveWithMatrix(dm, nil, opts)
	if err != nil {
		return route, err
	}

	order := result.Tour[1 : len(result.Tour)-1] // drop leading/trailing depot
	newOrder := make([]int, m)
	for i, nodeIdx := range order {
		newOrder[i] = nodeIdx - 1 // matrix index i+1 corresponds to route.Stops[i]
	}

	return rebuild(route, vehicle, newOrder, dm), nil
}

func qualifies(route model.Route, hasWindow HasTimeWindow) bool {
	if len(route.Stops) < 3 {
		return false
	}
	for _, s := range route.Stops {
		if hasWindow(s.TargetID) {
			return false
		}
	}
	return true
}

func buildRealMatrix(depot geo.Point, points []geo.Point, speedKMPH float64) (*matrix.Dense, error) {
	n := len(points) + 1
	all := make([]geo.Point, n)
	all[0] = depot
	copy(all[1:], points)

	dm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			km := geo.HaversineKM(all[i], all[j])
			mins, terr := geo.TravelTimeMinutes(km, speedKMPH)
			if terr != nil {
				return nil, terr
			}
			if err = dm.Set(i, j, mins); err != nil {
				return nil, err
			}
		}
	}
	return dm, nil
}

// rebuild walks newOrder (indices into the original route.Stops) applying
// the same arrival/depart formulas used throughout the pipeline, with
// unclamped real-valued travel times since qualifying routes have no time
// window left to clamp against.
func rebuild(route model.Route, vehicle model.Vehicle, newOrder []int, dm *matrix.Dense) model.Route {
	out := model.Route{DriverID: route.DriverID}
	out.Stops = make([]model.RouteStop, len(newOrder))

	prevIdx := 0
	prevDepart := float64(vehicle.AbsStart)
	for i, oldPos := range newOrder {
		old := route.Stops[oldPos]
		travel, _ := dm.At(prevIdx, oldPos+1)
		arrival := prevDepart + travel
		depart := arrival + old.StayMinutes

		out.Stops[i] = model.RouteStop{
			TargetID:      old.TargetID,
			ArrivalMin:    arrival,
			DepartMin:     depart,
			TravelMinutes: travel,
			StayMinutes:   old.StayMinutes,
		}
		out.TravelMinutes += travel
		out.StayMinutes += old.StayMinutes
		prevDepart = depart
		prevIdx = oldPos + 1
	}

	returnTravel, _ := dm.At(prevIdx, 0)
	out.ReturnTravelMinutes = returnTravel
	out.TravelMinutes += returnTravel
	out.EndTime = prevDepart + returnTravel
	if out.EndTime > float64(vehicle.AbsEnd) {
		out.OvertimeMinutes = out.EndTime - float64(vehicle.AbsEnd)
	}
	return out
}
