package vrpsolve

import "math"

// round1e9 stabilizes float comparisons to one part in a billion, matching
// the teacher's convention for cross-platform-reproducible cost comparisons
// (tsp/cost.go's round1e9).
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}

// simulateRoute walks stops in order from vehicle's depot start, applying
// the extractor's arrival/depart formulas (arrival clamped up to TWStart,
// travel = max(0, arrival-prevDepart) so waiting is folded into travel,
// exactly as the original solver's extractor computes it). feasible is
// false the moment any stop's clamped arrival exceeds its TWEnd.
func simulateRoute(vehicle Vehicle, stops []int, nodes []Node, tm TimeMatrix) (Route, bool, error) {
	var route Route
	route.Stops = make([]Stop, 0, len(stops))

	prevIdx := 0
	prevDepart := float64(vehicle.AbsStart)

	for _, nodeIdx := range stops {
		n := nodes[nodeIdx]
		travel, err := tm.At(prevIdx, nodeIdx+1)
		if err != nil {
			return Route{}, false, err
		}
		arrival := prevDepart + travel
		if arrival < float64(n.TWStart) {
			arrival = float64(n.TWStart)
		}
		if arrival > float64(n.TWEnd) {
			return Route{}, false, nil
		}
		actualTravel := arrival - prevDepart
		if actualTravel < 0 {
			actualTravel = 0
		}
		depart := arrival + float64(n.Stay)

		route.Stops = append(route.Stops, Stop{
			NodeIdx:    nodeIdx,
			ArrivalMin: arrival,
			DepartMin:  depart,
			TravelMin:  actualTravel,
		})
		route.TravelMinutes += actualTravel
		route.StayMinutes += float64(n.Stay)
		prevDepart = depart
		prevIdx = nodeIdx + 1
	}

	returnTravel, err := tm.At(prevIdx, 0)
	if err != nil {
		return Route{}, false, err
	}
	route.ReturnTravelMinutes = returnTravel
	route.TravelMinutes += returnTravel
	route.EndTime = prevDepart + returnTravel
	route.OvertimeMinutes = math.Max(0, route.EndTime-float64(vehicle.AbsEnd))

	return route, true, nil
}

// arcCost sums travel-only distances along depot->stops->depot, ignoring
// service time and waiting: the comparator used to rank candidate
// insertions and local-search moves (spec's "two-callback model": arc cost
// never includes service time).
func arcCost(stops []int, tm TimeMatrix) (float64, error) {
	prev := 0
	total := 0.0
	for _, idx := range stops {
		d, err := tm.At(prev, idx+1)
		if err != nil {
			return 0, err
		}
		total += d
		prev = idx + 1
	}
	d, err := tm.At(prev, 0)
	if err != nil {
		return 0, err
	}
	return total + d, nil
}

func insertAt(route []int, pos, nodeIdx int) []int {
	out := make([]int, 0, len(route)+1)
	out = append(out, route[:pos]...)
	out = append(out, nodeIdx)
	out = append(out, route[pos:]...)
	return out
}

func removeAt(route []int, pos int) []int {
	out := make([]int, 0, len(route)-1)
	out = append(out, route[:pos]...)
	out = append(out, route[pos+1:]...)
	return out
}

func cloneRoutes(routes [][]int) [][]int {
	out := make([][]int, len(routes))
	for i, r := range routes {
		out[i] = append([]int(nil), r...)
	}
	return out
}
