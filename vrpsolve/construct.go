package vrpsolve

import (
	"math"
	"sort"
)

// construct runs parallel cheapest insertion: base targets are processed
// required-first (then alphabetically for determinism), and for each one
// the single feasible (vehicle, position, clone) triple with the lowest
// marginal arc cost is inserted. A base target with no feasible placement
// anywhere is left unassigned; its clones never compete again.
//
// Complexity: O(groups * candidatesPerGroup * vehicles * routeLength) route
// simulations, each O(routeLength) - acceptable for the bounded per-day
// problem sizes this planner targets (tens of stops per vehicle).
func construct(in Input, opts Options) ([][]int, []string, error) {
	routes := make([][]int, len(in.Vehicles))

	baseIDs := make([]string, 0, len(in.Groups))
	for base := range in.Groups {
		baseIDs = append(baseIDs, base)
	}
	sort.Slice(baseIDs, func(i, j int) bool {
		ri, rj := in.Required[baseIDs[i]], in.Required[baseIDs[j]]
		if ri != rj {
			return ri
		}
		return baseIDs[i] < baseIDs[j]
	})

	var unassigned []string
	placedAny := false

	for _, base := range baseIDs {
		candidates := in.Groups[base]

		bestCost := math.Inf(1)
		bestVehicle, bestPos, bestNode := -1, -1, -1

		for _, nodeIdx := range candidates {
			for v := range in.Vehicles {
				if len(routes[v]) >= opts.MaxStopsPerVehicle {
					continue
				}
				baseCost, err := arcCost(routes[v], in.TimeMatrix)
				if err != nil {
					return nil, nil, err
				}
				for pos := 0; pos <= len(routes[v]); pos++ {
					trial := insertAt(routes[v], pos, nodeIdx)
					_, feasible, err := simulateRoute(in.Vehicles[v], trial, in.Nodes, in.TimeMatrix)
					if err != nil {
						return nil, nil, err
					}
					if !feasible {
						continue
					}
					cost, err := arcCost(trial, in.TimeMatrix)
					if err != nil {
						return nil, nil, err
					}
					cost = round1e9(cost - baseCost)
					if cost < bestCost {
						bestCost = cost
						bestVehicle, bestPos, bestNode = v, pos, nodeIdx
					}
				}
			}
		}

		if bestVehicle == -1 {
			unassigned = append(unassigned, base)
			continue
		}
		routes[bestVehicle] = insertAt(routes[bestVehicle], bestPos, bestNode)
		placedAny = true
	}

	if !placedAny {
		return nil, nil, ErrNoFeasibleRoute
	}
	return routes, unassigned, nil
}
