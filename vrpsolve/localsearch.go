package vrpsolve

import "time"

// localSearch performs deterministic first-improvement relocate and swap
// descent over routes, minimizing total arc cost while preserving
// feasibility. A node that was just relocated or swapped cannot be moved
// again for opts.TabuTenure iterations - a short tabu list that prevents
// the descent from immediately reversing its own accepted moves. Bounded
// by deadline, checked at a fixed cadence (iter&255), matching tsp/exact.go's
// step&1023 idiom scaled down for the smaller per-move cost here.
func localSearch(routes [][]int, in Input, opts Options, deadline time.Time) ([][]int, error) {
	current := cloneRoutes(routes)
	tabu := make(map[int]int) // nodeIdx -> iteration at which it becomes movable again
	iter := 0

	for {
		if pastDeadline(deadline, iter) {
			return current, nil
		}

		relocated, err := relocatePass(current, in, opts, tabu, &iter, deadline)
		if err != nil {
			return nil, err
		}
		if pastDeadline(deadline, iter) {
			return current, nil
		}

		swapped, err := swapPass(current, in, opts, tabu, &iter, deadline)
		if err != nil {
			return nil, err
		}

		if !relocated && !swapped {
			return current, nil
		}
	}
}

func pastDeadline(deadline time.Time, iter int) bool {
	if deadline.IsZero() {
		return false
	}
	if iter&255 != 0 {
		return false
	}
	return time.Now().After(deadline)
}

// relocatePass tries moving every placed stop to every other feasible
// (vehicle, position); it mutates routes in place on the first improving
// move found per stop and restarts its scan after each accepted move.
func relocatePass(routes [][]int, in Input, opts Options, tabu map[int]int, iter *int, deadline time.Time) (bool, error) {
	improvedAny := false

	for v1 := range routes {
		for p1 := 0; p1 < len(routes[v1]); p1++ {
			nodeIdx := routes[v1][p1]
			if until, blocked := tabu[nodeIdx]; blocked && *iter < until {
				continue
			}

			baseCost, err := arcCost(routes[v1], in.TimeMatrix)
			if err != nil {
				return improvedAny, err
			}

			moved := false
			for v2 := range routes {
				maxPos := len(routes[v2])
				if v2 == v1 {
					maxPos = len(routes[v2]) - 1 // routes[v1] still includes nodeIdx at p1
				}
				for p2 := 0; p2 <= maxPos; p2++ {
					*iter++
					if pastDeadline(deadline, *iter) {
						return improvedAny, nil
					}
					if v1 == v2 && (p2 == p1 || p2 == p1+1) {
						continue
					}

					without1 := removeAt(routes[v1], p1)
					var trial2 []int
					if v1 == v2 {
						trial2 = insertAt(without1, p2, nodeIdx)
					} else {
						if len(routes[v2]) >= opts.MaxStopsPerVehicle {
							continue
						}
						trial2 = insertAt(routes[v2], p2, nodeIdx)
					}

					if v1 == v2 {
						_, feasible, serr := simulateRoute(in.Vehicles[v1], trial2, in.Nodes, in.TimeMatrix)
						if serr != nil {
							return improvedAny, serr
						}
						if !feasible {
							continue
						}
						newCost, cerr := arcCost(trial2, in.TimeMatrix)
						if cerr != nil {
							return improvedAny, cerr
						}
						if round1e9(newCost) >= round1e9(baseCost) {
							continue
						}
						routes[v1] = trial2
					} else {
						_, feasible1, serr := simulateRoute(in.Vehicles[v1], without1, in.Nodes, in.TimeMatrix)
						if serr != nil {
							return improvedAny, serr
						}
						if !feasible1 {
							continue
						}
						_, feasible2, serr := simulateRoute(in.Vehicles[v2], trial2, in.Nodes, in.TimeMatrix)
						if serr != nil {
							return improvedAny, serr
						}
						if !feasible2 {
							continue
						}
						oldV2Cost, err := arcCost(routes[v2], in.TimeMatrix)
						if err != nil {
							return improvedAny, err
						}
						newV1Cost, err := arcCost(without1, in.TimeMatrix)
						if err != nil {
							return improvedAny, err
						}
						newV2Cost, err := arcCost(trial2, in.TimeMatrix)
						if err != nil {
							return improvedAny, err
						}
						if round1e9(newV1Cost+newV2Cost) >= round1e9(baseCost+oldV2Cost) {
							continue
						}
						routes[v1] = without1
						routes[v2] = trial2
					}

					tabu[nodeIdx] = *iter + opts.TabuTenure
					improvedAny = true
					moved = true
					break
				}
				if moved {
					break
				}
			}
			if moved {
				// Route shapes changed; restart the scan over v1's (now
				// shorter or reordered) stop list from the top.
				p1 = -1
			}
		}
	}

	return improvedAny, nil
}

// swapPass tries exchanging each pair of stops that sit in different
// routes, accepting the first exchange that reduces the combined arc cost
// of both routes without breaking feasibility.
func swapPass(routes [][]int, in Input, opts Options, tabu map[int]int, iter *int, deadline time.Time) (bool, error) {
	_ = opts
	improvedAny := false

	for v1 := 0; v1 < len(routes); v1++ {
		for p1 := 0; p1 < len(routes[v1]); p1++ {
			node1 := routes[v1][p1]
			if until, blocked := tabu[node1]; blocked && *iter < until {
				continue
			}
			for v2 := v1 + 1; v2 < len(routes); v2++ {
				for p2 := 0; p2 < len(routes[v2]); p2++ {
					node2 := routes[v2][p2]
					if until, blocked := tabu[node2]; blocked && *iter < until {
						continue
					}

					*iter++
					if pastDeadline(deadline, *iter) {
						return improvedAny, nil
					}

					oldCost1, err := arcCost(routes[v1], in.TimeMatrix)
					if err != nil {
						return improvedAny, err
					}
					oldCost2, err := arcCost(routes[v2], in.TimeMatrix)
					if err != nil {
						return improvedAny, err
					}

					trial1 := append([]int(nil), routes[v1]...)
					trial2 := append([]int(nil), routes[v2]...)
					trial1[p1] = node2
					trial2[p2] = node1

					_, feasible1, err := simulateRoute(in.Vehicles[v1], trial1, in.Nodes, in.TimeMatrix)
					if err != nil {
						return improvedAny, err
					}
					_, feasible2, err := simulateRoute(in.Vehicles[v2], trial2, in.Nodes, in.TimeMatrix)
					if err != nil {
						return improvedAny, err
					}
					if !feasible1 || !feasible2 {
						continue
					}

					newCost1, err := arcCost(trial1, in.TimeMatrix)
					if err != nil {
						return improvedAny, err
					}
					newCost2, err := arcCost(trial2, in.TimeMatrix)
					if err != nil {
						return improvedAny, err
					}
					if round1e9(newCost1+newCost2) >= round1e9(oldCost1+oldCost2) {
						continue
					}

					routes[v1] = trial1
					routes[v2] = trial2
					tabu[node1] = *iter + opts.TabuTenure
					tabu[node2] = *iter + opts.TabuTenure
					improvedAny = true
				}
			}
		}
	}

	return improvedAny, nil
}
