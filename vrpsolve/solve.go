package vrpsolve

import (
	"time"

	"github.com/pkg/errors"
)

// Solve runs construction followed by local search and returns one Route
// per input vehicle (same index order as in.Vehicles) plus the base ids
// left unassigned. Returns ErrNoFeasibleRoute wrapped with context if
// construction could not place a single stop anywhere.
func Solve(in Input, opts Options) (Result, error) {
	routes, unassigned, err := construct(in, opts)
	if err != nil {
		return Result{}, errors.Wrap(err, "vrpsolve: construction")
	}

	var deadline time.Time
	if opts.MaxSolveSeconds > 0 {
		deadline = time.Now().Add(time.Duration(opts.MaxSolveSeconds) * time.Second)
	}

	routes, err = localSearch(routes, in, opts, deadline)
	if err != nil {
		return Result{}, errors.Wrap(err, "vrpsolve: local search")
	}

	out := Result{Routes: make([]Route, len(routes)), Unassigned: unassigned}
	for v, stops := range routes {
		route, feasible, serr := simulateRoute(in.Vehicles[v], stops, in.Nodes, in.TimeMatrix)
		if serr != nil {
			return Result{}, errors.Wrapf(serr, "vrpsolve: extracting vehicle %d", v)
		}
		if !feasible {
			// Local search never introduces infeasibility on its own moves,
			// but guards here rather than trusting that invariant silently.
			return Result{}, errors.Errorf("vrpsolve: vehicle %d route became infeasible after local search", v)
		}
		out.Routes[v] = route
	}

	return out, nil
}
