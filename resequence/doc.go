// Package resequence re-optimizes the stop order within a single route once
// it no longer has to satisfy any per-stop time window: routes with at
// least 3 stops and no time-windowed stop are re-ordered by solving them as
// a small traveling-salesman instance over [depot, stops..., depot], using
// the teacher's tsp package (exact Held-Karp DP for small routes, 2-opt
// otherwise).
//
// Routes that don't qualify are returned unchanged.
package resequence
