// Package vrpsolve builds per-vehicle routes over a set of expanded nodes:
// a constructive parallel-cheapest-insertion heuristic followed by a
// deterministic tabu-flavored local search, replacing a CP-SAT-style
// disjunction/dimension solver with an equivalent model expressed as direct
// feasibility checks and running totals.
//
// Disjunction groups (clones of the same base target) are resolved so that
// at most one clone is ever routed; a group with no routed clone contributes
// its base id to Result.Unassigned. No penalty term is computed: required
// groups are simply offered placement before optional ones.
//
// Node indices into the supplied time matrix follow the convention used
// throughout this module: index 0 is the depot, index i+1 is nodes[i].
package vrpsolve
