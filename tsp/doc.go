// Package tsp provides single-route sequencing over a travel-time matrix, used by the
// planner's route re-sequencer. It exposes a small, deterministic API with strict
// sentinel errors and stable cost rounding (1e-9). Two strategies are supported behind
// a single dispatcher, chosen by the caller according to route size.
//
// # What & Why
//
// Given an n×n distance (travel-time) matrix dist, tsp computes a Hamiltonian cycle
// (tour) visiting all vertices once and returning to the start.
//
//   - Exact: Held–Karp dynamic programming (ExactHeldKarp), for small routes.
//   - Local search: deterministic 2-opt (TwoOptOnly), for larger routes.
//
// # Algorithms & Complexity
//
//	ExactHeldKarp (Held–Karp DP) — supports TSP and ATSP
//	  Time:   O(n²·2ⁿ)     Memory: O(n·2ⁿ)
//	  Guards: MaxExactN bounds resources; callers must not exceed it.
//
//	TwoOptOnly (local search) — TSP and ATSP
//	  2-opt (TSP): segment reversal; Δ = (a→c)+(b→d)−(a→b)−(c→d).
//	  2-opt* (ATSP): tail swap without reversals.
//	  First-improvement, restarts the scan after each accepted move.
//
// # Determinism & Stability
//
//   - No time-based randomness; behavior depends only on dist and Options.
//   - Tie-breaks use indices. Costs are rounded to 1e-9 (round1e9) to avoid FP drift.
//   - CanonicalizeOrientationInPlace fixes tour direction under a fixed start vertex.
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2.  Diagonal ≈ 0 (|a_ii| ≤ 1e-12).  No negatives.
//	NaN is invalid.  +Inf denotes "missing edge" (allowed only when opts.RunMetricClosure
//	permits it upstream).
//
//	Symmetry (dist[i][j]==dist[j][i]) is enforced whenever opts.Symmetric==true.
//
// # Options
//
//	type Options struct {
//	    StartVertex int           // start/end vertex [0..n-1] (default 0)
//	    Algo        Algorithm     // ExactHeldKarp / TwoOptOnly
//	    Symmetric   bool          // require symmetry where needed (true by default)
//	    RunMetricClosure bool     // accept +Inf entries in validation (no closure computed)
//	    EnableLocalSearch bool    // not read by any solver
//	    TwoOptMaxIters int        // cap accepted moves (0=unlimited)
//	    Eps         float64       // minimal strict improvement (default 1e-12)
//	    TimeLimit   time.Duration // soft wall-clock budget (0=none)
//	    Seed        int64         // reserved for deterministic RNG seeding (0=stable default)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange,
//	ErrUnsupportedAlgorithm, ErrTimeLimit, ErrSizeTooLarge.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Results
//
//	type TSResult struct {
//	    Tour []int    // len==n+1, Tour[0]==Tour[n]==StartVertex, each 0..n-1 appears once
//	    Cost float64  // rounded to 1e-9
//	}
//
// # Mathematics (references)
//
//	2-opt Δ:  (a→c)+(b→d)−(a→b)−(c→d)
//	Costs are stabilized by round1e9 for cross-platform reproducibility.
package tsp
