// Package sweep provides the deterministic greedy fallback assigner: after
// vrpsolve extraction, any base target with no routed clone is offered in
// id order to each date's drivers in turn, appended to that driver's route
// whenever it fits within the remaining work window and stop-count cap.
//
// A target that fits no driver's remaining window or stop cap is returned
// unplaced, so the sweep does not guarantee that every target is scheduled.
package sweep
