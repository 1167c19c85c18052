// Package backfill implements the driver-backfill repair: after extraction
// and sweeping, any driver available on the earliest used day who still has
// no route gets one stop pulled from a donor route (a later day's route, or
// a same-day route with more than one stop), so every available driver
// shows up in the schedule at least once.
//
// Donor routes have their totals recomputed after the transplant (travel,
// end time, overtime) rather than left stale, so every Route's invariants
// stay auditable without waiting on the re-sequencer to fix them up.
package backfill
