// Package expand turns base targets and per-date drivers into the flat,
// per-date node list the solver operates on.
//
// A target with a DateTimeWindow produces exactly one clone bound to that
// date. A target with a (floating) TimeWindow produces one clone per date in
// the horizon, sharing a disjunction group so at most one clone is ever
// visited. A target with neither produces one clone per date as well, with
// its window spanning that date's full driver day.
//
// Drivers become vehicles: one per (driver, date) pair present in the
// caller's driversByDate map, with absolute minute offsets of dayIdx*1440.
package expand
