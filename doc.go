// Package vrptw builds multi-day visit schedules for a fleet of drivers
// against a mix of mandatory and optional targets.
//
// What & Why
//
// Given a depot, an ordered list of dates, drivers available per date, and a
// list of targets (each with an optional time window bound to a date, a
// floating window that can land on any date, or no window at all), the core
// entry point BuildGlobalPlan produces one route per (driver, date) pair,
// maximizing the number of visited targets first and minimizing total travel
// second, while respecting per-driver shift windows and per-target stay
// durations.
//
// The pipeline is a sequence of independently testable stages:
//
//	expand     — turns targets into dated clones sharing disjunctions
//	timematrix — builds the depot-plus-clones travel-time matrix
//	vrpsolve   — constructive insertion + local search assignment
//	sweep      — greedy fallback that mops up anything vrpsolve dropped
//	backfill   — gives idle first-day drivers a stop pulled from a donor
//	resequence — DP/2-opt reorders any route with no time-windowed stop
//
// Quick example of the shape this produces for one date:
//
//	depot -- driver A: stop1 -> stop2 -> stop3 -- depot
//
// Each stage operates on model's shared types so none of them import the
// root package, avoiding an import cycle between the orchestrator and the
// stages it orchestrates.
package vrptw
