// Package model defines the data types shared by every stage of the planner
// (expand, vrpsolve, sweep, backfill, resequence) and returned to callers of
// the root vrptw package: targets, drivers, vehicles, expanded nodes, routes,
// schedules, and the final plan.
//
// Kept separate from the root package so internal pipeline stages can depend
// on these types without importing the orchestrator that depends on them.
package model
