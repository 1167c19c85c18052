// Package geo provides great-circle distance and travel-time primitives used
// to build the planner's travel-time matrix.
//
// What & Why
//
// Two points on Earth are compared by haversine great-circle distance rather
// than road-network routing (out of scope for this planner); the resulting
// distance is converted to minutes via a constant cruising speed.
package geo
