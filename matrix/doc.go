// Package matrix provides the Matrix interface and its Dense implementation:
// a row-major float64 matrix used throughout the planner as the travel-time
// matrix representation (timematrix, resequence) and as the distance matrix
// fed into tsp's route solvers.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V²) build time are acceptable — exactly the shape of one vehicle's
// per-day stop set once expand/timematrix have built it.
package matrix
