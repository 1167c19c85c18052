// Package timematrix builds the travel-time matrix consumed by the VRP solver
// and the route re-sequencer: an (N+1)x(N+1) matrix of integer minutes over
// {depot} union the expanded nodes, depot fixed at index 0.
package timematrix
