package timematrix

import (
	"math"

	"github.com/fleetroute/vrptw/geo"
	"github.com/fleetroute/vrptw/matrix"
)

// Build returns an (N+1)x(N+1) matrix.Dense over {depot} union nodes, with the
// depot at index 0. Entry (i,j) is ceil(minutes(haversine(p_i,p_j), speedKMPH)).
// The diagonal is zero; the matrix is symmetric by construction since
// haversine distance is symmetric.
//
// Complexity: O(n^2) distance evaluations for n=len(nodes)+1.
func Build(depot geo.Point, nodes []geo.Point, speedKMPH float64) (*matrix.Dense, error) {
	n := len(nodes) + 1
	points := make([]geo.Point, n)
	points[0] = depot
	copy(points[1:], nodes)

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			km := geo.HaversineKM(points[i], points[j])
			mins, terr := geo.TravelTimeMinutes(km, speedKMPH)
			if terr != nil {
				return nil, terr
			}
			if err = m.Set(i, j, math.Ceil(mins)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
