package timematrix_test

import (
	"testing"

	"github.com/fleetroute/vrptw/geo"
	"github.com/fleetroute/vrptw/timematrix"
	"github.com/stretchr/testify/require"
)

func TestBuild_DepotAtZero_ZeroDiagonal_Symmetric(t *testing.T) {
	depot := geo.Point{Lat: 10.0, Lon: 123.0}
	nodes := []geo.Point{
		{Lat: 10.5, Lon: 123.5},
		{Lat: 10.6, Lon: 123.6},
	}

	m, err := timematrix.Build(depot, nodes, 40.0)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	for i := 0; i < 3; i++ {
		v, e := m.At(i, i)
		require.NoError(t, e)
		require.Equal(t, 0.0, v)
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			vij, _ := m.At(i, j)
			vji, _ := m.At(j, i)
			require.Equal(t, vij, vji)
		}
	}
}

func TestBuild_NonPositiveSpeed_Errors(t *testing.T) {
	depot := geo.Point{Lat: 0, Lon: 0}
	nodes := []geo.Point{{Lat: 1, Lon: 1}}
	_, err := timematrix.Build(depot, nodes, 0)
	require.Error(t, err)
}
