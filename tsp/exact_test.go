package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/fleetroute/vrptw/matrix"
	"github.com/fleetroute/vrptw/tsp"
)

// makeCycleDist builds a symmetric ring metric over n vertices: dist(i,j) is the
// shorter arc length around the ring, so the optimal tour is the ring itself
// with cost n.
func makeCycleDist(n int) matrix.Matrix {
	a := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			fwd := j - i
			if fwd < 0 {
				fwd += n
			}
			bwd := n - fwd
			d := fwd
			if bwd < d {
				d = bwd
			}
			a[i][j] = float64(d)
		}
	}

	return testDense{a: a}
}

// TestTSPExact_Small4 verifies Held-Karp on a trivial 4-node cycle.
// It should find the exact cost 4 and a tour of length 5 starting/ending at 0.
// Complexity: O(n²·2ⁿ) = O(16·16) here.
func TestTSPExact_Small4(t *testing.T) {
	dist := testDense{a: [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	}}
	res, err := tsp.TSPExact(dist, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Tour) != 5 {
		t.Fatalf("want 5 entries in tour, got %d", len(res.Tour))
	}
	if res.Tour[0] != 0 || res.Tour[4] != 0 {
		t.Fatalf("tour must start/end at 0, got %v", res.Tour)
	}
	if res.Cost != 4.0 {
		t.Fatalf("want cost 4, got %v", res.Cost)
	}
}

// TestTSPExact_Medium8 verifies Held-Karp on an 8-node cycle. Optimum cost == 8.
func TestTSPExact_Medium8(t *testing.T) {
	dist := makeCycleDist(8)
	res, err := tsp.TSPExact(dist, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Tour) != 9 {
		t.Fatalf("want 9 entries in tour, got %d", len(res.Tour))
	}
	if res.Tour[0] != 0 || res.Tour[8] != 0 {
		t.Fatalf("tour must start/end at 0, got %v", res.Tour)
	}
	if res.Cost != 8.0 {
		t.Fatalf("want cost 8, got %v", res.Cost)
	}
}

// TestTSPExact_Disconnected ensures ErrIncompleteGraph when the graph
// truly has no Hamiltonian cycle (one vertex is completely isolated).
func TestTSPExact_Disconnected(t *testing.T) {
	const n = 5
	dense := makeCycleDist(n).(testDense)

	// Isolate vertex 2 by removing all its edges to others.
	for v := 0; v < n; v++ {
		if v == 2 {
			continue
		}
		dense.a[2][v] = math.Inf(1)
		dense.a[v][2] = math.Inf(1)
	}

	_, err := tsp.TSPExact(dense, tsp.DefaultOptions())
	if !errors.Is(err, tsp.ErrIncompleteGraph) {
		t.Fatalf("want ErrIncompleteGraph, got %v", err)
	}
}

// TestTSPExact_BadInput covers invalid inputs according to specification.
func TestTSPExact_BadInput(t *testing.T) {
	// 1) Empty matrix.
	_, err := tsp.TSPExact(testDense{a: nil}, tsp.DefaultOptions())
	if !errors.Is(err, tsp.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare on empty matrix, got %v", err)
	}

	// 2) Non-square matrix.
	nonSquare := testDense{a: [][]float64{{0, 1, 2}, {1, 0, 2}}}
	_, err = tsp.TSPExact(nonSquare, tsp.DefaultOptions())
	if !errors.Is(err, tsp.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare, got %v", err)
	}

	// 3) Negative weight.
	neg := testDense{a: [][]float64{
		{0, -1, 2},
		{-1, 0, 1},
		{2, 1, 0},
	}}
	_, err = tsp.TSPExact(neg, tsp.DefaultOptions())
	if !errors.Is(err, tsp.ErrNegativeWeight) {
		t.Fatalf("want ErrNegativeWeight, got %v", err)
	}

	// 4) Size above MaxExactN.
	big := make([][]float64, tsp.MaxExactN+1)
	for i := range big {
		big[i] = make([]float64, tsp.MaxExactN+1)
	}
	_, err = tsp.TSPExact(testDense{a: big}, tsp.DefaultOptions())
	if !errors.Is(err, tsp.ErrSizeTooLarge) {
		t.Fatalf("want ErrSizeTooLarge, got %v", err)
	}
}
