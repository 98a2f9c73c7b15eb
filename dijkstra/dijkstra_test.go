package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/bfs"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/dijkstra"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/internal/gridtest"
)

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

var frontiers = []dijkstra.Frontier{dijkstra.FrontierHeap, dijkstra.FrontierScan}

// heavyRow forces a detour around a weighted row.
var heavyRow = []string{
	"S..",
	"99.",
	"..E",
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Errors(t *testing.T) {
	g, start, err := gridtest.Parse(heavyRow...)
	require.NoError(t, err)

	cases := []struct {
		name  string
		g     *grid.Grid
		start grid.Coord
		opts  []dijkstra.Option
		want  error
	}{
		{"NilGrid", nil, start, nil, grid.ErrNilGrid},
		{"StartOutside", g, c(0, 7), nil, grid.ErrOutOfBounds},
		{"StartNotFlagged", g, c(0, 1), nil, grid.ErrInvalidGridState},
		{"NegativeMaxVisits", g, start, []dijkstra.Option{dijkstra.WithMaxVisits(-1)}, dijkstra.ErrOptionViolation},
		{"UnknownFrontier", g, start, []dijkstra.Option{dijkstra.WithFrontier(dijkstra.Frontier(5))}, dijkstra.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.Dijkstra(tc.g, tc.start, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Dijkstra error = %v; want %v", err, tc.want)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 2. Fixed boards: exact journeys, paths and costs.
// ------------------------------------------------------------------------

func TestDijkstra_HeavyRowDetour(t *testing.T) {
	g, start, err := gridtest.Parse(heavyRow...)
	require.NoError(t, err)

	for _, f := range frontiers {
		t.Run(f.String(), func(t *testing.T) {
			res, err := dijkstra.Dijkstra(g, start, dijkstra.WithFrontier(f))
			require.NoError(t, err)

			assert.True(t, res.Found)
			assert.Equal(t, []grid.Coord{c(1, 0), c(0, 1), c(1, 1), c(0, 2), c(1, 2)}, res.Journey)
			assert.Equal(t, []grid.Coord{c(1, 2), c(0, 2), c(0, 1)}, res.Path)
			assert.Equal(t, 4, res.Cost)
			assert.Equal(t, res.Cost, g.Cost(res.Path, c(2, 2)))
			assert.Equal(t, 9, res.Dist[c(1, 0)])
		})
	}
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S.3#.",
		"2..#E",
	)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, start)
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.NotNil(t, res.Path)
	assert.Zero(t, res.Cost)
	assert.ElementsMatch(t, []grid.Coord{c(0, 1), c(0, 2), c(1, 0), c(1, 1), c(1, 2)}, res.Journey)
}

func TestDijkstra_AdjacentEnd(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S.",
		".E",
	)
	require.NoError(t, err)
	require.NoError(t, g.SetWeight(c(1, 1), 7))
	require.NoError(t, g.MoveEnd(c(0, 1)))
	require.NoError(t, g.SetWeight(c(0, 1), 5))

	res, err := dijkstra.Dijkstra(g, start)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 5, res.Cost)
	// down is relaxed before the end is seen on the right
	assert.Equal(t, []grid.Coord{c(1, 0)}, res.Journey)
}

func TestDijkstra_HooksAndLimit(t *testing.T) {
	g, start, err := gridtest.Parse(heavyRow...)
	require.NoError(t, err)

	var seen []grid.Coord
	res, err := dijkstra.Dijkstra(g, start, dijkstra.WithOnVisit(func(at grid.Coord) { seen = append(seen, at) }))
	require.NoError(t, err)
	assert.Equal(t, res.Journey, seen)

	capped, err := dijkstra.Dijkstra(g, start, dijkstra.WithMaxVisits(2))
	require.NoError(t, err)
	assert.False(t, capped.Found)
	assert.Equal(t, res.Journey[:2], capped.Journey)
}

func TestDijkstra_Idempotent(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S.4..",
		".#4#.",
		"..4.E",
	)
	require.NoError(t, err)
	before := g.Clone()

	a, err := dijkstra.Dijkstra(g, start)
	require.NoError(t, err)
	b, err := dijkstra.Dijkstra(g, start)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, before, g)
}

// ------------------------------------------------------------------------
// 3. Properties on random boards.
// ------------------------------------------------------------------------

// With every weight 1 the search degenerates to breadth-first order.
func TestDijkstra_UnitWeightsMatchBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 40; i++ {
		g, start := gridtest.Random(rng, 4+rng.Intn(10), 4+rng.Intn(14), 0.25, 1)

		want, err := bfs.BFS(g, start)
		require.NoError(t, err)
		got, err := dijkstra.Dijkstra(g, start)
		require.NoError(t, err)

		assert.Equal(t, want.Found, got.Found, "board %d", i)
		assert.Equal(t, want.Journey, got.Journey, "board %d", i)
		assert.Equal(t, want.Path, got.Path, "board %d", i)
		if want.Found {
			assert.Equal(t, want.Hops, got.Cost, "board %d", i)
		}
	}
}

func TestDijkstra_OptimalCostAndFrontierAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 60; i++ {
		heavy := grid.HeavyWeight
		if i%2 == 1 {
			heavy = 2 + rng.Intn(8)
		}
		g, start := gridtest.Random(rng, 4+rng.Intn(12), 4+rng.Intn(16), 0.2, heavy)
		end, _ := g.End()

		heap, err := dijkstra.Dijkstra(g, start, dijkstra.WithFrontier(dijkstra.FrontierHeap))
		require.NoError(t, err)
		scan, err := dijkstra.Dijkstra(g, start, dijkstra.WithFrontier(dijkstra.FrontierScan))
		require.NoError(t, err)
		require.Equal(t, heap, scan, "board %d: frontiers disagree", i)

		best := gridtest.MinCost(g, start, false)
		if best == math.MaxInt {
			assert.False(t, heap.Found, "board %d", i)
			assert.Empty(t, heap.Path, "board %d", i)
			continue
		}
		require.True(t, heap.Found, "board %d", i)
		assert.Equal(t, best, heap.Cost, "board %d", i)
		assert.Equal(t, heap.Cost, g.Cost(heap.Path, end), "board %d", i)
		assert.True(t, gridtest.Connected(g, start, end, heap.Path), "board %d", i)

		// every node enters the journey at most once
		seen := map[grid.Coord]bool{}
		for _, at := range heap.Journey {
			assert.False(t, seen[at], "board %d: %v relaxed twice", i, at)
			seen[at] = true
		}
	}
}
