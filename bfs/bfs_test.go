package bfs_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/bfs"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/internal/gridtest"
)

// c is shorthand for a coordinate literal.
func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S..",
		"...",
		"..E",
	)
	require.NoError(t, err)

	// nil grid
	if _, err := bfs.BFS(nil, start); !errors.Is(err, grid.ErrNilGrid) {
		t.Errorf("nil grid: want ErrNilGrid, got %v", err)
	}
	// start outside the grid
	if _, err := bfs.BFS(g, c(5, 5)); !errors.Is(err, grid.ErrOutOfBounds) {
		t.Errorf("outside start: want ErrOutOfBounds, got %v", err)
	}
	// start that is not the flagged start node
	if _, err := bfs.BFS(g, c(1, 1)); !errors.Is(err, grid.ErrInvalidGridState) {
		t.Errorf("unflagged start: want ErrInvalidGridState, got %v", err)
	}
	// negative MaxVisits is a violation
	if _, err := bfs.BFS(g, start, bfs.WithMaxVisits(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative MaxVisits: want ErrOptionViolation, got %v", err)
	}

	// two end nodes
	broken := g.Clone()
	broken.Node(c(0, 2)).IsEnd = true
	if _, err := bfs.BFS(broken, start); !errors.Is(err, grid.ErrInvalidGridState) {
		t.Errorf("two ends: want ErrInvalidGridState, got %v", err)
	}
	// walled end
	walled := g.Clone()
	walled.Node(c(2, 2)).IsWall = true
	if _, err := bfs.BFS(walled, start); !errors.Is(err, grid.ErrInvalidGridState) {
		t.Errorf("walled end: want ErrInvalidGridState, got %v", err)
	}
}

// TestBFS_OpenGrid covers the 3×3 open board from corner to corner.
func TestBFS_OpenGrid(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S..",
		"...",
		"..E",
	)
	require.NoError(t, err)

	res, err := bfs.BFS(g, start)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{
		c(1, 0), c(0, 1), c(2, 0), c(1, 1), c(0, 2), c(2, 1), c(1, 2),
	}, res.Journey)
	assert.Equal(t, []grid.Coord{c(2, 1), c(2, 0), c(1, 0)}, res.Path)
	assert.Equal(t, 4, res.Hops)
	assert.Equal(t, []grid.Coord{
		c(0, 0), c(1, 0), c(2, 0), c(2, 1), c(2, 2),
	}, res.Route(start, c(2, 2)))

	// journey never holds an endpoint
	assert.NotContains(t, res.Journey, start)
	assert.NotContains(t, res.Journey, c(2, 2))
}

// TestBFS_Unreachable walls the end off: the journey is the start's whole
// component and the path is empty.
func TestBFS_Unreachable(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S..#.",
		"...#.",
		"####E",
	)
	require.NoError(t, err)

	res, err := bfs.BFS(g, start)
	require.NoError(t, err)

	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.NotNil(t, res.Path)
	assert.Zero(t, res.Hops)
	assert.Nil(t, res.Route(start, c(2, 4)))
	assert.ElementsMatch(t, []grid.Coord{c(1, 0), c(0, 1), c(1, 1), c(0, 2), c(1, 2)}, res.Journey)
}

// TestBFS_AdjacentEnd checks that a neighboring end yields Found with an empty path.
func TestBFS_AdjacentEnd(t *testing.T) {
	g, start, err := gridtest.Parse(
		"SE.",
		"...",
	)
	require.NoError(t, err)

	res, err := bfs.BFS(g, start)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, 1, res.Hops)
	// down is inspected before right, so (1,0) is discovered first
	assert.Equal(t, []grid.Coord{c(1, 0)}, res.Journey)
}

// TestBFS_IsolatedStart checks a start boxed in by walls.
func TestBFS_IsolatedStart(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S#.",
		"#.E",
	)
	require.NoError(t, err)

	res, err := bfs.BFS(g, start)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Journey)
	assert.Empty(t, res.Path)
}

// TestBFS_Idempotent verifies that the search neither mutates the grid nor
// depends on earlier runs.
func TestBFS_Idempotent(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S...#....",
		".##.#.##.",
		".#..#..#.",
		".#.###.#.",
		"...#...#E",
	)
	require.NoError(t, err)
	before := g.Clone()

	first, err := bfs.BFS(g, start)
	require.NoError(t, err)
	second, err := bfs.BFS(g, start)
	require.NoError(t, err)

	assert.Equal(t, first.Journey, second.Journey)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, before, g)
}

// TestBFS_OnVisitAndMaxVisits checks the hook order and the visit cap.
func TestBFS_OnVisitAndMaxVisits(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S....",
		".....",
		"....E",
	)
	require.NoError(t, err)

	var seen []grid.Coord
	res, err := bfs.BFS(g, start, bfs.WithOnVisit(func(at grid.Coord) {
		seen = append(seen, at)
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Journey, seen)

	capped, err := bfs.BFS(g, start, bfs.WithMaxVisits(3))
	require.NoError(t, err)
	assert.False(t, capped.Found)
	assert.Len(t, capped.Journey, 3)
	assert.Equal(t, res.Journey[:3], capped.Journey)

	// zero means no limit
	unlimited, err := bfs.BFS(g, start, bfs.WithMaxVisits(0))
	require.NoError(t, err)
	assert.Equal(t, res.Journey, unlimited.Journey)
}

// TestBFS_MinimalHops compares the path length with a relaxation oracle on
// random boards.
func TestBFS_MinimalHops(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		g, start := gridtest.Random(rng, 6+rng.Intn(8), 6+rng.Intn(12), 0.3, 1)
		end, _ := g.End()

		res, err := bfs.BFS(g, start)
		require.NoError(t, err)

		want := gridtest.MinCost(g, start, true)
		if want == math.MaxInt {
			assert.False(t, res.Found, "board %d: end unreachable", i)
			assert.Empty(t, res.Path)
			assert.ElementsMatch(t, keys(gridtest.Reachable(g, start)), res.Journey, "board %d", i)
			continue
		}
		require.True(t, res.Found, "board %d", i)
		assert.Equal(t, want, res.Hops, "board %d", i)
		assert.True(t, gridtest.Connected(g, start, end, res.Path), "board %d: broken path %v", i, res.Path)

		// the path is drawn from the journey
		inJourney := map[grid.Coord]bool{}
		for _, at := range res.Journey {
			inJourney[at] = true
		}
		for _, at := range res.Path {
			assert.True(t, inJourney[at], "board %d: %v not in journey", i, at)
		}
	}
}

func keys(m map[grid.Coord]bool) []grid.Coord {
	out := make([]grid.Coord, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
