package dfs_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/dfs"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/internal/gridtest"
)

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

// deadEnd is a board where DFS first explores the dead-end cell (0,0), so
// the reversed journey is not an edge-connected route.
var deadEnd = []string{
	".S..",
	"#...",
	"...E",
}

// TestDFS_Errors verifies that invalid inputs and options are rejected.
func TestDFS_Errors(t *testing.T) {
	g, start, err := gridtest.Parse(deadEnd...)
	require.NoError(t, err)

	cases := []struct {
		name  string
		g     *grid.Grid
		start grid.Coord
		opts  []dfs.Option
		want  error
	}{
		{"NilGrid", nil, start, nil, grid.ErrNilGrid},
		{"StartOutside", g, c(-1, 0), nil, grid.ErrOutOfBounds},
		{"StartNotFlagged", g, c(2, 0), nil, grid.ErrInvalidGridState},
		{"NegativeMaxVisits", g, start, []dfs.Option{dfs.WithMaxVisits(-2)}, dfs.ErrOptionViolation},
		{"UnknownPathMode", g, start, []dfs.Option{dfs.WithPathMode(dfs.PathMode(9))}, dfs.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dfs.DFS(tc.g, tc.start, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Errorf("DFS error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestDFS_StackOrder pins the LIFO exploration order: left is pushed last,
// so it is explored first.
func TestDFS_StackOrder(t *testing.T) {
	g, start, err := gridtest.Parse(deadEnd...)
	require.NoError(t, err)

	res, err := dfs.DFS(g, start)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{c(0, 0), c(0, 2), c(0, 3), c(1, 3)}, res.Journey)
	assert.NotContains(t, res.Journey, start)
	assert.NotContains(t, res.Journey, c(2, 3))
}

// TestDFS_ReverseJourneyIsNotARoute documents the known inaccuracy of the
// default path mode: the reversed journey can jump between non-adjacent cells.
func TestDFS_ReverseJourneyIsNotARoute(t *testing.T) {
	g, start, err := gridtest.Parse(deadEnd...)
	require.NoError(t, err)

	res, err := dfs.DFS(g, start)
	require.NoError(t, err)

	assert.Equal(t, grid.Reverse(res.Journey), res.Path)
	assert.False(t, gridtest.Connected(g, start, c(2, 3), res.Path),
		"reversed journey %v unexpectedly forms a route", res.Path)
}

// TestDFS_PathPredecessors checks the redesigned reconstruction on the same board.
func TestDFS_PathPredecessors(t *testing.T) {
	g, start, err := gridtest.Parse(deadEnd...)
	require.NoError(t, err)

	res, err := dfs.DFS(g, start, dfs.WithPathMode(dfs.PathPredecessors))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{c(1, 3), c(0, 3), c(0, 2)}, res.Path)
	assert.True(t, gridtest.Connected(g, start, c(2, 3), res.Path))
}

// TestDFS_Unreachable checks exhaustion: empty path, journey is the component.
func TestDFS_Unreachable(t *testing.T) {
	g, start, err := gridtest.Parse(
		"S.#..",
		"..#.E",
	)
	require.NoError(t, err)

	for _, mode := range []dfs.PathMode{dfs.PathReverseJourney, dfs.PathPredecessors} {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := dfs.DFS(g, start, dfs.WithPathMode(mode))
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.ElementsMatch(t, []grid.Coord{c(0, 1), c(1, 0), c(1, 1)}, res.Journey)
		})
	}
}

// TestDFS_AdjacentEnd checks that an end next to the start stops the search
// before anything is visited.
func TestDFS_AdjacentEnd(t *testing.T) {
	g, start, err := gridtest.Parse(
		"...",
		".SE",
	)
	require.NoError(t, err)

	res, err := dfs.DFS(g, start)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Journey)
	assert.Empty(t, res.Path)
}

// TestDFS_HooksAndLimit verifies OnVisit ordering and MaxVisits exhaustion.
func TestDFS_HooksAndLimit(t *testing.T) {
	g, start, err := gridtest.Parse(deadEnd...)
	require.NoError(t, err)

	var seen []grid.Coord
	res, err := dfs.DFS(g, start, dfs.WithOnVisit(func(at grid.Coord) { seen = append(seen, at) }))
	require.NoError(t, err)
	assert.Equal(t, res.Journey, seen)

	capped, err := dfs.DFS(g, start, dfs.WithMaxVisits(2))
	require.NoError(t, err)
	assert.False(t, capped.Found)
	assert.Equal(t, res.Journey[:2], capped.Journey)
	assert.Empty(t, capped.Path)
}

// TestDFS_RandomBoards compares reachability with an oracle and checks the
// predecessor path on random boards.
func TestDFS_RandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		g, start := gridtest.Random(rng, 5+rng.Intn(10), 5+rng.Intn(10), 0.3, 1)
		end, _ := g.End()
		reachable := gridtest.MinCost(g, start, true) != math.MaxInt

		res, err := dfs.DFS(g, start, dfs.WithPathMode(dfs.PathPredecessors))
		require.NoError(t, err)
		require.Equal(t, reachable, res.Found, "board %d", i)

		component := gridtest.Reachable(g, start)
		seen := map[grid.Coord]bool{}
		for _, at := range res.Journey {
			assert.False(t, seen[at], "board %d: %v visited twice", i, at)
			assert.True(t, component[at], "board %d: %v outside component", i, at)
			seen[at] = true
		}
		if !res.Found {
			assert.Len(t, res.Journey, len(component), "board %d", i)
			continue
		}
		assert.True(t, gridtest.Connected(g, start, end, res.Path), "board %d: broken path %v", i, res.Path)
	}
}
