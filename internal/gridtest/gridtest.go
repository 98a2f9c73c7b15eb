// Package gridtest builds grids from ASCII layouts and provides brute-force
// oracles used by the search and maze tests.
//
// Layout runes:
//
//	S start   E end   # wall   . open (weight 1)   1-9 open with that weight
package gridtest

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// Parse builds a grid from rows of layout runes. Every row must have the same
// length and the layout must contain exactly one S and one E.
func Parse(rows ...string) (*grid.Grid, grid.Coord, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, grid.Coord{}, grid.ErrEmptyGrid
	}
	var start, end grid.Coord
	var starts, ends int
	for r, line := range rows {
		if len(line) != len(rows[0]) {
			return nil, grid.Coord{}, fmt.Errorf("gridtest: row %d has length %d, want %d", r, len(line), len(rows[0]))
		}
		for c, ch := range line {
			switch ch {
			case 'S':
				start, starts = grid.Coord{Row: r, Col: c}, starts+1
			case 'E':
				end, ends = grid.Coord{Row: r, Col: c}, ends+1
			}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, grid.Coord{}, fmt.Errorf("gridtest: %d starts and %d ends", starts, ends)
	}

	g, err := grid.New(len(rows), len(rows[0]), grid.WithStart(start), grid.WithEnd(end))
	if err != nil {
		return nil, grid.Coord{}, err
	}
	for r, line := range rows {
		for c, ch := range line {
			at := grid.Coord{Row: r, Col: c}
			switch {
			case ch == '#':
				err = g.SetWall(at, true)
			case ch >= '1' && ch <= '9':
				err = g.SetWeight(at, int(ch-'0'))
			}
			if err != nil {
				return nil, grid.Coord{}, err
			}
		}
	}
	return g, start, nil
}

// Random builds a rows×cols grid with random walls and, when heavy > 1,
// random weights. Start and end are drawn uniformly and never walled.
func Random(rng *rand.Rand, rows, cols int, wallProb float64, heavy int) (*grid.Grid, grid.Coord) {
	start := grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	end := start
	for end == start {
		end = grid.Coord{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	}
	g, err := grid.New(rows, cols, grid.WithStart(start), grid.WithEnd(end))
	if err != nil {
		panic(err)
	}
	g.Each(func(n *grid.Node) {
		if n.IsStart || n.IsEnd {
			return
		}
		if rng.Float64() < wallProb {
			n.IsWall = true
		} else if heavy > 1 && rng.Float64() < grid.HeavyProbability {
			n.Weight = heavy
		}
	})
	return g, start
}

// Reachable returns every node reachable from start through grid.Neighbors,
// start and end excluded. The end node is never expanded.
func Reachable(g *grid.Grid, start grid.Coord) map[grid.Coord]bool {
	seen := map[grid.Coord]bool{}
	stack := []grid.Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.Neighbors(cur) {
			c := n.Coord()
			if n.IsEnd || seen[c] {
				continue
			}
			seen[c] = true
			stack = append(stack, c)
		}
	}
	return seen
}

// MinCost computes the minimum sum of entered node weights from start to the
// end node by repeated relaxation. With unit weights it is the hop count.
// Returns math.MaxInt when the end is unreachable.
func MinCost(g *grid.Grid, start grid.Coord, unit bool) int {
	end, _ := g.End()
	dist := make([]int, g.Len())
	for i := range dist {
		dist[i] = math.MaxInt
	}
	dist[g.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		g.Each(func(n *grid.Node) {
			d := dist[g.Index(n.Coord())]
			if d == math.MaxInt || n.IsEnd {
				return
			}
			for _, nb := range g.Neighbors(n.Coord()) {
				w := nb.Weight
				if unit {
					w = 1
				}
				i := g.Index(nb.Coord())
				if d+w < dist[i] {
					dist[i] = d + w
					changed = true
				}
			}
		})
	}
	return dist[g.Index(end)]
}

// Connected reports whether path, read end-to-start and framed by the
// endpoints, is a chain of orthogonally adjacent open nodes.
func Connected(g *grid.Grid, start, end grid.Coord, path []grid.Coord) bool {
	route := append([]grid.Coord{end}, path...)
	route = append(route, start)
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		dr, dc := a.Row-b.Row, a.Col-b.Col
		if dr*dr+dc*dc != 1 {
			return false
		}
		if n := g.Node(b); n == nil || n.IsWall {
			return false
		}
	}
	return true
}

// Passages counts the open cells of g, the orthogonal adjacencies between
// open cells and the connected components they form. The open cells form a
// forest exactly when edges == cells - components, and a spanning tree when
// additionally components == 1.
func Passages(g *grid.Grid) (cells, edges, components int) {
	seen := map[grid.Coord]bool{}
	g.Each(func(n *grid.Node) {
		if n.IsWall {
			return
		}
		cells++
		adj := g.Adjacent(n.Coord())
		for _, d := range []int{grid.Down, grid.Right} {
			if nb := adj[d]; nb != nil && !nb.IsWall {
				edges++
			}
		}
		if seen[n.Coord()] {
			return
		}
		components++
		stack := []grid.Coord{n.Coord()}
		seen[n.Coord()] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range g.Adjacent(cur) {
				if nb == nil || nb.IsWall || seen[nb.Coord()] {
					continue
				}
				seen[nb.Coord()] = true
				stack = append(stack, nb.Coord())
			}
		}
	})
	return cells, edges, components
}
