// Package grid models the board searched by the bfs, dfs and dijkstra packages
// and carved by the maze package: a fixed rows×cols matrix of nodes with
// mutable wall, endpoint and weight attributes.
//
// Nodes are stored densely in row-major order; a node's identity is its Coord.
package grid

import "fmt"

// Direction indices into the array returned by Adjacent.
const (
	Down = iota
	Right
	Up
	Left
)

// offsets lists the orthogonal steps in neighbor order: down, right, up, left.
var offsets = [4]Coord{{Row: 1}, {Col: 1}, {Row: -1}, {Col: -1}}

// Grid exclusively owns its nodes. Algorithms borrow it for the duration of a
// call; it is not safe for concurrent use.
type Grid struct {
	rows, cols int
	nodes      []Node
}

// New builds a rows×cols grid of open, weight-1 nodes and marks the start and
// end nodes. Endpoints default to DefaultOptions(rows, cols).
// Returns ErrEmptyGrid if rows or cols < 1, ErrOutOfBounds if an endpoint lies
// outside the grid and ErrInvalidGridState if start and end coincide.
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	o := DefaultOptions(rows, cols)
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{rows: rows, cols: cols, nodes: make([]Node, rows*cols)}
	for i := range g.nodes {
		c := g.Coordinate(i)
		g.nodes[i] = Node{Row: c.Row, Col: c.Col, Weight: 1}
	}

	if !g.InBounds(o.Start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, o.Start)
	}
	if !g.InBounds(o.End) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, o.End)
	}
	if o.Start == o.End {
		return nil, fmt.Errorf("%w: start and end share %v", ErrInvalidGridState, o.Start)
	}
	g.Node(o.Start).IsStart = true
	g.Node(o.End).IsEnd = true

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of nodes.
func (g *Grid) Len() int { return len(g.nodes) }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: row*cols + col.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the node at c, or ErrOutOfBounds.
func (g *Grid) At(c Coord) (*Node, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return &g.nodes[g.Index(c)], nil
}

// Node returns the node at c, or nil when c is out of bounds.
func (g *Grid) Node(c Coord) *Node {
	if !g.InBounds(c) {
		return nil
	}
	return &g.nodes[g.Index(c)]
}

// Each calls fn for every node in row-major order.
func (g *Grid) Each(fn func(n *Node)) {
	for i := range g.nodes {
		fn(&g.nodes[i])
	}
}

// Start returns the coordinate of the first node flagged as start.
func (g *Grid) Start() (Coord, bool) {
	return g.find(func(n *Node) bool { return n.IsStart })
}

// End returns the coordinate of the first node flagged as end.
func (g *Grid) End() (Coord, bool) {
	return g.find(func(n *Node) bool { return n.IsEnd })
}

func (g *Grid) find(match func(n *Node) bool) (Coord, bool) {
	for i := range g.nodes {
		if match(&g.nodes[i]) {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// Adjacent returns the orthogonal neighbors of c indexed by Down, Right, Up and
// Left. Entries outside the grid are nil; walls and endpoints are included.
func (g *Grid) Adjacent(c Coord) [4]*Node {
	var adj [4]*Node
	for i, d := range offsets {
		adj[i] = g.Node(Coord{Row: c.Row + d.Row, Col: c.Col + d.Col})
	}
	return adj
}

// Neighbors returns the nodes a search may step to from c, in the fixed order
// down, right, up, left. Walls and the start node are never returned, so no
// search can re-enter its origin.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []*Node {
	out := make([]*Node, 0, len(offsets))
	for _, n := range g.Adjacent(c) {
		if n != nil && n.Traversable() {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks the preconditions shared by every search:
//  1. start lies within the grid (ErrOutOfBounds);
//  2. exactly one node is flagged start and exactly one end (ErrInvalidGridState);
//  3. the node at start carries the start flag (ErrInvalidGridState);
//  4. neither endpoint is a wall (ErrInvalidGridState).
//
// Complexity: O(rows·cols).
func (g *Grid) Validate(start Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.rows, g.cols)
	}
	var starts, ends int
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.IsStart {
			starts++
		}
		if n.IsEnd {
			ends++
		}
		if (n.IsStart || n.IsEnd) && n.IsWall {
			return fmt.Errorf("%w: endpoint %v is a wall", ErrInvalidGridState, n.Coord())
		}
	}
	if starts != 1 || ends != 1 {
		return fmt.Errorf("%w: %d start and %d end nodes", ErrInvalidGridState, starts, ends)
	}
	if !g.Node(start).IsStart {
		return fmt.Errorf("%w: %v is not the start node", ErrInvalidGridState, start)
	}
	return nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	nodes := make([]Node, len(g.nodes))
	copy(nodes, g.nodes)
	return &Grid{rows: g.rows, cols: g.cols, nodes: nodes}
}
