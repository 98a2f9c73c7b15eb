// Package grid defines the node, coordinate and option types together with
// the sentinel errors shared by every search and maze package of the module.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction, editing and validation.
var (
	// ErrNilGrid is returned when a nil *Grid is passed to an algorithm.
	ErrNilGrid = errors.New("grid: grid is nil")

	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrOutOfBounds indicates a coordinate outside the rows×cols matrix.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidGridState indicates the single-start/single-end invariant is broken,
	// or the start passed to an algorithm is not the marked start node.
	ErrInvalidGridState = errors.New("grid: invalid grid state")

	// ErrEndpointWall is returned when a wall would be placed on the start or end node.
	ErrEndpointWall = errors.New("grid: start and end nodes cannot be walls")

	// ErrInvalidWeight is returned for node weights below 1.
	ErrInvalidWeight = errors.New("grid: weight must be at least 1")
)

// Reference dimensions and endpoint columns of the interactive board.
const (
	DefaultRows     = 25
	DefaultCols     = 50
	DefaultStartCol = 9
	DefaultEndCol   = 40

	// HeavyWeight is the weight assigned by RandomizeWeights in the reference board.
	HeavyWeight = 4
	// HeavyProbability is the per-node chance of receiving HeavyWeight.
	HeavyProbability = 0.3
)

// Coord identifies a node by its row and column. It is the only node key used
// by predecessor, distance and membership maps.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as "row-col", the id format of the board cells.
func (c Coord) String() string {
	return fmt.Sprintf("%d-%d", c.Row, c.Col)
}

// Node is a single grid cell.
//
// Weight is the cost of entering the node and is always ≥ 1.
// Visited and Path are presentation marks only; algorithms never read them.
type Node struct {
	Row, Col  int
	IsWall    bool
	IsStart   bool
	IsEnd     bool
	Weight    int
	IsVisited bool
	IsPath    bool
}

// Coord returns the identity of n.
func (n *Node) Coord() Coord { return Coord{Row: n.Row, Col: n.Col} }

// Traversable reports whether a search may step onto n.
func (n *Node) Traversable() bool { return !n.IsWall && !n.IsStart }

// Option configures grid construction via functional arguments.
// An invalid Option is recorded and surfaced by New.
type Option func(*Options)

// Options holds the endpoint placement for New.
type Options struct {
	// Start is the initial start coordinate.
	Start Coord
	// End is the initial end coordinate.
	End Coord
}

// WithStart places the start node at c.
func WithStart(c Coord) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithEnd places the end node at c.
func WithEnd(c Coord) Option {
	return func(o *Options) {
		o.End = c
	}
}

// DefaultOptions returns the endpoint placement of the reference board for a
// rows×cols grid: start at (rows/2, 9) and end at (rows/2, 40). When those
// columns do not fit, start falls back to (0,0) and end to the bottom-right corner.
func DefaultOptions(rows, cols int) Options {
	mid := rows / 2
	if cols > DefaultEndCol {
		return Options{
			Start: Coord{Row: mid, Col: DefaultStartCol},
			End:   Coord{Row: mid, Col: DefaultEndCol},
		}
	}
	return Options{
		Start: Coord{Row: 0, Col: 0},
		End:   Coord{Row: rows - 1, Col: cols - 1},
	}
}
