// Package bfs provides tunable options, the result type and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative visit limit), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called each time a node is appended to the journey.
	OnVisit func(c grid.Coord)

	// MaxVisits, if > 0, ends the search as exhausted once the journey holds
	// this many nodes. A value of 0 disables the limit.
	MaxVisits int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no visit limit and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:   func(grid.Coord) {},
		MaxVisits: 0,
	}
}

// WithOnVisit registers a callback to run for every journey entry.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxVisits caps the journey length.
//
//	n > 0: stop after n journey entries
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// Result holds the outcome of a BFS run:
//   - Journey: nodes in discovery order, excluding the start and end nodes.
//   - Path:    nodes from the one preceding the end back toward the start,
//     excluding both endpoints (end-to-start order).
//   - Found:   whether the end node was discovered. Found with an empty Path
//     means the end is adjacent to the start.
//   - Hops:    edge count of the route start→end (0 when not found).
//   - Parent:  predecessor of every discovered node, first discovery wins.
type Result struct {
	Journey []grid.Coord
	Path    []grid.Coord
	Found   bool
	Hops    int
	Parent  map[grid.Coord]grid.Coord
}

// Route returns the full start→end route including both endpoints, or nil
// when the end was not found.
func (r *Result) Route(start, end grid.Coord) []grid.Coord {
	if !r.Found {
		return nil
	}
	route := make([]grid.Coord, 0, len(r.Path)+2)
	route = append(route, start)
	route = append(route, grid.Reverse(r.Path)...)

	return append(route, end)
}
