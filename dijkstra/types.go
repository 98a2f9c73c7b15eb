// Package dijkstra defines core types and configuration options for
// Dijkstra's minimum-cost search on a weighted grid.Grid.
//
// Weights sit on nodes: stepping onto a node costs its Weight (≥ 1), so the
// cost of a route is the sum of the weights of every node entered, end
// included and start excluded.
//
// Options:
//
//	– Frontier:  FrontierHeap (default) or FrontierScan selection of the next node.
//	– OnVisit:   hook called for every journey entry.
//	– MaxVisits: optional cap on journey length (0 = unlimited).
//
// Errors (sentinel):
//
//	– grid.ErrNilGrid, grid.ErrOutOfBounds, grid.ErrInvalidGridState from input validation.
//	– ErrOptionViolation if an option is invalid.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// ErrOptionViolation indicates an invalid functional option.
var ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

// Frontier selects the data structure used to pick the next node to expand.
//
// FrontierHeap – binary min-heap keyed by (distance, insertion order); O(log V) per pop.
// FrontierScan – unordered list scanned in full on every pop; O(V) per pop.
//
// Both break ties in first-found order and therefore produce identical results.
type Frontier int

const (
	// FrontierHeap selects the heap-backed frontier.
	FrontierHeap Frontier = iota

	// FrontierScan selects the linear-scan frontier.
	FrontierScan
)

// String returns the frontier name.
func (f Frontier) String() string {
	switch f {
	case FrontierHeap:
		return "heap"
	case FrontierScan:
		return "scan"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Frontier  – next-node selection strategy. Default FrontierHeap.
// OnVisit   – called with each node appended to the journey; may be nil.
// MaxVisits – stop as exhausted once the journey holds this many nodes.
//
//	Must be ≥ 0. Default is 0 (no cap).
type Options struct {
	Frontier  Frontier
	OnVisit   func(c grid.Coord)
	MaxVisits int

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithFrontier selects the frontier implementation. Unknown values are
// recorded and surfaced as ErrOptionViolation.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		if f != FrontierHeap && f != FrontierScan {
			o.err = fmt.Errorf("%w: unknown frontier %v", ErrOptionViolation, f)
			return
		}
		o.Frontier = f
	}
}

// WithOnVisit installs a hook called for every journey entry.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxVisits caps the journey length. Negative values are recorded and
// surfaced as ErrOptionViolation.
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Frontier:  FrontierHeap.
//   - OnVisit:   nil.
//   - MaxVisits: 0 (no cap).
func DefaultOptions() Options {
	return Options{
		Frontier:  FrontierHeap,
		OnVisit:   nil,
		MaxVisits: 0,
	}
}

// Result is the outcome of a Dijkstra run.
//
//   - Journey: nodes in the order their tentative distance was set.
//   - Path:    end-to-start predecessor chain, both endpoints excluded.
//   - Found:   whether the end node was reached.
//   - Cost:    sum of entered weights along the route, end included (0 when not found).
//   - Dist:    final tentative distance of every node reached.
//   - Prev:    predecessor of every node reached.
type Result struct {
	Journey []grid.Coord
	Path    []grid.Coord
	Found   bool
	Cost    int
	Dist    map[grid.Coord]int
	Prev    map[grid.Coord]grid.Coord
}
