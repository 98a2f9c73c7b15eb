// Package dfs defines types and options for depth-first search over a
// grid.Grid, including the path reconstruction mode, the visit hook and the
// visit limit.
package dfs

import (
	"errors"
	"fmt"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// PathMode selects how DFS turns its traversal into a path once the end node
// is found.
type PathMode int

const (
	// PathReverseJourney returns the journey reversed. The result is the visit
	// order and is not guaranteed to be an edge-connected route.
	PathReverseJourney PathMode = iota

	// PathPredecessors walks the parent links of the DFS tree back from the
	// end node, yielding an edge-connected (not necessarily shortest) route.
	PathPredecessors
)

// String returns the mode name.
func (m PathMode) String() string {
	switch m {
	case PathReverseJourney:
		return "reverse-journey"
	case PathPredecessors:
		return "predecessors"
	default:
		return fmt.Sprintf("PathMode(%d)", int(m))
	}
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// PathMode selects path reconstruction. Default is PathReverseJourney.
	PathMode PathMode

	// OnVisit, if non-nil, is invoked each time a node is appended to the journey.
	OnVisit func(c grid.Coord)

	// MaxVisits, if > 0, ends the search as exhausted once the journey holds
	// this many nodes. A value of 0 disables the limit.
	MaxVisits int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - PathReverseJourney reconstruction
//   - No visit hook
//   - No visit limit
func DefaultOptions() DFSOptions {
	return DFSOptions{
		PathMode:  PathReverseJourney,
		OnVisit:   nil,
		MaxVisits: 0,
	}
}

// WithPathMode returns an Option that selects path reconstruction.
// Unknown modes are recorded as ErrOptionViolation.
func WithPathMode(m PathMode) Option {
	return func(o *DFSOptions) {
		if m != PathReverseJourney && m != PathPredecessors {
			o.err = fmt.Errorf("%w: unknown path mode %v", ErrOptionViolation, m)
			return
		}
		o.PathMode = m
	}
}

// WithOnVisit returns an Option that installs fn as the journey hook.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxVisits returns an Option that caps the journey length.
// A negative limit is recorded as ErrOptionViolation.
func WithMaxVisits(n int) Option {
	return func(o *DFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// DFSResult captures the outcome of a depth-first search.
type DFSResult struct {
	// Journey records nodes in the order they were popped and expanded,
	// excluding the start and end nodes.
	Journey []grid.Coord

	// Path is the reconstructed path in end-to-start order, excluding both
	// endpoints. Its meaning depends on the PathMode used. Empty when the end
	// was not found.
	Path []grid.Coord

	// Found reports whether the end node was discovered.
	Found bool

	// Parent maps each expanded node to the node whose expansion pushed it.
	// The start node does not appear as a key.
	Parent map[grid.Coord]grid.Coord
}
