// Package bfs provides breadth-first search over a grid.Grid, returning the
// discovery journey and the shortest (fewest hops) path to the end node.
//
// BFS explores nodes in increasing hop distance from the start node and stops
// the instant the end node is discovered as a neighbor.
package bfs

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid       *grid.Grid
	opts       BFSOptions
	start      grid.Coord
	queue      *queue.Queue[grid.Coord]
	discovered mapset.Set[grid.Coord]
	res        *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns grid.ErrNilGrid, grid.ErrOutOfBounds or grid.ErrInvalidGridState
// for invalid input and ErrOptionViolation for bad options.
// An unreachable end is not an error: the result has Found == false and an
// empty Path.
func BFS(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, grid.ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	n := g.Len()
	w := &walker{
		grid:       g,
		opts:       o,
		start:      start,
		queue:      queue.New[grid.Coord](),
		discovered: mapset.New[grid.Coord](),
		res: &Result{
			Journey: make([]grid.Coord, 0, n),
			Path:    []grid.Coord{},
			Parent:  make(map[grid.Coord]grid.Coord, n),
		},
	}

	w.queue.Enqueue(start)
	w.loop()

	return w.res, nil
}

// loop dequeues nodes until the end is discovered or the queue runs dry.
func (w *walker) loop() {
	for !w.queue.Empty() {
		cur := w.queue.Dequeue()
		for _, nbr := range w.grid.Neighbors(cur) {
			c := nbr.Coord()
			if nbr.IsEnd {
				w.res.Parent[c] = cur
				w.finish(c)
				return
			}
			// first discovery wins; parents are never overwritten
			if w.discovered.Has(c) {
				continue
			}
			if w.opts.MaxVisits > 0 && len(w.res.Journey) >= w.opts.MaxVisits {
				return
			}
			w.discovered.Put(c)
			w.res.Parent[c] = cur
			w.res.Journey = append(w.res.Journey, c)
			w.opts.OnVisit(c)
			w.queue.Enqueue(c)
		}
	}
}

// finish rebuilds the path from the predecessor links gathered so far.
func (w *walker) finish(end grid.Coord) {
	w.res.Found = true
	w.res.Path = grid.Backtrack(w.res.Parent, end, w.start)
	w.res.Hops = len(w.res.Path) + 1
}
