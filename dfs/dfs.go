package dfs

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// frame is a stacked node together with the node whose expansion pushed it.
type frame struct {
	at, from grid.Coord
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *grid.Grid
	opts    DFSOptions
	start   grid.Coord
	stack   *stack.Stack[frame]
	visited mapset.Set[grid.Coord]
	res     *DFSResult
}

// DFS performs depth-first search on g from start with an explicit LIFO
// stack. Neighbors are pushed in grid.Neighbors order (down, right, up,
// left), so the last one (left) is explored first.
//
// The search stops as soon as the end node appears among the neighbors of
// the node being expanded. An unreachable end is not an error: the result
// has Found == false and an empty Path.
//
// Returns grid.ErrNilGrid, grid.ErrOutOfBounds or grid.ErrInvalidGridState
// for invalid input and ErrOptionViolation for bad options.
func DFS(g *grid.Grid, start grid.Coord, opts ...Option) (*DFSResult, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, grid.ErrNilGrid
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Check endpoints
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	// 4. Initialize result with capacity hint
	n := g.Len()
	walker := &dfsWalker{
		grid:    g,
		opts:    dopts,
		start:   start,
		stack:   stack.New[frame](),
		visited: mapset.New[grid.Coord](),
		res: &DFSResult{
			Journey: make([]grid.Coord, 0, n),
			Path:    []grid.Coord{},
			Parent:  make(map[grid.Coord]grid.Coord, n),
		},
	}

	// 5. Traverse
	walker.stack.Push(frame{at: start, from: start})
	walker.traverse()

	return walker.res, nil
}

// traverse pops frames until the end is discovered or the stack is empty.
func (w *dfsWalker) traverse() {
	for w.stack.Size() > 0 {
		f := w.stack.Pop()
		// a node may be stacked several times; only the first pop counts
		if w.visited.Has(f.at) {
			continue
		}
		if f.at != w.start {
			if w.opts.MaxVisits > 0 && len(w.res.Journey) >= w.opts.MaxVisits {
				return
			}
			w.res.Parent[f.at] = f.from
			w.res.Journey = append(w.res.Journey, f.at)
			if w.opts.OnVisit != nil {
				w.opts.OnVisit(f.at)
			}
		}
		w.visited.Put(f.at)

		for _, nbr := range w.grid.Neighbors(f.at) {
			c := nbr.Coord()
			if nbr.IsEnd {
				w.res.Parent[c] = f.at
				w.finish(c)
				return
			}
			if !w.visited.Has(c) {
				w.stack.Push(frame{at: c, from: f.at})
			}
		}
	}
}

// finish reconstructs the path according to the selected mode.
func (w *dfsWalker) finish(end grid.Coord) {
	w.res.Found = true
	switch w.opts.PathMode {
	case PathPredecessors:
		w.res.Path = grid.Backtrack(w.res.Parent, end, w.start)
	default:
		w.res.Path = grid.Reverse(w.res.Journey)
	}
}
