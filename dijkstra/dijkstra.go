package dijkstra

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// Dijkstra searches g for the minimum-cost route from start to the end node.
//
// The next node to expand is the frontier entry with the smallest recorded
// distance, ties broken in first-found order. For each neighbor the candidate
// distance is dist[u] + neighbor.Weight. Discovering the end node as a
// neighbor stops the search at once; otherwise an improving candidate updates
// the neighbor's distance and predecessor, is appended to the journey and is
// added to the frontier once.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (grid.ErrNilGrid).
//  2. options must be valid (ErrOptionViolation).
//  3. g.Validate(start) must pass (grid.ErrOutOfBounds, grid.ErrInvalidGridState).
//
// An unreachable end is not an error: Found is false and Path is empty.
//
// Complexity:
//
//   - Time:  O(V log V) with FrontierHeap, O(V²) with FrontierScan.
//   - Space: O(V).
func Dijkstra(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, grid.ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate endpoints
	if err := g.Validate(start); err != nil {
		return nil, err
	}

	// 4) Prepare state
	V := g.Len()
	r := &runner{
		g:        g,
		options:  cfg,
		start:    start,
		dist:     make([]int, V),
		frontier: newFrontier(cfg.Frontier, V),
		added:    mapset.New[grid.Coord](),
		res: &Result{
			Journey: make([]grid.Coord, 0, V),
			Path:    []grid.Coord{},
			Dist:    make(map[grid.Coord]int, V),
			Prev:    make(map[grid.Coord]grid.Coord, V),
		},
	}

	// 5) Run
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *grid.Grid             // The input grid; read-only within Dijkstra.
	options  Options                // Frontier choice, hook and limit.
	start    grid.Coord             // Source node.
	dist     []int                  // Dense index → current best distance.
	frontier frontier               // Discovered, not yet expanded nodes.
	added    mapset.Set[grid.Coord] // Nodes ever added to the frontier.
	seq      int                    // Next insertion sequence number.
	res      *Result
}

// init sets every distance to +∞ except the source, and seeds the frontier.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	r.dist[r.g.Index(r.start)] = 0
	r.res.Dist[r.start] = 0
	r.add(r.start, 0)
}

// add pushes c onto the frontier with priority d, at most once per node.
func (r *runner) add(c grid.Coord, d int) {
	if r.added.Has(c) {
		return
	}
	r.added.Put(c)
	r.frontier.push(entry{at: c, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly expands the closest frontier node until the end is
// reached, the frontier empties or the visit cap is hit.
func (r *runner) process() {
	for {
		e, ok := r.frontier.pop()
		if !ok {
			return
		}
		u := e.at
		du := r.dist[r.g.Index(u)]

		for _, nbr := range r.g.Neighbors(u) {
			v := nbr.Coord()
			cand := du + nbr.Weight

			if nbr.IsEnd {
				r.res.Prev[v] = u
				r.res.Dist[v] = cand
				r.finish(v, cand)
				return
			}

			vi := r.g.Index(v)
			if cand >= r.dist[vi] {
				continue
			}
			if r.options.MaxVisits > 0 && len(r.res.Journey) >= r.options.MaxVisits {
				return
			}
			r.dist[vi] = cand
			r.res.Dist[v] = cand
			r.res.Prev[v] = u
			r.res.Journey = append(r.res.Journey, v)
			if r.options.OnVisit != nil {
				r.options.OnVisit(v)
			}
			r.add(v, cand)
		}
	}
}

// finish reconstructs the path from predecessor links.
func (r *runner) finish(end grid.Coord, cost int) {
	r.res.Found = true
	r.res.Cost = cost
	r.res.Path = grid.Backtrack(r.res.Prev, end, r.start)
}
