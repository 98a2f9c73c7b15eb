package maze

import (
	"math"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/disjoint"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// builder holds the state of a single generation run.
type builder struct {
	g     *grid.Grid
	opts  Options
	sets  *disjoint.Set[grid.Coord]
	stats Stats
}

// Generate carves a maze into g in place and returns g.
//
// Cells with an even row or an even column become walls, except the start
// and end nodes; the remaining odd-odd cells are rooms. Walls that are not
// corner junctions (even row and even column) are candidates. Candidates
// next to an endpoint sitting on a corner junction are settled first; the
// rest are visited in a uniformly shuffled order and knocked down when the
// rooms on either side lie in different components. Weights are kept.
//
// Returns grid.ErrNilGrid for a nil grid and ErrOptionViolation for bad options.
func Generate(g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if _, err := GenerateStats(g, opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// GenerateStats is Generate, reporting what the run did.
func GenerateStats(g *grid.Grid, opts ...Option) (Stats, error) {
	if g == nil {
		return Stats{}, grid.ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Stats{}, o.err
	}

	b := &builder{g: g, opts: o, sets: disjoint.New[grid.Coord]()}
	candidates, passages := b.layout()
	for _, c := range passages {
		b.join(b.sets, c)
	}
	hubWalls, walls := b.split(candidates)
	for _, c := range b.pickHubWalls(hubWalls, walls) {
		b.knock(c)
	}
	b.carve(walls)

	return b.stats, nil
}

func lattice(c grid.Coord) bool { return c.Row%2 == 0 || c.Col%2 == 0 }

func corner(c grid.Coord) bool { return c.Row%2 == 0 && c.Col%2 == 0 }

// hub reports whether n is an endpoint on a corner junction.
func hub(n *grid.Node) bool {
	return n != nil && (n.IsStart || n.IsEnd) && corner(n.Coord())
}

// layout walls the lattice and registers every open cell as a singleton
// component. It returns the removable walls and the endpoints lying on the
// lattice between two rooms, which already act as open passages.
func (b *builder) layout() (candidates, passages []grid.Coord) {
	b.g.Each(func(n *grid.Node) {
		c := n.Coord()
		endpoint := n.IsStart || n.IsEnd
		switch {
		case endpoint:
			n.IsWall = false
			b.sets.Find(c)
			b.stats.Rooms++
			if lattice(c) && !corner(c) {
				passages = append(passages, c)
			}
		case lattice(c):
			n.IsWall = true
			if !corner(c) {
				candidates = append(candidates, c)
			}
		default:
			n.IsWall = false
			b.sets.Find(c)
			b.stats.Rooms++
		}
	})
	b.stats.Candidates = len(candidates)

	return candidates, passages
}

// split separates the candidates touching a corner endpoint from the plain
// walls, which only ever join two rooms.
func (b *builder) split(candidates []grid.Coord) (hubWalls, walls []grid.Coord) {
	for _, c := range candidates {
		touches := false
		for _, n := range b.g.Adjacent(c) {
			touches = touches || hub(n)
		}
		if touches {
			hubWalls = append(hubWalls, c)
		} else {
			walls = append(walls, c)
		}
	}
	return hubWalls, walls
}

// pickHubWalls decides which walls around corner endpoints come down. A
// corner endpoint touches up to four candidates, each joining it to two
// rooms, so a greedy pass can strand part of the board. Every subset that
// keeps the passages acyclic is scored by the components left once all plain
// walls are opened; one of the best subsets is drawn at random.
// At most eight walls qualify, so the search stays small.
func (b *builder) pickHubWalls(hubWalls, walls []grid.Coord) []grid.Coord {
	var best []int
	bestScore := math.MaxInt
	for mask := 0; mask < 1<<len(hubWalls); mask++ {
		s := b.sets.Clone()
		acyclic := true
		for i, c := range hubWalls {
			if mask&(1<<i) == 0 {
				continue
			}
			if !distinct(s, b.open(c)) {
				acyclic = false
				break
			}
			b.join(s, c)
		}
		if !acyclic {
			continue
		}
		for _, c := range walls {
			around := b.open(c)
			for i := 1; i < len(around); i++ {
				s.Union(around[0], around[i])
			}
		}

		switch score := s.Count(); {
		case score < bestScore:
			best, bestScore = []int{mask}, score
		case score == bestScore:
			best = append(best, mask)
		}
	}

	mask := best[b.opts.Rand.Intn(len(best))]
	var out []grid.Coord
	for i, c := range hubWalls {
		if mask&(1<<i) != 0 {
			out = append(out, c)
		}
	}
	return out
}

// carve runs the randomized Kruskal pass over the plain walls.
func (b *builder) carve(walls []grid.Coord) {
	b.opts.Rand.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})
	for i := len(walls) - 1; i >= 0; i-- {
		c := walls[i]
		if distinct(b.sets, b.open(c)) {
			b.knock(c)
		}
	}
}

// open returns the non-wall orthogonal neighbors of c.
func (b *builder) open(c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, 4)
	for _, n := range b.g.Adjacent(c) {
		if n != nil && !n.IsWall {
			out = append(out, n.Coord())
		}
	}
	return out
}

// join merges c with its open neighbors in s.
func (b *builder) join(s *disjoint.Set[grid.Coord], c grid.Coord) {
	for _, n := range b.open(c) {
		s.Union(c, n)
	}
}

// distinct reports whether cs holds at least two cells, all in different
// components of s. Opening a wall next to exactly such cells cannot close a
// loop.
func distinct(s *disjoint.Set[grid.Coord], cs []grid.Coord) bool {
	if len(cs) < 2 {
		return false
	}
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			if !s.Distinct(cs[i], cs[j]) {
				return false
			}
		}
	}
	return true
}

// knock opens the wall at c and merges it with its open neighbors.
func (b *builder) knock(c grid.Coord) {
	b.join(b.sets, c)
	b.g.Node(c).IsWall = false
	b.stats.Removed++
}
