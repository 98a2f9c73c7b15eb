package grid

// Backtrack follows predecessor links from the node preceding `from` back
// toward start. The result runs end-to-start and excludes both `from` and start,
// which is the path shape every search returns.
//
// Walking stops early if a link is missing, so a partial predecessor map never loops.
func Backtrack(prev map[Coord]Coord, from, start Coord) []Coord {
	path := []Coord{}
	cur, ok := prev[from]
	for ok && cur != start {
		path = append(path, cur)
		cur, ok = prev[cur]
		if len(path) > len(prev) {
			break
		}
	}
	return path
}

// Reverse returns a reversed copy of cs.
func Reverse(cs []Coord) []Coord {
	out := make([]Coord, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

// Cost sums the weights of the path nodes plus the end node. For a Dijkstra
// result this equals the reported distance of the end node.
func (g *Grid) Cost(path []Coord, end Coord) int {
	total := 0
	for _, c := range path {
		if n := g.Node(c); n != nil {
			total += n.Weight
		}
	}
	if n := g.Node(end); n != nil {
		total += n.Weight
	}
	return total
}
