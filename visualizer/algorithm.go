package visualizer

import (
	"fmt"
	"strings"
)

// Algorithm names a search the session can visualize.
type Algorithm int

const (
	// BFS is breadth-first search (fewest hops).
	BFS Algorithm = iota
	// DFS is depth-first search (no shortest-path guarantee).
	DFS
	// Dijkstra is minimum-cost search over node weights.
	Dijkstra
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra}

// String returns the lower-case algorithm name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Dijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// "dijkstras" is accepted as an alias of "dijkstra".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra", "dijkstras":
		return Dijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}
