// Package pathfinding is a grid pathfinding engine: a rectangular board of
// weighted nodes, three searches over it, a maze generator and a headless
// visualizer that turns search results into timed playback.
//
// # What lives where
//
//	grid/          Coord, Node and Grid: endpoints, walls, weights, marks
//	disjoint/      generic union-find with path compression and union by size
//	bfs/           breadth-first search, fewest hops
//	dfs/           depth-first search, any path
//	dijkstra/      weighted shortest path (heap or linear-scan frontier)
//	maze/          randomized Kruskal maze over the odd-indexed rooms
//	visualizer/    Session, playback schedule, ASCII and PNG rendering
//	cmd/pathviz/   command-line front end
//
// # Search contract
//
// Every search starts at the start node and walks the four orthogonal
// neighbors (down, right, up, left). The end is detected as soon as it is
// discovered as a neighbor. Results carry:
//
//	Journey   nodes in the order they were explored, start and end excluded
//	Path      end-to-start route, both endpoints excluded
//	Found     whether the end was reached
//
// A found result with an empty Path means the end is adjacent to the start.
//
// Quick example:
//
//	g, _ := grid.New(3, 3, grid.WithStart(grid.Coord{}), grid.WithEnd(grid.Coord{Row: 2, Col: 2}))
//	res, _ := bfs.BFS(g, grid.Coord{})
//	fmt.Println(res.Found, res.Path) // true [2-1 2-0 1-0]
package pathfinding
