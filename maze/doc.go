// Package maze generates perfect mazes on a grid.Grid with randomized
// Kruskal over a thick-wall encoding.
//
// Layout:
//
//   - Cells with an odd row and an odd column are rooms.
//   - Cells with an even row or an even column are walls; corner junctions
//     (both even) stay walls for good, the others are removal candidates.
//   - The start and end nodes are never walled.
//
// Candidates are shuffled uniformly with the injected *rand.Rand and taken
// one by one; a candidate is knocked down only when the rooms on either side
// belong to different components, which are then merged with a
// disjoint.Set. The passages therefore never contain a cycle.
//
// An endpoint lying between two rooms is treated as an already open passage.
// An endpoint on a corner junction touches up to four candidates, each of
// which would join it to two rooms at once. Those candidates are settled
// before the shuffled pass: among the loop-free ways to open them, one that
// leaves the whole board reachable is drawn at random. On any board with at
// least two rows and two columns the passages form a single spanning tree.
//
// Usage:
//
//	g, _ := grid.New(25, 50)
//	if _, err := maze.Generate(g, maze.WithSeed(42)); err != nil {
//	    // grid.ErrNilGrid or ErrOptionViolation
//	}
//
// Complexity: O(V·α(V)) after an O(V) shuffle, V = rows·cols, plus at most
// 2^8 O(V) trials for the corner-endpoint walls.
package maze
