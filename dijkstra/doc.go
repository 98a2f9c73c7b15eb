// Package dijkstra provides Dijkstra's minimum-cost search on a grid.Grid
// whose nodes carry positive entry weights.
//
// Overview:
//
//   - Dijkstra expands the frontier node with the smallest tentative distance,
//     relaxing its neighbors (down, right, up, left; never walls or the start).
//   - Entering a node costs its Weight, so a route's cost is the sum of the
//     weights of the nodes it enters, end node included.
//   - The search stops the instant the end node is discovered as a neighbor.
//     Because nodes are expanded in non-decreasing distance, the first
//     expanded neighbor of the end yields the minimum cost.
//
// Frontier strategies:
//
//   - FrontierHeap (default): binary min-heap from github.com/zyedidia/generic/heap,
//     keyed by (distance, insertion order).
//   - FrontierScan: the whole frontier is scanned on every pop and the first
//     entry with the strictly smallest distance wins.
//
// Both strategies break ties in first-found order, so they produce identical
// journeys, paths and costs. With every weight equal to 1 the result matches
// bfs.BFS exactly.
//
// Performance and complexity (V = rows·cols):
//
//   - Time:  O(V log V) with FrontierHeap, O(V²) with FrontierScan.
//   - Space: O(V) for distances, predecessors and the frontier.
//
// Error handling (sentinel errors):
//
//   - grid.ErrNilGrid:          nil grid.
//   - grid.ErrOutOfBounds:      start outside the grid.
//   - grid.ErrInvalidGridState: broken endpoint invariants.
//   - ErrOptionViolation:       unknown frontier or negative MaxVisits.
//
// API reference:
//
//	func Dijkstra(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error)
package dijkstra
