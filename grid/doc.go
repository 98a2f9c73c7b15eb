// Package grid treats a rectangular board of cells as a graph for the
// pathfinding packages (bfs, dfs, dijkstra) and the maze generator.
//
// What:
//
//   - Grid owns a rows×cols matrix of Nodes stored in row-major order.
//   - Each Node carries wall, start, end and weight attributes plus
//     presentation-only visited/path marks.
//   - Neighbors(c) yields the down, right, up, left neighbors of c that are
//     neither walls nor the start node.
//   - Editing operations keep exactly one start and one end node.
//
// Why:
//
//   - Node identity is a Coord value, so predecessor and distance maps need no
//     string keys.
//   - The grid is passed explicitly to every algorithm; there is no shared
//     global board.
//
// Complexity:
//
//   - Neighbors, At, Node:       O(1).
//   - Validate, Start, End:      O(rows·cols).
//   - New, Clone, Clear*:        O(rows·cols) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:        rows or cols below 1.
//   - ErrOutOfBounds:      coordinate outside the grid.
//   - ErrInvalidGridState: missing/duplicate endpoints, or start and end overlap.
//   - ErrEndpointWall:     wall placed on an endpoint.
//   - ErrInvalidWeight:    weight below 1.
//   - ErrNilGrid:          nil grid passed to an algorithm.
package grid
