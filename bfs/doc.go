// Package bfs provides breadth-first search over a grid.Grid, returning the
// discovery journey and the fewest-hops path between the start and end nodes.
//
// # What
//
//   - Explore nodes in non-decreasing hop distance from the start node.
//   - Neighbors are taken from grid.Neighbors: down, right, up, left, never a
//     wall and never the start node.
//   - Returns a Result containing:
//   - Journey: discovery order (start and end excluded)
//   - Path:    end-to-start predecessor chain (both endpoints excluded)
//   - Found, Hops and the Parent map
//   - Terminates the instant the end node is discovered as a neighbor, not
//     when it would be dequeued.
//
// # Why
//
//   - The first discovery of a node fixes its parent, so the reconstructed path
//     has the minimum hop count.
//   - The journey drives the visited-cell animation of the visualizer.
//
// # Determinism
//
//	Neighbor order is fixed and the queue is FIFO, so repeated runs on an
//	unchanged grid produce identical journeys and paths.
//
// Complexity (V = rows·cols)
//
//   - Time:   O(V)   (each node enqueued at most once, at most 4 neighbors each)
//   - Memory: O(V)   (queue, discovered set, Parent map)
//
// # Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//	    // grid.ErrNilGrid, grid.ErrOutOfBounds, grid.ErrInvalidGridState or ErrOptionViolation
//	}
//	if !res.Found {
//	    // no solution: render the journey only
//	}
//
// # Options
//
//   - DefaultOptions(): no-op hook, no visit limit.
//   - WithOnVisit(fn):  hook for every journey entry.
//   - WithMaxVisits(n): stop after n journey entries (n > 0), 0 = unlimited.
package bfs
