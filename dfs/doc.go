// Package dfs implements depth-first search over a grid.Grid.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking,
//     using an explicit LIFO stack rather than recursion.
//   - Neighbors come from grid.Neighbors (down, right, up, left; walls and the
//     start node excluded) and are pushed in that order.
//   - The search ends the instant the end node is seen as a neighbor of the
//     node being expanded.
//
// DFS carries no shortest-path guarantee. By default the returned Path is
// the journey reversed, which reflects visit order and need not be an
// edge-connected route. WithPathMode(PathPredecessors) instead walks the
// parent links of the DFS tree, which always yields a connected route.
//
// Complexity:
//
//   - Time:   O(V) with V = rows·cols (each node expanded once, at most four pushes)
//   - Memory: O(V) for the stack, visited set and parent map.
//
// Options:
//
//   - WithPathMode(mode)   PathReverseJourney (default) or PathPredecessors.
//   - WithOnVisit(fn)      hook for every journey entry.
//   - WithMaxVisits(n)     stop after n journey entries (n > 0), 0 = unlimited.
//
// Errors:
//
//   - grid.ErrNilGrid          if g is nil.
//   - grid.ErrOutOfBounds      if start lies outside the grid.
//   - grid.ErrInvalidGridState if the endpoint invariants are broken.
//   - ErrOptionViolation       for an invalid option.
package dfs
