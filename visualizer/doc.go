// Package visualizer is the headless counterpart of the interactive
// pathfinding board.
//
// A Session owns one grid.Grid and serializes access to it. Edits (walls,
// endpoints, weights, mazes, reset, clear) are rejected with ErrBusy while
// a visualization is in flight, that is between Visualize and Finish.
//
// Visualize runs BFS, DFS or Dijkstra, marks the result on the board and
// returns a Run carrying a UUID, the journey, the path and a Schedule of
// timed presentation steps:
//
//	journey step i             at i·10ms
//	end node → path            at T = len(journey)·10ms
//	path step j                at T + j·50ms
//	start node → path          at T + len(path)·50ms
//
// Playback is left to the caller; the schedule is plain data.
//
// Rendering: RenderASCII draws the board with one glyph per node, Image
// exposes it as an image.Image and WritePNG encodes it.
package visualizer
