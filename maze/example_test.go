package maze_test

import (
	"fmt"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/maze"
)

// ExampleGenerateStats carves a 5×5 board whose endpoints sit on the
// (0,0) and (4,4) corner junctions.
//
// The four rooms need three passages to form a tree, and each endpoint is
// opened through one adjacent wall, so five walls come down whatever the seed.
func ExampleGenerateStats() {
	g, _ := grid.New(5, 5)

	stats, err := maze.GenerateStats(g, maze.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rooms=%d candidates=%d removed=%d\n", stats.Rooms, stats.Candidates, stats.Removed)
	fmt.Println("center is wall:", g.Node(grid.Coord{Row: 2, Col: 2}).IsWall)
	// Output:
	// rooms=6 candidates=12 removed=5
	// center is wall: true
}
