package dijkstra_test

import (
	"fmt"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/dijkstra"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// ExampleDijkstra routes around a row of heavy nodes.
// Scenario (weights shown, S and E cost 1):
//
//	S 1 1
//	9 9 1
//	1 1 E
//
// Going down first would cost 9; the cheaper route follows the top row.
func ExampleDijkstra() {
	start := grid.Coord{Row: 0, Col: 0}
	g, _ := grid.New(3, 3, grid.WithStart(start), grid.WithEnd(grid.Coord{Row: 2, Col: 2}))
	_ = g.SetWeight(grid.Coord{Row: 1, Col: 0}, 9)
	_ = g.SetWeight(grid.Coord{Row: 1, Col: 1}, 9)

	res, err := dijkstra.Dijkstra(g, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("journey:", res.Journey)
	fmt.Println("path:", res.Path)
	fmt.Println("cost:", res.Cost)
	// Output:
	// journey: [1-0 0-1 1-1 0-2 1-2]
	// path: [1-2 0-2 0-1]
	// cost: 4
}

// ExampleWithFrontier shows that both frontier strategies agree.
func ExampleWithFrontier() {
	start := grid.Coord{Row: 0, Col: 0}
	g, _ := grid.New(4, 4, grid.WithStart(start), grid.WithEnd(grid.Coord{Row: 3, Col: 3}))
	_ = g.SetWeight(grid.Coord{Row: 1, Col: 1}, 4)
	_ = g.SetWeight(grid.Coord{Row: 2, Col: 2}, 4)

	for _, f := range []dijkstra.Frontier{dijkstra.FrontierHeap, dijkstra.FrontierScan} {
		res, _ := dijkstra.Dijkstra(g, start, dijkstra.WithFrontier(f))
		fmt.Println(f, res.Cost, len(res.Journey))
	}
	// Output:
	// heap 6 14
	// scan 6 14
}
