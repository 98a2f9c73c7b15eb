package grid

import (
	"fmt"
	"math/rand"
)

// SetWall sets or clears the wall flag at c.
// Placing a wall on the start or end node returns ErrEndpointWall.
func (g *Grid) SetWall(c Coord, wall bool) error {
	n, err := g.At(c)
	if err != nil {
		return err
	}
	if wall && (n.IsStart || n.IsEnd) {
		return fmt.Errorf("%w: %v", ErrEndpointWall, c)
	}
	n.IsWall = wall
	return nil
}

// ToggleWall flips the wall flag at c. Endpoints are left untouched and
// reported with ErrEndpointWall.
func (g *Grid) ToggleWall(c Coord) error {
	n, err := g.At(c)
	if err != nil {
		return err
	}
	return g.SetWall(c, !n.IsWall)
}

// MoveStart clears every start flag and marks c as the start node.
// A wall at c is removed. Moving onto the end node returns ErrInvalidGridState.
func (g *Grid) MoveStart(c Coord) error {
	return g.moveEndpoint(c, func(n *Node) *bool { return &n.IsStart }, func(n *Node) bool { return n.IsEnd })
}

// MoveEnd clears every end flag and marks c as the end node.
// A wall at c is removed. Moving onto the start node returns ErrInvalidGridState.
func (g *Grid) MoveEnd(c Coord) error {
	return g.moveEndpoint(c, func(n *Node) *bool { return &n.IsEnd }, func(n *Node) bool { return n.IsStart })
}

func (g *Grid) moveEndpoint(c Coord, flag func(n *Node) *bool, other func(n *Node) bool) error {
	target, err := g.At(c)
	if err != nil {
		return err
	}
	if other(target) {
		return fmt.Errorf("%w: start and end cannot share %v", ErrInvalidGridState, c)
	}
	for i := range g.nodes {
		*flag(&g.nodes[i]) = false
	}
	*flag(target) = true
	target.IsWall = false
	return nil
}

// SetWeight sets the cost of entering c. Weights below 1 return ErrInvalidWeight.
func (g *Grid) SetWeight(c Coord, w int) error {
	if w < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, w)
	}
	n, err := g.At(c)
	if err != nil {
		return err
	}
	n.Weight = w
	return nil
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	g.Each(func(n *Node) { n.IsWall = false })
}

// ClearWeights resets every weight to 1.
func (g *Grid) ClearWeights() {
	g.Each(func(n *Node) { n.Weight = 1 })
}

// ClearMarks removes the visited and path presentation marks.
func (g *Grid) ClearMarks() {
	g.Each(func(n *Node) {
		n.IsVisited = false
		n.IsPath = false
	})
}

// RandomizeWeights gives each node weight w with probability p, drawing from rng.
// Nodes that miss the draw keep their current weight.
// Returns ErrInvalidWeight if w < 1 and an error if p is outside [0,1].
func (g *Grid) RandomizeWeights(rng *rand.Rand, p float64, w int) error {
	if w < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, w)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("grid: probability %v outside [0,1]", p)
	}
	g.Each(func(n *Node) {
		if rng.Float64() < p {
			n.Weight = w
		}
	})
	return nil
}
