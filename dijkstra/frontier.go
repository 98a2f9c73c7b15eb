package dijkstra

import (
	"github.com/zyedidia/generic/heap"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// entry is a frontier item. dist is the priority recorded when the node was
// added; seq is the insertion order used to break ties.
type entry struct {
	at   grid.Coord
	dist int
	seq  int
}

// frontier is the set of discovered but not yet expanded nodes.
type frontier interface {
	push(e entry)
	// pop removes the entry with the smallest dist, earliest seq first.
	pop() (entry, bool)
}

// newFrontier returns the implementation selected by f.
func newFrontier(f Frontier, capHint int) frontier {
	if f == FrontierScan {
		return &scanFrontier{items: make([]entry, 0, capHint)}
	}
	return &heapFrontier{h: heap.New[entry](func(a, b entry) bool {
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		return a.seq < b.seq
	})}
}

// heapFrontier keeps entries in a binary min-heap.
type heapFrontier struct {
	h *heap.Heap[entry]
}

func (f *heapFrontier) push(e entry) { f.h.Push(e) }

func (f *heapFrontier) pop() (entry, bool) { return f.h.Pop() }

// scanFrontier keeps entries in insertion order and scans all of them on pop.
// A strict less-than comparison keeps the first-inserted entry among equals.
type scanFrontier struct {
	items []entry
}

func (f *scanFrontier) push(e entry) { f.items = append(f.items, e) }

func (f *scanFrontier) pop() (entry, bool) {
	if len(f.items) == 0 {
		return entry{}, false
	}
	mini := 0
	for i := 1; i < len(f.items); i++ {
		if f.items[i].dist < f.items[mini].dist {
			mini = i
		}
	}
	e := f.items[mini]
	f.items = append(f.items[:mini], f.items[mini+1:]...)
	return e, true
}
