package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/disjoint"
)

// TestFind_CreatesSingletons verifies find-or-create semantics.
func TestFind_CreatesSingletons(t *testing.T) {
	s := disjoint.New[string]()
	assert.False(t, s.Has("a"))
	assert.Equal(t, "a", s.Find("a"))
	assert.True(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, s.Size("a"))
}

// TestUnion_MergesAndCounts covers merging, idempotent unions and sizes.
func TestUnion_MergesAndCounts(t *testing.T) {
	s := disjoint.New[int]()
	for i := 0; i < 6; i++ {
		s.Find(i)
	}
	assert.Equal(t, 6, s.Count())

	s.Union(0, 1)
	s.Union(2, 3)
	assert.True(t, s.Distinct(0, 2))
	assert.False(t, s.Distinct(0, 1))

	root := s.Union(1, 3)
	assert.Equal(t, root, s.Find(0))
	assert.Equal(t, root, s.Find(2))
	assert.Equal(t, 4, s.Size(3))
	assert.Equal(t, 3, s.Count())

	// already joined: no change
	assert.Equal(t, root, s.Union(0, 2))
	assert.Equal(t, 3, s.Count())
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, s.Members(1))
	assert.ElementsMatch(t, []int{5}, s.Members(5))
}

// TestUnion_CreatesUnknownKeys shows that Union also creates missing elements.
func TestUnion_CreatesUnknownKeys(t *testing.T) {
	s := disjoint.New[string]()
	s.Union("x", "y")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.Distinct("x", "y"))
}

// TestChain_Connectivity builds a long chain and checks every pair is joined.
func TestChain_Connectivity(t *testing.T) {
	const n = 500
	s := disjoint.New[int]()
	for i := 1; i < n; i++ {
		s.Union(i-1, i)
	}
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, n, s.Size(0))
	for i := 0; i < n; i += 37 {
		assert.False(t, s.Distinct(0, i))
	}
}

// TestClone_Independent checks that unions on a copy leave the source intact.
func TestClone_Independent(t *testing.T) {
	s := disjoint.New[int]()
	s.Union(1, 2)
	s.Find(3)

	cp := s.Clone()
	assert.Equal(t, s.Count(), cp.Count())
	assert.False(t, cp.Distinct(1, 2))

	cp.Union(2, 3)
	cp.Find(4)
	assert.Equal(t, 2, cp.Count())
	assert.Equal(t, 3, cp.Size(1))

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Distinct(1, 3))
	assert.False(t, s.Has(4))
}
