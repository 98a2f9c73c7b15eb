// Package disjoint provides a union-find (disjoint-set) forest keyed by any
// comparable type. The maze generator uses it to track which room cells are
// already joined by passages.
//
// Find creates singleton sets on first use, so callers never register keys up
// front. Roots are compressed on every Find and Union attaches the smaller
// component under the larger one.
//
// Complexity: O(α(n)) amortized per Find/Union. Memory: O(n).
package disjoint

// Set is a disjoint-set forest. The zero value is not usable; call New.
type Set[K comparable] struct {
	parent map[K]K
	size   map[K]int
	count  int
}

// New returns an empty forest.
func New[K comparable]() *Set[K] {
	return &Set[K]{
		parent: make(map[K]K),
		size:   make(map[K]int),
	}
}

// Find returns the representative of the set containing k, creating the
// singleton {k} if k has not been seen.
func (s *Set[K]) Find(k K) K {
	if _, ok := s.parent[k]; !ok {
		s.parent[k] = k
		s.size[k] = 1
		s.count++
		return k
	}
	root := k
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// path compression
	for k != root {
		next := s.parent[k]
		s.parent[k] = root
		k = next
	}
	return root
}

// Union merges the sets containing a and b and returns the merged root.
func (s *Set[K]) Union(a, b K) K {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		return ra
	}
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	delete(s.size, rb)
	s.count--
	return ra
}

// Distinct reports whether a and b belong to different sets.
func (s *Set[K]) Distinct(a, b K) bool {
	return s.Find(a) != s.Find(b)
}

// Has reports whether k has been added to the forest.
func (s *Set[K]) Has(k K) bool {
	_, ok := s.parent[k]
	return ok
}

// Len returns the number of elements.
func (s *Set[K]) Len() int { return len(s.parent) }

// Count returns the number of disjoint sets.
func (s *Set[K]) Count() int { return s.count }

// Size returns the number of elements in the set containing k.
func (s *Set[K]) Size(k K) int {
	return s.size[s.Find(k)]
}

// Members returns every element of the set containing k, in no particular order.
// Complexity: O(n).
func (s *Set[K]) Members(k K) []K {
	root := s.Find(k)
	out := make([]K, 0, s.size[root])
	for x := range s.parent {
		if s.Find(x) == root {
			out = append(out, x)
		}
	}
	return out
}

// Clone returns an independent copy of the forest.
// Complexity: O(n).
func (s *Set[K]) Clone() *Set[K] {
	out := &Set[K]{
		parent: make(map[K]K, len(s.parent)),
		size:   make(map[K]int, len(s.size)),
		count:  s.count,
	}
	for k, p := range s.parent {
		out.parent[k] = p
	}
	for k, n := range s.size {
		out.size[k] = n
	}
	return out
}
