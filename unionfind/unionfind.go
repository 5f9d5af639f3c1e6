package unionfind

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange indicates a vertex outside [1, size].
var ErrVertexOutOfRange = errors.New("unionfind: vertex out of range")

// UnionFind tracks a partition of 1..size. parents[v] == 0 marks a root.
type UnionFind struct {
	parents []int
	sizes   []int
}

// New returns size singleton groups. A negative size panics.
func New(size int) *UnionFind {
	if size < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrVertexOutOfRange, size))
	}
	uf := &UnionFind{
		parents: make([]int, size+1),
		sizes:   make([]int, size+1),
	}
	for i := range uf.sizes {
		uf.sizes[i] = 1
	}

	return uf
}

// Len reports the number of vertices.
func (uf *UnionFind) Len() int { return len(uf.parents) - 1 }

// Root returns the representative of u's group, halving the path on the way.
func (uf *UnionFind) Root(u int) int {
	uf.mustVertex(u)
	for uf.parents[u] != 0 {
		if gp := uf.parents[uf.parents[u]]; gp != 0 {
			uf.parents[u] = gp
		}
		u = uf.parents[u]
	}

	return u
}

// IsSame reports whether u and v belong to the same group.
func (uf *UnionFind) IsSame(u, v int) bool {
	return uf.Root(u) == uf.Root(v)
}

// Unite merges the groups of u and v and reports whether they were apart.
// The smaller group is attached under the larger one; on a tie u's root
// goes under v's root.
func (uf *UnionFind) Unite(u, v int) bool {
	ru, rv := uf.Root(u), uf.Root(v)
	if ru == rv {
		return false
	}
	if uf.sizes[ru] > uf.sizes[rv] {
		ru, rv = rv, ru
	}
	uf.parents[ru] = rv
	uf.sizes[rv] += uf.sizes[ru]

	return true
}

// GroupSize returns the number of vertices in u's group.
func (uf *UnionFind) GroupSize(u int) int {
	return uf.sizes[uf.Root(u)]
}

// Labels numbers the groups 1..count in order of their lowest vertex and
// returns, for every vertex, the number of its group. labels[0] is 0.
//
// Complexity: O(size · α(size)).
func (uf *UnionFind) Labels() (labels []int, count int) {
	n := uf.Len()
	labels = make([]int, n+1)
	byRoot := make([]int, n+1)
	for v := 1; v <= n; v++ {
		r := uf.Root(v)
		if byRoot[r] == 0 {
			count++
			byRoot[r] = count
		}
		labels[v] = byRoot[r]
	}

	return labels, count
}

func (uf *UnionFind) mustVertex(v int) {
	if v < 1 || v >= len(uf.parents) {
		panic(fmt.Errorf("%w: vertex %d not in [1, %d]", ErrVertexOutOfRange, v, uf.Len()))
	}
}
