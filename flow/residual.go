package flow

import "fmt"

// MaxFlow owns a residual graph over vertices 1..size and solves maximum-flow
// queries on it. Slot 0 of every vertex-indexed slice is reserved.
//
// The graph is built with AddEdge and then consumed by one or more Solve
// calls. It is not safe for concurrent use.
type MaxFlow struct {
	size    int
	graph   [][]Edge
	visited []bool
	stack   []frame
	opts    Options
}

// New returns an empty residual graph with vertices numbered 1..size.
// It panics with ErrNegativeSize when size < 0.
func New(size int, opts ...Option) *MaxFlow {
	if size < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeSize, size))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &MaxFlow{
		size:    size,
		graph:   make([][]Edge, size+1),
		visited: make([]bool, size+1),
		opts:    o,
	}
}

// Size reports the number of usable vertices.
func (mf *MaxFlow) Size() int { return mf.size }

// AddEdge inserts a forward arc src→dst with the given capacity and its reverse
// arc dst→src with capacity 0. A zero capacity is allowed; such a pair never
// carries flow.
//
// Both vertices must lie in [1, Size()]; otherwise AddEdge panics with
// ErrVertexOutOfRange.
func (mf *MaxFlow) AddEdge(src, dst int, capacity Capacity) {
	mf.mustVertex(src)
	mf.mustVertex(dst)

	ls := len(mf.graph[src])
	ld := len(mf.graph[dst])
	if src == dst {
		// the reverse arc lands right after the forward one
		ld++
	}
	mf.graph[src] = append(mf.graph[src], Edge{To: dst, Cap: capacity, Rev: ld})
	mf.graph[dst] = append(mf.graph[dst], Edge{To: src, Cap: 0, Rev: ls})
}

// Arcs returns a copy of v's adjacency list in insertion order.
func (mf *MaxFlow) Arcs(v int) []Edge {
	mf.mustVertex(v)
	out := make([]Edge, len(mf.graph[v]))
	copy(out, mf.graph[v])

	return out
}

// Reachable reports whether to can be reached from from along arcs that
// still have positive residual capacity. The graph is not modified.
func (mf *MaxFlow) Reachable(from, to int) bool {
	mf.mustVertex(from)
	mf.mustVertex(to)
	if from == to {
		return true
	}

	seen := make([]bool, mf.size+1)
	seen[from] = true
	queue := []int{from}
	for i := 0; i < len(queue); i++ {
		for _, e := range mf.graph[queue[i]] {
			if e.Cap == 0 || seen[e.To] {
				continue
			}
			if e.To == to {
				return true
			}
			seen[e.To] = true
			queue = append(queue, e.To)
		}
	}

	return false
}

// mustVertex panics unless v is a usable vertex.
func (mf *MaxFlow) mustVertex(v int) {
	if v < 1 || v > mf.size {
		panic(outOfRange(v, mf.size))
	}
}
