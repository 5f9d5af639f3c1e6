package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpsnip/flow"
)

// edgeSpec is one AddEdge call.
type edgeSpec struct {
	from, to int
	cap      flow.Capacity
}

// arcRef locates the forward arc created by one AddEdge call.
type arcRef struct {
	from, index int
	cap         flow.Capacity
}

// build creates a MaxFlow of the given size and records where each forward
// arc landed so that tests can follow it after Solve.
func build(size int, edges []edgeSpec, opts ...flow.Option) (*flow.MaxFlow, []arcRef) {
	mf := flow.New(size, opts...)
	refs := make([]arcRef, 0, len(edges))
	for _, e := range edges {
		refs = append(refs, arcRef{from: e.from, index: len(mf.Arcs(e.from)), cap: e.cap})
		mf.AddEdge(e.from, e.to, e.cap)
	}

	return mf, refs
}

// assertConservation verifies, for every AddEdge pair, that
//
//	forward.Cap + reverse.Cap == original capacity
//
// and that both arcs still point at each other.
func assertConservation(t *testing.T, mf *flow.MaxFlow, refs []arcRef) {
	t.Helper()
	for _, r := range refs {
		fwd := mf.Arcs(r.from)[r.index]
		rev := mf.Arcs(fwd.To)[fwd.Rev]
		require.Equal(t, r.from, rev.To, "reverse of %d→%d points elsewhere", r.from, fwd.To)
		require.Equal(t, r.index, rev.Rev, "reverse of %d→%d lost its partner", r.from, fwd.To)
		require.Equal(t, r.cap, fwd.Cap+rev.Cap, "capacity not conserved on %d→%d", r.from, fwd.To)
	}
}

// randomSpecs draws a directed network on 1..n where each ordered pair gets
// an arc with probability p and a capacity in [0, maxCap].
func randomSpecs(n int, p float64, maxCap int, seed int64) []edgeSpec {
	r := rand.New(rand.NewSource(seed))
	var edges []edgeSpec
	for u := 1; u <= n; u++ {
		for v := 1; v <= n; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			edges = append(edges, edgeSpec{u, v, flow.Capacity(r.Intn(maxCap + 1))})
		}
	}

	return edges
}

// cutCapacity sums the original capacity of arcs leaving the set of vertices
// reachable from source in the residual graph.
func cutCapacity(mf *flow.MaxFlow, source int, refs []arcRef) flow.Capacity {
	side := make([]bool, mf.Size()+1)
	side[source] = true
	queue := []int{source}
	for i := 0; i < len(queue); i++ {
		for _, e := range mf.Arcs(queue[i]) {
			if e.Cap > 0 && !side[e.To] {
				side[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	var total flow.Capacity
	for _, r := range refs {
		to := mf.Arcs(r.from)[r.index].To
		if side[r.from] && !side[to] {
			total += r.cap
		}
	}

	return total
}
