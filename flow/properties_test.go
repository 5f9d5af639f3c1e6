package flow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpsnip/flow"
)

// TestRandomNetworks checks the solver's invariants on seeded random graphs.
func TestRandomNetworks(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 2 + int(seed%9)
		edges := randomSpecs(n, 0.35, 9, seed)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			mf, refs := build(n, edges)
			source, sink := 1, n

			var outOfSource, intoSink flow.Capacity
			for _, e := range edges {
				if e.from == source {
					outOfSource += e.cap
				}
				if e.to == sink {
					intoSink += e.cap
				}
			}
			reachable := mf.Reachable(source, sink)

			got := mf.Solve(source, sink)

			require.LessOrEqual(t, got, outOfSource)
			require.LessOrEqual(t, got, intoSink)
			if !reachable {
				require.Zero(t, got, "sink unreachable yet flow found")
			}
			assertConservation(t, mf, refs)
			require.False(t, mf.Reachable(source, sink), "augmenting path left behind")
			require.Equal(t, cutCapacity(mf, source, refs), got, "flow must equal the cut it leaves")
			require.Zero(t, mf.Solve(source, sink), "second solve must find nothing")
		})
	}
}

// TestIterativeMatchesRecursive compares both searches arc by arc.
func TestIterativeMatchesRecursive(t *testing.T) {
	for seed := int64(100); seed < 130; seed++ {
		n := 3 + int(seed%12)
		edges := randomSpecs(n, 0.3, 20, seed)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rec, _ := build(n, edges)
			itr, _ := build(n, edges, flow.WithIterativeSearch())

			// solve several pairs in sequence so residual state carries over
			pairs := [][2]int{{1, n}, {2, n - 1}, {n, 1}}
			for _, p := range pairs {
				if p[0] == p[1] {
					continue
				}
				require.Equal(t, rec.Solve(p[0], p[1]), itr.Solve(p[0], p[1]))
			}
			for v := 1; v <= n; v++ {
				require.Equal(t, rec.Arcs(v), itr.Arcs(v), "residual differs at vertex %d", v)
			}
		})
	}
}

// TestDeepChainIterative pushes one unit through a very long path.
func TestDeepChainIterative(t *testing.T) {
	const n = 200000
	mf := flow.New(n, flow.WithIterativeSearch())
	for v := 1; v < n; v++ {
		mf.AddEdge(v, v+1, 3)
	}
	require.Equal(t, flow.Capacity(3), mf.Solve(1, n))
	require.Zero(t, mf.Solve(1, n))
}

func TestReachable(t *testing.T) {
	mf, _ := build(4, []edgeSpec{{1, 2, 1}, {2, 3, 0}, {3, 4, 1}})
	require.True(t, mf.Reachable(1, 2))
	require.True(t, mf.Reachable(3, 3))
	require.False(t, mf.Reachable(1, 3), "zero-capacity arc blocks the path")
	require.False(t, mf.Reachable(2, 1), "reverse arcs start empty")
}
