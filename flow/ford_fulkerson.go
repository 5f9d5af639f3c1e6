package flow

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Solve computes how much flow can still be pushed from source to sink
// using the Ford–Fulkerson method with depth-first augmenting searches.
//
// The residual graph is mutated in place. A second call on the same graph
// returns only the additional flow available from the current residual
// state, so Solve(s, t) followed by Solve(s, t) yields 0 the second time.
//
// Steps:
//  1. Check both endpoints lie in [1, Size()] and differ (panic otherwise).
//  2. Clear the visited buffer (no reallocation).
//  3. Search from source with an Unbounded bottleneck.
//  4. Stop when the search pushes nothing; otherwise accumulate and repeat.
//
// Complexity:
//
//	Time:   O(E · F) where F is the returned flow.
//	Memory: O(V) for the visited buffer and the search stack.
func (mf *MaxFlow) Solve(source, sink int) Capacity {
	mf.mustVertex(source)
	mf.mustVertex(sink)
	if source == sink {
		panic(fmt.Errorf("%w: %d", ErrSameEndpoints, source))
	}

	var total Capacity
	for round := 1; ; round++ {
		clear(mf.visited)

		var pushed Capacity
		if mf.opts.Iterative {
			pushed = mf.augmentIterative(Unbounded, source, sink)
		} else {
			pushed = mf.augment(Unbounded, source, sink)
		}
		if pushed == 0 {
			break
		}
		total += pushed

		if mf.opts.Verbose {
			mf.opts.Logger.WithFields(logrus.Fields{
				"source": source,
				"sink":   sink,
				"round":  round,
				"pushed": pushed,
				"total":  total,
			}).Info("flow: augmented")
		}
	}

	if mf.opts.Verbose {
		mf.opts.Logger.WithFields(logrus.Fields{
			"source": source,
			"sink":   sink,
			"total":  total,
		}).Info("flow: no augmenting path left")
	}

	return total
}

// augment is the recursive search. pushable is the bottleneck accumulated on
// the way into vertex; the return value is the flow actually pushed out of it.
//
// After a successful branch the scan carries on over the remaining arcs of
// vertex. Because goal is marked visited on arrival, at most one branch per
// round can reach it, which keeps the returned amount within pushable.
func (mf *MaxFlow) augment(pushable Capacity, vertex, goal int) Capacity {
	mf.visited[vertex] = true
	if vertex == goal {
		return pushable
	}

	var total Capacity
	for i := range mf.graph[vertex] {
		e := mf.graph[vertex][i]
		if mf.visited[e.To] || e.Cap == 0 {
			continue
		}
		pushed := mf.augment(min(pushable, e.Cap), e.To, goal)
		if pushed == 0 {
			continue
		}
		mf.push(vertex, i, pushed)
		total += pushed
	}

	return total
}

// frame is one pending vertex of the iterative search.
type frame struct {
	vertex   int
	pushable Capacity
	next     int // next arc to scan
	arc      int // arc whose child frame is on top of this one
	total    Capacity
}

// augmentIterative performs exactly the traversal of augment, arc for arc,
// with an explicit stack so that recursion depth does not grow with the
// length of the augmenting path.
func (mf *MaxFlow) augmentIterative(pushable Capacity, source, goal int) Capacity {
	mf.visited[source] = true
	if source == goal {
		return pushable
	}

	stack := append(mf.stack[:0], frame{vertex: source, pushable: pushable})
	defer func() { mf.stack = stack[:0] }()

	for {
		top := &stack[len(stack)-1]

		descended := false
		for top.next < len(mf.graph[top.vertex]) {
			i := top.next
			top.next++

			e := mf.graph[top.vertex][i]
			if mf.visited[e.To] || e.Cap == 0 {
				continue
			}
			bottleneck := min(top.pushable, e.Cap)
			if e.To == goal {
				// the goal returns its bottleneck immediately
				mf.visited[goal] = true
				mf.push(top.vertex, i, bottleneck)
				top.total += bottleneck
				continue
			}
			mf.visited[e.To] = true
			top.arc = i
			stack = append(stack, frame{vertex: e.To, pushable: bottleneck})
			descended = true
			break
		}
		if descended {
			continue
		}

		done := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return done.total
		}
		if done.total > 0 {
			parent := &stack[len(stack)-1]
			mf.push(parent.vertex, parent.arc, done.total)
			parent.total += done.total
		}
	}
}

// push moves amount units from arc (vertex, i) onto its reverse partner.
func (mf *MaxFlow) push(vertex, i int, amount Capacity) {
	e := &mf.graph[vertex][i]
	e.Cap -= amount
	mf.graph[e.To][e.Rev].Cap += amount
}
