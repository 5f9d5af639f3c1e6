// Package flow solves maximum-flow problems on a residual graph with integer
// vertex IDs, using the Ford–Fulkerson method with depth-first augmenting
// searches.
//
// # Model
//
// Vertices are numbered 1..size; index 0 is reserved and never used. Every
// call to AddEdge stores two arcs:
//
//	src ──cap──▶ dst   forward arc, capacity as requested
//	dst ───0───▶ src   reverse arc, records how much flow can be undone
//
// Each arc keeps the index of its partner inside the partner's adjacency
// list, so pushing flow is two slice writes and no pointers are shared.
//
// # Algorithm
//
// Solve repeats rounds until one pushes nothing:
//
//   - clear the visited buffer (allocated once in New);
//   - DFS from the source with an Unbounded bottleneck, skipping visited
//     vertices and zero-capacity arcs, clamping the bottleneck at each arc;
//   - on the way back, subtract the pushed amount from each forward arc and
//     add it to the reverse arc.
//
// Arcs are explored in insertion order, which makes the result and the final
// residual state deterministic.
//
//	Time:   O(E · F), F = returned flow.
//	Memory: O(V + E).
//
// The residual graph is not reset between calls: Solve on an exhausted graph
// returns only the additional flow still available, which is 0 when the same
// source and sink are solved twice.
//
// # Options
//
//	mf := flow.New(6,
//	    flow.WithVerbose(),                 // log each augmenting round
//	    flow.WithLogger(logrus.New()),      // where Verbose output goes
//	    flow.WithIterativeSearch(),         // explicit stack instead of recursion
//	)
//
// # Errors
//
// Preconditions are not reported as returned errors. Violations panic with:
//
//	ErrVertexOutOfRange - a vertex outside [1, Size()].
//	ErrSameEndpoints    - Solve(v, v).
//	ErrNegativeSize     - New with size < 0.
//
// Vertex IDs are the caller's business; see package unionfind for a way to
// derive them from groups of merged vertices.
package flow
