// Package cpsnip is a shelf of small, independent algorithm snippets for
// competitive programming. Each subpackage stands alone and can be lifted
// into a single-file submission.
//
//	flow/       — maximum flow on a residual graph (Ford–Fulkerson, DFS)
//	unionfind/  — disjoint sets with union by size and dense group labels
//	search/     — lower / upper bound on a sorted range
//	cumsum/     — 1-D and 2-D prefix sums
//	enumerate/  — next lexicographic permutation
//	mathx/      — gcd, lcm, powmod, digit sums
//	strutil/    — palindromes and joining
//
// All graph-shaped snippets number vertices 1..n and keep index 0 unused.
//
//	go get github.com/katalvlaran/cpsnip
package cpsnip
