// Package enumerate walks combinatorial objects in a fixed order.
package enumerate

import "golang.org/x/exp/constraints"

// NextPermutation rearranges v into the next permutation in lexicographic
// order and returns true. When v is already the last permutation (including
// empty and single-element slices) it returns false and leaves v unchanged.
//
// Starting from a sorted slice, repeated calls visit every distinct
// permutation exactly once.
func NextPermutation[T constraints.Ordered](v []T) bool {
	// largest i with v[i] < v[i+1]
	i := len(v) - 2
	for i >= 0 && !(v[i] < v[i+1]) {
		i--
	}
	if i < 0 {
		return false
	}
	// largest j with v[i] < v[j]
	j := len(v) - 1
	for !(v[i] < v[j]) {
		j--
	}
	v[i], v[j] = v[j], v[i]
	for l, r := i+1, len(v)-1; l < r; l, r = l+1, r-1 {
		v[l], v[r] = v[r], v[l]
	}

	return true
}
