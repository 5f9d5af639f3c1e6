// Package search provides binary-search bounds over a half-open range of a
// sorted slice.
package search

import "golang.org/x/exp/constraints"

// LowerBound returns the first index i in [l, r) with v[i] >= x, or r when
// there is none. v[l:r] must be sorted ascending. l >= r returns l.
//
// Complexity: O(log(r-l)).
func LowerBound[T constraints.Ordered](v []T, l, r int, x T) int {
	for l < r {
		m := int(uint(l+r) >> 1)
		if v[m] < x {
			l = m + 1
		} else {
			r = m
		}
	}

	return l
}

// UpperBound returns the first index i in [l, r) with v[i] > x, or r when
// there is none. Same preconditions as LowerBound.
func UpperBound[T constraints.Ordered](v []T, l, r int, x T) int {
	for l < r {
		m := int(uint(l+r) >> 1)
		if v[m] <= x {
			l = m + 1
		} else {
			r = m
		}
	}

	return l
}

// EqualRange returns the half-open index range of elements equal to x.
func EqualRange[T constraints.Ordered](v []T, l, r int, x T) (int, int) {
	lo := LowerBound(v, l, r, x)
	return lo, UpperBound(v, lo, r, x)
}
