// Package cumsum turns slices into prefix sums in place.
package cumsum

import "golang.org/x/exp/constraints"

// Number is any type prefix sums make sense for.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum1D replaces x[i] with x[0] + ... + x[i].
func Sum1D[T Number](x []T) {
	for i := 1; i < len(x); i++ {
		x[i] += x[i-1]
	}
}

// Sum2D replaces x[i][j] with the sum of the rectangle x[0..i][0..j].
// Rows must all have the length of x[0]. Empty input is left alone.
func Sum2D[T Number](x [][]T) {
	if len(x) == 0 || len(x[0]) == 0 {
		return
	}
	for _, row := range x {
		Sum1D(row)
	}
	for i := 1; i < len(x); i++ {
		for j := range x[i] {
			x[i][j] += x[i-1][j]
		}
	}
}

// Rect returns the sum of the original cells [r1, r2) × [c1, c2) given a
// matrix already processed by Sum2D.
func Rect[T Number](sums [][]T, r1, c1, r2, c2 int) T {
	if r1 >= r2 || c1 >= c2 {
		return 0
	}
	total := sums[r2-1][c2-1]
	if r1 > 0 {
		total -= sums[r1-1][c2-1]
	}
	if c1 > 0 {
		total -= sums[r2-1][c1-1]
	}
	if r1 > 0 && c1 > 0 {
		total += sums[r1-1][c1-1]
	}

	return total
}
