// Package strutil formats and inspects sequences for contest output.
package strutil

import (
	"fmt"
	"strings"
)

// IsPalindrome reports whether x reads the same in both directions.
// Empty and single-element slices are palindromes.
func IsPalindrome[T comparable](x []T) bool {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		if x[i] != x[j] {
			return false
		}
	}

	return true
}

// Join formats every item with fmt.Sprint and concatenates them with sep.
func Join[T any](items []T, sep string) string {
	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, it)
	}

	return sb.String()
}
