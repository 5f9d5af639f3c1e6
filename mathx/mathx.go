// Package mathx holds the integer helpers that come up in nearly every
// contest: gcd/lcm, modular exponentiation and digit sums.
//
// min and max are Go builtins and are not repeated here.
package mathx

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrBadBase is the panic value of SumDigits for a base below two.
	ErrBadBase = errors.New("mathx: base must be at least two")

	// ErrNegativeOperand is the panic value of PowMod for a negative base or exponent.
	ErrNegativeOperand = errors.New("mathx: negative operand")
)

// GCD returns the greatest common divisor of a and b (Euclid).
// GCD(0, 0) is 0.
func GCD[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b. Dividing before
// multiplying keeps the intermediate value at the size of the result.
// LCM with a zero argument is 0.
func LCM[T constraints.Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

// Abs returns |a|.
func Abs[T constraints.Signed | constraints.Float](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// SumDigits returns the sum of the digits of |n| written in base.
// It panics with ErrBadBase when base < 2.
func SumDigits[T constraints.Signed](n, base T) T {
	if base < 2 {
		panic(fmt.Errorf("%w: %d", ErrBadBase, base))
	}
	var sum T
	for n != 0 {
		d := n % base
		sum += Abs(d)
		n /= base
	}

	return sum
}

// PowMod returns base^exp mod m by repeated squaring.
// It panics with ErrNegativeOperand when base or exp is negative.
// The product of two values below m must fit in T.
func PowMod[T constraints.Integer](base, exp, m T) T {
	if base < 0 || exp < 0 {
		panic(fmt.Errorf("%w: base=%d exp=%d", ErrNegativeOperand, base, exp))
	}
	b := base % m
	pow := 1 % m
	for exp > 0 {
		if exp&1 == 1 {
			pow = pow * b % m
		}
		b = b * b % m
		exp >>= 1
	}

	return pow
}
