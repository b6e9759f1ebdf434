// Package num classifies scalar types into capability tiers and implements
// the scalar half of every operation in gmath.
package num

import "golang.org/x/exp/constraints"

// Number is any scalar closed under + - * / with exact equality.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is a Number which supports negation.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// Integer is a whole-number scalar.
type Integer interface {
	constraints.Integer
}

// Float is a scalar with fractional and transcendental operations.
type Float interface {
	constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// MinusOne returns -One[T]().
func MinusOne[T SignedNumber]() T {
	return -1
}

// Min returns the smaller of a and b.
//
// If either argument is NaN, the result is NaN.
func Min[T Number](a, b T) T {
	if a < b || a != a {
		return a
	}
	return b
}

// Max returns the larger of a and b.
//
// If either argument is NaN, the result is NaN.
func Max[T Number](a, b T) T {
	if a > b || a != a {
		return a
	}
	return b
}

// Clamp restricts x to the range [min, max].
// A NaN x stays NaN.
func Clamp[T Number](x, min, max T) T {
	return Min(Max(x, min), max)
}

// Step returns 1 if a > b, or 0 otherwise.
func Step[T Number](a, b T) T {
	if a > b {
		return 1
	}
	return 0
}

// Abs returns the absolute value of x.
//
// For unsigned types this is the identity.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1 for negative x, 1 for positive x, and x itself otherwise,
// so that zeros keep their sign and NaN stays NaN.
func Sign[T Number](x T) T {
	if x > 0 {
		return 1
	} else if x < 0 {
		var zero T
		return zero - 1
	}
	return x
}

// Approx checks if |a - b| <= eps.
//
// The difference is computed in T, so unsigned and 64-bit integers are
// compared exactly.
func Approx[T Number](a, b, eps T) bool {
	if a >= b {
		return a-b <= eps
	}
	return b-a <= eps
}

// Lerp linearly interpolates from e0 to e1 by t.
func Lerp[T Number](e0, e1, t T) T {
	return e0 + t*(e1-e0)
}
