// Package gmath implements generic free functions and closest-point queries
// that work uniformly on scalars and on vectors of any dimension.
package gmath

import "github.com/unixpickle/gmath/num"

// NumberOps is implemented by containers of T that support the operations
// available to every number type.
//
// The V parameter should be the type implementing the interface.
type NumberOps[T num.Number, V any] interface {
	At(i int) T
	Min(v V) V
	Max(v V) V
	Clamp(min, max V) V
	Step(v V) V
}

// SignedNumberOps extends NumberOps with operations that only make sense for
// signed numbers.
type SignedNumberOps[T num.SignedNumber, V any] interface {
	NumberOps[T, V]

	Sign() V
	Abs() V
	Neg() V
}

// FloatOps extends SignedNumberOps with rounding, transcendental and
// interpolation functions for floating-point numbers.
type FloatOps[T num.Float, V any] interface {
	SignedNumberOps[T, V]

	DegToRad() V
	RadToDeg() V
	Floor() V
	Ceil() V
	Round() V
	Trunc() V
	Frac() V
	Approx(v V, eps T) bool
	Sqrt() V
	Powi(n int) V
	Powf(e T) V
	Lerp(v V, t T) V
	Smoothstep(v V, t T) V
	Saturate() V
	Sin() V
	Cos() V
	Tan() V
	Asin() V
	Acos() V
	Atan() V
	Exp() V
	Log() V
}

// VecN is implemented by fixed-dimension vectors of T.
type VecN[T num.Number, V any] interface {
	Dim() int
	At(i int) T
	Add(v V) V
	Sub(v V) V
	Mul(v V) V
	Div(v V) V
	Scale(s T) V
	DivScalar(s T) V

	// Splat creates a vector of the same type with every component set to x.
	Splat(x T) V

	Dot(v V) T
}

// VecFloatOps is implemented by floating-point vectors.
type VecFloatOps[T num.Float, V any] interface {
	FloatOps[T, V]
	VecN[T, V]

	Mag2() T
	Mag() T
	Length() T
	Normalize() V
	Dist(v V) T
	Distance(v V) T
	Dist2(v V) T
}

// PointTransform is implemented by invertible transformations of points V.
//
// The M parameter should be the type implementing the interface.
type PointTransform[V, M any] interface {
	Inverse() M
	TransformPoint(p V) V
}
