package gmath

import (
	"fmt"
	"math"

	"github.com/unixpickle/gmath/num"
)

// A Scalar is a one-dimensional vector.
//
// It allows the functions in this package to be used on plain numbers.
type Scalar[T num.Number] struct {
	X T
}

// S wraps a number in a Scalar.
func S[T num.Number](x T) Scalar[T] {
	return Scalar[T]{X: x}
}

// Dim returns 1.
func (s Scalar[T]) Dim() int {
	return 1
}

// At returns s.X.
//
// Panics if i is not 0.
func (s Scalar[T]) At(i int) T {
	if i != 0 {
		panic(fmt.Sprintf("index %d out of range for Scalar", i))
	}
	return s.X
}

func (s Scalar[T]) String() string {
	return fmt.Sprint(s.X)
}

func (s Scalar[T]) Add(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: s.X + s1.X}
}

func (s Scalar[T]) Sub(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: s.X - s1.X}
}

func (s Scalar[T]) Mul(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: s.X * s1.X}
}

func (s Scalar[T]) Div(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: s.X / s1.X}
}

func (s Scalar[T]) Scale(x T) Scalar[T] {
	return Scalar[T]{X: s.X * x}
}

func (s Scalar[T]) DivScalar(x T) Scalar[T] {
	return Scalar[T]{X: s.X / x}
}

func (s Scalar[T]) Splat(x T) Scalar[T] {
	return Scalar[T]{X: x}
}

func (s Scalar[T]) Neg() Scalar[T] {
	return Scalar[T]{X: -s.X}
}

func (s Scalar[T]) Dot(s1 Scalar[T]) T {
	return s.X * s1.X
}

func (s Scalar[T]) Min(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: num.Min(s.X, s1.X)}
}

func (s Scalar[T]) Max(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: num.Max(s.X, s1.X)}
}

func (s Scalar[T]) Clamp(min, max Scalar[T]) Scalar[T] {
	return Scalar[T]{X: num.Clamp(s.X, min.X, max.X)}
}

func (s Scalar[T]) Step(s1 Scalar[T]) Scalar[T] {
	return Scalar[T]{X: num.Step(s.X, s1.X)}
}

func (s Scalar[T]) Sign() Scalar[T] {
	return Scalar[T]{X: num.Sign(s.X)}
}

func (s Scalar[T]) Abs() Scalar[T] {
	return Scalar[T]{X: num.Abs(s.X)}
}

func (s Scalar[T]) DegToRad() Scalar[T] {
	return s.applyFloat(num.DegToRad[float64])
}

func (s Scalar[T]) RadToDeg() Scalar[T] {
	return s.applyFloat(num.RadToDeg[float64])
}

func (s Scalar[T]) Floor() Scalar[T] {
	return s.applyFloat(math.Floor)
}

func (s Scalar[T]) Ceil() Scalar[T] {
	return s.applyFloat(math.Ceil)
}

func (s Scalar[T]) Round() Scalar[T] {
	return s.applyFloat(math.Round)
}

func (s Scalar[T]) Trunc() Scalar[T] {
	return s.applyFloat(math.Trunc)
}

func (s Scalar[T]) Frac() Scalar[T] {
	return s.applyFloat(num.Frac[float64])
}

func (s Scalar[T]) Approx(s1 Scalar[T], eps T) bool {
	return num.Approx(s.X, s1.X, eps)
}

func (s Scalar[T]) Sqrt() Scalar[T] {
	return s.applyFloat(math.Sqrt)
}

func (s Scalar[T]) Powi(n int) Scalar[T] {
	return s.applyFloat(func(x float64) float64 {
		return num.Powi(x, n)
	})
}

func (s Scalar[T]) Powf(e T) Scalar[T] {
	return s.applyFloat(func(x float64) float64 {
		return math.Pow(x, float64(e))
	})
}

func (s Scalar[T]) Lerp(s1 Scalar[T], t T) Scalar[T] {
	return Scalar[T]{X: num.Lerp(s.X, s1.X, t)}
}

func (s Scalar[T]) Smoothstep(s1 Scalar[T], t T) Scalar[T] {
	return Scalar[T]{X: T(num.Smoothstep(float64(s.X), float64(s1.X), float64(t)))}
}

func (s Scalar[T]) Saturate() Scalar[T] {
	return Scalar[T]{X: num.Clamp(s.X, 0, 1)}
}

func (s Scalar[T]) Sin() Scalar[T] {
	return s.applyFloat(math.Sin)
}

func (s Scalar[T]) Cos() Scalar[T] {
	return s.applyFloat(math.Cos)
}

func (s Scalar[T]) Tan() Scalar[T] {
	return s.applyFloat(math.Tan)
}

func (s Scalar[T]) Asin() Scalar[T] {
	return s.applyFloat(math.Asin)
}

func (s Scalar[T]) Acos() Scalar[T] {
	return s.applyFloat(math.Acos)
}

func (s Scalar[T]) Atan() Scalar[T] {
	return s.applyFloat(math.Atan)
}

func (s Scalar[T]) Exp() Scalar[T] {
	return s.applyFloat(math.Exp)
}

func (s Scalar[T]) Log() Scalar[T] {
	return s.applyFloat(math.Log)
}

func (s Scalar[T]) Mag2() T {
	return s.X * s.X
}

// Mag computes the absolute value of s.
func (s Scalar[T]) Mag() T {
	return num.Abs(s.X)
}

func (s Scalar[T]) Length() T {
	return s.Mag()
}

// Normalize returns the sign of s as -1 or 1, or 0 if s is 0.
func (s Scalar[T]) Normalize() Scalar[T] {
	l := s.Mag()
	if l == 0 {
		return Scalar[T]{}
	}
	return Scalar[T]{X: s.X / l}
}

func (s Scalar[T]) Dist(s1 Scalar[T]) T {
	return s.Sub(s1).Mag()
}

func (s Scalar[T]) Distance(s1 Scalar[T]) T {
	return s.Dist(s1)
}

func (s Scalar[T]) Dist2(s1 Scalar[T]) T {
	return s.Sub(s1).Mag2()
}

func (s Scalar[T]) applyFloat(f func(float64) float64) Scalar[T] {
	return Scalar[T]{X: T(f(float64(s.X)))}
}
