package gmath

import (
	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

// Min computes the componentwise minimum of a and b.
func Min[T num.Number, V NumberOps[T, V]](a, b V) V {
	return a.Min(b)
}

// Max computes the componentwise maximum of a and b.
func Max[T num.Number, V NumberOps[T, V]](a, b V) V {
	return a.Max(b)
}

// Clamp restricts every component of x to the range given by the
// corresponding components of min and max.
func Clamp[T num.Number, V NumberOps[T, V]](x, min, max V) V {
	return x.Clamp(min, max)
}

// Step returns 1 for every component where a > b, and 0 elsewhere.
func Step[T num.Number, V NumberOps[T, V]](a, b V) V {
	return a.Step(b)
}

func Sign[T num.SignedNumber, V SignedNumberOps[T, V]](x V) V {
	return x.Sign()
}

func Abs[T num.SignedNumber, V SignedNumberOps[T, V]](x V) V {
	return x.Abs()
}

func Neg[T num.SignedNumber, V SignedNumberOps[T, V]](x V) V {
	return x.Neg()
}

func DegToRad[T num.Float, V FloatOps[T, V]](x V) V {
	return x.DegToRad()
}

func RadToDeg[T num.Float, V FloatOps[T, V]](x V) V {
	return x.RadToDeg()
}

func Floor[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Floor()
}

func Ceil[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Ceil()
}

// Round rounds every component to the nearest integer, with halves rounded
// away from zero.
func Round[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Round()
}

func Trunc[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Trunc()
}

func Frac[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Frac()
}

// Approx checks that every component of a is within eps of b.
func Approx[T num.Float, V FloatOps[T, V]](a, b V, eps T) bool {
	return a.Approx(b, eps)
}

func Sqrt[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Sqrt()
}

func Powi[T num.Float, V FloatOps[T, V]](x V, n int) V {
	return x.Powi(n)
}

func Powf[T num.Float, V FloatOps[T, V]](x V, e T) V {
	return x.Powf(e)
}

// Lerp linearly interpolates between e0 (t=0) and e1 (t=1).
func Lerp[T num.Float, V FloatOps[T, V]](e0, e1 V, t T) V {
	return e0.Lerp(e1, t)
}

// Smoothstep performs Hermite interpolation of t between the edges e0 and
// e1, for each component.
func Smoothstep[T num.Float, V FloatOps[T, V]](e0, e1 V, t T) V {
	return e0.Smoothstep(e1, t)
}

// Saturate clamps every component to [0, 1].
func Saturate[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Saturate()
}

func Sin[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Sin()
}

func Cos[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Cos()
}

func Tan[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Tan()
}

func Asin[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Asin()
}

func Acos[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Acos()
}

func Atan[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Atan()
}

func Exp[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Exp()
}

func Log[T num.Float, V FloatOps[T, V]](x V) V {
	return x.Log()
}

// Dot computes the dot product of a and b.
func Dot[T num.Number, V VecN[T, V]](a, b V) T {
	return a.Dot(b)
}

// Cross computes the cross product of two 3D vectors.
func Cross[T num.Number](a, b vec.Vec3[T]) vec.Vec3[T] {
	return vec.Cross(a, b)
}

// Perp rotates a 2D vector 90 degrees counter-clockwise.
func Perp[T num.SignedNumber](a vec.Vec2[T]) vec.Vec2[T] {
	return vec.Perp(a)
}

func Mag2[T num.Float, V VecFloatOps[T, V]](v V) T {
	return v.Mag2()
}

func Mag[T num.Float, V VecFloatOps[T, V]](v V) T {
	return v.Mag()
}

// Length computes the Euclidean length of v.
func Length[T num.Float, V VecFloatOps[T, V]](v V) T {
	return v.Length()
}

// Normalize scales v to unit length.
//
// A zero vector is returned as-is.
func Normalize[T num.Float, V VecFloatOps[T, V]](v V) V {
	return v.Normalize()
}

func Dist[T num.Float, V VecFloatOps[T, V]](a, b V) T {
	return a.Dist(b)
}

// Distance computes the Euclidean distance between a and b.
func Distance[T num.Float, V VecFloatOps[T, V]](a, b V) T {
	return a.Distance(b)
}

func Dist2[T num.Float, V VecFloatOps[T, V]](a, b V) T {
	return a.Dist2(b)
}
