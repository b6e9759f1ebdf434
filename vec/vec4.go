package vec

import (
	"fmt"
	"math"

	"github.com/unixpickle/gmath/num"
)

// A Vec4 is a 4-component vector.
type Vec4[T num.Number] struct {
	X T
	Y T
	Z T
	W T
}

// XYZW constructs a Vec4 from its components.
func XYZW[T num.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 creates a Vec4 with every component set to x.
func Splat4[T num.Number](x T) Vec4[T] {
	return Vec4[T]{X: x, Y: x, Z: x, W: x}
}

func Zero4[T num.Number]() Vec4[T] {
	return Vec4[T]{}
}

func One4[T num.Number]() Vec4[T] {
	return Splat4(num.One[T]())
}

func UnitX4[T num.Number]() Vec4[T] {
	return Vec4[T]{X: 1}
}

func UnitY4[T num.Number]() Vec4[T] {
	return Vec4[T]{Y: 1}
}

func UnitZ4[T num.Number]() Vec4[T] {
	return Vec4[T]{Z: 1}
}

func UnitW4[T num.Number]() Vec4[T] {
	return Vec4[T]{W: 1}
}

func FromArray4[T num.Number](a [4]T) Vec4[T] {
	return Vec4[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}

// Convert4 casts every component of v to a different scalar type.
func Convert4[T, S num.Number](v Vec4[S]) Vec4[T] {
	return Vec4[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z), W: T(v.W)}
}

// Dim returns 4.
func (v Vec4[T]) Dim() int {
	return 4
}

// At gets the component at index i.
//
// Panics if i is not in [0, 4).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("index %d out of range for Vec4", i))
}

func (v Vec4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// String formats v like [1, 2, 3, 4].
func (v Vec4[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", v.X, v.Y, v.Z, v.W)
}

func (v Vec4[T]) Add(v1 Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + v1.X, Y: v.Y + v1.Y, Z: v.Z + v1.Z, W: v.W + v1.W}
}

func (v Vec4[T]) Sub(v1 Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - v1.X, Y: v.Y - v1.Y, Z: v.Z - v1.Z, W: v.W - v1.W}
}

// Mul computes the componentwise product.
func (v Vec4[T]) Mul(v1 Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * v1.X, Y: v.Y * v1.Y, Z: v.Z * v1.Z, W: v.W * v1.W}
}

// Div computes the componentwise quotient.
func (v Vec4[T]) Div(v1 Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X / v1.X, Y: v.Y / v1.Y, Z: v.Z / v1.Z, W: v.W / v1.W}
}

func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

func (v Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Splat is like Splat4, but can be called on a value of an unknown vector
// type. The receiver is ignored.
func (v Vec4[T]) Splat(x T) Vec4[T] {
	return Splat4(x)
}

// Neg negates every component.
// For unsigned T, this wraps around.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

func (v Vec4[T]) Dot(v1 Vec4[T]) T {
	return v.X*v1.X + v.Y*v1.Y + v.Z*v1.Z + v.W*v1.W
}

// Sum adds up the components of v.
func (v Vec4[T]) Sum() T {
	return v.X + v.Y + v.Z + v.W
}

func (v Vec4[T]) Min(v1 Vec4[T]) Vec4[T] {
	return v.zip(v1, num.Min[T])
}

func (v Vec4[T]) Max(v1 Vec4[T]) Vec4[T] {
	return v.zip(v1, num.Max[T])
}

// Clamp restricts each component to the corresponding range.
func (v Vec4[T]) Clamp(min, max Vec4[T]) Vec4[T] {
	return v.Max(min).Min(max)
}

// Step sets each component to 1 where v > v1 and to 0 elsewhere.
func (v Vec4[T]) Step(v1 Vec4[T]) Vec4[T] {
	return v.zip(v1, num.Step[T])
}

func (v Vec4[T]) Sign() Vec4[T] {
	return v.apply(num.Sign[T])
}

func (v Vec4[T]) Abs() Vec4[T] {
	return v.apply(num.Abs[T])
}

func (v Vec4[T]) DegToRad() Vec4[T] {
	return v.applyFloat(num.DegToRad[float64])
}

func (v Vec4[T]) RadToDeg() Vec4[T] {
	return v.applyFloat(num.RadToDeg[float64])
}

func (v Vec4[T]) Floor() Vec4[T] {
	return v.applyFloat(math.Floor)
}

func (v Vec4[T]) Ceil() Vec4[T] {
	return v.applyFloat(math.Ceil)
}

func (v Vec4[T]) Round() Vec4[T] {
	return v.applyFloat(math.Round)
}

func (v Vec4[T]) Trunc() Vec4[T] {
	return v.applyFloat(math.Trunc)
}

func (v Vec4[T]) Frac() Vec4[T] {
	return v.applyFloat(num.Frac[float64])
}

// Approx checks that every component of v is within eps of v1.
func (v Vec4[T]) Approx(v1 Vec4[T], eps T) bool {
	return num.Approx(v.X, v1.X, eps) && num.Approx(v.Y, v1.Y, eps) &&
		num.Approx(v.Z, v1.Z, eps) && num.Approx(v.W, v1.W, eps)
}

func (v Vec4[T]) Sqrt() Vec4[T] {
	return v.applyFloat(math.Sqrt)
}

func (v Vec4[T]) Powi(n int) Vec4[T] {
	return v.applyFloat(func(x float64) float64 {
		return num.Powi(x, n)
	})
}

func (v Vec4[T]) Powf(e T) Vec4[T] {
	return v.applyFloat(func(x float64) float64 {
		return math.Pow(x, float64(e))
	})
}

// Lerp interpolates from v to v1 by t.
func (v Vec4[T]) Lerp(v1 Vec4[T], t T) Vec4[T] {
	return v.Add(v1.Sub(v).Scale(t))
}

// Smoothstep performs Hermite interpolation of t between the edges v and v1
// for each component.
func (v Vec4[T]) Smoothstep(v1 Vec4[T], t T) Vec4[T] {
	return v.zipFloat(v1, func(e0, e1 float64) float64 {
		return num.Smoothstep(e0, e1, float64(t))
	})
}

func (v Vec4[T]) Saturate() Vec4[T] {
	return v.Clamp(Vec4[T]{}, Splat4[T](1))
}

func (v Vec4[T]) Sin() Vec4[T] {
	return v.applyFloat(math.Sin)
}

func (v Vec4[T]) Cos() Vec4[T] {
	return v.applyFloat(math.Cos)
}

func (v Vec4[T]) Tan() Vec4[T] {
	return v.applyFloat(math.Tan)
}

func (v Vec4[T]) Asin() Vec4[T] {
	return v.applyFloat(math.Asin)
}

func (v Vec4[T]) Acos() Vec4[T] {
	return v.applyFloat(math.Acos)
}

func (v Vec4[T]) Atan() Vec4[T] {
	return v.applyFloat(math.Atan)
}

func (v Vec4[T]) Exp() Vec4[T] {
	return v.applyFloat(math.Exp)
}

func (v Vec4[T]) Log() Vec4[T] {
	return v.applyFloat(math.Log)
}

// Mag2 computes the squared magnitude of v.
func (v Vec4[T]) Mag2() T {
	return v.Dot(v)
}

// Mag computes the magnitude of v.
func (v Vec4[T]) Mag() T {
	return T(math.Sqrt(float64(v.Mag2())))
}

// Length is an alias for Mag.
func (v Vec4[T]) Length() T {
	return v.Mag()
}

// Normalize scales v to unit length.
//
// The zero vector is returned unchanged.
func (v Vec4[T]) Normalize() Vec4[T] {
	l := v.Mag()
	if l == 0 {
		return Vec4[T]{}
	}
	return v.DivScalar(l)
}

func (v Vec4[T]) Dist(v1 Vec4[T]) T {
	return v.Sub(v1).Mag()
}

// Distance is an alias for Dist.
func (v Vec4[T]) Distance(v1 Vec4[T]) T {
	return v.Dist(v1)
}

// Dist2 computes the squared distance between v and v1.
func (v Vec4[T]) Dist2(v1 Vec4[T]) T {
	return v.Sub(v1).Mag2()
}

func (v Vec4[T]) apply(f func(T) T) Vec4[T] {
	return Vec4[T]{X: f(v.X), Y: f(v.Y), Z: f(v.Z), W: f(v.W)}
}

func (v Vec4[T]) zip(v1 Vec4[T], f func(T, T) T) Vec4[T] {
	return Vec4[T]{X: f(v.X, v1.X), Y: f(v.Y, v1.Y), Z: f(v.Z, v1.Z), W: f(v.W, v1.W)}
}

func (v Vec4[T]) applyFloat(f func(float64) float64) Vec4[T] {
	return v.apply(func(x T) T {
		return T(f(float64(x)))
	})
}

func (v Vec4[T]) zipFloat(v1 Vec4[T], f func(float64, float64) float64) Vec4[T] {
	return v.zip(v1, func(x, y T) T {
		return T(f(float64(x), float64(y)))
	})
}
