package vec

import (
	"fmt"
	"math"

	"github.com/unixpickle/gmath/num"
)

// A Vec3 is a 3-component vector.
type Vec3[T num.Number] struct {
	X T
	Y T
	Z T
}

// XYZ constructs a Vec3 from its components.
func XYZ[T num.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 creates a Vec3 with every component set to x.
func Splat3[T num.Number](x T) Vec3[T] {
	return Vec3[T]{X: x, Y: x, Z: x}
}

func Zero3[T num.Number]() Vec3[T] {
	return Vec3[T]{}
}

func One3[T num.Number]() Vec3[T] {
	return Splat3(num.One[T]())
}

func UnitX3[T num.Number]() Vec3[T] {
	return Vec3[T]{X: 1}
}

func UnitY3[T num.Number]() Vec3[T] {
	return Vec3[T]{Y: 1}
}

func UnitZ3[T num.Number]() Vec3[T] {
	return Vec3[T]{Z: 1}
}

// FromArray3 creates a Vec3 from the components in a.
func FromArray3[T num.Number](a [3]T) Vec3[T] {
	return Vec3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Convert3 casts every component of v to a different scalar type.
func Convert3[T, S num.Number](v Vec3[S]) Vec3[T] {
	return Vec3[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// Dim returns 3.
func (v Vec3[T]) Dim() int {
	return 3
}

// At gets the component at index i.
//
// Panics if i is not 0, 1, or 2.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("index %d out of range for Vec3", i))
}

// Array returns the components as an array.
func (v Vec3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// XY drops the Z component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Vec4 extends v with a W component.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// String formats v like [1, 2, 3].
func (v Vec3[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}

func (v Vec3[T]) Add(v1 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + v1.X, Y: v.Y + v1.Y, Z: v.Z + v1.Z}
}

func (v Vec3[T]) Sub(v1 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - v1.X, Y: v.Y - v1.Y, Z: v.Z - v1.Z}
}

// Mul computes the componentwise product.
func (v Vec3[T]) Mul(v1 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * v1.X, Y: v.Y * v1.Y, Z: v.Z * v1.Z}
}

// Div computes the componentwise quotient.
func (v Vec3[T]) Div(v1 Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / v1.X, Y: v.Y / v1.Y, Z: v.Z / v1.Z}
}

func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Splat is like Splat3, but can be called on a value of an unknown vector
// type. The receiver is ignored.
func (v Vec3[T]) Splat(x T) Vec3[T] {
	return Splat3(x)
}

// Neg negates every component.
// For unsigned T, this wraps around.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3[T]) Dot(v1 Vec3[T]) T {
	return v.X*v1.X + v.Y*v1.Y + v.Z*v1.Z
}

// Sum adds up the components of v.
func (v Vec3[T]) Sum() T {
	return v.X + v.Y + v.Z
}

func (v Vec3[T]) Min(v1 Vec3[T]) Vec3[T] {
	return v.zip(v1, num.Min[T])
}

func (v Vec3[T]) Max(v1 Vec3[T]) Vec3[T] {
	return v.zip(v1, num.Max[T])
}

// Clamp restricts each component to the corresponding range.
func (v Vec3[T]) Clamp(min, max Vec3[T]) Vec3[T] {
	return v.Max(min).Min(max)
}

// Step sets each component to 1 where v > v1 and to 0 elsewhere.
func (v Vec3[T]) Step(v1 Vec3[T]) Vec3[T] {
	return v.zip(v1, num.Step[T])
}

func (v Vec3[T]) Sign() Vec3[T] {
	return v.apply(num.Sign[T])
}

func (v Vec3[T]) Abs() Vec3[T] {
	return v.apply(num.Abs[T])
}

func (v Vec3[T]) DegToRad() Vec3[T] {
	return v.applyFloat(num.DegToRad[float64])
}

func (v Vec3[T]) RadToDeg() Vec3[T] {
	return v.applyFloat(num.RadToDeg[float64])
}

func (v Vec3[T]) Floor() Vec3[T] {
	return v.applyFloat(math.Floor)
}

func (v Vec3[T]) Ceil() Vec3[T] {
	return v.applyFloat(math.Ceil)
}

func (v Vec3[T]) Round() Vec3[T] {
	return v.applyFloat(math.Round)
}

func (v Vec3[T]) Trunc() Vec3[T] {
	return v.applyFloat(math.Trunc)
}

func (v Vec3[T]) Frac() Vec3[T] {
	return v.applyFloat(num.Frac[float64])
}

// Approx checks that every component of v is within eps of v1.
func (v Vec3[T]) Approx(v1 Vec3[T], eps T) bool {
	return num.Approx(v.X, v1.X, eps) && num.Approx(v.Y, v1.Y, eps) &&
		num.Approx(v.Z, v1.Z, eps)
}

func (v Vec3[T]) Sqrt() Vec3[T] {
	return v.applyFloat(math.Sqrt)
}

func (v Vec3[T]) Powi(n int) Vec3[T] {
	return v.applyFloat(func(x float64) float64 {
		return num.Powi(x, n)
	})
}

func (v Vec3[T]) Powf(e T) Vec3[T] {
	return v.applyFloat(func(x float64) float64 {
		return math.Pow(x, float64(e))
	})
}

// Lerp interpolates from v to v1 by t.
func (v Vec3[T]) Lerp(v1 Vec3[T], t T) Vec3[T] {
	return v.Add(v1.Sub(v).Scale(t))
}

// Smoothstep performs Hermite interpolation of t between the edges v and v1
// for each component.
func (v Vec3[T]) Smoothstep(v1 Vec3[T], t T) Vec3[T] {
	return v.zipFloat(v1, func(e0, e1 float64) float64 {
		return num.Smoothstep(e0, e1, float64(t))
	})
}

func (v Vec3[T]) Saturate() Vec3[T] {
	return v.Clamp(Vec3[T]{}, Splat3[T](1))
}

func (v Vec3[T]) Sin() Vec3[T] {
	return v.applyFloat(math.Sin)
}

func (v Vec3[T]) Cos() Vec3[T] {
	return v.applyFloat(math.Cos)
}

func (v Vec3[T]) Tan() Vec3[T] {
	return v.applyFloat(math.Tan)
}

func (v Vec3[T]) Asin() Vec3[T] {
	return v.applyFloat(math.Asin)
}

func (v Vec3[T]) Acos() Vec3[T] {
	return v.applyFloat(math.Acos)
}

func (v Vec3[T]) Atan() Vec3[T] {
	return v.applyFloat(math.Atan)
}

func (v Vec3[T]) Exp() Vec3[T] {
	return v.applyFloat(math.Exp)
}

func (v Vec3[T]) Log() Vec3[T] {
	return v.applyFloat(math.Log)
}

// Mag2 computes the squared magnitude of v.
func (v Vec3[T]) Mag2() T {
	return v.Dot(v)
}

// Mag computes the magnitude of v.
func (v Vec3[T]) Mag() T {
	return T(math.Sqrt(float64(v.Mag2())))
}

// Length is an alias for Mag.
func (v Vec3[T]) Length() T {
	return v.Mag()
}

// Normalize scales v to unit length.
//
// The zero vector is returned unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Mag()
	if l == 0 {
		return Vec3[T]{}
	}
	return v.DivScalar(l)
}

func (v Vec3[T]) Dist(v1 Vec3[T]) T {
	return v.Sub(v1).Mag()
}

// Distance is an alias for Dist.
func (v Vec3[T]) Distance(v1 Vec3[T]) T {
	return v.Dist(v1)
}

// Dist2 computes the squared distance between v and v1.
func (v Vec3[T]) Dist2(v1 Vec3[T]) T {
	return v.Sub(v1).Mag2()
}

func (v Vec3[T]) apply(f func(T) T) Vec3[T] {
	return Vec3[T]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

func (v Vec3[T]) zip(v1 Vec3[T], f func(T, T) T) Vec3[T] {
	return Vec3[T]{X: f(v.X, v1.X), Y: f(v.Y, v1.Y), Z: f(v.Z, v1.Z)}
}

func (v Vec3[T]) applyFloat(f func(float64) float64) Vec3[T] {
	return v.apply(func(x T) T {
		return T(f(float64(x)))
	})
}

func (v Vec3[T]) zipFloat(v1 Vec3[T], f func(float64, float64) float64) Vec3[T] {
	return v.zip(v1, func(x, y T) T {
		return T(f(float64(x), float64(y)))
	})
}
