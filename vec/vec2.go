package vec

import (
	"fmt"
	"math"

	"github.com/unixpickle/gmath/num"
)

// A Vec2 is a 2-component vector.
type Vec2[T num.Number] struct {
	X T
	Y T
}

// XY constructs a Vec2 from its components.
func XY[T num.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 creates a Vec2 with both components set to x.
func Splat2[T num.Number](x T) Vec2[T] {
	return Vec2[T]{X: x, Y: x}
}

func Zero2[T num.Number]() Vec2[T] {
	return Vec2[T]{}
}

func One2[T num.Number]() Vec2[T] {
	return Splat2(num.One[T]())
}

func UnitX2[T num.Number]() Vec2[T] {
	return Vec2[T]{X: 1}
}

func UnitY2[T num.Number]() Vec2[T] {
	return Vec2[T]{Y: 1}
}

func FromArray2[T num.Number](a [2]T) Vec2[T] {
	return Vec2[T]{X: a[0], Y: a[1]}
}

// Convert2 casts both components of v to a different scalar type.
func Convert2[T, S num.Number](v Vec2[S]) Vec2[T] {
	return Vec2[T]{X: T(v.X), Y: T(v.Y)}
}

// Dim returns 2.
func (v Vec2[T]) Dim() int {
	return 2
}

// At gets the component at index i.
//
// Panics if i is not 0 or 1.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("index %d out of range for Vec2", i))
}

func (v Vec2[T]) Array() [2]T {
	return [2]T{v.X, v.Y}
}

// Vec3 extends v with a zero Z component.
func (v Vec2[T]) Vec3() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y}
}

// String formats v like [1, 2].
func (v Vec2[T]) String() string {
	return fmt.Sprintf("[%v, %v]", v.X, v.Y)
}

func (v Vec2[T]) Add(v1 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + v1.X, Y: v.Y + v1.Y}
}

func (v Vec2[T]) Sub(v1 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - v1.X, Y: v.Y - v1.Y}
}

// Mul computes the componentwise product.
func (v Vec2[T]) Mul(v1 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * v1.X, Y: v.Y * v1.Y}
}

// Div computes the componentwise quotient.
func (v Vec2[T]) Div(v1 Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / v1.X, Y: v.Y / v1.Y}
}

func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X + s, Y: v.Y + s}
}

func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X - s, Y: v.Y - s}
}

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Splat is like Splat2, but can be called on a value of an unknown vector
// type. The receiver is ignored.
func (v Vec2[T]) Splat(x T) Vec2[T] {
	return Splat2(x)
}

// Neg negates every component.
// For unsigned T, this wraps around.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

func (v Vec2[T]) Dot(v1 Vec2[T]) T {
	return v.X*v1.X + v.Y*v1.Y
}

// Sum adds up the components of v.
func (v Vec2[T]) Sum() T {
	return v.X + v.Y
}

func (v Vec2[T]) Min(v1 Vec2[T]) Vec2[T] {
	return v.zip(v1, num.Min[T])
}

func (v Vec2[T]) Max(v1 Vec2[T]) Vec2[T] {
	return v.zip(v1, num.Max[T])
}

// Clamp restricts each component to the corresponding range.
func (v Vec2[T]) Clamp(min, max Vec2[T]) Vec2[T] {
	return v.Max(min).Min(max)
}

// Step sets each component to 1 where v > v1 and to 0 elsewhere.
func (v Vec2[T]) Step(v1 Vec2[T]) Vec2[T] {
	return v.zip(v1, num.Step[T])
}

func (v Vec2[T]) Sign() Vec2[T] {
	return v.apply(num.Sign[T])
}

func (v Vec2[T]) Abs() Vec2[T] {
	return v.apply(num.Abs[T])
}

func (v Vec2[T]) DegToRad() Vec2[T] {
	return v.applyFloat(num.DegToRad[float64])
}

func (v Vec2[T]) RadToDeg() Vec2[T] {
	return v.applyFloat(num.RadToDeg[float64])
}

func (v Vec2[T]) Floor() Vec2[T] {
	return v.applyFloat(math.Floor)
}

func (v Vec2[T]) Ceil() Vec2[T] {
	return v.applyFloat(math.Ceil)
}

func (v Vec2[T]) Round() Vec2[T] {
	return v.applyFloat(math.Round)
}

func (v Vec2[T]) Trunc() Vec2[T] {
	return v.applyFloat(math.Trunc)
}

func (v Vec2[T]) Frac() Vec2[T] {
	return v.applyFloat(num.Frac[float64])
}

// Approx checks that every component of v is within eps of v1.
func (v Vec2[T]) Approx(v1 Vec2[T], eps T) bool {
	return num.Approx(v.X, v1.X, eps) && num.Approx(v.Y, v1.Y, eps)
}

func (v Vec2[T]) Sqrt() Vec2[T] {
	return v.applyFloat(math.Sqrt)
}

func (v Vec2[T]) Powi(n int) Vec2[T] {
	return v.applyFloat(func(x float64) float64 {
		return num.Powi(x, n)
	})
}

func (v Vec2[T]) Powf(e T) Vec2[T] {
	return v.applyFloat(func(x float64) float64 {
		return math.Pow(x, float64(e))
	})
}

// Lerp interpolates from v to v1 by t.
func (v Vec2[T]) Lerp(v1 Vec2[T], t T) Vec2[T] {
	return v.Add(v1.Sub(v).Scale(t))
}

// Smoothstep performs Hermite interpolation of t between the edges v and v1
// for each component.
func (v Vec2[T]) Smoothstep(v1 Vec2[T], t T) Vec2[T] {
	return v.zipFloat(v1, func(e0, e1 float64) float64 {
		return num.Smoothstep(e0, e1, float64(t))
	})
}

func (v Vec2[T]) Saturate() Vec2[T] {
	return v.Clamp(Vec2[T]{}, Splat2[T](1))
}

func (v Vec2[T]) Sin() Vec2[T] {
	return v.applyFloat(math.Sin)
}

func (v Vec2[T]) Cos() Vec2[T] {
	return v.applyFloat(math.Cos)
}

func (v Vec2[T]) Tan() Vec2[T] {
	return v.applyFloat(math.Tan)
}

func (v Vec2[T]) Asin() Vec2[T] {
	return v.applyFloat(math.Asin)
}

func (v Vec2[T]) Acos() Vec2[T] {
	return v.applyFloat(math.Acos)
}

func (v Vec2[T]) Atan() Vec2[T] {
	return v.applyFloat(math.Atan)
}

func (v Vec2[T]) Exp() Vec2[T] {
	return v.applyFloat(math.Exp)
}

func (v Vec2[T]) Log() Vec2[T] {
	return v.applyFloat(math.Log)
}

// Mag2 computes the squared magnitude of v.
func (v Vec2[T]) Mag2() T {
	return v.Dot(v)
}

// Mag computes the magnitude of v.
func (v Vec2[T]) Mag() T {
	return T(math.Sqrt(float64(v.Mag2())))
}

// Length is an alias for Mag.
func (v Vec2[T]) Length() T {
	return v.Mag()
}

// Normalize scales v to unit length.
//
// The zero vector is returned unchanged.
func (v Vec2[T]) Normalize() Vec2[T] {
	l := v.Mag()
	if l == 0 {
		return Vec2[T]{}
	}
	return v.DivScalar(l)
}

func (v Vec2[T]) Dist(v1 Vec2[T]) T {
	return v.Sub(v1).Mag()
}

// Distance is an alias for Dist.
func (v Vec2[T]) Distance(v1 Vec2[T]) T {
	return v.Dist(v1)
}

// Dist2 computes the squared distance between v and v1.
func (v Vec2[T]) Dist2(v1 Vec2[T]) T {
	return v.Sub(v1).Mag2()
}

func (v Vec2[T]) apply(f func(T) T) Vec2[T] {
	return Vec2[T]{X: f(v.X), Y: f(v.Y)}
}

func (v Vec2[T]) zip(v1 Vec2[T], f func(T, T) T) Vec2[T] {
	return Vec2[T]{X: f(v.X, v1.X), Y: f(v.Y, v1.Y)}
}

func (v Vec2[T]) applyFloat(f func(float64) float64) Vec2[T] {
	return v.apply(func(x T) T {
		return T(f(float64(x)))
	})
}

func (v Vec2[T]) zipFloat(v1 Vec2[T], f func(float64, float64) float64) Vec2[T] {
	return v.zip(v1, func(x, y T) T {
		return T(f(float64(x), float64(y)))
	})
}
