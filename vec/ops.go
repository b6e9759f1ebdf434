// Package vec implements fixed-dimension vectors which are generic over any
// num.Number scalar.
package vec

import "github.com/unixpickle/gmath/num"

// Cross computes the cross product a x b.
func Cross[T num.Number](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Perp rotates a counter-clockwise by 90 degrees.
func Perp[T num.SignedNumber](a Vec2[T]) Vec2[T] {
	return Vec2[T]{X: -a.Y, Y: a.X}
}

func Vec2f(x, y float32) Vec2[float32] {
	return Vec2[float32]{X: x, Y: y}
}

func Vec3f(x, y, z float32) Vec3[float32] {
	return Vec3[float32]{X: x, Y: y, Z: z}
}

func Vec4f(x, y, z, w float32) Vec4[float32] {
	return Vec4[float32]{X: x, Y: y, Z: z, W: w}
}

func Vec2d(x, y float64) Vec2[float64] {
	return Vec2[float64]{X: x, Y: y}
}

func Vec3d(x, y, z float64) Vec3[float64] {
	return Vec3[float64]{X: x, Y: y, Z: z}
}

func Vec4d(x, y, z, w float64) Vec4[float64] {
	return Vec4[float64]{X: x, Y: y, Z: z, W: w}
}

func Vec2i(x, y int32) Vec2[int32] {
	return Vec2[int32]{X: x, Y: y}
}

func Vec3i(x, y, z int32) Vec3[int32] {
	return Vec3[int32]{X: x, Y: y, Z: z}
}

func Vec4i(x, y, z, w int32) Vec4[int32] {
	return Vec4[int32]{X: x, Y: y, Z: z, W: w}
}

func Vec2u(x, y uint32) Vec2[uint32] {
	return Vec2[uint32]{X: x, Y: y}
}

func Vec3u(x, y, z uint32) Vec3[uint32] {
	return Vec3[uint32]{X: x, Y: y, Z: z}
}

func Vec4u(x, y, z, w uint32) Vec4[uint32] {
	return Vec4[uint32]{X: x, Y: y, Z: z, W: w}
}
