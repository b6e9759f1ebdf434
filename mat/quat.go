package mat

import (
	"fmt"

	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

// A Quat is a quaternion X*i + Y*j + Z*k + W.
//
// Unit quaternions represent rotations.
type Quat[T num.Float] struct {
	X T
	Y T
	Z T
	W T
}

func IdentityQuat[T num.Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatAxisAngle creates a rotation of theta radians about an axis, following
// the right-hand rule.
//
// The axis needn't be normalized.
func QuatAxisAngle[T num.Float](axis vec.Vec3[T], theta T) Quat[T] {
	s, c := num.Sin(theta/2), num.Cos(theta/2)
	a := axis.Normalize().Scale(s)
	return Quat[T]{X: a.X, Y: a.Y, Z: a.Z, W: c}
}

// Mul computes the Hamilton product q*q1, which rotates by q1 and then by q.
func (q Quat[T]) Mul(q1 Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*q1.X + q.X*q1.W + q.Y*q1.Z - q.Z*q1.Y,
		Y: q.W*q1.Y - q.X*q1.Z + q.Y*q1.W + q.Z*q1.X,
		Z: q.W*q1.Z + q.X*q1.Y - q.Y*q1.X + q.Z*q1.W,
		W: q.W*q1.W - q.X*q1.X - q.Y*q1.Y - q.Z*q1.Z,
	}
}

func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse computes the multiplicative inverse of q.
func (q Quat[T]) Inverse() Quat[T] {
	c := q.Conjugate()
	n := q.Dot(q)
	return Quat[T]{X: c.X / n, Y: c.Y / n, Z: c.Z / n, W: c.W / n}
}

func (q Quat[T]) Dot(q1 Quat[T]) T {
	return q.X*q1.X + q.Y*q1.Y + q.Z*q1.Z + q.W*q1.W
}

func (q Quat[T]) Norm() T {
	return num.Sqrt(q.Dot(q))
}

// Normalize scales q to unit norm.
//
// The zero quaternion is returned unchanged.
func (q Quat[T]) Normalize() Quat[T] {
	n := q.Norm()
	if n == 0 {
		return q
	}
	return Quat[T]{X: q.X / n, Y: q.Y / n, Z: q.Z / n, W: q.W / n}
}

// Rotate applies the rotation of the unit quaternion q to v.
func (q Quat[T]) Rotate(v vec.Vec3[T]) vec.Vec3[T] {
	u := vec.XYZ(q.X, q.Y, q.Z)
	t := vec.Cross(u, v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(vec.Cross(u, t))
}

// Mat3 creates the rotation matrix for the unit quaternion q.
func (q Quat[T]) Mat3() Mat3[T] {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return Mat3[T]{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	}
}

// Slerp spherically interpolates from q to q1 along the shortest arc.
func (q Quat[T]) Slerp(q1 Quat[T], t T) Quat[T] {
	d := q.Dot(q1)
	if d < 0 {
		q1 = Quat[T]{X: -q1.X, Y: -q1.Y, Z: -q1.Z, W: -q1.W}
		d = -d
	}
	var s0, s1 T
	if d > 0.9995 {
		// Nearly parallel, so fall back on normalized lerp.
		s0, s1 = 1-t, t
	} else {
		theta := num.Acos(d)
		sinTheta := num.Sin(theta)
		s0 = num.Sin((1-t)*theta) / sinTheta
		s1 = num.Sin(t*theta) / sinTheta
	}
	return Quat[T]{
		X: q.X*s0 + q1.X*s1,
		Y: q.Y*s0 + q1.Y*s1,
		Z: q.Z*s0 + q1.Z*s1,
		W: q.W*s0 + q1.W*s1,
	}.Normalize()
}

// String formats q like [x, y, z, w].
func (q Quat[T]) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", q.X, q.Y, q.Z, q.W)
}
