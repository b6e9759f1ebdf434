package mat

import (
	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

// A Mat3 is a 3x3 matrix.
//
// As a transform of 2D points, it is treated as an affine matrix whose last
// column holds the translation.
type Mat3[T num.Float] [9]T

func Identity3[T num.Float]() Mat3[T] {
	return Mat3[T]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translate3 creates a 2D affine translation.
func Translate3[T num.Float](t vec.Vec2[T]) Mat3[T] {
	return Mat3[T]{1, 0, t.X, 0, 1, t.Y, 0, 0, 1}
}

// Scale3 creates a diagonal matrix.
func Scale3[T num.Float](s vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{s.X, 0, 0, 0, s.Y, 0, 0, 0, s.Z}
}

// FromMat2 embeds m in the upper-left corner of an identity matrix.
func FromMat2[T num.Float](m Mat2[T]) Mat3[T] {
	return Mat3[T]{m[0], m[1], 0, m[2], m[3], 0, 0, 0, 1}
}

// At gets the entry in the given row and column.
func (m Mat3[T]) At(row, col int) T {
	checkIndex(3, 3, row, col)
	return m[row*3+col]
}

func (m Mat3[T]) Mul(m1 Mat3[T]) Mat3[T] {
	var res Mat3[T]
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum T
			for i := 0; i < 3; i++ {
				sum += m[row*3+i] * m1[i*3+col]
			}
			res[row*3+col] = sum
		}
	}
	return res
}

// MulVec computes m*v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.XYZ(
		m[0]*v.X+m[1]*v.Y+m[2]*v.Z,
		m[3]*v.X+m[4]*v.Y+m[5]*v.Z,
		m[6]*v.X+m[7]*v.Y+m[8]*v.Z,
	)
}

// TransformPoint applies the affine transform to a 2D point.
func (m Mat3[T]) TransformPoint(p vec.Vec2[T]) vec.Vec2[T] {
	return vec.XY(
		m[0]*p.X+m[1]*p.Y+m[2],
		m[3]*p.X+m[4]*p.Y+m[5],
	)
}

// Translation gets the 2D translation component.
func (m Mat3[T]) Translation() vec.Vec2[T] {
	return vec.XY(m[2], m[5])
}

// WithTranslation replaces the 2D translation component.
func (m Mat3[T]) WithTranslation(t vec.Vec2[T]) Mat3[T] {
	m[2], m[5] = t.X, t.Y
	return m
}

func (m Mat3[T]) Det() T {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Inverse computes the inverse of m using its adjugate.
func (m Mat3[T]) Inverse() Mat3[T] {
	s := 1 / m.Det()
	return Mat3[T]{
		(m[4]*m[8] - m[5]*m[7]) * s,
		(m[2]*m[7] - m[1]*m[8]) * s,
		(m[1]*m[5] - m[2]*m[4]) * s,
		(m[5]*m[6] - m[3]*m[8]) * s,
		(m[0]*m[8] - m[2]*m[6]) * s,
		(m[2]*m[3] - m[0]*m[5]) * s,
		(m[3]*m[7] - m[4]*m[6]) * s,
		(m[1]*m[6] - m[0]*m[7]) * s,
		(m[0]*m[4] - m[1]*m[3]) * s,
	}
}
