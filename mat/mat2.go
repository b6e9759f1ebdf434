// Package mat implements the small set of matrix and quaternion operations
// that gmath needs: inverses, point transforms, and translations.
//
// All matrices are stored in row-major order. Inverses never fail; a
// singular matrix produces Inf and NaN entries.
package mat

import (
	"fmt"

	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

// A Mat2 is a 2x2 matrix.
type Mat2[T num.Float] [4]T

func Identity2[T num.Float]() Mat2[T] {
	return Mat2[T]{1, 0, 0, 1}
}

// Rotation2 creates a counter-clockwise rotation by theta radians.
func Rotation2[T num.Float](theta T) Mat2[T] {
	s, c := num.Sin(theta), num.Cos(theta)
	return Mat2[T]{c, -s, s, c}
}

// At gets the entry in the given row and column.
func (m Mat2[T]) At(row, col int) T {
	checkIndex(2, 2, row, col)
	return m[row*2+col]
}

func (m Mat2[T]) Mul(m1 Mat2[T]) Mat2[T] {
	return Mat2[T]{
		m[0]*m1[0] + m[1]*m1[2], m[0]*m1[1] + m[1]*m1[3],
		m[2]*m1[0] + m[3]*m1[2], m[2]*m1[1] + m[3]*m1[3],
	}
}

// MulVec computes m*v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return vec.XY(m[0]*v.X+m[1]*v.Y, m[2]*v.X+m[3]*v.Y)
}

// TransformPoint is equivalent to MulVec, since a 2x2 matrix has no
// translation.
func (m Mat2[T]) TransformPoint(v vec.Vec2[T]) vec.Vec2[T] {
	return m.MulVec(v)
}

func (m Mat2[T]) Det() T {
	return m[0]*m[3] - m[1]*m[2]
}

func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m[0], m[2], m[1], m[3]}
}

// Inverse computes the inverse of m.
func (m Mat2[T]) Inverse() Mat2[T] {
	s := 1 / m.Det()
	return Mat2[T]{m[3] * s, -m[1] * s, -m[2] * s, m[0] * s}
}

func checkIndex(rows, cols, row, col int) {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(fmt.Sprintf("index (%d, %d) out of range for %dx%d matrix", row, col, rows, cols))
	}
}
