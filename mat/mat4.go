package mat

import (
	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

// A Mat4 is a 4x4 matrix.
type Mat4[T num.Float] [16]T

func Identity4[T num.Float]() Mat4[T] {
	return Mat4[T]{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

func Translate4[T num.Float](t vec.Vec3[T]) Mat4[T] {
	return Translate34(t).Mat4()
}

func Scale4[T num.Float](s vec.Vec3[T]) Mat4[T] {
	return Scale34(s).Mat4()
}

// At gets the entry in the given row and column.
func (m Mat4[T]) At(row, col int) T {
	checkIndex(4, 4, row, col)
	return m[row*4+col]
}

func (m Mat4[T]) Mul(m1 Mat4[T]) Mat4[T] {
	var res Mat4[T]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum T
			for i := 0; i < 4; i++ {
				sum += m[row*4+i] * m1[i*4+col]
			}
			res[row*4+col] = sum
		}
	}
	return res
}

// MulVec computes m*v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	var res [4]T
	for row := range res {
		res[row] = m[row*4]*v.X + m[row*4+1]*v.Y + m[row*4+2]*v.Z + m[row*4+3]*v.W
	}
	return vec.FromArray4(res)
}

// TransformPoint applies m to the homogeneous point (p, 1) and divides by
// the resulting w.
func (m Mat4[T]) TransformPoint(p vec.Vec3[T]) vec.Vec3[T] {
	h := m.MulVec(p.Vec4(1))
	return h.XYZ().DivScalar(h.W)
}

func (m Mat4[T]) Translation() vec.Vec3[T] {
	return vec.XYZ(m[3], m[7], m[11])
}

func (m Mat4[T]) WithTranslation(t vec.Vec3[T]) Mat4[T] {
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

func (m Mat4[T]) Transpose() Mat4[T] {
	var res Mat4[T]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[col*4+row] = m[row*4+col]
		}
	}
	return res
}

// Det computes the determinant by cofactor expansion along the first row.
func (m Mat4[T]) Det() T {
	var res T
	for col := 0; col < 4; col++ {
		res += m[col] * m.cofactor(0, col)
	}
	return res
}

// Inverse computes the inverse of m using its adjugate.
func (m Mat4[T]) Inverse() Mat4[T] {
	var cofactors [16]T
	var det T
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cofactors[row*4+col] = m.cofactor(row, col)
		}
	}
	for col := 0; col < 4; col++ {
		det += m[col] * cofactors[col]
	}
	s := 1 / det
	var res Mat4[T]
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			res[col*4+row] = cofactors[row*4+col] * s
		}
	}
	return res
}

func (m Mat4[T]) cofactor(row, col int) T {
	var minor Mat3[T]
	var idx int
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			minor[idx] = m[r*4+c]
			idx++
		}
	}
	if (row+col)%2 == 1 {
		return -minor.Det()
	}
	return minor.Det()
}
