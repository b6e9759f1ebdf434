package mat

import (
	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

// A Mat34 is a 3x4 affine matrix. The first three columns are a linear
// transform and the last column is a translation.
type Mat34[T num.Float] [12]T

func Identity34[T num.Float]() Mat34[T] {
	return FromMat3(Identity3[T](), vec.Vec3[T]{})
}

func Translate34[T num.Float](t vec.Vec3[T]) Mat34[T] {
	return FromMat3(Identity3[T](), t)
}

func Scale34[T num.Float](s vec.Vec3[T]) Mat34[T] {
	return FromMat3(Scale3(s), vec.Vec3[T]{})
}

// FromMat3 creates an affine matrix which applies m and then translates by t.
func FromMat3[T num.Float](m Mat3[T], t vec.Vec3[T]) Mat34[T] {
	return Mat34[T]{
		m[0], m[1], m[2], t.X,
		m[3], m[4], m[5], t.Y,
		m[6], m[7], m[8], t.Z,
	}
}

// At gets the entry in the given row and column.
func (m Mat34[T]) At(row, col int) T {
	checkIndex(3, 4, row, col)
	return m[row*4+col]
}

// Linear gets the 3x3 linear part of m.
func (m Mat34[T]) Linear() Mat3[T] {
	return Mat3[T]{m[0], m[1], m[2], m[4], m[5], m[6], m[8], m[9], m[10]}
}

func (m Mat34[T]) Translation() vec.Vec3[T] {
	return vec.XYZ(m[3], m[7], m[11])
}

func (m Mat34[T]) WithTranslation(t vec.Vec3[T]) Mat34[T] {
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

// Mul composes the transforms so that m1 is applied first.
func (m Mat34[T]) Mul(m1 Mat34[T]) Mat34[T] {
	return FromMat3(m.Linear().Mul(m1.Linear()), m.TransformPoint(m1.Translation()))
}

func (m Mat34[T]) TransformPoint(p vec.Vec3[T]) vec.Vec3[T] {
	return m.TransformVector(p).Add(m.Translation())
}

// TransformVector applies the linear part of m, ignoring translation.
func (m Mat34[T]) TransformVector(v vec.Vec3[T]) vec.Vec3[T] {
	return m.Linear().MulVec(v)
}

// Inverse computes the inverse affine transform.
func (m Mat34[T]) Inverse() Mat34[T] {
	inv := m.Linear().Inverse()
	return FromMat3(inv, inv.MulVec(m.Translation()).Neg())
}

// Mat4 extends m with the row [0, 0, 0, 1].
func (m Mat34[T]) Mat4() Mat4[T] {
	var res Mat4[T]
	copy(res[:12], m[:])
	res[15] = 1
	return res
}
