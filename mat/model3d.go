package mat

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// FromMatrix3 converts a model3d matrix to a Mat3.
// Both types are row-major.
func FromMatrix3(m *model3d.Matrix3) Mat3[float64] {
	return Mat3[float64](*m)
}

func ToMatrix3(m Mat3[float64]) *model3d.Matrix3 {
	res := model3d.Matrix3(m)
	return &res
}

// FromMatrix2 converts a model2d matrix to a Mat2.
// Both types are row-major.
func FromMatrix2(m *model2d.Matrix2) Mat2[float64] {
	return Mat2[float64](*m)
}

func ToMatrix2(m Mat2[float64]) *model2d.Matrix2 {
	res := model2d.Matrix2(m)
	return &res
}
