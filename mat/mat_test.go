package mat

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/unixpickle/gmath/vec"
	"github.com/unixpickle/model3d/model3d"
)

func TestMat2Inverse(t *testing.T) {
	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		var m Mat2[float64]
		for j := range m {
			m[j] = gen.NormFloat64()
		}
		m[0] += 3
		m[3] += 3
		mustApproxArray(t, entries(Identity2[float64]()), entries(m.Mul(m.Inverse())))

		expected := ToMatrix2(m).Inverse()
		mustApproxArray(t, entries(FromMatrix2(expected)), entries(m.Inverse()))
	}
}

func TestMat3Inverse(t *testing.T) {
	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		m := randomMat3(gen)
		mustApproxArray(t, entries(Identity3[float64]()), entries(m.Mul(m.Inverse())))
		mustApproxArray(t, entries(Identity3[float64]()), entries(m.Inverse().Mul(m)))

		expected := ToMatrix3(m).Inverse()
		mustApproxArray(t, entries(FromMatrix3(expected)), entries(m.Inverse()))
		if math.Abs(ToMatrix3(m).Det()-m.Det()) > 1e-8 {
			t.Fatalf("determinant should be %f but got %f", ToMatrix3(m).Det(), m.Det())
		}

		c := model3d.NewCoord3DRandNorm()
		actual := m.MulVec(vec.FromCoord3D(c))
		if !vec.FromCoord3D(ToMatrix3(m).MulColumn(c)).Approx(actual, 1e-8) {
			t.Fatalf("unexpected product %v", actual)
		}
	}
}

func TestMat4Inverse(t *testing.T) {
	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		var m Mat4[float64]
		for j := range m {
			m[j] = gen.NormFloat64()
			if j%5 == 0 {
				m[j] += 4
			}
		}
		mustApproxArray(t, entries(Identity4[float64]()), entries(m.Mul(m.Inverse())))
		mustApproxArray(t, entries(Identity4[float64]()), entries(m.Inverse().Mul(m)))
		if math.Abs(m.Det()-m.Transpose().Det()) > 1e-8 {
			t.Fatal("determinant should be invariant to transpose")
		}
	}
	if d := Scale4(vec.Vec3d(2, 3, 4)).Det(); d != 24 {
		t.Errorf("unexpected determinant %f", d)
	}
}

func TestMat34(t *testing.T) {
	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		m1 := FromMat3(randomMat3(gen), randomVec3(gen))
		m2 := FromMat3(randomMat3(gen), randomVec3(gen))
		p := randomVec3(gen)

		mustApproxArray(t, entries(m1.Mat4().Mul(m2.Mat4())), entries(m1.Mul(m2).Mat4()))
		if !m1.Mul(m2).TransformPoint(p).Approx(m1.TransformPoint(m2.TransformPoint(p)), 1e-8) {
			t.Fatal("composition should apply m2 first")
		}
		if !m1.Inverse().TransformPoint(m1.TransformPoint(p)).Approx(p, 1e-8) {
			t.Fatal("inverse should undo transform")
		}
		if !m1.Mat4().TransformPoint(p).Approx(m1.TransformPoint(p), 1e-8) {
			t.Fatal("Mat4 should match Mat34")
		}
		if m1.TransformVector(p) != m1.Linear().MulVec(p) {
			t.Fatal("vectors should ignore translation")
		}
	}
}

func TestTranslation(t *testing.T) {
	offset := vec.Vec3d(1, -2, 3)
	if Translate34(offset).TransformPoint(vec.Vec3d(1, 1, 1)) != vec.Vec3d(2, -1, 4) {
		t.Error("bad Mat34 translation")
	}
	if Translate4(offset).TransformPoint(vec.Vec3d(1, 1, 1)) != vec.Vec3d(2, -1, 4) {
		t.Error("bad Mat4 translation")
	}
	if Translate3(vec.Vec2d(1, -2)).TransformPoint(vec.Vec2d(1, 1)) != vec.Vec2d(2, -1) {
		t.Error("bad Mat3 translation")
	}
	if Identity34[float64]().WithTranslation(offset).Translation() != offset {
		t.Error("bad Mat34 translation round trip")
	}
	if Identity4[float64]().WithTranslation(offset).Translation() != offset {
		t.Error("bad Mat4 translation round trip")
	}
	if Identity3[float64]().WithTranslation(offset.XY()).Translation() != offset.XY() {
		t.Error("bad Mat3 translation round trip")
	}
	if Translate34(offset).Inverse().Translation() != offset.Neg() {
		t.Error("inverse translation should be negated")
	}
}

func TestSingularInverse(t *testing.T) {
	if !hasNonFinite(entries(Mat2[float64]{1, 2, 2, 4}.Inverse())) {
		t.Error("singular Mat2 should produce non-finite inverse")
	}
	if !hasNonFinite(entries(Scale3(vec.Vec3d(1, 0, 1)).Inverse())) {
		t.Error("singular Mat3 should produce non-finite inverse")
	}
	if !hasNonFinite(entries(Scale34(vec.Vec3f(1, 1, 0)).Inverse().Mat4())) {
		t.Error("singular Mat34 should produce non-finite inverse")
	}
	if !hasNonFinite(entries(Mat4[float64]{}.Inverse())) {
		t.Error("singular Mat4 should produce non-finite inverse")
	}
}

func TestAtPanics(t *testing.T) {
	m := Identity34[float32]()
	if m.At(1, 1) != 1 || m.At(1, 3) != 0 {
		t.Error("unexpected entries")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	m.At(3, 0)
}

func TestQuatRotation(t *testing.T) {
	q := QuatAxisAngle(vec.Vec3d(0, 0, 2), math.Pi/2)
	if !q.Rotate(vec.Vec3d(1, 0, 0)).Approx(vec.Vec3d(0, 1, 0), 1e-12) {
		t.Errorf("unexpected rotation %v", q.Rotate(vec.Vec3d(1, 0, 0)))
	}

	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		q1 := QuatAxisAngle(randomVec3(gen), gen.Float64()*4)
		q2 := QuatAxisAngle(randomVec3(gen), gen.Float64()*4)
		p := randomVec3(gen)

		if !q1.Mat3().MulVec(p).Approx(q1.Rotate(p), 1e-8) {
			t.Fatal("matrix should match rotation")
		}
		if !q1.Mul(q2).Rotate(p).Approx(q1.Rotate(q2.Rotate(p)), 1e-8) {
			t.Fatal("product should compose rotations")
		}
		if !q1.Inverse().Rotate(q1.Rotate(p)).Approx(p, 1e-8) {
			t.Fatal("inverse should undo rotation")
		}
		if math.Abs(q1.Mat3().Det()-1) > 1e-8 {
			t.Fatal("rotation should preserve volume")
		}
		if math.Abs(q1.Norm()-1) > 1e-8 {
			t.Fatal("axis-angle quaternion should be normalized")
		}
	}
}

func TestQuatSlerp(t *testing.T) {
	axis := vec.Vec3d(1, 2, 3)
	q1 := QuatAxisAngle(axis, 0.5)
	q2 := QuatAxisAngle(axis, 1.5)
	mid := q1.Slerp(q2, 0.5)
	expected := QuatAxisAngle(axis, 1.0)
	if math.Abs(mid.Dot(expected)-1) > 1e-8 {
		t.Errorf("expected %v but got %v", expected, mid)
	}
	if q1.Slerp(q2, 0) != q1.Normalize() {
		t.Error("slerp at 0 should return start")
	}
}

func TestRotation2(t *testing.T) {
	r := Rotation2(math.Pi / 2)
	if !r.MulVec(vec.Vec2d(1, 0)).Approx(vec.Vec2d(0, 1), 1e-12) {
		t.Error("rotation should be counter-clockwise")
	}
	m := FromMat2(r)
	if !m.TransformPoint(vec.Vec2d(0, 1)).Approx(vec.Vec2d(-1, 0), 1e-12) {
		t.Error("embedded rotation should match")
	}
}

func randomMat3(gen *rand.Rand) Mat3[float64] {
	var m Mat3[float64]
	for j := range m {
		m[j] = gen.NormFloat64()
		if j%4 == 0 {
			m[j] += 3
		}
	}
	return m
}

func randomVec3(gen *rand.Rand) vec.Vec3[float64] {
	return vec.Vec3d(gen.NormFloat64(), gen.NormFloat64(), gen.NormFloat64())
}

func hasNonFinite(values []float64) bool {
	for _, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

func entries(m any) []float64 {
	switch m := m.(type) {
	case Mat2[float64]:
		return m[:]
	case Mat3[float64]:
		return m[:]
	case Mat4[float64]:
		return m[:]
	case Mat4[float32]:
		res := make([]float64, len(m))
		for i, x := range m {
			res[i] = float64(x)
		}
		return res
	}
	panic(fmt.Sprintf("unsupported matrix type %T", m))
}

func mustApproxArray(t *testing.T, expected, actual []float64) {
	for i, x := range expected {
		if math.Abs(x-actual[i]) > 1e-6 {
			t.Fatalf("expected %v but got %v", expected, actual)
		}
	}
}
