package gmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
)

func TestScalarDispatch(t *testing.T) {
	if Min[int](S(3), S(5)) != S(3) || Max[int](S(3), S(5)) != S(5) {
		t.Error("bad scalar min/max")
	}
	if Clamp[float64](S(5.0), S(0.0), S(1.0)) != S(1.0) {
		t.Error("bad scalar clamp")
	}
	if Step[uint8](S[uint8](2), S[uint8](1)) != S[uint8](1) {
		t.Error("bad scalar step")
	}
	if Sign[float64](S(-3.0)) != S(-1.0) || Abs[int16](S[int16](-7)) != S[int16](7) {
		t.Error("bad scalar sign/abs")
	}
	if Neg[float32](S[float32](2)) != S[float32](-2) {
		t.Error("bad scalar negation")
	}
	if Lerp(S(2.0), S(4.0), 0.25) != S(2.5) {
		t.Error("bad scalar lerp")
	}
	if Smoothstep(S(0.0), S(2.0), 1.0) != S(0.5) {
		t.Error("bad scalar smoothstep")
	}
	if Saturate[float64](S(1.5)) != S(1.0) {
		t.Error("bad scalar saturate")
	}
	if !Approx(RadToDeg[float64](DegToRad[float64](S(45.0))), S(45.0), 1e-12) {
		t.Error("bad scalar degree round trip")
	}
	if Round[float64](S(-2.5)) != S(-3.0) || Floor[float64](S(-2.5)) != S(-3.0) ||
		Ceil[float64](S(-2.5)) != S(-2.0) || Trunc[float64](S(-2.5)) != S(-2.0) ||
		Frac[float64](S(-2.5)) != S(0.5) {
		t.Error("bad scalar rounding")
	}
	if Powi[float64](S(2.0), -2) != S(0.25) || Powf(S(9.0), 0.5) != S(3.0) ||
		Sqrt[float64](S(16.0)) != S(4.0) {
		t.Error("bad scalar powers")
	}
	if Dot[int](S(3), S(4)) != 12 || Length[float64](S(-3.0)) != 3 {
		t.Error("bad scalar products")
	}
	if Normalize[float64](S(-0.5)) != S(-1.0) || Normalize[float64](S(0.0)) != S(0.0) {
		t.Error("bad scalar normalize")
	}
	if Distance[float64](S(1.0), S(-2.0)) != 3 || Dist2[float64](S(1.0), S(-2.0)) != 9 {
		t.Error("bad scalar distance")
	}
}

func TestScalarAtPanics(t *testing.T) {
	if S(3).At(0) != 3 {
		t.Error("unexpected component")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	S(3).At(1)
}

func TestVectorDispatch(t *testing.T) {
	if Clamp[float32](vec.Vec3f(5, -2, 0.5), vec.Splat3[float32](0), vec.Splat3[float32](1)) !=
		vec.Vec3f(1, 0, 0.5) {
		t.Error("bad vector clamp")
	}
	if Dot[float32](vec.Vec3f(1, 2, 3), vec.Vec3f(4, 5, 6)) != 32 {
		t.Error("bad vector dot")
	}
	if Cross(vec.Vec3f(1, 0, 0), vec.Vec3f(0, 1, 0)) != vec.Vec3f(0, 0, 1) {
		t.Error("bad cross product")
	}
	if Perp(vec.Vec2i(1, 2)) != vec.Vec2i(-2, 1) {
		t.Error("bad perp")
	}
	if Neg[int32](vec.Vec4i(1, -2, 3, -4)) != vec.Vec4i(-1, 2, -3, 4) {
		t.Error("bad vector negation")
	}
	if Sign[float64](vec.Vec2d(-3, 0)) != vec.Vec2d(-1, 0) {
		t.Error("bad vector sign")
	}
	if Lerp(vec.Vec2d(0, 2), vec.Vec2d(4, 4), 0.5) != vec.Vec2d(2, 3) {
		t.Error("bad vector lerp")
	}
	if !Approx(Sin[float64](vec.Vec3d(0, math.Pi/2, math.Pi)), vec.Vec3d(0, 1, 0), 1e-12) {
		t.Error("bad vector sin")
	}
	if Min[uint32](vec.Vec2u(1, 7), vec.Vec2u(3, 2)) != vec.Vec2u(1, 2) {
		t.Error("bad unsigned min")
	}
}

func TestNormalizeLength(t *testing.T) {
	gen := rand.New(rand.NewSource(1337))
	for i := 0; i < 1000; i++ {
		testNormalizeLength[float64](t, S(gen.NormFloat64()))
		testNormalizeLength[float64](t, vec.Vec2d(gen.NormFloat64(), gen.NormFloat64()))
		testNormalizeLength[float32](t, vec.Vec3f(float32(gen.NormFloat64()),
			float32(gen.NormFloat64()), float32(gen.NormFloat64())))
		testNormalizeLength[float64](t, vec.Vec4d(gen.NormFloat64(), gen.NormFloat64(),
			gen.NormFloat64(), gen.NormFloat64()))
	}
	if Length[float32](Normalize[float32](vec.Zero3[float32]())) != 0 {
		t.Error("normalized zero vector should have zero length")
	}
}

func testNormalizeLength[T num.Float, V VecFloatOps[T, V]](t *testing.T, v V) {
	if Length[T](v) < 0 {
		t.Fatalf("negative length for %v", v)
	}
	if l := Length[T](Normalize[T](v)); !num.Approx(l, 1, 1e-5) {
		t.Fatalf("normalized %v has length %v", v, l)
	}
	if !num.Approx(Mag2[T](v), Dot[T](v, v), 1e-5) {
		t.Fatalf("bad squared magnitude for %v", v)
	}
}

func BenchmarkVecDispatch(b *testing.B) {
	v1 := vec.Vec3d(1, 2, 3)
	v2 := vec.Vec3d(3, -1, 2)
	for i := 0; i < b.N; i++ {
		v1 = Normalize[float64](Clamp[float64](v1.Add(v2), v2, v1.Add(v2).Abs()))
	}
}
