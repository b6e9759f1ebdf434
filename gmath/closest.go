package gmath

import "github.com/unixpickle/gmath/num"

// ClosestPointOnLine finds the point on the segment from l1 to l2 that is
// closest to p.
//
// If l1 == l2, then l1 is returned.
func ClosestPointOnLine[T num.Float, V VecFloatOps[T, V]](l1, l2, p V) V {
	dir := l2.Sub(l1)
	length := dir.Length()
	dir = dir.Normalize()
	t := num.Clamp(dir.Dot(p.Sub(l1)), 0, length)
	return l1.Add(dir.Scale(t))
}

// ClosestPointOnAABB finds the point in the axis-aligned box [min, max] that
// is closest to p.
//
// Points inside the box are returned unchanged.
func ClosestPointOnAABB[T num.Number, V NumberOps[T, V]](min, max, p V) V {
	return p.Max(min).Min(max)
}

// ClosestPointOnSphere finds the point on the surface of the sphere with
// center s and radius r that is closest to p.
//
// If p == s, then s is returned.
func ClosestPointOnSphere[T num.Float, V VecFloatOps[T, V]](s V, r T, p V) V {
	return s.Add(p.Sub(s).Normalize().Scale(r))
}

// ClosestPointOnRay finds the point on the ray starting at r0 with direction
// rv that is closest to p.
//
// The direction needn't be normalized. If rv is zero, r0 is returned.
func ClosestPointOnRay[T num.Float, V VecFloatOps[T, V]](r0, rv, p V) V {
	d := p.Sub(r0).Dot(rv)
	if d <= 0 {
		return r0
	}
	return r0.Add(rv.Scale(d / rv.Mag2()))
}

// ClosestPointOnOBB finds the point in an oriented box that is closest to p.
//
// The box is the image of the cube [-1, 1]^n under the transform m.
// The result is only exact when m preserves angles (e.g. a rotation, uniform
// scale and translation). If m is singular, the result contains NaNs.
func ClosestPointOnOBB[T num.Float, V VecFloatOps[T, V], M PointTransform[V, M]](m M, p V) V {
	local := m.Inverse().TransformPoint(p)
	one := p.Splat(1)
	return m.TransformPoint(ClosestPointOnAABB[T](one.Neg(), one, local))
}
