package vec

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// FromCoord3D converts a model3d coordinate into a Vec3.
func FromCoord3D(c model3d.Coord3D) Vec3[float64] {
	return Vec3[float64]{X: c.X, Y: c.Y, Z: c.Z}
}

// ToCoord3D converts v into a model3d coordinate.
func ToCoord3D(v Vec3[float64]) model3d.Coord3D {
	return model3d.XYZ(v.X, v.Y, v.Z)
}

// FromCoord2D converts a model2d coordinate into a Vec2.
func FromCoord2D(c model2d.Coord) Vec2[float64] {
	return Vec2[float64]{X: c.X, Y: c.Y}
}

// ToCoord2D converts v into a model2d coordinate.
func ToCoord2D(v Vec2[float64]) model2d.Coord {
	return model2d.XY(v.X, v.Y)
}
