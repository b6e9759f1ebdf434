package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/gmath/gmath"
	"github.com/unixpickle/gmath/mat"
	"github.com/unixpickle/gmath/num"
	"github.com/unixpickle/gmath/vec"
	"github.com/unixpickle/model3d/model3d"
	"gopkg.in/yaml.v3"
)

const (
	KindSegment = "segment"
	KindAABB    = "aabb"
	KindSphere  = "sphere"
	KindRay     = "ray"
	KindOBB     = "obb"
)

// SceneConfig is the YAML representation of a scene.
type SceneConfig struct {
	Shapes []ShapeConfig `yaml:"shapes"`
	Points [][]float64   `yaml:"points"`
}

// ShapeConfig describes one shape. Which fields are used depends on Kind.
type ShapeConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Segment endpoints.
	Start []float64 `yaml:"start"`
	End   []float64 `yaml:"end"`

	// Box corners.
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`

	// Sphere and OBB center.
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`

	Origin    []float64 `yaml:"origin"`
	Direction []float64 `yaml:"direction"`

	// OBB rotation (in degrees) and half side length.
	Axis     []float64 `yaml:"axis"`
	Angle    float64   `yaml:"angle"`
	HalfSize float64   `yaml:"half_size"`
}

// A Shape is a validated shape that can be queried for closest points.
type Shape struct {
	Name string
	Kind string

	p1     vec.Vec3[float64]
	p2     vec.Vec3[float64]
	radius float64
	obb    mat.Mat34[float64]
}

// A Scene is a set of shapes and query points.
type Scene struct {
	Shapes []*Shape
	Points []vec.Vec3[float64]
}

// LoadScene decodes and validates a YAML scene.
func LoadScene(r io.Reader) (*Scene, error) {
	var c SceneConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	return c.Build()
}

// ReadScene loads a scene from a YAML file.
func ReadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scene")
	}
	defer f.Close()
	scene, err := LoadScene(f)
	if err != nil {
		return nil, errors.Wrap(err, "read scene")
	}
	return scene, nil
}

// Build validates the config and creates the shapes and points.
func (c *SceneConfig) Build() (*Scene, error) {
	res := &Scene{}
	for i, sc := range c.Shapes {
		shape, err := sc.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		res.Shapes = append(res.Shapes, shape)
	}
	for i, p := range c.Points {
		v, err := parseVec3("point", p)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		res.Points = append(res.Points, v)
	}
	return res, nil
}

// Build validates the config and creates a Shape.
func (s *ShapeConfig) Build() (*Shape, error) {
	res := &Shape{Name: s.Name, Kind: s.Kind}
	if res.Name == "" {
		res.Name = s.Kind
	}
	var err error
	switch s.Kind {
	case KindSegment:
		if res.p1, err = parseVec3("start", s.Start); err != nil {
			return nil, err
		}
		if res.p2, err = parseVec3("end", s.End); err != nil {
			return nil, err
		}
	case KindAABB:
		if res.p1, err = parseVec3("min", s.Min); err != nil {
			return nil, err
		}
		if res.p2, err = parseVec3("max", s.Max); err != nil {
			return nil, err
		}
		if res.p1.Max(res.p2) != res.p2 {
			return nil, errors.Errorf("min %v exceeds max %v", res.p1, res.p2)
		}
	case KindSphere:
		if res.p1, err = parseVec3("center", s.Center); err != nil {
			return nil, err
		}
		if s.Radius < 0 {
			return nil, errors.Errorf("negative radius: %f", s.Radius)
		}
		res.radius = s.Radius
	case KindRay:
		if res.p1, err = parseVec3("origin", s.Origin); err != nil {
			return nil, err
		}
		if res.p2, err = parseVec3("direction", s.Direction); err != nil {
			return nil, err
		}
	case KindOBB:
		center, err := parseVec3("center", s.Center)
		if err != nil {
			return nil, err
		}
		axis, err := parseVec3("axis", s.Axis)
		if err != nil {
			return nil, err
		}
		if axis.Mag2() == 0 {
			return nil, errors.New("rotation axis must be nonzero")
		}
		if s.HalfSize <= 0 {
			return nil, errors.Errorf("half size must be positive: %f", s.HalfSize)
		}
		rotation := mat.QuatAxisAngle(axis, num.DegToRad(s.Angle)).Mat3()
		scale := mat.Scale3(vec.Splat3(s.HalfSize))
		res.obb = mat.FromMat3(rotation.Mul(scale), center)
	default:
		return nil, errors.Errorf("unknown shape kind: %q", s.Kind)
	}
	return res, nil
}

// MeshBoundsShape creates an axis-aligned box around a mesh.
func MeshBoundsShape(name string, m *model3d.Mesh) *Shape {
	return &Shape{
		Name: name,
		Kind: KindAABB,
		p1:   vec.FromCoord3D(m.Min()),
		p2:   vec.FromCoord3D(m.Max()),
	}
}

// Closest finds the point on the shape closest to p.
func (s *Shape) Closest(p vec.Vec3[float64]) vec.Vec3[float64] {
	switch s.Kind {
	case KindSegment:
		return gmath.ClosestPointOnLine[float64](s.p1, s.p2, p)
	case KindAABB:
		return gmath.ClosestPointOnAABB[float64](s.p1, s.p2, p)
	case KindSphere:
		return gmath.ClosestPointOnSphere[float64](s.p1, s.radius, p)
	case KindRay:
		return gmath.ClosestPointOnRay[float64](s.p1, s.p2, p)
	case KindOBB:
		return gmath.ClosestPointOnOBB[float64](s.obb, p)
	}
	panic("unknown shape kind: " + s.Kind)
}

func parseVec3(field string, values []float64) (vec.Vec3[float64], error) {
	if len(values) != 3 {
		return vec.Vec3[float64]{}, errors.Errorf("%s: expected 3 components but got %d",
			field, len(values))
	}
	return vec.FromArray3([3]float64{values[0], values[1], values[2]}), nil
}
