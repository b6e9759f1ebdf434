package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/gmath/vec"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

func main() {
	var meshPath string
	var numSamples int
	var showAll bool
	var verbose bool
	flag.StringVar(&meshPath, "mesh", "", "optional STL mesh whose bounding box is added to the scene")
	flag.IntVar(&numSamples, "samples", 0, "number of random query points to add within the scene bounds")
	flag.BoolVar(&showAll, "all", false, "print every shape for each point, not just the nearest")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: closest_points [flags] <scene.yaml>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	scenePath := args[0]

	logger, err := NewLogger(verbose)
	essentials.Must(err)
	defer logger.Sync()

	logger.Info("Loading scene...")
	scene, err := ReadScene(scenePath)
	essentials.Must(err)

	if meshPath != "" {
		logger.Info("Loading mesh...")
		f, err := os.Open(meshPath)
		essentials.Must(err)
		tris, err := model3d.ReadSTL(f)
		f.Close()
		essentials.Must(err)
		mesh := model3d.NewMeshTriangles(tris)
		logger.Debugw("mesh bounds", "min", mesh.Min(), "max", mesh.Max())
		scene.Shapes = append(scene.Shapes, MeshBoundsShape("mesh", mesh))
	}

	if numSamples > 0 {
		min, max := SceneBounds(scene)
		logger.Debugw("sampling points", "count", numSamples, "min", min, "max", max)
		scene.Points = append(scene.Points, SamplePoints(min, max, numSamples)...)
	}

	if len(scene.Shapes) == 0 || len(scene.Points) == 0 {
		logger.Warnw("nothing to query", "shapes", len(scene.Shapes), "points", len(scene.Points))
		return
	}

	logger.Infow("Running queries...", "shapes", len(scene.Shapes), "points", len(scene.Points))
	reports := QueryPoints(scene.Shapes, scene.Points)
	for _, report := range reports {
		if !showAll {
			report.Results = report.Results[:1]
		}
		for _, r := range report.Results {
			fmt.Printf("%v -> %s: %v (distance %f)\n", report.Point, r.Shape.Name, r.Closest,
				r.Distance)
		}
	}
}

// A Result is the closest point on one shape.
type Result struct {
	Shape    *Shape
	Closest  vec.Vec3[float64]
	Distance float64
}

// A Report lists the results for one query point, nearest first.
type Report struct {
	Point   vec.Vec3[float64]
	Results []Result
}

// QueryPoints finds the closest point on every shape for every point.
func QueryPoints(shapes []*Shape, points []vec.Vec3[float64]) []Report {
	reports := make([]Report, len(points))
	essentials.ConcurrentMap(0, len(points), func(i int) {
		p := points[i]
		results := make([]Result, len(shapes))
		for j, s := range shapes {
			c := s.Closest(p)
			results[j] = Result{Shape: s, Closest: c, Distance: c.Dist(p)}
		}
		slices.SortStableFunc(results, func(a, b Result) bool {
			return a.Distance < b.Distance
		})
		reports[i] = Report{Point: p, Results: results}
	})
	return reports
}

// SceneBounds computes a box containing every point and every finite
// shape in the scene.
//
// Rays contribute only their origin.
func SceneBounds(scene *Scene) (min, max vec.Vec3[float64]) {
	var corners []vec.Vec3[float64]
	corners = append(corners, scene.Points...)
	for _, s := range scene.Shapes {
		switch s.Kind {
		case KindSegment, KindAABB:
			corners = append(corners, s.p1, s.p2)
		case KindSphere:
			r := vec.Splat3(s.radius)
			corners = append(corners, s.p1.Sub(r), s.p1.Add(r))
		case KindRay:
			corners = append(corners, s.p1)
		case KindOBB:
			for i := 0; i < 8; i++ {
				c := vec.Vec3d(float64(i&1), float64((i>>1)&1), float64((i>>2)&1))
				corners = append(corners, s.obb.TransformPoint(c.Scale(2).SubScalar(1)))
			}
		}
	}
	if len(corners) == 0 {
		return vec.Splat3(-1.0), vec.Splat3(1.0)
	}
	min, max = corners[0], corners[0]
	for _, c := range corners[1:] {
		min = min.Min(c)
		max = max.Max(c)
	}
	return
}

// SamplePoints creates uniformly random points in a box.
func SamplePoints(min, max vec.Vec3[float64], n int) []vec.Vec3[float64] {
	res := make([]vec.Vec3[float64], n)
	for i := range res {
		c := model3d.NewCoord3DRandBounds(vec.ToCoord3D(min), vec.ToCoord3D(max))
		res[i] = vec.FromCoord3D(c)
	}
	return res
}

// NewLogger creates a console logger for progress output.
func NewLogger(verbose bool) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      verbose,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
