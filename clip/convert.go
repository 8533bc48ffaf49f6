// Package clip adapts the external github.com/aligator/go.clipper library
// to the planner's needs: point-in-polygon testing and polygon offsetting,
// grounded on the teacher's clip/clipper.go (which wraps the same library
// for GoSlice's layer-wide boolean operations and wall insetting). The
// planner-specific perimeter-avoidance oracle lives in avoider.go.
package clip

import (
	clipper "github.com/aligator/go.clipper"

	"github.com/galamdring/toolpath/data"
)

// toClipperPoint converts the planner's point representation to the
// representation used by the external clipper library.
func toClipperPoint(p data.MicroPoint) *clipper.IntPoint {
	return &clipper.IntPoint{
		X: clipper.CInt(p.X()),
		Y: clipper.CInt(p.Y()),
	}
}

// toClipperPath converts a data.Path to the external library's Path type.
func toClipperPath(p data.Path) clipper.Path {
	path := make(clipper.Path, 0, len(p))
	for _, point := range p {
		path = append(path, toClipperPoint(point))
	}
	return path
}

// toClipperPaths converts a data.Paths to the external library's Paths
// type.
func toClipperPaths(p data.Paths) clipper.Paths {
	paths := make(clipper.Paths, 0, len(p))
	for _, path := range p {
		paths = append(paths, toClipperPath(path))
	}
	return paths
}

// fromClipperPoint converts an external clipper library point back to the
// planner's representation.
func fromClipperPoint(p *clipper.IntPoint) data.MicroPoint {
	return data.NewMicroPoint(data.Micrometer(p.X), data.Micrometer(p.Y))
}

// fromClipperPath converts an external clipper library path back to a
// data.Path.
func fromClipperPath(p clipper.Path) data.Path {
	path := make(data.Path, 0, len(p))
	for _, point := range p {
		path = append(path, fromClipperPoint(point))
	}
	return path
}

// fromClipperPaths converts an external clipper library Paths value back
// to data.Paths.
func fromClipperPaths(p clipper.Paths) data.Paths {
	paths := make(data.Paths, 0, len(p))
	for _, path := range p {
		paths = append(paths, fromClipperPath(path))
	}
	return paths
}
