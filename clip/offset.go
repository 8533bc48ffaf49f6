package clip

import (
	clipper "github.com/aligator/go.clipper"

	"github.com/galamdring/toolpath/data"
)

// Offset insets (negative offsetUm) or outsets (positive) every path in
// paths by offsetUm, using a square miter join on closed polygons, mirroring
// the teacher's clipperClipper.Inset but operating on plain data.Paths
// instead of the (out of scope, mesh-derived) data.LayerPart wall/hole
// structure.
//
// It is the building block an avoidance boundary is typically constructed
// from: offsetting an outer perimeter inward by half its extrusion width
// gives the oracle a boundary that keeps travel moves from crossing the
// printed wall's centerline.
func Offset(paths data.Paths, offsetUm data.Micrometer) data.Paths {
	if len(paths) == 0 {
		return nil
	}

	o := clipper.NewClipperOffset()
	o.MiterLimit = 2
	o.AddPaths(toClipperPaths(paths), clipper.JtSquare, clipper.EtClosedPolygon)

	result := o.Execute(float64(offsetUm))
	return fromClipperPaths(result)
}

// PointInPolygon reports whether p lies inside, on, or outside path, using
// the external clipper library's even-odd point-in-polygon test. A
// positive return means inside, 0 means outside, and -1 means exactly on
// the boundary.
func PointInPolygon(p data.MicroPoint, path data.Path) int {
	return clipper.PointInPolygon(toClipperPoint(p), toClipperPath(path))
}
