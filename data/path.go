package data

// Path is an ordered sequence of 2D points, e.g. one polygon or one open
// traversal order, mirroring the teacher's data.Path used throughout
// clip/clipper.go.
type Path []MicroPoint

// Paths is a collection of independent Path values, e.g. the contours that
// make up a layer.
type Paths []Path

// IsAlmostFinished reports whether the path's last point lies within
// snapDistance of its first point, grounded on Path.IsAlmostFinished as
// used by slicer/slice/layer.go to decide when to close a polygon.
func (p Path) IsAlmostFinished(snapDistance Micrometer) bool {
	if len(p) < 2 {
		return false
	}
	return p[len(p)-1].Sub(p[0]).ShorterThan(snapDistance)
}
