// Package handler declares the capability interfaces the planner depends
// on but does not implement itself: the downstream G-code writer, the
// perimeter-avoidance oracle, and the island visit-order optimizer. This
// mirrors the teacher's handler package, which declares ModelReader,
// ModelSlicer, GCodeWriter and friends as the seams between GoSlice's
// pipeline stages.
package handler

import "github.com/galamdring/toolpath/data"

// Named gives a component a human-readable name for logging. clip's
// BoundaryAvoider embeds it the same way the teacher's modifier package
// embeds it in its own modifiers: set once in the constructor, read back
// through GetName wherever the component needs to identify itself.
type Named struct {
	Name string
}

// GetName returns the component's name.
func (n Named) GetName() string {
	return n.Name
}

// GCodeWriter is the low-level motion/state sink the planner's emission
// pass drives. It owns the current printer position, extruder, and
// cumulative print time; the planner never mutates any of that directly.
type GCodeWriter interface {
	CurrentZ() data.Micrometer
	CurrentExtruder() int
	PositionXY() data.MicroPoint
	PositionXYZ() data.MicroVec3
	PositionZ() data.Micrometer

	SwitchExtruder(index int)
	Retract()
	Fan(percent int)
	Comment(format string, args ...interface{})
	WriteMove(p data.MicroVec3, speedMMS int, lineWidthUm data.Micrometer)
	UpdateTotalPrintTime()
}

// BoundaryAvoider is the perimeter-avoidance oracle: it can test point
// containment, project a point to the boundary interior, and route a
// piecewise-linear path that stays inside the boundary between two
// points.
type BoundaryAvoider interface {
	PointIsInside(p data.MicroPoint) bool

	// MovePointInside returns a point moved at least distance inside the
	// boundary from p, and whether it succeeded.
	MovePointInside(p data.MicroPoint, distance data.Micrometer) (data.MicroPoint, bool)

	// CreatePathInside attempts to route a path from `from` to `to` that
	// stays inside the boundary. It reports whether a route was found; on
	// success it returns the interior route's points (excluding `from`,
	// including `to`).
	CreatePathInside(from, to data.MicroPoint) ([]data.MicroPoint, bool)
}

// IslandOrderOptimizer picks a visiting order for a set of independent
// polygons, and for each a start index into its point list.
type IslandOrderOptimizer interface {
	// Order returns, for the given polygons, a permutation of their
	// indices (visit order) and the chosen start index for each.
	Order(polygons data.Paths) (order []int, startIndex []int)
}
