package planner

import (
	"math"

	"github.com/galamdring/toolpath/data"
)

// trimOuterWall removes up to 0.90*lineWidthUm of arc length from the
// tail of an outer/inner wall path so the print seam overlaps rather
// than gaps. It never removes all points: the walk stops as soon as it
// finds a segment longer than the remaining target, or runs out of
// points.
func trimOuterWall(points []data.MicroVec3, lineWidthUm data.Micrometer) []data.MicroVec3 {
	target := data.Micrometer(math.Round(0.90 * float64(lineWidthUm)))

	pts := make([]data.MicroVec3, len(points))
	copy(pts, points)

	for len(pts) >= 2 {
		last := len(pts) - 1
		d := pts[last].XY().Sub(pts[last-1].XY()).Size()

		switch {
		case d > target:
			remaining := d - target
			if remaining > 100 {
				back := pts[last-1].XY().Sub(pts[last].XY()).Normal(remaining)
				pts[last] = pts[last].XY().Add(back).To3(pts[last].Z())
			}
			return pts

		case d == target:
			return pts[:last]

		default:
			pts = pts[:last]
			target -= d
		}
	}

	return pts
}
