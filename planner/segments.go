package planner

import (
	"sort"

	"github.com/galamdring/toolpath/data"
)

// PathToSegments converts a point sequence into a list of directed
// segments: n segments if closed (the last wraps to the first), else n-1.
func PathToSegments(points []data.MicroVec3, closed bool) []data.Segment {
	n := len(points)
	if n < 2 {
		return nil
	}

	count := n - 1
	if closed {
		count = n
	}

	segments := make([]data.Segment, 0, count)
	for i := 0; i < count; i++ {
		j := (i + 1) % n
		segments = append(segments, data.Segment{Start: points[i], End: points[j]})
	}
	return segments
}

// splitSegmentForVertices tests every vertex for a near-perpendicular
// projection onto seg, and if any qualify, splits seg at their along-axis
// projections. It returns false if no vertex qualifies, leaving seg
// unchanged.
func splitSegmentForVertices(seg data.Segment, vertices []data.MicroVec3, maxDistance data.Micrometer) ([]data.Segment, bool) {
	start := seg.StartXY()
	direction := seg.EndXY().Sub(start)
	length := direction.Size()
	if length == 0 {
		return nil, false
	}
	lengthSquared := direction.Dot(direction)
	perp := direction.PerpendicularRight()

	var order []data.Micrometer
	seen := map[data.Micrometer]bool{}
	add := func(d data.Micrometer) {
		if !seen[d] {
			seen[d] = true
			order = append(order, d)
		}
	}

	found := false
	for _, v := range vertices {
		offset := v.XY().Sub(start)

		perpDot := offset.Dot(perp)
		if perpDot < 0 {
			perpDot = -perpDot
		}
		if perpDot >= maxDistance*length {
			continue
		}

		alongDot := offset.Dot(direction)
		if alongDot <= 0 || alongDot >= lengthSquared {
			continue
		}

		add(alongDot / length)
		found = true
	}

	if !found {
		return nil, false
	}

	add(0)
	add(length)
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	segments := make([]data.Segment, 0, len(order)-1)
	for i := 0; i+1 < len(order); i++ {
		segments = append(segments, data.Segment{
			Start: pointAtDistance(seg, direction, length, order[i]),
			End:   pointAtDistance(seg, direction, length, order[i+1]),
		})
	}
	return segments, true
}

// pointAtDistance linearly interpolates a 3D point along seg at the given
// distance from its start, including z, so that segments produced by
// splitting stay on the source path's z.
func pointAtDistance(seg data.Segment, direction data.MicroPoint, length, distance data.Micrometer) data.MicroVec3 {
	if length == 0 {
		return seg.Start
	}
	x := seg.Start.X() + direction.X()*distance/length
	y := seg.Start.Y() + direction.Y()*distance/length
	z := seg.Start.Z() + (seg.End.Z()-seg.Start.Z())*distance/length
	return data.NewMicroVec3(x, y, z)
}

// MakeCloseSegmentsMergeable inserts virtual vertices on one side of a
// near-parallel segment pair so the overlap detector can match them up
// pairwise. It processes the perimeter's segments in reverse order and
// returns the concatenated start points of the resulting (possibly
// subdivided) segment list.
func MakeCloseSegmentsMergeable(perimeter []data.MicroVec3, distance data.Micrometer) []data.MicroVec3 {
	segments := PathToSegments(perimeter, true)

	for i := len(segments) - 1; i >= 0; i-- {
		split, ok := splitSegmentForVertices(segments[i], perimeter, distance)
		if !ok {
			continue
		}
		rest := append([]data.Segment{}, segments[i+1:]...)
		segments = append(segments[:i], split...)
		segments = append(segments, rest...)
	}

	points := make([]data.MicroVec3, 0, len(segments))
	for _, s := range segments {
		points = append(points, s.Start)
	}
	return points
}
