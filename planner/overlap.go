package planner

import "github.com/galamdring/toolpath/data"

// segmentState is a tagged variant for the overlap detector's per-segment
// annotation: untouched/merged/removed are mutually exclusive, so a
// tagged enum is clearer than a bitflag.
type segmentState int

const (
	untouched segmentState = iota
	merged
	removed
)

// RemovePerimeterOverlaps detects segment pairs in a closed perimeter that
// are close, antiparallel, and short-delta at both endpoints, merges them
// to a midline with a widened extrusion, and returns the resulting
// fragments. modified reports whether any merge occurred; when it is
// false, fragments contains exactly one PathAndWidth holding the input
// perimeter's points (plus any vertices inserted by
// MakeCloseSegmentsMergeable) followed by a repeat of the first point
// that closes the loop, i.e. the operation is idempotent on perimeters
// with no eligible pairs.
func RemovePerimeterOverlaps(perimeter []data.MicroVec3, overlapMergeUm data.Micrometer) (modified bool, fragments []data.PathAndWidth) {
	mergeable := MakeCloseSegmentsMergeable(perimeter, overlapMergeUm)
	segments := PathToSegments(mergeable, true)

	states := make([]segmentState, len(segments))

	for i := range segments {
		if states[i] == removed {
			continue
		}
		for j := i + 1; j < len(segments); j++ {
			if states[j] == removed {
				continue
			}

			gapStart := segments[i].StartXY().Sub(segments[j].EndXY()).Size()
			gapEnd := segments[i].EndXY().Sub(segments[j].StartXY()).Size()
			if gapStart >= overlapMergeUm || gapEnd >= overlapMergeUm {
				continue
			}

			width := gapStart
			if gapEnd < width {
				width = gapEnd
			}

			newStart := segments[i].StartXY().Midpoint(segments[j].EndXY())
			newEnd := segments[i].EndXY().Midpoint(segments[j].StartXY())
			segments[i].Width = width
			segments[i].Start = newStart.To3(segments[i].Start.Z())
			segments[i].End = newEnd.To3(segments[i].End.Z())

			states[i] = merged
			states[j] = removed
			modified = true
			break
		}
	}

	filtered := make([]data.Segment, 0, len(segments))
	for i, s := range segments {
		if states[i] != removed {
			filtered = append(filtered, s)
		}
	}

	return modified, buildFragments(filtered, overlapMergeUm)
}

// buildFragments walks a segment list and emits PathAndWidth fragments: a
// new fragment starts whenever consecutive segments are not
// endpoint-connected or have differing effective widths.
func buildFragments(segments []data.Segment, overlapMergeUm data.Micrometer) []data.PathAndWidth {
	if len(segments) == 0 {
		return nil
	}

	var fragments []data.PathAndWidth
	points := []data.MicroVec3{segments[0].Start, segments[0].End}
	width := segments[0].Width + overlapMergeUm

	for i := 1; i < len(segments); i++ {
		s := segments[i]
		w := s.Width + overlapMergeUm
		connected := segments[i-1].End == s.Start

		if connected && w == width {
			points = append(points, s.End)
			continue
		}

		fragments = append(fragments, data.PathAndWidth{Path: points, ExtrusionWidthUm: width})
		points = []data.MicroVec3{s.Start, s.End}
		width = w
	}

	return append(fragments, data.PathAndWidth{Path: points, ExtrusionWidthUm: width})
}
