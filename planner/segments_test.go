package planner

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/galamdring/toolpath/data"
)

func TestPathToSegmentsLength(t *testing.T) {
	points := []data.MicroVec3{
		data.NewMicroVec3(0, 0, 0),
		data.NewMicroVec3(1000, 0, 0),
		data.NewMicroVec3(1000, 1000, 0),
	}

	open := PathToSegments(points, false)
	if len(open) != len(points)-1 {
		t.Fatalf("open: got %d segments, want %d", len(open), len(points)-1)
	}

	closed := PathToSegments(points, true)
	if len(closed) != len(points) {
		t.Fatalf("closed: got %d segments, want %d", len(closed), len(points))
	}

	for i := 0; i+1 < len(closed); i++ {
		if closed[i].End != closed[i+1].Start {
			t.Errorf("segment %d does not share an endpoint with segment %d", i, i+1)
		}
	}
}

// TestSplitSegmentForVerticesNoEligibleVertex is scenario S1: a square
// perimeter's first edge, tested against all four corners at distance
// 500, yields no split: the two far corners sit 10000 off the edge, far
// more than the distance allows, and the edge's own endpoints do not lie
// strictly between its start and end.
func TestSplitSegmentForVerticesNoEligibleVertex(t *testing.T) {
	perimeter := []data.MicroVec3{
		data.NewMicroVec3(0, 0, 0),
		data.NewMicroVec3(10000, 0, 0),
		data.NewMicroVec3(10000, 10000, 0),
		data.NewMicroVec3(0, 10000, 0),
	}
	seg := data.Segment{Start: perimeter[0], End: perimeter[1]}

	_, ok := splitSegmentForVertices(seg, perimeter, 500)
	if ok {
		t.Error("expected no split for S1's square perimeter")
	}
}

func TestMakeCloseSegmentsMergeableNoChangeWhenNothingQualifies(t *testing.T) {
	perimeter := []data.MicroVec3{
		data.NewMicroVec3(0, 0, 0),
		data.NewMicroVec3(10000, 0, 0),
		data.NewMicroVec3(10000, 10000, 0),
		data.NewMicroVec3(0, 10000, 0),
	}

	got := MakeCloseSegmentsMergeable(perimeter, 500)
	if diff := cmp.Diff(perimeter, got, vec3Comparer); diff != "" {
		t.Errorf("no vertex should qualify for a split (-want +got):\n%s", diff)
	}
}
