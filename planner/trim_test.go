package planner

import (
	"testing"

	"github.com/galamdring/toolpath/data"
)

// TestTrimOuterWall is scenario S3: trimming should replace the last
// point with (1450,0,0): the final segment (2000->1000) is longer than
// target (450) by 550, which exceeds the 100um dead zone, so the last
// point moves back along that segment by 550um from (2000,0,0).
func TestTrimOuterWall(t *testing.T) {
	points := []data.MicroVec3{
		data.NewMicroVec3(0, 0, 0),
		data.NewMicroVec3(1000, 0, 0),
		data.NewMicroVec3(2000, 0, 0),
	}

	got := trimOuterWall(points, 500)
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}

	want := data.NewMicroVec3(1450, 0, 0)
	if got[2] != want {
		t.Errorf("last point: got %v, want %v", got[2], want)
	}
}

// TestTrimOuterWallNeverEmptiesPath covers invariant 6: trimming never
// deletes every point even when every segment is shorter than target.
func TestTrimOuterWallNeverEmptiesPath(t *testing.T) {
	points := []data.MicroVec3{
		data.NewMicroVec3(0, 0, 0),
		data.NewMicroVec3(100, 0, 0),
		data.NewMicroVec3(200, 0, 0),
	}

	got := trimOuterWall(points, 10000)
	if len(got) == 0 {
		t.Fatal("trimOuterWall must never delete every point")
	}
}
