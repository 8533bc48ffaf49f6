package clip

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/galamdring/toolpath/data"
)

func TestOffsetInsetShrinksSquare(t *testing.T) {
	paths := data.Paths{square()}

	inset := Offset(paths, -1000)
	if len(inset) == 0 {
		t.Fatal("expected at least one resulting path")
	}

	for _, p := range inset {
		for _, pt := range p {
			if pt.X() < 500 || pt.X() > 9500 || pt.Y() < 500 || pt.Y() > 9500 {
				t.Errorf("inset point %v should lie at least 500um inside the original 10000x10000 square", pt)
			}
		}
	}
}

func TestPointInPolygon(t *testing.T) {
	poly := square()

	if got := PointInPolygon(data.NewMicroPoint(5000, 5000), poly); got <= 0 {
		t.Errorf("center point should report inside (>0), got %d", got)
	}
	if got := PointInPolygon(data.NewMicroPoint(-100, 5000), poly); got != 0 {
		t.Errorf("point outside the polygon should report 0, got %d", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	p := data.NewMicroPoint(1234, -5678)
	got := fromClipperPoint(toClipperPoint(p))
	if got != p {
		t.Errorf("point round-trip: got %v, want %v", got, p)
	}

	path := data.Path{p, data.NewMicroPoint(0, 0)}
	gotPath := fromClipperPath(toClipperPath(path))
	pointComparer := cmp.Comparer(func(a, b data.MicroPoint) bool { return a == b })
	if diff := cmp.Diff(path, gotPath, pointComparer); diff != "" {
		t.Errorf("path round-trip mismatch (-want +got):\n%s", diff)
	}
}
