package planner

import (
	"testing"

	"github.com/galamdring/toolpath/data"
)

// TestQueueTravelAlwaysRetract is scenario S4: with no avoidance oracle
// and always_retract set, a travel longer than the retraction minimum
// marks the new travel path's RetractBefore.
func TestQueueTravelAlwaysRetract(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, 1000)
	p.SetAlwaysRetract(true)

	p.QueueTravel(data.NewMicroPoint(5000, 0))

	paths := p.Paths()
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if !paths[0].RetractBefore {
		t.Error("expected RetractBefore to be set on a long travel with always_retract")
	}
}

func TestQueueTravelAlwaysRetractShortMoveNoRetract(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, 1000)
	p.SetAlwaysRetract(true)

	p.QueueTravel(data.NewMicroPoint(500, 0))

	paths := p.Paths()
	if paths[0].RetractBefore {
		t.Error("a travel shorter than the retraction minimum must not retract")
	}
}

func TestQueueTravelForceRetractConsumed(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, 1000)
	p.ForceRetract()

	p.QueueTravel(data.NewMicroPoint(10, 0))
	if !p.Paths()[0].RetractBefore {
		t.Error("expected a pending ForceRetract to set RetractBefore regardless of distance")
	}

	// A forced retraction is consumed: queuing a second, unrelated short
	// travel must not retract again.
	p.ForceNewPathStart()
	p.QueueTravel(data.NewMicroPoint(20, 0))
	if p.Paths()[1].RetractBefore {
		t.Error("ForceRetract must be consumed by the first travel that follows it")
	}
}

// TestQueuePolygonClosedLoop covers the closed-loop traversal case:
// starting at index 0, it visits every vertex in order and returns to the
// start.
func TestQueuePolygonClosedLoop(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, 1000)

	config := &data.PathConfig{SpeedMMS: 50, LineWidthUm: 400, ClosedLoop: true}
	polygon := data.Path{
		data.NewMicroPoint(0, 0),
		data.NewMicroPoint(1000, 0),
		data.NewMicroPoint(1000, 1000),
	}
	p.QueuePolygon(polygon, 0, config)

	var extrusionPath *data.GCodePath
	for _, path := range p.Paths() {
		if path.Config == config {
			extrusionPath = path
		}
	}
	if extrusionPath == nil {
		t.Fatal("expected an extrusion path for the polygon's config")
	}
	if got := len(extrusionPath.Points); got != 3 {
		t.Fatalf("expected 3 extruded points (n-1 plus the closing point), got %d", got)
	}
	if last := extrusionPath.Points[2].XY(); last != polygon[0] {
		t.Errorf("closed loop should return to the start point, got %v", last)
	}
}

func TestQueuePolygonsByOptimizerNoOptimizerPreservesOrder(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, 1000)

	config := &data.PathConfig{SpeedMMS: 50, LineWidthUm: 400, ClosedLoop: true}
	polygons := data.Paths{
		{data.NewMicroPoint(0, 0), data.NewMicroPoint(100, 0), data.NewMicroPoint(100, 100)},
		{data.NewMicroPoint(5000, 5000), data.NewMicroPoint(5100, 5000), data.NewMicroPoint(5100, 5100)},
	}

	p.QueuePolygonsByOptimizer(polygons, config)

	var starts []data.MicroPoint
	for _, path := range p.Paths() {
		if path.Config == config && len(path.Points) > 0 {
			starts = append(starts, path.Points[0].XY())
		}
	}
	if len(starts) == 0 {
		t.Fatal("expected at least one extrusion path")
	}

	// Each closed loop starts at index 0, so its first extruded point is
	// the polygon's second vertex; the two loops must appear in input order.
	want := []data.MicroPoint{polygons[0][1], polygons[1][1]}
	if len(starts) != len(want) {
		t.Fatalf("expected %d extrusion paths, got %d", len(want), len(starts))
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("extrusion path %d starts at %v, want %v", i, starts[i], want[i])
		}
	}
}
