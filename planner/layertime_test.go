package planner

import (
	"testing"

	"github.com/galamdring/toolpath/data"
)

// TestForceMinimumLayerTimeFloorClamp exercises SPEC_FULL.md open question
// (b)'s two-pass floor clamp: a layer containing a fast (100mm/s) and a
// slow (20mm/s) extrusion path, slowed to hit a minimum layer time that
// would otherwise push the slow path below the minimum printing speed,
// must not drop the factor past the floor that keeps the slow path at
// exactly minimumPrintingSpeedMMS.
func TestForceMinimumLayerTimeFloorClamp(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, data.Millimeter(1.5).ToMicrometer())

	fast := &data.PathConfig{SpeedMMS: 100, LineWidthUm: 400}
	slow := &data.PathConfig{SpeedMMS: 20, LineWidthUm: 400}

	p.QueueExtrusion(data.NewMicroPoint(1000, 0), fast)
	p.QueueExtrusion(data.NewMicroPoint(1000, 1000), slow)

	p.ForceMinimumLayerTime(10, 10)

	if p.ExtrudeSpeedFactor() != 50 {
		t.Fatalf("extrudeSpeedFactor = %d, want 50 (the floor that keeps the 20mm/s path at the 10mm/s minimum)", p.ExtrudeSpeedFactor())
	}
}

// TestForceMinimumLayerTimeMonotonic covers invariant 5: extrudeSpeedFactor
// never increases across consecutive calls within a layer.
func TestForceMinimumLayerTimeMonotonic(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, data.Millimeter(1.5).ToMicrometer())

	config := &data.PathConfig{SpeedMMS: 100, LineWidthUm: 400}
	p.QueueExtrusion(data.NewMicroPoint(1000, 0), config)

	p.ForceMinimumLayerTime(2, 5)
	first := p.ExtrudeSpeedFactor()

	p.ForceMinimumLayerTime(100, 1)
	second := p.ExtrudeSpeedFactor()

	if second > first {
		t.Fatalf("extrudeSpeedFactor increased from %d to %d across consecutive calls", first, second)
	}
	if second >= first {
		t.Errorf("expected a stricter second call to decrease the factor below %d, got %d", first, second)
	}
}

// TestForceMinimumLayerTimeNoOpOnPureTravel ensures a layer with only
// travel moves (zero extrusion time) is left untouched, since it cannot
// be slowed.
func TestForceMinimumLayerTimeNoOpOnPureTravel(t *testing.T) {
	w := newFakeWriter()
	p := NewPlanner(w, 150, data.Millimeter(1.5).ToMicrometer())
	p.QueueTravel(data.NewMicroPoint(5000, 0))

	p.ForceMinimumLayerTime(1000, 10)

	if p.ExtrudeSpeedFactor() != 100 {
		t.Errorf("expected extrudeSpeedFactor to stay at 100 for a pure-travel layer, got %d", p.ExtrudeSpeedFactor())
	}
}
