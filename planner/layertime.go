package planner

import (
	"math"

	"github.com/galamdring/toolpath/data"
)

// ForceMinimumLayerTime scales extrusion speeds down (subject to the
// minimumPrintingSpeedMMS floor) so that the layer takes at least
// minTimeS. It is a no-op when the layer's extrusion time is zero (a
// pure-travel layer cannot be slowed).
//
// The floor clamp is computed in two passes rather than updated inline
// during a single pass over paths: clamping path-by-path inside one pass
// is order-sensitive (a clamp triggered by a later path never gets
// applied to paths already visited), which this implementation
// deliberately avoids by computing the clamp first and applying it
// uniformly afterward.
func (p *Planner) ForceMinimumLayerTime(minTimeS float64, minimumPrintingSpeedMMS int) {
	extrudeTime, travelTime := p.accumulateTimes()

	total := extrudeTime + travelTime
	if total >= minTimeS || extrudeTime == 0 {
		p.totalPrintTime = total
		return
	}

	minExtrude := minTimeS - travelTime
	if minExtrude < 1 {
		minExtrude = 1
	}
	factor := extrudeTime / minExtrude

	if required := p.maxFloorClampRatio(minimumPrintingSpeedMMS); required > factor {
		factor = required
	}

	candidate := int(math.Round(factor * 100))
	if candidate < p.extrudeSpeedFactor {
		p.extrudeSpeedFactor = candidate
	}
	if p.extrudeSpeedFactor < 1 {
		p.extrudeSpeedFactor = 1
	}

	effectiveFactor := float64(p.extrudeSpeedFactor) / 100
	p.extraTime = minTimeS - extrudeTime/effectiveFactor - travelTime
	p.totalPrintTime = extrudeTime/effectiveFactor + travelTime
}

// accumulateTimes sums nominal-speed move times across all buffered
// paths, split into extrusion time (width > 0) and travel time (width ==
// 0).
func (p *Planner) accumulateTimes() (extrudeTime, travelTime float64) {
	p.walkMoves(func(path *data.GCodePath, from, to data.MicroVec3) {
		lengthMM := float64(to.Sub(from).Size()) / 1000
		t := lengthMM / float64(path.Config.SpeedMMS)
		if path.Config.LineWidthUm > 0 {
			extrudeTime += t
		} else {
			travelTime += t
		}
	})
	return extrudeTime, travelTime
}

// maxFloorClampRatio computes, over every extrusion path, the ratio
// minimumPrintingSpeedMMS/path.Config.SpeedMMS — the factor that would
// keep that path's effective speed exactly at the floor — and returns the
// largest such ratio, so the slowdown never pushes any single path below
// the minimum printing speed.
func (p *Planner) maxFloorClampRatio(minimumPrintingSpeedMMS int) float64 {
	var max float64
	for _, path := range p.paths {
		if path.Config.LineWidthUm == 0 || len(path.Points) == 0 {
			continue
		}
		ratio := float64(minimumPrintingSpeedMMS) / float64(path.Config.SpeedMMS)
		if ratio > max {
			max = ratio
		}
	}
	return max
}
