package planner

import (
	"math"

	"github.com/galamdring/toolpath/data"
)

// WriteQueued is the single flushing walk over the buffered paths: it
// applies speed scaling, spiral Z lift, small-move coalescing, and
// outer-wall trimming, and drives writer with the resulting motion
// events. It is the only place the planner sends moves or other output to
// writer.
//
// layerThicknessUm feeds the spiralize Z lift. fanPercent/bridgeFanPercent
// leave the fan speed unchanged when negative.
func (p *Planner) WriteQueued(layerThicknessUm data.Micrometer, fanPercent, bridgeFanPercent int) error {
	w := p.writer
	var lastConfig *data.PathConfig
	extruderIndex := w.CurrentExtruder()

	lastSpiralizeIndex := -1
	for i, path := range p.paths {
		if path.Config.Spiralize {
			lastSpiralizeIndex = i
		}
	}

	for i := 0; i < len(p.paths); i++ {
		path := p.paths[i]
		if len(path.Points) == 0 {
			continue
		}

		if path.ExtruderIndex != extruderIndex {
			w.SwitchExtruder(path.ExtruderIndex)
			extruderIndex = path.ExtruderIndex
		} else if path.RetractBefore {
			w.Retract()
		}

		if path.Config != p.travelConfig && path.Config != lastConfig {
			switch {
			case path.Config.Comment == data.CommentBridge && bridgeFanPercent >= 0:
				w.Fan(bridgeFanPercent)
			case lastConfig != nil && lastConfig.Comment == data.CommentBridge && fanPercent >= 0:
				w.Fan(fanPercent)
			}
			w.Comment("TYPE:%s", path.Config.Comment)
			lastConfig = path.Config
		}

		speed := p.effectiveSpeed(path.Config)

		if runEnd, ok := p.coalesceRun(i); ok {
			p.emitCoalescedRun(i, runEnd, path.Config, speed)
			i = runEnd
			continue
		}

		if path.Config.Spiralize && i == lastSpiralizeIndex {
			p.emitSpiralize(path, layerThicknessUm, speed)
			continue
		}

		p.emitDefault(path, speed)
	}

	w.UpdateTotalPrintTime()
	return nil
}

// effectiveSpeed picks a path's emitted speed: travel paths scale by the
// travel speed factor, bridge extrusions keep nominal speed so that
// layer-time cooling slowdowns never affect bridges, and every other
// extrusion scales by the extrude speed factor.
func (p *Planner) effectiveSpeed(config *data.PathConfig) int {
	switch {
	case config == p.travelConfig:
		return config.SpeedMMS * p.travelSpeedFactor / 100
	case config.Comment == data.CommentBridge:
		return config.SpeedMMS
	default:
		return config.SpeedMMS * p.extrudeSpeedFactor / 100
	}
}

// coalesceRun decides whether path i starts a worthwhile small-move
// coalescing run: a single-point, non-travel path within 2*lineWidth of
// the writer's current XY, extended over consecutive paths of the same
// shape. It returns the run's inclusive end index and true only when the
// run spans more than two paths.
func (p *Planner) coalesceRun(i int) (int, bool) {
	path := p.paths[i]
	if path.Config == p.travelConfig || len(path.Points) != 1 {
		return 0, false
	}

	threshold := 2 * path.Config.LineWidthUm
	if path.Points[0].XY().Sub(p.writer.PositionXY()).LongerThan(threshold) {
		return 0, false
	}

	runEnd := i
	cur := path.Points[0].XY()
	for runEnd+1 < len(p.paths) {
		next := p.paths[runEnd+1]
		if next.Config == p.travelConfig || len(next.Points) != 1 {
			break
		}
		if next.Points[0].XY().Sub(cur).LongerThan(threshold) {
			break
		}
		cur = next.Points[0].XY()
		runEnd++
	}

	// If a travel path follows directly, stop one short so the travel is
	// emitted normally rather than folded into the coalesced run.
	if runEnd+1 < len(p.paths) && p.paths[runEnd+1].Config == p.travelConfig && runEnd > i {
		runEnd--
	}

	if runEnd-i+1 <= 2 {
		return 0, false
	}
	return runEnd, true
}

// emitCoalescedRun replaces a run of single-point paths [startIdx,endIdx]
// with moves to successive pairwise midpoints (width-adjusted to preserve
// volumetric flow) followed by one final move to the run's true last
// point at nominal width.
func (p *Planner) emitCoalescedRun(startIdx, endIdx int, config *data.PathConfig, speed int) {
	w := p.writer
	n := endIdx - startIdx + 1
	points := make([]data.MicroPoint, n)
	for k := 0; k < n; k++ {
		points[k] = p.paths[startIdx+k].Points[0].XY()
	}

	z := w.CurrentZ()
	runPos := w.PositionXY()

	for k := 0; k+1 < n; k += 2 {
		a, b := points[k], points[k+1]
		oldLen := b.Sub(a).Size()
		mid := a.Midpoint(b)
		newLen := mid.Sub(runPos).Size()

		width := config.LineWidthUm
		if newLen > 0 {
			width = config.LineWidthUm * oldLen / newLen
		}

		w.WriteMove(mid.To3(z), speed, width)
		runPos = mid
	}

	last := points[n-1]
	w.WriteMove(last.To3(z), speed, config.LineWidthUm)
}

// emitSpiralize rewrites a spiralize path's z to linearly interpolate the
// layer thickness over cumulative XY arc length, so the seam between
// layers vanishes into a continuous helix. Only the outermost (last)
// spiralize path in the buffer gets this treatment; WriteQueued, its
// caller, makes that check.
func (p *Planner) emitSpiralize(path *data.GCodePath, layerThicknessUm data.Micrometer, speed int) {
	w := p.writer
	baseZ := w.CurrentZ()

	cumulative := make([]data.Micrometer, len(path.Points))
	var total data.Micrometer
	cur := w.PositionXY()
	for idx, pt := range path.Points {
		total += pt.XY().Sub(cur).Size()
		cumulative[idx] = total
		cur = pt.XY()
	}

	for idx, pt := range path.Points {
		z := baseZ
		if total > 0 {
			z = baseZ + data.Micrometer(math.Round(float64(layerThicknessUm)*float64(cumulative[idx])/float64(total)))
		}
		w.WriteMove(pt.XY().To3(z), speed, path.Config.LineWidthUm)
	}
}

// emitDefault is the fallback case: outer/inner wall paths are trimmed
// first so the print seam overlaps instead of gapping, then every point
// is emitted at the path's effective speed and nominal line width. When
// EnableOverlapRemoval is set and this path is a fully-traversed closed
// perimeter, it is rewritten via RemovePerimeterOverlaps first.
func (p *Planner) emitDefault(path *data.GCodePath, speed int) {
	w := p.writer

	if p.EnableOverlapRemoval && path.Config.LineWidthUm > 0 && len(path.Points) > 2 {
		last := path.Points[len(path.Points)-1]
		if w.PositionXY() == last.XY() {
			if modified, fragments := RemovePerimeterOverlaps(path.Points, path.Config.LineWidthUm); modified {
				for _, frag := range fragments {
					if len(frag.Path) == 0 {
						continue
					}
					for _, pt := range frag.Path {
						w.WriteMove(pt, speed, frag.ExtrusionWidthUm)
					}
				}
				return
			}
		}
	}

	points := path.Points
	if path.Config.Comment == data.CommentWallOuter || path.Config.Comment == data.CommentWallInner {
		points = trimOuterWall(points, path.Config.LineWidthUm)
	}

	for _, pt := range points {
		w.WriteMove(pt, speed, path.Config.LineWidthUm)
	}
}
