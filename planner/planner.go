// Package planner implements the toolpath planner: move queuing and
// buffering, travel routing with perimeter avoidance, perimeter-overlap
// detection and merging, layer-time enforcement, and the single
// post-process emission pass that turns buffered paths into G-code motion
// events. It is grounded on the teacher's clip/gcode/renderer/modifier
// packages but implements a component the teacher's retrieved subset does
// not itself contain: the GoSlice architecture treats this as the
// boundary between its layer modifiers and its gcode.Builder, and this
// package is what lives in that seam.
package planner

import (
	"github.com/galamdring/toolpath/data"
	"github.com/galamdring/toolpath/handler"
)

// Planner is the top-level stateful buffer that accumulates a layer's
// toolpath. It is constructed once per layer, accumulates GCodePaths via
// the Queue* methods, and is consumed by a single call to WriteQueued.
//
// A Planner is not safe for concurrent use: it is the sole mutator of its
// own state and must not be shared between goroutines.
type Planner struct {
	writer          handler.GCodeWriter
	avoider         handler.BoundaryAvoider
	islandOptimizer handler.IslandOrderOptimizer

	paths []*data.GCodePath

	lastPosition                data.MicroPoint
	currentExtruderIndex        int
	forceRetraction             bool
	alwaysRetract               bool
	extrudeSpeedFactor          int
	travelSpeedFactor           int
	retractionMinimumDistanceUm data.Micrometer

	totalPrintTime float64
	extraTime      float64

	travelConfig *data.PathConfig

	// EnableOverlapRemoval gates RemovePerimeterOverlaps during emission.
	// Default false: callers that want merged perimeters opt in
	// explicitly.
	EnableOverlapRemoval bool
}

// NewPlanner constructs a Planner bound to writer, with the given nominal
// travel speed and the minimum travel distance that can ever trigger a
// retraction. The planner seeds its logical position and extruder from the
// writer at construction time. Queue operations and ForceMinimumLayerTime
// read the writer's current Z and position; moves and other output are
// sent to the writer only by WriteQueued.
func NewPlanner(writer handler.GCodeWriter, travelSpeedMMS int, retractionMinimumDistanceUm data.Micrometer) *Planner {
	return &Planner{
		writer:                      writer,
		lastPosition:                writer.PositionXY(),
		currentExtruderIndex:        writer.CurrentExtruder(),
		extrudeSpeedFactor:          100,
		travelSpeedFactor:           100,
		retractionMinimumDistanceUm: retractionMinimumDistanceUm,
		travelConfig:                data.NewTravelConfig(travelSpeedMMS),
	}
}

// SetExtruder switches the extruder used by subsequently queued paths and
// reports whether it actually changed.
func (p *Planner) SetExtruder(index int) bool {
	if index == p.currentExtruderIndex {
		return false
	}
	p.currentExtruderIndex = index
	return true
}

// ForceRetract arranges for the next queued travel move to retract,
// regardless of distance or avoidance routing.
func (p *Planner) ForceRetract() {
	p.forceRetraction = true
}

// SetAlwaysRetract installs the "always retract on long travels" policy
// used when no avoidance oracle is available.
func (p *Planner) SetAlwaysRetract(always bool) {
	p.alwaysRetract = always
}

// SetExtrudeSpeedFactor sets the extrusion speed percentage, clamped to a
// minimum of 1.
func (p *Planner) SetExtrudeSpeedFactor(percent int) {
	if percent < 1 {
		percent = 1
	}
	p.extrudeSpeedFactor = percent
}

// ExtrudeSpeedFactor returns the current extrusion speed percentage.
func (p *Planner) ExtrudeSpeedFactor() int {
	return p.extrudeSpeedFactor
}

// SetTravelSpeedFactor sets the travel speed percentage, clamped to a
// minimum of 1.
func (p *Planner) SetTravelSpeedFactor(percent int) {
	if percent < 1 {
		percent = 1
	}
	p.travelSpeedFactor = percent
}

// SetOuterPerimetersToAvoid installs (or, passed nil, uninstalls) the
// perimeter-avoidance oracle used by QueueTravel and
// MoveInsideOuterPerimeter.
func (p *Planner) SetOuterPerimetersToAvoid(avoider handler.BoundaryAvoider) {
	p.avoider = avoider
}

// SetIslandOrderOptimizer installs the visit-order optimizer used by
// QueuePolygonsByOptimizer.
func (p *Planner) SetIslandOrderOptimizer(opt handler.IslandOrderOptimizer) {
	p.islandOptimizer = opt
}

// TotalPrintTime returns the total print time computed by the last call to
// ForceMinimumLayerTime, in seconds.
func (p *Planner) TotalPrintTime() float64 {
	return p.totalPrintTime
}

// ExtraTime returns the slack time left over after layer-time slowdown, in
// seconds. This is informational only, reserved for a future cooling
// loop that wants to know how much idle time a layer has to spare.
func (p *Planner) ExtraTime() float64 {
	return p.extraTime
}

// LastPosition returns the logical head XY position after the last queued
// move.
func (p *Planner) LastPosition() data.MicroPoint {
	return p.lastPosition
}

// Paths exposes the buffered path list read-only, mainly for tests and for
// diagnostics; callers must not mutate the returned slice's GCodePaths.
func (p *Planner) Paths() []*data.GCodePath {
	return p.paths
}

// getLatestPathWithConfig returns the tail path if it exists, is not done,
// and shares config's instance; otherwise it opens and appends a fresh
// GCodePath carrying the current extruder index.
func (p *Planner) getLatestPathWithConfig(config *data.PathConfig) *data.GCodePath {
	if n := len(p.paths); n > 0 {
		if tail := p.paths[n-1]; tail.Appendable(config) {
			return tail
		}
	}
	path := &data.GCodePath{
		Config:        config,
		ExtruderIndex: p.currentExtruderIndex,
	}
	p.paths = append(p.paths, path)
	return path
}

// ForceNewPathStart marks the tail path done, so that the next queued
// operation begins a fresh path whose retraction decision is independent
// of whatever came before.
func (p *Planner) ForceNewPathStart() {
	if n := len(p.paths); n > 0 {
		p.paths[n-1].Done = true
	}
}

// walkMoves visits every (from, to) move in queue order across every
// buffered path, seeded by the writer's position at the time of the call.
// It underlies the minimum-layer-time pass's time bookkeeping.
func (p *Planner) walkMoves(fn func(path *data.GCodePath, from, to data.MicroVec3)) {
	cur := p.writer.PositionXYZ()
	for _, path := range p.paths {
		for _, pt := range path.Points {
			fn(path, cur, pt)
			cur = pt
		}
	}
}
