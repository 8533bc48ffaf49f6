package planner

import "github.com/galamdring/toolpath/data"

// QueueExtrusion appends dest (at the writer's current z) to the latest
// appendable path for config, opening a new path if needed, and updates
// LastPosition.
func (p *Planner) QueueExtrusion(dest data.MicroPoint, config *data.PathConfig) {
	path := p.getLatestPathWithConfig(config)
	path.Points = append(path.Points, dest.To3(p.writer.CurrentZ()))
	p.lastPosition = dest
}

// QueueTravel appends a non-extruding move to dest, deciding whether it
// must retract:
//
//  1. A pending ForceRetract always wins and is consumed.
//  2. Otherwise, if a BoundaryAvoider is installed, an interior route is
//     attempted; its points (if any) are appended to the travel path and
//     their summed length is compared against the retraction threshold.
//     If no interior route exists the straight-line distance is compared
//     against the threshold instead.
//  3. Otherwise, AlwaysRetract gates a straight-line distance comparison.
//  4. Otherwise no retraction is requested.
func (p *Planner) QueueTravel(dest data.MicroPoint) {
	path := p.getLatestPathWithConfig(p.travelConfig)
	retract := false

	switch {
	case p.forceRetraction:
		retract = true
		p.forceRetraction = false

	case p.avoider != nil:
		if route, ok := p.avoider.CreatePathInside(p.lastPosition, dest); ok {
			var total data.Micrometer
			cur := p.lastPosition
			z := p.writer.CurrentZ()
			for _, pt := range route {
				total += pt.Sub(cur).Size()
				path.Points = append(path.Points, pt.To3(z))
				cur = pt
			}
			if total > p.retractionMinimumDistanceUm {
				retract = true
			}
			p.lastPosition = cur
		} else if dest.Sub(p.lastPosition).LongerThan(p.retractionMinimumDistanceUm) {
			retract = true
		}

	case p.alwaysRetract:
		if dest.Sub(p.lastPosition).LongerThan(p.retractionMinimumDistanceUm) {
			retract = true
		}
	}

	if retract {
		path.RetractBefore = true
	}

	path.Points = append(path.Points, dest.To3(p.writer.CurrentZ()))
	p.lastPosition = dest
}

// QueuePolygon queues one polygon's traversal starting at polygon's
// startIndex. polygon must be non-empty and startIndex in range; callers
// are expected to filter degenerate input before calling this.
func (p *Planner) QueuePolygon(polygon data.Path, startIndex int, config *data.PathConfig) {
	n := len(polygon)

	if !config.Spiralize && p.lastPosition != polygon[startIndex] {
		p.QueueTravel(polygon[startIndex])
	}

	switch {
	case config.ClosedLoop:
		for i := 1; i < n; i++ {
			p.QueueExtrusion(polygon[(startIndex+i)%n], config)
		}
		if n > 2 {
			p.QueueExtrusion(polygon[startIndex], config)
		}

	case startIndex == 0:
		for i := 1; i < n; i++ {
			p.QueueExtrusion(polygon[i], config)
		}

	default:
		for i := n - 1; i >= 1; i-- {
			p.QueueExtrusion(polygon[(startIndex+i)%n], config)
		}
	}
}

// QueuePolygonsByOptimizer asks the installed IslandOrderOptimizer for a
// visit order and per-polygon start index, then queues each polygon in
// that order. With no optimizer installed, polygons are queued in
// original order starting at index 0.
func (p *Planner) QueuePolygonsByOptimizer(polygons data.Paths, config *data.PathConfig) {
	if p.islandOptimizer == nil {
		for _, poly := range polygons {
			p.QueuePolygon(poly, 0, config)
		}
		return
	}

	order, startIndex := p.islandOptimizer.Order(polygons)
	for _, idx := range order {
		p.QueuePolygon(polygons[idx], startIndex[idx], config)
	}
}

// MoveInsideOuterPerimeter moves the head inside the installed boundary
// when it currently lies outside it. Both inward-projection attempts are
// best-effort, with a single final containment check deciding whether to
// queue the move.
func (p *Planner) MoveInsideOuterPerimeter(distance data.Micrometer) {
	if p.avoider == nil || p.avoider.PointIsInside(p.lastPosition) {
		return
	}

	pt := p.lastPosition
	pt, _ = p.avoider.MovePointInside(pt, distance)
	pt, _ = p.avoider.MovePointInside(pt, distance)

	if p.avoider.PointIsInside(pt) {
		p.QueueTravel(pt)
		p.ForceNewPathStart()
	}
}
