package clip

import (
	"math"

	"github.com/galamdring/toolpath/data"
	"github.com/galamdring/toolpath/handler"
)

// BoundaryAvoider implements handler.BoundaryAvoider: it keeps travel
// moves inside a single closed boundary polygon, typically the outer
// perimeter's inward offset.
//
// The routing strategy ("combing") is the standard one used by FFF
// slicers: project the travel endpoints onto the nearest boundary edge,
// then walk the shorter of the two arcs between them along the polygon's
// own vertex chain, so the travel move never has to cross the boundary to
// get from one projected point to the other.
type BoundaryAvoider struct {
	handler.Named
	boundary data.Path
}

// NewBoundaryAvoider wraps a single closed polygon as a boundary.
func NewBoundaryAvoider(boundary data.Path) *BoundaryAvoider {
	return &BoundaryAvoider{
		Named:    handler.Named{Name: "BoundaryAvoider"},
		boundary: boundary,
	}
}

// PointIsInside reports whether p lies inside the boundary.
func (b *BoundaryAvoider) PointIsInside(p data.MicroPoint) bool {
	if len(b.boundary) < 3 {
		return false
	}
	return PointInPolygon(p, b.boundary) > 0
}

// MovePointInside projects p onto the boundary's nearest edge and steps
// inward by distance along that edge's inward normal, picking the normal
// sign that actually lands inside regardless of the boundary's winding
// direction.
func (b *BoundaryAvoider) MovePointInside(p data.MicroPoint, distance data.Micrometer) (data.MicroPoint, bool) {
	proj, edgeIndex, ok := b.nearestPointOnBoundary(p)
	if !ok {
		return p, false
	}

	n := len(b.boundary)
	a := b.boundary[edgeIndex]
	c := b.boundary[(edgeIndex+1)%n]
	inward := c.Sub(a).PerpendicularRight()

	candidate := proj.Add(inward.Normal(distance))
	if !b.PointIsInside(candidate) {
		candidate = proj.Add(inward.Neg().Normal(distance))
	}
	return candidate, true
}

// CreatePathInside routes a path from `from` to `to` that stays inside the
// boundary by combing along the boundary's own vertex chain between their
// nearest-edge projections, choosing whichever of the two possible arcs is
// shorter.
func (b *BoundaryAvoider) CreatePathInside(from, to data.MicroPoint) ([]data.MicroPoint, bool) {
	if len(b.boundary) < 3 {
		return nil, false
	}

	_, fromEdge, ok1 := b.nearestPointOnBoundary(from)
	_, toEdge, ok2 := b.nearestPointOnBoundary(to)
	if !ok1 || !ok2 {
		return nil, false
	}

	if fromEdge == toEdge {
		// Both projections land on the same edge: the straight segment
		// between them already runs alongside that edge, so no detour via
		// the polygon's other vertices is needed.
		return []data.MicroPoint{to}, true
	}

	n := len(b.boundary)
	forward := arcEdgeIndices(fromEdge, toEdge, n, true)
	backward := arcEdgeIndices(fromEdge, toEdge, n, false)

	chosen := forward
	if b.arcLength(backward) < b.arcLength(forward) {
		chosen = backward
	}

	route := make([]data.MicroPoint, 0, len(chosen)+1)
	for _, idx := range chosen {
		route = append(route, b.boundary[(idx+1)%n])
	}
	route = append(route, to)
	return route, true
}

// nearestPointOnBoundary returns the closest point lying on the boundary's
// edge chain to p, along with the index of the edge (from boundary[i] to
// boundary[i+1]) it lies on.
func (b *BoundaryAvoider) nearestPointOnBoundary(p data.MicroPoint) (proj data.MicroPoint, edgeIndex int, ok bool) {
	n := len(b.boundary)
	if n < 2 {
		return data.MicroPoint{}, 0, false
	}

	bestDistSq := math.MaxFloat64
	for i := 0; i < n; i++ {
		q, distSq := projectPointOntoSegment(p, b.boundary[i], b.boundary[(i+1)%n])
		if distSq < bestDistSq {
			bestDistSq = distSq
			proj = q
			edgeIndex = i
			ok = true
		}
	}
	return proj, edgeIndex, ok
}

// arcLength sums the edge lengths visited by idxs, walking boundary[i+1]
// for each i in idxs.
func (b *BoundaryAvoider) arcLength(idxs []int) data.Micrometer {
	var total data.Micrometer
	n := len(b.boundary)
	for k := 0; k+1 < len(idxs); k++ {
		a := b.boundary[(idxs[k]+1)%n]
		c := b.boundary[(idxs[k+1]+1)%n]
		total += c.Sub(a).Size()
	}
	return total
}

// arcEdgeIndices lists the edge indices visited walking from edge `from`
// to edge `to`, inclusive, in the given direction.
func arcEdgeIndices(from, to, n int, forward bool) []int {
	idxs := []int{from}
	i := from
	for i != to {
		if forward {
			i = (i + 1) % n
		} else {
			i = (i - 1 + n) % n
		}
		idxs = append(idxs, i)
	}
	return idxs
}

// projectPointOntoSegment returns the closest point on segment a-c to p
// and the squared distance to it.
func projectPointOntoSegment(p, a, c data.MicroPoint) (data.MicroPoint, float64) {
	ax, ay := float64(a.X()), float64(a.Y())
	cx, cy := float64(c.X()), float64(c.Y())
	px, py := float64(p.X()), float64(p.Y())

	dx, dy := cx-ax, cy-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		ddx, ddy := px-ax, py-ay
		return a, ddx*ddx + ddy*ddy
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	qx, qy := ax+t*dx, ay+t*dy
	ddx, ddy := px-qx, py-qy
	return data.NewMicroPoint(data.Micrometer(math.Round(qx)), data.Micrometer(math.Round(qy))), ddx*ddx + ddy*ddy
}
