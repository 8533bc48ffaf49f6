// Package optimizer provides the default handler.IslandOrderOptimizer: a
// convex-hull-seeded nearest-neighbor visiting order for a layer's
// independent islands, grounded on GoSlice's dependency on
// github.com/furstenheim/go-convex-hull-2d (declared in the teacher's
// go.mod for exactly this kind of polygon visiting-order problem, though
// the example pack did not retrieve GoSlice's own optimizer package).
package optimizer

import (
	convexHull "github.com/furstenheim/go-convex-hull-2d"

	"github.com/galamdring/toolpath/data"
)

// hullPoint adapts a data.MicroPoint to convexHull.Point.
type hullPoint struct {
	p   data.MicroPoint
	idx int
}

func (h hullPoint) GetX() float64 { return float64(h.p.X()) }
func (h hullPoint) GetY() float64 { return float64(h.p.Y()) }

// NearestNeighbor implements handler.IslandOrderOptimizer: it starts at
// whichever polygon has a vertex on the overall convex hull closest to
// the origin, then repeatedly visits the nearest not-yet-visited
// polygon's closest vertex, minimizing total travel distance the way a
// slicer orders islands to cut down on non-printing moves.
type NearestNeighbor struct{}

// Order returns a visiting order for polygons and, for each, the index of
// the vertex to start printing from.
func (NearestNeighbor) Order(polygons data.Paths) (order []int, startIndex []int) {
	n := len(polygons)
	order = make([]int, 0, n)
	startIndex = make([]int, n)
	if n == 0 {
		return order, startIndex
	}

	seed := hullSeed(polygons)

	visited := make([]bool, n)
	cur := seed
	for len(order) < n {
		order = append(order, cur)
		visited[cur] = true

		next := -1
		nextDistSq := data.Micrometer(0)
		fromPoint := polygons[cur][startIndex[cur]]

		for i, poly := range polygons {
			if visited[i] || len(poly) == 0 {
				continue
			}
			closest, closestIdx := nearestVertex(poly, fromPoint)
			d := closest.Sub(fromPoint).SizeSquared()
			if next == -1 || d < nextDistSq {
				next = i
				nextDistSq = d
				startIndex[i] = closestIdx
			}
		}

		if next == -1 {
			break
		}
		cur = next
	}

	return order, startIndex
}

// hullSeed picks the island that owns the vertex nearest the origin among
// the vertices of the convex hull of every polygon's vertices combined,
// preferring a
// deterministic, geometrically meaningful first island over an arbitrary
// index 0.
func hullSeed(polygons data.Paths) int {
	var points []convexHull.Point
	owner := map[convexHull.Point]int{}

	for i, poly := range polygons {
		for _, p := range poly {
			hp := hullPoint{p: p, idx: i}
			points = append(points, hp)
			owner[hp] = i
		}
	}
	if len(points) == 0 {
		return 0
	}

	hull := convexHull.ComputeHull(points)
	if len(hull) == 0 {
		return 0
	}

	best := hull[0]
	bestDistSq := best.GetX()*best.GetX() + best.GetY()*best.GetY()
	for _, hp := range hull[1:] {
		d := hp.GetX()*hp.GetX() + hp.GetY()*hp.GetY()
		if d < bestDistSq {
			best, bestDistSq = hp, d
		}
	}

	return owner[best]
}

// nearestVertex finds the vertex of poly closest to from.
func nearestVertex(poly data.Path, from data.MicroPoint) (data.MicroPoint, int) {
	best := poly[0]
	bestIdx := 0
	bestDistSq := best.Sub(from).SizeSquared()
	for i, p := range poly[1:] {
		d := p.Sub(from).SizeSquared()
		if d < bestDistSq {
			best, bestIdx, bestDistSq = p, i+1, d
		}
	}
	return best, bestIdx
}
