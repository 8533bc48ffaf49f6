package data

import "math"

// MicroPoint is a 2D point in layer-local integer micrometer coordinates.
// It is the planner's IntPoint2.
type MicroPoint struct {
	x, y Micrometer
}

// NewMicroPoint constructs a MicroPoint from raw micrometer components.
func NewMicroPoint(x, y Micrometer) MicroPoint {
	return MicroPoint{x: x, y: y}
}

func (p MicroPoint) X() Micrometer { return p.x }
func (p MicroPoint) Y() Micrometer { return p.y }

// SetX and SetY return a copy of p with the given component replaced,
// mirroring the mutator-style setters used on data.MicroPoint in the
// teacher's infill pattern setup callbacks.
func (p MicroPoint) SetX(x Micrometer) MicroPoint { p.x = x; return p }
func (p MicroPoint) SetY(y Micrometer) MicroPoint { p.y = y; return p }

func (p MicroPoint) Add(o MicroPoint) MicroPoint {
	return MicroPoint{p.x + o.x, p.y + o.y}
}

func (p MicroPoint) Sub(o MicroPoint) MicroPoint {
	return MicroPoint{p.x - o.x, p.y - o.y}
}

func (p MicroPoint) Neg() MicroPoint {
	return MicroPoint{-p.x, -p.y}
}

func (p MicroPoint) Mul(f Micrometer) MicroPoint {
	return MicroPoint{p.x * f, p.y * f}
}

func (p MicroPoint) Div(f Micrometer) MicroPoint {
	return MicroPoint{p.x / f, p.y / f}
}

func (p MicroPoint) Dot(o MicroPoint) Micrometer {
	return p.x*o.x + p.y*o.y
}

// PerpendicularRight rotates the vector 90 degrees clockwise: (x,y) -> (y,-x).
func (p MicroPoint) PerpendicularRight() MicroPoint {
	return MicroPoint{p.y, -p.x}
}

// SizeSquared returns the squared length, avoiding a square root.
func (p MicroPoint) SizeSquared() Micrometer {
	return p.x*p.x + p.y*p.y
}

// Size returns the rounded Euclidean length of the vector.
func (p MicroPoint) Size() Micrometer {
	return Micrometer(math.Round(math.Sqrt(float64(p.SizeSquared()))))
}

// ShorterThan reports whether the vector's length is strictly shorter than
// d, comparing squared magnitudes to avoid a square root.
func (p MicroPoint) ShorterThan(d Micrometer) bool {
	return p.SizeSquared() < d*d
}

// ShorterThanOrEqual reports whether the vector's length is at most d.
func (p MicroPoint) ShorterThanOrEqual(d Micrometer) bool {
	return p.SizeSquared() <= d*d
}

// LongerThan reports whether the vector's length is strictly longer than d.
func (p MicroPoint) LongerThan(d Micrometer) bool {
	return p.SizeSquared() > d*d
}

// Normal returns a vector colinear with p whose integer length rounds to
// targetLength, computed as p * targetLength / |p| with integer division to
// preserve exactness with the rest of the planner's integer arithmetic. The
// zero vector has no direction and is returned unchanged.
func (p MicroPoint) Normal(targetLength Micrometer) MicroPoint {
	length := p.Size()
	if length == 0 {
		return p
	}
	return MicroPoint{p.x * targetLength / length, p.y * targetLength / length}
}

// Midpoint returns the point halfway between p and o, truncating toward
// zero like the rest of the planner's integer arithmetic.
func (p MicroPoint) Midpoint(o MicroPoint) MicroPoint {
	return MicroPoint{(p.x + o.x) / 2, (p.y + o.y) / 2}
}

// To3 lifts a 2D point into 3D at the given z.
func (p MicroPoint) To3(z Micrometer) MicroVec3 {
	return MicroVec3{p.x, p.y, z}
}

// MicroVec3 is a 3D point/vector in integer micrometer coordinates. It is
// the planner's IntPoint3.
type MicroVec3 struct {
	x, y, z Micrometer
}

// NewMicroVec3 constructs a MicroVec3 from raw micrometer components.
func NewMicroVec3(x, y, z Micrometer) MicroVec3 {
	return MicroVec3{x: x, y: y, z: z}
}

func (p MicroVec3) X() Micrometer { return p.x }
func (p MicroVec3) Y() Micrometer { return p.y }
func (p MicroVec3) Z() Micrometer { return p.z }

func (p MicroVec3) SetZ(z Micrometer) MicroVec3 { p.z = z; return p }

// XY drops the z component, returning the planar projection.
func (p MicroVec3) XY() MicroPoint {
	return MicroPoint{p.x, p.y}
}

func (p MicroVec3) Add(o MicroVec3) MicroVec3 {
	return MicroVec3{p.x + o.x, p.y + o.y, p.z + o.z}
}

func (p MicroVec3) Sub(o MicroVec3) MicroVec3 {
	return MicroVec3{p.x - o.x, p.y - o.y, p.z - o.z}
}

// SizeSquared returns the squared length over all three components.
func (p MicroVec3) SizeSquared() Micrometer {
	return p.x*p.x + p.y*p.y + p.z*p.z
}

// Size returns the rounded Euclidean length over all three components.
func (p MicroVec3) Size() Micrometer {
	return Micrometer(math.Round(math.Sqrt(float64(p.SizeSquared()))))
}

// SizeMM returns the length in millimeters, used when a path's time needs
// to be computed from a nominal mm/s speed.
func (p MicroVec3) SizeMM() Millimeter {
	return Millimeter(float64(p.Size()) / 1000)
}
