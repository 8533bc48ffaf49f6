// Package data provides the geometric and configuration types shared by
// every planner component: fixed-point micrometer coordinates, paths built
// from them, and the nested configuration bundle threaded through the
// planner's constructors.
package data

import "math"

// Micrometer is the native integer unit of the planner: one thousandth of a
// millimeter. All planner geometry is expressed in Micrometer to keep
// coordinate arithmetic exact.
type Micrometer int64

// Millimeter is a floating point unit used only at configuration
// boundaries (nominal speeds, user-facing distances).
type Millimeter float64

// ToMicrometer converts a Millimeter distance to the integer Micrometer
// representation used internally.
func (m Millimeter) ToMicrometer() Micrometer {
	return Micrometer(math.Round(float64(m) * 1000))
}

// ToMillimeter converts back to a floating point millimeter value, e.g. for
// reporting or for feeding a nominal speed to a G-code writer.
func (m Micrometer) ToMillimeter() Millimeter {
	return Millimeter(float64(m) / 1000)
}

// ToRadians converts a plain degree value to radians, the same helper the
// teacher's modifier package uses for angle settings. Nothing else in this
// module calls it.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
