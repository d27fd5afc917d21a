package annulus

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// TangentAngle returns the angle θ, in radians, between a chain leg and the
// line from its start vertex to the center. This is asin(inner/outer), the
// half-angle the inner circle subtends when seen from the outer circle.
//
// The result is NaN if inner > outer.
func TangentAngle(outer, inner float64) float64 {
	return math.Asin(inner / outer)
}

// TurningAngle returns the central angle, in radians, between two consecutive
// chain vertices: π − 2θ, with θ as returned by [TangentAngle].
func TurningAngle(outer, inner float64) float64 {
	return math.Pi - 2*TangentAngle(outer, inner)
}

// ChordLength returns the length of a chain leg, the chord of the outer circle
// that touches the inner circle: sqrt((2·outer)² − (2·inner)²).
func ChordLength(outer, inner float64) float64 {
	d := 2 * outer
	e := 2 * inner
	return math.Sqrt((d - e) * (d + e))
}
