package annulus

import "math"

// Affine is a 2D affine transform with the matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	| 0  0  1  |
//
// Chains only ever rotate directions, so the package constructs nothing but
// rotations; see [Rotate].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Rotate returns a rotation by th radians about the origin. Positive angles
// turn the positive x axis towards the positive y axis, which is anti-clockwise
// in the y-up space chains are built in.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}
