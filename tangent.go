package annulus

import (
	"fmt"
	"math"
)

// TangentStep computes the chain vertex that follows current.
//
// The leg from current runs along the line through current that touches the
// circle of radius inner, ending where that line meets the circle of radius
// outer again. It is found by rotating the unit direction from current towards
// the origin by [TangentAngle] and scaling it to [ChordLength].
//
// TangentStep returns [ErrInvalidRadius] if either radius isn't positive, and
// [ErrDegenerateChain] if inner > outer or current is the origin. For
// inner == outer the leg has zero length and current is returned unchanged.
func TangentStep(current Point, outer, inner float64) (Point, error) {
	if !(outer > 0) || !(inner > 0) || math.IsInf(outer, 0) || math.IsInf(inner, 0) {
		return Point{}, fmt.Errorf("tangent step with radii (%g, %g): %w", outer, inner, ErrInvalidRadius)
	}
	if inner > outer {
		return Point{}, fmt.Errorf("tangent step with inner radius %g > outer radius %g: %w", inner, outer, ErrDegenerateChain)
	}
	toCenter := Point{}.Sub(current)
	if toCenter.Hypot2() == 0 {
		return Point{}, fmt.Errorf("tangent step from the origin: %w", ErrDegenerateChain)
	}
	if inner == outer {
		return current, nil
	}
	return tangentStep(current, toCenter, outer, inner), nil
}

// tangentStep performs the step for already validated arguments.
func tangentStep(current Point, toCenter Vec2, outer, inner float64) Point {
	dir := toCenter.Normalize().Transform(Rotate(TangentAngle(outer, inner)))
	return current.Translate(dir.Mul(ChordLength(outer, inner)))
}
