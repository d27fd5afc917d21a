package annulus

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// DefaultCircleSamples is the number of points [SampleCircle] produces when
// asked for a non-positive count.
const DefaultCircleSamples = 100

// Circle is a circle in the plane. The circles of an annulus are centered on
// the origin.
type Circle struct {
	Center Point
	Radius float64
}

// Points returns n points evenly spaced in angle over [0, 2π), starting at
// angle 0 (the positive x direction) and proceeding anti-clockwise.
func (c Circle) Points(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		step := 2 * math.Pi / float64(n)
		for i := range n {
			sin, cos := math.Sincos(step * float64(i))
			if !yield(c.Center.Translate(Vec(cos, sin).Mul(c.Radius))) {
				return
			}
		}
	}
}

// Sample returns the points of [Circle.Points] as a slice.
func (c Circle) Sample(n int) []Point {
	return slices.AppendSeq(make([]Point, 0, n), c.Points(n))
}

// SampleCircle returns n points of the origin-centered circle with the given
// radius, evenly spaced in angle over [0, 2π). A non-positive n selects
// [DefaultCircleSamples].
func SampleCircle(radius float64, n int) ([]Point, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("sampling circle of radius %g: %w", radius, ErrInvalidRadius)
	}
	if n <= 0 {
		n = DefaultCircleSamples
	}
	return Circle{Radius: radius}.Sample(n), nil
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return NewRectFromPoints(c.Center, c.Center).Inflate(r, r)
}
