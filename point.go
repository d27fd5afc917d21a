package annulus

import (
	"fmt"
	"math"
)

// Point is a position in the plane of the annulus, whose circles are centered
// on the origin.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String formats pt the way chain readouts show points.
func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Distance returns the euclidean distance between pt and o.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// NearlyEqual reports whether both coordinates of pt and o differ by at most
// tolerance.
func (pt Point) NearlyEqual(o Point, tolerance float64) bool {
	return math.Abs(pt.X-o.X) <= tolerance && math.Abs(pt.Y-o.Y) <= tolerance
}
