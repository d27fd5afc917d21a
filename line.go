package annulus

// Line is the straight segment from P0 to P1.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the distance between the end points.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, with P0 at t = 0 and P1 at t = 1.
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// Nearest returns the parameter of the point of the segment closest to pt,
// together with its squared distance to pt. Points beyond either end are
// closest to that end.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	proj := d.Dot(pt.Sub(l.P0))
	switch dd := d.Hypot2(); {
	case proj <= 0:
		return pt.Sub(l.P0).Hypot2(), 0
	case proj >= dd:
		return pt.Sub(l.P1).Hypot2(), 1
	default:
		t := proj / dd
		return pt.Sub(l.Eval(t)).Hypot2(), t
	}
}
