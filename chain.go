package annulus

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// DefaultTolerance is the per-coordinate distance within which the last vertex
// of a chain must lie from the anchor for the chain to be complete.
const DefaultTolerance = 1e-6

// Anchor returns the first vertex of every chain on the outer circle of the
// given radius, (0, outer).
func Anchor(outer float64) Point {
	return Point{X: 0, Y: outer}
}

// TangentSegment is one leg of a tangent chain.
type TangentSegment struct {
	Start Point
	End   Point
}

func (seg TangentSegment) Line() Line {
	return Line{P0: seg.Start, P1: seg.End}
}

func (seg TangentSegment) Length() float64 {
	return seg.Line().Length()
}

// TangentPoint returns the point at which the leg touches the inner circle.
func (seg TangentSegment) TangentPoint() Point {
	_, t := seg.Line().Nearest(Point{})
	return seg.Line().Eval(t)
}

func (seg TangentSegment) String() string {
	return fmt.Sprintf("%s→%s", seg.Start, seg.End)
}

// Chain is a tangent chain: the legs produced by repeatedly applying
// [TangentStep], starting at [Anchor].
//
// The zero value is an empty chain that no radii have been applied to.
type Chain struct {
	Outer float64
	Inner float64
	// Segments holds the legs in generation order. Each leg starts where the
	// previous one ended and the first leg starts at the anchor.
	Segments []TangentSegment
	// Complete reports whether the chain has at least one leg and its last
	// vertex lies within Tolerance of the anchor.
	Complete bool
	// Tolerance is the closure tolerance the chain was built with. It is
	// always positive for chains returned by this package.
	Tolerance float64
}

// Rebuild computes the chain with the given radii and number of steps from
// scratch, using [DefaultTolerance].
func Rebuild(outer, inner float64, steps int) (Chain, error) {
	return RebuildTolerance(outer, inner, steps, DefaultTolerance)
}

// RebuildTolerance is like [Rebuild] but uses the provided closure tolerance.
// A tolerance that isn't positive selects [DefaultTolerance].
func RebuildTolerance(outer, inner float64, steps int, tolerance float64) (Chain, error) {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	if err := validateChain(outer, inner, steps); err != nil {
		return Chain{}, err
	}
	c := Chain{
		Outer:     outer,
		Inner:     inner,
		Segments:  make([]TangentSegment, 0, steps),
		Tolerance: tolerance,
	}
	if err := c.extend(steps); err != nil {
		return Chain{}, err
	}
	return c, nil
}

// Reconcile returns the chain for the given parameters, reusing as much of prev
// as possible. The result is identical to that of [RebuildTolerance] with
// prev's tolerance.
//
// If the radii differ from prev's, the chain is recomputed from the anchor. If
// only the number of steps decreased, prev's legs are truncated. If it
// increased, the missing legs are computed starting at prev's last vertex.
//
// The returned chain doesn't share memory with prev.
func Reconcile(prev Chain, outer, inner float64, steps int) (Chain, error) {
	tolerance := prev.Tolerance
	if prev.Outer != outer || prev.Inner != inner || !(tolerance > 0) {
		return RebuildTolerance(outer, inner, steps, tolerance)
	}
	if err := validateChain(outer, inner, steps); err != nil {
		return Chain{}, err
	}

	n := min(steps, len(prev.Segments))
	c := Chain{
		Outer:     outer,
		Inner:     inner,
		Segments:  make([]TangentSegment, n, steps),
		Tolerance: tolerance,
	}
	copy(c.Segments, prev.Segments[:n])
	if err := c.extend(steps - n); err != nil {
		return Chain{}, err
	}
	return c, nil
}

func validateChain(outer, inner float64, steps int) error {
	if !(outer > 0) || math.IsInf(outer, 0) {
		return fmt.Errorf("outer radius %g: %w", outer, ErrInvalidRadius)
	}
	if !(inner > 0) || math.IsInf(inner, 0) {
		return fmt.Errorf("inner radius %g: %w", inner, ErrInvalidRadius)
	}
	if inner > outer {
		return fmt.Errorf("inner radius %g, outer radius %g: %w", inner, outer, ErrInvalidRadiusOrdering)
	}
	if steps < 0 {
		return fmt.Errorf("%d steps: %w", steps, ErrInvalidStepCount)
	}
	return nil
}

// extend appends n legs to the chain and updates its completion state.
func (c *Chain) extend(n int) error {
	cur := c.End()
	for range n {
		next, err := TangentStep(cur, c.Outer, c.Inner)
		if err != nil {
			return err
		}
		c.Segments = append(c.Segments, TangentSegment{Start: cur, End: next})
		cur = next
	}
	c.Complete = len(c.Segments) > 0 && cur.NearlyEqual(c.Anchor(), c.Tolerance)
	return nil
}

// Steps returns the number of legs in the chain.
func (c Chain) Steps() int {
	return len(c.Segments)
}

// Anchor returns the chain's first vertex.
func (c Chain) Anchor() Point {
	return Anchor(c.Outer)
}

// End returns the chain's last vertex. For empty chains, this is the anchor.
func (c Chain) End() Point {
	if len(c.Segments) == 0 {
		return c.Anchor()
	}
	return c.Segments[len(c.Segments)-1].End
}

// Points returns the chain's vertices, starting with the anchor.
func (c Chain) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !yield(c.Anchor()) {
			return
		}
		for _, seg := range c.Segments {
			if !yield(seg.End) {
				return
			}
		}
	}
}

// Vertices returns the chain's vertices, starting with the anchor. A chain with
// n legs has n+1 vertices.
func (c Chain) Vertices() []Point {
	out := make([]Point, 0, len(c.Segments)+1)
	return slices.AppendSeq(out, c.Points())
}

// Length returns the total length of all legs.
func (c Chain) Length() float64 {
	var l float64
	for _, seg := range c.Segments {
		l += seg.Length()
	}
	return l
}

// BoundingBox returns the smallest rectangle enclosing all vertices.
func (c Chain) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.Anchor(), c.Anchor())
	for _, seg := range c.Segments {
		bbox = bbox.UnionPoint(seg.End)
	}
	return bbox
}

// PathElements returns the chain as a polyline. Complete chains end with
// ClosePath instead of a final LineTo back to the anchor.
func (c Chain) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(c.Anchor())) {
			return
		}
		segs := c.Segments
		if c.Complete {
			segs = segs[:len(segs)-1]
		}
		for _, seg := range segs {
			if !yield(LineTo(seg.End)) {
				return
			}
		}
		if c.Complete {
			yield(ClosePath())
		}
	}
}

// Equal reports whether c and o have the same radii, tolerance, completion
// state and legs.
func (c Chain) Equal(o Chain) bool {
	return c.Outer == o.Outer &&
		c.Inner == o.Inner &&
		c.Tolerance == o.Tolerance &&
		c.Complete == o.Complete &&
		slices.Equal(c.Segments, o.Segments)
}
