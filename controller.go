package annulus

import (
	"fmt"
	"math"
	"strconv"
)

// Limits describes the legal parameter ranges of a [Controller].
type Limits struct {
	// Smallest radius a radius input may be set to. Positive radii below it
	// are raised to it.
	RadiusMin float64
	// Largest radius a radius input may be set to. Larger radii are lowered to
	// it.
	RadiusMax float64
	// Range of the step count. Step counts outside of it are clamped.
	StepsMin int
	StepsMax int
	// Number of points used to sample each circle. Zero selects
	// DefaultCircleSamples.
	CircleSamples int
	// Closure tolerance of the chain. Zero selects DefaultTolerance.
	Tolerance float64
}

var DefaultLimits = Limits{
	RadiusMin:     0.1,
	RadiusMax:     10,
	StepsMin:      1,
	StepsMax:      1000,
	CircleSamples: DefaultCircleSamples,
	Tolerance:     DefaultTolerance,
}

func (l Limits) WithRadii(lo, hi float64) Limits  { l.RadiusMin, l.RadiusMax = lo, hi; return l }
func (l Limits) WithSteps(lo, hi int) Limits      { l.StepsMin, l.StepsMax = lo, hi; return l }
func (l Limits) WithCircleSamples(n int) Limits   { l.CircleSamples = n; return l }
func (l Limits) WithTolerance(tol float64) Limits { l.Tolerance = tol; return l }

func (l Limits) validate() error {
	if !(l.RadiusMin > 0) || !(l.RadiusMax >= l.RadiusMin) || math.IsInf(l.RadiusMax, 0) {
		return fmt.Errorf("radius limits [%g, %g]: %w", l.RadiusMin, l.RadiusMax, ErrInvalidRadius)
	}
	if l.StepsMin < 0 || l.StepsMax < l.StepsMin {
		return fmt.Errorf("step limits [%d, %d]: %w", l.StepsMin, l.StepsMax, ErrInvalidStepCount)
	}
	return nil
}

func (l Limits) clampRadius(r float64) float64 {
	return min(max(r, l.RadiusMin), l.RadiusMax)
}

func (l Limits) clampSteps(n int) int {
	return min(max(n, l.StepsMin), l.StepsMax)
}

// RangeConstraints are the ranges the radius inputs may currently take. The
// inner radius may not exceed the outer radius, and vice versa.
type RangeConstraints struct {
	InnerMin, InnerMax float64
	OuterMin, OuterMax float64
}

// Controller owns the tangent chain of an interactive session and keeps it
// consistent with the current parameters. Every setter recomputes the chain
// synchronously. On error, the controller retains its previous state.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	limits Limits
	chain  Chain
	solver RatioSolver
	solved bool
}

// NewController returns a controller with the given limits. Its initial state
// is an outer radius of 10, an inner radius of 1 and a single step, clamped to
// the limits.
func NewController(limits Limits) (*Controller, error) {
	if err := limits.validate(); err != nil {
		return nil, err
	}
	if limits.Tolerance <= 0 {
		limits.Tolerance = DefaultTolerance
	}
	if limits.CircleSamples <= 0 {
		limits.CircleSamples = DefaultCircleSamples
	}
	outer := limits.clampRadius(10)
	inner := min(limits.clampRadius(1), outer)
	c, err := RebuildTolerance(outer, inner, limits.clampSteps(1), limits.Tolerance)
	if err != nil {
		return nil, err
	}
	return &Controller{limits: limits, chain: c}, nil
}

func (ctrl *Controller) Limits() Limits { return ctrl.limits }

// Chain returns the current chain. The caller must not modify its segments.
func (ctrl *Controller) Chain() Chain { return ctrl.chain }

// Ranges returns the ranges of the radius inputs for the current radii.
func (ctrl *Controller) Ranges() RangeConstraints {
	return RangeConstraints{
		InnerMin: ctrl.limits.RadiusMin,
		InnerMax: ctrl.chain.Outer,
		OuterMin: ctrl.chain.Inner,
		OuterMax: ctrl.limits.RadiusMax,
	}
}

// SetRadii changes both radii and returns the updated chain and input ranges.
//
// Radii that aren't positive are rejected with [ErrInvalidRadius], and an inner
// radius larger than the outer one with [ErrInvalidRadiusOrdering]. Valid radii
// are then clamped to the limits.
func (ctrl *Controller) SetRadii(outer, inner float64) (Chain, RangeConstraints, error) {
	if !(outer > 0) {
		return Chain{}, RangeConstraints{}, fmt.Errorf("outer radius %g: %w", outer, ErrInvalidRadius)
	}
	if !(inner > 0) {
		return Chain{}, RangeConstraints{}, fmt.Errorf("inner radius %g: %w", inner, ErrInvalidRadius)
	}
	if inner > outer {
		return Chain{}, RangeConstraints{}, fmt.Errorf("inner radius %g, outer radius %g: %w", inner, outer, ErrInvalidRadiusOrdering)
	}
	// Clamping preserves the order of the radii.
	outer = ctrl.limits.clampRadius(outer)
	inner = ctrl.limits.clampRadius(inner)
	c, err := Reconcile(ctrl.chain, outer, inner, ctrl.chain.Steps())
	if err != nil {
		return Chain{}, RangeConstraints{}, err
	}
	ctrl.chain = c
	return c, ctrl.Ranges(), nil
}

// SetOuter changes the outer radius, keeping the inner radius.
func (ctrl *Controller) SetOuter(outer float64) (Chain, RangeConstraints, error) {
	return ctrl.SetRadii(outer, ctrl.chain.Inner)
}

// SetInner changes the inner radius, keeping the outer radius.
func (ctrl *Controller) SetInner(inner float64) (Chain, RangeConstraints, error) {
	return ctrl.SetRadii(ctrl.chain.Outer, inner)
}

// SetSteps changes the number of steps, clamped to the limits, and returns the
// updated chain.
func (ctrl *Controller) SetSteps(n int) (Chain, error) {
	c, err := Reconcile(ctrl.chain, ctrl.chain.Outer, ctrl.chain.Inner, ctrl.limits.clampSteps(n))
	if err != nil {
		return Chain{}, err
	}
	ctrl.chain = c
	return c, nil
}

// SolveRatio computes the ratio that closes the chain after edges steps (see
// [SolveRatio]) and remembers the request for [Controller.Report].
func (ctrl *Controller) SolveRatio(edges int, star bool) (float64, error) {
	rs := RatioSolver{Edges: edges, Star: star}
	ratio, err := rs.Ratio()
	if err != nil {
		return 0, err
	}
	ctrl.solver = rs
	ctrl.solved = true
	return ratio, nil
}

// ApplyRatio solves for the ratio like [Controller.SolveRatio], then sets the
// inner radius so that the current outer radius and the inner radius have that
// ratio, and sets the number of steps to edges.
func (ctrl *Controller) ApplyRatio(edges int, star bool) (Chain, RangeConstraints, error) {
	rs := RatioSolver{Edges: edges, Star: star}
	inner, err := rs.Radii(ctrl.chain.Outer)
	if err != nil {
		return Chain{}, RangeConstraints{}, err
	}
	if inner < ctrl.limits.RadiusMin {
		return Chain{}, RangeConstraints{}, fmt.Errorf("inner radius %g for %d edges is below the minimum radius %g: %w",
			inner, edges, ctrl.limits.RadiusMin, ErrInvalidRadius)
	}
	steps := ctrl.limits.clampSteps(edges)
	if steps != edges {
		return Chain{}, RangeConstraints{}, fmt.Errorf("%d edges outside of [%d, %d]: %w",
			edges, ctrl.limits.StepsMin, ctrl.limits.StepsMax, ErrInvalidStepCount)
	}
	c, err := Reconcile(ctrl.chain, ctrl.chain.Outer, inner, steps)
	if err != nil {
		return Chain{}, RangeConstraints{}, err
	}
	ctrl.chain = c
	ctrl.solver = rs
	ctrl.solved = true
	return c, ctrl.Ranges(), nil
}

// Report is a snapshot of a controller's state for presentation.
type Report struct {
	Outer  float64
	Inner  float64
	Steps  int
	Ranges RangeConstraints

	// Vertices of the chain, starting with the anchor.
	Vertices []Point
	Complete bool
	// Ratio is the current outer/inner ratio.
	Ratio string
	// Length is the total length of the chain's legs.
	Length float64
	// Path is the chain as SVG path data, closed if the chain is complete.
	Path string
	// Bounds encloses the outer circle and the chain.
	Bounds Rect

	// Readouts for the chain's first leg: its start (the anchor), the point
	// at which it touches the inner circle, and its end on the outer circle.
	StartingPoint     string
	TangentPoint      string
	IntersectionPoint string
	// TangentAngle is the angle between a leg and the radius to its start
	// vertex, in degrees.
	TangentAngle float64

	InnerCircle []Point
	OuterCircle []Point

	// Solver is the last successful ratio request, and SolvedRatio its
	// result. SolvedRatio is empty if no ratio has been solved.
	Solver      RatioSolver
	SolvedRatio string
}

// Report returns a snapshot of the controller's state.
func (ctrl *Controller) Report() Report {
	c := ctrl.chain
	r := Report{
		Outer:         c.Outer,
		Inner:         c.Inner,
		Steps:         c.Steps(),
		Ranges:        ctrl.Ranges(),
		Vertices:      c.Vertices(),
		Complete:      c.Complete,
		Ratio:         formatRatio(c.Outer / c.Inner),
		Length:        c.Length(),
		Path:          SVG(c.PathElements(), SVGOptions{MaxPrecision: 4}),
		Bounds:        c.BoundingBox().Union(Circle{Radius: c.Outer}.BoundingBox()),
		StartingPoint: c.Anchor().String(),
		TangentAngle:  Degrees(TangentAngle(c.Outer, c.Inner)),
		InnerCircle:   Circle{Radius: c.Inner}.Sample(ctrl.limits.CircleSamples),
		OuterCircle:   Circle{Radius: c.Outer}.Sample(ctrl.limits.CircleSamples),
	}
	if len(c.Segments) > 0 {
		first := c.Segments[0]
		r.TangentPoint = first.TangentPoint().String()
		r.IntersectionPoint = first.End.String()
	}
	if ctrl.solved {
		r.Solver = ctrl.solver
		if ratio, err := ctrl.solver.Ratio(); err == nil {
			r.SolvedRatio = formatRatio(ratio)
		}
	}
	return r
}

func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 4, 64)
}
