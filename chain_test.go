package annulus

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestChainContinuity(t *testing.T) {
	for _, a := range annuli {
		for _, steps := range []int{0, 1, 2, 3, 17, 1000} {
			c, err := Rebuild(a.outer, a.inner, steps)
			if err != nil {
				t.Fatal(err)
			}
			if c.Steps() != steps {
				t.Fatalf("(%v, %v, %d): got %d segments", a.outer, a.inner, steps, c.Steps())
			}
			if steps == 0 {
				if c.Complete {
					t.Errorf("(%v, %v): empty chain is complete", a.outer, a.inner)
				}
				continue
			}
			if c.Segments[0].Start != Anchor(a.outer) {
				t.Errorf("(%v, %v, %d): chain starts at %s", a.outer, a.inner, steps, c.Segments[0].Start)
			}
			for i := 1; i < len(c.Segments); i++ {
				if c.Segments[i].Start != c.Segments[i-1].End {
					t.Fatalf("(%v, %v, %d): segment %d starts at %s, previous ends at %s",
						a.outer, a.inner, steps, i, c.Segments[i].Start, c.Segments[i-1].End)
				}
			}
		}
	}
}

func TestChainStaysInAnnulus(t *testing.T) {
	for _, a := range annuli {
		c, err := Rebuild(a.outer, a.inner, 1000)
		if err != nil {
			t.Fatal(err)
		}
		for i, seg := range c.Segments {
			if d := seg.End.Distance(Point{}); math.Abs(d-a.outer) > 1e-9*a.outer {
				t.Fatalf("(%v, %v): vertex %d at distance %v from the origin", a.outer, a.inner, i+1, d)
			}
			if d := seg.TangentPoint().Distance(Point{}); math.Abs(d-a.inner) > 1e-9*a.outer {
				t.Fatalf("(%v, %v): segment %d touches the inner circle at distance %v", a.outer, a.inner, i, d)
			}
		}
		bbox := c.BoundingBox()
		outer := Circle{Radius: a.outer}.BoundingBox().Inflate(1e-9, 1e-9)
		if bbox.Union(outer) != outer {
			t.Errorf("(%v, %v): chain bounding box %v exceeds %v", a.outer, a.inner, bbox, outer)
		}
	}
}

func TestChainClosure(t *testing.T) {
	c, err := Rebuild(10, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Complete {
		t.Errorf("chain with R=10, r=5 doesn't close after 3 steps; ends at %s", c.End())
	}
	assertNear(t, c.End(), Pt(0, 10), 1e-9)

	// Closing once means closing every 3 steps.
	for steps := 1; steps <= 12; steps++ {
		c, err := Rebuild(10, 5, steps)
		if err != nil {
			t.Fatal(err)
		}
		if want := steps%3 == 0; c.Complete != want {
			t.Errorf("%d steps: got complete = %t, want %t", steps, c.Complete, want)
		}
	}
}

func TestChainNonClosure(t *testing.T) {
	c, err := Rebuild(10, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if c.Complete {
		t.Errorf("chain with R=10, r=1 closes after 5 steps")
	}
	if c.End().NearlyEqual(Pt(0, 10), 1e-3) {
		t.Errorf("chain ends at %s, too close to the anchor", c.End())
	}
}

func TestChainTolerance(t *testing.T) {
	// Misses the anchor by about 7e-5 after three steps.
	inner := 5 + 1e-5
	c, err := Rebuild(10, inner, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.Complete {
		t.Errorf("chain ending at %s is complete with the default tolerance", c.End())
	}
	c, err = RebuildTolerance(10, inner, 3, 1e-2)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Complete {
		t.Errorf("chain ending at %s isn't complete with a tolerance of 1e-2", c.End())
	}
}

func TestChainDefaultTolerance(t *testing.T) {
	want := mustRebuild(t, 10, 5, 3)
	for _, tol := range []float64{0, -1, math.NaN()} {
		c, err := RebuildTolerance(10, 5, 3, tol)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, c)
		// Reconciling keeps the tolerance the chain was built with.
		diff(t, c, mustReconcile(t, c, 10, 5, 3))
		diff(t, mustRebuild(t, 10, 5, 2), mustReconcile(t, c, 10, 5, 2))
	}

	// A chain reconciled from one with a custom tolerance keeps it.
	loose, err := RebuildTolerance(10, 5+1e-5, 2, 1e-2)
	if err != nil {
		t.Fatal(err)
	}
	got := mustReconcile(t, loose, 10, 5+1e-5, 3)
	if got.Tolerance != 1e-2 || !got.Complete {
		t.Errorf("got tolerance %v and complete = %t, want 0.01 and true", got.Tolerance, got.Complete)
	}
}

func TestChainEqualRadii(t *testing.T) {
	c, err := Rebuild(5, 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, seg := range c.Segments {
		if seg.Start != Pt(0, 5) || seg.End != Pt(0, 5) {
			t.Errorf("segment %d is %s, want a zero-length segment at the anchor", i, seg)
		}
	}
	if !c.Complete {
		t.Error("chain with equal radii never leaves the anchor but isn't complete")
	}
}

func TestChainInvalid(t *testing.T) {
	tests := []struct {
		outer, inner float64
		steps        int
		want         error
	}{
		{10, 11, 3, ErrInvalidRadiusOrdering},
		{5, 5 + 1e-12, 3, ErrInvalidRadiusOrdering},
		{0, 0, 3, ErrInvalidRadius},
		{10, 0, 3, ErrInvalidRadius},
		{-10, -11, 3, ErrInvalidRadius},
		{math.NaN(), 1, 3, ErrInvalidRadius},
		{math.Inf(1), 1, 3, ErrInvalidRadius},
		{10, 5, -1, ErrInvalidStepCount},
	}
	for _, tt := range tests {
		if _, err := Rebuild(tt.outer, tt.inner, tt.steps); !errors.Is(err, tt.want) {
			t.Errorf("Rebuild(%v, %v, %d): got error %v, want %v", tt.outer, tt.inner, tt.steps, err, tt.want)
		}
		prev, err := Rebuild(10, 5, 3)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := Reconcile(prev, tt.outer, tt.inner, tt.steps); !errors.Is(err, tt.want) {
			t.Errorf("Reconcile(%v, %v, %d): got error %v, want %v", tt.outer, tt.inner, tt.steps, err, tt.want)
		}
	}
}

func mustRebuild(t *testing.T, outer, inner float64, steps int) Chain {
	t.Helper()
	c, err := Rebuild(outer, inner, steps)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustReconcile(t *testing.T, prev Chain, outer, inner float64, steps int) Chain {
	t.Helper()
	c, err := Reconcile(prev, outer, inner, steps)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestReconcileIdempotent(t *testing.T) {
	for _, a := range annuli {
		for _, n := range []int{0, 1, 5, 100} {
			want := mustRebuild(t, a.outer, a.inner, n)
			diff(t, want, mustReconcile(t, want, a.outer, a.inner, n))
		}
	}
}

func TestReconcileTruncate(t *testing.T) {
	for _, a := range annuli {
		prev := mustRebuild(t, a.outer, a.inner, 50)
		for _, m := range []int{49, 10, 3, 1, 0} {
			diff(t, mustRebuild(t, a.outer, a.inner, m), mustReconcile(t, prev, a.outer, a.inner, m))
		}
	}

	// Truncating a complete chain to a point where it isn't complete.
	got := mustReconcile(t, mustRebuild(t, 10, 5, 3), 10, 5, 2)
	if got.Complete {
		t.Error("truncated chain is still complete")
	}
}

func TestReconcileExtend(t *testing.T) {
	for _, a := range annuli {
		prev := mustRebuild(t, a.outer, a.inner, 7)
		for _, m := range []int{8, 20, 1000} {
			diff(t, mustRebuild(t, a.outer, a.inner, m), mustReconcile(t, prev, a.outer, a.inner, m))
		}
	}

	got := mustReconcile(t, mustRebuild(t, 10, 5, 2), 10, 5, 3)
	if !got.Complete {
		t.Error("extended chain isn't complete")
	}
}

func TestReconcileRadiusChange(t *testing.T) {
	prev := mustRebuild(t, 10, 1, 20)
	diff(t, mustRebuild(t, 10, 2, 20), mustReconcile(t, prev, 10, 2, 20))
	diff(t, mustRebuild(t, 8, 1, 5), mustReconcile(t, prev, 8, 1, 5))
	diff(t, mustRebuild(t, 9, 3, 30), mustReconcile(t, prev, 9, 3, 30))
	diff(t, mustRebuild(t, 10, 5, 3), mustReconcile(t, Chain{}, 10, 5, 3))
}

func TestReconcileDoesNotAlias(t *testing.T) {
	prev := mustRebuild(t, 10, 1, 10)
	orig := slices.Clone(prev.Segments)

	got := mustReconcile(t, prev, 10, 1, 5)
	got.Segments[0] = TangentSegment{}
	got.Segments = append(got.Segments, TangentSegment{})
	diff(t, orig, prev.Segments)

	got = mustReconcile(t, prev, 10, 1, 10)
	got.Segments[9] = TangentSegment{}
	diff(t, orig, prev.Segments)
}

func TestReconcileSequence(t *testing.T) {
	// Any sequence of parameter changes produces the same chain as rebuilding
	// from scratch.
	rng := rand.New(rand.NewPCG(1, 2))
	radii := []float64{1, 2.5, 5, 7.3, 10}
	c := Chain{}
	outer, inner, steps := 10.0, 1.0, 1
	for i := range 500 {
		switch rng.IntN(3) {
		case 0:
			steps = rng.IntN(200)
		case 1:
			outer = radii[rng.IntN(len(radii))]
			inner = min(inner, outer)
		case 2:
			inner = radii[rng.IntN(len(radii))]
			outer = max(inner, outer)
		}
		c = mustReconcile(t, c, outer, inner, steps)
		want := mustRebuild(t, outer, inner, steps)
		if !c.Equal(want) {
			t.Fatalf("iteration %d (%v, %v, %d): reconciled chain differs from rebuilt chain", i, outer, inner, steps)
		}
	}
}

func TestChainVertices(t *testing.T) {
	c := mustRebuild(t, 10, 5, 4)
	want := []Point{
		Pt(0, 10),
		Pt(5*math.Sqrt(3), -5),
		Pt(-5*math.Sqrt(3), -5),
		Pt(0, 10),
		Pt(5*math.Sqrt(3), -5),
	}
	diff(t, want, c.Vertices(), pointComparer)
	assertNearFloat(t, c.Length(), 4*math.Sqrt(300), 1e-9)

	empty := mustRebuild(t, 10, 5, 0)
	diff(t, []Point{Pt(0, 10)}, empty.Vertices())
	diff(t, Pt(0, 10), empty.End())
	diff(t, Rect{0, 10, 0, 10}, empty.BoundingBox())
}

func TestChainPathElements(t *testing.T) {
	closed := mustRebuild(t, 10, 5, 3)
	want := []PathElement{
		MoveTo(Pt(0, 10)),
		LineTo(Pt(5*math.Sqrt(3), -5)),
		LineTo(Pt(-5*math.Sqrt(3), -5)),
		ClosePath(),
	}
	diff(t, want, slices.Collect(closed.PathElements()), pointComparer)

	open := mustRebuild(t, 10, 5, 2)
	want = []PathElement{
		MoveTo(Pt(0, 10)),
		LineTo(Pt(5*math.Sqrt(3), -5)),
		LineTo(Pt(-5*math.Sqrt(3), -5)),
	}
	diff(t, want, slices.Collect(open.PathElements()), pointComparer)

	diff(t, "M0,10 L8.66,-5 L-8.66,-5 Z", SVG(closed.PathElements(), SVGOptions{MaxPrecision: 3}))
}

func TestChainVerticesRotate(t *testing.T) {
	// Every step turns the vertex clockwise about the center by the turning
	// angle.
	for _, a := range annuli {
		c := mustRebuild(t, a.outer, a.inner, 50)
		th := TurningAngle(a.outer, a.inner)
		anchor := Vec2(c.Anchor())
		for i, v := range c.Vertices() {
			want := Point(anchor.Transform(Rotate(-float64(i) * th)))
			assertNear(t, v, want, 1e-9*a.outer*float64(i+1))
		}
	}
}
