// Package annulus computes tangent chains in an annulus: the region between
// two concentric circles centered at the origin, with inner radius r and outer
// radius R, r ≤ R.
//
// A tangent chain starts at the anchor (0, R) on the outer circle. Each leg
// runs from the current vertex along a line that touches the inner circle,
// ending where that line meets the outer circle again. The end of one leg is
// the start of the next. Depending on r/R and the number of steps, the chain
// either returns to the anchor, tracing a regular polygon or star polygon, or
// keeps winding around the annulus.
//
// The package is meant to sit underneath interactive visualizers. It receives
// numeric parameters and returns plain data; it does no drawing and no event
// handling.
//
// # Geometry
//
// [TangentStep] computes one leg. [TangentAngle], [TurningAngle] and
// [ChordLength] describe the geometry of every leg of a given annulus, and
// [SampleCircle] produces polyline approximations of its circles. Points,
// vectors, lines, rectangles and affine transforms follow the conventions of
// y-up math: positive angles rotate anti-clockwise.
//
// # Chains
//
// [Rebuild] computes a [Chain] from scratch. [Reconcile] produces the same
// result but reuses the legs of a previously computed chain when only the
// number of steps changed, which is the common case while dragging a slider.
// A chain is complete if its last vertex lies within a tolerance of the
// anchor.
//
// # Ratios
//
// [SolveRatio] inverts the construction: given a number of edges, it returns
// the ratio R/r for which the chain closes after exactly that many steps. With
// star mode, it solves for the star polygon {n/k} with the smallest valid
// density k instead. [SolveRatioDensity] accepts an explicit density.
//
// # Controllers
//
// [Controller] bundles a chain with the parameter rules of the visualizers:
// radii are clamped to [Limits], the inner radius can never exceed the outer
// radius, and step counts are clamped. [Controller.Report] returns everything
// a presentation layer needs to display.
package annulus
