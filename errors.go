package annulus

import "errors"

var (
	// ErrInvalidRadius is returned for radii that are not strictly positive.
	ErrInvalidRadius = errors.New("radius must be positive")
	// ErrInvalidRadiusOrdering is returned when the inner radius exceeds the
	// outer radius.
	ErrInvalidRadiusOrdering = errors.New("inner radius exceeds outer radius")
	// ErrDegenerateChain is returned by [TangentStep] when no tangent line
	// through the current vertex exists.
	ErrDegenerateChain = errors.New("degenerate tangent chain")
	// ErrInvalidEdgeCount is returned by the ratio solver for edge counts (or
	// star densities) that cannot describe a closed polygon.
	ErrInvalidEdgeCount = errors.New("invalid edge count")
	// ErrInvalidStepCount is returned for negative step counts.
	ErrInvalidStepCount = errors.New("invalid step count")
)
