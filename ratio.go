package annulus

import (
	"fmt"
	"math"
)

// SolveRatio returns the ratio outer/inner for which a tangent chain closes
// after exactly edges steps.
//
// If star is false, the chain traces a convex polygon, which requires at least
// three edges. If star is true, the chain traces the star polygon {edges/k}
// for the smallest density k > 1 that is coprime to edges; see
// [StarDensities].
func SolveRatio(edges int, star bool) (float64, error) {
	k, err := RatioSolver{Edges: edges, Star: star}.Density()
	if err != nil {
		return 0, err
	}
	return SolveRatioDensity(edges, k)
}

// SolveRatioDensity returns the ratio outer/inner for which a tangent chain
// closes after n steps having wound k times around the center.
//
// Each step advances the chain by the central angle π − 2θ, with θ the
// [TangentAngle]. Closing after n steps and k turns requires n(π − 2θ) = 2πk,
// so θ = π/2 − πk/n and outer/inner = 1/sin θ = 1/cos(πk/n).
//
// k must be 1 (with n ≥ 3) or satisfy 1 < k < n/2 and gcd(k, n) = 1.
func SolveRatioDensity(n, k int) (float64, error) {
	switch {
	case k == 1:
		if n < 3 {
			return 0, fmt.Errorf("polygon with %d edges: %w", n, ErrInvalidEdgeCount)
		}
	case k > 1:
		if 2*k >= n || gcd(k, n) != 1 {
			return 0, fmt.Errorf("star polygon {%d/%d}: %w", n, k, ErrInvalidEdgeCount)
		}
	default:
		return 0, fmt.Errorf("density %d: %w", k, ErrInvalidEdgeCount)
	}
	return 1 / math.Cos(math.Pi*float64(k)/float64(n)), nil
}

// StarDensities returns, in increasing order, every density k for which the
// star polygon {n/k} exists: 1 < k < n/2 and gcd(k, n) = 1.
func StarDensities(n int) []int {
	var out []int
	for k := 2; 2*k < n; k++ {
		if gcd(k, n) == 1 {
			out = append(out, k)
		}
	}
	return out
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// RatioSolver holds the inputs of a ratio computation.
type RatioSolver struct {
	Edges int
	Star  bool
}

// Ratio returns the solved outer/inner ratio. See [SolveRatio].
func (rs RatioSolver) Ratio() (float64, error) {
	return SolveRatio(rs.Edges, rs.Star)
}

// Density returns the number of times a chain with the solved ratio winds
// around the center before it closes.
func (rs RatioSolver) Density() (int, error) {
	if !rs.Star {
		if rs.Edges < 3 {
			return 0, fmt.Errorf("polygon with %d edges: %w", rs.Edges, ErrInvalidEdgeCount)
		}
		return 1, nil
	}
	ks := StarDensities(rs.Edges)
	if len(ks) == 0 {
		return 0, fmt.Errorf("no star polygon with %d edges: %w", rs.Edges, ErrInvalidEdgeCount)
	}
	return ks[0], nil
}

// Radii returns the inner radius that, combined with outer, closes the chain
// after rs.Edges steps.
func (rs RatioSolver) Radii(outer float64) (inner float64, err error) {
	ratio, err := rs.Ratio()
	if err != nil {
		return 0, err
	}
	return outer / ratio, nil
}
