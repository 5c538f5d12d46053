// Package hydraulics - bounded iterative solvers for normal and critical depth.
//
// Both solvers share one bracketed-bisection core. The residuals are strictly
// monotone in depth for every section family in this library, so the bracket
// is found by geometric expansion and bisection cannot stall. The stopping
// tolerance, iteration cap and the best-estimate-plus-warning fallback are
// part of the documented contract (see package doc).
package hydraulics

import (
	"math"

	"github.com/katalvlaran/openchannel/section"
)

// bracketGrowth is the geometric expansion factor of the upper bracket probe.
const bracketGrowth = 2.0

// seedDepth is the initial upper-bracket probe (m) for unbounded sections.
const seedDepth = 1.0

// fullFlowFraction caps solved depths in closed conduits just below the
// crown, where Manning discharge peaks and the residual loses monotonicity.
const fullFlowFraction = 0.98

// WarnNoConvergence is appended when a solver exhausts its iteration cap.
const WarnNoConvergence = "solver reached iteration cap before tolerance; returning best estimate"

// WarnCapacity is appended when a closed conduit cannot pass the discharge
// as open-channel flow.
const WarnCapacity = "discharge exceeds open-channel capacity of the closed conduit; returning maximum depth"

// NormalDepth solves Manning's equation for the uniform-flow depth of s
// passing discharge q on slope S with roughness n.
//
// Contracts:
//   - s non-nil; q ≥ 0; n > 0; S > 0.
//   - q == 0 returns a converged zero-depth solution immediately.
//   - Closed conduits whose open-channel capacity is below q return
//     fullFlowFraction·rise with WarnCapacity.
//
// Non-convergence returns the last bisection midpoint with Converged=false
// and WarnNoConvergence; it never returns an error.
//
// Complexity: O(MaxIterations) section-geometry evaluations.
func NormalDepth(s section.Section, q, n, slope float64, opts Options) (Solution, error) {
	if s == nil {
		return Solution{}, ErrNilSection
	}
	if q < 0 {
		return Solution{}, ErrDischarge
	}
	if n <= 0 {
		return Solution{}, ErrRoughness
	}
	if slope <= 0 {
		return Solution{}, ErrSlope
	}
	if q == 0 {
		return Solution{Converged: true}, nil
	}

	residual := func(y float64) float64 { return Discharge(s, y, n, slope) - q }

	return solveMonotone(s, residual, true, opts)
}

// CriticalDepth solves for the depth where Fr = 1 exactly, i.e. the root of
// Q²·T/(g·A³) = 1.
//
// Contracts mirror NormalDepth, minus the slope (critical depth is
// slope-independent). q == 0 returns a converged zero-depth solution.
//
// Complexity: O(MaxIterations) section-geometry evaluations.
func CriticalDepth(s section.Section, q float64, opts Options) (Solution, error) {
	if s == nil {
		return Solution{}, ErrNilSection
	}
	if q < 0 {
		return Solution{}, ErrDischarge
	}
	if q == 0 {
		return Solution{Converged: true}, nil
	}

	// Increasing residual form: g·A³/T − Q² grows with depth.
	residual := func(y float64) float64 {
		a := s.Area(y)
		if a <= 0 {
			return -q * q
		}
		t := s.TopWidth(y)
		if t <= 0 {
			// Closed-conduit crown: A³/T diverges as the surface closes.
			return math.Inf(1)
		}

		return Gravity*a*a*a/t - q*q
	}

	return solveMonotone(s, residual, false, opts)
}

// CriticalSlope returns the bed slope on which normal depth coincides with
// critical depth for discharge q: Sc = (Q/K(yc))².
//
// The returned Solution carries the critical depth; the slope is the second
// return. Non-convergence of the inner critical-depth solve propagates
// through the Solution warnings.
func CriticalSlope(s section.Section, q, n float64, opts Options) (Solution, float64, error) {
	if n <= 0 {
		return Solution{}, 0, ErrRoughness
	}
	sol, err := CriticalDepth(s, q, opts)
	if err != nil {
		return Solution{}, 0, err
	}
	if sol.Depth <= 0 {
		return sol, 0, nil
	}
	k := Conveyance(s, sol.Depth, n)
	if k <= 0 {
		return sol, 0, nil
	}
	ratio := q / k

	return sol, ratio * ratio, nil
}

// solveMonotone brackets and bisects a strictly increasing residual.
// manningCapped marks residuals (Manning discharge) that peak just below the
// crown of a closed conduit; those brackets are clamped to fullFlowFraction
// of the rise and capacity exceedance degrades to a warning.
func solveMonotone(s section.Section, residual func(float64) float64, manningCapped bool, opts Options) (Solution, error) {
	o := opts.normalized()

	ceiling := math.Inf(1)
	if rise := s.MaxDepth(); !math.IsInf(rise, 1) {
		ceiling = rise
		if manningCapped {
			ceiling = fullFlowFraction * rise
		}
	}

	// Expand the upper bracket geometrically until the residual turns
	// positive or the ceiling is hit.
	lo, hi := 0.0, seedDepth
	if hi > ceiling {
		hi = ceiling
	}
	for residual(hi) < 0 {
		if hi >= ceiling {
			// Closed conduit at capacity: report the ceiling.
			return Solution{
				Depth:     ceiling,
				Converged: false,
				Warnings:  []string{WarnCapacity},
			}, nil
		}
		lo = hi
		hi *= bracketGrowth
		if hi > ceiling {
			hi = ceiling
		}
	}

	// Bisect to relative tolerance.
	var (
		mid   float64
		iters int
	)
	for iters = 0; iters < o.MaxIterations; iters++ {
		mid = (lo + hi) / 2
		if residual(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= o.Tolerance*math.Max(hi, o.Tolerance) {
			return Solution{Depth: (lo + hi) / 2, Iterations: iters + 1, Converged: true}, nil
		}
	}

	return Solution{
		Depth:      (lo + hi) / 2,
		Iterations: iters,
		Converged:  false,
		Warnings:   []string{WarnNoConvergence},
	}, nil
}
