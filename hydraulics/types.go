// Package hydraulics - shared constants, options and result records.
package hydraulics

import "errors"

// Physical constants (SI).
const (
	// Gravity is standard gravitational acceleration g (m/s²).
	Gravity = 9.80665

	// UnitWeight is the unit weight of water γ (N/m³) at ordinary temperature.
	UnitWeight = 9810.0

	// WaterDensity is the density of water ρ (kg/m³) at 20 °C.
	WaterDensity = 998.2
)

// Solver contract constants. These are defaults; Options overrides per call.
const (
	// ConvergeTol is the default relative stopping tolerance of the depth solvers.
	ConvergeTol = 1e-4

	// MaxIterations is the default iteration cap of the depth solvers.
	MaxIterations = 100
)

// Regime-band constants: the ±5 % reporting buffer around Fr = 1.
// Solvers treat Fr = 1 exactly; this band exists for classification only.
const (
	// SubcriticalLimit is the upper Froude bound of reported subcritical flow.
	SubcriticalLimit = 0.95

	// SupercriticalLimit is the lower Froude bound of reported supercritical flow.
	SupercriticalLimit = 1.05
)

// Sentinel errors returned on invalid inputs. Hydraulic degradation
// (non-convergence, capacity exceedance) is reported via Solution warnings,
// never via error.
var (
	// ErrNilSection indicates a nil Section was supplied.
	ErrNilSection = errors.New("hydraulics: section must be non-nil")

	// ErrDischarge indicates a negative discharge.
	ErrDischarge = errors.New("hydraulics: discharge must be non-negative")

	// ErrRoughness indicates a non-positive Manning roughness.
	ErrRoughness = errors.New("hydraulics: Manning roughness must be positive")

	// ErrSlope indicates a non-positive slope where one is required.
	ErrSlope = errors.New("hydraulics: slope must be positive")

	// ErrDepth indicates a non-positive depth where one is required.
	ErrDepth = errors.New("hydraulics: depth must be positive")
)

// Regime is the reported flow regime per the ±5 % Froude band.
type Regime string

// Reported flow regimes.
const (
	Subcritical   Regime = "subcritical"
	Critical      Regime = "critical"
	Supercritical Regime = "supercritical"
)

// Options tunes the iterative depth solvers. The zero value selects the
// package defaults, so Options{} and DefaultOptions() are interchangeable.
type Options struct {
	// Tolerance is the relative bracket-width stopping tolerance.
	// ≤ 0 selects ConvergeTol.
	Tolerance float64

	// MaxIterations caps the bisection loop. ≤ 0 selects MaxIterations.
	MaxIterations int
}

// DefaultOptions returns the documented solver defaults.
func DefaultOptions() Options {
	return Options{Tolerance: ConvergeTol, MaxIterations: MaxIterations}
}

// normalized resolves zero-value fields to the package defaults.
func (o Options) normalized() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = ConvergeTol
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = MaxIterations
	}

	return o
}

// Solution is the record returned by the iterative depth solvers.
type Solution struct {
	// Depth is the solved (or best-estimate) depth (m).
	Depth float64 `json:"depth"`

	// Iterations is the number of bisection steps performed.
	Iterations int `json:"iterations"`

	// Converged reports whether the tolerance was met within the cap.
	Converged bool `json:"converged"`

	// Warnings lists hydraulic caveats (non-convergence, capacity limits).
	Warnings []string `json:"warnings"`
}
