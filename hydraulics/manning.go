// Package hydraulics - closed-form steady-flow relations.
package hydraulics

import (
	"math"

	"github.com/katalvlaran/openchannel/section"
)

// Conveyance returns K = A·R^(2/3)/n (units of m³/s per unit √slope) for s at
// the given depth, or 0 for dry geometry.
func Conveyance(s section.Section, depth, n float64) float64 {
	a := s.Area(depth)
	p := s.WettedPerimeter(depth)
	if a <= 0 || p <= 0 || n <= 0 {
		return 0
	}

	return a * math.Pow(a/p, 2.0/3.0) / n
}

// Discharge returns the Manning discharge Q = K·√S (m³/s) for s at the given
// depth, or 0 for dry geometry or a non-positive slope.
func Discharge(s section.Section, depth, n, slope float64) float64 {
	if slope <= 0 {
		return 0
	}

	return Conveyance(s, depth, n) * math.Sqrt(slope)
}

// Velocity returns the mean velocity V = Q/A (m/s) at the given depth, or 0
// for dry geometry.
func Velocity(s section.Section, depth, discharge float64) float64 {
	a := s.Area(depth)
	if a <= 0 {
		return 0
	}

	return discharge / a
}

// FroudeNumber returns Fr = V/√(g·D) with D the hydraulic depth A/T, or 0
// when the hydraulic depth vanishes.
func FroudeNumber(velocity, hydraulicDepth float64) float64 {
	if hydraulicDepth <= 0 {
		return 0
	}

	return velocity / math.Sqrt(Gravity*hydraulicDepth)
}

// Froude computes Fr for s flowing Q at the given depth.
func Froude(s section.Section, depth, discharge float64) float64 {
	return FroudeNumber(Velocity(s, depth, discharge), section.HydraulicDepth(s, depth))
}

// ClassifyRegime maps a Froude number onto the reported regime using the
// ±5 % band around Fr = 1 (see package doc: reporting convenience only).
func ClassifyRegime(froude float64) Regime {
	switch {
	case froude < SubcriticalLimit:
		return Subcritical
	case froude > SupercriticalLimit:
		return Supercritical
	default:
		return Critical
	}
}

// SpecificEnergy returns E = y + V²/(2g) (m) for s flowing Q at depth y.
func SpecificEnergy(s section.Section, depth, discharge float64) float64 {
	if depth <= 0 {
		return 0
	}
	v := Velocity(s, depth, discharge)

	return depth + v*v/(2*Gravity)
}

// ShearStress returns the mean boundary shear τ = γ·R·S (Pa).
func ShearStress(s section.Section, depth, slope float64) float64 {
	if slope <= 0 {
		return 0
	}

	return UnitWeight * section.HydraulicRadius(s, depth) * slope
}

// FrictionSlope returns Sf = (Q/K)² at the given depth, the energy gradient
// implied by Manning's equation, or 0 for dry geometry.
func FrictionSlope(s section.Section, depth, discharge, n float64) float64 {
	k := Conveyance(s, depth, n)
	if k <= 0 {
		return 0
	}
	ratio := discharge / k

	return ratio * ratio
}
