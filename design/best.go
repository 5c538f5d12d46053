// Package design - best-hydraulic-section solver.
package design

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// Sentinel errors.
var (
	// ErrShape indicates an unknown section shape.
	ErrShape = errors.New("design: unknown section shape")

	// ErrInput indicates a non-positive design input.
	ErrInput = errors.New("design: inputs must be positive")

	// ErrSoil indicates an unknown soil name.
	ErrSoil = errors.New("design: unknown soil")
)

// Depth-bisection contract for the optimal-proportion Manning solve.
const (
	// DepthTol is the relative depth tolerance.
	DepthTol = 1e-4

	// MaxDepthIterations caps the bisection.
	MaxDepthIterations = 100
)

// WarnNoConvergence flags a depth solve that exhausted its cap.
const WarnNoConvergence = "depth solve reached iteration cap; returning best estimate"

// Shape selects the best-hydraulic-section family.
type Shape string

// Supported shapes.
const (
	ShapeRectangular Shape = "rectangular"
	ShapeTrapezoidal Shape = "trapezoidal"
	ShapeTriangular  Shape = "triangular"
)

// Optimal side slopes (horizontal per vertical).
const (
	// optimalTrapezoidSlope is 1/√3: the half hexagon.
	optimalTrapezoidSlope = 0.5773502691896258
	// optimalTriangleSlope is 1: the 90° vee.
	optimalTriangleSlope = 1.0
)

// BestSection is the optimal-geometry record.
type BestSection struct {
	// Shape echoes the requested family.
	Shape Shape `json:"shape"`
	// Depth is the Manning depth at optimal proportions (m).
	Depth float64 `json:"depth"`
	// BottomWidth is b (m); zero for triangular.
	BottomWidth float64 `json:"bottom_width"`
	// SideSlope is z (horizontal per vertical); zero for rectangular.
	SideSlope float64 `json:"side_slope"`
	// TopWidth, Area, HydraulicRadius describe the flow prism.
	TopWidth        float64 `json:"top_width"`
	Area            float64 `json:"area"`
	HydraulicRadius float64 `json:"hydraulic_radius"`
	// Velocity and Froude characterize the design flow.
	Velocity float64 `json:"velocity"`
	Froude   float64 `json:"froude"`

	Warnings []string `json:"warnings"`
}

// BestHydraulicSection sizes the minimum-perimeter channel of the given
// shape carrying q (m³/s) at roughness n and bed slope s.
//
// The width-to-depth proportion is fixed by the shape's optimum, so the
// Manning equation becomes monotone in depth alone and is solved by bounded
// bisection.
//
// Contracts: q, n, s > 0. Non-convergence degrades to the best midpoint plus
// a warning.
func BestHydraulicSection(shape Shape, q, n, s float64) (BestSection, error) {
	if q <= 0 || n <= 0 || s <= 0 {
		return BestSection{}, ErrInput
	}

	var build func(y float64) section.Section
	switch shape {
	case ShapeRectangular:
		build = func(y float64) section.Section {
			return section.Rectangular{Width: 2 * y}
		}
	case ShapeTrapezoidal:
		build = func(y float64) section.Section {
			z := optimalTrapezoidSlope
			b := 2 * y * (math.Sqrt(1+z*z) - z)

			return section.Trapezoidal{BottomWidth: b, SideSlope: z}
		}
	case ShapeTriangular:
		build = func(y float64) section.Section {
			return section.Triangular{SideSlope: optimalTriangleSlope}
		}
	default:
		return BestSection{}, ErrShape
	}

	// Manning capacity at optimal proportions is strictly increasing in y.
	capacity := func(y float64) float64 {
		return hydraulics.Discharge(build(y), y, n, s)
	}

	lo, hi := 0.0, 1.0
	for capacity(hi) < q {
		lo = hi
		hi *= 2
	}

	res := BestSection{Shape: shape, Warnings: []string{}}
	converged := false
	for i := 0; i < MaxDepthIterations; i++ {
		mid := (lo + hi) / 2
		if capacity(mid) < q {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= DepthTol*math.Max(hi, DepthTol) {
			converged = true

			break
		}
	}
	if !converged {
		res.Warnings = append(res.Warnings, WarnNoConvergence)
	}

	y := (lo + hi) / 2
	sec := build(y)

	res.Depth = y
	res.TopWidth = sec.TopWidth(y)
	res.Area = sec.Area(y)
	res.HydraulicRadius = section.HydraulicRadius(sec, y)
	res.Velocity = hydraulics.Velocity(sec, y, q)
	res.Froude = hydraulics.Froude(sec, y, q)

	switch v := sec.(type) {
	case section.Rectangular:
		res.BottomWidth = v.Width
	case section.Trapezoidal:
		res.BottomWidth = v.BottomWidth
		res.SideSlope = v.SideSlope
	case section.Triangular:
		res.SideSlope = v.SideSlope
	}

	return res, nil
}
