// Package design sizes open channels: best hydraulic sections, freeboard,
// lining selection, erosion-stability screening and channel transitions.
//
// # Best hydraulic section
//
// For a given discharge, roughness and slope, BestHydraulicSection returns
// the minimum-perimeter geometry of the requested shape:
//
//	trapezoidal: side slope fixed at 1/√3 (half hexagon), b = 2y·(√(1+z²) − z)
//	rectangular: b = 2y (half square)
//	triangular:  side slope 1 (half square on its point)
//
// The depth satisfying Manning's equation for the shape's optimal proportions
// is found by bounded bisection (relative tolerance 1e-4, cap 100), since the
// width itself tracks the depth.
//
// # Freeboard
//
// Freeboard stacks a discharge-indexed table minimum, a velocity-head
// allowance, an empirical wave allowance and (on curves) half the
// superelevation rise, then scales the sum by a channel-type factor
// (lined 1.0, earth 1.25).
//
// # Lining and stability
//
// SelectLining walks an ordered lining table by increasing permissible
// velocity until one tolerates both the design velocity and the design shear;
// exhausting the table yields an inadequate result with a warning, never an
// error. CheckStability compares a velocity/shear pair against a named soil's
// permissible values.
//
// # Transitions
//
// DesignTransition sizes a warped expansion or contraction from the standard
// 12.5° flare rule L = ΔT/(2·tan 12.5°) and charges the velocity-head change
// with the usual 0.3/0.5 coefficients.
//
// # Errors
//
//	ErrShape     - unknown section shape.
//	ErrInput     - non-positive discharge, roughness, slope, depth or width.
//	ErrSoil      - unknown soil name.
package design
