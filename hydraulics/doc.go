// Package hydraulics implements the core steady-flow relations of open-channel
// hydraulics on top of package section: Manning discharge and velocity,
// conveyance, Froude number and regime classification, specific energy, shear
// stress, and the bounded iterative solvers for normal depth, critical depth
// and critical slope.
//
// # Relations
//
//	Q  = (1/n)·A·R^(2/3)·√S      (Manning, SI form)
//	Fr = V/√(g·D)                (D = hydraulic depth A/T)
//	E  = y + V²/(2g)             (specific energy)
//	τ  = γ·R·S                   (boundary shear stress)
//
// # Solvers
//
// Normal and critical depth have no closed form for most shapes, so both are
// found by bracketed bisection on a monotone residual:
//
//   - Normal depth:   f(y) = Q(y) − Q, with Q(y) strictly increasing in y.
//   - Critical depth: f(y) = Q²·T/(g·A³) − 1, strictly decreasing in y.
//
// The stopping contract is part of the API: relative bracket width ≤
// Options.Tolerance (default ConvergeTol = 1e-4) within Options.MaxIterations
// (default MaxIterations = 100). Non-convergence never raises: the solver
// returns its best midpoint with Converged=false and a warning appended to
// the Solution record. A discharge beyond a closed conduit's full-flow
// capacity returns the conduit rise with a capacity warning.
//
// # Regime band
//
// ClassifyRegime applies a ±0.05 reporting band around Fr = 1 (subcritical
// below 0.95, critical within [0.95, 1.05], supercritical above). The band is
// a display convenience only: CriticalDepth solves the exact Fr = 1 root and
// never consults the band.
//
// # Errors (sentinel)
//
//	ErrNilSection  - the section is nil.
//	ErrDischarge   - discharge is negative (zero is legal and short-circuits).
//	ErrRoughness   - Manning's n is non-positive.
//	ErrSlope       - bed slope is non-positive where a positive slope is required.
//	ErrDepth       - a supplied depth is non-positive where positive is required.
//
// All quantities are SI: meters, m³/s, m/s, Pa.
package hydraulics
