// Package culvert computes culvert headwater per FHWA HDS-5 ("Hydraulic
// Design of Highway Culverts"), evaluating inlet control and outlet control
// separately and reporting the governing regime.
//
// # Inlet control
//
// Headwater under inlet control follows the HDS-5 empirical equations with
// the SI unit constant Ku = 1.811 and the dimensionless flow parameter
// F = Ku·Q/(A·D^½):
//
//	unsubmerged (form 1):  HWi/D = Hc/D + K·F^M − 0.5·S₀
//	submerged   (orifice): HWi/D = c·F² + Y − 0.5·S₀
//
// with K, M, c, Y read from the inlet-configuration coefficient table
// (process-wide immutable data, HDS-5 appendix A). Between the unsubmerged
// and submerged branches the two results are blended linearly over
// HW/D ∈ [SubmergenceLow, SubmergenceHigh] = [1.2, 1.8], matching the
// transition-zone treatment of the published nomographs.
//
// # Outlet control
//
// Outlet-control headwater sums entrance, friction and exit losses over the
// full-flow velocity head and references them to the higher of tailwater and
// the (yc + D)/2 proxy:
//
//	H   = (1 + ke + 2g·n²·L/R^(4/3)) · V²/2g
//	HWo = ho + H − S₀·L,   ho = max(TW, (yc + D)/2)
//
// # Governing result
//
// The controlling headwater is max(inlet, outlet) and fixes the reported
// control type. Performance rating is the fixed HW/D threshold table:
// ≤ 1.2 acceptable, ≤ 1.5 marginal, otherwise inadequate. Headwater is
// monotone non-decreasing in discharge, and Q = 0 returns the invert with
// zero headwater depth.
//
// # Errors
//
//	ErrNilBarrel   - no barrel geometry supplied.
//	ErrGeometry    - non-positive barrel length or roughness.
//	ErrInletConfig - inlet configuration unknown for the barrel shape.
//	ErrDischarge   - negative discharge.
//
// All hydraulic caveats (transition-zone operation, HW/D over 1.5, high
// outlet velocity, submerged inlet) surface as result warnings and
// recommendations, never as errors.
package culvert
