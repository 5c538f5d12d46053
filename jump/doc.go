// Package jump analyzes hydraulic jumps and sizes their stilling basins.
//
// # What it does
//
// A hydraulic jump converts a supercritical stream (Fr₁ > 1) into a
// subcritical one, dissipating energy in a turbulent roller. The package
// covers the standard engineering questions around a jump:
//
//   - Classify(fr) buckets the upstream Froude number into the USBR
//     Monograph 25 classes: no_jump (<1), undular (1–1.7), weak (1.7–2.5),
//     oscillating (2.5–4.5), steady (4.5–9) and strong (>9).
//
//   - SequentDepthRectangular(y1, fr1) is the closed-form Belanger relation
//
//     y₂/y₁ = ½·(√(1+8·Fr₁²) − 1)
//
//     For Fr₁ ≤ 1 the upstream depth is returned unchanged (no jump forms).
//
//   - SequentDepth(s, y1, q) handles arbitrary sections by bisection on the
//     specific-force function M(y) = Q²/(gA) + ȳ·A until M(y₂) = M(y₁):
//     the momentum flux plus pressure force is conserved across the jump.
//     Closed conduits cap the search at 0.98 of the rise; a sequent depth
//     the barrel cannot hold degrades to the cap plus a warning.
//
//   - Analyze(s, y1, q) assembles the full record: both depths and Froude
//     numbers, energy loss and efficiency from specific energy, and the
//     jump/roller lengths from Froude-indexed length ratios (USBR chart,
//     linearly interpolated).
//
//   - DesignBasin(y1, fr1, tailwater) selects a stilling basin (SAF,
//     USBR IV, USBR III or USBR II by Froude range), sizes its chute
//     blocks, baffle blocks and end sill from the published geometry
//     ratios, and checks the supplied tailwater against the basin's
//     required depth.
//
// # Contracts
//
// Validation failures (nil section, non-positive depth or discharge) return
// sentinel errors before any computation. Numeric degradation never errors:
// a capped or non-converged sequent solve returns its best estimate with a
// warning on the result, and an insufficient tailwater adds a warning plus
// a recommendation rather than failing the design.
//
// # Errors
//
//	ErrNilSection - no section supplied.
//	ErrDepth      - non-positive upstream depth.
//	ErrDischarge  - non-positive discharge.
//	ErrFroude     - non-positive Froude number passed to the basin design.
package jump
