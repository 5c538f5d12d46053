// Package weir computes sharp-crested weir discharge with contraction,
// approach-velocity and submergence corrections, plus the inverse
// head-for-discharge solve used to build rating tables.
//
// # Formulations (SI coefficients)
//
//	Rectangular:  Q = C·L'·H^1.5          L' = L − 0.1·n·H (Francis end contractions)
//	V-notch:      Q = C·tan(θ/2)·H^2.5
//	Trapezoidal:  Q = C·(L + k·H)·H^1.5   (k = side slope; Cipolletti at k = 0.25)
//
// Default coefficients: 1.84 (rectangular), 1.38 (V-notch, Cd ≈ 0.58) and
// 1.86 (trapezoidal); any positive Coefficient field overrides the default.
//
// # Corrections
//
//   - Approach velocity: when Options.ApproachArea > 0 the head is augmented
//     by the approach velocity head and the discharge re-evaluated in a short
//     fixed-point loop (tolerance 1e-6, cap 20) — the correction is mild and
//     converges in a few passes.
//
//   - Submergence: once the downstream/upstream head ratio exceeds
//     SubmergenceThreshold = 0.7 the Villemonte factor
//     (1 − (H₂/H₁)^p)^0.385 is applied (p the variant's head exponent) and a
//     warning is raised. Below the threshold the weir is treated as
//     free-flowing, matching standard practice for modular-limit screening.
//
// # Errors
//
//	ErrNilWeir  - no weir variant supplied.
//	ErrGeometry - non-positive crest length, notch angle outside (0°, 180°),
//	              or a negative side slope.
//	ErrHead     - negative head or tailwater head.
//	ErrDischarge- non-positive discharge passed to the inverse solver.
package weir
