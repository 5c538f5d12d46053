// Package sediment covers incipient motion, transport rates and scour for
// alluvial channels.
//
// # Incipient motion
//
// Shields screening follows the Brownlie fit of the Shields diagram on the
// particle Reynolds number Rep = d·√(R·g·d)/ν:
//
//	θc = 0.22·Rep^−0.6 + 0.06·10^(−7.7·Rep^−0.6)
//
// with R = (ρs−ρ)/ρ the submerged specific gravity and ν from
// KinematicViscosity(T). The mobility ratio τ₀/τc classifies the bed as
// immobile, incipient, active or intense.
//
// # Transport
//
// Bed load selects its formula by grain size: Meyer-Peter-Müller
// (φ = 8·(θ−θc)^1.5) for gravel (d50 ≥ 2 mm) and Einstein-Brown
// (φ = 40·F₁·θ³, F₁ the Rubey fall-velocity factor) for sand. Suspended
// load classifies by the Rouse number P = ws/(κ·u*) and integrates the
// Rouse concentration profile over the depth in fixed panels.
//
// # Scour
//
// Pier scour is the HEC-18 CSU equation with shape, attack-angle, bed-form
// and armoring factors; contraction scour follows Laursen's live-bed and
// clear-water relations. A scour depth exceeding the approach flow depth is
// reported with a warning, never an error.
//
// # Errors
//
//	ErrGrain     - non-positive grain size.
//	ErrFlow      - non-positive depth, velocity, shear or discharge.
//	ErrGeometry  - non-positive pier or contraction dimensions.
package sediment
