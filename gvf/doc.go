// Package gvf computes steady gradually-varied-flow water-surface profiles.
//
// The engine has three layers:
//
//   - Classification — ClassifySlope sorts a channel into
//     {Mild, Steep, Critical, Horizontal, Adverse} from its normal and
//     critical depths; ClassifyProfile names the profile curve
//     (M1…M3, S1…S3, C1/C3, H2/H3, A2/A3) from the starting depth's zone and
//     fixes the computation direction: subcritical curves integrate upstream
//     from a downstream control, supercritical curves integrate downstream
//     from an upstream control.
//
//   - Direct-step method (prismatic channels) — DirectStep marches between
//     two depths in equal depth increments and solves each step length
//     directly from the finite-difference GVF equation
//
//     Δx = ΔE / (S₀ − S̄f)
//
//     with S̄f the arithmetic mean friction slope of the step ends. No inner
//     iteration is needed.
//
//   - Standard-step method (irregular sections) — StandardStep balances total
//     energy between successive surveyed cross-sections, iterating the
//     unknown water-surface elevation until the energy closure falls inside
//     StepTol (default 1e-4 m) or MaxStepIterations is spent; friction loss
//     uses the average-conveyance method and contraction/expansion losses
//     scale the velocity-head change. Non-convergence keeps the best estimate
//     and appends a warning; a balanced surface falling through critical
//     depth is pinned at critical with a warning (the classic HEC-RAS
//     degradation).
//
// Mixed-regime reaches are handled by ComputeMixedProfile: it integrates the
// supercritical branch downstream from the upstream control, the subcritical
// branch upstream from the downstream control, and stitches them at the
// station where the supercritical branch's specific force first drops below
// the subcritical branch's — the hydraulic-jump location.
//
// # Errors
//
//	ErrNilSection      - the channel section is nil.
//	ErrBadChannel      - non-positive roughness or zero discharge.
//	ErrDepthRange      - a starting depth is non-positive.
//	ErrTooFewSections  - standard step needs at least two cross-sections.
//	ErrProfileZone     - the starting depth coincides with a zone boundary.
//
// Everything degrades per the library-wide contract: numeric trouble inside
// a legal call becomes a Profile warning, never an error.
package gvf
