// Package bridge computes bridge backwater: the upstream water-surface rise
// caused by a bridge constricting a channel, by iterative energy balance
// across the downstream / bridge / upstream sections.
//
// # Low flow
//
// While the surface clears the low chord, the upstream stage is found by a
// fixed-point iteration on the energy equation
//
//	WS₁ + V₁²/2g = WS₃ + V₃²/2g + h_f + h_ce + Δy_pier
//
// with friction from Manning over the approach reach, contraction/expansion
// losses on the velocity-head change through the opening, and the Yarnell
// pier loss
//
//	Δy_pier = 2K·(K + 10ω − 0.6)·(α + 15α⁴)·V₃²/2g
//
// (K by pier shape, α the obstructed-width ratio, ω the downstream
// Froude-number square). The iteration contract is EnergyTol = 1e-4 m within
// MaxEnergyIterations = 50; non-convergence keeps the best estimate plus a
// warning.
//
// # Pressure and weir flow
//
// Once the computed upstream surface reaches the low chord the opening is
// re-solved as a sluice orifice; once it tops the high chord the discharge
// splits between the orifice and deck overtopping treated as a broad-crested
// weir, the split resolved by bisection on the upstream stage (the combined
// rating is strictly increasing). Flow type escalates
// low_flow → pressure_flow → weir_flow accordingly.
//
// # Errors
//
//	ErrGeometry  - inconsistent widths, chord elevations or pier layout.
//	ErrDischarge - non-positive discharge.
//	ErrTailwater - downstream surface at or below the bed.
package bridge
