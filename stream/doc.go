// Package stream composes reach-level hydraulics into stream-system
// products: junction discharge accumulation, stitched water-surface
// profiles, rating curves and floodplain widths.
//
// # Systems and junctions
//
// A System is an ordered chain of reaches, upstream to downstream. Each
// reach may receive a tributary at its upstream end; Discharges accumulates
// the baseflow and tributaries so every reach carries the correct flow.
//
// # System profiles
//
// Profile marches upstream from the outlet control depth, reach by reach:
// each reach integrates its own backwater curve toward the subcritical
// asymptote (normal depth on mild slopes, critical depth on steep ones),
// clipped to the reach length, and hands its upstream depth to the next
// reach as the new control. Depth is carried across junctions directly; bed
// discontinuities between reaches are the caller's survey concern. A control
// at or below critical depth cannot anchor an upstream march and is clamped
// to the reach's normal depth with a warning.
//
// Stations run positive upstream from the outlet, so a plotted profile reads
// left to right against the flow.
//
// # Rating curves and floodplains
//
// RatingCurve sweeps normal depth over a discharge range for one section.
// Floodplain reports the inundated width and area of a surveyed cross
// section at a water-surface elevation, splitting the overbanks from the
// channel.
//
// # Errors
//
//	ErrNoReaches  - empty system.
//	ErrReach      - nil section or non-positive reach dimension.
//	ErrDischarge  - non-positive flow somewhere in the chain.
//	ErrBoundary   - non-positive outlet depth.
//	ErrRange      - malformed rating-curve discharge range.
//	ErrNilSection - nil surveyed cross-section.
package stream
