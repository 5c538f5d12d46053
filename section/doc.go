// Package section models open-channel cross-section geometry: the pure
// shape→depth→{area, wetted perimeter, top width} functions every hydraulic
// computation in this library is built on.
//
// Two section families are provided:
//
//   - Prismatic shapes — closed-form geometry for rectangular, trapezoidal,
//     triangular, circular and parabolic channels. Each shape is a small
//     immutable struct implementing the Section interface; constructors
//     validate dimensions once so the per-depth functions never fail.
//
//   - Irregular cross-sections — surveyed station/elevation ground lines with
//     bank stations, per-zone Manning roughness, ineffective-flow areas,
//     levees and obstructions. Geometry at a water-surface elevation is
//     computed by piecewise trapezoidal integration of each submerged segment,
//     split across left overbank / main channel / right overbank flow zones,
//     with each zone accumulating its own conveyance.
//
// # Degenerate inputs
//
// Per-depth functions are deliberately total: depth ≤ 0 (or WSEL at/below the
// section minimum) yields zero geometry, not an error, so bracketing root
// finders in package hydraulics can probe freely. Structural invalidity —
// non-monotonic stations, fewer than two survey points, non-positive
// dimensions — is rejected at construction time with a sentinel error.
//
// # Errors
//
//	ErrDimension       - a characteristic dimension is non-positive or a side slope negative.
//	ErrTooFewPoints    - an irregular section has fewer than two survey points.
//	ErrStationOrder    - survey stations are not strictly increasing.
//	ErrBankStations    - bank stations are out of order or outside the survey range.
//	ErrRoughness       - a Manning roughness value is non-positive.
//
// # Complexity
//
// Prismatic geometry is O(1) per call. Irregular geometry is O(P) in the
// number of survey points per call, with no allocations beyond the returned
// record.
package section
