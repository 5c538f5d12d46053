// Package section - shared types and sentinel errors for cross-section geometry.
package section

import "errors"

// Sentinel errors returned by section constructors.
var (
	// ErrDimension indicates a non-positive characteristic dimension
	// (width, diameter, shape coefficient) or a negative side slope.
	ErrDimension = errors.New("section: characteristic dimension must be positive")

	// ErrTooFewPoints indicates an irregular section with fewer than two
	// station/elevation survey points.
	ErrTooFewPoints = errors.New("section: at least two survey points required")

	// ErrStationOrder indicates survey stations that are not strictly increasing.
	ErrStationOrder = errors.New("section: stations must be strictly increasing")

	// ErrBankStations indicates bank stations that are reversed or lie outside
	// the surveyed station range.
	ErrBankStations = errors.New("section: bank stations out of order or outside survey range")

	// ErrRoughness indicates a non-positive Manning roughness value.
	ErrRoughness = errors.New("section: Manning roughness must be positive")
)

// Section is the geometric contract consumed by every hydraulic solver in
// this library: pure functions of flow depth, measured from the lowest point
// of the section.
//
// Implementations must be total over depth: any depth ≤ 0 yields zero
// geometry, and depths above a bounded shape's rise are clamped to the full
// section. This keeps bracketing root finders well behaved without special
// cases at the call sites.
type Section interface {
	// Area returns the flow area A (m²) at the given depth (m).
	Area(depth float64) float64

	// WettedPerimeter returns the wetted perimeter P (m) at the given depth (m).
	WettedPerimeter(depth float64) float64

	// TopWidth returns the free-surface width T (m) at the given depth (m).
	TopWidth(depth float64) float64

	// MaxDepth returns the shape's rise (m) for bounded sections (circular),
	// or math.Inf(1) for sections open at the top.
	MaxDepth() float64
}

// HydraulicRadius returns A/P (m) for s at the given depth, or 0 when the
// wetted perimeter vanishes. Definitional identity: R ≡ Area/WettedPerimeter.
func HydraulicRadius(s Section, depth float64) float64 {
	p := s.WettedPerimeter(depth)
	if p <= 0 {
		return 0
	}

	return s.Area(depth) / p
}

// HydraulicDepth returns A/T (m) for s at the given depth, or 0 when the top
// width vanishes (e.g. a just-full circular section).
func HydraulicDepth(s Section, depth float64) float64 {
	t := s.TopWidth(depth)
	if t <= 0 {
		return 0
	}

	return s.Area(depth) / t
}
