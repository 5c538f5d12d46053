// Package culvert - barrel shapes, inlet configurations, result records.
package culvert

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/section"
)

// Sentinel errors for invalid culvert definitions.
var (
	// ErrNilBarrel indicates a culvert without barrel geometry.
	ErrNilBarrel = errors.New("culvert: barrel must be non-nil")

	// ErrGeometry indicates a non-positive barrel length or roughness.
	ErrGeometry = errors.New("culvert: length and roughness must be positive")

	// ErrInletConfig indicates an inlet configuration with no coefficient row
	// for the barrel shape.
	ErrInletConfig = errors.New("culvert: unknown inlet configuration for barrel shape")

	// ErrDischarge indicates a negative design discharge.
	ErrDischarge = errors.New("culvert: discharge must be non-negative")
)

// Barrel is the sealed shape union of culvert cross-sections. Each variant
// carries only its own dimensions and exposes full-flow geometry on top of
// the open-channel Section contract.
type Barrel interface {
	section.Section

	// Rise returns the vertical dimension D (m) used in HW/D ratios.
	Rise() float64

	// FullArea returns the flowing-full area (m²).
	FullArea() float64

	// FullHydraulicRadius returns the flowing-full hydraulic radius (m).
	FullHydraulicRadius() float64

	// shape keys the inlet coefficient table and seals the union.
	shape() barrelShape
}

// barrelShape is the internal tag of the Barrel union.
type barrelShape string

const (
	shapeCircular barrelShape = "circular"
	shapeBox      barrelShape = "box"
)

// CircularBarrel is a circular pipe barrel of diameter D.
type CircularBarrel struct {
	section.Circular
}

// NewCircularBarrel validates D > 0 and returns the barrel.
func NewCircularBarrel(diameter float64) (CircularBarrel, error) {
	c, err := section.NewCircular(diameter)
	if err != nil {
		return CircularBarrel{}, err
	}

	return CircularBarrel{Circular: c}, nil
}

// Rise returns the pipe diameter.
func (b CircularBarrel) Rise() float64 { return b.Diameter }

// FullArea returns πD²/4.
func (b CircularBarrel) FullArea() float64 {
	return math.Pi * b.Diameter * b.Diameter / 4
}

// FullHydraulicRadius returns D/4.
func (b CircularBarrel) FullHydraulicRadius() float64 { return b.Diameter / 4 }

func (b CircularBarrel) shape() barrelShape { return shapeCircular }

// BoxBarrel is a rectangular box barrel of clear span B and rise D.
type BoxBarrel struct {
	section.Rectangular
	// BoxRise is the interior height D (m).
	BoxRise float64
}

// NewBoxBarrel validates span and rise > 0 and returns the barrel.
func NewBoxBarrel(span, rise float64) (BoxBarrel, error) {
	r, err := section.NewRectangular(span)
	if err != nil {
		return BoxBarrel{}, err
	}
	if rise <= 0 {
		return BoxBarrel{}, section.ErrDimension
	}

	return BoxBarrel{Rectangular: r, BoxRise: rise}, nil
}

// Area clamps the open-channel area at the box rise.
func (b BoxBarrel) Area(depth float64) float64 {
	if depth > b.BoxRise {
		depth = b.BoxRise
	}

	return b.Rectangular.Area(depth)
}

// WettedPerimeter includes the lid once the barrel flows full.
func (b BoxBarrel) WettedPerimeter(depth float64) float64 {
	if depth >= b.BoxRise {
		return 2 * (b.Width + b.BoxRise)
	}

	return b.Rectangular.WettedPerimeter(depth)
}

// TopWidth vanishes at the lid.
func (b BoxBarrel) TopWidth(depth float64) float64 {
	if depth >= b.BoxRise {
		return 0
	}

	return b.Rectangular.TopWidth(depth)
}

// MaxDepth returns the box rise.
func (b BoxBarrel) MaxDepth() float64 { return b.BoxRise }

// Rise returns the box rise.
func (b BoxBarrel) Rise() float64 { return b.BoxRise }

// FullArea returns B·D.
func (b BoxBarrel) FullArea() float64 { return b.Width * b.BoxRise }

// FullHydraulicRadius returns B·D / (2·(B+D)).
func (b BoxBarrel) FullHydraulicRadius() float64 {
	return b.Width * b.BoxRise / (2 * (b.Width + b.BoxRise))
}

func (b BoxBarrel) shape() barrelShape { return shapeBox }

// InletConfig names an HDS-5 inlet configuration.
type InletConfig string

// Inlet configurations with published coefficient rows.
const (
	// SquareEdgeHeadwall: circular, square edge with headwall.
	SquareEdgeHeadwall InletConfig = "square_edge_headwall"
	// GrooveEndHeadwall: circular, socket/groove end with headwall.
	GrooveEndHeadwall InletConfig = "groove_end_headwall"
	// GrooveEndProjecting: circular, socket/groove end projecting.
	GrooveEndProjecting InletConfig = "groove_end_projecting"
	// WingwallFlared: box, wingwalls flared 30°–75°.
	WingwallFlared InletConfig = "wingwall_flared"
	// WingwallSquare: box, wingwalls at 90° or 15°.
	WingwallSquare InletConfig = "wingwall_square"
	// WingwallParallel: box, extended parallel (0°) wingwalls.
	WingwallParallel InletConfig = "wingwall_parallel"
)

// Culvert is an immutable culvert definition. Analysis never mutates it.
type Culvert struct {
	// Barrel is the cross-section shape variant.
	Barrel Barrel
	// Length is the barrel length (m).
	Length float64
	// Roughness is the barrel Manning n.
	Roughness float64
	// Inlet is the HDS-5 inlet configuration.
	Inlet InletConfig
	// UpstreamInvert and DownstreamInvert are invert elevations (m).
	UpstreamInvert   float64
	DownstreamInvert float64
	// EntranceLoss optionally overrides the tabulated ke; ≤ 0 selects the
	// inlet configuration's published value.
	EntranceLoss float64
}

// slope returns the barrel slope S₀ (positive downhill).
func (c Culvert) slope() float64 {
	return (c.UpstreamInvert - c.DownstreamInvert) / c.Length
}

// ControlType names the governing headwater regime.
type ControlType string

// Control regimes.
const (
	InletControl  ControlType = "inlet"
	OutletControl ControlType = "outlet"
)

// Rating is the fixed HW/D performance classification.
type Rating string

// Performance ratings (HDS-5 screening thresholds).
const (
	Acceptable Rating = "acceptable" // HW/D ≤ 1.2
	Marginal   Rating = "marginal"   // HW/D ≤ 1.5
	Inadequate Rating = "inadequate" // HW/D > 1.5
)

// Result is the headwater analysis record.
type Result struct {
	// Discharge echoes the analyzed flow (m³/s).
	Discharge float64 `json:"discharge"`
	// HeadwaterDepth is the governing headwater above the upstream invert (m).
	HeadwaterDepth float64 `json:"headwater_depth"`
	// HeadwaterElevation = upstream invert + headwater depth (m).
	HeadwaterElevation float64 `json:"headwater_elevation"`
	// InletHeadwater and OutletHeadwater are the two candidate depths (m).
	InletHeadwater  float64 `json:"inlet_headwater"`
	OutletHeadwater float64 `json:"outlet_headwater"`
	// Control is the regime that produced the governing headwater.
	Control ControlType `json:"control"`
	// HWD is headwater depth / barrel rise.
	HWD float64 `json:"hwd"`
	// OutletVelocity is the barrel exit velocity (m/s).
	OutletVelocity float64 `json:"outlet_velocity"`
	// Rating is the HW/D performance classification.
	Rating Rating `json:"rating"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}
