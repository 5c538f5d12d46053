// Package gvf - types, options and sentinel errors of the profile engine.
package gvf

import (
	"errors"

	"github.com/katalvlaran/openchannel/section"
)

// Sentinel errors for structurally invalid inputs.
var (
	// ErrNilSection indicates a nil channel section.
	ErrNilSection = errors.New("gvf: channel section must be non-nil")

	// ErrBadChannel indicates a non-positive roughness or discharge.
	ErrBadChannel = errors.New("gvf: roughness and discharge must be positive")

	// ErrDepthRange indicates a non-positive boundary depth.
	ErrDepthRange = errors.New("gvf: boundary depths must be positive")

	// ErrTooFewSections indicates fewer than two cross-sections for the
	// standard-step method.
	ErrTooFewSections = errors.New("gvf: standard step requires at least two cross-sections")

	// ErrProfileZone indicates a starting depth indistinguishable from a
	// zone boundary (normal or critical depth) at classification tolerance.
	ErrProfileZone = errors.New("gvf: depth lies on a zone boundary; no profile develops")
)

// SlopeClass is the hydraulic classification of a channel slope.
type SlopeClass string

// Slope classes.
const (
	Mild       SlopeClass = "mild"       // yn > yc
	Steep      SlopeClass = "steep"      // yn < yc
	CriticalSl SlopeClass = "critical"   // yn ≈ yc
	Horizontal SlopeClass = "horizontal" // S₀ = 0: yn unbounded
	Adverse    SlopeClass = "adverse"    // S₀ < 0: yn undefined
)

// ProfileType names the classical GVF backwater/drawdown curves.
type ProfileType string

// Profile types by slope class and depth zone.
const (
	M1 ProfileType = "M1"
	M2 ProfileType = "M2"
	M3 ProfileType = "M3"
	S1 ProfileType = "S1"
	S2 ProfileType = "S2"
	S3 ProfileType = "S3"
	C1 ProfileType = "C1"
	C3 ProfileType = "C3"
	H2 ProfileType = "H2"
	H3 ProfileType = "H3"
	A2 ProfileType = "A2"
	A3 ProfileType = "A3"
)

// Direction is the integration direction fixed by the flow regime.
type Direction string

// Integration directions.
const (
	// Upstream marching: subcritical profiles from a downstream control.
	Upstream Direction = "upstream"
	// Downstream marching: supercritical profiles from an upstream control.
	Downstream Direction = "downstream"
)

// Channel is a prismatic channel definition for the direct-step method.
type Channel struct {
	// Section is the prismatic cross-section shape.
	Section section.Section
	// Roughness is Manning's n.
	Roughness float64
	// Slope is the bed slope S₀ (positive downhill; ≤ 0 for
	// horizontal/adverse channels).
	Slope float64
}

// StepPoint is one computed station of a water-surface profile.
type StepPoint struct {
	// Distance is the signed distance (m) from the control section;
	// positive in the direction of flow.
	Distance float64 `json:"distance"`
	// Depth is the flow depth (m).
	Depth float64 `json:"depth"`
	// WSEL is the water-surface elevation (m) where a datum exists
	// (standard step); for direct step it equals depth above the local bed.
	WSEL float64 `json:"wsel"`
	// Velocity is the mean velocity (m/s).
	Velocity float64 `json:"velocity"`
	// Energy is the specific energy (m).
	Energy float64 `json:"energy"`
	// FrictionSlope is Sf at the station.
	FrictionSlope float64 `json:"friction_slope"`
	// Froude is the local Froude number.
	Froude float64 `json:"froude"`
}

// Profile is the engine's result record.
type Profile struct {
	Type          ProfileType `json:"type"`
	Slope         SlopeClass  `json:"slope_class"`
	Direction     Direction   `json:"direction"`
	NormalDepth   float64     `json:"normal_depth"`
	CriticalDepth float64     `json:"critical_depth"`
	// Points run in computation order from the control section.
	Points []StepPoint `json:"points"`
	// JumpStation is the stitch location of a mixed profile (m from the
	// upstream control); zero when no jump was located.
	JumpStation float64  `json:"jump_station,omitempty"`
	Warnings    []string `json:"warnings"`
}

// Standard-step contract constants.
const (
	// StepTol is the default energy-closure tolerance (m) per station.
	StepTol = 1e-4

	// MaxStepIterations is the default per-station iteration cap.
	MaxStepIterations = 50

	// DefaultSteps is the default depth-increment count of the direct-step
	// method and of mixed-profile branch integration.
	DefaultSteps = 50

	// DefaultContraction is the default contraction loss coefficient.
	DefaultContraction = 0.1

	// DefaultExpansion is the default expansion loss coefficient.
	DefaultExpansion = 0.3
)

// classifyBand is the relative tolerance for treating yn ≈ yc as a critical
// slope and a starting depth as "on" a zone boundary.
const classifyBand = 0.01

// Options tunes the profile engine. Zero values select package defaults.
type Options struct {
	// Steps is the depth-increment count of DirectStep. ≤ 0 ⇒ DefaultSteps.
	Steps int
	// StepTolerance is the standard-step energy closure (m). ≤ 0 ⇒ StepTol.
	StepTolerance float64
	// MaxStepIterations caps the per-station balance loop.
	// ≤ 0 ⇒ MaxStepIterations.
	MaxStepIterations int
	// Contraction and Expansion are the transition loss coefficients.
	// ≤ 0 ⇒ DefaultContraction / DefaultExpansion.
	Contraction float64
	Expansion   float64
}

// DefaultOptions returns the documented engine defaults.
func DefaultOptions() Options {
	return Options{
		Steps:             DefaultSteps,
		StepTolerance:     StepTol,
		MaxStepIterations: MaxStepIterations,
		Contraction:       DefaultContraction,
		Expansion:         DefaultExpansion,
	}
}

// normalized resolves zero-value fields to the package defaults.
func (o Options) normalized() Options {
	if o.Steps <= 0 {
		o.Steps = DefaultSteps
	}
	if o.StepTolerance <= 0 {
		o.StepTolerance = StepTol
	}
	if o.MaxStepIterations <= 0 {
		o.MaxStepIterations = MaxStepIterations
	}
	if o.Contraction <= 0 {
		o.Contraction = DefaultContraction
	}
	if o.Expansion <= 0 {
		o.Expansion = DefaultExpansion
	}

	return o
}
