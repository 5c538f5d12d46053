// Package sediment - HEC-18 pier scour and Laursen contraction scour.
package sediment

import (
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// WarnScourExceedsDepth flags a scour hole deeper than the approach flow.
const WarnScourExceedsDepth = "computed scour exceeds the approach flow depth; verify with a physical model"

// RecCountermeasures suggests the standard response to deep scour.
const RecCountermeasures = "provide riprap or other scour countermeasures at the foundation"

// PierShape keys the CSU shape factor K₁.
type PierShape string

// Pier shapes.
const (
	SquareNose   PierShape = "square_nose"
	RoundNose    PierShape = "round_nose"
	CircularPier PierShape = "circular"
	SharpNose    PierShape = "sharp_nose"
	PierGroup    PierShape = "group"
)

// pierShapeFactor is K₁; unknown shapes fall back to the square-nose value.
var pierShapeFactor = map[PierShape]float64{
	SquareNose:   1.1,
	RoundNose:    1.0,
	CircularPier: 1.0,
	SharpNose:    0.9,
	PierGroup:    1.0,
}

// BedCondition keys the CSU bed factor K₃.
type BedCondition string

// Bed conditions.
const (
	ClearWaterBed BedCondition = "clear_water"
	PlaneBed      BedCondition = "plane_bed"
	SmallDunes    BedCondition = "small_dunes"
	MediumDunes   BedCondition = "medium_dunes"
	LargeDunes    BedCondition = "large_dunes"
)

// bedConditionFactor is K₃; unknown conditions fall back to plane bed.
var bedConditionFactor = map[BedCondition]float64{
	ClearWaterBed: 1.1,
	PlaneBed:      1.1,
	SmallDunes:    1.1,
	MediumDunes:   1.2,
	LargeDunes:    1.3,
}

// CSU equation constants.
const (
	csuCoefficient   = 2.0
	csuWidthExponent = 0.65
	csuDepthExponent = 0.35
	csuFroudeExp     = 0.43

	// minArmoringFactor floors K₄ per HEC-18.
	minArmoringFactor = 0.4
)

// PierScourInput describes one pier and its approach flow.
type PierScourInput struct {
	// PierWidth and PierLength are a and L (m).
	PierWidth  float64
	PierLength float64
	// Depth and Velocity are the approach values y₁ and V₁ (m, m/s).
	Depth    float64
	Velocity float64
	// AttackAngle is the flow skew θ (degrees).
	AttackAngle float64
	// Shape and Bed select K₁ and K₃.
	Shape PierShape
	Bed   BedCondition
	// Armoring is K₄ (0 means no armoring, i.e. 1.0); floored at 0.4.
	Armoring float64
}

// ScourResult is the local-scour record.
type ScourResult struct {
	// Depth is the scour depth ys (m).
	Depth float64 `json:"depth"`
	// Froude is the approach Froude number.
	Froude float64 `json:"froude"`
	// Factors echoes K₁·K₂·K₃·K₄.
	Factors float64 `json:"factors"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// PierScour evaluates the HEC-18 CSU equation
//
//	ys = 2.0·K₁·K₂·K₃·K₄·a^0.65·y₁^0.35·Fr₁^0.43
//
// with K₂ = (cos θ + (L/a)·sin θ)^0.65 for skewed attack.
func PierScour(in PierScourInput) (ScourResult, error) {
	if in.PierWidth <= 0 {
		return ScourResult{}, ErrGeometry
	}
	if in.Depth <= 0 || in.Velocity <= 0 {
		return ScourResult{}, ErrFlow
	}

	k1, ok := pierShapeFactor[in.Shape]
	if !ok {
		k1 = pierShapeFactor[SquareNose]
	}

	k2 := 1.0
	if in.AttackAngle != 0 {
		length := math.Max(in.PierLength, in.PierWidth)
		rad := in.AttackAngle * math.Pi / 180
		k2 = math.Pow(math.Cos(rad)+length/in.PierWidth*math.Sin(rad), csuWidthExponent)
	}

	k3, ok := bedConditionFactor[in.Bed]
	if !ok {
		k3 = bedConditionFactor[PlaneBed]
	}

	k4 := in.Armoring
	if k4 <= 0 {
		k4 = 1.0
	}
	k4 = math.Max(k4, minArmoringFactor)

	fr := in.Velocity / math.Sqrt(hydraulics.Gravity*in.Depth)

	res := ScourResult{
		Froude:          fr,
		Factors:         k1 * k2 * k3 * k4,
		Warnings:        []string{},
		Recommendations: []string{},
	}
	res.Depth = csuCoefficient * res.Factors *
		math.Pow(in.PierWidth, csuWidthExponent) *
		math.Pow(in.Depth, csuDepthExponent) *
		math.Pow(fr, csuFroudeExp)

	if res.Depth > in.Depth {
		res.Warnings = append(res.Warnings, WarnScourExceedsDepth)
		res.Recommendations = append(res.Recommendations, RecCountermeasures)
	}

	return res, nil
}

// Laursen constants (SI).
const (
	// clearWaterKu is the clear-water contraction coefficient.
	clearWaterKu = 0.025

	// criticalVelocityKu is the incipient-motion velocity coefficient in
	// Vc = Ku·y^(1/6)·d50^(1/3).
	criticalVelocityKu = 6.19
)

// laursenExponents maps the u*/ws band to the live-bed exponent k₁.
var laursenExponents = []struct{ limit, k1 float64 }{
	{0.5, 0.59},
	{2.0, 0.64},
	{math.Inf(1), 0.69},
}

// ScourMode distinguishes the Laursen regimes.
type ScourMode string

// Contraction-scour regimes.
const (
	LiveBed    ScourMode = "live_bed"
	ClearWater ScourMode = "clear_water"
)

// ContractionScourInput describes the approach and contracted sections.
type ContractionScourInput struct {
	// ApproachDischarge and ContractedDischarge are Q₁ and Q₂ (m³/s).
	ApproachDischarge   float64
	ContractedDischarge float64
	// ApproachWidth and ContractedWidth are W₁ and W₂ (m).
	ApproachWidth   float64
	ContractedWidth float64
	// ApproachDepth and ExistingDepth are y₁ and y₀ (m).
	ApproachDepth float64
	ExistingDepth float64
	// ApproachVelocity and ApproachSlope describe the upstream flow.
	ApproachVelocity float64
	ApproachSlope    float64
	// D50 is the bed grain size (m); Temperature in °C (0 defaults).
	D50         float64
	Temperature float64
}

// ContractionScourResult is the general-scour record.
type ContractionScourResult struct {
	// Mode is live_bed or clear_water, chosen by the approach velocity
	// against the critical velocity for d50.
	Mode ScourMode `json:"mode"`
	// NewDepth is y₂ (m); Depth is the scour ys = y₂ − y₀ (m, ≥ 0).
	NewDepth float64 `json:"new_depth"`
	Depth    float64 `json:"depth"`
	// CriticalVelocity is Vc (m/s).
	CriticalVelocity float64 `json:"critical_velocity"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// ContractionScour evaluates Laursen's contraction relations: live-bed
//
//	y₂ = y₁·(Q₂/Q₁)^(6/7)·(W₁/W₂)^k₁
//
// when the approach flow moves its bed (V₁ > Vc), clear-water
//
//	y₂ = (Ku·Q₂²/(d50^(2/3)·W₂²))^(3/7)
//
// otherwise.
func ContractionScour(in ContractionScourInput) (ContractionScourResult, error) {
	if in.D50 <= 0 {
		return ContractionScourResult{}, ErrGrain
	}
	if in.ApproachWidth <= 0 || in.ContractedWidth <= 0 {
		return ContractionScourResult{}, ErrGeometry
	}
	if in.ApproachDischarge <= 0 || in.ContractedDischarge <= 0 ||
		in.ApproachDepth <= 0 || in.ExistingDepth <= 0 || in.ApproachVelocity <= 0 {
		return ContractionScourResult{}, ErrFlow
	}

	vc := criticalVelocityKu * math.Pow(in.ApproachDepth, 1.0/6) * math.Pow(in.D50, 1.0/3)

	res := ContractionScourResult{
		CriticalVelocity: vc,
		Warnings:         []string{},
		Recommendations:  []string{},
	}

	if in.ApproachVelocity > vc {
		res.Mode = LiveBed
		res.NewDepth = in.ApproachDepth *
			math.Pow(in.ContractedDischarge/in.ApproachDischarge, 6.0/7) *
			math.Pow(in.ApproachWidth/in.ContractedWidth, liveBedExponent(in))
	} else {
		res.Mode = ClearWater
		res.NewDepth = math.Pow(
			clearWaterKu*in.ContractedDischarge*in.ContractedDischarge/
				(math.Pow(in.D50, 2.0/3)*in.ContractedWidth*in.ContractedWidth),
			3.0/7)
	}

	res.Depth = math.Max(res.NewDepth-in.ExistingDepth, 0)
	if res.Depth > in.ApproachDepth {
		res.Warnings = append(res.Warnings, WarnScourExceedsDepth)
		res.Recommendations = append(res.Recommendations, RecCountermeasures)
	}

	return res, nil
}

// liveBedExponent picks k₁ from the shear-velocity to fall-velocity ratio.
func liveBedExponent(in ContractionScourInput) float64 {
	ustar := math.Sqrt(hydraulics.Gravity * in.ApproachDepth * math.Max(in.ApproachSlope, 0))
	ws, err := FallVelocity(in.D50, in.Temperature)
	if err != nil || ws == 0 {
		return laursenExponents[len(laursenExponents)-1].k1
	}

	ratio := ustar / ws
	for _, row := range laursenExponents {
		if ratio < row.limit {
			return row.k1
		}
	}

	return laursenExponents[len(laursenExponents)-1].k1
}
