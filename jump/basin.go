// Package jump - stilling-basin selection and sizing.
package jump

import (
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// BasinType identifies the selected energy dissipator.
type BasinType string

// Basin types by upstream Froude range.
const (
	// BasinNone: the jump is undular or absent; a plain apron suffices.
	BasinNone BasinType = "none"
	// BasinSAF: St. Anthony Falls basin for weak jumps (Fr₁ 1.7–2.5).
	BasinSAF BasinType = "SAF"
	// BasinUSBRIV: wave-suppression basin for oscillating jumps (Fr₁ 2.5–4.5).
	BasinUSBRIV BasinType = "USBR_IV"
	// BasinUSBRIII: baffled basin for steady jumps at moderate velocity.
	BasinUSBRIII BasinType = "USBR_III"
	// BasinUSBRII: high-head basin for strong jumps or high inlet velocity.
	BasinUSBRII BasinType = "USBR_II"
)

// usbr3VelocityLimit is the inlet-velocity ceiling of the Type III basin
// (m/s); faster flow risks cavitation on the baffle blocks.
const usbr3VelocityLimit = 18.3

// Required tailwater as a fraction of the sequent depth, per basin.
const (
	tailwaterFactorSAF  = 1.00
	tailwaterFactorIV   = 1.10
	tailwaterFactorIII  = 1.00
	tailwaterFactorII   = 1.05
	tailwaterFactorNone = 1.00
)

// Basin-length ratios L/y₂ (USBR) and the SAF length law L = c·y₂/Fr^e.
const (
	lengthRatioII  = 4.35
	lengthRatioIII = 2.85
	lengthRatioIV  = 6.10
	safLengthCoef  = 4.5
	safLengthExp   = 0.76
)

// Block-geometry ratios.
const (
	chuteBlockRatioIV  = 2.0  // Type IV chute blocks are 2·y₁ tall
	baffleHeightBase   = 4.0  // Type III baffle height h₃ = y₁·(4+Fr₁)/6
	baffleHeightScale  = 6.0  //
	endSillBase        = 9.0  // Type III end sill h₄ = y₁·(9+Fr₁)/9
	endSillScale       = 9.0  //
	endSillRatioII     = 0.2  // Type II dentated sill height, of y₂
	baffleDistanceCoef = 0.8  // Type III baffle row sits 0.8·y₂ from the chute
	safEndSillRatio    = 0.07 // SAF end sill height, of y₂
)

// WarnInsufficientTailwater flags a tailwater below the basin requirement.
const WarnInsufficientTailwater = "tailwater is below the required sequent depth; jump may sweep out of the basin"

// RecLowerApron suggests the standard remedy for a tailwater deficit.
const RecLowerApron = "lower the basin apron or add an end sill to secure the jump"

// RecNoBasin reports that no structured basin is needed.
const RecNoBasin = "no stilling basin required; provide a plain riprap apron"

// Basin is the stilling-basin design record. Block dimensions are zero when
// the selected type does not use that element.
type Basin struct {
	// Type is the selected dissipator.
	Type BasinType `json:"type"`
	// SequentDepth is y₂ from the Belanger relation (m).
	SequentDepth float64 `json:"sequent_depth"`
	// RequiredTailwater is the depth the basin needs to hold the jump (m).
	RequiredTailwater float64 `json:"required_tailwater"`
	// Length is the paved basin length (m).
	Length float64 `json:"length"`
	// ChuteBlockHeight, width and spacing (m); the upstream row.
	ChuteBlockHeight  float64 `json:"chute_block_height"`
	ChuteBlockWidth   float64 `json:"chute_block_width"`
	ChuteBlockSpacing float64 `json:"chute_block_spacing"`
	// BaffleBlockHeight and its distance from the chute blocks (m).
	BaffleBlockHeight   float64 `json:"baffle_block_height"`
	BaffleBlockDistance float64 `json:"baffle_block_distance"`
	// EndSillHeight terminates the apron (m).
	EndSillHeight float64 `json:"end_sill_height"`
	// ApronDrop is how far the apron must sit below the tailwater surface to
	// supply the required depth (m); ≤ 0 when the tailwater already suffices.
	ApronDrop float64 `json:"apron_drop"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// DesignBasin selects and sizes a stilling basin for a rectangular chute.
//
// Selection by upstream Froude number: < 1.7 none, 1.7–2.5 SAF, 2.5–4.5
// USBR IV, above 4.5 USBR III while the inlet velocity stays under
// usbr3VelocityLimit and the jump is not strong, otherwise USBR II.
// The inlet velocity is recovered from Fr₁ = V/√(g·y₁).
//
// tailwater is the available downstream depth over the apron (m); a deficit
// against the basin requirement produces a warning and a recommendation,
// never an error.
func DesignBasin(y1, fr1, tailwater float64) (Basin, error) {
	if y1 <= 0 {
		return Basin{}, ErrDepth
	}
	if fr1 <= 0 {
		return Basin{}, ErrFroude
	}

	y2 := SequentDepthRectangular(y1, fr1)
	b := Basin{
		SequentDepth:    y2,
		Warnings:        []string{},
		Recommendations: []string{},
	}

	velocity := fr1 * math.Sqrt(hydraulics.Gravity*y1)

	switch {
	case fr1 < UndularLimit:
		b.Type = BasinNone
		b.RequiredTailwater = tailwaterFactorNone * y2
		b.Recommendations = append(b.Recommendations, RecNoBasin)
	case fr1 <= WeakLimit:
		b.Type = BasinSAF
		b.RequiredTailwater = tailwaterFactorSAF * y2
		b.Length = safLengthCoef * y2 / math.Pow(fr1, safLengthExp)
		b.ChuteBlockHeight = y1
		b.ChuteBlockWidth = 0.75 * y1
		b.ChuteBlockSpacing = 0.75 * y1
		b.BaffleBlockHeight = y1
		b.BaffleBlockDistance = b.Length / 3
		b.EndSillHeight = safEndSillRatio * y2
	case fr1 <= OscillatingLimit:
		b.Type = BasinUSBRIV
		b.RequiredTailwater = tailwaterFactorIV * y2
		b.Length = lengthRatioIV * y2
		b.ChuteBlockHeight = chuteBlockRatioIV * y1
		b.ChuteBlockWidth = 0.75 * y1
		b.ChuteBlockSpacing = 2.5 * b.ChuteBlockWidth
		b.EndSillHeight = 1.25 * y1
	case fr1 <= SteadyLimit && velocity <= usbr3VelocityLimit:
		b.Type = BasinUSBRIII
		b.RequiredTailwater = tailwaterFactorIII * y2
		b.Length = lengthRatioIII * y2
		b.ChuteBlockHeight = y1
		b.ChuteBlockWidth = y1
		b.ChuteBlockSpacing = y1
		b.BaffleBlockHeight = y1 * (baffleHeightBase + fr1) / baffleHeightScale
		b.BaffleBlockDistance = baffleDistanceCoef * y2
		b.EndSillHeight = y1 * (endSillBase + fr1) / endSillScale
	default:
		b.Type = BasinUSBRII
		b.RequiredTailwater = tailwaterFactorII * y2
		b.Length = lengthRatioII * y2
		b.ChuteBlockHeight = y1
		b.ChuteBlockWidth = y1
		b.ChuteBlockSpacing = y1
		b.EndSillHeight = endSillRatioII * y2
	}

	b.ApronDrop = b.RequiredTailwater - tailwater
	if tailwater < b.RequiredTailwater {
		b.Warnings = append(b.Warnings, WarnInsufficientTailwater)
		b.Recommendations = append(b.Recommendations, RecLowerApron)
	}

	return b, nil
}
