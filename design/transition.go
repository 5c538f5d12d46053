// Package design - channel-transition sizing.
package design

import (
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// flareTangent is tan(12.5°), the standard warped-transition flare rule.
const flareTangent = 0.22169466264293991

// Transition loss coefficients on the velocity-head change.
const (
	TransitionContractionLoss = 0.3
	TransitionExpansionLoss   = 0.5
)

// TransitionKind distinguishes the two directions.
type TransitionKind string

// Transition kinds.
const (
	Contraction TransitionKind = "contraction"
	Expansion   TransitionKind = "expansion"
)

// Transition is the sizing record.
type Transition struct {
	// Kind reports whether the channel narrows or widens downstream.
	Kind TransitionKind `json:"kind"`
	// Length is the warped-transition length from the 12.5° flare rule (m).
	Length float64 `json:"length"`
	// HeadLoss charges the velocity-head change (m).
	HeadLoss float64 `json:"head_loss"`
}

// DesignTransition sizes a warped transition between two top widths (m)
// carrying the given section velocities (m/s).
//
// Length follows L = ΔT / (2·tan 12.5°); equal widths yield a zero-length
// record. The head loss applies the contraction or expansion coefficient to
// |Δ(V²/2g)| depending on the direction.
func DesignTransition(upstreamWidth, downstreamWidth, upstreamVelocity, downstreamVelocity float64) (Transition, error) {
	if upstreamWidth <= 0 || downstreamWidth <= 0 ||
		upstreamVelocity <= 0 || downstreamVelocity <= 0 {
		return Transition{}, ErrInput
	}

	res := Transition{Kind: Contraction}
	if downstreamWidth > upstreamWidth {
		res.Kind = Expansion
	}

	res.Length = math.Abs(downstreamWidth-upstreamWidth) / (2 * flareTangent)

	headUp := upstreamVelocity * upstreamVelocity / (2 * hydraulics.Gravity)
	headDown := downstreamVelocity * downstreamVelocity / (2 * hydraulics.Gravity)
	coef := TransitionContractionLoss
	if res.Kind == Expansion {
		coef = TransitionExpansionLoss
	}
	res.HeadLoss = coef * math.Abs(headDown-headUp)

	return res, nil
}
