// Package gvf - the direct-step method for prismatic channels.
package gvf

import (
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// asymptoteEps is the smallest |S₀ − S̄f| the step equation will divide by;
// below it the profile has met its normal-depth asymptote.
const asymptoteEps = 1e-10

// WarnAsymptote is appended when a profile terminates early on its
// normal-depth asymptote.
const WarnAsymptote = "profile reached the normal-depth asymptote; remaining steps skipped"

// DirectStep integrates a water-surface profile between two depths in a
// prismatic channel by the direct-step form of the GVF equation
//
//	Δx = (E₂ − E₁) / (S₀ − S̄f)
//
// marching opts.Steps equal depth increments from fromDepth (the control)
// towards toDepth. No per-step iteration is required; each step solves its
// length in closed form.
//
// Contracts:
//   - ch.Section non-nil; ch.Roughness > 0; q > 0; both depths > 0.
//   - fromDepth must lie strictly inside a profile zone (ErrProfileZone
//     otherwise, via classification).
//
// Point distances are signed: positive in the flow direction, so an
// upstream-marching (subcritical) profile accumulates negative distances.
//
// Complexity: O(Steps) geometry evaluations.
func DirectStep(ch Channel, q, fromDepth, toDepth float64, opts Options) (Profile, error) {
	if fromDepth <= 0 || toDepth <= 0 {
		return Profile{}, ErrDepthRange
	}

	prof, err := Classify(ch, q, fromDepth)
	if err != nil {
		return Profile{}, err
	}
	o := opts.normalized()

	prof.Points = make([]StepPoint, 0, o.Steps+1)
	prof.Points = append(prof.Points, stepPoint(ch, q, fromDepth, 0))

	// A zero-span march is already at its target.
	if toDepth == fromDepth {
		return prof, nil
	}

	dy := (toDepth - fromDepth) / float64(o.Steps)
	x := 0.0
	prev := fromDepth
	for i := 1; i <= o.Steps; i++ {
		next := fromDepth + float64(i)*dy

		e1 := hydraulics.SpecificEnergy(ch.Section, prev, q)
		e2 := hydraulics.SpecificEnergy(ch.Section, next, q)
		sfBar := (hydraulics.FrictionSlope(ch.Section, prev, q, ch.Roughness) +
			hydraulics.FrictionSlope(ch.Section, next, q, ch.Roughness)) / 2

		denom := ch.Slope - sfBar
		if math.Abs(denom) < asymptoteEps {
			prof.Warnings = append(prof.Warnings, WarnAsymptote)

			break
		}

		x += (e2 - e1) / denom
		prof.Points = append(prof.Points, stepPoint(ch, q, next, x))
		prev = next
	}

	return prof, nil
}

// stepPoint assembles the per-station record at a depth and signed distance.
func stepPoint(ch Channel, q, depth, distance float64) StepPoint {
	v := hydraulics.Velocity(ch.Section, depth, q)

	return StepPoint{
		Distance:      distance,
		Depth:         depth,
		WSEL:          depth,
		Velocity:      v,
		Energy:        hydraulics.SpecificEnergy(ch.Section, depth, q),
		FrictionSlope: hydraulics.FrictionSlope(ch.Section, depth, q, ch.Roughness),
		Froude:        hydraulics.FroudeNumber(v, section.HydraulicDepth(ch.Section, depth)),
	}
}
