// Package gvf - the standard-step method for surveyed cross-sections.
package gvf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// WarnStepNoConvergence is appended when a station's energy balance exhausts
// its iteration cap; the best estimate is kept.
const WarnStepNoConvergence = "standard step: energy balance did not close at station %d; keeping best estimate"

// WarnCriticalPin is appended when a balanced surface falls through critical
// depth and is pinned at the critical water surface instead.
const WarnCriticalPin = "standard step: computed surface crossed critical depth at station %d; pinned at critical"

// minFlowDepth keeps trial surfaces wet during the balance iteration (m).
const minFlowDepth = 1e-3

// StandardStep computes a water-surface profile through surveyed
// cross-sections by balancing total energy station to station:
//
//	WS₂ + α₂V₂²/2g = WS₁ + α₁V₁²/2g + h_f + h_ce
//
// with h_f from the average-conveyance method over the zone-weighted reach
// length and h_ce the contraction/expansion loss on the velocity-head change.
//
// Contracts:
//   - ≥ 2 sections, ordered in computation order: index 0 is the control.
//     For dir == Upstream the slice runs downstream → upstream (subcritical);
//     for dir == Downstream it runs upstream → downstream (supercritical).
//   - Each section's Downstream() reach lengths describe the distance to its
//     downstream neighbor; q > 0; startWSEL above the control section's
//     minimum elevation.
//
// Per-station non-convergence and critical-depth pinning degrade to warnings
// on the returned Profile (see package doc).
//
// Complexity: O(sections · MaxStepIterations) geometry integrations.
func StandardStep(sections []*section.CrossSection, q, startWSEL float64, dir Direction, opts Options) (Profile, error) {
	if len(sections) < 2 {
		return Profile{}, ErrTooFewSections
	}
	for _, cs := range sections {
		if cs == nil {
			return Profile{}, ErrNilSection
		}
	}
	if q <= 0 {
		return Profile{}, ErrBadChannel
	}
	if startWSEL <= sections[0].MinElevation() {
		return Profile{}, ErrDepthRange
	}
	o := opts.normalized()

	prof := Profile{Direction: dir}
	prof.Points = make([]StepPoint, 0, len(sections))

	x := 0.0
	ws := startWSEL
	prof.Points = append(prof.Points, surveyPoint(sections[0], q, ws, x))

	for i := 1; i < len(sections); i++ {
		known, unknown := sections[i-1], sections[i]

		// Reach length between the pair: the survey convention stores the
		// distance to the downstream neighbor on the upstream section.
		lengths := unknown.Downstream()
		if dir == Downstream {
			lengths = known.Downstream()
		}

		next, warns := balanceStation(known, unknown, q, ws, lengths, dir, o, i)
		prof.Warnings = append(prof.Warnings, warns...)

		step := lengths.Channel
		if dir == Upstream {
			x -= step
		} else {
			x += step
		}
		ws = next
		prof.Points = append(prof.Points, surveyPoint(unknown, q, ws, x))
	}

	return prof, nil
}

// balanceStation iterates the unknown water surface until the energy
// equation closes. It returns the balanced (or pinned/best-estimate) WSEL
// plus any warnings raised.
func balanceStation(known, unknown *section.CrossSection, q, wsKnown float64, lengths section.ReachLengths, dir Direction, o Options, station int) (float64, []string) {
	var warns []string

	pKnown := known.Properties(wsKnown)
	headKnown := velocityHead(pKnown, q)

	// Friction-projected initial guess keeps the fixed point close.
	sfKnown := frictionSlopeOf(pKnown, q)
	guess := wsKnown + signOf(dir)*sfKnown*lengths.Channel
	if guess <= unknown.MinElevation() {
		guess = unknown.MinElevation() + minFlowDepth
	}

	converged := false
	for iter := 0; iter < o.MaxStepIterations; iter++ {
		pTrial := unknown.Properties(guess)
		if pTrial.Area <= 0 {
			guess = unknown.MinElevation() + minFlowDepth

			continue
		}
		headTrial := velocityHead(pTrial, q)

		hf := frictionLoss(pKnown, pTrial, q, lengths)
		hce := transitionLoss(headKnown, headTrial, dir, o)

		var next float64
		if dir == Upstream {
			// Unknown is upstream: its energy exceeds the known by the losses.
			next = wsKnown + headKnown + hf + hce - headTrial
		} else {
			// Unknown is downstream: its energy trails the known by the losses.
			next = wsKnown + headKnown - hf - hce - headTrial
		}
		if next <= unknown.MinElevation() {
			next = unknown.MinElevation() + minFlowDepth
		}

		if math.Abs(next-guess) <= o.StepTolerance {
			guess = next
			converged = true

			break
		}
		// Half-relaxed update: plain fixed point can oscillate on abrupt
		// section changes.
		guess = (next + guess) / 2
	}
	if !converged {
		warns = append(warns, fmt.Sprintf(WarnStepNoConvergence, station))
	}

	// Regime guard: a subcritical march may not cross below critical depth
	// (and a supercritical march not above it); pin at critical if it does.
	ycSol, err := hydraulics.CriticalDepth(unknown, q, hydraulics.Options{})
	if err == nil && ycSol.Depth > 0 {
		wsCrit := unknown.MinElevation() + ycSol.Depth
		if (dir == Upstream && guess < wsCrit) || (dir == Downstream && guess > wsCrit) {
			guess = wsCrit
			warns = append(warns, fmt.Sprintf(WarnCriticalPin, station))
		}
	}

	return guess, warns
}

// frictionLoss applies the average-conveyance method over the zone-weighted
// reach length: h_f = L̄·(Q/K̄)².
func frictionLoss(a, b section.Properties, q float64, lengths section.ReachLengths) float64 {
	kBar := (a.Conveyance + b.Conveyance) / 2
	if kBar <= 0 {
		return 0
	}

	// Zone-conveyance-weighted reach length (HEC-RAS discharge weighting).
	kl := (a.Left.Conveyance + b.Left.Conveyance) / 2
	kc := (a.Channel.Conveyance + b.Channel.Conveyance) / 2
	kr := (a.Right.Conveyance + b.Right.Conveyance) / 2
	wsum := kl + kc + kr
	length := lengths.Channel
	if wsum > 0 {
		length = (lengths.LeftOverbank*kl + lengths.Channel*kc + lengths.RightOverbank*kr) / wsum
	}

	ratio := q / kBar

	return length * ratio * ratio
}

// transitionLoss returns h_ce = C·|Δ(velocity head)| with the contraction or
// expansion coefficient chosen from the velocity-head trend.
func transitionLoss(headKnown, headTrial float64, dir Direction, o Options) float64 {
	delta := headTrial - headKnown
	// Marching upstream, a larger upstream velocity head means the flow
	// contracts moving downstream; marching downstream the roles swap.
	contracting := delta > 0
	if dir == Downstream {
		contracting = delta < 0
	}
	c := o.Expansion
	if contracting {
		c = o.Contraction
	}

	return c * math.Abs(delta)
}

// velocityHead returns α·V²/2g from a section-properties record.
func velocityHead(p section.Properties, q float64) float64 {
	if p.Area <= 0 {
		return 0
	}
	v := q / p.Area

	return p.Alpha * v * v / (2 * hydraulics.Gravity)
}

// frictionSlopeOf returns Sf = (Q/K)² from a properties record.
func frictionSlopeOf(p section.Properties, q float64) float64 {
	if p.Conveyance <= 0 {
		return 0
	}
	ratio := q / p.Conveyance

	return ratio * ratio
}

// signOf maps the march direction onto the bed-elevation trend: upstream
// surfaces rise, downstream surfaces fall.
func signOf(dir Direction) float64 {
	if dir == Upstream {
		return 1
	}

	return -1
}

// surveyPoint assembles the per-station record for an irregular section.
func surveyPoint(cs *section.CrossSection, q, wsel, distance float64) StepPoint {
	p := cs.Properties(wsel)
	v := 0.0
	if p.Area > 0 {
		v = q / p.Area
	}

	return StepPoint{
		Distance:      distance,
		Depth:         wsel - cs.MinElevation(),
		WSEL:          wsel,
		Velocity:      v,
		Energy:        wsel + velocityHead(p, q),
		FrictionSlope: frictionSlopeOf(p, q),
		Froude:        hydraulics.FroudeNumber(v, p.HydraulicDepth),
	}
}
