// Package gvf - mixed-regime profiles: locating the control that separates
// supercritical and subcritical sub-reaches and stitching their profiles.
package gvf

import (
	"math"
	"sort"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// WarnJumpSwept is appended when the supercritical branch's momentum exceeds
// the subcritical branch's over the whole reach: the jump is swept past the
// downstream boundary and the supercritical profile prevails.
const WarnJumpSwept = "mixed profile: supercritical momentum dominates the whole reach; jump swept downstream"

// WarnJumpAtInlet is appended when the subcritical branch dominates from the
// upstream boundary on: the jump sits at (or upstream of) the inlet.
const WarnJumpAtInlet = "mixed profile: subcritical momentum dominates the whole reach; jump at the upstream boundary"

// boundaryOffset keeps branch target depths strictly inside their profile
// zones (fraction of the bounding reference depth).
const boundaryOffset = 0.02

// ComputeMixedProfile integrates a reach of the given length holding a
// supercritical upstream control and a subcritical downstream control, and
// stitches the two branches at the hydraulic-jump station.
//
// Method: the supercritical branch is integrated downstream from
// upstreamDepth, the subcritical branch upstream from downstreamDepth; the
// jump sits at the first station where the supercritical branch's specific
// force M(y) = Q²/(gA) + ȳA drops below the subcritical branch's. Stations
// run 0 (inlet) → length (outlet).
//
// If no momentum crossing exists inside the reach, the dominant single-regime
// profile is returned together with WarnJumpSwept or WarnJumpAtInlet.
//
// Contracts: upstreamDepth must classify supercritical and downstreamDepth
// subcritical for the given channel and discharge, else ErrProfileZone.
//
// Complexity: O(Steps) per branch plus an O(Steps·log Steps) stitch.
func ComputeMixedProfile(ch Channel, q, length, upstreamDepth, downstreamDepth float64, opts Options) (Profile, error) {
	if length <= 0 {
		return Profile{}, ErrDepthRange
	}
	o := opts.normalized()

	super, err := Classify(ch, q, upstreamDepth)
	if err != nil {
		return Profile{}, err
	}
	sub, err := Classify(ch, q, downstreamDepth)
	if err != nil {
		return Profile{}, err
	}
	if super.Direction != Downstream || sub.Direction != Upstream {
		return Profile{}, ErrProfileZone
	}

	// Integrate both branches toward their asymptotes.
	superProf, err := DirectStep(ch, q, upstreamDepth, branchTarget(super, upstreamDepth), o)
	if err != nil {
		return Profile{}, err
	}
	subProf, err := DirectStep(ch, q, downstreamDepth, branchTarget(sub, downstreamDepth), o)
	if err != nil {
		return Profile{}, err
	}

	// Rebase the subcritical branch: its control sits at the outlet.
	subPts := make([]StepPoint, 0, len(subProf.Points))
	for _, p := range subProf.Points {
		p.Distance += length
		if p.Distance >= 0 {
			subPts = append(subPts, p)
		}
	}
	sort.Slice(subPts, func(i, j int) bool { return subPts[i].Distance < subPts[j].Distance })

	out := Profile{
		Type:          super.Type,
		Slope:         super.Slope,
		Direction:     Downstream,
		NormalDepth:   super.NormalDepth,
		CriticalDepth: super.CriticalDepth,
	}
	out.Warnings = append(out.Warnings, superProf.Warnings...)
	out.Warnings = append(out.Warnings, subProf.Warnings...)

	// Walk downstream along the supercritical branch until its momentum
	// falls below the subcritical branch's at the same station.
	jump := -1.0
	for _, p := range superProf.Points {
		if p.Distance > length {
			break
		}
		ySub := depthAt(subPts, p.Distance)
		if ySub <= 0 {
			continue
		}
		mSuper := hydraulics.SpecificForce(ch.Section, p.Depth, q)
		mSub := hydraulics.SpecificForce(ch.Section, ySub, q)
		if mSuper <= mSub {
			jump = p.Distance

			break
		}
	}

	switch {
	case jump < 0 && lastStation(superProf.Points) >= length:
		// Momentum never crossed: supercritical flow sweeps the reach.
		out.Points = clipTo(superProf.Points, length)
		out.Warnings = append(out.Warnings, WarnJumpSwept)
	case jump < 0:
		// Supercritical branch died on its asymptote before the outlet and
		// never out-muscled the downstream control: jump at the inlet.
		out.Points = subPts
		out.Type = sub.Type
		out.Direction = Upstream
		out.JumpStation = 0
		out.Warnings = append(out.Warnings, WarnJumpAtInlet)
	default:
		out.JumpStation = jump
		for _, p := range superProf.Points {
			if p.Distance <= jump {
				out.Points = append(out.Points, p)
			}
		}
		for _, p := range subPts {
			if p.Distance > jump {
				out.Points = append(out.Points, p)
			}
		}
	}

	return out, nil
}

// branchTarget picks the depth a branch tends to, nudged strictly inside its
// zone so DirectStep never starts on a boundary. A control that already sits
// inside the nudge band would see a target on the wrong side of itself, so
// each target is clamped to fromDepth to keep the march monotone.
func branchTarget(p Profile, fromDepth float64) float64 {
	yn, yc := p.NormalDepth, p.CriticalDepth
	switch p.Type {
	case M3, C3, H3, A3:
		return math.Max(yc*(1-boundaryOffset), fromDepth)
	case S2:
		return math.Min(yn*(1+boundaryOffset), fromDepth)
	case S3:
		return math.Max(yn*(1-boundaryOffset), fromDepth)
	case M1:
		return math.Min(yn*(1+boundaryOffset), fromDepth)
	case M2:
		return math.Max(yn*(1-boundaryOffset), fromDepth)
	case S1, C1, H2, A2:
		return math.Min(yc*(1+boundaryOffset), fromDepth)
	default:
		return yc
	}
}

// depthAt linearly interpolates a branch depth at a station; 0 outside the
// branch's support.
func depthAt(pts []StepPoint, x float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	if x <= pts[0].Distance {
		return pts[0].Depth
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].Distance {
			a, b := pts[i-1], pts[i]
			span := b.Distance - a.Distance
			if span <= 0 {
				return b.Depth
			}
			frac := (x - a.Distance) / span

			return a.Depth + frac*(b.Depth-a.Depth)
		}
	}

	return pts[len(pts)-1].Depth
}

// lastStation returns the final station of a branch, or -Inf when empty.
func lastStation(pts []StepPoint) float64 {
	if len(pts) == 0 {
		return math.Inf(-1)
	}

	return pts[len(pts)-1].Distance
}

// clipTo drops points beyond the reach outlet.
func clipTo(pts []StepPoint, length float64) []StepPoint {
	out := make([]StepPoint, 0, len(pts))
	for _, p := range pts {
		if p.Distance <= length {
			out = append(out, p)
		}
	}

	return out
}
