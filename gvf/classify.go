// Package gvf - slope and profile classification.
package gvf

import (
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// ClassifySlope sorts a channel slope by comparing normal and critical depth.
//
//   - S₀ < 0            → Adverse (normal depth undefined)
//   - S₀ = 0            → Horizontal (normal depth unbounded)
//   - |yn−yc| ≤ 1%·yc   → Critical
//   - yn > yc           → Mild
//   - yn < yc           → Steep
func ClassifySlope(normalDepth, criticalDepth, slope float64) SlopeClass {
	switch {
	case slope < 0:
		return Adverse
	case slope == 0:
		return Horizontal
	case criticalDepth > 0 && math.Abs(normalDepth-criticalDepth) <= classifyBand*criticalDepth:
		return CriticalSl
	case normalDepth > criticalDepth:
		return Mild
	default:
		return Steep
	}
}

// ClassifyProfile names the GVF curve developing from the given depth and
// returns its integration direction.
//
// Zone numbering follows Chow: zone 1 above both reference depths, zone 2
// between them, zone 3 below both. Horizontal and adverse slopes have no
// zone 1 (normal depth does not exist); a critical slope has no zone 2.
// A depth within 1 % of a zone boundary returns ErrProfileZone: uniform (or
// exactly critical) flow develops no profile.
func ClassifyProfile(depth, normalDepth, criticalDepth float64, slope SlopeClass) (ProfileType, Direction, error) {
	if depth <= 0 {
		return "", "", ErrDepthRange
	}
	if onBoundary(depth, criticalDepth) {
		return "", "", ErrProfileZone
	}
	if (slope == Mild || slope == Steep) && onBoundary(depth, normalDepth) {
		return "", "", ErrProfileZone
	}

	switch slope {
	case Mild:
		switch {
		case depth > normalDepth:
			return M1, Upstream, nil
		case depth > criticalDepth:
			return M2, Upstream, nil
		default:
			return M3, Downstream, nil
		}
	case Steep:
		switch {
		case depth > criticalDepth:
			return S1, Upstream, nil
		case depth > normalDepth:
			return S2, Downstream, nil
		default:
			return S3, Downstream, nil
		}
	case CriticalSl:
		if depth > criticalDepth {
			return C1, Upstream, nil
		}

		return C3, Downstream, nil
	case Horizontal:
		if depth > criticalDepth {
			return H2, Upstream, nil
		}

		return H3, Downstream, nil
	default: // Adverse
		if depth > criticalDepth {
			return A2, Upstream, nil
		}

		return A3, Downstream, nil
	}
}

// Classify resolves the reference depths of ch for discharge q and names the
// profile from the starting depth in one call. It is the convenience entry
// most callers want before invoking DirectStep.
func Classify(ch Channel, q, depth float64) (Profile, error) {
	if ch.Section == nil {
		return Profile{}, ErrNilSection
	}
	if ch.Roughness <= 0 || q <= 0 {
		return Profile{}, ErrBadChannel
	}

	ycSol, err := hydraulics.CriticalDepth(ch.Section, q, hydraulics.Options{})
	if err != nil {
		return Profile{}, err
	}

	yn := math.Inf(1) // horizontal/adverse slopes: no finite normal depth
	if ch.Slope > 0 {
		ynSol, nerr := hydraulics.NormalDepth(ch.Section, q, ch.Roughness, ch.Slope, hydraulics.Options{})
		if nerr != nil {
			return Profile{}, nerr
		}
		yn = ynSol.Depth
	}

	slope := ClassifySlope(yn, ycSol.Depth, ch.Slope)
	ptype, dir, err := ClassifyProfile(depth, yn, ycSol.Depth, slope)
	if err != nil {
		return Profile{}, err
	}

	reportedYn := yn
	if math.IsInf(reportedYn, 1) {
		reportedYn = 0 // undefined normal depth serializes as 0
	}

	return Profile{
		Type:          ptype,
		Slope:         slope,
		Direction:     dir,
		NormalDepth:   reportedYn,
		CriticalDepth: ycSol.Depth,
	}, nil
}

// onBoundary reports depth within the classification band of a reference.
func onBoundary(depth, reference float64) bool {
	if reference <= 0 || math.IsInf(reference, 1) {
		return false
	}

	return math.Abs(depth-reference) <= classifyBand*reference
}
