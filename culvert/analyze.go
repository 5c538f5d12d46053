// Package culvert - inlet/outlet-control headwater computation.
package culvert

import (
	"fmt"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// SI unit constant of the HDS-5 inlet-control equations.
const siUnitConstant = 1.811

// Submergence transition band of the inlet-control blend, in HW/D.
const (
	// SubmergenceLow is the HW/D below which the unsubmerged equation governs alone.
	SubmergenceLow = 1.2
	// SubmergenceHigh is the HW/D above which the orifice equation governs alone.
	SubmergenceHigh = 1.8
)

// Performance thresholds on HW/D.
const (
	acceptableHWD = 1.2
	marginalHWD   = 1.5
)

// highOutletVelocity is the exit velocity (m/s) above which outlet
// protection is recommended.
const highOutletVelocity = 4.0

// WarnTransitionZone flags operation inside the unsubmerged/submerged blend band.
const WarnTransitionZone = "inlet operates in the submergence transition zone (1.2 < HW/D < 1.8)"

// WarnHighHeadwater flags HW/D beyond the marginal threshold.
const WarnHighHeadwater = "headwater exceeds 1.5 times the barrel rise"

// RecOutletProtection is issued for erosive exit velocities.
const RecOutletProtection = "provide riprap or energy dissipation at the outlet (exit velocity > 4 m/s)"

// RecLargerBarrel is issued when the rating is inadequate.
const RecLargerBarrel = "increase barrel size or add barrels: performance rating is inadequate"

// Analyze computes the governing headwater of c passing discharge q against
// tailwater depth tw (m above the downstream invert).
//
// Contracts:
//   - c.Barrel non-nil; c.Length > 0; c.Roughness > 0; q ≥ 0; the inlet
//     configuration must exist for the barrel shape.
//   - q == 0 returns a zero-headwater result at the upstream invert.
//
// The governing headwater is max(inlet, outlet) and decides Result.Control;
// see the package doc for both formulations. Headwater is monotone
// non-decreasing in q for fixed geometry.
//
// Complexity: one critical-depth solve plus O(1) arithmetic.
func Analyze(c Culvert, q, tw float64) (Result, error) {
	if c.Barrel == nil {
		return Result{}, ErrNilBarrel
	}
	if c.Length <= 0 || c.Roughness <= 0 {
		return Result{}, ErrGeometry
	}
	if q < 0 {
		return Result{}, ErrDischarge
	}
	row, err := coefficientsFor(c)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Discharge:          q,
		HeadwaterElevation: c.UpstreamInvert,
		Control:            InletControl,
		Rating:             Acceptable,
		Warnings:           []string{},
		Recommendations:    []string{},
	}
	if q == 0 {
		return res, nil
	}

	d := c.Barrel.Rise()

	// Critical depth in the barrel feeds both control computations.
	ycSol, err := hydraulics.CriticalDepth(c.Barrel, q, hydraulics.Options{})
	if err != nil {
		return Result{}, err
	}
	res.Warnings = append(res.Warnings, ycSol.Warnings...)
	yc := math.Min(ycSol.Depth, d)

	hwInlet, transition := inletHeadwater(c, row, q, yc)
	hwOutlet := outletHeadwater(c, row, q, yc, tw)

	res.InletHeadwater = hwInlet
	res.OutletHeadwater = hwOutlet
	res.HeadwaterDepth = hwInlet
	if hwOutlet > hwInlet {
		res.HeadwaterDepth = hwOutlet
		res.Control = OutletControl
	}
	res.HeadwaterElevation = c.UpstreamInvert + res.HeadwaterDepth
	res.HWD = res.HeadwaterDepth / d
	res.OutletVelocity = outletVelocity(c, q, yc, tw)

	switch {
	case res.HWD <= acceptableHWD:
		res.Rating = Acceptable
	case res.HWD <= marginalHWD:
		res.Rating = Marginal
	default:
		res.Rating = Inadequate
		res.Recommendations = append(res.Recommendations, RecLargerBarrel)
	}

	if transition {
		res.Warnings = append(res.Warnings, WarnTransitionZone)
	}
	if res.HWD > marginalHWD {
		res.Warnings = append(res.Warnings, WarnHighHeadwater)
	}
	if res.OutletVelocity > highOutletVelocity {
		res.Recommendations = append(res.Recommendations, RecOutletProtection)
	}

	return res, nil
}

// inletHeadwater evaluates the HDS-5 inlet-control equations, blending the
// unsubmerged and orifice branches linearly over the transition band.
// It returns the headwater depth and whether the blend band was active.
func inletHeadwater(c Culvert, row inletRow, q, yc float64) (float64, bool) {
	d := c.Barrel.Rise()
	flowParam := siUnitConstant * q / (c.Barrel.FullArea() * math.Sqrt(d))
	slopeTerm := 0.5 * c.slope()

	// Unsubmerged, form 1: specific head at critical depth plus the
	// empirical inlet loss.
	vc := q / c.Barrel.Area(yc)
	hc := yc + vc*vc/(2*hydraulics.Gravity)
	hwUnsub := d * (hc/d + row.K*math.Pow(flowParam, row.M) - slopeTerm)

	// Submerged orifice branch.
	hwSub := d * (row.C*flowParam*flowParam + row.Y - slopeTerm)

	ratio := hwUnsub / d
	switch {
	case ratio <= SubmergenceLow:
		return hwUnsub, false
	case ratio >= SubmergenceHigh:
		return math.Max(hwSub, hwUnsub), false
	default:
		t := (ratio - SubmergenceLow) / (SubmergenceHigh - SubmergenceLow)

		return (1-t)*hwUnsub + t*hwSub, true
	}
}

// outletHeadwater evaluates the outlet-control energy balance referenced to
// ho = max(tailwater, (yc+D)/2), using full-flow friction geometry.
func outletHeadwater(c Culvert, row inletRow, q, yc, tw float64) float64 {
	d := c.Barrel.Rise()
	ke := c.EntranceLoss
	if ke <= 0 {
		ke = row.Ke
	}

	v := q / c.Barrel.FullArea()
	velocityHead := v * v / (2 * hydraulics.Gravity)

	r := c.Barrel.FullHydraulicRadius()
	friction := 2 * hydraulics.Gravity * c.Roughness * c.Roughness * c.Length / math.Pow(r, 4.0/3.0)

	// Entrance + friction + exit (coefficient 1) losses.
	h := (1 + ke + friction) * velocityHead

	ho := math.Max(tw, (yc+d)/2)

	return ho + h - c.slope()*c.Length
}

// outletVelocity estimates the barrel exit velocity: full-flow velocity when
// the outlet is submerged, else velocity at the larger of critical depth and
// tailwater inside the barrel.
func outletVelocity(c Culvert, q, yc, tw float64) float64 {
	d := c.Barrel.Rise()
	if tw >= d {
		return q / c.Barrel.FullArea()
	}
	depth := math.Max(yc, tw)
	if depth <= 0 || depth > d {
		depth = d
	}
	a := c.Barrel.Area(depth)
	if a <= 0 {
		return 0
	}

	return q / a
}

// PerformancePoint is one sample of a culvert performance curve.
type PerformancePoint struct {
	Discharge          float64     `json:"discharge"`
	HeadwaterElevation float64     `json:"headwater_elevation"`
	HWD                float64     `json:"hwd"`
	Control            ControlType `json:"control"`
}

// PerformanceCurve samples Analyze over [0, qMax] in steps equal discharge
// increments against a fixed tailwater, the standard HDS-5 design product.
//
// Contracts: qMax > 0 and steps ≥ 2, else ErrDischarge.
func PerformanceCurve(c Culvert, qMax, tw float64, steps int) ([]PerformancePoint, error) {
	if qMax <= 0 || steps < 2 {
		return nil, ErrDischarge
	}

	out := make([]PerformancePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		q := qMax * float64(i) / float64(steps)
		res, err := Analyze(c, q, tw)
		if err != nil {
			return nil, fmt.Errorf("performance curve at q=%.3f: %w", q, err)
		}
		out = append(out, PerformancePoint{
			Discharge:          q,
			HeadwaterElevation: res.HeadwaterElevation,
			HWD:                res.HWD,
			Control:            res.Control,
		})
	}

	return out, nil
}
