// Package jump - classification, sequent depth and jump characteristics.
package jump

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// Sentinel errors.
var (
	// ErrNilSection indicates a nil section.
	ErrNilSection = errors.New("jump: section must be non-nil")

	// ErrDepth indicates a non-positive upstream depth.
	ErrDepth = errors.New("jump: upstream depth must be positive")

	// ErrDischarge indicates a non-positive discharge.
	ErrDischarge = errors.New("jump: discharge must be positive")

	// ErrFroude indicates a non-positive Froude number.
	ErrFroude = errors.New("jump: froude number must be positive")
)

// Sequent-depth bisection contract.
const (
	// SequentTol is the relative depth tolerance of the momentum balance.
	SequentTol = 1e-6

	// MaxSequentIterations caps the bisection.
	MaxSequentIterations = 100
)

// conduitCapFraction limits the sequent search in closed conduits to a
// near-full barrel; beyond it the momentum balance loses its free surface.
const conduitCapFraction = 0.98

// WarnSequentCapped flags a sequent depth clipped at the conduit cap.
const WarnSequentCapped = "sequent depth exceeds the conduit capacity; capped at 0.98 of the rise"

// WarnNoConvergence flags a momentum balance that exhausted its cap.
const WarnNoConvergence = "momentum balance reached iteration cap; returning best estimate"

// JumpType is the USBR Monograph 25 jump class.
type JumpType string

// Jump classes.
const (
	NoJump      JumpType = "no_jump"
	Undular     JumpType = "undular"
	Weak        JumpType = "weak"
	Oscillating JumpType = "oscillating"
	Steady      JumpType = "steady"
	Strong      JumpType = "strong"
)

// Froude thresholds between jump classes.
const (
	UndularLimit     = 1.7
	WeakLimit        = 2.5
	OscillatingLimit = 4.5
	SteadyLimit      = 9.0
)

// Classify buckets an upstream Froude number into its jump class.
func Classify(fr float64) JumpType {
	switch {
	case fr < 1:
		return NoJump
	case fr <= UndularLimit:
		return Undular
	case fr <= WeakLimit:
		return Weak
	case fr <= OscillatingLimit:
		return Oscillating
	case fr <= SteadyLimit:
		return Steady
	default:
		return Strong
	}
}

// SequentDepthRectangular is the closed-form Belanger relation for a
// rectangular channel:
//
//	y₂ = y₁ · ½·(√(1+8·Fr₁²) − 1)
//
// For Fr₁ ≤ 1 no jump forms and y₁ is returned unchanged.
func SequentDepthRectangular(y1, fr1 float64) float64 {
	if fr1 <= 1 {
		return y1
	}

	return y1 * 0.5 * (math.Sqrt(1+8*fr1*fr1) - 1)
}

// SequentDepth solves M(y₂) = M(y₁) for an arbitrary section by bisection on
// the specific-force function. The bracket runs from critical depth upward;
// closed conduits cap the search at conduitCapFraction of the rise.
//
// Contracts: s non-nil, y1 > 0, q > 0. An upstream Froude ≤ 1 returns y1
// unchanged. Numeric degradation (cap hit, non-convergence) produces a
// warning, never an error.
//
// Complexity: O(MaxSequentIterations) specific-force evaluations.
func SequentDepth(s section.Section, y1, q float64) (hydraulics.Solution, error) {
	if s == nil {
		return hydraulics.Solution{}, ErrNilSection
	}
	if y1 <= 0 {
		return hydraulics.Solution{}, ErrDepth
	}
	if q <= 0 {
		return hydraulics.Solution{}, ErrDischarge
	}

	sol := hydraulics.Solution{Warnings: []string{}}
	if hydraulics.Froude(s, y1, q) <= 1 {
		sol.Depth = y1
		sol.Converged = true

		return sol, nil
	}

	critical, err := hydraulics.CriticalDepth(s, q, hydraulics.DefaultOptions())
	if err != nil {
		return hydraulics.Solution{}, err
	}

	target := hydraulics.SpecificForce(s, y1, q)

	ceiling := math.Inf(1)
	if rise := s.MaxDepth(); !math.IsInf(rise, 1) {
		ceiling = conduitCapFraction * rise
	}

	// Grow the upper bound until the momentum surplus flips sign.
	lo := critical.Depth
	hi := math.Max(2*critical.Depth, 2*y1)
	for hydraulics.SpecificForce(s, math.Min(hi, ceiling), q) < target {
		if hi >= ceiling {
			sol.Depth = ceiling
			sol.Warnings = append(sol.Warnings, WarnSequentCapped)

			return sol, nil
		}
		lo = hi
		hi *= 2
	}
	hi = math.Min(hi, ceiling)

	for i := 0; i < MaxSequentIterations; i++ {
		sol.Iterations = i + 1
		mid := (lo + hi) / 2
		if hydraulics.SpecificForce(s, mid, q) < target {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= SequentTol*math.Max(hi, 1) {
			sol.Converged = true

			break
		}
	}
	sol.Depth = (lo + hi) / 2
	if !sol.Converged {
		sol.Warnings = append(sol.Warnings, WarnNoConvergence)
	}

	return sol, nil
}

// jumpLengthTable maps Fr₁ to L/y₂ for the free jump (USBR chart); queries
// interpolate linearly and clamp at the ends.
var jumpLengthTable = []struct{ fr, ratio float64 }{
	{1.7, 4.00},
	{2.0, 4.40},
	{2.5, 4.85},
	{3.0, 5.28},
	{4.0, 5.80},
	{5.0, 6.00},
	{6.0, 6.10},
	{8.0, 6.12},
	{10.0, 6.10},
	{14.0, 5.90},
	{20.0, 5.40},
}

// lengthRatio interpolates the free-jump length ratio L/y₂ at fr.
func lengthRatio(fr float64) float64 {
	table := jumpLengthTable
	if fr <= table[0].fr {
		return table[0].ratio
	}
	for i := 1; i < len(table); i++ {
		if fr <= table[i].fr {
			span := table[i].fr - table[i-1].fr
			t := (fr - table[i-1].fr) / span

			return table[i-1].ratio + t*(table[i].ratio-table[i-1].ratio)
		}
	}

	return table[len(table)-1].ratio
}

// Roller-length fit Lr/y₁ = a·tanh(Fr₁/b) − c (Hager).
const (
	rollerScale  = 160.0
	rollerSpread = 20.0
	rollerShift  = 12.0
)

// rollerLength returns the roller length (m) for the upstream depth and
// Froude number; below the undular limit the roller has no meaningful extent.
func rollerLength(y1, fr float64) float64 {
	if fr <= 1 {
		return 0
	}

	return y1 * math.Max(rollerScale*math.Tanh(fr/rollerSpread)-rollerShift, 0)
}

// Result is the hydraulic-jump analysis record.
type Result struct {
	// UpstreamDepth and SequentDepth are y₁ and y₂ (m).
	UpstreamDepth float64 `json:"upstream_depth"`
	SequentDepth  float64 `json:"sequent_depth"`
	// UpstreamFroude and DownstreamFroude bracket the jump.
	UpstreamFroude   float64 `json:"upstream_froude"`
	DownstreamFroude float64 `json:"downstream_froude"`
	// Type is the USBR jump class at the upstream Froude number.
	Type JumpType `json:"type"`
	// EnergyLoss is E₁ − E₂ (m); Efficiency is E₂/E₁.
	EnergyLoss float64 `json:"energy_loss"`
	Efficiency float64 `json:"efficiency"`
	// Length and RollerLength are the jump and roller extents (m).
	Length       float64 `json:"length"`
	RollerLength float64 `json:"roller_length"`

	Warnings []string `json:"warnings"`
}

// Analyze assembles the full jump record for a supercritical approach flow.
//
// A subcritical approach (Fr₁ ≤ 1) yields a no_jump record with the depth
// unchanged and zero loss.
func Analyze(s section.Section, y1, q float64) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSection
	}
	if y1 <= 0 {
		return Result{}, ErrDepth
	}
	if q <= 0 {
		return Result{}, ErrDischarge
	}

	fr1 := hydraulics.Froude(s, y1, q)
	res := Result{
		UpstreamDepth:  y1,
		UpstreamFroude: fr1,
		Type:           Classify(fr1),
		Warnings:       []string{},
	}
	if fr1 <= 1 {
		res.SequentDepth = y1
		res.DownstreamFroude = fr1
		res.Efficiency = 1

		return res, nil
	}

	sequent, err := SequentDepth(s, y1, q)
	if err != nil {
		return Result{}, err
	}
	y2 := sequent.Depth
	res.SequentDepth = y2
	res.DownstreamFroude = hydraulics.Froude(s, y2, q)
	res.Warnings = append(res.Warnings, sequent.Warnings...)

	e1 := hydraulics.SpecificEnergy(s, y1, q)
	e2 := hydraulics.SpecificEnergy(s, y2, q)
	res.EnergyLoss = math.Max(e1-e2, 0)
	if e1 > 0 {
		res.Efficiency = e2 / e1
	}

	res.Length = lengthRatio(fr1) * y2
	res.RollerLength = rollerLength(y1, fr1)

	return res, nil
}
