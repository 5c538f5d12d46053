// Package weir - weir variants, discharge and head solvers.
package weir

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// Sentinel errors.
var (
	// ErrNilWeir indicates a nil weir variant.
	ErrNilWeir = errors.New("weir: weir must be non-nil")

	// ErrGeometry indicates an invalid crest length, notch angle or side slope.
	ErrGeometry = errors.New("weir: invalid weir geometry")

	// ErrHead indicates a negative head or tailwater head.
	ErrHead = errors.New("weir: heads must be non-negative")

	// ErrDischarge indicates a non-positive discharge for the inverse solve.
	ErrDischarge = errors.New("weir: discharge must be positive")
)

// Default discharge coefficients (SI).
const (
	DefaultRectangularC = 1.84
	DefaultVNotchC      = 1.38
	DefaultTrapezoidalC = 1.86
)

// SubmergenceThreshold is the downstream/upstream head ratio above which the
// Villemonte correction applies.
const SubmergenceThreshold = 0.7

// villemonteExponent is the outer exponent of the Villemonte factor.
const villemonteExponent = 0.385

// Approach-velocity fixed-point contract.
const (
	approachTol      = 1e-6
	approachMaxIters = 20
)

// Inverse (head-for-discharge) bisection contract.
const (
	inverseTol      = 1e-6
	inverseMaxIters = 100

	// bracketCap bounds the bracket search; no physical weir carries a
	// kilometer of head.
	bracketCap = 1e3
)

// WarnSubmerged flags a weir operating beyond the modular limit.
const WarnSubmerged = "weir is submerged (H2/H1 > 0.7); Villemonte correction applied"

// WarnNoConvergence flags a head solve that exhausted its iteration cap.
const WarnNoConvergence = "head solve reached iteration cap; returning best estimate"

// WarnBeyondCapacity flags a head solve for a discharge the weir cannot pass
// at any head; the head of maximum discharge is returned instead.
const WarnBeyondCapacity = "discharge exceeds the weir's peak rating; returning the head of maximum discharge"

// Weir is the sealed variant union of supported weir geometries.
type Weir interface {
	// validate rejects malformed geometry.
	validate() error
	// freeDischarge returns Q for an effective head with no corrections.
	freeDischarge(head float64) float64
	// headExponent is the power-law exponent (1.5 or 2.5), reused as the
	// Villemonte inner exponent.
	headExponent() float64
}

// Rectangular is a sharp-crested rectangular weir.
type Rectangular struct {
	// CrestLength is L (m).
	CrestLength float64
	// Contractions is the number of end contractions (0, 1 or 2).
	Contractions int
	// Coefficient overrides DefaultRectangularC when positive.
	Coefficient float64
}

func (w Rectangular) validate() error {
	if w.CrestLength <= 0 || w.Contractions < 0 || w.Contractions > 2 {
		return ErrGeometry
	}

	return nil
}

func (w Rectangular) freeDischarge(head float64) float64 {
	c := w.Coefficient
	if c <= 0 {
		c = DefaultRectangularC
	}
	// Francis contraction: each contracted end shortens the crest by 0.1·H.
	effLen := w.CrestLength - 0.1*float64(w.Contractions)*head
	if effLen <= 0 {
		return 0
	}

	return c * effLen * math.Pow(head, 1.5)
}

func (w Rectangular) headExponent() float64 { return 1.5 }

// VNotch is a triangular (V-notch) sharp-crested weir.
type VNotch struct {
	// NotchAngle is the full included angle θ (degrees), 0 < θ < 180.
	NotchAngle float64
	// Coefficient overrides DefaultVNotchC when positive.
	Coefficient float64
}

func (w VNotch) validate() error {
	if w.NotchAngle <= 0 || w.NotchAngle >= 180 {
		return ErrGeometry
	}

	return nil
}

func (w VNotch) freeDischarge(head float64) float64 {
	c := w.Coefficient
	if c <= 0 {
		c = DefaultVNotchC
	}
	halfAngle := w.NotchAngle / 2 * math.Pi / 180

	return c * math.Tan(halfAngle) * math.Pow(head, 2.5)
}

func (w VNotch) headExponent() float64 { return 2.5 }

// Trapezoidal is a trapezoidal sharp-crested weir; SideSlope = 0.25 gives
// the classical Cipolletti profile.
type Trapezoidal struct {
	// CrestLength is the bottom crest length L (m).
	CrestLength float64
	// SideSlope is k (m horizontal per m vertical), ≥ 0.
	SideSlope float64
	// Coefficient overrides DefaultTrapezoidalC when positive.
	Coefficient float64
}

func (w Trapezoidal) validate() error {
	if w.CrestLength <= 0 || w.SideSlope < 0 {
		return ErrGeometry
	}

	return nil
}

func (w Trapezoidal) freeDischarge(head float64) float64 {
	c := w.Coefficient
	if c <= 0 {
		c = DefaultTrapezoidalC
	}

	return c * (w.CrestLength + w.SideSlope*head) * math.Pow(head, 1.5)
}

func (w Trapezoidal) headExponent() float64 { return 1.5 }

// Options carries the optional corrections of a discharge evaluation.
type Options struct {
	// TailwaterHead is the downstream head above the crest (m); 0 means a
	// free (unsubmerged) weir.
	TailwaterHead float64
	// ApproachArea is the approach-channel flow area (m²); 0 disables the
	// approach-velocity correction.
	ApproachArea float64
}

// Result is the weir analysis record.
type Result struct {
	// Discharge is the corrected flow (m³/s).
	Discharge float64 `json:"discharge"`
	// Head is the gauged upstream head above the crest (m).
	Head float64 `json:"head"`
	// EffectiveHead includes the approach-velocity augmentation (m).
	EffectiveHead float64 `json:"effective_head"`
	// SubmergenceRatio is H₂/H₁ (0 for a free weir).
	SubmergenceRatio float64 `json:"submergence_ratio"`
	// SubmergenceFactor is the applied Villemonte multiplier (1 when free).
	SubmergenceFactor float64 `json:"submergence_factor"`
	// ApproachVelocity is the upstream channel velocity (m/s; 0 if disabled).
	ApproachVelocity float64 `json:"approach_velocity"`

	Warnings []string `json:"warnings"`
}

// Discharge evaluates w at gauged head with the requested corrections.
//
// Contracts: w non-nil and well-formed; head ≥ 0 (zero head short-circuits
// to zero flow); Options.TailwaterHead ≥ 0.
//
// Complexity: O(1), or O(approachMaxIters) with the velocity correction.
func Discharge(w Weir, head float64, opts Options) (Result, error) {
	if w == nil {
		return Result{}, ErrNilWeir
	}
	if err := w.validate(); err != nil {
		return Result{}, err
	}
	if head < 0 || opts.TailwaterHead < 0 {
		return Result{}, ErrHead
	}

	res := Result{
		Head:              head,
		EffectiveHead:     head,
		SubmergenceFactor: 1,
		Warnings:          []string{},
	}
	if head == 0 {
		return res, nil
	}

	q := w.freeDischarge(head)

	// Approach-velocity augmentation: a short fixed point on effective head.
	if opts.ApproachArea > 0 {
		he := head
		for i := 0; i < approachMaxIters; i++ {
			va := q / opts.ApproachArea
			next := head + va*va/(2*hydraulics.Gravity)
			q = w.freeDischarge(next)
			if math.Abs(next-he) <= approachTol {
				he = next

				break
			}
			he = next
		}
		res.EffectiveHead = he
		res.ApproachVelocity = q / opts.ApproachArea
	}

	// Villemonte submergence reduction beyond the modular limit.
	if opts.TailwaterHead > 0 {
		ratio := opts.TailwaterHead / head
		res.SubmergenceRatio = ratio
		if ratio >= 1 {
			ratio = 1
		}
		if ratio > SubmergenceThreshold {
			factor := math.Pow(1-math.Pow(ratio, w.headExponent()), villemonteExponent)
			res.SubmergenceFactor = factor
			q *= factor
			res.Warnings = append(res.Warnings, WarnSubmerged)
		}
	}

	res.Discharge = q

	return res, nil
}

// HeadForDischarge inverts Discharge by bisection: the head producing q under
// the same options.
//
// A free rating grows monotonically with head, but end contractions shorten
// the effective crest as head rises, so a contracted Rectangular rating peaks
// and then falls to zero. When q exceeds the peak the solve degrades to the
// head of maximum discharge plus WarnBeyondCapacity; a q below the peak
// resolves on the rising limb. Plain non-convergence degrades to the best
// midpoint plus WarnNoConvergence.
//
// Complexity: O(inverseMaxIters) discharge evaluations.
func HeadForDischarge(w Weir, q float64, opts Options) (Result, error) {
	if w == nil {
		return Result{}, ErrNilWeir
	}
	if err := w.validate(); err != nil {
		return Result{}, err
	}
	if q <= 0 {
		return Result{}, ErrDischarge
	}

	evaluate := func(h float64) float64 {
		r, _ := Discharge(w, h, opts)

		return r.Discharge
	}

	lo, hi := 0.0, 0.5
	for evaluate(hi) < q {
		lo = hi
		hi *= 2
		if hi > bracketCap {
			// The rating never reached q on the way up: either q lies beyond
			// the peak of a contracted rating, or the doubling stepped over
			// its rising limb. Locate the peak and restart from it.
			peak := peakHead(evaluate)
			if evaluate(peak) < q {
				res, err := Discharge(w, peak, opts)
				if err != nil {
					return Result{}, err
				}
				res.Warnings = append(res.Warnings, WarnBeyondCapacity)

				return res, nil
			}
			lo, hi = 0, peak

			break
		}
	}

	converged := false
	for i := 0; i < inverseMaxIters; i++ {
		mid := (lo + hi) / 2
		if evaluate(mid) < q {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= inverseTol*math.Max(hi, inverseTol) {
			converged = true

			break
		}
	}

	res, err := Discharge(w, (lo+hi)/2, opts)
	if err != nil {
		return Result{}, err
	}
	if !converged {
		res.Warnings = append(res.Warnings, WarnNoConvergence)
	}

	return res, nil
}

// peakHead locates the head of maximum discharge on (0, bracketCap] by
// ternary search; every rating is unimodal (a power law, optionally cut down
// to zero by end contractions).
func peakHead(evaluate func(float64) float64) float64 {
	lo, hi := 0.0, bracketCap
	for i := 0; i < inverseMaxIters; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if evaluate(m1) < evaluate(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}

	return (lo + hi) / 2
}
