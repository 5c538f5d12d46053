// Package sediment - viscosity, Shields screening and tractive stability.
package sediment

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// Sentinel errors.
var (
	// ErrGrain indicates a non-positive grain size.
	ErrGrain = errors.New("sediment: grain size must be positive")

	// ErrFlow indicates a non-positive flow quantity.
	ErrFlow = errors.New("sediment: flow quantities must be positive")

	// ErrGeometry indicates a non-positive structure dimension.
	ErrGeometry = errors.New("sediment: structure dimensions must be positive")
)

// Sediment properties (quartz in water, SI).
const (
	// SedimentDensity is ρs (kg/m³).
	SedimentDensity = 2650.0

	// SubmergedGravity is R = (ρs−ρ)/ρ.
	SubmergedGravity = (SedimentDensity - hydraulics.WaterDensity) / hydraulics.WaterDensity

	// DefaultTemperature is the water temperature assumed when a caller
	// passes 0 (°C).
	DefaultTemperature = 20.0
)

// Brownlie fit coefficients for the Shields curve.
const (
	brownlieScale    = 0.22
	brownlieExponent = -0.6
	brownlieFloor    = 0.06
	brownlieDecay    = -7.7
)

// KinematicViscosity returns ν (m²/s) for water at temp (°C); a
// non-positive temperature falls back to DefaultTemperature.
func KinematicViscosity(temp float64) float64 {
	if temp <= 0 {
		temp = DefaultTemperature
	}

	return 1.79e-6 / (1 + 0.03368*temp + 0.000221*temp*temp)
}

// Mobility classifies the bed by its shear ratio τ₀/τc.
type Mobility string

// Mobility classes and their ratio thresholds.
const (
	Immobile  Mobility = "immobile"  // ratio < 1
	Incipient Mobility = "incipient" // 1–2
	Active    Mobility = "active"    // 2–10
	Intense   Mobility = "intense"   // > 10
)

const (
	incipientLimit = 2.0
	activeLimit    = 10.0
)

// ShieldsResult is the incipient-motion record.
type ShieldsResult struct {
	// ParticleReynolds is Rep = d·√(R·g·d)/ν.
	ParticleReynolds float64 `json:"particle_reynolds"`
	// CriticalShields is θc from the Brownlie fit.
	CriticalShields float64 `json:"critical_shields"`
	// CriticalShear is τc = θc·(ρs−ρ)·g·d (Pa).
	CriticalShear float64 `json:"critical_shear"`
	// MobilityRatio is τ₀/τc.
	MobilityRatio float64 `json:"mobility_ratio"`
	// Mode is the mobility class.
	Mode Mobility `json:"mode"`
}

// Shields screens a bed shear τ₀ (Pa) against the critical Shields stress
// for grain size d50 (m) at water temperature temp (°C; 0 defaults).
func Shields(shear, d50, temp float64) (ShieldsResult, error) {
	if d50 <= 0 {
		return ShieldsResult{}, ErrGrain
	}
	if shear < 0 {
		return ShieldsResult{}, ErrFlow
	}

	nu := KinematicViscosity(temp)
	rep := d50 * math.Sqrt(SubmergedGravity*hydraulics.Gravity*d50) / nu

	theta := brownlieScale * math.Pow(rep, brownlieExponent)
	theta += brownlieFloor * math.Pow(10, brownlieDecay*math.Pow(rep, brownlieExponent))

	tauc := theta * (SedimentDensity - hydraulics.WaterDensity) * hydraulics.Gravity * d50

	res := ShieldsResult{
		ParticleReynolds: rep,
		CriticalShields:  theta,
		CriticalShear:    tauc,
		MobilityRatio:    shear / tauc,
	}
	switch {
	case res.MobilityRatio < 1:
		res.Mode = Immobile
	case res.MobilityRatio <= incipientLimit:
		res.Mode = Incipient
	case res.MobilityRatio <= activeLimit:
		res.Mode = Active
	default:
		res.Mode = Intense
	}

	return res, nil
}

// WarnBedUnstable flags a mobile bed in a stability screening.
const WarnBedUnstable = "bed shear exceeds the critical tractive force; bed material will move"

// StabilityResult is the tractive-force screening record.
type StabilityResult struct {
	// BedShear is τ₀ = γ·y·S (Pa).
	BedShear float64 `json:"bed_shear"`
	// CriticalShear is the Shields threshold for d50 (Pa).
	CriticalShear float64 `json:"critical_shear"`
	// Ratio is BedShear/CriticalShear.
	Ratio float64 `json:"ratio"`
	// Stable reports Ratio ≤ 1.
	Stable bool `json:"stable"`

	Warnings []string `json:"warnings"`
}

// TractiveStability screens a channel bed of grain size d50 (m) under
// uniform flow of the given depth (m) and slope at temp (°C; 0 defaults).
func TractiveStability(depth, slope, d50, temp float64) (StabilityResult, error) {
	if depth <= 0 || slope <= 0 {
		return StabilityResult{}, ErrFlow
	}

	tau := hydraulics.UnitWeight * depth * slope
	sh, err := Shields(tau, d50, temp)
	if err != nil {
		return StabilityResult{}, err
	}

	res := StabilityResult{
		BedShear:      tau,
		CriticalShear: sh.CriticalShear,
		Ratio:         sh.MobilityRatio,
		Stable:        sh.MobilityRatio <= 1,
		Warnings:      []string{},
	}
	if !res.Stable {
		res.Warnings = append(res.Warnings, WarnBedUnstable)
	}

	return res, nil
}
