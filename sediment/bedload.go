// Package sediment - bed-load transport rates.
package sediment

import (
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
)

// GravelThreshold is the d50 (m) above which Meyer-Peter-Müller replaces
// Einstein-Brown.
const GravelThreshold = 0.002

// Formula coefficients.
const (
	mpmCoefficient      = 8.0
	mpmExponent         = 1.5
	einsteinCoefficient = 40.0
	rubeyBuoyancyTerm   = 2.0 / 3.0
	rubeyViscousTerm    = 36.0
)

// BedLoadMethod names the applied formula.
type BedLoadMethod string

// Formula tags.
const (
	MeyerPeterMuller BedLoadMethod = "meyer_peter_muller"
	EinsteinBrown    BedLoadMethod = "einstein_brown"
)

// BedLoadResult is the transport-rate record.
type BedLoadResult struct {
	// Method is the formula chosen by grain size.
	Method BedLoadMethod `json:"method"`
	// Shields and CriticalShields are θ and θc.
	Shields         float64 `json:"shields"`
	CriticalShields float64 `json:"critical_shields"`
	// UnitRate is the volumetric transport per unit width (m²/s).
	UnitRate float64 `json:"unit_rate"`
	// MassRate is ρs·UnitRate (kg/m/s).
	MassRate float64 `json:"mass_rate"`
}

// BedLoad computes the unit bed-load rate for bed shear τ₀ (Pa), grain size
// d50 (m) and water temperature temp (°C; 0 defaults).
//
// Gravel (d50 ≥ GravelThreshold) uses Meyer-Peter-Müller, which carries an
// incipient-motion threshold: shear below critical transports nothing. Sand
// uses Einstein-Brown, a pure power law in θ.
func BedLoad(shear, d50, temp float64) (BedLoadResult, error) {
	if d50 <= 0 {
		return BedLoadResult{}, ErrGrain
	}
	if shear < 0 {
		return BedLoadResult{}, ErrFlow
	}

	theta := shear / ((SedimentDensity - hydraulics.WaterDensity) * hydraulics.Gravity * d50)
	sh, err := Shields(shear, d50, temp)
	if err != nil {
		return BedLoadResult{}, err
	}

	res := BedLoadResult{Shields: theta, CriticalShields: sh.CriticalShields}

	// Einstein transport scale √(R·g·d³) (m²/s).
	scale := math.Sqrt(SubmergedGravity * hydraulics.Gravity * d50 * d50 * d50)

	var phi float64
	if d50 >= GravelThreshold {
		res.Method = MeyerPeterMuller
		if excess := theta - sh.CriticalShields; excess > 0 {
			phi = mpmCoefficient * math.Pow(excess, mpmExponent)
		}
	} else {
		res.Method = EinsteinBrown
		phi = einsteinCoefficient * rubeyFactor(d50, temp) * theta * theta * theta
	}

	res.UnitRate = phi * scale
	res.MassRate = SedimentDensity * res.UnitRate

	return res, nil
}

// rubeyFactor is F₁ of the Rubey fall-velocity law; FallVelocity below uses
// the same factor.
func rubeyFactor(d50, temp float64) float64 {
	nu := KinematicViscosity(temp)
	viscous := rubeyViscousTerm * nu * nu /
		(SubmergedGravity * hydraulics.Gravity * d50 * d50 * d50)

	return math.Sqrt(rubeyBuoyancyTerm+viscous) - math.Sqrt(viscous)
}

// FallVelocity returns the Rubey settling velocity ws (m/s) for grain size
// d50 (m) at temp (°C; 0 defaults).
func FallVelocity(d50, temp float64) (float64, error) {
	if d50 <= 0 {
		return 0, ErrGrain
	}

	return rubeyFactor(d50, temp) * math.Sqrt(SubmergedGravity*hydraulics.Gravity*d50), nil
}
