// Package design - lining selection and erosion-stability screening.
package design

// Lining is one row of the ordered lining table.
type Lining struct {
	// Name identifies the lining material.
	Name string `json:"name"`
	// ManningN is the lining's roughness coefficient.
	ManningN float64 `json:"manning_n"`
	// PermissibleVelocity and PermissibleShear are the erosion limits
	// (m/s, Pa).
	PermissibleVelocity float64 `json:"permissible_velocity"`
	PermissibleShear    float64 `json:"permissible_shear"`
}

// liningTable is ordered by increasing permissible velocity; SelectLining
// walks it front to back and stops at the first adequate row.
var liningTable = []Lining{
	{Name: "grass", ManningN: 0.035, PermissibleVelocity: 1.5, PermissibleShear: 20},
	{Name: "gravel", ManningN: 0.025, PermissibleVelocity: 1.9, PermissibleShear: 32},
	{Name: "riprap", ManningN: 0.040, PermissibleVelocity: 3.5, PermissibleShear: 120},
	{Name: "gabion", ManningN: 0.030, PermissibleVelocity: 4.5, PermissibleShear: 170},
	{Name: "concrete", ManningN: 0.013, PermissibleVelocity: 7.5, PermissibleShear: 600},
}

// WarnNoAdequateLining flags a design flow beyond the whole lining table.
const WarnNoAdequateLining = "no tabulated lining tolerates the design velocity and shear"

// RecReduceSlopeOrVelocity suggests the standard remedy for an inadequate
// lining search.
const RecReduceSlopeOrVelocity = "flatten the slope, widen the section or add drop structures to reduce velocity"

// LiningResult is the selection record.
type LiningResult struct {
	// Adequate reports whether any tabulated lining suffices.
	Adequate bool `json:"adequate"`
	// Lining is the selected row; zero value when inadequate.
	Lining Lining `json:"lining"`
	// VelocityRatio and ShearRatio are design/permissible for the selected
	// lining (0 when inadequate).
	VelocityRatio float64 `json:"velocity_ratio"`
	ShearRatio    float64 `json:"shear_ratio"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// SelectLining walks the ordered lining table until a row tolerates both the
// design velocity (m/s) and the design shear (Pa). Exhausting the table
// yields an inadequate result with a warning, never an error.
func SelectLining(velocity, shear float64) (LiningResult, error) {
	if velocity <= 0 || shear < 0 {
		return LiningResult{}, ErrInput
	}

	res := LiningResult{Warnings: []string{}, Recommendations: []string{}}
	for _, row := range liningTable {
		if velocity <= row.PermissibleVelocity && shear <= row.PermissibleShear {
			res.Adequate = true
			res.Lining = row
			res.VelocityRatio = velocity / row.PermissibleVelocity
			res.ShearRatio = shear / row.PermissibleShear

			return res, nil
		}
	}

	res.Warnings = append(res.Warnings, WarnNoAdequateLining)
	res.Recommendations = append(res.Recommendations, RecReduceSlopeOrVelocity)

	return res, nil
}

// Linings returns a copy of the lining table, ordered by increasing
// permissible velocity.
func Linings() []Lining {
	out := make([]Lining, len(liningTable))
	copy(out, liningTable)

	return out
}

// soilTable maps soil names to permissible velocity (m/s) and shear (Pa)
// for clear water in straight channels.
var soilTable = map[string]struct{ velocity, shear float64 }{
	"fine sand":     {0.45, 1.9},
	"silt loam":     {0.60, 2.4},
	"firm loam":     {0.75, 3.6},
	"fine gravel":   {0.75, 3.6},
	"stiff clay":    {1.10, 12.5},
	"coarse gravel": {1.20, 14.4},
	"cobbles":       {1.50, 44.0},
}

// WarnUnstableVelocity and WarnUnstableShear flag the exceeded limit.
const (
	WarnUnstableVelocity = "design velocity exceeds the soil's permissible velocity"
	WarnUnstableShear    = "design shear exceeds the soil's permissible tractive force"
)

// StabilityResult is the erosion-screening record.
type StabilityResult struct {
	// Stable reports whether both limits hold.
	Stable bool `json:"stable"`
	// Soil echoes the screened soil name.
	Soil string `json:"soil"`
	// VelocityRatio and ShearRatio are design/permissible.
	VelocityRatio float64 `json:"velocity_ratio"`
	ShearRatio    float64 `json:"shear_ratio"`

	Warnings []string `json:"warnings"`
}

// CheckStability screens a design velocity (m/s) and shear (Pa) against a
// named soil's permissible values.
func CheckStability(soil string, velocity, shear float64) (StabilityResult, error) {
	limits, ok := soilTable[soil]
	if !ok {
		return StabilityResult{}, ErrSoil
	}
	if velocity <= 0 || shear < 0 {
		return StabilityResult{}, ErrInput
	}

	res := StabilityResult{
		Soil:          soil,
		VelocityRatio: velocity / limits.velocity,
		ShearRatio:    shear / limits.shear,
		Warnings:      []string{},
	}
	if res.VelocityRatio > 1 {
		res.Warnings = append(res.Warnings, WarnUnstableVelocity)
	}
	if res.ShearRatio > 1 {
		res.Warnings = append(res.Warnings, WarnUnstableShear)
	}
	res.Stable = len(res.Warnings) == 0

	return res, nil
}
