// Package hydraulics - the specific-force (momentum) function.
package hydraulics

import "math"

// momentPanels is the fixed panel count of the first-moment quadrature.
// Trapezoidal panels over smooth top-width functions keep the error well
// below the solver tolerances that consume this function.
const momentPanels = 64

// FirstMoment returns ȳ·A (m³): the first moment of the flow area about the
// water surface, computed as ∫₀^y (y−h)·T(h) dh by trapezoidal quadrature.
func FirstMoment(s sectionGeometry, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	h := depth / momentPanels
	sum := 0.0
	for i := 0; i <= momentPanels; i++ {
		yi := float64(i) * h
		w := (depth - yi) * s.TopWidth(yi)
		if i == 0 || i == momentPanels {
			w /= 2
		}
		sum += w
	}

	return sum * h
}

// SpecificForce returns the momentum function M(y) = Q²/(g·A) + ȳ·A (m³).
// Two depths with equal specific force are sequent across a hydraulic jump.
func SpecificForce(s sectionGeometry, depth, discharge float64) float64 {
	a := s.Area(depth)
	if a <= 0 {
		return math.Inf(1)
	}

	return discharge*discharge/(Gravity*a) + FirstMoment(s, depth)
}

// sectionGeometry is the minimal geometric surface the momentum function
// needs; satisfied by every section.Section.
type sectionGeometry interface {
	Area(depth float64) float64
	TopWidth(depth float64) float64
}
