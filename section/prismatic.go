// Package section - closed-form geometry for prismatic channel shapes.
//
// Each shape is an immutable value constructed through a validating
// New* function; the per-depth methods are branch-light O(1) formulas
// from standard open-channel references (Chow, Open-Channel Hydraulics).
package section

import "math"

// Rectangular is a rectangular channel of bottom width b.
//
//	A = b·y    P = b + 2y    T = b
type Rectangular struct {
	// Width is the bottom width b (m).
	Width float64
}

// NewRectangular validates width > 0 and returns the shape.
func NewRectangular(width float64) (Rectangular, error) {
	if width <= 0 {
		return Rectangular{}, ErrDimension
	}

	return Rectangular{Width: width}, nil
}

// Area returns b·y, or 0 for depth ≤ 0.
func (r Rectangular) Area(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return r.Width * depth
}

// WettedPerimeter returns b + 2y, or 0 for depth ≤ 0.
func (r Rectangular) WettedPerimeter(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return r.Width + 2*depth
}

// TopWidth returns the constant bottom width b for any positive depth.
func (r Rectangular) TopWidth(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return r.Width
}

// MaxDepth reports an open top: +Inf.
func (r Rectangular) MaxDepth() float64 { return math.Inf(1) }

// Trapezoidal is a trapezoidal channel of bottom width b and symmetric side
// slope z (horizontal run per unit rise; z = 0 degenerates to rectangular).
//
//	A = (b + z·y)·y    P = b + 2y·√(1+z²)    T = b + 2z·y
type Trapezoidal struct {
	// BottomWidth is b (m).
	BottomWidth float64
	// SideSlope is z (m horizontal per m vertical), ≥ 0.
	SideSlope float64
}

// NewTrapezoidal validates b > 0 and z ≥ 0 and returns the shape.
func NewTrapezoidal(bottomWidth, sideSlope float64) (Trapezoidal, error) {
	if bottomWidth <= 0 || sideSlope < 0 {
		return Trapezoidal{}, ErrDimension
	}

	return Trapezoidal{BottomWidth: bottomWidth, SideSlope: sideSlope}, nil
}

// Area returns (b + z·y)·y, or 0 for depth ≤ 0.
func (t Trapezoidal) Area(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return (t.BottomWidth + t.SideSlope*depth) * depth
}

// WettedPerimeter returns b + 2y·√(1+z²), or 0 for depth ≤ 0.
func (t Trapezoidal) WettedPerimeter(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return t.BottomWidth + 2*depth*math.Sqrt(1+t.SideSlope*t.SideSlope)
}

// TopWidth returns b + 2z·y, or 0 for depth ≤ 0.
func (t Trapezoidal) TopWidth(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return t.BottomWidth + 2*t.SideSlope*depth
}

// MaxDepth reports an open top: +Inf.
func (t Trapezoidal) MaxDepth() float64 { return math.Inf(1) }

// Triangular is a symmetric V-shaped channel of side slope z.
//
//	A = z·y²    P = 2y·√(1+z²)    T = 2z·y
type Triangular struct {
	// SideSlope is z (m horizontal per m vertical), > 0.
	SideSlope float64
}

// NewTriangular validates z > 0 and returns the shape. A zero side slope
// would collapse the section to a line and is rejected.
func NewTriangular(sideSlope float64) (Triangular, error) {
	if sideSlope <= 0 {
		return Triangular{}, ErrDimension
	}

	return Triangular{SideSlope: sideSlope}, nil
}

// Area returns z·y², or 0 for depth ≤ 0.
func (v Triangular) Area(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return v.SideSlope * depth * depth
}

// WettedPerimeter returns 2y·√(1+z²), or 0 for depth ≤ 0.
func (v Triangular) WettedPerimeter(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return 2 * depth * math.Sqrt(1+v.SideSlope*v.SideSlope)
}

// TopWidth returns 2z·y, or 0 for depth ≤ 0.
func (v Triangular) TopWidth(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return 2 * v.SideSlope * depth
}

// MaxDepth reports an open top: +Inf.
func (v Triangular) MaxDepth() float64 { return math.Inf(1) }

// Circular is a circular conduit of diameter D flowing partly full.
// Depth beyond D clamps to the full pipe (T → 0 at the crown).
//
// With the central wetted angle θ = 2·acos(1 − 2y/D):
//
//	A = D²·(θ − sin θ)/8    P = D·θ/2    T = D·sin(θ/2)
type Circular struct {
	// Diameter is D (m).
	Diameter float64
}

// NewCircular validates D > 0 and returns the shape.
func NewCircular(diameter float64) (Circular, error) {
	if diameter <= 0 {
		return Circular{}, ErrDimension
	}

	return Circular{Diameter: diameter}, nil
}

// wettedAngle returns θ = 2·acos(1 − 2y/D), clamped to [0, 2π].
func (c Circular) wettedAngle(depth float64) float64 {
	ratio := 1 - 2*depth/c.Diameter
	if ratio <= -1 {
		return 2 * math.Pi
	}
	if ratio >= 1 {
		return 0
	}

	return 2 * math.Acos(ratio)
}

// Area returns D²(θ−sinθ)/8 with θ the wetted angle; 0 for depth ≤ 0 and the
// full circle area for depth ≥ D.
func (c Circular) Area(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	theta := c.wettedAngle(depth)

	return c.Diameter * c.Diameter * (theta - math.Sin(theta)) / 8
}

// WettedPerimeter returns D·θ/2; the full circumference for depth ≥ D.
func (c Circular) WettedPerimeter(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return c.Diameter * c.wettedAngle(depth) / 2
}

// TopWidth returns D·sin(θ/2); it vanishes at the crown (depth ≥ D).
func (c Circular) TopWidth(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return c.Diameter * math.Sin(c.wettedAngle(depth)/2)
}

// MaxDepth returns the pipe diameter D.
func (c Circular) MaxDepth() float64 { return c.Diameter }

// Parabolic is a parabolic channel y = k·x², common for grassed waterways.
//
// With u = 4y/T the exact perimeter is
//
//	T = 2·√(y/k)    A = (2/3)·T·y
//	P = (T/2)·[√(1+u²) + ln(u + √(1+u²))/u]
type Parabolic struct {
	// Coefficient is k (1/m) in y = k·x²; larger k means a narrower section.
	Coefficient float64
}

// NewParabolic validates k > 0 and returns the shape.
func NewParabolic(coefficient float64) (Parabolic, error) {
	if coefficient <= 0 {
		return Parabolic{}, ErrDimension
	}

	return Parabolic{Coefficient: coefficient}, nil
}

// Area returns (2/3)·T·y, or 0 for depth ≤ 0.
func (p Parabolic) Area(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return 2.0 / 3.0 * p.TopWidth(depth) * depth
}

// WettedPerimeter returns the exact parabolic arc length of the wetted
// boundary, or 0 for depth ≤ 0.
func (p Parabolic) WettedPerimeter(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	t := p.TopWidth(depth)
	u := 4 * depth / t
	root := math.Sqrt(1 + u*u)

	return t / 2 * (root + math.Log(u+root)/u)
}

// TopWidth returns 2·√(y/k), or 0 for depth ≤ 0.
func (p Parabolic) TopWidth(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return 2 * math.Sqrt(depth/p.Coefficient)
}

// MaxDepth reports an open top: +Inf.
func (p Parabolic) MaxDepth() float64 { return math.Inf(1) }
