package section_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/openchannel/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewShapes_Validation verifies every constructor rejects non-positive
// characteristic dimensions with ErrDimension.
func TestNewShapes_Validation(t *testing.T) {
	_, err := section.NewRectangular(0)
	assert.ErrorIs(t, err, section.ErrDimension, "zero width must be rejected")

	_, err = section.NewTrapezoidal(-1, 2)
	assert.ErrorIs(t, err, section.ErrDimension, "negative bottom width must be rejected")

	_, err = section.NewTrapezoidal(3, -0.5)
	assert.ErrorIs(t, err, section.ErrDimension, "negative side slope must be rejected")

	_, err = section.NewTriangular(0)
	assert.ErrorIs(t, err, section.ErrDimension, "zero side slope collapses the V-section")

	_, err = section.NewCircular(0)
	assert.ErrorIs(t, err, section.ErrDimension, "zero diameter must be rejected")

	_, err = section.NewParabolic(-2)
	assert.ErrorIs(t, err, section.ErrDimension, "negative coefficient must be rejected")
}

// TestRectangular_Geometry checks the closed-form rectangular relations.
func TestRectangular_Geometry(t *testing.T) {
	r, err := section.NewRectangular(3.0)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, r.Area(2.0), 1e-12, "A = b·y")
	assert.InDelta(t, 7.0, r.WettedPerimeter(2.0), 1e-12, "P = b + 2y")
	assert.InDelta(t, 3.0, r.TopWidth(2.0), 1e-12, "T = b")
	assert.True(t, math.IsInf(r.MaxDepth(), 1), "open top")
}

// TestTrapezoidal_Geometry checks the closed-form trapezoidal relations
// against a hand calculation (b=2, z=1.5, y=1.2).
func TestTrapezoidal_Geometry(t *testing.T) {
	tr, err := section.NewTrapezoidal(2.0, 1.5)
	require.NoError(t, err)

	y := 1.2
	assert.InDelta(t, (2.0+1.5*y)*y, tr.Area(y), 1e-12, "A = (b+z·y)·y")
	assert.InDelta(t, 2.0+2*y*math.Sqrt(1+1.5*1.5), tr.WettedPerimeter(y), 1e-12, "P = b + 2y√(1+z²)")
	assert.InDelta(t, 2.0+2*1.5*y, tr.TopWidth(y), 1e-12, "T = b + 2z·y")
}

// TestCircular_Geometry checks the half-full and full-pipe limits.
func TestCircular_Geometry(t *testing.T) {
	c, err := section.NewCircular(1.0)
	require.NoError(t, err)

	// Half full: semicircle.
	assert.InDelta(t, math.Pi/8, c.Area(0.5), 1e-9, "half-full area = πD²/8")
	assert.InDelta(t, math.Pi/2, c.WettedPerimeter(0.5), 1e-9, "half-full perimeter = πD/2")
	assert.InDelta(t, 1.0, c.TopWidth(0.5), 1e-9, "half-full top width = D")

	// Full pipe: whole circle, zero top width.
	assert.InDelta(t, math.Pi/4, c.Area(1.0), 1e-9, "full area = πD²/4")
	assert.InDelta(t, math.Pi, c.WettedPerimeter(1.0), 1e-9, "full perimeter = πD")
	assert.InDelta(t, 0.0, c.TopWidth(1.0), 1e-9, "top width vanishes at the crown")

	// Clamp above the crown.
	assert.InDelta(t, c.Area(1.0), c.Area(2.5), 1e-12, "depth beyond D clamps to full pipe")
	assert.Equal(t, 1.0, c.MaxDepth(), "rise equals diameter")
}

// TestParabolic_Geometry checks the parabolic area identity A = (2/3)·T·y.
func TestParabolic_Geometry(t *testing.T) {
	p, err := section.NewParabolic(0.5)
	require.NoError(t, err)

	y := 0.9
	tw := 2 * math.Sqrt(y/0.5)
	assert.InDelta(t, tw, p.TopWidth(y), 1e-12, "T = 2√(y/k)")
	assert.InDelta(t, 2.0/3.0*tw*y, p.Area(y), 1e-12, "A = (2/3)·T·y")
	assert.Greater(t, p.WettedPerimeter(y), tw, "arc length exceeds the chord")
}

// TestHydraulicRadius_Identity verifies R ≡ A/P across all shapes and depths.
func TestHydraulicRadius_Identity(t *testing.T) {
	rect, _ := section.NewRectangular(3)
	trap, _ := section.NewTrapezoidal(2, 1.5)
	tri, _ := section.NewTriangular(2)
	circ, _ := section.NewCircular(1.2)
	para, _ := section.NewParabolic(0.8)

	shapes := []section.Section{rect, trap, tri, circ, para}
	depths := []float64{0.05, 0.3, 0.7, 1.1}

	for _, s := range shapes {
		for _, y := range depths {
			if y >= s.MaxDepth() {
				continue
			}
			want := s.Area(y) / s.WettedPerimeter(y)
			assert.InDelta(t, want, section.HydraulicRadius(s, y), 1e-12,
				"hydraulic radius must equal A/P at depth %v", y)
		}
	}
}

// TestDegenerateDepth_ZeroGeometry verifies depth ≤ 0 yields zero geometry
// (not an error) so bracketing solvers can probe freely.
func TestDegenerateDepth_ZeroGeometry(t *testing.T) {
	trap, _ := section.NewTrapezoidal(2, 1)

	assert.Zero(t, trap.Area(0), "zero depth: zero area")
	assert.Zero(t, trap.Area(-1), "negative depth: zero area")
	assert.Zero(t, trap.WettedPerimeter(-1), "negative depth: zero perimeter")
	assert.Zero(t, trap.TopWidth(0), "zero depth: zero top width")
	assert.Zero(t, section.HydraulicRadius(trap, 0), "zero perimeter guards division")
	assert.Zero(t, section.HydraulicDepth(trap, 0), "zero top width guards division")
}
