package culvert_test

import (
	"testing"

	"github.com/katalvlaran/openchannel/culvert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeCulvert returns the reference test culvert: 1.2 m concrete pipe,
// 30 m long, square-edge headwall, 1 % barrel slope.
func pipeCulvert(t *testing.T) culvert.Culvert {
	t.Helper()
	barrel, err := culvert.NewCircularBarrel(1.2)
	require.NoError(t, err)

	return culvert.Culvert{
		Barrel:           barrel,
		Length:           30,
		Roughness:        0.013,
		Inlet:            culvert.SquareEdgeHeadwall,
		UpstreamInvert:   100.3,
		DownstreamInvert: 100.0,
	}
}

// TestAnalyze_Validation verifies the sentinel-error contract.
func TestAnalyze_Validation(t *testing.T) {
	c := pipeCulvert(t)

	bad := c
	bad.Barrel = nil
	_, err := culvert.Analyze(bad, 1, 0)
	assert.ErrorIs(t, err, culvert.ErrNilBarrel)

	bad = c
	bad.Length = 0
	_, err = culvert.Analyze(bad, 1, 0)
	assert.ErrorIs(t, err, culvert.ErrGeometry)

	bad = c
	bad.Inlet = culvert.WingwallFlared // box-only configuration on a pipe
	_, err = culvert.Analyze(bad, 1, 0)
	assert.ErrorIs(t, err, culvert.ErrInletConfig)

	_, err = culvert.Analyze(c, -1, 0)
	assert.ErrorIs(t, err, culvert.ErrDischarge)
}

// TestAnalyze_ZeroDischarge verifies Q=0 returns the invert with zero
// headwater depth.
func TestAnalyze_ZeroDischarge(t *testing.T) {
	c := pipeCulvert(t)

	res, err := culvert.Analyze(c, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, res.HeadwaterDepth)
	assert.Equal(t, c.UpstreamInvert, res.HeadwaterElevation)
	assert.Equal(t, culvert.Acceptable, res.Rating)
}

// TestAnalyze_ModerateFlow_InletControl verifies the reference pipe at
// Q=2 m³/s: inlet control, HW/D ≈ 1.0, acceptable rating.
func TestAnalyze_ModerateFlow_InletControl(t *testing.T) {
	c := pipeCulvert(t)

	res, err := culvert.Analyze(c, 2.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, culvert.InletControl, res.Control, "steep short barrel: inlet governs")
	assert.InDelta(t, 1.01, res.HWD, 0.08, "HW/D near 1.0 per hand calculation")
	assert.Equal(t, culvert.Acceptable, res.Rating)
	assert.Greater(t, res.OutletVelocity, 0.0)
	assert.Equal(t, res.HeadwaterElevation, c.UpstreamInvert+res.HeadwaterDepth)
}

// TestAnalyze_MonotoneInDischarge verifies headwater never decreases with
// increasing discharge for fixed geometry.
func TestAnalyze_MonotoneInDischarge(t *testing.T) {
	c := pipeCulvert(t)

	prev := -1.0
	for _, q := range []float64{0, 0.5, 1, 2, 3, 4, 5} {
		res, err := culvert.Analyze(c, q, 0.5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.HeadwaterDepth, prev,
			"headwater must be monotone non-decreasing in discharge (q=%v)", q)
		prev = res.HeadwaterDepth
	}
}

// TestAnalyze_HighFlow_WarningsAndRating verifies the inadequate rating path
// with its warning and recommendation set.
func TestAnalyze_HighFlow_WarningsAndRating(t *testing.T) {
	c := pipeCulvert(t)

	res, err := culvert.Analyze(c, 6.0, 0.5)
	require.NoError(t, err)
	assert.Greater(t, res.HWD, 1.5, "overloaded pipe must exceed the marginal HW/D")
	assert.Equal(t, culvert.Inadequate, res.Rating)
	assert.Contains(t, res.Warnings, culvert.WarnHighHeadwater)
	assert.Contains(t, res.Recommendations, culvert.RecLargerBarrel)
}

// TestAnalyze_HighTailwater_OutletControl verifies deep tailwater flips the
// governing regime to outlet control.
func TestAnalyze_HighTailwater_OutletControl(t *testing.T) {
	c := pipeCulvert(t)

	res, err := culvert.Analyze(c, 2.0, 2.5)
	require.NoError(t, err)
	assert.Equal(t, culvert.OutletControl, res.Control,
		"tailwater above the crown must force outlet control")
	assert.GreaterOrEqual(t, res.OutletHeadwater, res.InletHeadwater)
}

// TestAnalyze_BoxCulvert verifies the box barrel variant end to end.
func TestAnalyze_BoxCulvert(t *testing.T) {
	barrel, err := culvert.NewBoxBarrel(2.0, 1.5)
	require.NoError(t, err)
	c := culvert.Culvert{
		Barrel:           barrel,
		Length:           25,
		Roughness:        0.012,
		Inlet:            culvert.WingwallFlared,
		UpstreamInvert:   50.2,
		DownstreamInvert: 50.0,
	}

	res, err := culvert.Analyze(c, 5.0, 0.8)
	require.NoError(t, err)
	assert.Greater(t, res.HeadwaterDepth, 0.0)
	assert.NotEmpty(t, res.Control)
	assert.InDelta(t, res.HeadwaterDepth/1.5, res.HWD, 1e-12, "HW/D uses the box rise")
}

// TestPerformanceCurve verifies curve sampling and its monotone headwater.
func TestPerformanceCurve(t *testing.T) {
	c := pipeCulvert(t)

	pts, err := culvert.PerformanceCurve(c, 5.0, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, pts, 11)
	assert.Zero(t, pts[0].Discharge)
	assert.Equal(t, 5.0, pts[len(pts)-1].Discharge)
	for i := 1; i < len(pts); i++ {
		assert.GreaterOrEqual(t, pts[i].HeadwaterElevation, pts[i-1].HeadwaterElevation,
			"performance curve must rise with discharge")
	}

	_, err = culvert.PerformanceCurve(c, 0, 0.5, 10)
	assert.ErrorIs(t, err, culvert.ErrDischarge)
}
