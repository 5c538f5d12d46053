package gvf_test

import (
	"testing"

	"github.com/katalvlaran/openchannel/gvf"
	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mildChannel returns the reference mild channel: b=3 m, n=0.013, S=0.001.
// For Q=10 m³/s: yn ≈ 1.62 m, yc ≈ 1.04 m.
func mildChannel(t *testing.T) gvf.Channel {
	t.Helper()
	rect, err := section.NewRectangular(3.0)
	require.NoError(t, err)

	return gvf.Channel{Section: rect, Roughness: 0.013, Slope: 0.001}
}

// TestClassifySlope verifies the five-way slope classification.
func TestClassifySlope(t *testing.T) {
	assert.Equal(t, gvf.Mild, gvf.ClassifySlope(2.0, 1.0, 0.001))
	assert.Equal(t, gvf.Steep, gvf.ClassifySlope(0.5, 1.0, 0.02))
	assert.Equal(t, gvf.CriticalSl, gvf.ClassifySlope(1.004, 1.0, 0.004))
	assert.Equal(t, gvf.Horizontal, gvf.ClassifySlope(0, 1.0, 0))
	assert.Equal(t, gvf.Adverse, gvf.ClassifySlope(0, 1.0, -0.001))
}

// TestClassifyProfile_Zones verifies zone → profile-type mapping and the
// regime-fixed integration direction.
func TestClassifyProfile_Zones(t *testing.T) {
	cases := []struct {
		name  string
		depth float64
		slope gvf.SlopeClass
		yn    float64
		yc    float64
		want  gvf.ProfileType
		dir   gvf.Direction
	}{
		{"M1 above normal", 2.5, gvf.Mild, 1.62, 1.04, gvf.M1, gvf.Upstream},
		{"M2 between", 1.3, gvf.Mild, 1.62, 1.04, gvf.M2, gvf.Upstream},
		{"M3 below critical", 0.5, gvf.Mild, 1.62, 1.04, gvf.M3, gvf.Downstream},
		{"S1 above critical", 1.6, gvf.Steep, 0.7, 1.04, gvf.S1, gvf.Upstream},
		{"S2 between", 0.9, gvf.Steep, 0.7, 1.04, gvf.S2, gvf.Downstream},
		{"S3 below normal", 0.4, gvf.Steep, 0.7, 1.04, gvf.S3, gvf.Downstream},
		{"H2 above critical", 1.5, gvf.Horizontal, 0, 1.04, gvf.H2, gvf.Upstream},
		{"H3 below critical", 0.5, gvf.Horizontal, 0, 1.04, gvf.H3, gvf.Downstream},
		{"A2 above critical", 1.5, gvf.Adverse, 0, 1.04, gvf.A2, gvf.Upstream},
		{"A3 below critical", 0.5, gvf.Adverse, 0, 1.04, gvf.A3, gvf.Downstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, dir, err := gvf.ClassifyProfile(tc.depth, tc.yn, tc.yc, tc.slope)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "profile type")
			assert.Equal(t, tc.dir, dir, "integration direction")
		})
	}
}

// TestClassifyProfile_Boundary verifies a depth on the normal-depth boundary
// is rejected: uniform flow develops no profile.
func TestClassifyProfile_Boundary(t *testing.T) {
	_, _, err := gvf.ClassifyProfile(1.62, 1.62, 1.04, gvf.Mild)
	assert.ErrorIs(t, err, gvf.ErrProfileZone)

	_, _, err = gvf.ClassifyProfile(-0.1, 1.62, 1.04, gvf.Mild)
	assert.ErrorIs(t, err, gvf.ErrDepthRange)
}

// TestDirectStep_M1Backwater verifies the canonical M1 curve: starting above
// normal depth, depths decay towards yn moving upstream (negative distances).
func TestDirectStep_M1Backwater(t *testing.T) {
	ch := mildChannel(t)

	prof, err := gvf.DirectStep(ch, 10.0, 2.5, 1.70, gvf.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, gvf.M1, prof.Type)
	assert.Equal(t, gvf.Upstream, prof.Direction)
	require.GreaterOrEqual(t, len(prof.Points), 2)

	// The control is downstream: each successive point lies farther upstream.
	last := prof.Points[len(prof.Points)-1]
	assert.Less(t, last.Distance, 0.0, "upstream marching accumulates negative distance")
	assert.Less(t, last.Depth, prof.Points[0].Depth, "M1 depth decays towards normal depth")
	assert.Greater(t, last.Depth, prof.NormalDepth, "depth stays above yn on an M1 curve")

	// Monotone depth sequence along the curve.
	for i := 1; i < len(prof.Points); i++ {
		assert.Less(t, prof.Points[i].Depth, prof.Points[i-1].Depth,
			"M1 depths decrease monotonically along the march")
		assert.Less(t, prof.Points[i].Distance, prof.Points[i-1].Distance,
			"stations move strictly upstream")
	}
}

// TestDirectStep_S2Drawdown verifies a supercritical S2 curve marches
// downstream with depth decreasing towards normal depth.
func TestDirectStep_S2Drawdown(t *testing.T) {
	rect, _ := section.NewRectangular(3.0)
	ch := gvf.Channel{Section: rect, Roughness: 0.013, Slope: 0.02} // steep

	yc, err := hydraulics.CriticalDepth(rect, 10.0, hydraulics.Options{})
	require.NoError(t, err)
	yn, err := hydraulics.NormalDepth(rect, 10.0, 0.013, 0.02, hydraulics.Options{})
	require.NoError(t, err)
	require.Less(t, yn.Depth, yc.Depth, "steep channel: yn < yc")

	start := 0.97 * yc.Depth // just below critical, inside zone 2
	prof, err := gvf.DirectStep(ch, 10.0, start, 1.02*yn.Depth, gvf.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, gvf.S2, prof.Type)
	assert.Equal(t, gvf.Downstream, prof.Direction)

	last := prof.Points[len(prof.Points)-1]
	assert.Greater(t, last.Distance, 0.0, "downstream marching accumulates positive distance")
	assert.Greater(t, last.Froude, 1.0, "S2 flow is supercritical")
}

// TestDirectStep_Validation verifies the sentinel-error contract.
func TestDirectStep_Validation(t *testing.T) {
	ch := mildChannel(t)

	_, err := gvf.DirectStep(ch, 10, -1, 1.7, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrDepthRange)

	_, err = gvf.DirectStep(gvf.Channel{}, 10, 2.5, 1.7, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrNilSection)

	_, err = gvf.DirectStep(gvf.Channel{Section: ch.Section}, 10, 2.5, 1.7, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrBadChannel)
}

// prismaticSurvey builds n identical surveyed rectangular sections, bed
// elevations following slope s0, spaced dx apart.
func prismaticSurvey(t *testing.T, n int, dx, s0 float64) []*section.CrossSection {
	t.Helper()
	out := make([]*section.CrossSection, n)
	for i := 0; i < n; i++ {
		bed := 100.0 + s0*dx*float64(i) // index 0 is the downstream control
		cs, err := section.NewCrossSection(section.Definition{
			Points: []section.Point{
				{Station: 0, Elevation: bed + 5},
				{Station: 0.01, Elevation: bed},
				{Station: 10, Elevation: bed},
				{Station: 10.01, Elevation: bed + 5},
			},
			LeftBank:  0,
			RightBank: 10.01,
			Roughness: section.Roughness{Channel: 0.013},
			Downstream: section.ReachLengths{
				LeftOverbank: dx, Channel: dx, RightOverbank: dx,
			},
		})
		require.NoError(t, err)
		out[i] = cs
	}

	return out
}

// TestStandardStep_ApproachesNormalDepth verifies an M1 start decays towards
// normal depth over a long uniform reach of surveyed sections.
func TestStandardStep_ApproachesNormalDepth(t *testing.T) {
	const (
		q  = 20.0
		s0 = 0.001
		dx = 200.0
	)
	secs := prismaticSurvey(t, 12, dx, s0)

	// Normal depth of the equivalent 10 m rectangle.
	rect, _ := section.NewRectangular(10.0)
	yn, err := hydraulics.NormalDepth(rect, q, 0.013, s0, hydraulics.Options{})
	require.NoError(t, err)

	startWSEL := 100.0 + yn.Depth + 1.0 // one meter of backwater at the control
	prof, err := gvf.StandardStep(secs, q, startWSEL, gvf.Upstream, gvf.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, prof.Points, 12)

	// Depth decays monotonically towards yn and stays above it.
	for i := 1; i < len(prof.Points); i++ {
		assert.LessOrEqual(t, prof.Points[i].Depth, prof.Points[i-1].Depth+1e-9,
			"backwater decays upstream")
	}
	last := prof.Points[len(prof.Points)-1]
	assert.Greater(t, last.Depth, yn.Depth*0.99, "depth stays at or above normal")
	assert.InDelta(t, yn.Depth, last.Depth, 0.25,
		"after 2.2 km the M1 curve has nearly relaxed to normal depth")
	assert.Less(t, last.Froude, 1.0, "subcritical throughout")
}

// TestStandardStep_Validation verifies the structural error contract.
func TestStandardStep_Validation(t *testing.T) {
	secs := prismaticSurvey(t, 3, 100, 0.001)

	_, err := gvf.StandardStep(secs[:1], 10, 101, gvf.Upstream, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrTooFewSections)

	_, err = gvf.StandardStep(secs, 0, 101, gvf.Upstream, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrBadChannel)

	_, err = gvf.StandardStep(secs, 10, 99.0, gvf.Upstream, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrDepthRange, "start surface below the control bed")
}

// TestComputeMixedProfile_LocatesJump verifies the momentum stitch on a mild
// reach fed supercritically: an M3 curve must join the downstream backwater
// through a jump strictly inside the reach.
func TestComputeMixedProfile_LocatesJump(t *testing.T) {
	ch := mildChannel(t)
	const q = 10.0

	// Supercritical inlet (sluice-gate vena contracta) and a deep
	// downstream control.
	prof, err := gvf.ComputeMixedProfile(ch, q, 150.0, 0.35, 1.80, gvf.DefaultOptions())
	require.NoError(t, err)

	assert.Greater(t, prof.JumpStation, 0.0, "jump located inside the reach")
	assert.Less(t, prof.JumpStation, 150.0, "jump located inside the reach")

	// Regime flips across the stitch.
	var preJump, postJump []gvf.StepPoint
	for _, p := range prof.Points {
		if p.Distance <= prof.JumpStation {
			preJump = append(preJump, p)
		} else {
			postJump = append(postJump, p)
		}
	}
	require.NotEmpty(t, preJump)
	require.NotEmpty(t, postJump)
	assert.Greater(t, preJump[len(preJump)-1].Froude, 1.0, "supercritical ahead of the jump")
	assert.Less(t, postJump[0].Froude, 1.0, "subcritical behind the jump")
}

// TestComputeMixedProfile_NearCriticalInlet verifies that a supercritical
// control sitting just below critical depth (inside the target nudge band)
// cannot drive the branch march backwards out of the reach: every stitched
// station stays inside [0, length] and the jump sits at the inlet.
func TestComputeMixedProfile_NearCriticalInlet(t *testing.T) {
	ch := mildChannel(t)

	// Critical depth ≈ 1.043 m at 10 m³/s; 1.027 m is ~1.5 % below it.
	prof, err := gvf.ComputeMixedProfile(ch, 10.0, 50.0, 1.027, 1.3, gvf.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, prof.Points)

	assert.GreaterOrEqual(t, prof.JumpStation, 0.0)
	for _, p := range prof.Points {
		assert.GreaterOrEqual(t, p.Distance, 0.0, "no station may fall upstream of the inlet")
		assert.LessOrEqual(t, p.Distance, 50.0, "no station may fall past the outlet")
	}
}

// TestComputeMixedProfile_RejectsWrongControls verifies regime checking of
// the two boundary depths.
func TestComputeMixedProfile_RejectsWrongControls(t *testing.T) {
	ch := mildChannel(t)

	// Both controls subcritical: no mixed profile exists.
	_, err := gvf.ComputeMixedProfile(ch, 10.0, 100, 1.8, 2.2, gvf.Options{})
	assert.ErrorIs(t, err, gvf.ErrProfileZone)
}
