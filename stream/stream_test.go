package stream_test

import (
	"testing"

	"github.com/katalvlaran/openchannel/gvf"
	"github.com/katalvlaran/openchannel/section"
	"github.com/katalvlaran/openchannel/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mildReach returns the b = 3 m, n = 0.013, S = 0.001 reference channel
// (normal depth ≈ 1.62 m, critical depth ≈ 1.05 m at 10 m³/s).
func mildReach(t *testing.T, name string, length float64) stream.Reach {
	t.Helper()
	sec, err := section.NewRectangular(3.0)
	require.NoError(t, err)

	return stream.Reach{
		Name:      name,
		Section:   sec,
		Roughness: 0.013,
		Slope:     0.001,
		Length:    length,
	}
}

// TestDischarges_Accumulation verifies the junction bookkeeping.
func TestDischarges_Accumulation(t *testing.T) {
	sys := stream.System{
		Baseflow: 5,
		Reaches: []stream.Reach{
			{Name: "upper"},
			{Name: "middle", TributaryInflow: 3},
			{Name: "lower", TributaryInflow: 2},
		},
	}

	assert.Equal(t, []float64{5, 8, 10}, sys.Discharges())
}

// TestProfile_SingleReachBackwater verifies an M1 curve relaxing upstream
// from a high outlet stage toward normal depth.
func TestProfile_SingleReachBackwater(t *testing.T) {
	sys := stream.System{
		Baseflow: 10,
		Reaches:  []stream.Reach{mildReach(t, "main", 2000)},
	}

	res, err := stream.Profile(sys, 2.5, gvf.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, res.Points)

	first := res.Points[0]
	assert.Zero(t, first.Station, "profile starts at the outlet")
	assert.InDelta(t, 2.5, first.Depth, 1e-9)
	assert.Equal(t, 10.0, first.Discharge)

	prev := first
	for _, pt := range res.Points[1:] {
		assert.Greater(t, pt.Station, prev.Station, "stations must increase upstream")
		assert.LessOrEqual(t, pt.Depth, prev.Depth+1e-9, "M1 depth relaxes upstream")
		assert.Less(t, pt.Froude, 1.0, "backwater stays subcritical")
		prev = pt
	}

	last := res.Points[len(res.Points)-1]
	assert.InDelta(t, 2000.0, last.Station, 1e-6, "profile must span the reach")
	assert.Greater(t, last.Depth, 1.61, "the surface cannot drop through normal depth")
	assert.Less(t, last.Depth, 1.80, "two kilometers upstream the backwater has mostly relaxed")
}

// TestProfile_TwoReachJunction verifies depth hand-off and per-reach
// discharge across a junction.
func TestProfile_TwoReachJunction(t *testing.T) {
	upper := mildReach(t, "upper", 800)
	lower := mildReach(t, "lower", 800)
	lower.TributaryInflow = 4

	sys := stream.System{Baseflow: 6, Reaches: []stream.Reach{upper, lower}}

	res, err := stream.Profile(sys, 2.2, gvf.DefaultOptions())
	require.NoError(t, err)

	var sawUpper, sawLower bool
	for _, pt := range res.Points {
		switch pt.Reach {
		case "lower":
			sawLower = true
			assert.Equal(t, 10.0, pt.Discharge)
			assert.LessOrEqual(t, pt.Station, 800.0)
		case "upper":
			sawUpper = true
			assert.Equal(t, 6.0, pt.Discharge)
			assert.GreaterOrEqual(t, pt.Station, 800.0)
		}
	}
	assert.True(t, sawUpper && sawLower, "both reaches must contribute stations")
}

// TestProfile_UniformReach verifies the flat shortcut when the outlet stage
// already sits at normal depth.
func TestProfile_UniformReach(t *testing.T) {
	sys := stream.System{
		Baseflow: 10,
		Reaches:  []stream.Reach{mildReach(t, "main", 500)},
	}

	res, err := stream.Profile(sys, 1.62, gvf.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Points, 2, "a uniform reach needs only its end stations")
	assert.InDelta(t, res.Points[0].Depth, res.Points[1].Depth, 1e-9)
}

// TestProfile_ClampsSupercriticalControl verifies that an outlet depth below
// critical cannot anchor the march and is clamped with a warning.
func TestProfile_ClampsSupercriticalControl(t *testing.T) {
	sys := stream.System{
		Baseflow: 10,
		Reaches:  []stream.Reach{mildReach(t, "main", 500)},
	}

	res, err := stream.Profile(sys, 0.2, gvf.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, res.Warnings, stream.WarnControlClamped)
	assert.InDelta(t, 1.62, res.Points[0].Depth, 0.05, "clamped control sits at normal depth")
}

// TestProfile_Validation verifies the sentinel-error contract.
func TestProfile_Validation(t *testing.T) {
	_, err := stream.Profile(stream.System{}, 1.0, gvf.Options{})
	assert.ErrorIs(t, err, stream.ErrNoReaches)

	bad := stream.System{Baseflow: 10, Reaches: []stream.Reach{{Name: "x"}}}
	_, err = stream.Profile(bad, 1.0, gvf.Options{})
	assert.ErrorIs(t, err, stream.ErrReach)

	dry := stream.System{Reaches: []stream.Reach{mildReach(t, "main", 100)}}
	_, err = stream.Profile(dry, 1.0, gvf.Options{})
	assert.ErrorIs(t, err, stream.ErrDischarge)

	ok := stream.System{Baseflow: 10, Reaches: []stream.Reach{mildReach(t, "main", 100)}}
	_, err = stream.Profile(ok, 0, gvf.Options{})
	assert.ErrorIs(t, err, stream.ErrBoundary)
}

// TestRatingCurve verifies monotone stages and the reference point at
// 10 m³/s.
func TestRatingCurve(t *testing.T) {
	sec, err := section.NewRectangular(3.0)
	require.NoError(t, err)

	table, err := stream.RatingCurve(sec, 0.013, 0.001, 2.0, 10.0, 5)
	require.NoError(t, err)
	require.Len(t, table.Points, 5)

	assert.Equal(t, 2.0, table.Points[0].Discharge)
	assert.Equal(t, 10.0, table.Points[4].Discharge)
	for i := 1; i < len(table.Points); i++ {
		assert.Greater(t, table.Points[i].Depth, table.Points[i-1].Depth,
			"stage must rise with discharge")
	}
	assert.InDelta(t, 1.62, table.Points[4].Depth, 0.01)

	_, err = stream.RatingCurve(sec, 0.013, 0.001, 10.0, 2.0, 5)
	assert.ErrorIs(t, err, stream.ErrRange)
	_, err = stream.RatingCurve(nil, 0.013, 0.001, 2.0, 10.0, 5)
	assert.ErrorIs(t, err, stream.ErrNilSection)
}

// TestFloodplain verifies in-channel and overbank inundation on a simple
// compound survey.
func TestFloodplain(t *testing.T) {
	cs, err := section.NewCrossSection(section.Definition{
		Points: []section.Point{
			{Station: 0, Elevation: 2}, {Station: 10, Elevation: 2},
			{Station: 12, Elevation: 0}, {Station: 18, Elevation: 0},
			{Station: 20, Elevation: 2}, {Station: 30, Elevation: 2},
		},
		LeftBank:  10,
		RightBank: 20,
		Roughness: section.Roughness{LeftOverbank: 0.05, Channel: 0.03, RightOverbank: 0.05},
	})
	require.NoError(t, err)

	inChannel, err := stream.Floodplain(cs, 1.5)
	require.NoError(t, err)
	assert.False(t, inChannel.Overbank)
	assert.InDelta(t, 9.0, inChannel.ChannelWidth, 0.2)

	flooded, err := stream.Floodplain(cs, 2.5)
	require.NoError(t, err)
	assert.True(t, flooded.Overbank)
	assert.InDelta(t, 30.0, flooded.TopWidth, 1e-6, "the whole survey is under water")
	assert.InDelta(t, 31.0, flooded.Area, 0.5)
	assert.Greater(t, flooded.LeftWidth, 0.0)
	assert.Greater(t, flooded.RightWidth, 0.0)

	_, err = stream.Floodplain(nil, 1.0)
	assert.ErrorIs(t, err, stream.ErrNilSection)
}
