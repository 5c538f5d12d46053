package bridge_test

import (
	"testing"

	"github.com/katalvlaran/openchannel/bridge"
	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// crossing returns a plain bridge over a 10 m channel with an 8 m opening
// and a 3 m low chord; callers mutate the fields they exercise.
func crossing() bridge.Bridge {
	return bridge.Bridge{
		ChannelWidth:  10,
		OpeningWidth:  8,
		BedElevation:  0,
		LowChord:      3,
		HighChord:     4,
		DeckLength:    12,
		Roughness:     0.03,
		ApproachReach: 20,
	}
}

// TestAnalyze_Validation verifies the sentinel-error contract.
func TestAnalyze_Validation(t *testing.T) {
	bad := crossing()
	bad.OpeningWidth = 12 // wider than the channel
	_, err := bridge.Analyze(bad, 5, 1.0)
	assert.ErrorIs(t, err, bridge.ErrGeometry)

	bad = crossing()
	bad.LowChord = -1
	_, err = bridge.Analyze(bad, 5, 1.0)
	assert.ErrorIs(t, err, bridge.ErrGeometry)

	bad = crossing()
	bad.Piers = bridge.Piers{Count: 10, Width: 1, Shape: bridge.SquarePier}
	_, err = bridge.Analyze(bad, 5, 1.0)
	assert.ErrorIs(t, err, bridge.ErrGeometry, "piers must not close the opening")

	_, err = bridge.Analyze(crossing(), 0, 1.0)
	assert.ErrorIs(t, err, bridge.ErrDischarge)

	_, err = bridge.Analyze(crossing(), 5, 0)
	assert.ErrorIs(t, err, bridge.ErrTailwater)
}

// TestAnalyze_LowFlowBackwater verifies a gentle constriction produces a
// small positive backwater in the low-flow regime.
func TestAnalyze_LowFlowBackwater(t *testing.T) {
	res, err := bridge.Analyze(crossing(), 8, 1.5)
	require.NoError(t, err)

	assert.Equal(t, bridge.LowFlow, res.Type)
	assert.Greater(t, res.Backwater, 0.0, "constriction must raise the upstream surface")
	assert.Less(t, res.Backwater, 0.5, "a mild constriction stays well under half a meter")
	assert.Greater(t, res.Losses.Friction, 0.0)
	assert.Zero(t, res.Losses.Pier, "no piers, no Yarnell loss")
	assert.NotContains(t, res.Warnings, bridge.WarnPressureFlow)
}

// TestAnalyze_PierLoss verifies piers add backwater over the pier-free case
// and that blunter noses cost more.
func TestAnalyze_PierLoss(t *testing.T) {
	clean, err := bridge.Analyze(crossing(), 8, 1.5)
	require.NoError(t, err)

	round := crossing()
	round.Piers = bridge.Piers{Count: 2, Width: 0.4, Shape: bridge.SemicircularPier}
	rr, err := bridge.Analyze(round, 8, 1.5)
	require.NoError(t, err)

	square := crossing()
	square.Piers = bridge.Piers{Count: 2, Width: 0.4, Shape: bridge.SquarePier}
	sq, err := bridge.Analyze(square, 8, 1.5)
	require.NoError(t, err)

	assert.Greater(t, rr.Losses.Pier, 0.0)
	assert.Greater(t, rr.UpstreamWSEL, clean.UpstreamWSEL, "piers must add backwater")
	assert.Greater(t, sq.Losses.Pier, rr.Losses.Pier, "square noses cost more than semicircular")
}

// TestAnalyze_MonotoneInDischarge verifies the upstream stage never drops as
// discharge grows.
func TestAnalyze_MonotoneInDischarge(t *testing.T) {
	prev := 0.0
	for _, q := range []float64{2, 5, 10, 20, 40} {
		res, err := bridge.Analyze(crossing(), q, 1.5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.UpstreamWSEL, prev, "stage must not drop at q=%v", q)
		prev = res.UpstreamWSEL
	}
}

// TestAnalyze_RegimeEscalation verifies the low_flow / pressure_flow /
// weir_flow progression as discharge grows.
func TestAnalyze_RegimeEscalation(t *testing.T) {
	b := crossing()

	low, err := bridge.Analyze(b, 8, 1.5)
	require.NoError(t, err)
	assert.Equal(t, bridge.LowFlow, low.Type)

	pressure, err := bridge.Analyze(b, 120, 1.5)
	require.NoError(t, err)
	assert.Equal(t, bridge.PressureFlow, pressure.Type)
	assert.GreaterOrEqual(t, pressure.UpstreamWSEL, b.LowChord)
	assert.Contains(t, pressure.Warnings, bridge.WarnPressureFlow)
	assert.Zero(t, pressure.DeckDischarge)

	weir, err := bridge.Analyze(b, 200, 1.5)
	require.NoError(t, err)
	assert.Equal(t, bridge.WeirFlow, weir.Type)
	assert.Greater(t, weir.UpstreamWSEL, b.HighChord)
	assert.Greater(t, weir.DeckDischarge, 0.0, "part of the flow must ride the deck")
	assert.Less(t, weir.DeckDischarge, 200.0)
	assert.Contains(t, weir.Warnings, bridge.WarnDeckOvertopping)
}

// TestAnalyze_PressureStageHandCheck verifies the orifice inversion
// y₁ = (Q/CA)²/2g + Z/2 at a discharge far above the low-flow range.
func TestAnalyze_PressureStageHandCheck(t *testing.T) {
	b := crossing()

	res, err := bridge.Analyze(b, 120, 1.5)
	require.NoError(t, err)
	require.Equal(t, bridge.PressureFlow, res.Type)

	// A = 24 m², Q/CA = 120/(0.8·24) = 6.25, y₁ = 6.25²/(2·9.80665) + 1.5 ≈ 3.49 m.
	assert.InDelta(t, 3.49, res.UpstreamWSEL, 0.01)
}

// TestAnalyze_FrictionAveragesConveyance verifies the approach friction loss
// h_f = L·(Q/K̄)² with the conveyance averaged between the downstream and
// upstream sections, not taken at the upstream section alone.
func TestAnalyze_FrictionAveragesConveyance(t *testing.T) {
	rough := crossing()
	rough.Roughness = 0.05
	rough.ApproachReach = 200
	rough.LowChord = 5
	rough.HighChord = 6

	res, err := bridge.Analyze(rough, 30, 2.0)
	require.NoError(t, err)
	require.Equal(t, bridge.LowFlow, res.Type)

	channel, err := section.NewRectangular(rough.ChannelWidth)
	require.NoError(t, err)

	kDown := hydraulics.Conveyance(channel, 2.0, rough.Roughness)
	kUp := hydraulics.Conveyance(channel, res.UpstreamWSEL, rough.Roughness)
	ratio := 30 / ((kDown + kUp) / 2)
	assert.InDelta(t, rough.ApproachReach*ratio*ratio, res.Losses.Friction, 1e-3)
}
