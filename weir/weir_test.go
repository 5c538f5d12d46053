package weir_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/openchannel/weir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDischarge_Validation verifies the sentinel-error contract.
func TestDischarge_Validation(t *testing.T) {
	_, err := weir.Discharge(nil, 0.5, weir.Options{})
	assert.ErrorIs(t, err, weir.ErrNilWeir)

	_, err = weir.Discharge(weir.Rectangular{CrestLength: 0}, 0.5, weir.Options{})
	assert.ErrorIs(t, err, weir.ErrGeometry)

	_, err = weir.Discharge(weir.VNotch{NotchAngle: 180}, 0.5, weir.Options{})
	assert.ErrorIs(t, err, weir.ErrGeometry)

	_, err = weir.Discharge(weir.Rectangular{CrestLength: 2}, -0.1, weir.Options{})
	assert.ErrorIs(t, err, weir.ErrHead)
}

// TestDischarge_RectangularHandCheck verifies Q = C·L·H^1.5 for a suppressed
// rectangular weir.
func TestDischarge_RectangularHandCheck(t *testing.T) {
	w := weir.Rectangular{CrestLength: 2.0}

	res, err := weir.Discharge(w, 0.4, weir.Options{})
	require.NoError(t, err)
	want := 1.84 * 2.0 * math.Pow(0.4, 1.5)
	assert.InDelta(t, want, res.Discharge, 1e-9)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1.0, res.SubmergenceFactor)
}

// TestDischarge_PowerLaw verifies the 2^1.5 scaling of a free rectangular
// weir when the head doubles.
func TestDischarge_PowerLaw(t *testing.T) {
	w := weir.Rectangular{CrestLength: 3.0}

	r1, err := weir.Discharge(w, 0.3, weir.Options{})
	require.NoError(t, err)
	r2, err := weir.Discharge(w, 0.6, weir.Options{})
	require.NoError(t, err)

	assert.InDelta(t, math.Pow(2, 1.5), r2.Discharge/r1.Discharge, 1e-9,
		"doubling head multiplies rectangular weir flow by 2^1.5")
}

// TestDischarge_Contractions verifies Francis end contractions shorten the
// effective crest.
func TestDischarge_Contractions(t *testing.T) {
	free := weir.Rectangular{CrestLength: 2.0}
	pinched := weir.Rectangular{CrestLength: 2.0, Contractions: 2}

	rf, _ := weir.Discharge(free, 0.5, weir.Options{})
	rp, _ := weir.Discharge(pinched, 0.5, weir.Options{})
	want := rf.Discharge * (2.0 - 0.1*2*0.5) / 2.0
	assert.InDelta(t, want, rp.Discharge, 1e-9, "two contractions remove 0.2·H of crest")
}

// TestDischarge_VNotchHandCheck verifies Q = C·tan(θ/2)·H^2.5 for a 90° notch.
func TestDischarge_VNotchHandCheck(t *testing.T) {
	w := weir.VNotch{NotchAngle: 90}

	res, err := weir.Discharge(w, 0.25, weir.Options{})
	require.NoError(t, err)
	want := 1.38 * math.Pow(0.25, 2.5) // tan(45°) = 1
	assert.InDelta(t, want, res.Discharge, 1e-9)
}

// TestDischarge_Cipolletti verifies the trapezoidal formula with the
// Cipolletti side slope.
func TestDischarge_Cipolletti(t *testing.T) {
	w := weir.Trapezoidal{CrestLength: 1.5, SideSlope: 0.25}

	res, err := weir.Discharge(w, 0.3, weir.Options{})
	require.NoError(t, err)
	want := 1.86 * (1.5 + 0.25*0.3) * math.Pow(0.3, 1.5)
	assert.InDelta(t, want, res.Discharge, 1e-9)
}

// TestDischarge_Submergence verifies the Villemonte correction activates
// only beyond the 0.7 modular limit and reduces flow.
func TestDischarge_Submergence(t *testing.T) {
	w := weir.Rectangular{CrestLength: 2.0}

	free, err := weir.Discharge(w, 0.5, weir.Options{})
	require.NoError(t, err)

	// Below the modular limit: no correction, no warning.
	mild, err := weir.Discharge(w, 0.5, weir.Options{TailwaterHead: 0.3})
	require.NoError(t, err)
	assert.Equal(t, free.Discharge, mild.Discharge, "ratio 0.6 stays free-flowing")
	assert.Empty(t, mild.Warnings)

	// Beyond the limit: Villemonte factor and warning.
	sub, err := weir.Discharge(w, 0.5, weir.Options{TailwaterHead: 0.45})
	require.NoError(t, err)
	assert.Less(t, sub.Discharge, free.Discharge, "submergence must reduce flow")
	assert.Contains(t, sub.Warnings, weir.WarnSubmerged)
	wantFactor := math.Pow(1-math.Pow(0.9, 1.5), 0.385)
	assert.InDelta(t, wantFactor, sub.SubmergenceFactor, 1e-9)
}

// TestDischarge_ApproachVelocity verifies the correction increases discharge
// (effective head grows) and reports the approach velocity.
func TestDischarge_ApproachVelocity(t *testing.T) {
	w := weir.Rectangular{CrestLength: 2.0}

	free, _ := weir.Discharge(w, 0.5, weir.Options{})
	corrected, err := weir.Discharge(w, 0.5, weir.Options{ApproachArea: 3.0})
	require.NoError(t, err)

	assert.Greater(t, corrected.Discharge, free.Discharge,
		"approach velocity head augments the effective head")
	assert.Greater(t, corrected.EffectiveHead, 0.5)
	assert.Greater(t, corrected.ApproachVelocity, 0.0)
}

// TestHeadForDischarge_RoundTrip verifies the inverse solver against the
// forward evaluation.
func TestHeadForDischarge_RoundTrip(t *testing.T) {
	w := weir.Trapezoidal{CrestLength: 1.2, SideSlope: 0.25}

	fwd, err := weir.Discharge(w, 0.42, weir.Options{})
	require.NoError(t, err)

	inv, err := weir.HeadForDischarge(w, fwd.Discharge, weir.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 0.42, inv.Head, 1e-4, "inverse must recover the forward head")

	_, err = weir.HeadForDischarge(w, 0, weir.Options{})
	assert.ErrorIs(t, err, weir.ErrDischarge)
}

// TestHeadForDischarge_BeyondContractedCapacity verifies the capacity
// degradation: a doubly contracted 0.5 m crest passes at most ≈0.68 m³/s, so
// asking for 2 m³/s must return the rating peak with a warning instead of a
// runaway head.
func TestHeadForDischarge_BeyondContractedCapacity(t *testing.T) {
	w := weir.Rectangular{CrestLength: 0.5, Contractions: 2}

	res, err := weir.HeadForDischarge(w, 2.0, weir.Options{})
	require.NoError(t, err)
	assert.Contains(t, res.Warnings, weir.WarnBeyondCapacity)

	// Q = C·(L − 0.2H)·H^1.5 peaks at H = 3L/(5·0.2) = 1.5 m.
	assert.InDelta(t, 1.5, res.Head, 0.01)
	assert.InDelta(t, 0.676, res.Discharge, 0.005)
}

// TestHeadForDischarge_ContractedRisingLimb verifies that a passable
// discharge on a peaked rating resolves on the rising limb even when the
// bracket doubling steps over the peak.
func TestHeadForDischarge_ContractedRisingLimb(t *testing.T) {
	w := weir.Rectangular{CrestLength: 0.5, Contractions: 2}

	res, err := weir.HeadForDischarge(w, 0.6, weir.Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.InDelta(t, 0.6, res.Discharge, 1e-3)
	assert.Less(t, res.Head, 1.5, "the lower of the two roots governs")
}
