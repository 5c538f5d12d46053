// Package design - freeboard computation.
package design

import (
	"github.com/katalvlaran/openchannel/hydraulics"
)

// ChannelType scales the stacked freeboard components.
type ChannelType string

// Channel types and their freeboard factors.
const (
	// LinedChannel: hard lining tolerates occasional wetting.
	LinedChannel ChannelType = "lined"
	// EarthChannel: erodible banks demand extra margin.
	EarthChannel ChannelType = "earth"
)

// channelFactor maps channel type to its freeboard multiplier; unknown
// types fall back to the earth factor.
var channelFactor = map[ChannelType]float64{
	LinedChannel: 1.00,
	EarthChannel: 1.25,
}

// freeboardTable maps design discharge (m³/s) to the minimum freeboard (m);
// the walk picks the first row whose discharge bound covers the design flow.
var freeboardTable = []struct{ discharge, minimum float64 }{
	{0.5, 0.30},
	{1.5, 0.40},
	{5.0, 0.50},
	{10.0, 0.60},
	{30.0, 0.75},
	{85.0, 0.90},
}

// maxTableFreeboard applies beyond the last table row.
const maxTableFreeboard = 1.05

// Freeboard component coefficients.
const (
	// velocityAllowanceFactor charges a fraction of the velocity head.
	velocityAllowanceFactor = 0.5
	// waveAllowanceCoef is the empirical wind/boat wave term, per m/s.
	waveAllowanceCoef = 0.025
)

// FreeboardInput describes the design flow and alignment.
type FreeboardInput struct {
	// Discharge is the design flow (m³/s).
	Discharge float64
	// Velocity and Depth describe the design section (m/s, m).
	Velocity float64
	Depth    float64
	// TopWidth is the free-surface width (m); used on curves.
	TopWidth float64
	// CurveRadius is the centerline bend radius (m); 0 for tangent reaches.
	CurveRadius float64
	// Channel selects the freeboard factor.
	Channel ChannelType
}

// FreeboardResult itemizes the stacked components (m).
type FreeboardResult struct {
	Minimum        float64 `json:"minimum"`
	VelocityHead   float64 `json:"velocity_head"`
	WaveAllowance  float64 `json:"wave_allowance"`
	Superelevation float64 `json:"superelevation"`
	// Factor is the channel-type multiplier applied to the sum.
	Factor float64 `json:"factor"`
	// Total is the recommended freeboard (m).
	Total float64 `json:"total"`
}

// Freeboard stacks the table minimum, a velocity-head allowance, a wave
// allowance and half the curve superelevation, scaled by the channel factor.
//
// Contracts: Discharge, Velocity and Depth positive; CurveRadius ≥ 0 (zero
// disables superelevation).
func Freeboard(in FreeboardInput) (FreeboardResult, error) {
	if in.Discharge <= 0 || in.Velocity <= 0 || in.Depth <= 0 || in.CurveRadius < 0 {
		return FreeboardResult{}, ErrInput
	}

	res := FreeboardResult{Minimum: tableMinimum(in.Discharge)}

	head := in.Velocity * in.Velocity / (2 * hydraulics.Gravity)
	res.VelocityHead = velocityAllowanceFactor * head
	res.WaveAllowance = waveAllowanceCoef * in.Velocity

	// Superelevation rise Δy = V²·T/(g·Rc); half of it rides each bank.
	if in.CurveRadius > 0 && in.TopWidth > 0 {
		rise := in.Velocity * in.Velocity * in.TopWidth /
			(hydraulics.Gravity * in.CurveRadius)
		res.Superelevation = rise / 2
	}

	factor, ok := channelFactor[in.Channel]
	if !ok {
		factor = channelFactor[EarthChannel]
	}
	res.Factor = factor
	res.Total = factor * (res.Minimum + res.VelocityHead + res.WaveAllowance + res.Superelevation)

	return res, nil
}

// tableMinimum walks the discharge-indexed freeboard table.
func tableMinimum(q float64) float64 {
	for _, row := range freeboardTable {
		if q <= row.discharge {
			return row.minimum
		}
	}

	return maxTableFreeboard
}
