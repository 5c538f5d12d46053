// Package stream - rating curves and floodplain widths.
package stream

import (
	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// RatingPoint is one row of a stage-discharge table.
type RatingPoint struct {
	// Discharge is the swept flow (m³/s).
	Discharge float64 `json:"discharge"`
	// Depth is the normal depth at that flow (m).
	Depth float64 `json:"depth"`
	// Velocity and Froude describe the uniform flow.
	Velocity float64 `json:"velocity"`
	Froude   float64 `json:"froude"`
}

// RatingTable is the swept stage-discharge record.
type RatingTable struct {
	Points []RatingPoint `json:"points"`

	Warnings []string `json:"warnings"`
}

// RatingCurve sweeps normal depth over [qMin, qMax] in count evenly spaced
// discharges for a section of roughness n on the given slope.
//
// Solver warnings (capacity clamps, non-convergence) accumulate on the
// table rather than aborting the sweep.
func RatingCurve(sec section.Section, n, slope, qMin, qMax float64, count int) (RatingTable, error) {
	if sec == nil {
		return RatingTable{}, ErrNilSection
	}
	if n <= 0 || slope <= 0 {
		return RatingTable{}, ErrReach
	}
	if qMin <= 0 || qMax <= qMin || count < 2 {
		return RatingTable{}, ErrRange
	}

	table := RatingTable{
		Points:   make([]RatingPoint, 0, count),
		Warnings: []string{},
	}

	step := (qMax - qMin) / float64(count-1)
	for i := 0; i < count; i++ {
		q := qMin + float64(i)*step

		sol, err := hydraulics.NormalDepth(sec, q, n, slope, hydraulics.DefaultOptions())
		if err != nil {
			return RatingTable{}, err
		}
		table.Warnings = append(table.Warnings, sol.Warnings...)

		v := hydraulics.Velocity(sec, sol.Depth, q)
		table.Points = append(table.Points, RatingPoint{
			Discharge: q,
			Depth:     sol.Depth,
			Velocity:  v,
			Froude:    hydraulics.FroudeNumber(v, section.HydraulicDepth(sec, sol.Depth)),
		})
	}

	return table, nil
}

// FloodplainResult is the inundation record of a surveyed section at one
// water-surface elevation.
type FloodplainResult struct {
	// WSEL echoes the queried surface (m).
	WSEL float64 `json:"wsel"`
	// TopWidth is the total inundated width (m).
	TopWidth float64 `json:"top_width"`
	// LeftWidth, ChannelWidth and RightWidth split the inundation by zone.
	LeftWidth    float64 `json:"left_width"`
	ChannelWidth float64 `json:"channel_width"`
	RightWidth   float64 `json:"right_width"`
	// Area is the active flow area (m²); StorageArea holds water without
	// conveying it.
	Area        float64 `json:"area"`
	StorageArea float64 `json:"storage_area"`
	// Overbank reports water beyond the bank stations.
	Overbank bool `json:"overbank"`
}

// Floodplain reports the inundated extent of a surveyed cross section at
// water-surface elevation wsel. A surface below the section minimum yields
// the zero record.
func Floodplain(cs *section.CrossSection, wsel float64) (FloodplainResult, error) {
	if cs == nil {
		return FloodplainResult{}, ErrNilSection
	}

	p := cs.Properties(wsel)

	return FloodplainResult{
		WSEL:         wsel,
		TopWidth:     p.TopWidth,
		LeftWidth:    p.Left.TopWidth,
		ChannelWidth: p.Channel.TopWidth,
		RightWidth:   p.Right.TopWidth,
		Area:         p.Area,
		StorageArea:  p.StorageArea,
		Overbank:     p.Left.TopWidth > 0 || p.Right.TopWidth > 0,
	}, nil
}
