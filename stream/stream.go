// Package stream - system definition and the stitched profile solver.
package stream

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/gvf"
	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// Sentinel errors.
var (
	// ErrNoReaches indicates an empty system.
	ErrNoReaches = errors.New("stream: system needs at least one reach")

	// ErrReach indicates a malformed reach definition.
	ErrReach = errors.New("stream: reach needs a section and positive roughness, slope and length")

	// ErrDischarge indicates a non-positive accumulated discharge.
	ErrDischarge = errors.New("stream: discharge must be positive on every reach")

	// ErrBoundary indicates a non-positive outlet depth.
	ErrBoundary = errors.New("stream: outlet depth must be positive")

	// ErrRange indicates a malformed rating-curve range.
	ErrRange = errors.New("stream: rating curve needs 0 < qMin < qMax and at least two points")

	// ErrNilSection indicates a nil surveyed cross-section.
	ErrNilSection = errors.New("stream: cross-section must be non-nil")
)

// uniformBand is the relative depth band around the asymptote inside which a
// reach is treated as flowing uniformly.
const uniformBand = 0.02

// WarnControlClamped flags an outlet or junction depth at or below critical
// depth, replaced by the reach's normal depth.
const WarnControlClamped = "control depth at or below critical; clamped to normal depth"

// Reach is one prismatic segment of a stream system.
type Reach struct {
	// Name labels the reach in profile output.
	Name string
	// Section, Roughness and Slope define the prismatic channel.
	Section   section.Section
	Roughness float64
	Slope     float64
	// Length is the reach length along the thalweg (m).
	Length float64
	// TributaryInflow joins at the reach's upstream end (m³/s).
	TributaryInflow float64
}

// channel adapts the reach for the profile engine.
func (r Reach) channel() gvf.Channel {
	return gvf.Channel{Section: r.Section, Roughness: r.Roughness, Slope: r.Slope}
}

// System is an ordered reach chain, index 0 the most upstream.
type System struct {
	// Baseflow enters the head of the first reach (m³/s).
	Baseflow float64
	// Reaches run upstream to downstream.
	Reaches []Reach
}

// Discharges accumulates baseflow and tributaries: element i is the flow
// carried by reach i.
func (s System) Discharges() []float64 {
	out := make([]float64, len(s.Reaches))
	q := s.Baseflow
	for i, r := range s.Reaches {
		q += r.TributaryInflow
		out[i] = q
	}

	return out
}

// validate rejects malformed systems before any hydraulics.
func (s System) validate() error {
	if len(s.Reaches) == 0 {
		return ErrNoReaches
	}
	for _, r := range s.Reaches {
		if r.Section == nil || r.Roughness <= 0 || r.Slope <= 0 || r.Length <= 0 {
			return ErrReach
		}
	}
	for _, q := range s.Discharges() {
		if q <= 0 {
			return ErrDischarge
		}
	}

	return nil
}

// SystemPoint is one station of a stitched system profile.
type SystemPoint struct {
	// Reach names the segment the station belongs to.
	Reach string `json:"reach"`
	// Station is the distance upstream from the outlet (m).
	Station float64 `json:"station"`
	// Depth, Velocity and Froude describe the local flow.
	Depth    float64 `json:"depth"`
	Velocity float64 `json:"velocity"`
	Froude   float64 `json:"froude"`
	// Discharge is the flow carried at the station (m³/s).
	Discharge float64 `json:"discharge"`
}

// SystemProfile is the stitched result record.
type SystemProfile struct {
	// Points run outlet first, station increasing upstream.
	Points []SystemPoint `json:"points"`

	Warnings []string `json:"warnings"`
}

// Profile integrates the system water surface upstream from the outlet
// control depth.
//
// Each reach either flows uniformly (control within uniformBand of its
// asymptote) or integrates a backwater curve clipped to its length; the
// upstream depth seeds the next reach. Every reach's own warnings accumulate
// on the result.
func Profile(sys System, outletDepth float64, opts gvf.Options) (SystemProfile, error) {
	if err := sys.validate(); err != nil {
		return SystemProfile{}, err
	}
	if outletDepth <= 0 {
		return SystemProfile{}, ErrBoundary
	}

	discharges := sys.Discharges()
	res := SystemProfile{Points: []SystemPoint{}, Warnings: []string{}}

	control := outletDepth
	offset := 0.0
	for i := len(sys.Reaches) - 1; i >= 0; i-- {
		r := sys.Reaches[i]
		q := discharges[i]

		depth, err := reachProfile(&res, r, q, control, offset, opts)
		if err != nil {
			return SystemProfile{}, err
		}

		control = depth
		offset += r.Length
	}

	return res, nil
}

// reachProfile appends one reach's stations to the result and returns the
// depth at the reach's upstream end.
func reachProfile(res *SystemProfile, r Reach, q, control, offset float64, opts gvf.Options) (float64, error) {
	ch := r.channel()

	normal, err := hydraulics.NormalDepth(r.Section, q, r.Roughness, r.Slope, hydraulics.DefaultOptions())
	if err != nil {
		return 0, err
	}
	critical, err := hydraulics.CriticalDepth(r.Section, q, hydraulics.DefaultOptions())
	if err != nil {
		return 0, err
	}

	// The subcritical march can only approach the larger of the two depths.
	asymptote := math.Max(normal.Depth, critical.Depth)

	// The clamp band matches the classifier's zone-boundary tolerance, so a
	// control just above critical cannot strand the march on a boundary.
	if control <= critical.Depth*(1+uniformBand) {
		control = math.Max(normal.Depth, critical.Depth*(1+uniformBand))
		res.Warnings = append(res.Warnings, WarnControlClamped)
	}

	if math.Abs(control-asymptote) <= uniformBand*asymptote {
		res.Points = append(res.Points,
			systemPoint(r, q, control, offset),
			systemPoint(r, q, control, offset+r.Length))

		return control, nil
	}

	side := 1.0
	if control < asymptote {
		side = -1
	}
	target := asymptote * (1 + side*uniformBand)

	prof, err := gvf.DirectStep(ch, q, control, target, opts)
	if err != nil {
		return 0, err
	}
	res.Warnings = append(res.Warnings, prof.Warnings...)

	depth := appendClipped(res, r, q, prof.Points, offset)

	return depth, nil
}

// appendClipped converts a reach's upstream-marching points to system
// stations, clipping at the reach length and padding a short profile flat to
// the reach end. It returns the upstream-end depth.
func appendClipped(res *SystemProfile, r Reach, q float64, pts []gvf.StepPoint, offset float64) float64 {
	last := pts[0]
	for _, pt := range pts {
		distance := -pt.Distance // upstream marching accumulates negative x
		if distance > r.Length {
			// Interpolate the crossing, then stop.
			prev := -last.Distance
			t := (r.Length - prev) / (distance - prev)
			depth := last.Depth + t*(pt.Depth-last.Depth)
			res.Points = append(res.Points, systemPoint(r, q, depth, offset+r.Length))

			return depth
		}
		res.Points = append(res.Points, systemPoint(r, q, pt.Depth, offset+distance))
		last = pt
	}

	// Profile ended inside the reach (asymptote): carry the depth flat.
	if end := -last.Distance; end < r.Length {
		res.Points = append(res.Points, systemPoint(r, q, last.Depth, offset+r.Length))
	}

	return last.Depth
}

// systemPoint assembles one output station.
func systemPoint(r Reach, q, depth, station float64) SystemPoint {
	v := hydraulics.Velocity(r.Section, depth, q)

	return SystemPoint{
		Reach:     r.Name,
		Station:   station,
		Depth:     depth,
		Velocity:  v,
		Froude:    hydraulics.FroudeNumber(v, section.HydraulicDepth(r.Section, depth)),
		Discharge: q,
	}
}
