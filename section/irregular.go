// Package section - surveyed (irregular) cross-section geometry.
//
// A CrossSection is built from an ordered station/elevation ground line plus
// bank stations splitting it into left overbank / main channel / right
// overbank flow zones. Geometry at a water-surface elevation is the piecewise
// trapezoidal integral of every submerged segment, clipped to the surface and
// to the active-flow window imposed by levees; ineffective-flow areas hold
// water but carry no conveyance until the surface tops their trigger
// elevation.
package section

import "math"

// Point is one survey point of a cross-section ground line.
type Point struct {
	// Station is the horizontal offset (m), increasing left to right.
	Station float64 `json:"station"`
	// Elevation is the ground elevation (m) at the station.
	Elevation float64 `json:"elevation"`
}

// Roughness carries the Manning n per flow zone of an irregular section.
type Roughness struct {
	LeftOverbank  float64 `json:"left_overbank"`
	Channel       float64 `json:"channel"`
	RightOverbank float64 `json:"right_overbank"`
}

// IneffectiveArea marks a station range whose submerged area stores water but
// conveys none until the water surface exceeds the trigger elevation.
// Permanent areas never convey regardless of stage.
type IneffectiveArea struct {
	StartStation     float64 `json:"start_station"`
	EndStation       float64 `json:"end_station"`
	TriggerElevation float64 `json:"trigger_elevation"`
	Permanent        bool    `json:"permanent"`
}

// Levee blocks lateral spill past its station until the water surface
// exceeds the crest elevation.
type Levee struct {
	Station        float64 `json:"station"`
	CrestElevation float64 `json:"crest_elevation"`
}

// Obstruction is a blocked-out region (e.g. a building or embankment fill):
// ground within its extent is treated as raised to the top elevation.
type Obstruction struct {
	StartStation float64 `json:"start_station"`
	EndStation   float64 `json:"end_station"`
	TopElevation float64 `json:"top_elevation"`
}

// ReachLengths are the distances (m) to the next downstream cross-section,
// measured separately per flow zone for standard-step profile computations.
type ReachLengths struct {
	LeftOverbank  float64 `json:"left_overbank"`
	Channel       float64 `json:"channel"`
	RightOverbank float64 `json:"right_overbank"`
}

// Definition is the caller-supplied description of an irregular section.
// Points, bank stations and channel roughness are mandatory; everything else
// defaults to absent.
type Definition struct {
	Points    []Point
	LeftBank  float64
	RightBank float64
	Roughness Roughness

	Ineffective  []IneffectiveArea
	Levees       []Levee
	Obstructions []Obstruction
	Downstream   ReachLengths
}

// CrossSection is a validated, immutable irregular section. It implements
// the Section interface (depth measured above the section's minimum
// elevation), so every prismatic solver accepts it unchanged.
type CrossSection struct {
	def     Definition
	minElev float64
}

// NewCrossSection validates def and returns the section.
//
// Contracts:
//   - ≥ 2 survey points with strictly increasing stations.
//   - LeftBank ≤ RightBank, both inside the surveyed station range.
//   - Channel roughness > 0; overbank roughness > 0 where an overbank exists
//     (zero overbank n is tolerated when the bank station coincides with the
//     survey end, i.e. the zone is empty).
//
// Complexity: O(P) over the survey points.
func NewCrossSection(def Definition) (*CrossSection, error) {
	if len(def.Points) < 2 {
		return nil, ErrTooFewPoints
	}
	minElev := def.Points[0].Elevation
	for i := 1; i < len(def.Points); i++ {
		if def.Points[i].Station <= def.Points[i-1].Station {
			return nil, ErrStationOrder
		}
		if def.Points[i].Elevation < minElev {
			minElev = def.Points[i].Elevation
		}
	}

	first, last := def.Points[0].Station, def.Points[len(def.Points)-1].Station
	if def.LeftBank > def.RightBank || def.LeftBank < first || def.RightBank > last {
		return nil, ErrBankStations
	}

	if def.Roughness.Channel <= 0 {
		return nil, ErrRoughness
	}
	if def.LeftBank > first && def.Roughness.LeftOverbank <= 0 {
		return nil, ErrRoughness
	}
	if def.RightBank < last && def.Roughness.RightOverbank <= 0 {
		return nil, ErrRoughness
	}

	// Defensive copy: the section must stay immutable even if the caller
	// reuses the definition slices.
	cp := def
	cp.Points = append([]Point(nil), def.Points...)
	cp.Ineffective = append([]IneffectiveArea(nil), def.Ineffective...)
	cp.Levees = append([]Levee(nil), def.Levees...)
	cp.Obstructions = append([]Obstruction(nil), def.Obstructions...)

	return &CrossSection{def: cp, minElev: minElev}, nil
}

// MinElevation returns the lowest ground elevation of the section (m).
func (cs *CrossSection) MinElevation() float64 { return cs.minElev }

// Downstream returns the per-zone reach lengths to the next downstream section.
func (cs *CrossSection) Downstream() ReachLengths { return cs.def.Downstream }

// Roughness returns the per-zone Manning roughness.
func (cs *CrossSection) Roughness() Roughness { return cs.def.Roughness }

// ZoneProperties is the geometry and conveyance of one flow zone at a stage.
type ZoneProperties struct {
	Area            float64 `json:"area"`
	WettedPerimeter float64 `json:"wetted_perimeter"`
	TopWidth        float64 `json:"top_width"`
	// Conveyance is K = A·R^(2/3)/n (m³/s per unit √slope).
	Conveyance float64 `json:"conveyance"`
}

// Properties is the full hydraulic-geometry record of an irregular section at
// one water-surface elevation.
type Properties struct {
	WSEL float64 `json:"wsel"`

	Left    ZoneProperties `json:"left_overbank"`
	Channel ZoneProperties `json:"channel"`
	Right   ZoneProperties `json:"right_overbank"`

	// Totals over the three active zones.
	Area            float64 `json:"area"`
	WettedPerimeter float64 `json:"wetted_perimeter"`
	TopWidth        float64 `json:"top_width"`
	Conveyance      float64 `json:"conveyance"`
	HydraulicRadius float64 `json:"hydraulic_radius"`
	HydraulicDepth  float64 `json:"hydraulic_depth"`

	// StorageArea is submerged area inside ineffective-flow zones: it holds
	// water but contributes nothing to conveyance or top width.
	StorageArea float64 `json:"storage_area"`

	// Alpha is the velocity-head weighting coefficient from the zone
	// conveyance distribution (≥ 1; 1 for single-zone flow).
	Alpha float64 `json:"alpha"`
}

// Properties computes the section geometry at water-surface elevation wsel.
// A surface at or below the section minimum yields the zero record.
//
// Complexity: O(P + I·P) worst case with I ineffective areas; P survey points.
func (cs *CrossSection) Properties(wsel float64) Properties {
	out := Properties{WSEL: wsel}
	if wsel <= cs.minElev {
		return out
	}

	lo, hi := cs.activeWindow(wsel)

	pts := cs.def.Points
	for i := 0; i < len(pts)-1; i++ {
		cs.accumulateSegment(&out, pts[i], pts[i+1], wsel, lo, hi)
	}

	// Vertical-wall extension at the survey ends: when the surface rides
	// above an end point, the wall is wetted but adds no area or width.
	if wsel > pts[0].Elevation && lo <= pts[0].Station {
		out.Left.WettedPerimeter += wsel - pts[0].Elevation
	}
	if wsel > pts[len(pts)-1].Elevation && hi >= pts[len(pts)-1].Station {
		out.Right.WettedPerimeter += wsel - pts[len(pts)-1].Elevation
	}

	finishZone := func(z *ZoneProperties, n float64) {
		if z.Area <= 0 || z.WettedPerimeter <= 0 || n <= 0 {
			z.Conveyance = 0

			return
		}
		r := z.Area / z.WettedPerimeter
		z.Conveyance = z.Area * math.Pow(r, 2.0/3.0) / n
	}
	finishZone(&out.Left, cs.def.Roughness.LeftOverbank)
	finishZone(&out.Channel, cs.def.Roughness.Channel)
	finishZone(&out.Right, cs.def.Roughness.RightOverbank)

	out.Area = out.Left.Area + out.Channel.Area + out.Right.Area
	out.WettedPerimeter = out.Left.WettedPerimeter + out.Channel.WettedPerimeter + out.Right.WettedPerimeter
	out.TopWidth = out.Left.TopWidth + out.Channel.TopWidth + out.Right.TopWidth
	out.Conveyance = out.Left.Conveyance + out.Channel.Conveyance + out.Right.Conveyance
	if out.WettedPerimeter > 0 {
		out.HydraulicRadius = out.Area / out.WettedPerimeter
	}
	if out.TopWidth > 0 {
		out.HydraulicDepth = out.Area / out.TopWidth
	}
	out.Alpha = velocityAlpha(out)

	return out
}

// velocityAlpha computes the kinetic-energy correction coefficient
// α = (A² · Σ Kᵢ³/Aᵢ²) / K³ over the active zones.
func velocityAlpha(p Properties) float64 {
	if p.Conveyance <= 0 || p.Area <= 0 {
		return 1
	}
	sum := 0.0
	for _, z := range [3]ZoneProperties{p.Left, p.Channel, p.Right} {
		if z.Area > 0 && z.Conveyance > 0 {
			sum += z.Conveyance * z.Conveyance * z.Conveyance / (z.Area * z.Area)
		}
	}
	alpha := p.Area * p.Area * sum / (p.Conveyance * p.Conveyance * p.Conveyance)
	if alpha < 1 {
		return 1
	}

	return alpha
}

// activeWindow returns the station window [lo, hi] open to flow at wsel:
// levees below the surface pinch the window to their station.
func (cs *CrossSection) activeWindow(wsel float64) (lo, hi float64) {
	pts := cs.def.Points
	lo, hi = pts[0].Station, pts[len(pts)-1].Station
	for _, lv := range cs.def.Levees {
		if wsel > lv.CrestElevation {
			continue // overtopped: no constraint
		}
		if lv.Station <= cs.def.LeftBank && lv.Station > lo {
			lo = lv.Station
		}
		if lv.Station >= cs.def.RightBank && lv.Station < hi {
			hi = lv.Station
		}
	}

	return lo, hi
}

// groundAt returns the effective ground elevation at the given station on the
// segment p1→p2, raised through any obstruction covering the station.
func (cs *CrossSection) groundAt(p1, p2 Point, sta float64) float64 {
	frac := (sta - p1.Station) / (p2.Station - p1.Station)
	elev := p1.Elevation + frac*(p2.Elevation-p1.Elevation)
	for _, ob := range cs.def.Obstructions {
		if sta >= ob.StartStation && sta <= ob.EndStation && ob.TopElevation > elev {
			elev = ob.TopElevation
		}
	}

	return elev
}

// ineffectiveAt reports whether the station lies in an ineffective-flow area
// that is still inactive at wsel.
func (cs *CrossSection) ineffectiveAt(sta, wsel float64) bool {
	for _, ia := range cs.def.Ineffective {
		if sta < ia.StartStation || sta > ia.EndStation {
			continue
		}
		if ia.Permanent || wsel <= ia.TriggerElevation {
			return true
		}
	}

	return false
}

// segmentSlices is the subdivision count used when a segment crosses
// obstruction or ineffective boundaries; fine enough for survey-grade data.
const segmentSlices = 8

// accumulateSegment integrates one ground segment into the per-zone tallies,
// clipping to the water surface, the active window and the zone boundaries.
func (cs *CrossSection) accumulateSegment(out *Properties, p1, p2 Point, wsel, lo, hi float64) {
	left, right := p1.Station, p2.Station
	if left < lo {
		left = lo
	}
	if right > hi {
		right = hi
	}
	if right <= left {
		return
	}

	// Split at the bank stations so each slice lies in exactly one zone.
	cuts := [4]float64{left, right, right, right}
	n := 2
	if cs.def.LeftBank > left && cs.def.LeftBank < right {
		cuts[n] = cs.def.LeftBank
		n++
	}
	if cs.def.RightBank > left && cs.def.RightBank < right {
		cuts[n] = cs.def.RightBank
		n++
	}
	// Tiny fixed-size sort (n ≤ 4).
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cuts[j] < cuts[i] {
				cuts[i], cuts[j] = cuts[j], cuts[i]
			}
		}
	}

	for i := 0; i < n-1; i++ {
		a, b := cuts[i], cuts[i+1]
		if b <= a {
			continue
		}
		zone := cs.zoneOf((a + b) / 2)
		cs.integrateSlice(out, zone, p1, p2, a, b, wsel)
	}
}

// zoneOf maps a station to its flow zone: 0 = left overbank, 1 = channel,
// 2 = right overbank.
func (cs *CrossSection) zoneOf(sta float64) int {
	switch {
	case sta < cs.def.LeftBank:
		return 0
	case sta > cs.def.RightBank:
		return 2
	default:
		return 1
	}
}

// integrateSlice integrates the sub-segment [a, b] of p1→p2 into one zone's
// tallies. The slice is further subdivided so obstruction steps and
// ineffective boundaries resolve without explicit intersection bookkeeping.
func (cs *CrossSection) integrateSlice(out *Properties, zone int, p1, p2 Point, a, b, wsel float64) {
	z := &out.Channel
	switch zone {
	case 0:
		z = &out.Left
	case 2:
		z = &out.Right
	}

	step := (b - a) / segmentSlices
	for i := 0; i < segmentSlices; i++ {
		sa, sb := a+float64(i)*step, a+float64(i+1)*step
		ga, gb := cs.groundAt(p1, p2, sa), cs.groundAt(p1, p2, sb)
		da, db := wsel-ga, wsel-gb
		if da <= 0 && db <= 0 {
			continue // slice fully dry
		}

		// Clip a partially submerged slice at the waterline crossing.
		w := sb - sa
		if da < 0 {
			frac := db / (db - da)
			w *= frac
			da = 0
		} else if db < 0 {
			frac := da / (da - db)
			w *= frac
			db = 0
		}

		area := (da + db) / 2 * w
		dz := da - db
		perim := math.Sqrt(w*w + dz*dz)

		mid := (sa + sb) / 2
		if cs.ineffectiveAt(mid, wsel) {
			out.StorageArea += area

			continue
		}

		z.Area += area
		z.WettedPerimeter += perim
		z.TopWidth += w
	}
}

// --- Section interface -----------------------------------------------------

// Area returns the effective flow area at a depth above the section minimum.
func (cs *CrossSection) Area(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return cs.Properties(cs.minElev + depth).Area
}

// WettedPerimeter returns the wetted perimeter at a depth above the minimum.
func (cs *CrossSection) WettedPerimeter(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return cs.Properties(cs.minElev + depth).WettedPerimeter
}

// TopWidth returns the active-flow top width at a depth above the minimum.
func (cs *CrossSection) TopWidth(depth float64) float64 {
	if depth <= 0 {
		return 0
	}

	return cs.Properties(cs.minElev + depth).TopWidth
}

// MaxDepth reports an open top: the survey is extended by vertical walls.
func (cs *CrossSection) MaxDepth() float64 { return math.Inf(1) }
