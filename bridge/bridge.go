// Package bridge - definitions and the backwater solver.
package bridge

import (
	"errors"
	"math"

	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// Sentinel errors.
var (
	// ErrGeometry indicates inconsistent bridge geometry.
	ErrGeometry = errors.New("bridge: invalid bridge geometry")

	// ErrDischarge indicates a non-positive discharge.
	ErrDischarge = errors.New("bridge: discharge must be positive")

	// ErrTailwater indicates a downstream surface at or below the bed.
	ErrTailwater = errors.New("bridge: downstream surface must clear the bed")
)

// Energy-iteration contract.
const (
	// EnergyTol is the upstream-stage closure tolerance (m).
	EnergyTol = 1e-4

	// MaxEnergyIterations caps the low-flow fixed point and the
	// combined-flow bisection.
	MaxEnergyIterations = 50
)

// Default loss coefficients.
const (
	// DefaultContraction applies to flow accelerating into the opening.
	DefaultContraction = 0.3

	// DefaultExpansion applies to flow re-expanding downstream.
	DefaultExpansion = 0.5

	// DefaultOrificeC is the pressure-flow discharge coefficient.
	DefaultOrificeC = 0.8

	// DefaultDeckWeirC is the deck-overtopping weir coefficient (SI).
	DefaultDeckWeirC = 1.7
)

// WarnNoConvergence flags an energy balance that exhausted its cap.
const WarnNoConvergence = "energy iteration reached cap; returning best estimate"

// WarnPressureFlow flags submergence of the low chord.
const WarnPressureFlow = "water surface reaches the low chord; orifice (pressure) flow"

// WarnDeckOvertopping flags flow over the roadway.
const WarnDeckOvertopping = "water surface tops the high chord; deck acts as a weir"

// PierShape keys the Yarnell pier coefficient.
type PierShape string

// Pier shapes with published Yarnell K values.
const (
	SemicircularPier PierShape = "semicircular" // K = 0.90
	RoundedPier      PierShape = "rounded"      // K = 0.95
	TriangularPier   PierShape = "triangular"   // K = 1.05
	SquarePier       PierShape = "square"       // K = 1.25
)

// yarnellK maps pier shape to its coefficient; unknown shapes fall back to
// the conservative square-nose value.
var yarnellK = map[PierShape]float64{
	SemicircularPier: 0.90,
	RoundedPier:      0.95,
	TriangularPier:   1.05,
	SquarePier:       1.25,
}

// Piers describes the in-channel pier layout.
type Piers struct {
	// Count is the number of piers in the waterway.
	Count int
	// Width is the individual pier width normal to flow (m).
	Width float64
	// Shape selects the Yarnell coefficient.
	Shape PierShape
}

// Bridge is an immutable bridge-crossing definition over a rectangular
// channel reach.
type Bridge struct {
	// ChannelWidth is the natural channel width up/downstream (m).
	ChannelWidth float64
	// OpeningWidth is the clear waterway opening between abutments (m).
	OpeningWidth float64
	// BedElevation is the channel invert at the crossing (m).
	BedElevation float64
	// LowChord and HighChord are the girder soffit and deck-top elevations (m).
	LowChord  float64
	HighChord float64
	// DeckLength is the roadway length acting as an overflow crest (m).
	DeckLength float64
	// Piers is the pier layout (zero value: no piers).
	Piers Piers
	// Roughness is Manning's n of the reach.
	Roughness float64
	// ApproachReach is the distance from the approach section to the
	// bridge (m), over which friction loss accrues.
	ApproachReach float64
	// Contraction, Expansion, OrificeC and DeckWeirC override the package
	// defaults when positive.
	Contraction float64
	Expansion   float64
	OrificeC    float64
	DeckWeirC   float64
}

// FlowType is the escalating bridge-flow regime.
type FlowType string

// Flow regimes.
const (
	LowFlow      FlowType = "low_flow"
	PressureFlow FlowType = "pressure_flow"
	WeirFlow     FlowType = "weir_flow"
)

// Losses itemizes the energy losses of a low-flow balance (m).
type Losses struct {
	Friction   float64 `json:"friction"`
	Transition float64 `json:"transition"`
	Pier       float64 `json:"pier"`
}

// Result is the backwater analysis record.
type Result struct {
	// UpstreamWSEL is the balanced upstream water surface (m).
	UpstreamWSEL float64 `json:"upstream_wsel"`
	// DownstreamWSEL echoes the boundary condition (m).
	DownstreamWSEL float64 `json:"downstream_wsel"`
	// Backwater is the upstream rise over the downstream surface (m).
	Backwater float64 `json:"backwater"`
	// Type is the governing flow regime.
	Type FlowType `json:"type"`
	// Losses itemizes the low-flow energy losses.
	Losses Losses `json:"losses"`
	// DeckDischarge is the flow share overtopping the deck (m³/s).
	DeckDischarge float64 `json:"deck_discharge"`

	Warnings []string `json:"warnings"`
}

// Analyze balances the energy equation for q against the downstream surface.
//
// Contracts:
//   - 0 < OpeningWidth ≤ ChannelWidth; LowChord > BedElevation;
//     HighChord ≥ LowChord; pier blockage must leave a positive net opening;
//     Roughness > 0; q > 0; downstreamWSEL > BedElevation.
//
// The regime escalates per the package doc; all numeric degradation becomes
// warnings on the Result.
func Analyze(b Bridge, q, downstreamWSEL float64) (Result, error) {
	if err := validate(b); err != nil {
		return Result{}, err
	}
	if q <= 0 {
		return Result{}, ErrDischarge
	}
	if downstreamWSEL <= b.BedElevation {
		return Result{}, ErrTailwater
	}

	res := Result{DownstreamWSEL: downstreamWSEL, Type: LowFlow, Warnings: []string{}}

	lowFlow(&res, b, q, downstreamWSEL)

	if res.UpstreamWSEL >= b.LowChord {
		pressureFlow(&res, b, q, downstreamWSEL)
	}
	if res.UpstreamWSEL > b.HighChord && b.DeckLength > 0 {
		combinedFlow(&res, b, q, downstreamWSEL)
	}

	res.Backwater = res.UpstreamWSEL - downstreamWSEL

	return res, nil
}

// validate rejects inconsistent bridge definitions.
func validate(b Bridge) error {
	if b.ChannelWidth <= 0 || b.OpeningWidth <= 0 || b.OpeningWidth > b.ChannelWidth {
		return ErrGeometry
	}
	if b.LowChord <= b.BedElevation || b.HighChord < b.LowChord {
		return ErrGeometry
	}
	if b.Piers.Count < 0 || b.Piers.Width < 0 {
		return ErrGeometry
	}
	if b.netOpening() <= 0 {
		return ErrGeometry
	}
	if b.Roughness <= 0 {
		return ErrGeometry
	}

	return nil
}

// netOpening returns the opening width minus pier blockage (m).
func (b Bridge) netOpening() float64 {
	return b.OpeningWidth - float64(b.Piers.Count)*b.Piers.Width
}

// coefficient helpers resolving optional overrides.
func (b Bridge) contraction() float64 { return positiveOr(b.Contraction, DefaultContraction) }
func (b Bridge) expansion() float64   { return positiveOr(b.Expansion, DefaultExpansion) }
func (b Bridge) orificeC() float64    { return positiveOr(b.OrificeC, DefaultOrificeC) }
func (b Bridge) deckWeirC() float64   { return positiveOr(b.DeckWeirC, DefaultDeckWeirC) }

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}

	return fallback
}

// lowFlow balances the open-channel energy equation by fixed point on the
// upstream stage.
func lowFlow(res *Result, b Bridge, q, wsDown float64) {
	channel, _ := section.NewRectangular(b.ChannelWidth)

	yDown := wsDown - b.BedElevation
	vDown := q / (b.ChannelWidth * yDown)
	headDown := vDown * vDown / (2 * hydraulics.Gravity)

	// Yarnell pier swell, evaluated at the downstream section.
	pier := pierLoss(b, yDown, vDown)

	kDown := hydraulics.Conveyance(channel, yDown, b.Roughness)

	ws := wsDown
	converged := false
	for i := 0; i < MaxEnergyIterations; i++ {
		yUp := ws - b.BedElevation
		if yUp <= 0 {
			yUp = yDown
		}
		vUp := q / (b.ChannelWidth * yUp)
		headUp := vUp * vUp / (2 * hydraulics.Gravity)

		// Velocity head inside the contracted opening.
		vOpen := q / (b.netOpening() * yUp)
		headOpen := vOpen * vOpen / (2 * hydraulics.Gravity)

		// Transition losses: contraction entering + expansion leaving.
		transition := b.contraction()*math.Max(headOpen-headUp, 0) +
			b.expansion()*math.Max(headOpen-headDown, 0)

		// Average-conveyance friction over the approach: h_f = L·(Q/K̄)².
		kBar := (kDown + hydraulics.Conveyance(channel, yUp, b.Roughness)) / 2
		ratio := q / kBar
		friction := b.ApproachReach * ratio * ratio

		next := wsDown + headDown - headUp + friction + transition + pier

		res.Losses = Losses{Friction: friction, Transition: transition, Pier: pier}
		if math.Abs(next-ws) <= EnergyTol {
			ws = next
			converged = true

			break
		}
		ws = (next + ws) / 2
	}
	if !converged {
		res.Warnings = append(res.Warnings, WarnNoConvergence)
	}
	res.UpstreamWSEL = ws
}

// pierLoss evaluates the Yarnell equation at the downstream section.
func pierLoss(b Bridge, yDown, vDown float64) float64 {
	if b.Piers.Count == 0 || b.Piers.Width == 0 {
		return 0
	}
	k, ok := yarnellK[b.Piers.Shape]
	if !ok {
		k = yarnellK[SquarePier] // conservative fallback for unknown shapes
	}

	alpha := float64(b.Piers.Count) * b.Piers.Width / b.ChannelWidth
	head := vDown * vDown / (2 * hydraulics.Gravity)
	omega := head / yDown // Fr²/2 of the downstream section

	return 2 * k * (k + 10*omega - 0.6) * (alpha + 15*math.Pow(alpha, 4)) * head
}

// pressureFlow re-solves the opening as a sluice orifice.
func pressureFlow(res *Result, b Bridge, q, wsDown float64) {
	z := b.LowChord - b.BedElevation
	area := b.netOpening() * z

	// Q = C·A·√(2g·(y₁ − Z/2))  ⇒  y₁ = (Q/CA)²/2g + Z/2.
	ratio := q / (b.orificeC() * area)
	yUp := ratio*ratio/(2*hydraulics.Gravity) + z/2

	// The orifice rating supersedes the open-channel estimate, floored at
	// the low chord (the branch is only entered once the chord is wet) and
	// at the tailwater.
	ws := b.BedElevation + yUp
	ws = math.Max(ws, b.LowChord)
	ws = math.Max(ws, wsDown)
	res.UpstreamWSEL = ws
	res.Type = PressureFlow
	res.Warnings = append(res.Warnings, WarnPressureFlow)
}

// combinedFlow splits q between the orifice and deck weir by bisection on
// the upstream stage; the combined rating is strictly increasing.
func combinedFlow(res *Result, b Bridge, q, wsDown float64) {
	z := b.LowChord - b.BedElevation
	area := b.netOpening() * z

	rating := func(ws float64) (total, deck float64) {
		head := ws - b.BedElevation - z/2
		if head <= 0 {
			return 0, 0
		}
		orifice := b.orificeC() * area * math.Sqrt(2*hydraulics.Gravity*head)
		if over := ws - b.HighChord; over > 0 {
			deck = b.deckWeirC() * b.DeckLength * math.Pow(over, 1.5)
		}

		return orifice + deck, deck
	}

	lo := b.HighChord
	hi := res.UpstreamWSEL
	if total, _ := rating(hi); total < q {
		// Expand until the rating covers q.
		for i := 0; i < MaxEnergyIterations; i++ {
			hi += math.Max(z, 1)
			if total, _ := rating(hi); total >= q {
				break
			}
		}
	}
	for i := 0; i < MaxEnergyIterations; i++ {
		mid := (lo + hi) / 2
		if total, _ := rating(mid); total < q {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= EnergyTol {
			break
		}
	}

	ws := (lo + hi) / 2
	if ws < wsDown {
		ws = wsDown
	}
	_, deck := rating(ws)
	res.UpstreamWSEL = ws
	res.DeckDischarge = deck
	res.Type = WeirFlow
	res.Warnings = append(res.Warnings, WarnDeckOvertopping)
}
