// Package culvert - HDS-5 inlet-control coefficient table.
//
// Process-wide immutable configuration data (HDS-5 appendix A, charts 1 and
// 8): never mutated after init. Each row carries the unsubmerged (K, M) and
// submerged (c, Y) equation constants plus the entrance loss ke used under
// outlet control.
package culvert

// inletRow is one coefficient row of the HDS-5 table.
type inletRow struct {
	K, M float64 // unsubmerged (form 1)
	C, Y float64 // submerged (orifice)
	Ke   float64 // entrance loss coefficient
}

// inletKey pairs a barrel shape with an inlet configuration.
type inletKey struct {
	shape barrelShape
	inlet InletConfig
}

// inletCoefficients maps shape+inlet to its published coefficient row.
var inletCoefficients = map[inletKey]inletRow{
	{shapeCircular, SquareEdgeHeadwall}:  {K: 0.0098, M: 2.00, C: 0.0398, Y: 0.67, Ke: 0.5},
	{shapeCircular, GrooveEndHeadwall}:   {K: 0.0018, M: 2.00, C: 0.0292, Y: 0.74, Ke: 0.2},
	{shapeCircular, GrooveEndProjecting}: {K: 0.0045, M: 2.00, C: 0.0317, Y: 0.69, Ke: 0.2},
	{shapeBox, WingwallFlared}:           {K: 0.026, M: 1.00, C: 0.0347, Y: 0.81, Ke: 0.4},
	{shapeBox, WingwallSquare}:           {K: 0.061, M: 0.75, C: 0.0423, Y: 0.82, Ke: 0.5},
	{shapeBox, WingwallParallel}:         {K: 0.061, M: 0.75, C: 0.0423, Y: 0.80, Ke: 0.7},
}

// coefficientsFor resolves the row for a culvert, or ErrInletConfig.
func coefficientsFor(c Culvert) (inletRow, error) {
	row, ok := inletCoefficients[inletKey{shape: c.Barrel.shape(), inlet: c.Inlet}]
	if !ok {
		return inletRow{}, ErrInletConfig
	}

	return row, nil
}
