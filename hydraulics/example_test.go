package hydraulics_test

import (
	"fmt"

	"github.com/katalvlaran/openchannel/hydraulics"
	"github.com/katalvlaran/openchannel/section"
)

// ExampleNormalDepth sizes a concrete-lined rectangular channel:
// b = 3 m, n = 0.013, S = 0.001, Q = 10 m³/s.
func ExampleNormalDepth() {
	rect, _ := section.NewRectangular(3.0)

	sol, _ := hydraulics.NormalDepth(rect, 10.0, 0.013, 0.001, hydraulics.DefaultOptions())
	fr := hydraulics.Froude(rect, sol.Depth, 10.0)

	fmt.Printf("normal depth: %.2f m\n", sol.Depth)
	fmt.Printf("regime: %s\n", hydraulics.ClassifyRegime(fr))
	// Output:
	// normal depth: 1.62 m
	// regime: subcritical
}
