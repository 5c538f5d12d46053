package jump_test

import (
	"fmt"

	"github.com/katalvlaran/openchannel/jump"
	"github.com/katalvlaran/openchannel/section"
)

// A supercritical stream of 10 m³/s enters a 3 m rectangular flume at 0.30 m
// depth; the jump record gives the sequent depth and the USBR class.
func ExampleAnalyze() {
	flume, err := section.NewRectangular(3.0)
	if err != nil {
		fmt.Println("section:", err)

		return
	}

	res, err := jump.Analyze(flume, 0.30, 10.0)
	if err != nil {
		fmt.Println("analyze:", err)

		return
	}

	fmt.Printf("upstream Froude: %.2f\n", res.UpstreamFroude)
	fmt.Printf("sequent depth: %.2f m\n", res.SequentDepth)
	fmt.Printf("class: %s\n", res.Type)
	// Output:
	// upstream Froude: 6.48
	// sequent depth: 2.60 m
	// class: steady
}
