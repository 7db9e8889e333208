// SPDX-License-Identifier: MIT

package timewarp_test

import (
	"fmt"

	"github.com/uwgraphics/MotionComparator-sub002/timewarp"
)

// ExampleMap_Forward shows a target scene that runs half as fast as the base
// for its first second.
func ExampleMap_Forward() {
	m := timewarp.New(
		[]float64{0, 0.5, 1, 1.5, 2},
		[]float64{0, 0.25, 0.5, 1.25, 2},
	)
	for _, t := range []float64{-1, 0.5, 1, 1.2, 3} {
		fmt.Printf("%.2f -> %.2f\n", t, m.Forward(t))
	}
	// Output:
	// -1.00 -> 0.00
	// 0.50 -> 0.25
	// 1.00 -> 0.50
	// 1.20 -> 1.25
	// 3.00 -> 2.00
}
