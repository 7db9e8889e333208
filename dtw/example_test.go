// SPDX-License-Identifier: MIT

package dtw_test

import (
	"fmt"
	"math"

	"github.com/uwgraphics/MotionComparator-sub002/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A robot that stays still for three samples vs. one that moves away.
//	  a = [0, 0, 0]
//	  b = [0, 5, 10]
//
// Effect:
//
//	Every sample of a is matched to b[0] before the path walks along b.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign() {
	a := []float64{0, 0, 0}
	b := []float64{0, 5, 10}

	path := dtw.Align(len(a), len(b), func(i, j int) float64 {
		return math.Abs(a[i] - b[j])
	})
	fmt.Println("is:", path.I)
	fmt.Println("js:", path.J)
	// Output:
	// is: [0 1 2 2 2]
	// js: [0 0 0 1 2]
}

// ExampleAccumulate prints the total alignment cost of the same lattice.
func ExampleAccumulate() {
	a := []float64{0, 0, 0}
	b := []float64{0, 5, 10}

	mx, err := dtw.Accumulate(len(a), len(b), func(i, j int) float64 {
		return math.Abs(a[i] - b[j])
	}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\n", mx.Distance())
	// Output:
	// distance=15
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A recording that holds its middle value one sample longer.
//	  a = [1, 2, 3]
//	  b = [1, 2, 2, 3]
//
// Options:
//   - ReturnPath = true
//   - MemoryMode = FullMatrix
func ExampleDTW() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}
