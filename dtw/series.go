// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// AlignSeries aligns two numeric series with the given per-pair distance.
// A nil dist uses AbsDiff. Empty input yields an empty Path.
//
// The series values are handed to dist alongside their indices, so the
// values may be timestamps while the real comparison happens on data
// looked up by index.
func AlignSeries(a, b []float64, dist SeriesDist) Path {
	if dist == nil {
		dist = AbsDiff
	}
	return Align(len(a), len(b), func(i, j int) float64 {
		return dist(a[i], b[j], i, j)
	})
}

// DTW computes the Dynamic Time Warping distance between a and b using
// |a[i]-b[j]| as the local cost. Returns (distance, path, error).
//
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
// A nil opts means DefaultOptions().
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(seqA, seqB, &opts)
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	cost := func(i, j int) float64 { return math.Abs(a[i] - b[j]) }

	if o.MemoryMode == TwoRows {
		return twoRows(n, m, cost, o.Window)
	}

	mx, err := Accumulate(n, m, cost, &o)
	if err != nil {
		return 0, nil, fmt.Errorf("dtw: accumulate: %w", err)
	}
	if o.ReturnPath {
		path = mx.Path().Coords()
	}

	return mx.Distance(), path, nil
}

// twoRows computes only the final distance with a rolling pair of rows.
// Memory: O(m).
func twoRows(n, m int, cost CostFunc, window int) (float64, []Coord, error) {
	if window >= 0 && abs(n-m) > window {
		return 0, nil, ErrWindowTooNarrow
	}

	prev := make([]float64, m)
	curr := make([]float64, m)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if window >= 0 && abs(i-j) > window {
				curr[j] = inf
				continue
			}
			var best float64
			switch {
			case i > 0 && j > 0:
				best = min3(prev[j], prev[j-1], curr[j-1])
			case i > 0:
				best = prev[j]
			case j > 0:
				best = curr[j-1]
			}
			curr[j] = cost(i, j) + best
		}
		prev, curr = curr, prev
	}

	return prev[m-1], nil, nil
}
