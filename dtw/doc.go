// SPDX-License-Identifier: MIT

// Package dtw aligns two index ranges with Dynamic Time Warping (DTW).
//
// What is DTW?
//
//	DTW finds the cheapest monotone path through the lattice of index pairs
//	(i, j) of two sequences, so that equivalent instants of two recordings
//	that move at different speeds end up paired with each other. It is used
//	here to re-time one animated scene against another:
//	  • simulated vs. recorded robot trajectories
//	  • gesture / motion matching
//	  • any pair of numeric series sampled on a shared clock
//
// Key features:
//   - generic cost: the lattice is driven by a CostFunc(i, j), so callers can
//     compare anything that can be indexed (positions, joint angles, sums).
//   - full cumulative matrix exposed via Accumulate for diagnostics and plots.
//   - deterministic backtrace with a fixed tie-break policy (see Matrix.Path).
//   - optional Sakoe-Chiba window (|i-j| ≤ w).
//   - series helpers (AlignSeries, DTW) with a rolling two-row distance mode.
//
// Recurrence (0-based, no sentinel row/column):
//
//	C[0][0] = cost(0,0)
//	C[i][0] = cost(i,0) + C[i-1][0]                       i > 0
//	C[0][j] = cost(0,j) + C[0][j-1]                       j > 0
//	C[i][j] = cost(i,j) + min(C[i-1][j], C[i-1][j-1], C[i][j-1])
//
// Usage:
//
//	path := dtw.Align(n, m, func(i, j int) float64 {
//	    return math.Abs(a[i] - b[j])
//	})
//	for k := 0; k < path.Len(); k++ {
//	    c := path.At(k) // c.I indexes a, c.J indexes b
//	}
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, distance only)
package dtw
