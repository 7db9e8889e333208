// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"
)

// Matrix is the cumulative cost lattice produced by Accumulate.
// Cell (i, j) holds the minimum cumulative cost of any monotone path from
// (0,0) to (i,j). Cells outside the window hold +Inf.
type Matrix struct {
	rows, cols int
	cells      []float64 // row-major, rows*cols
}

// Accumulate fills the cumulative cost matrix for index ranges [0,n) × [0,m).
//
// Algorithm:
//  1. Validate options (Window ≥ -1, band reaches (n-1, m-1)).
//  2. For i = 0..n-1, j = 0..m-1 (inside the band):
//     C[i][j] = cost(i,j) + min(legal predecessors)
//     where (0,0) has none, row 0 only has the left cell, column 0 only
//     the cell above, and interior cells take min(up, diagonal, left).
//
// If n ≤ 0 or m ≤ 0 an empty matrix is returned; its Path is empty.
//
// Errors:
//   - ErrBadInput        if opts.Window < -1.
//   - ErrWindowTooNarrow if |n-m| > opts.Window ≥ 0.
//   - ErrBadCost         if cost returns NaN (wrapped with the cell index).
//
// Complexity: O(n·m) time and memory.
func Accumulate(n, m int, cost CostFunc, opts *Options) (*Matrix, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return nil, ErrBadInput
	}
	if n <= 0 || m <= 0 {
		return &Matrix{}, nil
	}
	if o.Window >= 0 && abs(n-m) > o.Window {
		return nil, ErrWindowTooNarrow
	}

	cells := make([]float64, n*m)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		row := i * m
		for j := 0; j < m; j++ {
			if o.Window >= 0 && abs(i-j) > o.Window {
				cells[row+j] = inf
				continue
			}
			c := cost(i, j)
			if math.IsNaN(c) {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrBadCost)
			}
			var best float64
			switch {
			case i > 0 && j > 0:
				best = min3(cells[row-m+j], cells[row-m+j-1], cells[row+j-1])
			case i > 0:
				best = cells[row-m]
			case j > 0:
				best = cells[row+j-1]
			}
			cells[row+j] = c + best
		}
	}

	return &Matrix{rows: n, cols: m, cells: cells}, nil
}

// Align returns the lowest-cumulative-cost monotone path through the n×m
// lattice described by cost. It returns an empty Path when n == 0 or m == 0.
//
// Align has no window; a NaN cost is a programming error and panics.
func Align(n, m int, cost CostFunc) Path {
	mx, err := Accumulate(n, m, cost, nil)
	if err != nil {
		panic(err)
	}
	return mx.Path()
}

// Rows returns n.
func (mx *Matrix) Rows() int { return mx.rows }

// Cols returns m.
func (mx *Matrix) Cols() int { return mx.cols }

// At returns the cumulative cost at (i, j). It panics if out of range.
func (mx *Matrix) At(i, j int) float64 {
	if i < 0 || i >= mx.rows || j < 0 || j >= mx.cols {
		panic(fmt.Sprintf("dtw: index (%d,%d) out of range %dx%d", i, j, mx.rows, mx.cols))
	}
	return mx.cells[i*mx.cols+j]
}

// Distance returns the total alignment cost C[n-1][m-1], or 0 for an empty matrix.
func (mx *Matrix) Distance() float64 {
	if len(mx.cells) == 0 {
		return 0
	}
	return mx.cells[len(mx.cells)-1]
}

// Path backtraces from (n-1, m-1) to (0,0) and returns the path in
// ascending order.
//
// Tie-break at interior cells, with strict comparisons:
//
//	if up < diag:   step up   if up < left,   else step left
//	else:           step diag if diag < left, else step left
//
// where up = C[i-1][j], diag = C[i-1][j-1], left = C[i][j-1]. Ties always
// resolve to the left step, never to the up step. On row 0 the only legal
// step is left, on column 0 it is up.
//
// Complexity: O(n+m).
func (mx *Matrix) Path() Path {
	if mx.rows == 0 || mx.cols == 0 {
		return Path{}
	}

	i, j := mx.rows-1, mx.cols-1
	is := make([]int, 0, mx.rows+mx.cols-1)
	js := make([]int, 0, mx.rows+mx.cols-1)
	is, js = append(is, i), append(js, j)

	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			up := mx.cells[(i-1)*mx.cols+j]
			diag := mx.cells[(i-1)*mx.cols+j-1]
			left := mx.cells[i*mx.cols+j-1]
			if up < diag {
				if up < left {
					i--
				} else {
					j--
				}
			} else {
				if diag < left {
					i--
					j--
				} else {
					j--
				}
			}
		}
		is, js = append(is, i), append(js, j)
	}

	// reverse in-place
	for l, r := 0, len(is)-1; l < r; l, r = l+1, r-1 {
		is[l], is[r] = is[r], is[l]
		js[l], js[r] = js[r], js[l]
	}

	return Path{I: is, J: js}
}

// Validate checks that p is a legal alignment of [0,n) × [0,m): parallel
// arrays, starts at (0,0), ends at (n-1,m-1), and every step advances i, j,
// or both by exactly one. For n == 0 or m == 0 the path must be empty.
func (p Path) Validate(n, m int) error {
	if len(p.I) != len(p.J) {
		return fmt.Errorf("parallel arrays differ (%d vs %d): %w", len(p.I), len(p.J), ErrBadPath)
	}
	if n <= 0 || m <= 0 {
		if len(p.I) != 0 {
			return fmt.Errorf("non-empty path for empty range: %w", ErrBadPath)
		}
		return nil
	}
	if len(p.I) == 0 {
		return fmt.Errorf("empty path: %w", ErrBadPath)
	}
	if p.I[0] != 0 || p.J[0] != 0 {
		return fmt.Errorf("path starts at (%d,%d): %w", p.I[0], p.J[0], ErrBadPath)
	}
	last := len(p.I) - 1
	if p.I[last] != n-1 || p.J[last] != m-1 {
		return fmt.Errorf("path ends at (%d,%d), want (%d,%d): %w", p.I[last], p.J[last], n-1, m-1, ErrBadPath)
	}
	for k := 1; k <= last; k++ {
		di, dj := p.I[k]-p.I[k-1], p.J[k]-p.J[k-1]
		if di < 0 || di > 1 || dj < 0 || dj > 1 || (di == 0 && dj == 0) {
			return fmt.Errorf("illegal step %d: (%d,%d)->(%d,%d): %w", k, p.I[k-1], p.J[k-1], p.I[k], p.J[k], ErrBadPath)
		}
	}

	return nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
