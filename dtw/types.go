// SPDX-License-Identifier: MIT

package dtw

import "errors"

// Sentinel errors returned by the dtw package.
var (
	// ErrEmptyInput indicates one or both input series are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (e.g. Window < -1).
	ErrBadInput = errors.New("dtw: invalid option value")

	// ErrPathNeedsMatrix indicates that path recovery requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrWindowTooNarrow indicates that the window cannot reach (n-1, m-1),
	// i.e. |n-m| exceeds Window.
	ErrWindowTooNarrow = errors.New("dtw: window too narrow for sequence lengths")

	// ErrBadCost indicates the cost function returned NaN.
	ErrBadCost = errors.New("dtw: cost function returned NaN")

	// ErrBadPath indicates a path that is not a valid monotone alignment.
	ErrBadPath = errors.New("dtw: invalid alignment path")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire n×m matrix in memory.
//     Allows distance + backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows: only keep the current and previous row.
//     Reduces memory to O(m), but cannot recover the path.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only two rows; distance only.
	TwoRows
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe-Chiba band).
//     -1 means unlimited; 0 allows the diagonal only.
//   - ReturnPath: DTW only: backtrack and return the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: DTW only: FullMatrix or TwoRows. Accumulate always
//     keeps the full matrix.
type Options struct {
	Window     int
	ReturnPath bool
	MemoryMode MemoryMode
}

// DefaultOptions returns unlimited window, full matrix, no path.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		ReturnPath: false,
		MemoryMode: FullMatrix,
	}
}

// CostFunc returns the local cost of pairing index i of the first range
// with index j of the second. It must not return NaN.
type CostFunc func(i, j int) float64

// SeriesDist is the per-pair distance used by the series helpers. It receives
// both values and both indices, so callers may ignore the values entirely and
// look up richer per-index data.
type SeriesDist func(av, bv float64, i, j int) float64

// AbsDiff is the default SeriesDist: |av - bv|.
func AbsDiff(av, bv float64, _, _ int) float64 {
	if av > bv {
		return av - bv
	}
	return bv - av
}

// Coord is one cell (I, J) of the alignment lattice.
type Coord struct {
	I, J int
}

// Path is an alignment stored as two parallel index arrays, ascending from
// (0,0) to (n-1,m-1). I[k] pairs with J[k].
type Path struct {
	I []int
	J []int
}

// Len returns the number of pairs in the path.
func (p Path) Len() int { return len(p.I) }

// At returns the k-th pair.
func (p Path) At(k int) Coord { return Coord{I: p.I[k], J: p.J[k]} }

// Coords returns the path as a slice of Coord.
func (p Path) Coords() []Coord {
	out := make([]Coord, len(p.I))
	for k := range p.I {
		out[k] = Coord{I: p.I[k], J: p.J[k]}
	}
	return out
}
