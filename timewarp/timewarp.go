// SPDX-License-Identifier: MIT

package timewarp

import (
	"fmt"
	"math"
	"sort"

	"github.com/uwgraphics/MotionComparator-sub002/dtw"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLengthMismatch = "timewarp: base and other times differ in length"
	panicNotAscending   = "timewarp: %s times not ascending at index %d (%g after %g)"
	panicPathIndex      = "timewarp: path index %d out of timeline range %d"
)

// Map is an immutable bidirectional time lookup.
type Map struct {
	base, other       []float64
	baseIdx, otherIdx []int
}

// New builds a Map from parallel time arrays. Both arrays are copied.
//
// Non-ascending input means the alignment that produced it is broken; New
// panics rather than install a map that silently maps time backwards.
func New(baseTimes, otherTimes []float64) *Map {
	if len(baseTimes) != len(otherTimes) {
		panic(panicLengthMismatch)
	}
	mustAscend("base", baseTimes)
	mustAscend("other", otherTimes)

	m := &Map{
		base:  make([]float64, len(baseTimes)),
		other: make([]float64, len(otherTimes)),
	}
	copy(m.base, baseTimes)
	copy(m.other, otherTimes)
	return m
}

// FromPath resolves an alignment path against the base and other timelines.
// path.I indexes baseTimeline and path.J indexes otherTimeline.
func FromPath(baseTimeline, otherTimeline []float64, path dtw.Path) *Map {
	bt := make([]float64, path.Len())
	ot := make([]float64, path.Len())
	for k := 0; k < path.Len(); k++ {
		i, j := path.I[k], path.J[k]
		if i < 0 || i >= len(baseTimeline) {
			panic(fmt.Sprintf(panicPathIndex, i, len(baseTimeline)))
		}
		if j < 0 || j >= len(otherTimeline) {
			panic(fmt.Sprintf(panicPathIndex, j, len(otherTimeline)))
		}
		bt[k], ot[k] = baseTimeline[i], otherTimeline[j]
	}

	m := New(bt, ot)
	m.baseIdx = append([]int(nil), path.I...)
	m.otherIdx = append([]int(nil), path.J...)
	return m
}

// Forward maps a base-scene time to the target scene's time.
//
// t is clamped into [baseTimes[0], baseTimes[last]]; above the range the
// result is otherTimes[last]. Otherwise the lowest index with
// baseTimes[index] ≥ t is looked up. A nil or empty map, or NaN input,
// returns t unchanged.
//
// Complexity: O(log K).
func (m *Map) Forward(t float64) float64 {
	if m == nil {
		return t
	}
	return lookup(t, m.base, m.other)
}

// Backward maps a target-scene time to the base scene's time; it is Forward
// with the two arrays swapped.
func (m *Map) Backward(t float64) float64 {
	if m == nil {
		return t
	}
	return lookup(t, m.other, m.base)
}

// Len returns the number of pairs K.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.base)
}

// BaseTimes returns a copy of the base time array.
func (m *Map) BaseTimes() []float64 { return append([]float64(nil), m.base...) }

// OtherTimes returns a copy of the target time array.
func (m *Map) OtherTimes() []float64 { return append([]float64(nil), m.other...) }

// IndexMap returns the timeline indices the map was resolved from, or nil
// slices when it was built from times directly.
func (m *Map) IndexMap() (base, other []int) {
	return append([]int(nil), m.baseIdx...), append([]int(nil), m.otherIdx...)
}

func lookup(t float64, from, to []float64) float64 {
	if len(from) == 0 || math.IsNaN(t) {
		return t
	}
	last := len(from) - 1
	if t > from[last] {
		return to[last]
	}
	if t < from[0] {
		t = from[0]
	}
	idx := sort.SearchFloat64s(from, t)
	if idx >= len(to) {
		return t
	}
	return to[idx]
}

func mustAscend(name string, xs []float64) {
	for k := 1; k < len(xs); k++ {
		if !(xs[k] >= xs[k-1]) {
			panic(fmt.Sprintf(panicNotAscending, name, k, xs[k], xs[k-1]))
		}
	}
}
