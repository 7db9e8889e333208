// SPDX-License-Identifier: MIT

package keyframe

import (
	"sort"

	"github.com/uwgraphics/MotionComparator-sub002/channel"
)

// Keyframe is one timed value of a track.
type Keyframe[T any] struct {
	Time  float64
	Value T
}

// K is shorthand for a Keyframe literal.
func K[T any](t float64, v T) Keyframe[T] { return Keyframe[T]{Time: t, Value: v} }

// track is a time-sorted list of keyframes.
type track[T any] []Keyframe[T]

func newTrack[T any](keys []Keyframe[T]) track[T] {
	out := make(track[T], len(keys))
	copy(out, keys)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Time < out[b].Time })
	return out
}

// at interpolates the track at t, holding the first/last value outside the
// keyed range. An empty track yields the zero value.
func (tr track[T]) at(t float64, lerp func(a, b T, u float64) T) T {
	var zero T
	switch {
	case len(tr) == 0:
		return zero
	case t <= tr[0].Time:
		return tr[0].Value
	case t >= tr[len(tr)-1].Time:
		return tr[len(tr)-1].Value
	}
	// first keyframe strictly after t
	hi := sort.Search(len(tr), func(k int) bool { return tr[k].Time > t })
	a, b := tr[hi-1], tr[hi]
	if b.Time == a.Time {
		return b.Value
	}
	return lerp(a.Value, b.Value, (t-a.Time)/(b.Time-a.Time))
}

func (tr track[T]) sample(times []float64, lerp func(a, b T, u float64) T) []T {
	out := make([]T, len(times))
	for k, t := range times {
		out[k] = tr.at(t, lerp)
	}
	return out
}

func (tr track[T]) bounds() (lo, hi float64, ok bool) {
	if len(tr) == 0 {
		return 0, 0, false
	}
	return tr[0].Time, tr[len(tr)-1].Time, true
}

func lerpVec(a, b channel.Vec3, u float64) channel.Vec3 { return a.Lerp(b, u) }

func lerpFloat(a, b float64, u float64) float64 { return a + (b-a)*u }
