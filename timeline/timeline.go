// SPDX-License-Identifier: MIT

// Package timeline builds the shared, ascending sample clock that every scene
// is sampled on before alignment.
//
// A Timeline is immutable once built. It spans [start, end] at a fixed sample
// rate, capped at a maximum number of samples. Timelines too short to hold two
// steps collapse to a three-point probe around start so that sampling still
// yields comparable data.
package timeline

import (
	"errors"
	"fmt"
	"math"
)

// MaxFrameRate is the playback frame rate (frames per second).
const MaxFrameRate = 60

// DefaultSampleRate is the alignment sample rate: half the playback rate.
const DefaultSampleRate = MaxFrameRate / 2

// probeOffset is the half-width of the degenerate three-point timeline.
const probeOffset = 0.001

var (
	// ErrEmpty indicates a timeline with no samples.
	ErrEmpty = errors.New("timeline: no samples")

	// ErrNotAscending indicates times that decrease somewhere.
	ErrNotAscending = errors.New("timeline: times must be non-decreasing")
)

// Timeline is an ascending sequence of timestamps.
type Timeline struct {
	times []float64
}

// MaxSamples returns |end-start| * sampleRate, the sample cap used when
// building a timeline over [start, end].
func MaxSamples(start, end, sampleRate float64) float64 {
	return math.Abs(end-start) * sampleRate
}

// New builds a timeline over [start, end].
//
// sampleRate and maxSamples are taken by absolute value. The number of steps is
// min(floor(sampleRate*|end-start|), maxSamples) and the step is the span
// divided by that count. If the step is undefined or the span holds fewer than
// two steps, the result is [start-0.001, start, start+0.001]. Otherwise samples
// are start + k*step for k = 0..steps with the last sample pinned to end.
//
// If end < start the bounds are swapped.
func New(start, end, sampleRate, maxSamples float64) Timeline {
	if end < start {
		start, end = end, start
	}
	sampleRate = math.Abs(sampleRate)
	maxSamples = math.Abs(maxSamples)

	span := end - start
	steps := math.Min(math.Floor(sampleRate*span), maxSamples)
	step := span / steps

	if math.IsNaN(step) || math.IsInf(step, 0) || span/step < 2 {
		return Timeline{times: []float64{start - probeOffset, start, start + probeOffset}}
	}

	count := int(steps)
	times := make([]float64, 0, count+1)
	for k := 0; k < count; k++ {
		times = append(times, start+float64(k)*step)
	}
	times = append(times, end)

	return Timeline{times: times}
}

// Default builds a timeline over [start, end] at DefaultSampleRate capped at
// MaxSamples(start, end, DefaultSampleRate).
func Default(start, end float64) Timeline {
	return New(start, end, DefaultSampleRate, MaxSamples(start, end, DefaultSampleRate))
}

// FromTimes wraps an explicit, non-decreasing list of times. The slice is copied.
func FromTimes(times []float64) (Timeline, error) {
	if len(times) == 0 {
		return Timeline{}, ErrEmpty
	}
	for k := 1; k < len(times); k++ {
		if times[k] < times[k-1] || math.IsNaN(times[k]) {
			return Timeline{}, fmt.Errorf("index %d (%g after %g): %w", k, times[k], times[k-1], ErrNotAscending)
		}
	}
	out := make([]float64, len(times))
	copy(out, times)

	return Timeline{times: out}, nil
}

// Len returns the number of samples.
func (t Timeline) Len() int { return len(t.times) }

// At returns the k-th sample time.
func (t Timeline) At(k int) float64 { return t.times[k] }

// Start returns the first sample time, or 0 when empty.
func (t Timeline) Start() float64 {
	if len(t.times) == 0 {
		return 0
	}
	return t.times[0]
}

// End returns the last sample time, or 0 when empty.
func (t Timeline) End() float64 {
	if len(t.times) == 0 {
		return 0
	}
	return t.times[len(t.times)-1]
}

// Times returns a copy of the sample times.
func (t Timeline) Times() []float64 {
	out := make([]float64, len(t.times))
	copy(out, t.times)
	return out
}

// Resolve maps sample indices to their times.
func (t Timeline) Resolve(indices []int) []float64 {
	out := make([]float64, len(indices))
	for k, idx := range indices {
		out[k] = t.times[idx]
	}
	return out
}
