// SPDX-License-Identifier: MIT

package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwgraphics/MotionComparator-sub002/timeline"
)

func TestNew_RegularSpan(t *testing.T) {
	tl := timeline.New(0, 2, 30, timeline.MaxSamples(0, 2, 30))

	require.Equal(t, 61, tl.Len(), "60 steps plus the end sample")
	assert.Equal(t, 0.0, tl.Start())
	assert.Equal(t, 2.0, tl.End())
	for k := 1; k < tl.Len(); k++ {
		assert.Greater(t, tl.At(k), tl.At(k-1), "strictly ascending at %d", k)
	}
	assert.InDelta(t, 1.0/30, tl.At(1)-tl.At(0), 1e-12)
}

func TestNew_CappedBySamples(t *testing.T) {
	tl := timeline.New(0, 10, 30, 20)

	require.Equal(t, 21, tl.Len())
	assert.InDelta(t, 0.5, tl.At(1), 1e-12)
	assert.Equal(t, 10.0, tl.End())
}

func TestNew_DegenerateSpans(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		rate       float64
	}{
		{"zero span", 3, 3, 30},
		{"zero rate", 0, 5, 0},
		{"single step", 0, 0.04, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tl := timeline.New(tc.start, tc.end, tc.rate, timeline.MaxSamples(tc.start, tc.end, tc.rate))
			assert.Equal(t, []float64{tc.start - 0.001, tc.start, tc.start + 0.001}, tl.Times())
		})
	}
}

func TestNew_SwappedBounds(t *testing.T) {
	tl := timeline.New(2, 0, 30, 1000)
	assert.Equal(t, 0.0, tl.Start())
	assert.Equal(t, 2.0, tl.End())
}

func TestNew_NegativeRateAndCap(t *testing.T) {
	a := timeline.New(0, 1, -10, -100)
	b := timeline.New(0, 1, 10, 100)
	assert.Equal(t, b.Times(), a.Times())
}

func TestDefault(t *testing.T) {
	tl := timeline.Default(0, 1)
	assert.Equal(t, timeline.DefaultSampleRate+1, tl.Len())
}

func TestFromTimes(t *testing.T) {
	_, err := timeline.FromTimes(nil)
	assert.ErrorIs(t, err, timeline.ErrEmpty)

	_, err = timeline.FromTimes([]float64{0, 1, 0.5})
	assert.ErrorIs(t, err, timeline.ErrNotAscending)

	src := []float64{0, 1, 1, 2}
	tl, err := timeline.FromTimes(src)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, 0.0, tl.At(0), "input must be copied")
	assert.Equal(t, []float64{1, 2, 0}, tl.Resolve([]int{1, 3, 0}))
}
