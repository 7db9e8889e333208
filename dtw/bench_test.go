// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math"
	"testing"

	"github.com/uwgraphics/MotionComparator-sub002/dtw"
)

// benchmarkAlign runs Align on an n×n lattice of two phase-shifted sines.
// It resets the timer before entering the loop.
func benchmarkAlign(b *testing.B, n int) {
	a := make([]float64, n)
	c := make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = math.Sin(float64(i) / 10)
		c[i] = math.Sin(float64(i)/10 + 0.3)
	}
	cost := func(i, j int) float64 { return math.Abs(a[i] - c[j]) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dtw.Align(n, n, cost)
	}
}

// BenchmarkAlign_Small benchmarks 100×100, about 3 s of timeline at 30 Hz.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 100) }

// BenchmarkAlign_Medium benchmarks 600×600, about 20 s of timeline at 30 Hz.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 600) }

// benchmarkDTW is a helper that runs DTW on sequences of lengths n and m using opts.
func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := 0; i < n; i++ {
		a[i] = float64(i)
	}
	for j := 0; j < m; j++ {
		bSeq[j] = float64(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(a, bSeq, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_FullMatrixMedium benchmarks FullMatrix mode on 500×500 sequences.
func BenchmarkDTW_FullMatrixMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	benchmarkDTW(b, 500, 500, opts)
}

// BenchmarkDTW_TwoRowsMedium benchmarks TwoRows mode on 500×500 sequences.
func BenchmarkDTW_TwoRowsMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkDTW(b, 500, 500, opts)
}

// BenchmarkDTW_WindowConstraint benchmarks FullMatrix with a narrow band.
func BenchmarkDTW_WindowConstraint(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 10
	benchmarkDTW(b, 500, 505, opts)
}
