// SPDX-License-Identifier: MIT

package coordinator

import (
	"log/slog"
	"time"

	"github.com/uwgraphics/MotionComparator-sub002/timewarp"
)

const panicUnmanaged = "coordinator: base scene %q (%s) is not managed"

// Hook is called after every recomputation, once the maps are installed.
type Hook func(Report)

// Report describes one recomputation. Scenes are identified by ID.
type Report struct {
	// Base is the base scene ID, or "" when the coordinator is Unwarped.
	Base string
	// Warped lists scenes that received a map, in managed order.
	Warped []string
	// Unwarped lists non-base scenes left without a map, in managed order.
	Unwarped []string
	// Samples is the shared timeline length.
	Samples int
	// Channels is the number of compared channels per warped scene.
	Channels map[string]int
	// Distance is the total alignment cost per warped scene.
	Distance map[string]float64
	Duration time.Duration
}

// Result is the output of Recompute.
type Result struct {
	// Warps holds one map per warped scene ID. Scenes absent from Warps
	// play back unwarped.
	Warps  map[string]*timewarp.Map
	Report Report
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithMaxFrameRate sets the playback frame rate; scenes are sampled at half
// of it. Non-positive values are ignored.
func WithMaxFrameRate(fps float64) Option {
	return func(c *Coordinator) {
		if fps > 0 {
			c.maxFrameRate = fps
		}
	}
}

// WithWindow bounds |i-j| during alignment. -1 means unlimited.
func WithWindow(w int) Option {
	return func(c *Coordinator) { c.window = w }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHook appends a hook.
func WithHook(h Hook) Option {
	return func(c *Coordinator) {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
}
