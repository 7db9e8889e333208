// SPDX-License-Identifier: MIT

// Package keyframe is an in-memory scene made of keyframed robots.
//
// Tracks are interpolated linearly between keyframes and hold their first or
// last value outside the keyed range. The package implements scene.Scene and
// is what the demo command and the coordinator tests animate.
//
// Example:
//
//	arm := keyframe.NewRobot("arm",
//	    keyframe.IncludeRootPos(),
//	    keyframe.RootPositions(keyframe.K(0, channel.Vec3{}), keyframe.K(2, channel.Vec3{X: 1})),
//	)
//	sc := keyframe.NewScene("sim", arm)
package keyframe

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/uwgraphics/MotionComparator-sub002/scene"
	"github.com/uwgraphics/MotionComparator-sub002/timewarp"
)

// Scene is a keyframed scene. The warp map may be swapped while other
// goroutines read it; robot geometry is immutable after construction except
// for the include flags.
type Scene struct {
	id     string
	name   string
	robots []*Robot
	warp   atomic.Pointer[timewarp.Map]
}

var _ scene.Scene = (*Scene)(nil)

// NewScene builds a scene with a fresh random ID.
func NewScene(name string, robots ...*Robot) *Scene {
	return &Scene{
		id:     uuid.NewString(),
		name:   name,
		robots: append([]*Robot(nil), robots...),
	}
}

func (s *Scene) ID() string   { return s.id }
func (s *Scene) Name() string { return s.name }

// Robots returns the robots in construction order.
func (s *Scene) Robots() []scene.Robot {
	out := make([]scene.Robot, len(s.robots))
	for k, r := range s.robots {
		out[k] = r
	}
	return out
}

// FrameData samples every admitted channel at times. It never fails.
func (s *Scene) FrameData(times []float64, f scene.Filter) (scene.FrameData, error) {
	var out scene.FrameData
	for _, r := range s.robots {
		if rf, ok := r.frames(times, f); ok {
			out = append(out, rf)
		}
	}
	return out, nil
}

// SetTimeWarping installs m; nil removes the warp.
func (s *Scene) SetTimeWarping(m *timewarp.Map) { s.warp.Store(m) }

// TimeWarping returns the installed map, or nil.
func (s *Scene) TimeWarping() *timewarp.Map { return s.warp.Load() }

// DisplayTime maps a global playback time to this scene's own time.
func (s *Scene) DisplayTime(global float64) float64 {
	return s.TimeWarping().Forward(global)
}

// Span returns the earliest and latest keyframe times of the scene. ok is
// false when the scene has no keyframes.
func (s *Scene) Span() (start, end float64, ok bool) {
	for _, r := range s.robots {
		lo, hi, has := r.bounds()
		if !has {
			continue
		}
		if !ok || lo < start {
			start = lo
		}
		if !ok || hi > end {
			end = hi
		}
		ok = true
	}
	return start, end, ok
}
