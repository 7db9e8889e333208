// SPDX-License-Identifier: MIT

package coordinator

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/uwgraphics/MotionComparator-sub002/dtw"
	"github.com/uwgraphics/MotionComparator-sub002/scene"
	"github.com/uwgraphics/MotionComparator-sub002/timeline"
)

// Coordinator manages a set of scenes and the base they are re-timed
// against. It is driven from a single goroutine and is not safe for
// concurrent use; playback may read installed maps concurrently.
type Coordinator struct {
	start, end   float64
	maxFrameRate float64
	window       int
	logger       *slog.Logger
	hooks        []Hook

	scenes []scene.Scene
	base   scene.Scene
}

// New returns an Unwarped coordinator over the global range [start, end].
func New(start, end float64, opts ...Option) *Coordinator {
	c := &Coordinator{
		start:        start,
		end:          end,
		maxFrameRate: timeline.MaxFrameRate,
		window:       -1,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Base returns the current base scene, or nil when Unwarped.
func (c *Coordinator) Base() scene.Scene { return c.base }

// Scenes returns the managed scenes in insertion order.
func (c *Coordinator) Scenes() []scene.Scene { return slices.Clone(c.scenes) }

// Manages reports whether a scene with sc's ID is managed.
func (c *Coordinator) Manages(sc scene.Scene) bool {
	return sc != nil && c.indexOf(sc.ID()) >= 0
}

func (c *Coordinator) indexOf(id string) int {
	return slices.IndexFunc(c.scenes, func(s scene.Scene) bool { return s.ID() == id })
}

// Timeline returns the shared sample timeline: the global range at half the
// frame rate, capped by the range length times that rate.
func (c *Coordinator) Timeline() timeline.Timeline {
	rate := c.maxFrameRate / 2
	return timeline.New(c.start, c.end, rate, timeline.MaxSamples(c.start, c.end, rate))
}

// AddScenes manages additional scenes, skipping nil and already managed ones,
// and recalculates the current base.
func (c *Coordinator) AddScenes(scenes ...scene.Scene) error {
	added := false
	for _, sc := range scenes {
		if sc == nil || c.Manages(sc) {
			continue
		}
		c.scenes = append(c.scenes, sc)
		added = true
	}
	if !added {
		return nil
	}
	return c.Recalculate()
}

// RemoveScene stops managing sc and clears its map. Removing the base clears
// every map.
func (c *Coordinator) RemoveScene(sc scene.Scene) {
	if sc == nil {
		return
	}
	k := c.indexOf(sc.ID())
	if k < 0 {
		return
	}
	c.scenes = slices.Delete(c.scenes, k, k+1)
	sc.SetTimeWarping(nil)

	if c.base != nil && c.base.ID() == sc.ID() {
		c.logger.Info("base scene removed", slog.String("scene", sc.Name()))
		c.clear()
	}
}

// SetRange changes the global range and recalculates the current base.
func (c *Coordinator) SetRange(start, end float64) error {
	c.start, c.end = start, end
	return c.Recalculate()
}

// Recalculate rebuilds every map against the current base. It does nothing
// when Unwarped.
func (c *Coordinator) Recalculate() error {
	if c.base == nil {
		return nil
	}
	return c.rebuild(c.base)
}

// SetBase makes sc the base scene and re-times every other managed scene
// against it. A nil sc clears every map.
//
// Setting the current base again is a no-op. sc must be managed; an
// unmanaged scene panics. An error is returned only when a scene breaks the
// sampling contract, in which case the coordinator is left Unwarped.
func (c *Coordinator) SetBase(sc scene.Scene) error {
	if sc == nil {
		c.clear()
		return nil
	}
	if c.base != nil && c.base.ID() == sc.ID() {
		return nil
	}
	if !c.Manages(sc) {
		panic(fmt.Sprintf(panicUnmanaged, sc.Name(), sc.ID()))
	}
	return c.rebuild(sc)
}

func (c *Coordinator) rebuild(base scene.Scene) error {
	tl := c.Timeline()
	opts := dtw.DefaultOptions()
	opts.Window = c.window

	res, err := Recompute(base, c.scenes, tl, opts)
	if err != nil {
		c.logger.Error("time warp recomputation failed",
			slog.String("base", base.Name()), slog.Any("err", err))
		c.clear()
		return fmt.Errorf("coordinator: base %q: %w", base.Name(), err)
	}

	// every map is built before any is installed
	for _, sc := range c.scenes {
		sc.SetTimeWarping(res.Warps[sc.ID()])
	}
	if res.Report.Base == "" {
		c.base = nil
		c.logger.Info("base scene has no comparable channels",
			slog.String("base", base.Name()), slog.Int("samples", res.Report.Samples))
	} else {
		c.base = base
		c.logger.Info("base scene set",
			slog.String("base", base.Name()),
			slog.Int("samples", res.Report.Samples),
			slog.Int("warped", len(res.Report.Warped)),
			slog.Int("unwarped", len(res.Report.Unwarped)),
			slog.Duration("took", res.Report.Duration))
	}
	for _, id := range res.Report.Warped {
		c.logger.Debug("scene warped",
			slog.String("scene", id),
			slog.Int("channels", res.Report.Channels[id]),
			slog.Float64("distance", res.Report.Distance[id]))
	}
	for _, id := range res.Report.Unwarped {
		c.logger.Debug("scene left unwarped", slog.String("scene", id))
	}

	c.notify(res.Report)
	return nil
}

// clear removes every map and returns to Unwarped.
func (c *Coordinator) clear() {
	rep := Report{Channels: map[string]int{}, Distance: map[string]float64{}}
	for _, sc := range c.scenes {
		sc.SetTimeWarping(nil)
		rep.Unwarped = append(rep.Unwarped, sc.ID())
	}
	if c.base != nil {
		c.logger.Info("base scene cleared", slog.String("base", c.base.Name()))
	}
	c.base = nil
	c.notify(rep)
}

func (c *Coordinator) notify(r Report) {
	for _, h := range c.hooks {
		h(r)
	}
}

// DisplayTimes maps a global playback time to each managed scene's own time,
// keyed by scene ID.
func (c *Coordinator) DisplayTimes(global float64) map[string]float64 {
	out := make(map[string]float64, len(c.scenes))
	for _, sc := range c.scenes {
		out[sc.ID()] = sc.TimeWarping().Forward(global)
	}
	return out
}
