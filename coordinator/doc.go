// SPDX-License-Identifier: MIT

// Package coordinator re-times a set of independently animated scenes
// against one chosen base scene.
//
// The coordinator has two states. Unwarped: every scene plays back 1:1.
// Warped(base): every other managed scene that shares channels with the base
// carries a timewarp.Map, the base itself stays identity.
//
// Every transition is a pure rebuild (Recompute) followed by installation of
// the new maps and a call to each Hook. There is no incremental update: a
// scene added, a range change or a new base all recompute from scratch.
//
// Usage:
//
//	c := coordinator.New(0, 10, coordinator.WithLogger(logger))
//	_ = c.AddScenes(sim, real)
//	if err := c.SetBase(sim); err != nil {
//	    return err
//	}
//	t := real.TimeWarping().Forward(globalTime)
//
// Cost: each SetBase samples every scene once and runs one K×K alignment per
// other scene, where K is the timeline length.
package coordinator
