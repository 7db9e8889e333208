// Package motioncomparator re-times independently animated robot scenes
// against each other so that equivalent poses line up during playback,
// without touching either scene's recorded data.
//
// A simulated trajectory and a real recording rarely move at the same speed.
// Picking one scene as the base samples every scene on a shared clock,
// compares positions and joint angles channel by channel, aligns the two
// sequences with Dynamic Time Warping and installs a bidirectional time map
// on each of the other scenes.
//
// Packages:
//
//	dtw/          cumulative cost matrix, backtrace and series helpers
//	timeline/     the shared ascending sample clock
//	channel/      name-keyed channels and the distance model between scenes
//	scene/        the scene boundary and the uniqueness-filtered sampler
//	timewarp/     forward/backward time lookup built from an alignment
//	coordinator/  base selection, pure recomputation and hooks
//	keyframe/     an in-memory keyframed scene
//
// Quick example:
//
//	c := coordinator.New(0, 10)
//	_ = c.AddScenes(sim, real)
//	_ = c.SetBase(sim)
//	t := real.TimeWarping().Forward(globalTime)
//
// Run cmd/warpdemo for a printed warp table over synthetic scenes.
package motioncomparator
