// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/uwgraphics/MotionComparator-sub002/channel"
	"github.com/uwgraphics/MotionComparator-sub002/keyframe"
)

// armScene animates an arm reaching across [start, end]. Motion begins after
// delay (a fraction of the span) and then runs at the speed needed to finish
// on time.
func armScene(name string, start, end, delay float64) *keyframe.Scene {
	span := end - start
	begin := start + delay*span

	elbow := keyframe.NewPart("elbow",
		keyframe.IncludePos(),
		keyframe.IncludeAngle(),
		keyframe.Positions(
			keyframe.K(start, channel.Vec3{X: 0.3, Z: 0.5}),
			keyframe.K(begin, channel.Vec3{X: 0.3, Z: 0.5}),
			keyframe.K(end, channel.Vec3{X: 0.6, Y: 0.2, Z: 0.4}),
		),
		keyframe.Angles(
			keyframe.K(start, 0.0),
			keyframe.K(begin, 0.0),
			keyframe.K(end, math.Pi/2),
		),
	)
	hand := keyframe.NewPart("hand",
		keyframe.IncludePos(),
		keyframe.Positions(
			keyframe.K(start, channel.Vec3{X: 0.5, Z: 0.5}),
			keyframe.K(begin, channel.Vec3{X: 0.5, Z: 0.5}),
			keyframe.K(end, channel.Vec3{X: 0.7, Y: 0.5, Z: 0.2}),
		),
	)

	arm := keyframe.NewRobot("arm",
		keyframe.IncludeRootPos(),
		keyframe.RootPositions(keyframe.K(start, channel.Vec3{})),
		keyframe.WithLinks(hand),
		keyframe.WithJoints(elbow),
		keyframe.WithArticulated(elbow),
	)
	return keyframe.NewScene(name, arm)
}

// cartScene shares no robot with the arm scenes.
func cartScene(name string, start, end float64) *keyframe.Scene {
	cart := keyframe.NewRobot("cart",
		keyframe.IncludeRootPos(),
		keyframe.RootPositions(
			keyframe.K(start, channel.Vec3{}),
			keyframe.K(end, channel.Vec3{X: 3}),
		),
	)
	return keyframe.NewScene(name, cart)
}
