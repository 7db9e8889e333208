// SPDX-License-Identifier: MIT

// Package scene defines the boundary with the scene collaborator and samples a
// scene's comparable channels on a shared timeline.
//
// The core never mutates scene geometry. It reads robots and their parts to
// decide what may be compared, asks the scene for frame data aligned with a
// timeline, and installs a time warp map for playback.
package scene

import (
	"errors"

	"github.com/uwgraphics/MotionComparator-sub002/channel"
	"github.com/uwgraphics/MotionComparator-sub002/timewarp"
)

var (
	// ErrMisaligned indicates frame data not aligned index-for-index with the
	// requested timeline.
	ErrMisaligned = errors.New("scene: frame data not aligned with timeline")

	// ErrUnexpectedFrames indicates frame data for a robot or part the filter
	// rejected.
	ErrUnexpectedFrames = errors.New("scene: frame data for filtered-out entity")
)

// Part is a named link or joint of a robot.
type Part interface {
	Name() string
	// IncludePosInTimeWarp reports whether the part's position may be used
	// when re-timing this scene against a base.
	IncludePosInTimeWarp() bool
	// IncludeAngleInTimeWarp reports whether the joint angle may be used
	// when re-timing this scene against a base. Links return false.
	IncludeAngleInTimeWarp() bool
}

// Robot is a named articulated object in a scene.
type Robot interface {
	Name() string
	IncludePosInTimeWarp() bool
	Links() []Part
	Joints() []Part
	ArticulatedJoints() []Part
}

// Scene is an independently animated scene.
type Scene interface {
	// ID uniquely identifies the scene among managed scenes.
	ID() string
	Name() string
	Robots() []Robot
	// FrameData samples every robot/part admitted by f at each of times.
	// Every returned series must hold exactly len(times) values.
	FrameData(times []float64, f Filter) (FrameData, error)
	// SetTimeWarping installs m for playback; nil removes the warp.
	SetTimeWarping(m *timewarp.Map)
	TimeWarping() *timewarp.Map
}

// Filter selects what FrameData samples. A nil predicate admits everything.
type Filter struct {
	RobotPos   func(r Robot) bool
	LinkPos    func(r Robot, l Part) bool
	JointPos   func(r Robot, j Part) bool
	JointAngle func(r Robot, j Part) bool
}

// AdmitsRobot reports whether the robot root position is admitted.
func (f Filter) AdmitsRobot(r Robot) bool { return f.RobotPos == nil || f.RobotPos(r) }

// AdmitsLink reports whether the link position is admitted.
func (f Filter) AdmitsLink(r Robot, l Part) bool { return f.LinkPos == nil || f.LinkPos(r, l) }

// AdmitsJoint reports whether the joint position is admitted.
func (f Filter) AdmitsJoint(r Robot, j Part) bool { return f.JointPos == nil || f.JointPos(r, j) }

// AdmitsAngle reports whether the articulated joint angle is admitted.
func (f Filter) AdmitsAngle(r Robot, j Part) bool { return f.JointAngle == nil || f.JointAngle(r, j) }

// Series is the sampled values of one part.
type Series[T any] struct {
	Part   Part
	Values []T
}

// RobotFrames is the sampled data of one robot. Root is nil when the root
// position was not requested.
type RobotFrames struct {
	Robot  Robot
	Root   []channel.Vec3
	Links  []Series[channel.Vec3]
	Joints []Series[channel.Vec3]
	Angles []Series[float64]
}

// FrameData is the sampled data of a scene, one entry per robot that has at
// least one admitted channel.
type FrameData []RobotFrames
