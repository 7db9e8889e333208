// SPDX-License-Identifier: MIT

package keyframe

import (
	"github.com/uwgraphics/MotionComparator-sub002/channel"
	"github.com/uwgraphics/MotionComparator-sub002/scene"
)

// Part is a keyframed link or joint. Include flags default to false.
type Part struct {
	name         string
	includePos   bool
	includeAngle bool
	positions    track[channel.Vec3]
	angles       track[float64]
}

// PartOption configures a Part.
type PartOption func(*Part)

// Positions sets the part's world-position keyframes.
func Positions(keys ...Keyframe[channel.Vec3]) PartOption {
	return func(p *Part) { p.positions = newTrack(keys) }
}

// Angles sets the joint-angle keyframes.
func Angles(keys ...Keyframe[float64]) PartOption {
	return func(p *Part) { p.angles = newTrack(keys) }
}

// IncludePos flags the position for time-warp consideration.
func IncludePos() PartOption { return func(p *Part) { p.includePos = true } }

// IncludeAngle flags the angle for time-warp consideration.
func IncludeAngle() PartOption { return func(p *Part) { p.includeAngle = true } }

// NewPart builds a part.
func NewPart(name string, opts ...PartOption) *Part {
	p := &Part{name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Part) Name() string                 { return p.name }
func (p *Part) IncludePosInTimeWarp() bool   { return p.includePos }
func (p *Part) IncludeAngleInTimeWarp() bool { return p.includeAngle }

// SetIncludePosInTimeWarp toggles the position flag.
func (p *Part) SetIncludePosInTimeWarp(b bool) { p.includePos = b }

// SetIncludeAngleInTimeWarp toggles the angle flag.
func (p *Part) SetIncludeAngleInTimeWarp(b bool) { p.includeAngle = b }

// Robot is a keyframed robot: a root track plus links, joints and
// articulated joints. A joint that is also articulated is passed to both
// WithJoints and WithArticulated.
type Robot struct {
	name        string
	includePos  bool
	root        track[channel.Vec3]
	links       []*Part
	joints      []*Part
	articulated []*Part
}

// RobotOption configures a Robot.
type RobotOption func(*Robot)

// RootPositions sets the root-transform position keyframes.
func RootPositions(keys ...Keyframe[channel.Vec3]) RobotOption {
	return func(r *Robot) { r.root = newTrack(keys) }
}

// IncludeRootPos flags the root position for time-warp consideration.
func IncludeRootPos() RobotOption { return func(r *Robot) { r.includePos = true } }

// WithLinks appends links.
func WithLinks(parts ...*Part) RobotOption {
	return func(r *Robot) { r.links = append(r.links, parts...) }
}

// WithJoints appends joints.
func WithJoints(parts ...*Part) RobotOption {
	return func(r *Robot) { r.joints = append(r.joints, parts...) }
}

// WithArticulated appends articulated joints.
func WithArticulated(parts ...*Part) RobotOption {
	return func(r *Robot) { r.articulated = append(r.articulated, parts...) }
}

// NewRobot builds a robot.
func NewRobot(name string, opts ...RobotOption) *Robot {
	r := &Robot{name: name}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Robot) Name() string               { return r.name }
func (r *Robot) IncludePosInTimeWarp() bool { return r.includePos }

// SetIncludePosInTimeWarp toggles the root position flag.
func (r *Robot) SetIncludePosInTimeWarp(b bool) { r.includePos = b }

func (r *Robot) Links() []scene.Part             { return asParts(r.links) }
func (r *Robot) Joints() []scene.Part            { return asParts(r.joints) }
func (r *Robot) ArticulatedJoints() []scene.Part { return asParts(r.articulated) }

func asParts(ps []*Part) []scene.Part {
	out := make([]scene.Part, len(ps))
	for k, p := range ps {
		out[k] = p
	}
	return out
}

// frames samples everything f admits; ok is false when nothing was admitted.
func (r *Robot) frames(times []float64, f scene.Filter) (rf scene.RobotFrames, ok bool) {
	rf.Robot = r
	if f.AdmitsRobot(r) {
		rf.Root = r.root.sample(times, lerpVec)
		ok = true
	}
	for _, l := range r.links {
		if f.AdmitsLink(r, l) {
			rf.Links = append(rf.Links, scene.Series[channel.Vec3]{Part: l, Values: l.positions.sample(times, lerpVec)})
			ok = true
		}
	}
	for _, j := range r.joints {
		if f.AdmitsJoint(r, j) {
			rf.Joints = append(rf.Joints, scene.Series[channel.Vec3]{Part: j, Values: j.positions.sample(times, lerpVec)})
			ok = true
		}
	}
	for _, j := range r.articulated {
		if f.AdmitsAngle(r, j) {
			rf.Angles = append(rf.Angles, scene.Series[float64]{Part: j, Values: j.angles.sample(times, lerpFloat)})
			ok = true
		}
	}
	return rf, ok
}

func (r *Robot) bounds() (lo, hi float64, ok bool) {
	merge := func(l, h float64, k bool) {
		if !k {
			return
		}
		if !ok || l < lo {
			lo = l
		}
		if !ok || h > hi {
			hi = h
		}
		ok = true
	}
	merge(r.root.bounds())
	for _, group := range [][]*Part{r.links, r.joints, r.articulated} {
		for _, p := range group {
			merge(p.positions.bounds())
			merge(p.angles.bounds())
		}
	}
	return lo, hi, ok
}
