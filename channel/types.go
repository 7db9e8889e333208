// SPDX-License-Identifier: MIT

package channel

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the channel package.
var (
	// ErrLengthMismatch indicates values not aligned with the set's sample count.
	ErrLengthMismatch = errors.New("channel: values do not match sample count")

	// ErrDuplicateKey indicates a key added twice to the same set.
	ErrDuplicateKey = errors.New("channel: duplicate key")

	// ErrKindMismatch indicates a position added under an angle key or vice versa.
	ErrKindMismatch = errors.New("channel: key kind does not match values")

	// ErrNoComparableChannels indicates two sets with no key in common.
	ErrNoComparableChannels = errors.New("channel: no comparable channels")
)

// Kind distinguishes the comparable quantities.
type Kind int

const (
	// RootPosition is the position of a robot's root transform.
	RootPosition Kind = iota
	// LinkPosition is the world position of a link.
	LinkPosition
	// JointPosition is the world position of a joint.
	JointPosition
	// JointAngle is the scalar angle of an articulated joint.
	JointAngle
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case RootPosition:
		return "root"
	case LinkPosition:
		return "link"
	case JointPosition:
		return "joint"
	case JointAngle:
		return "angle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsPosition reports whether values of this kind are 3D positions.
func (k Kind) IsPosition() bool { return k != JointAngle }

// Key identifies a comparable channel by name.
type Key struct {
	Robot string
	Part  string // empty for RootPosition
	Kind  Kind
}

// Root returns the key of a robot's root position.
func Root(robot string) Key { return Key{Robot: robot, Kind: RootPosition} }

// Link returns the key of a link position.
func Link(robot, link string) Key { return Key{Robot: robot, Part: link, Kind: LinkPosition} }

// Joint returns the key of a joint position.
func Joint(robot, joint string) Key { return Key{Robot: robot, Part: joint, Kind: JointPosition} }

// Angle returns the key of an articulated joint angle.
func Angle(robot, joint string) Key { return Key{Robot: robot, Part: joint, Kind: JointAngle} }

// String renders the key as robot[/part]:kind.
func (k Key) String() string {
	if k.Kind == RootPosition {
		return k.Robot + ":" + k.Kind.String()
	}
	return k.Robot + "/" + k.Part + ":" + k.Kind.String()
}

// Less orders keys by robot, kind, then part.
func (k Key) Less(o Key) bool {
	if k.Robot != o.Robot {
		return k.Robot < o.Robot
	}
	if k.Kind != o.Kind {
		return k.Kind < o.Kind
	}
	return k.Part < o.Part
}

// Vec3 is a point in 3D world space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Len returns the Euclidean norm of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 { return v.Sub(o).Len() }

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}
