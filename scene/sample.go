// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"

	"github.com/uwgraphics/MotionComparator-sub002/channel"
	"github.com/uwgraphics/MotionComparator-sub002/timeline"
)

// Sample returns the comparable channels of sc on tl.
//
// Each predicate of f is narrowed by uniqueness: a robot is admitted only if
// no other robot in the scene shares its name, and a link, joint or
// articulated joint only if its robot is admitted by name and no sibling of
// the same kind shares its name. Duplicates are excluded, never merged.
//
// Errors wrap ErrMisaligned, ErrUnexpectedFrames, or the scene's own error.
func Sample(sc Scene, tl timeline.Timeline, f Filter) (*channel.Set, error) {
	robots := sc.Robots()
	uniqueRobots := uniqueNames(robots, Robot.Name)

	// per unique robot: name counts of each part list
	type partCounts struct{ links, joints, angles map[string]int }
	counts := make(map[string]partCounts, len(robots))
	for _, r := range robots {
		if uniqueRobots[r.Name()] {
			counts[r.Name()] = partCounts{
				links:  nameCounts(r.Links()),
				joints: nameCounts(r.Joints()),
				angles: nameCounts(r.ArticulatedJoints()),
			}
		}
	}

	narrowed := Filter{
		RobotPos: func(r Robot) bool {
			return uniqueRobots[r.Name()] && f.AdmitsRobot(r)
		},
		LinkPos: func(r Robot, l Part) bool {
			c, ok := counts[r.Name()]
			return ok && c.links[l.Name()] == 1 && f.AdmitsLink(r, l)
		},
		JointPos: func(r Robot, j Part) bool {
			c, ok := counts[r.Name()]
			return ok && c.joints[j.Name()] == 1 && f.AdmitsJoint(r, j)
		},
		JointAngle: func(r Robot, j Part) bool {
			c, ok := counts[r.Name()]
			return ok && c.angles[j.Name()] == 1 && f.AdmitsAngle(r, j)
		},
	}

	times := tl.Times()
	data, err := sc.FrameData(times, narrowed)
	if err != nil {
		return nil, fmt.Errorf("scene %q: frame data: %w", sc.Name(), err)
	}

	set := channel.NewSet(len(times))
	for _, rf := range data {
		if err := addRobotFrames(set, rf, narrowed); err != nil {
			return nil, fmt.Errorf("scene %q: %w", sc.Name(), err)
		}
	}
	return set, nil
}

func addRobotFrames(set *channel.Set, rf RobotFrames, f Filter) error {
	r := rf.Robot
	name := r.Name()

	if rf.Root != nil {
		if !f.RobotPos(r) {
			return fmt.Errorf("robot %q root: %w", name, ErrUnexpectedFrames)
		}
		if err := set.AddPosition(channel.Root(name), rf.Root); err != nil {
			return boundaryErr(err)
		}
	}
	for _, s := range rf.Links {
		if !f.LinkPos(r, s.Part) {
			return fmt.Errorf("robot %q link %q: %w", name, s.Part.Name(), ErrUnexpectedFrames)
		}
		if err := set.AddPosition(channel.Link(name, s.Part.Name()), s.Values); err != nil {
			return boundaryErr(err)
		}
	}
	for _, s := range rf.Joints {
		if !f.JointPos(r, s.Part) {
			return fmt.Errorf("robot %q joint %q: %w", name, s.Part.Name(), ErrUnexpectedFrames)
		}
		if err := set.AddPosition(channel.Joint(name, s.Part.Name()), s.Values); err != nil {
			return boundaryErr(err)
		}
	}
	for _, s := range rf.Angles {
		if !f.JointAngle(r, s.Part) {
			return fmt.Errorf("robot %q angle %q: %w", name, s.Part.Name(), ErrUnexpectedFrames)
		}
		if err := set.AddAngle(channel.Angle(name, s.Part.Name()), s.Values); err != nil {
			return boundaryErr(err)
		}
	}
	return nil
}

// boundaryErr tags a channel.Set insertion failure as a scene contract violation.
func boundaryErr(err error) error {
	if errors.Is(err, channel.ErrLengthMismatch) {
		return fmt.Errorf("%w: %w", ErrMisaligned, err)
	}
	return fmt.Errorf("%w: %w", ErrUnexpectedFrames, err)
}

// BaseFilter admits everything; Sample still applies uniqueness.
func BaseFilter() Filter { return Filter{} }

// CandidateFilter admits only parts explicitly flagged for time-warp
// consideration on robots whose name appears in base.
func CandidateFilter(base *channel.Set) Filter {
	inBase := func(r Robot) bool { return base.HasRobot(r.Name()) }
	return Filter{
		RobotPos: func(r Robot) bool {
			return r.IncludePosInTimeWarp() && inBase(r)
		},
		LinkPos: func(r Robot, l Part) bool {
			return l.IncludePosInTimeWarp() && inBase(r)
		},
		JointPos: func(r Robot, j Part) bool {
			return j.IncludePosInTimeWarp() && inBase(r)
		},
		JointAngle: func(r Robot, j Part) bool {
			return j.IncludeAngleInTimeWarp() && inBase(r)
		},
	}
}

func uniqueNames[T any](items []T, name func(T) string) map[string]bool {
	c := make(map[string]int, len(items))
	for _, it := range items {
		c[name(it)]++
	}
	out := make(map[string]bool, len(c))
	for n, k := range c {
		out[n] = k == 1
	}
	return out
}

func nameCounts(parts []Part) map[string]int {
	c := make(map[string]int, len(parts))
	for _, p := range parts {
		c[p.Name()]++
	}
	return c
}
