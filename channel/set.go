// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"
	"sort"
)

// Set is the comparable channel set of one scene, every channel aligned
// index-for-index with the same timeline.
type Set struct {
	samples   int
	positions map[Key][]Vec3
	angles    map[Key][]float64
}

// NewSet returns an empty set whose channels all hold samples values.
func NewSet(samples int) *Set {
	return &Set{
		samples:   samples,
		positions: make(map[Key][]Vec3),
		angles:    make(map[Key][]float64),
	}
}

// AddPosition adds a position channel. The key kind must be a position kind.
func (s *Set) AddPosition(k Key, values []Vec3) error {
	if !k.Kind.IsPosition() {
		return fmt.Errorf("%s: %w", k, ErrKindMismatch)
	}
	if len(values) != s.samples {
		return fmt.Errorf("%s: got %d values, want %d: %w", k, len(values), s.samples, ErrLengthMismatch)
	}
	if s.has(k) {
		return fmt.Errorf("%s: %w", k, ErrDuplicateKey)
	}
	s.positions[k] = values
	return nil
}

// AddAngle adds a joint angle channel. The key kind must be JointAngle.
func (s *Set) AddAngle(k Key, values []float64) error {
	if k.Kind != JointAngle {
		return fmt.Errorf("%s: %w", k, ErrKindMismatch)
	}
	if len(values) != s.samples {
		return fmt.Errorf("%s: got %d values, want %d: %w", k, len(values), s.samples, ErrLengthMismatch)
	}
	if s.has(k) {
		return fmt.Errorf("%s: %w", k, ErrDuplicateKey)
	}
	s.angles[k] = values
	return nil
}

func (s *Set) has(k Key) bool {
	_, p := s.positions[k]
	_, a := s.angles[k]
	return p || a
}

// Len returns the number of channels.
func (s *Set) Len() int { return len(s.positions) + len(s.angles) }

// Samples returns the per-channel sample count.
func (s *Set) Samples() int { return s.samples }

// Keys returns every key in Less order.
func (s *Set) Keys() []Key {
	keys := make([]Key, 0, s.Len())
	for k := range s.positions {
		keys = append(keys, k)
	}
	for k := range s.angles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].Less(keys[b]) })
	return keys
}

// HasRobot reports whether any channel belongs to the named robot.
func (s *Set) HasRobot(name string) bool {
	for k := range s.positions {
		if k.Robot == name {
			return true
		}
	}
	for k := range s.angles {
		if k.Robot == name {
			return true
		}
	}
	return false
}

// Robots returns the sorted, distinct robot names present in the set.
func (s *Set) Robots() []string {
	seen := make(map[string]struct{})
	for k := range s.positions {
		seen[k.Robot] = struct{}{}
	}
	for k := range s.angles {
		seen[k.Robot] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Position returns the values of a position channel.
func (s *Set) Position(k Key) ([]Vec3, bool) {
	v, ok := s.positions[k]
	return v, ok
}

// Angle returns the values of an angle channel.
func (s *Set) Angle(k Key) ([]float64, bool) {
	v, ok := s.angles[k]
	return v, ok
}
