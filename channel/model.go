// SPDX-License-Identifier: MIT

package channel

import (
	"fmt"

	"github.com/uwgraphics/MotionComparator-sub002/dtw"
)

type positionPair struct {
	base, other []Vec3
}

type anglePair struct {
	base, other []float64
}

// Model is the distance between instant i of a base set and instant j of
// another set, summed over every channel key present in both.
type Model struct {
	keys      []Key
	positions []positionPair
	angles    []anglePair
}

// NewModel intersects base and other by key. An empty intersection returns
// ErrNoComparableChannels: a model that is zero everywhere would make every
// alignment trivially optimal.
//
// Position pairs are summed before angle pairs, each in key order, so that
// sums are reproducible bit for bit.
func NewModel(base, other *Set) (*Model, error) {
	m := &Model{}
	for _, k := range base.Keys() {
		if k.Kind.IsPosition() {
			o, ok := other.positions[k]
			if !ok {
				continue
			}
			m.positions = append(m.positions, positionPair{base: base.positions[k], other: o})
		} else {
			o, ok := other.angles[k]
			if !ok {
				continue
			}
			m.angles = append(m.angles, anglePair{base: base.angles[k], other: o})
		}
		m.keys = append(m.keys, k)
	}
	if len(m.keys) == 0 {
		return nil, fmt.Errorf("base %d channels, other %d channels: %w", base.Len(), other.Len(), ErrNoComparableChannels)
	}
	return m, nil
}

// Cost returns the distance between base instant i and other instant j.
func (m *Model) Cost(i, j int) float64 {
	var sum float64
	for _, p := range m.positions {
		sum += p.base[i].DistanceTo(p.other[j])
	}
	for _, p := range m.angles {
		d := p.base[i] - p.other[j]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// CostFunc adapts Cost to the aligner.
func (m *Model) CostFunc() dtw.CostFunc { return m.Cost }

// Keys returns the compared keys in order.
func (m *Model) Keys() []Key {
	out := make([]Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of compared channels.
func (m *Model) Len() int { return len(m.keys) }
