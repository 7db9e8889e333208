// SPDX-License-Identifier: MIT

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwgraphics/MotionComparator-sub002/coordinator"
)

func warpedReport() coordinator.Report {
	return coordinator.Report{
		Base:     "sim",
		Warped:   []string{"real", "replay"},
		Unwarped: []string{"cart"},
		Samples:  61,
		Channels: map[string]int{"real": 3, "replay": 1},
		Distance: map[string]float64{"real": 1.25, "replay": 0.5},
		Duration: 20 * time.Millisecond,
	}
}

func TestObserve(t *testing.T) {
	m := New()
	m.Observe(warpedReport())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.recomputations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.warpedScenes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unwarpedScenes))
	assert.Equal(t, 61.0, testutil.ToFloat64(m.timelineSamples))
	assert.Equal(t, 1.25, testutil.ToFloat64(m.sceneDistance.WithLabelValues("real")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sceneChannels.WithLabelValues("real")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestObserve_ClearResetsSceneSeries(t *testing.T) {
	m := New()
	m.Observe(warpedReport())
	m.Observe(coordinator.Report{Unwarped: []string{"real", "replay", "cart"}})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recomputations))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.warpedScenes))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.unwarpedScenes))
	assert.Equal(t, 0, testutil.CollectAndCount(m.sceneDistance))
	assert.Equal(t, 0, testutil.CollectAndCount(m.sceneChannels))
}

func TestWriteFile(t *testing.T) {
	m := New()
	m.Observe(warpedReport())

	path := filepath.Join(t.TempDir(), "warp.prom")
	require.NoError(t, m.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "warp_recomputations_total 1")
	assert.Contains(t, string(raw), `warp_scene_distance{scene="replay"} 0.5`)

	assert.Error(t, m.WriteFile(filepath.Join(t.TempDir(), "missing", "warp.prom")))
}

func TestRegistryGathers(t *testing.T) {
	m := New()
	m.Observe(warpedReport())
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 7)
}
