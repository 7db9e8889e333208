// SPDX-License-Identifier: MIT

// Package metrics records time warp recomputations in a private Prometheus
// registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/uwgraphics/MotionComparator-sub002/coordinator"
)

// Metrics holds Prometheus counters and gauges for the coordinator.
type Metrics struct {
	registry        *prometheus.Registry
	recomputations  prometheus.Counter
	warpedScenes    prometheus.Gauge
	unwarpedScenes  prometheus.Gauge
	timelineSamples prometheus.Gauge
	duration        prometheus.Histogram
	sceneDistance   *prometheus.GaugeVec
	sceneChannels   *prometheus.GaugeVec
}

// New creates and registers the metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		recomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warp_recomputations_total",
			Help: "Total number of time warp recomputations, including clears",
		}),
		warpedScenes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "warp_warped_scenes",
			Help: "Number of scenes carrying a time warp map",
		}),
		unwarpedScenes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "warp_unwarped_scenes",
			Help: "Number of non-base scenes playing back unwarped",
		}),
		timelineSamples: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "warp_timeline_samples",
			Help: "Length of the shared sample timeline",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "warp_recompute_duration_seconds",
			Help:    "Time spent sampling and aligning all scenes",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		sceneDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "warp_scene_distance",
			Help: "Total alignment cost of a warped scene against the base",
		}, []string{"scene"}),
		sceneChannels: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "warp_scene_channels",
			Help: "Number of channels compared for a warped scene",
		}, []string{"scene"}),
	}

	registry.MustRegister(
		m.recomputations,
		m.warpedScenes,
		m.unwarpedScenes,
		m.timelineSamples,
		m.duration,
		m.sceneDistance,
		m.sceneChannels,
	)
	return m
}

// Observe records a report. It is meant to be passed to
// coordinator.WithHook.
func (m *Metrics) Observe(r coordinator.Report) {
	m.recomputations.Inc()
	m.warpedScenes.Set(float64(len(r.Warped)))
	m.unwarpedScenes.Set(float64(len(r.Unwarped)))
	m.timelineSamples.Set(float64(r.Samples))
	if r.Base != "" {
		m.duration.Observe(r.Duration.Seconds())
	}

	// per-scene series describe the latest base only
	m.sceneDistance.Reset()
	m.sceneChannels.Reset()
	for _, id := range r.Warped {
		m.sceneDistance.WithLabelValues(id).Set(r.Distance[id])
		m.sceneChannels.WithLabelValues(id).Set(float64(r.Channels[id]))
	}
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteFile writes the text exposition to path, for node_exporter's
// textfile collector.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
