// SPDX-License-Identifier: MIT

// Command warpdemo re-times a set of synthetic scenes against a simulated
// base and prints where each scene is at a few global times.
//
// Settings come from .env and the environment (see internal/config).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/uwgraphics/MotionComparator-sub002/coordinator"
	"github.com/uwgraphics/MotionComparator-sub002/internal/config"
	"github.com/uwgraphics/MotionComparator-sub002/internal/log"
	"github.com/uwgraphics/MotionComparator-sub002/internal/metrics"
	"github.com/uwgraphics/MotionComparator-sub002/scene"
)

// probes is the number of global times printed.
const probes = 6

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("warpdemo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, out io.Writer) error {
	met := metrics.New()
	c := coordinator.New(cfg.Start, cfg.End,
		coordinator.WithMaxFrameRate(cfg.MaxFrameRate),
		coordinator.WithWindow(cfg.Window),
		coordinator.WithLogger(logger),
		coordinator.WithHook(met.Observe),
	)

	sim := armScene("sim", cfg.Start, cfg.End, 0)
	real := armScene("real", cfg.Start, cfg.End, 0.3)
	replay := armScene("replay", cfg.Start, cfg.End, 0)
	cart := cartScene("cart", cfg.Start, cfg.End)
	scenes := []scene.Scene{sim, real, replay, cart}

	if err := c.AddScenes(scenes...); err != nil {
		return err
	}
	if err := c.SetBase(sim); err != nil {
		return err
	}

	if err := printTable(out, c, scenes); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := met.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", slog.String("path", cfg.MetricsFile))
	}
	return nil
}

// printTable writes one row per probe time and one column per scene. Probe
// times are evenly spaced instants of the shared timeline.
func printTable(out io.Writer, c *coordinator.Coordinator, scenes []scene.Scene) error {
	tl := c.Timeline()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "global\t")
	for _, sc := range scenes {
		fmt.Fprintf(tw, "%s\t", sc.Name())
	}
	fmt.Fprintln(tw)

	for k := 0; k < probes; k++ {
		global := tl.At(k * (tl.Len() - 1) / (probes - 1))
		times := c.DisplayTimes(global)
		fmt.Fprintf(tw, "%.3f\t", global)
		for _, sc := range scenes {
			fmt.Fprintf(tw, "%.3f\t", times[sc.ID()])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
