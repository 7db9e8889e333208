// SPDX-License-Identifier: MIT

package coordinator

import (
	"errors"
	"fmt"
	"time"

	"github.com/uwgraphics/MotionComparator-sub002/channel"
	"github.com/uwgraphics/MotionComparator-sub002/dtw"
	"github.com/uwgraphics/MotionComparator-sub002/scene"
	"github.com/uwgraphics/MotionComparator-sub002/timeline"
	"github.com/uwgraphics/MotionComparator-sub002/timewarp"
)

// Recompute aligns every scene in scenes against base on tl and returns the
// resulting maps. It touches no scene state beyond sampling.
//
// Steps:
//  1. Sample base with uniqueness filtering only.
//  2. If base has no channels, return an Unwarped result (Report.Base == "").
//  3. For each other scene: sample its flagged channels of robots present in
//     base, intersect by key, align K×K on the model cost and resolve the
//     path against tl. Scenes without overlap are listed as unwarped.
//
// The base scene itself (matched by ID) never receives a map.
func Recompute(base scene.Scene, scenes []scene.Scene, tl timeline.Timeline, opts dtw.Options) (Result, error) {
	began := time.Now()
	times := tl.Times()
	res := Result{
		Warps: make(map[string]*timewarp.Map),
		Report: Report{
			Samples:  len(times),
			Channels: make(map[string]int),
			Distance: make(map[string]float64),
		},
	}

	others := make([]scene.Scene, 0, len(scenes))
	for _, sc := range scenes {
		if sc.ID() != base.ID() {
			others = append(others, sc)
		}
	}

	baseSet, err := scene.Sample(base, tl, scene.BaseFilter())
	if err != nil {
		return Result{}, fmt.Errorf("base: %w", err)
	}
	if baseSet.Len() == 0 {
		for _, sc := range others {
			res.Report.Unwarped = append(res.Report.Unwarped, sc.ID())
		}
		res.Report.Duration = time.Since(began)
		return res, nil
	}
	res.Report.Base = base.ID()

	for _, sc := range others {
		set, err := scene.Sample(sc, tl, scene.CandidateFilter(baseSet))
		if err != nil {
			return Result{}, err
		}
		model, err := channel.NewModel(baseSet, set)
		if errors.Is(err, channel.ErrNoComparableChannels) {
			res.Report.Unwarped = append(res.Report.Unwarped, sc.ID())
			continue
		}
		if err != nil {
			return Result{}, fmt.Errorf("scene %q: %w", sc.Name(), err)
		}

		mx, err := dtw.Accumulate(len(times), len(times), model.CostFunc(), &opts)
		if err != nil {
			return Result{}, fmt.Errorf("scene %q: align: %w", sc.Name(), err)
		}
		res.Warps[sc.ID()] = timewarp.FromPath(times, times, mx.Path())
		res.Report.Warped = append(res.Report.Warped, sc.ID())
		res.Report.Channels[sc.ID()] = model.Len()
		res.Report.Distance[sc.ID()] = mx.Distance()
	}

	res.Report.Duration = time.Since(began)
	return res, nil
}
