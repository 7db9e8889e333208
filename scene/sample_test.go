// SPDX-License-Identifier: MIT

package scene_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uwgraphics/MotionComparator-sub002/channel"
	"github.com/uwgraphics/MotionComparator-sub002/keyframe"
	"github.com/uwgraphics/MotionComparator-sub002/scene"
	"github.com/uwgraphics/MotionComparator-sub002/timeline"
)

func TestSample_ExcludesDuplicateNames(t *testing.T) {
	twin := func() *keyframe.Robot { return keyframe.NewRobot("twin") }
	arm := keyframe.NewRobot("arm",
		keyframe.WithLinks(keyframe.NewPart("a"), keyframe.NewPart("a"), keyframe.NewPart("b")),
		keyframe.WithJoints(keyframe.NewPart("a")),
	)
	sc := keyframe.NewScene("s", twin(), twin(), arm)

	set, err := scene.Sample(sc, timeline.Default(0, 1), scene.BaseFilter())
	require.NoError(t, err)

	assert.False(t, set.HasRobot("twin"), "duplicate robot names are excluded")
	assert.Equal(t, []channel.Key{
		channel.Root("arm"),
		channel.Link("arm", "b"),
		channel.Joint("arm", "a"),
	}, set.Keys(), "duplicate link dropped; joint of the same name is a separate kind")
	assert.Equal(t, timeline.Default(0, 1).Len(), set.Samples())
}

func TestCandidateFilter(t *testing.T) {
	base := channel.NewSet(1)
	require.NoError(t, base.AddPosition(channel.Root("arm"), make([]channel.Vec3, 1)))

	elbow := keyframe.NewPart("elbow", keyframe.IncludeAngle())
	wrist := keyframe.NewPart("wrist", keyframe.IncludePos())
	arm := keyframe.NewRobot("arm",
		keyframe.IncludeRootPos(),
		keyframe.WithLinks(keyframe.NewPart("forearm")),
		keyframe.WithJoints(elbow, wrist),
		keyframe.WithArticulated(elbow, wrist),
	)
	other := keyframe.NewRobot("other", keyframe.IncludeRootPos())
	sc := keyframe.NewScene("real", arm, other)

	tl, err := timeline.FromTimes([]float64{0})
	require.NoError(t, err)
	set, err := scene.Sample(sc, tl, scene.CandidateFilter(base))
	require.NoError(t, err)

	assert.Equal(t, []channel.Key{
		channel.Root("arm"),
		channel.Joint("arm", "wrist"),
		channel.Angle("arm", "elbow"),
	}, set.Keys(), "only flagged channels of robots present in the base")
}

// stubScene returns canned frame data regardless of the filter.
type stubScene struct {
	*keyframe.Scene
	data scene.FrameData
	err  error
}

func (s stubScene) FrameData([]float64, scene.Filter) (scene.FrameData, error) {
	return s.data, s.err
}

func TestSample_BoundaryViolations(t *testing.T) {
	hidden := keyframe.NewRobot("dup")
	r := keyframe.NewRobot("arm")
	inner := keyframe.NewScene("s", r, hidden, keyframe.NewRobot("dup"))
	tl := timeline.Default(0, 1)

	short := stubScene{Scene: inner, data: scene.FrameData{{Robot: r, Root: make([]channel.Vec3, 2)}}}
	_, err := scene.Sample(short, tl, scene.BaseFilter())
	assert.ErrorIs(t, err, scene.ErrMisaligned)
	assert.ErrorIs(t, err, channel.ErrLengthMismatch)

	filtered := stubScene{Scene: inner, data: scene.FrameData{{Robot: hidden, Root: make([]channel.Vec3, tl.Len())}}}
	_, err = scene.Sample(filtered, tl, scene.BaseFilter())
	assert.ErrorIs(t, err, scene.ErrUnexpectedFrames)

	twice := stubScene{Scene: inner, data: scene.FrameData{
		{Robot: r, Root: make([]channel.Vec3, tl.Len())},
		{Robot: r, Root: make([]channel.Vec3, tl.Len())},
	}}
	_, err = scene.Sample(twice, tl, scene.BaseFilter())
	assert.ErrorIs(t, err, scene.ErrUnexpectedFrames)
	assert.ErrorIs(t, err, channel.ErrDuplicateKey)

	boom := errors.New("boom")
	_, err = scene.Sample(stubScene{Scene: inner, err: boom}, tl, scene.BaseFilter())
	assert.ErrorIs(t, err, boom)
}
