// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface_test

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsurface-viz/nodeviz/commands"
	"github.com/subsurface-viz/nodeviz/scene"
	. "github.com/subsurface-viz/nodeviz/subsurface"
	"github.com/subsurface-viz/nodeviz/tree"
)

type testScene struct {
	root  *scene.RootNode
	three *ThreeTargetNode
	flat  *MapTargetNode
	well  *WellNode
	traj  *TrajectoryNode
	gamma *FloatLogNode
	tops  *PointLogNode
}

func newTestScene(t *testing.T) *testScene {
	ts := &testScene{root: scene.NewRoot(NewFactory())}
	window := scene.WindowSize(math32.Vec2(1000, 500))
	ts.three = NewThreeTarget("3d", math32.B2(0, 0, 0.5, 1), window)
	ts.flat = NewMapTarget("map", math32.B2(0.5, 0, 1, 1), window)
	require.NoError(t, ts.root.AddTarget(ts.three))
	require.NoError(t, ts.root.AddTarget(ts.flat))

	ts.well = NewWell(ts.root.Data, "A-1", math32.Vec3(100, 200, 0))
	ts.traj = NewTrajectory(ts.well, "main",
		TrajectorySample{MD: 1000, Point: math32.Vec3(100, 200, -1000)},
		TrajectorySample{MD: 0, Point: math32.Vec3(100, 200, 0)},
		TrajectorySample{MD: 2000, Point: math32.Vec3(300, 200, -1800)},
	)
	logs := scene.NewFolder(ts.traj, "logs")
	ts.gamma = NewFloatLog(logs, "gamma", "API",
		FloatLogSample{MD: 500, Value: 40},
		FloatLogSample{MD: 1500, Value: 120},
		FloatLogSample{MD: 2500, Value: 80},
	)
	ts.tops = NewPointLog(ts.traj, "tops", PointLogSample{MD: 1000, Label: "Top Brent"})
	return ts
}

func TestTrajectory(t *testing.T) {
	ts := newTestScene(t)
	lo, hi, ok := ts.traj.MDRange()
	require.True(t, ok)
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(2000), hi)
	assert.Same(t, ts.well, ts.traj.Well())
	assert.Equal(t, []*TrajectoryNode{ts.traj}, ts.well.Trajectories())
	assert.Equal(t, "A-1 [1 trajectory]", ts.well.DisplayName())

	p, ok := ts.traj.PositionAt(1500)
	require.True(t, ok)
	assert.InDelta(t, 200, p.X, 1e-3)
	assert.InDelta(t, -1400, p.Z, 1e-3)
	p, ok = ts.traj.PositionAt(1000)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(100, 200, -1000), p)
	p, ok = ts.traj.PositionAt(0)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(100, 200, 0), p)
	_, ok = ts.traj.PositionAt(2001)
	assert.False(t, ok)

	var empty TrajectoryNode
	_, ok = empty.PositionAt(0)
	assert.False(t, ok)
}

func TestLogs(t *testing.T) {
	ts := newTestScene(t)
	assert.Same(t, ts.traj, ts.gamma.Trajectory())
	assert.Equal(t, "gamma [API]", ts.gamma.DisplayName())
	lo, hi, ok := ts.gamma.ValueRange()
	require.True(t, ok)
	assert.Equal(t, float32(40), lo)
	assert.Equal(t, float32(120), hi)
	assert.Equal(t, []float32{1000}, ts.tops.Depths())
	// the sample below the trajectory is skipped
	assert.Len(t, ts.gamma.Positions(ts.gamma.Depths()), 2)

	assert.True(t, tree.IsA(ts.gamma, KindLog))
	assert.True(t, tree.IsA(ts.tops, KindLog))

	orphan := NewFloatLog(ts.root.Data, "orphan", "")
	assert.Equal(t, scene.Disabled, orphan.CheckBoxState(ts.three))
	assert.False(t, orphan.SetVisibleInteractive(true, ts.three))
}

func TestTrajectorySamplesEnableLogs(t *testing.T) {
	ts := newTestScene(t)
	traj := NewTrajectory(ts.well, "sidetrack")
	gr := NewFloatLog(traj, "gr", "API", FloatLogSample{MD: 10, Value: 50})
	assert.Equal(t, scene.Disabled, gr.CheckBoxState(ts.three))
	// a disabled child counts as an unchecked one
	assert.Equal(t, scene.None, traj.CheckBoxState(ts.three))

	traj.SetSamples([]TrajectorySample{
		{MD: 0, Point: math32.Vec3(0, 0, 0)},
		{MD: 100, Point: math32.Vec3(0, 0, -100)},
	})
	assert.Equal(t, scene.None, gr.CheckBoxState(ts.three))
	assert.True(t, gr.SetVisibleInteractive(true, ts.three))
	assert.Equal(t, scene.All, gr.CheckBoxState(ts.three))

	traj.SetSamples(nil)
	assert.Equal(t, scene.All, gr.CheckBoxState(ts.three))
	require.True(t, gr.SetVisible(false, ts.three))
	assert.Equal(t, scene.Disabled, gr.CheckBoxState(ts.three))
}

func TestRegistrations(t *testing.T) {
	ts := newTestScene(t)
	f := ts.root.Factory

	// logs are reached through the general log kind, and only in 3D
	assert.True(t, f.CanCreate(ts.gamma, ts.three))
	assert.True(t, f.CanCreate(ts.tops, ts.three))
	assert.False(t, f.CanCreate(ts.gamma, ts.flat))
	assert.True(t, f.CanCreate(ts.traj, ts.flat))
	assert.False(t, f.CanCreate(ts.well, ts.three))

	axis := NewAxis(ts.root.Data)
	assert.True(t, f.CanCreate(axis, ts.three))
	assert.False(t, f.CanCreate(axis, ts.flat))

	// a log is disabled in the map, and the well only counts its trajectory there
	assert.Equal(t, scene.Never, ts.gamma.CheckBoxState(ts.flat))
	require.True(t, ts.well.SetVisibleInteractive(true, ts.flat))
	assert.Equal(t, scene.All, ts.well.CheckBoxState(ts.flat))
	assert.True(t, ts.traj.IsVisible(ts.flat))
	assert.Equal(t, scene.None, ts.well.CheckBoxState(ts.three))
}

func TestMeshViews(t *testing.T) {
	ts := newTestScene(t)
	require.True(t, ts.well.SetVisibleInteractive(true, ts.three))
	assert.True(t, ts.gamma.IsVisible(ts.three))
	assert.True(t, ts.tops.IsVisible(ts.three))

	tv, ok := ts.three.ViewOf(ts.traj).(*TrajectoryView)
	require.True(t, ok)
	assert.Len(t, tv.Vertices(), 3)
	assert.Equal(t, math32.B3(100, 200, -1800, 300, 200, 0), tv.BoundingBox())
	assert.False(t, tv.IsFlat())

	lv, ok := ts.three.ViewOf(ts.gamma).(*LogView)
	require.True(t, ok)
	assert.Len(t, lv.Vertices(), 2)

	require.True(t, ts.flat.ShowView(ts.traj))
	mv := ts.flat.ViewOf(ts.traj).(*TrajectoryView)
	assert.True(t, mv.IsFlat())
	for _, p := range mv.Vertices() {
		assert.Zero(t, p.Z)
	}

	// the bounding box follows the data when the views are touched
	ts.traj.SetSamples(append(ts.traj.Samples, TrajectorySample{MD: 3000, Point: math32.Vec3(500, 200, -2000)}))
	ts.three.UpdateAllViews()
	assert.Len(t, tv.Vertices(), 4)
	assert.Equal(t, float32(500), tv.BoundingBox().Max.X)

	require.True(t, ts.three.HideView(ts.traj))
	assert.True(t, tv.IsDisposed())
	assert.Nil(t, tv.Vertices())
}

func TestSurfaceAndPointCloud(t *testing.T) {
	ts := newTestScene(t)
	nan := math32.NaN()
	s, err := NewSurface(ts.root.Data, "horizon", math32.Vec2(0, 0), math32.Vec2(10, 20), 3, 2,
		[]float32{-100, -110, nan, -120, -130, -140})
	require.NoError(t, err)
	_, err = NewSurface(ts.root.Data, "bad", math32.Vec2(0, 0), math32.Vec2(1, 1), 2, 2, []float32{1})
	assert.Error(t, err)

	z, ok := s.ZAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, float32(-130), z)
	_, ok = s.ZAt(2, 0)
	assert.False(t, ok)
	_, ok = s.ZAt(3, 0)
	assert.False(t, ok)
	p, ok := s.PointAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(20, 20, -140), p)
	assert.Len(t, s.Points(), 5)

	require.True(t, ts.three.ShowView(s))
	sv := ts.three.ViewOf(s).(*SurfaceView)
	assert.Equal(t, math32.B3(0, 0, -140, 20, 20, -100), sv.BoundingBox())

	pc := NewPointCloud(ts.root.Data, "picks", math32.Vec3(1, 2, 3), math32.Vec3(4, 5, 6))
	assert.Equal(t, "picks [2 points]", pc.DisplayName())
	require.True(t, ts.three.ShowView(pc))
	v := ts.three.ViewOf(pc)
	require.True(t, ts.three.HideView(pc))
	// the point cloud view stays alive while hidden
	assert.Same(t, v, ts.three.ViewOf(pc))
	assert.Equal(t, scene.Hidden, v.AsView().State())
	assert.Len(t, v.(*PointCloudView).Vertices(), 2)
}

func TestAxis(t *testing.T) {
	ts := newTestScene(t)
	axis := NewAxis(ts.root.Data)
	require.True(t, ts.three.ShowView(axis))
	av := ts.three.ViewOf(axis).(*AxisView)
	assert.Empty(t, av.Lines())
	// the axis does not take part in framing
	assert.True(t, ts.three.BoundingBoxFromViews().IsEmpty())

	require.True(t, ts.three.ShowView(ts.traj))
	ts.three.UpdateAllViews()
	lines := av.Lines()
	require.Len(t, lines, 24)
	box := math32.B3Empty()
	box.ExpandByPoints(lines)
	assert.Equal(t, ts.three.BoundingBoxFromViews(), box)
	for i := 0; i < len(lines); i += 2 {
		d := lines[i+1].Sub(lines[i])
		nonzero := 0
		for _, c := range []float32{d.X, d.Y, d.Z} {
			if c != 0 {
				nonzero++
			}
		}
		// the trajectory is flat in y, so the y edges have zero length
		assert.LessOrEqual(t, nonzero, 1)
	}
}

func TestTargets(t *testing.T) {
	ts := newTestScene(t)
	assert.True(t, tree.IsA(ts.three, scene.KindRenderTarget))
	assert.Equal(t, KindMapTarget, tree.KindOf(ts.flat))
	assert.True(t, ts.three.IsPerspective())
	assert.False(t, ts.flat.IsPerspective())
	assert.InDelta(t, 1, ts.flat.ActiveCamera().Direction().Z, 1e-6)
	assert.Equal(t, math32.B2(500, 0, 1000, 500), ts.flat.PixelRange())
	assert.Equal(t, scene.Target(ts.three), ts.root.ActiveTarget())
}

func TestToolbar(t *testing.T) {
	ts := newTestScene(t)
	tb := Toolbar(ts.three.AsRenderTarget())
	axisCmd := tb.Find("Toggle axis")
	require.NotNil(t, axisCmd)
	assert.False(t, axisCmd.IsEnabled())

	axis := NewAxis(ts.root.Data)
	assert.True(t, axisCmd.IsEnabled())
	assert.False(t, axisCmd.IsChecked())
	assert.True(t, commands.Invoke(axisCmd))
	assert.True(t, axis.IsVisible(ts.three))
	assert.True(t, axisCmd.IsChecked())
	assert.True(t, commands.Invoke(axisCmd))
	assert.False(t, axis.IsVisible(ts.three))

	mtb := Toolbar(ts.flat.AsRenderTarget())
	assert.Equal(t, []string{commands.GroupActions}, mtb.Groups())
	assert.Nil(t, mtb.Find("Toggle axis"))
	assert.Len(t, mtb.Commands(), 2)
}
