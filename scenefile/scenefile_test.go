// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile_test

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subsurface-viz/nodeviz/config"
	"github.com/subsurface-viz/nodeviz/scene"
	. "github.com/subsurface-viz/nodeviz/scenefile"
	"github.com/subsurface-viz/nodeviz/subsurface"
)

const testScene = `
targets:
  - name: 3d
    fraction: [0, 0, 0.5, 1]
  - name: map
    kind: map
    fraction: [0.5, 0, 1, 1]
    light: true
data:
  - kind: folder
    name: wells
    children:
      - kind: well
        name: A-1
        color: "#ff0000"
        trajectories:
          - name: main
            samples:
              - [0, 0, 0, 0]
              - [100, 0, 0, -100]
            logs:
              - name: gr
                unit: API
                values: [[10, 50], [20, 60]]
              - name: tops
                kind: point
                events:
                  - {md: 50, label: Top A}
  - kind: surface
    name: top
    inc: [10, 10]
    nx: 2
    ny: 2
    z: [-10, -12, null, -11]
  - kind: point-cloud
    name: cloud
    points: [[1, 2, 3], [4, 5, 6]]
  - kind: axis
actions:
  - op: show
    node: data/wells
  - op: show
    node: data/top
    target: map
  - op: view-all
  - op: toggle-background
    target: 3d
`

func build(t *testing.T, src string) *scene.RootNode {
	t.Helper()
	f, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	root, err := f.Build(nil, nil)
	require.NoError(t, err)
	return root
}

func TestBuild(t *testing.T) {
	root := build(t, testScene)

	targets := root.Targets()
	require.Len(t, targets, 2)
	three, ok := targets[0].(*subsurface.ThreeTargetNode)
	require.True(t, ok)
	mp, ok := targets[1].(*subsurface.MapTargetNode)
	require.True(t, ok)
	assert.Equal(t, scene.Target(three), root.ActiveTarget())
	assert.Equal(t, math32.Vec2(640, 800), three.RenderSize())
	assert.False(t, three.IsLightBackground)
	assert.True(t, mp.IsLightBackground)
	assert.Equal(t, scene.DefaultLightBackground, mp.BackgroundColor())

	well, ok := root.FindPath("data/wells/A-1").(*subsurface.WellNode)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, well.Color)
	assert.Equal(t, "A-1 [1 trajectory]", well.DisplayName())
	trajs := well.Trajectories()
	require.Len(t, trajs, 1)
	p, ok := trajs[0].PositionAt(50)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(0, 0, -50), p)

	gr, ok := root.FindPath("data/wells/A-1/main/gr").(*subsurface.FloatLogNode)
	require.True(t, ok)
	assert.Equal(t, "API", gr.Unit)
	_, ok = root.FindPath("data/wells/A-1/main/tops").(*subsurface.PointLogNode)
	assert.True(t, ok)

	top, ok := root.FindPath("data/top").(*subsurface.SurfaceNode)
	require.True(t, ok)
	z, ok := top.ZAt(1, 0)
	assert.True(t, ok)
	assert.Equal(t, float32(-12), z)
	_, ok = top.ZAt(0, 1)
	assert.False(t, ok)

	cloud, ok := root.FindPath("data/cloud").(*subsurface.PointCloudNode)
	require.True(t, ok)
	assert.Len(t, cloud.Points, 2)
	assert.NotNil(t, root.FindPath("data/axis"))

	// nothing is shown before the actions are applied
	assert.Zero(t, three.NumViews())
	assert.Zero(t, mp.NumViews())
}

func TestApply(t *testing.T) {
	f, err := Load(strings.NewReader(testScene))
	require.NoError(t, err)
	root, err := f.Build(nil, nil)
	require.NoError(t, err)
	require.NoError(t, f.Apply(root))

	three := root.TargetByName("3d").(*subsurface.ThreeTargetNode)
	mp := root.TargetByName("map").(*subsurface.MapTargetNode)

	main := root.FindPath("data/wells/A-1/main").(scene.Node)
	gr := root.FindPath("data/wells/A-1/main/gr").(scene.Node)
	top := root.FindPath("data/top").(scene.Node)
	assert.True(t, main.AsNode().IsVisible(three))
	assert.True(t, gr.AsNode().IsVisible(three))
	assert.False(t, main.AsNode().IsVisible(mp))
	assert.True(t, top.AsNode().IsVisible(mp))
	assert.False(t, top.AsNode().IsVisible(three))
	assert.Equal(t, scene.All, root.FindPath("data/wells").(scene.Node).AsNode().CheckBoxState(three))

	assert.True(t, three.IsLightBackground)
	assert.False(t, three.BoundingBoxFromViews().IsEmpty())
	assert.Equal(t, three.BoundingBoxFromViews().Center(), three.ActiveCamera().LookAt)
}

func TestApplyActions(t *testing.T) {
	root := build(t, testScene)
	three := root.TargetByName("3d").(*subsurface.ThreeTargetNode)
	mp := root.TargetByName("map").(*subsurface.MapTargetNode)
	top := root.FindPath("data/top").(scene.Node)

	apply := func(a Action) bool {
		t.Helper()
		changed, err := a.Apply(root)
		require.NoError(t, err)
		return changed
	}

	assert.True(t, apply(Action{Op: "toggle", Node: "data/top"}))
	assert.True(t, top.AsNode().IsVisible(three))
	assert.True(t, apply(Action{Op: "view-from", Direction: "north", Target: "3d"}))
	assert.True(t, apply(Action{Op: "hide", Node: "data/top"}))
	// there is nothing left to frame
	assert.False(t, apply(Action{Op: "view-all"}))
	assert.False(t, apply(Action{Op: "hide", Node: "data/top"}))

	assert.True(t, apply(Action{Op: "activate", Node: "targets/map"}))
	assert.Equal(t, scene.Target(mp), root.ActiveTarget())
	assert.False(t, apply(Action{Op: "activate", Node: "targets/map"}))
	assert.True(t, apply(Action{Op: "show", Node: "data/top"}))
	assert.True(t, top.AsNode().IsVisible(mp))

	assert.True(t, apply(Action{Op: "toggle-camera", Target: "3d"}))
	assert.False(t, three.IsPerspective())

	assert.True(t, apply(Action{Op: "resize", Width: 1000, Height: 500}))
	assert.Equal(t, math32.Vec2(500, 500), three.RenderSize())
	assert.Equal(t, math32.Vec2(500, 500), mp.RenderSize())

	assert.True(t, apply(Action{Op: "remove", Node: "data/top"}))
	assert.Nil(t, root.FindPath("data/top"))
	assert.Zero(t, mp.NumViews())
}

func TestActionErrors(t *testing.T) {
	root := build(t, testScene)
	for _, a := range []Action{
		{Op: "show"},
		{Op: "show", Node: "data/nothing"},
		{Op: "show", Node: "data/top", Target: "side"},
		{Op: "view-from", Direction: "up"},
		{Op: "resize"},
		{Op: "explode"},
	} {
		_, err := a.Apply(root)
		assert.Error(t, err, "%s", &a)
	}

	f := &File{Actions: []Action{{Op: "show", Node: "data/top"}, {Op: "explode"}}}
	err := f.Apply(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action 1 (explode)")
	// the actions before the failing one are applied
	assert.True(t, root.FindPath("data/top").(scene.Node).AsNode().IsVisible(nil))
}

func TestActionSuggestions(t *testing.T) {
	root := build(t, testScene)

	_, err := (&Action{Op: "show", Node: "data/wells/A-2"}).Apply(root)
	assert.ErrorContains(t, err, `no node at path "data/wells/A-2"; did you mean "data/wells/A-1"?`)

	_, err = (&Action{Op: "show", Node: "data/top", Target: "3D"}).Apply(root)
	assert.ErrorContains(t, err, `did you mean "3d"?`)

	_, err = (&Action{Op: "show", Node: "xyzzy"}).Apply(root)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestBuildDefaults(t *testing.T) {
	root := build(t, "data:\n  - kind: folder\n    name: empty\n")
	targets := root.Targets()
	require.Len(t, targets, 1)
	assert.Equal(t, "3d", targets[0].AsTree().Name)
	_, ok := targets[0].(*subsurface.ThreeTargetNode)
	assert.True(t, ok)

	cfg := config.Default()
	cfg.Targets = []config.Target{{Name: "plan", Kind: config.TargetMap, Fraction: [4]float32{0, 0, 1, 1}}}
	margin := float32(20)
	cfg.Targets[0].Margin = &margin
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	root, err = f.Build(subsurface.NewFactory(), cfg)
	require.NoError(t, err)
	mp, ok := root.TargetByName("plan").(*subsurface.MapTargetNode)
	require.True(t, ok)
	assert.Equal(t, float32(20), mp.Margin)
	assert.Equal(t, math32.Vec2(1260, 780), mp.RenderSize())
	assert.False(t, mp.IsPerspective())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("data:\n  - kind: well\n    depth: 3\n"))
	assert.Error(t, err)

	for _, src := range []string{
		"data:\n  - kind: volcano\n",
		"data:\n  - kind: surface\n    nx: 2\n    ny: 2\n    z: [1]\n",
		"data:\n  - kind: well\n    children:\n      - kind: folder\n",
		"data:\n  - kind: folder\n    color: reddish\n",
		"data:\n  - kind: well\n    trajectories:\n      - name: t\n        logs:\n          - {name: l, kind: curve}\n",
		"targets:\n  - {name: side, kind: side, fraction: [0, 0, 1, 1]}\n",
		"targets:\n  - name: side\n    fraction: [0, 0, 2, 1]\n",
		"targets:\n  - {name: a, fraction: [0, 0, 1, 1]}\n  - {name: a, fraction: [0, 0, 1, 1]}\n",
	} {
		f, err := Load(strings.NewReader(src))
		require.NoError(t, err, src)
		_, err = f.Build(nil, nil)
		assert.Error(t, err, src)
	}
}

func TestWrite(t *testing.T) {
	f, err := Load(strings.NewReader(testScene))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, f.Write(&b))
	g, err := Load(&b)
	require.NoError(t, err)
	assert.Equal(t, f, g)
}
