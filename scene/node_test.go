// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

func TestCheckBoxAggregation(t *testing.T) {
	ts := newTestScene(t)
	parent := NewFolder(ts.root.Data, "parent")
	kids := []*testNode{
		newTestNode(parent, "k0"),
		newTestNode(parent, "k1"),
		newTestNode(parent, "k2"),
	}
	tg := ts.plain

	tests := []struct {
		visible []bool
		want    CheckBoxState
	}{
		{[]bool{true, true, true}, All},
		{[]bool{true, false, true}, Some},
		{[]bool{false, false, false}, None},
		{[]bool{false, true, false}, Some},
		{[]bool{true, true, true}, All},
	}
	for _, test := range tests {
		for i, k := range kids {
			k.SetVisible(test.visible[i], tg)
		}
		assert.Equal(t, test.want, parent.CheckBoxState(tg), "%v", test.visible)
		// the ancestors follow, since the other folders have no candidates
		assert.Equal(t, test.want, ts.root.Data.CheckBoxState(tg))
		assert.Equal(t, test.want, ts.root.CheckBoxState(tg))
		// the other target is not affected
		assert.Equal(t, None, parent.CheckBoxState(ts.render))
	}
	assert.Equal(t, Never, ts.root.TargetFolder.CheckBoxState(tg))
}

func TestCheckBoxOwnCandidate(t *testing.T) {
	ts := newTestScene(t)
	well := newTestNode(ts.root.Data, "well")
	log := newTestNode(well, "log")

	require.True(t, ts.plain.ShowView(log))
	assert.Equal(t, Some, well.CheckBoxState(ts.plain))
	require.True(t, ts.plain.ShowView(well))
	assert.Equal(t, All, well.CheckBoxState(ts.plain))
	require.True(t, ts.plain.HideView(log))
	assert.Equal(t, Some, well.CheckBoxState(ts.plain))
	assert.Equal(t, None, log.CheckBoxState(ts.plain))
}

func TestCheckBoxTreeChanges(t *testing.T) {
	ts := newTestScene(t)
	parent := NewFolder(ts.root.Data, "parent")
	a := newTestNode(parent, "a")
	require.True(t, a.SetVisible(true, ts.plain))
	assert.Equal(t, All, parent.CheckBoxState(ts.plain))

	b := newTestNode(parent, "b")
	assert.Equal(t, Some, parent.CheckBoxState(ts.plain))
	assert.Equal(t, Some, ts.root.CheckBoxState(ts.plain))

	require.NoError(t, b.Remove())
	assert.Equal(t, All, parent.CheckBoxState(ts.plain))
	assert.Equal(t, All, ts.root.CheckBoxState(ts.plain))

	require.NoError(t, a.Remove())
	assert.Equal(t, Never, parent.CheckBoxState(ts.plain))
}

func TestCheckBoxTreeMoves(t *testing.T) {
	ts := newTestScene(t)
	p := NewFolder(ts.root.Data, "p")
	q := NewFolder(ts.root.Data, "q")
	a := newTestNode(p, "a")
	b := newTestNode(p, "b")
	require.True(t, a.SetVisible(true, ts.plain))
	assert.Equal(t, Some, p.CheckBoxState(ts.plain))

	require.NoError(t, tree.MoveToParent(b, q))
	assert.Equal(t, All, p.CheckBoxState(ts.plain))
	assert.Equal(t, None, q.CheckBoxState(ts.plain))

	c := newTestNode(p, "c")
	assert.Equal(t, Some, p.CheckBoxState(ts.plain))
	assert.True(t, p.DeleteChild(c))
	assert.Equal(t, All, p.CheckBoxState(ts.plain))
	assert.True(t, c.IsDestroyed())

	require.True(t, b.SetVisible(true, ts.plain))
	d := newTestNode(q, "d")
	assert.Equal(t, Some, ts.root.Data.CheckBoxState(ts.plain))
	q.DeleteChildren()
	assert.Equal(t, All, ts.root.Data.CheckBoxState(ts.plain))
	assert.Equal(t, Never, q.CheckBoxState(ts.plain))
	assert.True(t, d.IsDestroyed())
}

func TestInvalidateCheckBoxStates(t *testing.T) {
	ts := newTestScene(t)
	well := NewFolder(ts.root.Data, "well")
	n := newTestNode(well, "n")
	assert.Equal(t, None, n.CheckBoxState(ts.plain))
	assert.Equal(t, None, well.CheckBoxState(ts.plain))

	// the scene does not see this change until it is told
	n.uncheckable = true
	assert.Equal(t, None, n.CheckBoxState(ts.plain))
	well.InvalidateCheckBoxStates()
	assert.Equal(t, Disabled, n.CheckBoxState(ts.plain))
	assert.Equal(t, None, ts.root.CheckBoxState(ts.plain))
}

func TestCanBeDeleted(t *testing.T) {
	ts := newTestScene(t)
	assert.False(t, ts.root.CanBeDeleted())
	assert.False(t, ts.root.Data.CanBeDeleted())
	assert.False(t, ts.root.TargetFolder.CanBeDeleted())
	assert.True(t, ts.root.Data.IsLabelInItalic())

	assert.ErrorIs(t, ts.root.Data.Remove(), tree.ErrInvalidOperation)
	assert.ErrorIs(t, ts.root.TargetFolder.Remove(), tree.ErrInvalidOperation)
	assert.False(t, ts.root.Data.IsDestroyed())

	n := newTestNode(ts.root.Data, "n")
	assert.True(t, n.CanBeDeleted())
	assert.False(t, n.IsLabelInItalic())
	assert.False(t, n.IsLabelInBold())
	require.NoError(t, n.Remove())

	// a removed node can not come back
	assert.ErrorIs(t, ts.root.Data.AddChild(n), tree.ErrInvalidOperation)
	assert.Empty(t, ts.root.Data.Children)
}

func TestSortChildrenByName(t *testing.T) {
	ts := newTestScene(t)
	f := NewFolder(ts.root.Data, "f")
	for _, name := range []string{"eu", "beta", "Alpha", "alpha", "Étoile", "delta"} {
		newTestNode(f, name)
	}
	f.SortChildrenByName()
	var got []string
	for _, k := range f.Children {
		got = append(got, k.AsTree().Name)
	}
	assert.Equal(t, []string{"alpha", "Alpha", "beta", "delta", "Étoile", "eu"}, got)
}

func TestCheckBoxDisabled(t *testing.T) {
	ts := newTestScene(t)
	n := newTestNode(ts.root.Data, "n")
	n.uncheckable = true
	assert.Equal(t, Disabled, n.CheckBoxState(ts.plain))
	assert.False(t, n.SetVisibleInteractive(true, ts.plain))
	assert.False(t, n.ToggleVisibleInteractive(ts.plain))
	assert.False(t, n.IsVisible(ts.plain))

	// showing it directly is still allowed, and hiding it interactively works
	require.True(t, ts.plain.ShowView(n))
	assert.Equal(t, All, n.CheckBoxState(ts.plain))
	assert.True(t, n.ToggleVisibleInteractive(ts.plain))
	assert.Equal(t, Disabled, n.CheckBoxState(ts.plain))
}

func TestSetVisibleInteractive(t *testing.T) {
	ts := newTestScene(t)
	well := NewFolder(ts.root.Data, "well")
	a := newTestNode(well, "a")
	b := newTestNode(well, "b")
	o := &otherNode{}
	AddNode(well, o)

	// a nil target is the active target, which is the render target
	assert.True(t, well.SetVisibleInteractive(true, nil))
	assert.True(t, a.IsVisible(ts.render))
	assert.True(t, b.IsVisible(ts.render))
	assert.False(t, a.IsVisible(ts.plain))
	assert.Equal(t, All, well.CheckBoxState(nil))
	assert.False(t, well.SetVisibleInteractive(true, nil))

	require.True(t, b.SetVisible(false, ts.render))
	assert.Equal(t, Some, well.CheckBoxState(ts.render))
	assert.True(t, well.ToggleVisibleInteractive(ts.render))
	assert.Equal(t, None, well.CheckBoxState(ts.render))
	assert.False(t, a.IsVisible(ts.render))

	assert.True(t, well.ToggleVisibleInteractive(ts.render))
	assert.Equal(t, All, well.CheckBoxState(ts.render))
	assert.False(t, o.ToggleVisibleInteractive(ts.render))
}

func TestSetActiveInteractive(t *testing.T) {
	ts := newTestScene(t)
	cam0 := ts.render.ActiveCamera()
	require.NotNil(t, cam0)
	assert.True(t, cam0.IsActive())

	cam1 := NewCamera(ts.render)
	assert.True(t, cam1.SetActiveInteractive())
	assert.False(t, cam0.IsActive())
	assert.Same(t, cam1, ts.render.ActiveCamera())
	assert.False(t, cam1.SetActiveInteractive())

	n := newTestNode(ts.root.Data, "n")
	assert.False(t, n.SetActiveInteractive())
}

type namedNode struct {
	NodeBase
}

func (n *namedNode) NameExtension() string { return "3 logs" }

func TestNodeDefaults(t *testing.T) {
	ts := newTestScene(t)
	a := newTestNode(ts.root.Data, "a")
	b := newTestNode(ts.root.Data, "b")
	assert.NotZero(t, a.Color.A)
	assert.NotEqual(t, a.Color, b.Color)
	assert.Equal(t, ts.root, a.Root())
	assert.Equal(t, "a", a.DisplayName())

	nn := &namedNode{}
	nn.Name = "well"
	AddNode(ts.root.Data, nn)
	assert.Equal(t, "well [3 logs]", nn.DisplayName())

	assert.True(t, tree.IsA(ts.render, KindTarget))
	assert.True(t, tree.IsA(ts.render, KindNode))
	assert.Equal(t, KindRenderTarget, tree.KindOf(ts.render))
	assert.Equal(t, KindFolder, tree.KindOf(ts.root.Data))
}
