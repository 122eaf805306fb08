// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene_test

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/require"

	. "github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

const (
	kindTest  tree.Kind = "test-node"
	kindSub   tree.Kind = "sub-node"
	kindAlive tree.Kind = "alive-node"
	kindOther tree.Kind = "other-node"
)

// testNode is a node with a bounding box that its views report.
type testNode struct {
	NodeBase
	box         math32.Box3
	uncheckable bool
}

func (n *testNode) Kinds() []tree.Kind { return tree.Kinds(kindTest, n.NodeBase.Kinds()) }

func (n *testNode) CanBeChecked(t Target) bool { return !n.uncheckable }

// subNode has no registration of its own and is shown
// through the registration of testNode.
type subNode struct {
	testNode
}

func (n *subNode) Kinds() []tree.Kind { return tree.Kinds(kindSub, n.testNode.Kinds()) }

// aliveNode has views that stay alive when hidden.
type aliveNode struct {
	testNode
}

func (n *aliveNode) Kinds() []tree.Kind { return tree.Kinds(kindAlive, n.testNode.Kinds()) }

// otherNode has no views at all.
type otherNode struct {
	NodeBase
}

func (n *otherNode) Kinds() []tree.Kind { return tree.Kinds(kindOther, n.NodeBase.Kinds()) }

// testView records its hook calls in a shared log.
type testView struct {
	ViewBase
	stayAlive bool
	box       math32.Box3
	touched   int
	log       *[]string
}

func (v *testView) record(event string) {
	if v.log != nil {
		*v.log = append(*v.log, v.Node().AsTree().Name+":"+event)
	}
}

func (v *testView) Initialize() {
	if tn, ok := v.Node().(interface{ testBox() math32.Box3 }); ok {
		v.box = tn.testBox()
	}
	v.record("init")
}

func (v *testView) OnShow()                    { v.record("show") }
func (v *testView) OnHide()                    { v.record("hide") }
func (v *testView) Dispose()                   { v.record("dispose") }
func (v *testView) StayAliveIfInvisible() bool { return v.stayAlive }
func (v *testView) BoundingBox() math32.Box3   { return v.box }
func (v *testView) Touch()                     { v.touched++ }

func (n *testNode) testBox() math32.Box3 { return n.box }

// testScene is a scene with a render target and a plain target.
type testScene struct {
	root    *RootNode
	render  *RenderTargetNode
	plain   *TargetNode
	factory *Factory
	log     []string
}

func newTestScene(t *testing.T, opts ...FactoryOption) *testScene {
	ts := &testScene{}
	f := NewFactory(opts...)
	f.Register(kindTest, KindTarget, func() View { return &testView{log: &ts.log} })
	f.Register(kindAlive, KindTarget, func() View { return &testView{stayAlive: true, log: &ts.log} })
	ts.factory = f
	ts.root = NewRoot(f)
	ts.render = NewRenderTarget("render", math32.B2(0, 0, 1, 1), WindowSize(math32.Vec2(800, 600)))
	require.NoError(t, ts.root.AddTarget(ts.render))
	ts.plain = NewTarget("plain")
	require.NoError(t, ts.root.AddTarget(ts.plain))
	return ts
}

func newTestNode(parent tree.Node, name string) *testNode {
	n := &testNode{}
	n.Name = name
	AddNode(parent, n)
	return n
}

func newAliveNode(parent tree.Node, name string) *aliveNode {
	n := &aliveNode{}
	n.Name = name
	AddNode(parent, n)
	return n
}
