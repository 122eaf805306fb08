// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// ThreeTargetNode is a render target that shows the scene in 3D.
type ThreeTargetNode struct {
	scene.RenderTargetNode
}

// NewThreeTarget returns a new 3D target covering the given
// fraction of the window.
func NewThreeTarget(name string, fraction math32.Box2, window scene.WindowSizer) *ThreeTargetNode {
	t := &ThreeTargetNode{}
	t.Name = name
	t.FractionRange = fraction
	t.Window = window
	tree.InitNode(t)
	return t
}

func (t *ThreeTargetNode) Kinds() []tree.Kind {
	return tree.Kinds(KindThreeTarget, t.RenderTargetNode.Kinds())
}

// MapTargetNode is a render target that shows the scene from above,
// flattened onto the z = 0 plane, with an orthographic camera.
type MapTargetNode struct {
	scene.RenderTargetNode
}

// NewMapTarget returns a new map target covering the given
// fraction of the window.
func NewMapTarget(name string, fraction math32.Box2, window scene.WindowSizer) *MapTargetNode {
	t := &MapTargetNode{}
	t.Name = name
	t.FractionRange = fraction
	t.Window = window
	tree.InitNode(t)
	return t
}

func (t *MapTargetNode) Init() {
	t.RenderTargetNode.Init()
	if cam := t.ActiveCamera(); cam != nil {
		cam.Perspective = false
		cam.SetDirection(scene.FromTop.Vector())
	}
}

func (t *MapTargetNode) Kinds() []tree.Kind {
	return tree.Kinds(KindMapTarget, t.RenderTargetNode.Kinds())
}
