// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// AxisNode is the decoration that draws the edges of the bounding box of
// the other views in a 3D target. It is toggled from the toolbar.
type AxisNode struct {
	scene.NodeBase
}

// NewAxis returns a new axis added to the given parent.
func NewAxis(parent tree.Node) *AxisNode {
	a := &AxisNode{}
	a.Name = "axis"
	scene.AddNode(parent, a)
	return a
}

func (a *AxisNode) Kinds() []tree.Kind {
	return tree.Kinds(KindAxis, a.NodeBase.Kinds())
}

// AxisView draws the twelve edges of the bounding box of the other views
// of its target, as pairs of vertices. It has no bounding box of its own,
// so it does not take part in framing. The edges follow the other views
// when the target touches its views.
type AxisView struct {
	scene.ViewBase
	lines []math32.Vector3
}

func (v *AxisView) Initialize() { v.Touch() }
func (v *AxisView) Dispose()    { v.lines = nil }

// Lines returns the edges as pairs of vertices.
func (v *AxisView) Lines() []math32.Vector3 { return v.lines }

// Touch rebuilds the edges from the bounding box of the target.
func (v *AxisView) Touch() {
	v.lines = nil
	bt, ok := v.Target().(interface{ BoundingBoxFromViews() math32.Box3 })
	if !ok {
		return
	}
	box := bt.BoundingBoxFromViews()
	if box.IsEmpty() {
		return
	}
	corner := func(i int) math32.Vector3 {
		c := box.Min
		if i&1 != 0 {
			c.X = box.Max.X
		}
		if i&2 != 0 {
			c.Y = box.Max.Y
		}
		if i&4 != 0 {
			c.Z = box.Max.Z
		}
		return c
	}
	// corners that differ in one bit share an edge
	for i := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				v.lines = append(v.lines, corner(i), corner(i|bit))
			}
		}
	}
}
