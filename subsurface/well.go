// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"slices"
	"strconv"

	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// WellNode is the folder of a well, which holds its trajectories.
type WellNode struct {
	scene.FolderNode

	// WellHead is the position of the well at the surface.
	WellHead math32.Vector3
}

// NewWell returns a new well with the given name and well head,
// added to the given parent.
func NewWell(parent tree.Node, name string, head math32.Vector3) *WellNode {
	w := &WellNode{WellHead: head}
	w.Name = name
	scene.AddNode(parent, w)
	return w
}

func (w *WellNode) Kinds() []tree.Kind {
	return tree.Kinds(KindWell, w.FolderNode.Kinds())
}

// Trajectories returns the trajectories of the well.
func (w *WellNode) Trajectories() []*TrajectoryNode {
	return slices.Collect(tree.ChildrenOfType[*TrajectoryNode](w.This))
}

// NameExtension returns the number of trajectories of the well.
func (w *WellNode) NameExtension() string {
	n := len(w.Trajectories())
	if n == 1 {
		return "1 trajectory"
	}
	return strconv.Itoa(n) + " trajectories"
}

// TrajectorySample is a point of a trajectory at a measured depth.
type TrajectorySample struct {
	MD    float32
	Point math32.Vector3
}

// TrajectoryNode is the path of a well bore, as samples ordered
// by measured depth. Its logs are its descendants.
type TrajectoryNode struct {
	scene.NodeBase
	Samples []TrajectorySample
}

// NewTrajectory returns a new trajectory with the given samples,
// added to the given parent. The samples are sorted by measured depth.
func NewTrajectory(parent tree.Node, name string, samples ...TrajectorySample) *TrajectoryNode {
	t := &TrajectoryNode{}
	t.Name = name
	t.SetSamples(samples)
	scene.AddNode(parent, t)
	return t
}

func (t *TrajectoryNode) Kinds() []tree.Kind {
	return tree.Kinds(KindTrajectory, t.NodeBase.Kinds())
}

// SetSamples sets the samples, sorted by measured depth, and
// invalidates the check box states of the logs along the trajectory.
func (t *TrajectoryNode) SetSamples(samples []TrajectorySample) {
	defer t.InvalidateCheckBoxStates()
	t.Samples = slices.Clone(samples)
	slices.SortStableFunc(t.Samples, func(a, b TrajectorySample) int {
		switch {
		case a.MD < b.MD:
			return -1
		case a.MD > b.MD:
			return 1
		}
		return 0
	})
}

// Well returns the well of the trajectory, or nil if it has none.
func (t *TrajectoryNode) Well() *WellNode {
	w, _ := tree.AncestorOfType[*WellNode](t.This)
	return w
}

// MDRange returns the range of measured depths of the trajectory.
func (t *TrajectoryNode) MDRange() (lo, hi float32, ok bool) {
	if len(t.Samples) == 0 {
		return 0, 0, false
	}
	return t.Samples[0].MD, t.Samples[len(t.Samples)-1].MD, true
}

// PositionAt returns the position of the trajectory at the given
// measured depth, interpolated linearly between the samples.
// It returns false if the depth is outside of the trajectory.
func (t *TrajectoryNode) PositionAt(md float32) (math32.Vector3, bool) {
	lo, hi, ok := t.MDRange()
	if !ok || md < lo || md > hi {
		return math32.Vector3{}, false
	}
	i, _ := slices.BinarySearchFunc(t.Samples, md, func(s TrajectorySample, md float32) int {
		switch {
		case s.MD < md:
			return -1
		case s.MD > md:
			return 1
		}
		return 0
	})
	if i == 0 || t.Samples[i].MD == md {
		return t.Samples[i].Point, true
	}
	a, b := t.Samples[i-1], t.Samples[i]
	f := (md - a.MD) / (b.MD - a.MD)
	return a.Point.Add(b.Point.Sub(a.Point).MulScalar(f)), true
}

// Points returns the points of the samples.
func (t *TrajectoryNode) Points() []math32.Vector3 {
	pts := make([]math32.Vector3, len(t.Samples))
	for i, s := range t.Samples {
		pts[i] = s.Point
	}
	return pts
}
