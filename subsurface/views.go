// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// vertexSource is implemented by the views that embed [MeshView]
// to provide the vertices of their node.
type vertexSource interface {
	sourceVertices() []math32.Vector3
}

// MeshView is the base of the views that draw their node as a vertex
// buffer. The buffer is built when the view is initialized or touched
// and dropped when it is disposed. In map targets the vertices are
// flattened onto the z = 0 plane.
type MeshView struct {
	scene.ViewBase
	vertices []math32.Vector3
	box      math32.Box3
}

func (v *MeshView) Initialize() { v.rebuild() }

func (v *MeshView) Dispose() {
	v.vertices = nil
	v.box = math32.B3Empty()
}

// Touch rebuilds the vertex buffer from the current data of the node.
func (v *MeshView) Touch() { v.rebuild() }

// Vertices returns the vertex buffer of the view.
func (v *MeshView) Vertices() []math32.Vector3 { return v.vertices }

// BoundingBox returns the bounding box of the vertices.
func (v *MeshView) BoundingBox() math32.Box3 { return v.box }

// IsFlat returns whether the view is in a map target.
func (v *MeshView) IsFlat() bool {
	t := v.Target()
	return t != nil && tree.IsA(t, KindMapTarget)
}

func (v *MeshView) rebuild() {
	v.vertices = nil
	v.box = math32.B3Empty()
	src, ok := v.This.(vertexSource)
	if !ok {
		return
	}
	flat := v.IsFlat()
	for _, p := range src.sourceVertices() {
		if flat {
			p.Z = 0
		}
		v.vertices = append(v.vertices, p)
		v.box.ExpandByPoint(p)
	}
}

// TrajectoryView draws a trajectory as a polyline.
type TrajectoryView struct {
	MeshView
}

func (v *TrajectoryView) sourceVertices() []math32.Vector3 {
	t, ok := v.Node().(*TrajectoryNode)
	if !ok {
		return nil
	}
	return t.Points()
}

// LogView draws the samples of a log along its trajectory.
type LogView struct {
	MeshView
}

func (v *LogView) sourceVertices() []math32.Vector3 {
	l, ok := v.Node().(Log)
	if !ok {
		return nil
	}
	return l.AsLog().Positions(l.Depths())
}

// SurfaceView draws the defined nodes of a surface grid.
type SurfaceView struct {
	MeshView
}

func (v *SurfaceView) sourceVertices() []math32.Vector3 {
	s, ok := v.Node().(*SurfaceNode)
	if !ok {
		return nil
	}
	return s.Points()
}

// PointCloudView draws a point cloud. Its buffer is large,
// so the view stays alive when the point cloud is hidden.
type PointCloudView struct {
	MeshView
}

func (v *PointCloudView) StayAliveIfInvisible() bool { return true }

func (v *PointCloudView) sourceVertices() []math32.Vector3 {
	p, ok := v.Node().(*PointCloudNode)
	if !ok {
		return nil
	}
	return p.Points
}
