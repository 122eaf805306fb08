// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// SurfaceNode is a regular grid of depths, such as a horizon.
// Undefined nodes of the grid are NaN.
type SurfaceNode struct {
	scene.NodeBase

	// Origin is the position of the first grid node.
	Origin math32.Vector2

	// Inc is the spacing of the grid nodes.
	Inc math32.Vector2

	// NX and NY are the numbers of grid nodes along x and y.
	NX, NY int

	// Z holds the depths, row by row, with NX values per row.
	Z []float32
}

// NewSurface returns a new surface added to the given parent.
// The number of depths must be nx*ny.
func NewSurface(parent tree.Node, name string, origin, inc math32.Vector2, nx, ny int, z []float32) (*SurfaceNode, error) {
	if nx < 0 || ny < 0 || len(z) != nx*ny {
		return nil, fmt.Errorf("subsurface: surface %q has %d depths for a %dx%d grid", name, len(z), nx, ny)
	}
	s := &SurfaceNode{Origin: origin, Inc: inc, NX: nx, NY: ny, Z: z}
	s.Name = name
	scene.AddNode(parent, s)
	return s, nil
}

func (s *SurfaceNode) Kinds() []tree.Kind {
	return tree.Kinds(KindSurface, s.NodeBase.Kinds())
}

// ZAt returns the depth of the given grid node.
// It returns false if the node is outside of the grid or undefined.
func (s *SurfaceNode) ZAt(i, j int) (float32, bool) {
	if i < 0 || j < 0 || i >= s.NX || j >= s.NY {
		return 0, false
	}
	z := s.Z[j*s.NX+i]
	if math32.IsNaN(z) {
		return 0, false
	}
	return z, true
}

// PointAt returns the position of the given grid node.
func (s *SurfaceNode) PointAt(i, j int) (math32.Vector3, bool) {
	z, ok := s.ZAt(i, j)
	if !ok {
		return math32.Vector3{}, false
	}
	return math32.Vec3(s.Origin.X+float32(i)*s.Inc.X, s.Origin.Y+float32(j)*s.Inc.Y, z), true
}

// Points returns the positions of the defined grid nodes.
func (s *SurfaceNode) Points() []math32.Vector3 {
	var pts []math32.Vector3
	for j := range s.NY {
		for i := range s.NX {
			if p, ok := s.PointAt(i, j); ok {
				pts = append(pts, p)
			}
		}
	}
	return pts
}

// PointCloudNode is a set of scattered points, such as seismic picks.
type PointCloudNode struct {
	scene.NodeBase
	Points []math32.Vector3
}

// NewPointCloud returns a new point cloud added to the given parent.
func NewPointCloud(parent tree.Node, name string, points ...math32.Vector3) *PointCloudNode {
	p := &PointCloudNode{Points: points}
	p.Name = name
	scene.AddNode(parent, p)
	return p
}

func (p *PointCloudNode) Kinds() []tree.Kind {
	return tree.Kinds(KindPointCloud, p.NodeBase.Kinds())
}

// NameExtension returns the number of points.
func (p *PointCloudNode) NameExtension() string {
	return fmt.Sprintf("%d points", len(p.Points))
}
