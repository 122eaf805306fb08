// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subsurface provides the nodes, views, and targets of a
// subsurface scene: wells with their trajectories and logs, surfaces,
// point clouds, and an axis decoration, shown in 3D and map targets.
package subsurface

import "github.com/subsurface-viz/nodeviz/tree"

// Kinds of the subsurface nodes and targets.
const (
	KindWell        tree.Kind = "well"
	KindTrajectory  tree.Kind = "trajectory"
	KindLog         tree.Kind = "log"
	KindFloatLog    tree.Kind = "float-log"
	KindPointLog    tree.Kind = "point-log"
	KindSurface     tree.Kind = "surface"
	KindPointCloud  tree.Kind = "point-cloud"
	KindAxis        tree.Kind = "axis"
	KindThreeTarget tree.Kind = "three-target"
	KindMapTarget   tree.Kind = "map-target"
)
