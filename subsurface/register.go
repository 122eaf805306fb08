// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"github.com/subsurface-viz/nodeviz/commands"
	"github.com/subsurface-viz/nodeviz/icons"
	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// Register registers the views of the subsurface nodes with the factory.
// Trajectories, surfaces, and point clouds are shown in both 3D and map
// targets. Logs are registered on the general log kind, and only shown
// in 3D targets, as is the axis.
func Register(f *scene.Factory) {
	for _, tk := range []tree.Kind{KindThreeTarget, KindMapTarget} {
		f.Register(KindTrajectory, tk, func() scene.View { return &TrajectoryView{} })
		f.Register(KindSurface, tk, func() scene.View { return &SurfaceView{} })
		f.Register(KindPointCloud, tk, func() scene.View { return &PointCloudView{} })
	}
	f.Register(KindLog, KindThreeTarget, func() scene.View { return &LogView{} })
	f.Register(KindAxis, KindThreeTarget, func() scene.View { return &AxisView{} })
}

// NewFactory returns a new factory with the subsurface views registered.
func NewFactory(opts ...scene.FactoryOption) *scene.Factory {
	f := scene.NewFactory(opts...)
	Register(f)
	return f
}

// Toolbar returns the toolbar of a subsurface render target: the default
// toolbar with the axis toggle for 3D targets, and only the actions that
// make sense for a map otherwise.
func Toolbar(rt *scene.RenderTargetNode) *commands.Toolbar {
	base := commands.RenderTargetCommand{Target: rt}
	if tree.IsA(rt.This, KindMapTarget) {
		tb := &commands.Toolbar{}
		tb.Add(commands.GroupActions, &commands.ViewAll{RenderTargetCommand: base})
		tb.Add(commands.GroupActions, &commands.ToggleBackground{RenderTargetCommand: base})
		return tb
	}
	tb := commands.DefaultToolbar(rt)
	tb.Add(commands.GroupActions, &commands.ToggleKindVisible{
		Target: rt.This.(scene.Target),
		Kind:   KindAxis,
		Label:  "Toggle axis",
		Symbol: icons.Axis,
	})
	return tb
}
