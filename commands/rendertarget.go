// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/subsurface-viz/nodeviz/icons"
	"github.com/subsurface-viz/nodeviz/scene"
)

// ViewAll frames all of the visible views of a render target.
type ViewAll struct {
	RenderTargetCommand
}

func (c *ViewAll) Name() string     { return "View all" }
func (c *ViewAll) Tooltip() string  { return "Frame all visible objects" }
func (c *ViewAll) Icon() icons.Icon { return icons.ZoomOutMap }
func (c *ViewAll) Invoke() bool     { return c.Target.ViewAll() }

// ToggleBackground switches the render target between
// its dark and light background colors.
type ToggleBackground struct {
	RenderTargetCommand
}

func (c *ToggleBackground) Name() string      { return "Toggle background" }
func (c *ToggleBackground) Tooltip() string   { return "Switch between a light and a dark background" }
func (c *ToggleBackground) Icon() icons.Icon  { return icons.Contrast }
func (c *ToggleBackground) IsCheckable() bool { return true }
func (c *ToggleBackground) IsChecked() bool   { return c.Target != nil && c.Target.IsLightBackground }

func (c *ToggleBackground) Invoke() bool {
	c.Target.ToggleBackground()
	return true
}

// ToggleCameraType switches the active camera of the render target
// between the perspective and orthographic projections.
type ToggleCameraType struct {
	RenderTargetCommand
}

func (c *ToggleCameraType) Name() string      { return "Toggle camera type" }
func (c *ToggleCameraType) Tooltip() string   { return "Switch between a perspective and an orthographic camera" }
func (c *ToggleCameraType) Icon() icons.Icon  { return icons.Videocam }
func (c *ToggleCameraType) IsCheckable() bool { return true }
func (c *ToggleCameraType) IsChecked() bool   { return c.Target != nil && c.Target.IsPerspective() }
func (c *ToggleCameraType) Invoke() bool      { return c.Target.ToggleCameraType() }

// ViewFrom turns the camera of the render target to
// look from one of the six axis directions.
type ViewFrom struct {
	RenderTargetCommand
	Direction scene.ViewDirection
}

func (c *ViewFrom) Name() string { return "View from " + c.Direction.String() }

func (c *ViewFrom) Tooltip() string {
	return "Look at all visible objects from the " + c.Direction.String()
}

func (c *ViewFrom) Icon() icons.Icon {
	switch c.Direction {
	case scene.FromTop:
		return icons.ArrowDownward
	case scene.FromBottom:
		return icons.ArrowUpward
	case scene.FromNorth:
		return icons.North
	case scene.FromSouth:
		return icons.South
	case scene.FromEast:
		return icons.East
	case scene.FromWest:
		return icons.West
	}
	return icons.None
}

func (c *ViewFrom) Invoke() bool { return c.Target.ViewFrom(c.Direction) }
