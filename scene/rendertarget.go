// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/tree"
)

// WindowSizer provides the size of the window that
// render targets are laid out in, in pixels.
type WindowSizer interface {
	WindowSize() math32.Vector2
}

// WindowSize is a fixed window size, which implements [WindowSizer].
type WindowSize math32.Vector2

func (ws WindowSize) WindowSize() math32.Vector2 { return math32.Vector2(ws) }

// WindowSizeFunc is a function that implements [WindowSizer].
type WindowSizeFunc func() math32.Vector2

func (f WindowSizeFunc) WindowSize() math32.Vector2 { return f() }

// Default background colors of render targets.
var (
	DefaultDarkBackground  = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	DefaultLightBackground = color.RGBA{0xf4, 0xf4, 0xf6, 0xff}
)

// RenderTargetNode is a target that is drawn by a render loop into a
// viewport of a window. The viewport is given as a fraction of the
// window, so that the pixel range is always derived from the current
// window size. The render target owns its cameras as children, and
// keeps a dirty flag that the render loop consumes through
// [RenderTargetNode.IsInvalidated] and [RenderTargetNode.Rendered].
type RenderTargetNode struct {
	TargetNode

	// FractionRange is the range of the viewport as fractions of the
	// window, from (0, 0) to (1, 1) for the whole window.
	FractionRange math32.Box2

	// Margin is the number of pixels subtracted from each dimension
	// of the window before applying the fraction range.
	Margin float32

	// Window provides the size of the window.
	Window WindowSizer

	// DarkBackground and LightBackground are the two background
	// colors that [RenderTargetNode.ToggleBackground] switches between.
	DarkBackground, LightBackground color.RGBA

	// IsLightBackground is whether the light background is used.
	IsLightBackground bool

	renderSize  math32.Vector2
	invalidated bool
}

// NewRenderTarget returns a new render target with the given name that
// covers the given fraction of the window, with one active camera.
func NewRenderTarget(name string, fraction math32.Box2, window WindowSizer) *RenderTargetNode {
	t := &RenderTargetNode{FractionRange: fraction, Window: window}
	t.Name = name
	tree.InitNode(t)
	return t
}

// Init sets the defaults of the render target and adds its camera.
// Types that embed RenderTargetNode and override Init must call it.
func (t *RenderTargetNode) Init() {
	if t.FractionRange == (math32.Box2{}) {
		t.FractionRange = math32.B2(0, 0, 1, 1)
	}
	if t.DarkBackground == (color.RGBA{}) {
		t.DarkBackground = DefaultDarkBackground
	}
	if t.LightBackground == (color.RGBA{}) {
		t.LightBackground = DefaultLightBackground
	}
	cam := NewCamera(t.This)
	cam.Name = "camera"
	cam.SetActiveInteractive()
	t.invalidated = true
}

func (t *RenderTargetNode) Kinds() []tree.Kind {
	return tree.Kinds(KindRenderTarget, t.TargetNode.Kinds())
}

// AsRenderTarget returns the render target node.
func (t *RenderTargetNode) AsRenderTarget() *RenderTargetNode { return t }

////////  Geometry

func (t *RenderTargetNode) windowSize() math32.Vector2 {
	if t.Window == nil {
		return math32.Vector2{}
	}
	return t.Window.WindowSize()
}

// PixelRange returns the range of the viewport in pixels, which is the
// window size minus the margin, multiplied by the fraction range.
// It is computed from the current window size on every call.
func (t *RenderTargetNode) PixelRange() math32.Box2 {
	avail := t.windowSize().SubScalar(t.Margin)
	avail.X = max(avail.X, 0)
	avail.Y = max(avail.Y, 0)
	return math32.Box2{
		Min: avail.Mul(t.FractionRange.Min),
		Max: avail.Mul(t.FractionRange.Max),
	}
}

// RenderSize returns the size of the viewport in pixels
// as of the last call to [RenderTargetNode.OnResize].
func (t *RenderTargetNode) RenderSize() math32.Vector2 {
	return t.renderSize
}

// OnResize recomputes the render size from the pixel range, sets the
// aspect ratio of every camera, and invalidates the target. It is
// called by the render loop when the window size changes.
func (t *RenderTargetNode) OnResize() {
	t.renderSize = t.PixelRange().Size()
	if t.renderSize.Y > 0 {
		aspect := t.renderSize.X / t.renderSize.Y
		for _, cam := range t.Cameras() {
			cam.Aspect = aspect
		}
	}
	t.Invalidate()
}

////////  Render loop

// Invalidate marks the target as needing to be redrawn.
func (t *RenderTargetNode) Invalidate() {
	t.invalidated = true
}

// IsInvalidated returns whether the target needs to be redrawn.
func (t *RenderTargetNode) IsInvalidated() bool {
	return t.invalidated
}

// Rendered clears the dirty flag. It is called by
// the render loop after drawing the target.
func (t *RenderTargetNode) Rendered() {
	t.invalidated = false
}

////////  Cameras

// Cameras returns the cameras of the target.
func (t *RenderTargetNode) Cameras() []*CameraNode {
	var cams []*CameraNode
	for c := range tree.ChildrenOfType[*CameraNode](t.This) {
		cams = append(cams, c)
	}
	return cams
}

// ActiveCamera returns the active camera of the target, falling back
// on the first camera, or nil if the target has no camera.
func (t *RenderTargetNode) ActiveCamera() *CameraNode {
	cams := t.Cameras()
	for _, c := range cams {
		if c.IsActive() {
			return c
		}
	}
	if len(cams) > 0 {
		return cams[0]
	}
	return nil
}

// IsPerspective returns whether the active camera uses
// a perspective projection.
func (t *RenderTargetNode) IsPerspective() bool {
	cam := t.ActiveCamera()
	return cam != nil && cam.Perspective
}

// ToggleCameraType switches the projection of the active
// camera and frames the views again.
func (t *RenderTargetNode) ToggleCameraType() bool {
	cam := t.ActiveCamera()
	if cam == nil {
		return false
	}
	cam.TogglePerspective()
	t.ViewAll()
	t.Invalidate()
	return true
}

////////  Views

// BoundingBoxFromViews returns the union of the bounding boxes of the
// visible views that have one (see [Bounded]). It is empty if there
// are none.
func (t *RenderTargetNode) BoundingBoxFromViews() math32.Box3 {
	box := math32.B3Empty()
	for v := range t.VisibleViews() {
		b, ok := v.(Bounded)
		if !ok {
			continue
		}
		vbox := b.BoundingBox()
		if vbox.IsEmpty() {
			continue
		}
		box.ExpandByBox(vbox)
	}
	return box
}

// ViewAll frames the bounding box of the visible views with the active
// camera. It returns false if there is nothing to frame.
func (t *RenderTargetNode) ViewAll() bool {
	cam := t.ActiveCamera()
	if cam == nil || !cam.Frame(t.BoundingBoxFromViews()) {
		return false
	}
	t.Invalidate()
	return true
}

// ViewFrom turns the active camera to look from the given direction
// and frames the visible views. It returns false if there is nothing
// to frame.
func (t *RenderTargetNode) ViewFrom(d ViewDirection) bool {
	cam := t.ActiveCamera()
	if cam == nil {
		return false
	}
	box := t.BoundingBoxFromViews()
	if box.IsEmpty() {
		return false
	}
	cam.SetDirection(d.Vector())
	cam.Frame(box)
	t.Invalidate()
	return true
}

// UpdateAllViews touches every view that supports it (see [Touchable])
// so that it rebuilds its resources, and invalidates the target.
func (t *RenderTargetNode) UpdateAllViews() {
	for _, v := range t.ViewsShownHere() {
		if tv, ok := v.(Touchable); ok {
			tv.Touch()
		}
	}
	t.Invalidate()
}

////////  Background

// BackgroundColor returns the current background color.
func (t *RenderTargetNode) BackgroundColor() color.RGBA {
	if t.IsLightBackground {
		return t.LightBackground
	}
	return t.DarkBackground
}

// ToggleBackground switches between the light and dark backgrounds.
func (t *RenderTargetNode) ToggleBackground() {
	t.IsLightBackground = !t.IsLightBackground
	t.Invalidate()
}
