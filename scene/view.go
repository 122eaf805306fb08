// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/subsurface-viz/nodeviz/tree"
)

// View is the renderable representation of exactly one node inside
// exactly one target. Views are created by a [Factory] and their
// lifecycle is driven by [TargetNode.ShowView] and [TargetNode.HideView],
// which call the hooks below. Concrete view types embed [ViewBase]
// and override the hooks they need; the hooks own the resources of
// the view (vertex buffers, textures and so on).
type View interface {

	// AsView returns the [ViewBase] of the view.
	AsView() *ViewBase

	// Initialize builds the resources of the view. It is called once,
	// after the view has been attached to its node and target.
	Initialize()

	// OnShow is called every time the view becomes visible.
	OnShow()

	// OnHide is called every time the view stops being visible,
	// including right before it is disposed while visible.
	OnHide()

	// Dispose releases the resources of the view. It is called
	// once, and the view is never used again afterwards.
	Dispose()

	// StayAliveIfInvisible returns whether hiding the view keeps it
	// alive so that it can be shown again without being rebuilt.
	// If it returns false, hiding the view disposes it.
	StayAliveIfInvisible() bool
}

// Bounded is implemented by views that occupy a region of 3D space.
type Bounded interface {
	View

	// BoundingBox returns the axis aligned bounding box of the
	// view in world coordinates, or an empty box if it has none.
	BoundingBox() math32.Box3
}

// Touchable is implemented by views that can be told that their
// node has changed and their resources need to be rebuilt.
type Touchable interface {
	View

	// Touch marks the view as out of date.
	Touch()
}

// ViewState is the lifecycle state of a [View].
type ViewState int32

const (
	// Unattached is the state of a view that has just been created.
	Unattached ViewState = iota

	// Attached means the view knows its node and target.
	Attached

	// Initialized means [View.Initialize] has been called.
	Initialized

	// Visible means the view is shown in its target.
	Visible

	// Hidden means the view is alive but not shown.
	Hidden

	// Disposed is the terminal state.
	Disposed
)

var viewStateNames = [...]string{"unattached", "attached", "initialized", "visible", "hidden", "disposed"}

func (s ViewState) String() string {
	if s < 0 || int(s) >= len(viewStateNames) {
		return fmt.Sprintf("ViewState(%d)", int32(s))
	}
	return viewStateNames[s]
}

// MarshalText encodes the state as its name.
func (s ViewState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ViewBase implements the bookkeeping of the [View] interface,
// and must be embedded in all view types. The node and target
// references are back references: they do not own anything and
// are cleared when the view is disposed.
type ViewBase struct {

	// This is the view as its true underlying type.
	// It is set by [InitView].
	This View

	node   Node
	target Target
	state  ViewState
}

// InitView initializes the given view by setting its [ViewBase.This].
// [Factory.Create] calls it on every view it creates.
func InitView(v View) {
	v.AsView().This = v
}

// AsView returns the view base, satisfying the [View] interface.
func (vb *ViewBase) AsView() *ViewBase { return vb }

// Initialize does nothing by default.
func (vb *ViewBase) Initialize() {}

// OnShow does nothing by default.
func (vb *ViewBase) OnShow() {}

// OnHide does nothing by default.
func (vb *ViewBase) OnHide() {}

// Dispose does nothing by default.
func (vb *ViewBase) Dispose() {}

// StayAliveIfInvisible returns false by default, so hidden views are disposed.
func (vb *ViewBase) StayAliveIfInvisible() bool { return false }

// Node returns the node that the view represents,
// or nil if the view is not attached.
func (vb *ViewBase) Node() Node { return vb.node }

// Target returns the target that owns the view,
// or nil if the view is not attached.
func (vb *ViewBase) Target() Target { return vb.target }

// State returns the lifecycle state of the view.
func (vb *ViewBase) State() ViewState { return vb.state }

// IsVisible returns whether the view is shown in its target.
func (vb *ViewBase) IsVisible() bool { return vb.state == Visible }

// IsDisposed returns whether the view has been disposed.
func (vb *ViewBase) IsDisposed() bool { return vb.state == Disposed }

func (vb *ViewBase) String() string {
	nm := "<nil>"
	if vb.node != nil {
		nm = vb.node.AsTree().Name
	}
	tnm := "<nil>"
	if vb.target != nil {
		tnm = vb.target.AsTree().Name
	}
	return fmt.Sprintf("view of %s in %s (%v)", nm, tnm, vb.state)
}

// this returns the view as its true type, falling back on the base
// itself for views that were not created through [InitView].
func (vb *ViewBase) this() View {
	if vb.This != nil {
		return vb.This
	}
	return vb
}

func (vb *ViewBase) transitionError(op string) error {
	return fmt.Errorf("%w: can not %s %v", tree.ErrInvalidOperation, op, vb)
}

// attach sets the back references of the view.
func (vb *ViewBase) attach(n Node, t Target) error {
	if vb.state != Unattached {
		return vb.transitionError("attach")
	}
	vb.node = n
	vb.target = t
	vb.state = Attached
	return nil
}

// initialize moves an attached view to the initialized state.
func (vb *ViewBase) initialize() error {
	if vb.state != Attached {
		return vb.transitionError("initialize")
	}
	vb.this().Initialize()
	vb.state = Initialized
	return nil
}

// show makes an initialized or hidden view visible.
func (vb *ViewBase) show() error {
	if vb.state != Initialized && vb.state != Hidden {
		return vb.transitionError("show")
	}
	vb.state = Visible
	vb.this().OnShow()
	return nil
}

// hide makes a visible view hidden.
func (vb *ViewBase) hide() error {
	if vb.state != Visible {
		return vb.transitionError("hide")
	}
	vb.this().OnHide()
	vb.state = Hidden
	return nil
}

// dispose hides the view if it is visible, calls [View.Dispose]
// and clears the back references.
func (vb *ViewBase) dispose() error {
	switch vb.state {
	case Disposed:
		return vb.transitionError("dispose")
	case Visible:
		vb.hide()
	}
	if vb.state != Unattached {
		vb.this().Dispose()
	}
	vb.state = Disposed
	vb.node = nil
	vb.target = nil
	return nil
}
