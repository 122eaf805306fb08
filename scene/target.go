// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"iter"
	"log/slog"

	"cogentcore.org/core/base/errors"

	"github.com/subsurface-viz/nodeviz/tree"
)

// Target is the interface that all target nodes satisfy.
type Target interface {
	Node

	// AsTarget returns the [TargetNode] of the target.
	AsTarget() *TargetNode
}

// invalidator is implemented by targets that are redrawn
// by a render loop when they are invalidated.
type invalidator interface {
	Invalidate()
}

// TargetNode is one independent surface that shows views of nodes.
// It owns all of the views in its [ViewList], and its ShowView and
// HideView methods are the only way to create and dispose views.
type TargetNode struct {
	NodeBase

	// Factory creates the views of the target. If it is nil,
	// the factory of the scene root is used.
	Factory *Factory

	shown ViewList
}

// NewTarget returns a new target with the given name.
func NewTarget(name string) *TargetNode {
	t := &TargetNode{}
	t.Name = name
	tree.InitNode(t)
	return t
}

// AsTarget returns the target node, satisfying the [Target] interface.
func (t *TargetNode) AsTarget() *TargetNode { return t }

func (t *TargetNode) Kinds() []tree.Kind {
	return tree.Kinds(KindTarget, t.NodeBase.Kinds())
}

// CanBeActive returns true: one target of a scene is the active one.
func (t *TargetNode) CanBeActive() bool { return true }

// Destroy disposes all of the views shown in the target before
// destroying the target itself.
func (t *TargetNode) Destroy() {
	if t.This == nil {
		return
	}
	t.RemoveAllViewsShownHere()
	if r := t.Root(); r != nil {
		r.targetRemoved(t.thisTarget())
	}
	t.NodeBase.Destroy()
}

func (t *TargetNode) thisTarget() Target {
	tt, _ := t.This.(Target)
	return tt
}

func (t *TargetNode) factory() *Factory {
	if t.Factory != nil {
		return t.Factory
	}
	if r := t.Root(); r != nil {
		return r.Factory
	}
	return nil
}

// invalidate invalidates the target if it is redrawn by a render loop.
func (t *TargetNode) invalidate() {
	if inv, ok := t.This.(invalidator); ok {
		inv.Invalidate()
	}
}

// ViewOf returns the view of the given node in the target,
// or nil if there is none.
func (t *TargetNode) ViewOf(n Node) View {
	if n == nil {
		return nil
	}
	v, _ := t.shown.At(n.AsTree().ID())
	return v
}

// IsVisibleView returns whether the given node is visible in the target.
func (t *TargetNode) IsVisibleView(n Node) bool {
	v := t.ViewOf(n)
	return v != nil && v.AsView().IsVisible()
}

// CanShowView returns whether the given node has a view in the target
// or the factory of the target can create one. Callers should check it
// before [TargetNode.ShowView] to avoid surprising no-ops.
func (t *TargetNode) CanShowView(n Node) bool {
	if n == nil {
		return false
	}
	return t.ViewOf(n) != nil || t.factory().CanCreate(n, t.thisTarget())
}

// ShowView shows the given node in the target, creating its view if it
// has none, and returns whether anything changed. It returns false if the
// node is already visible, or if there is no view for the node in targets
// of this kind.
func (t *TargetNode) ShowView(n Node) bool {
	return t.report("ShowView", n, t.Show(n))
}

// HideView hides the given node in the target, disposing its view unless
// the view stays alive when invisible, and returns whether anything
// changed. It returns false if the node is not visible in the target.
func (t *TargetNode) HideView(n Node) bool {
	return t.report("HideView", n, t.Hide(n))
}

// report logs the reason of a failed visibility operation and
// returns whether it succeeded.
func (t *TargetNode) report(op string, n Node, err error) bool {
	if err == nil {
		return true
	}
	name := "<nil>"
	if n != nil {
		name = n.AsTree().Name
	}
	if errors.Is(err, tree.ErrInvalidOperation) {
		slog.Error("scene: "+op, "node", name, "target", t.Name, "err", err)
	} else {
		slog.Debug("scene: "+op, "node", name, "target", t.Name, "err", err)
	}
	return false
}

// Show is like [TargetNode.ShowView], but returns the reason of a failure:
// [ErrAlreadyVisible], [ErrUnsupported], or [tree.ErrInvalidOperation]
// for nodes that have been removed.
func (t *TargetNode) Show(n Node) error {
	if n == nil || n.AsTree().This == nil {
		return fmt.Errorf("%w: can not show a nil or removed node", tree.ErrInvalidOperation)
	}
	if t.This == nil {
		return fmt.Errorf("%w: target %q has been removed", tree.ErrInvalidOperation, t.Name)
	}
	this := t.thisTarget()
	nb := n.AsNode()
	if v := t.ViewOf(n); v != nil {
		vb := v.AsView()
		if vb.IsVisible() {
			return fmt.Errorf("%w: %v", ErrAlreadyVisible, vb)
		}
		if err := vb.show(); err != nil {
			return err
		}
		t.changed(n)
		return nil
	}
	f := t.factory()
	v := f.Create(n, this)
	if v == nil {
		return fmt.Errorf("%w: %s in %s", ErrUnsupported, tree.KindOf(n), tree.KindOf(this))
	}
	vb := v.AsView()
	if err := vb.attach(n, this); err != nil {
		return err
	}
	id := n.AsTree().ID()
	if err := t.shown.Add(id, v); err != nil {
		return fmt.Errorf("%w: %w", tree.ErrInvalidOperation, err)
	}
	if nb.views == nil {
		nb.views = map[tree.ID]View{}
	}
	nb.views[t.ID()] = v
	errors.Log(vb.initialize())
	errors.Log(vb.show())
	t.changed(n)
	return nil
}

// Hide is like [TargetNode.HideView], but returns the reason of a
// failure, which is [ErrNotFound] if the node is not visible here.
func (t *TargetNode) Hide(n Node) error {
	v := t.ViewOf(n)
	if v == nil {
		return fmt.Errorf("%w: no view", ErrNotFound)
	}
	vb := v.AsView()
	if !vb.IsVisible() {
		return fmt.Errorf("%w: %v", ErrNotFound, vb)
	}
	if v.StayAliveIfInvisible() {
		if err := vb.hide(); err != nil {
			return err
		}
	} else {
		t.disposeView(n)
	}
	t.changed(n)
	return nil
}

// changed invalidates the check box states of the given node
// and its ancestors, and the target itself.
func (t *TargetNode) changed(n Node) {
	invalidateCheckBoxes(n)
	t.invalidate()
}

// disposeView disposes the view of the given node, whatever its state,
// and removes it from the view list of the target and the view index
// of the node.
func (t *TargetNode) disposeView(n Node) {
	v := t.ViewOf(n)
	if v == nil {
		return
	}
	nodeKind, targetKind := tree.KindOf(n), tree.KindOf(t.thisTarget())
	errors.Log(v.AsView().dispose())
	t.shown.Remove(n.AsTree().ID())
	delete(n.AsNode().views, t.ID())
	t.factory().viewDisposed(nodeKind, targetKind)
	t.changed(n)
}

// RemoveAllViewsShownHere disposes all of the views in the target,
// regardless of [View.StayAliveIfInvisible], and clears the view list.
func (t *TargetNode) RemoveAllViewsShownHere() {
	for _, v := range t.shown.Views() {
		if n := v.AsView().Node(); n != nil {
			t.disposeView(n)
		}
	}
	t.shown.Clear()
}

// ViewsShownHere returns the views that are alive in the target,
// visible or not, in the order in which they were created.
func (t *TargetNode) ViewsShownHere() []View {
	return t.shown.Views()
}

// NumViews returns the number of views that are alive in the target.
func (t *TargetNode) NumViews() int {
	return t.shown.Len()
}

// VisibleViews returns a sequence of the visible views in the target.
func (t *TargetNode) VisibleViews() iter.Seq[View] {
	return func(yield func(View) bool) {
		for _, v := range t.shown.Views() {
			if v.AsView().IsVisible() && !yield(v) {
				return
			}
		}
	}
}

// HasViewOfNodeKind returns whether the target has a visible view
// of a node of the given kind. It returns false if there is none.
func (t *TargetNode) HasViewOfNodeKind(k tree.Kind) bool {
	for v := range t.VisibleViews() {
		if tree.IsA(v.AsView().Node(), k) {
			return true
		}
	}
	return false
}
