// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements the multi-target scene graph of nodeviz:
// domain nodes that are shown in any number of independent targets,
// each target keeping its own views of the nodes, and the aggregate
// check box state of the nodes in each target.
//
// A view is created by a [Factory] the first time a node is shown in a
// target, and at most one view exists per (node, target) pair. The
// target owns the view; the node keeps a non-owning index of its views
// keyed by target id. All operations are synchronous and must be called
// from a single goroutine.
package scene

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/subsurface-viz/nodeviz/tree"
)

// Node is the interface that all scene nodes satisfy.
type Node interface {
	tree.Node

	// AsNode returns the [NodeBase] of the node.
	AsNode() *NodeBase

	// CanBeChecked returns whether the user may make the node
	// visible in the given target through its check box.
	CanBeChecked(t Target) bool

	// CanBeActive returns whether the node can become the active
	// node among its siblings of the same kind.
	CanBeActive() bool

	// CanBeDeleted returns whether [NodeBase.Remove] may remove the node.
	CanBeDeleted() bool

	// IsLabelInBold and IsLabelInItalic return how the label of
	// the node is emphasized in the explorer.
	IsLabelInBold() bool
	IsLabelInItalic() bool
}

// NodeBase is the base type for all scene nodes. It embeds
// [tree.NodeBase] and adds the per target view index and
// check box state.
type NodeBase struct {
	tree.NodeBase

	// Color is the color of the node. If it is not set when the node
	// is added to a parent, it is chosen from a widely spaced palette
	// based on the index of the node in its parent.
	Color color.RGBA

	// views is the index of the views of this node, keyed by target id.
	// It does not own the views; the targets do.
	views map[tree.ID]View

	// checkBoxes caches the check box state per target id.
	checkBoxes map[tree.ID]CheckBoxState
}

// AddNode initializes the given node and adds it as a child of the
// given parent if it is not nil. A failure to add it is logged, and
// returned for callers that need it.
func AddNode(parent tree.Node, n tree.Node) error {
	tree.InitNode(n)
	if parent == nil {
		return nil
	}
	return errors.Log(parent.AsTree().AddChild(n))
}

// AsNode returns the node base, satisfying the [Node] interface.
func (n *NodeBase) AsNode() *NodeBase { return n }

func (n *NodeBase) Kinds() []tree.Kind {
	return tree.Kinds(KindNode, n.NodeBase.Kinds())
}

// CanBeChecked returns true by default.
func (n *NodeBase) CanBeChecked(t Target) bool { return true }

// CanBeActive returns false by default.
func (n *NodeBase) CanBeActive() bool { return false }

// CanBeDeleted returns true by default, except for the data
// and target folders of a scene root.
func (n *NodeBase) CanBeDeleted() bool {
	r := n.Root()
	if r == nil {
		return true
	}
	return n.This != r.Data && n.This != r.TargetFolder
}

// IsLabelInBold returns whether the node is active.
func (n *NodeBase) IsLabelInBold() bool { return n.IsActive() }

// IsLabelInItalic returns whether the node can not be deleted.
func (n *NodeBase) IsLabelInItalic() bool {
	this := n.this()
	return this != nil && !this.CanBeDeleted()
}

// OnAdd assigns the default color and invalidates the check box state of
// the new parent and its ancestors. Types that override it must call it.
func (n *NodeBase) OnAdd() {
	if n.Color.A == 0 {
		n.Color = colors.Spaced(n.IndexInParent())
	}
	invalidateCheckBoxes(n.Parent)
}

// OnChildRemoved invalidates the check box state of the node and its
// ancestors, since they no longer aggregate the removed child.
func (n *NodeBase) OnChildRemoved(child tree.Node) {
	invalidateCheckBoxes(n.This)
}

// Destroy disposes all of the views of the node in every target, then
// destroys its children. Types that override it must call it at the end.
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	n.disposeViews()
	n.NodeBase.Destroy()
}

// this returns the node as its true type.
func (n *NodeBase) this() Node {
	nd, _ := n.This.(Node)
	return nd
}

// disposeViews disposes every view of the node, regardless of
// [View.StayAliveIfInvisible].
func (n *NodeBase) disposeViews() {
	this := n.this()
	for _, t := range n.ShownIn() {
		t.AsTarget().disposeView(this)
	}
}

// Root returns the scene root of the node, or nil if the node
// is not in a scene.
func (n *NodeBase) Root() *RootNode {
	if n.This == nil {
		return nil
	}
	if r, ok := tree.Root(n.This).(rooter); ok {
		return r.AsRoot()
	}
	return nil
}

// ActiveTarget returns the active target of the scene of the node.
func (n *NodeBase) ActiveTarget() Target {
	if r := n.Root(); r != nil {
		return r.ActiveTarget()
	}
	return nil
}

// target returns the given target, or the active target if it is nil.
func (n *NodeBase) target(t Target) Target {
	if t != nil {
		return t
	}
	return n.ActiveTarget()
}

// DisplayName returns the name of the node as shown in an explorer,
// with the name extension of the node in brackets if it has one.
func (n *NodeBase) DisplayName() string {
	if ne, ok := n.This.(interface{ NameExtension() string }); ok {
		if ext := ne.NameExtension(); ext != "" {
			return n.Name + " [" + ext + "]"
		}
	}
	return n.Name
}

////////  Visibility

// ViewIn returns the view of the node in the given target,
// or nil if there is none. A nil target means the active target.
func (n *NodeBase) ViewIn(t Target) View {
	t = n.target(t)
	if t == nil {
		return nil
	}
	return n.views[t.AsTree().ID()]
}

// ShownIn returns the targets in which the node has a live view,
// whether it is visible or not, ordered by target path.
func (n *NodeBase) ShownIn() []Target {
	ts := make([]Target, 0, len(n.views))
	for _, v := range n.views {
		if t := v.AsView().Target(); t != nil {
			ts = append(ts, t)
		}
	}
	slices.SortFunc(ts, func(a, b Target) int {
		return strings.Compare(a.AsTree().Path(), b.AsTree().Path())
	})
	return ts
}

// IsVisible returns whether the node has a visible view in the given
// target. A nil target means the active target.
func (n *NodeBase) IsVisible(t Target) bool {
	v := n.ViewIn(t)
	return v != nil && v.AsView().IsVisible()
}

// CanShow returns whether the node can be shown in the given target.
// A nil target means the active target.
func (n *NodeBase) CanShow(t Target) bool {
	t = n.target(t)
	if t == nil {
		return false
	}
	return t.AsTarget().CanShowView(n.this())
}

// SetVisible shows or hides the node in the given target, returning
// whether anything changed. A nil target means the active target.
func (n *NodeBase) SetVisible(visible bool, t Target) bool {
	t = n.target(t)
	if t == nil {
		return false
	}
	if visible {
		return t.AsTarget().ShowView(n.this())
	}
	return t.AsTarget().HideView(n.this())
}

// CheckBoxState returns the aggregate visibility of the node and its
// descendants in the given target (see [Aggregate]). The candidates are
// the children that are not in the [Never] state, and the node itself if
// it can be shown in the target. The states are cached per target and
// invalidated by every show, hide, add and remove below the node.
// A nil target means the active target.
func (n *NodeBase) CheckBoxState(t Target) CheckBoxState {
	t = n.target(t)
	if t == nil || n.This == nil {
		return Never
	}
	tid := t.AsTree().ID()
	if s, ok := n.checkBoxes[tid]; ok {
		return s
	}
	s := n.computeCheckBoxState(t)
	if n.checkBoxes == nil {
		n.checkBoxes = map[tree.ID]CheckBoxState{}
	}
	n.checkBoxes[tid] = s
	return s
}

func (n *NodeBase) computeCheckBoxState(t Target) CheckBoxState {
	states := make([]CheckBoxState, 0, len(n.Children)+1)
	if n.views[t.AsTree().ID()] != nil || t.AsTarget().CanShowView(n.this()) {
		if n.IsVisible(t) {
			states = append(states, All)
		} else {
			states = append(states, None)
		}
	}
	for _, kid := range n.Children {
		if k, ok := kid.(Node); ok {
			states = append(states, k.AsNode().CheckBoxState(t))
		}
	}
	s := Aggregate(states...)
	if s == None && !n.this().CanBeChecked(t) {
		return Disabled
	}
	return s
}

// InvalidateCheckBoxStates clears the cached check box states of the
// node, its descendants and its ancestors. It is only needed after changes
// that the scene does not see, such as new registrations in the factory
// or new data that changes what [Node.CanBeChecked] returns.
func (n *NodeBase) InvalidateCheckBoxStates() {
	if n.This == nil {
		return
	}
	for k := range n.ThisAndDescendants() {
		if sn, ok := k.(Node); ok {
			sn.AsNode().checkBoxes = nil
		}
	}
	invalidateCheckBoxes(n.Parent)
}

// invalidateCheckBoxes clears the cached check box states of the
// given node and all of its ancestors.
func invalidateCheckBoxes(n tree.Node) {
	if n == nil {
		return
	}
	n.AsTree().WalkUp(func(k tree.Node) bool {
		if sn, ok := k.(Node); ok {
			sn.AsNode().checkBoxes = nil
		}
		return tree.Continue
	})
}

// SetVisibleInteractive shows or hides the node and all of its
// descendants in the given target, as done when the user clicks
// on the check box of the node. It returns whether anything changed.
// A nil target means the active target.
func (n *NodeBase) SetVisibleInteractive(visible bool, t Target) bool {
	t = n.target(t)
	if t == nil {
		return false
	}
	switch n.CheckBoxState(t) {
	case Never:
		return false
	case Disabled:
		if visible {
			return false
		}
	}
	changed := false
	if n.IsVisible(t) != visible && n.CanShow(t) {
		if !visible || n.this().CanBeChecked(t) {
			changed = n.SetVisible(visible, t)
		}
	}
	for _, kid := range n.Children {
		if k, ok := kid.(Node); ok && k.AsNode().SetVisibleInteractive(visible, t) {
			changed = true
		}
	}
	return changed
}

// ToggleVisibleInteractive shows the node and its descendants in the
// given target if nothing is visible there, and hides them otherwise.
// It returns whether anything changed. A nil target means the active target.
func (n *NodeBase) ToggleVisibleInteractive(t Target) bool {
	switch n.CheckBoxState(t) {
	case Never:
		return false
	case None, Disabled:
		return n.SetVisibleInteractive(true, t)
	}
	return n.SetVisibleInteractive(false, t)
}

////////  Active

// IsActive returns whether the node is the active one among
// its siblings of the same kind.
func (n *NodeBase) IsActive() bool {
	return n.HasFlag(tree.Active)
}

// SetActiveInteractive makes the node the active one among its
// siblings of the same kind, deactivating the others. It returns
// false if the node can not be active or is already active.
func (n *NodeBase) SetActiveInteractive() bool {
	this := n.this()
	if this == nil || n.IsActive() || !this.CanBeActive() {
		return false
	}
	if n.Parent != nil {
		kind := tree.KindOf(this)
		for _, sib := range n.Parent.AsTree().Children {
			if sib == this || tree.KindOf(sib) != kind {
				continue
			}
			sib.AsTree().SetFlag(false, tree.Active)
		}
	}
	n.SetFlag(true, tree.Active)
	return true
}

////////  Ordering

// SortChildrenByName sorts the children of the node by name in
// the root collation order, which ignores case and accents before
// it falls back to them. The sort is stable.
func (n *NodeBase) SortChildrenByName() {
	c := collate.New(language.Und)
	slices.SortStableFunc(n.Children, func(a, b tree.Node) int {
		return c.CompareString(a.AsTree().Name, b.AsTree().Name)
	})
}

////////  Removal

// Remove removes the node from the scene: the views of the node and of
// all its descendants are disposed in every target, the descendants are
// destroyed bottom-up, and the node is detached from its parent. It fails
// with [tree.ErrInvalidOperation] for root nodes, removed nodes and nodes
// whose [Node.CanBeDeleted] returns false.
func (n *NodeBase) Remove() error {
	if n.This == nil {
		return fmt.Errorf("%w: node %q has already been removed", tree.ErrInvalidOperation, n.Name)
	}
	if this := n.this(); this != nil && !this.CanBeDeleted() {
		err := fmt.Errorf("%w: node %q can not be deleted", tree.ErrInvalidOperation, n.Name)
		slog.Error("scene: Remove", "err", err)
		return err
	}
	if tree.IsRoot(n.This) {
		err := fmt.Errorf("%w: the root node %q can not be removed", tree.ErrInvalidOperation, n.Name)
		slog.Error("scene: Remove", "err", err)
		return err
	}
	n.Delete()
	return nil
}
