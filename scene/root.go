// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/subsurface-viz/nodeviz/tree"
)

// rooter is implemented by [RootNode] and the types that embed it.
type rooter interface {
	AsRoot() *RootNode
}

// RootNode is the root of a scene. It holds the view factory of the
// scene, a folder of domain data and a folder of targets, and keeps
// track of the active target, which is the target used by all of the
// node operations when they are given a nil target.
type RootNode struct {
	NodeBase

	// Factory creates the views of the scene. Targets added through
	// [RootNode.AddTarget] use it unless they have their own.
	Factory *Factory

	// Data is the folder of the domain nodes.
	Data *FolderNode

	// TargetFolder is the folder of the targets.
	TargetFolder *FolderNode

	active Target
}

// NewRoot returns a new scene root using the given factory,
// with empty data and target folders.
func NewRoot(f *Factory) *RootNode {
	r := &RootNode{Factory: f}
	r.Name = "root"
	tree.InitNode(r)
	r.Data = NewFolder(r, "data")
	r.TargetFolder = NewFolder(r, "targets")
	return r
}

// AsRoot returns the root node.
func (r *RootNode) AsRoot() *RootNode { return r }

func (r *RootNode) Kinds() []tree.Kind {
	return tree.Kinds(KindRoot, r.NodeBase.Kinds())
}

// CanBeDeleted returns false, since a root is never removed.
func (r *RootNode) CanBeDeleted() bool { return false }

// AddTarget adds the given target to the target folder, giving it the
// factory of the root if it has none. The first target that is added
// becomes the active target.
func (r *RootNode) AddTarget(t Target) error {
	if t == nil {
		return fmt.Errorf("%w: nil target", tree.ErrInvalidOperation)
	}
	if err := r.TargetFolder.AddChild(t); err != nil {
		return err
	}
	if tn := t.AsTarget(); tn.Factory == nil {
		tn.Factory = r.Factory
	}
	if r.active == nil {
		r.SetActiveTarget(t)
	}
	return nil
}

// ActiveTarget returns the active target, or nil if there is none.
func (r *RootNode) ActiveTarget() Target {
	return r.active
}

// SetActiveTarget makes the given target the active target.
func (r *RootNode) SetActiveTarget(t Target) {
	r.active = t
	for _, o := range r.Targets() {
		o.AsTree().SetFlag(o == t, tree.Active)
	}
}

// Targets returns all of the targets of the scene, in order.
func (r *RootNode) Targets() []Target {
	var ts []Target
	for t := range tree.DescendantsOfType[Target](r.TargetFolder) {
		ts = append(ts, t)
	}
	return ts
}

// TargetByName returns the target with the given name,
// or nil if there is none.
func (r *RootNode) TargetByName(name string) Target {
	for _, t := range r.Targets() {
		if t.AsTree().Name == name {
			return t
		}
	}
	return nil
}

// targetRemoved picks a new active target when the given
// target, which is being destroyed, is the active one.
func (r *RootNode) targetRemoved(t Target) {
	if r.active != t {
		return
	}
	r.active = nil
	for _, o := range r.Targets() {
		if o != t {
			r.SetActiveTarget(o)
			return
		}
	}
}
