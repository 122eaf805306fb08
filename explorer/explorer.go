// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package explorer projects a scene into the flat node list of a tree
// explorer: one item per node with its checkbox state for one target,
// and the expanded, selected, and active flags of the node. The
// projection is rebuilt on every call, so it is always consistent with
// the tree after a user action.
package explorer

import (
	"io"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/colors"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// Item is the projection of one node.
type Item struct {
	ID        tree.ID             `json:"id"`
	ParentID  tree.ID             `json:"parentId,omitzero"`
	Name      string              `json:"name"`
	Kind      tree.Kind           `json:"kind"`
	Depth     int                 `json:"depth"`
	CheckBox  scene.CheckBoxState `json:"checkBox"`
	Expanded  bool                `json:"expanded"`
	Selected  bool                `json:"selected"`
	Active    bool                `json:"active"`
	CanExpand bool                `json:"canExpand"`
	Color     string              `json:"color"`
	Bold      bool                `json:"bold,omitempty"`
	Italic    bool                `json:"italic,omitempty"`
}

// Explorer is the tree explorer of a scene for one target.
type Explorer struct {
	Root *scene.RootNode

	// Target is the target that the checkboxes refer to;
	// nil means the active target of the scene.
	Target scene.Target

	// IncludeTargets is whether the targets folder is projected
	// along with the data folder.
	IncludeTargets bool

	// ExpandAll is whether all items are visible,
	// regardless of their expanded flags.
	ExpandAll bool
}

// New returns a new explorer of the given scene for the given target.
func New(root *scene.RootNode, target scene.Target) *Explorer {
	return &Explorer{Root: root, Target: target}
}

// target returns the target of the explorer, resolving nil.
func (e *Explorer) target() scene.Target {
	if e.Target != nil {
		return e.Target
	}
	if e.Root == nil {
		return nil
	}
	return e.Root.ActiveTarget()
}

// tops returns the nodes at depth zero of the projection.
func (e *Explorer) tops() []tree.Node {
	if e.Root == nil {
		return nil
	}
	if e.IncludeTargets {
		return e.Root.Children
	}
	if e.Root.Data == nil {
		return nil
	}
	return e.Root.Data.Children
}

// Items returns the projection of all of the nodes in pre-order.
func (e *Explorer) Items() []Item {
	return e.project(false)
}

// VisibleItems returns the projection of the nodes whose ancestors
// are all expanded, which are the rows shown by the explorer.
func (e *Explorer) VisibleItems() []Item {
	return e.project(!e.ExpandAll)
}

func (e *Explorer) project(collapse bool) []Item {
	var items []Item
	t := e.target()
	for _, top := range e.tops() {
		base := tree.Depth(top)
		top.AsTree().WalkDown(func(n tree.Node) bool {
			sn, ok := n.(scene.Node)
			if !ok {
				return tree.Break
			}
			it := newItem(sn, t, tree.Depth(n)-base)
			items = append(items, it)
			if collapse && !it.Expanded {
				return tree.Break
			}
			return tree.Continue
		})
	}
	return items
}

func newItem(n scene.Node, t scene.Target, depth int) Item {
	nb := n.AsNode()
	it := Item{
		ID:        nb.ID(),
		Name:      nb.DisplayName(),
		Kind:      tree.KindOf(n),
		Depth:     depth,
		CheckBox:  nb.CheckBoxState(t),
		Expanded:  nb.HasFlag(tree.Expanded),
		Selected:  nb.HasFlag(tree.Selected),
		Active:    nb.IsActive(),
		CanExpand: nb.HasChildren(),
		Color:     colors.AsHex(nb.Color),
		Bold:      n.IsLabelInBold(),
		Italic:    n.IsLabelInItalic(),
	}
	if depth > 0 && nb.Parent != nil {
		it.ParentID = nb.Parent.AsTree().ID()
	}
	return it
}

// Node returns the node with the given id, or nil if there is none.
func (e *Explorer) Node(id tree.ID) scene.Node {
	if e.Root == nil {
		return nil
	}
	n, _ := tree.FindID(e.Root, id).(scene.Node)
	return n
}

// Toggle toggles the checkbox of the node with the given id,
// and returns whether anything changed.
func (e *Explorer) Toggle(id tree.ID) bool {
	n := e.Node(id)
	if n == nil {
		return false
	}
	return n.AsNode().ToggleVisibleInteractive(e.Target)
}

// SetActive makes the node with the given id the active one among
// its siblings of the same kind, and returns whether anything changed.
func (e *Explorer) SetActive(id tree.ID) bool {
	n := e.Node(id)
	if n == nil {
		return false
	}
	return n.AsNode().SetActiveInteractive()
}

// SetExpanded expands or collapses the node with the given id,
// and returns whether anything changed.
func (e *Explorer) SetExpanded(id tree.ID, expanded bool) bool {
	n := e.Node(id)
	if n == nil || n.AsTree().HasFlag(tree.Expanded) == expanded {
		return false
	}
	n.AsTree().SetFlag(expanded, tree.Expanded)
	return true
}

// Select selects the node with the given id and deselects all of the
// other nodes. It returns false if there is no such node.
func (e *Explorer) Select(id tree.ID) bool {
	n := e.Node(id)
	if n == nil {
		return false
	}
	e.Root.WalkDown(func(k tree.Node) bool {
		k.AsTree().SetFlag(false, tree.Selected)
		return tree.Continue
	})
	n.AsTree().SetFlag(true, tree.Selected)
	return true
}

// Selected returns the selected node, or nil if there is none.
func (e *Explorer) Selected() scene.Node {
	for _, it := range e.Items() {
		if it.Selected {
			return e.Node(it.ID)
		}
	}
	return nil
}

// SelectNext selects the visible item after the selected one,
// or the first one if there is no selection.
func (e *Explorer) SelectNext() bool {
	return e.selectBy(1)
}

// SelectPrevious selects the visible item before the selected one,
// or the last one if there is no selection.
func (e *Explorer) SelectPrevious() bool {
	return e.selectBy(-1)
}

func (e *Explorer) selectBy(delta int) bool {
	items := e.VisibleItems()
	if len(items) == 0 {
		return false
	}
	cur := -1
	for i, it := range items {
		if it.Selected {
			cur = i
			break
		}
	}
	next := cur + delta
	switch {
	case cur < 0 && delta > 0:
		next = 0
	case cur < 0:
		next = len(items) - 1
	}
	if next < 0 || next >= len(items) {
		return false
	}
	return e.Select(items[next].ID)
}

// state is the document written by [Explorer.WriteJSON].
type state struct {
	Target string `json:"target"`
	Items  []Item `json:"items"`
}

// WriteJSON writes the visible items as an indented JSON document,
// along with the name of the target.
func (e *Explorer) WriteJSON(w io.Writer) error {
	st := state{Items: e.VisibleItems()}
	if t := e.target(); t != nil {
		st.Target = t.AsTree().Name
	}
	if st.Items == nil {
		st.Items = []Item{}
	}
	return jsonx.WriteIndent(st, w)
}
