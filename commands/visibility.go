// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"iter"

	"github.com/subsurface-viz/nodeviz/icons"
	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// ToggleVisible toggles the visibility of a node and its
// descendants in a target, the way its explorer checkbox does.
type ToggleVisible struct {
	Base
	Node scene.Node

	// Target is the target to toggle the node in;
	// nil means the active target.
	Target scene.Target
}

func (c *ToggleVisible) Name() string {
	if c.Node == nil {
		return "Toggle visible"
	}
	return "Toggle " + c.Node.AsNode().DisplayName()
}

func (c *ToggleVisible) Tooltip() string { return "Show or hide the node and its children" }

func (c *ToggleVisible) Icon() icons.Icon {
	if c.IsChecked() {
		return icons.Visibility
	}
	return icons.VisibilityOff
}

func (c *ToggleVisible) IsEnabled() bool {
	if c.Node == nil {
		return false
	}
	switch c.Node.AsNode().CheckBoxState(c.Target) {
	case scene.Never, scene.Disabled:
		return false
	}
	return true
}

func (c *ToggleVisible) IsCheckable() bool { return true }

func (c *ToggleVisible) IsChecked() bool {
	return c.Node != nil && c.Node.AsNode().CheckBoxState(c.Target).IsChecked()
}

func (c *ToggleVisible) Invoke() bool {
	if c.Node == nil {
		return false
	}
	return c.Node.AsNode().ToggleVisibleInteractive(c.Target)
}

// ToggleKindVisible shows or hides all of the data nodes
// of one kind in a target, such as the axis decoration.
type ToggleKindVisible struct {
	Base
	Target scene.Target
	Kind   tree.Kind

	// Label is the name of the command.
	Label string

	// Symbol is the icon of the command.
	Symbol icons.Icon
}

func (c *ToggleKindVisible) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return "Toggle " + string(c.Kind)
}

func (c *ToggleKindVisible) Tooltip() string {
	return "Show or hide all nodes of kind " + string(c.Kind)
}

func (c *ToggleKindVisible) Icon() icons.Icon { return c.Symbol }

func (c *ToggleKindVisible) IsEnabled() bool {
	if c.Target == nil || c.Target.AsTree().IsDestroyed() {
		return false
	}
	for range c.nodes() {
		return true
	}
	return false
}

func (c *ToggleKindVisible) IsCheckable() bool { return true }

// IsChecked returns whether any node of the kind is visible in the target.
func (c *ToggleKindVisible) IsChecked() bool {
	return c.Target != nil && c.Target.AsTarget().HasViewOfNodeKind(c.Kind)
}

// Invoke hides all of the nodes of the kind if any is visible,
// and otherwise shows all of those that can be shown.
func (c *ToggleKindVisible) Invoke() bool {
	if c.Target == nil {
		return false
	}
	visible := !c.IsChecked()
	changed := false
	for n := range c.nodes() {
		if n.AsNode().SetVisible(visible, c.Target) {
			changed = true
		}
	}
	return changed
}

// nodes returns the nodes of the kind in the data folder of the scene.
func (c *ToggleKindVisible) nodes() iter.Seq[scene.Node] {
	return func(yield func(scene.Node) bool) {
		root := c.Target.AsNode().Root()
		if root == nil || root.Data == nil {
			return
		}
		for n := range tree.DescendantsByKind(root.Data, c.Kind) {
			sn, ok := n.(scene.Node)
			if ok && !yield(sn) {
				return
			}
		}
	}
}
