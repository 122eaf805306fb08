// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"cogentcore.org/core/base/keylist"

	"github.com/subsurface-viz/nodeviz/scene"
)

// Toolbar groups.
const (
	GroupActions  = "actions"
	GroupViewFrom = "view-from"
)

// Toolbar is an ordered list of named groups of commands.
// The zero value is an empty toolbar.
type Toolbar struct {
	groups keylist.List[string, []Command]
}

// Add adds the command to the end of the given group,
// adding the group after the existing ones if it is new.
func (tb *Toolbar) Add(group string, c Command) {
	cmds, _ := tb.groups.AtTry(group)
	tb.groups.Set(group, append(cmds, c))
}

// Group returns the commands of the given group.
func (tb *Toolbar) Group(group string) []Command {
	cmds, _ := tb.groups.AtTry(group)
	return cmds
}

// Groups returns the names of the groups in order.
func (tb *Toolbar) Groups() []string {
	return append([]string(nil), tb.groups.Keys...)
}

// Commands returns all of the commands, group by group.
func (tb *Toolbar) Commands() []Command {
	var all []Command
	for _, cmds := range tb.groups.Values {
		all = append(all, cmds...)
	}
	return all
}

// Find returns the first command with the given name, or nil.
func (tb *Toolbar) Find(name string) Command {
	for _, c := range tb.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// DefaultToolbar returns the standard toolbar of a render target:
// view all, background, camera type, and the six view directions.
func DefaultToolbar(rt *scene.RenderTargetNode) *Toolbar {
	base := RenderTargetCommand{Target: rt}
	tb := &Toolbar{}
	tb.Add(GroupActions, &ViewAll{base})
	tb.Add(GroupActions, &ToggleBackground{base})
	tb.Add(GroupActions, &ToggleCameraType{base})
	for _, d := range scene.ViewDirectionValues() {
		tb.Add(GroupViewFrom, &ViewFrom{RenderTargetCommand: base, Direction: d})
	}
	return tb
}
