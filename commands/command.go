// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands provides the user actions of a toolbar, each bound
// to one target. Commands are invoked synchronously on the calling
// goroutine and are not serialized: callers must not invoke conflicting
// commands concurrently.
package commands

import (
	"github.com/subsurface-viz/nodeviz/icons"
	"github.com/subsurface-viz/nodeviz/scene"
)

// Command is a re-invokable user action.
type Command interface {
	// Name is the short label of the command.
	Name() string

	// Tooltip is the longer description of the command.
	Tooltip() string

	// Icon is a presentation hint for the command.
	Icon() icons.Icon

	// IsEnabled returns whether the command can be invoked now.
	IsEnabled() bool

	// IsCheckable returns whether the command toggles a state,
	// in which case [Command.IsChecked] reports that state.
	IsCheckable() bool

	// IsChecked returns the current state of a checkable command.
	// It only reads the state of the target and its nodes.
	IsChecked() bool

	// Invoke runs the command and returns whether anything changed.
	Invoke() bool
}

// Base is the default implementation of the optional parts of
// [Command], to be embedded in concrete commands.
type Base struct{}

func (Base) Tooltip() string   { return "" }
func (Base) Icon() icons.Icon  { return icons.None }
func (Base) IsEnabled() bool   { return true }
func (Base) IsCheckable() bool { return false }
func (Base) IsChecked() bool   { return false }

// RenderTargetCommand is the base of the commands that act on a
// render target. It is disabled when there is no target or the
// target has been removed.
type RenderTargetCommand struct {
	Base
	Target *scene.RenderTargetNode
}

func (c *RenderTargetCommand) IsEnabled() bool {
	return c.Target != nil && !c.Target.IsDestroyed()
}

// Invoke invokes the given command if it is enabled,
// and returns whether anything changed.
func Invoke(c Command) bool {
	if c == nil || !c.IsEnabled() {
		return false
	}
	return c.Invoke()
}
