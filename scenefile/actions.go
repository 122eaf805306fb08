// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/commands"
	"github.com/subsurface-viz/nodeviz/scene"
)

// Ops are the supported action operations.
var Ops = []string{"show", "hide", "toggle", "remove", "activate", "view-all", "view-from", "toggle-background", "toggle-camera", "resize"}

// Action is one user action on a built scene.
type Action struct {

	// the operation, one of [Ops]
	Op string `yaml:"op"`

	// the path of the node relative to the root, as in data/A-1/main
	Node string `yaml:"node,omitempty"`

	// the name of the target; the active target if it is empty
	Target string `yaml:"target,omitempty"`

	// the direction of a view-from action: top, bottom, north, south, east, or west
	Direction string `yaml:"direction,omitempty"`

	// the window size of a resize action
	Width  float32 `yaml:"width,omitempty"`
	Height float32 `yaml:"height,omitempty"`
}

func (a *Action) String() string {
	s := a.Op
	if a.Node != "" {
		s += " " + a.Node
	}
	if a.Target != "" {
		s += " in " + a.Target
	}
	return s
}

// Apply performs the actions of the file on the given scene, in order.
// It stops at the first action that fails.
func (f *File) Apply(root *scene.RootNode) error {
	for i := range f.Actions {
		a := &f.Actions[i]
		changed, err := a.Apply(root)
		if err != nil {
			return fmt.Errorf("scenefile: action %d (%s): %w", i, a, err)
		}
		slog.Debug("applied action", "action", a.String(), "changed", changed)
	}
	return nil
}

// Apply performs the action on the given scene,
// returning whether anything changed.
func (a *Action) Apply(root *scene.RootNode) (bool, error) {
	t, err := a.target(root)
	if err != nil {
		return false, err
	}
	switch a.Op {
	case "show", "hide", "toggle", "remove", "activate":
		n, err := a.node(root)
		if err != nil {
			return false, err
		}
		switch a.Op {
		case "show":
			return n.AsNode().SetVisibleInteractive(true, t), nil
		case "hide":
			return n.AsNode().SetVisibleInteractive(false, t), nil
		case "toggle":
			return commands.Invoke(&commands.ToggleVisible{Node: n, Target: t}), nil
		case "remove":
			return true, n.AsNode().Remove()
		}
		if tn, ok := n.(scene.Target); ok {
			if tn == root.ActiveTarget() {
				return false, nil
			}
			root.SetActiveTarget(tn)
			return true, nil
		}
		return n.AsNode().SetActiveInteractive(), nil
	case "resize":
		if a.Width <= 0 || a.Height <= 0 {
			return false, fmt.Errorf("invalid window size %gx%g", a.Width, a.Height)
		}
		ws := scene.WindowSize(math32.Vec2(a.Width, a.Height))
		for _, t := range root.Targets() {
			if rt, ok := t.(interface{ AsRenderTarget() *scene.RenderTargetNode }); ok {
				rt.AsRenderTarget().Window = ws
				rt.AsRenderTarget().OnResize()
			}
		}
		return true, nil
	}

	rt, ok := t.(interface{ AsRenderTarget() *scene.RenderTargetNode })
	if !ok {
		return false, fmt.Errorf("target %q is not a render target", t.AsTree().Name)
	}
	var c commands.Command
	base := commands.RenderTargetCommand{Target: rt.AsRenderTarget()}
	switch a.Op {
	case "view-all":
		c = &commands.ViewAll{RenderTargetCommand: base}
	case "view-from":
		d, err := scene.ParseViewDirection(a.Direction)
		if err != nil {
			return false, err
		}
		c = &commands.ViewFrom{RenderTargetCommand: base, Direction: d}
	case "toggle-background":
		c = &commands.ToggleBackground{RenderTargetCommand: base}
	case "toggle-camera":
		c = &commands.ToggleCameraType{RenderTargetCommand: base}
	default:
		return false, fmt.Errorf("unknown operation %q (supported operations are %v)", a.Op, Ops)
	}
	return commands.Invoke(c), nil
}

// target returns the named target, or the active target.
func (a *Action) target(root *scene.RootNode) (scene.Target, error) {
	if a.Target == "" {
		if t := root.ActiveTarget(); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("the scene has no targets")
	}
	t := root.TargetByName(a.Target)
	if t == nil {
		return nil, fmt.Errorf("no target named %q%s", a.Target, didYouMean(a.Target, targetNames(root)))
	}
	return t, nil
}

func (a *Action) node(root *scene.RootNode) (scene.Node, error) {
	if a.Node == "" {
		return nil, fmt.Errorf("no node given")
	}
	n, ok := root.FindPath(a.Node).(scene.Node)
	if !ok {
		return nil, fmt.Errorf("no node at path %q%s", a.Node, didYouMean(a.Node, nodePaths(root)))
	}
	return n, nil
}
