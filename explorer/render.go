// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package explorer

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/subsurface-viz/nodeviz/scene"
)

// Marker returns the text form of a checkbox.
// Nodes that can never be shown have no checkbox.
func Marker(s scene.CheckBoxState) string {
	switch s {
	case scene.All:
		return "[x]"
	case scene.Some:
		return "[-]"
	case scene.None:
		return "[ ]"
	case scene.Disabled:
		return "[/]"
	}
	return "   "
}

// Render writes the visible items as an indented text tree, one item
// per line, with the names in the colors of the nodes and emphasized as
// the nodes ask for. Colors and emphasis are only
// written when the writer is a terminal that supports them, unless
// the output options specify a profile.
func (e *Explorer) Render(w io.Writer, opts ...termenv.OutputOption) error {
	out := termenv.NewOutput(w, opts...)
	for _, it := range e.VisibleItems() {
		if _, err := fmt.Fprintln(out, e.line(out, it)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Explorer) line(out *termenv.Output, it Item) string {
	var b strings.Builder
	if it.Selected {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(strings.Repeat("  ", it.Depth))
	switch {
	case !it.CanExpand:
		b.WriteString(" ")
	case it.Expanded || e.ExpandAll:
		b.WriteString("▾")
	default:
		b.WriteString("▸")
	}
	b.WriteString(" ")
	b.WriteString(Marker(it.CheckBox))
	b.WriteString(" ")

	name := out.String(it.Name)
	switch it.CheckBox {
	case scene.Never, scene.Disabled:
		name = name.Faint()
	default:
		name = name.Foreground(out.Color(it.Color))
	}
	if it.Selected || it.Bold {
		name = name.Bold()
	}
	if it.Italic {
		name = name.Italic()
	}
	b.WriteString(name.String())
	if it.Active {
		b.WriteString(" (active)")
	}
	return b.String()
}
