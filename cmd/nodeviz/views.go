// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/math32"
	"github.com/spf13/cobra"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// targetViews is the summary of the views of one target.
type targetViews struct {
	Name   string      `json:"name"`
	Kind   tree.Kind   `json:"kind"`
	Active bool        `json:"active"`
	Views  []viewEntry `json:"views"`
}

type viewEntry struct {
	Node  string          `json:"node"`
	Kind  tree.Kind       `json:"kind"`
	State scene.ViewState `json:"state"`
	Box   *math32.Box3    `json:"box,omitempty"`
}

func newViewsCmd(a *app) *cobra.Command {
	var asJSON bool
	var name string
	cmd := &cobra.Command{
		Use:   "views <scene-file>",
		Short: "Print the live views of each target of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(args[0])
			if err != nil {
				return err
			}
			targets := root.Targets()
			if name != "" {
				t, err := target(root, name)
				if err != nil {
					return err
				}
				targets = []scene.Target{t}
			}
			tvs := make([]targetViews, len(targets))
			for i, t := range targets {
				tvs[i] = summarize(root, t)
			}
			if asJSON {
				return jsonx.WriteIndent(tvs, cmd.OutOrStdout())
			}
			return printViews(cmd.OutOrStdout(), tvs)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the views as JSON")
	cmd.Flags().StringVarP(&name, "target", "t", "", "only print the views of the target with this name")
	return cmd
}

func summarize(root *scene.RootNode, t scene.Target) targetViews {
	tv := targetViews{
		Name:   t.AsTree().Name,
		Kind:   tree.KindOf(t),
		Active: t == root.ActiveTarget(),
		Views:  []viewEntry{},
	}
	for _, v := range t.AsTarget().ViewsShownHere() {
		n := v.AsView().Node()
		ve := viewEntry{
			Node:  n.AsTree().PathFrom(root),
			Kind:  tree.KindOf(n),
			State: v.AsView().State(),
		}
		if b, ok := v.(scene.Bounded); ok {
			box := b.BoundingBox()
			if !box.IsEmpty() {
				ve.Box = &box
			}
		}
		tv.Views = append(tv.Views, ve)
	}
	return tv
}

func printViews(w io.Writer, tvs []targetViews) error {
	for _, tv := range tvs {
		active := ""
		if tv.Active {
			active = " (active)"
		}
		if _, err := fmt.Fprintf(w, "%s [%s]%s: %d views\n", tv.Name, tv.Kind, active, len(tv.Views)); err != nil {
			return err
		}
		for _, ve := range tv.Views {
			line := fmt.Sprintf("  %-8s %s [%s]", ve.State, ve.Node, ve.Kind)
			if ve.Box != nil {
				line += fmt.Sprintf(" %v-%v", ve.Box.Min, ve.Box.Max)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
