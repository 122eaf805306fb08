// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/subsurface-viz/nodeviz/explorer"
)

type treeOptions struct {
	json     bool
	target   string
	all      bool
	collapse bool
	watch    bool
}

func newTreeCmd(a *app) *cobra.Command {
	o := &treeOptions{}
	cmd := &cobra.Command{
		Use:   "tree <scene-file>",
		Short: "Print the explorer tree of a scene",
		Long: `Print the explorer tree of a scene, with the check box state of each
node in the given target: [x] all visible, [-] some visible, [ ] none
visible, [/] disabled, and nothing if the node can not be shown there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			update := func() error {
				return a.printTree(cmd.OutOrStdout(), path, o)
			}
			if err := update(); err != nil {
				return err
			}
			if !o.watch {
				return nil
			}
			return watch(cmd.Context(), path, update)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.json, "json", false, "print the items as JSON")
	f.StringVarP(&o.target, "target", "t", "", "the target of the check boxes; the active target if it is empty")
	f.BoolVarP(&o.all, "all", "a", false, "include the targets folder")
	f.BoolVar(&o.collapse, "collapse", false, "only print the expanded items")
	f.BoolVarP(&o.watch, "watch", "w", false, "print the tree again whenever the scene file changes")
	return cmd
}

func (a *app) printTree(w io.Writer, path string, o *treeOptions) error {
	root, err := a.load(path)
	if err != nil {
		return err
	}
	t, err := target(root, o.target)
	if err != nil {
		return err
	}
	e := explorer.New(root, t)
	e.IncludeTargets = o.all
	e.ExpandAll = !o.collapse
	if o.json {
		return e.WriteJSON(w)
	}
	return e.Render(w)
}

// watch calls update whenever the file with the given path is written,
// until the context is done. The directory of the file is watched so
// that editors that replace the file are handled.
func watch(ctx context.Context, path string, update func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "path", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("scene file changed", "op", ev.Op.String())
			if err := update(); err != nil {
				slog.Error(fmt.Sprintf("could not reload %s", path), "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "err", err)
		}
	}
}
