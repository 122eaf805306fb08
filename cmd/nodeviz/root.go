// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/subsurface-viz/nodeviz/config"
	"github.com/subsurface-viz/nodeviz/logx"
	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/scenefile"
	"github.com/subsurface-viz/nodeviz/subsurface"
	"github.com/subsurface-viz/nodeviz/tree"
)

// app is the state shared by all of the commands.
type app struct {
	configPath string
	vv, v, q   bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "nodeviz",
		Short:             "nodeviz shows subsurface scenes in multiple render targets",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "the TOML config file; the defaults are used if it is empty")
	pf.BoolVar(&a.vv, "vv", false, "whether to print debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "whether to print informational messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "whether to only print errors")

	root.AddCommand(newTreeCmd(a), newViewsCmd(a), newKindsCmd(), newConfigCmd(a))
	return root
}

// setup loads the config and sets up the default logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Open(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.vv || a.v || a.q {
		logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	} else {
		level, err := a.cfg.Level()
		if err != nil {
			return err
		}
		logx.UserLevel = level
	}
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr(), logx.UserLevel)))
	slog.Debug("loaded config", "path", a.configPath, "targets", len(a.cfg.Targets))
	return nil
}

// load builds the scene in the file with the given path
// and applies its actions.
func (a *app) load(path string, opts ...scene.FactoryOption) (*scene.RootNode, error) {
	f, err := scenefile.Open(path)
	if err != nil {
		return nil, err
	}
	root, err := f.Build(subsurface.NewFactory(opts...), a.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Apply(root); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("loaded scene", "path", path, "targets", len(root.Targets()), "nodes", len(root.Data.Children))
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("scene tree\n" + tree.Hierarchy(root))
	}
	return root, nil
}

// target returns the target with the given name,
// or the active target if the name is empty.
func target(root *scene.RootNode, name string) (scene.Target, error) {
	if name == "" {
		return root.ActiveTarget(), nil
	}
	t := root.TargetByName(name)
	if t == nil {
		return nil, fmt.Errorf("no target named %q", name)
	}
	return t, nil
}
