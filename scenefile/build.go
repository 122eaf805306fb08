// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/config"
	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/subsurface"
	"github.com/subsurface-viz/nodeviz/tree"
)

// Build builds the scene: a root with the given factory, the targets
// of the file (or of the configuration if the file has none), and the
// data tree. A nil factory is a factory with the subsurface views, and
// a nil configuration is the default one.
func (f *File) Build(fac *scene.Factory, cfg *config.Config) (*scene.RootNode, error) {
	if fac == nil {
		fac = subsurface.NewFactory()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	root := scene.NewRoot(fac)
	if err := f.buildTargets(root, cfg); err != nil {
		return nil, err
	}
	for i := range f.Data {
		if err := buildItem(root.Data, &f.Data[i]); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (f *File) buildTargets(root *scene.RootNode, cfg *config.Config) error {
	targets := f.Targets
	if len(targets) == 0 {
		targets = cfg.Targets
	}
	dark, err := cfg.DarkColor()
	if err != nil {
		return fmt.Errorf("scenefile: dark background: %w", err)
	}
	light, err := cfg.LightColor()
	if err != nil {
		return fmt.Errorf("scenefile: light background: %w", err)
	}
	window := scene.WindowSize(cfg.WindowSize())
	for i := range targets {
		ct := targets[i]
		if err := ct.Validate(); err != nil {
			return fmt.Errorf("scenefile: target %d: %w", i, err)
		}
		if root.TargetByName(ct.Name) != nil {
			return fmt.Errorf("scenefile: duplicate target name %q", ct.Name)
		}
		var t interface {
			scene.Target
			AsRenderTarget() *scene.RenderTargetNode
		}
		switch ct.Kind {
		case config.TargetMap:
			t = subsurface.NewMapTarget(ct.Name, ct.Box(), window)
		default:
			t = subsurface.NewThreeTarget(ct.Name, ct.Box(), window)
		}
		rt := t.AsRenderTarget()
		rt.Margin = cfg.Margin(&ct)
		rt.DarkBackground = dark
		rt.LightBackground = light
		rt.IsLightBackground = ct.Light
		if err := root.AddTarget(t); err != nil {
			return fmt.Errorf("scenefile: target %q: %w", ct.Name, err)
		}
		rt.OnResize()
	}
	return nil
}

func buildItem(parent tree.Node, it *Item) error {
	n, err := newNode(parent, it)
	if err != nil {
		return fmt.Errorf("scenefile: %s %q in %s: %w", it.Kind, it.Name, parent.AsTree().Path(), err)
	}
	if it.Color != "" {
		c, err := colors.FromHex(it.Color)
		if err != nil {
			return fmt.Errorf("scenefile: color of %q: %w", it.Name, err)
		}
		n.AsNode().Color = c
	}
	for i := range it.Children {
		if err := buildItem(n, &it.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

func newNode(parent tree.Node, it *Item) (scene.Node, error) {
	if len(it.Children) > 0 && it.Kind != "folder" {
		return nil, fmt.Errorf("only folders have children")
	}
	switch it.Kind {
	case "folder":
		return scene.NewFolder(parent, it.Name), nil
	case "well":
		w := subsurface.NewWell(parent, it.Name, math32.Vec3(it.Head[0], it.Head[1], it.Head[2]))
		for _, tr := range it.Trajectories {
			if err := buildTrajectory(w, tr); err != nil {
				return nil, err
			}
		}
		return w, nil
	case "surface":
		z := make([]float32, len(it.Z))
		for i, v := range it.Z {
			if v == nil {
				z[i] = math32.NaN()
			} else {
				z[i] = *v
			}
		}
		s, err := subsurface.NewSurface(parent, it.Name, math32.Vec2(it.Origin[0], it.Origin[1]), math32.Vec2(it.Inc[0], it.Inc[1]), it.NX, it.NY, z)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "point-cloud":
		pts := make([]math32.Vector3, len(it.Points))
		for i, p := range it.Points {
			pts[i] = math32.Vec3(p[0], p[1], p[2])
		}
		return subsurface.NewPointCloud(parent, it.Name, pts...), nil
	case "axis":
		a := subsurface.NewAxis(parent)
		if it.Name != "" {
			a.Name = it.Name
		}
		return a, nil
	}
	return nil, fmt.Errorf("unknown kind")
}

func buildTrajectory(w *subsurface.WellNode, tr Trajectory) error {
	samples := make([]subsurface.TrajectorySample, len(tr.Samples))
	for i, s := range tr.Samples {
		samples[i] = subsurface.TrajectorySample{MD: s[0], Point: math32.Vec3(s[1], s[2], s[3])}
	}
	t := subsurface.NewTrajectory(w, tr.Name, samples...)
	for _, l := range tr.Logs {
		switch l.Kind {
		case "", "float":
			vs := make([]subsurface.FloatLogSample, len(l.Values))
			for i, v := range l.Values {
				vs[i] = subsurface.FloatLogSample{MD: v[0], Value: v[1]}
			}
			subsurface.NewFloatLog(t, l.Name, l.Unit, vs...)
		case "point":
			es := make([]subsurface.PointLogSample, len(l.Events))
			for i, e := range l.Events {
				es[i] = subsurface.PointLogSample{MD: e.MD, Label: e.Label}
			}
			subsurface.NewPointLog(t, l.Name, es...)
		default:
			return fmt.Errorf("log %q of trajectory %q has unknown kind %q", l.Name, tr.Name, l.Kind)
		}
	}
	return nil
}
