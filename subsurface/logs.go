// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subsurface

import (
	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/scene"
	"github.com/subsurface-viz/nodeviz/tree"
)

// Log is implemented by all log nodes.
type Log interface {
	scene.Node

	// AsLog returns the [LogNode] of the log.
	AsLog() *LogNode

	// Depths returns the measured depths of the samples of the log.
	Depths() []float32
}

// LogNode is the base of the logs of a trajectory. A log is positioned
// along its trajectory, which is its closest trajectory ancestor; it
// can be in a folder below the trajectory.
type LogNode struct {
	scene.NodeBase

	// Unit is the unit of the values of the log, if any.
	Unit string
}

func (l *LogNode) AsLog() *LogNode { return l }

func (l *LogNode) Kinds() []tree.Kind {
	return tree.Kinds(KindLog, l.NodeBase.Kinds())
}

// Trajectory returns the trajectory of the log, or nil if it has none.
func (l *LogNode) Trajectory() *TrajectoryNode {
	t, _ := tree.AncestorOfType[*TrajectoryNode](l.This)
	return t
}

// CanBeChecked returns whether the log has a trajectory with samples
// to be positioned along.
func (l *LogNode) CanBeChecked(t scene.Target) bool {
	traj := l.Trajectory()
	return traj != nil && len(traj.Samples) > 0
}

// NameExtension returns the unit of the log.
func (l *LogNode) NameExtension() string { return l.Unit }

// Positions returns the positions of the given measured depths along
// the trajectory of the log, skipping those outside of it.
func (l *LogNode) Positions(depths []float32) []math32.Vector3 {
	traj := l.Trajectory()
	if traj == nil {
		return nil
	}
	var pts []math32.Vector3
	for _, md := range depths {
		if p, ok := traj.PositionAt(md); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// FloatLogSample is a value of a log at a measured depth.
type FloatLogSample struct {
	MD    float32
	Value float32
}

// FloatLogNode is a log of continuous values, such as gamma ray.
type FloatLogNode struct {
	LogNode
	Samples []FloatLogSample
}

// NewFloatLog returns a new float log added to the given parent.
func NewFloatLog(parent tree.Node, name, unit string, samples ...FloatLogSample) *FloatLogNode {
	l := &FloatLogNode{Samples: samples}
	l.Name = name
	l.Unit = unit
	scene.AddNode(parent, l)
	return l
}

func (l *FloatLogNode) Kinds() []tree.Kind {
	return tree.Kinds(KindFloatLog, l.LogNode.Kinds())
}

func (l *FloatLogNode) Depths() []float32 {
	ds := make([]float32, len(l.Samples))
	for i, s := range l.Samples {
		ds[i] = s.MD
	}
	return ds
}

// ValueRange returns the range of the values of the log.
// It returns false if the log has no samples.
func (l *FloatLogNode) ValueRange() (lo, hi float32, ok bool) {
	for i, s := range l.Samples {
		if i == 0 {
			lo, hi = s.Value, s.Value
			continue
		}
		lo = min(lo, s.Value)
		hi = max(hi, s.Value)
	}
	return lo, hi, len(l.Samples) > 0
}

// PointLogSample is a labeled event of a log at a measured depth,
// such as a formation top.
type PointLogSample struct {
	MD    float32
	Label string
}

// PointLogNode is a log of discrete events.
type PointLogNode struct {
	LogNode
	Samples []PointLogSample
}

// NewPointLog returns a new point log added to the given parent.
func NewPointLog(parent tree.Node, name string, samples ...PointLogSample) *PointLogNode {
	l := &PointLogNode{Samples: samples}
	l.Name = name
	scene.AddNode(parent, l)
	return l
}

func (l *PointLogNode) Kinds() []tree.Kind {
	return tree.Kinds(KindPointLog, l.LogNode.Kinds())
}

func (l *PointLogNode) Depths() []float32 {
	ds := make([]float32, len(l.Samples))
	for i, s := range l.Samples {
		ds[i] = s.MD
	}
	return ds
}
