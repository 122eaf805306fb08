// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads YAML descriptions of subsurface scenes: the
// render targets, the data tree, and a script of user actions. It plays
// the part of a data loader, building the nodes from already loaded data.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/subsurface-viz/nodeviz/config"
)

// File is a scene description.
type File struct {

	// the render targets; if there are none, those
	// of the configuration are used
	Targets []config.Target `yaml:"targets,omitempty"`

	// the items of the data folder
	Data []Item `yaml:"data,omitempty"`

	// the actions that [File.Apply] performs
	Actions []Action `yaml:"actions,omitempty"`
}

// Item is a node of the data tree. Its kind selects the fields that apply.
type Item struct {

	// the kind of the node: folder, well, surface, point-cloud, or axis
	Kind string `yaml:"kind"`

	// the name of the node
	Name string `yaml:"name,omitempty"`

	// the color of the node as a hex color; by default
	// it is picked from a palette
	Color string `yaml:"color,omitempty"`

	// the items of a folder
	Children []Item `yaml:"children,omitempty"`

	// the well head of a well
	Head [3]float32 `yaml:"head,omitempty"`

	// the trajectories of a well
	Trajectories []Trajectory `yaml:"trajectories,omitempty"`

	// the position of the first node of a surface grid
	Origin [2]float32 `yaml:"origin,omitempty"`

	// the spacing of a surface grid
	Inc [2]float32 `yaml:"inc,omitempty"`

	// the size of a surface grid
	NX int `yaml:"nx,omitempty"`
	NY int `yaml:"ny,omitempty"`

	// the depths of a surface grid, row by row; null is undefined
	Z []*float32 `yaml:"z,omitempty"`

	// the points of a point cloud
	Points [][3]float32 `yaml:"points,omitempty"`
}

// Trajectory is a trajectory of a well.
type Trajectory struct {
	Name string `yaml:"name"`

	// the samples as measured depth, x, y, and z
	Samples [][4]float32 `yaml:"samples"`

	// the logs of the trajectory
	Logs []Log `yaml:"logs,omitempty"`
}

// Log is a log of a trajectory.
type Log struct {
	Name string `yaml:"name"`

	// [def: float] the kind of the log: float or point
	Kind string `yaml:"kind,omitempty"`

	// the unit of the values of a float log
	Unit string `yaml:"unit,omitempty"`

	// the samples of a float log as measured depth and value
	Values [][2]float32 `yaml:"values,omitempty"`

	// the events of a point log
	Events []Event `yaml:"events,omitempty"`
}

// Event is an event of a point log.
type Event struct {
	MD    float32 `yaml:"md"`
	Label string  `yaml:"label"`
}

// Load reads a scene description. Unknown fields are errors,
// and an empty document is an empty scene.
func Load(r io.Reader) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return f, nil
}

// Open reads the scene description in the file with the given path.
func Open(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	f, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Write writes the scene description as YAML.
func (f *File) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}
