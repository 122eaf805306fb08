// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icons provides the names of the icons that commands and
// explorer items use as presentation hints. The names are those of the
// Material Design Symbols, so that a frontend can map them directly.
package icons

// Icon is the name of an icon. It can be
// set to "" or [None] to indicate that no icon should be used.
type Icon string

// None is an icon that indicates to not use an icon.
const None Icon = "none"

const (
	Visibility    Icon = "visibility"
	VisibilityOff Icon = "visibility_off"
	ZoomOutMap    Icon = "zoom_out_map"
	Contrast      Icon = "contrast"
	Videocam      Icon = "videocam"
	Axis          Icon = "axis"
	Folder        Icon = "folder"
	Well          Icon = "oil_barrel"
	Timeline      Icon = "timeline"
	Grid          Icon = "grid_on"
	Scatter       Icon = "scatter_plot"
	Map           Icon = "map"
	ViewInAr      Icon = "view_in_ar"

	ArrowDownward Icon = "arrow_downward"
	ArrowUpward   Icon = "arrow_upward"
	North         Icon = "north"
	South         Icon = "south"
	East          Icon = "east"
	West          Icon = "west"
)

// IsSet returns whether the icon is set to a value other than "" or [None].
func (i Icon) IsSet() bool {
	return i != "" && i != None
}
