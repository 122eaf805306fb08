// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/subsurface-viz/nodeviz/tree"
)

// ViewDirection is one of the six axis aligned directions that a
// camera can look at the scene from.
type ViewDirection int32

const (
	// FromTop looks down along the negative z axis.
	FromTop ViewDirection = iota
	FromBottom
	FromNorth
	FromSouth
	FromEast
	FromWest
)

var viewDirectionNames = [...]string{"top", "bottom", "north", "south", "east", "west"}

func (d ViewDirection) String() string {
	if d < 0 || int(d) >= len(viewDirectionNames) {
		return fmt.Sprintf("ViewDirection(%d)", int32(d))
	}
	return viewDirectionNames[d]
}

// ViewDirectionValues returns all of the view directions.
func ViewDirectionValues() []ViewDirection {
	return []ViewDirection{FromTop, FromBottom, FromNorth, FromSouth, FromEast, FromWest}
}

// ParseViewDirection returns the view direction with the given name.
func ParseViewDirection(s string) (ViewDirection, error) {
	for i, nm := range viewDirectionNames {
		if nm == s {
			return ViewDirection(i), nil
		}
	}
	return 0, fmt.Errorf("scene: invalid view direction %q", s)
}

// Vector returns the unit vector pointing from the scene to the camera.
func (d ViewDirection) Vector() math32.Vector3 {
	switch d {
	case FromBottom:
		return math32.Vec3(0, 0, -1)
	case FromNorth:
		return math32.Vec3(0, 1, 0)
	case FromSouth:
		return math32.Vec3(0, -1, 0)
	case FromEast:
		return math32.Vec3(1, 0, 0)
	case FromWest:
		return math32.Vec3(-1, 0, 0)
	}
	return math32.Vec3(0, 0, 1)
}

// CameraNode is a camera of a [RenderTargetNode]. It is a child of the
// render target, and one of the cameras of the target is the active one.
// The z axis is up.
type CameraNode struct {
	NodeBase

	// Perspective is whether the camera uses a perspective projection,
	// as opposed to an orthographic one.
	Perspective bool

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height) of the viewport.
	Aspect float32

	// Position is the position of the camera.
	Position math32.Vector3

	// LookAt is the point that the camera looks at.
	LookAt math32.Vector3

	// Near and Far are the distances of the clipping planes.
	Near, Far float32
}

// NewCamera returns a new perspective camera added to the given parent.
func NewCamera(parent tree.Node) *CameraNode {
	c := &CameraNode{}
	AddNode(parent, c)
	return c
}

func (c *CameraNode) Init() {
	c.Perspective = true
	c.FOV = 45
	c.Aspect = 1
	c.Position = math32.Vec3(-1, -1, 1)
	c.Near = 0.1
	c.Far = 1000
}

func (c *CameraNode) Kinds() []tree.Kind {
	return tree.Kinds(KindCamera, c.NodeBase.Kinds())
}

// CanBeActive returns true: one camera of a render target is the active one.
func (c *CameraNode) CanBeActive() bool { return true }

// Direction returns the unit vector from the look at point to the camera.
func (c *CameraNode) Direction() math32.Vector3 {
	d := c.Position.Sub(c.LookAt)
	if d.Length() == 0 {
		return FromTop.Vector()
	}
	return d.Normal()
}

// Distance returns the distance from the camera to the look at point.
func (c *CameraNode) Distance() float32 {
	return c.Position.Sub(c.LookAt).Length()
}

// SetDirection moves the camera around the look at point so that it
// looks from the given direction, keeping its distance.
func (c *CameraNode) SetDirection(dir math32.Vector3) {
	dist := c.Distance()
	if dist == 0 {
		dist = 1
	}
	c.Position = c.LookAt.Add(dir.Normal().MulScalar(dist))
}

// TogglePerspective switches between the perspective and
// orthographic projections.
func (c *CameraNode) TogglePerspective() {
	c.Perspective = !c.Perspective
}

// Frame moves the camera along its current direction so that the given
// box fills the view, and sets the clipping planes from the diagonal of
// the box. It returns false if the box is empty.
func (c *CameraNode) Frame(box math32.Box3) bool {
	if box.IsEmpty() {
		return false
	}
	diagonal := box.Size().Length()
	if diagonal == 0 {
		diagonal = 1
	}
	radius := diagonal / 2
	fov := c.FOV
	if c.Aspect > 0 && c.Aspect < 1 {
		// narrow viewports are limited by the horizontal field of view
		fov *= c.Aspect
	}
	dist := radius / math32.Sin(math32.DegToRad(fov/2))
	dir := c.Direction()
	c.LookAt = box.Center()
	c.Position = c.LookAt.Add(dir.MulScalar(dist))
	c.Near = 0.001 * diagonal
	c.Far = 2*diagonal + dist
	return true
}
