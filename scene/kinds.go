// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/subsurface-viz/nodeviz/tree"

// The kinds of the node types defined in this package.
const (
	KindNode         tree.Kind = "scene-node"
	KindFolder       tree.Kind = "folder"
	KindRoot         tree.Kind = "root"
	KindTarget       tree.Kind = "target"
	KindRenderTarget tree.Kind = "render-target"
	KindCamera       tree.Kind = "camera"
)
