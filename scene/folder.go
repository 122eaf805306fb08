// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/subsurface-viz/nodeviz/tree"

// FolderNode is a node that only groups other nodes.
type FolderNode struct {
	NodeBase
}

// NewFolder returns a new folder with the given name,
// added as a child of the given parent if it is not nil.
func NewFolder(parent tree.Node, name string) *FolderNode {
	f := &FolderNode{}
	f.Name = name
	AddNode(parent, f)
	return f
}

func (f *FolderNode) Kinds() []tree.Kind {
	return tree.Kinds(KindFolder, f.NodeBase.Kinds())
}
