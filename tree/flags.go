// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Flags are bit flags for the presentation state of nodes
// that the explorer projects into its node list.
type Flags int64

const (
	// Expanded indicates that the children of the node are shown
	// in the explorer.
	Expanded Flags = 1 << iota

	// Selected indicates that the node is selected in the explorer.
	Selected

	// Active indicates that the node is the active one among
	// its siblings of the same kind, such as the active camera.
	Active
)

// Has returns whether the given flag is set.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// SetFlag sets or clears the given flag on the node.
func (n *NodeBase) SetFlag(on bool, flag Flags) {
	if on {
		n.Flags |= flag
	} else {
		n.Flags &^= flag
	}
}

// HasFlag returns whether the given flag is set on the node.
func (n *NodeBase) HasFlag(flag Flags) bool {
	return n.Flags.Has(flag)
}
