// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// admin.go has infrastructure code outside of the Node interface.

// ErrInvalidOperation is returned for structural misuse of the tree,
// such as adding a child that already has a parent.
var ErrInvalidOperation = errors.New("invalid operation")

// InitNode initializes the node: it sets [NodeBase.This], assigns the
// unique [ID] and calls [Node.Init]. It does nothing for nodes that
// have already been initialized. It must be called on root nodes;
// nodes added through [NodeBase.AddChild] are initialized automatically.
func InitNode(this Node) {
	n := this.AsTree()
	if n.This == this {
		return
	}
	n.This = this
	if n.id.IsZero() {
		n.id = NewID()
	}
	this.Init()
}

// New returns a new initialized node of the given type, added as
// a child of the given parent if one is specified. A failure to add
// the node is logged, and the node is returned without a parent.
func New[T NodeValue](parent ...Node) *T {
	n := new(T)
	ni := any(n).(Node)
	InitNode(ni)
	if len(parent) == 0 || parent[0] == nil {
		return n
	}
	if err := parent[0].AsTree().AddChild(ni); err != nil {
		slog.Error("tree.New", "err", err)
	}
	return n
}

// setParent sets the parent of the given node to the given parent node,
// names the node if it has no name yet, and calls [Node.OnAdd].
// It does not add the node to the parent's list of children.
func setParent(child Node, parent Node) {
	n := child.AsTree()
	n.Parent = parent
	pn := parent.AsTree()
	pn.numLifetimeChildren++
	if n.Name == "" {
		n.Name = string(KindOf(child)) + "-" + strconv.FormatUint(pn.numLifetimeChildren-1, 10)
	}
	child.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent, keeping it alive.
func MoveToParent(child Node, parent Node) error {
	cb := child.AsTree()
	old := cb.Parent
	if old == nil {
		return parent.AsTree().AddChild(child)
	}
	cb.Parent = nil
	if err := parent.AsTree().AddChild(child); err != nil {
		cb.Parent = old
		return err
	}
	old.AsTree().removeChild(child)
	return nil
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.AsTree().This == nil || n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	cur := n.AsTree().This
	if cur == nil {
		return nil
	}
	for cur.AsTree().Parent != nil {
		cur = cur.AsTree().Parent
	}
	return cur
}

// Depth returns the number of ancestors of the given node.
func Depth(n Node) int {
	depth := 0
	n.AsTree().WalkUpParent(func(Node) bool {
		depth++
		return Continue
	})
	return depth
}

// Hierarchy returns an indented listing of the given node and all of
// its descendants, one per line, which is useful for debugging.
func Hierarchy(n Node) string {
	var b strings.Builder
	base := Depth(n)
	n.AsTree().WalkDown(func(k Node) bool {
		kb := k.AsTree()
		b.WriteString(strings.Repeat("    ", Depth(k)-base))
		b.WriteString(kb.Name)
		b.WriteString(" [")
		b.WriteString(string(KindOf(k)))
		b.WriteString(" ")
		b.WriteString(kb.ID().Short())
		b.WriteString("]\n")
		return Continue
	})
	return b.String()
}
