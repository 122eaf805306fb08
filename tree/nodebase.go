// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the nodeviz tree system. You must use NodeBase as an embedded struct
// in all higher-level node types.
//
// All nodes must be initialized with [InitNode] (directly, or indirectly by
// [NodeBase.AddChild] or [NodeBase.InsertChild]). This ensures that the
// [NodeBase.This] field is set correctly, the [ID] is assigned and the
// [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other
	// children of the same parent. If not otherwise set, it defaults to the kind
	// of the node combined with the total number of children that have ever been
	// added to the node's parent.
	Name string

	// This is the value of this Node as its true underlying type. This allows
	// methods defined on base types to call methods defined on higher-level types.
	// It is set to nil when the node is destroyed.
	This Node `json:"-"`

	// Parent is the parent of this node, which is set automatically when this
	// node is added as a child of a parent. It is a back reference: the parent
	// owns the child, never the other way around.
	Parent Node `json:"-"`

	// Children is the ordered list of children of this node. All of them have
	// this node as their parent. Use the NodeBase child helpers to modify it.
	Children []Node `json:",omitempty"`

	// Flags are the presentation flags of the node.
	Flags Flags

	// id is the unique id of the node, assigned by [InitNode].
	id ID

	// numLifetimeChildren is the number of children that have ever been added
	// to this node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point
	// for finding us in our parent next time.
	index int
}

// NewNodeBase returns a new initialized [NodeBase], added as a child of
// the given parent if one is specified.
func NewNodeBase(parent ...Node) *NodeBase {
	n := &NodeBase{}
	InitNode(n)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// Kinds returns [KindNode]; node types embedding NodeBase
// report their own kinds first.
func (n *NodeBase) Kinds() []Kind {
	return []Kind{KindNode}
}

// Init does nothing by default.
func (n *NodeBase) Init() {}

// OnAdd does nothing by default.
func (n *NodeBase) OnAdd() {}

// OnChildRemoved does nothing by default.
func (n *NodeBase) OnChildRemoved(child Node) {}

// ID returns the unique id of the node.
func (n *NodeBase) ID() ID {
	return n.id
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using names separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given ancestor node,
// excluding the name of the ancestor and the leading slash; for example,
// in the tree a/b/c/d/e, the result of d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(ancestor Node) string {
	if n.This == ancestor {
		return ""
	}
	ancestor = ancestor.AsTree().This
	if n.Parent == nil || n.Parent == ancestor {
		return EscapePathName(n.Name)
	}
	return n.Parent.AsTree().PathFrom(ancestor) + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node, in the
// format produced by [NodeBase.PathFrom]. Index-based access such as
// [0] for the first child is also supported. A leading slash followed
// by the name of this node, as produced by [NodeBase.Path] on a root,
// is accepted too. It returns nil if no node is found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	path = strings.Trim(strings.TrimSpace(path), "\"")
	if strings.HasPrefix(path, "/") && n.Parent == nil {
		path = strings.TrimPrefix(path[1:], EscapePathName(n.Name))
	}
	cur := n.This
	for _, pe := range strings.Split(path, "/") {
		if len(pe) == 0 {
			continue
		}
		idx := findPathChild(cur, UnescapePathName(pe))
		if idx < 0 || idx >= cur.AsTree().NumChildren() {
			return nil
		}
		cur = cur.AsTree().Children[idx]
	}
	return cur
}

// findPathChild finds the child with the given string representation in [NodeBase.FindPath].
func findPathChild(n Node, child string) int {
	if child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err != nil {
			return -1
		}
		if idx < 0 { // from end
			idx = len(n.AsTree().Children) + idx
		}
		return idx
	}
	return IndexByName(n.AsTree().Children, child)
}

// Adding and Inserting Children:

// AddChild adds the given child at the end of the children list. It fails
// with [ErrInvalidOperation] if the child already has a parent, if it has
// been destroyed, or if adding it would create a cycle.
func (n *NodeBase) AddChild(kid Node) error {
	return n.InsertChild(kid, len(n.Children))
}

// InsertChild adds the given child at the given position in the children
// list, clamped to the valid range. See [NodeBase.AddChild] for the
// conditions under which it fails.
func (n *NodeBase) InsertChild(kid Node, index int) error {
	if err := n.canAdopt(kid); err != nil {
		return err
	}
	InitNode(kid)
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	setParent(kid, n.This)
	return nil
}

// canAdopt returns an error if the given node can not become a child of n.
func (n *NodeBase) canAdopt(kid Node) error {
	switch {
	case n.This == nil:
		return fmt.Errorf("%w: node %q is not initialized or has been destroyed", ErrInvalidOperation, n.Name)
	case kid == nil:
		return fmt.Errorf("%w: nil child added to %v", ErrInvalidOperation, n)
	case kid.AsTree().IsDestroyed():
		return fmt.Errorf("%w: %v has been destroyed", ErrInvalidOperation, kid.AsTree())
	case kid.AsTree().Parent != nil:
		return fmt.Errorf("%w: %v already has a parent", ErrInvalidOperation, kid.AsTree())
	case kid.AsTree() == n:
		return fmt.Errorf("%w: %v can not be added to itself", ErrInvalidOperation, n)
	}
	cycle := false
	n.WalkUpParent(func(k Node) bool {
		if k.AsTree() == kid.AsTree() {
			cycle = true
			return Break
		}
		return Continue
	})
	if cycle {
		return fmt.Errorf("%w: %v is an ancestor of %v", ErrInvalidOperation, kid.AsTree(), n)
	}
	return nil
}

// Deleting Children:

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil || IndexOf(n.Children, child) < 0 {
		return false
	}
	child.AsTree().Delete()
	return true
}

// DeleteChildren deletes all children nodes, in order.
func (n *NodeBase) DeleteChildren() {
	for _, kid := range slices.Clone(n.Children) {
		if kid == nil {
			continue
		}
		kid.AsTree().Delete()
	}
}

// Delete destroys this node through [Node.Destroy], which destroys
// its children first, and then removes it from its parent's children list.
func (n *NodeBase) Delete() {
	this := n.This
	if this == nil { // already destroyed
		return
	}
	parent := n.Parent
	this.Destroy()
	if parent != nil {
		parent.AsTree().removeChild(this)
	}
	n.Parent = nil
}

// removeChild removes the given child from the children list
// without destroying it.
func (n *NodeBase) removeChild(kid Node) {
	idx := IndexOf(n.Children, kid)
	if idx < 0 {
		return
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	if n.This != nil {
		n.This.OnChildRemoved(kid)
	}
}

// Destroy recursively deletes and destroys all of the children of the node,
// and then marks the node itself as destroyed by setting [NodeBase.This]
// to nil.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.This = nil
}

// IsDestroyed returns whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.This == nil && !n.id.IsZero()
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking if
// it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	if cur == nil {
		return true
	}
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents
// (but not the node itself). See [NodeBase.WalkUp] for the semantics
// of the return values.
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	cur := n.Parent
	for cur != nil {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == cur {
			break
		}
		cur = parent
	}
	return true
}

// WalkDown calls the given function on the node and all of its descendants
// in a depth-first pre-order manner, visiting children in insertion order.
// It stops walking the current branch of the tree if the function returns
// [Break] and keeps walking if it returns [Continue]. It is non-recursive.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	stack := []Node{n.This}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cb := cur.AsTree()
		// fun can destroy the node, so we have to check before and after.
		if cb.This == nil || !fun(cur) || cb.This == nil {
			continue
		}
		for i := len(cb.Children) - 1; i >= 0; i-- {
			if kid := cb.Children[i]; kid != nil {
				stack = append(stack, kid)
			}
		}
	}
}

// walkFrame is one level of the explicit stack used by [NodeBase.WalkDownPost].
type walkFrame struct {
	node Node
	next int
}

// WalkDownPost iterates in a depth-first manner over the descendants, calling
// shouldContinue on each node to test if processing should proceed (if it
// returns [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children have been
// iterated over. In effect, this means that the given function is called for
// deeper nodes first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	var stack []walkFrame
	push := func(k Node) {
		f := walkFrame{node: k}
		if !shouldContinue(k) {
			f.next = len(k.AsTree().Children)
		}
		stack = append(stack, f)
	}
	push(n.This)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := top.node.AsTree().Children
		if top.next < len(kids) {
			kid := kids[top.next]
			top.next++
			if kid != nil && kid.AsTree().This != nil {
				push(kid)
			}
			continue
		}
		cur := top.node
		stack = stack[:len(stack)-1]
		fun(cur)
	}
}
