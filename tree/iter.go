// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "iter"

// The sequences in this file are lazy: nothing is visited until the
// sequence is ranged over, and every range walks the tree anew, so a
// sequence can be kept and restarted after the tree changes.

// Descendants returns a pre-order sequence of all of the descendants of
// the node, not including the node itself, with children visited in
// insertion order.
func (n *NodeBase) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkSeq(n, false, yield)
	}
}

// ThisAndDescendants is like [NodeBase.Descendants], but starts with the
// node itself.
func (n *NodeBase) ThisAndDescendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walkSeq(n, true, yield)
	}
}

// walkSeq yields the nodes of a pre-order walk until yield returns false.
func walkSeq(n *NodeBase, self bool, yield func(Node) bool) {
	done := false
	start := n.This
	n.WalkDown(func(k Node) bool {
		if done {
			return Break
		}
		if k == start && !self {
			return Continue
		}
		if !yield(k) {
			done = true
			return Break
		}
		return Continue
	})
}

// Ancestors returns the sequence of the parents of the node,
// starting with its direct parent and ending with the root.
func (n *NodeBase) Ancestors() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.WalkUpParent(func(k Node) bool {
			return yield(k)
		})
	}
}

// DescendantsByKind returns a pre-order sequence of the descendants
// of the given node that are of the given kind (see [IsA]).
func DescendantsByKind(n Node, k Kind) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for d := range n.AsTree().Descendants() {
			if IsA(d, k) && !yield(d) {
				return
			}
		}
	}
}

// DescendantsOfType returns a pre-order sequence of the descendants of the
// given node whose Go type implements or is T. T is typically a pointer to
// a node type or an interface type for a node capability.
func DescendantsOfType[T any](n Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for d := range n.AsTree().Descendants() {
			if t, ok := d.(T); ok && !yield(t) {
				return
			}
		}
	}
}

// ChildrenOfType returns the sequence of the direct children of the
// given node whose Go type implements or is T.
func ChildrenOfType[T any](n Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, kid := range n.AsTree().Children {
			if t, ok := kid.(T); ok && !yield(t) {
				return
			}
		}
	}
}

// ChildOfType returns the first direct child of the given node
// of type T, and false if there is none.
func ChildOfType[T any](n Node) (T, bool) {
	for t := range ChildrenOfType[T](n) {
		return t, true
	}
	var zero T
	return zero, false
}

// AncestorOfType returns the nearest ancestor of the given node
// of type T, and false if there is none.
func AncestorOfType[T any](n Node) (T, bool) {
	for a := range n.AsTree().Ancestors() {
		if t, ok := a.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// ThisOrAncestorOfType is like [AncestorOfType], but also
// considers the node itself.
func ThisOrAncestorOfType[T any](n Node) (T, bool) {
	if t, ok := n.AsTree().This.(T); ok {
		return t, true
	}
	return AncestorOfType[T](n)
}

// FindID returns the node with the given id in the subtree
// rooted at the given node, or nil if there is none.
func FindID(n Node, id ID) Node {
	for k := range n.AsTree().ThisAndDescendants() {
		if k.AsTree().ID() == id {
			return k
		}
	}
	return nil
}
