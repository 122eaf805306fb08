// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the domain-object tree that nodeviz scenes are
// built from, centered on the [Node] interface and the embedded
// [NodeBase] struct that implements it.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level node types
// must embed it. This interface only contains the tree functionality that
// higher-level types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Kinds returns the kind tags of this node, ordered from the
	// most specific (the type name of the node) to the most general.
	// It is the run-time type information used by [IsA] and by
	// kind-based lookups such as view factories, so no reflection
	// is needed to classify nodes.
	Kinds() []Kind

	// Init is called when the node is first initialized, before it
	// is added to a parent. It is called only once in the lifetime
	// of the node.
	Init()

	// OnAdd is called when the node is added to a parent.
	// It is not called on root nodes.
	OnAdd()

	// OnChildRemoved is called on the parent after the given child
	// has left its children list, either by being deleted or by
	// moving to another parent.
	OnChildRemoved(child Node)

	// Destroy recursively destroys the node and all of its children.
	// Node types can implement this to release additional resources;
	// if they do, they should call [NodeBase.Destroy] at the end of
	// their implementation, so that children are destroyed after
	// the node has released what it owns.
	Destroy()
}

// NodeValue is an interface that all non-pointer tree nodes satisfy.
// It is the constraint of [New], which allocates the node as a
// value of its struct type.
type NodeValue interface {

	// NodeValue should only be implemented by [NodeBase],
	// and it should not be called.
	NodeValue()
}

// NodeValue implements [NodeValue]. It should not be called.
func (nb NodeBase) NodeValue() {}
