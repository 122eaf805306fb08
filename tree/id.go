// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"

	"github.com/google/uuid"
)

// ID is the process-unique identifier of a node. It is assigned when the
// node is initialized and never changes or gets reused afterwards.
type ID struct {
	uuid.UUID
}

// NewID returns a new random [ID].
func NewID() ID {
	return ID{uuid.New()}
}

// ParseID parses the canonical string form of an [ID].
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID{u}, nil
}

// IsZero returns whether the id has not been assigned.
func (id ID) IsZero() bool {
	return id.UUID == uuid.Nil
}

// Short returns the first eight hex digits of the id, for display.
func (id ID) Short() string {
	return id.String()[:8]
}

// Kind is a run-time type tag of a node, such as "well" or "target".
// A node reports all of its kinds through [Node.Kinds].
type Kind string

// KindNode is the most general kind, reported by [NodeBase] itself.
const KindNode Kind = "node"

// IsA returns whether the given node is of the given kind,
// i.e. whether the kind is one of its [Node.Kinds].
func IsA(n Node, k Kind) bool {
	if n == nil {
		return false
	}
	return slices.Contains(n.Kinds(), k)
}

// KindOf returns the most specific kind of the given node,
// which serves as its type name.
func KindOf(n Node) Kind {
	ks := n.Kinds()
	if len(ks) == 0 {
		return KindNode
	}
	return ks[0]
}

// Kinds is a helper for implementing [Node.Kinds] on types that
// embed another node type: it returns the given kind followed by
// the kinds of the embedded type.
func Kinds(k Kind, embedded []Kind) []Kind {
	return append([]Kind{k}, embedded...)
}
