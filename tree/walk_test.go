// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/subsurface-viz/nodeviz/tree"
)

var testTree *nodeEmbed

func init() {
	testTree = newNodeEmbed(nil, "root", nil)
	newNodeEmbed(testTree, "child0", nil)
	child1 := newNodeEmbed(testTree, "child1", nil)
	schild1 := NewNodeBase(child1)
	schild1.Name = "subchild1"
	newNodeEmbed(schild1, "subsubchild1", nil)
	newNodeEmbed(testTree, "child2", nil)
	child3 := NewNodeBase(testTree)
	child3.Name = "child3"
}

func paths[T Node](seq func(yield func(T) bool)) []string {
	var res []string
	for n := range seq {
		res = append(res, n.AsTree().Path())
	}
	return res
}

func TestWalkDown(t *testing.T) {
	res := []string{}
	testTree.WalkDown(func(k Node) bool {
		res = append(res, k.AsTree().Name)
		return k.AsTree().Name != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3"}, res)
}

func TestWalkDownPost(t *testing.T) {
	res := []string{}
	testTree.WalkDownPost(func(k Node) bool {
		return Continue
	}, func(k Node) bool {
		res = append(res, k.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"child0", "subsubchild1", "subchild1", "child1", "child2", "child3", "root"}, res)
}

func TestDescendants(t *testing.T) {
	assert.Equal(t, []string{"/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2", "/root/child3"}, paths(testTree.Descendants()))
	assert.Equal(t, "/root", paths(testTree.ThisAndDescendants())[0])

	// early termination and restart
	seq := testTree.Descendants()
	var first []string
	for n := range seq {
		first = append(first, n.AsTree().Name)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"child0", "child1"}, first)
	assert.Len(t, slices.Collect(seq), 6)
}

func TestDescendantsByKind(t *testing.T) {
	assert.Equal(t, []string{"/root/child0", "/root/child1", "/root/child1/subchild1/subsubchild1", "/root/child2"}, paths(DescendantsByKind(testTree, "node-embed")))
	assert.Equal(t, []string{"/root/child0", "/root/child1", "/root/child1/subchild1/subsubchild1", "/root/child2"}, paths(DescendantsOfType[*nodeEmbed](testTree)))
	assert.Equal(t, []string{"/root/child1/subchild1", "/root/child3"}, paths(func(yield func(Node) bool) {
		for n := range testTree.Descendants() {
			if !IsA(n, "node-embed") && !yield(n) {
				return
			}
		}
	}))
}

func TestAncestors(t *testing.T) {
	ssc := testTree.FindPath("child1/subchild1/subsubchild1")
	assert.Equal(t, []string{"/root/child1/subchild1", "/root/child1", "/root"}, paths(ssc.AsTree().Ancestors()))

	a, ok := AncestorOfType[*nodeEmbed](ssc)
	assert.True(t, ok)
	assert.Equal(t, "child1", a.Name)

	self, ok := ThisOrAncestorOfType[*nodeEmbed](ssc)
	assert.True(t, ok)
	assert.Equal(t, "subsubchild1", self.Name)

	kid, ok := ChildOfType[*NodeBase](testTree)
	assert.True(t, ok)
	assert.Equal(t, "child3", kid.Name)

	assert.Equal(t, 3, Depth(ssc))
	assert.Equal(t, Node(testTree), Root(ssc))
	assert.Equal(t, ssc, FindID(testTree, ssc.AsTree().ID()))
	assert.Nil(t, FindID(testTree, NewID()))
}
