// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"iter"
	"slices"

	"cogentcore.org/core/base/keylist"
	"github.com/subsurface-viz/nodeviz/tree"
)

// ViewList is the list of the views that are alive in one target,
// keyed by the id of the node that each view represents. It keeps
// the views in the order in which they were added. The zero value
// is an empty list ready to use.
type ViewList struct {
	list keylist.List[tree.ID, View]
}

// Add adds the given view of the node with the given id.
// It returns an error if the list already has a view of that node.
func (vl *ViewList) Add(id tree.ID, v View) error {
	return vl.list.Add(id, v)
}

// Remove removes the view of the node with the given id,
// returning false if there is none.
func (vl *ViewList) Remove(id tree.ID) bool {
	return vl.list.DeleteByKey(id)
}

// At returns the view of the node with the given id,
// and false if there is none.
func (vl *ViewList) At(id tree.ID) (View, bool) {
	return vl.list.AtTry(id)
}

// Has returns whether the list has a view of the node with the given id.
func (vl *ViewList) Has(id tree.ID) bool {
	return vl.list.IndexByKey(id) >= 0
}

// Len returns the number of views in the list.
func (vl *ViewList) Len() int {
	return vl.list.Len()
}

// Clear removes all of the views from the list without disposing them.
func (vl *ViewList) Clear() {
	vl.list.Reset()
}

// All returns a sequence of the node ids and views in the list.
// The list must not be modified while the sequence is ranged over;
// use [ViewList.Views] for that.
func (vl *ViewList) All() iter.Seq2[tree.ID, View] {
	return func(yield func(tree.ID, View) bool) {
		for i, v := range vl.list.Values {
			if !yield(vl.list.Keys[i], v) {
				return
			}
		}
	}
}

// Views returns a copy of the views in the list.
func (vl *ViewList) Views() []View {
	return slices.Clone(vl.list.Values)
}
