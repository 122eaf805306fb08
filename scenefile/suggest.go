// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"iter"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/subsurface-viz/nodeviz/scene"
)

// minSimilarity is the similarity below which no name is suggested.
const minSimilarity = 0.7

// didYouMean returns a suggestion of the candidate closest to the given
// name, as "; did you mean ...?", or "" if none is close enough.
func didYouMean(name string, candidates iter.Seq[string]) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, score := "", 0.0
	for c := range candidates {
		if s := strutil.Similarity(name, c, lev); s > score {
			best, score = c, s
		}
	}
	if score < minSimilarity {
		return ""
	}
	return fmt.Sprintf("; did you mean %q?", best)
}

// targetNames returns the names of the targets of the scene.
func targetNames(root *scene.RootNode) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, t := range root.Targets() {
			if !yield(t.AsTree().Name) {
				return
			}
		}
	}
}

// nodePaths returns the paths of the nodes of the scene relative to the root.
func nodePaths(root *scene.RootNode) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range root.Descendants() {
			if !yield(n.AsTree().PathFrom(root)) {
				return
			}
		}
	}
}
