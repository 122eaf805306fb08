// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// allows for optimized bidirectional searching if you have a guess
// at where the node might be, which can be a key speedup for large
// slices.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return findFunc(slice, func(e Node) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of the first element in the given slice that
// has the given name, or -1 if none is found. See [IndexOf] for info on startIndex.
func IndexByName(slice []Node, name string, startIndex ...int) int {
	return findFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name }, startIndex...)
}

// findFunc searches outward in both directions from the start index,
// which defaults to the start of the slice.
func findFunc(slice []Node, match func(e Node) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	start := 0
	if len(startIndex) > 0 {
		start = min(max(startIndex[0], 0), n-1)
	}
	if start == 0 {
		for i, e := range slice {
			if match(e) {
				return i
			}
		}
		return -1
	}
	up, down := start, start-1
	for up < n || down >= 0 {
		if up < n {
			if match(slice[up]) {
				return up
			}
			up++
		}
		if down >= 0 {
			if match(slice[down]) {
				return down
			}
			down--
		}
	}
	return -1
}
