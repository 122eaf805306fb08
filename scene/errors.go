// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "errors"

// Visibility operations such as [TargetNode.ShowView] report failure with a
// bool; the reasons below are only logged at the debug level, and are
// returned by the lower level methods that classify them.
var (
	// ErrNotFound means there is no view of the node in the target
	// in the state that the operation needs.
	ErrNotFound = errors.New("view not found")

	// ErrUnsupported means the factory has no view for the
	// (node kind, target kind) pair.
	ErrUnsupported = errors.New("unsupported node kind for target")

	// ErrAlreadyVisible means the view is already shown.
	ErrAlreadyVisible = errors.New("view already visible")
)
