// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// CheckBoxState is the aggregate visibility state of a node in one
// target, as shown by the check box of the node in an explorer.
type CheckBoxState int32

const (
	// Never means that neither the node nor any of its descendants
	// can be shown in the target, so it has no check box.
	Never CheckBoxState = iota

	// None means that nothing is visible.
	None

	// Some means that some but not all of the candidates are visible.
	Some

	// All means that every candidate is visible.
	All

	// Disabled means that nothing is visible and the node
	// refuses to be checked in the target.
	Disabled
)

var checkBoxStateNames = [...]string{"never", "none", "some", "all", "disabled"}

// String returns the lower-case name of the state.
func (s CheckBoxState) String() string {
	if s < 0 || int(s) >= len(checkBoxStateNames) {
		return fmt.Sprintf("CheckBoxState(%d)", int32(s))
	}
	return checkBoxStateNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s CheckBoxState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *CheckBoxState) UnmarshalText(text []byte) error {
	for i, nm := range checkBoxStateNames {
		if nm == string(text) {
			*s = CheckBoxState(i)
			return nil
		}
	}
	return fmt.Errorf("scene: invalid CheckBoxState %q", text)
}

// IsChecked returns whether the state shows a visible check mark.
func (s CheckBoxState) IsChecked() bool {
	return s == All || s == Some
}

// Aggregate combines the states of the candidates of a node into the
// state of the node. Candidates in the [Never] state are skipped.
// The result is [All] if every candidate is All, [None] if every
// candidate is None or [Disabled], [Never] if there are no candidates,
// and [Some] otherwise. Turning None into Disabled for nodes that can
// not be checked is up to the caller.
func Aggregate(states ...CheckBoxState) CheckBoxState {
	candidates, all, none := 0, 0, 0
	for _, s := range states {
		switch s {
		case Never:
			continue
		case All:
			all++
		case None, Disabled:
			none++
		}
		candidates++
		if all > 0 && none > 0 {
			return Some
		}
	}
	switch candidates {
	case 0:
		return Never
	case all:
		return All
	case none:
		return None
	}
	return Some
}
