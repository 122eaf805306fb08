// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// TargetKind is the kind of a render target.
type TargetKind string

const (
	// TargetThree is a 3D target.
	TargetThree TargetKind = "three"

	// TargetMap is a map target, which shows the scene from above.
	TargetMap TargetKind = "map"
)

// SupportedTargetKinds are the kinds that targets can have.
var SupportedTargetKinds = []TargetKind{TargetThree, TargetMap}

// SetString sets the target kind from the given string,
// returning an error if it is not supported.
func (k *TargetKind) SetString(s string) error {
	for _, sk := range SupportedTargetKinds {
		if string(sk) == s {
			*k = sk
			return nil
		}
	}
	return fmt.Errorf("unknown target kind %q; please check that you spelled it correctly (supported kinds are %v)", s, SupportedTargetKinds)
}

// Target is the configuration of one render target.
type Target struct {

	// the name of the target, which must be unique
	Name string `toml:"name"`

	// [def: three] the kind of the target
	Kind TargetKind `toml:"kind"`

	// the range of the viewport as fractions of the window,
	// as x0, y0, x1, y1 in [0, 1]
	Fraction [4]float32 `toml:"fraction"`

	// the margin of the target in pixels, if it
	// differs from the margin of the window
	Margin *float32 `toml:"margin,omitempty"`

	// whether the target starts with the light background
	Light bool `toml:"light,omitempty"`
}

// Box returns the fraction range of the target.
func (t *Target) Box() math32.Box2 {
	f := t.Fraction
	return math32.B2(f[0], f[1], f[2], f[3])
}

// Validate returns an error if the target is invalid. An empty kind
// is set to [TargetThree].
func (t *Target) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("target has no name")
	}
	if t.Kind == "" {
		t.Kind = TargetThree
	}
	if err := t.Kind.SetString(string(t.Kind)); err != nil {
		return err
	}
	for _, f := range t.Fraction {
		if f < 0 || f > 1 {
			return fmt.Errorf("fraction %v of %q is outside of [0, 1]", t.Fraction, t.Name)
		}
	}
	if t.Fraction[0] >= t.Fraction[2] || t.Fraction[1] >= t.Fraction[3] {
		return fmt.Errorf("fraction %v of %q is empty or inverted", t.Fraction, t.Name)
	}
	if t.Margin != nil && *t.Margin < 0 {
		return fmt.Errorf("invalid margin %g of %q", *t.Margin, t.Name)
	}
	return nil
}
