// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the nodeviz tool.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct
// that contains all of the configuration
// options for the nodeviz tool.
type Config struct {

	// [def: warn] the minimum level of the log messages
	// that are shown (debug, info, warn, or error)
	LogLevel string `toml:"log-level"`

	// the window that the render targets are laid out in
	Window Window `toml:"window"`

	// the background colors of the render targets
	Background Background `toml:"background"`

	// the render targets; scene files can replace them with their own
	Targets []Target `toml:"targets"`
}

// Window is the configuration of the window.
type Window struct {

	// [def: 1280] the width of the window in pixels
	Width int `toml:"width"`

	// [def: 800] the height of the window in pixels
	Height int `toml:"height"`

	// [def: 0] the number of pixels subtracted from each dimension of the
	// window before laying out the targets; targets can override it
	Margin float32 `toml:"margin"`
}

// Background is the configuration of the background colors.
type Background struct {

	// the dark background color, as a hex color
	Dark string `toml:"dark"`

	// the light background color, as a hex color
	Light string `toml:"light"`
}

// Default returns the default configuration,
// with one 3D target filling the window.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Window:   Window{Width: 1280, Height: 800},
		Background: Background{
			Dark:  "#1e1e24",
			Light: "#f4f4f6",
		},
		Targets: []Target{{Name: "3d", Kind: TargetThree, Fraction: [4]float32{0, 0, 1, 1}}},
	}
}

// Open reads the config file with the given path over the defaults,
// and validates the result.
func Open(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Read reads a config file over the defaults, and validates the result.
// Unknown fields are errors. A file that specifies targets replaces
// the default targets.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	c.Targets = nil
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, len(strict.Errors))
			for i := range strict.Errors {
				keys[i] = strings.Join(strict.Errors[i].Key(), ".")
			}
			return nil, fmt.Errorf("%w: %s\n%s", err, strings.Join(keys, ", "), strict.String())
		}
		return nil, err
	}
	if c.Targets == nil {
		c.Targets = Default().Targets
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save saves the config to the file with the given path.
func (c *Config) Save(path string) error {
	return tomlx.Save(c, path)
}

// Validate returns all of the problems of the config joined together,
// or nil if there are none.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Margin < 0 {
		errs = append(errs, fmt.Errorf("invalid window margin %g", c.Window.Margin))
	}
	if _, err := c.DarkColor(); err != nil {
		errs = append(errs, fmt.Errorf("dark background: %w", err))
	}
	if _, err := c.LightColor(); err != nil {
		errs = append(errs, fmt.Errorf("light background: %w", err))
	}
	names := map[string]bool{}
	for i := range c.Targets {
		t := &c.Targets[i]
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("target %d: %w", i, err))
		}
		if names[t.Name] {
			errs = append(errs, fmt.Errorf("target %d: duplicate name %q", i, t.Name))
		}
		names[t.Name] = true
	}
	return errors.Join(errs...)
}

// Level returns the log level of the config.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}

// WindowSize returns the size of the window.
func (c *Config) WindowSize() math32.Vector2 {
	return math32.Vec2(float32(c.Window.Width), float32(c.Window.Height))
}

// DarkColor returns the dark background color.
func (c *Config) DarkColor() (color.RGBA, error) {
	return colors.FromHex(c.Background.Dark)
}

// LightColor returns the light background color.
func (c *Config) LightColor() (color.RGBA, error) {
	return colors.FromHex(c.Background.Light)
}

// Margin returns the margin of the given target, which is
// its own margin if it has one and the window margin otherwise.
func (c *Config) Margin(t *Target) float32 {
	if t.Margin != nil {
		return *t.Margin
	}
	return c.Window.Margin
}
