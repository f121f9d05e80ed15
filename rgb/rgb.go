// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rgb provides the 24-bit RGB integer color type used by all
// of the scene builder configuration structs.
package rgb

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
)

// Color is a 24-bit RGB color stored as 0xRRGGBB, as it is written
// in lesson files (TOML and YAML both accept hex integer literals).
// Values above 0xffffff are not valid colors, and are not checked.
type Color uint32

// Components returns the red, green and blue bytes of the color.
// Bits above the low 24 are ignored.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Opaque returns the color as a fully opaque [color.RGBA].
func (c Color) Opaque() color.RGBA {
	r, g, b := c.Components()
	return colors.FromRGB(r, g, b)
}

// Alpha returns the color with the given opacity (0-1) applied.
func (c Color) Alpha(opacity float32) color.RGBA {
	return colors.WithAF32(c.Opaque(), opacity)
}

// String returns the color as a "#rrggbb" hex string. A value that
// does not fit in 24 bits produces more than 6 digits, which is
// not a parseable color.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// SetString sets the color from a "#rrggbb", "0xrrggbb" or decimal string.
func (c *Color) SetString(s string) error {
	s = strings.TrimSpace(s)
	base := 0
	if strings.HasPrefix(s, "#") {
		s = s[1:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return fmt.Errorf("rgb: invalid color %q: %w", s, err)
	}
	*c = Color(v)
	return nil
}
