// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annot provides the builders for the teaching annotations
// placed around the celestial bodies: atmosphere shells, the cloud
// layer, the earth axis, latitude lines, orbits, reference planes,
// the polar star, the star field and season markers.
//
// Every builder takes a config by pointer, which may be nil for all
// defaults, and returns a struct holding every node it created.
// Zero fields of a config take their default value.
package annot

// LineWidth is the width of orbit and spike lines in scene units.
const LineWidth float32 = 0.05
