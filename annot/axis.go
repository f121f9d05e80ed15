// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annot

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/geom"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/label"
	"cogentcore.org/geoscene/prims"
	"cogentcore.org/geoscene/rgb"
)

// AxisConfig configures [NewEarthAxis].
type AxisConfig struct {

	// Length is the half length of the axis, from the center to each pole marker.
	Length float32 `default:"5"`

	// Radius is the radius of the axis rod.
	Radius float32 `default:"0.03"`

	// Color is the color of the axis rod.
	Color rgb.Color

	// Opacity is the opacity of the axis rod.
	Opacity float32 `default:"0.9"`

	// NorthColor is the color of the north pole arrow.
	NorthColor rgb.Color

	// SouthColor is the color of the south pole marker.
	SouthColor rgb.Color
}

func (c *AxisConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0xffffff
	c.NorthColor = 0x00ff88
	c.SouthColor = 0x00ff88
}

// Axis is the earth axis rod with its pole markers.
type Axis struct {
	Rod   *xyz.Solid
	North *xyz.Solid
	South *xyz.Solid
}

// NewEarthAxis adds the axis rod through the poles of the earth, an arrow
// cone above the north pole and a small sphere at the south pole. All of
// them are children of the earth, so they share its tilt.
func NewEarthAxis(k *kit.Kit, earth *xyz.Solid, cfg *AxisConfig) *Axis {
	c := defaults.Resolve(cfg)
	ax := &Axis{}
	ax.Rod = prims.Cylinder(k, earth, "axis", 2*c.Length, c.Radius, 8, prims.Look{
		Color: c.Color, Opacity: c.Opacity, Unlit: true,
	})
	ax.North = prims.Cone(k, earth, "north-pole", 0.4, 0.15, 8, prims.Look{Color: c.NorthColor, Unlit: true})
	ax.North.SetPos(0, c.Length+0.2, 0)
	ax.South = prims.Sphere(k, earth, "south-pole", 0.12, 16, prims.Look{Color: c.SouthColor, Unlit: true})
	ax.South.SetPos(0, -c.Length, 0)
	return ax
}

// LatitudeConfig configures [NewLatitudeLine].
type LatitudeConfig struct {

	// LineRadius is the radius of the sphere the line is drawn on,
	// slightly above the earth surface.
	LineRadius float32 `default:"2.03"`

	// Segments is the number of points the circle is sampled at.
	Segments int `default:"64"`

	// TubularSegments is the number of tube segments along the line.
	TubularSegments int `default:"64"`

	// RadialSegments is the number of tube segments around the line.
	RadialSegments int `default:"8"`

	// Thickness is the radius of the tube.
	Thickness float32 `default:"0.02"`

	// Color is the color of the line.
	Color rgb.Color

	// Opacity is the opacity of the line.
	Opacity float32 `default:"0.85"`

	// Label is the optional label text.
	Label string

	// LabelColor is the label color; it defaults to the line color.
	LabelColor rgb.Color
}

func (c *LatitudeConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0x66bb6a
}

// Latitude is a latitude line with its optional label.
type Latitude struct {
	Tube  *xyz.Solid
	Label *label.Sprite

	// Curve is the closed curve the tube follows.
	Curve *geom.CatmullRom

	// Points are the sampled circle points the curve passes through,
	// the last one repeating the first.
	Points []math32.Vector3
}

// NewLatitudeLine adds a tube along the circle of the given latitude
// (degrees, north positive) to the earth, with an optional label just
// outside the circle on the +Z side.
func NewLatitudeLine(k *kit.Kit, earth *xyz.Solid, latitude float32, cfg *LatitudeConfig) *Latitude {
	c := defaults.Resolve(cfg)
	r, y := geom.SmallCircle(c.LineRadius, latitude)
	lt := &Latitude{Points: geom.Circle(r, y, c.Segments)}
	lt.Curve = geom.NewClosedCurve(lt.Points)
	name := fmt.Sprintf("latitude-%g", latitude)
	lt.Tube = prims.Tube(k, earth, name, lt.Curve, c.TubularSegments, c.Thickness, c.RadialSegments, prims.Look{
		Color: c.Color, Opacity: c.Opacity, Unlit: true,
	})
	if c.Label != "" {
		lc := c.LabelColor
		if lc == 0 {
			lc = c.Color
		}
		lt.Label = label.Add(k, earth, c.Label, math32.Vec3(0, y, r+0.5), lc, 0)
	}
	return lt
}
