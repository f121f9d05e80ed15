// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annot

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/geom"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/meta"
	"cogentcore.org/geoscene/prims"
	"cogentcore.org/geoscene/rgb"
)

// OrbitConfig configures [NewOrbit].
type OrbitConfig struct {

	// Radius is the orbit radius.
	Radius float32 `default:"15"`

	// Segments is the number of segments of the orbit circle.
	Segments int `default:"128"`

	// Color is the line color.
	Color rgb.Color

	// DashSize is the length of each dash.
	DashSize float32 `default:"0.5"`

	// GapSize is the length of each gap between dashes.
	GapSize float32 `default:"0.3"`

	// Width is the line width.
	Width float32 `default:"0.05"`
}

func (c *OrbitConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0x666666
}

// Orbit is a dashed circular orbit in the XZ plane.
type Orbit struct {
	Line *xyz.Solid

	// Points are the segments+1 points of the orbit circle,
	// the last one repeating the first.
	Points []math32.Vector3

	// Distances are the cumulative distances along the circle at each point.
	Distances []float32

	// Dashes are the visible dash segments.
	Dashes []geom.Segment
}

// NewOrbit adds a dashed circle of the orbit radius around the origin
// in the XZ plane to the parent.
func NewOrbit(k *kit.Kit, parent tree.Node, cfg *OrbitConfig) *Orbit {
	c := defaults.Resolve(cfg)
	ob := &Orbit{Points: geom.Circle(c.Radius, 0, c.Segments)}
	ob.Distances = geom.LineDistances(ob.Points)
	ob.Dashes = geom.Dashes(ob.Points, ob.Distances, c.DashSize, c.GapSize)
	ob.Line = prims.Segments(k, parent, "orbit", ob.Dashes, c.Width, prims.Look{Color: c.Color, Unlit: true})
	return ob
}

// PlaneConfig configures [NewPlane].
type PlaneConfig struct {

	// Name is the name of the plane node; the edge is named with
	// an added "-edge" suffix.
	Name string `default:"plane"`

	// InnerRadius is the radius of the hole in the middle of the plane.
	InnerRadius float32 `default:"3.5"`

	// OuterRadius is the outer radius of the plane.
	OuterRadius float32 `default:"17"`

	// Segments is the number of angular segments.
	Segments int `default:"64"`

	// Color is the plane color.
	Color rgb.Color

	// Opacity is the plane opacity.
	Opacity float32 `default:"0.15"`

	// Rotation is the Euler rotation of the plane in degrees.
	// The unrotated plane lies in XY, facing +Z.
	Rotation math32.Vector3

	// Order is the draw order of the plane.
	Order int `default:"-1"`

	// NoEdge omits the highlighted outer edge.
	NoEdge bool

	// EdgeColor is the edge color. When it is not set but Color is,
	// the edge takes the plane color.
	EdgeColor rgb.Color

	// EdgeOpacity is the edge opacity.
	EdgeOpacity float32 `default:"0.5"`
}

func (c *PlaneConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0xffcc66
	c.EdgeColor = 0xffdd88
}

// Plane is a translucent reference plane, such as the ecliptic or
// the equatorial plane, with its optional edge ring.
type Plane struct {
	Plane *xyz.Solid
	Edge  *xyz.Solid
}

// NewPlane adds a translucent annulus and its edge ring to the parent.
// Both are drawn double sided without depth writes, so that they never
// hide the bodies that pass through them.
func NewPlane(k *kit.Kit, parent tree.Node, cfg *PlaneConfig) *Plane {
	c := defaults.Resolve(cfg)
	if cfg != nil && cfg.EdgeColor == 0 && cfg.Color != 0 {
		c.EdgeColor = cfg.Color
	}
	pl := &Plane{}
	pl.Plane = prims.Ring(k, parent, c.Name, c.InnerRadius, c.OuterRadius, c.Segments, prims.Look{
		Color: c.Color, Opacity: c.Opacity, Side: meta.DoubleSide,
		NoDepthWrite: true, Order: c.Order, Unlit: true,
	})
	pl.Plane.SetEulerRotation(c.Rotation.X, c.Rotation.Y, c.Rotation.Z)
	if c.NoEdge {
		return pl
	}
	pl.Edge = prims.Ring(k, parent, c.Name+"-edge", c.OuterRadius-0.2, c.OuterRadius, c.Segments, prims.Look{
		Color: c.EdgeColor, Opacity: c.EdgeOpacity, Side: meta.DoubleSide,
		NoDepthWrite: true, Unlit: true,
	})
	pl.Edge.SetEulerRotation(c.Rotation.X, c.Rotation.Y, c.Rotation.Z)
	return pl
}
