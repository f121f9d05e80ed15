// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annot

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/geom"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/label"
	"cogentcore.org/geoscene/prims"
	"cogentcore.org/geoscene/rgb"
)

// PolarStarConfig configures [NewPolarStar].
type PolarStarConfig struct {

	// Distance is the distance of the star from the origin.
	Distance float32 `default:"40"`

	// Obliquity is the axial tilt in degrees; the star sits on the tilted axis.
	Obliquity float32 `default:"23.5"`

	// Radius is the radius of the star.
	Radius float32 `default:"0.8"`

	// Color is the star color.
	Color rgb.Color

	// GlowColors, GlowSizes and GlowOpacities describe the glow shells,
	// one shell per index present in all three.
	GlowColors    []rgb.Color
	GlowSizes     []float32
	GlowOpacities []float32

	// NoSpikes omits the star spikes.
	NoSpikes bool

	// SpikeCount is the number of spikes, spread over a half turn.
	SpikeCount int `default:"4"`

	// SpikeLength is the half length of each spike.
	SpikeLength float32 `default:"2"`

	// SpikeColor is the spike color.
	SpikeColor rgb.Color

	// SpikeOpacity is the spike opacity.
	SpikeOpacity float32 `default:"0.5"`

	// Label is the optional label text.
	Label string

	// LabelColor is the label color.
	LabelColor rgb.Color

	// LabelScale is the label scale.
	LabelScale float32 `default:"0.7"`
}

func (c *PolarStarConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0xffffcc
	c.GlowColors = []rgb.Color{0xffffcc, 0xffffaa, 0xffff88}
	c.GlowSizes = []float32{1.2, 1.6, 2.0}
	c.GlowOpacities = []float32{0.4, 0.2, 0.1}
	c.SpikeColor = 0xffffcc
	c.LabelColor = 0xffffcc
}

// PolarStar is the pole star with its glow shells, spikes and label.
type PolarStar struct {
	Star   *xyz.Solid
	Glows  []*xyz.Solid
	Spikes []*xyz.Solid
	Label  *label.Sprite
}

// NewPolarStar adds the pole star on the extension of the tilted earth
// axis, at (0, d cos ε, -d sin ε), to the parent. The glows and spikes
// are children of the star.
func NewPolarStar(k *kit.Kit, parent tree.Node, cfg *PolarStarConfig) *PolarStar {
	c := defaults.Resolve(cfg)
	pos := geom.AxisPoint(c.Distance, c.Obliquity)
	ps := &PolarStar{}
	ps.Star = prims.Sphere(k, parent, "polar-star", c.Radius, 16, prims.Look{Color: c.Color, Unlit: true})
	ps.Star.Pose.Pos = pos

	n := min(len(c.GlowColors), len(c.GlowSizes), len(c.GlowOpacities))
	for i := range n {
		gl := prims.Sphere(k, ps.Star, fmt.Sprintf("glow-%d", i), c.GlowSizes[i], 16, prims.Look{
			Color: c.GlowColors[i], Opacity: c.GlowOpacities[i], Unlit: true,
		})
		ps.Glows = append(ps.Glows, gl)
	}

	if !c.NoSpikes {
		for i, sg := range geom.Spikes(c.SpikeCount, c.SpikeLength) {
			sp := prims.Segments(k, ps.Star, fmt.Sprintf("spike-%d", i), []geom.Segment{sg}, LineWidth, prims.Look{
				Color: c.SpikeColor, Opacity: c.SpikeOpacity, Unlit: true,
			})
			ps.Spikes = append(ps.Spikes, sp)
		}
	}

	if c.Label != "" {
		ps.Label = label.Add(k, parent, c.Label, math32.Vec3(2, pos.Y+1, pos.Z), c.LabelColor, c.LabelScale)
	}
	return ps
}

// StarfieldConfig configures [NewStarfield].
type StarfieldConfig struct {

	// Count is the number of stars.
	Count int `default:"2000"`

	// MinRadius is the minimum distance of a star from the origin.
	MinRadius float32 `default:"100"`

	// MaxRadius is the maximum distance of a star from the origin.
	MaxRadius float32 `default:"200"`

	// Color is the star color.
	Color rgb.Color

	// Size is the size of each star.
	Size float32 `default:"0.5"`

	// Opacity is the star opacity.
	Opacity float32 `default:"0.8"`
}

func (c *StarfieldConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0xffffff
}

// Starfield is a background shell of randomly placed stars.
type Starfield struct {
	Stars *xyz.Solid

	// Points are the star positions.
	Points []math32.Vector3
}

// NewStarfield adds a point cloud of stars to the parent, uniformly
// distributed over all directions at a distance drawn uniformly from
// [MinRadius, MaxRadius], using the random source of the kit.
func NewStarfield(k *kit.Kit, parent tree.Node, cfg *StarfieldConfig) *Starfield {
	c := defaults.Resolve(cfg)
	sf := &Starfield{Points: make([]math32.Vector3, c.Count)}
	for i := range sf.Points {
		r := c.MinRadius + k.Rand.Float32()*(c.MaxRadius-c.MinRadius)
		u, v := k.Rand.Float32(), k.Rand.Float32()
		sf.Points[i] = geom.SphereDirection(u, v).MulScalar(r)
	}
	sf.Stars = prims.Points(k, parent, "stars", sf.Points, c.Size, prims.Look{
		Color: c.Color, Opacity: c.Opacity, Unlit: true,
	})
	return sf
}

// Season is one marker position on the orbit.
type Season struct {

	// Angle is the position on the orbit in degrees, from +X toward +Z.
	Angle float32

	// Color is the marker and label color.
	Color rgb.Color

	// Label is the label text, such as the name of a solstice.
	Label string
}

// DefaultOrbitRadius is the orbit radius used by [NewSeasonMarkers]
// when none is given.
const DefaultOrbitRadius float32 = 15

// NewSeasonMarkers adds a small sphere for each season at its angle on
// the orbit, with a label above it, to the parent, and returns the
// spheres. A zero orbit radius is [DefaultOrbitRadius].
func NewSeasonMarkers(k *kit.Kit, parent tree.Node, seasons []Season, orbitRadius float32) []*xyz.Solid {
	if orbitRadius == 0 {
		orbitRadius = DefaultOrbitRadius
	}
	markers := make([]*xyz.Solid, 0, len(seasons))
	for i, s := range seasons {
		p := geom.OnCircle(orbitRadius, s.Angle)
		mk := prims.Sphere(k, parent, fmt.Sprintf("season-%d", i), 0.3, 16, prims.Look{Color: s.Color, Unlit: true})
		mk.Pose.Pos = p
		label.Add(k, parent, s.Label, math32.Vec3(p.X, 1.5, p.Z), s.Color, 0)
		markers = append(markers, mk)
	}
	return markers
}
