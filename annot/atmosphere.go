// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annot

import (
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/meta"
	"cogentcore.org/geoscene/prims"
	"cogentcore.org/geoscene/rgb"
)

// Draw orders of the layered earth shells. Translucent shells are drawn
// from the outside in, and the clouds last.
const (
	OuterAtmosphereOrder = 7
	InnerAtmosphereOrder = 8
	EarthOrder           = 10
	CloudOrder           = 11
)

// CloudsRef is the name of the back-reference from the earth to its cloud layer.
const CloudsRef = "clouds"

// DefaultCloudTexture is the cloud layer image.
const DefaultCloudTexture = "https://unpkg.com/three-globe@2.24.10/example/img/earth-clouds.png"

// AtmosphereConfig configures [NewAtmosphere].
type AtmosphereConfig struct {

	// Radius is the radius of the earth the atmosphere surrounds.
	Radius float32 `default:"2"`

	// Obliquity is the axial tilt in degrees.
	Obliquity float32 `default:"23.5"`

	// Segments is the number of sphere segments.
	Segments int `default:"64"`

	// Color is the color of the inner shell.
	Color rgb.Color

	// Opacity is the opacity of the inner shell.
	Opacity float32 `default:"0.12"`

	// OuterColor is the color of the outer shell.
	OuterColor rgb.Color

	// OuterOpacity is the opacity of the outer shell.
	OuterOpacity float32 `default:"0.06"`
}

func (c *AtmosphereConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0x4da6ff
	c.OuterColor = 0x87ceeb
}

// Atmosphere is the pair of translucent shells around the earth.
type Atmosphere struct {
	Inner *xyz.Solid
	Outer *xyz.Solid
}

// NewAtmosphere adds the inner (1.06 x radius) and outer (1.125 x radius)
// atmosphere shells to the parent. Only their back faces are drawn, so
// that they read as a halo around the earth rather than a cover over it.
func NewAtmosphere(k *kit.Kit, parent tree.Node, cfg *AtmosphereConfig) *Atmosphere {
	c := defaults.Resolve(cfg)
	at := &Atmosphere{}
	at.Inner = prims.Sphere(k, parent, "atmosphere", c.Radius*1.06, c.Segments, prims.Look{
		Color: c.Color, Opacity: c.Opacity, Side: meta.BackSide,
		NoDepthWrite: true, Order: InnerAtmosphereOrder, Unlit: true,
	})
	at.Inner.SetEulerRotation(c.Obliquity, 0, 0)
	at.Outer = prims.Sphere(k, parent, "outer-atmosphere", c.Radius*1.125, c.Segments, prims.Look{
		Color: c.OuterColor, Opacity: c.OuterOpacity, Side: meta.BackSide,
		NoDepthWrite: true, Order: OuterAtmosphereOrder, Unlit: true,
	})
	at.Outer.SetEulerRotation(c.Obliquity, 0, 0)
	return at
}

// CloudConfig configures [NewCloudLayer].
type CloudConfig struct {

	// Radius is the radius of the earth the clouds surround.
	Radius float32 `default:"2"`

	// Obliquity is the axial tilt in degrees.
	Obliquity float32 `default:"23.5"`

	// Segments is the number of sphere segments.
	Segments int `default:"64"`

	// Opacity is the opacity of the cloud layer.
	Opacity float32 `default:"0.35"`

	// Texture is the URL or path of the cloud image.
	Texture string
}

func (c *CloudConfig) Defaults() {
	defaults.SetTags(c)
	c.Texture = DefaultCloudTexture
}

// NewCloudLayer adds a translucent cloud shell (1.025 x radius) to the
// parent, with the same tilt as the earth, and records it on the earth
// as the [CloudsRef] back-reference so an animation loop can spin it.
// The cloud image is loaded in the background; until it is applied the
// layer shows as a faint white shell.
func NewCloudLayer(k *kit.Kit, parent tree.Node, earth *xyz.Solid, cfg *CloudConfig) *xyz.Solid {
	c := defaults.Resolve(cfg)
	clouds := prims.Sphere(k, parent, "clouds", c.Radius*1.025, c.Segments, prims.Look{
		Color: 0xffffff, Opacity: c.Opacity, NoDepthWrite: true, Order: CloudOrder,
	})
	clouds.SetEulerRotation(c.Obliquity, 0, 0)
	k.Load("clouds", c.Texture, func(tx xyz.Texture) {
		clouds.SetTexture(tx)
	})
	if earth != nil {
		k.Meta.SetRef(earth, CloudsRef, clouds)
	}
	return clouds
}
