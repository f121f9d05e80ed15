// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bodies builds the celestial bodies of a scene: the sun,
// the earth and the ambient light.
package bodies

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/label"
	"cogentcore.org/geoscene/prims"
	"cogentcore.org/geoscene/rgb"
)

// SunConfig configures [NewSun].
type SunConfig struct {

	// Name is the name of the sun node. Its light is named with
	// an added "-light" suffix.
	Name string `default:"sun"`

	// Radius is the radius of the sun.
	Radius float32 `default:"1.5"`

	// Position is the position of the sun in the parent.
	Position math32.Vector3

	// Color is the sun color.
	Color rgb.Color

	// NoGlow omits the glow shell around the sun.
	NoGlow bool

	// GlowColor is the color of the glow shell.
	GlowColor rgb.Color

	// NoLight omits the point light at the sun.
	NoLight bool

	// LightIntensity is the brightness of the point light.
	LightIntensity float32 `default:"1.5"`

	// LightDistance is the range of the point light.
	LightDistance float32 `default:"100"`

	// Label is the optional label text.
	Label string

	// LabelColor is the label color.
	LabelColor rgb.Color
}

func (c *SunConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0xffdd00
	c.GlowColor = 0xffaa00
	c.LabelColor = 0xffdd00
}

// Sun is the sun with its optional parts. Parts that were switched
// off are nil.
type Sun struct {
	Solid *xyz.Solid

	// Glow is the translucent glow shell, a child of the sun.
	Glow *xyz.Solid

	// Light is the point light, registered on the scene at the sun position.
	Light *xyz.Point

	// LightRange is the configured range of the light.
	LightRange float32

	Label *label.Sprite
}

// NewSun adds the sun to the parent. The sun is unlit, so it shows its
// full color regardless of the scene lights.
func NewSun(k *kit.Kit, parent tree.Node, cfg *SunConfig) *Sun {
	c := defaults.Resolve(cfg)
	s := &Sun{}
	s.Solid = prims.Sphere(k, parent, c.Name, c.Radius, 32, prims.Look{Color: c.Color, Unlit: true})
	s.Solid.Pose.Pos = c.Position
	if !c.NoGlow {
		s.Glow = prims.Sphere(k, s.Solid, "glow", c.Radius*1.4, 32, prims.Look{
			Color: c.GlowColor, Opacity: 0.3, Unlit: true,
		})
	}
	if !c.NoLight {
		s.Light = xyz.NewPoint(k.Scene, c.Name+"-light", c.LightIntensity, xyz.DirectSun)
		s.Light.Color = rgb.Color(0xffffff).Opaque()
		s.Light.Pos = c.Position
		s.LightRange = c.LightDistance
	}
	if c.Label != "" {
		pos := c.Position.Add(math32.Vec3(0, c.Radius+1, 0))
		s.Label = label.Add(k, parent, c.Label, pos, c.LabelColor, 0)
	}
	return s
}

// AmbientConfig configures [AddAmbientLight].
type AmbientConfig struct {

	// Name is the name of the light on the scene.
	Name string `default:"ambient"`

	// Color is the light color.
	Color rgb.Color

	// Intensity is the light brightness.
	Intensity float32 `default:"0.5"`
}

func (c *AmbientConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0x404040
}

// AddAmbientLight adds an ambient light to the scene of the kit.
func AddAmbientLight(k *kit.Kit, cfg *AmbientConfig) *xyz.Ambient {
	c := defaults.Resolve(cfg)
	lt := xyz.NewAmbient(k.Scene, c.Name, c.Intensity, xyz.DirectSun)
	lt.Color = c.Color.Opaque()
	return lt
}
