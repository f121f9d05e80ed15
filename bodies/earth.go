// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bodies

import (
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/annot"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/prims"
	"cogentcore.org/geoscene/rgb"
	"cogentcore.org/geoscene/texture"
)

// Earth texture images.
const (
	DefaultEarthTexture    = "https://unpkg.com/three-globe@2.24.10/example/img/earth-blue-marble.jpg"
	DefaultBumpTexture     = "https://unpkg.com/three-globe@2.24.10/example/img/earth-topology.png"
	DefaultSpecularTexture = "https://unpkg.com/three-globe@2.24.10/example/img/earth-water.png"
)

// EarthConfig configures [NewEarth].
type EarthConfig struct {

	// Name is the name of the earth node and the prefix of its texture names.
	Name string `default:"earth"`

	// Radius is the earth radius.
	Radius float32 `default:"2"`

	// Obliquity is the axial tilt in degrees, a rotation about X.
	Obliquity float32 `default:"23.5"`

	// Segments is the number of sphere segments.
	Segments int `default:"64"`

	// Color is the surface color shown without a texture,
	// and until the texture is applied.
	Color rgb.Color

	// NoTexture draws the earth in its plain color.
	NoTexture bool

	// TextureURL is the base color image.
	TextureURL string

	// NoBumpMap skips loading the bump map.
	NoBumpMap bool

	// BumpURL is the bump map image.
	BumpURL string

	// NoSpecularMap skips loading the specular map.
	NoSpecularMap bool

	// SpecularURL is the specular map image.
	SpecularURL string

	// Specular is the specular color of the textured surface.
	Specular rgb.Color

	// Shininess is the specular exponent of the textured surface.
	Shininess float32 `default:"15"`

	// BumpScale is the strength of the bump map.
	BumpScale float32 `default:"0.1"`

	// NoAtmosphere omits the atmosphere shells.
	NoAtmosphere bool

	// Atmosphere configures the atmosphere. Its radius and obliquity
	// default to those of the earth.
	Atmosphere *annot.AtmosphereConfig

	// NoClouds omits the cloud layer.
	NoClouds bool

	// Clouds configures the cloud layer. Its radius and obliquity
	// default to those of the earth.
	Clouds *annot.CloudConfig

	// OnTextureLoaded is called after the base texture is applied.
	OnTextureLoaded func() `toml:"-" yaml:"-"`
}

func (c *EarthConfig) Defaults() {
	defaults.SetTags(c)
	c.Color = 0x2233ff
	c.TextureURL = DefaultEarthTexture
	c.BumpURL = DefaultBumpTexture
	c.SpecularURL = DefaultSpecularTexture
	c.Specular = 0x333333
}

// Earth is the earth with its optional parts. Parts that were switched
// off are nil.
type Earth struct {
	Solid      *xyz.Solid
	Atmosphere *annot.Atmosphere
	Clouds     *xyz.Solid

	// Owner owns the texture loads of the earth and its clouds.
	Owner *texture.Owner

	// Base, Bump and Specular are the texture loads, nil when not started.
	Base     *texture.Task
	Bump     *texture.Task
	Specular *texture.Task

	// BumpMap and SpecularMap hold the loaded maps. xyz materials have
	// a single color texture, so they are kept here for renderers that
	// use them.
	BumpMap     xyz.Texture
	SpecularMap xyz.Texture

	// BumpScale is the configured bump strength.
	BumpScale float32
}

// NewEarth adds the earth, tilted by its obliquity, to the parent, with
// its atmosphere and cloud layer as siblings. The textures are loaded in
// the background and applied by the kit's texture loader; a failed load
// leaves the plain color in place.
func NewEarth(k *kit.Kit, parent tree.Node, cfg *EarthConfig) *Earth {
	c := defaults.Resolve(cfg)
	e := &Earth{Owner: texture.NewOwner(k.Owner.Context()), BumpScale: c.BumpScale}
	ek := k.WithOwner(e.Owner)

	e.Solid = prims.Sphere(k, parent, c.Name, c.Radius, c.Segments, prims.Look{
		Color: c.Color, Order: annot.EarthOrder,
	})
	e.Solid.SetEulerRotation(c.Obliquity, 0, 0)

	if !c.NoTexture {
		mt := &e.Solid.Material
		mt.Shiny = c.Shininess
		r, _, _ := c.Specular.Components()
		mt.Reflective = float32(r) / 255
		e.Base = ek.Load(c.Name, c.TextureURL, func(tx xyz.Texture) {
			e.Solid.SetTexture(tx)
			if c.OnTextureLoaded != nil {
				c.OnTextureLoaded()
			}
		})
		if !c.NoBumpMap {
			e.Bump = ek.Load(c.Name+"-bump", c.BumpURL, func(tx xyz.Texture) {
				e.BumpMap = tx
			})
		}
		if !c.NoSpecularMap {
			e.Specular = ek.Load(c.Name+"-specular", c.SpecularURL, func(tx xyz.Texture) {
				e.SpecularMap = tx
			})
		}
	}

	if !c.NoAtmosphere {
		var ac annot.AtmosphereConfig
		if c.Atmosphere != nil {
			ac = *c.Atmosphere
		}
		ac.Radius = inherit(ac.Radius, c.Radius)
		ac.Obliquity = inherit(ac.Obliquity, c.Obliquity)
		e.Atmosphere = annot.NewAtmosphere(ek, parent, &ac)
	}
	if !c.NoClouds {
		var cc annot.CloudConfig
		if c.Clouds != nil {
			cc = *c.Clouds
		}
		cc.Radius = inherit(cc.Radius, c.Radius)
		cc.Obliquity = inherit(cc.Obliquity, c.Obliquity)
		e.Clouds = annot.NewCloudLayer(ek, parent, e.Solid, &cc)
	}
	return e
}

// Close cancels the texture loads of the earth and its clouds that have
// not been applied yet.
func (e *Earth) Close() {
	e.Owner.Close()
}

func inherit(v, from float32) float32 {
	if v == 0 {
		return from
	}
	return v
}
