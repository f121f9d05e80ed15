// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package label renders text labels into small textures and shows
// them in the scene as flat 4:1 sprites that can be turned to
// face the camera.
package label

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/meta"
	"cogentcore.org/geoscene/rgb"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// Width is the width of a label texture in pixels.
	Width = 256

	// Height is the height of a label texture in pixels.
	Height = 64

	// FontSize is the label font size in pixels.
	FontSize = 28

	// DefaultColor is the label color used when none is given.
	DefaultColor rgb.Color = 0xffffff

	// DefaultScale is the label scale used when none is given.
	DefaultScale float32 = 0.6
)

var (
	faceMu sync.Mutex
	face   = sync.OnceValue(func() font.Face {
		f, err := opentype.Parse(gobold.TTF)
		if errors.Log(err) != nil {
			return basicfont.Face7x13
		}
		fc, err := opentype.NewFace(f, &opentype.FaceOptions{Size: FontSize, DPI: 72, Hinting: font.HintingFull})
		if errors.Log(err) != nil {
			return basicfont.Face7x13
		}
		return fc
	})
)

// Rasterize draws the text in bold into a new transparent [Width]x[Height]
// image, centered horizontally with its baseline 10 pixels below the
// middle. The color goes through its "#rrggbb" form, so a value that
// does not fit in 24 bits is not a valid color and the text is drawn
// in black. Text that does not fit is clipped, not wrapped.
func Rasterize(text string, c rgb.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	clr, err := colors.FromHex(c.String())
	if err != nil {
		clr = color.RGBA{0, 0, 0, 255}
	}
	faceMu.Lock()
	defer faceMu.Unlock()
	d := &font.Drawer{Dst: img, Src: image.NewUniform(clr), Face: face()}
	w := d.MeasureString(text)
	d.Dot = fixed.Point26_6{X: (fixed.I(Width) - w) / 2, Y: fixed.I(Height/2 + 10)}
	d.DrawString(text)
	return img
}

// Sprite is a text label shown on a flat quad with a fixed 4:1 aspect ratio.
type Sprite struct {
	*xyz.Solid

	// Text is the label text.
	Text string

	// Scale is the height of the label in scene units;
	// its width is 4 times that.
	Scale float32
}

// New returns a new label sprite for the text, not attached to any parent.
// The color is used as given, so a zero color is black; callers that have
// no color use [DefaultColor]. A zero scale is [DefaultScale].
func New(k *kit.Kit, text string, c rgb.Color, scale float32) *Sprite {
	if scale == 0 {
		scale = DefaultScale
	}
	name := fmt.Sprintf("label-%d", k.Serial())
	tx := &xyz.TextureBase{Name: name, RGBA: Rasterize(text, c), Transparent: true}
	k.Scene.SetTexture(tx)

	sld := tree.New[xyz.Solid]()
	sld.SetName(name)
	sld.SetMesh(k.Scene.PlaneMesh2D())
	sld.SetTexture(tx)
	sld.Material.Color = colors.FromRGB(255, 255, 255)
	sld.Material.CullBack = false
	sp := &Sprite{Solid: sld, Text: text, Scale: scale}
	sp.Pose.Scale.Set(4*scale, scale, 1)
	k.Meta.SetHints(sld, meta.Hints{Side: meta.DoubleSide, Billboard: true})
	return sp
}

// Add returns a new label sprite for the text at the given position,
// added to the parent.
func Add(k *kit.Kit, parent tree.Node, text string, pos math32.Vector3, c rgb.Color, scale float32) *Sprite {
	sp := New(k, text, c, scale)
	sp.Pose.Pos = pos
	parent.AsTree().AddChild(sp.Solid)
	return sp
}

// Size returns the width and height of the label in scene units.
func (sp *Sprite) Size() math32.Vector2 {
	return math32.Vec2(4*sp.Scale, sp.Scale)
}

// Face turns the sprite so that it faces the camera.
func (sp *Sprite) Face(cam *xyz.Camera) {
	Face(sp.Solid, cam)
}

// Face turns the flat solid so that it faces the camera,
// compensating for the rotation of its parents.
func Face(sld *xyz.Solid, cam *xyz.Camera) {
	q := parentQuat(sld)
	q.X, q.Y, q.Z = -q.X, -q.Y, -q.Z
	q.SetMul(cam.Pose.Quat)
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi))
	sld.Pose.Quat = q
}

// parentQuat returns the accumulated rotation of the parents of n.
func parentQuat(n tree.Node) math32.Quat {
	q := math32.Quat{W: 1}
	for p := n.AsTree().Parent; p != nil; p = p.AsTree().Parent {
		xn, ok := p.(xyz.Node)
		if !ok {
			break
		}
		pq := xn.AsNodeBase().Pose.Quat
		pq.SetMul(q)
		q = pq
	}
	return q
}

// Billboards turns every label of the kit to face the camera,
// returning the number of labels turned.
func Billboards(k *kit.Kit, cam *xyz.Camera) int {
	sl := k.Meta.Billboards()
	for _, sld := range sl {
		Face(sld, cam)
	}
	return len(sl)
}
