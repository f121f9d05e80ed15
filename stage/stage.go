// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stage sets up the scene, camera and renderer that a lesson
// page draws into, and keeps them sized to their container.
package stage

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"sync"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/internal/defaults"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/label"
)

var (
	// ErrNoContainer is returned by [New] when no container is given.
	ErrNoContainer = errors.New("stage: no container")

	// ErrNoSurface is returned by [New] when no drawing surface is given.
	ErrNoSurface = errors.New("stage: no drawing surface")
)

// Sizer is the element the stage fills, such as a widget or a window.
type Sizer interface {

	// Size returns the current size of the element in device independent pixels.
	Size() image.Point
}

// Resizer is a drawing surface that can be resized.
type Resizer interface {

	// SetSize sets the size of the surface in physical pixels.
	SetSize(sz image.Point)
}

// ResizeNotifier calls the registered functions when the window is resized.
type ResizeNotifier interface {
	OnResize(fun func())
}

// Config configures [New].
type Config struct {

	// Container is the element the stage fills. It is required.
	Container Sizer

	// Surface is the drawing surface. It is required.
	Surface Resizer

	// Notifier, if set, calls [Stage.OnResize] when the window is resized.
	Notifier ResizeNotifier

	// Scene is an existing scene to adopt. A new scene is made when it is nil.
	Scene *xyz.Scene `copier:"-"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"45"`

	// Near is the near clipping distance.
	Near float32 `default:"0.1"`

	// Far is the far clipping distance.
	Far float32 `default:"1000"`

	// CameraPos is the camera position.
	CameraPos *math32.Vector3

	// LookAt is the point the camera looks at.
	LookAt *math32.Vector3

	// NoAntialias turns off multi-sample antialiasing.
	NoAntialias bool

	// NoAlpha draws an opaque black background instead of a transparent one.
	NoAlpha bool

	// PixelRatio is the number of physical pixels per device independent pixel.
	PixelRatio float32 `default:"1"`

	// Seed, if not 0, seeds the random source of the kit.
	Seed uint64
}

func (c *Config) Defaults() {
	defaults.SetTags(c)
	c.CameraPos = &math32.Vector3{Y: 10, Z: 28}
	c.LookAt = &math32.Vector3{Y: -3}
}

// Renderer sizes the drawing surface and the scene together.
type Renderer struct {

	// Surface is the drawing surface.
	Surface Resizer

	// Scene is the scene drawn on the surface.
	Scene *xyz.Scene

	// PixelRatio is the number of physical pixels per device independent pixel.
	PixelRatio float32

	// Size is the current size in device independent pixels.
	Size image.Point
}

// SetSize sets the size in device independent pixels. It does nothing
// if the size has not changed.
func (rn *Renderer) SetSize(sz image.Point) {
	if sz == rn.Size {
		return
	}
	rn.Size = sz
	px := image.Pt(int(float32(sz.X)*rn.PixelRatio), int(float32(sz.Y)*rn.PixelRatio))
	rn.Scene.Geom.Size = px
	rn.Surface.SetSize(px)
}

// Stage is a scene ready to be drawn, with its camera and renderer.
type Stage struct {
	Scene    *xyz.Scene
	Camera   *xyz.Camera
	Renderer *Renderer

	// Kit is the builder kit for the scene.
	Kit *kit.Kit

	container Sizer
	mu        sync.Mutex
}

// New makes a new stage from the given configuration. A missing
// container or surface is an error.
func New(cfg *Config) (*Stage, error) {
	c := defaults.Resolve(cfg)
	if c.Container == nil {
		return nil, ErrNoContainer
	}
	if c.Surface == nil {
		return nil, ErrNoSurface
	}
	sc := c.Scene
	if sc == nil {
		sc = xyz.NewScene()
	}
	sc.MultiSample = 4
	if c.NoAntialias {
		sc.MultiSample = 1
	}
	if c.NoAlpha {
		sc.Background = colors.Uniform(color.RGBA{0, 0, 0, 255})
	} else {
		sc.Background = colors.Uniform(color.RGBA{})
	}

	st := &Stage{Scene: sc, Camera: &sc.Camera, container: c.Container}
	cam := st.Camera
	cam.FOV = c.FOV
	cam.Near = c.Near
	cam.Far = c.Far
	cam.Pose.Pos = *c.CameraPos
	cam.LookAt(*c.LookAt, math32.Vec3(0, 1, 0))

	st.Renderer = &Renderer{Surface: c.Surface, Scene: sc, PixelRatio: c.PixelRatio}
	if c.Seed != 0 {
		st.Kit = kit.NewSeeded(sc, c.Seed)
	} else {
		st.Kit = kit.New(sc)
	}
	st.OnResize()
	if c.Notifier != nil {
		c.Notifier.OnResize(st.OnResize)
	}
	return st, nil
}

// OnResize updates the camera aspect ratio and the renderer size to
// the current container size. Calling it again without a size change
// has no further effect. A container with no height is ignored.
func (st *Stage) OnResize() {
	st.mu.Lock()
	defer st.mu.Unlock()
	sz := st.container.Size()
	if sz.Y <= 0 || sz.X <= 0 {
		slog.Debug("stage: ignoring empty container size", "size", sz)
		return
	}
	st.Camera.Aspect = float32(sz.X) / float32(sz.Y)
	st.Camera.UpdateMatrix()
	st.Renderer.SetSize(sz)
}

// Update applies the completed texture loads and turns the labels
// toward the camera. It returns the number of textures applied.
// Call it from the thread that draws the scene, once per frame.
func (st *Stage) Update() int {
	n := st.Kit.Textures.Apply()
	label.Billboards(st.Kit, st.Camera)
	return n
}

// Close cancels the outstanding texture loads of the stage.
func (st *Stage) Close() {
	st.Kit.Close()
}
