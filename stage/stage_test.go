// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/prims"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type container struct {
	size image.Point
}

func (c *container) Size() image.Point { return c.size }

type surface struct {
	size  image.Point
	calls int
}

func (s *surface) SetSize(sz image.Point) {
	s.size = sz
	s.calls++
}

type notifier struct {
	funs []func()
}

func (n *notifier) OnResize(fun func()) { n.funs = append(n.funs, fun) }

func (n *notifier) resize() {
	for _, f := range n.funs {
		f()
	}
}

func TestNewMissingHandles(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoContainer)
	_, err = New(&Config{Container: &container{size: image.Pt(800, 600)}})
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestNew(t *testing.T) {
	ct := &container{size: image.Pt(800, 600)}
	sf := &surface{}
	nt := &notifier{}
	st, err := New(&Config{Container: ct, Surface: sf, Notifier: nt, Seed: 3})
	require.NoError(t, err)
	defer st.Close()

	cam := st.Camera
	assert.Same(t, &st.Scene.Camera, cam)
	assert.Equal(t, float32(45), cam.FOV)
	assert.Equal(t, float32(0.1), cam.Near)
	assert.Equal(t, float32(1000), cam.Far)
	assert.Equal(t, math32.Vec3(0, 10, 28), cam.Pose.Pos)
	assert.InDelta(t, 800.0/600.0, cam.Aspect, 1e-6)
	assert.Equal(t, 4, st.Scene.MultiSample)
	assert.Equal(t, image.Pt(800, 600), sf.size)
	assert.Len(t, nt.funs, 1)

	ct.size = image.Pt(1000, 500)
	nt.resize()
	assert.InDelta(t, 2, cam.Aspect, 1e-6)
	assert.Equal(t, image.Pt(1000, 500), sf.size)
	assert.Equal(t, 2, sf.calls)

	// no change, no resize
	nt.resize()
	st.OnResize()
	assert.Equal(t, 2, sf.calls)

	// an empty container is ignored
	ct.size = image.Pt(1000, 0)
	st.OnResize()
	assert.InDelta(t, 2, cam.Aspect, 1e-6)
	assert.Equal(t, image.Pt(1000, 500), sf.size)
}

func TestNewOptions(t *testing.T) {
	sc := xyz.NewScene()
	sf := &surface{}
	st, err := New(&Config{
		Container:   &container{size: image.Pt(400, 300)},
		Surface:     sf,
		Scene:       sc,
		FOV:         60,
		CameraPos:   &math32.Vector3{Z: 10},
		LookAt:      &math32.Vector3{},
		NoAntialias: true,
		PixelRatio:  2,
	})
	require.NoError(t, err)
	defer st.Close()
	assert.Same(t, sc, st.Scene)
	assert.Same(t, sc, st.Kit.Scene)
	assert.Same(t, &sc.Camera, st.Camera)
	assert.Equal(t, float32(60), sc.Camera.FOV)
	assert.Equal(t, math32.Vec3(0, 0, 10), sc.Camera.Pose.Pos)
	assert.Equal(t, math32.Vector3{}, sc.Camera.Target)
	assert.Equal(t, 1, sc.MultiSample)
	assert.Equal(t, image.Pt(800, 600), sf.size)
	assert.Equal(t, image.Pt(400, 300), st.Renderer.Size)
	assert.Equal(t, image.Pt(800, 600), sc.Geom.Size)
	assert.NotNil(t, st.Kit)
	assert.Equal(t, 0, st.Update())
}

func TestNewBuildsOnAdoptedScene(t *testing.T) {
	sc := xyz.NewScene()
	st, err := New(&Config{Container: &container{size: image.Pt(400, 300)}, Surface: &surface{}, Scene: sc})
	require.NoError(t, err)
	defer st.Close()

	sld := prims.Sphere(st.Kit, sc, "ball", 1, 8, prims.Look{Color: 0xffffff})
	ms, err := sc.MeshByName(string(sld.MeshName))
	require.NoError(t, err)
	assert.Same(t, sld.Mesh, ms)
	assert.Equal(t, math32.Vec3(0, -3, 0), sc.Camera.Target)
}
