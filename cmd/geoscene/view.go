// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"

	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/geoscene/annot"
	"cogentcore.org/geoscene/lesson"
	"cogentcore.org/geoscene/stage"
)

// earthSpin is the earth rotation speed in radians per second.
const earthSpin = 0.2

// widgetSizer is the size of the scene widget.
type widgetSizer struct {
	sw *xyzcore.Scene
}

func (ws widgetSizer) Size() image.Point {
	return ws.sw.Geom.ContentBBox.Size()
}

// frameSurface is a no-op surface; the scene widget sizes its own frame.
type frameSurface struct{}

func (frameSurface) SetSize(sz image.Point) {}

// View opens a window showing the lesson scene, with the earth and its
// clouds turning.
func View(c *Config) error {
	l, err := setup(c)
	if err != nil {
		return err
	}
	title := l.Title
	if title == "" {
		title = "geoscene"
	}
	b := core.NewBody("geoscene").SetTitle(title)
	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sw := se.SceneWidget()
	sc := se.SceneXYZ()

	cfg := l.StageConfig(widgetSizer{sw}, frameSurface{})
	cfg.Scene = sc
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	st, err := stage.New(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	st.Kit.NoTextures = c.Offline
	rs := lesson.Build(st.Kit, sc, l)
	defer rs.Close()

	sw.Animate(func(a *core.Animation) {
		st.OnResize()
		st.Update()
		if rs.Earth != nil {
			rot := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), earthSpin*a.Dt/1000)
			spin(rs.Earth.Solid, rot)
			spin(st.Kit.Meta.Ref(rs.Earth.Solid, annot.CloudsRef), rot)
		}
		sc.SetNeedsUpdate()
		se.NeedsRender()
	})
	b.RunMainWindow()
	return nil
}

// spin turns the solid about its own (tilted) Y axis.
func spin(sld *xyz.Solid, rot math32.Quat) {
	if sld == nil {
		return
	}
	sld.Pose.Quat.SetMul(rot)
}
