// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prims

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/geom"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereSharesMesh(t *testing.T) {
	sc := xyz.NewScene()
	k := kit.NewSeeded(sc, 1)
	a := Sphere(k, sc, "a", 1.5, 32, Look{Color: 0xffdd00})
	b := Sphere(k, sc, "b", 1.5, 32, Look{Color: 0xff0000})
	c := Sphere(k, sc, "c", 2, 32, Look{})
	assert.Equal(t, 3, sc.NumChildren())
	assert.Same(t, a.Mesh, b.Mesh)
	ms, err := sc.MeshByName(string(a.MeshName))
	require.NoError(t, err)
	assert.Same(t, a.Mesh, ms)
	assert.NotEqual(t, a.MeshName, c.MeshName)
	assert.Equal(t, "b", b.AsTree().Name)
}

func TestLook(t *testing.T) {
	sc := xyz.NewScene()
	k := kit.NewSeeded(sc, 1)

	opaque := Sphere(k, sc, "opaque", 1, 16, Look{Color: 0x2233ff})
	assert.Equal(t, uint8(255), opaque.Material.Color.A)
	assert.True(t, opaque.Material.CullBack)
	assert.False(t, opaque.Material.CullFront)

	shell := Sphere(k, sc, "shell", 1, 16, Look{Color: 0x4da6ff, Opacity: 0.12, Side: meta.BackSide, NoDepthWrite: true, Order: 8})
	assert.InDelta(t, 0.12*255, float64(shell.Material.Color.A), 1)
	assert.False(t, shell.Material.CullBack)
	assert.True(t, shell.Material.CullFront)
	h, ok := k.Meta.Hints(shell)
	require.True(t, ok)
	assert.Equal(t, 8, h.Order)
	assert.True(t, h.NoDepthWrite)

	plane := Ring(k, sc, "plane", 3.5, 17, 64, Look{Color: 0xffcc66, Side: meta.DoubleSide, Unlit: true})
	assert.False(t, plane.Material.CullBack)
	assert.False(t, plane.Material.CullFront)
	assert.Equal(t, uint8(0xff), plane.Material.Emissive.R)
	assert.Equal(t, uint8(0xcc), plane.Material.Emissive.G)
}

func TestDataMeshesAreUnique(t *testing.T) {
	sc := xyz.NewScene()
	k := kit.NewSeeded(sc, 1)
	pts := geom.Circle(15, 0, 16)
	a := LineLoop(k, sc, "orbit", pts[:16], 0.05, Look{})
	b := Points(k, sc, "orbit", pts, 0.5, Look{})
	assert.NotEqual(t, a.MeshName, b.MeshName)

	nv, _, _ := a.Mesh.MeshSize()
	// a closed loop of 16 points has 16 segments of 8 vertices
	assert.Equal(t, 16*8, nv)
}

func TestConeAndCylinder(t *testing.T) {
	sc := xyz.NewScene()
	k := kit.NewSeeded(sc, 1)
	cyl := Cylinder(k, sc, "axis", 10, 0.03, 8, Look{})
	cone := Cone(k, sc, "north", 0.4, 0.15, 8, Look{})
	cone.SetPos(0, 5.2, 0)
	assert.NotNil(t, cyl.Mesh)
	assert.NotNil(t, cone.Mesh)
	assert.Equal(t, math32.Vec3(0, 5.2, 0), cone.Pose.Pos)
}
