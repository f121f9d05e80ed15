// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/geoscene/geom"
	"github.com/stretchr/testify/assert"
)

func vertexAt(v math32.ArrayF32, i int) math32.Vector3 {
	return math32.Vec3(v[i*3], v[i*3+1], v[i*3+2])
}

func TestRing(t *testing.T) {
	ms := Ring("ring", 3.5, 17, 64)
	nv, ni, hasColor := ms.MeshSize()
	assert.Equal(t, 2*65, nv)
	assert.Equal(t, 64*6, ni)
	assert.False(t, hasColor)
	for i := range nv {
		p := vertexAt(ms.Vertex, i)
		assert.Equal(t, float32(0), p.Z)
		r := p.Length()
		if i < 65 {
			assert.InDelta(t, 3.5, r, 1e-4)
		} else {
			assert.InDelta(t, 17, r, 1e-4)
		}
	}
	for _, idx := range ms.Index {
		assert.Less(t, int(idx), nv)
	}
}

func TestTube(t *testing.T) {
	c := geom.NewClosedCurve(geom.Circle(2, 0.5, 64))
	ms := Tube("tube", c, 64, 0.02, 8)
	nv, ni, _ := ms.MeshSize()
	assert.Equal(t, 65*9, nv)
	assert.Equal(t, 64*8*6, ni)
	for i := 0; i <= 64; i++ {
		p := c.Point(float32(i) / 64)
		for j := 0; j <= 8; j++ {
			v := vertexAt(ms.Vertex, i*9+j)
			assert.InDelta(t, 0.02, v.Sub(p).Length(), 1e-4)
		}
	}
	// the loop closes: the last ring coincides with the first
	for j := 0; j <= 8; j++ {
		a, b := vertexAt(ms.Vertex, j), vertexAt(ms.Vertex, 64*9+j)
		assert.InDelta(t, 0, a.Sub(b).Length(), 1e-3)
	}
}

func TestSegments(t *testing.T) {
	segs := []geom.Segment{
		{math32.Vec3(-2, 0, 0), math32.Vec3(2, 0, 0)},
		{math32.Vec3(1, 1, 1), math32.Vec3(1, 1, 1)},
		{math32.Vec3(0, -2, 0), math32.Vec3(0, 2, 0)},
	}
	ms := Segments("spikes", segs, 0.04)
	nv, ni, _ := ms.MeshSize()
	assert.Equal(t, 16, nv)
	assert.Equal(t, 48, ni)
	// all vertices of the first segment lie within width of the X axis
	for i := range 8 {
		p := vertexAt(ms.Vertex, i)
		assert.InDelta(t, 2, math32.Abs(p.X), 1e-5)
		assert.InDelta(t, 0.02*math32.Sqrt(2), math32.Sqrt(p.Y*p.Y+p.Z*p.Z), 1e-5)
	}
}

func TestPoints(t *testing.T) {
	pts := []math32.Vector3{{X: 10}, {Y: -5}, {X: 1, Y: 2, Z: 3}}
	ms := Points("stars", pts, 0.5)
	nv, ni, _ := ms.MeshSize()
	assert.Equal(t, 18, nv)
	assert.Equal(t, 72, ni)
	for i := range nv {
		p := vertexAt(ms.Vertex, i)
		assert.InDelta(t, 0.25, p.Sub(pts[i/6]).Length(), 1e-5)
	}
}
