// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh generates the [xyz.GenMesh] shapes used by the scene
// builders that xyz does not provide itself: flat rings, tubes swept
// along a curve, thin line segments and point clouds.
// The meshes are returned unregistered; add them to a scene with
// [xyz.Scene.SetMesh].
package mesh

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/geom"
)

// genMesh accumulates the vertex data of a [xyz.GenMesh].
type genMesh struct {
	*xyz.GenMesh
}

func newGenMesh(name string) genMesh {
	ms := &xyz.GenMesh{}
	ms.Name = name
	return genMesh{ms}
}

// vertex adds a vertex and returns its index.
func (gm genMesh) vertex(pos, norm math32.Vector3, u, v float32) uint32 {
	idx := uint32(len(gm.Vertex) / 3)
	gm.Vertex = append(gm.Vertex, pos.X, pos.Y, pos.Z)
	gm.Normal = append(gm.Normal, norm.X, norm.Y, norm.Z)
	gm.TexCoord = append(gm.TexCoord, u, v)
	return idx
}

// quad adds the two triangles (a, b, d) and (b, c, d).
func (gm genMesh) quad(a, b, c, d uint32) {
	gm.Index = append(gm.Index, a, b, d, b, c, d)
}

// Ring returns an annulus in the XY plane, facing +Z, between the inner
// and outer radius, with the given number of angular segments.
func Ring(name string, inner, outer float32, segments int) *xyz.GenMesh {
	gm := newGenMesh(name)
	norm := math32.Vec3(0, 0, 1)
	for j := range 2 {
		r := inner
		if j == 1 {
			r = outer
		}
		for i := 0; i <= segments; i++ {
			a := float32(i) / float32(segments) * 2 * math32.Pi
			x, y := r*math32.Cos(a), r*math32.Sin(a)
			gm.vertex(math32.Vec3(x, y, 0), norm, (x/outer+1)/2, (y/outer+1)/2)
		}
	}
	row := uint32(segments + 1)
	for i := range uint32(segments) {
		gm.quad(i, i+row, i+row+1, i+1)
	}
	return gm.GenMesh
}

// Tube returns a tube of the given radius swept along the curve, with
// tubular segments along the curve and radial segments around it.
// Closed curves produce a seamless loop.
func Tube(name string, c *geom.CatmullRom, tubular int, radius float32, radial int) *xyz.GenMesh {
	gm := newGenMesh(name)
	fr := geom.NewFrames(c, tubular)
	for i := 0; i <= tubular; i++ {
		p := c.Point(float32(i) / float32(tubular))
		n, b := fr.Normals[i], fr.Binormals[i]
		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * 2 * math32.Pi
			sin, cos := math32.Sin(v), -math32.Cos(v)
			norm := n.MulScalar(cos).Add(b.MulScalar(sin)).Normal()
			gm.vertex(p.Add(norm.MulScalar(radius)), norm, float32(i)/float32(tubular), float32(j)/float32(radial))
		}
	}
	row := uint32(radial + 1)
	for j := uint32(1); j <= uint32(tubular); j++ {
		for i := uint32(1); i <= uint32(radial); i++ {
			a := row*(j-1) + (i - 1)
			b := row*j + (i - 1)
			gm.quad(a, b, b+1, a+1)
		}
	}
	return gm.GenMesh
}

// Segments returns one thin square prism of the given width for each
// segment, so that line work renders with the triangle pipeline.
// Zero-length segments are skipped.
func Segments(name string, segs []geom.Segment, width float32) *xyz.GenMesh {
	gm := newGenMesh(name)
	hw := width / 2
	for _, s := range segs {
		d := s[1].Sub(s[0])
		if d.Length() == 0 {
			continue
		}
		d = d.Normal()
		u := d.Cross(leastAxis(d)).Normal()
		v := d.Cross(u)
		offs := [4]math32.Vector3{
			u.Add(v), u.Sub(v), u.Negate().Sub(v), u.Negate().Add(v),
		}
		var idx [2][4]uint32
		for e := range 2 {
			for k, o := range offs {
				idx[e][k] = gm.vertex(s[e].Add(o.MulScalar(hw)), o.Normal(), float32(e), float32(k)/4)
			}
		}
		for k := range 4 {
			k1 := (k + 1) % 4
			gm.quad(idx[0][k], idx[1][k], idx[1][k1], idx[0][k1])
		}
	}
	return gm.GenMesh
}

// Points returns one small octahedron of the given size
// (tip to tip) centered on each point.
func Points(name string, pts []math32.Vector3, size float32) *xyz.GenMesh {
	gm := newGenMesh(name)
	hs := size / 2
	dirs := [6]math32.Vector3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	// each face is one of +-X, one of +-Y and one of +-Z
	faces := [8][3]uint32{
		{0, 2, 4}, {4, 2, 1}, {1, 2, 5}, {5, 2, 0},
		{4, 3, 0}, {1, 3, 4}, {5, 3, 1}, {0, 3, 5},
	}
	for _, p := range pts {
		var idx [6]uint32
		for k, d := range dirs {
			idx[k] = gm.vertex(p.Add(d.MulScalar(hs)), d, 0.5+d.X/2, 0.5+d.Y/2)
		}
		for _, f := range faces {
			gm.Index = append(gm.Index, idx[f[0]], idx[f[1]], idx[f[2]])
		}
	}
	return gm.GenMesh
}

// leastAxis returns the unit axis along which d has the smallest component.
func leastAxis(d math32.Vector3) math32.Vector3 {
	ax := math32.Vec3(1, 0, 0)
	mn := math32.Abs(d.X)
	if math32.Abs(d.Y) < mn {
		mn = math32.Abs(d.Y)
		ax = math32.Vec3(0, 1, 0)
	}
	if math32.Abs(d.Z) < mn {
		ax = math32.Vec3(0, 0, 1)
	}
	return ax
}
