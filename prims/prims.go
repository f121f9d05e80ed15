// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prims provides the primitive solid builders that all of the
// scene builders compose: spheres, rings, tubes, cylinders, cones,
// line loops, line segments and point clouds.
//
// Each builder adds one new [xyz.Solid] to the parent and returns it.
// Meshes that only depend on their numeric parameters are named from
// those parameters and shared between solids of the same scene.
// Numeric input is not validated.
package prims

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/geom"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/mesh"
	"cogentcore.org/geoscene/meta"
	"cogentcore.org/geoscene/rgb"
)

// Look is the surface appearance of a primitive.
type Look struct {

	// Color is the base color.
	Color rgb.Color

	// Opacity is the opacity in (0, 1]; 0 means fully opaque.
	Opacity float32

	// Side is which faces are drawn.
	Side meta.Sides

	// NoDepthWrite excludes the surface from depth buffer writes.
	NoDepthWrite bool

	// Order is the explicit draw order.
	Order int

	// Unlit shows the color independent of scene lighting.
	Unlit bool
}

func (lk *Look) opacity() float32 {
	if lk.Opacity <= 0 || lk.Opacity > 1 {
		return 1
	}
	return lk.Opacity
}

// Hints returns the render hints of the look.
func (lk *Look) Hints() meta.Hints {
	return meta.Hints{Order: lk.Order, NoDepthWrite: lk.NoDepthWrite, Side: lk.Side, Unlit: lk.Unlit}
}

// Apply sets the material of the solid from the look,
// and records its render hints in the kit.
func (lk *Look) Apply(k *kit.Kit, sld *xyz.Solid) {
	mt := &sld.Material
	mt.Color = lk.Color.Alpha(lk.opacity())
	if lk.Unlit {
		mt.Emissive = lk.Color.Opaque()
	}
	switch lk.Side {
	case meta.FrontSide:
		mt.CullBack, mt.CullFront = true, false
	case meta.BackSide:
		mt.CullBack, mt.CullFront = false, true
	case meta.DoubleSide:
		mt.CullBack, mt.CullFront = false, false
	}
	k.Meta.SetHints(sld, lk.Hints())
}

// shared returns the scene mesh with the given name,
// creating and registering it on first use.
func shared(sc *xyz.Scene, name string, create func() xyz.Mesh) xyz.Mesh {
	if ms, err := sc.MeshByName(name); err == nil {
		return ms
	}
	ms := create()
	sc.SetMesh(ms)
	return ms
}

// unique registers a mesh whose data depend on more than its
// parameters, renaming it if the name is taken.
func unique(sc *xyz.Scene, ms *xyz.GenMesh) xyz.Mesh {
	sc.AddMeshUnique(ms)
	return ms
}

func newSolid(k *kit.Kit, parent tree.Node, name string, ms xyz.Mesh, lk Look) *xyz.Solid {
	sld := xyz.NewSolid(parent)
	sld.SetName(name)
	sld.SetMesh(ms)
	lk.Apply(k, sld)
	return sld
}

// Sphere adds a sphere with the given radius and number of segments.
func Sphere(k *kit.Kit, parent tree.Node, name string, radius float32, segments int, lk Look) *xyz.Solid {
	mnm := fmt.Sprintf("sphere-%g-%d", radius, segments)
	ms := shared(k.Scene, mnm, func() xyz.Mesh {
		return xyz.NewSphere(k.Scene, mnm, radius, segments)
	})
	return newSolid(k, parent, name, ms, lk)
}

// Ring adds a flat annulus in the XY plane between the inner and outer radius.
func Ring(k *kit.Kit, parent tree.Node, name string, inner, outer float32, segments int, lk Look) *xyz.Solid {
	mnm := fmt.Sprintf("ring-%g-%g-%d", inner, outer, segments)
	ms := shared(k.Scene, mnm, func() xyz.Mesh {
		return mesh.Ring(mnm, inner, outer, segments)
	})
	return newSolid(k, parent, name, ms, lk)
}

// Cylinder adds a capped cylinder along the Y axis, centered at the origin.
func Cylinder(k *kit.Kit, parent tree.Node, name string, height, radius float32, segments int, lk Look) *xyz.Solid {
	mnm := fmt.Sprintf("cylinder-%g-%g-%d", height, radius, segments)
	ms := shared(k.Scene, mnm, func() xyz.Mesh {
		return xyz.NewCylinder(k.Scene, mnm, height, radius, segments, 1, true, true)
	})
	return newSolid(k, parent, name, ms, lk)
}

// Cone adds a cone along the Y axis pointing up, centered at the origin.
func Cone(k *kit.Kit, parent tree.Node, name string, height, radius float32, segments int, lk Look) *xyz.Solid {
	mnm := fmt.Sprintf("cone-%g-%g-%d", height, radius, segments)
	ms := shared(k.Scene, mnm, func() xyz.Mesh {
		return xyz.NewCone(k.Scene, mnm, height, radius, segments, 1, true)
	})
	return newSolid(k, parent, name, ms, lk)
}

// Tube adds a tube of the given radius along the curve.
func Tube(k *kit.Kit, parent tree.Node, name string, c *geom.CatmullRom, tubular int, radius float32, radial int, lk Look) *xyz.Solid {
	ms := unique(k.Scene, mesh.Tube(name, c, tubular, radius, radial))
	return newSolid(k, parent, name, ms, lk)
}

// LineLoop adds a line of the given width through the points,
// closing back to the first point.
func LineLoop(k *kit.Kit, parent tree.Node, name string, pts []math32.Vector3, width float32, lk Look) *xyz.Solid {
	n := len(pts)
	segs := make([]geom.Segment, 0, n)
	for i := range n {
		segs = append(segs, geom.Segment{pts[i], pts[(i+1)%n]})
	}
	return Segments(k, parent, name, segs, width, lk)
}

// Segments adds disjoint line segments of the given width.
func Segments(k *kit.Kit, parent tree.Node, name string, segs []geom.Segment, width float32, lk Look) *xyz.Solid {
	ms := unique(k.Scene, mesh.Segments(name, segs, width))
	return newSolid(k, parent, name, ms, lk)
}

// Points adds a point cloud with one marker of the given size per point.
func Points(k *kit.Kit, parent tree.Node, name string, pts []math32.Vector3, size float32, lk Look) *xyz.Solid {
	ms := unique(k.Scene, mesh.Points(name, pts, size))
	return newSolid(k, parent, name, ms, lk)
}
