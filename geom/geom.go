// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom has the geometric derivations behind the scene builders:
// circle and curve sampling, dash patterns, uniform sphere directions,
// and the placement of axis-relative objects. It does not depend on the
// scene graph, so all of it can be tested directly.
package geom

import (
	"cogentcore.org/core/math32"
)

// Segment is a straight line segment between two points.
type Segment [2]math32.Vector3

// Length returns the length of the segment.
func (s Segment) Length() float32 {
	return s[1].Sub(s[0]).Length()
}

// Circle returns segments+1 points on a circle of the given radius in the
// horizontal XZ plane at height y, starting on the +X axis and running
// toward +Z. The last point coincides with the first, closing the loop.
func Circle(radius, y float32, segments int) []math32.Vector3 {
	pts := make([]math32.Vector3, segments+1)
	for i := 0; i <= segments; i++ {
		th := float32(i) / float32(segments) * 2 * math32.Pi
		pts[i] = math32.Vec3(radius*math32.Cos(th), y, radius*math32.Sin(th))
	}
	// exact closure, independent of rounding in Cos/Sin at 2π
	pts[segments] = pts[0]
	return pts
}

// SmallCircle returns the radius and height of the circle of the given
// latitude (in degrees) on a sphere of radius r.
func SmallCircle(r, latitude float32) (radius, y float32) {
	lat := math32.DegToRad(latitude)
	return r * math32.Cos(lat), r * math32.Sin(lat)
}

// OnCircle returns the point at the given angle (in degrees) on a circle
// of radius r in the XZ plane.
func OnCircle(r, angle float32) math32.Vector3 {
	th := math32.DegToRad(angle)
	return math32.Vec3(r*math32.Cos(th), 0, r*math32.Sin(th))
}

// AxisPoint returns the point at distance d along the rotation axis of a
// body whose axis is tilted by obliquity degrees about X, away from +Y
// toward -Z.
func AxisPoint(d, obliquity float32) math32.Vector3 {
	ob := math32.DegToRad(obliquity)
	return math32.Vec3(0, d*math32.Cos(ob), -d*math32.Sin(ob))
}

// SphereDirection maps two uniform variables in [0, 1) to a unit vector
// uniformly distributed over the sphere. u sets the azimuth, uniform in
// [0, 2π); v sets the polar angle as acos(2v-1), which keeps the cosine of
// the polar angle uniform in [-1, 1] so points do not cluster at the poles.
func SphereDirection(u, v float32) math32.Vector3 {
	theta := u * 2 * math32.Pi
	phi := math32.Acos(2*v - 1)
	sp := math32.Sin(phi)
	return math32.Vec3(sp*math32.Cos(theta), sp*math32.Sin(theta), math32.Cos(phi))
}

// Spikes returns count segments through the origin, each spanning from
// -length to +length, at angles evenly spaced across a half turn in the
// XY plane.
func Spikes(count int, length float32) []Segment {
	segs := make([]Segment, count)
	for i := range count {
		a := float32(i) / float32(count) * math32.Pi
		d := math32.Vec3(length*math32.Cos(a), length*math32.Sin(a), 0)
		segs[i] = Segment{d.Negate(), d}
	}
	return segs
}
