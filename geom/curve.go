// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "cogentcore.org/core/math32"

// CatmullRom is a centripetal Catmull-Rom spline through a list of
// control points, passing through every point. When Closed, the curve
// wraps from the last point back to the first; the control points should
// then not repeat the first point at the end.
type CatmullRom struct {

	// Points are the control points the curve passes through.
	Points []math32.Vector3

	// Closed makes the curve a loop.
	Closed bool
}

// NewClosedCurve returns a closed curve through the given points,
// dropping a final point that repeats the first one.
func NewClosedCurve(pts []math32.Vector3) *CatmullRom {
	n := len(pts)
	if n > 1 && pts[n-1] == pts[0] {
		pts = pts[:n-1]
	}
	return &CatmullRom{Points: pts, Closed: true}
}

// Point returns the point on the curve at parameter t in [0, 1].
func (c *CatmullRom) Point(t float32) math32.Vector3 {
	pts := c.Points
	n := len(pts)
	switch n {
	case 0:
		return math32.Vector3{}
	case 1:
		return pts[0]
	}
	var p float32
	if c.Closed {
		p = float32(n) * t
	} else {
		p = float32(n-1) * t
	}
	ip := int(math32.Floor(p))
	w := p - float32(ip)
	if c.Closed {
		ip = mod(ip, n)
	} else if ip >= n-1 {
		ip = n - 2
		w = 1
	}

	var p0, p3 math32.Vector3
	p1 := pts[ip]
	p2 := pts[mod(ip+1, n)]
	if c.Closed || ip > 0 {
		p0 = pts[mod(ip-1, n)]
	} else {
		p0 = p1.MulScalar(2).Sub(p2) // reflected start
	}
	if c.Closed || ip+2 < n {
		p3 = pts[mod(ip+2, n)]
	} else {
		p3 = p2.MulScalar(2).Sub(p1) // reflected end
	}

	// centripetal parameterization: knot spacing is sqrt of chord length
	dt0 := knot(p0, p1)
	dt1 := knot(p1, p2)
	dt2 := knot(p2, p3)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}
	return math32.Vec3(
		nonUniform(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2, w),
		nonUniform(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2, w),
		nonUniform(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2, w),
	)
}

// Tangent returns the unit tangent of the curve at parameter t.
func (c *CatmullRom) Tangent(t float32) math32.Vector3 {
	const delta = 1e-4
	t1, t2 := t-delta, t+delta
	if !c.Closed {
		t1 = math32.Max(t1, 0)
		t2 = math32.Min(t2, 1)
	}
	return c.Point(t2).Sub(c.Point(t1)).Normal()
}

// Sample returns n+1 points evenly spaced in parameter along the curve,
// from t = 0 to t = 1. For a closed curve the last point equals the first.
func (c *CatmullRom) Sample(n int) []math32.Vector3 {
	pts := make([]math32.Vector3, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = c.Point(float32(i) / float32(n))
	}
	return pts
}

// nonUniform evaluates one coordinate of a non-uniform Catmull-Rom segment
// between x1 and x2 with knot intervals dt0, dt1, dt2, at fraction w.
func nonUniform(x0, x1, x2, x3, dt0, dt1, dt2, w float32) float32 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	// cubic Hermite coefficients
	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*w + c2*w*w + c3*w*w*w
}

// knot returns the centripetal knot interval between two points,
// the square root of their distance.
func knot(a, b math32.Vector3) float32 {
	d := b.Sub(a)
	return math32.Sqrt(math32.Sqrt(d.Dot(d)))
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}
