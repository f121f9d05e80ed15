// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "cogentcore.org/core/math32"

// Frames are the per-sample orientation frames along a curve used to
// sweep a cross-section (for example a tube) along it.
type Frames struct {
	Tangents  []math32.Vector3
	Normals   []math32.Vector3
	Binormals []math32.Vector3
}

// NewFrames computes rotation-minimizing (parallel transport) frames at
// segments+1 evenly spaced parameters along the curve. For closed curves
// the accumulated twist is spread over the samples so the last frame
// matches the first and the sweep closes without a seam.
func NewFrames(c *CatmullRom, segments int) *Frames {
	n := segments + 1
	fr := &Frames{
		Tangents:  make([]math32.Vector3, n),
		Normals:   make([]math32.Vector3, n),
		Binormals: make([]math32.Vector3, n),
	}
	for i := range n {
		fr.Tangents[i] = c.Tangent(float32(i) / float32(segments))
	}

	// initial normal: perpendicular to the tangent, built from the axis
	// along which the tangent has the smallest component
	t0 := fr.Tangents[0]
	ax := math32.Vec3(1, 0, 0)
	mn := math32.Abs(t0.X)
	if math32.Abs(t0.Y) <= mn {
		mn = math32.Abs(t0.Y)
		ax = math32.Vec3(0, 1, 0)
	}
	if math32.Abs(t0.Z) <= mn {
		ax = math32.Vec3(0, 0, 1)
	}
	v := t0.Cross(ax).Normal()
	fr.Normals[0] = t0.Cross(v)
	fr.Binormals[0] = t0.Cross(fr.Normals[0])

	for i := 1; i < n; i++ {
		fr.Normals[i] = fr.Normals[i-1]
		axis := fr.Tangents[i-1].Cross(fr.Tangents[i])
		if axis.Length() > 1e-6 {
			axis = axis.Normal()
			th := math32.Acos(clamp(fr.Tangents[i-1].Dot(fr.Tangents[i]), -1, 1))
			fr.Normals[i] = fr.Normals[i].MulQuat(math32.NewQuatAxisAngle(axis, th))
		}
		fr.Binormals[i] = fr.Tangents[i].Cross(fr.Normals[i])
	}

	if c.Closed {
		th := math32.Acos(clamp(fr.Normals[0].Dot(fr.Normals[n-1]), -1, 1)) / float32(segments)
		if fr.Tangents[0].Dot(fr.Normals[0].Cross(fr.Normals[n-1])) > 0 {
			th = -th
		}
		for i := 1; i < n; i++ {
			fr.Normals[i] = fr.Normals[i].MulQuat(math32.NewQuatAxisAngle(fr.Tangents[i], th*float32(i)))
			fr.Binormals[i] = fr.Tangents[i].Cross(fr.Normals[i])
		}
	}
	return fr
}

func clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}
