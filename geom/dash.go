// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "cogentcore.org/core/math32"

// LineDistances returns the cumulative distance along the polyline at
// each of its points, starting at 0.
func LineDistances(pts []math32.Vector3) []float32 {
	dist := make([]float32, len(pts))
	for i := 1; i < len(pts); i++ {
		dist[i] = dist[i-1] + pts[i].Sub(pts[i-1]).Length()
	}
	return dist
}

// Dashes splits the polyline into the visible segments of a repeating
// pattern of dash length "on" followed by gap length "off", using the
// cumulative distances from [LineDistances]. The pattern is continuous
// across polyline vertices.
func Dashes(pts []math32.Vector3, dist []float32, dash, gap float32) []Segment {
	period := dash + gap
	if len(pts) < 2 || dash <= 0 || period <= 0 {
		return nil
	}
	var segs []Segment
	for i := 1; i < len(pts); i++ {
		d0, d1 := dist[i-1], dist[i]
		span := d1 - d0
		if span <= 0 {
			continue
		}
		// walk the dash windows overlapping [d0, d1]
		k := math32.Floor(d0 / period)
		for start := k * period; start < d1; start += period {
			a := math32.Max(start, d0)
			b := math32.Min(start+dash, d1)
			if b <= a {
				continue
			}
			pa := pts[i-1].Lerp(pts[i], (a-d0)/span)
			pb := pts[i-1].Lerp(pts[i], (b-d0)/span)
			segs = append(segs, Segment{pa, pb})
		}
	}
	return segs
}
