// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lesson

import (
	"log/slog"

	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/annot"
	"cogentcore.org/geoscene/bodies"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/label"
)

// Result holds every part built from a lesson. Parts the lesson does
// not describe are nil.
type Result struct {
	Ambient    *xyz.Ambient
	Sun        *bodies.Sun
	EarthGroup *xyz.Group
	Earth      *bodies.Earth
	Axis       *annot.Axis
	Latitudes  []*annot.Latitude
	Orbit      *annot.Orbit
	Planes     []*annot.Plane
	PolarStar  *annot.PolarStar
	Starfield  *annot.Starfield
	Seasons    []*xyz.Solid
	Labels     []*label.Sprite
}

// Build builds the lesson into the parent and returns the built parts.
// The earth, with its axis, latitude lines and earth planes, is placed
// in its own group at [Lesson.EarthPosition].
func Build(k *kit.Kit, parent tree.Node, l *Lesson) *Result {
	rs := &Result{}
	if l.Ambient != nil {
		rs.Ambient = bodies.AddAmbientLight(k, l.Ambient)
	}
	if l.Starfield != nil {
		rs.Starfield = annot.NewStarfield(k, parent, l.Starfield)
	}
	if l.Sun != nil {
		rs.Sun = bodies.NewSun(k, parent, l.Sun)
	}
	if l.Orbit != nil {
		rs.Orbit = annot.NewOrbit(k, parent, l.Orbit)
	}
	if l.Earth != nil {
		rs.EarthGroup = xyz.NewGroup(parent)
		rs.EarthGroup.SetName("earth-group")
		rs.EarthGroup.Pose.Pos = l.EarthPosition
		rs.Earth = bodies.NewEarth(k, rs.EarthGroup, l.Earth)
		if l.Axis != nil {
			rs.Axis = annot.NewEarthAxis(k, rs.Earth.Solid, l.Axis)
		}
		for _, lt := range l.Latitudes {
			rs.Latitudes = append(rs.Latitudes, annot.NewLatitudeLine(k, rs.Earth.Solid, lt.Latitude, &lt.LatitudeConfig))
		}
	} else if l.Axis != nil || len(l.Latitudes) > 0 {
		slog.Warn("lesson: earth annotations without an earth are skipped", "title", l.Title)
	}
	for _, pl := range l.Planes {
		var pp tree.Node = parent
		if pl.OnEarth {
			if rs.Earth == nil {
				slog.Warn("lesson: earth plane without an earth is skipped", "plane", pl.Name)
				continue
			}
			pp = rs.Earth.Solid
		}
		rs.Planes = append(rs.Planes, annot.NewPlane(k, pp, &pl.PlaneConfig))
	}
	if l.PolarStar != nil {
		rs.PolarStar = annot.NewPolarStar(k, parent, l.PolarStar)
	}
	if len(l.Seasons) > 0 {
		rs.Seasons = annot.NewSeasonMarkers(k, parent, l.Seasons, l.SeasonRadius)
	}
	for _, lb := range l.Labels {
		c := label.DefaultColor
		if lb.Color != nil {
			c = *lb.Color
		}
		rs.Labels = append(rs.Labels, label.Add(k, parent, lb.Text, lb.Position, c, lb.Scale))
	}
	return rs
}

// Close cancels the outstanding texture loads of the earth.
func (rs *Result) Close() {
	if rs.Earth != nil {
		rs.Earth.Close()
	}
}
