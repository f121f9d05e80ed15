// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lesson

import (
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKit() *kit.Kit {
	k := kit.NewSeeded(xyz.NewScene(), 5)
	k.NoTextures = true
	return k
}

func TestObliquity(t *testing.T) {
	l := Obliquity()
	assert.Equal(t, "Obliquity of the ecliptic", l.Title)
	assert.Equal(t, uint64(23), l.Seed)
	assert.Equal(t, math32.Vec3(15, 0, 0), l.EarthPosition)
	require.Len(t, l.Latitudes, 5)
	assert.Equal(t, float32(-66.5), l.Latitudes[4].Latitude)
	assert.Equal(t, rgb.Color(0xffeb3b), l.Latitudes[1].Color)
	assert.Equal(t, "Tropic of Cancer", l.Latitudes[1].Label)
	require.Len(t, l.Planes, 2)
	assert.True(t, l.Planes[1].OnEarth)
	assert.Equal(t, "equator", l.Planes[1].Name)
	require.Len(t, l.Seasons, 4)
	assert.Equal(t, float32(270), l.Seasons[3].Angle)
	require.NotNil(t, l.Earth)
	assert.Equal(t, float32(23.5), l.Earth.Obliquity)
}

func TestBuildObliquity(t *testing.T) {
	k := testKit()
	sc := k.Scene
	rs := Build(k, sc, Obliquity())
	defer rs.Close()

	require.NotNil(t, rs.Ambient)
	require.NotNil(t, rs.Sun)
	require.NotNil(t, rs.Earth)
	require.NotNil(t, rs.Axis)
	require.NotNil(t, rs.Orbit)
	require.NotNil(t, rs.PolarStar)
	require.NotNil(t, rs.Starfield)
	assert.Len(t, rs.Latitudes, 5)
	assert.Len(t, rs.Planes, 2)
	assert.Len(t, rs.Seasons, 4)
	assert.Empty(t, rs.Labels)

	// starfield, sun and label, orbit, earth group, ecliptic and edge,
	// polar star and label, season markers and labels
	assert.Equal(t, 17, sc.NumChildren())
	assert.Equal(t, math32.Vec3(15, 0, 0), rs.EarthGroup.Pose.Pos)
	assert.Equal(t, 4, rs.EarthGroup.NumChildren())
	// axis, latitude tubes and labels, equator plane and edge
	assert.Equal(t, 15, rs.Earth.Solid.NumChildren())
	assert.Same(t, rs.Earth.Clouds, k.Meta.Ref(rs.Earth.Solid, "clouds"))
	assert.Equal(t, float32(3.5), rs.Axis.South.Pose.Pos.Length())
}

func TestOpenYAML(t *testing.T) {
	l, err := Open(filepath.Join("testdata", "rotation.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Earth rotation", l.Title)
	require.NotNil(t, l.Stage)
	assert.Equal(t, float32(50), l.Stage.FOV)
	require.NotNil(t, l.Earth)
	assert.True(t, l.Earth.NoTexture)
	require.NotNil(t, l.Earth.Atmosphere)
	assert.Equal(t, float32(0.2), l.Earth.Atmosphere.Opacity)
	require.Len(t, l.Latitudes, 1)
	assert.Equal(t, rgb.Color(0xff5252), l.Latitudes[0].Color)

	k := testKit()
	rs := Build(k, k.Scene, l)
	assert.Nil(t, rs.Sun)
	assert.Nil(t, rs.Earth.Clouds)
	require.NotNil(t, rs.Earth.Atmosphere)
	require.Len(t, rs.Labels, 1)
	assert.Equal(t, math32.Vec3(0, 6, 0), rs.Labels[0].Pose.Pos)
	// earth group and label
	assert.Equal(t, 2, k.Scene.NumChildren())
	// earth, atmosphere shells
	assert.Equal(t, 3, rs.EarthGroup.NumChildren())

	sc := l.StageConfig(nil, nil)
	assert.Equal(t, float32(50), sc.FOV)
	require.NotNil(t, sc.CameraPos)
	assert.Equal(t, math32.Vec3(0, 4, 12), *sc.CameraPos)
	assert.Nil(t, sc.LookAt)
	assert.Equal(t, uint64(7), sc.Seed)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(filepath.Join("testdata", "rotation.json"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Open(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	_, err = Open(filepath.Join("testdata", "unknown.toml"))
	assert.ErrorContains(t, err, "unknown.toml")

	_, err = Decode(strings.NewReader("title: x\nsunn: {}\n"), ".yml")
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	l, err := Decode(strings.NewReader(""), ".yaml")
	require.NoError(t, err)
	k := testKit()
	rs := Build(k, k.Scene, l)
	assert.Nil(t, rs.Earth)
	assert.Nil(t, rs.Ambient)
}

func TestBuildWithoutEarth(t *testing.T) {
	k := testKit()
	l := &Lesson{
		Latitudes: []Latitude{{Latitude: 10}},
		Planes:    []Plane{{OnEarth: true}, {}},
	}
	rs := Build(k, k.Scene, l)
	assert.Empty(t, rs.Latitudes)
	require.Len(t, rs.Planes, 1)
	assert.Equal(t, 2, k.Scene.NumChildren())
}

func TestBuildLabelColors(t *testing.T) {
	l, err := Decode(strings.NewReader(`
[[Labels]]
Text = "Day"

[[Labels]]
Text = "Night"
Color = 0
`), ".toml")
	require.NoError(t, err)
	assert.Nil(t, l.Labels[0].Color)
	require.NotNil(t, l.Labels[1].Color)

	k := testKit()
	rs := Build(k, k.Scene, l)
	require.Len(t, rs.Labels, 2)
	for i, want := range []uint8{0xff, 0} {
		img := rs.Labels[i].Material.Texture.AsTextureBase().RGBA
		ink := 0
		for j := 0; j < len(img.Pix); j += 4 {
			if img.Pix[j+3] == 0xff {
				ink++
				assert.Equal(t, []uint8{want, want, want}, img.Pix[j:j+3])
			}
		}
		assert.Positive(t, ink)
	}
}
