// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lesson reads declarative lesson files, which describe the
// whole scene of a teaching page, and builds them into a scene.
package lesson

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/geoscene/annot"
	"cogentcore.org/geoscene/bodies"
	"cogentcore.org/geoscene/rgb"
	"cogentcore.org/geoscene/stage"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for lesson files that are neither TOML nor YAML.
var ErrFormat = errors.New("lesson: unknown file format")

// Lesson describes the scene of one lesson page. Parts that are nil
// or empty are not built.
type Lesson struct {

	// Title is the lesson title.
	Title string

	// Seed, if not 0, seeds the random source used by the star field.
	Seed uint64

	// EarthPosition is the position of the earth group.
	EarthPosition math32.Vector3

	// SeasonRadius is the orbit radius of the season markers.
	SeasonRadius float32

	// Stage has the camera and renderer options.
	Stage *StageOptions

	Ambient   *bodies.AmbientConfig
	Sun       *bodies.SunConfig
	Earth     *bodies.EarthConfig
	Axis      *annot.AxisConfig
	Latitudes []Latitude
	Orbit     *annot.OrbitConfig
	Planes    []Plane
	PolarStar *annot.PolarStarConfig
	Starfield *annot.StarfieldConfig
	Seasons   []annot.Season
	Labels    []Label
}

// StageOptions are the lesson settings for [stage.New].
type StageOptions struct {
	FOV         float32
	Near        float32
	Far         float32
	CameraPos   *math32.Vector3
	LookAt      *math32.Vector3
	NoAntialias bool
	NoAlpha     bool
	PixelRatio  float32
}

// Latitude is a latitude line on the earth.
type Latitude struct {

	// Latitude is the latitude in degrees, north positive.
	Latitude float32

	annot.LatitudeConfig `yaml:",inline"`
}

// Plane is a reference plane.
type Plane struct {

	// OnEarth attaches the plane to the earth, so that it shares its
	// tilt and position, as the equatorial plane does.
	OnEarth bool

	annot.PlaneConfig `yaml:",inline"`
}

// Label is a free text label.
type Label struct {
	Text     string
	Position math32.Vector3

	// Color is the label color; white when it is not set.
	Color *rgb.Color

	Scale float32
}

// StageConfig returns the stage configuration of the lesson for the
// given container and drawing surface.
func (l *Lesson) StageConfig(container stage.Sizer, surface stage.Resizer) *stage.Config {
	c := &stage.Config{Container: container, Surface: surface, Seed: l.Seed}
	if so := l.Stage; so != nil {
		c.FOV = so.FOV
		c.Near = so.Near
		c.Far = so.Far
		c.CameraPos = so.CameraPos
		c.LookAt = so.LookAt
		c.NoAntialias = so.NoAntialias
		c.NoAlpha = so.NoAlpha
		c.PixelRatio = so.PixelRatio
	}
	return c
}

// Open reads the lesson file at the given path. The format is chosen
// by the file extension: .toml, or .yaml / .yml.
func Open(path string) (*Lesson, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isFormat(ext) {
		return nil, fmt.Errorf("%w: %q", ErrFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Decode(f, ext)
	if err != nil {
		return nil, fmt.Errorf("lesson: %s: %w", path, err)
	}
	return l, nil
}

// Decode reads a lesson in the format given by the file extension ext.
// Unknown fields are an error.
func Decode(r io.Reader, ext string) (*Lesson, error) {
	l := &Lesson{}
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(l); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	return l, nil
}

func isFormat(ext string) bool {
	switch ext {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

//go:embed obliquity.toml
var obliquityTOML []byte

// Obliquity returns the built-in lesson on the obliquity of the ecliptic:
// the tilted earth on its orbit with the equator, the tropics and the
// polar circles, the ecliptic and equatorial planes, the pole star and
// the four season markers.
func Obliquity() *Lesson {
	l, err := Decode(bytes.NewReader(obliquityTOML), ".toml")
	if err != nil {
		panic(fmt.Errorf("lesson: built-in obliquity lesson: %w", err))
	}
	return l
}
