// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geoscene inspects, watches and views lesson scenes.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/lesson"
)

// Config is the configuration information for the geoscene cli.
type Config struct {

	// Lesson is the lesson file (.toml, .yaml or .yml) to use.
	// The built-in obliquity lesson is used when it is empty.
	Lesson string `posarg:"0" required:"-"`

	// Offline does not load any textures.
	Offline bool `flag:"offline"`

	// Seed, if not 0, seeds the random star field, overriding the lesson seed.
	Seed uint64

	// Verbose logs debug messages.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("geoscene", "Inspect, watch and view geography lesson scenes.")
	cli.Run(opts, &Config{}, Inspect, Watch, View)
}

// setup sets the log level and opens the lesson.
func setup(c *Config) (*lesson.Lesson, error) {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if c.Lesson == "" {
		slog.Debug("geoscene: using the built-in obliquity lesson")
		return lesson.Obliquity(), nil
	}
	return lesson.Open(c.Lesson)
}

// newKit returns the builder kit for the lesson on the given scene.
func newKit(c *Config, l *lesson.Lesson, sc *xyz.Scene) *kit.Kit {
	seed := l.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	var k *kit.Kit
	if seed != 0 {
		k = kit.NewSeeded(sc, seed)
	} else {
		k = kit.New(sc)
	}
	k.NoTextures = c.Offline
	return k
}
