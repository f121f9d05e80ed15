// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kit bundles the per-scene state that all of the scene
// builders share, so that builders read no global state.
package kit

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/meta"
	"cogentcore.org/geoscene/texture"
)

// Kit is the shared state for building one scene.
type Kit struct {

	// Scene is the scene that meshes, textures and lights are registered on.
	Scene *xyz.Scene

	// Meta holds the render hints and back-references of the built solids.
	Meta *meta.Table

	// Textures loads the texture images of the built solids.
	Textures *texture.Loader

	// Owner owns the texture loads started by the builders.
	// Builders that can be torn down on their own, such as the earth,
	// derive their own owner from it.
	Owner *texture.Owner

	// Rand is the random source for procedural content such as star fields.
	Rand *rand.Rand

	// NoTextures disables texture loading, so that all textured
	// surfaces keep their base color.
	NoTextures bool

	serial *atomic.Uint64
}

// New returns a new kit for the given scene, with a time-seeded random source.
func New(sc *xyz.Scene) *Kit {
	seed := uint64(time.Now().UnixNano())
	return NewSeeded(sc, seed)
}

// NewSeeded returns a new kit for the given scene whose random source
// is seeded with the given value, for reproducible output.
func NewSeeded(sc *xyz.Scene, seed uint64) *Kit {
	return &Kit{
		Scene:    sc,
		Meta:     meta.NewTable(),
		Textures: texture.NewLoader(sc),
		Owner:    texture.NewOwner(context.Background()),
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		serial:   &atomic.Uint64{},
	}
}

// Serial returns the next number of the kit's sequence, starting at 1.
// It is used to give scene resources unique names. Copies made by
// [Kit.WithOwner] share the sequence.
func (k *Kit) Serial() uint64 {
	return k.serial.Add(1)
}

// Load starts loading a texture owned by the kit's [Kit.Owner].
// It returns nil without loading anything if [Kit.NoTextures] is set.
func (k *Kit) Load(name, src string, apply func(tx xyz.Texture)) *texture.Task {
	if k.NoTextures {
		return nil
	}
	return k.Textures.Load(k.Owner, name, src, apply)
}

// WithOwner returns a shallow copy of the kit whose texture loads
// belong to the given owner.
func (k *Kit) WithOwner(ow *texture.Owner) *Kit {
	nk := *k
	nk.Owner = ow
	return &nk
}

// Close cancels all texture loads of the kit.
func (k *Kit) Close() {
	k.Owner.Close()
}
