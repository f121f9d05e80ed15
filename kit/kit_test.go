// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kit

import (
	"testing"

	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/texture"
	"github.com/stretchr/testify/assert"
)

func TestNewSeeded(t *testing.T) {
	a := NewSeeded(xyz.NewScene(), 7)
	b := NewSeeded(xyz.NewScene(), 7)
	for range 10 {
		assert.Equal(t, a.Rand.Float32(), b.Rand.Float32())
	}
	assert.True(t, a.Owner.Alive())
	assert.Same(t, a.Scene, a.Textures.Scene)
}

func TestNoTextures(t *testing.T) {
	k := NewSeeded(xyz.NewScene(), 1)
	k.NoTextures = true
	assert.Nil(t, k.Load("earth", "earth.jpg", nil))
	assert.Equal(t, 0, k.Textures.Pending())
}

func TestWithOwner(t *testing.T) {
	k := NewSeeded(xyz.NewScene(), 1)
	ow := texture.NewOwner(k.Owner.Context())
	ek := k.WithOwner(ow)
	assert.Same(t, ow, ek.Owner)
	assert.Same(t, k.Meta, ek.Meta)
	assert.NotSame(t, ow, k.Owner)
	assert.Equal(t, uint64(1), k.Serial())
	assert.Equal(t, uint64(2), ek.Serial())
	assert.Equal(t, uint64(1), NewSeeded(k.Scene, 1).Serial())

	// closing the kit cascades to derived owners
	k.Close()
	assert.False(t, k.Owner.Alive())
	assert.False(t, ow.Alive())
}
