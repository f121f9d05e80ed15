// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 200, 255})
		}
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func testLoader(t *testing.T) *Loader {
	ld := NewLoader(xyz.NewScene())
	ld.FS = fstest.MapFS{
		"earth.png": {Data: testPNG(t, 8, 4)},
		"notes.txt": {Data: []byte("not an image at all")},
	}
	return ld
}

func wait(t *testing.T, tk *Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return tk.Wait(ctx)
}

func TestLoadApply(t *testing.T) {
	ld := testLoader(t)
	ow := NewOwner(context.Background())
	defer ow.Close()

	var got xyz.Texture
	tk := ld.Load(ow, "earth", "earth.png", func(tx xyz.Texture) { got = tx })
	assert.Equal(t, Pending, tk.State())
	require.NoError(t, wait(t, tk))

	// nothing is applied until Apply is called
	assert.Nil(t, got)
	assert.Equal(t, 1, ld.Pending())

	assert.Equal(t, 1, ld.Apply())
	assert.Equal(t, Applied, tk.State())
	assert.Equal(t, 0, ld.Pending())
	require.NotNil(t, got)
	tb := got.AsTextureBase()
	assert.Equal(t, "earth", tb.Name)
	assert.Equal(t, image.Pt(8, 4), tb.RGBA.Bounds().Size())
	assert.False(t, tb.Transparent)

	// applied tasks are not applied again
	assert.Equal(t, 0, ld.Apply())
}

func TestLoadNotImage(t *testing.T) {
	ld := testLoader(t)
	ow := NewOwner(context.Background())
	defer ow.Close()

	called := false
	tk := ld.Load(ow, "notes", "notes.txt", func(tx xyz.Texture) { called = true })
	assert.ErrorIs(t, wait(t, tk), ErrNotImage)
	assert.Equal(t, 0, ld.Apply())
	assert.Equal(t, Failed, tk.State())
	assert.False(t, called)
}

func TestLoadMissing(t *testing.T) {
	ld := testLoader(t)
	ow := NewOwner(context.Background())
	defer ow.Close()

	tk := ld.Load(ow, "moon", "moon.png", nil)
	assert.Error(t, wait(t, tk))
	assert.Equal(t, 0, ld.Apply())
	assert.Equal(t, Failed, tk.State())
}

func TestOwnerClosed(t *testing.T) {
	ld := testLoader(t)
	ow := NewOwner(context.Background())
	assert.True(t, ow.Alive())

	called := false
	tk := ld.Load(ow, "earth", "earth.png", func(tx xyz.Texture) { called = true })
	wait(t, tk)
	ow.Close()
	ow.Close()
	assert.False(t, ow.Alive())

	assert.Equal(t, 0, ld.Apply())
	assert.Equal(t, Dropped, tk.State())
	assert.False(t, called)
}

func TestOwnerClosedBeforeFetch(t *testing.T) {
	ld := testLoader(t)
	ow := NewOwner(context.Background())
	ow.Close()

	tk := ld.Load(ow, "earth", "earth.png", nil)
	wait(t, tk)
	ld.Apply()
	assert.Equal(t, Dropped, tk.State())
}

func TestLoadHTTP(t *testing.T) {
	data := testPNG(t, 16, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clouds.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	ld := NewLoader(xyz.NewScene())
	ld.Client = srv.Client()
	ow := NewOwner(context.Background())
	defer ow.Close()

	var got xyz.Texture
	ok := ld.Load(ow, "clouds", srv.URL+"/clouds.png", func(tx xyz.Texture) { got = tx })
	missing := ld.Load(ow, "water", srv.URL+"/water.png", nil)
	require.NoError(t, wait(t, ok))
	assert.Error(t, wait(t, missing))

	assert.Equal(t, 1, ld.Apply())
	assert.Equal(t, Applied, ok.State())
	assert.Equal(t, Failed, missing.State())
	require.NotNil(t, got)
	assert.Equal(t, image.Pt(16, 16), got.AsTextureBase().RGBA.Bounds().Size())
}

func TestFit(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 400, 100))
	assert.Equal(t, image.Pt(200, 50), Fit(wide, 200).Bounds().Size())

	tall := image.NewRGBA(image.Rect(0, 0, 100, 400))
	assert.Equal(t, image.Pt(50, 200), Fit(tall, 200).Bounds().Size())

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.Same(t, small, Fit(small, 200))
	assert.Same(t, wide, Fit(wide, 0))
}
