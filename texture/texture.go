// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture loads texture images in the background and hands
// them to materials on the caller's own thread.
//
// Every load is a [Task] that belongs to an [Owner]. Fetching and
// decoding happen in goroutines, but results are only applied when
// the owner of the scene calls [Loader.Apply], typically once per frame.
// Completions for owners that have been closed are dropped, so a load
// that finishes after its nodes were torn down never touches them.
// A load that fails leaves the material with its base color.
package texture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/internal/defaults"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrNotImage is returned for payloads that are not a known image format.
	ErrNotImage = errors.New("texture: not an image")

	// ErrCanceled is returned for tasks whose owner was closed
	// before they completed.
	ErrCanceled = errors.New("texture: canceled")
)

// Loader fetches texture images for one scene. Sources that start with
// http:// or https:// are fetched with Client; all others are opened from
// FS when it is set, or from the file system otherwise.
type Loader struct {

	// Scene is the scene that applied textures are registered on.
	Scene *xyz.Scene

	// FS, if set, is used to open sources that are not URLs.
	FS fs.FS

	// Client is the HTTP client used for URL sources.
	Client *http.Client

	// MaxSize is the maximum width or height of a texture; larger
	// images are scaled down preserving their aspect ratio.
	MaxSize int `default:"2048"`

	// MaxBytes is the maximum accepted size of an encoded image.
	MaxBytes int64 `default:"67108864"`

	// Parallel is the maximum number of concurrent fetches.
	Parallel int64 `default:"4"`

	sem   *semaphore.Weighted
	mu    sync.Mutex
	tasks []*Task
}

// NewLoader returns a new loader for the given scene, with default settings.
func NewLoader(sc *xyz.Scene) *Loader {
	ld := &Loader{}
	defaults.SetTags(ld)
	ld.Scene = sc
	ld.Client = http.DefaultClient
	return ld
}

// Load starts loading the image at src in the background. When the load
// completes and [Loader.Apply] is called while ow is still alive, the image
// is registered on the scene as a texture with the given name and passed
// to apply.
func (ld *Loader) Load(ow *Owner, name, src string, apply func(tx xyz.Texture)) *Task {
	tk := &Task{Name: name, Source: src, owner: ow, apply: apply, done: make(chan struct{})}
	ld.mu.Lock()
	if ld.sem == nil {
		ld.sem = semaphore.NewWeighted(max(ld.Parallel, 1))
	}
	ld.tasks = append(ld.tasks, tk)
	ld.mu.Unlock()
	go ld.run(tk)
	return tk
}

func (ld *Loader) run(tk *Task) {
	defer close(tk.done)
	ctx := tk.owner.ctx
	if err := ld.sem.Acquire(ctx, 1); err != nil {
		tk.err = ErrCanceled
		return
	}
	defer ld.sem.Release(1)
	img, err := ld.fetch(ctx, tk.Source)
	if err != nil {
		if ctx.Err() != nil {
			err = ErrCanceled
		}
		tk.err = err
		return
	}
	tk.img = img
	slog.Debug("texture: loaded", "name", tk.Name, "size", img.Bounds().Size())
}

// Pending returns the number of tasks that have not been applied or dropped yet.
func (ld *Loader) Pending() int {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return len(ld.tasks)
}

// Apply applies all completed tasks and returns the number of textures
// applied. It must be called from the thread that owns the scene.
// Tasks whose owner has been closed are dropped; failed tasks are logged
// and their materials keep their base color.
func (ld *Loader) Apply() int {
	ld.mu.Lock()
	var ready []*Task
	keep := ld.tasks[:0]
	for _, tk := range ld.tasks {
		select {
		case <-tk.done:
			ready = append(ready, tk)
		default:
			keep = append(keep, tk)
		}
	}
	clear(ld.tasks[len(keep):])
	ld.tasks = keep
	ld.mu.Unlock()

	n := 0
	for _, tk := range ready {
		switch {
		case !tk.owner.Alive() || errors.Is(tk.err, ErrCanceled):
			tk.state.Store(int32(Dropped))
		case tk.err != nil:
			tk.state.Store(int32(Failed))
			slog.Warn("texture: load failed", "name", tk.Name, "source", tk.Source, "err", tk.err)
		default:
			tx := &xyz.TextureBase{Name: tk.Name, RGBA: tk.img, Transparent: !tk.img.Opaque()}
			ld.Scene.SetTexture(tx)
			if tk.apply != nil {
				tk.apply(tx)
			}
			tk.state.Store(int32(Applied))
			n++
		}
	}
	return n
}

func (ld *Loader) open(ctx context.Context, src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, err
		}
		client := ld.Client
		if client == nil {
			client = http.DefaultClient
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("texture: %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}
	if ld.FS != nil {
		return ld.FS.Open(src)
	}
	return os.Open(src)
}

// fetch opens, sniffs, decodes and downscales the image at src.
func (ld *Loader) fetch(ctx context.Context, src string) (*image.RGBA, error) {
	rc, err := ld.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	limit := ld.MaxBytes
	if limit <= 0 {
		limit = 1 << 26
	}
	data, err := io.ReadAll(io.LimitReader(rc, limit))
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(data) {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, src)
	}
	img, _, err := imagex.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decoding %s: %w", src, err)
	}
	return Fit(img, ld.MaxSize), nil
}

// Fit returns img as an RGBA image whose width and height are at most
// maxSize, scaling it down while preserving its aspect ratio.
// A maxSize of 0 or less means no limit.
func Fit(img image.Image, maxSize int) *image.RGBA {
	sz := img.Bounds().Size()
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return imagex.AsRGBA(img)
	}
	w, h := maxSize, maxSize
	if sz.X >= sz.Y {
		h = max(1, sz.Y*maxSize/sz.X)
	} else {
		w = max(1, sz.X*maxSize/sz.Y)
	}
	return transform.Resize(img, w, h, transform.Linear)
}
