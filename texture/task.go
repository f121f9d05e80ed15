// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"context"
	"image"
	"sync/atomic"

	"cogentcore.org/core/xyz"
)

// States are the states of a [Task].
type States int32

const (
	// Pending is a task that is still loading, or that has completed
	// but has not been seen by [Loader.Apply] yet.
	Pending States = iota

	// Applied is a task whose texture was set on its material.
	Applied

	// Failed is a task whose load failed.
	Failed

	// Dropped is a task whose owner was closed before it was applied.
	Dropped
)

func (s States) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Applied:
		return "Applied"
	case Failed:
		return "Failed"
	case Dropped:
		return "Dropped"
	}
	return "Unknown"
}

// Owner groups the tasks that belong to one set of nodes, typically one
// body or one stage. Closing the owner cancels its outstanding loads and
// marks it dead, so that their results are dropped.
type Owner struct {
	ctx    context.Context
	cancel context.CancelFunc
	dead   atomic.Bool
}

// NewOwner returns a new live owner whose loads are also canceled
// when ctx is done.
func NewOwner(ctx context.Context) *Owner {
	ow := &Owner{}
	ow.ctx, ow.cancel = context.WithCancel(ctx)
	return ow
}

// Context returns the context of the owner, which is done once it is closed.
func (ow *Owner) Context() context.Context {
	return ow.ctx
}

// Close cancels all outstanding loads and marks the owner dead.
// It is safe to call more than once.
func (ow *Owner) Close() {
	ow.dead.Store(true)
	ow.cancel()
}

// Alive returns whether the owner has not been closed
// and its context is not done.
func (ow *Owner) Alive() bool {
	return !ow.dead.Load() && ow.ctx.Err() == nil
}

// Task is one texture load.
type Task struct {

	// Name is the texture name on the scene.
	Name string

	// Source is the URL or path the image is loaded from.
	Source string

	owner *Owner
	apply func(tx xyz.Texture)
	done  chan struct{}
	img   *image.RGBA
	err   error
	state atomic.Int32
}

// State returns the current state of the task.
func (tk *Task) State() States {
	return States(tk.state.Load())
}

// Wait blocks until the load has completed, successfully or not,
// or ctx is done. It returns the load error, if any. The result is
// not applied until [Loader.Apply] is called.
func (tk *Task) Wait(ctx context.Context) error {
	select {
	case <-tk.done:
		return tk.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
