// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/geoscene/lesson"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// Watch inspects the lesson, and inspects it again every time the
// lesson file changes, until interrupted.
func Watch(c *Config) error {
	if c.Lesson == "" {
		return errors.New("geoscene: watch needs a lesson file")
	}
	if _, err := setup(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	out := termenv.NewOutput(os.Stdout)
	return watch(ctx, c.Lesson, func() {
		out.ClearScreen()
		l, err := lesson.Open(c.Lesson)
		if err != nil {
			slog.Error("geoscene: lesson", "err", err)
			return
		}
		if err := inspect(os.Stdout, out, c, l); err != nil {
			slog.Error("geoscene: inspect", "err", err)
		}
	})
}

// watch calls fun once, and then whenever the file at path is written
// or replaced, until ctx is done. The directory is watched rather than
// the file, since editors often save by replacing the file.
func watch(ctx context.Context, path string, fun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	fun()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("geoscene: lesson changed", "op", event.Op)
				fun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("geoscene: watcher", "err", err)
		}
	}
}
