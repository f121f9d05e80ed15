// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package defaults resolves builder configuration structs: defaults
// first, then any non-zero values the caller supplied on top.
package defaults

import (
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/jinzhu/copier"
)

// Defaulter is implemented by configuration structs. Defaults sets every
// field to its default value; scalar defaults come from `default:` tags.
type Defaulter interface {
	Defaults()
}

// Resolve returns a new configuration holding the defaults of T overlaid
// with the non-zero fields of cfg. The caller's value is never modified,
// and a nil cfg yields the plain defaults, so a zero numeric field means
// "use the default". Slices and vectors replace the default as a whole.
// Non-nil pointer fields are taken from cfg as they are, so that
// handles such as scenes keep their identity and a pointer to a zero
// value overrides a non-zero default.
func Resolve[T any, PT interface {
	*T
	Defaulter
}](cfg *T) T {
	var out T
	PT(&out).Defaults()
	if cfg == nil {
		return out
	}
	errors.Log(copier.CopyWithOption(&out, cfg, copier.Option{IgnoreEmpty: true}))
	keepPointers(reflect.ValueOf(&out).Elem(), reflect.ValueOf(cfg).Elem())
	return out
}

// keepPointers sets the exported non-nil pointer fields of to from from.
// copier allocates and fills a new target for each pointer instead.
func keepPointers(to, from reflect.Value) {
	if to.Kind() != reflect.Struct {
		return
	}
	for i := range to.NumField() {
		f := from.Field(i)
		if !to.Type().Field(i).IsExported() || f.Kind() != reflect.Pointer || f.IsNil() {
			continue
		}
		to.Field(i).Set(f)
	}
}

// SetTags sets the fields of the given struct pointer from their
// `default:` struct tags, logging any error.
func SetTags(cfg any) {
	errors.Log(reflectx.SetFromDefaultTags(cfg))
}
