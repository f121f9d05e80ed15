// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meta provides typed side tables that hold extra information
// about scene solids without storing it on the nodes themselves:
// render hints that the xyz material model does not express (draw order,
// depth writes, face side), and named back-references from one solid to
// another. All entries are keyed and referenced by weak pointers, so the
// table never keeps a node alive and never owns one.
package meta

import (
	"cmp"
	"slices"
	"sync"
	"weak"

	"cogentcore.org/core/xyz"
)

// Sides determines which faces of a surface are drawn.
type Sides int32

const (
	// FrontSide draws only front faces (the xyz default).
	FrontSide Sides = iota

	// BackSide draws only back faces, as for shells seen from the outside
	// that should only show their far half.
	BackSide

	// DoubleSide draws both faces.
	DoubleSide
)

func (s Sides) String() string {
	switch s {
	case FrontSide:
		return "front"
	case BackSide:
		return "back"
	case DoubleSide:
		return "double"
	}
	return "unknown"
}

// Hints are the render hints for one solid.
type Hints struct {

	// Order is the explicit draw order; higher values are drawn later,
	// on top of lower ones. Nested translucent shells rely on this
	// instead of depth sorting.
	Order int

	// NoDepthWrite excludes the surface from depth buffer writes,
	// so it never hides what is drawn after it.
	NoDepthWrite bool

	// Side is which faces are drawn.
	Side Sides

	// Unlit means the surface is shown in its own color,
	// independent of scene lighting.
	Unlit bool

	// Billboard marks a flat label that is turned to face the camera.
	Billboard bool
}

// Table holds the hints and back-references for the solids of one scene.
// It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	hints map[weak.Pointer[xyz.Solid]]Hints
	refs  map[weak.Pointer[xyz.Solid]]map[string]weak.Pointer[xyz.Solid]
}

// NewTable returns a new empty table.
func NewTable() *Table {
	return &Table{
		hints: make(map[weak.Pointer[xyz.Solid]]Hints),
		refs:  make(map[weak.Pointer[xyz.Solid]]map[string]weak.Pointer[xyz.Solid]),
	}
}

// SetHints records the render hints for the given solid.
func (tb *Table) SetHints(sld *xyz.Solid, h Hints) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.hints[weak.Make(sld)] = h
}

// Hints returns the render hints for the given solid,
// and whether any were recorded.
func (tb *Table) Hints(sld *xyz.Solid) (Hints, bool) {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	h, ok := tb.hints[weak.Make(sld)]
	return h, ok
}

// SetRef records a named, non-owning reference from owner to ref.
// A nil ref removes the name.
func (tb *Table) SetRef(owner *xyz.Solid, name string, ref *xyz.Solid) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	key := weak.Make(owner)
	if ref == nil {
		delete(tb.refs[key], name)
		if len(tb.refs[key]) == 0 {
			delete(tb.refs, key)
		}
		return
	}
	m := tb.refs[key]
	if m == nil {
		m = make(map[string]weak.Pointer[xyz.Solid])
		tb.refs[key] = m
	}
	m[name] = weak.Make(ref)
}

// Ref returns the solid referenced by owner under the given name,
// or nil if there is none or it has been garbage collected.
func (tb *Table) Ref(owner *xyz.Solid, name string) *xyz.Solid {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	wp, ok := tb.refs[weak.Make(owner)][name]
	if !ok {
		return nil
	}
	return wp.Value()
}

// RefNames returns the sorted names of the live references held by owner.
func (tb *Table) RefNames(owner *xyz.Solid) []string {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	var names []string
	for nm, wp := range tb.refs[weak.Make(owner)] {
		if wp.Value() != nil {
			names = append(names, nm)
		}
	}
	slices.Sort(names)
	return names
}

// Billboards returns the live solids that are marked as billboards,
// in no particular order.
func (tb *Table) Billboards() []*xyz.Solid {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	var sl []*xyz.Solid
	for k, h := range tb.hints {
		if !h.Billboard {
			continue
		}
		if sld := k.Value(); sld != nil {
			sl = append(sl, sld)
		}
	}
	return sl
}

// SortByOrder sorts the given solids into drawing sequence: ascending
// draw order, keeping the given order among equal values. Solids
// without hints have order 0. The xyz renderer sorts translucent
// solids by depth, so the sequence is descriptive only.
func (tb *Table) SortByOrder(solids []*xyz.Solid) {
	tb.mu.RLock()
	defer tb.mu.RUnlock()
	slices.SortStableFunc(solids, func(a, b *xyz.Solid) int {
		return cmp.Compare(tb.hints[weak.Make(a)].Order, tb.hints[weak.Make(b)].Order)
	})
}
