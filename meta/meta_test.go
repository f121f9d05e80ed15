// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meta

import (
	"testing"

	"cogentcore.org/core/xyz"
	"github.com/stretchr/testify/assert"
)

func TestHints(t *testing.T) {
	sc := xyz.NewScene()
	a := xyz.NewSolid(sc)
	tb := NewTable()
	_, ok := tb.Hints(a)
	assert.False(t, ok)
	tb.SetHints(a, Hints{Order: 8, NoDepthWrite: true, Side: BackSide})
	h, ok := tb.Hints(a)
	assert.True(t, ok)
	assert.Equal(t, 8, h.Order)
	assert.True(t, h.NoDepthWrite)
	assert.Equal(t, BackSide, h.Side)
}

func TestRefs(t *testing.T) {
	sc := xyz.NewScene()
	earth := xyz.NewSolid(sc)
	clouds := xyz.NewSolid(sc)
	tb := NewTable()
	assert.Nil(t, tb.Ref(earth, "clouds"))

	tb.SetRef(earth, "clouds", clouds)
	assert.Same(t, clouds, tb.Ref(earth, "clouds"))
	assert.Equal(t, []string{"clouds"}, tb.RefNames(earth))
	assert.Nil(t, tb.Ref(clouds, "clouds"))

	// the reference does not make clouds a child of earth
	assert.Equal(t, 0, earth.NumChildren())

	tb.SetRef(earth, "clouds", nil)
	assert.Nil(t, tb.Ref(earth, "clouds"))
	assert.Empty(t, tb.RefNames(earth))
}

func TestSortByOrder(t *testing.T) {
	sc := xyz.NewScene()
	earth := xyz.NewSolid(sc)
	inner := xyz.NewSolid(sc)
	outer := xyz.NewSolid(sc)
	clouds := xyz.NewSolid(sc)
	plain := xyz.NewSolid(sc)
	tb := NewTable()
	tb.SetHints(earth, Hints{Order: 10})
	tb.SetHints(inner, Hints{Order: 8})
	tb.SetHints(outer, Hints{Order: 7})
	tb.SetHints(clouds, Hints{Order: 11})

	solids := []*xyz.Solid{clouds, earth, plain, inner, outer}
	tb.SortByOrder(solids)
	assert.Equal(t, []*xyz.Solid{plain, outer, inner, earth, clouds}, solids)
}
