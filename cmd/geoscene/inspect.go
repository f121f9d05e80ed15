// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/geoscene/kit"
	"cogentcore.org/geoscene/lesson"
	"cogentcore.org/geoscene/meta"
	"github.com/muesli/termenv"
)

// Inspect builds the lesson without a window, without loading textures,
// and prints its node tree with the render hints of each solid.
func Inspect(c *Config) error {
	l, err := setup(c)
	if err != nil {
		return err
	}
	return inspect(os.Stdout, termenv.NewOutput(os.Stdout), c, l)
}

func inspect(w io.Writer, out *termenv.Output, c *Config, l *lesson.Lesson) error {
	sc := xyz.NewScene()
	k := newKit(c, l, sc)
	k.NoTextures = true
	defer k.Close()
	rs := lesson.Build(k, sc, l)
	defer rs.Close()

	title := l.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintln(w, out.String(title).Bold())
	printTree(w, out, k, sc, 0)
	printOrder(w, out, k, sc)
	return nil
}

// printOrder prints the names of the solids that have an explicit
// draw order, in drawing sequence.
func printOrder(w io.Writer, out *termenv.Output, k *kit.Kit, sc *xyz.Scene) {
	var sl []*xyz.Solid
	sc.WalkDown(func(n tree.Node) bool {
		if sld, ok := n.(*xyz.Solid); ok {
			if h, ok := k.Meta.Hints(sld); ok && h.Order != 0 {
				sl = append(sl, sld)
			}
		}
		return tree.Continue
	})
	if len(sl) == 0 {
		return
	}
	k.Meta.SortByOrder(sl)
	names := make([]string, len(sl))
	for i, sld := range sl {
		names[i] = sld.AsTree().Name
	}
	fmt.Fprintf(w, "%s %s\n", out.String("draw order:").Faint(), strings.Join(names, " "))
}

// printTree prints the children of n, indented by depth.
func printTree(w io.Writer, out *termenv.Output, k *kit.Kit, n tree.Node, depth int) {
	nb := n.AsTree()
	for i := range nb.NumChildren() {
		kid := nb.Child(i)
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(out, k, kid))
		printTree(w, out, k, kid, depth+1)
	}
}

// describe returns a one line description of a node.
func describe(out *termenv.Output, k *kit.Kit, n tree.Node) string {
	name := n.AsTree().Name
	sld, ok := n.(*xyz.Solid)
	if !ok {
		return out.String(name).Foreground(out.Color("4")).String() + " group"
	}
	var b strings.Builder
	b.WriteString(out.String(name).Foreground(out.Color("2")).String())
	if sld.Mesh != nil {
		fmt.Fprintf(&b, " mesh=%s", sld.Mesh.AsMeshBase().Name)
	}
	h, ok := k.Meta.Hints(sld)
	if !ok {
		return b.String()
	}
	if h.Order != 0 {
		fmt.Fprintf(&b, " order=%d", h.Order)
	}
	if h.Side != meta.FrontSide {
		fmt.Fprintf(&b, " side=%s", h.Side)
	}
	if h.NoDepthWrite {
		b.WriteString(" no-depth-write")
	}
	if h.Unlit {
		b.WriteString(" unlit")
	}
	if h.Billboard {
		b.WriteString(out.String(" billboard").Faint().String())
	}
	for _, rn := range k.Meta.RefNames(sld) {
		fmt.Fprintf(&b, " %s->%s", rn, k.Meta.Ref(sld, rn).AsTree().Name)
	}
	return b.String()
}
