// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"

	"github.com/ouigo/oui/internal/demo"
	"github.com/ouigo/oui/ui"
	"github.com/ouigo/oui/widget"
)

// rectColumn is the column of the rectangles in a dump.
const rectColumn = 36

// dump lays out the demo in a window of the given size and writes
// one line per item, indented by depth, styled for out. The roots of
// frozen subtrees are marked.
func dump(w io.Writer, out *termenv.Output, size image.Point) error {
	ctx := ui.NewContext()
	ctx.SetSize(0, size.X, size.Y)
	if err := demo.New().Layout(ctx, fit); err != nil {
		return err
	}
	if err := ctx.Process(); err != nil {
		return err
	}
	d := &dumper{w: w, out: out, ctx: ctx}
	d.item(0, 0)
	return d.err
}

type dumper struct {
	w   io.Writer
	out *termenv.Output
	ctx *ui.Context
	err error
}

func (d *dumper) item(i, depth int) {
	if d.err != nil {
		return
	}
	var line strings.Builder
	line.WriteString(strings.Repeat("  ", depth))
	kind := d.out.String("Window").Foreground(d.out.Color("8"))
	if h, ok := widget.Lookup(d.ctx, i); ok {
		kind = d.out.String(h.Kind.String()).Foreground(d.out.Color("#4682b4")).Bold()
		line.WriteString(kind.String())
		if h.Label != "" {
			fmt.Fprintf(&line, " %q", h.Label)
		}
	} else {
		line.WriteString(kind.String())
	}
	if pad := rectColumn - ansi.PrintableRuneWidth(line.String()); pad > 0 {
		line.WriteString(strings.Repeat(" ", pad))
	}
	line.WriteString(" ")
	line.WriteString(d.ctx.Rect(i).String())
	if n := d.ctx.ChildCount(i); n > 0 {
		fmt.Fprintf(&line, " %s", d.out.String(fmt.Sprintf("%d kids", n)).Faint())
	}
	if d.ctx.IsFrozen(i) && !d.ctx.IsFrozen(d.ctx.Parent(i)) {
		fmt.Fprintf(&line, " %s", d.out.String("frozen").Italic())
	}
	if _, d.err = fmt.Fprintln(d.w, line.String()); d.err != nil {
		return
	}
	for k := d.ctx.FirstChild(i); k >= 0; k = d.ctx.NextSibling(k) {
		d.item(k, depth+1)
	}
}
