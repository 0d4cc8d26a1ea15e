// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ouigo/oui/ui"
	"github.com/ouigo/oui/widget"
)

// face is the font of all labels.
var face font.Face = basicfont.Face7x13

const (
	// padding is the horizontal space between the edge of a
	// control and its label.
	padding = 6
	// checkSize is the size of the box of a check box.
	checkSize = 11
)

// palette holds the colors of the controls. Inner colors are indexed
// by ui.State; frozen controls draw their text dimmed.
type palette struct {
	background color.Color
	panel      color.Color
	border     color.Color
	text       color.Color
	dimmed     color.Color
	selected   color.Color
	inner      [ui.Frozen + 1]color.Color
}

var theme = newPalette(colornames.Darkslategray, colornames.Lightgray, colornames.Steelblue)

// newPalette derives the colors of the controls from a base, a
// control and an accent color.
func newPalette(base, control, accent color.RGBA) palette {
	b, _ := colorful.MakeColor(base)
	c, _ := colorful.MakeColor(control)
	a, _ := colorful.MakeColor(accent)
	white := colorful.Color{R: 1, G: 1, B: 1}
	return palette{
		background: b,
		panel:      b.BlendLab(white, .25),
		border:     b.BlendLab(colorful.Color{}, .5),
		text:       colornames.Black,
		dimmed:     c.BlendLab(colorful.Color{}, .4),
		selected:   a,
		inner: [...]color.Color{
			ui.Cold:   c,
			ui.Hot:    c.BlendLab(white, .5),
			ui.Active: c.BlendLab(a, .5),
			ui.Frozen: c.BlendLab(b, .5),
		},
	}
}

type renderer struct {
	ctx *ui.Context
	img *image.RGBA
	// fg is the text color of the current control.
	fg color.Color
}

// render draws the items of the processed ctx.
func render(ctx *ui.Context, size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(theme.background), image.Point{}, draw.Src)
	r := &renderer{ctx: ctx, img: img}
	r.item(0)
	return img
}

// item draws i and its subtree, parents first.
func (r *renderer) item(i int) {
	if h, ok := widget.Lookup(r.ctx, i); ok {
		r.control(i, h)
	}
	for k := r.ctx.FirstChild(i); k >= 0; k = r.ctx.NextSibling(k) {
		r.item(k)
	}
}

func (r *renderer) control(i int, h widget.Header) {
	b := r.ctx.Rect(i).Bounds()
	if b.Empty() {
		return
	}
	state := r.ctx.State(i)
	inner := theme.inner[state]
	r.fg = theme.text
	if state == ui.Frozen {
		r.fg = theme.dimmed
	}
	corners := widget.SharpCorners(r.ctx, i)
	switch h.Kind {
	case widget.KindPanel:
		r.box(b, widget.CornersAll, theme.panel)
	case widget.KindLabel:
		r.label(b, h.Label, false)
	case widget.KindButton:
		r.box(b, corners, inner)
		r.label(b, h.Label, true)
	case widget.KindRadio:
		if h.Checked {
			inner = theme.selected
		}
		r.box(b, corners, inner)
		r.label(b, h.Label, true)
	case widget.KindCheck:
		if h.Checked {
			inner = theme.selected
		}
		y := b.Min.Y + (b.Dy()-checkSize)/2
		box := image.Rect(b.Min.X+padding, y, b.Min.X+padding+checkSize, y+checkSize)
		r.box(box, widget.CornersNone, inner)
		b.Min.X = box.Max.X
		r.label(b, h.Label, false)
	case widget.KindSlider:
		r.box(b, corners, inner)
		bar := b.Inset(1)
		bar.Max.X = bar.Min.X + int(float32(bar.Dx())*h.Value)
		draw.Draw(r.img, bar, image.NewUniform(theme.selected), image.Point{}, draw.Over)
		r.label(b, h.Label, false)
		value := fmt.Sprintf("%.0f%%", h.Value*100)
		vb := b
		vb.Min.X = vb.Max.X - font.MeasureString(face, value).Ceil() - 2*padding
		r.label(vb, value, false)
	}
}

// box fills b and outlines it. Corners not in sharp are rounded off.
func (r *renderer) box(b image.Rectangle, sharp widget.Corners, fill color.Color) {
	corners := [...]struct {
		c widget.Corners
		p image.Point
	}{
		{widget.CornerTopLeft, b.Min},
		{widget.CornerTopRight, image.Pt(b.Max.X-1, b.Min.Y)},
		{widget.CornerDownRight, b.Max.Sub(image.Pt(1, 1))},
		{widget.CornerDownLeft, image.Pt(b.Min.X, b.Max.Y-1)},
	}
	var under [len(corners)]color.RGBA
	for i, c := range corners {
		under[i] = r.img.RGBAAt(c.p.X, c.p.Y)
	}
	draw.Draw(r.img, b, image.NewUniform(theme.border), image.Point{}, draw.Src)
	draw.Draw(r.img, b.Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)
	for i, c := range corners {
		if sharp&c.c == 0 {
			r.img.SetRGBA(c.p.X, c.p.Y, under[i])
		}
	}
}

// label draws text vertically centered in b, clipped to b.
func (r *renderer) label(b image.Rectangle, text string, center bool) {
	if text == "" {
		return
	}
	dst, ok := r.img.SubImage(b).(*image.RGBA)
	if !ok {
		return
	}
	m := face.Metrics()
	x := b.Min.X + padding
	if center {
		x = b.Min.X + (b.Dx()-font.MeasureString(face, text).Ceil())/2
	}
	y := b.Min.Y + (b.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.fg),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
