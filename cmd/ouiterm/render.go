// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ouigo/oui/layout"
	"github.com/ouigo/oui/ui"
	"github.com/ouigo/oui/widget"
)

var (
	panelStyle    = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Background(tcell.ColorSteelBlue).Foreground(tcell.ColorWhite)
	statusStyle   = tcell.StyleDefault.Reverse(true)
	dimmedStyle   = panelStyle.Foreground(tcell.ColorGray)
	// controlStyles are indexed by ui.State.
	controlStyles = [...]tcell.Style{
		ui.Cold:   tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack),
		ui.Hot:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		ui.Active: tcell.StyleDefault.Background(tcell.ColorLightSteelBlue).Foreground(tcell.ColorBlack),
		ui.Frozen: tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack),
	}
)

type renderer struct {
	screen tcell.Screen
	ctx    *ui.Context
}

// cells converts a layout rectangle to the cells it mostly covers.
// Non-empty rectangles cover at least one cell.
func cells(r layout.Rect) image.Rectangle {
	snap := func(v, unit int) int {
		return (v + unit/2) / unit
	}
	c := image.Rect(snap(r.X, cellW), snap(r.Y, cellH), snap(r.X+r.W, cellW), snap(r.Y+r.H, cellH))
	if r.W > 0 && c.Dx() == 0 {
		c.Max.X++
	}
	if r.H > 0 && c.Dy() == 0 {
		c.Max.Y++
	}
	return c
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
	c := cells(r.ctx.Rect(i))
	if c.Empty() {
		return
	}
	state := r.ctx.State(i)
	style := controlStyles[state]
	text := panelStyle
	if state == ui.Frozen {
		text = dimmedStyle
	}
	switch h.Kind {
	case widget.KindPanel:
		r.fill(c, panelStyle)
	case widget.KindLabel:
		r.text(c.Min.X, c.Min.Y, c.Max.X, h.Label, text)
	case widget.KindButton:
		r.fill(c, style)
		r.centered(c, h.Label, style)
	case widget.KindRadio:
		if h.Checked {
			style = selectedStyle
		}
		r.fill(c, style)
		label := h.Label
		if label == "" {
			label = "◇"
			if h.Checked {
				label = "◆"
			}
		}
		r.centered(c, label, style)
	case widget.KindCheck:
		box := "[ ] "
		if h.Checked {
			box = "[x] "
		}
		r.fill(c, panelStyle)
		x := r.text(c.Min.X, c.Min.Y, c.Max.X, box, style)
		r.text(x, c.Min.Y, c.Max.X, h.Label, text)
	case widget.KindSlider:
		r.fill(c, style)
		bar := c
		bar.Max.X = bar.Min.X + int(float32(c.Dx())*h.Value+.5)
		r.fill(bar, selectedStyle)
		value := fmt.Sprintf("%.0f%%", h.Value*100)
		r.text(c.Min.X+1, c.Min.Y, c.Max.X, h.Label, style)
		r.text(c.Max.X-runewidth.StringWidth(value)-1, c.Min.Y, c.Max.X, value, style)
	}
}

func (r *renderer) fill(c image.Rectangle, style tcell.Style) {
	for y := c.Min.Y; y < c.Max.Y; y++ {
		for x := c.Min.X; x < c.Max.X; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// centered draws s centered on the first row of c.
func (r *renderer) centered(c image.Rectangle, s string, style tcell.Style) {
	x := c.Min.X + (c.Dx()-runewidth.StringWidth(s))/2
	if x < c.Min.X {
		x = c.Min.X
	}
	r.text(x, c.Min.Y, c.Max.X, s, style)
}

// text draws s from column x up to column maxX and returns the
// column after the last drawn rune.
func (r *renderer) text(x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}
