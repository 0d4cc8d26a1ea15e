// SPDX-License-Identifier: Unlicense OR MIT

// Package demo declares the demonstration user interface shared by
// the commands.
package demo

import (
	"fmt"

	"github.com/ouigo/oui/layout"
	"github.com/ouigo/oui/ui"
	"github.com/ouigo/oui/widget"
)

// Fit returns the width of a control showing label.
type Fit func(label string) int

// State is the persistent state of the demo.
type State struct {
	buttons  [5]widget.Clickable
	choice   widget.Enum
	progress [2]widget.Float
	options  [3]widget.Bool
}

var (
	buttonLabels   = [...]string{"Item 1", "Item 2", "Item 4.0.0", "Item 4.0.1", "Item 5"}
	choiceLabels   = [...]string{"Item 3.0", "", "", "Item 3.3"}
	progressLabels = [...]string{"Item 4.1.0", "Item 4.1.1"}
	optionLabels   = [...]string{"Frozen", "Item 7", "Item 8"}
)

const (
	// PanelWidth is the width of the demo panel.
	PanelWidth = 250
	// panelMargin is the distance of the panel from the top left
	// corner of the window.
	panelMargin = 10
	// padding is the space between the panel and its content.
	padding = 10
)

func New() *State {
	s := new(State)
	s.progress[0].Value = .25
	s.progress[1].Value = .75
	s.options[0].Value = true
	return s
}

// Layout declares the demo in the cleared ctx. Controls placed in
// rows are sized by fit; with a nil fit they are zero wide. Layout
// returns the first error of the frame.
func (s *State) Layout(ctx *ui.Context, fit Fit) error {
	panel, _ := widget.Panel(ctx)
	ctx.Insert(0, panel)
	ctx.SetLayout(panel, layout.Left|layout.Top)
	ctx.SetMargins(panel, panelMargin, panelMargin, 0, 0)
	ctx.SetSize(panel, PanelWidth, 0)

	col, _ := widget.Column(ctx)
	ctx.Insert(panel, col)
	ctx.SetMargins(col, padding, padding, padding, padding)
	ctx.SetLayout(col, layout.Top|layout.HFill)

	s.button(ctx, widget.ColumnAppend, col, 0)
	s.button(ctx, widget.ColumnAppend, col, 1)

	choices, _ := widget.HGroup(ctx)
	widget.ColumnAppend(ctx, col, choices)
	for key, l := range choiceLabels {
		item, _ := s.choice.Layout(ctx, key, l)
		fitLabel(ctx, item, l, fit)
		widget.HGroupAppend(ctx, choices, item)
	}

	rows, _ := widget.Row(ctx)
	widget.ColumnAppend(ctx, col, rows)
	left, _ := widget.VGroup(ctx)
	widget.RowAppend(ctx, rows, left)
	s.label(ctx, left, "Items 4.0:", fit)
	buttons, _ := widget.VGroup(ctx)
	widget.VGroupAppend(ctx, left, buttons)
	s.button(ctx, widget.VGroupAppend, buttons, 2)
	s.button(ctx, widget.VGroupAppend, buttons, 3)
	// The first check box freezes the right column.
	right, _ := widget.VGroup(ctx)
	widget.RowAppend(ctx, rows, right)
	ctx.SetFrozen(right, s.options[0].Value)
	s.label(ctx, right, "Items 4.1:", fit)
	sliders, _ := widget.VGroup(ctx)
	widget.VGroupAppend(ctx, right, sliders)
	for i := range s.progress {
		item, _ := s.progress[i].Layout(ctx, progressLabels[i])
		fitLabel(ctx, item, progressLabels[i], fit)
		widget.VGroupAppend(ctx, sliders, item)
	}

	s.button(ctx, widget.ColumnAppend, col, 4)
	for i := range s.options {
		item, _ := s.options[i].Layout(ctx, optionLabels[i])
		widget.ColumnAppend(ctx, col, item)
	}
	return ctx.Err()
}

// appendFunc adds an item to a container.
type appendFunc func(ctx *ui.Context, parent, item int) (int, error)

func (s *State) button(ctx *ui.Context, add appendFunc, parent, i int) {
	item, _ := s.buttons[i].Layout(ctx, buttonLabels[i])
	add(ctx, parent, item)
}

func (s *State) label(ctx *ui.Context, parent int, text string, fit Fit) {
	item, _ := widget.Label(ctx, text)
	fitLabel(ctx, item, text, fit)
	widget.VGroupAppend(ctx, parent, item)
}

// fitLabel sizes item to its label.
func fitLabel(ctx *ui.Context, item int, label string, fit Fit) {
	if fit == nil || label == "" || item < 0 {
		return
	}
	ctx.SetSize(item, fit(label), widget.Height)
}

// Update consumes the changes of the most recent frame and describes
// them.
func (s *State) Update() []string {
	var msgs []string
	for i := range s.buttons {
		for s.buttons[i].Clicked() {
			msgs = append(msgs, fmt.Sprintf("clicked: %s", buttonLabels[i]))
		}
	}
	if s.choice.Changed() {
		msgs = append(msgs, fmt.Sprintf("selected: %d", s.choice.Value))
	}
	for i := range s.progress {
		if s.progress[i].Changed() {
			msgs = append(msgs, fmt.Sprintf("%s: %.0f%%", progressLabels[i], s.progress[i].Value*100))
		}
	}
	for i := range s.options {
		if s.options[i].Changed() {
			msgs = append(msgs, fmt.Sprintf("%s: %v", optionLabels[i], s.options[i].Value))
		}
	}
	return msgs
}

// Find returns the first item labelled label, or -1.
func Find(ctx *ui.Context, label string) int {
	for i := 0; i < ctx.Len(); i++ {
		if h, ok := widget.Lookup(ctx, i); ok && h.Label == label {
			return i
		}
	}
	return -1
}
