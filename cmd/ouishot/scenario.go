// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/ouigo/oui/internal/demo"
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/ui"
)

// scenario is a scripted sequence of input frames.
type scenario struct {
	name  string
	steps []step
}

// step is the input of a frame. The cursor is placed at the center
// of the item labelled target, moved by offset.
type step struct {
	target string
	offset image.Point
	down   bool
}

var allScenarios = []scenario{
	{name: "idle"},
	{name: "hover", steps: []step{{target: "Item 1"}}},
	{name: "press", steps: []step{{target: "Item 1"}, {target: "Item 1", down: true}}},
	{name: "click", steps: []step{{target: "Item 2"}, {target: "Item 2", down: true}, {target: "Item 2"}}},
	{name: "toggle", steps: []step{{target: "Item 7"}, {target: "Item 7", down: true}, {target: "Item 7"}}},
	{name: "select", steps: []step{{target: "Item 3.3"}, {target: "Item 3.3", down: true}, {target: "Item 3.3"}}},
	{name: "frozen", steps: []step{{target: "Item 4.1.0"}}},
	{name: "drag", steps: []step{
		{target: "Frozen"},
		{target: "Frozen", down: true},
		{target: "Frozen"},
		{target: "Item 4.1.0"},
		{target: "Item 4.1.0", down: true},
		{target: "Item 4.1.0", offset: image.Pt(30, 0), down: true},
	}},
}

func scenarioNames() []string {
	var names []string
	for _, s := range allScenarios {
		names = append(names, s.name)
	}
	return names
}

func lookupScenario(name string) (scenario, bool) {
	for _, s := range allScenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

// fit measures labels in the font used by render.
func fit(label string) int {
	return font.MeasureString(face, label).Ceil() + 2*padding
}

// run plays the scenario against a fresh demo and renders the final
// frame. It returns the messages reported by the demo.
func (s scenario) run(size image.Point) (*image.RGBA, []string, error) {
	ctx := ui.NewContext()
	state := demo.New()
	var msgs []string
	frame := func(p image.Point, down bool) error {
		ctx.Clear()
		ctx.SetSize(0, size.X, size.Y)
		if err := state.Layout(ctx, fit); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		ctx.SetCursor(p)
		ctx.SetButton(pointer.ButtonPrimary, down)
		if err := ctx.Process(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		msgs = append(msgs, state.Update()...)
		return nil
	}
	// The first frame lays out the demo with the cursor outside the
	// window, so that steps can locate their targets.
	if err := frame(image.Pt(-1, -1), false); err != nil {
		return nil, nil, err
	}
	for _, st := range s.steps {
		item := demo.Find(ctx, st.target)
		if item < 0 {
			return nil, nil, fmt.Errorf("%s: no item labelled %q", s.name, st.target)
		}
		b := ctx.Rect(item).Bounds()
		p := b.Min.Add(b.Size().Div(2)).Add(st.offset)
		if err := frame(p, st.down); err != nil {
			return nil, nil, err
		}
	}
	return render(ctx, size), msgs, nil
}
