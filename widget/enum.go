// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/ui"
)

// Enum is the state of a group of radio buttons. Each button is
// identified by a key; Value is the key of the selected button.
type Enum struct {
	Value int

	handles map[int]uint64
	keys    map[uint64]int
	changed bool
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (e *Enum) Changed() bool {
	changed := e.changed
	e.changed = false
	return changed
}

// Layout declares the radio button for key. A button without a label
// is ToolWidth wide. Pressing the button selects key.
func (e *Enum) Layout(ctx *ui.Context, key int, label string) (int, error) {
	w := 0
	if label == "" {
		w = ToolWidth
	}
	item, err := newItem(ctx, w, Header{Kind: KindRadio, Label: label, Checked: e.Value == key})
	if err != nil {
		return -1, err
	}
	ctx.SetHandle(item, e.handle(key))
	ctx.SetHandler(item, pointer.HandlerFunc(func(ev pointer.Event) {
		if e.Value != key {
			e.Value = key
			e.changed = true
		}
		e.restate(ctx, ev.Item)
	}), pointer.ButtonDown)
	return item, nil
}

func (e *Enum) handle(key int) uint64 {
	if e.handles == nil {
		e.handles = make(map[int]uint64)
		e.keys = make(map[uint64]int)
	}
	h, ok := e.handles[key]
	if !ok {
		h = lastHandle.Add(1)
		e.handles[key] = h
		e.keys[h] = key
	}
	return h
}

// restate updates the selection of the buttons of the group that
// are siblings of item.
func (e *Enum) restate(ctx *ui.Context, item int) {
	parent := ctx.Parent(item)
	if parent < 0 {
		restate(ctx.Data(item), true, 0)
		return
	}
	for k := ctx.FirstChild(parent); k >= 0; k = ctx.NextSibling(k) {
		if key, ok := e.keys[ctx.Handle(k)]; ok {
			restate(ctx.Data(k), key == e.Value, 0)
		}
	}
}
