// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/ui"
)

// Float is the state of a slider selecting a value in [0, 1].
type Float struct {
	Value float32

	handle  uint64
	start   float32 // Value at the most recent press
	changed bool
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (f *Float) Changed() bool {
	changed := f.changed
	f.changed = false
	return changed
}

// Layout declares the slider. Dragging the slider by its full width
// changes Value by 1.
func (f *Float) Layout(ctx *ui.Context, label string) (int, error) {
	item, err := newItem(ctx, 0, Header{Kind: KindSlider, Label: label, Value: f.Value})
	if err != nil {
		return -1, err
	}
	ctx.SetHandle(item, handleOf(&f.handle))
	ctx.SetHandler(item, pointer.HandlerFunc(func(e pointer.Event) {
		switch e.Kind {
		case pointer.ButtonDown:
			f.start = f.Value
		case pointer.Capture:
			w := e.Bounds.Dx()
			if w <= 0 {
				return
			}
			v := f.start + float32(e.Delta().X)/float32(w)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			if v != f.Value {
				f.Value = v
				f.changed = true
			}
			restate(ctx.Data(e.Item), false, f.Value)
		}
	}), pointer.ButtonDown|pointer.Capture)
	return item, nil
}
