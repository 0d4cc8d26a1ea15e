// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/ui"
)

// Bool is the state of a check box.
type Bool struct {
	Value bool

	handle  uint64
	changed bool
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (b *Bool) Changed() bool {
	changed := b.changed
	b.changed = false
	return changed
}

// Layout declares the check box. Pressing it toggles Value.
func (b *Bool) Layout(ctx *ui.Context, label string) (int, error) {
	item, err := newItem(ctx, 0, Header{Kind: KindCheck, Label: label, Checked: b.Value})
	if err != nil {
		return -1, err
	}
	ctx.SetHandle(item, handleOf(&b.handle))
	ctx.SetHandler(item, pointer.HandlerFunc(func(e pointer.Event) {
		b.Value = !b.Value
		b.changed = true
		restate(ctx.Data(e.Item), b.Value, 0)
	}), pointer.ButtonDown)
	return item, nil
}
