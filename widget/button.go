// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/ui"
)

// Clickable is the state of a push button.
type Clickable struct {
	handle uint64
	clicks int
}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (b *Clickable) Clicked() bool {
	if b.clicks == 0 {
		return false
	}
	b.clicks--
	return true
}

// Layout declares the button. A click is the release of the primary
// button over the button after it was pressed there.
func (b *Clickable) Layout(ctx *ui.Context, label string) (int, error) {
	item, err := newItem(ctx, 0, Header{Kind: KindButton, Label: label})
	if err != nil {
		return -1, err
	}
	ctx.SetHandle(item, handleOf(&b.handle))
	ctx.SetHandler(item, pointer.HandlerFunc(func(pointer.Event) {
		b.clicks++
	}), pointer.HotUp)
	return item, nil
}
