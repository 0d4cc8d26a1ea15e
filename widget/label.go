// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/ouigo/oui/ui"

// Label declares a non-interactive text label.
func Label(ctx *ui.Context, text string) (int, error) {
	return newItem(ctx, 0, Header{Kind: KindLabel, Label: text})
}
