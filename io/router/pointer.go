// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"image"

	"github.com/ouigo/oui/layout"
)

// Hit returns the innermost item under p, or -1 if p is outside the
// root. Children are tested in declaration order and the first child
// whose subtree contains p wins. Frozen subtrees are skipped. The
// layout must be solved.
func Hit(a *layout.Arena, p image.Point) int {
	return hit(a, 0, p)
}

func hit(a *layout.Arena, item int, p image.Point) int {
	it := a.At(item)
	if it.Frozen || !it.Rect.Contains(p) {
		return -1
	}
	for k := it.FirstKid(); k >= 0; k = a.At(k).Next() {
		if h := hit(a, k, p); h >= 0 {
			return h
		}
	}
	return item
}
