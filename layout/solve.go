// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Solve resolves the rectangles of all items reachable from the
// root. Sizes are computed bottom-up, then positions top-down; the
// root is placed at its left and top margins.
//
// An error leaves the rectangles unspecified.
func (a *Arena) Solve() error {
	if err := a.computeSize(0); err != nil {
		return err
	}
	root := &a.items[0]
	root.Rect.X = root.Margins[EdgeLeft]
	root.Rect.Y = root.Margins[EdgeTop]
	return a.arrange(0)
}
