// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"

	"github.com/ouigo/oui/io/pointer"
)

// SetButton sets the buttons in b as pressed or released. Button
// state is sampled by Process; only ButtonPrimary drives the
// interaction state.
func (c *Context) SetButton(b pointer.Buttons, pressed bool) {
	if pressed {
		c.buttons |= b
	} else {
		c.buttons &^= b
	}
}

// Button reports whether all buttons in b are pressed.
func (c *Context) Button(b pointer.Buttons) bool {
	return c.buttons.Contain(b)
}

// ButtonPressed reports whether all buttons in b went down since
// the previous Process.
func (c *Context) ButtonPressed(b pointer.Buttons) bool {
	return c.buttons.Contain(b) && c.lastButtons&b == 0
}

// ButtonReleased reports whether all buttons in b went up since the
// previous Process.
func (c *Context) ButtonReleased(b pointer.Buttons) bool {
	return c.lastButtons.Contain(b) && c.buttons&b == 0
}

// SetCursor sets the cursor position in screen coordinates.
func (c *Context) SetCursor(p image.Point) {
	c.cursor = p
}

// Cursor returns the cursor position.
func (c *Context) Cursor() image.Point {
	return c.cursor
}

// CursorDelta returns the cursor movement since the previous
// Process.
func (c *Context) CursorDelta() image.Point {
	return c.cursor.Sub(c.lastCursor)
}

// CursorStartDelta returns the cursor movement since the most recent
// press.
func (c *Context) CursorStartDelta() image.Point {
	return c.cursor.Sub(c.startCursor)
}
