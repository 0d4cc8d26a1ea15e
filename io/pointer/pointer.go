// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer defines the button set and the events delivered to
interactive items.

An item subscribes to events by setting a Handler together with a
Kind mask. Events are produced once per frame by the interaction
state machine, after the layout is solved, so handlers may query the
rectangle of the item they are notified for.
*/
package pointer

import (
	"image"
	"strings"
)

// Event is a pointer event for a single item.
type Event struct {
	Kind Kind
	// Item is the index of the receiving item in the current frame.
	Item int
	// Handle is the application handle of the item.
	Handle uint64
	// Position is the cursor position when the event fired.
	Position image.Point
	// Start is the cursor position at the most recent press.
	Start image.Point
	// Bounds is the resolved rectangle of the item.
	Bounds image.Rectangle
}

// Handler receives the events of an item.
type Handler interface {
	Event(e Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(e Event)

// Kind of an Event. Kinds are bit flags so that a set of kinds
// forms a subscription mask.
type Kind uint8

// Buttons is a set of input buttons, one bit per button.
type Buttons uint64

const (
	// ButtonDown is reported when the primary button is pressed
	// over the item.
	ButtonDown Kind = 1 << iota
	// ButtonUp is reported when the primary button is released
	// after a press on the item.
	ButtonUp
	// HotUp is reported after ButtonUp when the cursor is still
	// over the item, completing a click.
	HotUp
	// Capture is reported for every frame the primary button stays
	// pressed after a press on the item.
	Capture
)

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

// Button returns the set containing only the button with the given
// index. Indices outside [0, 63] give the empty set.
func Button(index int) Buttons {
	if index < 0 || index > 63 {
		return 0
	}
	return 1 << uint(index)
}

func (f HandlerFunc) Event(e Event) {
	f(e)
}

// Delta returns the cursor movement since the most recent press.
func (e Event) Delta() image.Point {
	return e.Position.Sub(e.Start)
}

// Contain reports whether all kinds in k2 are in k.
func (k Kind) Contain(k2 Kind) bool {
	return k&k2 == k2
}

// Contain reports whether the set b contains
// all buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (k Kind) String() string {
	var buf strings.Builder
	for kk := Kind(1); kk > 0 && kk <= Capture; kk <<= 1 {
		if k&kk > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((k & kk).string())
		}
	}
	return buf.String()
}

func (k Kind) string() string {
	switch k {
	case ButtonDown:
		return "ButtonDown"
	case ButtonUp:
		return "ButtonUp"
	case HotUp:
		return "HotUp"
	case Capture:
		return "Capture"
	default:
		panic("unknown Kind")
	}
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}
