// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements the press state machine that turns per
frame button samples and hit test results into hot and active items
and pointer events.

The machine is either Idle, tracking the item under the cursor as the
hot item, or in Capture, where the item that received the press stays
active until the button is released.
*/
package gesture

import (
	"github.com/ouigo/oui/io/pointer"
)

// Press tracks the primary button across frames. Hot and Active are
// item indices of the current frame, -1 for none.
type Press struct {
	state State
	// Hot is the item under the cursor, or the active item while it
	// is pressed and hovered.
	Hot int
	// Active is the item that received the most recent press.
	Active int
}

// State is the state of a Press.
type State uint8

// Sample is the input of one frame.
type Sample struct {
	// Hit is the innermost item under the cursor, or -1.
	Hit int
	// Down reports whether the primary button is pressed.
	Down bool
	// WasDown reports whether the primary button was pressed in the
	// previous frame.
	WasDown bool
}

const (
	// Idle is the default state; the hot item follows the cursor.
	Idle State = iota
	// Capture is reported while the button is held after a press.
	Capture
)

// NewPress returns a Press in the Idle state with no hot or active
// item.
func NewPress() Press {
	return Press{Hot: -1, Active: -1}
}

// State reports the press state.
func (p *Press) State() State {
	return p.state
}

// Clear forgets the item indices of the frame. The state is kept,
// so a capture survives into the next frame.
func (p *Press) Clear() {
	p.Hot = -1
	p.Active = -1
}

// Update advances the machine by one frame and appends the events
// it fires to events. Only Kind and Item of the appended events are
// set. Events are fired for the active item only.
func (p *Press) Update(events []pointer.Event, s Sample) []pointer.Event {
	fire := func(k pointer.Kind) {
		if p.Active >= 0 {
			events = append(events, pointer.Event{Kind: k, Item: p.Active})
		}
	}
	switch p.state {
	case Idle:
		if s.Down && !s.WasDown {
			p.Hot = -1
			p.Active = s.Hit
			fire(pointer.ButtonDown)
			p.state = Capture
		} else {
			p.Hot = s.Hit
		}
	case Capture:
		if s.Down {
			fire(pointer.Capture)
			if s.Hit == p.Active {
				p.Hot = p.Active
			} else {
				p.Hot = -1
			}
		} else {
			fire(pointer.ButtonUp)
			if s.Hit == p.Active {
				fire(pointer.HotUp)
			}
			p.Active = -1
			p.state = Idle
		}
	}
	return events
}

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Capture:
		return "Capture"
	default:
		panic("unreachable")
	}
}
