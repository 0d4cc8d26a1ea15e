// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"

	"github.com/ouigo/oui/gesture"
	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/io/router"
	"github.com/ouigo/oui/layout"
)

// Context holds the items and the input state of a user interface.
// A Context is not safe for concurrent use.
type Context struct {
	arena  *layout.Arena
	router router.Router
	press  gesture.Press

	// buttons and lastButtons are the button states of the current
	// and the previous frame.
	buttons     pointer.Buttons
	lastButtons pointer.Buttons
	cursor      image.Point
	lastCursor  image.Point
	// startCursor is the cursor position at the most recent press.
	startCursor image.Point

	hotHandle    uint64
	activeHandle uint64

	// err is the first error of the frame.
	err     error
	scratch []pointer.Event
}

// State is the presentation state of an item.
type State uint8

const (
	// Cold is the state of an item that is neither hot nor active.
	Cold State = iota
	// Hot is the state of the item under the cursor.
	Hot
	// Active is the state of a pressed item.
	Active
	// Frozen is the state of an item inside a frozen subtree.
	Frozen
)

// NewContext returns a cleared Context.
func NewContext(opts ...Option) *Context {
	var cfg layout.Config
	for _, o := range opts {
		o(&cfg)
	}
	c := &Context{
		arena: layout.NewArena(cfg),
		press: gesture.NewPress(),
	}
	c.Clear()
	return c
}

// Clear discards all items and their data and starts a new frame.
// Item indices of the previous frame become invalid; the hot and
// active items are re-resolved by SetHandle.
func (c *Context) Clear() {
	c.arena.Reset()
	c.press.Clear()
	c.router.Reset()
	c.err = nil
}

// Process solves the layout, hit tests the cursor and advances the
// interaction state, delivering the resulting events to the item
// handlers. Process fails without doing any work if an error was
// recorded during the frame, and on layout errors. After a failure
// no item is hot or active and all rectangles are empty.
func (c *Context) Process() error {
	if c.err == nil {
		if err := c.arena.Solve(); err != nil {
			c.fail(err)
		}
	}
	if c.err != nil {
		c.press.Clear()
		return c.err
	}
	hit := router.Hit(c.arena, c.cursor)
	wasCapturing := c.press.State() == gesture.Capture
	c.scratch = c.press.Update(c.scratch[:0], gesture.Sample{
		Hit:     hit,
		Down:    c.buttons.Contain(pointer.ButtonPrimary),
		WasDown: c.lastButtons.Contain(pointer.ButtonPrimary),
	})
	if !wasCapturing && c.press.State() == gesture.Capture {
		c.startCursor = c.cursor
		c.lastCursor = c.cursor
	}
	for _, e := range c.scratch {
		it := c.arena.At(e.Item)
		e.Handle = it.Handle
		e.Position = c.cursor
		e.Start = c.startCursor
		e.Bounds = it.Rect.Bounds()
		c.router.Queue(e)
	}
	c.hotHandle = c.handleOf(c.press.Hot)
	c.activeHandle = c.handleOf(c.press.Active)
	c.router.Dispatch(c.arena)
	c.lastCursor = c.cursor
	c.lastButtons = c.buttons
	return nil
}

func (c *Context) handleOf(item int) uint64 {
	if item < 0 {
		return 0
	}
	return c.arena.At(item).Handle
}

// Err returns the first error recorded in the current frame.
func (c *Context) Err() error {
	return c.err
}

// fail records err if it is the first error of the frame.
func (c *Context) fail(err error) error {
	if c.err == nil {
		c.err = err
	}
	return err
}

// Events returns the events fired since the previous call to
// Events in the current frame.
func (c *Context) Events() []pointer.Event {
	return c.router.Events()
}

// HotItem returns the hot item, or -1.
func (c *Context) HotItem() int {
	return c.press.Hot
}

// ActiveItem returns the active item, or -1.
func (c *Context) ActiveItem() int {
	return c.press.Active
}

// IsHot reports whether item is the hot item.
func (c *Context) IsHot(item int) bool {
	return item >= 0 && c.press.Hot == item
}

// IsActive reports whether item is the active item.
func (c *Context) IsActive(item int) bool {
	return item >= 0 && c.press.Active == item
}

// State returns the presentation state of item. An active item is
// Active while it subscribes to Capture or ButtonUp events, or to
// HotUp events while it is hovered, and Cold otherwise. All items of
// a frame with an error are Cold.
func (c *Context) State(item int) State {
	if !c.valid(item) || c.err != nil {
		return Cold
	}
	if c.IsFrozen(item) {
		return Frozen
	}
	mask := c.arena.At(item).Events
	switch {
	case c.IsActive(item):
		if mask&(pointer.Capture|pointer.ButtonUp) != 0 {
			return Active
		}
		if mask&pointer.HotUp != 0 && c.IsHot(item) {
			return Active
		}
		return Cold
	case c.IsHot(item):
		return Hot
	default:
		return Cold
	}
}

func (s State) String() string {
	switch s {
	case Cold:
		return "Cold"
	case Hot:
		return "Hot"
	case Active:
		return "Active"
	case Frozen:
		return "Frozen"
	default:
		panic("unreachable")
	}
}
