// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"

	"github.com/ouigo/oui/io/pointer"
	"github.com/ouigo/oui/layout"
)

// Item declares a new item and returns its index. The item must be
// attached to a container with Insert to take part in layout.
func (c *Context) Item() (int, error) {
	i, err := c.arena.New()
	if err != nil {
		return -1, c.fail(err)
	}
	return i, nil
}

// Insert attaches item as the last child of parent.
func (c *Context) Insert(parent, item int) error {
	if err := c.arena.Insert(parent, item); err != nil {
		return c.fail(err)
	}
	return nil
}

// lookup returns item i or records a dangling reference error.
func (c *Context) lookup(op string, i int) *layout.Item {
	it, err := c.arena.Lookup(op, i)
	if err != nil {
		c.fail(err)
		return nil
	}
	return it
}

func (c *Context) valid(i int) bool {
	return i >= 0 && i < c.arena.Len()
}

// Len returns the number of declared items, root included.
func (c *Context) Len() int {
	return c.arena.Len()
}

// SetSize sets the explicit size of item. A zero width or height is
// computed from the children.
func (c *Context) SetSize(item, w, h int) {
	if it := c.lookup("set size", item); it != nil {
		it.Size = image.Pt(w, h)
	}
}

// SetLayout sets the layout flags of item.
func (c *Context) SetLayout(item int, flags layout.Flags) {
	if it := c.lookup("set layout", item); it != nil {
		it.Flags = flags
	}
}

// SetMargins sets the margins of item.
func (c *Context) SetMargins(item, left, top, right, bottom int) {
	if it := c.lookup("set margins", item); it != nil {
		it.Margins = [4]int{left, top, right, bottom}
	}
}

// SetRelTo sets the neighbours item is placed against, one per
// edge. A negative index anchors the edge to the parent. Neighbours
// must be siblings of item; that is verified by Process.
func (c *Context) SetRelTo(item, left, top, right, bottom int) {
	it := c.lookup("set relto", item)
	if it == nil {
		return
	}
	rel := [4]int{left, top, right, bottom}
	for e, n := range rel {
		if n < 0 {
			rel[e] = -1
			continue
		}
		if !c.valid(n) {
			c.fail(&layout.Error{Op: "set relto", Item: item, Detail: "neighbour out of range", Err: layout.ErrDanglingReference})
			return
		}
	}
	it.RelTo = rel
}

// SetNeighbor sets the neighbour of item for a single edge.
func (c *Context) SetNeighbor(item int, e layout.Edge, n int) {
	it := c.lookup("set neighbour", item)
	if it == nil {
		return
	}
	if n >= 0 && !c.valid(n) {
		c.fail(&layout.Error{Op: "set neighbour", Item: item, Detail: "neighbour out of range", Err: layout.ErrDanglingReference})
		return
	}
	if n < 0 {
		n = -1
	}
	it.RelTo[e] = n
}

// AllocData allocates size zeroed bytes of application data for
// item. Data can be allocated once per item and frame; the memory is
// owned by the Context and released by Clear.
func (c *Context) AllocData(item, size int) ([]byte, error) {
	b, err := c.arena.Alloc(item, size)
	if err != nil {
		return nil, c.fail(err)
	}
	return b, nil
}

// Data returns the data allocated for item, or nil.
func (c *Context) Data(item int) []byte {
	if !c.valid(item) {
		return nil
	}
	return c.arena.Data(item)
}

// SetHandle sets the application handle of item. Zero makes the
// item non-interactive across frames. An item carrying the handle
// of the previous frame's hot or active item becomes the hot or
// active item.
func (c *Context) SetHandle(item int, handle uint64) {
	it := c.lookup("set handle", item)
	if it == nil {
		return
	}
	it.Handle = handle
	if handle == 0 {
		return
	}
	if handle == c.hotHandle {
		c.press.Hot = item
	}
	if handle == c.activeHandle {
		c.press.Active = item
	}
}

// Handle returns the application handle of item.
func (c *Context) Handle(item int) uint64 {
	if !c.valid(item) {
		return 0
	}
	return c.arena.At(item).Handle
}

// SetHandler sets the handler of item and the event kinds it
// receives.
func (c *Context) SetHandler(item int, h pointer.Handler, mask pointer.Kind) {
	if it := c.lookup("set handler", item); it != nil {
		it.Handler = h
		it.Events = mask
	}
}

// Handler returns the handler of item.
func (c *Context) Handler(item int) pointer.Handler {
	if !c.valid(item) {
		return nil
	}
	return c.arena.At(item).Handler
}

// HandlerFlags returns the event kinds item subscribed to.
func (c *Context) HandlerFlags(item int) pointer.Kind {
	if !c.valid(item) {
		return 0
	}
	return c.arena.At(item).Events
}

// SetFrozen sets whether item and its subtree ignore the pointer.
// Frozen items are never hot and report the Frozen state.
func (c *Context) SetFrozen(item int, frozen bool) {
	if it := c.lookup("set frozen", item); it != nil {
		it.Frozen = frozen
	}
}

// IsFrozen reports whether item or one of its ancestors is frozen.
func (c *Context) IsFrozen(item int) bool {
	for c.valid(item) {
		it := c.arena.At(item)
		if it.Frozen {
			return true
		}
		item = it.Parent()
	}
	return false
}

// Rect returns the rectangle of item in absolute coordinates. The
// result is only meaningful after a successful Process and is empty
// while the frame has an error.
func (c *Context) Rect(item int) layout.Rect {
	if !c.valid(item) || c.err != nil {
		return layout.Rect{}
	}
	return c.arena.At(item).Rect
}

// ChildCount returns the number of children of item.
func (c *Context) ChildCount(item int) int {
	if !c.valid(item) {
		return 0
	}
	return c.arena.At(item).NumKids()
}

// FirstChild returns the first child of item, or -1.
func (c *Context) FirstChild(item int) int {
	if !c.valid(item) {
		return -1
	}
	return c.arena.At(item).FirstKid()
}

// LastChild returns the last child of item, or -1.
func (c *Context) LastChild(item int) int {
	if !c.valid(item) {
		return -1
	}
	return c.arena.At(item).LastKid()
}

// NextSibling returns the sibling following item, or -1.
func (c *Context) NextSibling(item int) int {
	if !c.valid(item) {
		return -1
	}
	return c.arena.At(item).Next()
}

// Parent returns the container of item, or -1 for the root.
func (c *Context) Parent(item int) int {
	if !c.valid(item) {
		return -1
	}
	return c.arena.At(item).Parent()
}

// ChildID returns the position of item among its siblings.
func (c *Context) ChildID(item int) int {
	if !c.valid(item) {
		return 0
	}
	return c.arena.At(item).KidID()
}
