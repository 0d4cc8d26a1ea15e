// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/ouigo/oui/internal/ops"
	"github.com/ouigo/oui/io/pointer"
)

// Config bounds the per frame resources of an Arena.
type Config struct {
	// MaxItems is the maximum number of items, root included.
	MaxItems int
	// MaxBufferSize is the maximum number of data bytes allocated
	// for all items of a frame.
	MaxBufferSize int
	// MaxDataSize is the maximum size of a single allocation.
	MaxDataSize int
}

// DefaultConfig is the configuration used for a zero Config.
var DefaultConfig = Config{
	MaxItems:      4096,
	MaxBufferSize: 1 << 20,
	MaxDataSize:   4096,
}

// Item is a node of the layout hierarchy. Items are identified by
// their index in the Arena; indices are valid until the next Reset.
type Item struct {
	// Handle is the application defined identity of the item
	// across frames. Zero means the item is not interactive.
	Handle uint64
	// Handler receives the events included in Events.
	Handler pointer.Handler
	Events  pointer.Kind
	// Frozen items and their subtrees ignore the pointer.
	Frozen bool

	Flags Flags
	// Size is the explicit size. A zero coordinate is computed
	// from the children.
	Size image.Point
	// Margins and RelTo are indexed by Edge. A negative RelTo
	// anchors the edge to the parent.
	Margins [4]int
	RelTo   [4]int
	// Rect is valid after Solve.
	Rect Rect

	parent   int
	firstKid int
	lastKid  int
	next     int
	kidID    int
	numKids  int

	visited visit
	// walk stamps the item during a chain walk.
	walk uint32

	// data is the offset of the item data, or -1.
	data     int
	dataSize int
}

// visit records solver progress per axis.
type visit uint8

func sized(a Axis) visit   { return 1 << a }
func placed(a Axis) visit  { return 4 << a }
func placing(a Axis) visit { return 16 << a }

// Arena stores the items of a frame in a flat array. Item 0 is the
// root.
type Arena struct {
	cfg   Config
	items []Item
	data  *ops.Buffer
	stamp uint32
}

// NewArena returns an Arena holding only the root item. Zero fields
// of cfg are taken from DefaultConfig.
func NewArena(cfg Config) *Arena {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig.MaxItems
	}
	if cfg.MaxBufferSize <= 0 {
		cfg.MaxBufferSize = DefaultConfig.MaxBufferSize
	}
	if cfg.MaxDataSize <= 0 {
		cfg.MaxDataSize = DefaultConfig.MaxDataSize
	}
	a := &Arena{
		cfg:  cfg,
		data: ops.NewBuffer(cfg.MaxBufferSize),
	}
	a.Reset()
	return a
}

func newItem() Item {
	return Item{
		parent:   -1,
		firstKid: -1,
		lastKid:  -1,
		next:     -1,
		data:     -1,
		RelTo:    [4]int{-1, -1, -1, -1},
	}
}

// Config returns the effective configuration.
func (a *Arena) Config() Config {
	return a.cfg
}

// Reset discards all items but a fresh root, and all item data.
func (a *Arena) Reset() {
	// Leave handler references to the GC.
	for i := range a.items {
		a.items[i].Handler = nil
	}
	a.items = append(a.items[:0], newItem())
	a.data.Reset()
	a.stamp = 0
}

// Len returns the number of items, root included.
func (a *Arena) Len() int {
	return len(a.items)
}

// New appends an unattached item and returns its index.
func (a *Arena) New() (int, error) {
	if len(a.items) >= a.cfg.MaxItems {
		return -1, newError("new", len(a.items), ErrCapacityExceeded, "%d items", a.cfg.MaxItems)
	}
	a.items = append(a.items, newItem())
	return len(a.items) - 1, nil
}

// At returns item i without bounds checking beyond the slice
// access itself.
func (a *Arena) At(i int) *Item {
	return &a.items[i]
}

// Lookup returns item i, or an ErrDanglingReference error naming op
// if i is not a declared item.
func (a *Arena) Lookup(op string, i int) (*Item, error) {
	if i < 0 || i >= len(a.items) {
		return nil, newError(op, i, ErrDanglingReference, "%d items declared", len(a.items))
	}
	return &a.items[i], nil
}

// Insert appends item to the children of parent. An item is
// inserted at most once and the root is never inserted.
func (a *Arena) Insert(parent, item int) error {
	p, err := a.Lookup("insert", parent)
	if err != nil {
		return err
	}
	it, err := a.Lookup("insert", item)
	if err != nil {
		return err
	}
	switch {
	case item == 0:
		return newError("insert", item, ErrInvalidReparent, "root item")
	case item == parent:
		return newError("insert", item, ErrInvalidReparent, "item is its own parent")
	case it.parent >= 0:
		return newError("insert", item, ErrInvalidReparent, "already a child of %d", it.parent)
	}
	it.parent = parent
	it.kidID = p.numKids
	p.numKids++
	if p.lastKid < 0 {
		p.firstKid = item
	} else {
		a.items[p.lastKid].next = item
	}
	p.lastKid = item
	return nil
}

// Alloc allocates size zeroed bytes of data for item. The memory is
// owned by the Arena and released by Reset.
func (a *Arena) Alloc(item, size int) ([]byte, error) {
	it, err := a.Lookup("alloc", item)
	if err != nil {
		return nil, err
	}
	if it.data >= 0 {
		return nil, newError("alloc", item, ErrDuplicateAllocation, "")
	}
	if size < 0 || size > a.cfg.MaxDataSize {
		return nil, newError("alloc", item, ErrCapacityExceeded, "size %d, limit %d", size, a.cfg.MaxDataSize)
	}
	off, ok := a.data.Alloc(size)
	if !ok {
		return nil, newError("alloc", item, ErrCapacityExceeded, "buffer holds %d of %d bytes", a.data.Len(), a.data.Cap())
	}
	it.data = off
	it.dataSize = size
	return a.data.Bytes(off, size), nil
}

// Data returns the data allocated for item i, or nil.
func (a *Arena) Data(i int) []byte {
	it := &a.items[i]
	if it.data < 0 {
		return nil
	}
	return a.data.Bytes(it.data, it.dataSize)
}

// Parent returns the parent index, or -1 for the root and for
// items not yet inserted.
func (it *Item) Parent() int { return it.parent }

// FirstKid returns the first child, or -1.
func (it *Item) FirstKid() int { return it.firstKid }

// LastKid returns the last child, or -1.
func (it *Item) LastKid() int { return it.lastKid }

// Next returns the next sibling, or -1.
func (it *Item) Next() int { return it.next }

// KidID returns the position of the item among its siblings.
func (it *Item) KidID() int { return it.kidID }

// NumKids returns the number of children.
func (it *Item) NumKids() int { return it.numKids }

// extent returns the item size along an axis, as resolved so far.
func (it *Item) extent(a Axis) int {
	return it.Rect.Extent(a)
}
