// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is reported when the item arena or the
	// data buffer is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrInvalidReparent is reported when an item that already has
	// a parent, or the root, is inserted into a container.
	ErrInvalidReparent = errors.New("invalid reparent")
	// ErrDanglingReference is reported for item, parent or
	// neighbour indices outside the declared items, and for
	// neighbours that are not siblings.
	ErrDanglingReference = errors.New("dangling reference")
	// ErrCycleInChain is reported when a neighbour chain leads back
	// to an item already on it.
	ErrCycleInChain = errors.New("cycle in chain")
	// ErrDuplicateAllocation is reported on a second data
	// allocation for the same item.
	ErrDuplicateAllocation = errors.New("duplicate allocation")
)

// Error describes a failed operation on an item. Err is one of the
// Err* values of this package.
type Error struct {
	Op   string
	Item int
	// Detail is an optional description of the offending value.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("layout: %s item %d: %v", e.Op, e.Item, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, item int, err error, detail string, args ...interface{}) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Op: op, Item: item, Detail: detail, Err: err}
}
