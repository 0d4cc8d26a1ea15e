// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ouigo/oui/ui"
)

// Kind identifies the control an item was declared by.
type Kind uint8

// Header describes a control. It is stored in the data of the item
// of the control.
type Header struct {
	Kind  Kind
	Label string
	// Checked is the value of a check box, or whether a radio
	// button is selected.
	Checked bool
	// Value is the position of a slider, in [0, 1].
	Value float32
}

const (
	KindLabel Kind = iota
	KindButton
	KindRadio
	KindSlider
	KindColumn
	KindRow
	KindCheck
	KindPanel
	KindVGroup
	KindHGroup
)

const (
	// Height is the height of a control.
	Height = 21
	// ToolWidth is the width of a control without a label.
	ToolWidth = 20
)

// headerSize is the size of the fixed part of an encoded Header:
// kind, checked and value.
const headerSize = 1 + 1 + 4

var ErrMalformedHeader = errors.New("widget: malformed header")

// lastHandle is the most recent handle given to a control.
var lastHandle atomic.Uint64

// handleOf returns the handle stored in h, allocating a fresh one on
// first use.
func handleOf(h *uint64) uint64 {
	if *h == 0 {
		*h = lastHandle.Add(1)
	}
	return *h
}

// newItem declares an item of height Height and width w holding h.
func newItem(ctx *ui.Context, w int, h Header) (int, error) {
	item, err := ctx.Item()
	if err != nil {
		return -1, err
	}
	ctx.SetSize(item, w, Height)
	if err := store(ctx, item, h); err != nil {
		return -1, err
	}
	return item, nil
}

// store allocates the data of item and encodes h into it.
func store(ctx *ui.Context, item int, h Header) error {
	var n [binary.MaxVarintLen64]byte
	size := headerSize + binary.PutUvarint(n[:], uint64(len(h.Label))) + len(h.Label)
	data, err := ctx.AllocData(item, size)
	if err != nil {
		return fmt.Errorf("widget: %v: %w", h.Kind, err)
	}
	data[0] = byte(h.Kind)
	restate(data, h.Checked, h.Value)
	k := binary.PutUvarint(data[headerSize:], uint64(len(h.Label)))
	copy(data[headerSize+k:], h.Label)
	return nil
}

// restate overwrites the checked flag and the value of an encoded
// Header.
func restate(data []byte, checked bool, value float32) {
	if len(data) < headerSize {
		return
	}
	data[1] = 0
	if checked {
		data[1] = 1
	}
	binary.LittleEndian.PutUint32(data[2:], math.Float32bits(value))
}

// Decode decodes the Header stored in the data of an item.
func Decode(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrMalformedHeader, len(data))
	}
	h := Header{
		Kind:    Kind(data[0]),
		Checked: data[1] != 0,
		Value:   math.Float32frombits(binary.LittleEndian.Uint32(data[2:])),
	}
	if h.Kind > KindHGroup {
		return Header{}, fmt.Errorf("%w: unknown kind %d", ErrMalformedHeader, data[0])
	}
	n, k := binary.Uvarint(data[headerSize:])
	if k <= 0 || n > uint64(len(data)-headerSize-k) {
		return Header{}, fmt.Errorf("%w: label length", ErrMalformedHeader)
	}
	start := headerSize + k
	h.Label = string(data[start : start+int(n)])
	return h, nil
}

// Lookup decodes the Header of item. It reports false for items
// not declared by this package.
func Lookup(ctx *ui.Context, item int) (Header, bool) {
	h, err := Decode(ctx.Data(item))
	return h, err == nil
}

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "Label"
	case KindButton:
		return "Button"
	case KindRadio:
		return "Radio"
	case KindSlider:
		return "Slider"
	case KindColumn:
		return "Column"
	case KindRow:
		return "Row"
	case KindCheck:
		return "Check"
	case KindPanel:
		return "Panel"
	case KindVGroup:
		return "VGroup"
	case KindHGroup:
		return "HGroup"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
