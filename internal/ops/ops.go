// SPDX-License-Identifier: Unlicense OR MIT

// Package ops implements the append-only byte buffer that backs
// application data attached to items.
package ops

// Buffer is a bump allocated byte arena with a fixed capacity.
// Blocks returned by Alloc stay valid until the next Reset.
type Buffer struct {
	// data contains the allocated blocks back to back.
	data []byte
	max  int
}

// NewBuffer returns a buffer that holds at most max bytes.
func NewBuffer(max int) *Buffer {
	return &Buffer{max: max}
}

// Reset releases all blocks. The underlying storage is kept for
// the next frame.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Len returns the number of allocated bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the capacity limit of the buffer.
func (b *Buffer) Cap() int {
	return b.max
}

// Alloc reserves n zeroed bytes and returns the offset of the
// block. It reports false if the block would not fit.
func (b *Buffer) Alloc(n int) (int, bool) {
	off := len(b.data)
	if n < 0 || off+n > b.max {
		return 0, false
	}
	if off+n > cap(b.data) {
		// Grow geometrically but never past the limit.
		c := 2*cap(b.data) + n
		if c > b.max {
			c = b.max
		}
		data := make([]byte, off, c)
		copy(data, b.data)
		b.data = data
	}
	b.data = b.data[:off+n]
	clear(b.data[off:])
	return off, true
}

// Bytes returns the block at off. The returned slice cannot be
// appended past its block.
func (b *Buffer) Bytes(off, n int) []byte {
	return b.data[off : off+n : off+n]
}
