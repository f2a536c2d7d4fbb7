// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "strconv"

// A Template holds the codewords of a symbol produced by the encoder.
type Template struct {
	Version int // QR version, 1 to 40

	// Data holds the data blocks.  Blocks may differ in length.
	// They are interleaved one byte from each block at a time.
	Data [][]byte

	// Check holds the error correction blocks, CheckLen bytes each,
	// interleaved after the data.
	Check    [][]byte
	CheckLen int
}

// bits returns the length of the codeword stream in bits.
func (t *Template) bits() int {
	n := len(t.Check) * t.CheckLen
	for _, b := range t.Data {
		n += len(b)
	}
	return n * 8
}

// each calls fn for every codeword in interleaved order.
func (t *Template) each(fn func(byte)) {
	n := 0
	for _, b := range t.Data {
		n = max(n, len(b))
	}
	for i := 0; i < n; i++ {
		for _, b := range t.Data {
			if i < len(b) {
				fn(b[i])
			}
		}
	}
	for i := 0; i < t.CheckLen; i++ {
		for _, b := range t.Check {
			fn(b[i])
		}
	}
}

// A Mask is a data mask pattern number.
//
// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
type Mask int

// NumMasks is the number of QR code masks.
const NumMasks = 8

var maskFuncs = [NumMasks]func(i, j int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return i*j%2+i*j%3 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return (i*j%3+(i+j)%2)%2 == 0 },
}

// Flip reports whether mask inverts the data module at row, col.
func (mask Mask) Flip(row, col int) bool {
	return maskFuncs[mask](row, col)
}

// Valid reports whether mask is a valid mask number.
func (mask Mask) Valid() bool { return 0 <= mask && mask < NumMasks }

func (mask Mask) String() string { return strconv.Itoa(int(mask)) }

// A cursor walks the non-functional modules in zigzag order: upwards
// and downwards in two column wide strips from right to left, right
// column first, skipping the vertical timing pattern.
type cursor struct {
	m        *Matrix
	row, col int
	dir      int // -1 up, 1 down
}

// newCursor returns a cursor at the bottom right module.
func newCursor(m *Matrix) *cursor {
	return &cursor{m: m, row: m.size - 1, col: m.size - 1, dir: -1}
}

// step moves c to the next module in zigzag order regardless of its
// kind.  It returns false past the last column.
func (c *cursor) step() bool {
	// Right of the timing strip strips start at even columns, left of
	// it at odd ones.
	if c.col&1 == 0 != (c.col < 6) {
		c.col--
	} else if c.dir < 0 && c.row == 0 || c.dir > 0 && c.row == c.m.size-1 {
		c.col--
		c.dir = -c.dir
	} else {
		c.col++
		c.row += c.dir
	}
	if c.col == 6 {
		c.col--
	}
	return c.col >= 0
}

// next moves c to the next non-functional module.  It returns false
// when there are no more.
func (c *cursor) next() bool {
	for c.step() {
		if c.m.At(c.row, c.col).Kind != Functional {
			return true
		}
	}
	return false
}

// put writes bit at the current module with mask applied.
func (c *cursor) put(bit bool, mask Mask) {
	*c.m.cell(c.row, c.col) = Cell{
		Dark: bit != mask.Flip(c.row, c.col),
		Kind: Data,
	}
}

// DataModules returns the number of modules of m that are not
// functional.
func (m *Matrix) DataModules() int {
	n := 0
	for _, c := range m.cells {
		if c.Kind != Functional {
			n++
		}
	}
	return n
}

// checkCapacity returns a CapacityError unless the codewords of t fill
// modules leaving fewer than 8 remainder bits.
func checkCapacity(t *Template, modules int) error {
	if n := t.bits(); n > modules || modules-n >= 8 {
		return &CapacityError{Bits: n, Modules: modules}
	}
	return nil
}

// PlaceData writes the codewords of t to the non-functional modules of
// m in zigzag order, most significant bit first, with mask applied.
// The remaining remainder bits are set according to the mask alone.
// The function patterns and reserved areas must be in place.
func (m *Matrix) PlaceData(t *Template, mask Mask) error {
	if !mask.Valid() {
		return ErrMask
	}
	if err := checkCapacity(t, m.DataModules()); err != nil {
		return err
	}
	c := newCursor(m)
	ok := true
	t.each(func(b byte) {
		for bit := byte(0x80); bit != 0; bit >>= 1 {
			c.put(b&bit != 0, mask)
			ok = c.next()
		}
	})
	for ok {
		c.put(false, mask)
		ok = c.next()
	}
	return nil
}
