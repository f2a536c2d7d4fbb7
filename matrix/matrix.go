// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package matrix builds the module matrix of a QR code symbol from
pre-computed codewords.

A symbol is constructed in passes.  The function patterns (finder,
separator, timing and alignment patterns) and the reserved format and
version areas don't depend on the mask and form the skeleton:

	m := matrix.New(version)
	m.PlaceFinders()
	m.PlaceAlignmentAndTiming()
	m.ReserveStub()

Each mask trial then places data and check bits in zigzag order and
writes the format and version information:

	err := m.PlaceData(t, mask)
	m.EncodeFormatAndVersion(mask)
	p := matrix.Penalty(m)

Build runs all of the above for the eight masks and returns the symbol
with the lowest penalty.
*/
package matrix // import "github.com/unixdj/qrmatrix/matrix"

import (
	"errors"
	"fmt"
)

// Version limits.
const (
	MinVersion = 1  // Minimum QR version
	MaxVersion = 40 // Maximum QR version
)

var (
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
)

// CapacityError reports a codeword stream that doesn't fit the data
// modules of the symbol.  A stream may be shorter than the data area by
// up to 7 remainder bits.
type CapacityError struct {
	Bits    int // bits in the codeword stream
	Modules int // data modules in the symbol
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: %d codeword bits for %d data modules",
		e.Bits, e.Modules)
}

// A Kind tells who owns a module.
type Kind uint8

const (
	Unset      Kind = iota // not written yet
	Functional             // function pattern or format/version information
	Data                   // data, check or remainder bit, masked
)

func (k Kind) String() string {
	switch k {
	case Unset:
		return "unset"
	case Functional:
		return "functional"
	case Data:
		return "data"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// A Cell is a single module of the matrix.
type Cell struct {
	Dark bool // true is dark, false is light
	Kind Kind
}

// A Matrix is a square grid of modules.  Cells are addressed by row
// and column, with the origin at the top left.
type Matrix struct {
	version int
	size    int
	cells   []Cell // row major
}

// Size returns the number of modules on a side of a QR code with
// version v.
func Size(v int) int { return v*4 + 17 }

// New returns a matrix for a QR code with version v with all cells
// unset.  New panics if v is out of range.
func New(v int) *Matrix {
	if v < MinVersion || v > MaxVersion {
		panic(ErrVersion)
	}
	siz := Size(v)
	return &Matrix{
		version: v,
		size:    siz,
		cells:   make([]Cell, siz*siz),
	}
}

// Version returns the QR version of m.
func (m *Matrix) Version() int { return m.version }

// Size returns the number of modules on a side of m.
func (m *Matrix) Size() int { return m.size }

// At returns the cell at row, col.
func (m *Matrix) At(row, col int) Cell {
	return m.cells[row*m.size+col]
}

func (m *Matrix) cell(row, col int) *Cell {
	return &m.cells[row*m.size+col]
}

// fix sets the cell at row, col to a functional module.
func (m *Matrix) fix(row, col int, dark bool) {
	m.cells[row*m.size+col] = Cell{Dark: dark, Kind: Functional}
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.cells = append([]Cell(nil), m.cells...)
	return &c
}

// Bits returns the module colours, 1 for dark and 0 for light, one
// slice per row.
func (m *Matrix) Bits() [][]byte {
	siz := m.size
	buf := make([]byte, siz*siz)
	rows := make([][]byte, siz)
	for i, c := range m.cells {
		if c.Dark {
			buf[i] = 1
		}
	}
	for r := range rows {
		rows[r], buf = buf[:siz:siz], buf[siz:]
	}
	return rows
}

// String returns m drawn with '#' for dark and '.' for light modules,
// one line per row.
func (m *Matrix) String() string {
	b := make([]byte, 0, (m.size+1)*m.size)
	for i, c := range m.cells {
		if c.Dark {
			b = append(b, '#')
		} else {
			b = append(b, '.')
		}
		if i%m.size == m.size-1 {
			b = append(b, '\n')
		}
	}
	return string(b)
}
