// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

// Format and version information generator polynomials and the mask
// applied to format information.
const (
	formatPoly  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1
	versionPoly = 0x1f25 // x^12+x^11+x^10+x^9+x^8+x^5+x^2+1
	formatMask  = 0x5412

	// Error correction level bits of the format information.
	// Symbols are always level L.
	levelL = 0b01
)

// QR Code format bits, indexed by 2 bits of error correction level
// and 3 bits of mask.
var formats = func() (t [32]uint16) {
	for f := range t {
		rem := f << 10
		for i := 5; i > 0; i-- {
			if rem>>(9+i) != 0 {
				rem ^= formatPoly << (i - 1)
			}
		}
		t[f] = uint16(rem|f<<10) ^ formatMask
	}
	return
}()

// QR Code version bits, for versions 7 to 40.
var versions = func() (t [MaxVersion + 1]uint32) {
	for v := 7; v <= MaxVersion; v++ {
		rem := v << 12
		for i := 6; i > 0; i-- {
			if rem>>(11+i) != 0 {
				rem ^= versionPoly << (i - 1)
			}
		}
		t[v] = uint32(rem | v<<12)
	}
	return
}()

// FormatWord returns the 15 bit format information for a level L symbol
// with the given mask.  It panics if mask is invalid.
func FormatWord(mask Mask) uint16 {
	if !mask.Valid() {
		panic(ErrMask)
	}
	return formats[levelL<<3|mask]
}

// VersionWord returns the 18 bit version information for version v,
// or 0 if v has none.
func VersionWord(v int) uint32 {
	if v < 0 || v > MaxVersion {
		return 0
	}
	return versions[v]
}

// formatCells lists the coordinates of format information bits 0-14
// around the top left position box (first) and next to the other two
// (second).  Negative coordinates count from the far edge.
var formatCells = func() (t [15][2][2]int) {
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			t[i][0] = [2]int{i, 8}
		case i < 8:
			t[i][0] = [2]int{i + 1, 8}
		case i == 8:
			t[i][0] = [2]int{8, 7}
		default:
			t[i][0] = [2]int{8, 14 - i}
		}
		if i < 8 {
			t[i][1] = [2]int{8, -1 - i}
		} else {
			t[i][1] = [2]int{-15 + i, 8}
		}
	}
	return
}()

func (m *Matrix) abs(p [2]int) (row, col int) {
	row, col = p[0], p[1]
	if row < 0 {
		row += m.size
	}
	if col < 0 {
		col += m.size
	}
	return
}

// EncodeFormatAndVersion writes the format information for mask and,
// from version 7, the version information to the areas reserved by
// ReserveStub.  It panics if mask is invalid.
func (m *Matrix) EncodeFormatAndVersion(mask Mask) {
	fb := FormatWord(mask)
	for i, pp := range formatCells {
		dark := fb>>i&1 != 0
		for _, p := range pp {
			row, col := m.abs(p)
			m.fix(row, col, dark)
		}
	}

	vb := VersionWord(m.version)
	if vb == 0 {
		return
	}
	siz := m.size
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			dark := vb>>(i*3+j)&1 != 0
			m.fix(siz-11+j, i, dark)
			m.fix(i, siz-11+j, dark)
		}
	}
}

// ReadFormat returns the format information read from the top left
// copy.
func (m *Matrix) ReadFormat() uint16 {
	var fb uint16
	for i, pp := range formatCells {
		if m.At(m.abs(pp[0])).Dark {
			fb |= 1 << i
		}
	}
	return fb
}

// ReadVersion returns the version information read from the top right
// copy, or 0 below version 7.
func (m *Matrix) ReadVersion() uint32 {
	if m.version < 7 {
		return 0
	}
	var vb uint32
	for i := 0; i < 18; i++ {
		if m.At(i/3, m.size-11+i%3).Dark {
			vb |= 1 << i
		}
	}
	return vb
}
