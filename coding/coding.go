// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding encodes text into QR code codewords at error
// correction level L, producing templates for package matrix.
package coding // import "github.com/unixdj/qrmatrix/coding"

//go:generate sh -c "go run gen.go | gofmt > tables.go"

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrmatrix/gf256"
	"github.com/unixdj/qrmatrix/matrix"
)

var (
	ErrVersion = matrix.ErrVersion
	ErrTooLong = errors.New("qr: text too long to encode as QR")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

// Version limits.
const (
	MinVersion Version = matrix.MinVersion // Minimum QR version
	MaxVersion Version = matrix.MaxVersion // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Valid reports whether v is a QR version.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return matrix.Size(int(v)) }

// QR version size classes.  Character count field lengths depend on
// the size class.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// A version describes the codeword layout of a version.
type version struct {
	bytes     int // total codewords
	remainder int // remainder bits
	nblock    int // error correction blocks
	check     int // check bytes per block
}

// DataBytes returns the number of data bytes that can be stored in
// a QR code with version v.
func (v Version) DataBytes() int {
	vt := &vtab[v]
	return vt.bytes - vt.nblock*vt.check
}

// DataBits returns the number of data bits that can be stored in
// a QR code with version v.
func (v Version) DataBits() int { return v.DataBytes() * 8 }

// Bits is a big endian bit buffer.
type Bits struct {
	b    []byte
	nbit int
}

// Reset empties b.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the contents of b.  It panics on a fractional byte.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v to b, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo adds up to 4 terminator bits to b, pads it to a byte boundary
// and fills it up to n bits with alternating 0xec and 0x11 bytes.
func (b *Bits) PadTo(n int) {
	b.nbit = min(b.nbit+4, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); len(b.b)*8 < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
}

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, ASCII-compatible text
	Alphanumeric             // alphanumeric mode, ASCII-compatible text
	Byte                     // byte mode, any data
	Latin1                   // byte mode, UTF-8 text encoded as ISO 8859-1
	numModes
)

// A Mode is a QR segment encoding mode.
type Mode int

type modeEncoder struct {
	name        string
	indicator   uint32
	countLength [3]int // by size class

	// encodedLength returns the encoded data length in bits of
	// a string of the given length in bytes and runes.
	encodedLength func(bytes, runes int) int

	// accepts reports whether the mode accepts the rune.
	// If nil, any byte is accepted.
	accepts func(rune) bool

	// transform converts a valid string for encoding.
	transform func(string) (string, error)

	// encode3, encode2 and encode1 return the encoding of the bytes
	// and its length in bits.  If all are nil, each byte is encoded
	// as 8 bits.
	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)
}

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 8, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

var modes = [numModes]modeEncoder{
	Numeric: {
		name:          "numeric",
		indicator:     1,
		countLength:   [3]int{10, 12, 14},
		encodedLength: func(b, r int) int { return (10*b + 2) / 3 },
		accepts:       func(r rune) bool { return uint32(r-'0') < 10 },
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0]-'0')*100 + uint32(b[1]-'0')*10 +
				uint32(b[2]-'0'), 10
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]-'0')*10 + uint32(b[1]-'0'), 7
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
	},
	Alphanumeric: {
		name:          "alphanumeric",
		indicator:     2,
		countLength:   [3]int{9, 11, 13},
		encodedLength: func(b, r int) int { return (11*b + 1) / 2 },
		accepts: func(r rune) bool {
			return uint32(r-' ') < 64 && alphamask>>(r-' ')&1 != 0
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
	},
	Byte: {
		name:          "byte",
		indicator:     4,
		countLength:   [3]int{8, 16, 16},
		encodedLength: func(b, r int) int { return b * 8 },
	},
	Latin1: {
		name:          "latin-1",
		indicator:     4,
		countLength:   [3]int{8, 16, 16},
		encodedLength: func(b, r int) int { return r * 8 },
		accepts:       func(r rune) bool { return uint32(r) < 0x100 },
		transform: func(s string) (string, error) {
			return charmap.ISO8859_1.NewEncoder().String(s)
		},
	},
}

func (mode Mode) String() string {
	if mode.valid() {
		return modes[mode].name
	}
	return strconv.Itoa(int(mode))
}

func (mode Mode) valid() bool { return 0 <= mode && mode < numModes }

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode.valid() {
		return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if !seg.Mode.valid() {
		return false
	}
	is := modes[seg.Mode].accepts
	switch {
	case is == nil:
	case seg.Mode < Byte:
		for i := 0; i < len(seg.Text); i++ {
			if !is(rune(seg.Text[i])) {
				return false
			}
		}
	default:
		for _, r := range seg.Text {
			if r == utf8.RuneError || !is(r) {
				return false
			}
		}
	}
	return true
}

// EncodedLength returns the encoded length in bits of seg in the
// given QR version size class, including the header.  The segment is
// not validated.  EncodedLength returns 0 if the mode is invalid.
func (seg Segment) EncodedLength(class int) int {
	if !seg.Mode.valid() {
		return 0
	}
	m := &modes[seg.Mode]
	return 4 + m.countLength[class] +
		m.encodedLength(len(seg.Text), utf8.RuneCountInString(seg.Text))
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	m := &modes[seg.Mode]
	s := seg.Text
	if m.transform != nil {
		var err error
		if s, err = m.transform(s); err != nil {
			return SegmentError(seg)
		}
	}
	b.Write(m.indicator, 4)
	b.Write(uint32(len(s)), m.countLength[class])
	if m.encode3 == nil && m.encode2 == nil && m.encode1 == nil {
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
		return nil
	}
	if m.encode3 != nil {
		for ; len(s) >= 3; s = s[3:] {
			b.Write(m.encode3([3]byte{s[0], s[1], s[2]}))
		}
	}
	if m.encode2 != nil {
		for ; len(s) >= 2; s = s[2:] {
			b.Write(m.encode2([2]byte{s[0], s[1]}))
		}
	}
	for ; len(s) >= 1; s = s[1:] {
		b.Write(m.encode1(s[0]))
	}
	return nil
}

// Classify returns a segment for text in the most compact of the
// numeric, alphanumeric and the given byte mode that accepts all of it.
func Classify(text string, byteMode Mode) Segment {
	for _, mode := range []Mode{Numeric, Alphanumeric} {
		if seg := (Segment{text, mode}); seg.IsValid() {
			return seg
		}
	}
	return Segment{text, byteMode}
}

// length returns the encoded length of segs in the size class.
func length(class int, segs []Segment) int {
	n := 0
	for _, seg := range segs {
		n += seg.EncodedLength(class)
	}
	return n
}

// Fit returns the smallest version that can hold segs.
func Fit(segs ...Segment) (Version, error) {
	for _, seg := range segs {
		if !seg.IsValid() {
			return 0, SegmentError(seg)
		}
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if length(v.SizeClass(), segs) <= v.DataBits() {
			return v, nil
		}
	}
	return 0, ErrTooLong
}

// Encode returns the template of a QR code with version v holding
// segs: data and check bytes split into blocks.
func Encode(v Version, segs ...Segment) (*matrix.Template, error) {
	if !v.Valid() {
		return nil, ErrVersion
	}
	vt := &vtab[v]
	var b Bits
	b.b = make([]byte, 0, vt.bytes)
	class := v.SizeClass()
	for _, seg := range segs {
		if err := seg.Encode(&b, class); err != nil {
			return nil, err
		}
	}
	nd := v.DataBytes()
	if b.Bits() > nd*8 {
		return nil, fmt.Errorf("qr: cannot encode %d bits into %d-bit code: %w",
			b.Bits(), nd*8, ErrTooLong)
	}
	b.PadTo(nd * 8)

	// Blocks are db or db+1 bytes long, short blocks first.
	t := &matrix.Template{
		Version:  int(v),
		Data:     make([][]byte, vt.nblock),
		Check:    make([][]byte, vt.nblock),
		CheckLen: vt.check,
	}
	dat := b.Bytes()
	db := nd / vt.nblock
	normal := (db+1)*vt.nblock - nd
	rs := gf256.NewRSEncoder(Field, vt.check)
	check := make([]byte, vt.nblock*vt.check)
	for i := 0; i < vt.nblock; i++ {
		if i == normal {
			db++
		}
		t.Data[i], dat = dat[:db:db], dat[db:]
		t.Check[i], check = check[:vt.check:vt.check], check[vt.check:]
		rs.ECC(t.Data[i], t.Check[i])
	}
	if len(dat) != 0 {
		panic("qr: internal error")
	}
	return t, nil
}
