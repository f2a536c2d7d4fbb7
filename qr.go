// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes at error correction level L.

Text is split into numeric, alphanumeric and byte mode segments so
that the encoded length is minimal, the smallest version holding it is
chosen, and the symbol is built by package matrix with the data mask
of least penalty.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"image"
	"image/color"
	"strings"

	"github.com/unixdj/qrmatrix/coding"
	"github.com/unixdj/qrmatrix/matrix"
)

var sizeClass = [3]struct {
	min, max coding.Version
}{
	{1, 9}, {10, 26}, {27, 40},
}

const (
	numMode   = iota // numeric
	alphaMode        // alphanumeric
	byteMode         // byte
	modes            // total number of modes

	numModes   = 1<<numMode | 1<<alphaMode | 1<<byteMode
	alphaModes = 1<<alphaMode | 1<<byteMode
	byteModes  = 1 << byteMode
)

// bits[m] returns segment size in bits for a string of n bytes and
// r runes at QR version size class class encoded in mode m.  Latin-1
// byte mode segments are r bytes long.
var bits = [modes]func(n, r, class int, latin1 bool) int{
	func(n, r, class int, latin1 bool) int { return 14 + class*2 + (10*n+2)/3 },
	func(n, r, class int, latin1 bool) int { return 13 + class*2 + (11*n+1)/2 },
	func(n, r, class int, latin1 bool) int {
		if latin1 {
			n = r
		}
		return 12 + class<<1>>class*8 + n*8
	},
}

type (
	// segment describes a segment encoded in a certain mode.
	segment struct {
		next   *segment // link to next segment in the chain
		start  int      // start of string
		slen   int      // length of string in bytes
		rlen   int      // length of string in runes
		weight int      // encoded size of all segments in the chain
		mode   byte     // encoding mode
	}

	// span describes a span of bytes encodable in the same modes.
	span struct {
		start int            // start of string
		slen  int            // length of string in bytes
		rlen  int            // length of string in runes
		modes byte           // bit field of valid encoding modes
		seg   [modes]segment // segments
	}
)

// classify splits text into spans of bytes encodable in the same modes.
func classify(text string) []span {
	if text == "" {
		return nil
	}
	const (
		alpha = 0x07ff_fffe_07ff_ec31 // SPACE $% *+ -./ [0-9] : [A-Z]
		digit = 0x0000_0000_03ff_0000 // [0-9]
	)

	// Detect valid encoding modes for each rune.
	modes := make([]byte, len(text))
	common := ^byte(0) // bit field of modes common to all spans
	n := 0
	m := byte(0)
	for i, r := range text {
		old := m
		m = byteModes
		if bit := uint64(1) << (uint(r) - ' '); digit&bit != 0 {
			m = numModes
		} else if alpha&bit != 0 {
			m = alphaModes
		}
		modes[i] = m
		if m != old {
			common &= m
			n++
		}
	}

	mask := ^common | -common // Mask common modes except the lowest

	sp := make([]span, n)
	old, n := byte(0), 0
	for i, v := range modes {
		if v == 0 {
			continue
		}
		if v != old {
			if i != 0 {
				sp[n].slen = i - sp[n].start
				n++
			}
			sp[n].start = i
			sp[n].modes = v & mask
			old = v
		}
		sp[n].rlen++
	}
	sp[n].slen = len(modes) - sp[n].start
	return sp
}

/*
split returns the optimal split for the string described by sp at
the given QR version size class.

For the last span, for each valid mode j, create a segment
sp[len(sp)-1].seg[j] describing the span encoded in mode j and
calculate its weight, the encoded length in bits.

Then walk backwards through the rest of the spans.  For each span i,
for each valid mode j, link a segment to each segment
next=sp[i+1].seg[k].  If k==j, merge the two by adding the length of
next and linking to next.next instead.  The weight of the chain is the
weight of the segment plus that of the next one.  The lightest chain
becomes sp[i].seg[j].

Return the segment in sp[0].seg with the smallest weight.
*/
func split(sp []span, class int, latin1 bool) *segment {
	const Inf = 1 << 30
	i := len(sp) - 1
	if i < 0 {
		return nil
	}
	for j := byte(0); j < modes; j++ {
		seg := &sp[i].seg[j]
		*seg = segment{weight: Inf}
		if sp[i].modes>>j&1 != 0 {
			*seg = segment{
				start:  sp[i].start,
				slen:   sp[i].slen,
				rlen:   sp[i].rlen,
				weight: bits[j](sp[i].slen, sp[i].rlen, class, latin1),
				mode:   j,
			}
			if i == 0 {
				return seg
			}
		}
	}

	for i--; i >= 0; i-- {
		v := &sp[i]
		for j := byte(0); j < modes; j++ {
			seg := &v.seg[j]
			*seg = segment{weight: Inf}
			if v.modes>>j&1 == 0 {
				continue
			}
			weight := bits[j](v.slen, v.rlen, class, latin1)
			ns := &sp[i+1].seg
			for k := byte(0); k < modes; k++ {
				next := &ns[k]
				if next.weight == Inf {
					continue
				}
				c := segment{
					next:   next,
					start:  v.start,
					slen:   v.slen,
					rlen:   v.rlen,
					weight: weight,
					mode:   j,
				}
				if k == j {
					c.slen += next.slen
					c.rlen += next.rlen
					c.next = next.next
					c.weight = bits[j](c.slen, c.rlen, class, latin1)
				}
				if c.next != nil {
					c.weight += c.next.weight
				}
				if c.weight < seg.weight {
					*seg = c
				}
			}
		}
	}

	seg := &sp[0].seg[0]
	for j := 1; j < modes; j++ {
		if sp[0].seg[j].weight < seg.weight {
			seg = &sp[0].seg[j]
		}
	}
	return seg
}

// Options control encoding.
type Options struct {
	Version  coding.Version // minimum QR version, 0 for any
	Latin1   bool           // byte mode as ISO 8859-1 if text allows
	ByteOnly bool           // a single byte mode segment
}

// Encode returns an encoding of text in the smallest QR code.
func Encode(text string) (*Code, error) {
	return EncodeOptions(text, Options{})
}

// EncodeOptions returns an encoding of text according to o.
func EncodeOptions(text string, o Options) (*Code, error) {
	if o.Version != 0 && !o.Version.Valid() {
		return nil, coding.ErrVersion
	}
	bm := coding.Byte
	if o.Latin1 && (coding.Segment{Text: text, Mode: coding.Latin1}).IsValid() {
		bm = coding.Latin1
	}
	if o.ByteOnly {
		return EncodeSegment(coding.Segment{Text: text, Mode: bm}, o.Version)
	}
	latin1 := bm == coding.Latin1

	// Estimate minimum QR version size class in a crude manner.
	class := 0
	if o.Version != 0 {
		class = o.Version.SizeClass()
	}
	weight := bits[numMode](len(text), 0, class, false)
	for class < 2 && sizeClass[class].max.DataBits() < weight {
		class++
	}
	sp := classify(text)
	seg := split(sp, class, latin1)
	if seg != nil { // seg is nil if text == ""
		weight = seg.weight
	}
	// If string is too big for the size class, increment class
	// and resplit.  The weight will change, hence the loop.
	for sizeClass[class].max.DataBits() < weight {
		class++
		for class < 3 && sizeClass[class].max.DataBits() < weight {
			class++
		}
		if class == 3 {
			return nil, coding.ErrTooLong
		}
		seg = split(sp, class, latin1)
		weight = seg.weight
	}

	// Find version in the size class.
	v := max(sizeClass[class].min, o.Version)
	for hi := sizeClass[class].max; v < hi; {
		if mid := (v + hi) / 2; mid.DataBits() < weight {
			v = mid + 1
		} else {
			hi = mid
		}
	}

	var segs []coding.Segment
	for ; seg != nil; seg = seg.next {
		s := coding.Segment{Text: text[seg.start : seg.start+seg.slen]}
		switch seg.mode {
		case numMode:
			s.Mode = coding.Numeric
		case alphaMode:
			s.Mode = coding.Alphanumeric
		default:
			s.Mode = bm
		}
		segs = append(segs, s)
	}
	return encode(v, segs)
}

// EncodeSegment returns an encoding of seg in a QR code of version v,
// or of the smallest version if v is 0.
func EncodeSegment(seg coding.Segment, v coding.Version) (*Code, error) {
	if v == 0 {
		var err error
		if v, err = coding.Fit(seg); err != nil {
			return nil, err
		}
	}
	return encode(v, []coding.Segment{seg})
}

func encode(v coding.Version, segs []coding.Segment) (*Code, error) {
	t, err := coding.Encode(v, segs...)
	if err != nil {
		return nil, err
	}
	s, err := matrix.Build(t)
	if err != nil {
		return nil, err
	}
	return FromSymbol(s), nil
}

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap  []byte // 1 is black, 0 is white
	Size    int    // number of pixels on a side
	Stride  int    // number of bytes per row
	Scale   int    // number of image pixels per QR pixel
	Border  int    // number of QR pixels of quiet zone
	Reverse bool   // reverse colours

	Symbol *matrix.Symbol // symbol the code was built from
}

// Default scale and border width.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

// FromSymbol returns a Code displaying s.
func FromSymbol(s *matrix.Symbol) *Code {
	stride := (s.Size + 7) / 8
	c := &Code{
		Bitmap: make([]byte, stride*s.Size),
		Size:   s.Size,
		Stride: stride,
		Scale:  DefaultScale,
		Border: DefaultBorder,
		Symbol: s,
	}
	for y, row := range s.Bits {
		for x, v := range row {
			c.Bitmap[y*stride+x/8] |= v << uint(7-x&7)
		}
	}
	return c
}

// Black returns true if the pixel at (x,y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

// isValid reports whether c can be drawn.
func (c *Code) isValid() bool {
	return c.Size > 0 && c.Scale > 0 && c.Border >= 0 &&
		c.Stride >= (c.Size+7)/8 && len(c.Bitmap) >= c.Stride*c.Size
}

// String returns the code drawn with UTF-8 half blocks, two QR rows per
// line, dark on light.
func (c *Code) String() string {
	blocks := [4]string{" ", "▄", "▀", "█"}
	bord := c.Border
	var b strings.Builder
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if c.Black(x, y) != c.Reverse {
				i |= 2
			}
			if y+1 < c.Size+bord && c.Black(x, y+1) != c.Reverse {
				i |= 1
			}
			b.WriteString(blocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
