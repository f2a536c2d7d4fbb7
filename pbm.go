// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	length := scale * (siz + bord*2)
	if length > maxPixels {
		return ErrLargeImage
	}
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	var white byte
	if c.Reverse {
		white = 0xff
	}
	fill := func() {
		for i := range row {
			row[i] = white
		}
	}
	fill()
	for i := 0; i < scale*bord; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	for y := 0; y < siz; y++ {
		fill()
		pbmRow(row, c.Bitmap[y*c.Stride:][:c.Stride], siz, scale, scale*bord)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	fill()
	for i := 0; i < scale*bord; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}

// pbmRow toggles the bits of row that show dark QR pixels of srow,
// scaled and starting at bit off.  PBM uses 1 for black.
func pbmRow(row, srow []byte, siz, scale, off int) {
	for x := 0; x < siz; x++ {
		if srow[x/8]>>uint(7-x&7)&1 == 0 {
			continue
		}
		for j := off + x*scale; j < off+(x+1)*scale; j++ {
			row[j/8] ^= 0x80 >> uint(j&7)
		}
	}
}
