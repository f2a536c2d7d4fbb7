// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// maxPixels limits the side of an image.
const maxPixels = 1 << 18

var palette = color.Palette{whiteColor, blackColor}

// PNG returns a PNG image displaying the code, or nil on invalid
// arguments.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.  The image
// has a two colour palette and is encoded at one bit per pixel.
func (c *Code) EncodePNG(w io.Writer) error {
	img, err := c.paletted()
	if err != nil {
		return err
	}
	e := png.Encoder{CompressionLevel: png.BestCompression}
	return e.Encode(w, img)
}

// paletted draws the code on a paletted image.
func (c *Code) paletted() (*image.Paletted, error) {
	if !c.isValid() {
		return nil, ErrArgs
	}
	side := (c.Size + 2*c.Border) * c.Scale
	if side > maxPixels {
		return nil, ErrLargeImage
	}
	img := image.NewPaletted(image.Rect(0, 0, side, side), palette)
	var white, black uint8 = 0, 1
	if c.Reverse {
		white, black = black, white
	}
	for i := range img.Pix {
		img.Pix[i] = white
	}
	off := c.Border * c.Scale
	for y := 0; y < c.Size; y++ {
		row := img.Pix[(off+y*c.Scale)*img.Stride:]
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				px := row[off+x*c.Scale:][:c.Scale]
				for i := range px {
					px[i] = black
				}
			}
		}
		// Repeat the row to fill the module.
		for i := 1; i < c.Scale; i++ {
			copy(row[i*img.Stride:][:side], row[:side])
		}
	}
	return img, nil
}
