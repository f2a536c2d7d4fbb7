// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/unixdj/qrmatrix"
)

func ExampleEncode() {
	c, err := qr.Encode("HELLO WORLD")
	if err != nil {
		log.Fatalln(err)
	}
	s := c.Symbol
	fmt.Printf("version %d, mask %d, %dx%d\n", s.Version, s.Mask, c.Size, c.Size)
	fmt.Println("penalties", s.Penalties)
	// Output:
	// version 1, mask 0, 21x21
	// penalties [448 553 482 526 683 616 542 493]
}

func ExampleCode_EncodePBM() {
	c, err := qr.EncodeOptions("12345", qr.Options{Version: 2})
	if err != nil {
		log.Fatalln(err)
	}
	c.Scale = 2
	var b bytes.Buffer
	if err := c.EncodePBM(&b); err != nil {
		log.Fatalln(err)
	}
	magic, _ := b.ReadString('\n')
	dim, _ := b.ReadString('\n')
	fmt.Print(magic, dim)
	fmt.Println(b.Len(), "bytes of pixels")
	// Output:
	// P4
	// 66 66
	// 594 bytes of pixels
}
