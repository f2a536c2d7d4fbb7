// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"math/rand"
	"testing"

	"github.com/skip2/go-qrcode/bitset"
	"github.com/skip2/go-qrcode/reedsolomon"
	"github.com/stretchr/testify/require"
)

// TestECCCrossCheck compares check bytes with an independent QR
// Reed-Solomon encoder.
func TestECCCrossCheck(t *testing.T) {
	f := NewField(0x11d, 2)
	r := rand.New(rand.NewSource(1))
	for _, c := range []int{7, 10, 18, 20, 26, 30} {
		rs := NewRSEncoder(f, c)
		for n := 0; n < 20; n++ {
			data := make([]byte, 1+r.Intn(120))
			r.Read(data)
			check := make([]byte, c)
			rs.ECC(data, check)

			b := bitset.New()
			b.AppendBytes(data)
			enc := reedsolomon.Encode(b, c)
			require.Equal(t, (len(data)+c)*8, enc.Len())
			want := make([]byte, c)
			for i := range want {
				want[i] = enc.ByteAt((len(data) + i) * 8)
			}
			require.Equal(t, want, check, "%d data bytes, %d check bytes",
				len(data), c)
		}
	}
}
