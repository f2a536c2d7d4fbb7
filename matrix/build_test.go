// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrmatrix/gf256"
)

// HELLO WORLD in alphanumeric mode, version 1, level L.
var helloWorld = &Template{
	Version: 1,
	Data: [][]byte{{
		0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d, 0x43, 0x40,
		0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec,
	}},
	Check:    [][]byte{{0xd1, 0xef, 0xc4, 0xcf, 0x4e, 0xc3, 0x6d}},
	CheckLen: 7,
}

var helloWorldCode = []string{
	"#######...#.#.#######",
	"#.....#.....#.#.....#",
	"#.###.#.#.#...#.###.#",
	"#.###.#.....#.#.###.#",
	"#.###.#..#.##.#.###.#",
	"#.....#..###..#.....#",
	"#######.#.#.#.#######",
	"........#.#..........",
	"###.#####.#.###...#..",
	"###.##..#.##....#...#",
	"###.#.##.###..#.##...",
	"#..##..#.#.###.#.###.",
	"...#####.###..###.#.#",
	"........#.#...#...#.#",
	"#######.#...#..#.##..",
	"#.....#.#.#...##.#...",
	"#.###.#.##..#.#######",
	"#.###.#...##.#.#...#.",
	"#.###.#.#.##.###.#..#",
	"#.....#.#..###...#.##",
	"#######.#.##.###....#",
}

// rows draws bits as strings.
func rows(bits [][]byte) []string {
	s := make([]string, len(bits))
	for i, r := range bits {
		var b strings.Builder
		for _, v := range r {
			b.WriteByte(".#"[v])
		}
		s[i] = b.String()
	}
	return s
}

func TestBuildHelloWorld(t *testing.T) {
	s, err := Build(helloWorld)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Version)
	assert.Equal(t, 21, s.Size)
	assert.Equal(t, Mask(0), s.Mask)
	assert.Equal(t, [NumMasks]int{448, 553, 482, 526, 683, 616, 542, 493},
		s.Penalties)
	assert.Equal(t, helloWorldCode, rows(s.Bits))
	assert.Equal(t, strings.Join(helloWorldCode, "\n")+"\n",
		s.Matrix.String())
	assert.Equal(t, uint16(0b111011111000100), s.Matrix.ReadFormat())
	assert.Equal(t, 448, Penalty(s.Matrix))
}

// twoBlocks returns a version 7 template with two blocks of 78 data
// bytes and 20 check bytes.
func twoBlocks() *Template {
	rs := gf256.NewRSEncoder(gf256.NewField(0x11d, 2), 20)
	t := &Template{Version: 7, CheckLen: 20}
	for k := 0; k < 2; k++ {
		data := make([]byte, 78)
		for i := range data {
			data[i] = byte(i*7 + 3 + k*101)
		}
		check := make([]byte, 20)
		rs.ECC(data, check)
		t.Data = append(t.Data, data)
		t.Check = append(t.Check, check)
	}
	return t
}

func TestBuildVersion7(t *testing.T) {
	s, err := Build(twoBlocks())
	require.NoError(t, err)
	assert.Equal(t, 45, s.Size)
	assert.Equal(t, Mask(1), s.Mask)
	assert.Equal(t, [NumMasks]int{
		1800, 1791, 2075, 2252, 1940, 1988, 1931, 1930,
	}, s.Penalties)
	assert.Equal(t, uint32(0x07c94), s.Matrix.ReadVersion())
	assert.Equal(t, FormatWord(1), s.Matrix.ReadFormat())

	got := rows(s.Bits)
	assert.Equal(t, []string{
		"#######.##.##..#.#......####..#.#...#.#######",
		"#.....#.####.##...###.....#..#.##..#..#.....#",
		"#.###.#......#..##....##.#.####....#..#.###.#",
		"#.###.#..##..##.#..#..##.....##..#.##.#.###.#",
		"#.###.#.#..#..#.#########.####...####.#.###.#",
		"#.....#.##...#..#..##...###.#.#..#....#.....#",
		"#######.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#.#######",
		"........##.###.##..##...#..####.#.###........",
	}, got[:8])
	assert.Equal(t, []string{
		"........####.#..#...#...#...##.#..###...#....",
		"#######..##.#.#####.#.#.#...##.##.#.#.#.#..#.",
		"#.....#.###...###.#.#...##.####.#.###...#.#.#",
		"#.###.#.....#..############....###.######...#",
		"#.###.#..#.#..#.##..#.#..#.##.###.##.#..#.###",
		"#.###.#.#.#..###........#.#..###...###.###.##",
		"#.....#.#.##.#.....#.#..#.##.#.....#.##......",
		"#######.#..####..##....#.#....###.#..##.#####",
	}, got[37:])
	dark := 0
	for _, r := range s.Bits {
		for _, v := range r {
			dark += int(v)
		}
	}
	assert.Equal(t, 1043, dark)
}

func TestBuildRerender(t *testing.T) {
	// Rendering the chosen mask once more on the skeleton gives the
	// same symbol.
	for _, tm := range []*Template{helloWorld, twoBlocks()} {
		s, err := Build(tm)
		require.NoError(t, err)
		m := Skeleton(tm.Version)
		require.NoError(t, m.PlaceData(tm, s.Mask))
		m.EncodeFormatAndVersion(s.Mask)
		assert.Equal(t, s.Bits, m.Bits())
		assert.Equal(t, s.Penalties[s.Mask], Penalty(m))
		for _, p := range s.Penalties {
			assert.GreaterOrEqual(t, p, s.Penalties[s.Mask])
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	first, err := Build(twoBlocks())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		s, err := Build(twoBlocks())
		require.NoError(t, err)
		require.Equal(t, first.Bits, s.Bits)
		require.Equal(t, first.Penalties, s.Penalties)
	}
}

func TestBuildErrors(t *testing.T) {
	for _, v := range []int{0, -1, MaxVersion + 1} {
		_, err := Build(&Template{Version: v})
		assert.ErrorIs(t, err, ErrVersion)
	}

	tm := *helloWorld
	tm.Version = 2
	_, err := Build(&tm)
	var ce *CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, CapacityError{Bits: 208, Modules: 359}, *ce)
}
