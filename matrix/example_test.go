// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix_test

import (
	"fmt"
	"log"

	"github.com/unixdj/qrmatrix/matrix"
)

func ExampleBuild() {
	// HELLO WORLD, version 1, level L
	t := &matrix.Template{
		Version: 1,
		Data: [][]byte{{
			0x20, 0x5b, 0x0b, 0x78, 0xd1, 0x72, 0xdc, 0x4d, 0x43,
			0x40, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11, 0xec, 0x11,
			0xec,
		}},
		Check:    [][]byte{{0xd1, 0xef, 0xc4, 0xcf, 0x4e, 0xc3, 0x6d}},
		CheckLen: 7,
	}
	s, err := matrix.Build(t)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("mask", s.Mask)
	fmt.Print(s.Matrix)
	// Output:
	// mask 0
	// #######...#.#.#######
	// #.....#.....#.#.....#
	// #.###.#.#.#...#.###.#
	// #.###.#.....#.#.###.#
	// #.###.#..#.##.#.###.#
	// #.....#..###..#.....#
	// #######.#.#.#.#######
	// ........#.#..........
	// ###.#####.#.###...#..
	// ###.##..#.##....#...#
	// ###.#.##.###..#.##...
	// #..##..#.#.###.#.###.
	// ...#####.###..###.#.#
	// ........#.#...#...#.#
	// #######.#...#..#.##..
	// #.....#.#.#...##.#...
	// #.###.#.##..#.#######
	// #.###.#...##.#.#...#.
	// #.###.#.#.##.###.#..#
	// #.....#.#..###...#.##
	// #######.#.##.###....#
}

func ExampleMatrix_PlaceData() {
	m := matrix.Skeleton(1)
	fmt.Println(m.DataModules(), "data modules")

	t := &matrix.Template{
		Version:  1,
		Data:     [][]byte{make([]byte, 19)},
		Check:    [][]byte{make([]byte, 7)},
		CheckLen: 7,
	}
	if err := m.PlaceData(t, 2); err != nil {
		log.Fatalln(err)
	}
	m.EncodeFormatAndVersion(2)
	fmt.Printf("format %015b\n", m.ReadFormat())

	t.Data[0] = t.Data[0][:10]
	fmt.Println(m.PlaceData(t, 2))
	// Output:
	// 208 data modules
	// format 111110110101010
	// qr: 136 codeword bits for 208 data modules
}
