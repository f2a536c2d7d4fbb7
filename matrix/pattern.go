// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

// ring returns the ring number of offset i, j from the centre of a box:
// 0 for the centre, 1 for the 8 modules around it and so on.
func ring(i, j int) int {
	return max(i, j, -i, -j)
}

// PlaceFinders draws the three 7x7 position boxes at the top left, top
// right and bottom left corners and the light separators around them.
func (m *Matrix) PlaceFinders() {
	siz := m.size
	for i := -3; i <= 3; i++ {
		for j := -3; j <= 3; j++ {
			dark := ring(i, j) != 2
			m.fix(3+i, 3+j, dark)
			m.fix(3+i, siz-4+j, dark)
			m.fix(siz-4+i, 3+j, dark)
		}
	}
	for i := 0; i < 8; i++ {
		m.fix(7, i, false)
		m.fix(i, 7, false)
		m.fix(7, siz-1-i, false)
		m.fix(i, siz-8, false)
		m.fix(siz-8, i, false)
		m.fix(siz-1-i, 7, false)
	}
}

// AlignmentCenters returns the row and column coordinates of alignment
// box centres for version v, in ascending order.  Version 1 has none.
// The boxes are placed at every combination of the coordinates that
// doesn't overlap a position box.
func AlignmentCenters(v int) []int {
	if v < 2 {
		return nil
	}
	l := Size(v) - 13
	n := (l + 27) / 28           // number of strides
	delta := (2*l + n) / (2 * n) // l/n rounded
	delta += delta & 1
	var pos []int
	for p := l + 6; p > 10; p -= delta {
		pos = append(pos, p)
	}
	pos = append(pos, 6)
	for i, j := 0, len(pos)-1; i < j; i, j = i+1, j-1 {
		pos[i], pos[j] = pos[j], pos[i]
	}
	return pos
}

// PlaceAlignmentAndTiming draws the 5x5 alignment boxes and the
// horizontal and vertical timing patterns.  It must be called after
// PlaceFinders.
func (m *Matrix) PlaceAlignmentAndTiming() {
	pos := AlignmentCenters(m.version)
	for _, r := range pos {
		for _, c := range pos {
			if m.At(r, c).Kind != Unset {
				continue // position box
			}
			for i := -2; i <= 2; i++ {
				for j := -2; j <= 2; j++ {
					m.fix(r+i, c+j, ring(i, j) != 1)
				}
			}
		}
	}
	for i := 8; i < m.size-8; i++ {
		dark := i&1 == 0
		m.fix(6, i, dark)
		m.fix(i, 6, dark)
	}
}

// ReserveStub reserves the format information area next to the position
// boxes and, from version 7, the version information area.  All the
// reserved modules are light except the lonely dark module above the
// bottom left position box.
func (m *Matrix) ReserveStub() {
	siz := m.size
	for i := 0; i < 8; i++ {
		if i != 6 {
			m.fix(8, i, false)
			m.fix(i, 8, false)
		}
		m.fix(8, siz-1-i, false)
		m.fix(siz-1-i, 8, false)
	}
	m.fix(8, 8, false)
	m.fix(siz-8, 8, true)

	if m.version < 7 {
		return
	}
	for i := siz - 11; i < siz-8; i++ {
		for j := 0; j < 6; j++ {
			m.fix(i, j, false)
			m.fix(j, i, false)
		}
	}
}
