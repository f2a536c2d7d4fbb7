// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

// Penalty returns the penalty value of a filled matrix, used for
// choosing the mask.  Lower is better.
//
// The penalty is the sum of:
//
//   - RunP: for every module of a same-colour row or column run from
//     the 5th onwards, the run length so far minus 2.  A run of 5 gets
//     3 points, a run of 6 gets 3+4.
//   - BoxP: for possibly overlapping same-colour 2x2 boxes -> 3
//   - BalP: 10 points for every full 5% of dark module ratio deviation
//     from 50%
//
// Finder-like patterns are not penalised.
func Penalty(m *Matrix) int {
	return runPenalty(m) + boxPenalty(m) + balancePenalty(m)
}

const (
	minRun    = 5  // RunP:  miniumum run length
	runPDelta = -2 // RunP:  add to run length
	boxPP     = 3  // BoxP:  points per box
	balPP     = 10 // BalP:  10 points
	balPMul   = 20 //        for every 5% (1/20)
)

// runPenalty returns RunP for rows and columns.
func runPenalty(m *Matrix) int {
	siz := m.size
	p := 0
	for i := 0; i < siz; i++ {
		rr, rc := 1, 1 // row and column run lengths
		for j := 1; j < siz; j++ {
			if m.At(i, j).Dark == m.At(i, j-1).Dark {
				rr++
			} else {
				rr = 1
			}
			if rr >= minRun {
				p += rr + runPDelta
			}
			if m.At(j, i).Dark == m.At(j-1, i).Dark {
				rc++
			} else {
				rc = 1
			}
			if rc >= minRun {
				p += rc + runPDelta
			}
		}
	}
	return p
}

// boxPenalty returns BoxP.
func boxPenalty(m *Matrix) int {
	p := 0
	for i := 0; i < m.size-1; i++ {
		for j := 0; j < m.size-1; j++ {
			d := m.At(i, j).Dark
			if m.At(i, j+1).Dark == d && m.At(i+1, j).Dark == d &&
				m.At(i+1, j+1).Dark == d {
				p += boxPP
			}
		}
	}
	return p
}

// balancePenalty returns BalP, 10*floor(|10 - 20*dark/total|).
func balancePenalty(m *Matrix) int {
	dark := 0
	for _, c := range m.cells {
		if c.Dark {
			dark++
		}
	}
	sq := m.size * m.size
	d := sq*balPMul/2 - dark*balPMul
	if d < 0 {
		d = -d
	}
	return d / sq * balPP
}
