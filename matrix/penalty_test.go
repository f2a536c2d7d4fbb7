// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// grid returns a version v matrix with modules set dark where dark
// returns true.
func grid(v int, dark func(i, j int) bool) *Matrix {
	m := New(v)
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			*m.cell(i, j) = Cell{Dark: dark(i, j), Kind: Data}
		}
	}
	return m
}

func TestPenalty(t *testing.T) {
	tests := []struct {
		name          string
		v             int
		dark          func(i, j int) bool
		run, box, bal int
	}{
		{
			name: "light",
			v:    1,
			dark: func(i, j int) bool { return false },
			run:  42 * 187, box: 20 * 20 * 3, bal: 100,
		},
		{
			name: "dark",
			v:    1,
			dark: func(i, j int) bool { return true },
			run:  42 * 187, box: 20 * 20 * 3, bal: 100,
		},
		{
			name: "checkerboard",
			v:    1,
			dark: func(i, j int) bool { return (i+j)%2 == 0 },
		},
		{
			name: "rows",
			v:    1,
			dark: func(i, j int) bool { return i%2 == 0 },
			run:  3927,
		},
		{
			name: "columns",
			v:    1,
			dark: func(i, j int) bool { return j%2 == 0 },
			run:  3927,
		},
		{
			name: "thick rows",
			v:    2,
			dark: func(i, j int) bool { return i/3%2 == 0 },
			run:  25 * 273, box: 16 * 24 * 3,
		},
		{
			name: "thick columns",
			v:    2,
			dark: func(i, j int) bool { return j/3%2 == 0 },
			run:  25 * 273, box: 16 * 24 * 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := grid(tt.v, tt.dark)
			assert.Equal(t, tt.run, runPenalty(m), "RunP")
			assert.Equal(t, tt.box, boxPenalty(m), "BoxP")
			assert.Equal(t, tt.bal, balancePenalty(m), "BalP")
			assert.Equal(t, tt.run+tt.box+tt.bal, Penalty(m))
		})
	}
}

func TestPenaltyTranspose(t *testing.T) {
	f := func(i, j int) bool { return i*j%7 < 3 }
	m := grid(1, f)
	mt := grid(1, func(i, j int) bool { return f(j, i) })
	assert.Equal(t, 1305, Penalty(m))
	assert.Equal(t, Penalty(m), Penalty(mt))
	assert.Equal(t, runPenalty(m), runPenalty(mt))
}

func TestBalancePenalty(t *testing.T) {
	// 441 modules: 10*floor(|10 - 20*dark/441|)
	tests := []struct{ dark, want int }{
		{0, 100},
		{220, 0},
		{221, 0},
		{199, 0},  // 45.1%
		{198, 10}, // 44.9%
		{242, 0},  // 54.9%
		{243, 10}, // 55.1%
		{441, 100},
	}
	for _, tt := range tests {
		n := tt.dark
		m := grid(1, func(i, j int) bool { return i*21+j < n })
		assert.Equal(t, tt.want, balancePenalty(m), "%d dark", n)
	}
}
