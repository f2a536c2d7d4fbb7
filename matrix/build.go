// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "golang.org/x/sync/errgroup"

// A Symbol is a finished QR code symbol.
type Symbol struct {
	Version   int           // QR version
	Size      int           // number of modules on a side
	Mask      Mask          // chosen mask
	Penalties [NumMasks]int // penalty of each mask
	Bits      [][]byte      // modules, 1 is dark, 0 is light, row major
	Matrix    *Matrix       // the matrix Bits were taken from
}

// Skeleton returns a matrix for version v with the function patterns
// drawn and the format and version areas reserved.
func Skeleton(v int) *Matrix {
	m := New(v)
	m.PlaceFinders()
	m.PlaceAlignmentAndTiming()
	m.ReserveStub()
	return m
}

// Build places the codewords of t in a QR code symbol.  Each mask is
// tried on a copy of the skeleton and the one with the lowest penalty
// is chosen; on a tie the lower mask number wins.
func Build(t *Template) (*Symbol, error) {
	if t.Version < MinVersion || t.Version > MaxVersion {
		return nil, ErrVersion
	}
	skel := Skeleton(t.Version)
	if err := checkCapacity(t, skel.DataModules()); err != nil {
		return nil, err
	}

	var (
		trials [NumMasks]*Matrix
		s      = Symbol{Version: t.Version, Size: skel.size}
		g      errgroup.Group
	)
	for mask := Mask(0); mask < NumMasks; mask++ {
		mask, m := mask, skel.Clone()
		trials[mask] = m
		g.Go(func() error {
			if err := m.PlaceData(t, mask); err != nil {
				return err
			}
			m.EncodeFormatAndVersion(mask)
			s.Penalties[mask] = Penalty(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for mask, p := range s.Penalties {
		if p < s.Penalties[s.Mask] {
			s.Mask = Mask(mask)
		}
	}
	s.Matrix = trials[s.Mask]
	s.Bits = s.Matrix.Bits()
	return &s, nil
}
