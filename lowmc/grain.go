//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package lowmc

import (
	"github.com/markkurossi/picnic/gf2"
)

// grain implements the 80-bit Grain LFSR that produces the LowMC
// instance constants. The register is stored as a ring; pos is the
// index of the logical bit 0.
type grain struct {
	state [80]uint8
	pos   int
}

func newGrain() *grain {
	g := new(grain)
	for i := range g.state {
		g.state[i] = 1
	}
	for i := 0; i < 160; i++ {
		g.clock()
	}
	return g
}

// clock shifts the register by one bit and returns the new bit 79.
func (g *grain) clock() uint8 {
	s := &g.state
	p := g.pos
	bit := s[p] ^ s[(p+13)%80] ^ s[(p+23)%80] ^ s[(p+38)%80] ^
		s[(p+51)%80] ^ s[(p+62)%80]
	s[p] = bit
	g.pos = (p + 1) % 80
	return bit
}

// Bit returns the next self-shrunk output bit: bits are clocked in
// pairs and the second bit of a pair is output when the first one is
// set.
func (g *grain) Bit() uint {
	for {
		choice := g.clock()
		bit := g.clock()
		if choice == 1 {
			return uint(bit)
		}
	}
}

// Vector returns a vector of the next n output bits.
func (g *grain) Vector(n int) gf2.Vector {
	v := gf2.NewVector(n)
	for i := 0; i < n; i++ {
		v.SetBit(i, g.Bit())
	}
	return v
}

// Matrix returns the next rows×cols matrix whose rank is at least
// min(rows, cols). Rank-deficient candidates are discarded.
func (g *grain) Matrix(rows, cols int) *gf2.Matrix {
	want := min(rows, cols)
	for {
		m := gf2.NewMatrix(rows, cols)
		for i := range m.Data {
			m.Data[i] = g.Vector(cols)
		}
		if m.Rank() >= want {
			return m
		}
	}
}
