//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package lowmc

import (
	"github.com/markkurossi/picnic/gf2"
)

// Constants hold the linear layer matrices, round constants, and key
// schedule matrices of a LowMC instance.
type Constants struct {
	// L holds the N×N linear layer matrix of each round.
	L []*gf2.Matrix
	// RC holds the N-bit round constant of each round.
	RC []gf2.Vector
	// K holds the N×K key matrices. K[0] is the whitening key matrix
	// and K[r+1] the round key matrix of round r.
	K []*gf2.Matrix
}

// generate derives the constants from the Grain LFSR in the order of
// the LowMC reference implementation: linear layers, round constants,
// key matrices.
func generate(p *Params) *Constants {
	g := newGrain()
	c := &Constants{
		L:  make([]*gf2.Matrix, p.R),
		RC: make([]gf2.Vector, p.R),
		K:  make([]*gf2.Matrix, p.R+1),
	}
	for r := range c.L {
		c.L[r] = g.Matrix(p.N, p.N)
	}
	for r := range c.RC {
		c.RC[r] = g.Vector(p.N)
	}
	for r := range c.K {
		c.K[r] = g.Matrix(p.N, p.K)
	}
	return c
}
