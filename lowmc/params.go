//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package lowmc implements the LowMC block cipher parameter sets,
// their round constants, and a plain reference encryption.
package lowmc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/markkurossi/picnic/gf2"
)

// ErrInvalidParams is returned for malformed parameter sets.
var ErrInvalidParams = errors.New("lowmc: invalid parameters")

// Params define a LowMC instance.
type Params struct {
	Name string
	// N is the block size in bits.
	N int
	// K is the key size in bits.
	K int
	// M is the number of 3-bit S-boxes in the substitution layer.
	M int
	// R is the number of rounds.
	R int

	once      sync.Once
	constants *Constants
}

// The LowMC instances of the Picnic signature scheme.
var (
	L1 = &Params{
		Name: "L1",
		N:    128,
		K:    128,
		M:    10,
		R:    20,
	}
	L3 = &Params{
		Name: "L3",
		N:    192,
		K:    192,
		M:    10,
		R:    30,
	}
	L5 = &Params{
		Name: "L5",
		N:    256,
		K:    256,
		M:    10,
		R:    38,
	}
)

// All lists the predefined parameter sets.
var All = []*Params{L1, L3, L5}

// ByName returns the predefined parameter set by its name.
func ByName(name string) (*Params, error) {
	for _, p := range All {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown parameter set '%s'",
		ErrInvalidParams, name)
}

func (p *Params) String() string {
	return fmt.Sprintf("LowMC-%s(n=%d,k=%d,m=%d,r=%d)",
		p.Name, p.N, p.K, p.M, p.R)
}

// Validate checks that the parameters describe a well-formed
// instance.
func (p *Params) Validate() error {
	if p.N <= 0 || p.N%8 != 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidParams, p.N)
	}
	if p.K <= 0 || p.K%8 != 0 {
		return fmt.Errorf("%w: key size %d", ErrInvalidParams, p.K)
	}
	if p.M <= 0 || 3*p.M > p.N || 3*p.M > gf2.WordBits {
		return fmt.Errorf("%w: %d S-boxes for block size %d",
			ErrInvalidParams, p.M, p.N)
	}
	if p.R < 0 {
		return fmt.Errorf("%w: rounds %d", ErrInvalidParams, p.R)
	}
	return nil
}

// BlockBytes returns the block size in bytes.
func (p *Params) BlockBytes() int {
	return p.N / 8
}

// KeyBytes returns the key size in bytes.
func (p *Params) KeyBytes() int {
	return p.K / 8
}

// AndGates returns the number of AND gates evaluated per round.
func (p *Params) AndGates() int {
	return 3 * p.M
}

// ViewBits returns the number of transcript bits one party produces
// during an encryption.
func (p *Params) ViewBits() int {
	return p.R * p.AndGates()
}

// Constants returns the instance constants. The constants are
// generated on the first call and shared by all callers afterwards.
func (p *Params) Constants() *Constants {
	p.once.Do(func() {
		p.constants = generate(p)
	})
	return p.constants
}
