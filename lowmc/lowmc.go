//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package lowmc

import (
	"fmt"

	"github.com/markkurossi/picnic/gf2"
)

// Sbox applies the substitution layer to the state v. S-box k maps
// the bits (c, b, a) = (3k, 3k+1, 3k+2) as follows:
//
//	a' = a ^ bc
//	b' = a ^ b ^ ca
//	c' = a ^ b ^ c ^ ab
//
// The bits after the last S-box are not modified.
func (p *Params) Sbox(v gf2.Vector) {
	for i := 0; i < 3*p.M; i += 3 {
		a := v.Bit(i + 2)
		b := v.Bit(i + 1)
		c := v.Bit(i)

		v.SetBit(i+2, a^(b&c))
		v.SetBit(i+1, a^b^(c&a))
		v.SetBit(i, a^b^c^(a&b))
	}
}

// Encrypt encrypts the plaintext block with the key. This is the
// bit-by-bit reference implementation of the cipher.
func Encrypt(p *Params, key, plaintext []byte) ([]byte, error) {
	if len(key) != p.KeyBytes() {
		return nil, fmt.Errorf("lowmc: invalid key length %d, expected %d",
			len(key), p.KeyBytes())
	}
	if len(plaintext) != p.BlockBytes() {
		return nil, fmt.Errorf("lowmc: invalid block length %d, expected %d",
			len(plaintext), p.BlockBytes())
	}
	c := p.Constants()
	k := gf2.FromBytes(key, p.K)

	state := gf2.FromBytes(plaintext, p.N)
	state.Xor(state, c.K[0].MulVec(k))

	for r := 0; r < p.R; r++ {
		p.Sbox(state)
		state = c.L[r].MulVec(state)
		state.Xor(state, c.RC[r])
		state.Xor(state, c.K[r+1].MulVec(k))
	}

	return state.Bytes(p.N), nil
}
