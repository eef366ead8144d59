//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/picnic/lowmc"
)

// ExpandTape derives the random tape of the party from the seed. The
// salt separates tapes of different proofs. Instances with blocks up
// to 128 bits use SHAKE128, larger ones SHAKE256.
//
// ExpandTape is a convenience for tools and tests. The engines never
// derive tapes themselves: a signature scheme with its own seed
// derivation passes its tape bits to NewTape.
func ExpandTape(p *lowmc.Params, seed, salt []byte, party Party) *Tape {
	var h sha3.ShakeHash
	if p.N <= 128 {
		h = sha3.NewShake128()
	} else {
		h = sha3.NewShake256()
	}

	var buf [4]byte
	binary.BigEndian.PutUint16(buf[0:], uint16(party))
	binary.BigEndian.PutUint16(buf[2:], uint16(p.ViewBits()))

	h.Write(seed)
	h.Write(salt)
	h.Write(buf[:])

	data := make([]byte, (p.ViewBits()+7)/8)
	h.Read(data)

	return NewTape(p, data)
}
