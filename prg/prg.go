//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudorandom generator.
package prg

import (
	"golang.org/x/crypto/chacha20"
)

// Reader implements io.Reader over the ChaCha20 keystream of a seed.
type Reader struct {
	c *chacha20.Cipher
}

// New creates a new reader for the seed. The same seed always
// produces the same stream.
func New(seed [32]byte) *Reader {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &Reader{
		c: c,
	}
}

// Read implements io.Reader.Read. It always fills p.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.c.XORKeyStream(p, p)
	return len(p), nil
}
