//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

import (
	"io"
)

// Shares holds the XOR shares of a value, one share per party. The
// XOR of all shares is the shared value.
type Shares [][]byte

// Split creates three shares of the value. The shares of the first
// two parties are read from rand.
func Split(value []byte, rand io.Reader) (Shares, error) {
	result := make(Shares, Parties)
	last := make([]byte, len(value))
	copy(last, value)

	for i := 0; i < Parties-1; i++ {
		result[i] = make([]byte, len(value))
		_, err := io.ReadFull(rand, result[i])
		if err != nil {
			return nil, err
		}
		for j, b := range result[i] {
			last[j] ^= b
		}
	}
	result[Parties-1] = last

	return result, nil
}

// PublicShares shares a public value between n parties so that the
// first party holds the value and the others hold zero.
func PublicShares(value []byte, n int) Shares {
	result := make(Shares, n)
	for i := range result {
		result[i] = make([]byte, len(value))
	}
	copy(result[0], value)
	return result
}

// Combine returns the XOR of all shares.
func (s Shares) Combine() []byte {
	if len(s) == 0 {
		return nil
	}
	result := make([]byte, len(s[0]))
	for _, share := range s {
		for i, b := range share {
			result[i] ^= b
		}
	}
	return result
}

// Pair returns the shares of the parties e and e+1, the parties a
// verifier holds for the challenge e.
func (s Shares) Pair(e Party) Shares {
	return Shares{s[e], s[e.Next()]}
}
