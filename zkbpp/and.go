//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

// and3 computes the shares of a&b for three parties. The arguments
// hold bit-sliced gates: every bit position of a word is an
// independent gate. The party m with the successor j computes
//
//	c[m] = a[m]b[m] ^ a[m]b[j] ^ a[j]b[m] ^ r[m] ^ r[j]
//
// and XORs c[m], shifted left by shift bits, into its view word.
func and3(a, b, r [3]uint64, shift uint, view *[3]uint64) (c [3]uint64) {
	for m := 0; m < 3; m++ {
		j := (m + 1) % 3
		c[m] = (a[m] & b[m]) ^ (a[m] & b[j]) ^ (a[j] & b[m]) ^ r[m] ^ r[j]
		view[m] ^= c[m] << shift
	}
	return
}

// and2 computes the shares of a&b for the two parties a verifier
// holds. The output of the first party is computed as in and3 and
// XORed into its view word. The output of the second party depends
// on the share of the absent third party and it is taken from the
// disclosed view word: the mask selects the bits of this gate.
func and2(a, b, r [2]uint64, shift uint, mask uint64, view *uint64,
	disclosed uint64) (c [2]uint64) {

	c[0] = (a[0] & b[0]) ^ (a[0] & b[1]) ^ (a[1] & b[0]) ^ r[0] ^ r[1]
	*view ^= c[0] << shift

	c[1] = (disclosed >> shift) & mask

	return
}
