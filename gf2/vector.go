//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gf2 implements bit-packed vectors and matrices over GF(2).
//
// Bits are numbered in byte order: bit i of a vector is bit 7-i%8 of
// byte i/8 of its big-endian byte representation. In the packed form
// bit i lives in word i/64 at position 63-i%64.
package gf2

import (
	"encoding/binary"
	"math/bits"
)

// WordBits defines the number of bits in a vector word.
const WordBits = 64

// Words returns the number of words needed to hold n bits.
func Words(n int) int {
	return (n + WordBits - 1) / WordBits
}

// Vector implements a bit vector.
type Vector []uint64

// NewVector creates a zero vector of n bits.
func NewVector(n int) Vector {
	return make(Vector, Words(n))
}

// FromBytes creates a vector of n bits from its byte representation.
// Bits beyond n are ignored.
func FromBytes(data []byte, n int) Vector {
	v := NewVector(n)
	var buf [8]byte
	for i := range v {
		clear(buf[:])
		if i*8 < len(data) {
			copy(buf[:], data[i*8:])
		}
		v[i] = binary.BigEndian.Uint64(buf[:])
	}
	v.clearTail(n)
	return v
}

// Bytes returns the first n bits of the vector as bytes.
func (v Vector) Bytes(n int) []byte {
	var buf [8]byte
	result := make([]byte, (n+7)/8)
	for i := 0; i < len(result); i += 8 {
		binary.BigEndian.PutUint64(buf[:], v[i/8])
		copy(result[i:], buf[:])
	}
	if r := n % 8; r != 0 {
		result[len(result)-1] &= 0xff << (8 - r)
	}
	return result
}

func (v Vector) clearTail(n int) {
	if r := n % WordBits; r != 0 {
		v[n/WordBits] &= ^uint64(0) << (WordBits - r)
	}
}

// Bit returns the bit i.
func (v Vector) Bit(i int) uint {
	return uint(v[i/WordBits]>>(WordBits-1-i%WordBits)) & 1
}

// SetBit sets the bit i to the value b.
func (v Vector) SetBit(i int, b uint) {
	pos := uint(WordBits - 1 - i%WordBits)
	w := &v[i/WordBits]
	*w = (*w &^ (1 << pos)) | uint64(b&1)<<pos
}

// Xor sets v to a^b and returns v.
func (v Vector) Xor(a, b Vector) Vector {
	for i := range v {
		v[i] = a[i] ^ b[i]
	}
	return v
}

// And sets v to a&b and returns v.
func (v Vector) And(a, b Vector) Vector {
	for i := range v {
		v[i] = a[i] & b[i]
	}
	return v
}

// Parity returns the XOR of all bits of v.
func (v Vector) Parity() uint {
	var sum uint64
	for _, w := range v {
		sum ^= w
	}
	return uint(bits.OnesCount64(sum) & 1)
}

// Weight returns the number of set bits in v.
func (v Vector) Weight() int {
	var count int
	for _, w := range v {
		count += bits.OnesCount64(w)
	}
	return count
}

// Equal tests if the vectors are equal.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Copy returns a copy of the vector.
func (v Vector) Copy() Vector {
	result := make(Vector, len(v))
	copy(result, v)
	return result
}

// Extract returns width bits starting from the bit offset. The bits
// are returned left-aligned: bit offset is the most significant bit of
// the result.
func (v Vector) Extract(offset, width int) uint64 {
	i := offset / WordBits
	s := uint(offset % WordBits)
	w := v[i] << s
	if s != 0 && i+1 < len(v) {
		w |= v[i+1] >> (WordBits - s)
	}
	return w & (^uint64(0) << (WordBits - width))
}

// Deposit XORs the left-aligned width bits of w into v starting from
// the bit offset.
func (v Vector) Deposit(offset, width int, w uint64) {
	w &= ^uint64(0) << (WordBits - width)
	i := offset / WordBits
	s := uint(offset % WordBits)
	v[i] ^= w >> s
	if s != 0 && i+1 < len(v) {
		v[i+1] ^= w << (WordBits - s)
	}
}
