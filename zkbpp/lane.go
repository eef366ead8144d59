//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

// Lane defines the fixed-width vector operations the engine is built
// on. A lane holds Words() consecutive 64-bit words of a bit vector;
// the first word of the first lane holds the substitution layer.
type Lane[L any] interface {
	Xor(o L) L
	And(o L) L
	// Splat returns a lane with all words set to w.
	Splat(w uint64) L
	// Load returns a lane from the first Words() words of w.
	Load(w []uint64) L
	// Store stores the lane into the first Words() words of w.
	Store(w []uint64)
	// First returns the first word of the lane.
	First() uint64
	// SetFirst returns the lane with its first word replaced by w.
	SetFirst(w uint64) L
	Words() int
}

// W64 implements a 64-bit scalar lane.
type W64 uint64

// Xor implements Lane.Xor.
func (a W64) Xor(o W64) W64 {
	return a ^ o
}

// And implements Lane.And.
func (a W64) And(o W64) W64 {
	return a & o
}

// Splat implements Lane.Splat.
func (a W64) Splat(w uint64) W64 {
	return W64(w)
}

// Load implements Lane.Load.
func (a W64) Load(w []uint64) W64 {
	return W64(w[0])
}

// Store implements Lane.Store.
func (a W64) Store(w []uint64) {
	w[0] = uint64(a)
}

// First implements Lane.First.
func (a W64) First() uint64 {
	return uint64(a)
}

// SetFirst implements Lane.SetFirst.
func (a W64) SetFirst(w uint64) W64 {
	return W64(w)
}

// Words implements Lane.Words.
func (a W64) Words() int {
	return 1
}

// W128 implements a 128-bit vector lane.
type W128 [2]uint64

// Xor implements Lane.Xor.
func (a W128) Xor(o W128) W128 {
	return W128{a[0] ^ o[0], a[1] ^ o[1]}
}

// And implements Lane.And.
func (a W128) And(o W128) W128 {
	return W128{a[0] & o[0], a[1] & o[1]}
}

// Splat implements Lane.Splat.
func (a W128) Splat(w uint64) W128 {
	return W128{w, w}
}

// Load implements Lane.Load.
func (a W128) Load(w []uint64) W128 {
	return W128{w[0], w[1]}
}

// Store implements Lane.Store.
func (a W128) Store(w []uint64) {
	w[0], w[1] = a[0], a[1]
}

// First implements Lane.First.
func (a W128) First() uint64 {
	return a[0]
}

// SetFirst implements Lane.SetFirst.
func (a W128) SetFirst(w uint64) W128 {
	a[0] = w
	return a
}

// Words implements Lane.Words.
func (a W128) Words() int {
	return 2
}

// W256 implements a 256-bit vector lane.
type W256 [4]uint64

// Xor implements Lane.Xor.
func (a W256) Xor(o W256) W256 {
	return W256{a[0] ^ o[0], a[1] ^ o[1], a[2] ^ o[2], a[3] ^ o[3]}
}

// And implements Lane.And.
func (a W256) And(o W256) W256 {
	return W256{a[0] & o[0], a[1] & o[1], a[2] & o[2], a[3] & o[3]}
}

// Splat implements Lane.Splat.
func (a W256) Splat(w uint64) W256 {
	return W256{w, w, w, w}
}

// Load implements Lane.Load.
func (a W256) Load(w []uint64) W256 {
	return W256{w[0], w[1], w[2], w[3]}
}

// Store implements Lane.Store.
func (a W256) Store(w []uint64) {
	w[0], w[1], w[2], w[3] = a[0], a[1], a[2], a[3]
}

// First implements Lane.First.
func (a W256) First() uint64 {
	return a[0]
}

// SetFirst implements Lane.SetFirst.
func (a W256) SetFirst(w uint64) W256 {
	a[0] = w
	return a
}

// Words implements Lane.Words.
func (a W256) Words() int {
	return 4
}
