//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

// layout describes how the substitution layer is bit-sliced into the
// first state word. The S-box k holds the state bits (c, b, a) = (3k,
// 3k+1, 3k+2) which live at the word positions 63-3k, 62-3k, and
// 61-3k.
//
// The gates of all S-boxes are evaluated at once with their operands
// aligned to the positions of the a bits (maskA). The gate slot s of
// the S-box k is recorded in the tape and view bit 3k+s, i.e. the
// aligned value shifted left by 2-s bits.
type layout struct {
	maskA uint64
	mask  uint64
}

// The AND gate slots of an S-box.
const (
	slotAB = iota
	slotBC
	slotCA
)

func newLayout(m int) layout {
	var l layout
	for k := 0; k < m; k++ {
		l.maskA |= 1 << (61 - 3*k)
	}
	l.mask = l.maskA | l.maskA<<1 | l.maskA<<2
	return l
}

// shift returns the offset of the gate slot from the aligned
// position.
func (l layout) shift(slot int) uint {
	return uint(2 - slot)
}

// split returns the a, b, and c bits of all S-boxes in the aligned
// positions.
func (l layout) split(w uint64) (a, b, c uint64) {
	return w & l.maskA, (w >> 1) & l.maskA, (w >> 2) & l.maskA
}

// random returns the tape bits of the gate slot in the aligned
// positions.
func (l layout) random(w uint64, slot int) uint64 {
	return (w >> l.shift(slot)) & l.maskA
}

// combine computes the S-box outputs
//
//	a' = a ^ bc
//	b' = a ^ b ^ ca
//	c' = a ^ b ^ c ^ ab
//
// from the inputs and the AND gate outputs and places them into the
// word w. The bits outside the substitution layer are not modified.
func (l layout) combine(w, a, b, c, ab, bc, ca uint64) uint64 {
	na := a ^ bc
	nb := a ^ b ^ ca
	nc := a ^ b ^ c ^ ab
	return (w &^ l.mask) | na | nb<<1 | nc<<2
}

// sbox applies the substitution layer to a plain state word.
func (l layout) sbox(w uint64) uint64 {
	a, b, c := l.split(w)
	return l.combine(w, a, b, c, a&b, b&c, c&a)
}

// sbox3 applies the substitution layer to the first state words of
// three parties. The tape words hold the round's random masks and the
// round's gate outputs are XORed into the view words.
func (l layout) sbox3(w, tape [3]uint64, view *[3]uint64) (out [3]uint64) {
	var a, b, c, r0, r1, r2 [3]uint64
	for i := range w {
		a[i], b[i], c[i] = l.split(w[i])
		r0[i] = l.random(tape[i], slotAB)
		r1[i] = l.random(tape[i], slotBC)
		r2[i] = l.random(tape[i], slotCA)
	}

	ab := and3(a, b, r0, l.shift(slotAB), view)
	bc := and3(b, c, r1, l.shift(slotBC), view)
	ca := and3(c, a, r2, l.shift(slotCA), view)

	for i := range w {
		out[i] = l.combine(w[i], a[i], b[i], c[i], ab[i], bc[i], ca[i])
	}
	return
}

// sbox2 applies the substitution layer to the first state words of
// the two parties a verifier holds. The gate outputs of the first
// party are XORed into its view word and the gate outputs of the
// second party are read from its disclosed view word.
func (l layout) sbox2(w, tape [2]uint64, view *uint64, disclosed uint64) (
	out [2]uint64) {

	var a, b, c, r0, r1, r2 [2]uint64
	for i := range w {
		a[i], b[i], c[i] = l.split(w[i])
		r0[i] = l.random(tape[i], slotAB)
		r1[i] = l.random(tape[i], slotBC)
		r2[i] = l.random(tape[i], slotCA)
	}

	ab := and2(a, b, r0, l.shift(slotAB), l.maskA, view, disclosed)
	bc := and2(b, c, r1, l.shift(slotBC), l.maskA, view, disclosed)
	ca := and2(c, a, r2, l.shift(slotCA), l.maskA, view, disclosed)

	for i := range w {
		out[i] = l.combine(w[i], a[i], b[i], c[i], ab[i], bc[i], ca[i])
	}
	return
}
