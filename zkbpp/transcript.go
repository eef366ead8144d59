//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

import (
	"fmt"

	"github.com/markkurossi/picnic/gf2"
	"github.com/markkurossi/picnic/lowmc"
)

// transcript holds one word per round. The round's gate bits are
// left-aligned in the word: bit 3k+s of the round is the AND slot s
// of the S-box k.
type transcript struct {
	width int
	words []uint64
}

func newTranscript(p *lowmc.Params) transcript {
	return transcript{
		width: p.AndGates(),
		words: make([]uint64, p.R),
	}
}

func parseTranscript(p *lowmc.Params, data []byte) transcript {
	t := newTranscript(p)
	n := p.ViewBits()
	if len(data)*8 < n {
		panic(fmt.Sprintf("transcript too short: got %d bits, need %d",
			len(data)*8, n))
	}
	v := gf2.FromBytes(data, n)
	for r := range t.words {
		t.words[r] = v.Extract(r*t.width, t.width)
	}
	return t
}

// Rounds returns the number of rounds in the transcript.
func (t transcript) Rounds() int {
	return len(t.words)
}

// Bytes returns the transcript bits in the round-major order, packed
// into bytes with the most significant bit first.
func (t transcript) Bytes() []byte {
	n := len(t.words) * t.width
	v := gf2.NewVector(n)
	for r, w := range t.words {
		v.Deposit(r*t.width, t.width, w)
	}
	return v.Bytes(n)
}

// Tape holds the random masks one party consumes at the AND gates.
// The masks are consumed in the round-major, S-box-minor, gate-slot
// innermost order.
type Tape struct {
	transcript
}

// NewTape creates a tape from the packed mask bits. The data must
// hold at least p.ViewBits() bits.
func NewTape(p *lowmc.Params, data []byte) *Tape {
	return &Tape{
		transcript: parseTranscript(p, data),
	}
}

// View holds the messages one party broadcasts at the AND gates. The
// layout matches Tape.
type View struct {
	transcript
}

// NewView creates a view from its packed bits, for example from a
// view disclosed in a proof.
func NewView(p *lowmc.Params, data []byte) *View {
	return &View{
		transcript: parseTranscript(p, data),
	}
}

func newView(p *lowmc.Params) *View {
	return &View{
		transcript: newTranscript(p),
	}
}

// Equal tests if the views are equal.
func (v *View) Equal(o *View) bool {
	return v.width == o.width && gf2.Vector(v.words).Equal(o.words)
}

// Copy returns a copy of the view.
func (v *View) Copy() *View {
	return &View{
		transcript: transcript{
			width: v.width,
			words: gf2.Vector(v.words).Copy(),
		},
	}
}
