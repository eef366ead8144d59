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

// engine implements the shared LowMC evaluation over the lane type L.
// The engine is immutable after creation.
type engine[L Lane[L]] struct {
	params  *lowmc.Params
	backend Backend
	layout  layout
	wpl     int
	lanes   int
	klanes  int
	// Matrices are stored as columns, each column lanes long.
	lmat [][]L
	kmat [][]L
	rc   [][]L
}

func newEngine[L Lane[L]](p *lowmc.Params, backend Backend) *engine[L] {
	var zero L

	wpl := zero.Words()
	e := &engine[L]{
		params:  p,
		backend: backend,
		layout:  newLayout(p.M),
		wpl:     wpl,
		lanes:   (gf2.Words(p.N) + wpl - 1) / wpl,
		klanes:  (gf2.Words(p.K) + wpl - 1) / wpl,
	}

	c := p.Constants()
	for _, m := range c.L {
		e.lmat = append(e.lmat, e.columns(m))
	}
	for _, m := range c.K {
		e.kmat = append(e.kmat, e.columns(m))
	}
	for _, v := range c.RC {
		rc := make([]L, e.lanes)
		e.load(rc, v)
		e.rc = append(e.rc, rc)
	}
	return e
}

func (e *engine[L]) String() string {
	return fmt.Sprintf("%s/%s", e.params.Name, e.backend)
}

// Params implements Engine.Params.
func (e *engine[L]) Params() *lowmc.Params {
	return e.params
}

// Backend implements Engine.Backend.
func (e *engine[L]) Backend() Backend {
	return e.backend
}

func (e *engine[L]) columns(m *gf2.Matrix) []L {
	result := make([]L, m.Cols*e.lanes)
	for j := 0; j < m.Cols; j++ {
		e.load(result[j*e.lanes:(j+1)*e.lanes], m.Column(j))
	}
	return result
}

// load loads the vector v into the lanes dst. The last lane is
// padded with zero words.
func (e *engine[L]) load(dst []L, v gf2.Vector) {
	var zero L

	buf := make([]uint64, len(dst)*e.wpl)
	copy(buf, v)
	for i := range dst {
		dst[i] = zero.Load(buf[i*e.wpl:])
	}
}

// store stores the lanes src into the words of v.
func (e *engine[L]) store(v gf2.Vector, src []L) {
	buf := make([]uint64, len(src)*e.wpl)
	for i, l := range src {
		l.Store(buf[i*e.wpl:])
	}
	copy(v, buf)
}

func (e *engine[L]) loadBytes(data []byte, bits, lanes int) []L {
	result := make([]L, lanes)
	e.load(result, gf2.FromBytes(data, bits))
	return result
}

func (e *engine[L]) storeBytes(src []L, bits int) []byte {
	v := gf2.NewVector(bits)
	e.store(v, src)
	return v.Bytes(bits)
}

// workspace holds the per-call scratch buffers.
type workspace[L Lane[L]] struct {
	acc  []L
	rk   []L
	bits []uint64
}

func (e *engine[L]) newWorkspace() *workspace[L] {
	return &workspace[L]{
		acc:  make([]L, e.lanes),
		rk:   make([]L, e.lanes),
		bits: make([]uint64, max(e.lanes, e.klanes)*e.wpl),
	}
}

// mul computes dst = M·v where cols holds the n columns of M. The
// product is computed without data-dependent branches: each column is
// masked with its vector bit.
func (e *engine[L]) mul(dst, v, cols []L, n int, ws *workspace[L]) {
	var zero L

	bits := ws.bits[:len(v)*e.wpl]
	for i, l := range v {
		l.Store(bits[i*e.wpl:])
	}
	acc := ws.acc
	for i := range acc {
		acc[i] = zero
	}
	for j := 0; j < n; j++ {
		mask := zero.Splat(-((bits[j/64] >> (63 - j%64)) & 1))
		col := cols[j*e.lanes : (j+1)*e.lanes]
		for i := range acc {
			acc[i] = acc[i].Xor(col[i].And(mask))
		}
	}
	copy(dst, acc)
}

// xor computes dst ^= src.
func xor[L Lane[L]](dst, src []L) {
	for i := range dst {
		dst[i] = dst[i].Xor(src[i])
	}
}

// addRoundKey adds the round key r, derived from the key share k, to
// the state share s.
func (e *engine[L]) addRoundKey(s, k []L, r int, ws *workspace[L]) {
	e.mul(ws.rk, k, e.kmat[r], e.params.K, ws)
	xor(s, ws.rk)
}

// linear applies the linear layer of the round r to the state share s.
func (e *engine[L]) linear(s []L, r int, ws *workspace[L]) {
	e.mul(s, s, e.lmat[r], e.params.N, ws)
}

func (e *engine[L]) check(key, plaintext Shares, tapes []*Tape, n int) {
	p := e.params
	if len(key) != n || len(plaintext) != n || len(tapes) != n {
		panic(fmt.Sprintf("%s: expected %d shares and tapes: "+
			"#key=%d, #plaintext=%d, #tapes=%d",
			e, n, len(key), len(plaintext), len(tapes)))
	}
	for i := 0; i < n; i++ {
		if len(key[i]) != p.KeyBytes() {
			panic(fmt.Sprintf("%s: key share %d: invalid length %d",
				e, i, len(key[i])))
		}
		if len(plaintext[i]) != p.BlockBytes() {
			panic(fmt.Sprintf("%s: plaintext share %d: invalid length %d",
				e, i, len(plaintext[i])))
		}
		if tapes[i].Rounds() != p.R || tapes[i].width != p.AndGates() {
			panic(fmt.Sprintf("%s: tape %d does not match parameters", e, i))
		}
	}
}

// Prove implements Engine.Prove.
func (e *engine[L]) Prove(key, plaintext Shares, tapes []*Tape) (
	Shares, []*View) {

	e.check(key, plaintext, tapes, Parties)

	p := e.params
	ws := e.newWorkspace()

	var k, s [Parties][]L
	views := make([]*View, Parties)
	for i := 0; i < Parties; i++ {
		k[i] = e.loadBytes(key[i], p.K, e.klanes)
		s[i] = e.loadBytes(plaintext[i], p.N, e.lanes)
		e.addRoundKey(s[i], k[i], 0, ws)
		views[i] = newView(p)
	}

	for r := 0; r < p.R; r++ {
		var w, tape, view [Parties]uint64
		for i := 0; i < Parties; i++ {
			w[i] = s[i][0].First()
			tape[i] = tapes[i].words[r]
			view[i] = views[i].words[r]
		}
		w = e.layout.sbox3(w, tape, &view)
		for i := 0; i < Parties; i++ {
			s[i][0] = s[i][0].SetFirst(w[i])
			views[i].words[r] = view[i]

			e.linear(s[i], r, ws)
		}
		xor(s[0], e.rc[r])
		for i := 0; i < Parties; i++ {
			e.addRoundKey(s[i], k[i], r+1, ws)
		}
	}

	result := make(Shares, Parties)
	for i := 0; i < Parties; i++ {
		result[i] = e.storeBytes(s[i], p.N)
	}
	return result, views
}

// Verify implements Engine.Verify.
func (e *engine[L]) Verify(challenge Party, key, plaintext Shares,
	tapes []*Tape, disclosed *View) (Shares, []*View) {

	if !challenge.Valid() {
		panic(fmt.Sprintf("%s: invalid challenge %d", e, challenge))
	}
	e.check(key, plaintext, tapes, 2)

	p := e.params
	if disclosed.Rounds() != p.R || disclosed.width != p.AndGates() {
		panic(fmt.Sprintf("%s: disclosed view does not match parameters", e))
	}
	ws := e.newWorkspace()

	// The round constants belong to the party 0.
	holder := -1
	switch challenge {
	case 0:
		holder = 0
	case Parties - 1:
		holder = 1
	}

	var k, s [2][]L
	for i := 0; i < 2; i++ {
		k[i] = e.loadBytes(key[i], p.K, e.klanes)
		s[i] = e.loadBytes(plaintext[i], p.N, e.lanes)
		e.addRoundKey(s[i], k[i], 0, ws)
	}
	views := []*View{newView(p), disclosed.Copy()}

	for r := 0; r < p.R; r++ {
		var w, tape [2]uint64
		for i := 0; i < 2; i++ {
			w[i] = s[i][0].First()
			tape[i] = tapes[i].words[r]
		}
		w = e.layout.sbox2(w, tape, &views[0].words[r], views[1].words[r])
		for i := 0; i < 2; i++ {
			s[i][0] = s[i][0].SetFirst(w[i])
			e.linear(s[i], r, ws)
		}
		if holder >= 0 {
			xor(s[holder], e.rc[r])
		}
		for i := 0; i < 2; i++ {
			e.addRoundKey(s[i], k[i], r+1, ws)
		}
	}

	result := make(Shares, 2)
	for i := 0; i < 2; i++ {
		result[i] = e.storeBytes(s[i], p.N)
	}
	return result, views
}

// Combine implements Engine.Combine.
func (e *engine[L]) Combine(shares Shares) []byte {
	p := e.params

	acc := make([]L, e.lanes)
	for _, share := range shares {
		if len(share) != p.BlockBytes() {
			panic(fmt.Sprintf("%s: invalid share length %d", e, len(share)))
		}
		xor(acc, e.loadBytes(share, p.N, e.lanes))
	}
	return e.storeBytes(acc, p.N)
}

// Encrypt implements Engine.Encrypt.
func (e *engine[L]) Encrypt(key, plaintext []byte) []byte {
	p := e.params
	if len(key) != p.KeyBytes() || len(plaintext) != p.BlockBytes() {
		panic(fmt.Sprintf("%s: invalid key or block length", e))
	}
	ws := e.newWorkspace()

	k := e.loadBytes(key, p.K, e.klanes)
	s := e.loadBytes(plaintext, p.N, e.lanes)
	e.addRoundKey(s, k, 0, ws)

	for r := 0; r < p.R; r++ {
		s[0] = s[0].SetFirst(e.layout.sbox(s[0].First()))
		e.linear(s, r, ws)
		xor(s, e.rc[r])
		e.addRoundKey(s, k, r+1, ws)
	}
	return e.storeBytes(s, p.N)
}
