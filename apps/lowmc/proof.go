//
// proof.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/markkurossi/picnic/env"
	"github.com/markkurossi/picnic/lowmc"
	"github.com/markkurossi/picnic/zkbpp"
)

type proof struct {
	key   zkbpp.Shares
	pt    zkbpp.Shares
	tapes []*zkbpp.Tape
}

func newProof(config *env.Config, params *lowmc.Params, key, pt []byte) (
	*proof, error) {

	rand := config.GetRandom()

	keyShares, err := zkbpp.Split(key, rand)
	if err != nil {
		return nil, err
	}
	ptShares, err := zkbpp.Split(pt, rand)
	if err != nil {
		return nil, err
	}
	var seed, salt [32]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand, salt[:]); err != nil {
		return nil, err
	}
	p := &proof{
		key: keyShares,
		pt:  ptShares,
	}
	for i := zkbpp.Party(0); i < zkbpp.Parties; i++ {
		p.tapes = append(p.tapes, zkbpp.ExpandTape(params, seed[:], salt[:], i))
	}
	return p, nil
}

func (p *proof) prove(engine zkbpp.Engine) (zkbpp.Shares, []*zkbpp.View) {
	return engine.Prove(p.key, p.pt, p.tapes)
}

// verify replays the challenge e and compares the result with the
// prover's shares and views.
func (p *proof) verify(engine zkbpp.Engine, e zkbpp.Party,
	shares zkbpp.Shares, views []*zkbpp.View) error {

	n := e.Next()
	ct, v := engine.Verify(e, p.key.Pair(e), p.pt.Pair(e),
		[]*zkbpp.Tape{p.tapes[e], p.tapes[n]}, views[n])

	if !bytes.Equal(ct[0], shares[e]) || !bytes.Equal(ct[1], shares[n]) {
		return fmt.Errorf("challenge %d: ciphertext shares differ", e)
	}
	if !v[0].Equal(views[e]) {
		return fmt.Errorf("challenge %d: view of %v differs", e, e)
	}
	return nil
}
