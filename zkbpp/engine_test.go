//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

import (
	"bytes"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/picnic/env"
	"github.com/markkurossi/picnic/lowmc"
	"github.com/markkurossi/picnic/prg"
)

// Reduced-round instances for the exhaustive tests.
var (
	l1r4 = &lowmc.Params{
		Name: "L1r4",
		N:    128,
		K:    128,
		M:    10,
		R:    4,
	}
	l3r3 = &lowmc.Params{
		Name: "L3r3",
		N:    192,
		K:    192,
		M:    10,
		R:    3,
	}
	l5r0 = &lowmc.Params{
		Name: "L5r0",
		N:    256,
		K:    256,
		M:    10,
		R:    0,
	}
)

type proofInput struct {
	key       []byte
	plaintext []byte
	keyShares Shares
	ptShares  Shares
	tapes     []*Tape
}

func newProofInput(t testing.TB, p *lowmc.Params, key, plaintext []byte,
	seed byte) *proofInput {

	var s [32]byte
	s[0] = seed
	rand := prg.New(s)

	if key == nil {
		key = make([]byte, p.KeyBytes())
		rand.Read(key)
	}
	if plaintext == nil {
		plaintext = make([]byte, p.BlockBytes())
		rand.Read(plaintext)
	}
	keyShares, err := Split(key, rand)
	if err != nil {
		t.Fatal(err)
	}
	ptShares, err := Split(plaintext, rand)
	if err != nil {
		t.Fatal(err)
	}
	salt := []byte{seed}
	var tapes []*Tape
	for i := Party(0); i < Parties; i++ {
		tapes = append(tapes, ExpandTape(p, s[:], salt, i))
	}
	return &proofInput{
		key:       key,
		plaintext: plaintext,
		keyShares: keyShares,
		ptShares:  ptShares,
		tapes:     tapes,
	}
}

func (in *proofInput) prove(e Engine) (Shares, []*View) {
	return e.Prove(in.keyShares, in.ptShares, in.tapes)
}

func (in *proofInput) verify(engine Engine, e Party, disclosed *View) (
	Shares, []*View) {

	tapes := []*Tape{in.tapes[e], in.tapes[e.Next()]}
	return engine.Verify(e, in.keyShares.Pair(e), in.ptShares.Pair(e), tapes,
		disclosed)
}

func engines(t testing.TB, p *lowmc.Params) []Engine {
	var result []Engine
	for _, b := range allBackends {
		e, err := New(p, b)
		if err != nil {
			t.Fatalf("New(%s, %s): %v", p, b, err)
		}
		result = append(result, e)
	}
	return result
}

func TestProveL1(t *testing.T) {
	key := make([]byte, 16)
	key[0] = 0x80
	pt := make([]byte, 16)
	pt[0] = 0xab
	pt[1] = 0xff
	expected := []byte{
		0x0E, 0x30, 0x72, 0x0B, 0x9F, 0x64, 0xD5, 0xC2,
		0xA7, 0x77, 0x1C, 0x8C, 0x23, 0x8D, 0x8F, 0x70,
	}

	engine, err := Select(lowmc.L1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ct := engine.Encrypt(key, pt); !bytes.Equal(ct, expected) {
		t.Fatalf("Encrypt: got %x, expected %x", ct, expected)
	}

	in := newProofInput(t, lowmc.L1, key, pt, 1)
	ct, views := in.prove(engine)
	if len(ct) != Parties || len(views) != Parties {
		t.Fatalf("got %d shares and %d views", len(ct), len(views))
	}
	if combined := engine.Combine(ct); !bytes.Equal(combined, expected) {
		t.Fatalf("Prove: got %x, expected %x", combined, expected)
	}

	// Public plaintext owned by the party 0.
	ct, _ = engine.Prove(in.keyShares, PublicShares(pt, Parties), in.tapes)
	if combined := ct.Combine(); !bytes.Equal(combined, expected) {
		t.Fatalf("Prove public: got %x, expected %x", combined, expected)
	}
}

func TestKAT(t *testing.T) {
	vectors, err := lowmc.LoadVectors("../lowmc/testdata/kat.toml")
	if err != nil {
		t.Fatal(err)
	}
	for idx, kat := range vectors {
		if testing.Short() && kat.Params != lowmc.L1 {
			continue
		}
		in := newProofInput(t, kat.Params, kat.Key, kat.Plaintext, byte(idx))
		for _, e := range engines(t, kat.Params) {
			if ct := e.Encrypt(kat.Key, kat.Plaintext); !bytes.Equal(ct,
				kat.Ciphertext) {
				t.Errorf("%s: %s: Encrypt: got %x, expected %x",
					e.Backend(), kat, ct, kat.Ciphertext)
			}
			ct, _ := in.prove(e)
			if combined := e.Combine(ct); !bytes.Equal(combined,
				kat.Ciphertext) {
				t.Errorf("%s: %s: Prove: got %x, expected %x",
					e.Backend(), kat, combined, kat.Ciphertext)
			}
		}
	}
}

func TestEncryptReference(t *testing.T) {
	params := []*lowmc.Params{l1r4, l3r3, l5r0, lowmc.L1}
	for _, p := range params {
		for seed := byte(0); seed < 4; seed++ {
			in := newProofInput(t, p, nil, nil, seed)
			expected, err := lowmc.Encrypt(p, in.key, in.plaintext)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range engines(t, p) {
				ct := e.Encrypt(in.key, in.plaintext)
				if !bytes.Equal(ct, expected) {
					t.Errorf("%s/%s: Encrypt: got %x, expected %x",
						p.Name, e.Backend(), ct, expected)
				}
				shares, _ := in.prove(e)
				if !bytes.Equal(shares.Combine(), expected) {
					t.Errorf("%s/%s: Prove: got %x, expected %x",
						p.Name, e.Backend(), shares.Combine(), expected)
				}
			}
		}
	}
}

func TestZeroRounds(t *testing.T) {
	e, err := New(l5r0, Scalar)
	if err != nil {
		t.Fatal(err)
	}
	in := newProofInput(t, l5r0, nil, nil, 7)
	ct, views := in.prove(e)
	for _, v := range views {
		if v.Rounds() != 0 || len(v.Bytes()) != 0 {
			t.Fatalf("non-empty view for zero rounds")
		}
	}

	// The whitening key is still applied.
	if bytes.Equal(ct.Combine(), in.plaintext) {
		t.Fatalf("zero rounds returned the plaintext")
	}
	expected, err := lowmc.Encrypt(l5r0, in.key, in.plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct.Combine(), expected) {
		t.Fatalf("got %x, expected %x", ct.Combine(), expected)
	}
}

func TestReshare(t *testing.T) {
	e, err := New(l1r4, Scalar)
	if err != nil {
		t.Fatal(err)
	}
	in1 := newProofInput(t, l1r4, nil, nil, 1)
	in2 := newProofInput(t, l1r4, in1.key, in1.plaintext, 2)

	ct1, views1 := in1.prove(e)
	ct2, views2 := in2.prove(e)

	if !bytes.Equal(ct1.Combine(), ct2.Combine()) {
		t.Fatalf("ciphertexts differ: %x != %x", ct1.Combine(), ct2.Combine())
	}
	for i := 0; i < Parties; i++ {
		if bytes.Equal(ct1[i], ct2[i]) {
			t.Errorf("share %d did not change", i)
		}
		if views1[i].Equal(views2[i]) {
			t.Errorf("view %d did not change", i)
		}
	}
}

func TestVerify(t *testing.T) {
	for _, p := range []*lowmc.Params{l1r4, l3r3, lowmc.L1} {
		for _, engine := range engines(t, p) {
			in := newProofInput(t, p, nil, nil, 3)
			ct, views := in.prove(engine)

			for e := Party(0); e < Parties; e++ {
				ct2, views2 := in.verify(engine, e, views[e.Next()])
				if len(ct2) != 2 || len(views2) != 2 {
					t.Fatalf("got %d shares and %d views",
						len(ct2), len(views2))
				}
				name := fmt.Sprintf("%s/%s: e=%d", p.Name, engine.Backend(), e)
				if !bytes.Equal(ct2[0], ct[e]) {
					t.Errorf("%s: share %v differs", name, e)
				}
				if !bytes.Equal(ct2[1], ct[e.Next()]) {
					t.Errorf("%s: share %v differs", name, e.Next())
				}
				if !views2[0].Equal(views[e]) {
					t.Errorf("%s: recomputed view differs", name)
				}
				if !views2[1].Equal(views[e.Next()]) {
					t.Errorf("%s: disclosed view differs", name)
				}
				if views2[1] == views[e.Next()] {
					t.Errorf("%s: disclosed view not copied", name)
				}
			}
		}
	}
}

func TestTamper(t *testing.T) {
	engine, err := New(l1r4, Scalar)
	if err != nil {
		t.Fatal(err)
	}
	in := newProofInput(t, l1r4, nil, nil, 4)
	ct, views := in.prove(engine)

	for e := Party(0); e < Parties; e++ {
		n := e.Next()
		data := views[n].Bytes()
		for bit := 0; bit < l1r4.ViewBits(); bit++ {
			tampered := bytes.Clone(data)
			tampered[bit/8] ^= 0x80 >> (bit % 8)

			ct2, views2 := in.verify(engine, e, NewView(l1r4, tampered))
			if views2[1].Equal(views[n]) {
				t.Fatalf("e=%d, bit %d: tampering lost", e, bit)
			}
			if bytes.Equal(ct2[1], ct[n]) {
				t.Errorf("e=%d, bit %d: share of %v unchanged", e, bit, n)
			}
			// The last round's messages reach only the disclosed party.
			if bit >= l1r4.ViewBits()-l1r4.AndGates() {
				if !bytes.Equal(ct2[0], ct[e]) || !views2[0].Equal(views[e]) {
					t.Errorf("e=%d, bit %d: last round changed %v",
						e, bit, e)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, engine := range engines(t, l3r3) {
		in := newProofInput(t, l3r3, nil, nil, 5)
		ct1, views1 := in.prove(engine)
		ct2, views2 := in.prove(engine)
		for i := 0; i < Parties; i++ {
			if !bytes.Equal(ct1[i], ct2[i]) || !views1[i].Equal(views2[i]) {
				t.Fatalf("%s: party %d: outputs differ", engine.Backend(), i)
			}
		}
		// Inputs are not modified.
		in2 := newProofInput(t, l3r3, nil, nil, 5)
		for i := 0; i < Parties; i++ {
			if !bytes.Equal(in.keyShares[i], in2.keyShares[i]) ||
				!bytes.Equal(in.ptShares[i], in2.ptShares[i]) {
				t.Fatalf("%s: inputs modified", engine.Backend())
			}
		}
	}
}

func TestBackendEquivalence(t *testing.T) {
	for _, p := range []*lowmc.Params{l1r4, l3r3, lowmc.L1} {
		in := newProofInput(t, p, nil, nil, 6)
		all := engines(t, p)
		ct, views := in.prove(all[0])
		ctv, viewsv := in.verify(all[0], 1, views[2])

		for _, engine := range all[1:] {
			ct2, views2 := in.prove(engine)
			ctv2, viewsv2 := in.verify(engine, 1, views[2])
			for i := 0; i < Parties; i++ {
				if !bytes.Equal(ct[i], ct2[i]) || !views[i].Equal(views2[i]) {
					t.Errorf("%s: %s and %s differ for party %d", p.Name,
						all[0].Backend(), engine.Backend(), i)
				}
			}
			for i := 0; i < 2; i++ {
				if !bytes.Equal(ctv[i], ctv2[i]) ||
					!viewsv[i].Equal(viewsv2[i]) {
					t.Errorf("%s: verify: %s and %s differ", p.Name,
						all[0].Backend(), engine.Backend())
				}
			}
		}
	}
}

func TestCombine(t *testing.T) {
	for _, engine := range engines(t, l3r3) {
		in := newProofInput(t, l3r3, nil, nil, 8)
		if !bytes.Equal(engine.Combine(in.ptShares), in.plaintext) {
			t.Errorf("%s: Combine failed", engine.Backend())
		}
		if !bytes.Equal(engine.Combine(in.ptShares), in.ptShares.Combine()) {
			t.Errorf("%s: Combine differs from Shares.Combine",
				engine.Backend())
		}
	}
}

func TestConcurrent(t *testing.T) {
	engine, err := Select(l1r4, &env.Config{
		Features: &env.Features{AVX2: true, SSE2: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	const count = 16

	inputs := make([]*proofInput, count)
	expected := make([]Shares, count)
	for i := range inputs {
		inputs[i] = newProofInput(t, l1r4, nil, nil, byte(i))
		expected[i], _ = inputs[i].prove(engine)
	}

	results := make([]Shares, count)
	var g errgroup.Group
	for i := range inputs {
		i := i
		g.Go(func() error {
			ct, views := inputs[i].prove(engine)
			_, views2 := inputs[i].verify(engine, 0, views[1])
			if !views2[0].Equal(views[0]) {
				return fmt.Errorf("input %d: verify failed", i)
			}
			results[i] = ct
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i := range results {
		for j := range results[i] {
			if !bytes.Equal(results[i][j], expected[i][j]) {
				t.Fatalf("input %d: share %d differs", i, j)
			}
		}
	}
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestPreconditions(t *testing.T) {
	engine, err := New(l1r4, Narrow)
	if err != nil {
		t.Fatal(err)
	}
	in := newProofInput(t, l1r4, nil, nil, 9)
	_, views := in.prove(engine)

	expectPanic(t, "two shares", func() {
		engine.Prove(in.keyShares[:2], in.ptShares[:2], in.tapes[:2])
	})
	expectPanic(t, "short key share", func() {
		key := Shares{in.keyShares[0][:8], in.keyShares[1], in.keyShares[2]}
		engine.Prove(key, in.ptShares, in.tapes)
	})
	expectPanic(t, "foreign tape", func() {
		tapes := []*Tape{in.tapes[0], in.tapes[1],
			ExpandTape(lowmc.L1, nil, nil, 2)}
		engine.Prove(in.keyShares, in.ptShares, tapes)
	})
	expectPanic(t, "invalid challenge", func() {
		engine.Verify(3, in.keyShares[:2], in.ptShares[:2], in.tapes[:2],
			views[1])
	})
	expectPanic(t, "short tape", func() {
		NewTape(l1r4, make([]byte, 10))
	})
}

func benchmarkProve(b *testing.B, backend Backend) {
	engine, err := New(lowmc.L1, backend)
	if err != nil {
		b.Fatal(err)
	}
	in := newProofInput(b, lowmc.L1, nil, nil, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.prove(engine)
	}
}

func BenchmarkProveScalar(b *testing.B) {
	benchmarkProve(b, Scalar)
}

func BenchmarkProveNarrow(b *testing.B) {
	benchmarkProve(b, Narrow)
}

func BenchmarkProveWide(b *testing.B) {
	benchmarkProve(b, Wide)
}

func BenchmarkVerify(b *testing.B) {
	engine, err := New(lowmc.L1, Scalar)
	if err != nil {
		b.Fatal(err)
	}
	in := newProofInput(b, lowmc.L1, nil, nil, 0)
	_, views := in.prove(engine)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in.verify(engine, 1, views[2])
	}
}
