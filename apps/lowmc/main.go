//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/markkurossi/picnic/env"
	"github.com/markkurossi/picnic/lowmc"
	"github.com/markkurossi/picnic/zkbpp"
)

func main() {
	fParams := flag.String("params", "L1", "LowMC parameter set")
	fBackend := flag.String("backend", "auto",
		"engine backend: auto, scalar, narrow, wide")
	fKey := flag.String("key", "", "key in hex (default random)")
	fPt := flag.String("pt", "", "plaintext in hex (default random)")
	fKat := flag.String("kat", "", "check known-answer vectors from file")
	fBench := flag.Int("bench", 0, "benchmark iterations per backend")
	fWorkers := flag.Int("workers", 1, "concurrent benchmark workers")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)

	config := &env.Config{
		Verbose: *fVerbose,
	}

	if len(*fKat) > 0 {
		err := checkVectors(config, *fKat)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	params, err := lowmc.ByName(*fParams)
	if err != nil {
		log.Fatal(err)
	}
	backends, err := selectBackends(config, *fBackend)
	if err != nil {
		log.Fatal(err)
	}

	if *fBench > 0 {
		if *fBackend == "auto" {
			backends = zkbpp.Backends(config.GetFeatures())
		}
		err = benchmark(config, params, backends, *fBench, *fWorkers)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	key, err := parseInput(config, *fKey, params.KeyBytes())
	if err != nil {
		log.Fatalf("invalid key: %s", err)
	}
	pt, err := parseInput(config, *fPt, params.BlockBytes())
	if err != nil {
		log.Fatalf("invalid plaintext: %s", err)
	}
	for _, b := range backends {
		err = encrypt(config, params, b, key, pt)
		if err != nil {
			log.Fatal(err)
		}
	}
}

func selectBackends(config *env.Config, name string) ([]zkbpp.Backend, error) {
	if name == "auto" {
		return zkbpp.Backends(config.GetFeatures())[:1], nil
	}
	b, err := zkbpp.ParseBackend(name)
	if err != nil {
		return nil, err
	}
	return []zkbpp.Backend{b}, nil
}

func parseInput(config *env.Config, value string, size int) ([]byte, error) {
	if len(value) == 0 {
		result := make([]byte, size)
		_, err := io.ReadFull(config.GetRandom(), result)
		return result, err
	}
	result, err := hex.DecodeString(value)
	if err != nil {
		return nil, err
	}
	if len(result) != size {
		return nil, fmt.Errorf("invalid length %d, expected %d",
			len(result), size)
	}
	return result, nil
}

func encrypt(config *env.Config, params *lowmc.Params, b zkbpp.Backend,
	key, pt []byte) error {

	engine, err := zkbpp.New(params, b)
	if err != nil {
		return err
	}
	config.Debugf("engine: %s", engine)

	ct := engine.Encrypt(key, pt)
	fmt.Printf("Params     : %s\n", params)
	fmt.Printf("Backend    : %s\n", b)
	fmt.Printf("Key        : %x\n", key)
	fmt.Printf("Plaintext  : %x\n", pt)
	fmt.Printf("Ciphertext : %x\n", ct)

	p, err := newProof(config, params, key, pt)
	if err != nil {
		return err
	}
	shares, views := p.prove(engine)
	for i, share := range shares {
		party := zkbpp.Party(i)
		fmt.Printf(" - %v : %x\n", party, share)
		config.Debugf("view %v: %x", party, views[i].Bytes())
	}
	combined := engine.Combine(shares)
	if !bytes.Equal(combined, ct) {
		return fmt.Errorf("MPC ciphertext mismatch: %x != %x", combined, ct)
	}
	fmt.Printf("MPC        : %x\n", combined)

	for e := zkbpp.Party(0); e < zkbpp.Parties; e++ {
		err = p.verify(engine, e, shares, views)
		if err != nil {
			return err
		}
	}
	fmt.Printf("Verify     : ok\n")

	return nil
}

func checkVectors(config *env.Config, file string) error {
	vectors, err := lowmc.LoadVectors(file)
	if err != nil {
		return err
	}
	var failed int
	for _, kat := range vectors {
		for _, b := range zkbpp.Backends(config.GetFeatures()) {
			engine, err := zkbpp.New(kat.Params, b)
			if err != nil {
				return err
			}
			p, err := newProof(config, kat.Params, kat.Key, kat.Plaintext)
			if err != nil {
				return err
			}
			shares, _ := p.prove(engine)
			ct := engine.Combine(shares)

			status := "ok"
			if !bytes.Equal(ct, kat.Ciphertext) ||
				!bytes.Equal(engine.Encrypt(kat.Key, kat.Plaintext),
					kat.Ciphertext) {
				status = "FAILED"
				failed++
			}
			fmt.Printf("%s/%-6s %x: %s\n", kat.Params.Name, b, ct, status)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d checks failed", file, failed)
	}
	return nil
}
