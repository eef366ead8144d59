//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package lowmc

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"
)

// KAT defines a known-answer test vector.
type KAT struct {
	Params     *Params
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

func (kat *KAT) String() string {
	return fmt.Sprintf("%s: key=%x pt=%x", kat.Params.Name, kat.Key,
		kat.Plaintext)
}

type katFile struct {
	Vector []struct {
		Params     string `toml:"params"`
		Key        string `toml:"key"`
		Plaintext  string `toml:"plaintext"`
		Ciphertext string `toml:"ciphertext"`
	} `toml:"vector"`
}

// LoadVectors loads known-answer test vectors from the TOML file.
func LoadVectors(file string) ([]*KAT, error) {
	var data katFile
	_, err := toml.DecodeFile(file, &data)
	if err != nil {
		return nil, err
	}
	var result []*KAT
	for idx, v := range data.Vector {
		p, err := ByName(v.Params)
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: %w", file, idx, err)
		}
		kat := &KAT{
			Params: p,
		}
		kat.Key, err = decodeHex(v.Key, p.KeyBytes())
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: key: %w", file, idx, err)
		}
		kat.Plaintext, err = decodeHex(v.Plaintext, p.BlockBytes())
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: plaintext: %w",
				file, idx, err)
		}
		kat.Ciphertext, err = decodeHex(v.Ciphertext, p.BlockBytes())
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: ciphertext: %w",
				file, idx, err)
		}
		result = append(result, kat)
	}
	return result, nil
}

func decodeHex(s string, size int) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("invalid length %d, expected %d",
			len(data), size)
	}
	return data, nil
}
