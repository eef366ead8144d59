//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

import (
	"errors"
	"fmt"
	"sync"

	"github.com/markkurossi/picnic/env"
	"github.com/markkurossi/picnic/lowmc"
)

// ErrNoImplementation is returned when no engine implements the
// parameter set.
var ErrNoImplementation = errors.New("zkbpp: no implementation")

// Engine evaluates LowMC on shares. All methods panic if the
// arguments do not match the engine's parameter set.
type Engine interface {
	Params() *lowmc.Params
	Backend() Backend

	// Prove evaluates the cipher for three parties. It returns the
	// ciphertext shares and the views of the parties.
	Prove(key, plaintext Shares, tapes []*Tape) (Shares, []*View)

	// Verify evaluates the cipher for the parties e and e+1 of the
	// challenge e. The disclosed view is the view of the party e+1.
	// It returns the ciphertext shares of the two parties, the
	// recomputed view of the party e, and a copy of the disclosed
	// view.
	Verify(e Party, key, plaintext Shares, tapes []*Tape,
		disclosed *View) (Shares, []*View)

	// Combine reconstructs a block from its shares.
	Combine(shares Shares) []byte

	// Encrypt encrypts the plaintext without sharing.
	Encrypt(key, plaintext []byte) []byte
}

// Backend identifies the lane width of an engine.
type Backend int

// Backends.
const (
	Scalar Backend = iota
	Narrow
	Wide
)

var backendNames = map[Backend]string{
	Scalar: "scalar",
	Narrow: "narrow",
	Wide:   "wide",
}

func (b Backend) String() string {
	name, ok := backendNames[b]
	if ok {
		return name
	}
	return fmt.Sprintf("{Backend %d}", int(b))
}

// ParseBackend parses the backend name.
func ParseBackend(name string) (Backend, error) {
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return Scalar, fmt.Errorf("unknown backend '%s'", name)
}

// Supported tests if the CPU features support the backend.
func (b Backend) Supported(f env.Features) bool {
	switch b {
	case Wide:
		return f.Wide()
	case Narrow:
		return f.Narrow()
	case Scalar:
		return true
	default:
		return false
	}
}

// All backends in the descending order of capability.
var allBackends = []Backend{Wide, Narrow, Scalar}

// Backends returns the backends the CPU features support, the most
// capable first.
func Backends(f env.Features) []Backend {
	var result []Backend
	for _, b := range allBackends {
		if b.Supported(f) {
			result = append(result, b)
		}
	}
	return result
}

// cacheKey identifies parameter sets by value so that equal sets
// share one engine and its expanded constants.
type cacheKey struct {
	name    string
	n       int
	k       int
	m       int
	r       int
	backend Backend
}

var (
	cacheM sync.Mutex
	cache  = make(map[cacheKey]Engine)
)

// supported tests if the engines are specialized for the parameter
// set. The parameter set must be valid.
func supported(p *lowmc.Params) bool {
	if p.M != 10 || p.K != p.N {
		return false
	}
	switch p.N {
	case 128, 192, 256:
		return true
	default:
		return false
	}
}

// New returns the engine of the backend for the parameter set. It
// panics if the parameter set is not valid and returns
// ErrNoImplementation if the backend does not implement it. Engines
// are created once per parameter set value and shared by all callers;
// the engine of equal parameter sets reports the set it was first
// created with.
func New(p *lowmc.Params, b Backend) (Engine, error) {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if !supported(p) {
		return nil, fmt.Errorf("%w: %s", ErrNoImplementation, p)
	}

	cacheM.Lock()
	defer cacheM.Unlock()

	key := cacheKey{
		name:    p.Name,
		n:       p.N,
		k:       p.K,
		m:       p.M,
		r:       p.R,
		backend: b,
	}
	e, ok := cache[key]
	if ok {
		return e, nil
	}
	switch b {
	case Wide:
		e = newEngine[W256](p, b)
	case Narrow:
		e = newEngine[W128](p, b)
	case Scalar:
		e = newEngine[W64](p, b)
	default:
		return nil, fmt.Errorf("%w: backend %s", ErrNoImplementation, b)
	}
	cache[key] = e

	return e, nil
}

// Select returns the engine of the most capable backend the
// configuration's CPU features support.
func Select(p *lowmc.Params, config *env.Config) (Engine, error) {
	features := config.GetFeatures()
	for _, b := range Backends(features) {
		e, err := New(p, b)
		if err == nil {
			config.Debugf("zkbpp: %s: selected %s backend for features %s",
				p, b, features)
			return e, nil
		}
		if !errors.Is(err, ErrNoImplementation) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoImplementation, p)
}
