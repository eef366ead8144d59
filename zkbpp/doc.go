//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package zkbpp implements the multi-party computation core of the
// ZKB++ (MPC-in-the-head) proof system over the LowMC block cipher.
//
// The prover evaluates the cipher on XOR shares of three virtual
// parties. Each party consumes its random tape at the AND gates of
// the substitution layer and records the message it would broadcast
// to its successor party. These per-party views are the artifact the
// outer signature protocol commits to:
//
//	engine, err := zkbpp.Select(lowmc.L1, config)
//	if err != nil { ... }
//	ct, views := engine.Prove(keyShares, ptShares, tapes)
//
// The verifier holds two of the three parties, identified by the
// challenge e: parties e and e+1. It recomputes the view of party e
// and takes the view of party e+1 from the proof:
//
//	ct2, views2 := engine.Verify(e, keyShares.Pair(e), ptShares.Pair(e),
//	    []*zkbpp.Tape{tapes[e], tapes[e.Next()]}, views[e.Next()])
//
// The package never accepts or rejects: the outer protocol compares
// the returned shares and views against the committed ones.
//
// All engines are pure functions over caller-supplied buffers and are
// safe for concurrent use.
package zkbpp
