//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package zkbpp

import (
	"github.com/markkurossi/text/superscript"
)

// Parties defines the number of virtual parties in the proof.
const Parties = 3

// Party identifies a virtual party.
type Party int

func (p Party) String() string {
	return "P" + superscript.Itoa(int(p))
}

// Next returns the successor party in the ring.
func (p Party) Next() Party {
	return (p + 1) % Parties
}

// Valid tests if the party is one of the virtual parties.
func (p Party) Valid() bool {
	return p >= 0 && p < Parties
}
