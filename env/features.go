//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"strings"
)

// Features define the vector capabilities of a CPU.
type Features struct {
	// AVX2 is the x86 256-bit vector extension.
	AVX2 bool
	// SSE2 is the x86 128-bit vector extension.
	SSE2 bool
	// NEON is the ARM 128-bit Advanced SIMD extension.
	NEON bool
}

func (f Features) String() string {
	var names []string
	if f.AVX2 {
		names = append(names, "avx2")
	}
	if f.SSE2 {
		names = append(names, "sse2")
	}
	if f.NEON {
		names = append(names, "neon")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Wide tests if the CPU supports 256-bit vectors.
func (f Features) Wide() bool {
	return f.AVX2
}

// Narrow tests if the CPU supports 128-bit vectors.
func (f Features) Narrow() bool {
	return f.SSE2 || f.NEON
}

// hostFeatures are probed once at startup and never modified.
var hostFeatures = probe()

// HostFeatures returns the features of the host CPU.
func HostFeatures() Features {
	return hostFeatures
}
