//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build 386 || amd64

package env

import (
	"golang.org/x/sys/cpu"
)

func probe() Features {
	return Features{
		AVX2: cpu.X86.HasAVX2,
		SSE2: cpu.X86.HasSSE2,
	}
}
