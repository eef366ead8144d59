//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build arm64

package env

import (
	"golang.org/x/sys/cpu"
)

func probe() Features {
	return Features{
		NEON: cpu.ARM64.HasASIMD,
	}
}
