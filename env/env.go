//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the ZKB++ system.
package env

import (
	"crypto/rand"
	"fmt"
	"io"
	"log"
)

// Config defines the global system configuration. It configures
// system operation for all modules. Config must not be modified after
// being passed to any module.  It is safe for concurrent use by
// multiple modules as they do not modify it.
type Config struct {
	Rand io.Reader
	// Features overrides the host CPU features in backend selection.
	Features *Features
	Verbose  bool
}

// GetRandom returns the source of entropy for share splitting and
// other cryptography operations.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetFeatures returns the CPU features for backend selection.
func (config *Config) GetFeatures() Features {
	if config != nil && config.Features != nil {
		return *config.Features
	}
	return HostFeatures()
}

// Debugf prints a debugging message if Verbose debugging is enabled
// for this Config.
func (config *Config) Debugf(format string, a ...interface{}) {
	if config == nil || !config.Verbose {
		return
	}
	log.Output(2, fmt.Sprintf(format, a...))
}
