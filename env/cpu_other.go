//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !386 && !amd64 && !arm64

package env

func probe() Features {
	return Features{}
}
