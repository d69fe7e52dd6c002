// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

/*
Package ulzstream frames ulz77 blocks onto an io.Writer/io.Reader pair.

The codec itself has no container: no magic number, no length trailer. This
package supplies the minimal framing a caller needs to push more than one
compressed block down the same stream — a uint32 little-endian length
prefix ahead of each compressed block:

	w, err := ulzstream.NewWriter(f, ulzstream.DefaultOptions())
	err = w.PushBlock(data)

	r, err := ulzstream.NewReader(f)
	block, err := r.PullBlock()
*/
package ulzstream
