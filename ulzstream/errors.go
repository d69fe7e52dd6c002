// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulzstream

import "errors"

// Sentinel errors for the stream framing layer.
var (
	// ErrInvalidWriter is returned when NewWriter is given a nil io.Writer.
	ErrInvalidWriter = errors.New("ulzstream: invalid writer")
	// ErrUnknownWriter is returned by a Writer built with the zero value
	// instead of NewWriter.
	ErrUnknownWriter = errors.New("ulzstream: unknown writer type")
	// ErrInvalidReader is returned when NewReader is given a nil io.Reader,
	// and by the discard/null reader adapter, which cannot produce blocks.
	ErrInvalidReader = errors.New("ulzstream: invalid reader")
	// ErrUnknownReader is returned by a Reader built with the zero value
	// instead of NewReader.
	ErrUnknownReader = errors.New("ulzstream: unknown reader type")
	// ErrNarrowBufferSize is reserved for custom Writer/Reader adapters whose
	// backing buffer is too small to hold a block's length prefix; PushBlock
	// and PullBlock never produce it themselves.
	ErrNarrowBufferSize = errors.New("ulzstream: buffer narrower than block length prefix")
	// ErrBlockTooLarge is returned when a block given to PushBlock would not
	// fit in a uint32 length prefix.
	ErrBlockTooLarge = errors.New("ulzstream: block exceeds maximum frame size")
)
