// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

import "errors"

// Sentinel errors for the codec's low- and high-level APIs.
var (
	// ErrInvalidArgs is returned for malformed call arguments, such as a
	// negative sizeHint passed to Decompress.
	ErrInvalidArgs = errors.New("invalid arguments")
	// ErrBufferFull is the resumable-suspension signal: dst ran out of room before
	// src was exhausted. It is not a terminal error; call again with a larger dst.
	ErrBufferFull = errors.New("buffer full")
	// ErrMalformedToken is returned when the decoder encounters a token it cannot parse:
	// an extension-byte run longer than maxExtensionBytes, or a truncated token header.
	ErrMalformedToken = errors.New("malformed token")
	// ErrPositionOutOfRange is returned when a back-reference's position field points
	// outside the currently live window (grow).
	ErrPositionOutOfRange = errors.New("match position out of range")
)
