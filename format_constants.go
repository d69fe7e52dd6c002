// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

// Wire-format and ring-buffer constants for the sentinel-escaped LZ77 variant.
// See the hash/sentinel/match-length layout documented in doc.go.

const (
	// ringSize is the sliding window's fixed capacity.
	ringSize = 4096

	// hashLiteralSize is the number of bytes folded into a rolling hash.
	hashLiteralSize = 3

	// hashSizeBits is the width of the hash table index.
	hashSizeBits = 17
	// hashSize is the number of hash-chain head/tail slots (2^17).
	hashSize = 1 << hashSizeBits
	// hashMask keeps only the low hashSizeBits bits of a computed hash.
	hashMask = hashSize - 1

	// recentPosSize is hashLiteralSize plus the optional match-chain depth.
	// The match-chain accelerator is omitted (see doc.go), so this is fixed at 3.
	recentPosSize = hashLiteralSize

	// sentinelByte introduces an escaped literal or a back-reference token.
	sentinelByte = 0xFF

	// matchLenMin is the shortest length ever worth encoding as a back-reference.
	matchLenMin = 4
	// matchLenMax is the top nibble value plus 3: the shortest length that
	// needs extension bytes (17, nibble 14, is the longest without them).
	matchLenMax = 15 + 3
	// matchLenExtBase is subtracted from a nibble-15 match's length to give
	// the value carried in its extension bytes.
	matchLenExtBase = 17
	// maxExtensionBytes caps the variable-length extension reader (spec-mandated).
	maxExtensionBytes = 2
	// maxMatchLen is the hard cap implied by the two-extension-byte limit:
	// 17 + 2^14 - 1.
	maxMatchLen = matchLenExtBase + (1 << (7 * maxExtensionBytes)) - 1

	// maxMatchPos is the largest position field the 12-bit wire encoding allows.
	maxMatchPos = ringSize - 1

	// bufferReservedSize guarantees room for the worst-case next token
	// (sentinel + 2 header bytes + 2 extension bytes, plus margin) before a
	// "buffer full" suspension check. Sized for Encoder.Encode, whose dst is
	// the (small, per-token) compressed side.
	bufferReservedSize = 10

	// decodeBufferReserve is Encoder.Decode's equivalent reserve. dst there
	// is the decompressed side, where a single token can emit up to
	// maxMatchLen bytes, so the margin must cover a whole token's output.
	decodeBufferReserve = maxMatchLen + 8

	// none marks an empty hash-chain / table slot.
	none = -1
)
