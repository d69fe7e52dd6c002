// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

/*
Package ulz77 implements a sentinel-escaped LZ77 variant: a sliding-window
byte-stream compressor and decompressor with no container framing of its own.

The wire format has three token shapes:

  - a plain byte, copied through unchanged, whenever it isn't the sentinel
    0xFF;
  - 0xFF 0x00 0x00, an escaped literal, decoding back to a single 0xFF;
  - a back-reference: 0xFF, a header byte packing a 4-bit length nibble and
    the top 4 bits of a 12-bit window position, then the low 8 bits of that
    position, optionally followed by up to 2 base-128 length-extension bytes
    when the nibble is 15.

# Low-level API

Encoder is the resumable driver. A single logical Encode or Decode call may
be interrupted mid-stream if the destination buffer runs out before the
source does; ErrBufferFull signals this, and ResumeSrc reports where to
continue once the caller has grown dst:

	enc := NewEncoder()
	n, err := enc.Encode(dst, src)
	total := n
	for errors.Is(err, ErrBufferFull) {
		dst = grow(dst)
		n, err = enc.Encode(dst[total:], enc.ResumeSrc())
		total += n
	}

# High-level API

Compress and Decompress hide the resume loop behind a self-growing buffer:

	out, err := ulz77.Compress(data)
	back, err := ulz77.Decompress(out, len(data))

The match searcher walks an unbounded same-hash chain (see ring.go) to find
the longest match at each position; on pathological repeating input this
degrades to quadratic time, a deliberate trade favoring compression ratio
over a worst-case speed guarantee. A match-chain depth accelerator (capping
the walk and keeping a shortcut to "recent" chain entries) is a natural
extension this package does not implement.
*/
package ulz77
