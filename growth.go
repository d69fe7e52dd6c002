// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

import (
	"errors"
	"sync"
)

// encoderPool recycles Encoders for one-shot Compress/Decompress calls.
var encoderPool = sync.Pool{
	New: func() any {
		return NewEncoder()
	},
}

func acquireEncoder() *Encoder {
	e := encoderPool.Get().(*Encoder)
	e.reset()
	return e
}

func releaseEncoder(e *Encoder) {
	if e == nil {
		return
	}
	encoderPool.Put(e)
}

// growthFactor is the multiplier applied to dst each time it runs out of
// room, mirroring the reference growth controller's doubling strategy.
const growthFactor = 2

// minGrowSize is the smallest a freshly (re)grown buffer is ever allowed to
// be, so tiny inputs don't thrash through a string of 1-byte reallocations.
const minGrowSize = 4096

// Compress runs one complete compression of src, growing its destination
// buffer as needed. It never returns ErrBufferFull to the caller — that
// signal is consumed internally by the grow-and-retry loop.
func Compress(src []byte) ([]byte, error) {
	e := acquireEncoder()
	defer releaseEncoder(e)

	dst := make([]byte, growDstSize(len(src)*3, minGrowSize))
	total := 0
	curSrc := src
	for {
		n, err := e.Encode(dst[total:], curSrc)
		total += n
		if err == nil {
			return dst[:total], nil
		}
		if !errors.Is(err, ErrBufferFull) {
			return nil, err
		}
		curSrc = e.ResumeSrc()
		dst = growDst(dst, total)
	}
}

// Decompress runs one complete decompression of src. sizeHint, if > 0, is
// used only to size the initial destination buffer; the wire format carries
// no length trailer, so the buffer still grows on demand if the hint is too
// small or is left at 0.
func Decompress(src []byte, sizeHint int) ([]byte, error) {
	if sizeHint < 0 {
		return nil, ErrInvalidArgs
	}

	e := acquireEncoder()
	defer releaseEncoder(e)

	// decodeBufferReserve must fit inside the buffer Decode is given on
	// every call, including the first, or it suspends before writing a
	// single byte.
	dst := make([]byte, growDstSize(sizeHint, decodeBufferReserve+minGrowSize))
	total := 0
	curSrc := src
	for {
		n, err := e.Decode(dst[total:], curSrc)
		total += n
		if err == nil {
			return dst[:total], nil
		}
		if !errors.Is(err, ErrBufferFull) {
			return nil, err
		}
		curSrc = e.ResumeSrc()
		dst = growDst(dst, total)
	}
}

func growDstSize(hint, floor int) int {
	if hint < floor {
		return floor
	}
	return hint
}

func growDst(dst []byte, used int) []byte {
	next := make([]byte, len(dst)*growthFactor)
	copy(next, dst[:used])
	return next
}
