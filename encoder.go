// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

// Encoder is the resumable low-level codec driver. It owns a ring and the
// rolling registers either direction needs, and it is built for exactly one
// direction at a time: call Encode repeatedly to finish one compression, or
// Decode repeatedly to finish one decompression, but don't interleave the
// two on the same Encoder.
//
// A single logical Encode/Decode call may be interrupted if dst runs out of
// room before src is exhausted. That returns ErrBufferFull; ResumeSrc then
// reports the unconsumed tail of src the caller must pass back in on the
// next call, alongside a larger dst.
type Encoder struct {
	ring *ring

	futureBytes uint32 // rolling register of the next 3 source bytes (Encode)
	lastBytes   uint32 // rolling register of the last 3 decoded bytes (Decode)

	resumeSrc []byte // unconsumed src tail if the previous call suspended, else nil

	SrcLen      int // bytes of src consumed by the most recent call
	DstLen      int // bytes of dst written by the most recent call
	SrcTotalLen int // bytes of src consumed across this logical operation
	DstTotalLen int // bytes of dst written across this logical operation
}

// NewEncoder allocates an Encoder with a fresh ring.
func NewEncoder() *Encoder {
	return &Encoder{ring: newRing()}
}

// reset restores e to a freshly-allocated state, for reuse via sync.Pool.
func (e *Encoder) reset() {
	e.ring.reset()
	e.futureBytes = 0
	e.lastBytes = 0
	e.resumeSrc = nil
	e.SrcLen = 0
	e.DstLen = 0
	e.SrcTotalLen = 0
	e.DstTotalLen = 0
}

// ResumeSrc returns the unconsumed tail of src from the call that most
// recently returned ErrBufferFull, or nil if nothing is suspended.
func (e *Encoder) ResumeSrc() []byte {
	return e.resumeSrc
}

func emitLiteral(dst []byte, dstP int, b byte) int {
	if b == sentinelByte {
		dst[dstP] = sentinelByte
		dst[dstP+1] = 0
		dst[dstP+2] = 0
		return dstP + 3
	}
	dst[dstP] = b
	return dstP + 1
}

func literalSize(b byte) int {
	if b == sentinelByte {
		return 3
	}
	return 1
}

// Encode compresses src into dst, resuming from prior suspension state if
// e.ResumeSrc() is non-nil. It returns the number of bytes written to dst.
// On ErrBufferFull the caller must grow dst and call again passing
// e.ResumeSrc() as src.
func (e *Encoder) Encode(dst []byte, src []byte) (int, error) {
	dstP := 0
	srcP := 0
	futureBytes := e.futureBytes

	if e.resumeSrc == nil {
		prologueEnd := len(src)
		if prologueEnd > hashLiteralSize {
			prologueEnd = hashLiteralSize
		}
		if len(src) >= 2 {
			futureBytes = uint32(src[0])<<8 | uint32(src[1])
		}
		for srcP < prologueEnd {
			haveTriple := srcP+2 < len(src)
			if haveTriple {
				futureBytes = (futureBytes << 8) | uint32(src[srcP+2])
			}
			if dstP+literalSize(src[srcP]) > len(dst) {
				return e.suspendEncode(dstP, srcP, src, futureBytes)
			}
			e.ring.append(src[srcP])
			if haveTriple {
				e.ring.updateIndex(futureBytes&hashMask, e.ring.recentPos[0])
			}
			dstP = emitLiteral(dst, dstP, src[srcP])
			srcP++
		}
	}

	if len(src) > 2*hashLiteralSize {
		middleEnd := len(src) - hashLiteralSize
		for srcP < middleEnd {
			if dstP >= len(dst)-bufferReservedSize {
				return e.suspendEncode(dstP, srcP, src, futureBytes)
			}

			searchHash := ((futureBytes << 8) | uint32(src[srcP+2])) & hashMask
			matchPos, matchLen := e.ring.findMatch(searchHash, src[srcP:middleEnd])
			matchLen &= 0x3FFF

			if matchLen >= matchLenMin {
				nibble := matchLen - 3
				if nibble > 15 {
					nibble = 15
				}
				dst[dstP] = sentinelByte
				dst[dstP+1] = byte(nibble<<4) | byte((matchPos>>8)&0xF)
				dst[dstP+2] = byte(matchPos & 0xFF)
				dstP += 3
				if nibble == 15 {
					rem := matchLen - matchLenExtBase
					for {
						b := byte(rem & 0x7F)
						rem >>= 7
						if rem != 0 {
							b |= 0x80
						}
						dst[dstP] = b
						dstP++
						if rem == 0 {
							break
						}
					}
				}
				for i := uint(0); i < matchLen; i++ {
					futureBytes = (futureBytes << 8) | uint32(src[srcP+int(i)+2])
					e.ring.append(src[srcP+int(i)])
					e.ring.updateIndex(futureBytes&hashMask, e.ring.recentPos[0])
				}
				srcP += int(matchLen)
			} else {
				futureBytes = (futureBytes << 8) | uint32(src[srcP+2])
				e.ring.append(src[srcP])
				e.ring.updateIndex(futureBytes&hashMask, e.ring.recentPos[0])
				dstP = emitLiteral(dst, dstP, src[srcP])
				srcP++
			}
		}
	}

	for srcP < len(src) {
		if dstP+literalSize(src[srcP]) > len(dst) {
			return e.suspendEncode(dstP, srcP, src, futureBytes)
		}
		dstP = emitLiteral(dst, dstP, src[srcP])
		srcP++
	}

	e.futureBytes = futureBytes
	e.resumeSrc = nil
	e.SrcLen = srcP
	e.DstLen = dstP
	e.SrcTotalLen += srcP
	e.DstTotalLen += dstP
	return dstP, nil
}

func (e *Encoder) suspendEncode(dstP, srcP int, src []byte, futureBytes uint32) (int, error) {
	e.futureBytes = futureBytes
	e.resumeSrc = src[srcP:]
	e.SrcLen = srcP
	e.DstLen = dstP
	e.SrcTotalLen += srcP
	e.DstTotalLen += dstP
	return dstP, ErrBufferFull
}

// Decode decompresses src into dst, resuming from prior suspension state if
// e.ResumeSrc() is non-nil. It returns the number of bytes written to dst.
// On ErrBufferFull the caller must grow dst and call again passing
// e.ResumeSrc() as src.
func (e *Encoder) Decode(dst []byte, src []byte) (int, error) {
	dstP := 0
	srcP := 0
	lastBytes := e.lastBytes

	if e.resumeSrc == nil {
		for i := 0; i < hashLiteralSize && srcP < len(src); i++ {
			b, consumed, err := decodeNextLiteral(src[srcP:])
			if err != nil {
				return dstP, err
			}
			if dstP >= len(dst) {
				return e.suspendDecode(dstP, srcP, src, lastBytes)
			}
			dst[dstP] = b
			e.ring.append(b)
			lastBytes = (lastBytes << 8) | uint32(b)
			if i == hashLiteralSize-1 {
				e.ring.updateIndex(lastBytes&hashMask, e.ring.recentPos[2])
			}
			dstP++
			srcP += consumed
		}
	}

	for srcP < len(src) {
		if dstP >= len(dst)-decodeBufferReserve {
			return e.suspendDecode(dstP, srcP, src, lastBytes)
		}

		if src[srcP] != sentinelByte {
			dst[dstP] = src[srcP]
			e.ring.append(src[srcP])
			lastBytes = (lastBytes << 8) | uint32(src[srcP])
			e.ring.updateIndex(lastBytes&hashMask, e.ring.recentPos[2])
			dstP++
			srcP++
			continue
		}

		tokenStart := srcP
		if srcP+2 >= len(src) {
			return dstP, ErrMalformedToken
		}
		header := src[srcP+1]
		posLow := src[srcP+2]
		srcP += 3
		nibble := uint(header>>4) & 0xF
		matchPos := uint(header&0xF)<<8 | uint(posLow)

		if nibble == 0 && matchPos == 0 {
			dst[dstP] = sentinelByte
			e.ring.append(sentinelByte)
			lastBytes = (lastBytes << 8) | uint32(sentinelByte)
			e.ring.updateIndex(lastBytes&hashMask, e.ring.recentPos[2])
			dstP++
			continue
		}

		matchLen := nibble + 3
		if nibble == 15 {
			ext, extLen, err := readExtension(src[srcP:])
			if err != nil {
				return dstP, err
			}
			srcP += extLen
			matchLen = matchLenExtBase + ext
		}
		if matchPos >= e.ring.grow {
			return dstP, ErrPositionOutOfRange
		}
		if dstP+int(matchLen) > len(dst) {
			// Unreachable under decodeBufferReserve's margin, which always
			// leaves room for a full token before this point is reached;
			// guarded anyway so a future reserve change fails safe instead
			// of corrupting resume state.
			return e.suspendDecode(dstP, tokenStart, src, lastBytes)
		}
		// matchPos is relative to the window as it stood at this token's
		// start; once the ring has wrapped every append shifts that window,
		// so each byte is located by its absolute position instead.
		startAbs := e.ring.relativeToAbsolute(matchPos)
		for i := uint(0); i < matchLen; i++ {
			ch := e.ring.getRelative(int(e.ring.absoluteToRelative(startAbs + i)))
			dst[dstP] = ch
			e.ring.append(ch)
			lastBytes = (lastBytes << 8) | uint32(ch)
			e.ring.updateIndex(lastBytes&hashMask, e.ring.recentPos[2])
			dstP++
		}
	}

	e.lastBytes = lastBytes
	e.resumeSrc = nil
	e.SrcLen = srcP
	e.DstLen = dstP
	e.SrcTotalLen += srcP
	e.DstTotalLen += dstP
	return dstP, nil
}

func (e *Encoder) suspendDecode(dstP, srcP int, src []byte, lastBytes uint32) (int, error) {
	e.lastBytes = lastBytes
	e.resumeSrc = src[srcP:]
	e.SrcLen = srcP
	e.DstLen = dstP
	e.SrcTotalLen += srcP
	e.DstTotalLen += dstP
	return dstP, ErrBufferFull
}

// decodeNextLiteral parses one literal token (a plain byte, or the 3-byte
// 0xFF 0x00 0x00 escape for a literal 0xFF) from the front of src.
func decodeNextLiteral(src []byte) (b byte, consumed int, err error) {
	if src[0] != sentinelByte {
		return src[0], 1, nil
	}
	if len(src) < 3 || src[1] != 0 || src[2] != 0 {
		return 0, 0, ErrMalformedToken
	}
	return sentinelByte, 3, nil
}

// readExtension parses the variable-length base-128 LSB-first length
// extension that follows a nibble-15 match header, capped at
// maxExtensionBytes per the wire format.
func readExtension(src []byte) (value uint, consumed int, err error) {
	shift := uint(0)
	for consumed < maxExtensionBytes {
		if consumed >= len(src) {
			return 0, 0, ErrMalformedToken
		}
		b := src[consumed]
		value |= uint(b&0x7F) << shift
		consumed++
		shift += 7
		if b&0x80 == 0 {
			return value, consumed, nil
		}
	}
	return 0, 0, ErrMalformedToken
}
