// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

// ring is the sliding-window dictionary: a fixed-capacity circular byte
// window plus a 3-byte-prefix hash index with doubly-linked same-hash
// chains. It is the shared substrate for both encoding and decoding —
// everything else in this package is stateless across calls except the
// Encoder, which retains suspension state (see encoder.go).
type ring struct {
	buf [ringSize]byte

	pos         uint // next write slot, 0 <= pos < ringSize
	grow        uint // high-water mark of pos during the first pass
	absolutePos uint // total bytes ever appended, never wraps
	secondPass  bool // has the ring wrapped at least once?

	// recentPos holds the last recentPosSize ring-slot indices appended,
	// newest at [0]. Encode indexes from [0] and Decode from [2]; the
	// match-chain accelerator that would need more slots is omitted (see doc.go).
	recentPos [recentPosSize]uint

	// offsetTable[slot] is the absolute position of the byte currently
	// stored at slot; stale entries are overwritten in lockstep with append.
	offsetTable [ringSize]uint

	// firstTable/finalTable[h] point at the oldest/newest live ring slot
	// whose stored 3-byte triple hashes to h, or none.
	firstTable [hashSize]int32
	finalTable [hashSize]int32

	// hashNext/hashPrev form the doubly-linked same-hash chain.
	hashNext [ringSize]int32
	hashPrev [ringSize]int32
}

// newRing allocates and initializes an empty ring.
func newRing() *ring {
	r := &ring{}
	r.reset()
	return r
}

// reset restores r to its just-allocated empty state, for reuse via sync.Pool.
func (r *ring) reset() {
	r.pos = 0
	r.grow = 0
	r.absolutePos = 0
	r.secondPass = false
	for i := range r.recentPos {
		r.recentPos[i] = 0
	}
	for i := range r.firstTable {
		r.firstTable[i] = none
		r.finalTable[i] = none
	}
	for i := range r.hashNext {
		r.hashNext[i] = none
		r.hashPrev[i] = none
		r.offsetTable[i] = 0
	}
}

// slotOfRelative converts a relative index (0 = oldest live byte) into the
// ring slot currently holding that byte.
func (r *ring) slotOfRelative(rel int) int {
	if !r.secondPass {
		return rel
	}
	if rel < int(ringSize-r.pos) {
		return int(r.pos) + rel
	}
	return int(r.pos) + rel - ringSize
}

// relativeToAbsolute converts a relative index into an absolute byte count.
func (r *ring) relativeToAbsolute(rel uint) uint {
	return r.absolutePos - r.grow + rel
}

// absoluteToRelative converts an absolute byte count into a relative index.
func (r *ring) absoluteToRelative(abs uint) uint {
	return abs - (r.absolutePos - r.grow)
}

// getRelative returns the byte stored at relative index i.
func (r *ring) getRelative(i int) byte {
	return r.buf[r.slotOfRelative(i)]
}

// tripleHashAtRelative computes the rolling hash of the 3-byte triple
// starting at relative index start.
func (r *ring) tripleHashAtRelative(start int) uint32 {
	b0 := r.buf[r.slotOfRelative(start)]
	b1 := r.buf[r.slotOfRelative(start+1)]
	b2 := r.buf[r.slotOfRelative(start+2)]
	return hashTriple(b0, b1, b2)
}

// hashTriple folds 3 bytes into the low hashSizeBits bits of their
// concatenation — the rolling hash used throughout this package.
func hashTriple(b0, b1, b2 byte) uint32 {
	return (uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)) & hashMask
}

// append inserts symbol at the write cursor. It does NOT install the hash
// linkage for the newly inserted byte's own triple — the caller does that
// via updateIndex once it has a valid 3-byte look-ahead (see encoder.go).
func (r *ring) append(symbol byte) {
	if r.secondPass {
		// The byte at relative 0 (== r.pos) is about to be overwritten;
		// splice its slot out of its hash chain before we lose its content.
		evictedHash := r.tripleHashAtRelative(0)
		evictedSlot := r.slotOfRelative(0)
		nextPos := r.hashNext[evictedSlot]
		if nextPos != none {
			r.hashPrev[nextPos] = none
			r.firstTable[evictedHash] = nextPos
		} else {
			r.firstTable[evictedHash] = none
			r.finalTable[evictedHash] = none
		}
	}

	r.buf[r.pos] = symbol
	r.offsetTable[r.pos] = r.absolutePos
	r.hashNext[r.pos] = none
	r.hashPrev[r.pos] = none

	for i := len(r.recentPos) - 1; i > 0; i-- {
		r.recentPos[i] = r.recentPos[i-1]
	}
	r.recentPos[0] = r.pos

	r.pos++
	if r.pos > r.grow {
		r.grow = r.pos
	}
	if r.pos >= ringSize {
		r.pos = 0
		r.secondPass = true
	}
	r.absolutePos++
}

// updateIndex appends slot to the tail of hash chain h.
func (r *ring) updateIndex(h uint32, slot uint) {
	s := int32(slot) //nolint:gosec // G115: slot is always < ringSize
	if r.firstTable[h] == none {
		r.firstTable[h] = s
		r.finalTable[h] = s
		return
	}
	tail := r.finalTable[h]
	r.hashNext[tail] = s
	r.hashPrev[s] = tail
	r.finalTable[h] = s
}

// findMatch walks the hash chain for h and returns the (relative position,
// length) of the longest prefix match with lookahead, bounded by grow and
// len(lookahead). It returns (0, 0) if the chain is empty or no member
// matched. The walk is unbounded by design (see doc.go): on pathological
// inputs this is quadratic, an accepted compression/speed tradeoff.
func (r *ring) findMatch(h uint32, lookahead []byte) (matchPos uint, matchLen uint) {
	slot := r.firstTable[h]
	if slot == none {
		return 0, 0
	}

	for {
		start := int(r.absoluteToRelative(r.offsetTable[slot]))
		length := 0
		for length < len(lookahead) && start+length < int(r.grow) &&
			r.buf[r.slotOfRelative(start+length)] == lookahead[length] {
			length++
		}
		if uint(length) > matchLen {
			matchPos = uint(start)
			matchLen = uint(length)
		}

		next := r.hashNext[slot]
		if next == none {
			break
		}
		slot = next
	}

	return matchPos, matchLen
}
