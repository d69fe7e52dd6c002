// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

import "testing"

func TestRingAppendFillsOffsetTable(t *testing.T) {
	r := newRing()
	data := []byte("ABCDE")
	for _, b := range data {
		r.append(b)
	}
	for i := range data {
		if got := r.getRelative(i); got != data[i] {
			t.Fatalf("getRelative(%d) = %q, want %q", i, got, data[i])
		}
		if got := r.offsetTable[r.slotOfRelative(i)]; got != r.relativeToAbsolute(uint(i)) {
			t.Fatalf("offsetTable at relative %d = %d, want %d", i, got, r.relativeToAbsolute(uint(i)))
		}
	}
	if r.grow != uint(len(data)) {
		t.Fatalf("grow = %d, want %d", r.grow, len(data))
	}
	if r.secondPass {
		t.Fatalf("secondPass should be false before a full wrap")
	}
}

func TestRingWrapSplicesHashChain(t *testing.T) {
	r := newRing()
	// Fill the ring exactly once, indexing every triple at its start slot.
	data := make([]byte, ringSize)
	for i := range data {
		data[i] = byte(i % 251)
	}
	for i, b := range data {
		r.append(b)
		if i+2 < len(data) {
			h := hashTriple(data[i], data[i+1], data[i+2])
			r.updateIndex(h, r.recentPos[0])
		}
	}
	if !r.secondPass {
		t.Fatalf("secondPass should be true after exactly ringSize appends")
	}

	h := hashTriple(data[0], data[1], data[2])
	if r.firstTable[h] == none {
		t.Fatalf("chain for first triple's hash should still be populated")
	}

	// One more append evicts slot 0 (data[0]); its chain entry must be spliced
	// out, not left dangling.
	r.append(0xAB)
	for slot := r.firstTable[h]; slot != none; slot = r.hashNext[slot] {
		if slot == 0 {
			t.Fatalf("evicted slot 0 should have been spliced out of hash chain %d", h)
		}
	}
}

func TestRingFindMatchPrefersLongest(t *testing.T) {
	r := newRing()
	data := []byte("ABCXYZABCXYZABCDEF")
	for i, b := range data {
		r.append(b)
		if i+2 < len(data) {
			h := hashTriple(data[i], data[i+1], data[i+2])
			r.updateIndex(h, r.recentPos[0])
		}
	}

	// "ABC" recurs at relative 0, 6, 12. Relative 0 and 6 both continue
	// "ABCXYZ", diverging from the lookahead right after "ABC"; relative 12
	// is the literal tail "ABCDEF", matching the full lookahead. The walk
	// visits the whole chain and keeps the strictly longest, so it must
	// find the full-length match at 12 rather than stopping at the first
	// (shorter) hit.
	lookahead := []byte("ABCDEF")
	h := hashTriple('A', 'B', 'C')
	pos, length := r.findMatch(h, lookahead)
	if length != 6 {
		t.Fatalf("findMatch length = %d, want 6 (full match at relative 12)", length)
	}
	if pos != 12 {
		t.Fatalf("findMatch pos = %d, want 12", pos)
	}
}

func TestRingFindMatchEmptyChain(t *testing.T) {
	r := newRing()
	r.append('Z')
	pos, length := r.findMatch(hashTriple('A', 'B', 'C'), []byte("ABC"))
	if pos != 0 || length != 0 {
		t.Fatalf("findMatch on empty chain = (%d,%d), want (0,0)", pos, length)
	}
}

func TestRingResetClearsState(t *testing.T) {
	r := newRing()
	r.append('X')
	r.updateIndex(hashTriple('X', 'X', 'X'), r.recentPos[0])
	r.reset()

	if r.grow != 0 || r.pos != 0 || r.secondPass {
		t.Fatalf("reset did not clear state: %+v", r)
	}
	for _, h := range r.firstTable {
		if h != none {
			t.Fatalf("reset left a stale hash chain head")
		}
	}
}
