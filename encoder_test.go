// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func roundTrip(t *testing.T, data []byte) {
	t.Helper()
	compressed, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	back, err := Decompress(compressed, len(data))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(back), len(data))
	}
}

func TestRoundTripFixtures(t *testing.T) {
	cases := map[string][]byte{
		"empty":             {},
		"repeatingPattern":  []byte("ABCDEABCDE"),
		"allSame":           []byte("AAAAAAAAAA"),
		"twoBytes":          []byte("AB"),
		"fiveSentinels":     bytes.Repeat([]byte{0xFF}, 5),
		"twoHundredX":       bytes.Repeat([]byte("X"), 200),
		"singleSentinel":    {0xFF},
		"singleByte":        {'Q'},
		"threeBytes":        []byte("xyz"),
		"longRepeatedWord":  []byte(strings.Repeat("the quick brown fox ", 400)),
		"sentinelInMiddle":  append(append([]byte("before"), 0xFF), []byte("after")...),
		"sentinelAtBoundary": append(bytes.Repeat([]byte("Z"), 17), 0xFF, 0xFF),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, data)
		})
	}
}

func TestRoundTripLargeRandomBuffer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 10<<20)
	rng.Read(data)
	roundTrip(t, data)
}

func TestRoundTripLongMatchNeedingExtension(t *testing.T) {
	// A run long enough to force the nibble-15 extension-byte path
	// (matchLen > matchLenExtBase) on both 1- and 2-extension-byte lengths.
	data := append([]byte("PREFIX-"), bytes.Repeat([]byte{'R'}, 5000)...)
	data = append(data, []byte("-SUFFIX")...)
	roundTrip(t, data)
}

func TestEncodeResumesAcrossBufferFull(t *testing.T) {
	data := []byte(strings.Repeat("resumable streaming content ", 50))
	enc := NewEncoder()

	small := make([]byte, 16)
	var out []byte
	n, err := enc.Encode(small, data)
	out = append(out, small[:n]...)
	for errors.Is(err, ErrBufferFull) {
		n, err = enc.Encode(small, enc.ResumeSrc())
		out = append(out, small[:n]...)
	}
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dec := NewEncoder()
	decOut := make([]byte, len(data)+decodeBufferReserve)
	m, derr := dec.Decode(decOut, out)
	if derr != nil {
		t.Fatalf("Decode: %v", derr)
	}
	if !bytes.Equal(decOut[:m], data) {
		t.Fatalf("resumed round trip mismatch")
	}
}

func TestDecodeRejectsTruncatedMatchHeader(t *testing.T) {
	dec := NewEncoder()
	dst := make([]byte, 16)
	_, err := dec.Decode(dst, []byte{'a', 0xFF, 0x10})
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestDecodeRejectsOutOfRangePosition(t *testing.T) {
	dec := NewEncoder()
	dst := make([]byte, 16+decodeBufferReserve)
	// header nibble=4 (len 7), position 0x0FFF — far beyond any live window
	// this early in the stream.
	_, err := dec.Decode(dst, []byte{'a', 'b', 'c', 0xFF, 0x4F, 0xFF})
	if !errors.Is(err, ErrPositionOutOfRange) {
		t.Fatalf("expected ErrPositionOutOfRange, got %v", err)
	}
}

func TestSentinelEscapeWireForm(t *testing.T) {
	compressed, err := Compress([]byte{0xFF})
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	want := []byte{0xFF, 0x00, 0x00}
	if !bytes.Equal(compressed, want) {
		t.Fatalf("Compress([0xFF]) = % x, want % x", compressed, want)
	}
}
