// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulz77

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompressIgnoresWrongSizeHint(t *testing.T) {
	data := bytes.Repeat([]byte("hint-agnostic growth "), 1000)
	compressed, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	for _, hint := range []int{0, 1, len(data) / 2, len(data) * 10} {
		back, err := Decompress(compressed, hint)
		if err != nil {
			t.Fatalf("Decompress(hint=%d): %v", hint, err)
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("Decompress(hint=%d) mismatch", hint)
		}
	}
}

func TestDecompressPropagatesMalformedToken(t *testing.T) {
	_, err := Decompress([]byte{'a', 'b', 'c', 0xFF, 0xF0}, 0)
	if !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestDecompressRejectsNegativeSizeHint(t *testing.T) {
	_, err := Decompress([]byte{'a'}, -1)
	if !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}
}

func TestCompressDecompressPoolReuseIsSafe(t *testing.T) {
	for i := 0; i < 8; i++ {
		data := bytes.Repeat([]byte{byte(i)}, 5000)
		compressed, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress iteration %d: %v", i, err)
		}
		back, err := Decompress(compressed, len(data))
		if err != nil {
			t.Fatalf("Decompress iteration %d: %v", i, err)
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("iteration %d round trip mismatch", i)
		}
	}
}
