// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

package ulzstream

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/zooxyt/ulz77"
)

// Options configures a Writer's block-chunking behavior.
type Options struct {
	// BlockSize is the chunk size PushAll splits data into before framing
	// each chunk as its own block. PushBlock ignores it.
	BlockSize int
}

// DefaultOptions returns the 1MiB block size the CLI's stream method uses.
func DefaultOptions() Options {
	return Options{BlockSize: 1 << 20}
}

// Writer frames compressed blocks onto an io.Writer: a uint32 little-endian
// length prefix followed by the compressed bytes.
type Writer struct {
	w    io.Writer
	opts Options
}

// NewWriter wraps w. opts.BlockSize governs PushAll's chunking only.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	if w == nil {
		return nil, ErrInvalidWriter
	}
	if opts.BlockSize <= 0 {
		opts = DefaultOptions()
	}
	return &Writer{w: w, opts: opts}, nil
}

// NewDiscardWriter returns a Writer whose output is thrown away, the
// idiomatic Go stand-in for the original's NULL writer variant.
func NewDiscardWriter() *Writer {
	w, _ := NewWriter(io.Discard, DefaultOptions())
	return w
}

// PushBlock compresses block whole and writes it as one framed block.
func (w *Writer) PushBlock(block []byte) error {
	if w == nil || w.w == nil {
		return ErrUnknownWriter
	}
	compressed, err := ulz77.Compress(block)
	if err != nil {
		return err
	}
	if len(compressed) > math.MaxUint32 {
		return ErrBlockTooLarge
	}
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(compressed))) //nolint:gosec // G115: bounds-checked above
	if _, err := w.w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.w.Write(compressed)
	return err
}

// PushAll splits data into opts.BlockSize chunks and pushes each as its own
// framed block — the "method=stream" CLI mode.
func (w *Writer) PushAll(data []byte) error {
	if w == nil || w.w == nil {
		return ErrUnknownWriter
	}
	bs := w.opts.BlockSize
	for len(data) > 0 {
		n := bs
		if n > len(data) {
			n = len(data)
		}
		if err := w.PushBlock(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Reader reads blocks framed by Writer off an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrInvalidReader
	}
	return &Reader{r: r}, nil
}

type nullReader struct{}

func (nullReader) Read([]byte) (int, error) { return 0, ErrInvalidReader }

// NewNullReader returns a Reader that always fails, the idiomatic Go
// stand-in for the original's unusable NULL reader variant.
func NewNullReader() *Reader {
	r, _ := NewReader(nullReader{})
	return r
}

// PullBlock reads one framed block and decompresses it. It returns io.EOF,
// unwrapped, when the stream ends cleanly between blocks.
func (r *Reader) PullBlock() ([]byte, error) {
	if r == nil || r.r == nil {
		return nil, ErrUnknownReader
	}
	var hdr [4]byte
	if _, err := io.ReadFull(r.r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	n := binary.LittleEndian.Uint32(hdr[:])
	compressed := make([]byte, n)
	if _, err := io.ReadFull(r.r, compressed); err != nil {
		return nil, err
	}
	return ulz77.Decompress(compressed, 0)
}

// PullAll drains every remaining block and concatenates them in order.
func (r *Reader) PullAll() ([]byte, error) {
	var out []byte
	for {
		block, err := r.PullBlock()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
}
