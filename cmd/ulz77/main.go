// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zooxyt
// Source: github.com/zooxyt/ulz77

// Command ulz77 compresses and decompresses files with the ulz77 codec.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/zooxyt/ulz77"
	"github.com/zooxyt/ulz77/ulzstream"
)

var log = logrus.New()

// fileHeaderSize is the CLI's own framing for --method file: an 8-byte
// little-endian original-length prefix ahead of the single compressed blob.
// The codec itself carries no such header; this lives entirely here.
const fileHeaderSize = 8

func main() {
	app := &cli.App{
		Name:  "ulz77",
		Usage: "compress or decompress a file with the ulz77 codec",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "c", Usage: "compress srcfile"},
			&cli.BoolFlag{Name: "d", Usage: "decompress srcfile"},
			&cli.StringFlag{Name: "o", Usage: "destination path", Required: true},
			&cli.StringFlag{Name: "method", Value: "file", Usage: "file|stream"},
			&cli.IntFlag{Name: "bs", Value: 1 << 20, Usage: "stream block size in bytes"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Error("ulz77 failed")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one srcfile argument", 2)
	}
	src := c.Args().Get(0)
	dst := c.String("o")
	method := c.String("method")
	compress := c.Bool("c")
	decompress := c.Bool("d")

	switch {
	case compress == decompress:
		return cli.Exit("exactly one of -c or -d is required", 2)
	case method != "file" && method != "stream":
		return cli.Exit(fmt.Sprintf("unknown --method %q", method), 2)
	}

	start := time.Now()
	var err error
	switch {
	case compress && method == "file":
		err = compressFile(src, dst)
	case decompress && method == "file":
		err = decompressFile(src, dst)
	case compress && method == "stream":
		err = compressStream(src, dst, c.Int("bs"))
	case decompress && method == "stream":
		err = decompressStream(src, dst)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":   src,
		"method": method,
		"took":   time.Since(start),
	}).Info("done")
	return nil
}

func compressFile(srcPath, dstPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	compressed, err := ulz77.Compress(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", srcPath, err)
	}

	out := make([]byte, fileHeaderSize+len(compressed))
	binary.LittleEndian.PutUint64(out[:fileHeaderSize], uint64(len(data)))
	copy(out[fileHeaderSize:], compressed)

	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dstPath, err)
	}
	log.WithFields(logrus.Fields{
		"srcBytes": len(data),
		"dstBytes": len(out),
	}).Info("compressed")
	return nil
}

func decompressFile(srcPath, dstPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	if len(data) < fileHeaderSize {
		return fmt.Errorf("%s: truncated file header", srcPath)
	}
	originalLen := binary.LittleEndian.Uint64(data[:fileHeaderSize])

	out, err := ulz77.Decompress(data[fileHeaderSize:], int(originalLen))
	if err != nil {
		return fmt.Errorf("decompress %s: %w", srcPath, err)
	}
	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dstPath, err)
	}
	log.WithFields(logrus.Fields{
		"srcBytes": len(data),
		"dstBytes": len(out),
	}).Info("decompressed")
	return nil
}

func compressStream(srcPath, dstPath string, blockSize int) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer in.Close()

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}
	defer out.Close()

	w, err := ulzstream.NewWriter(out, ulzstream.Options{BlockSize: blockSize})
	if err != nil {
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	return w.PushAll(data)
}

func decompressStream(srcPath, dstPath string) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer in.Close()

	r, err := ulzstream.NewReader(in)
	if err != nil {
		return err
	}
	data, err := r.PullAll()
	if err != nil {
		return fmt.Errorf("decompress %s: %w", srcPath, err)
	}
	return os.WriteFile(dstPath, data, 0o644)
}
