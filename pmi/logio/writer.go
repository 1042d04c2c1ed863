// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package logio // import "github.com/sysstat/sapcp/pmi/logio"

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	sha256 "github.com/minio/sha256-simd"
)

// Writer produces an archive container. Frames are buffered into chunks
// and compressed once a chunk reaches its target size; Finalize flushes
// the last chunk and writes meta and footer.
type Writer struct {
	out    io.Writer
	off    int64
	enc    *zstd.Encoder
	target int

	chunkBuf    []byte
	compressBuf []byte
	index       []uint64

	frames    int
	firstTS   int64
	lastTS    int64
	finalized bool

	// set by Create
	file    *os.File
	digest  hash.Hash
	sidecar string
}

// NewWriter starts a container on w and writes the header immediately.
func NewWriter(w io.Writer, hdr *Header) (*Writer, error) {
	if hdr.FormatVersion == "" {
		hdr.FormatVersion = FormatVersion
	}
	if err := checkVersion(hdr.FormatVersion); err != nil {
		return nil, err
	}
	hdrJSON, err := json.Marshal(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	if len(hdrJSON) > math.MaxUint32 {
		return nil, errors.New("header too large")
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	lw := &Writer{out: w, enc: enc, target: defaultChunkTarget}
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(hdrJSON)))
	if err := lw.write([]byte(magic), lenBuf[:], hdrJSON); err != nil {
		return nil, err
	}
	lw.index = append(lw.index, uint64(lw.off))
	return lw, nil
}

// Create starts a container in a new file at path. Finalize writes a
// sha256 sidecar at path + ".sha256" with the digest of the finished
// file, computed as the file is written.
func Create(path string, hdr *Header) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	digest := sha256.New()
	lw, err := NewWriter(io.MultiWriter(file, digest), hdr)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	lw.file = file
	lw.digest = digest
	lw.sidecar = path + ".sha256"
	return lw, nil
}

func (w *Writer) write(bufs ...[]byte) error {
	for _, buf := range bufs {
		n, err := w.out.Write(buf)
		w.off += int64(n)
		if err != nil {
			return fmt.Errorf("failed to write container: %w", err)
		}
	}
	return nil
}

// AppendFrame adds one timestamped frame. Frames must be appended in
// timestamp order; the footer stores the first and last timestamp.
func (w *Writer) AppendFrame(ts int64, frame []byte) error {
	if w.finalized {
		return errors.New("container already finalized")
	}
	if len(frame) > math.MaxUint32 {
		return errors.New("frame too large")
	}
	if w.frames == 0 {
		w.firstTS = ts
	}
	w.lastTS = ts
	w.frames++

	w.chunkBuf = binary.LittleEndian.AppendUint64(w.chunkBuf, uint64(ts))
	w.chunkBuf = binary.LittleEndian.AppendUint32(w.chunkBuf, uint32(len(frame)))
	w.chunkBuf = append(w.chunkBuf, frame...)
	if len(w.chunkBuf) >= w.target {
		return w.flushChunk()
	}
	return nil
}

func (w *Writer) flushChunk() error {
	if len(w.chunkBuf) == 0 {
		return nil
	}
	compressed := w.enc.EncodeAll(w.chunkBuf, w.compressBuf[:0])
	w.chunkBuf = w.chunkBuf[:0]
	if err := w.write(compressed); err != nil {
		return err
	}
	w.index = append(w.index, uint64(w.off))
	return nil
}

// Frames returns the number of frames appended so far.
func (w *Writer) Frames() int { return w.frames }

// Finalize flushes pending frames, writes the meta blob and the footer.
// No frames can be appended afterwards.
func (w *Writer) Finalize(meta []byte) error {
	if w.finalized {
		return errors.New("container already finalized")
	}
	w.finalized = true
	if err := w.flushChunk(); err != nil {
		return err
	}

	compressedMeta := w.enc.EncodeAll(meta, nil)
	if err := w.write(compressedMeta); err != nil {
		return err
	}

	var ftr []byte
	for _, off := range w.index {
		ftr = binary.LittleEndian.AppendUint64(ftr, off)
	}
	ftr = binary.LittleEndian.AppendUint64(ftr, uint64(len(w.index)-1))
	ftr = binary.LittleEndian.AppendUint64(ftr, uint64(w.frames))
	ftr = binary.LittleEndian.AppendUint64(ftr, uint64(w.firstTS))
	ftr = binary.LittleEndian.AppendUint64(ftr, uint64(w.lastTS))
	ftr = binary.LittleEndian.AppendUint64(ftr, uint64(len(compressedMeta)))
	ftr = append(ftr, magic...)
	if err := w.write(ftr); err != nil {
		return err
	}

	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("failed to close archive: %w", err)
		}
		sum := fmt.Sprintf("%x  %s\n", w.digest.Sum(nil), filepath.Base(w.file.Name()))
		if err := os.WriteFile(w.sidecar, []byte(sum), 0o644); err != nil {
			return fmt.Errorf("failed to write checksum sidecar: %w", err)
		}
	}
	return nil
}
