// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package logio // import "github.com/sysstat/sapcp/pmi/logio"

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	sha256 "github.com/minio/sha256-simd"
)

// Reader opens a finished container and iterates its frames in order.
type Reader struct {
	ra     io.ReaderAt
	closer io.Closer
	size   int64
	dec    *zstd.Decoder

	hdr     Header
	meta    []byte
	index   []uint64
	frames  int
	firstTS int64
	lastTS  int64
}

// Open opens the container at path.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	r, err := NewReader(file, info.Size())
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	r.closer = file
	return r, nil
}

// NewReader reads a container from an arbitrary random access source.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	r := &Reader{ra: ra, size: size, dec: dec}
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) parse() error {
	if r.size < int64(len(magic))+4+footerSize {
		return corrupt(0, "file of %d bytes is too small", r.size)
	}

	var front [12]byte
	if _, err := r.ra.ReadAt(front[:], 0); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if string(front[:8]) != magic {
		return corrupt(0, "bad magic")
	}
	hdrLen := int64(binary.LittleEndian.Uint32(front[8:]))
	dataStart := 12 + hdrLen
	if dataStart > r.size-footerSize {
		return corrupt(8, "header of %d bytes exceeds file", hdrLen)
	}
	hdrJSON := make([]byte, hdrLen)
	if _, err := r.ra.ReadAt(hdrJSON, 12); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if err := json.Unmarshal(hdrJSON, &r.hdr); err != nil {
		return corrupt(12, "header is not valid JSON: %v", err)
	}
	if err := checkVersion(r.hdr.FormatVersion); err != nil {
		return err
	}

	ftrOff := r.size - footerSize
	var ftr [footerSize]byte
	if _, err := r.ra.ReadAt(ftr[:], ftrOff); err != nil {
		return fmt.Errorf("failed to read footer: %w", err)
	}
	if string(ftr[40:]) != magic {
		return corrupt(ftrOff+40, "bad footer magic")
	}
	nChunks := binary.LittleEndian.Uint64(ftr[0:])
	r.frames = int(binary.LittleEndian.Uint64(ftr[8:]))
	r.firstTS = int64(binary.LittleEndian.Uint64(ftr[16:]))
	r.lastTS = int64(binary.LittleEndian.Uint64(ftr[24:]))
	metaLen := binary.LittleEndian.Uint64(ftr[32:])

	indexLen := (nChunks + 1) * 8
	indexOff := ftrOff - int64(indexLen)
	if indexOff < dataStart {
		return corrupt(ftrOff, "index of %d chunks exceeds file", nChunks)
	}
	rawIndex := make([]byte, indexLen)
	if _, err := r.ra.ReadAt(rawIndex, indexOff); err != nil {
		return fmt.Errorf("failed to read chunk index: %w", err)
	}
	r.index = make([]uint64, 0, nChunks+1)
	for i := uint64(0); i <= nChunks; i++ {
		entry := binary.LittleEndian.Uint64(rawIndex[i*8:])
		if i == 0 {
			if entry != uint64(dataStart) {
				return corrupt(indexOff, "index start %d does not match data start %d",
					entry, dataStart)
			}
		} else if entry < r.index[i-1] {
			return corrupt(indexOff+int64(i*8), "index entries not monotonic")
		}
		r.index = append(r.index, entry)
	}

	metaOff := int64(r.index[nChunks])
	if metaOff+int64(metaLen) != indexOff {
		return corrupt(metaOff, "meta of %d bytes does not reach index", metaLen)
	}
	compressedMeta := make([]byte, metaLen)
	if _, err := r.ra.ReadAt(compressedMeta, metaOff); err != nil {
		return fmt.Errorf("failed to read meta: %w", err)
	}
	meta, err := r.dec.DecodeAll(compressedMeta, nil)
	if err != nil {
		return corrupt(metaOff, "failed to decompress meta: %v", err)
	}
	r.meta = meta
	return nil
}

// Close releases the underlying file if the reader owns one.
func (r *Reader) Close() error {
	r.dec.Close()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Header returns the container header.
func (r *Reader) Header() *Header { return &r.hdr }

// Meta returns the decompressed meta blob.
func (r *Reader) Meta() []byte { return r.meta }

// NumFrames returns the number of stored frames.
func (r *Reader) NumFrames() int { return r.frames }

// TimeRange returns the timestamps of the first and last frame. Both
// are zero for an empty container.
func (r *Reader) TimeRange() (first, last int64) {
	if r.frames == 0 {
		return 0, 0
	}
	return r.firstTS, r.lastTS
}

// FrameIter iterates frames chunk by chunk.
type FrameIter struct {
	r     *Reader
	chunk int
	buf   []byte
	off   int
	n     int

	ts   int64
	data []byte
	err  error
}

// Frames returns an iterator positioned before the first frame.
func (r *Reader) Frames() *FrameIter {
	return &FrameIter{r: r}
}

// Next advances to the next frame, returning false at the end of the
// container or on error.
func (it *FrameIter) Next() bool {
	if it.err != nil {
		return false
	}
	for it.off >= len(it.buf) {
		if it.chunk >= len(it.r.index)-1 {
			if it.n != it.r.frames {
				it.err = corrupt(it.r.size, "footer names %d frames, container holds %d",
					it.r.frames, it.n)
			}
			return false
		}
		if err := it.loadChunk(); err != nil {
			it.err = err
			return false
		}
	}

	chunkStart := int64(it.r.index[it.chunk-1])
	if len(it.buf)-it.off < 12 {
		it.err = corrupt(chunkStart, "truncated frame record in chunk %d", it.chunk-1)
		return false
	}
	it.ts = int64(binary.LittleEndian.Uint64(it.buf[it.off:]))
	frameLen := int(binary.LittleEndian.Uint32(it.buf[it.off+8:]))
	it.off += 12
	if len(it.buf)-it.off < frameLen {
		it.err = corrupt(chunkStart, "frame of %d bytes exceeds chunk %d", frameLen, it.chunk-1)
		return false
	}
	it.data = it.buf[it.off : it.off+frameLen]
	it.off += frameLen
	it.n++
	return true
}

func (it *FrameIter) loadChunk() error {
	start := it.r.index[it.chunk]
	length := it.r.index[it.chunk+1] - start
	compressed := make([]byte, length)
	if _, err := it.r.ra.ReadAt(compressed, int64(start)); err != nil {
		return fmt.Errorf("failed to read chunk %d: %w", it.chunk, err)
	}
	buf, err := it.r.dec.DecodeAll(compressed, nil)
	if err != nil {
		return corrupt(int64(start), "failed to decompress chunk %d: %v", it.chunk, err)
	}
	it.buf = buf
	it.off = 0
	it.chunk++
	return nil
}

// Frame returns the timestamp and payload read by the last successful
// Next. The payload is only valid until the next call to Next.
func (it *FrameIter) Frame() (ts int64, data []byte) {
	return it.ts, it.data
}

// Err returns the first error encountered while iterating.
func (it *FrameIter) Err() error { return it.err }

// VerifySidecar recomputes the archive digest and compares it against
// the sha256 sidecar written by Create.
func VerifySidecar(path string) error {
	want, err := os.ReadFile(path + ".sha256")
	if err != nil {
		return fmt.Errorf("failed to read checksum sidecar: %w", err)
	}
	fields := bytes.Fields(want)
	if len(fields) < 1 {
		return fmt.Errorf("checksum sidecar %s is empty", path+".sha256")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()
	digest := sha256.New()
	if _, err := io.Copy(digest, file); err != nil {
		return fmt.Errorf("failed to hash archive: %w", err)
	}
	sum := fmt.Sprintf("%x", digest.Sum(nil))
	if sum != string(fields[0]) {
		return fmt.Errorf("archive %s digest mismatch: file %s, sidecar %s",
			path, sum, fields[0])
	}
	return nil
}
