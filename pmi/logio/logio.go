// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package logio implements the on-disk container for metric archives: a
// JSON header, zstd compressed chunks of timestamped frames, an opaque
// meta blob and a footer with the chunk index. Chunks close at frame
// boundaries, so every chunk decompresses to whole frames.
//
// # File format
//
// >>> magic: [8]char
// >>> header_len: u32 LE
// >>> header: JSON
// >>> <compressed chunk data>
// >>> meta: zstd compressed blob
// >>> for chunk in number_of_chunks+1:
// >>>   chunk_offset: u64 LE        # absolute, last entry is the meta offset
// >>> number_of_chunks: u64 LE
// >>> number_of_frames: u64 LE
// >>> first_frame_ts: i64 LE
// >>> last_frame_ts: i64 LE
// >>> meta_len: u64 LE              # compressed size
// >>> magic: [8]char
//
// Each decompressed chunk is a sequence of frame records:
//
// >>> frame_ts: i64 LE
// >>> frame_len: u32 LE
// >>> frame: [frame_len]byte
package logio // import "github.com/sysstat/sapcp/pmi/logio"

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// magic identifies archive containers. The trailing copy in the footer
// guards against truncated files.
const magic = "SAPCPA01"

// FormatVersion is the container format version written by this
// package. Readers accept any version with the same major.
const FormatVersion = "v1.0.0"

// footerSize is the static portion of the footer, without the index.
const footerSize = 48

// defaultChunkTarget is the uncompressed chunk size the writer aims
// for. Chunks only close at frame boundaries, so frames larger than the
// target become a chunk of their own.
const defaultChunkTarget = 256 * 1024

// Header is the uncompressed JSON block at the start of the container.
// It carries everything a reader needs before touching the meta blob.
type Header struct {
	FormatVersion   string            `json:"formatVersion"`
	CreatedUnixNano int64             `json:"createdUnixNano"`
	Hostname        string            `json:"hostname,omitempty"`
	Timezone        string            `json:"timezone,omitempty"`
	RunID           string            `json:"runId,omitempty"`
	UnitsOrder      string            `json:"unitsOrder"`
	Labels          map[string]string `json:"labels,omitempty"`
}

// UnsupportedVersionError is returned when a container was written by
// an incompatible format major.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported container format version %q (reader supports %s)",
		e.Version, semver.Major(FormatVersion))
}

// CorruptError reports a structurally broken container.
type CorruptError struct {
	Offset int64
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt container at offset %d: %s", e.Offset, e.Reason)
}

func corrupt(off int64, format string, args ...any) error {
	return &CorruptError{Offset: off, Reason: fmt.Sprintf(format, args...)}
}

func checkVersion(version string) error {
	if !semver.IsValid(version) || semver.Major(version) != semver.Major(FormatVersion) {
		return &UnsupportedVersionError{Version: version}
	}
	return nil
}
