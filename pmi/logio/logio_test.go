// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package logio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader() *Header {
	return &Header{
		Hostname:   "pcptest",
		Timezone:   "UTC",
		RunID:      "8d6f2a5e-9c41-4f08-b6a7-3f1f2b9d0c55",
		UnitsOrder: "ltor",
		Labels:     map[string]string{"env": "test"},
	}
}

type testFrame struct {
	ts   int64
	data []byte
}

func testFrames(n int) []testFrame {
	frames := make([]testFrame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, testFrame{
			ts:   1700000000_000000000 + int64(i)*10_000000000,
			data: bytes.Repeat([]byte{byte('a' + i)}, 16+i),
		})
	}
	return frames
}

// writeContainer finishes a container over the given frames in memory.
// A positive target overrides the chunk size so small frames still
// close chunks.
func writeContainer(t *testing.T, frames []testFrame, meta []byte, target int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, testHeader())
	require.NoError(t, err)
	if target > 0 {
		w.target = target
	}
	for _, f := range frames {
		require.NoError(t, w.AppendFrame(f.ts, f.data))
	}
	require.NoError(t, w.Finalize(meta))
	return buf.Bytes()
}

func readBack(t *testing.T, container []byte) *Reader {
	t.Helper()
	r, err := NewReader(bytes.NewReader(container), int64(len(container)))
	require.NoError(t, err)
	return r
}

func requireFrames(t *testing.T, r *Reader, want []testFrame) {
	t.Helper()
	it := r.Frames()
	for i, f := range want {
		require.True(t, it.Next(), "frame %d", i)
		ts, data := it.Frame()
		assert.Equal(t, f.ts, ts)
		assert.Equal(t, f.data, data)
	}
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestRoundTrip(t *testing.T) {
	frames := testFrames(5)
	meta := []byte(`{"metrics":[],"indoms":[]}`)
	container := writeContainer(t, frames, meta, 0)

	r := readBack(t, container)
	defer r.Close()

	hdr := r.Header()
	assert.Equal(t, FormatVersion, hdr.FormatVersion)
	assert.Equal(t, "pcptest", hdr.Hostname)
	assert.Equal(t, "UTC", hdr.Timezone)
	assert.Equal(t, "ltor", hdr.UnitsOrder)
	assert.Equal(t, map[string]string{"env": "test"}, hdr.Labels)

	assert.Equal(t, meta, r.Meta())
	assert.Equal(t, 5, r.NumFrames())
	first, last := r.TimeRange()
	assert.Equal(t, frames[0].ts, first)
	assert.Equal(t, frames[4].ts, last)

	requireFrames(t, r, frames)
}

func TestEmptyContainer(t *testing.T) {
	container := writeContainer(t, nil, []byte("{}"), 0)
	r := readBack(t, container)
	defer r.Close()

	assert.Equal(t, 0, r.NumFrames())
	first, last := r.TimeRange()
	assert.Zero(t, first)
	assert.Zero(t, last)
	requireFrames(t, r, nil)
}

func TestChunkBoundaries(t *testing.T) {
	frames := testFrames(9)
	// A one byte target closes a chunk after every frame.
	container := writeContainer(t, frames, []byte("{}"), 1)

	r := readBack(t, container)
	defer r.Close()
	assert.Len(t, r.index, 10)
	requireFrames(t, r, frames)
}

func TestAppendAfterFinalize(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, testHeader())
	require.NoError(t, err)
	require.NoError(t, w.AppendFrame(1, []byte("x")))
	require.NoError(t, w.Finalize(nil))

	assert.Error(t, w.AppendFrame(2, []byte("y")))
	assert.Error(t, w.Finalize(nil))
	assert.Equal(t, 1, w.Frames())
}

func TestWriteVersionGate(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, &Header{FormatVersion: "v2.0.0", UnitsOrder: "ltor"})
	var verr *UnsupportedVersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "v2.0.0", verr.Version)

	_, err = NewWriter(&bytes.Buffer{}, &Header{FormatVersion: "1.0.0", UnitsOrder: "ltor"})
	assert.ErrorAs(t, err, &verr)

	// Same major, newer minor passes.
	var buf bytes.Buffer
	w, err := NewWriter(&buf, &Header{FormatVersion: "v1.9.9", UnitsOrder: "ltor"})
	require.NoError(t, err)
	require.NoError(t, w.Finalize(nil))
	r := readBack(t, buf.Bytes())
	assert.Equal(t, "v1.9.9", r.Header().FormatVersion)
	require.NoError(t, r.Close())
}

func TestReadVersionGate(t *testing.T) {
	container := writeContainer(t, testFrames(1), []byte("{}"), 0)
	// Patch the header in place to a major this reader does not speak.
	// The replacement keeps the byte length, so all offsets stay valid.
	patched := bytes.Replace(container,
		[]byte(`"formatVersion":"v1.0.0"`), []byte(`"formatVersion":"v9.0.0"`), 1)
	require.NotEqual(t, container, patched)

	_, err := NewReader(bytes.NewReader(patched), int64(len(patched)))
	var verr *UnsupportedVersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "v9.0.0", verr.Version)
}

func TestCorruptContainer(t *testing.T) {
	good := writeContainer(t, testFrames(3), []byte("{}"), 0)

	tests := map[string]func([]byte) []byte{
		"too small":        func(b []byte) []byte { return b[:10] },
		"bad magic":        func(b []byte) []byte { b[0] ^= 0xff; return b },
		"bad footer magic": func(b []byte) []byte { b[len(b)-1] ^= 0xff; return b },
		"truncated tail":   func(b []byte) []byte { return b[:len(b)-7] },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			bad := mutate(append([]byte(nil), good...))
			_, err := NewReader(bytes.NewReader(bad), int64(len(bad)))
			var cerr *CorruptError
			require.ErrorAs(t, err, &cerr)
		})
	}
}

func TestCreateWritesSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pcptest.sapcp")

	w, err := Create(path, testHeader())
	require.NoError(t, err)
	frames := testFrames(3)
	for _, f := range frames {
		require.NoError(t, w.AppendFrame(f.ts, f.data))
	}
	require.NoError(t, w.Finalize([]byte("{}")))

	require.NoError(t, VerifySidecar(path))
	sum, err := os.ReadFile(path + ".sha256")
	require.NoError(t, err)
	assert.Contains(t, string(sum), "pcptest.sapcp")

	r, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 3, r.NumFrames())
	requireFrames(t, r, frames)
	require.NoError(t, r.Close())

	// Any modification breaks the digest.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Error(t, VerifySidecar(path))
}
