// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/pmi/logio"
)

var (
	testInDom = NewInDom(60, 1)

	descPswitch = Desc{
		Name:  "kernel.all.pswitch",
		ID:    NewID(60, 0, 13),
		Type:  TypeUint64,
		InDom: InDomNull,
		Sem:   SemCounter,
		Units: MakeUnits(0, 0, 1, 0, 0, CountOne),
	}
	descDiskTotal = Desc{
		Name:  "disk.dev.total",
		ID:    NewID(60, 0, 28),
		Type:  TypeUint64,
		InDom: testInDom,
		Sem:   SemCounter,
		Units: MakeUnits(0, 0, 1, 0, 0, CountOne),
	}
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s, err := NewSession(&buf, &SessionConfig{Hostname: "pcptest", Timezone: "UTC"})
	require.NoError(t, err)
	return s, &buf
}

func TestAddMetricNames(t *testing.T) {
	valid := []string{
		"kernel.all.pswitch",
		"mem.util_free",
		"disk.dev.read_bytes",
		"a",
		"x9.y_2",
	}
	invalid := []string{
		"",
		".",
		"kernel.",
		".all",
		"kernel..all",
		"9kernel",
		"kernel.9all",
		"_kernel",
		"kernel.all-cpu",
		"kernel all",
	}

	s, _ := newTestSession(t)
	for i, name := range valid {
		d := Desc{Name: name, ID: NewID(60, 0, uint32(i)), InDom: InDomNull}
		assert.NoError(t, s.AddMetric(d), name)
	}
	for i, name := range invalid {
		d := Desc{Name: name, ID: NewID(60, 1, uint32(i)), InDom: InDomNull}
		assert.ErrorIs(t, s.AddMetric(d), ErrInvalidName, name)
	}
}

func TestAddMetricDuplicates(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.AddMetric(descPswitch))

	assert.ErrorIs(t, s.AddMetric(descPswitch), ErrDupMetricName)

	dup := descDiskTotal
	dup.ID = descPswitch.ID
	assert.ErrorIs(t, s.AddMetric(dup), ErrDupMetricID)

	require.NoError(t, s.AddMetric(descDiskTotal))
}

func TestAddInstance(t *testing.T) {
	s, _ := newTestSession(t)

	assert.ErrorIs(t, s.AddInstance(InDomNull, "sda", 0), ErrNoInstanceAllowed)
	assert.ErrorIs(t, s.AddInstance(testInDom, "", 0), ErrInstanceConflict)
	assert.ErrorIs(t, s.AddInstance(testInDom, "sda", -3), ErrInstanceConflict)

	require.NoError(t, s.AddInstance(testInDom, "sda", 0))

	// Identical re-registration is a no-op.
	require.NoError(t, s.AddInstance(testInDom, "sda", 0))

	assert.ErrorIs(t, s.AddInstance(testInDom, "sdb", 0), ErrInstanceConflict)
	assert.ErrorIs(t, s.AddInstance(testInDom, "sda", 1), ErrInstanceConflict)

	require.NoError(t, s.AddInstance(testInDom, "sdb", 1))
}

func TestPutValue(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.AddMetric(descPswitch))
	require.NoError(t, s.AddMetric(descDiskTotal))

	assert.ErrorIs(t, s.PutValue("mem.util_free", "", "1"), ErrNoMetric)
	assert.ErrorIs(t, s.PutValue("kernel.all.pswitch", "sda", "1"), ErrNoInstanceAllowed)
	assert.ErrorIs(t, s.PutValue("disk.dev.total", "", "1"), ErrInstanceRequired)

	// The domain has no instances yet.
	assert.ErrorIs(t, s.PutValue("disk.dev.total", "sda", "1"), ErrNoInstance)

	require.NoError(t, s.AddInstance(testInDom, "sda", 0))
	assert.ErrorIs(t, s.PutValue("disk.dev.total", "sdb", "1"), ErrNoInstance)

	require.NoError(t, s.PutValue("disk.dev.total", "sda", "1"))
	assert.ErrorIs(t, s.PutValue("disk.dev.total", "sda", "2"), ErrDupValue)

	require.NoError(t, s.PutValue("kernel.all.pswitch", "", "42"))
	assert.ErrorIs(t, s.PutValue("kernel.all.pswitch", "", "43"), ErrDupValue)

	// Commit seals the sample, the same puts stage again.
	require.NoError(t, s.Commit(time.Unix(1700000000, 0)))
	require.NoError(t, s.PutValue("kernel.all.pswitch", "", "43"))
	require.NoError(t, s.PutValue("disk.dev.total", "sda", "2"))
}

func TestPutValueTextLimit(t *testing.T) {
	forks := Desc{Name: "kernel.all.sysfork", ID: NewID(60, 0, 14), InDom: InDomNull}

	s, _ := newTestSession(t)
	require.NoError(t, s.AddMetric(descPswitch))
	require.NoError(t, s.AddMetric(forks))

	require.NoError(t, s.PutValue("kernel.all.pswitch", "", strings.Repeat("v", math.MaxUint16)))
	assert.Error(t, s.PutValue("kernel.all.sysfork", "", strings.Repeat("v", math.MaxUint16+1)))
}

func TestCommitEmpty(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.AddMetric(descPswitch))

	assert.ErrorIs(t, s.Commit(time.Now()), ErrNoData)
	assert.Equal(t, 0, s.Samples())
}

func TestClosedSession(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.AddMetric(descPswitch))
	require.NoError(t, s.PutValue("kernel.all.pswitch", "", "1"))
	require.NoError(t, s.Commit(time.Unix(1700000000, 0)))
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.ErrorIs(t, s.AddMetric(descDiskTotal), ErrClosed)
	assert.ErrorIs(t, s.AddInstance(testInDom, "sda", 0), ErrClosed)
	assert.ErrorIs(t, s.PutValue("kernel.all.pswitch", "", "2"), ErrClosed)
	assert.ErrorIs(t, s.Commit(time.Now()), ErrClosed)
}

func TestCloseDiscardsStagedValues(t *testing.T) {
	s, buf := newTestSession(t)
	require.NoError(t, s.AddMetric(descPswitch))
	require.NoError(t, s.PutValue("kernel.all.pswitch", "", "1"))
	require.NoError(t, s.Commit(time.Unix(1700000000, 0)))
	require.NoError(t, s.PutValue("kernel.all.pswitch", "", "2"))
	require.NoError(t, s.Close())

	ar, err := NewArchive(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	defer ar.Close()
	assert.Equal(t, 1, ar.NumSamples())
}

func TestSessionArchiveRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSession(&buf, &SessionConfig{
		Hostname:   "pcptest",
		Timezone:   "UTC",
		RunID:      "0e7b69ca-5a9e-4f6a-8c2e-0d9be1c7e8d4",
		UnitsOrder: UnitsRTOL,
		Labels:     map[string]string{"env": "test"},
	})
	require.NoError(t, err)

	require.NoError(t, s.AddMetric(descPswitch))
	require.NoError(t, s.AddMetric(descDiskTotal))
	require.NoError(t, s.AddInstance(testInDom, "sda", 0))

	t0 := time.Unix(1700000000, 0)
	require.NoError(t, s.PutValue("kernel.all.pswitch", "", "12345"))
	require.NoError(t, s.PutValue("disk.dev.total", "sda", "900"))
	require.NoError(t, s.Commit(t0))

	// A second disk shows up mid-run.
	require.NoError(t, s.AddInstance(testInDom, "sdb", 1))
	require.NoError(t, s.PutValue("disk.dev.total", "sdb", "90"))
	require.NoError(t, s.Commit(t0.Add(10*time.Second)))

	require.Equal(t, 2, s.Samples())
	require.NoError(t, s.Close())

	ar, err := NewArchive(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	defer ar.Close()

	hdr := ar.Header()
	assert.Equal(t, logio.FormatVersion, hdr.FormatVersion)
	assert.Equal(t, "pcptest", hdr.Hostname)
	assert.Equal(t, "UTC", hdr.Timezone)
	assert.Equal(t, "0e7b69ca-5a9e-4f6a-8c2e-0d9be1c7e8d4", hdr.RunID)
	assert.Equal(t, map[string]string{"env": "test"}, hdr.Labels)
	assert.NotZero(t, hdr.CreatedUnixNano)

	assert.Equal(t, UnitsRTOL, ar.UnitsOrder())
	assert.Equal(t, 2, ar.NumSamples())
	require.Equal(t, []Desc{descPswitch, descDiskTotal}, ar.Descs())

	d, ok := ar.Lookup("disk.dev.total")
	require.True(t, ok)
	assert.Equal(t, descDiskTotal, d)
	_, ok = ar.Lookup("disk.dev.read")
	assert.False(t, ok)

	require.Equal(t, []Instance{{Key: 0, Name: "sda"}, {Key: 1, Name: "sdb"}},
		ar.Instances(testInDom))
	name, ok := ar.InstanceName(testInDom, 1)
	require.True(t, ok)
	assert.Equal(t, "sdb", name)
	_, ok = ar.InstanceName(testInDom, 9)
	assert.False(t, ok)

	it := ar.Samples()
	require.True(t, it.Next())
	first := it.Sample()
	assert.True(t, first.Timestamp.Equal(t0))
	require.Len(t, first.Values, 2)
	assert.Equal(t, "kernel.all.pswitch", first.Values[0].Desc.Name)
	assert.Equal(t, InstNull, first.Values[0].Inst)
	assert.Empty(t, first.Values[0].Instance)
	assert.Equal(t, "12345", first.Values[0].Text)
	assert.Equal(t, "disk.dev.total", first.Values[1].Desc.Name)
	assert.Equal(t, int32(0), first.Values[1].Inst)
	assert.Equal(t, "sda", first.Values[1].Instance)
	assert.Equal(t, "900", first.Values[1].Text)

	require.True(t, it.Next())
	second := it.Sample()
	assert.True(t, second.Timestamp.Equal(t0.Add(10*time.Second)))
	require.Len(t, second.Values, 1)
	assert.Equal(t, int32(1), second.Values[0].Inst)
	assert.Equal(t, "sdb", second.Values[0].Instance)
	assert.Equal(t, "90", second.Values[0].Text)

	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestNewArchiveBadHeader(t *testing.T) {
	var buf bytes.Buffer
	lw, err := logio.NewWriter(&buf, &logio.Header{UnitsOrder: "mixed"})
	require.NoError(t, err)
	require.NoError(t, lw.Finalize([]byte("{}")))

	_, err = NewArchive(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	assert.ErrorContains(t, err, "failed to read archive header")
}

func TestNewArchiveBadMeta(t *testing.T) {
	finalized := func(t *testing.T, meta []byte) []byte {
		t.Helper()
		var buf bytes.Buffer
		lw, err := logio.NewWriter(&buf, &logio.Header{UnitsOrder: "ltor"})
		require.NoError(t, err)
		require.NoError(t, lw.Finalize(meta))
		return buf.Bytes()
	}

	container := finalized(t, []byte("not json"))
	_, err := NewArchive(bytes.NewReader(container), int64(len(container)))
	assert.ErrorContains(t, err, "failed to decode archive meta")

	meta, err := json.Marshal(&archiveMeta{
		Metrics: []metaMetric{{Handle: 5, Name: "kernel.all.pswitch"}},
	})
	require.NoError(t, err)
	container = finalized(t, meta)
	_, err = NewArchive(bytes.NewReader(container), int64(len(container)))
	assert.ErrorContains(t, err, "handle 5 out of range")
}

// badFrame builds a container whose single sample frame is the given
// bytes and returns the error from decoding it. The meta declares the
// singular metric at handle 0 and the instanced one at handle 1 with a
// lone instance "sda" under key 0.
func badFrame(t *testing.T, frame []byte) error {
	t.Helper()
	var buf bytes.Buffer
	lw, err := logio.NewWriter(&buf, &logio.Header{UnitsOrder: "ltor"})
	require.NoError(t, err)
	meta, err := json.Marshal(&archiveMeta{
		Metrics: []metaMetric{
			{Handle: 0, Name: descPswitch.Name, ID: uint32(descPswitch.ID), InDom: uint32(InDomNull)},
			{Handle: 1, Name: descDiskTotal.Name, ID: uint32(descDiskTotal.ID), InDom: uint32(testInDom)},
		},
		InDoms: []metaInDom{{
			ID:        uint32(testInDom),
			Instances: []metaInstance{{Key: 0, Name: "sda"}},
		}},
	})
	require.NoError(t, err)
	require.NoError(t, lw.AppendFrame(time.Unix(1700000000, 0).UnixNano(), frame))
	require.NoError(t, lw.Finalize(meta))

	ar, err := NewArchive(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	defer ar.Close()
	it := ar.Samples()
	require.False(t, it.Next())
	return it.Err()
}

func TestSamplesMalformedFrames(t *testing.T) {
	frame := func(elems ...any) []byte {
		var b []byte
		for _, e := range elems {
			switch v := e.(type) {
			case uint32:
				b = binary.LittleEndian.AppendUint32(b, v)
			case int32:
				b = binary.LittleEndian.AppendUint32(b, uint32(v))
			case uint16:
				b = binary.LittleEndian.AppendUint16(b, v)
			case string:
				b = append(b, v...)
			case byte:
				b = append(b, v)
			default:
				t.Fatalf("unhandled frame element %T", e)
			}
		}
		return b
	}

	tests := map[string]struct {
		frame  []byte
		reason string
	}{
		"too short": {
			frame:  frame(uint16(1)),
			reason: "truncated frame",
		},
		"set header cut off": {
			frame:  frame(uint32(1), uint32(0)),
			reason: "truncated value set header",
		},
		"unknown handle": {
			frame:  frame(uint32(1), uint32(9), uint32(0)),
			reason: "unknown metric handle 9",
		},
		"value cut off": {
			frame:  frame(uint32(1), uint32(0), uint32(1), byte(0xff)),
			reason: "truncated value",
		},
		"text past frame end": {
			frame:  frame(uint32(1), uint32(0), uint32(1), InstNull, uint16(4), "ab"),
			reason: "value text exceeds frame",
		},
		"instance not declared": {
			frame:  frame(uint32(1), uint32(1), uint32(1), int32(7), uint16(1), "1"),
			reason: "instance key 7 not in domain",
		},
		"instance key missing": {
			frame:  frame(uint32(1), uint32(1), uint32(1), InstNull, uint16(1), "1"),
			reason: "missing instance key",
		},
		"trailing bytes": {
			frame:  frame(uint32(1), uint32(0), uint32(1), InstNull, uint16(5), "12345", byte(0)),
			reason: "trailing bytes",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := badFrame(t, tc.frame)
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, 0, derr.Sample)
			assert.Contains(t, derr.Reason, tc.reason)
		})
	}
}
