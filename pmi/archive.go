// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sysstat/sapcp/pmi/logio"
)

// Archive is the read side: it opens a finished container, decodes the
// descriptor meta and iterates the stored samples.
type Archive struct {
	r     *logio.Reader
	order UnitsOrder

	descs  []Desc // indexed by handle
	byName map[string]*Desc
	indoms map[InDom][]Instance
	byKey  map[InDom]map[int32]string
}

// Instance is one named member of an instance domain.
type Instance struct {
	Key  int32
	Name string
}

// DecodeError reports a malformed sample frame in an otherwise readable
// archive.
type DecodeError struct {
	Sample int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("archive sample %d: %s", e.Sample, e.Reason)
}

// OpenArchive opens the archive at path.
func OpenArchive(path string) (*Archive, error) {
	r, err := logio.Open(path)
	if err != nil {
		return nil, err
	}
	a, err := newArchive(r)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	return a, nil
}

// NewArchive reads an archive from an arbitrary random access source.
func NewArchive(ra io.ReaderAt, size int64) (*Archive, error) {
	r, err := logio.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return newArchive(r)
}

func newArchive(r *logio.Reader) (*Archive, error) {
	order, err := ParseUnitsOrder(r.Header().UnitsOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive header: %w", err)
	}
	var am archiveMeta
	if err := json.Unmarshal(r.Meta(), &am); err != nil {
		return nil, fmt.Errorf("failed to decode archive meta: %w", err)
	}

	a := &Archive{
		r:      r,
		order:  order,
		descs:  make([]Desc, len(am.Metrics)),
		byName: make(map[string]*Desc, len(am.Metrics)),
		indoms: make(map[InDom][]Instance, len(am.InDoms)),
		byKey:  make(map[InDom]map[int32]string, len(am.InDoms)),
	}
	for _, m := range am.Metrics {
		if int(m.Handle) >= len(a.descs) {
			return nil, fmt.Errorf("archive meta: handle %d out of range for %d metrics",
				m.Handle, len(a.descs))
		}
		a.descs[m.Handle] = Desc{
			Name:  m.Name,
			ID:    ID(m.ID),
			Type:  Type(m.Type),
			InDom: InDom(m.InDom),
			Sem:   Semantics(m.Sem),
			Units: DecodeUnits(m.Units, order),
		}
		a.byName[m.Name] = &a.descs[m.Handle]
	}
	for _, d := range am.InDoms {
		indom := InDom(d.ID)
		insts := make([]Instance, 0, len(d.Instances))
		keys := make(map[int32]string, len(d.Instances))
		for _, in := range d.Instances {
			insts = append(insts, Instance{Key: in.Key, Name: in.Name})
			keys[in.Key] = in.Name
		}
		a.indoms[indom] = insts
		a.byKey[indom] = keys
	}
	return a, nil
}

// Close releases the underlying container.
func (a *Archive) Close() error { return a.r.Close() }

// Header returns the container header.
func (a *Archive) Header() *logio.Header { return a.r.Header() }

// UnitsOrder returns the unit tuple layout the archive was written with.
func (a *Archive) UnitsOrder() UnitsOrder { return a.order }

// NumSamples returns the number of stored samples.
func (a *Archive) NumSamples() int { return a.r.NumFrames() }

// Descs returns all metric descriptors in registration order.
func (a *Archive) Descs() []Desc {
	out := make([]Desc, len(a.descs))
	copy(out, a.descs)
	return out
}

// Lookup returns the descriptor registered under name.
func (a *Archive) Lookup(name string) (Desc, bool) {
	d, ok := a.byName[name]
	if !ok {
		return Desc{}, false
	}
	return *d, true
}

// Instances returns the members of an instance domain in registration
// order.
func (a *Archive) Instances(d InDom) []Instance {
	insts := a.indoms[d]
	out := make([]Instance, len(insts))
	copy(out, insts)
	return out
}

// InstanceName resolves an instance key within a domain.
func (a *Archive) InstanceName(d InDom, key int32) (string, bool) {
	name, ok := a.byKey[d][key]
	return name, ok
}

// Sample is one decoded timestamped set of values.
type Sample struct {
	Timestamp time.Time
	Values    []Value
}

// Value is one metric value within a sample. Instance is empty and Inst
// is InstNull for singular metrics.
type Value struct {
	Desc     *Desc
	Inst     int32
	Instance string
	Text     string
}

// SampleIter iterates the samples of an archive in order.
//
//	it := a.Samples()
//	for it.Next() {
//		use(it.Sample())
//	}
//	if err := it.Err(); err != nil { ... }
type SampleIter struct {
	a      *Archive
	frames *logio.FrameIter
	cur    Sample
	n      int
	err    error
}

// Samples returns an iterator over the stored samples.
func (a *Archive) Samples() *SampleIter {
	return &SampleIter{a: a, frames: a.r.Frames()}
}

// Next advances to the next sample. It returns false at the end of the
// archive or on error.
func (it *SampleIter) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.frames.Next() {
		it.err = it.frames.Err()
		return false
	}
	ts, data := it.frames.Frame()
	sample, err := it.a.decodeFrame(it.n, ts, data)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = sample
	it.n++
	return true
}

// Sample returns the sample decoded by the last successful Next.
func (it *SampleIter) Sample() Sample { return it.cur }

// Err returns the first error encountered while iterating.
func (it *SampleIter) Err() error { return it.err }

func (a *Archive) decodeFrame(n int, ts int64, data []byte) (Sample, error) {
	bad := func(format string, args ...any) (Sample, error) {
		return Sample{}, &DecodeError{Sample: n, Reason: fmt.Sprintf(format, args...)}
	}
	if len(data) < 4 {
		return bad("truncated frame: %d bytes", len(data))
	}
	nSets := binary.LittleEndian.Uint32(data)
	off := 4

	sample := Sample{Timestamp: time.Unix(0, ts)}
	for set := uint32(0); set < nSets; set++ {
		if len(data)-off < 8 {
			return bad("truncated value set header at offset %d", off)
		}
		handle := binary.LittleEndian.Uint32(data[off:])
		nVals := binary.LittleEndian.Uint32(data[off+4:])
		off += 8
		if int(handle) >= len(a.descs) {
			return bad("unknown metric handle %d", handle)
		}
		desc := &a.descs[handle]
		for v := uint32(0); v < nVals; v++ {
			if len(data)-off < 6 {
				return bad("truncated value at offset %d", off)
			}
			inst := int32(binary.LittleEndian.Uint32(data[off:]))
			textLen := int(binary.LittleEndian.Uint16(data[off+4:]))
			off += 6
			if len(data)-off < textLen {
				return bad("value text exceeds frame at offset %d", off)
			}
			text := string(data[off : off+textLen])
			off += textLen

			val := Value{Desc: desc, Inst: inst, Text: text}
			if inst != InstNull {
				name, ok := a.byKey[desc.InDom][inst]
				if !ok {
					return bad("metric %s: instance key %d not in domain %s",
						desc.Name, inst, desc.InDom)
				}
				val.Instance = name
			} else if desc.InDom != InDomNull {
				return bad("metric %s: missing instance key", desc.Name)
			}
			sample.Values = append(sample.Values, val)
		}
	}
	if off != len(data) {
		return bad("%d trailing bytes after last value set", len(data)-off)
	}
	return sample, nil
}
