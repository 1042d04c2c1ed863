// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sysstat/sapcp/pmi/logio"
)

// SessionConfig carries the archive-wide attributes recorded in the
// container header.
type SessionConfig struct {
	Hostname string
	Timezone string
	RunID    string
	// UnitsOrder fixes the stored layout of unit tuples for the whole
	// archive. The zero value is UnitsLTOR.
	UnitsOrder UnitsOrder
	// Labels are free-form attributes stored alongside the fixed
	// header fields.
	Labels map[string]string
}

// Session is the write side of an archive. Registration and puts may be
// interleaved; a metric or instance only has to exist by the time a
// value referencing it is put. Commit seals the pending values into one
// timestamped sample, Close writes the descriptor meta and the footer.
//
// A Session is not safe for concurrent use.
type Session struct {
	w     *logio.Writer
	order UnitsOrder

	metrics []*sessionMetric // index is the handle
	byName  map[string]*sessionMetric
	byID    map[ID]*sessionMetric

	indoms     map[InDom]*sessionInDom
	indomOrder []InDom

	cur    sampleFrame
	closed bool
}

type sessionMetric struct {
	desc   Desc
	handle uint32
}

type sessionInDom struct {
	byKey  map[int32]string
	byName map[string]int32
	keys   []int32
}

type sampleFrame struct {
	sets     []*valueSet
	byHandle map[uint32]*valueSet
}

type valueSet struct {
	handle uint32
	vals   []frameValue
	seen   map[int32]struct{}
}

type frameValue struct {
	inst int32
	text string
}

// NewSession starts a session writing the archive container to w.
func NewSession(w io.Writer, cfg *SessionConfig) (*Session, error) {
	lw, err := logio.NewWriter(w, containerHeader(cfg))
	if err != nil {
		return nil, err
	}
	return newSession(lw, cfg.UnitsOrder), nil
}

// CreateSession starts a session writing the archive to path, with a
// checksum sidecar next to it.
func CreateSession(path string, cfg *SessionConfig) (*Session, error) {
	lw, err := logio.Create(path, containerHeader(cfg))
	if err != nil {
		return nil, err
	}
	return newSession(lw, cfg.UnitsOrder), nil
}

func containerHeader(cfg *SessionConfig) *logio.Header {
	return &logio.Header{
		FormatVersion:   logio.FormatVersion,
		CreatedUnixNano: time.Now().UnixNano(),
		Hostname:        cfg.Hostname,
		Timezone:        cfg.Timezone,
		RunID:           cfg.RunID,
		UnitsOrder:      cfg.UnitsOrder.String(),
		Labels:          cfg.Labels,
	}
}

func newSession(lw *logio.Writer, order UnitsOrder) *Session {
	return &Session{
		w:      lw,
		order:  order,
		byName: map[string]*sessionMetric{},
		byID:   map[ID]*sessionMetric{},
		indoms: map[InDom]*sessionInDom{},
		cur:    newSampleFrame(),
	}
}

func newSampleFrame() sampleFrame {
	return sampleFrame{byHandle: map[uint32]*valueSet{}}
}

// AddMetric registers a metric descriptor. Names and identifiers are
// unique for the lifetime of the session.
func (s *Session) AddMetric(d Desc) error {
	if s.closed {
		return ErrClosed
	}
	if !validName(d.Name) {
		return fmt.Errorf("add metric %q: %w", d.Name, ErrInvalidName)
	}
	if _, ok := s.byName[d.Name]; ok {
		return fmt.Errorf("add metric %q: %w", d.Name, ErrDupMetricName)
	}
	if prev, ok := s.byID[d.ID]; ok {
		return fmt.Errorf("add metric %q: %w: %s already names %s",
			d.Name, ErrDupMetricID, d.ID, prev.desc.Name)
	}
	m := &sessionMetric{desc: d, handle: uint32(len(s.metrics))}
	s.metrics = append(s.metrics, m)
	s.byName[d.Name] = m
	s.byID[d.ID] = m
	return nil
}

// AddInstance registers a named instance with the given key in an
// instance domain. Re-registering an identical instance is a no-op, so
// callers may declare instances whenever they see them. A key bound to
// a different name, or a name bound to a different key, is an error.
func (s *Session) AddInstance(d InDom, name string, key int32) error {
	if s.closed {
		return ErrClosed
	}
	if d == InDomNull {
		return fmt.Errorf("add instance %q: %w", name, ErrNoInstanceAllowed)
	}
	if name == "" || key < 0 {
		return fmt.Errorf("add instance %q key %d in %s: %w",
			name, key, d, ErrInstanceConflict)
	}
	dom, ok := s.indoms[d]
	if !ok {
		dom = &sessionInDom{byKey: map[int32]string{}, byName: map[string]int32{}}
		s.indoms[d] = dom
		s.indomOrder = append(s.indomOrder, d)
	}
	if prev, ok := dom.byKey[key]; ok {
		if prev == name {
			return nil
		}
		return fmt.Errorf("add instance %q in %s: %w: key %d is %q",
			name, d, ErrInstanceConflict, key, prev)
	}
	if prevKey, ok := dom.byName[name]; ok {
		return fmt.Errorf("add instance %q in %s: %w: name has key %d",
			name, d, ErrInstanceConflict, prevKey)
	}
	dom.byKey[key] = name
	dom.byName[name] = key
	dom.keys = append(dom.keys, key)
	return nil
}

// PutValue stages one value for the pending sample. The metric is named
// by its registered name; instance selects the instance for metrics
// with an instance domain and must be empty for singular metrics. The
// value text is stored verbatim.
func (s *Session) PutValue(metric, instance, text string) error {
	if s.closed {
		return ErrClosed
	}
	m, ok := s.byName[metric]
	if !ok {
		return fmt.Errorf("put %s: %w", metric, ErrNoMetric)
	}
	inst := InstNull
	if m.desc.InDom == InDomNull {
		if instance != "" {
			return fmt.Errorf("put %s[%s]: %w", metric, instance, ErrNoInstanceAllowed)
		}
	} else {
		if instance == "" {
			return fmt.Errorf("put %s: %w", metric, ErrInstanceRequired)
		}
		dom, ok := s.indoms[m.desc.InDom]
		if !ok {
			return fmt.Errorf("put %s[%s]: %w", metric, instance, ErrNoInstance)
		}
		key, ok := dom.byName[instance]
		if !ok {
			return fmt.Errorf("put %s[%s]: %w", metric, instance, ErrNoInstance)
		}
		inst = key
	}
	if len(text) > math.MaxUint16 {
		return fmt.Errorf("put %s: value of %d bytes exceeds %d",
			metric, len(text), math.MaxUint16)
	}

	set, ok := s.cur.byHandle[m.handle]
	if !ok {
		set = &valueSet{handle: m.handle, seen: map[int32]struct{}{}}
		s.cur.byHandle[m.handle] = set
		s.cur.sets = append(s.cur.sets, set)
	}
	if _, dup := set.seen[inst]; dup {
		return fmt.Errorf("put %s[%s]: %w", metric, instance, ErrDupValue)
	}
	set.seen[inst] = struct{}{}
	set.vals = append(set.vals, frameValue{inst: inst, text: text})
	return nil
}

// Commit seals the staged values as one sample at the given time. A
// commit with nothing staged returns ErrNoData and stores nothing.
func (s *Session) Commit(ts time.Time) error {
	if s.closed {
		return ErrClosed
	}
	if len(s.cur.sets) == 0 {
		return ErrNoData
	}
	frame := encodeFrame(&s.cur)
	s.cur = newSampleFrame()
	return s.w.AppendFrame(ts.UnixNano(), frame)
}

// Samples returns the number of committed samples.
func (s *Session) Samples() int {
	return s.w.Frames()
}

// Close writes the descriptor meta and the container footer. Staged but
// uncommitted values are discarded.
func (s *Session) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	meta, err := json.Marshal(s.buildMeta())
	if err != nil {
		return fmt.Errorf("failed to encode archive meta: %w", err)
	}
	return s.w.Finalize(meta)
}

func (s *Session) buildMeta() *archiveMeta {
	am := &archiveMeta{
		Metrics: make([]metaMetric, 0, len(s.metrics)),
		InDoms:  make([]metaInDom, 0, len(s.indomOrder)),
	}
	for _, m := range s.metrics {
		am.Metrics = append(am.Metrics, metaMetric{
			Handle: m.handle,
			Name:   m.desc.Name,
			ID:     uint32(m.desc.ID),
			Type:   int32(m.desc.Type),
			InDom:  uint32(m.desc.InDom),
			Sem:    int32(m.desc.Sem),
			Units:  m.desc.Units.Encode(s.order),
		})
	}
	for _, d := range s.indomOrder {
		dom := s.indoms[d]
		mi := metaInDom{
			ID:        uint32(d),
			Instances: make([]metaInstance, 0, len(dom.keys)),
		}
		for _, key := range dom.keys {
			mi.Instances = append(mi.Instances, metaInstance{
				Key:  key,
				Name: dom.byKey[key],
			})
		}
		am.InDoms = append(am.InDoms, mi)
	}
	return am
}

// encodeFrame lays out a sample as value sets in first-put order. Per
// set: metric handle, value count, then key/length-prefixed text per
// value.
func encodeFrame(f *sampleFrame) []byte {
	n := 4
	for _, set := range f.sets {
		n += 8
		for _, v := range set.vals {
			n += 6 + len(v.text)
		}
	}
	buf := make([]byte, 0, n)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(f.sets)))
	for _, set := range f.sets {
		buf = binary.LittleEndian.AppendUint32(buf, set.handle)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(set.vals)))
		for _, v := range set.vals {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v.inst))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(len(v.text)))
			buf = append(buf, v.text...)
		}
	}
	return buf
}
