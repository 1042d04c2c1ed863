// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import "github.com/sysstat/sapcp/sample"

// growZero raises the buffer's current cycle to n rows, zeroing any
// slot the raise uncovers, and returns the rows.
func growZero[T any](b *sample.Buffer[T], n int) []T {
	old := b.Count()
	rows := b.Extend(n)
	var zero T
	for i := old; i < n; i++ {
		rows[i] = zero
	}
	return rows
}

// table stores per-entity records keyed by instance key. A row keeps
// its position from first sight for the life of the table; its record
// resets at the start of each cycle it appears in.
type table[T any] struct {
	// init stamps the key or instance name into a fresh record, for
	// record types that carry their own identity.
	init  func(rec *T, key int32, name string)
	byKey map[int32]int
	rows  []tableRow[T]
}

type tableRow[T any] struct {
	key  int32
	name string
	seen int
	rec  T
}

// row returns the record for key, resetting it on first sight in the
// given cycle.
func (t *table[T]) row(key int32, name string, cycle int) *T {
	if t.byKey == nil {
		t.byKey = make(map[int32]int)
	}
	i, ok := t.byKey[key]
	if !ok {
		i = len(t.rows)
		t.byKey[key] = i
		t.rows = append(t.rows, tableRow[T]{key: key})
	}
	r := &t.rows[i]
	if r.seen != cycle {
		var zero T
		r.rec = zero
		r.name = name
		r.seen = cycle
		if t.init != nil {
			t.init(&r.rec, key, name)
		}
	}
	return &r.rec
}

// collect returns copies of the rows seen in the given cycle, in table
// order, or nil when the cycle carried none.
func (t *table[T]) collect(cycle int) []T {
	var out []T
	for i := range t.rows {
		if t.rows[i].seen == cycle {
			out = append(out, t.rows[i].rec)
		}
	}
	return out
}

// irqTable accumulates the interrupt matrix. Rows follow the same
// grow-only placement as table; values reset each cycle but keep their
// capacity.
type irqTable struct {
	byName map[string]int
	rows   []irqRow
}

type irqRow struct {
	name   string
	seen   int
	values []uint32
}

func (t *irqTable) row(name string, cycle int) *irqRow {
	if t.byName == nil {
		t.byName = make(map[string]int)
	}
	i, ok := t.byName[name]
	if !ok {
		i = len(t.rows)
		t.byName[name] = i
		t.rows = append(t.rows, irqRow{name: name})
	}
	r := &t.rows[i]
	if r.seen != cycle {
		r.values = r.values[:0]
		r.seen = cycle
	}
	return r
}

// set stores v at position i, growing the row with zero cells up to it.
func (r *irqRow) set(i int, v uint32) {
	for len(r.values) <= i {
		r.values = append(r.values, 0)
	}
	r.values[i] = v
}

// collect returns the rows seen in the given cycle. The value slices
// are views into the table, valid until the next cycle touches the row.
func (t *irqTable) collect(cycle int) []sample.Interrupt {
	var out []sample.Interrupt
	for i := range t.rows {
		r := &t.rows[i]
		if r.seen == cycle {
			out = append(out, sample.Interrupt{Name: r.name, Values: r.values})
		}
	}
	return out
}
