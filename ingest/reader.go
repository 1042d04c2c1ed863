// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/sample"
)

// Reader drives a Store over an archive, one snapshot per stored
// sample.
//
//	r := ingest.NewReader(ar)
//	for r.Next() {
//		use(r.Snapshot())
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	it    *pmi.SampleIter
	store *Store
	err   error
}

// NewReader returns a reader over the archive's samples.
func NewReader(ar *pmi.Archive) *Reader {
	return &Reader{it: ar.Samples(), store: NewStore()}
}

// Next decodes the next sample into the store. It returns false at the
// end of the archive or on the first error.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.it.Next() {
		r.err = r.it.Err()
		return false
	}
	smp := r.it.Sample()
	r.store.Begin(smp.Timestamp)
	for i := range smp.Values {
		if err := r.store.Apply(&smp.Values[i]); err != nil {
			r.err = err
			return false
		}
	}
	return true
}

// Snapshot materializes the current sample. It is valid until the next
// call to Next.
func (r *Reader) Snapshot() *sample.Snapshot { return r.store.Snapshot() }

// Header returns the host identity latched so far. The file header
// metrics ride the first sample, so it is complete once Next has
// succeeded once.
func (r *Reader) Header() Header { return r.store.Header() }

// Err returns the first error hit while decoding.
func (r *Reader) Err() error { return r.err }
