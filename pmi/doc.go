// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package pmi implements the self-describing metric archive model: named
// metrics with typed descriptors, instance domains with named instances,
// and timestamped value sets.
//
// A Session is the write side. Metrics and instances may be registered at
// any point before the value that needs them is committed; the archive
// stores the union of everything registered. Values are put as decimal
// text and kept verbatim, so a writer decides formatting (precision,
// hex discriminators) and a round trip through the archive is exact.
//
// Identity is numeric underneath the names: every metric has a packed ID
// (domain, cluster, item) and every instance domain a packed InDom
// (domain, serial). The packing matches the on-disk layout used by the
// performance co-pilot tooling this archive format interoperates with.
package pmi // import "github.com/sysstat/sapcp/pmi"
