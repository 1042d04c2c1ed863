// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package ingest unmarshals archive samples back into sample
// snapshots. A Store routes each decoded value through the registry to
// the reader of its owning activity group and accumulates per-entity
// rows in grow-only tables, so a row keeps its position for the life
// of the store. Reader drives a Store over a whole archive.
package ingest // import "github.com/sysstat/sapcp/ingest"
