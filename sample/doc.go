// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package sample holds the in-memory record model for system activity
// statistics: one struct per activity mirroring the fixed counter layouts
// read from /proc and /sys, a grow-only two-cycle buffer for per-entity
// activities, and the Snapshot type that carries one collection cycle
// across the export and ingest boundaries.
package sample // import "github.com/sysstat/sapcp/sample"
