// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package registry declares the identity of every metric the archive
// layer reads or writes: the external dotted name, the packed numeric
// id, value type, semantics, units and instance domain. Declarations
// live in groups.json and are generated into Go tables; the Registry
// built from them resolves identity in both directions, by group and
// index on the write path and by numeric id or name on the read path.
package registry // import "github.com/sysstat/sapcp/registry"
