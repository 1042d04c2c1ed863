// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package export marshals sample snapshots into archive sessions. A
// Session registers the metric tables of the selected activity groups
// up front, declares instances as dynamic entities appear in the data,
// and turns each snapshot into one committed archive sample.
package export // import "github.com/sysstat/sapcp/export"
