// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"fmt"

	"github.com/sysstat/sapcp/pmi"
)

// UnknownMetricError reports a value whose metric identifier is not in
// the registry. Archives written by this module never trigger it; a
// foreign archive mixing in metrics from other agents does.
type UnknownMetricError struct {
	ID   pmi.ID
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown metric %s (%s)", e.Name, e.ID)
}

// UnsupportedMetricError reports a value for a registered metric that
// no record field can hold. The writer registers a few descriptors it
// never fills; only an archive produced elsewhere carries values for
// them.
type UnsupportedMetricError struct {
	ID   pmi.ID
	Name string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("metric %s (%s) has no reader", e.Name, e.ID)
}
