// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry // import "github.com/sysstat/sapcp/telemetry"

// MetricID is the type for metric IDs.
type MetricID uint16

// MetricValue is the type for metric values.
type MetricValue int64

// Metric is the type for a metric id/value pair.
type Metric struct {
	ID    MetricID
	Value MetricValue
}

// Summary helps summarizing metrics of the same ID from different sources before
// processing it further.
type Summary map[MetricID]MetricValue

// MetricType distinguishes monotonic counters from point-in-time gauges.
type MetricType uint8

const (
	MetricTypeCounter MetricType = iota + 1
	MetricTypeGauge
)

// Definition describes one metric: the ID used inside the process and the
// instrument name, description and unit it is exported under.
type Definition struct {
	ID          MetricID
	Name        string
	Description string
	Unit        string
	Type        MetricType
}

// Reporter receives every completed metric batch together with the second
// the batch was buffered for.
type Reporter interface {
	ReportMetrics(timestamp uint32, ids []uint32, values []int64)
}
