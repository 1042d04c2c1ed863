// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry buffers and reports metrics about the recorder itself.
package telemetry // import "github.com/sysstat/sapcp/telemetry"

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/sysstat/sapcp/vc"
)

// definitions lists every metric the recorder reports about itself. The
// table is indexed and validated at startup; IDs must stay unique and
// below IDMax.
var definitions = []Definition{
	{IDSamplesWritten, "sapcp.archive.samples", "Samples committed to output archives", "1", MetricTypeCounter},
	{IDValuesWritten, "sapcp.archive.values", "Metric values written to output archives", "1", MetricTypeCounter},
	{IDDecodeErrors, "sapcp.decode.errors", "Values that could not be applied while reading an archive", "1", MetricTypeCounter},
	{IDArchiveBytes, "sapcp.archive.bytes", "Bytes written to the current archive volume", "By", MetricTypeGauge},
	{IDCollectTicks, "sapcp.collect.ticks", "Snapshot collections attempted", "1", MetricTypeCounter},
	{IDCollectErrors, "sapcp.collect.errors", "Snapshot collections that failed", "1", MetricTypeCounter},
	{IDSamplesRead, "sapcp.read.samples", "Samples decoded from input archives", "1", MetricTypeCounter},
	{IDValuesRead, "sapcp.read.values", "Metric values decoded from input archives", "1", MetricTypeCounter},
	{IDArchivesShipped, "sapcp.ship.archives", "Archives uploaded to remote storage", "1", MetricTypeCounter},
	{IDShipBytes, "sapcp.ship.bytes", "Bytes uploaded to remote storage", "By", MetricTypeCounter},
	{IDAgentGoRoutines, "sapcp.agent.goroutines", "Number of goroutines of the recorder", "1", MetricTypeGauge},
	{IDAgentHeapAlloc, "sapcp.agent.heap_alloc", "Bytes of allocated heap objects of the recorder", "By", MetricTypeGauge},
	{IDAgentUTime, "sapcp.agent.utime", "User CPU time spent since the previous collection", "ms", MetricTypeCounter},
	{IDAgentSTime, "sapcp.agent.stime", "System CPU time spent since the previous collection", "ms", MetricTypeCounter},
}

var (
	// prevTimestamp holds the timestamp of the buffered metrics
	prevTimestamp uint32

	// metricsBuffer buffers the metricsBuffer for the timestamp assigned to prevTimestamp
	metricsBuffer = make([]Metric, IDMax)

	// metricIDSet is a bitvector used for fast membership operations, to avoid reporting
	// the same metric ID multiple times in the same batch
	metricIDSet = make([]uint64, 1+(IDMax/64))

	// nMetrics is the number of the current entries in metricsBuffer
	nMetrics int

	// mutex serializes the concurrent calls to AddSlice()
	mutex sync.RWMutex

	// Used in fallback checks, e.g. to avoid sending "counters" with 0 values
	metricTypes map[MetricID]MetricType

	// OTel metric instrumentation
	meter = otel.Meter("github.com/sysstat/sapcp",
		metric.WithInstrumentationVersion(vc.Version()))
	counters = map[MetricID]metric.Int64Counter{}
	gauges   = map[MetricID]metric.Int64Gauge{}

	reporterImpl Reporter
)

// SetReporter installs an additional sink that receives every batch.
func SetReporter(r Reporter) {
	reporterImpl = r
}

func init() {
	metricTypes = make(map[MetricID]MetricType, len(definitions))
	for _, md := range definitions {
		if md.ID <= IDInvalid || md.ID >= IDMax {
			panic(fmt.Sprintf("Metric ID %d of %s out of range [%d,%d]",
				md.ID, md.Name, IDInvalid+1, IDMax-1))
		}
		if _, ok := metricTypes[md.ID]; ok {
			panic(fmt.Sprintf("Duplicate metric ID %d (%s)", md.ID, md.Name))
		}
		metricTypes[md.ID] = md.Type
		switch typ := md.Type; typ {
		case MetricTypeCounter:
			counter, err := meter.Int64Counter(md.Name,
				metric.WithDescription(md.Description),
				metric.WithUnit(md.Unit))
			if err != nil {
				log.Errorf("Creating Int64Counter: %v", err)
				continue
			}
			counters[md.ID] = counter
		case MetricTypeGauge:
			gauge, err := meter.Int64Gauge(md.Name,
				metric.WithDescription(md.Description),
				metric.WithUnit(md.Unit))
			if err != nil {
				log.Errorf("Creating Int64Gauge: %v", err)
				continue
			}
			gauges[md.ID] = gauge
		default:
			panic(fmt.Sprintf("Unknown metric type: %v", typ))
		}
	}
}

// Definitions returns a copy of the metric definitions table.
func Definitions() []Definition {
	return append([]Definition(nil), definitions...)
}

// report converts and reports collected metrics via OTel metrics.
// Allow for report to be overridden in the test.
var report = func() {
	ctx := context.Background()
	if reporterImpl != nil {
		ids := make([]uint32, nMetrics)
		values := make([]int64, nMetrics)

		for i := 0; i < nMetrics; i++ {
			ids[i] = uint32(metricsBuffer[i].ID)
			values[i] = int64(metricsBuffer[i].Value)
		}
		reporterImpl.ReportMetrics(prevTimestamp, ids, values)
	}
	for i := range nMetrics {
		buffered := metricsBuffer[i]
		switch typ := metricTypes[buffered.ID]; typ {
		case MetricTypeCounter:
			if counter, ok := counters[buffered.ID]; ok {
				counter.Add(ctx, int64(buffered.Value))
			}
		case MetricTypeGauge:
			if gauge, ok := gauges[buffered.ID]; ok {
				gauge.Record(ctx, int64(buffered.Value))
			}
		}
	}
	nMetrics = 0
	for idx := range metricIDSet {
		metricIDSet[idx] = 0
	}
}

// AddSlice takes a slice of metrics from a metric provider.
// The function buffers the metrics and returns immediately.
//
// Here we collect all metrics until the timestamp changes.
// We then call report() to report all metrics from the previous timestamp.
//
//	|----------------- 1s period -------------|
//	|--+--------------------------+-----------|--+--......
//	|                          |              |
//	report(),AddSlice(ID1)     |              |
//	                           AddSlice(ID2)  |
//	                                          |
//	                                          report(),AddSlice(ID1)
//
// This ensures that the buffered metrics from the previous timestamp are
// reported with the second they were collected in.
func AddSlice(newMetrics []Metric) {
	now := uint32(time.Now().Unix())

	mutex.Lock()
	defer mutex.Unlock()

	if prevTimestamp != now && nMetrics > 0 {
		report()
	}
	prevTimestamp = now

	if newMetrics == nil {
		return
	}

	for _, buffered := range newMetrics {
		if buffered.ID <= IDInvalid || buffered.ID >= IDMax {
			log.Errorf("Metric value %d out of range [%d,%d]- needs investigation",
				buffered.ID, IDInvalid+1, IDMax-1)
			continue
		}

		if _, ok := metricTypes[buffered.ID]; !ok {
			log.Warnf("Invalid metric id %d, skipping", buffered.ID)
			continue
		}

		if buffered.Value == 0 && metricTypes[buffered.ID] == MetricTypeCounter {
			continue
		}

		idx := buffered.ID / 64
		mask := uint64(1) << (buffered.ID % 64)
		if metricIDSet[idx]&mask > 0 {
			continue
		}

		if nMetrics >= len(metricsBuffer) {
			// Should not happen
			log.Errorf("AddSlice capped reporting to %d metrics - needs investigation",
				len(metricsBuffer))
			continue
		}

		metricIDSet[idx] |= mask
		metricsBuffer[nMetrics].ID = buffered.ID
		metricsBuffer[nMetrics].Value = buffered.Value
		nMetrics++
	}
}

// Add takes a single metric (id and value) from a metric provider.
// The function buffers the metric and returns immediately.
func Add(id MetricID, value MetricValue) {
	AddSlice([]Metric{{id, value}})
}
