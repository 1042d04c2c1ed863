// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package otelexport renders decoded archive samples as OTLP metrics and
// sends them to an OTLP/gRPC receiver.
package otelexport // import "github.com/sysstat/sapcp/otelexport"

import (
	"strconv"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/pmetric"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/vc"
)

const scopeName = "github.com/sysstat/sapcp/otelexport"

var (
	spaceUnits = [...]string{"By", "KiBy", "MiBy", "GiBy", "TiBy", "PiBy", "EiBy"}
	timeUnits  = [...]string{"ns", "us", "ms", "s", "min", "h"}
)

// unitString renders metric units in UCUM form as used by OTLP. Unit
// combinations that have no common UCUM spelling map to the empty
// string and leave the unit field unset.
func unitString(u pmi.Units) string {
	if int(u.ScaleSpace) >= len(spaceUnits) || int(u.ScaleTime) >= len(timeUnits) {
		return ""
	}
	dims := [3]int8{u.DimSpace, u.DimTime, u.DimCount}
	switch dims {
	case [3]int8{0, 0, 0}, [3]int8{0, 0, 1}:
		return "1"
	case [3]int8{1, 0, 0}:
		return spaceUnits[u.ScaleSpace]
	case [3]int8{0, 1, 0}:
		return timeUnits[u.ScaleTime]
	case [3]int8{1, -1, 0}:
		return spaceUnits[u.ScaleSpace] + "/" + timeUnits[u.ScaleTime]
	case [3]int8{0, -1, 1}:
		return "1/" + timeUnits[u.ScaleTime]
	}
	return ""
}

// Convert renders one decoded sample as an OTLP metrics payload.
//
// Counter metrics become cumulative monotonic sums with start as their
// start timestamp, instant and discrete metrics become gauges. String
// valued metrics have no OTLP number representation and are dropped, as
// are values whose text does not parse as their declared type.
func Convert(hostname string, start, ts time.Time, values []pmi.Value) pmetric.Metrics {
	md := pmetric.NewMetrics()
	rm := md.ResourceMetrics().AppendEmpty()
	rm.Resource().Attributes().PutStr("host.name", hostname)
	sm := rm.ScopeMetrics().AppendEmpty()
	sm.Scope().SetName(scopeName)
	sm.Scope().SetVersion(vc.Version())

	metrics := sm.Metrics()
	points := make(map[string]pmetric.NumberDataPointSlice)
	for i := range values {
		v := &values[i]

		var (
			intValue    int64
			doubleValue float64
			isDouble    bool
		)
		switch v.Desc.Type {
		case pmi.TypeString:
			continue
		case pmi.TypeFloat, pmi.TypeDouble:
			f, err := strconv.ParseFloat(v.Text, 64)
			if err != nil {
				continue
			}
			doubleValue, isDouble = f, true
		case pmi.TypeUint32, pmi.TypeUint64:
			n, err := strconv.ParseUint(v.Text, 10, 64)
			if err != nil {
				continue
			}
			intValue = int64(n)
		default:
			n, err := strconv.ParseInt(v.Text, 10, 64)
			if err != nil {
				continue
			}
			intValue = n
		}

		dps, ok := points[v.Desc.Name]
		if !ok {
			m := metrics.AppendEmpty()
			m.SetName(v.Desc.Name)
			m.SetUnit(unitString(v.Desc.Units))
			if v.Desc.Sem == pmi.SemCounter {
				sum := m.SetEmptySum()
				sum.SetAggregationTemporality(pmetric.AggregationTemporalityCumulative)
				sum.SetIsMonotonic(true)
				dps = sum.DataPoints()
			} else {
				dps = m.SetEmptyGauge().DataPoints()
			}
			points[v.Desc.Name] = dps
		}

		dp := dps.AppendEmpty()
		dp.SetStartTimestamp(pcommon.NewTimestampFromTime(start))
		dp.SetTimestamp(pcommon.NewTimestampFromTime(ts))
		if isDouble {
			dp.SetDoubleValue(doubleValue)
		} else {
			dp.SetIntValue(intValue)
		}
		if v.Inst != pmi.InstNull {
			dp.Attributes().PutStr("instance", v.Instance)
		}
	}
	return md
}
