// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package otelexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/pdata/pmetric"

	"github.com/sysstat/sapcp/pmi"
)

func TestUnitString(t *testing.T) {
	tests := map[string]struct {
		units pmi.Units
		want  string
	}{
		"dimensionless":  {pmi.MakeUnits(0, 0, 0, 0, 0, 0), "1"},
		"count":          {pmi.MakeUnits(0, 0, 1, 0, 0, pmi.CountOne), "1"},
		"bytes":          {pmi.MakeUnits(1, 0, 0, pmi.SpaceByte, 0, 0), "By"},
		"kbytes":         {pmi.MakeUnits(1, 0, 0, pmi.SpaceKByte, 0, 0), "KiBy"},
		"milliseconds":   {pmi.MakeUnits(0, 1, 0, 0, pmi.TimeMSec, 0), "ms"},
		"bytes per sec":  {pmi.MakeUnits(1, -1, 0, pmi.SpaceByte, pmi.TimeSec, 0), "By/s"},
		"count per sec":  {pmi.MakeUnits(0, -1, 1, 0, pmi.TimeSec, pmi.CountOne), "1/s"},
		"square space":   {pmi.MakeUnits(2, 0, 0, pmi.SpaceByte, 0, 0), ""},
		"scale overflow": {pmi.MakeUnits(1, 0, 0, 9, 0, 0), ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, unitString(tc.units))
		})
	}
}

func TestConvert(t *testing.T) {
	start := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	ts := start.Add(10 * time.Second)

	cpuDesc := &pmi.Desc{
		Name:  "kernel.percpu.cpu.user",
		Type:  pmi.TypeUint64,
		InDom: pmi.InDom(1),
		Sem:   pmi.SemCounter,
		Units: pmi.MakeUnits(0, 1, 0, 0, pmi.TimeMSec, 0),
	}
	loadDesc := &pmi.Desc{
		Name:  "kernel.all.load",
		Type:  pmi.TypeFloat,
		InDom: pmi.InDom(2),
		Sem:   pmi.SemInstant,
		Units: pmi.MakeUnits(0, 0, 0, 0, 0, 0),
	}
	machineDesc := &pmi.Desc{
		Name:  "hinv.machine",
		Type:  pmi.TypeString,
		InDom: pmi.InDomNull,
		Sem:   pmi.SemDiscrete,
	}
	memDesc := &pmi.Desc{
		Name:  "mem.util.free",
		Type:  pmi.TypeUint64,
		InDom: pmi.InDomNull,
		Sem:   pmi.SemInstant,
		Units: pmi.MakeUnits(1, 0, 0, pmi.SpaceKByte, 0, 0),
	}

	values := []pmi.Value{
		{Desc: cpuDesc, Inst: 0, Instance: "cpu0", Text: "1500"},
		{Desc: cpuDesc, Inst: 1, Instance: "cpu1", Text: "2700"},
		{Desc: loadDesc, Inst: 1, Instance: "1 minute", Text: "0.42"},
		{Desc: machineDesc, Inst: pmi.InstNull, Text: "x86_64"},
		{Desc: memDesc, Inst: pmi.InstNull, Text: "123456"},
		{Desc: cpuDesc, Inst: 2, Instance: "cpu2", Text: "garbage"},
	}

	md := Convert("host1", start, ts, values)

	require.Equal(t, 1, md.ResourceMetrics().Len())
	rm := md.ResourceMetrics().At(0)
	hostName, ok := rm.Resource().Attributes().Get("host.name")
	require.True(t, ok)
	assert.Equal(t, "host1", hostName.Str())

	require.Equal(t, 1, rm.ScopeMetrics().Len())
	sm := rm.ScopeMetrics().At(0)
	assert.Equal(t, scopeName, sm.Scope().Name())

	ms := sm.Metrics()
	require.Equal(t, 3, ms.Len())

	cpu := ms.At(0)
	assert.Equal(t, "kernel.percpu.cpu.user", cpu.Name())
	assert.Equal(t, "ms", cpu.Unit())
	require.Equal(t, pmetric.MetricTypeSum, cpu.Type())
	sum := cpu.Sum()
	assert.True(t, sum.IsMonotonic())
	assert.Equal(t, pmetric.AggregationTemporalityCumulative, sum.AggregationTemporality())
	// The unparsable cpu2 value must not leave a data point behind.
	require.Equal(t, 2, sum.DataPoints().Len())
	dp := sum.DataPoints().At(0)
	assert.Equal(t, int64(1500), dp.IntValue())
	assert.Equal(t, start, dp.StartTimestamp().AsTime())
	assert.Equal(t, ts, dp.Timestamp().AsTime())
	inst, ok := dp.Attributes().Get("instance")
	require.True(t, ok)
	assert.Equal(t, "cpu0", inst.Str())
	assert.Equal(t, int64(2700), sum.DataPoints().At(1).IntValue())

	load := ms.At(1)
	assert.Equal(t, "kernel.all.load", load.Name())
	assert.Equal(t, "1", load.Unit())
	require.Equal(t, pmetric.MetricTypeGauge, load.Type())
	require.Equal(t, 1, load.Gauge().DataPoints().Len())
	loadPoint := load.Gauge().DataPoints().At(0)
	assert.Equal(t, pmetric.NumberDataPointValueTypeDouble, loadPoint.ValueType())
	assert.InDelta(t, 0.42, loadPoint.DoubleValue(), 1e-9)

	mem := ms.At(2)
	assert.Equal(t, "mem.util.free", mem.Name())
	assert.Equal(t, "KiBy", mem.Unit())
	require.Equal(t, pmetric.MetricTypeGauge, mem.Type())
	require.Equal(t, 1, mem.Gauge().DataPoints().Len())
	memPoint := mem.Gauge().DataPoints().At(0)
	assert.Equal(t, int64(123456), memPoint.IntValue())
	assert.Equal(t, 0, memPoint.Attributes().Len())
}
