// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

var testReg = registry.New()

// value builds a decoded archive value for the named metric. Shared
// names resolve to their first owner, the cpu group's jiffie counter
// in the kernel.all.intr case.
func value(t *testing.T, name string, inst int32, instName, text string) *pmi.Value {
	t.Helper()
	b, ok := testReg.LookupName(name)
	require.True(t, ok, "metric %s not registered", name)
	d := b.Desc
	return &pmi.Value{Desc: &d, Inst: inst, Instance: instName, Text: text}
}

func scalar(t *testing.T, name, text string) *pmi.Value {
	t.Helper()
	return value(t, name, pmi.InstNull, "", text)
}

// testInstance picks a valid member of the metric's instance domain.
func testInstance(dom pmi.InDom) (int32, string) {
	switch dom {
	case pmi.InDomNull:
		return pmi.InstNull, ""
	case registry.CPUInDom:
		return 0, "cpu0"
	case registry.IRQCPUInDom:
		return 0, "timer::cpu0"
	case registry.IRQInDom:
		return 0, "timer"
	case registry.LoadAvgInDom:
		return 1, "1 minute"
	case registry.PSIInDom:
		return 10, "10 second"
	case registry.NFSReqInDom:
		return 4, "getattr"
	case registry.SerialInDom:
		return 4, "serial4"
	case registry.BatteryInDom:
		return 0, "BAT0"
	default:
		return 0, "dev0"
	}
}

// TestApplyRoutesEveryMetric feeds one value for every registered
// metric. Each must land in a record field or report itself as a
// descriptor no record field can hold.
func TestApplyRoutesEveryMetric(t *testing.T) {
	texts := map[string]string{
		"power.bat.status": sample.BatteryCharging.String(),
	}
	unsupported := map[string]bool{
		"disk.dev.read":        true,
		"disk.dev.write":       true,
		"disk.dev.total_bytes": true,
	}

	s := NewStore()
	s.Begin(time.Unix(1700000000, 0))
	for _, act := range registry.Activities() {
		for _, d := range testReg.Group(act).Metrics() {
			inst, instName := testInstance(d.InDom)
			text, ok := texts[d.Name]
			if !ok {
				text = "0"
			}
			err := s.Apply(&pmi.Value{Desc: &d, Inst: inst, Instance: instName, Text: text})
			if unsupported[d.Name] {
				var uerr *UnsupportedMetricError
				require.ErrorAs(t, err, &uerr, "metric %s", d.Name)
				continue
			}
			require.NoError(t, err, "metric %s", d.Name)
		}
	}

	snap := s.Snapshot()
	require.NotNil(t, snap.Memory)
	require.NotNil(t, snap.PSIMem)
	require.Len(t, snap.CPU, 2)
	require.Len(t, snap.Disks, 1)
	require.Len(t, snap.Interrupts, 2)
}

func TestApplyUnknownMetric(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	d := pmi.Desc{
		Name:  "kernel.all.nonesuch",
		ID:    pmi.NewID(60, 9, 999),
		Type:  pmi.TypeUint64,
		InDom: pmi.InDomNull,
		Sem:   pmi.SemCounter,
	}
	err := s.Apply(&pmi.Value{Desc: &d, Inst: pmi.InstNull, Text: "1"})
	var uerr *UnknownMetricError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, d.ID, uerr.ID)
	require.Equal(t, "kernel.all.nonesuch", uerr.Name)
}

func TestApplyUnsupportedMetric(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	err := s.Apply(value(t, "disk.dev.read", 0, "sda", "7"))
	var uerr *UnsupportedMetricError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "disk.dev.read", uerr.Name)
}

func TestApplyMalformedText(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	err := s.Apply(scalar(t, "kernel.all.pswitch", "many"))
	require.ErrorContains(t, err, "decoding kernel.all.pswitch")

	// A failed value must not mark its group as present.
	require.Nil(t, s.Snapshot().PCSW)
}

// A group absent from a later sample must not leak the earlier
// sample's values through the snapshot.
func TestStaleRecordsClear(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	require.NoError(t, s.Apply(scalar(t, "kernel.all.pswitch", "42")))
	require.Equal(t, uint64(42), s.Snapshot().PCSW.ContextSwitches)

	s.Begin(time.Unix(1, 0))
	require.Nil(t, s.Snapshot().PCSW)
	require.NoError(t, s.Apply(scalar(t, "kernel.all.sysfork", "7")))
	pcsw := s.Snapshot().PCSW
	require.NotNil(t, pcsw)
	require.Zero(t, pcsw.ContextSwitches)
	require.Equal(t, uint64(7), pcsw.Forks)
}

func TestHeaderLatches(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	for name, text := range map[string]string{
		"hinv.ncpu":             "8",
		"kernel.all.hz":         "250",
		"kernel.uname.sysname":  "Linux",
		"kernel.uname.release":  "6.8.0-test",
		"kernel.uname.nodename": "pcptest",
		"kernel.uname.machine":  "aarch64",
	} {
		require.NoError(t, s.Apply(scalar(t, name, text)))
	}
	require.NoError(t, s.Apply(scalar(t, "kernel.all.uptime", "42.50")))

	want := Header{CPUCount: 8, Hertz: 250, Sysname: "Linux", Release: "6.8.0-test", Nodename: "pcptest", Machine: "aarch64"}
	require.Equal(t, want, s.Header())
	require.Equal(t, 42.5, s.Snapshot().Uptime)

	// Header values persist across cycles even though later samples
	// never carry them.
	s.Begin(time.Unix(10, 0))
	require.Equal(t, want, s.Header())
}

func TestLoadAverageWindows(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	for _, w := range []struct {
		inst int32
		name string
		text string
	}{
		{1, "1 minute", "1.500000"},
		{5, "5 minute", "0.750000"},
		{15, "15 minute", "0.300000"},
	} {
		require.NoError(t, s.Apply(value(t, "kernel.all.load", w.inst, w.name, w.text)))
	}
	q := s.Snapshot().Queue
	require.NotNil(t, q)
	require.Equal(t, uint32(150), q.LoadAvg1)
	require.Equal(t, uint32(75), q.LoadAvg5)
	require.Equal(t, uint32(30), q.LoadAvg15)

	err := s.Apply(value(t, "kernel.all.load", 2, "2 minute", "0.100000"))
	require.ErrorContains(t, err, "unknown load average window")
}

func TestHundredthsRounding(t *testing.T) {
	tests := map[string]struct {
		text string
		want uint32
	}{
		"exact":    {"1.500000", 150},
		"tenth":    {"0.300000", 30},
		"smallest": {"0.010000", 1},
		"half up":  {"0.005000", 1},
		"below":    {"0.004999", 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			s.Begin(time.Unix(0, 0))
			require.NoError(t, s.Apply(value(t, "kernel.all.load", 1, "1 minute", tc.text)))
			require.Equal(t, tc.want, s.Snapshot().Queue.LoadAvg1)
		})
	}
}

func TestPSIWindowKeys(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	for _, w := range []struct {
		inst int32
		name string
		text string
	}{
		{10, "10 second", "0.150000"},
		{60, "1 minute", "0.100000"},
		{300, "5 minute", "0.050000"},
	} {
		require.NoError(t, s.Apply(value(t, "kernel.all.pressure.cpu.some.avg", w.inst, w.name, w.text)))
	}
	require.NoError(t, s.Apply(scalar(t, "kernel.all.pressure.cpu.some.total", "123456")))

	p := s.Snapshot().PSICPU
	require.NotNil(t, p)
	require.Equal(t, sample.PSICPU{SomeAvg10: 15, SomeAvg60: 10, SomeAvg300: 5, SomeTotal: 123456}, *p)

	err := s.Apply(value(t, "kernel.all.pressure.cpu.some.avg", 30, "30 second", "0.010000"))
	require.ErrorContains(t, err, "unknown stall window")
}

func TestNFSRequestKeys(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))
	for _, w := range []struct {
		inst int32
		name string
		text string
	}{
		{4, "getattr", "400"},
		{6, "read", "100"},
		{8, "write", "200"},
		{18, "access", "300"},
	} {
		require.NoError(t, s.Apply(value(t, "nfs.client.reqs", w.inst, w.name, w.text)))
	}
	c := s.Snapshot().NFSClient
	require.NotNil(t, c)
	require.Equal(t, uint32(400), c.Getattrs)
	require.Equal(t, uint32(100), c.Reads)
	require.Equal(t, uint32(200), c.Writes)
	require.Equal(t, uint32(300), c.Accesses)

	err := s.Apply(value(t, "nfs.client.reqs", 5, "lookup", "1"))
	require.ErrorContains(t, err, "unknown request operation")
}

// The archive carries user and nice time net of guest time; reading
// adds the guest counters back in whichever order the values arrive.
func TestGuestTimeRebuilds(t *testing.T) {
	texts := map[string]string{
		"kernel.all.cpu.user":  "120",
		"kernel.all.cpu.guest": "10",
	}
	orders := map[string][]string{
		"guest last":  {"kernel.all.cpu.user", "kernel.all.cpu.guest"},
		"guest first": {"kernel.all.cpu.guest", "kernel.all.cpu.user"},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			s.Begin(time.Unix(0, 0))
			for _, m := range order {
				require.NoError(t, s.Apply(scalar(t, m, texts[m])))
			}
			cpu := s.Snapshot().CPU
			require.Len(t, cpu, 1)
			require.Equal(t, uint64(130), cpu[0].User)
			require.Equal(t, uint64(10), cpu[0].Guest)
		})
	}
}

// Fan minimums rebuild from the published delta in either arrival
// order.
func TestFanMinimumRebuilds(t *testing.T) {
	texts := map[string]string{
		"power.fan.rpm":  "2200",
		"power.fan.drpm": "2000",
	}
	orders := map[string][]string{
		"delta last":  {"power.fan.rpm", "power.fan.drpm"},
		"delta first": {"power.fan.drpm", "power.fan.rpm"},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			s.Begin(time.Unix(0, 0))
			for _, m := range order {
				require.NoError(t, s.Apply(value(t, m, 0, "fan1", texts[m])))
			}
			fans := s.Snapshot().Fans
			require.Len(t, fans, 1)
			require.Equal(t, float64(2200), fans[0].RPM)
			require.Equal(t, float64(200), fans[0].RPMMin)
		})
	}
}

func TestInterruptMatrixRebuilds(t *testing.T) {
	s := NewStore()
	s.Begin(time.Unix(0, 0))

	irq := testReg.Group(registry.IRQ)
	sum := irq.Metric(registry.IRQAllIRQTotal)
	line := irq.Metric(registry.IRQPerIRQTotal)
	cell := testReg.Group(registry.CPU).Metric(registry.CPUPerCPUInterrupts)

	require.NoError(t, s.Apply(&pmi.Value{Desc: &sum, Inst: pmi.InstNull, Text: "300"}))
	require.NoError(t, s.Apply(&pmi.Value{Desc: &line, Inst: 0, Instance: "timer", Text: "57"}))
	require.NoError(t, s.Apply(&pmi.Value{Desc: &cell, Inst: 0, Instance: "timer::cpu0", Text: "23"}))
	require.NoError(t, s.Apply(&pmi.Value{Desc: &cell, Inst: 1, Instance: "timer::cpu1", Text: "34"}))

	require.Equal(t, []sample.Interrupt{
		{Name: "sum", Values: []uint32{300}},
		{Name: "timer", Values: []uint32{57, 23, 34}},
	}, s.Snapshot().Interrupts)

	err := s.Apply(&pmi.Value{Desc: &cell, Inst: 9, Instance: "timer", Text: "1"})
	require.ErrorContains(t, err, "malformed interrupt cell instance")
}
