// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/pmi"
)

func TestNewBuildsAllGroups(t *testing.T) {
	r := New()

	assert.Equal(t, 44, len(Activities()))
	assert.Equal(t, 300, r.Len())

	for _, a := range Activities() {
		g := r.Group(a)
		assert.Equal(t, a, g.Act())
		assert.NotZero(t, g.Len())
		assert.Equal(t, a.String(), g.Name())
		assert.Len(t, g.Metrics(), g.Len())
	}
}

func TestLookup(t *testing.T) {
	r := New()

	tests := map[string]struct {
		id    pmi.ID
		act   Activity
		index int
		name  string
	}{
		"aggregate cpu user": {pmi.NewID(60, 0, 20), CPU, CPUAllCPUUser, "kernel.all.cpu.user"},
		"serial overruns":    {pmi.NewID(60, 74, 5), Serial, SerialPerTTYOverrun, "tty.serial.overrun"},
		"memory in use":      {pmi.NewID(60, 1, 1), Memory, MemUtilUsed, "mem.util.used"},
		"load average":       {pmi.NewID(60, 2, 0), Queue, KQueueLoadAvg, "kernel.all.load"},
		"fc frames received": {pmi.NewID(60, 91, 0), FCHost, FCHostInFrames, "fchost.in.frames"},
		"time wait sockets":  {pmi.NewID(60, 11, 11), Sock, SocketTCPTw, "network.sockstat.tcp.tw"},
		"neighbor adverts": {pmi.NewID(60, 58, 64), ICMP6, NetICMP6OutNeighborAdvertisements,
			"network.icmp6.outneighboradvertisements"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b, ok := r.Lookup(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.act, b.Act)
			assert.Equal(t, tc.index, b.Index)
			assert.Equal(t, tc.name, b.Desc.Name)
			assert.Equal(t, tc.id, b.Desc.ID)

			assert.Equal(t, b.Desc, r.Group(tc.act).Metric(tc.index))

			byName, ok := r.LookupName(tc.name)
			require.True(t, ok)
			assert.Equal(t, b, byName)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	r := New()

	_, ok := r.Lookup(pmi.NewID(127, 9, 9))
	assert.False(t, ok)

	_, ok = r.LookupName("kernel.all.nope")
	assert.False(t, ok)
}

func TestInterruptTotalNameSharedAcrossGroups(t *testing.T) {
	r := New()

	// kernel.all.intr is declared by both the cpu and the irq group,
	// under different numeric ids. It must stay the only shared name,
	// the name lookup must keep the first registration, and both ids
	// must stay resolvable.
	owners := map[string][]Activity{}
	for _, a := range Activities() {
		for _, d := range r.Group(a).Metrics() {
			owners[d.Name] = append(owners[d.Name], a)
		}
	}
	var shared []string
	for name, acts := range owners {
		if len(acts) > 1 {
			shared = append(shared, name)
			assert.Equal(t, []Activity{CPU, IRQ}, acts)
		}
	}
	require.Equal(t, []string{"kernel.all.intr"}, shared)

	b, ok := r.LookupName("kernel.all.intr")
	require.True(t, ok)
	assert.Equal(t, CPU, b.Act)
	assert.Equal(t, CPUAllCPUIRQTotal, b.Index)

	fromCPU, ok := r.Lookup(pmi.NewID(60, 0, 34))
	require.True(t, ok)
	assert.Equal(t, CPU, fromCPU.Act)

	fromIRQ, ok := r.Lookup(pmi.NewID(60, 0, 12))
	require.True(t, ok)
	assert.Equal(t, IRQ, fromIRQ.Act)
	assert.Equal(t, "kernel.all.intr", fromIRQ.Desc.Name)
}

func TestDescIdentity(t *testing.T) {
	r := New()

	tests := map[string]struct {
		name  string
		typ   pmi.Type
		indom pmi.InDom
		sem   pmi.Semantics
		units pmi.Units
	}{
		"clock tick rate": {
			name:  "kernel.all.hz",
			typ:   pmi.TypeUint32,
			indom: pmi.InDomNull,
			sem:   pmi.SemDiscrete,
			units: pmi.MakeUnits(0, -1, 1, 0, pmi.TimeSec, pmi.CountOne),
		},
		"physical memory": {
			name:  "hinv.physmem",
			typ:   pmi.TypeUint32,
			indom: pmi.InDomNull,
			sem:   pmi.SemDiscrete,
			units: pmi.MakeUnits(1, 0, 0, pmi.SpaceMByte, 0, 0),
		},
		"per device bytes read": {
			name:  "disk.dev.read_bytes",
			typ:   pmi.TypeUint64,
			indom: DiskInDom,
			sem:   pmi.SemCounter,
			units: pmi.MakeUnits(1, 0, 0, pmi.SpaceKByte, 0, 0),
		},
		"per cpu interrupt matrix": {
			name:  "kernel.percpu.interrupts",
			typ:   pmi.TypeUint32,
			indom: IRQCPUInDom,
			sem:   pmi.SemCounter,
			units: pmi.MakeUnits(0, 0, 1, 0, 0, pmi.CountOne),
		},
		"cpu pressure average": {
			name:  "kernel.all.pressure.cpu.some.avg",
			typ:   pmi.TypeFloat,
			indom: PSIInDom,
			sem:   pmi.SemInstant,
			units: pmi.MakeUnits(0, 0, 0, 0, 0, 0),
		},
		"battery status text": {
			name:  "power.bat.status",
			typ:   pmi.TypeString,
			indom: BatteryInDom,
			sem:   pmi.SemInstant,
			units: pmi.MakeUnits(0, 0, 0, 0, 0, 0),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b, ok := r.LookupName(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.typ, b.Desc.Type)
			assert.Equal(t, tc.indom, b.Desc.InDom)
			assert.Equal(t, tc.sem, b.Desc.Sem)
			assert.Equal(t, tc.units, b.Desc.Units)
		})
	}
}

func TestSerialIdentity(t *testing.T) {
	r := New()

	// The serial group lives in cluster 74 with items in declaration
	// order, all instanced over the serial line domain.
	g := r.Group(Serial)
	require.Equal(t, 6, g.Len())
	for i, d := range g.Metrics() {
		assert.Equal(t, pmi.NewID(60, 74, uint32(i)), d.ID, d.Name)
		assert.Equal(t, SerialInDom, d.InDom, d.Name)
	}
}

func TestGroupMetricPanicsOutOfRange(t *testing.T) {
	r := New()

	g := r.Group(PCSW)
	require.Equal(t, 2, g.Len())
	assert.Panics(t, func() { g.Metric(2) })
	assert.Panics(t, func() { g.Metric(-1) })
	assert.Panics(t, func() { r.Group(Activity(99)) })
}

func TestActivityNames(t *testing.T) {
	for _, a := range Activities() {
		parsed, err := ParseActivity(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := ParseActivity("turbo")
	assert.Error(t, err)
	assert.Equal(t, "activity(99)", Activity(99).String())
}
