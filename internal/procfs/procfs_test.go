// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/sample"
)

var testFS = NewFS("testdata/proc", "testdata/sys")

// emptyFS points below a directory that does not exist, the shape of a
// kernel exposing none of the optional files.
var emptyFS = NewFS("testdata/gone", "testdata/gone")

func TestStat(t *testing.T) {
	st, err := testFS.Stat()
	require.NoError(t, err)
	require.NotNil(t, st)

	require.Len(t, st.CPUs, 3)
	assert.Equal(t, sample.CPU{
		User: 10132153, Nice: 290696, Sys: 3084719, Idle: 46828483,
		Iowait: 16683, HardIRQ: 2542, SoftIRQ: 25195, Steal: 175,
		Guest: 17, GuestNice: 3,
	}, st.CPUs[0])
	assert.Equal(t, sample.CPU{
		User: 5066077, Nice: 145348, Sys: 1542360, Idle: 23414242,
		Iowait: 8342, HardIRQ: 1272, SoftIRQ: 12598, Steal: 88,
		Guest: 8, GuestNice: 2,
	}, st.CPUs[2])

	assert.Equal(t, uint64(339086356), st.ContextSwitches)
	assert.Equal(t, uint64(272515), st.Forks)
	assert.Equal(t, uint64(3), st.Running)
	assert.Equal(t, uint64(1), st.Blocked)
	assert.Equal(t, uint64(135566269), st.IntrTotal)
	assert.Equal(t, uint64(1711700000), st.BootTime)
}

func TestStatErrors(t *testing.T) {
	_, err := parseStat(strings.NewReader("cpu  bad 1 2 3\n"))
	require.Error(t, err)

	_, err = parseStat(strings.NewReader("intr x\n"))
	require.Error(t, err)

	st, err := emptyFS.Stat()
	require.NoError(t, err)
	require.Nil(t, st)
}

func TestStatOfflineCPUs(t *testing.T) {
	// A machine with processor 2 online but 0 and 1 offline.
	st, err := parseStat(strings.NewReader(
		"cpu  9 8 7 6 0 0 0 0 0 0\ncpu2 9 8 7 6 0 0 0 0 0 0\n"))
	require.NoError(t, err)
	require.Len(t, st.CPUs, 4)
	assert.True(t, st.CPUs[1].Zero())
	assert.True(t, st.CPUs[2].Zero())
	assert.Equal(t, uint64(9), st.CPUs[3].User)
}

func TestLoadAvg(t *testing.T) {
	q, err := testFS.LoadAvg()
	require.NoError(t, err)
	require.NotNil(t, q)

	// The reader itself is subtracted from the runnable count.
	assert.Equal(t, sample.Queue{
		Running: 2, Threads: 1147,
		LoadAvg1: 52, LoadAvg5: 31, LoadAvg15: 24,
	}, *q)
}

func TestLoadAvgErrors(t *testing.T) {
	_, err := parseLoadAvg(strings.NewReader("0.1 0.2\n"))
	require.Error(t, err)

	_, err = parseLoadAvg(strings.NewReader("a b c 1/2 3\n"))
	require.Error(t, err)

	_, err = parseLoadAvg(strings.NewReader("0.1 0.2 0.3 nope 3\n"))
	require.Error(t, err)
}

func TestUptime(t *testing.T) {
	up, err := testFS.Uptime()
	require.NoError(t, err)
	assert.Equal(t, 18341.27, up)

	_, err = emptyFS.Uptime()
	require.Error(t, err)
}

func TestMeminfo(t *testing.T) {
	mi, err := testFS.Meminfo()
	require.NoError(t, err)
	require.NotNil(t, mi)

	assert.Equal(t, sample.Memory{
		FreeKB:        8234084,
		AvailableKB:   12110992,
		TotalKB:       16316412,
		BuffersKB:     412324,
		CachedKB:      3375028,
		CommittedKB:   11626720,
		ActiveKB:      3725544,
		InactiveKB:    2888336,
		DirtyKB:       340,
		AnonPagesKB:   2826936,
		SlabKB:        683724,
		KernelStackKB: 17456,
		PageTablesKB:  27444,
		VmallocUsedKB: 61308,
		SwapFreeKB:    4194044,
		SwapTotalKB:   4194300,
		SwapCachedKB:  8,
	}, mi.Memory)

	// Page counts scaled by the 2048 KB huge page size.
	assert.Equal(t, sample.Huge{
		TotalKB:    65536,
		FreeKB:     49152,
		ReservedKB: 8192,
		SurplusKB:  4096,
	}, mi.Huge)
}

func TestVmstat(t *testing.T) {
	vm, err := testFS.Vmstat()
	require.NoError(t, err)
	require.NotNil(t, vm)

	assert.Equal(t, sample.Swap{PagesIn: 1031, PagesOut: 2289}, vm.Swap)
	assert.Equal(t, sample.Paging{
		PagedIn:     3942431,
		PagedOut:    12556999,
		Faults:      336738483,
		MajorFaults: 22378,
		Freed:       392394698,
		ScanKswapd:  1207072,
		ScanDirect:  15060,
		Stolen:      1203411 + 14130,
		Promoted:    2906,
		Demoted:     5621 + 380,
	}, vm.Paging)
}

func TestDiskstats(t *testing.T) {
	disks, err := testFS.Diskstats()
	require.NoError(t, err)
	require.Len(t, disks, 3)

	sda := disks[0]
	assert.Equal(t, sample.Disk{
		Major: 8, Minor: 0, Name: "sda",
		IOs:            843923 + 2816490 + 10014,
		ReadSectors:    30649037,
		WriteSectors:   73882562,
		DiscardSectors: 783835984,
		ReadTicks:      419463,
		WriteTicks:     10722943,
		DiscardTicks:   134074,
		TotalTicks:     3117008,
		QueueTicks:     11276477,
	}, sda.Disk)
	assert.Equal(t, uint64(843923), sda.Reads)
	assert.Equal(t, uint64(2816490), sda.Writes)
	assert.Equal(t, uint64(10014), sda.Discards)

	assert.Equal(t, "sda1", disks[1].Name)

	// dm-0 prints no discard columns in this tree.
	dm := disks[2]
	assert.Equal(t, "dm-0", dm.Name)
	assert.Equal(t, uint64(0), dm.Discards)
	assert.Equal(t, uint64(885725+4220457), dm.IOs)
}

func TestDiskstatsErrors(t *testing.T) {
	_, err := parseDiskstats(strings.NewReader("8 0 sda 1 2 3\n"))
	require.Error(t, err)

	_, err = parseDiskstats(strings.NewReader(
		"x 0 sda 1 2 3 4 5 6 7 8 9 10 11\n"))
	require.Error(t, err)
}

func TestCPUFreq(t *testing.T) {
	rows, err := testFS.CPUFreq()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(249422), rows[0].Freq)
	assert.Equal(t, uint64(120000), rows[1].Freq)
}

func TestMounts(t *testing.T) {
	mounts, err := testFS.Mounts()
	require.NoError(t, err)

	// Pseudo filesystems are dropped and the sda1 bind dupe collapses.
	require.Equal(t, []Mount{
		{Source: "/dev/sda1", Target: "/", FSType: "ext4"},
		{Source: "/dev/mapper/data", Target: "/srv/with space", FSType: "xfs"},
	}, mounts)
}

func TestInterrupts(t *testing.T) {
	irqs, err := testFS.Interrupts()
	require.NoError(t, err)
	require.Len(t, irqs, 7)

	assert.Equal(t, sample.Interrupt{
		Name: "0", Values: []uint32{36, 36, 0},
	}, irqs[0])
	assert.Equal(t, sample.Interrupt{
		Name: "24", Values: []uint32{402379, 259297, 143082},
	}, irqs[2])
	assert.Equal(t, sample.Interrupt{
		Name: "NMI", Values: []uint32{210, 112, 98},
	}, irqs[3])

	// ERR prints a single column; the missing cell stays zero.
	assert.Equal(t, sample.Interrupt{
		Name: "ERR", Values: []uint32{0, 0, 0},
	}, irqs[5])

	sum := SumInterrupts(irqs)
	assert.Equal(t, "sum", sum.Name)
	assert.Equal(t, irqs[0].Values[0]+irqs[1].Values[0]+irqs[2].Values[0]+
		irqs[3].Values[0]+irqs[4].Values[0], sum.Values[0])
}

func TestInterruptsErrors(t *testing.T) {
	_, err := parseInterrupts(strings.NewReader("not a header\n0: 1 2\n"))
	require.Error(t, err)

	irqs, err := parseInterrupts(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, irqs)
}

func TestKTables(t *testing.T) {
	kt, err := testFS.KTables()
	require.NoError(t, err)
	require.NotNil(t, kt)

	assert.Equal(t, sample.KTables{
		Dentries: 68245,
		Files:    4704,
		Inodes:   72341 - 9180,
		PTYs:     5,
	}, *kt)

	// Nothing readable leaves everything zero.
	kt, err = emptyFS.KTables()
	require.NoError(t, err)
	assert.Equal(t, sample.KTables{}, *kt)
}

func TestBlockDevice(t *testing.T) {
	assert.True(t, testFS.BlockDevice("sda"))
	assert.True(t, testFS.BlockDevice("dm-0"))
	assert.False(t, testFS.BlockDevice("sda1"))
	assert.False(t, testFS.BlockDevice("loop9"))
}
