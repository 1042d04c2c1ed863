// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/sample"
)

func TestTableKeepsRowPositions(t *testing.T) {
	var tb table[sample.Disk]
	tb.init = func(d *sample.Disk, _ int32, name string) { d.Name = name }

	// Entity counts per cycle; the table only ever grows.
	counts := []int{3, 5, 2, 7}
	grown := []int{3, 5, 5, 7}
	for c, n := range counts {
		cycle := c + 1
		for i := 0; i < n; i++ {
			tb.row(int32(i), fmt.Sprintf("sd%d", i), cycle).IOs = uint64(100*cycle + i)
		}
		require.Len(t, tb.collect(cycle), n)
		require.Len(t, tb.rows, grown[c])
	}

	// Keys reclaim their original slots after the shrunken cycle.
	for i := 0; i < 7; i++ {
		require.Equal(t, i, tb.byKey[int32(i)])
	}
	got := tb.collect(4)
	require.Equal(t, "sd6", got[6].Name)
	require.Equal(t, uint64(406), got[6].IOs)
}

func TestTableResetsRecordPerCycle(t *testing.T) {
	var tb table[sample.NetDev]
	tb.init = func(n *sample.NetDev, _ int32, name string) { n.Iface = name }

	tb.row(0, "eth0", 1).RxBytes = 4096
	tb.row(0, "eth0", 1).TxBytes = 512
	require.Equal(t, uint64(4096), tb.rows[0].rec.RxBytes)

	r := tb.row(0, "eth0", 3)
	require.Zero(t, r.RxBytes)
	require.Equal(t, "eth0", r.Iface)

	require.Nil(t, tb.collect(2))
}

func TestTableCollectCopiesRows(t *testing.T) {
	var tb table[sample.Fan]
	tb.row(0, "fan1", 1).RPM = 1200
	out := tb.collect(1)
	tb.row(0, "fan1", 1).RPM = 4800
	require.Equal(t, float64(1200), out[0].RPM)
}

func TestIRQRowCellPadding(t *testing.T) {
	var tb irqTable
	r := tb.row("timer", 1)
	r.set(3, 9)
	require.Equal(t, []uint32{0, 0, 0, 9}, r.values)
	r.set(0, 57)
	require.Equal(t, []uint32{57, 0, 0, 9}, r.values)
}

func TestIRQTableKeepsRowOrder(t *testing.T) {
	var tb irqTable
	tb.row("sum", 1).set(0, 300)
	tb.row("timer", 1).set(0, 57)
	tb.row("rtc", 1).set(0, 9)

	// A later cycle visiting fewer lines keeps the survivors in place
	// and drops the rest from its collection.
	tb.row("timer", 2).set(0, 61)
	tb.row("sum", 2).set(0, 310)

	require.Equal(t, []sample.Interrupt{
		{Name: "sum", Values: []uint32{310}},
		{Name: "timer", Values: []uint32{61}},
	}, tb.collect(2))
}

func TestGrowZeroClearsUncoveredSlots(t *testing.T) {
	var b sample.Buffer[sample.CPU]
	b.Swap()
	b.Acquire(0)
	rows := growZero(&b, 2)
	rows[0].User = 11
	rows[1].User = 22
	growZero(&b, 4)

	curr := b.Curr()
	require.Len(t, curr, 4)
	require.Equal(t, uint64(11), curr[0].User)
	require.Equal(t, uint64(22), curr[1].User)
	require.True(t, curr[2].Zero())
	require.True(t, curr[3].Zero())

	// Two cycles later the same backing array comes around again;
	// none of its old rows may show through.
	b.Swap()
	b.Acquire(0)
	b.Swap()
	b.Acquire(0)
	rows = growZero(&b, 3)
	require.Len(t, rows, 3)
	for i := range rows {
		require.True(t, rows[i].Zero())
	}
}
