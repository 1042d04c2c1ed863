// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferCapacityNeverShrinks(t *testing.T) {
	var b Buffer[Disk]

	caps := make([]int, 0, 4)
	for _, n := range []int{3, 5, 2, 7} {
		b.Acquire(n)
		caps = append(caps, b.Cap())
	}
	assert.Equal(t, []int{3, 5, 5, 7}, caps)
}

func TestBufferTwoCycles(t *testing.T) {
	var b Buffer[CPU]

	rows := b.Acquire(2)
	rows[0].User = 11
	rows[1].User = 22
	b.Swap()

	rows = b.Acquire(2)
	rows[0].User = 33
	rows[1].User = 44

	require.Len(t, b.Prev(), 2)
	assert.Equal(t, uint64(11), b.Prev()[0].User)
	assert.Equal(t, uint64(22), b.Prev()[1].User)
	assert.Equal(t, uint64(33), b.Curr()[0].User)
	assert.Equal(t, uint64(44), b.Curr()[1].User)
}

func TestBufferGrowPreservesPrevious(t *testing.T) {
	var b Buffer[Serial]

	rows := b.Acquire(1)
	rows[0] = Serial{Line: 4, Rx: 100}
	b.Swap()

	// Growing for a larger current cycle must not disturb the rows of the
	// cycle already filled.
	rows = b.Acquire(6)
	require.Len(t, rows, 6)
	require.Len(t, b.Prev(), 1)
	assert.Equal(t, Serial{Line: 4, Rx: 100}, b.Prev()[0])
}

func TestBufferAcquireClearsCurrent(t *testing.T) {
	var b Buffer[NetDev]

	rows := b.Acquire(2)
	rows[0].RxBytes = 9000
	b.Acquire(2)
	assert.Equal(t, uint64(0), b.Curr()[0].RxBytes)
}

func TestBufferExtendKeepsFilledRows(t *testing.T) {
	var b Buffer[Interrupt]

	rows := b.Acquire(1)
	rows[0].Name = "sum"
	rows = b.Extend(3)
	require.Len(t, rows, 3)
	assert.Equal(t, "sum", rows[0].Name)
	assert.Equal(t, 3, b.Count())
}

func TestCPUSet(t *testing.T) {
	var s CPUSet
	s.Set(0)
	s.Set(70)

	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(70))
	assert.False(t, s.Has(200))

	var all *CPUSet
	assert.True(t, all.Has(123))
}

func TestBatteryStatusNames(t *testing.T) {
	tests := map[string]struct {
		status BatteryStatus
		name   string
	}{
		"unknown":      {status: BatteryUnknown, name: "unknown"},
		"charging":     {status: BatteryCharging, name: "charging"},
		"discharging":  {status: BatteryDischarging, name: "discharging"},
		"not charging": {status: BatteryNotCharging, name: "not_charging"},
		"full":         {status: BatteryFull, name: "full"},
		"out of range": {status: BatteryStatus(200), name: "unknown"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.status.String())
		})
	}
}
