// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/sample"
)

func TestPressure(t *testing.T) {
	cpu, err := testFS.PSICPU()
	require.NoError(t, err)
	require.NotNil(t, cpu)
	assert.Equal(t, sample.PSICPU{
		SomeAvg10:  123,
		SomeAvg60:  87,
		SomeAvg300: 45,
		SomeTotal:  123456789,
	}, *cpu)

	io, err := testFS.PSIIO()
	require.NoError(t, err)
	require.NotNil(t, io)
	assert.Equal(t, sample.PSIIO{
		SomeAvg10: 15, SomeAvg60: 10, SomeAvg300: 5, SomeTotal: 98765,
		FullAvg10: 10, FullAvg60: 8, FullAvg300: 2, FullTotal: 45678,
	}, *io)

	mem, err := testFS.PSIMem()
	require.NoError(t, err)
	require.NotNil(t, mem)
	assert.Equal(t, sample.PSIMem{
		SomeAvg10: 31, SomeAvg60: 27, SomeAvg300: 13, SomeTotal: 776655,
		FullAvg10: 21, FullAvg60: 17, FullAvg300: 9, FullTotal: 443322,
	}, *mem)

	// Kernels without CONFIG_PSI have no pressure directory.
	cpu, err = emptyFS.PSICPU()
	require.NoError(t, err)
	require.Nil(t, cpu)
}

func TestSerial(t *testing.T) {
	lines, err := testFS.Serial()
	require.NoError(t, err)

	// The unprobed line 1 is dropped.
	require.Equal(t, []sample.Serial{
		{Line: 0, Rx: 1438, Tx: 2190, Frame: 1, Parity: 0, Break: 2, Overrun: 3},
		{Line: 2, Rx: 9, Tx: 84},
	}, lines)
}

func TestFans(t *testing.T) {
	fans, err := testFS.Fans()
	require.NoError(t, err)
	require.Equal(t, []sample.Fan{
		{RPM: 1204, RPMMin: 600, Device: "nct6775"},
		{RPM: 855, Device: "nct6775"},
	}, fans)

	fans, err = emptyFS.Fans()
	require.NoError(t, err)
	require.Empty(t, fans)
}

func TestTemps(t *testing.T) {
	temps, err := testFS.Temps()
	require.NoError(t, err)
	require.Len(t, temps, 1)
	assert.Equal(t, "coretemp", temps[0].Device)
	assert.InDelta(t, 42.0, temps[0].Temp, 1e-9)
	assert.InDelta(t, 0.0, temps[0].TempMin, 1e-9)
	assert.InDelta(t, 100.0, temps[0].TempMax, 1e-9)
}

func TestVoltages(t *testing.T) {
	ins, err := testFS.Voltages()
	require.NoError(t, err)
	require.Len(t, ins, 2)
	assert.Equal(t, "nct6775", ins[0].Device)
	assert.InDelta(t, 1.032, ins[0].In, 1e-9)
	assert.InDelta(t, 0.85, ins[0].InMin, 1e-9)
	assert.InDelta(t, 1.25, ins[0].InMax, 1e-9)
	assert.InDelta(t, 3.312, ins[1].In, 1e-9)
}

func TestBatteries(t *testing.T) {
	batteries, err := testFS.Batteries()
	require.NoError(t, err)

	// The AC supply is not a battery.
	require.Equal(t, []sample.Battery{
		{ID: 0, Capacity: 87, Status: sample.BatteryDischarging},
	}, batteries)
}

func TestUSBDevices(t *testing.T) {
	devices, err := testFS.USBDevices()
	require.NoError(t, err)

	// Root hubs named usbN are skipped; bMaxPower halves into
	// descriptor units.
	require.Equal(t, []sample.USB{{
		Bus:          1,
		VendorID:     0x1d6b,
		ProductID:    0x0002,
		MaxPower:     50,
		Manufacturer: "Logitech",
		Product:      "USB Receiver",
	}}, devices)
}

func TestFCHosts(t *testing.T) {
	hosts, err := testFS.FCHosts()
	require.NoError(t, err)
	require.Equal(t, []sample.FCHost{{
		Name:     "host6",
		RxFrames: 0x1a2b,
		TxFrames: 0x3c4d,
		RxWords:  0x5e6f,
		TxWords:  0x7a8b,
	}}, hosts)

	hosts, err = emptyFS.FCHosts()
	require.NoError(t, err)
	require.Empty(t, hosts)
}
