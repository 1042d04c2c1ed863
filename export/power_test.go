// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

func TestSensorPercent(t *testing.T) {
	tests := map[string]struct {
		v, min, max float64
		want        float64
	}{
		"mid range":   {v: 45, min: 20, max: 70, want: 50},
		"at minimum":  {v: 20, min: 20, max: 70, want: 0},
		"at maximum":  {v: 70, min: 20, max: 70, want: 100},
		"empty range": {v: 42, min: 42, max: 42, want: 0},
	}
	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, sensorPercent(tc.v, tc.min, tc.max))
		})
	}
}

func TestSensorEmission(t *testing.T) {
	ar := writeArchive(t, &Config{Host: testHost()}, fullSnapshot())
	vals := sampleValues(t, ar, 0)

	// Fan speeds are truncated to whole revolutions.
	require.Equal(t, "2200", vals["power.fan.rpm[fan1]"])
	require.Equal(t, "2000", vals["power.fan.drpm[fan1]"])
	require.Equal(t, "hwmon0", vals["power.fan.device[fan1]"])

	require.Equal(t, "45.000000", vals["power.temp.celsius[temp1]"])
	require.Equal(t, "50.000000", vals["power.temp.percent[temp1]"])
	require.Equal(t, "coretemp", vals["power.temp.device[temp1]"])

	require.Equal(t, "1.500000", vals["power.in.voltage[in0]"])
	require.Equal(t, "50.000000", vals["power.in.percent[in0]"])
	require.Equal(t, "vrm", vals["power.in.device[in0]"])
}

func TestFanDeltaClamp(t *testing.T) {
	snap := &sample.Snapshot{
		Time:   time.Unix(1700000100, 0).UTC(),
		Uptime: 10,
		Fans:   []sample.Fan{{RPM: 100, RPMMin: 300, Device: "hwmon0"}},
	}
	ar := writeArchive(t, &Config{Host: testHost()}, snap)
	vals := sampleValues(t, ar, 0)
	require.Equal(t, "0", vals["power.fan.drpm[fan1]"])
}

func TestSensorInstanceNames(t *testing.T) {
	snap := &sample.Snapshot{
		Time:     time.Unix(1700000100, 0).UTC(),
		Uptime:   10,
		Fans:     []sample.Fan{{RPM: 1000}, {RPM: 2000}},
		Temps:    []sample.Temp{{Temp: 40}, {Temp: 50}},
		Voltages: []sample.Voltage{{In: 1}, {In: 2}},
		USB:      []sample.USB{{Bus: 1}, {Bus: 2}},
	}
	ar := writeArchive(t, &Config{Host: testHost()}, snap)

	// Fans and temperature sensors count from one, voltage inputs and
	// USB devices from zero.
	for dom, names := range map[pmi.InDom][]string{
		registry.FanInDom:     {"fan1", "fan2"},
		registry.TempInDom:    {"temp1", "temp2"},
		registry.VoltageInDom: {"in0", "in1"},
		registry.USBInDom:     {"usb0", "usb1"},
	} {
		insts := ar.Instances(dom)
		require.Len(t, insts, 2)
		for i, in := range insts {
			require.Equal(t, names[i], in.Name)
			require.Equal(t, int32(i), in.Key)
		}
	}
}

func TestBatteryEmission(t *testing.T) {
	snap := &sample.Snapshot{
		Time:      time.Unix(1700000100, 0).UTC(),
		Uptime:    10,
		Batteries: []sample.Battery{{ID: 1, Capacity: 88, Status: sample.BatteryCharging}},
	}
	ar := writeArchive(t, &Config{Host: testHost()}, snap)
	vals := sampleValues(t, ar, 0)

	require.Equal(t, "88", vals["power.bat.capacity[BAT1]"])
	require.Equal(t, "charging", vals["power.bat.status[BAT1]"])

	name, ok := ar.InstanceName(registry.BatteryInDom, 1)
	require.True(t, ok)
	require.Equal(t, "BAT1", name)
}

func TestUSBIdentity(t *testing.T) {
	ar := writeArchive(t, &Config{Host: testHost()}, fullSnapshot())
	vals := sampleValues(t, ar, 0)

	require.Equal(t, "2", vals["power.usb.bus[usb0]"])
	require.Equal(t, "8086", vals["power.usb.vendorId[usb0]"])
	require.Equal(t, "46d", vals["power.usb.productId[usb0]"])
	require.Equal(t, "100", vals["power.usb.maxpower[usb0]"])
	require.Equal(t, "Logitech", vals["power.usb.manufacturer[usb0]"])
	require.Equal(t, "Mouse", vals["power.usb.productName[usb0]"])
}
