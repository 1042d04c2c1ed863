// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"strconv"

	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// sensorPercent normalizes a reading into its device range as a
// percentage, 0 when the range is empty.
func sensorPercent(v, min, max float64) float64 {
	if max-min == 0 {
		return 0
	}
	return (v - min) / (max - min) * 100
}

// writeFans names fans by 1-based position. Speeds are truncated to
// whole revolutions and the delta from the device minimum never goes
// below zero.
func (s *Session) writeFans(snap *sample.Snapshot) error {
	for i := range snap.Fans {
		f := &snap.Fans[i]
		name := "fan" + strconv.Itoa(i+1)
		if err := s.pmi.AddInstance(registry.FanInDom, name, int32(i)); err != nil {
			return err
		}
		drpm := f.RPM - f.RPMMin
		if drpm < 0 {
			drpm = 0
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.PowerFanRPM, utoa(uint64(f.RPM))},
			{registry.PowerFanDRPM, utoa(uint64(drpm))},
			{registry.PowerFanDevice, f.Device},
		}
		for _, p := range puts {
			if err := s.put(registry.Fan, p.idx, name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) writeTemps(snap *sample.Snapshot) error {
	for i := range snap.Temps {
		t := &snap.Temps[i]
		name := "temp" + strconv.Itoa(i+1)
		if err := s.pmi.AddInstance(registry.TempInDom, name, int32(i)); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.PowerTempCelsius, ftoa(t.Temp)},
			{registry.PowerTempPercent, ftoa(sensorPercent(t.Temp, t.TempMin, t.TempMax))},
			{registry.PowerTempDevice, t.Device},
		}
		for _, p := range puts {
			if err := s.put(registry.Temp, p.idx, name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

// Voltage inputs keep the kernel's 0-based numbering.
func (s *Session) writeVoltages(snap *sample.Snapshot) error {
	for i := range snap.Voltages {
		v := &snap.Voltages[i]
		name := "in" + strconv.Itoa(i)
		if err := s.pmi.AddInstance(registry.VoltageInDom, name, int32(i)); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.PowerInVoltage, ftoa(v.In)},
			{registry.PowerInPercent, ftoa(sensorPercent(v.In, v.InMin, v.InMax))},
			{registry.PowerInDevice, v.Device},
		}
		for _, p := range puts {
			if err := s.put(registry.Voltage, p.idx, name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeBatteries names instances from the battery identifiers the
// records carry rather than slice position.
func (s *Session) writeBatteries(snap *sample.Snapshot) error {
	for i := range snap.Batteries {
		b := &snap.Batteries[i]
		name := "BAT" + utoa(b.ID)
		if err := s.pmi.AddInstance(registry.BatteryInDom, name, int32(b.ID)); err != nil {
			return err
		}
		if err := s.put(registry.Battery, registry.PowerBatCapacity, name, utoa(b.Capacity)); err != nil {
			return err
		}
		if err := s.put(registry.Battery, registry.PowerBatStatus, name, b.Status.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeUSB emits device identity: hex vendor and product ids and the
// descriptor's power draw converted from 2 mA units to mA.
func (s *Session) writeUSB(snap *sample.Snapshot) error {
	for i := range snap.USB {
		u := &snap.USB[i]
		name := "usb" + strconv.Itoa(i)
		if err := s.pmi.AddInstance(registry.USBInDom, name, int32(i)); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.PowerUSBBus, utoa(u.Bus)},
			{registry.PowerUSBVendorID, htoa(u.VendorID)},
			{registry.PowerUSBProductID, htoa(u.ProductID)},
			{registry.PowerUSBMaxPower, utoa(uint64(u.MaxPower) << 1)},
			{registry.PowerUSBManufacturer, u.Manufacturer},
			{registry.PowerUSBProductName, u.Product},
		}
		for _, p := range puts {
			if err := s.put(registry.USB, p.idx, name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}
