// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"fmt"
	"strconv"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// entityF stores a decimal gauge into the field of the row the value's
// instance selects.
func entityF[T any](tbl func(*Store) *table[T], p func(*T) *float64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		f, err := parseF(v.Text)
		if err != nil {
			return err
		}
		*p(r) = f
		return nil
	}
}

// Fan minimums rebuild from the published delta. Speed adds into the
// minimum and the delta subtracts from it, so arrival order does not
// matter. The range percent metrics of the other sensors restate their
// reading against limits the archive does not carry; they validate and
// drop.
var fanReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Fan] { return &s.fans }
	out := make([]applyFunc, registry.PowerFanDevice+1)
	out[registry.PowerFanRPM] = func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		f, err := parseF(v.Text)
		if err != nil {
			return err
		}
		r.RPM = f
		r.RPMMin += f
		return nil
	}
	out[registry.PowerFanDRPM] = func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		f, err := parseF(v.Text)
		if err != nil {
			return err
		}
		r.RPMMin -= f
		return nil
	}
	out[registry.PowerFanDevice] = entityStr(tbl, func(f *sample.Fan) *string { return &f.Device })
	return out
}()

var tempReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Temp] { return &s.temps }
	out := make([]applyFunc, registry.PowerTempDevice+1)
	out[registry.PowerTempCelsius] = entityF(tbl, func(t *sample.Temp) *float64 { return &t.Temp })
	out[registry.PowerTempPercent] = skipEntityF
	out[registry.PowerTempDevice] = entityStr(tbl, func(t *sample.Temp) *string { return &t.Device })
	return out
}()

var voltageReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Voltage] { return &s.voltages }
	out := make([]applyFunc, registry.PowerInDevice+1)
	out[registry.PowerInVoltage] = entityF(tbl, func(vi *sample.Voltage) *float64 { return &vi.In })
	out[registry.PowerInPercent] = skipEntityF
	out[registry.PowerInDevice] = entityStr(tbl, func(vi *sample.Voltage) *string { return &vi.Device })
	return out
}()

var batteryReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Battery] { return &s.batteries }
	out := make([]applyFunc, registry.PowerBatStatus+1)
	out[registry.PowerBatCapacity] = entityU32(tbl, func(b *sample.Battery) *uint32 { return &b.Capacity })
	out[registry.PowerBatStatus] = func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		st, ok := sample.ParseBatteryStatus(v.Text)
		if !ok {
			return fmt.Errorf("unknown battery status %q", v.Text)
		}
		r.Status = st
		return nil
	}
	return out
}()

// Identifiers come back from hex and the power draw from mA into the
// descriptor's 2 mA units.
var usbReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.USB] { return &s.usb }
	out := make([]applyFunc, registry.PowerUSBProductName+1)
	out[registry.PowerUSBBus] = entityU32(tbl, func(u *sample.USB) *uint32 { return &u.Bus })
	out[registry.PowerUSBVendorID] = func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		id, err := parseHex16(v.Text)
		if err != nil {
			return err
		}
		r.VendorID = id
		return nil
	}
	out[registry.PowerUSBProductID] = func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		id, err := parseHex16(v.Text)
		if err != nil {
			return err
		}
		r.ProductID = id
		return nil
	}
	out[registry.PowerUSBMaxPower] = func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		mA, err := strconv.ParseUint(v.Text, 10, 17)
		if err != nil {
			return err
		}
		r.MaxPower = uint16(mA >> 1)
		return nil
	}
	out[registry.PowerUSBManufacturer] = entityStr(tbl, func(u *sample.USB) *string { return &u.Manufacturer })
	out[registry.PowerUSBProductName] = entityStr(tbl, func(u *sample.USB) *string { return &u.Product })
	return out
}()
