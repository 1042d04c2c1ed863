// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"os"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// USBDevices reads the identity of every plugged USB device below
// /sys/bus/usb/devices. Root hubs and interface nodes are skipped.
func (fs FS) USBDevices() ([]sample.USB, error) {
	entries, err := os.ReadDir(fs.sysPath("bus", "usb", "devices"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var devices []sample.USB
	for _, e := range entries {
		// Devices are named bus-port[.port...]; interfaces add a
		// :config.interface suffix and root hubs are named usbN.
		name := e.Name()
		if len(name) == 0 || name[0] < '0' || name[0] > '9' ||
			strings.ContainsRune(name, ':') {
			continue
		}
		dir := fs.sysPath("bus", "usb", "devices", name)

		vendor, ok := readSysUint(dir, "idVendor", 16)
		if !ok {
			continue
		}
		product, _ := readSysUint(dir, "idProduct", 16)
		bus, _ := readSysUint(dir, "busnum", 10)

		usb := sample.USB{
			Bus:       uint32(bus),
			VendorID:  uint16(vendor),
			ProductID: uint16(product),
		}
		// bMaxPower prints milliamperes; the descriptor counts 2 mA.
		if s, ok := readSysString(dir, "bMaxPower"); ok {
			usb.MaxPower = uint16(parseUintField(strings.TrimSuffix(s, "mA")) >> 1)
		}
		usb.Manufacturer, _ = readSysString(dir, "manufacturer")
		usb.Product, _ = readSysString(dir, "product")
		devices = append(devices, usb)
	}
	return devices, nil
}
