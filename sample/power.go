// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// Fan holds one fan sensor reading, in RPM.
type Fan struct {
	RPM    float64
	RPMMin float64
	Device string
}

// Temp holds one temperature sensor reading, in degrees Celsius.
type Temp struct {
	Temp    float64
	TempMin float64
	TempMax float64
	Device  string
}

// Voltage holds one voltage input sensor reading, in volts.
type Voltage struct {
	In     float64
	InMin  float64
	InMax  float64
	Device string
}

// BatteryStatus is the charge state reported for a battery.
type BatteryStatus uint8

const (
	BatteryUnknown BatteryStatus = iota
	BatteryCharging
	BatteryDischarging
	BatteryNotCharging
	BatteryFull

	batteryStatusCount
)

var batteryStatusNames = [batteryStatusCount]string{
	BatteryUnknown:     "unknown",
	BatteryCharging:    "charging",
	BatteryDischarging: "discharging",
	BatteryNotCharging: "not_charging",
	BatteryFull:        "full",
}

// String returns the status label. Out of range values report as unknown.
func (s BatteryStatus) String() string {
	if s >= batteryStatusCount {
		s = BatteryUnknown
	}
	return batteryStatusNames[s]
}

// ParseBatteryStatus maps a status label back to its code.
func ParseBatteryStatus(name string) (BatteryStatus, bool) {
	for s, n := range batteryStatusNames {
		if n == name {
			return BatteryStatus(s), true
		}
	}
	return BatteryUnknown, false
}

// Battery holds one battery's charge state from /sys/class/power_supply.
// ID is the kernel battery number and names the instance.
type Battery struct {
	ID       uint32
	Capacity uint32
	Status   BatteryStatus
}

// USB holds one plugged USB device's identity from /sys/bus/usb/devices.
// MaxPower is in 2 mA units as reported by the device descriptor.
type USB struct {
	Bus          uint32
	VendorID     uint16
	ProductID    uint16
	MaxPower     uint16
	Manufacturer string
	Product      string
}
