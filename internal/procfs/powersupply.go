// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// Batteries reads the charge state of every battery below
// /sys/class/power_supply, ordered by battery number.
func (fs FS) Batteries() ([]sample.Battery, error) {
	entries, err := os.ReadDir(fs.sysPath("class", "power_supply"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var batteries []sample.Battery
	for _, e := range entries {
		dir := fs.sysPath("class", "power_supply", e.Name())
		if typ, ok := readSysString(dir, "type"); !ok || typ != "Battery" {
			continue
		}
		capacity, ok := readSysUint(dir, "capacity", 10)
		if !ok {
			continue
		}
		b := sample.Battery{
			ID:       batteryID(e.Name()),
			Capacity: uint32(capacity),
		}
		if status, ok := readSysString(dir, "status"); ok {
			b.Status, _ = sample.ParseBatteryStatus(
				strings.ReplaceAll(strings.ToLower(status), " ", "_"))
		}
		batteries = append(batteries, b)
	}
	sort.Slice(batteries, func(i, j int) bool {
		return batteries[i].ID < batteries[j].ID
	})
	return batteries, nil
}

// batteryID extracts the trailing number of a supply name like BAT0.
func batteryID(name string) uint32 {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	n, err := strconv.ParseUint(name[i:], 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}
