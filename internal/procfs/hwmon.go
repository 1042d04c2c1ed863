// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// hwmonChips lists the /sys/class/hwmon chip directories in a stable
// order. Each entry is the directory path plus the chip's name label.
func (fs FS) hwmonChips() ([][2]string, error) {
	entries, err := os.ReadDir(fs.sysPath("class", "hwmon"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return hwmonIndex(entries[i].Name()) < hwmonIndex(entries[j].Name())
	})

	var chips [][2]string
	for _, e := range entries {
		dir := fs.sysPath("class", "hwmon", e.Name())
		name, ok := readSysString(dir, "name")
		if !ok {
			name = e.Name()
		}
		chips = append(chips, [2]string{dir, name})
	}
	return chips, nil
}

func hwmonIndex(name string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "hwmon"))
	if err != nil {
		return -1
	}
	return n
}

// Fans reads the fan speed sensors of every hwmon chip.
func (fs FS) Fans() ([]sample.Fan, error) {
	chips, err := fs.hwmonChips()
	if err != nil {
		return nil, err
	}
	var fans []sample.Fan
	for _, chip := range chips {
		dir, name := chip[0], chip[1]
		for i := 1; ; i++ {
			rpm, ok := readSysFloat(dir, fmt.Sprintf("fan%d_input", i))
			if !ok {
				break
			}
			rpmMin, _ := readSysFloat(dir, fmt.Sprintf("fan%d_min", i))
			fans = append(fans, sample.Fan{
				RPM:    rpm,
				RPMMin: rpmMin,
				Device: name,
			})
		}
	}
	return fans, nil
}

// Temps reads the temperature sensors of every hwmon chip, converted
// from the millidegrees the kernel reports to degrees Celsius.
func (fs FS) Temps() ([]sample.Temp, error) {
	chips, err := fs.hwmonChips()
	if err != nil {
		return nil, err
	}
	var temps []sample.Temp
	for _, chip := range chips {
		dir, name := chip[0], chip[1]
		for i := 1; ; i++ {
			t, ok := readSysFloat(dir, fmt.Sprintf("temp%d_input", i))
			if !ok {
				break
			}
			tMin, _ := readSysFloat(dir, fmt.Sprintf("temp%d_min", i))
			tMax, _ := readSysFloat(dir, fmt.Sprintf("temp%d_max", i))
			temps = append(temps, sample.Temp{
				Temp:    t / 1000,
				TempMin: tMin / 1000,
				TempMax: tMax / 1000,
				Device:  name,
			})
		}
	}
	return temps, nil
}

// Voltages reads the voltage input sensors of every hwmon chip,
// converted from millivolts to volts. Voltage inputs count from zero.
func (fs FS) Voltages() ([]sample.Voltage, error) {
	chips, err := fs.hwmonChips()
	if err != nil {
		return nil, err
	}
	var ins []sample.Voltage
	for _, chip := range chips {
		dir, name := chip[0], chip[1]
		for i := 0; ; i++ {
			in, ok := readSysFloat(dir, fmt.Sprintf("in%d_input", i))
			if !ok {
				break
			}
			inMin, _ := readSysFloat(dir, fmt.Sprintf("in%d_min", i))
			inMax, _ := readSysFloat(dir, fmt.Sprintf("in%d_max", i))
			ins = append(ins, sample.Voltage{
				In:     in / 1000,
				InMin:  inMin / 1000,
				InMax:  inMax / 1000,
				Device: name,
			})
		}
	}
	return ins, nil
}
