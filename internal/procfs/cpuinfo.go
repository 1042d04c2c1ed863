// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// CPUFreq reads the current clock of every online processor from
// /proc/cpuinfo, indexed by processor number without a machine row.
// Architectures that do not print a MHz line yield zero rows.
func (fs FS) CPUFreq() ([]sample.CPUFreq, error) {
	f, err := open(fs.procPath("cpuinfo"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCPUInfo(f)
}

// parseCPUInfo pairs each "processor" stanza with its "cpu MHz" line.
// Clocks are stored in hundredths of MHz.
func parseCPUInfo(r io.Reader) ([]sample.CPUFreq, error) {
	var rows []sample.CPUFreq
	cpu := -1

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			n, err := strconv.Atoi(value)
			if err != nil {
				continue
			}
			cpu = n
			for len(rows) <= cpu {
				rows = append(rows, sample.CPUFreq{})
			}
		case "cpu MHz":
			if cpu < 0 {
				continue
			}
			mhz, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}
			rows[cpu].Freq = uint64(math.Round(mhz * 100))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
