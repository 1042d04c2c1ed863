// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// DiskStat is one /proc/diskstats row. The embedded record carries the
// per-device counters; the extra fields keep the per-operation I/O
// counts that only survive in the machine-wide totals.
type DiskStat struct {
	sample.Disk

	Reads    uint64
	Writes   uint64
	Discards uint64
}

// Diskstats reads /proc/diskstats. Rows keep the kernel device name;
// partitions are included and left for the caller to filter.
func (fs FS) Diskstats() ([]DiskStat, error) {
	f, err := open(fs.procPath("diskstats"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseDiskstats(f)
}

func parseDiskstats(r io.Reader) ([]DiskStat, error) {
	var disks []DiskStat

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [21]string
		nFields := stringutil.FieldsN(line, fields[:])
		if nFields == 0 {
			continue
		}
		// major minor name rd_ios rd_merges rd_sectors rd_ticks
		// wr_ios wr_merges wr_sectors wr_ticks in_flight io_ticks
		// rq_ticks, then four discard columns on 4.18+ kernels.
		if nFields < 14 {
			return nil, fmt.Errorf("unexpected line in diskstats: %q", line)
		}

		major, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("unexpected line in diskstats: %q", line)
		}
		minor, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("unexpected line in diskstats: %q", line)
		}

		d := DiskStat{
			Disk: sample.Disk{
				Major:        uint32(major),
				Minor:        uint32(minor),
				Name:         strings.Clone(fields[2]),
				ReadSectors:  parseUintField(fields[5]),
				ReadTicks:    parseUintField(fields[6]),
				WriteSectors: parseUintField(fields[9]),
				WriteTicks:   parseUintField(fields[10]),
				TotalTicks:   parseUintField(fields[12]),
				QueueTicks:   parseUintField(fields[13]),
			},
			Reads:  parseUintField(fields[3]),
			Writes: parseUintField(fields[7]),
		}
		if nFields >= 18 {
			d.Discards = parseUintField(fields[14])
			d.DiscardSectors = parseUintField(fields[16])
			d.DiscardTicks = parseUintField(fields[17])
		}
		d.IOs = d.Reads + d.Writes + d.Discards

		disks = append(disks, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return disks, nil
}
