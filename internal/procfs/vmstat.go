// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// Vmstat holds the paging and swapping counters of /proc/vmstat.
type Vmstat struct {
	Swap   sample.Swap
	Paging sample.Paging
}

// Vmstat reads /proc/vmstat.
func (fs FS) Vmstat() (*Vmstat, error) {
	f, err := open(fs.procPath("vmstat"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseVmstat(f)
}

func parseVmstat(r io.Reader) (*Vmstat, error) {
	vm := &Vmstat{}
	p := &vm.Paging

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [3]string
		if stringutil.FieldsN(line, fields[:]) < 2 {
			continue
		}
		key := fields[0]
		v := parseUintField(fields[1])

		switch key {
		case "pswpin":
			vm.Swap.PagesIn = v
		case "pswpout":
			vm.Swap.PagesOut = v
		case "pgpgin":
			p.PagedIn = v
		case "pgpgout":
			p.PagedOut = v
		case "pgfault":
			p.Faults = v
		case "pgmajfault":
			p.MajorFaults = v
		case "pgfree":
			p.Freed = v
		case "pgpromote_success":
			p.Promoted = v
		default:
			// Reclaim counters are split by origin and zone; the
			// groups only carry the totals.
			switch {
			case strings.HasPrefix(key, "pgscan_kswapd"):
				p.ScanKswapd += v
			case strings.HasPrefix(key, "pgscan_direct"):
				p.ScanDirect += v
			case strings.HasPrefix(key, "pgsteal_"):
				p.Stolen += v
			case strings.HasPrefix(key, "pgdemote_"):
				p.Demoted += v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vm, nil
}
