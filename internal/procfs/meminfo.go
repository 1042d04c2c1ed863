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

// Meminfo holds the memory and huge page gauges of /proc/meminfo.
type Meminfo struct {
	Memory sample.Memory
	Huge   sample.Huge
}

// Meminfo reads /proc/meminfo.
func (fs FS) Meminfo() (*Meminfo, error) {
	f, err := open(fs.procPath("meminfo"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMeminfo(f)
}

func parseMeminfo(r io.Reader) (*Meminfo, error) {
	mi := &Meminfo{}
	m := &mi.Memory

	// Huge page counts are in pages; the size line converts them to KB
	// once the whole file is read.
	var hugeTotal, hugeFree, hugeRsvd, hugeSurp, hugeSizeKB uint64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [3]string
		if stringutil.FieldsN(line, fields[:]) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		v := parseUintField(fields[1])

		switch key {
		case "MemTotal":
			m.TotalKB = v
		case "MemFree":
			m.FreeKB = v
		case "MemAvailable":
			m.AvailableKB = v
		case "Buffers":
			m.BuffersKB = v
		case "Cached":
			m.CachedKB = v
		case "SwapCached":
			m.SwapCachedKB = v
		case "Active":
			m.ActiveKB = v
		case "Inactive":
			m.InactiveKB = v
		case "SwapTotal":
			m.SwapTotalKB = v
		case "SwapFree":
			m.SwapFreeKB = v
		case "Dirty":
			m.DirtyKB = v
		case "AnonPages":
			m.AnonPagesKB = v
		case "Slab":
			m.SlabKB = v
		case "KernelStack":
			m.KernelStackKB = v
		case "PageTables":
			m.PageTablesKB = v
		case "VmallocUsed":
			m.VmallocUsedKB = v
		case "Committed_AS":
			m.CommittedKB = v
		case "HugePages_Total":
			hugeTotal = v
		case "HugePages_Free":
			hugeFree = v
		case "HugePages_Rsvd":
			hugeRsvd = v
		case "HugePages_Surp":
			hugeSurp = v
		case "Hugepagesize":
			hugeSizeKB = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	mi.Huge = sample.Huge{
		TotalKB:    hugeTotal * hugeSizeKB,
		FreeKB:     hugeFree * hugeSizeKB,
		ReservedKB: hugeRsvd * hugeSizeKB,
		SurplusKB:  hugeSurp * hugeSizeKB,
	}
	return mi, nil
}
