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

// Stat holds everything /proc/stat contributes to a cycle. CPUs is
// indexed like the processor tables of a snapshot: the machine row at
// 0, processor n at n+1. Offline processors leave zero rows.
type Stat struct {
	CPUs            []sample.CPU
	ContextSwitches uint64
	Forks           uint64
	Running         uint64
	Blocked         uint64
	IntrTotal       uint64
	BootTime        uint64
}

// Stat reads /proc/stat.
func (fs FS) Stat() (*Stat, error) {
	f, err := open(fs.procPath("stat"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseStat(f)
}

func parseStat(r io.Reader) (*Stat, error) {
	st := &Stat{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [12]string
		nFields := stringutil.FieldsN(line, fields[:])
		if nFields < 2 {
			continue
		}

		switch key := fields[0]; {
		case key == "cpu":
			row, err := parseCPURow(fields[1:nFields])
			if err != nil {
				return nil, fmt.Errorf("unexpected cpu line in stat: %q", line)
			}
			st.setCPU(0, row)
		case strings.HasPrefix(key, "cpu"):
			n, err := strconv.Atoi(key[3:])
			if err != nil {
				return nil, fmt.Errorf("unexpected cpu line in stat: %q", line)
			}
			row, err := parseCPURow(fields[1:nFields])
			if err != nil {
				return nil, fmt.Errorf("unexpected cpu line in stat: %q", line)
			}
			st.setCPU(n+1, row)
		case key == "intr":
			v, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("unexpected intr line in stat: %q", line)
			}
			st.IntrTotal = v
		case key == "ctxt":
			st.ContextSwitches = parseUintField(fields[1])
		case key == "btime":
			st.BootTime = parseUintField(fields[1])
		case key == "processes":
			st.Forks = parseUintField(fields[1])
		case key == "procs_running":
			st.Running = parseUintField(fields[1])
		case key == "procs_blocked":
			st.Blocked = parseUintField(fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *Stat) setCPU(idx int, row sample.CPU) {
	for idx >= len(st.CPUs) {
		st.CPUs = append(st.CPUs, sample.CPU{})
	}
	st.CPUs[idx] = row
}

// parseCPURow decodes the jiffie columns of one cpu line. Old kernels
// print fewer columns; missing ones stay zero.
func parseCPURow(cols []string) (sample.CPU, error) {
	var row sample.CPU
	dst := [...]*uint64{
		&row.User, &row.Nice, &row.Sys, &row.Idle, &row.Iowait,
		&row.HardIRQ, &row.SoftIRQ, &row.Steal, &row.Guest, &row.GuestNice,
	}
	if len(cols) > len(dst) {
		cols = cols[:len(dst)]
	}
	for i, col := range cols {
		v, err := strconv.ParseUint(col, 10, 64)
		if err != nil {
			return sample.CPU{}, err
		}
		*dst[i] = v
	}
	return row, nil
}

// parseUintField decodes a decimal counter; garbage reads as zero.
func parseUintField(s string) uint64 {
	v, _ := strconv.ParseUint(s, 10, 64)
	return v
}
