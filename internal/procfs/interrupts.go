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

// Interrupts reads /proc/interrupts. Each row carries the per-line
// total at Values[0] and one cell per header column after it. Rows
// that print fewer cells than the header (ERR, MIS) keep their missing
// columns zero. The synthetic "sum" row totaling all sources is the
// caller's to prepend.
func (fs FS) Interrupts() ([]sample.Interrupt, error) {
	f, err := open(fs.procPath("interrupts"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseInterrupts(f)
}

func parseInterrupts(r io.Reader) ([]sample.Interrupt, error) {
	var irqs []sample.Interrupt

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	header := scanner.Text()
	nCPU := strings.Count(header, "CPU")
	if nCPU == 0 {
		return nil, fmt.Errorf("unexpected interrupts header: %q", header)
	}

	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		name := strings.TrimSpace(line[:colon])
		if name == "" {
			continue
		}

		ir := sample.Interrupt{
			Name:   strings.Clone(name),
			Values: make([]uint32, nCPU+1),
		}

		rest := line[colon+1:]
		cell := 0
		for cell < nCPU {
			var pair [2]string
			if stringutil.FieldsN(rest, pair[:]) == 0 {
				break
			}
			v, err := strconv.ParseUint(pair[0], 10, 32)
			if err != nil {
				// The descriptive trailer starts here.
				break
			}
			ir.Values[cell+1] = uint32(v)
			ir.Values[0] += uint32(v)
			rest = pair[1]
			cell++
		}
		if cell == 0 {
			continue
		}
		irqs = append(irqs, ir)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return irqs, nil
}

// SumInterrupts builds the machine-wide row: the grand total at
// Values[0] and per-processor column sums after it.
func SumInterrupts(irqs []sample.Interrupt) sample.Interrupt {
	width := 0
	for i := range irqs {
		if len(irqs[i].Values) > width {
			width = len(irqs[i].Values)
		}
	}
	if width == 0 {
		width = 1
	}
	sum := sample.Interrupt{Name: "sum", Values: make([]uint32, width)}
	for i := range irqs {
		for j, v := range irqs[i].Values {
			sum.Values[j] += v
		}
	}
	return sum
}
