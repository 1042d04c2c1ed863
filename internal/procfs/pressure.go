// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// psiLine holds one decoded "some" or "full" line of a pressure file.
type psiLine struct {
	avg10  uint32
	avg60  uint32
	avg300 uint32
	total  uint64
}

// PSICPU reads /proc/pressure/cpu. Kernels without CONFIG_PSI have no
// pressure directory and the result is nil.
func (fs FS) PSICPU() (*sample.PSICPU, error) {
	some, _, err := fs.pressure("cpu")
	if some == nil || err != nil {
		return nil, err
	}
	return &sample.PSICPU{
		SomeAvg10:  some.avg10,
		SomeAvg60:  some.avg60,
		SomeAvg300: some.avg300,
		SomeTotal:  some.total,
	}, nil
}

// PSIIO reads /proc/pressure/io.
func (fs FS) PSIIO() (*sample.PSIIO, error) {
	some, full, err := fs.pressure("io")
	if some == nil || err != nil {
		return nil, err
	}
	p := &sample.PSIIO{
		SomeAvg10:  some.avg10,
		SomeAvg60:  some.avg60,
		SomeAvg300: some.avg300,
		SomeTotal:  some.total,
	}
	if full != nil {
		p.FullAvg10 = full.avg10
		p.FullAvg60 = full.avg60
		p.FullAvg300 = full.avg300
		p.FullTotal = full.total
	}
	return p, nil
}

// PSIMem reads /proc/pressure/memory.
func (fs FS) PSIMem() (*sample.PSIMem, error) {
	some, full, err := fs.pressure("memory")
	if some == nil || err != nil {
		return nil, err
	}
	p := &sample.PSIMem{
		SomeAvg10:  some.avg10,
		SomeAvg60:  some.avg60,
		SomeAvg300: some.avg300,
		SomeTotal:  some.total,
	}
	if full != nil {
		p.FullAvg10 = full.avg10
		p.FullAvg60 = full.avg60
		p.FullAvg300 = full.avg300
		p.FullTotal = full.total
	}
	return p, nil
}

func (fs FS) pressure(resource string) (some, full *psiLine, err error) {
	f, err := open(fs.procPath("pressure", resource))
	if f == nil || err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return parsePressure(f)
}

// parsePressure decodes the "some avg10=0.00 avg60=0.00 avg300=0.00
// total=0" lines. Averages keep the hundredths resolution they are
// printed with.
func parsePressure(r io.Reader) (some, full *psiLine, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 1 {
			continue
		}
		var dst *psiLine
		switch fields[0] {
		case "some":
			some = &psiLine{}
			dst = some
		case "full":
			full = &psiLine{}
			dst = full
		default:
			continue
		}
		for _, field := range fields[1:] {
			name, value, found := strings.Cut(field, "=")
			if !found {
				continue
			}
			switch name {
			case "avg10":
				dst.avg10, err = parseHundredths(value)
			case "avg60":
				dst.avg60, err = parseHundredths(value)
			case "avg300":
				dst.avg300, err = parseHundredths(value)
			case "total":
				dst.total = parseUintField(value)
			}
			if err != nil {
				return nil, nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return some, full, nil
}
