// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// Serial reads the per-line counters from /proc/tty/driver/serial.
// The file needs root; without access the result is nil.
func (fs FS) Serial() ([]sample.Serial, error) {
	f, err := open(fs.procPath("tty", "driver", "serial"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSerial(f)
}

// parseSerial decodes rows of the form
//
//	2: uart:16550A port:000003E8 irq:4 tx:12 rx:5 fe:1 pe:0 brk:0 oe:2
//
// Lines without a probed uart are skipped.
func parseSerial(r io.Reader) ([]sample.Serial, error) {
	var lines []sample.Serial

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [16]string
		nFields := stringutil.FieldsN(text, fields[:])
		if nFields < 2 || !strings.HasSuffix(fields[0], ":") {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSuffix(fields[0], ":"), 10, 32)
		if err != nil {
			continue
		}
		if fields[1] == "uart:unknown" {
			continue
		}

		ser := sample.Serial{Line: uint32(n)}
		for _, field := range fields[1:nFields] {
			key, value, found := strings.Cut(field, ":")
			if !found {
				continue
			}
			var dst *uint32
			switch key {
			case "tx":
				dst = &ser.Tx
			case "rx":
				dst = &ser.Rx
			case "fe":
				dst = &ser.Frame
			case "pe":
				dst = &ser.Parity
			case "brk":
				dst = &ser.Break
			case "oe":
				dst = &ser.Overrun
			default:
				continue
			}
			*dst = uint32(parseUintField(value))
		}
		lines = append(lines, ser)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
