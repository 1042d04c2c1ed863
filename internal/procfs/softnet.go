// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// Softnet reads /proc/net/softnet_stat. The returned slice is indexed
// by processor number without a machine row; processors that printed
// no line stay zero.
func (fs FS) Softnet() ([]sample.Softnet, error) {
	f, err := open(fs.procPath("net", "softnet_stat"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSoftnet(f)
}

func parseSoftnet(r io.Reader) ([]sample.Softnet, error) {
	var rows []sample.Softnet

	pos := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [14]string
		nFields := stringutil.FieldsN(line, fields[:])
		if nFields == 0 {
			continue
		}
		if nFields < 10 {
			return nil, fmt.Errorf("unexpected line in softnet_stat: %q", line)
		}

		var sn sample.Softnet
		cols := [...]struct {
			dst *uint32
			idx int
		}{
			{&sn.Processed, 0},
			{&sn.Dropped, 1},
			{&sn.TimeSqueeze, 2},
			{&sn.ReceivedRPS, 9},
			{&sn.FlowLimit, 10},
			{&sn.BacklogLen, 11},
		}
		for _, c := range cols {
			if c.idx >= nFields {
				break
			}
			v, err := strconv.ParseUint(fields[c.idx], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("unexpected line in softnet_stat: %q", line)
			}
			*c.dst = uint32(v)
		}

		// Kernels from 5.10 print the owning processor in column 13;
		// before that the line position is the processor number and
		// offline processors leave no trace.
		cpu := pos
		if nFields >= 13 {
			v, err := strconv.ParseUint(fields[12], 16, 32)
			if err != nil {
				return nil, fmt.Errorf("unexpected line in softnet_stat: %q", line)
			}
			cpu = int(v)
		}
		for cpu >= len(rows) {
			rows = append(rows, sample.Softnet{})
		}
		rows[cpu] = sn
		pos++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
