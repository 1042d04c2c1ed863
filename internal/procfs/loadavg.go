// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// LoadAvg reads /proc/loadavg. Blocked is not part of the file and is
// left zero for the caller to fill from /proc/stat.
func (fs FS) LoadAvg() (*sample.Queue, error) {
	f, err := open(fs.procPath("loadavg"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseLoadAvg(f)
}

func parseLoadAvg(r io.Reader) (*sample.Queue, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	line := string(buf)

	var fields [6]string
	if stringutil.FieldsN(line, fields[:5]) < 4 {
		return nil, fmt.Errorf("unexpected loadavg content: %q", line)
	}

	q := &sample.Queue{}
	if q.LoadAvg1, err = parseHundredths(fields[0]); err != nil {
		return nil, fmt.Errorf("unexpected load average: %q", fields[0])
	}
	if q.LoadAvg5, err = parseHundredths(fields[1]); err != nil {
		return nil, fmt.Errorf("unexpected load average: %q", fields[1])
	}
	if q.LoadAvg15, err = parseHundredths(fields[2]); err != nil {
		return nil, fmt.Errorf("unexpected load average: %q", fields[2])
	}

	var parts [2]string
	if stringutil.SplitN(fields[3], "/", parts[:]) != 2 {
		return nil, fmt.Errorf("unexpected task counts: %q", fields[3])
	}
	running, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected task counts: %q", fields[3])
	}
	threads, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected task counts: %q", fields[3])
	}
	// The reading process itself counts as runnable.
	if running > 0 {
		running--
	}
	q.Running = running
	q.Threads = threads
	return q, nil
}

// parseHundredths decodes a decimal fraction into hundredths, rounding
// to nearest.
func parseHundredths(s string) (uint32, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return uint32(math.Round(f * 100)), nil
}
