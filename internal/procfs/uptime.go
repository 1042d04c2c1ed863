// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/stringutil"
)

// Uptime reads the machine uptime in seconds from /proc/uptime.
func (fs FS) Uptime() (float64, error) {
	f, err := open(fs.procPath("uptime"))
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, fmt.Errorf("no uptime below %s", fs.proc)
	}
	defer f.Close()
	return parseUptime(f)
}

func parseUptime(r io.Reader) (float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	var fields [2]string
	if stringutil.FieldsN(strings.TrimSpace(string(data)), fields[:]) < 1 {
		return 0, fmt.Errorf("unexpected uptime content: %q", data)
	}
	up, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected uptime content: %q", data)
	}
	return up, nil
}
