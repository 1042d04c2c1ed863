// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readSysString reads a single-value sysfs attribute. The second
// result is false when the attribute does not exist or is unreadable.
func readSysString(dir, name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func readSysFloat(dir, name string) (float64, bool) {
	s, ok := readSysString(dir, name)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func readSysUint(dir, name string, base int) (uint64, bool) {
	s, ok := readSysString(dir, name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
