// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package hostinfo gathers the machine identity carried in archive
// headers: uname fields, processor count and the kernel clock tick.
package hostinfo // import "github.com/sysstat/sapcp/hostinfo"

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

// CPUPresentPath lists the processors this machine has sockets for, in
// the kernel's "0-7,9" range notation.
const CPUPresentPath = "/sys/devices/system/cpu/present"

// Info describes the recording machine.
type Info struct {
	CPUCount int
	Hertz    int64
	Sysname  string
	Release  string
	Nodename string
	Machine  string
}

// Collect reads the live machine's identity.
func Collect() (*Info, error) {
	uname := &unix.Utsname{}
	if err := unix.Uname(uname); err != nil {
		return nil, fmt.Errorf("error calling uname: %v", err)
	}

	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return nil, fmt.Errorf("error reading clock tick: %v", err)
	}

	cpus, err := PresentCPUs(CPUPresentPath)
	if err != nil {
		return nil, err
	}

	return &Info{
		CPUCount: cpus,
		Hertz:    hz,
		Sysname:  sanitizeString(uname.Sysname[:]),
		Release:  sanitizeString(uname.Release[:]),
		Nodename: sanitizeString(uname.Nodename[:]),
		Machine:  sanitizeString(uname.Machine[:]),
	}, nil
}

// PresentCPUs counts the processors listed in the range file at path.
func PresentCPUs(path string) (int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not read %s: %v", path, err)
	}
	cpus, err := readCPURange(string(buf))
	if err != nil {
		return 0, fmt.Errorf("could not parse %s: %v", path, err)
	}
	return len(cpus), nil
}

// readCPURange expands the kernel's comma-separated list of single
// values and first-last ranges.
func readCPURange(cpuRangeStr string) ([]int, error) {
	var cpus []int
	cpuRangeStr = strings.Trim(cpuRangeStr, "\n ")
	for _, cpuRange := range strings.Split(cpuRangeStr, ",") {
		rangeOp := strings.SplitN(cpuRange, "-", 2)
		first, err := strconv.ParseUint(rangeOp[0], 10, 32)
		if err != nil {
			return nil, err
		}
		if len(rangeOp) == 1 {
			cpus = append(cpus, int(first))
			continue
		}
		last, err := strconv.ParseUint(rangeOp[1], 10, 32)
		if err != nil {
			return nil, err
		}
		for n := first; n <= last; n++ {
			cpus = append(cpus, int(n))
		}
	}
	return cpus, nil
}

func sanitizeString(str []byte) string {
	// Trim byte array from 0x00 bytes
	return string(bytes.Trim(str, "\x00"))
}
