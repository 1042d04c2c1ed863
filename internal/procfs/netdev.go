// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// NetDev reads /proc/net/dev. Both slices are index-aligned, one row
// per interface in file order.
func (fs FS) NetDev() ([]sample.NetDev, []sample.NetDevErrors, error) {
	f, err := open(fs.procPath("net", "dev"))
	if f == nil || err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return parseNetDev(f)
}

func parseNetDev(r io.Reader) ([]sample.NetDev, []sample.NetDevErrors, error) {
	var devs []sample.NetDev
	var errs []sample.NetDevErrors

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		// The interface name is glued to the first counter when the
		// numbers grow wide, so split on the colon first.
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		iface := strings.TrimSpace(line[:colon])

		var fields [17]string
		nFields := stringutil.FieldsN(line[colon+1:], fields[:])
		if nFields < 16 {
			return nil, nil, fmt.Errorf("unexpected line in net/dev: %q", line)
		}

		devs = append(devs, sample.NetDev{
			Iface:        strings.Clone(iface),
			RxBytes:      parseUintField(fields[0]),
			RxPackets:    parseUintField(fields[1]),
			RxCompressed: parseUintField(fields[6]),
			Multicast:    parseUintField(fields[7]),
			TxBytes:      parseUintField(fields[8]),
			TxPackets:    parseUintField(fields[9]),
			TxCompressed: parseUintField(fields[15]),
		})
		errs = append(errs, sample.NetDevErrors{
			Iface:           strings.Clone(iface),
			RxErrors:        parseUintField(fields[2]),
			RxDropped:       parseUintField(fields[3]),
			RxFIFOErrors:    parseUintField(fields[4]),
			RxFrameErrors:   parseUintField(fields[5]),
			TxErrors:        parseUintField(fields[10]),
			TxDropped:       parseUintField(fields[11]),
			TxFIFOErrors:    parseUintField(fields[12]),
			Collisions:      parseUintField(fields[13]),
			TxCarrierErrors: parseUintField(fields[14]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return devs, errs, nil
}
