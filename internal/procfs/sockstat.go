// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// Sockstat reads /proc/net/sockstat.
func (fs FS) Sockstat() (*sample.Sock, error) {
	f, err := open(fs.procPath("net", "sockstat"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSockstat(f)
}

// Sockstat6 reads /proc/net/sockstat6. The file appears once the ipv6
// module is loaded; without it the result is nil.
func (fs FS) Sockstat6() (*sample.Sock6, error) {
	f, err := open(fs.procPath("net", "sockstat6"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSockstat6(f)
}

func parseSockstat(r io.Reader) (*sample.Sock, error) {
	sk := &sample.Sock{}
	err := scanSockstat(r, func(proto, name string, v uint32) {
		switch {
		case proto == "sockets" && name == "used":
			sk.Total = v
		case proto == "TCP" && name == "inuse":
			sk.TCPInUse = v
		case proto == "TCP" && name == "tw":
			sk.TCPTimeWait = v
		case proto == "UDP" && name == "inuse":
			sk.UDPInUse = v
		case proto == "RAW" && name == "inuse":
			sk.RawInUse = v
		case proto == "FRAG" && name == "inuse":
			sk.FragInUse = v
		}
	})
	if err != nil {
		return nil, err
	}
	return sk, nil
}

func parseSockstat6(r io.Reader) (*sample.Sock6, error) {
	sk := &sample.Sock6{}
	err := scanSockstat(r, func(proto, name string, v uint32) {
		if name != "inuse" {
			return
		}
		switch proto {
		case "TCP6":
			sk.TCPInUse = v
		case "UDP6":
			sk.UDPInUse = v
		case "RAW6":
			sk.RawInUse = v
		case "FRAG6":
			sk.FragInUse = v
		}
	})
	if err != nil {
		return nil, err
	}
	return sk, nil
}

// scanSockstat walks the name/value pairs following each protocol
// prefix and hands them to fn.
func scanSockstat(r io.Reader, fn func(proto, name string, v uint32)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || !strings.HasSuffix(fields[0], ":") {
			continue
		}
		proto := strings.TrimSuffix(fields[0], ":")
		for i := 1; i+1 < len(fields); i += 2 {
			fn(proto, fields[i], uint32(parseUintField(fields[i+1])))
		}
	}
	return scanner.Err()
}
