// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// NFSClient reads /proc/net/rpc/nfs. The file appears once the nfs
// module is loaded; without it the result is nil.
func (fs FS) NFSClient() (*sample.NFSClient, error) {
	f, err := open(fs.procPath("net", "rpc", "nfs"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseNFSClient(f)
}

// NFSServer reads /proc/net/rpc/nfsd. The file appears once the nfsd
// module is loaded; without it the result is nil.
func (fs FS) NFSServer() (*sample.NFSServer, error) {
	f, err := open(fs.procPath("net", "rpc", "nfsd"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseNFSServer(f)
}

func parseNFSClient(r io.Reader) (*sample.NFSClient, error) {
	nc := &sample.NFSClient{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		// Procedure lines carry a count followed by one counter per
		// procedure number. Version 3 and 4 calls both add up.
		vals := fields[2:]
		switch fields[0] {
		case "rpc":
			nc.RPCCalls = rpcValue(fields[1:], 0)
			nc.RPCRetrans = rpcValue(fields[1:], 1)
		case "proc3":
			nc.Getattrs += rpcValue(vals, 1)
			nc.Accesses += rpcValue(vals, 4)
			nc.Reads += rpcValue(vals, 6)
			nc.Writes += rpcValue(vals, 7)
		case "proc4":
			nc.Reads += rpcValue(vals, 1)
			nc.Writes += rpcValue(vals, 2)
			nc.Accesses += rpcValue(vals, 17)
			nc.Getattrs += rpcValue(vals, 18)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nc, nil
}

func parseNFSServer(r io.Reader) (*sample.NFSServer, error) {
	ns := &sample.NFSServer{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		vals := fields[2:]
		switch fields[0] {
		case "rc":
			ns.CacheHits = rpcValue(fields[1:], 0)
			ns.CacheMisses = rpcValue(fields[1:], 1)
		case "net":
			ns.NetPackets = rpcValue(fields[1:], 0)
			ns.NetUDP = rpcValue(fields[1:], 1)
			ns.NetTCP = rpcValue(fields[1:], 2)
		case "rpc":
			ns.RPCCalls = rpcValue(fields[1:], 0)
			ns.RPCBadCalls = rpcValue(fields[1:], 1)
		case "proc3":
			ns.Getattrs += rpcValue(vals, 1)
			ns.Accesses += rpcValue(vals, 4)
			ns.Reads += rpcValue(vals, 6)
			ns.Writes += rpcValue(vals, 7)
		case "proc4ops":
			// Indexed by NFSv4 operation number.
			ns.Accesses += rpcValue(vals, 3)
			ns.Getattrs += rpcValue(vals, 9)
			ns.Reads += rpcValue(vals, 25)
			ns.Writes += rpcValue(vals, 38)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ns, nil
}

// rpcValue picks counter i from a procedure line, zero when the line
// is too short for it.
func rpcValue(vals []string, i int) uint32 {
	if i >= len(vals) {
		return 0
	}
	return uint32(parseUintField(vals[i]))
}
