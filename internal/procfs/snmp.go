// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// SNMP holds the IPv4 protocol counters of /proc/net/snmp.
type SNMP struct {
	IP         sample.IP
	IPErrors   sample.IPErrors
	ICMP       sample.ICMP
	ICMPErrors sample.ICMPErrors
	TCP        sample.TCP
	TCPErrors  sample.TCPErrors
	UDP        sample.UDP
}

// SNMP reads /proc/net/snmp.
func (fs FS) SNMP() (*SNMP, error) {
	f, err := open(fs.procPath("net", "snmp"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSNMP(f)
}

// parseSNMP pairs each header line with its value line and assigns the
// named columns. Columns the kernel adds or removes are ignored.
func parseSNMP(r io.Reader) (*SNMP, error) {
	counters, err := scanNamedPairs(r)
	if err != nil {
		return nil, err
	}

	s := &SNMP{}
	for name, dst := range map[string]*uint64{
		"Ip.InReceives":    &s.IP.InReceives,
		"Ip.ForwDatagrams": &s.IP.ForwDatagrams,
		"Ip.InDelivers":    &s.IP.InDelivers,
		"Ip.OutRequests":   &s.IP.OutRequests,
		"Ip.ReasmReqds":    &s.IP.ReasmReqds,
		"Ip.ReasmOKs":      &s.IP.ReasmOKs,
		"Ip.FragOKs":       &s.IP.FragOKs,
		"Ip.FragCreates":   &s.IP.FragCreates,

		"Ip.InHdrErrors":     &s.IPErrors.InHdrErrors,
		"Ip.InAddrErrors":    &s.IPErrors.InAddrErrors,
		"Ip.InUnknownProtos": &s.IPErrors.InUnknownProtos,
		"Ip.InDiscards":      &s.IPErrors.InDiscards,
		"Ip.OutDiscards":     &s.IPErrors.OutDiscards,
		"Ip.OutNoRoutes":     &s.IPErrors.OutNoRoutes,
		"Ip.ReasmFails":      &s.IPErrors.ReasmFails,
		"Ip.FragFails":       &s.IPErrors.FragFails,

		"Icmp.InMsgs":           &s.ICMP.InMsgs,
		"Icmp.OutMsgs":          &s.ICMP.OutMsgs,
		"Icmp.InEchos":          &s.ICMP.InEchos,
		"Icmp.InEchoReps":       &s.ICMP.InEchoReps,
		"Icmp.OutEchos":         &s.ICMP.OutEchos,
		"Icmp.OutEchoReps":      &s.ICMP.OutEchoReps,
		"Icmp.InTimestamps":     &s.ICMP.InTimestamps,
		"Icmp.InTimestampReps":  &s.ICMP.InTimestampReps,
		"Icmp.OutTimestamps":    &s.ICMP.OutTimestamps,
		"Icmp.OutTimestampReps": &s.ICMP.OutTimestampReps,
		"Icmp.InAddrMasks":      &s.ICMP.InAddrMasks,
		"Icmp.InAddrMaskReps":   &s.ICMP.InAddrMaskReps,
		"Icmp.OutAddrMasks":     &s.ICMP.OutAddrMasks,
		"Icmp.OutAddrMaskReps":  &s.ICMP.OutAddrMaskReps,

		"Icmp.InErrors":        &s.ICMPErrors.InErrors,
		"Icmp.OutErrors":       &s.ICMPErrors.OutErrors,
		"Icmp.InDestUnreachs":  &s.ICMPErrors.InDestUnreachs,
		"Icmp.OutDestUnreachs": &s.ICMPErrors.OutDestUnreachs,
		"Icmp.InTimeExcds":     &s.ICMPErrors.InTimeExcds,
		"Icmp.OutTimeExcds":    &s.ICMPErrors.OutTimeExcds,
		"Icmp.InParmProbs":     &s.ICMPErrors.InParmProbs,
		"Icmp.OutParmProbs":    &s.ICMPErrors.OutParmProbs,
		"Icmp.InSrcQuenchs":    &s.ICMPErrors.InSrcQuenchs,
		"Icmp.OutSrcQuenchs":   &s.ICMPErrors.OutSrcQuenchs,
		"Icmp.InRedirects":     &s.ICMPErrors.InRedirects,
		"Icmp.OutRedirects":    &s.ICMPErrors.OutRedirects,

		"Tcp.ActiveOpens":  &s.TCP.ActiveOpens,
		"Tcp.PassiveOpens": &s.TCP.PassiveOpens,
		"Tcp.InSegs":       &s.TCP.InSegs,
		"Tcp.OutSegs":      &s.TCP.OutSegs,

		"Tcp.AttemptFails": &s.TCPErrors.AttemptFails,
		"Tcp.EstabResets":  &s.TCPErrors.EstabResets,
		"Tcp.RetransSegs":  &s.TCPErrors.RetransSegs,
		"Tcp.InErrs":       &s.TCPErrors.InErrs,
		"Tcp.OutRsts":      &s.TCPErrors.OutRsts,

		"Udp.InDatagrams":  &s.UDP.InDatagrams,
		"Udp.OutDatagrams": &s.UDP.OutDatagrams,
		"Udp.NoPorts":      &s.UDP.NoPorts,
		"Udp.InErrors":     &s.UDP.InErrors,
	} {
		if v, ok := counters[name]; ok {
			*dst = v
		}
	}
	return s, nil
}

// scanNamedPairs flattens the header/value line pairs into a
// "Prefix.Column" map.
func scanNamedPairs(r io.Reader) (map[string]uint64, error) {
	counters := map[string]uint64{}
	headers := map[string][]string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.HasSuffix(fields[0], ":") {
			continue
		}
		prefix := strings.TrimSuffix(fields[0], ":")

		names, seen := headers[prefix]
		if !seen {
			headers[prefix] = fields[1:]
			continue
		}
		if len(fields)-1 != len(names) {
			return nil, fmt.Errorf("mismatched %s counter line: %q", prefix, line)
		}
		for i, name := range names {
			counters[prefix+"."+name] = parseUintField(fields[1+i])
		}
		delete(headers, prefix)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return counters, nil
}
