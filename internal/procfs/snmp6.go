// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// SNMP6 holds the IPv6 protocol counters of /proc/net/snmp6.
type SNMP6 struct {
	IP6         sample.IP6
	IP6Errors   sample.IP6Errors
	ICMP6       sample.ICMP6
	ICMP6Errors sample.ICMP6Errors
	UDP6        sample.UDP6
}

// SNMP6 reads /proc/net/snmp6. The file appears once the ipv6 module
// is loaded; without it the result is nil.
func (fs FS) SNMP6() (*SNMP6, error) {
	f, err := open(fs.procPath("net", "snmp6"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSNMP6(f)
}

// parseSNMP6 assigns the one-counter-per-line pairs. Counters the
// kernel adds or removes are ignored.
func parseSNMP6(r io.Reader) (*SNMP6, error) {
	s := &SNMP6{}
	dsts := map[string]*uint64{
		"Ip6InReceives":       &s.IP6.InReceives,
		"Ip6OutForwDatagrams": &s.IP6.OutForwDatagrams,
		"Ip6InDelivers":       &s.IP6.InDelivers,
		"Ip6OutRequests":      &s.IP6.OutRequests,
		"Ip6ReasmReqds":       &s.IP6.ReasmReqds,
		"Ip6ReasmOKs":         &s.IP6.ReasmOKs,
		"Ip6InMcastPkts":      &s.IP6.InMcastPkts,
		"Ip6OutMcastPkts":     &s.IP6.OutMcastPkts,
		"Ip6FragOKs":          &s.IP6.FragOKs,
		"Ip6FragCreates":      &s.IP6.FragCreates,

		"Ip6InHdrErrors":     &s.IP6Errors.InHdrErrors,
		"Ip6InAddrErrors":    &s.IP6Errors.InAddrErrors,
		"Ip6InUnknownProtos": &s.IP6Errors.InUnknownProtos,
		"Ip6InTooBigErrors":  &s.IP6Errors.InTooBigErrors,
		"Ip6InDiscards":      &s.IP6Errors.InDiscards,
		"Ip6OutDiscards":     &s.IP6Errors.OutDiscards,
		"Ip6InNoRoutes":      &s.IP6Errors.InNoRoutes,
		"Ip6OutNoRoutes":     &s.IP6Errors.OutNoRoutes,
		"Ip6ReasmFails":      &s.IP6Errors.ReasmFails,
		"Ip6FragFails":       &s.IP6Errors.FragFails,
		"Ip6InTruncatedPkts": &s.IP6Errors.InTruncatedPkts,

		"Icmp6InMsgs":                    &s.ICMP6.InMsgs,
		"Icmp6OutMsgs":                   &s.ICMP6.OutMsgs,
		"Icmp6InEchos":                   &s.ICMP6.InEchos,
		"Icmp6InEchoReplies":             &s.ICMP6.InEchoReplies,
		"Icmp6OutEchoReplies":            &s.ICMP6.OutEchoReplies,
		"Icmp6InGroupMembQueries":        &s.ICMP6.InGroupMembQueries,
		"Icmp6InGroupMembResponses":      &s.ICMP6.InGroupMembResponses,
		"Icmp6OutGroupMembResponses":     &s.ICMP6.OutGroupMembResponses,
		"Icmp6InGroupMembReductions":     &s.ICMP6.InGroupMembReductions,
		"Icmp6OutGroupMembReductions":    &s.ICMP6.OutGroupMembReductions,
		"Icmp6InRouterSolicits":          &s.ICMP6.InRouterSolicits,
		"Icmp6OutRouterSolicits":         &s.ICMP6.OutRouterSolicits,
		"Icmp6InRouterAdvertisements":    &s.ICMP6.InRouterAdvertisements,
		"Icmp6InNeighborSolicits":        &s.ICMP6.InNeighborSolicits,
		"Icmp6OutNeighborSolicits":       &s.ICMP6.OutNeighborSolicits,
		"Icmp6InNeighborAdvertisements":  &s.ICMP6.InNeighborAdvertisements,
		"Icmp6OutNeighborAdvertisements": &s.ICMP6.OutNeighborAdvertisements,

		"Icmp6InErrors":        &s.ICMP6Errors.InErrors,
		"Icmp6InDestUnreachs":  &s.ICMP6Errors.InDestUnreachs,
		"Icmp6OutDestUnreachs": &s.ICMP6Errors.OutDestUnreachs,
		"Icmp6InTimeExcds":     &s.ICMP6Errors.InTimeExcds,
		"Icmp6OutTimeExcds":    &s.ICMP6Errors.OutTimeExcds,
		"Icmp6InParmProblems":  &s.ICMP6Errors.InParmProblems,
		"Icmp6OutParmProblems": &s.ICMP6Errors.OutParmProblems,
		"Icmp6InRedirects":     &s.ICMP6Errors.InRedirects,
		"Icmp6OutRedirects":    &s.ICMP6Errors.OutRedirects,
		"Icmp6InPktTooBigs":    &s.ICMP6Errors.InPktTooBigs,
		"Icmp6OutPktTooBigs":   &s.ICMP6Errors.OutPktTooBigs,

		"Udp6InDatagrams":  &s.UDP6.InDatagrams,
		"Udp6OutDatagrams": &s.UDP6.OutDatagrams,
		"Udp6NoPorts":      &s.UDP6.NoPorts,
		"Udp6InErrors":     &s.UDP6.InErrors,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [2]string
		if stringutil.FieldsN(line, fields[:]) != 2 {
			continue
		}
		if dst, ok := dsts[fields[0]]; ok {
			*dst = parseUintField(fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
