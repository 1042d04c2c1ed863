// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// scalarBinding emits one record field under the group metric at idx.
type scalarBinding[T any] struct {
	idx  int
	text func(*T) string
}

// scalarGroup binds a flat record type to its activity group: where
// the record sits in a snapshot and which metric receives each field.
type scalarGroup[T any] struct {
	act   registry.Activity
	rec   func(*sample.Snapshot) *T
	binds []scalarBinding[T]
}

// write emits every bound field of the group's record, skipping the
// group when the snapshot carries no record for it.
func (g scalarGroup[T]) write(s *Session, snap *sample.Snapshot) error {
	r := g.rec(snap)
	if r == nil {
		return nil
	}
	for _, b := range g.binds {
		if err := s.put(g.act, b.idx, "", b.text(r)); err != nil {
			return err
		}
	}
	return nil
}

var pcswGroup = scalarGroup[sample.PCSW]{
	act: registry.PCSW,
	rec: func(sn *sample.Snapshot) *sample.PCSW { return sn.PCSW },
	binds: []scalarBinding[sample.PCSW]{
		{registry.PCSWContextSwitch, func(r *sample.PCSW) string { return utoa(r.ContextSwitches) }},
		{registry.PCSWForkSyscalls, func(r *sample.PCSW) string { return utoa(r.Forks) }},
	},
}

var swapGroup = scalarGroup[sample.Swap]{
	act: registry.Swap,
	rec: func(sn *sample.Snapshot) *sample.Swap { return sn.Swap },
	binds: []scalarBinding[sample.Swap]{
		{registry.SwapPagesIn, func(r *sample.Swap) string { return utoa(r.PagesIn) }},
		{registry.SwapPagesOut, func(r *sample.Swap) string { return utoa(r.PagesOut) }},
	},
}

var pagingGroup = scalarGroup[sample.Paging]{
	act: registry.Paging,
	rec: func(sn *sample.Snapshot) *sample.Paging { return sn.Paging },
	binds: []scalarBinding[sample.Paging]{
		{registry.PagingPgPgIn, func(r *sample.Paging) string { return utoa(r.PagedIn) }},
		{registry.PagingPgPgOut, func(r *sample.Paging) string { return utoa(r.PagedOut) }},
		{registry.PagingPgFault, func(r *sample.Paging) string { return utoa(r.Faults) }},
		{registry.PagingPgMajFault, func(r *sample.Paging) string { return utoa(r.MajorFaults) }},
		{registry.PagingPgFree, func(r *sample.Paging) string { return utoa(r.Freed) }},
		{registry.PagingPgScanDirect, func(r *sample.Paging) string { return utoa(r.ScanDirect) }},
		{registry.PagingPgScanKswapd, func(r *sample.Paging) string { return utoa(r.ScanKswapd) }},
		{registry.PagingPgSteal, func(r *sample.Paging) string { return utoa(r.Stolen) }},
		{registry.PagingPgDemote, func(r *sample.Paging) string { return utoa(r.Demoted) }},
		{registry.PagingPgPromote, func(r *sample.Paging) string { return utoa(r.Promoted) }},
	},
}

// Byte totals in the transfer record count 512 byte sectors; the
// published metrics are kilobytes.
var ioGroup = scalarGroup[sample.IO]{
	act: registry.IO,
	rec: func(sn *sample.Snapshot) *sample.IO { return sn.IO },
	binds: []scalarBinding[sample.IO]{
		{registry.IOAllDevTotal, func(r *sample.IO) string { return utoa(r.Transfers) }},
		{registry.IOAllDevRead, func(r *sample.IO) string { return utoa(r.Reads) }},
		{registry.IOAllDevWrite, func(r *sample.IO) string { return utoa(r.Writes) }},
		{registry.IOAllDevDiscard, func(r *sample.IO) string { return utoa(r.Discards) }},
		{registry.IOAllDevReadBytes, func(r *sample.IO) string { return utoa(r.ReadUnits / 2) }},
		{registry.IOAllDevWriteBytes, func(r *sample.IO) string { return utoa(r.WriteUnits / 2) }},
		{registry.IOAllDevDiscardBytes, func(r *sample.IO) string { return utoa(r.DiscardUnits / 2) }},
	},
}

var ktablesGroup = scalarGroup[sample.KTables]{
	act: registry.KTables,
	rec: func(sn *sample.Snapshot) *sample.KTables { return sn.KTables },
	binds: []scalarBinding[sample.KTables]{
		{registry.KTableDentries, func(r *sample.KTables) string { return utoa(r.Dentries) }},
		{registry.KTableFiles, func(r *sample.KTables) string { return utoa(r.Files) }},
		{registry.KTableInodes, func(r *sample.KTables) string { return utoa(r.Inodes) }},
		{registry.KTablePTYs, func(r *sample.KTables) string { return utoa(r.PTYs) }},
	},
}

var sockGroup = scalarGroup[sample.Sock]{
	act: registry.Sock,
	rec: func(sn *sample.Snapshot) *sample.Sock { return sn.Sock },
	binds: []scalarBinding[sample.Sock]{
		{registry.SocketTotal, func(r *sample.Sock) string { return utoa(r.Total) }},
		{registry.SocketTCPInUse, func(r *sample.Sock) string { return utoa(r.TCPInUse) }},
		{registry.SocketUDPInUse, func(r *sample.Sock) string { return utoa(r.UDPInUse) }},
		{registry.SocketRawInUse, func(r *sample.Sock) string { return utoa(r.RawInUse) }},
		{registry.SocketFragInUse, func(r *sample.Sock) string { return utoa(r.FragInUse) }},
		{registry.SocketTCPTw, func(r *sample.Sock) string { return utoa(r.TCPTimeWait) }},
	},
}

var ipGroup = scalarGroup[sample.IP]{
	act: registry.IP,
	rec: func(sn *sample.Snapshot) *sample.IP { return sn.IP },
	binds: []scalarBinding[sample.IP]{
		{registry.NetIPInReceives, func(r *sample.IP) string { return utoa(r.InReceives) }},
		{registry.NetIPForwDatagrams, func(r *sample.IP) string { return utoa(r.ForwDatagrams) }},
		{registry.NetIPInDelivers, func(r *sample.IP) string { return utoa(r.InDelivers) }},
		{registry.NetIPOutRequests, func(r *sample.IP) string { return utoa(r.OutRequests) }},
		{registry.NetIPReasmReqds, func(r *sample.IP) string { return utoa(r.ReasmReqds) }},
		{registry.NetIPReasmOKs, func(r *sample.IP) string { return utoa(r.ReasmOKs) }},
		{registry.NetIPFragOKs, func(r *sample.IP) string { return utoa(r.FragOKs) }},
		{registry.NetIPFragCreates, func(r *sample.IP) string { return utoa(r.FragCreates) }},
	},
}

var ipErrGroup = scalarGroup[sample.IPErrors]{
	act: registry.IPErrors,
	rec: func(sn *sample.Snapshot) *sample.IPErrors { return sn.IPErrors },
	binds: []scalarBinding[sample.IPErrors]{
		{registry.NetEIPInHdrErrors, func(r *sample.IPErrors) string { return utoa(r.InHdrErrors) }},
		{registry.NetEIPInAddrErrors, func(r *sample.IPErrors) string { return utoa(r.InAddrErrors) }},
		{registry.NetEIPInUnknownProtos, func(r *sample.IPErrors) string { return utoa(r.InUnknownProtos) }},
		{registry.NetEIPInDiscards, func(r *sample.IPErrors) string { return utoa(r.InDiscards) }},
		{registry.NetEIPOutDiscards, func(r *sample.IPErrors) string { return utoa(r.OutDiscards) }},
		{registry.NetEIPOutNoRoutes, func(r *sample.IPErrors) string { return utoa(r.OutNoRoutes) }},
		{registry.NetEIPReasmFails, func(r *sample.IPErrors) string { return utoa(r.ReasmFails) }},
		{registry.NetEIPFragFails, func(r *sample.IPErrors) string { return utoa(r.FragFails) }},
	},
}

var icmpGroup = scalarGroup[sample.ICMP]{
	act: registry.ICMP,
	rec: func(sn *sample.Snapshot) *sample.ICMP { return sn.ICMP },
	binds: []scalarBinding[sample.ICMP]{
		{registry.NetICMPInMsgs, func(r *sample.ICMP) string { return utoa(r.InMsgs) }},
		{registry.NetICMPOutMsgs, func(r *sample.ICMP) string { return utoa(r.OutMsgs) }},
		{registry.NetICMPInEchos, func(r *sample.ICMP) string { return utoa(r.InEchos) }},
		{registry.NetICMPInEchoReps, func(r *sample.ICMP) string { return utoa(r.InEchoReps) }},
		{registry.NetICMPOutEchos, func(r *sample.ICMP) string { return utoa(r.OutEchos) }},
		{registry.NetICMPOutEchoReps, func(r *sample.ICMP) string { return utoa(r.OutEchoReps) }},
		{registry.NetICMPInTimestamps, func(r *sample.ICMP) string { return utoa(r.InTimestamps) }},
		{registry.NetICMPInTimestampReps, func(r *sample.ICMP) string { return utoa(r.InTimestampReps) }},
		{registry.NetICMPOutTimestamps, func(r *sample.ICMP) string { return utoa(r.OutTimestamps) }},
		{registry.NetICMPOutTimestampReps, func(r *sample.ICMP) string { return utoa(r.OutTimestampReps) }},
		{registry.NetICMPInAddrMasks, func(r *sample.ICMP) string { return utoa(r.InAddrMasks) }},
		{registry.NetICMPInAddrMaskReps, func(r *sample.ICMP) string { return utoa(r.InAddrMaskReps) }},
		{registry.NetICMPOutAddrMasks, func(r *sample.ICMP) string { return utoa(r.OutAddrMasks) }},
		{registry.NetICMPOutAddrMaskReps, func(r *sample.ICMP) string { return utoa(r.OutAddrMaskReps) }},
	},
}

var icmpErrGroup = scalarGroup[sample.ICMPErrors]{
	act: registry.ICMPErrors,
	rec: func(sn *sample.Snapshot) *sample.ICMPErrors { return sn.ICMPErrors },
	binds: []scalarBinding[sample.ICMPErrors]{
		{registry.NetEICMPInErrors, func(r *sample.ICMPErrors) string { return utoa(r.InErrors) }},
		{registry.NetEICMPOutErrors, func(r *sample.ICMPErrors) string { return utoa(r.OutErrors) }},
		{registry.NetEICMPInDestUnreachs, func(r *sample.ICMPErrors) string { return utoa(r.InDestUnreachs) }},
		{registry.NetEICMPOutDestUnreachs, func(r *sample.ICMPErrors) string { return utoa(r.OutDestUnreachs) }},
		{registry.NetEICMPInTimeExcds, func(r *sample.ICMPErrors) string { return utoa(r.InTimeExcds) }},
		{registry.NetEICMPOutTimeExcds, func(r *sample.ICMPErrors) string { return utoa(r.OutTimeExcds) }},
		{registry.NetEICMPInParmProbs, func(r *sample.ICMPErrors) string { return utoa(r.InParmProbs) }},
		{registry.NetEICMPOutParmProbs, func(r *sample.ICMPErrors) string { return utoa(r.OutParmProbs) }},
		{registry.NetEICMPInSrcQuenchs, func(r *sample.ICMPErrors) string { return utoa(r.InSrcQuenchs) }},
		{registry.NetEICMPOutSrcQuenchs, func(r *sample.ICMPErrors) string { return utoa(r.OutSrcQuenchs) }},
		{registry.NetEICMPInRedirects, func(r *sample.ICMPErrors) string { return utoa(r.InRedirects) }},
		{registry.NetEICMPOutRedirects, func(r *sample.ICMPErrors) string { return utoa(r.OutRedirects) }},
	},
}

var tcpGroup = scalarGroup[sample.TCP]{
	act: registry.TCP,
	rec: func(sn *sample.Snapshot) *sample.TCP { return sn.TCP },
	binds: []scalarBinding[sample.TCP]{
		{registry.NetTCPActiveOpens, func(r *sample.TCP) string { return utoa(r.ActiveOpens) }},
		{registry.NetTCPPassiveOpens, func(r *sample.TCP) string { return utoa(r.PassiveOpens) }},
		{registry.NetTCPInSegs, func(r *sample.TCP) string { return utoa(r.InSegs) }},
		{registry.NetTCPOutSegs, func(r *sample.TCP) string { return utoa(r.OutSegs) }},
	},
}

var tcpErrGroup = scalarGroup[sample.TCPErrors]{
	act: registry.TCPErrors,
	rec: func(sn *sample.Snapshot) *sample.TCPErrors { return sn.TCPErrors },
	binds: []scalarBinding[sample.TCPErrors]{
		{registry.NetETCPAttemptFails, func(r *sample.TCPErrors) string { return utoa(r.AttemptFails) }},
		{registry.NetETCPEstabResets, func(r *sample.TCPErrors) string { return utoa(r.EstabResets) }},
		{registry.NetETCPRetransSegs, func(r *sample.TCPErrors) string { return utoa(r.RetransSegs) }},
		{registry.NetETCPInErrs, func(r *sample.TCPErrors) string { return utoa(r.InErrs) }},
		{registry.NetETCPOutRsts, func(r *sample.TCPErrors) string { return utoa(r.OutRsts) }},
	},
}

var udpGroup = scalarGroup[sample.UDP]{
	act: registry.UDP,
	rec: func(sn *sample.Snapshot) *sample.UDP { return sn.UDP },
	binds: []scalarBinding[sample.UDP]{
		{registry.NetUDPInDatagrams, func(r *sample.UDP) string { return utoa(r.InDatagrams) }},
		{registry.NetUDPOutDatagrams, func(r *sample.UDP) string { return utoa(r.OutDatagrams) }},
		{registry.NetUDPNoPorts, func(r *sample.UDP) string { return utoa(r.NoPorts) }},
		{registry.NetUDPInErrors, func(r *sample.UDP) string { return utoa(r.InErrors) }},
	},
}

var sock6Group = scalarGroup[sample.Sock6]{
	act: registry.Sock6,
	rec: func(sn *sample.Snapshot) *sample.Sock6 { return sn.Sock6 },
	binds: []scalarBinding[sample.Sock6]{
		{registry.NetSock6TCPInUse, func(r *sample.Sock6) string { return utoa(r.TCPInUse) }},
		{registry.NetSock6UDPInUse, func(r *sample.Sock6) string { return utoa(r.UDPInUse) }},
		{registry.NetSock6RawInUse, func(r *sample.Sock6) string { return utoa(r.RawInUse) }},
		{registry.NetSock6FragInUse, func(r *sample.Sock6) string { return utoa(r.FragInUse) }},
	},
}

var ip6Group = scalarGroup[sample.IP6]{
	act: registry.IP6,
	rec: func(sn *sample.Snapshot) *sample.IP6 { return sn.IP6 },
	binds: []scalarBinding[sample.IP6]{
		{registry.NetIP6InReceives, func(r *sample.IP6) string { return utoa(r.InReceives) }},
		{registry.NetIP6OutForwDatagrams, func(r *sample.IP6) string { return utoa(r.OutForwDatagrams) }},
		{registry.NetIP6InDelivers, func(r *sample.IP6) string { return utoa(r.InDelivers) }},
		{registry.NetIP6OutRequests, func(r *sample.IP6) string { return utoa(r.OutRequests) }},
		{registry.NetIP6ReasmReqds, func(r *sample.IP6) string { return utoa(r.ReasmReqds) }},
		{registry.NetIP6ReasmOKs, func(r *sample.IP6) string { return utoa(r.ReasmOKs) }},
		{registry.NetIP6InMcastPkts, func(r *sample.IP6) string { return utoa(r.InMcastPkts) }},
		{registry.NetIP6OutMcastPkts, func(r *sample.IP6) string { return utoa(r.OutMcastPkts) }},
		{registry.NetIP6FragOKs, func(r *sample.IP6) string { return utoa(r.FragOKs) }},
		{registry.NetIP6FragCreates, func(r *sample.IP6) string { return utoa(r.FragCreates) }},
	},
}

var ip6ErrGroup = scalarGroup[sample.IP6Errors]{
	act: registry.IP6Errors,
	rec: func(sn *sample.Snapshot) *sample.IP6Errors { return sn.IP6Errors },
	binds: []scalarBinding[sample.IP6Errors]{
		{registry.NetEIP6InHdrErrors, func(r *sample.IP6Errors) string { return utoa(r.InHdrErrors) }},
		{registry.NetEIP6InAddrErrors, func(r *sample.IP6Errors) string { return utoa(r.InAddrErrors) }},
		{registry.NetEIP6InUnknownProtos, func(r *sample.IP6Errors) string { return utoa(r.InUnknownProtos) }},
		{registry.NetEIP6InTooBigErrors, func(r *sample.IP6Errors) string { return utoa(r.InTooBigErrors) }},
		{registry.NetEIP6InDiscards, func(r *sample.IP6Errors) string { return utoa(r.InDiscards) }},
		{registry.NetEIP6OutDiscards, func(r *sample.IP6Errors) string { return utoa(r.OutDiscards) }},
		{registry.NetEIP6InNoRoutes, func(r *sample.IP6Errors) string { return utoa(r.InNoRoutes) }},
		{registry.NetEIP6OutNoRoutes, func(r *sample.IP6Errors) string { return utoa(r.OutNoRoutes) }},
		{registry.NetEIP6ReasmFails, func(r *sample.IP6Errors) string { return utoa(r.ReasmFails) }},
		{registry.NetEIP6FragFails, func(r *sample.IP6Errors) string { return utoa(r.FragFails) }},
		{registry.NetEIP6InTruncatedPkts, func(r *sample.IP6Errors) string { return utoa(r.InTruncatedPkts) }},
	},
}

var icmp6Group = scalarGroup[sample.ICMP6]{
	act: registry.ICMP6,
	rec: func(sn *sample.Snapshot) *sample.ICMP6 { return sn.ICMP6 },
	binds: []scalarBinding[sample.ICMP6]{
		{registry.NetICMP6InMsgs, func(r *sample.ICMP6) string { return utoa(r.InMsgs) }},
		{registry.NetICMP6OutMsgs, func(r *sample.ICMP6) string { return utoa(r.OutMsgs) }},
		{registry.NetICMP6InEchos, func(r *sample.ICMP6) string { return utoa(r.InEchos) }},
		{registry.NetICMP6InEchoReplies, func(r *sample.ICMP6) string { return utoa(r.InEchoReplies) }},
		{registry.NetICMP6OutEchoReplies, func(r *sample.ICMP6) string { return utoa(r.OutEchoReplies) }},
		{registry.NetICMP6InGroupMembQueries, func(r *sample.ICMP6) string { return utoa(r.InGroupMembQueries) }},
		{registry.NetICMP6InGroupMembResponses, func(r *sample.ICMP6) string { return utoa(r.InGroupMembResponses) }},
		{registry.NetICMP6OutGroupMembResponses, func(r *sample.ICMP6) string { return utoa(r.OutGroupMembResponses) }},
		{registry.NetICMP6InGroupMembReductions, func(r *sample.ICMP6) string { return utoa(r.InGroupMembReductions) }},
		{registry.NetICMP6OutGroupMembReductions, func(r *sample.ICMP6) string { return utoa(r.OutGroupMembReductions) }},
		{registry.NetICMP6InRouterSolicits, func(r *sample.ICMP6) string { return utoa(r.InRouterSolicits) }},
		{registry.NetICMP6OutRouterSolicits, func(r *sample.ICMP6) string { return utoa(r.OutRouterSolicits) }},
		{registry.NetICMP6InRouterAdvertisements, func(r *sample.ICMP6) string { return utoa(r.InRouterAdvertisements) }},
		{registry.NetICMP6InNeighborSolicits, func(r *sample.ICMP6) string { return utoa(r.InNeighborSolicits) }},
		{registry.NetICMP6OutNeighborSolicits, func(r *sample.ICMP6) string { return utoa(r.OutNeighborSolicits) }},
		{registry.NetICMP6InNeighborAdvertisements, func(r *sample.ICMP6) string { return utoa(r.InNeighborAdvertisements) }},
		{registry.NetICMP6OutNeighborAdvertisements, func(r *sample.ICMP6) string { return utoa(r.OutNeighborAdvertisements) }},
	},
}

var icmp6ErrGroup = scalarGroup[sample.ICMP6Errors]{
	act: registry.ICMP6Errors,
	rec: func(sn *sample.Snapshot) *sample.ICMP6Errors { return sn.ICMP6Errors },
	binds: []scalarBinding[sample.ICMP6Errors]{
		{registry.NetEICMP6InErrors, func(r *sample.ICMP6Errors) string { return utoa(r.InErrors) }},
		{registry.NetEICMP6InDestUnreachs, func(r *sample.ICMP6Errors) string { return utoa(r.InDestUnreachs) }},
		{registry.NetEICMP6OutDestUnreachs, func(r *sample.ICMP6Errors) string { return utoa(r.OutDestUnreachs) }},
		{registry.NetEICMP6InTimeExcds, func(r *sample.ICMP6Errors) string { return utoa(r.InTimeExcds) }},
		{registry.NetEICMP6OutTimeExcds, func(r *sample.ICMP6Errors) string { return utoa(r.OutTimeExcds) }},
		{registry.NetEICMP6InParmProblems, func(r *sample.ICMP6Errors) string { return utoa(r.InParmProblems) }},
		{registry.NetEICMP6OutParmProblems, func(r *sample.ICMP6Errors) string { return utoa(r.OutParmProblems) }},
		{registry.NetEICMP6InRedirects, func(r *sample.ICMP6Errors) string { return utoa(r.InRedirects) }},
		{registry.NetEICMP6OutRedirects, func(r *sample.ICMP6Errors) string { return utoa(r.OutRedirects) }},
		{registry.NetEICMP6InPktTooBigs, func(r *sample.ICMP6Errors) string { return utoa(r.InPktTooBigs) }},
		{registry.NetEICMP6OutPktTooBigs, func(r *sample.ICMP6Errors) string { return utoa(r.OutPktTooBigs) }},
	},
}

var udp6Group = scalarGroup[sample.UDP6]{
	act: registry.UDP6,
	rec: func(sn *sample.Snapshot) *sample.UDP6 { return sn.UDP6 },
	binds: []scalarBinding[sample.UDP6]{
		{registry.NetUDP6InDatagrams, func(r *sample.UDP6) string { return utoa(r.InDatagrams) }},
		{registry.NetUDP6OutDatagrams, func(r *sample.UDP6) string { return utoa(r.OutDatagrams) }},
		{registry.NetUDP6NoPorts, func(r *sample.UDP6) string { return utoa(r.NoPorts) }},
		{registry.NetUDP6InErrors, func(r *sample.UDP6) string { return utoa(r.InErrors) }},
	},
}

// Huge page gauges are kept in kilobytes but published in bytes.
var hugeGroup = scalarGroup[sample.Huge]{
	act: registry.Huge,
	rec: func(sn *sample.Snapshot) *sample.Huge { return sn.Huge },
	binds: []scalarBinding[sample.Huge]{
		{registry.MemHugeTotalBytes, func(r *sample.Huge) string { return utoa(r.TotalKB * 1024) }},
		{registry.MemHugeFreeBytes, func(r *sample.Huge) string { return utoa(r.FreeKB * 1024) }},
		{registry.MemHugeRsvdBytes, func(r *sample.Huge) string { return utoa(r.ReservedKB * 1024) }},
		{registry.MemHugeSurpBytes, func(r *sample.Huge) string { return utoa(r.SurplusKB * 1024) }},
	},
}
