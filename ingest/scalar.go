// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// fieldReader parses one metric's value text into a record field.
type fieldReader[T any] struct {
	idx   int
	parse func(*T, string) error
}

// scalarGroup binds a flat record type to the readers of its activity
// group: where the record sits in the store and which field each
// metric lands in.
type scalarGroup[T any] struct {
	rec    func(*Store) *T
	fields []fieldReader[T]
}

// readers expands the group into a reader per metric index.
func (g scalarGroup[T]) readers() []applyFunc {
	max := 0
	for _, f := range g.fields {
		if f.idx > max {
			max = f.idx
		}
	}
	out := make([]applyFunc, max+1)
	for _, f := range g.fields {
		parse := f.parse
		out[f.idx] = func(s *Store, v *pmi.Value) error {
			return parse(g.rec(s), v.Text)
		}
	}
	return out
}

var pcswReaders = scalarGroup[sample.PCSW]{
	rec: func(s *Store) *sample.PCSW { return &s.recs.pcsw },
	fields: []fieldReader[sample.PCSW]{
		{registry.PCSWContextSwitch, setU64(func(r *sample.PCSW) *uint64 { return &r.ContextSwitches })},
		{registry.PCSWForkSyscalls, setU64(func(r *sample.PCSW) *uint64 { return &r.Forks })},
	},
}.readers()

var swapReaders = scalarGroup[sample.Swap]{
	rec: func(s *Store) *sample.Swap { return &s.recs.swap },
	fields: []fieldReader[sample.Swap]{
		{registry.SwapPagesIn, setU64(func(r *sample.Swap) *uint64 { return &r.PagesIn })},
		{registry.SwapPagesOut, setU64(func(r *sample.Swap) *uint64 { return &r.PagesOut })},
	},
}.readers()

var pagingReaders = scalarGroup[sample.Paging]{
	rec: func(s *Store) *sample.Paging { return &s.recs.paging },
	fields: []fieldReader[sample.Paging]{
		{registry.PagingPgPgIn, setU64(func(r *sample.Paging) *uint64 { return &r.PagedIn })},
		{registry.PagingPgPgOut, setU64(func(r *sample.Paging) *uint64 { return &r.PagedOut })},
		{registry.PagingPgFault, setU64(func(r *sample.Paging) *uint64 { return &r.Faults })},
		{registry.PagingPgMajFault, setU64(func(r *sample.Paging) *uint64 { return &r.MajorFaults })},
		{registry.PagingPgFree, setU64(func(r *sample.Paging) *uint64 { return &r.Freed })},
		{registry.PagingPgScanDirect, setU64(func(r *sample.Paging) *uint64 { return &r.ScanDirect })},
		{registry.PagingPgScanKswapd, setU64(func(r *sample.Paging) *uint64 { return &r.ScanKswapd })},
		{registry.PagingPgSteal, setU64(func(r *sample.Paging) *uint64 { return &r.Stolen })},
		{registry.PagingPgDemote, setU64(func(r *sample.Paging) *uint64 { return &r.Demoted })},
		{registry.PagingPgPromote, setU64(func(r *sample.Paging) *uint64 { return &r.Promoted })},
	},
}.readers()

// Transfer byte totals come back from kilobytes into 512 byte sectors.
var ioReaders = scalarGroup[sample.IO]{
	rec: func(s *Store) *sample.IO { return &s.recs.io },
	fields: []fieldReader[sample.IO]{
		{registry.IOAllDevTotal, setU64(func(r *sample.IO) *uint64 { return &r.Transfers })},
		{registry.IOAllDevRead, setU64(func(r *sample.IO) *uint64 { return &r.Reads })},
		{registry.IOAllDevWrite, setU64(func(r *sample.IO) *uint64 { return &r.Writes })},
		{registry.IOAllDevDiscard, setU64(func(r *sample.IO) *uint64 { return &r.Discards })},
		{registry.IOAllDevReadBytes, setU64Mul(func(r *sample.IO) *uint64 { return &r.ReadUnits }, 2)},
		{registry.IOAllDevWriteBytes, setU64Mul(func(r *sample.IO) *uint64 { return &r.WriteUnits }, 2)},
		{registry.IOAllDevDiscardBytes, setU64Mul(func(r *sample.IO) *uint64 { return &r.DiscardUnits }, 2)},
	},
}.readers()

var ktablesReaders = scalarGroup[sample.KTables]{
	rec: func(s *Store) *sample.KTables { return &s.recs.ktables },
	fields: []fieldReader[sample.KTables]{
		{registry.KTableDentries, setU64(func(r *sample.KTables) *uint64 { return &r.Dentries })},
		{registry.KTableFiles, setU64(func(r *sample.KTables) *uint64 { return &r.Files })},
		{registry.KTableInodes, setU64(func(r *sample.KTables) *uint64 { return &r.Inodes })},
		{registry.KTablePTYs, setU64(func(r *sample.KTables) *uint64 { return &r.PTYs })},
	},
}.readers()

var sockReaders = scalarGroup[sample.Sock]{
	rec: func(s *Store) *sample.Sock { return &s.recs.sock },
	fields: []fieldReader[sample.Sock]{
		{registry.SocketTotal, setU32(func(r *sample.Sock) *uint32 { return &r.Total })},
		{registry.SocketTCPInUse, setU32(func(r *sample.Sock) *uint32 { return &r.TCPInUse })},
		{registry.SocketUDPInUse, setU32(func(r *sample.Sock) *uint32 { return &r.UDPInUse })},
		{registry.SocketRawInUse, setU32(func(r *sample.Sock) *uint32 { return &r.RawInUse })},
		{registry.SocketFragInUse, setU32(func(r *sample.Sock) *uint32 { return &r.FragInUse })},
		{registry.SocketTCPTw, setU32(func(r *sample.Sock) *uint32 { return &r.TCPTimeWait })},
	},
}.readers()

var ipReaders = scalarGroup[sample.IP]{
	rec: func(s *Store) *sample.IP { return &s.recs.ip },
	fields: []fieldReader[sample.IP]{
		{registry.NetIPInReceives, setU64(func(r *sample.IP) *uint64 { return &r.InReceives })},
		{registry.NetIPForwDatagrams, setU64(func(r *sample.IP) *uint64 { return &r.ForwDatagrams })},
		{registry.NetIPInDelivers, setU64(func(r *sample.IP) *uint64 { return &r.InDelivers })},
		{registry.NetIPOutRequests, setU64(func(r *sample.IP) *uint64 { return &r.OutRequests })},
		{registry.NetIPReasmReqds, setU64(func(r *sample.IP) *uint64 { return &r.ReasmReqds })},
		{registry.NetIPReasmOKs, setU64(func(r *sample.IP) *uint64 { return &r.ReasmOKs })},
		{registry.NetIPFragOKs, setU64(func(r *sample.IP) *uint64 { return &r.FragOKs })},
		{registry.NetIPFragCreates, setU64(func(r *sample.IP) *uint64 { return &r.FragCreates })},
	},
}.readers()

var ipErrReaders = scalarGroup[sample.IPErrors]{
	rec: func(s *Store) *sample.IPErrors { return &s.recs.ipErr },
	fields: []fieldReader[sample.IPErrors]{
		{registry.NetEIPInHdrErrors, setU64(func(r *sample.IPErrors) *uint64 { return &r.InHdrErrors })},
		{registry.NetEIPInAddrErrors, setU64(func(r *sample.IPErrors) *uint64 { return &r.InAddrErrors })},
		{registry.NetEIPInUnknownProtos, setU64(func(r *sample.IPErrors) *uint64 { return &r.InUnknownProtos })},
		{registry.NetEIPInDiscards, setU64(func(r *sample.IPErrors) *uint64 { return &r.InDiscards })},
		{registry.NetEIPOutDiscards, setU64(func(r *sample.IPErrors) *uint64 { return &r.OutDiscards })},
		{registry.NetEIPOutNoRoutes, setU64(func(r *sample.IPErrors) *uint64 { return &r.OutNoRoutes })},
		{registry.NetEIPReasmFails, setU64(func(r *sample.IPErrors) *uint64 { return &r.ReasmFails })},
		{registry.NetEIPFragFails, setU64(func(r *sample.IPErrors) *uint64 { return &r.FragFails })},
	},
}.readers()

var icmpReaders = scalarGroup[sample.ICMP]{
	rec: func(s *Store) *sample.ICMP { return &s.recs.icmp },
	fields: []fieldReader[sample.ICMP]{
		{registry.NetICMPInMsgs, setU64(func(r *sample.ICMP) *uint64 { return &r.InMsgs })},
		{registry.NetICMPOutMsgs, setU64(func(r *sample.ICMP) *uint64 { return &r.OutMsgs })},
		{registry.NetICMPInEchos, setU64(func(r *sample.ICMP) *uint64 { return &r.InEchos })},
		{registry.NetICMPInEchoReps, setU64(func(r *sample.ICMP) *uint64 { return &r.InEchoReps })},
		{registry.NetICMPOutEchos, setU64(func(r *sample.ICMP) *uint64 { return &r.OutEchos })},
		{registry.NetICMPOutEchoReps, setU64(func(r *sample.ICMP) *uint64 { return &r.OutEchoReps })},
		{registry.NetICMPInTimestamps, setU64(func(r *sample.ICMP) *uint64 { return &r.InTimestamps })},
		{registry.NetICMPInTimestampReps, setU64(func(r *sample.ICMP) *uint64 { return &r.InTimestampReps })},
		{registry.NetICMPOutTimestamps, setU64(func(r *sample.ICMP) *uint64 { return &r.OutTimestamps })},
		{registry.NetICMPOutTimestampReps, setU64(func(r *sample.ICMP) *uint64 { return &r.OutTimestampReps })},
		{registry.NetICMPInAddrMasks, setU64(func(r *sample.ICMP) *uint64 { return &r.InAddrMasks })},
		{registry.NetICMPInAddrMaskReps, setU64(func(r *sample.ICMP) *uint64 { return &r.InAddrMaskReps })},
		{registry.NetICMPOutAddrMasks, setU64(func(r *sample.ICMP) *uint64 { return &r.OutAddrMasks })},
		{registry.NetICMPOutAddrMaskReps, setU64(func(r *sample.ICMP) *uint64 { return &r.OutAddrMaskReps })},
	},
}.readers()

var icmpErrReaders = scalarGroup[sample.ICMPErrors]{
	rec: func(s *Store) *sample.ICMPErrors { return &s.recs.icmpErr },
	fields: []fieldReader[sample.ICMPErrors]{
		{registry.NetEICMPInErrors, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.InErrors })},
		{registry.NetEICMPOutErrors, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.OutErrors })},
		{registry.NetEICMPInDestUnreachs, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.InDestUnreachs })},
		{registry.NetEICMPOutDestUnreachs, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.OutDestUnreachs })},
		{registry.NetEICMPInTimeExcds, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.InTimeExcds })},
		{registry.NetEICMPOutTimeExcds, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.OutTimeExcds })},
		{registry.NetEICMPInParmProbs, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.InParmProbs })},
		{registry.NetEICMPOutParmProbs, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.OutParmProbs })},
		{registry.NetEICMPInSrcQuenchs, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.InSrcQuenchs })},
		{registry.NetEICMPOutSrcQuenchs, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.OutSrcQuenchs })},
		{registry.NetEICMPInRedirects, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.InRedirects })},
		{registry.NetEICMPOutRedirects, setU64(func(r *sample.ICMPErrors) *uint64 { return &r.OutRedirects })},
	},
}.readers()

var tcpReaders = scalarGroup[sample.TCP]{
	rec: func(s *Store) *sample.TCP { return &s.recs.tcp },
	fields: []fieldReader[sample.TCP]{
		{registry.NetTCPActiveOpens, setU64(func(r *sample.TCP) *uint64 { return &r.ActiveOpens })},
		{registry.NetTCPPassiveOpens, setU64(func(r *sample.TCP) *uint64 { return &r.PassiveOpens })},
		{registry.NetTCPInSegs, setU64(func(r *sample.TCP) *uint64 { return &r.InSegs })},
		{registry.NetTCPOutSegs, setU64(func(r *sample.TCP) *uint64 { return &r.OutSegs })},
	},
}.readers()

var tcpErrReaders = scalarGroup[sample.TCPErrors]{
	rec: func(s *Store) *sample.TCPErrors { return &s.recs.tcpErr },
	fields: []fieldReader[sample.TCPErrors]{
		{registry.NetETCPAttemptFails, setU64(func(r *sample.TCPErrors) *uint64 { return &r.AttemptFails })},
		{registry.NetETCPEstabResets, setU64(func(r *sample.TCPErrors) *uint64 { return &r.EstabResets })},
		{registry.NetETCPRetransSegs, setU64(func(r *sample.TCPErrors) *uint64 { return &r.RetransSegs })},
		{registry.NetETCPInErrs, setU64(func(r *sample.TCPErrors) *uint64 { return &r.InErrs })},
		{registry.NetETCPOutRsts, setU64(func(r *sample.TCPErrors) *uint64 { return &r.OutRsts })},
	},
}.readers()

var udpReaders = scalarGroup[sample.UDP]{
	rec: func(s *Store) *sample.UDP { return &s.recs.udp },
	fields: []fieldReader[sample.UDP]{
		{registry.NetUDPInDatagrams, setU64(func(r *sample.UDP) *uint64 { return &r.InDatagrams })},
		{registry.NetUDPOutDatagrams, setU64(func(r *sample.UDP) *uint64 { return &r.OutDatagrams })},
		{registry.NetUDPNoPorts, setU64(func(r *sample.UDP) *uint64 { return &r.NoPorts })},
		{registry.NetUDPInErrors, setU64(func(r *sample.UDP) *uint64 { return &r.InErrors })},
	},
}.readers()

var sock6Readers = scalarGroup[sample.Sock6]{
	rec: func(s *Store) *sample.Sock6 { return &s.recs.sock6 },
	fields: []fieldReader[sample.Sock6]{
		{registry.NetSock6TCPInUse, setU32(func(r *sample.Sock6) *uint32 { return &r.TCPInUse })},
		{registry.NetSock6UDPInUse, setU32(func(r *sample.Sock6) *uint32 { return &r.UDPInUse })},
		{registry.NetSock6RawInUse, setU32(func(r *sample.Sock6) *uint32 { return &r.RawInUse })},
		{registry.NetSock6FragInUse, setU32(func(r *sample.Sock6) *uint32 { return &r.FragInUse })},
	},
}.readers()

var ip6Readers = scalarGroup[sample.IP6]{
	rec: func(s *Store) *sample.IP6 { return &s.recs.ip6 },
	fields: []fieldReader[sample.IP6]{
		{registry.NetIP6InReceives, setU64(func(r *sample.IP6) *uint64 { return &r.InReceives })},
		{registry.NetIP6OutForwDatagrams, setU64(func(r *sample.IP6) *uint64 { return &r.OutForwDatagrams })},
		{registry.NetIP6InDelivers, setU64(func(r *sample.IP6) *uint64 { return &r.InDelivers })},
		{registry.NetIP6OutRequests, setU64(func(r *sample.IP6) *uint64 { return &r.OutRequests })},
		{registry.NetIP6ReasmReqds, setU64(func(r *sample.IP6) *uint64 { return &r.ReasmReqds })},
		{registry.NetIP6ReasmOKs, setU64(func(r *sample.IP6) *uint64 { return &r.ReasmOKs })},
		{registry.NetIP6InMcastPkts, setU64(func(r *sample.IP6) *uint64 { return &r.InMcastPkts })},
		{registry.NetIP6OutMcastPkts, setU64(func(r *sample.IP6) *uint64 { return &r.OutMcastPkts })},
		{registry.NetIP6FragOKs, setU64(func(r *sample.IP6) *uint64 { return &r.FragOKs })},
		{registry.NetIP6FragCreates, setU64(func(r *sample.IP6) *uint64 { return &r.FragCreates })},
	},
}.readers()

var ip6ErrReaders = scalarGroup[sample.IP6Errors]{
	rec: func(s *Store) *sample.IP6Errors { return &s.recs.ip6Err },
	fields: []fieldReader[sample.IP6Errors]{
		{registry.NetEIP6InHdrErrors, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InHdrErrors })},
		{registry.NetEIP6InAddrErrors, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InAddrErrors })},
		{registry.NetEIP6InUnknownProtos, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InUnknownProtos })},
		{registry.NetEIP6InTooBigErrors, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InTooBigErrors })},
		{registry.NetEIP6InDiscards, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InDiscards })},
		{registry.NetEIP6OutDiscards, setU64(func(r *sample.IP6Errors) *uint64 { return &r.OutDiscards })},
		{registry.NetEIP6InNoRoutes, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InNoRoutes })},
		{registry.NetEIP6OutNoRoutes, setU64(func(r *sample.IP6Errors) *uint64 { return &r.OutNoRoutes })},
		{registry.NetEIP6ReasmFails, setU64(func(r *sample.IP6Errors) *uint64 { return &r.ReasmFails })},
		{registry.NetEIP6FragFails, setU64(func(r *sample.IP6Errors) *uint64 { return &r.FragFails })},
		{registry.NetEIP6InTruncatedPkts, setU64(func(r *sample.IP6Errors) *uint64 { return &r.InTruncatedPkts })},
	},
}.readers()

var icmp6Readers = scalarGroup[sample.ICMP6]{
	rec: func(s *Store) *sample.ICMP6 { return &s.recs.icmp6 },
	fields: []fieldReader[sample.ICMP6]{
		{registry.NetICMP6InMsgs, setU64(func(r *sample.ICMP6) *uint64 { return &r.InMsgs })},
		{registry.NetICMP6OutMsgs, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutMsgs })},
		{registry.NetICMP6InEchos, setU64(func(r *sample.ICMP6) *uint64 { return &r.InEchos })},
		{registry.NetICMP6InEchoReplies, setU64(func(r *sample.ICMP6) *uint64 { return &r.InEchoReplies })},
		{registry.NetICMP6OutEchoReplies, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutEchoReplies })},
		{registry.NetICMP6InGroupMembQueries, setU64(func(r *sample.ICMP6) *uint64 { return &r.InGroupMembQueries })},
		{registry.NetICMP6InGroupMembResponses, setU64(func(r *sample.ICMP6) *uint64 { return &r.InGroupMembResponses })},
		{registry.NetICMP6OutGroupMembResponses, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutGroupMembResponses })},
		{registry.NetICMP6InGroupMembReductions, setU64(func(r *sample.ICMP6) *uint64 { return &r.InGroupMembReductions })},
		{registry.NetICMP6OutGroupMembReductions, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutGroupMembReductions })},
		{registry.NetICMP6InRouterSolicits, setU64(func(r *sample.ICMP6) *uint64 { return &r.InRouterSolicits })},
		{registry.NetICMP6OutRouterSolicits, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutRouterSolicits })},
		{registry.NetICMP6InRouterAdvertisements, setU64(func(r *sample.ICMP6) *uint64 { return &r.InRouterAdvertisements })},
		{registry.NetICMP6InNeighborSolicits, setU64(func(r *sample.ICMP6) *uint64 { return &r.InNeighborSolicits })},
		{registry.NetICMP6OutNeighborSolicits, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutNeighborSolicits })},
		{registry.NetICMP6InNeighborAdvertisements, setU64(func(r *sample.ICMP6) *uint64 { return &r.InNeighborAdvertisements })},
		{registry.NetICMP6OutNeighborAdvertisements, setU64(func(r *sample.ICMP6) *uint64 { return &r.OutNeighborAdvertisements })},
	},
}.readers()

var icmp6ErrReaders = scalarGroup[sample.ICMP6Errors]{
	rec: func(s *Store) *sample.ICMP6Errors { return &s.recs.icmp6Err },
	fields: []fieldReader[sample.ICMP6Errors]{
		{registry.NetEICMP6InErrors, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.InErrors })},
		{registry.NetEICMP6InDestUnreachs, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.InDestUnreachs })},
		{registry.NetEICMP6OutDestUnreachs, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.OutDestUnreachs })},
		{registry.NetEICMP6InTimeExcds, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.InTimeExcds })},
		{registry.NetEICMP6OutTimeExcds, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.OutTimeExcds })},
		{registry.NetEICMP6InParmProblems, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.InParmProblems })},
		{registry.NetEICMP6OutParmProblems, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.OutParmProblems })},
		{registry.NetEICMP6InRedirects, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.InRedirects })},
		{registry.NetEICMP6OutRedirects, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.OutRedirects })},
		{registry.NetEICMP6InPktTooBigs, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.InPktTooBigs })},
		{registry.NetEICMP6OutPktTooBigs, setU64(func(r *sample.ICMP6Errors) *uint64 { return &r.OutPktTooBigs })},
	},
}.readers()

var udp6Readers = scalarGroup[sample.UDP6]{
	rec: func(s *Store) *sample.UDP6 { return &s.recs.udp6 },
	fields: []fieldReader[sample.UDP6]{
		{registry.NetUDP6InDatagrams, setU64(func(r *sample.UDP6) *uint64 { return &r.InDatagrams })},
		{registry.NetUDP6OutDatagrams, setU64(func(r *sample.UDP6) *uint64 { return &r.OutDatagrams })},
		{registry.NetUDP6NoPorts, setU64(func(r *sample.UDP6) *uint64 { return &r.NoPorts })},
		{registry.NetUDP6InErrors, setU64(func(r *sample.UDP6) *uint64 { return &r.InErrors })},
	},
}.readers()

// Huge page gauges come back from bytes into kilobytes.
var hugeReaders = scalarGroup[sample.Huge]{
	rec: func(s *Store) *sample.Huge { return &s.recs.huge },
	fields: []fieldReader[sample.Huge]{
		{registry.MemHugeTotalBytes, setU64Div(func(r *sample.Huge) *uint64 { return &r.TotalKB }, 1024)},
		{registry.MemHugeFreeBytes, setU64Div(func(r *sample.Huge) *uint64 { return &r.FreeKB }, 1024)},
		{registry.MemHugeRsvdBytes, setU64Div(func(r *sample.Huge) *uint64 { return &r.ReservedKB }, 1024)},
		{registry.MemHugeSurpBytes, setU64Div(func(r *sample.Huge) *uint64 { return &r.SurplusKB }, 1024)},
	},
}.readers()

// hinv.physmem and mem.util.used restate fields the other memory
// metrics already carry exactly.
var memoryReaders = scalarGroup[sample.Memory]{
	rec: func(s *Store) *sample.Memory { return &s.recs.memory },
	fields: []fieldReader[sample.Memory]{
		{registry.MemPhysMB, skipU64[sample.Memory]()},
		{registry.MemPhysKB, setU64(func(r *sample.Memory) *uint64 { return &r.TotalKB })},
		{registry.MemUtilFree, setU64(func(r *sample.Memory) *uint64 { return &r.FreeKB })},
		{registry.MemUtilAvail, setU64(func(r *sample.Memory) *uint64 { return &r.AvailableKB })},
		{registry.MemUtilUsed, skipU64[sample.Memory]()},
		{registry.MemUtilBuffer, setU64(func(r *sample.Memory) *uint64 { return &r.BuffersKB })},
		{registry.MemUtilCached, setU64(func(r *sample.Memory) *uint64 { return &r.CachedKB })},
		{registry.MemUtilCommitAS, setU64(func(r *sample.Memory) *uint64 { return &r.CommittedKB })},
		{registry.MemUtilActive, setU64(func(r *sample.Memory) *uint64 { return &r.ActiveKB })},
		{registry.MemUtilInactive, setU64(func(r *sample.Memory) *uint64 { return &r.InactiveKB })},
		{registry.MemUtilDirty, setU64(func(r *sample.Memory) *uint64 { return &r.DirtyKB })},
		{registry.MemUtilAnon, setU64(func(r *sample.Memory) *uint64 { return &r.AnonPagesKB })},
		{registry.MemUtilSlab, setU64(func(r *sample.Memory) *uint64 { return &r.SlabKB })},
		{registry.MemUtilKStack, setU64(func(r *sample.Memory) *uint64 { return &r.KernelStackKB })},
		{registry.MemUtilPgTable, setU64(func(r *sample.Memory) *uint64 { return &r.PageTablesKB })},
		{registry.MemUtilVmalloc, setU64(func(r *sample.Memory) *uint64 { return &r.VmallocUsedKB })},
		{registry.MemUtilSwapFree, setU64(func(r *sample.Memory) *uint64 { return &r.SwapFreeKB })},
		{registry.MemUtilSwapTotal, setU64(func(r *sample.Memory) *uint64 { return &r.SwapTotalKB })},
		{registry.MemUtilSwapCached, setU64(func(r *sample.Memory) *uint64 { return &r.SwapCachedKB })},
	},
}.readers()
