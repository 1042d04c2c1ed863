// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// NFSClient holds NFS client counters from /proc/net/rpc/nfs.
type NFSClient struct {
	RPCCalls   uint32
	RPCRetrans uint32
	Reads      uint32
	Writes     uint32
	Accesses   uint32
	Getattrs   uint32
}

// NFSServer holds NFS server counters from /proc/net/rpc/nfsd.
type NFSServer struct {
	RPCCalls    uint32
	RPCBadCalls uint32
	NetPackets  uint32
	NetUDP      uint32
	NetTCP      uint32
	CacheHits   uint32
	CacheMisses uint32
	Reads       uint32
	Writes      uint32
	Accesses    uint32
	Getattrs    uint32
}

// Sock holds IPv4 socket gauges from /proc/net/sockstat.
type Sock struct {
	Total       uint32
	TCPInUse    uint32
	UDPInUse    uint32
	RawInUse    uint32
	FragInUse   uint32
	TCPTimeWait uint32
}

// Sock6 holds IPv6 socket gauges from /proc/net/sockstat6.
type Sock6 struct {
	TCPInUse  uint32
	UDPInUse  uint32
	RawInUse  uint32
	FragInUse uint32
}

// IP holds IPv4 counters from /proc/net/snmp.
type IP struct {
	InReceives    uint64
	ForwDatagrams uint64
	InDelivers    uint64
	OutRequests   uint64
	ReasmReqds    uint64
	ReasmOKs      uint64
	FragOKs       uint64
	FragCreates   uint64
}

// IPErrors holds IPv4 error counters from /proc/net/snmp.
type IPErrors struct {
	InHdrErrors     uint64
	InAddrErrors    uint64
	InUnknownProtos uint64
	InDiscards      uint64
	OutDiscards     uint64
	OutNoRoutes     uint64
	ReasmFails      uint64
	FragFails       uint64
}

// ICMP holds ICMPv4 message counters from /proc/net/snmp.
type ICMP struct {
	InMsgs           uint64
	OutMsgs          uint64
	InEchos          uint64
	InEchoReps       uint64
	OutEchos         uint64
	OutEchoReps      uint64
	InTimestamps     uint64
	InTimestampReps  uint64
	OutTimestamps    uint64
	OutTimestampReps uint64
	InAddrMasks      uint64
	InAddrMaskReps   uint64
	OutAddrMasks     uint64
	OutAddrMaskReps  uint64
}

// ICMPErrors holds ICMPv4 error counters from /proc/net/snmp.
type ICMPErrors struct {
	InErrors        uint64
	OutErrors       uint64
	InDestUnreachs  uint64
	OutDestUnreachs uint64
	InTimeExcds     uint64
	OutTimeExcds    uint64
	InParmProbs     uint64
	OutParmProbs    uint64
	InSrcQuenchs    uint64
	OutSrcQuenchs   uint64
	InRedirects     uint64
	OutRedirects    uint64
}

// TCP holds TCP counters from /proc/net/snmp.
type TCP struct {
	ActiveOpens  uint64
	PassiveOpens uint64
	InSegs       uint64
	OutSegs      uint64
}

// TCPErrors holds TCP error counters from /proc/net/snmp.
type TCPErrors struct {
	AttemptFails uint64
	EstabResets  uint64
	RetransSegs  uint64
	InErrs       uint64
	OutRsts      uint64
}

// UDP holds UDP counters from /proc/net/snmp.
type UDP struct {
	InDatagrams  uint64
	OutDatagrams uint64
	NoPorts      uint64
	InErrors     uint64
}

// IP6 holds IPv6 counters from /proc/net/snmp6.
type IP6 struct {
	InReceives       uint64
	OutForwDatagrams uint64
	InDelivers       uint64
	OutRequests      uint64
	ReasmReqds       uint64
	ReasmOKs         uint64
	InMcastPkts      uint64
	OutMcastPkts     uint64
	FragOKs          uint64
	FragCreates      uint64
}

// IP6Errors holds IPv6 error counters from /proc/net/snmp6.
type IP6Errors struct {
	InHdrErrors     uint64
	InAddrErrors    uint64
	InUnknownProtos uint64
	InTooBigErrors  uint64
	InDiscards      uint64
	OutDiscards     uint64
	InNoRoutes      uint64
	OutNoRoutes     uint64
	ReasmFails      uint64
	FragFails       uint64
	InTruncatedPkts uint64
}

// ICMP6 holds ICMPv6 message counters from /proc/net/snmp6.
type ICMP6 struct {
	InMsgs                    uint64
	OutMsgs                   uint64
	InEchos                   uint64
	InEchoReplies             uint64
	OutEchoReplies            uint64
	InGroupMembQueries        uint64
	InGroupMembResponses      uint64
	OutGroupMembResponses     uint64
	InGroupMembReductions     uint64
	OutGroupMembReductions    uint64
	InRouterSolicits          uint64
	OutRouterSolicits         uint64
	InRouterAdvertisements    uint64
	InNeighborSolicits        uint64
	OutNeighborSolicits       uint64
	InNeighborAdvertisements  uint64
	OutNeighborAdvertisements uint64
}

// ICMP6Errors holds ICMPv6 error counters from /proc/net/snmp6.
type ICMP6Errors struct {
	InErrors        uint64
	InDestUnreachs  uint64
	OutDestUnreachs uint64
	InTimeExcds     uint64
	OutTimeExcds    uint64
	InParmProblems  uint64
	OutParmProblems uint64
	InRedirects     uint64
	OutRedirects    uint64
	InPktTooBigs    uint64
	OutPktTooBigs   uint64
}

// UDP6 holds UDP over IPv6 counters from /proc/net/snmp6.
type UDP6 struct {
	InDatagrams  uint64
	OutDatagrams uint64
	NoPorts      uint64
	InErrors     uint64
}
