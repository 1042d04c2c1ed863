// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

func testHost() HostInfo {
	return HostInfo{
		CPUCount: 2,
		Hertz:    100,
		Sysname:  "Linux",
		Release:  "6.8.0-test",
		Nodename: "pcptest",
		Machine:  "x86_64",
	}
}

// writeArchive runs the snapshots through a fresh session and reopens
// the finished archive for inspection.
func writeArchive(t *testing.T, cfg *Config, snaps ...*sample.Snapshot) *pmi.Archive {
	t.Helper()
	var buf bytes.Buffer
	ps, err := pmi.NewSession(&buf, &pmi.SessionConfig{Hostname: "pcptest", Timezone: "UTC"})
	require.NoError(t, err)
	es, err := New(ps, cfg)
	require.NoError(t, err)
	for _, snap := range snaps {
		require.NoError(t, es.WriteSnapshot(snap))
	}
	require.NoError(t, ps.Close())
	ar, err := pmi.NewArchive(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return ar
}

// sampleValues flattens sample n into a lookup of "metric" or
// "metric[instance]" to value text.
func sampleValues(t *testing.T, ar *pmi.Archive, n int) map[string]string {
	t.Helper()
	it := ar.Samples()
	for i := 0; it.Next(); i++ {
		if i != n {
			continue
		}
		vals := make(map[string]string, len(it.Sample().Values))
		for _, v := range it.Sample().Values {
			key := v.Desc.Name
			if v.Instance != "" {
				key += "[" + v.Instance + "]"
			}
			vals[key] = v.Text
		}
		return vals
	}
	require.NoError(t, it.Err())
	t.Fatalf("archive has no sample %d", n)
	return nil
}

func fullSnapshot() *sample.Snapshot {
	return &sample.Snapshot{
		Time:   time.Unix(1700000100, 0).UTC(),
		Uptime: 3600.5,
		CPU: []sample.CPU{
			{User: 130, Nice: 30, Sys: 50, Idle: 800, Iowait: 20, Steal: 4, HardIRQ: 6, SoftIRQ: 8, Guest: 10, GuestNice: 5},
			{User: 60, Nice: 15, Sys: 30, Idle: 400, Iowait: 12, Steal: 2, HardIRQ: 4, SoftIRQ: 5, Guest: 6, GuestNice: 3},
			{User: 70, Nice: 15, Sys: 20, Idle: 400, Iowait: 8, Steal: 2, HardIRQ: 2, SoftIRQ: 3, Guest: 4, GuestNice: 2},
		},
		CPUFreq: []sample.CPUFreq{{Freq: 240000}, {Freq: 300000}, {Freq: 0}},
		Softnet: []sample.Softnet{
			{Processed: 1000, Dropped: 10, TimeSqueeze: 5, ReceivedRPS: 3, FlowLimit: 2, BacklogLen: 7},
			{Processed: 600, Dropped: 6, TimeSqueeze: 3, ReceivedRPS: 2, FlowLimit: 1, BacklogLen: 4},
			{Processed: 400, Dropped: 4, TimeSqueeze: 2, ReceivedRPS: 1, FlowLimit: 1, BacklogLen: 3},
		},
		Interrupts: []sample.Interrupt{
			{Name: "sum", Values: []uint32{300, 120, 180}},
			{Name: "timer", Values: []uint32{57, 23, 34}},
			{Name: "rtc", Values: []uint32{9, 4, 5}},
		},
		PCSW:   &sample.PCSW{ContextSwitches: 111222, Forks: 333},
		Swap:   &sample.Swap{PagesIn: 12, PagesOut: 34},
		Paging: &sample.Paging{PagedIn: 1001, PagedOut: 1002, Faults: 1003, MajorFaults: 1004, Freed: 1005, ScanKswapd: 1006, ScanDirect: 1007, Stolen: 1008, Promoted: 1009, Demoted: 1010},
		IO:     &sample.IO{Transfers: 500, Reads: 300, Writes: 180, Discards: 20, ReadUnits: 2048, WriteUnits: 1024, DiscardUnits: 512},
		Memory: &sample.Memory{
			TotalKB: 16777216, FreeKB: 4194304, AvailableKB: 8388608,
			BuffersKB: 262144, CachedKB: 2097152, CommittedKB: 1048576,
			ActiveKB: 524288, InactiveKB: 131072, DirtyKB: 4096,
			AnonPagesKB: 65536, SlabKB: 32768, KernelStackKB: 1024,
			PageTablesKB: 2048, VmallocUsedKB: 8192,
			SwapFreeKB: 1000000, SwapTotalKB: 2000000, SwapCachedKB: 5000,
		},
		Huge:    &sample.Huge{FreeKB: 100, TotalKB: 200, ReservedKB: 50, SurplusKB: 25},
		KTables: &sample.KTables{Dentries: 7001, Files: 7002, Inodes: 7003, PTYs: 7004},
		Queue:   &sample.Queue{Running: 3, Threads: 250, Blocked: 1, LoadAvg1: 150, LoadAvg5: 75, LoadAvg15: 30},
		Disks: []sample.Disk{
			{Major: 8, Minor: 0, Name: "sda", IOs: 900, ReadSectors: 4000, WriteSectors: 2000, DiscardSectors: 100, ReadTicks: 111, WriteTicks: 222, DiscardTicks: 33, TotalTicks: 340, QueueTicks: 450},
			{Major: 8, Minor: 16, Name: "sdb", IOs: 90, ReadSectors: 400, WriteSectors: 200, DiscardSectors: 10, ReadTicks: 11, WriteTicks: 22, DiscardTicks: 3, TotalTicks: 34, QueueTicks: 45},
		},
		NetDevs: []sample.NetDev{
			{Iface: "eth0", RxPackets: 11, TxPackets: 22, RxBytes: 3300, TxBytes: 4400, RxCompressed: 5, TxCompressed: 6, Multicast: 7},
			{Iface: "lo", RxPackets: 8, TxPackets: 8, RxBytes: 900, TxBytes: 900},
		},
		NetDevErrors: []sample.NetDevErrors{
			{Iface: "eth0", RxErrors: 1, TxErrors: 2, Collisions: 3, RxDropped: 4, TxDropped: 5, TxCarrierErrors: 6, RxFrameErrors: 7, RxFIFOErrors: 8, TxFIFOErrors: 9},
		},
		Serial:      []sample.Serial{{Line: 3, Rx: 10, Tx: 20, Frame: 1, Parity: 2, Break: 3, Overrun: 4}},
		Filesystems: []sample.Filesystem{{Name: "/dev/sda1", Blocks: 4096000, Free: 1024000, Available: 921600, Files: 1000, FreeFiles: 400}},
		FCHosts:     []sample.FCHost{{Name: "host0", RxFrames: 50, TxFrames: 60, RxWords: 70, TxWords: 80}},
		Fans:        []sample.Fan{{RPM: 2200.5, RPMMin: 200, Device: "hwmon0"}},
		Temps:       []sample.Temp{{Temp: 45, TempMin: 20, TempMax: 70, Device: "coretemp"}},
		Voltages:    []sample.Voltage{{In: 1.5, InMin: 1, InMax: 2, Device: "vrm"}},
		Batteries:   []sample.Battery{{ID: 1, Capacity: 88, Status: sample.BatteryCharging}},
		USB:         []sample.USB{{Bus: 2, VendorID: 0x8086, ProductID: 0x46d, MaxPower: 50, Manufacturer: "Logitech", Product: "Mouse"}},
		NFSClient:   &sample.NFSClient{RPCCalls: 900, RPCRetrans: 5, Reads: 100, Writes: 200, Accesses: 300, Getattrs: 400},
		NFSServer:   &sample.NFSServer{RPCCalls: 1900, RPCBadCalls: 3, NetPackets: 2000, NetUDP: 800, NetTCP: 1200, CacheHits: 50, CacheMisses: 9, Reads: 110, Writes: 210, Accesses: 310, Getattrs: 410},
		Sock:        &sample.Sock{Total: 500, TCPInUse: 100, UDPInUse: 50, RawInUse: 2, FragInUse: 1, TCPTimeWait: 30},
		IP:          &sample.IP{InReceives: 10001, ForwDatagrams: 10002, InDelivers: 10003, OutRequests: 10004, ReasmReqds: 10005, ReasmOKs: 10006, FragOKs: 10007, FragCreates: 10008},
		IPErrors:    &sample.IPErrors{InHdrErrors: 11001, InAddrErrors: 11002, InUnknownProtos: 11003, InDiscards: 11004, OutDiscards: 11005, OutNoRoutes: 11006, ReasmFails: 11007, FragFails: 11008},
		ICMP:        &sample.ICMP{InMsgs: 12001, OutMsgs: 12002, InEchos: 12003, InEchoReps: 12004, OutEchos: 12005, OutEchoReps: 12006, InTimestamps: 12007, InTimestampReps: 12008, OutTimestamps: 12009, OutTimestampReps: 12010, InAddrMasks: 12011, InAddrMaskReps: 12012, OutAddrMasks: 12013, OutAddrMaskReps: 12014},
		ICMPErrors:  &sample.ICMPErrors{InErrors: 13001, OutErrors: 13002, InDestUnreachs: 13003, OutDestUnreachs: 13004, InTimeExcds: 13005, OutTimeExcds: 13006, InParmProbs: 13007, OutParmProbs: 13008, InSrcQuenchs: 13009, OutSrcQuenchs: 13010, InRedirects: 13011, OutRedirects: 13012},
		TCP:         &sample.TCP{ActiveOpens: 14001, PassiveOpens: 14002, InSegs: 14003, OutSegs: 14004},
		TCPErrors:   &sample.TCPErrors{AttemptFails: 15001, EstabResets: 15002, RetransSegs: 15003, InErrs: 15004, OutRsts: 15005},
		UDP:         &sample.UDP{InDatagrams: 16001, OutDatagrams: 16002, NoPorts: 16003, InErrors: 16004},
		Sock6:       &sample.Sock6{TCPInUse: 17001, UDPInUse: 17002, RawInUse: 17003, FragInUse: 17004},
		IP6:         &sample.IP6{InReceives: 18001, OutForwDatagrams: 18002, InDelivers: 18003, OutRequests: 18004, ReasmReqds: 18005, ReasmOKs: 18006, InMcastPkts: 18007, OutMcastPkts: 18008, FragOKs: 18009, FragCreates: 18010},
		IP6Errors:   &sample.IP6Errors{InHdrErrors: 19001, InAddrErrors: 19002, InUnknownProtos: 19003, InTooBigErrors: 19004, InDiscards: 19005, OutDiscards: 19006, InNoRoutes: 19007, OutNoRoutes: 19008, ReasmFails: 19009, FragFails: 19010, InTruncatedPkts: 19011},
		ICMP6:       &sample.ICMP6{InMsgs: 20001, OutMsgs: 20002, InEchos: 20003, InEchoReplies: 20004, OutEchoReplies: 20005, InGroupMembQueries: 20006, InGroupMembResponses: 20007, OutGroupMembResponses: 20008, InGroupMembReductions: 20009, OutGroupMembReductions: 20010, InRouterSolicits: 20011, OutRouterSolicits: 20012, InRouterAdvertisements: 20013, InNeighborSolicits: 20014, OutNeighborSolicits: 20015, InNeighborAdvertisements: 20016, OutNeighborAdvertisements: 20017},
		ICMP6Errors: &sample.ICMP6Errors{InErrors: 21001, InDestUnreachs: 21002, OutDestUnreachs: 21003, InTimeExcds: 21004, OutTimeExcds: 21005, InParmProblems: 21006, OutParmProblems: 21007, InRedirects: 21008, OutRedirects: 21009, InPktTooBigs: 21010, OutPktTooBigs: 21011},
		UDP6:        &sample.UDP6{InDatagrams: 22001, OutDatagrams: 22002, NoPorts: 22003, InErrors: 22004},
		PSICPU:      &sample.PSICPU{SomeAvg10: 15, SomeAvg60: 10, SomeAvg300: 5, SomeTotal: 123456},
		PSIIO:       &sample.PSIIO{SomeAvg10: 20, SomeAvg60: 15, SomeAvg300: 10, SomeTotal: 23456, FullAvg10: 8, FullAvg60: 6, FullAvg300: 4, FullTotal: 3456},
		PSIMem:      &sample.PSIMem{SomeAvg10: 30, SomeAvg60: 25, SomeAvg300: 20, SomeTotal: 34567, FullAvg10: 12, FullAvg60: 9, FullAvg300: 6, FullTotal: 4567},
	}
}

func TestFileHeaderOncePerArchive(t *testing.T) {
	first := fullSnapshot()
	second := fullSnapshot()
	second.Time = first.Time.Add(time.Second)
	second.Uptime = 3601.5
	second.PrevCPU = first.CPU

	ar := writeArchive(t, &Config{Host: testHost()}, first, second)
	require.Equal(t, 2, ar.NumSamples())

	s0 := sampleValues(t, ar, 0)
	require.Equal(t, "2", s0["hinv.ncpu"])
	require.Equal(t, "100", s0["kernel.all.hz"])
	require.Equal(t, "Linux", s0["kernel.uname.sysname"])
	require.Equal(t, "6.8.0-test", s0["kernel.uname.release"])
	require.Equal(t, "pcptest", s0["kernel.uname.nodename"])
	require.Equal(t, "x86_64", s0["kernel.uname.machine"])
	require.Equal(t, "3600.50", s0["kernel.all.uptime"])

	s1 := sampleValues(t, ar, 1)
	require.NotContains(t, s1, "hinv.ncpu")
	require.NotContains(t, s1, "kernel.uname.sysname")
	require.Equal(t, "3601.50", s1["kernel.all.uptime"])
}

func TestScalarGroupValues(t *testing.T) {
	ar := writeArchive(t, &Config{Host: testHost(), MemoryDetails: true}, fullSnapshot())
	vals := sampleValues(t, ar, 0)

	require.Equal(t, "111222", vals["kernel.all.pswitch"])
	require.Equal(t, "333", vals["kernel.all.sysfork"])
	require.Equal(t, "12", vals["swap.pagesin"])
	require.Equal(t, "34", vals["swap.pagesout"])
	require.Equal(t, "1001", vals["mem.vmstat.pgpgin"])
	require.Equal(t, "1006", vals["mem.vmstat.pgscan_kswapd_total"])
	require.Equal(t, "1009", vals["mem.vmstat.pgpromote_success"])

	require.Equal(t, "500", vals["disk.all.total"])
	require.Equal(t, "1024", vals["disk.all.read_bytes"])
	require.Equal(t, "512", vals["disk.all.write_bytes"])
	require.Equal(t, "256", vals["disk.all.discard_bytes"])

	require.Equal(t, "16384", vals["hinv.physmem"])
	require.Equal(t, "16777216", vals["mem.physmem"])
	require.Equal(t, "4194304", vals["mem.util.free"])
	require.Equal(t, "12582912", vals["mem.util.used"])
	require.Equal(t, "32768", vals["mem.util.slab"])
	require.Equal(t, "2000000", vals["mem.util.swapTotal"])
	require.Equal(t, "204800", vals["mem.util.hugepagesTotalBytes"])
	require.Equal(t, "102400", vals["mem.util.hugepagesFreeBytes"])

	require.Equal(t, "7001", vals["vfs.dentry.count"])
	require.Equal(t, "7002", vals["vfs.files.count"])
	require.Equal(t, "3", vals["kernel.all.runnable"])
	require.Equal(t, "250", vals["kernel.all.nprocs"])
	require.Equal(t, "1", vals["kernel.all.blocked"])

	require.Equal(t, "10001", vals["network.ip.inreceives"])
	require.Equal(t, "10008", vals["network.ip.fragcreates"])
	require.Equal(t, "12001", vals["network.icmp.inmsgs"])
	require.Equal(t, "12014", vals["network.icmp.outaddrmaskreps"])
	require.Equal(t, "14001", vals["network.tcp.activeopens"])
	require.Equal(t, "16001", vals["network.udp.indatagrams"])
	require.Equal(t, "18001", vals["network.ip6.inreceives"])
	require.Equal(t, "20001", vals["network.icmp6.inmsgs"])
	require.Equal(t, "22004", vals["network.udp6.inerrors"])
	require.Equal(t, "500", vals["network.sockstat.total"])
	require.Equal(t, "30", vals["network.sockstat.tcp.tw"])
	require.Equal(t, "17001", vals["network.sockstat.tcp6.inuse"])

	require.Equal(t, "900", vals["rpc.client.rpccnt"])
	require.Equal(t, "5", vals["rpc.client.rpcretrans"])
	require.Equal(t, "1900", vals["rpc.server.rpccnt"])
	require.Equal(t, "50", vals["rpc.server.rchits"])
	require.Equal(t, "100", vals["nfs.client.reqs[read]"])
	require.Equal(t, "400", vals["nfs.client.reqs[getattr]"])
	require.Equal(t, "210", vals["nfs.server.reqs[write]"])
	require.Equal(t, "310", vals["nfs.server.reqs[access]"])

	require.Equal(t, "123456", vals["kernel.all.pressure.cpu.some.total"])
	require.Equal(t, "0.150000", vals["kernel.all.pressure.cpu.some.avg[10 second]"])
	require.Equal(t, "0.060000", vals["kernel.all.pressure.io.full.avg[1 minute]"])
	require.Equal(t, "4567", vals["kernel.all.pressure.mem.full.total"])
}

func TestMemoryDetailsGate(t *testing.T) {
	snap := fullSnapshot()

	ar := writeArchive(t, &Config{Host: testHost()}, snap)
	vals := sampleValues(t, ar, 0)
	require.Contains(t, vals, "mem.util.free")
	require.NotContains(t, vals, "mem.util.slab")
	require.NotContains(t, vals, "mem.util.anonpages")
	require.Contains(t, vals, "mem.util.swapFree")

	ar = writeArchive(t, &Config{Host: testHost(), MemoryDetails: true}, snap)
	vals = sampleValues(t, ar, 0)
	require.Contains(t, vals, "mem.util.slab")
	require.Contains(t, vals, "mem.util.anonpages")
}

func TestQueueLoadAverages(t *testing.T) {
	ar := writeArchive(t, &Config{Host: testHost()}, fullSnapshot())
	vals := sampleValues(t, ar, 0)
	require.Equal(t, "1.500000", vals["kernel.all.load[1 minute]"])
	require.Equal(t, "0.750000", vals["kernel.all.load[5 minute]"])
	require.Equal(t, "0.300000", vals["kernel.all.load[15 minute]"])

	insts := ar.Instances(registry.LoadAvgInDom)
	require.Len(t, insts, 3)
	got := make(map[string]int32, len(insts))
	for _, in := range insts {
		got[in.Name] = in.Key
	}
	require.Equal(t, map[string]int32{"1 minute": 1, "5 minute": 5, "15 minute": 15}, got)
}

func TestGroupsWithoutDataSkipped(t *testing.T) {
	snap := &sample.Snapshot{
		Time:   time.Unix(1700000100, 0).UTC(),
		Uptime: 100,
		PCSW:   &sample.PCSW{ContextSwitches: 1, Forks: 2},
	}
	ar := writeArchive(t, &Config{Host: testHost()}, snap)
	vals := sampleValues(t, ar, 0)
	require.Equal(t, "1", vals["kernel.all.pswitch"])
	require.Equal(t, "100.00", vals["kernel.all.uptime"])
	require.NotContains(t, vals, "disk.all.total")
	require.NotContains(t, vals, "mem.util.free")
	require.NotContains(t, vals, "kernel.all.cpu.user")
}

func TestActivitySelection(t *testing.T) {
	snap := fullSnapshot()
	cfg := &Config{Host: testHost(), Activities: []registry.Activity{registry.PCSW}}
	ar := writeArchive(t, cfg, snap)

	vals := sampleValues(t, ar, 0)
	require.Equal(t, "111222", vals["kernel.all.pswitch"])
	require.Contains(t, vals, "hinv.ncpu")
	require.NotContains(t, vals, "swap.pagesin")
	require.NotContains(t, vals, "kernel.all.cpu.user")

	_, ok := ar.Lookup("swap.pagesin")
	require.False(t, ok, "unselected group must not be registered")
}

func TestNewValidatesConfig(t *testing.T) {
	var buf bytes.Buffer
	ps, err := pmi.NewSession(&buf, &pmi.SessionConfig{Hostname: "h", Timezone: "UTC"})
	require.NoError(t, err)

	for name, cfg := range map[string]*Config{
		"zero cpu count":   {Host: HostInfo{Hertz: 100}},
		"zero clock rate":  {Host: HostInfo{CPUCount: 1}},
		"unknown activity": {Host: testHost(), Activities: []registry.Activity{registry.Activity(9999)}},
	} {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			_, err := New(ps, cfg)
			require.Error(t, err)
		})
	}
}

func TestInstanceNamingDeterminism(t *testing.T) {
	instances := func() map[string][]pmi.Instance {
		ar := writeArchive(t, &Config{Host: testHost()}, fullSnapshot())
		return map[string][]pmi.Instance{
			"disk":  ar.Instances(registry.DiskInDom),
			"iface": ar.Instances(registry.NetDevInDom),
			"irq":   ar.Instances(registry.IRQInDom),
			"cell":  ar.Instances(registry.IRQCPUInDom),
			"fs":    ar.Instances(registry.FilesysInDom),
		}
	}
	require.Equal(t, instances(), instances())
}
