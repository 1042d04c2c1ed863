// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

var memBase = scalarGroup[sample.Memory]{
	act: registry.Memory,
	rec: func(sn *sample.Snapshot) *sample.Memory { return sn.Memory },
	binds: []scalarBinding[sample.Memory]{
		{registry.MemPhysMB, func(r *sample.Memory) string { return utoa(r.TotalKB >> 10) }},
		{registry.MemPhysKB, func(r *sample.Memory) string { return utoa(r.TotalKB) }},
		{registry.MemUtilFree, func(r *sample.Memory) string { return utoa(r.FreeKB) }},
		{registry.MemUtilAvail, func(r *sample.Memory) string { return utoa(r.AvailableKB) }},
		{registry.MemUtilUsed, func(r *sample.Memory) string { return utoa(r.TotalKB - r.FreeKB) }},
		{registry.MemUtilBuffer, func(r *sample.Memory) string { return utoa(r.BuffersKB) }},
		{registry.MemUtilCached, func(r *sample.Memory) string { return utoa(r.CachedKB) }},
		{registry.MemUtilCommitAS, func(r *sample.Memory) string { return utoa(r.CommittedKB) }},
		{registry.MemUtilActive, func(r *sample.Memory) string { return utoa(r.ActiveKB) }},
		{registry.MemUtilInactive, func(r *sample.Memory) string { return utoa(r.InactiveKB) }},
		{registry.MemUtilDirty, func(r *sample.Memory) string { return utoa(r.DirtyKB) }},
	},
}

var memDetails = scalarGroup[sample.Memory]{
	act: registry.Memory,
	rec: func(sn *sample.Snapshot) *sample.Memory { return sn.Memory },
	binds: []scalarBinding[sample.Memory]{
		{registry.MemUtilAnon, func(r *sample.Memory) string { return utoa(r.AnonPagesKB) }},
		{registry.MemUtilSlab, func(r *sample.Memory) string { return utoa(r.SlabKB) }},
		{registry.MemUtilKStack, func(r *sample.Memory) string { return utoa(r.KernelStackKB) }},
		{registry.MemUtilPgTable, func(r *sample.Memory) string { return utoa(r.PageTablesKB) }},
		{registry.MemUtilVmalloc, func(r *sample.Memory) string { return utoa(r.VmallocUsedKB) }},
	},
}

var memSwap = scalarGroup[sample.Memory]{
	act: registry.Memory,
	rec: func(sn *sample.Snapshot) *sample.Memory { return sn.Memory },
	binds: []scalarBinding[sample.Memory]{
		{registry.MemUtilSwapFree, func(r *sample.Memory) string { return utoa(r.SwapFreeKB) }},
		{registry.MemUtilSwapTotal, func(r *sample.Memory) string { return utoa(r.SwapTotalKB) }},
		{registry.MemUtilSwapCached, func(r *sample.Memory) string { return utoa(r.SwapCachedKB) }},
	},
}

func (s *Session) writeMemory(snap *sample.Snapshot) error {
	if snap.Memory == nil {
		return nil
	}
	if err := memBase.write(s, snap); err != nil {
		return err
	}
	if s.memDetails {
		if err := memDetails.write(s, snap); err != nil {
			return err
		}
	}
	return memSwap.write(s, snap)
}

// writeQueue emits the run queue gauges and the three load averages,
// stored as hundredths in the record.
func (s *Session) writeQueue(snap *sample.Snapshot) error {
	q := snap.Queue
	if q == nil {
		return nil
	}
	if err := s.put(registry.Queue, registry.KQueueRunnable, "", utoa(q.Running)); err != nil {
		return err
	}
	if err := s.put(registry.Queue, registry.KQueueProcesses, "", utoa(q.Threads)); err != nil {
		return err
	}
	if err := s.put(registry.Queue, registry.KQueueBlocked, "", utoa(q.Blocked)); err != nil {
		return err
	}
	avgs := [...]uint32{q.LoadAvg1, q.LoadAvg5, q.LoadAvg15}
	for i, in := range registry.LoadAvgWindows {
		if err := s.put(registry.Queue, registry.KQueueLoadAvg, in.Name, ftoa(float64(avgs[i])/100)); err != nil {
			return err
		}
	}
	return nil
}

// putPressureAvgs emits one pressure average per stall window. The
// record stores averages as hundredths of a percent.
func (s *Session) putPressureAvgs(act registry.Activity, idx int, avg10, avg60, avg300 uint32) error {
	avgs := [...]uint32{avg10, avg60, avg300}
	for i, in := range registry.PSIWindows {
		if err := s.put(act, idx, in.Name, ftoa(float64(avgs[i])/100)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) writePSICPU(snap *sample.Snapshot) error {
	p := snap.PSICPU
	if p == nil {
		return nil
	}
	if err := s.putPressureAvgs(registry.PSICPU, registry.PSICPUSomeAvg, p.SomeAvg10, p.SomeAvg60, p.SomeAvg300); err != nil {
		return err
	}
	return s.put(registry.PSICPU, registry.PSICPUSomeTotal, "", utoa(p.SomeTotal))
}

func (s *Session) writePSIIO(snap *sample.Snapshot) error {
	p := snap.PSIIO
	if p == nil {
		return nil
	}
	if err := s.putPressureAvgs(registry.PSIIO, registry.PSIIOSomeAvg, p.SomeAvg10, p.SomeAvg60, p.SomeAvg300); err != nil {
		return err
	}
	if err := s.put(registry.PSIIO, registry.PSIIOSomeTotal, "", utoa(p.SomeTotal)); err != nil {
		return err
	}
	if err := s.putPressureAvgs(registry.PSIIO, registry.PSIIOFullAvg, p.FullAvg10, p.FullAvg60, p.FullAvg300); err != nil {
		return err
	}
	return s.put(registry.PSIIO, registry.PSIIOFullTotal, "", utoa(p.FullTotal))
}

func (s *Session) writePSIMem(snap *sample.Snapshot) error {
	p := snap.PSIMem
	if p == nil {
		return nil
	}
	if err := s.putPressureAvgs(registry.PSIMem, registry.PSIMemSomeAvg, p.SomeAvg10, p.SomeAvg60, p.SomeAvg300); err != nil {
		return err
	}
	if err := s.put(registry.PSIMem, registry.PSIMemSomeTotal, "", utoa(p.SomeTotal)); err != nil {
		return err
	}
	if err := s.putPressureAvgs(registry.PSIMem, registry.PSIMemFullAvg, p.FullAvg10, p.FullAvg60, p.FullAvg300); err != nil {
		return err
	}
	return s.put(registry.PSIMem, registry.PSIMemFullTotal, "", utoa(p.FullTotal))
}

// putNFSRequests emits the per-operation request counters, ordered
// getattr, read, write, access like the fixed instance table.
func (s *Session) putNFSRequests(act registry.Activity, idx int, getattr, read, write, access uint32) error {
	reqs := [...]uint32{getattr, read, write, access}
	for i, in := range registry.NFSRequests {
		if err := s.put(act, idx, in.Name, utoa(reqs[i])); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) writeNFSClient(snap *sample.Snapshot) error {
	n := snap.NFSClient
	if n == nil {
		return nil
	}
	if err := s.put(registry.NFSClient, registry.NFSClientRPCCnt, "", utoa(n.RPCCalls)); err != nil {
		return err
	}
	if err := s.put(registry.NFSClient, registry.NFSClientRPCRetrans, "", utoa(n.RPCRetrans)); err != nil {
		return err
	}
	return s.putNFSRequests(registry.NFSClient, registry.NFSClientRequests, n.Getattrs, n.Reads, n.Writes, n.Accesses)
}

func (s *Session) writeNFSServer(snap *sample.Snapshot) error {
	n := snap.NFSServer
	if n == nil {
		return nil
	}
	puts := []struct {
		idx  int
		text string
	}{
		{registry.NFSServerRPCCnt, utoa(n.RPCCalls)},
		{registry.NFSServerRPCBadClnt, utoa(n.RPCBadCalls)},
		{registry.NFSServerNetCnt, utoa(n.NetPackets)},
		{registry.NFSServerNetUDPCnt, utoa(n.NetUDP)},
		{registry.NFSServerNetTCPCnt, utoa(n.NetTCP)},
		{registry.NFSServerRCHits, utoa(n.CacheHits)},
		{registry.NFSServerRCMisses, utoa(n.CacheMisses)},
	}
	for _, p := range puts {
		if err := s.put(registry.NFSServer, p.idx, "", p.text); err != nil {
			return err
		}
	}
	return s.putNFSRequests(registry.NFSServer, registry.NFSServerRequests, n.Getattrs, n.Reads, n.Writes, n.Accesses)
}
