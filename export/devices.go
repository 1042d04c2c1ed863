// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// writeDisks emits per-device transfer counters. Sector counts become
// kilobytes. disk.dev.read, disk.dev.write and disk.dev.total_bytes
// stay registered but unset: the record carries no per-direction
// operation counts to fill them.
func (s *Session) writeDisks(snap *sample.Snapshot) error {
	for i := range snap.Disks {
		d := &snap.Disks[i]
		if !selected(s.disks, d.Name) {
			continue
		}
		if _, err := s.diskKeys.declare(s.pmi, d.Name); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.DiskPerDevTotal, utoa(d.IOs)},
			{registry.DiskPerDevReadBytes, utoa(d.ReadSectors / 2)},
			{registry.DiskPerDevWriteBytes, utoa(d.WriteSectors / 2)},
			{registry.DiskPerDevDiscardBytes, utoa(d.DiscardSectors / 2)},
			{registry.DiskPerDevReadActive, utoa(d.ReadTicks)},
			{registry.DiskPerDevWriteActive, utoa(d.WriteTicks)},
			{registry.DiskPerDevTotalActive, utoa(d.ReadTicks + d.WriteTicks)},
			{registry.DiskPerDevDiscardActive, utoa(d.DiscardTicks)},
			{registry.DiskPerDevAvActive, utoa(d.TotalTicks)},
			{registry.DiskPerDevAvQueue, utoa(d.QueueTicks)},
		}
		for _, p := range puts {
			if err := s.put(registry.Disk, p.idx, d.Name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) writeNetDevs(snap *sample.Snapshot) error {
	for i := range snap.NetDevs {
		n := &snap.NetDevs[i]
		if !selected(s.ifaces, n.Iface) {
			continue
		}
		if _, err := s.ifaceKeys.declare(s.pmi, n.Iface); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.NetPerIntfInPackets, utoa(n.RxPackets)},
			{registry.NetPerIntfOutPackets, utoa(n.TxPackets)},
			{registry.NetPerIntfInBytes, utoa(n.RxBytes)},
			{registry.NetPerIntfOutBytes, utoa(n.TxBytes)},
			{registry.NetPerIntfInCompress, utoa(n.RxCompressed)},
			{registry.NetPerIntfOutCompress, utoa(n.TxCompressed)},
			{registry.NetPerIntfInMulticast, utoa(n.Multicast)},
		}
		for _, p := range puts {
			if err := s.put(registry.NetDev, p.idx, n.Iface, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) writeNetDevErrors(snap *sample.Snapshot) error {
	for i := range snap.NetDevErrors {
		n := &snap.NetDevErrors[i]
		if !selected(s.ifaces, n.Iface) {
			continue
		}
		if _, err := s.ifaceKeys.declare(s.pmi, n.Iface); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.NetEPerIntfInErrors, utoa(n.RxErrors)},
			{registry.NetEPerIntfOutErrors, utoa(n.TxErrors)},
			{registry.NetEPerIntfCollisions, utoa(n.Collisions)},
			{registry.NetEPerIntfInDrops, utoa(n.RxDropped)},
			{registry.NetEPerIntfOutDrops, utoa(n.TxDropped)},
			{registry.NetEPerIntfOutCarrier, utoa(n.TxCarrierErrors)},
			{registry.NetEPerIntfInFrame, utoa(n.RxFrameErrors)},
			{registry.NetEPerIntfInFIFO, utoa(n.RxFIFOErrors)},
			{registry.NetEPerIntfOutFIFO, utoa(n.TxFIFOErrors)},
		}
		for _, p := range puts {
			if err := s.put(registry.NetDevErrors, p.idx, n.Iface, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSerial names each line after its kernel line number, which also
// serves as the instance key.
func (s *Session) writeSerial(snap *sample.Snapshot) error {
	for i := range snap.Serial {
		t := &snap.Serial[i]
		name := "serial" + utoa(t.Line)
		if err := s.pmi.AddInstance(registry.SerialInDom, name, int32(t.Line)); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.SerialPerTTYRx, utoa(t.Rx)},
			{registry.SerialPerTTYTx, utoa(t.Tx)},
			{registry.SerialPerTTYFrame, utoa(t.Frame)},
			{registry.SerialPerTTYParity, utoa(t.Parity)},
			{registry.SerialPerTTYBrk, utoa(t.Break)},
			{registry.SerialPerTTYOverrun, utoa(t.Overrun)},
		}
		for _, p := range puts {
			if err := s.put(registry.Serial, p.idx, name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeFilesystems emits capacity gauges in kilobytes plus the fill
// percentage. A filesystem reporting zero blocks yields zero percent
// rather than NaN.
func (s *Session) writeFilesystems(snap *sample.Snapshot) error {
	for i := range snap.Filesystems {
		f := &snap.Filesystems[i]
		if !selected(s.filesystems, f.Name) {
			continue
		}
		if _, err := s.fsKeys.declare(s.pmi, f.Name); err != nil {
			return err
		}
		var full float64
		if f.Blocks > 0 {
			full = float64(f.Blocks-f.Free) / float64(f.Blocks) * 100
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.FilesysCapacity, utoa(f.Blocks / 1024)},
			{registry.FilesysFree, utoa(f.Free / 1024)},
			{registry.FilesysUsed, utoa((f.Blocks - f.Free) / 1024)},
			{registry.FilesysFull, ftoa(full)},
			{registry.FilesysMaxFiles, utoa(f.Files)},
			{registry.FilesysFreeFiles, utoa(f.FreeFiles)},
			{registry.FilesysUsedFiles, utoa(f.Files - f.FreeFiles)},
			{registry.FilesysAvail, utoa(f.Available / 1024)},
		}
		for _, p := range puts {
			if err := s.put(registry.Filesystem, p.idx, f.Name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeFCHosts emits Fibre Channel transfer counters. Word counts are
// 4-byte words and are published as bytes.
func (s *Session) writeFCHosts(snap *sample.Snapshot) error {
	for i := range snap.FCHosts {
		h := &snap.FCHosts[i]
		if _, err := s.fcKeys.declare(s.pmi, h.Name); err != nil {
			return err
		}
		puts := []struct {
			idx  int
			text string
		}{
			{registry.FCHostInFrames, utoa(h.RxFrames)},
			{registry.FCHostOutFrames, utoa(h.TxFrames)},
			{registry.FCHostInBytes, utoa(h.RxWords * 4)},
			{registry.FCHostOutBytes, utoa(h.TxWords * 4)},
		}
		for _, p := range puts {
			if err := s.put(registry.FCHost, p.idx, h.Name, p.text); err != nil {
				return err
			}
		}
	}
	return nil
}
