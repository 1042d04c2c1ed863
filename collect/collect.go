// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package collect fills snapshots from the live kernel. One Collector
// owns the previous cycle's processor table so successive snapshots
// carry the row pairs the per-processor interval math needs.
package collect // import "github.com/sysstat/sapcp/collect"

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/sysstat/sapcp/devname"
	"github.com/sysstat/sapcp/internal/procfs"
	"github.com/sysstat/sapcp/sample"
)

// Config carries the collector's bindings.
type Config struct {
	// FS locates /proc and /sys. The zero value means the live kernel.
	FS procfs.FS

	// Names resolves block device numbers for disk instance labels.
	// Without a resolver rows keep their kernel names.
	Names *devname.Resolver
}

// Collector gathers one snapshot per call.
type Collector struct {
	fs      procfs.FS
	names   *devname.Resolver
	prevCPU []sample.CPU
}

// New returns a Collector. The first snapshot carries no previous
// processor rows.
func New(cfg Config) *Collector {
	fs := cfg.FS
	if fs == (procfs.FS{}) {
		fs = procfs.Default
	}
	return &Collector{fs: fs, names: cfg.Names}
}

// Collect reads every available source once. Sources grouped together
// below share a goroutine; the groups run concurrently. Subsystems this
// kernel does not expose leave their snapshot fields empty.
func (c *Collector) Collect(ctx context.Context) (*sample.Snapshot, error) {
	snap := &sample.Snapshot{Time: time.Now()}

	var (
		st      *procfs.Stat
		disks   []procfs.DiskStat
		freqs   []sample.CPUFreq
		softnet []sample.Softnet
		irqs    []sample.Interrupt
		mounts  []procfs.Mount
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if st, err = c.fs.Stat(); err != nil {
			return err
		}
		if snap.Uptime, err = c.fs.Uptime(); err != nil {
			return err
		}
		if snap.Queue, err = c.fs.LoadAvg(); err != nil {
			return err
		}
		vm, err := c.fs.Vmstat()
		if err != nil {
			return err
		}
		if vm != nil {
			snap.Swap = &vm.Swap
			snap.Paging = &vm.Paging
		}
		mi, err := c.fs.Meminfo()
		if err != nil {
			return err
		}
		if mi != nil {
			snap.Memory = &mi.Memory
			snap.Huge = &mi.Huge
		}
		if snap.KTables, err = c.fs.KTables(); err != nil {
			return err
		}
		if snap.PSICPU, err = c.fs.PSICPU(); err != nil {
			return err
		}
		if snap.PSIIO, err = c.fs.PSIIO(); err != nil {
			return err
		}
		snap.PSIMem, err = c.fs.PSIMem()
		return err
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if disks, err = c.fs.Diskstats(); err != nil {
			return err
		}
		mounts, err = c.fs.Mounts()
		return err
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if snap.NetDevs, snap.NetDevErrors, err = c.fs.NetDev(); err != nil {
			return err
		}
		if softnet, err = c.fs.Softnet(); err != nil {
			return err
		}
		s4, err := c.fs.SNMP()
		if err != nil {
			return err
		}
		if s4 != nil {
			snap.IP, snap.IPErrors = &s4.IP, &s4.IPErrors
			snap.ICMP, snap.ICMPErrors = &s4.ICMP, &s4.ICMPErrors
			snap.TCP, snap.TCPErrors = &s4.TCP, &s4.TCPErrors
			snap.UDP = &s4.UDP
		}
		s6, err := c.fs.SNMP6()
		if err != nil {
			return err
		}
		if s6 != nil {
			snap.IP6, snap.IP6Errors = &s6.IP6, &s6.IP6Errors
			snap.ICMP6, snap.ICMP6Errors = &s6.ICMP6, &s6.ICMP6Errors
			snap.UDP6 = &s6.UDP6
		}
		if snap.Sock, err = c.fs.Sockstat(); err != nil {
			return err
		}
		if snap.Sock6, err = c.fs.Sockstat6(); err != nil {
			return err
		}
		if snap.NFSClient, err = c.fs.NFSClient(); err != nil {
			return err
		}
		snap.NFSServer, err = c.fs.NFSServer()
		return err
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if irqs, err = c.fs.Interrupts(); err != nil {
			return err
		}
		if freqs, err = c.fs.CPUFreq(); err != nil {
			return err
		}
		snap.Serial, err = c.fs.Serial()
		return err
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if snap.Fans, err = c.fs.Fans(); err != nil {
			return err
		}
		if snap.Temps, err = c.fs.Temps(); err != nil {
			return err
		}
		if snap.Voltages, err = c.fs.Voltages(); err != nil {
			return err
		}
		if snap.Batteries, err = c.fs.Batteries(); err != nil {
			return err
		}
		if snap.USB, err = c.fs.USBDevices(); err != nil {
			return err
		}
		snap.FCHosts, err = c.fs.FCHosts()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if st != nil {
		snap.CPU = st.CPUs
		snap.PCSW = &sample.PCSW{
			ContextSwitches: st.ContextSwitches,
			Forks:           st.Forks,
		}
		if snap.Queue != nil {
			snap.Queue.Blocked = st.Blocked
		}
	}
	snap.PrevCPU = c.prevCPU
	c.prevCPU = snap.CPU

	if len(freqs) > 0 {
		snap.CPUFreq = withMeanRow(freqs)
	}
	if len(softnet) > 0 {
		snap.Softnet = withSumRow(softnet)
	}
	if len(irqs) > 0 {
		snap.Interrupts = append(
			[]sample.Interrupt{procfs.SumInterrupts(irqs)}, irqs...)
	}

	snap.IO, snap.Disks = c.splitDisks(disks)
	snap.Filesystems = statMounts(mounts)
	return snap, nil
}

// splitDisks sums the machine-wide transfer counters and keeps the
// whole devices, resolved to display names, as the disk table.
// Partition rows only feed the totals through their parent device.
func (c *Collector) splitDisks(disks []procfs.DiskStat) (*sample.IO, []sample.Disk) {
	if disks == nil {
		return nil, nil
	}
	io := &sample.IO{}
	var whole []sample.Disk
	for i := range disks {
		d := &disks[i]
		if !c.fs.BlockDevice(d.Name) {
			continue
		}
		io.Transfers += d.IOs
		io.Reads += d.Reads
		io.Writes += d.Writes
		io.Discards += d.Discards
		io.ReadUnits += d.ReadSectors
		io.WriteUnits += d.WriteSectors
		io.DiscardUnits += d.DiscardSectors

		disk := d.Disk
		if c.names != nil {
			disk.Name = c.names.Name(disk.Major, disk.Minor, disk.Name)
		}
		whole = append(whole, disk)
	}
	return io, whole
}

// statMounts turns the block device mounts into filesystem capacity
// rows. Mounts that cannot be statted are skipped.
func statMounts(mounts []procfs.Mount) []sample.Filesystem {
	var fsRows []sample.Filesystem
	for _, m := range mounts {
		var buf unix.Statfs_t
		if err := unix.Statfs(m.Target, &buf); err != nil {
			log.Debugf("Skipping filesystem %s: statfs %s: %v",
				m.Source, m.Target, err)
			continue
		}
		bsize := uint64(buf.Bsize)
		fsRows = append(fsRows, sample.Filesystem{
			Name:      m.Source,
			Blocks:    buf.Blocks * bsize,
			Free:      buf.Bfree * bsize,
			Available: buf.Bavail * bsize,
			Files:     buf.Files,
			FreeFiles: buf.Ffree,
		})
	}
	return fsRows
}

// withMeanRow prepends the machine row, the mean clock, to a per
// processor frequency table.
func withMeanRow(freqs []sample.CPUFreq) []sample.CPUFreq {
	var total uint64
	for _, f := range freqs {
		total += f.Freq
	}
	table := make([]sample.CPUFreq, 0, len(freqs)+1)
	table = append(table, sample.CPUFreq{Freq: total / uint64(len(freqs))})
	return append(table, freqs...)
}

// withSumRow prepends the machine row, the column sums, to a per
// processor softnet table.
func withSumRow(rows []sample.Softnet) []sample.Softnet {
	var sum sample.Softnet
	for _, r := range rows {
		sum.Processed += r.Processed
		sum.Dropped += r.Dropped
		sum.TimeSqueeze += r.TimeSqueeze
		sum.ReceivedRPS += r.ReceivedRPS
		sum.FlowLimit += r.FlowLimit
		sum.BacklogLen += r.BacklogLen
	}
	table := make([]sample.Softnet, 0, len(rows)+1)
	table = append(table, sum)
	return append(table, rows...)
}
