// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// Header carries the host identity latched from the file header
// metrics, present in an archive's first sample.
type Header struct {
	CPUCount int
	Hertz    int64
	Sysname  string
	Release  string
	Nodename string
	Machine  string
}

// records holds the per-sample state of the flat counter groups. One
// assignment resets the lot at the start of a cycle.
type records struct {
	pcsw     sample.PCSW
	swap     sample.Swap
	paging   sample.Paging
	io       sample.IO
	memory   sample.Memory
	huge     sample.Huge
	ktables  sample.KTables
	queue    sample.Queue
	nfsc     sample.NFSClient
	nfss     sample.NFSServer
	sock     sample.Sock
	ip       sample.IP
	ipErr    sample.IPErrors
	icmp     sample.ICMP
	icmpErr  sample.ICMPErrors
	tcp      sample.TCP
	tcpErr   sample.TCPErrors
	udp      sample.UDP
	sock6    sample.Sock6
	ip6      sample.IP6
	ip6Err   sample.IP6Errors
	icmp6    sample.ICMP6
	icmp6Err sample.ICMP6Errors
	udp6     sample.UDP6
	psiCPU   sample.PSICPU
	psiIO    sample.PSIIO
	psiMem   sample.PSIMem
}

// Store accumulates decoded archive values into per-activity state and
// materializes one snapshot per cycle. Processor tables and entity
// tables grow but never shrink, so a row keeps its index for the life
// of the store.
type Store struct {
	reg   *registry.Registry
	cycle int
	time  time.Time

	header Header
	uptime float64
	seen   []bool

	recs records

	cpu     sample.Buffer[sample.CPU]
	freq    sample.Buffer[sample.CPUFreq]
	softnet sample.Buffer[sample.Softnet]
	irqs    irqTable

	disks     table[sample.Disk]
	netdevs   table[sample.NetDev]
	netErrs   table[sample.NetDevErrors]
	lines     table[sample.Serial]
	mounts    table[sample.Filesystem]
	fchosts   table[sample.FCHost]
	fans      table[sample.Fan]
	temps     table[sample.Temp]
	voltages  table[sample.Voltage]
	batteries table[sample.Battery]
	usb       table[sample.USB]
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{
		reg:  registry.New(),
		seen: make([]bool, len(registry.Activities())),
	}
	s.disks.init = func(d *sample.Disk, _ int32, name string) { d.Name = name }
	s.netdevs.init = func(n *sample.NetDev, _ int32, name string) { n.Iface = name }
	s.netErrs.init = func(n *sample.NetDevErrors, _ int32, name string) { n.Iface = name }
	s.lines.init = func(l *sample.Serial, key int32, _ string) { l.Line = uint32(key) }
	s.mounts.init = func(f *sample.Filesystem, _ int32, name string) { f.Name = name }
	s.fchosts.init = func(h *sample.FCHost, _ int32, name string) { h.Name = name }
	s.batteries.init = func(b *sample.Battery, key int32, _ string) { b.ID = uint32(key) }
	return s
}

// Begin starts the next cycle at the given timestamp. The previous
// processor table stays readable as the prior cycle; everything else
// resets.
func (s *Store) Begin(t time.Time) {
	s.cycle++
	s.time = t
	s.uptime = 0
	for i := range s.seen {
		s.seen[i] = false
	}
	s.recs = records{}
	s.cpu.Swap()
	s.cpu.Acquire(0)
	s.freq.Swap()
	s.freq.Acquire(0)
	s.softnet.Swap()
	s.softnet.Acquire(0)
}

// Apply routes one decoded value to the reader of its owning group. A
// metric id outside the registry yields an UnknownMetricError; a
// registered metric with no reader yields an UnsupportedMetricError.
func (s *Store) Apply(v *pmi.Value) error {
	b, ok := s.reg.Lookup(v.Desc.ID)
	if !ok {
		return &UnknownMetricError{ID: v.Desc.ID, Name: v.Desc.Name}
	}
	rds := groupReaders[b.Act]
	if b.Index >= len(rds) || rds[b.Index] == nil {
		return &UnsupportedMetricError{ID: v.Desc.ID, Name: v.Desc.Name}
	}
	if err := rds[b.Index](s, v); err != nil {
		return fmt.Errorf("decoding %s: %w", v.Desc.Name, err)
	}
	s.seen[b.Act] = true
	return nil
}

// Header returns the latched host identity.
func (s *Store) Header() Header { return s.header }

// Snapshot materializes the current cycle. Slices and record pointers
// reference store internals and stay valid until the next Begin.
func (s *Store) Snapshot() *sample.Snapshot {
	snap := &sample.Snapshot{Time: s.time, Uptime: s.uptime}
	if s.seen[registry.CPU] {
		snap.CPU = s.cpu.Curr()
		snap.PrevCPU = s.cpu.Prev()
	}
	if s.seen[registry.CPUFreq] {
		snap.CPUFreq = s.freq.Curr()
	}
	if s.seen[registry.Softnet] {
		snap.Softnet = s.softnet.Curr()
	}
	snap.Interrupts = s.irqs.collect(s.cycle)
	snap.Disks = s.disks.collect(s.cycle)
	snap.NetDevs = s.netdevs.collect(s.cycle)
	snap.NetDevErrors = s.netErrs.collect(s.cycle)
	snap.Serial = s.lines.collect(s.cycle)
	snap.Filesystems = s.mounts.collect(s.cycle)
	snap.FCHosts = s.fchosts.collect(s.cycle)
	snap.Fans = s.fans.collect(s.cycle)
	snap.Temps = s.temps.collect(s.cycle)
	snap.Voltages = s.voltages.collect(s.cycle)
	snap.Batteries = s.batteries.collect(s.cycle)
	snap.USB = s.usb.collect(s.cycle)
	if s.seen[registry.PCSW] {
		snap.PCSW = &s.recs.pcsw
	}
	if s.seen[registry.Swap] {
		snap.Swap = &s.recs.swap
	}
	if s.seen[registry.Paging] {
		snap.Paging = &s.recs.paging
	}
	if s.seen[registry.IO] {
		snap.IO = &s.recs.io
	}
	if s.seen[registry.Memory] {
		snap.Memory = &s.recs.memory
	}
	if s.seen[registry.Huge] {
		snap.Huge = &s.recs.huge
	}
	if s.seen[registry.KTables] {
		snap.KTables = &s.recs.ktables
	}
	if s.seen[registry.Queue] {
		snap.Queue = &s.recs.queue
	}
	if s.seen[registry.NFSClient] {
		snap.NFSClient = &s.recs.nfsc
	}
	if s.seen[registry.NFSServer] {
		snap.NFSServer = &s.recs.nfss
	}
	if s.seen[registry.Sock] {
		snap.Sock = &s.recs.sock
	}
	if s.seen[registry.IP] {
		snap.IP = &s.recs.ip
	}
	if s.seen[registry.IPErrors] {
		snap.IPErrors = &s.recs.ipErr
	}
	if s.seen[registry.ICMP] {
		snap.ICMP = &s.recs.icmp
	}
	if s.seen[registry.ICMPErrors] {
		snap.ICMPErrors = &s.recs.icmpErr
	}
	if s.seen[registry.TCP] {
		snap.TCP = &s.recs.tcp
	}
	if s.seen[registry.TCPErrors] {
		snap.TCPErrors = &s.recs.tcpErr
	}
	if s.seen[registry.UDP] {
		snap.UDP = &s.recs.udp
	}
	if s.seen[registry.Sock6] {
		snap.Sock6 = &s.recs.sock6
	}
	if s.seen[registry.IP6] {
		snap.IP6 = &s.recs.ip6
	}
	if s.seen[registry.IP6Errors] {
		snap.IP6Errors = &s.recs.ip6Err
	}
	if s.seen[registry.ICMP6] {
		snap.ICMP6 = &s.recs.icmp6
	}
	if s.seen[registry.ICMP6Errors] {
		snap.ICMP6Errors = &s.recs.icmp6Err
	}
	if s.seen[registry.UDP6] {
		snap.UDP6 = &s.recs.udp6
	}
	if s.seen[registry.PSICPU] {
		snap.PSICPU = &s.recs.psiCPU
	}
	if s.seen[registry.PSIIO] {
		snap.PSIIO = &s.recs.psiIO
	}
	if s.seen[registry.PSIMem] {
		snap.PSIMem = &s.recs.psiMem
	}
	return snap
}

var headerReaders = []applyFunc{
	registry.FileHeaderCPUCount: func(s *Store, v *pmi.Value) error {
		n, err := strconv.Atoi(v.Text)
		if err != nil {
			return err
		}
		s.header.CPUCount = n
		return nil
	},
	registry.FileHeaderKernelHertz: func(s *Store, v *pmi.Value) error {
		hz, err := strconv.ParseInt(v.Text, 10, 64)
		if err != nil {
			return err
		}
		s.header.Hertz = hz
		return nil
	},
	registry.FileHeaderUnameSysname: func(s *Store, v *pmi.Value) error {
		s.header.Sysname = v.Text
		return nil
	},
	registry.FileHeaderUnameRelease: func(s *Store, v *pmi.Value) error {
		s.header.Release = v.Text
		return nil
	},
	registry.FileHeaderUnameNodename: func(s *Store, v *pmi.Value) error {
		s.header.Nodename = v.Text
		return nil
	},
	registry.FileHeaderUnameMachine: func(s *Store, v *pmi.Value) error {
		s.header.Machine = v.Text
		return nil
	},
}

var recordHeaderReaders = []applyFunc{
	registry.RecordHeaderKernelUptime: func(s *Store, v *pmi.Value) error {
		up, err := parseF(v.Text)
		if err != nil {
			return err
		}
		s.uptime = up
		return nil
	},
}

// applyFunc parses one metric's value into the store.
type applyFunc func(*Store, *pmi.Value) error

// groupReaders maps each activity group to its readers, indexed by
// metric position within the group. A nil slot marks a descriptor no
// record field can hold.
var groupReaders = map[registry.Activity][]applyFunc{
	registry.FileHeader:   headerReaders,
	registry.RecordHeader: recordHeaderReaders,
	registry.CPU:          cpuReaders,
	registry.Softnet:      softnetReaders,
	registry.CPUFreq:      freqReaders,
	registry.PCSW:         pcswReaders,
	registry.IRQ:          irqReaders,
	registry.Swap:         swapReaders,
	registry.Paging:       pagingReaders,
	registry.IO:           ioReaders,
	registry.Memory:       memoryReaders,
	registry.KTables:      ktablesReaders,
	registry.Queue:        queueReaders,
	registry.Disk:         diskReaders,
	registry.NetDev:       netdevReaders,
	registry.NetDevErrors: netErrReaders,
	registry.Serial:       serialReaders,
	registry.NFSClient:    nfsClientReaders,
	registry.NFSServer:    nfsServerReaders,
	registry.Sock:         sockReaders,
	registry.IP:           ipReaders,
	registry.IPErrors:     ipErrReaders,
	registry.ICMP:         icmpReaders,
	registry.ICMPErrors:   icmpErrReaders,
	registry.TCP:          tcpReaders,
	registry.TCPErrors:    tcpErrReaders,
	registry.UDP:          udpReaders,
	registry.Sock6:        sock6Readers,
	registry.IP6:          ip6Readers,
	registry.IP6Errors:    ip6ErrReaders,
	registry.ICMP6:        icmp6Readers,
	registry.ICMP6Errors:  icmp6ErrReaders,
	registry.UDP6:         udp6Readers,
	registry.Huge:         hugeReaders,
	registry.Fan:          fanReaders,
	registry.Temp:         tempReaders,
	registry.Voltage:      voltageReaders,
	registry.Battery:      batteryReaders,
	registry.USB:          usbReaders,
	registry.Filesystem:   filesystemReaders,
	registry.FCHost:       fchostReaders,
	registry.PSICPU:       psiCPUReaders,
	registry.PSIIO:        psiIOReaders,
	registry.PSIMem:       psiMemReaders,
}
