// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// HostInfo carries the host description written once per archive
// through the file header group.
type HostInfo struct {
	CPUCount int   // configured processors
	Hertz    int64 // kernel clock ticks per second
	Sysname  string
	Release  string
	Nodename string
	Machine  string
}

// Config selects what a Session registers and emits.
type Config struct {
	// Host supplies the file header values.
	Host HostInfo

	// Activities lists the groups to register and write. Empty means
	// every group. The file and record header groups are always
	// included.
	Activities []registry.Activity

	// CPUs selects processors by number; nil selects all. The
	// machine-wide row is emitted regardless.
	CPUs *sample.CPUSet

	// Disks, Interfaces, IRQs and Filesystems select dynamic entities
	// by name. An empty list selects all.
	Disks       []string
	Interfaces  []string
	IRQs        []string
	Filesystems []string

	// MemoryDetails adds the extended memory gauges to the memory
	// group output.
	MemoryDetails bool
}

// Session writes snapshots into an archive session. It owns the
// instance key assignment of the dynamic domains and the once-only
// emission of the file header group. Not safe for concurrent use.
type Session struct {
	pmi *pmi.Session
	reg *registry.Registry

	host  HostInfo
	order []registry.Activity // selected groups in table order

	cpus        *sample.CPUSet
	disks       map[string]struct{}
	ifaces      map[string]struct{}
	irqs        map[string]struct{}
	filesystems map[string]struct{}
	memDetails  bool

	wroteHeader bool
	irqOwnsSum  bool

	valuesPut      uint64
	samplesWritten uint64

	diskKeys   *instanceSeq
	ifaceKeys  *instanceSeq
	irqKeys    *instanceSeq
	irqCPUKeys *instanceSeq
	fsKeys     *instanceSeq
	fcKeys     *instanceSeq
}

// New registers the configured metric groups on ps and returns a
// Session writing to it. The caller remains responsible for closing
// ps once the last snapshot has been written.
func New(ps *pmi.Session, cfg *Config) (*Session, error) {
	if cfg.Host.CPUCount < 1 {
		return nil, errors.New("export: host processor count not set")
	}
	if cfg.Host.Hertz < 1 {
		return nil, errors.New("export: host clock rate not set")
	}
	sel, err := selectActivities(cfg.Activities)
	if err != nil {
		return nil, err
	}
	s := &Session{
		pmi:         ps,
		reg:         registry.New(),
		host:        cfg.Host,
		cpus:        cfg.CPUs,
		disks:       nameSet(cfg.Disks),
		ifaces:      nameSet(cfg.Interfaces),
		irqs:        nameSet(cfg.IRQs),
		filesystems: nameSet(cfg.Filesystems),
		memDetails:  cfg.MemoryDetails,
		diskKeys:    newInstanceSeq(registry.DiskInDom),
		ifaceKeys:   newInstanceSeq(registry.NetDevInDom),
		irqKeys:     newInstanceSeq(registry.IRQInDom),
		irqCPUKeys:  newInstanceSeq(registry.IRQCPUInDom),
		fsKeys:      newInstanceSeq(registry.FilesysInDom),
		fcKeys:      newInstanceSeq(registry.FCHostInDom),
	}
	if err := s.register(sel); err != nil {
		return nil, err
	}
	// The interrupt sum row shares its metric name with the cpu
	// group's interrupt time counter. Whichever group registers first
	// owns the name, and the table order puts the cpu group first.
	s.irqOwnsSum = sel[registry.IRQ] && !sel[registry.CPU]
	return s, nil
}

func selectActivities(acts []registry.Activity) (map[registry.Activity]bool, error) {
	all := registry.Activities()
	sel := make(map[registry.Activity]bool, len(all))
	if len(acts) == 0 {
		for _, a := range all {
			sel[a] = true
		}
		return sel, nil
	}
	for _, a := range acts {
		if int(a) < 0 || int(a) >= len(all) {
			return nil, fmt.Errorf("export: unknown activity %s", a)
		}
		sel[a] = true
	}
	sel[registry.FileHeader] = true
	sel[registry.RecordHeader] = true
	return sel, nil
}

// register declares the descriptors and fixed instances of every
// selected group. Metric names shared between groups are registered
// once, by the first group in table order that carries them.
func (s *Session) register(sel map[registry.Activity]bool) error {
	added := make(map[string]struct{}, s.reg.Len())
	addDesc := func(d pmi.Desc) error {
		if _, ok := added[d.Name]; ok {
			return nil
		}
		if err := s.pmi.AddMetric(d); err != nil {
			return fmt.Errorf("failed to register %s: %w", d.Name, err)
		}
		added[d.Name] = struct{}{}
		return nil
	}
	addInstances := func(dom pmi.InDom, insts []registry.Instance) error {
		for _, in := range insts {
			if err := s.pmi.AddInstance(dom, in.Name, in.Key); err != nil {
				return err
			}
		}
		return nil
	}
	for _, act := range registry.Activities() {
		if !sel[act] {
			continue
		}
		for _, d := range s.reg.Group(act).Metrics() {
			if err := addDesc(d); err != nil {
				return err
			}
		}
		var err error
		switch act {
		case registry.IRQ:
			// The per-processor interrupt matrix metric sits in the
			// cpu table but is driven by interrupt samples.
			err = addDesc(s.reg.Group(registry.CPU).Metric(registry.CPUPerCPUInterrupts))
		case registry.Queue:
			err = addInstances(registry.LoadAvgInDom, registry.LoadAvgWindows)
		case registry.PSICPU, registry.PSIIO, registry.PSIMem:
			err = addInstances(registry.PSIInDom, registry.PSIWindows)
		case registry.NFSClient, registry.NFSServer:
			err = addInstances(registry.NFSReqInDom, registry.NFSRequests)
		}
		if err != nil {
			return err
		}
		if act != registry.FileHeader && act != registry.RecordHeader {
			s.order = append(s.order, act)
		}
	}
	log.Debugf("registered %d metrics across %d activity groups", len(added), len(s.order))
	return nil
}

func nameSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// selected reports whether a dynamic entity passes its name filter. A
// nil filter selects everything.
func selected(set map[string]struct{}, name string) bool {
	if set == nil {
		return true
	}
	_, ok := set[name]
	return ok
}

// instanceSeq hands out instance keys for a domain whose population is
// only discovered from live data. Keys are assigned in first-seen
// order and never reassigned for the life of the session.
type instanceSeq struct {
	dom  pmi.InDom
	keys map[string]int32
}

func newInstanceSeq(dom pmi.InDom) *instanceSeq {
	return &instanceSeq{dom: dom, keys: map[string]int32{}}
}

// declare registers name on first sight and returns its key.
func (q *instanceSeq) declare(ps *pmi.Session, name string) (int32, error) {
	if key, ok := q.keys[name]; ok {
		return key, nil
	}
	key := int32(len(q.keys))
	if err := ps.AddInstance(q.dom, name, key); err != nil {
		return 0, err
	}
	q.keys[name] = key
	return key, nil
}

// put stages one emission for the metric at index idx of act's group.
// Indexes are compile time constants and the group table panics on an
// index outside the group.
func (s *Session) put(act registry.Activity, idx int, instance, text string) error {
	if err := s.pmi.PutValue(s.reg.Group(act).Metric(idx).Name, instance, text); err != nil {
		return err
	}
	s.valuesPut++
	return nil
}

// ValuesWritten returns the number of metric values staged so far.
func (s *Session) ValuesWritten() uint64 {
	return s.valuesPut
}

// SamplesWritten returns the number of samples committed so far.
func (s *Session) SamplesWritten() uint64 {
	return s.samplesWritten
}

// WriteSnapshot marshals one snapshot and commits it as an archive
// sample at the snapshot's time. The file header values accompany the
// first sample only; the uptime record accompanies every sample.
// Groups the snapshot carries no data for are skipped.
func (s *Session) WriteSnapshot(snap *sample.Snapshot) error {
	if snap == nil {
		return errors.New("export: nil snapshot")
	}
	if !s.wroteHeader {
		if err := s.writeFileHeader(); err != nil {
			return err
		}
		s.wroteHeader = true
	}
	uptime := strconv.FormatFloat(snap.Uptime, 'f', 2, 64)
	if err := s.put(registry.RecordHeader, registry.RecordHeaderKernelUptime, "", uptime); err != nil {
		return err
	}
	for _, act := range s.order {
		w := activityWriters[act]
		if w == nil {
			continue
		}
		if err := w(s, snap); err != nil {
			return fmt.Errorf("failed to write %s sample: %w", act, err)
		}
	}
	if err := s.pmi.Commit(snap.Time); err != nil {
		return err
	}
	s.samplesWritten++
	return nil
}

func (s *Session) writeFileHeader() error {
	puts := []struct {
		idx  int
		text string
	}{
		{registry.FileHeaderCPUCount, strconv.Itoa(s.host.CPUCount)},
		{registry.FileHeaderKernelHertz, strconv.FormatInt(s.host.Hertz, 10)},
		{registry.FileHeaderUnameSysname, s.host.Sysname},
		{registry.FileHeaderUnameRelease, s.host.Release},
		{registry.FileHeaderUnameNodename, s.host.Nodename},
		{registry.FileHeaderUnameMachine, s.host.Machine},
	}
	for _, p := range puts {
		if err := s.put(registry.FileHeader, p.idx, "", p.text); err != nil {
			return err
		}
	}
	return nil
}

// writerFunc marshals one activity group's records from a snapshot.
type writerFunc func(*Session, *sample.Snapshot) error

// activityWriters maps each writable group to its marshaller. The
// header groups are driven by WriteSnapshot itself. Flat counter
// groups share the generic scalar path through their binding tables.
var activityWriters = map[registry.Activity]writerFunc{
	registry.CPU:          (*Session).writeCPU,
	registry.Softnet:      (*Session).writeSoftnet,
	registry.CPUFreq:      (*Session).writeCPUFreq,
	registry.PCSW:         pcswGroup.write,
	registry.IRQ:          (*Session).writeInterrupts,
	registry.Swap:         swapGroup.write,
	registry.Paging:       pagingGroup.write,
	registry.IO:           ioGroup.write,
	registry.Memory:       (*Session).writeMemory,
	registry.KTables:      ktablesGroup.write,
	registry.Queue:        (*Session).writeQueue,
	registry.Disk:         (*Session).writeDisks,
	registry.NetDev:       (*Session).writeNetDevs,
	registry.NetDevErrors: (*Session).writeNetDevErrors,
	registry.Serial:       (*Session).writeSerial,
	registry.NFSClient:    (*Session).writeNFSClient,
	registry.NFSServer:    (*Session).writeNFSServer,
	registry.Sock:         sockGroup.write,
	registry.IP:           ipGroup.write,
	registry.IPErrors:     ipErrGroup.write,
	registry.ICMP:         icmpGroup.write,
	registry.ICMPErrors:   icmpErrGroup.write,
	registry.TCP:          tcpGroup.write,
	registry.TCPErrors:    tcpErrGroup.write,
	registry.UDP:          udpGroup.write,
	registry.Sock6:        sock6Group.write,
	registry.IP6:          ip6Group.write,
	registry.IP6Errors:    ip6ErrGroup.write,
	registry.ICMP6:        icmp6Group.write,
	registry.ICMP6Errors:  icmp6ErrGroup.write,
	registry.UDP6:         udp6Group.write,
	registry.Huge:         hugeGroup.write,
	registry.Fan:          (*Session).writeFans,
	registry.Temp:         (*Session).writeTemps,
	registry.Voltage:      (*Session).writeVoltages,
	registry.Battery:      (*Session).writeBatteries,
	registry.USB:          (*Session).writeUSB,
	registry.Filesystem:   (*Session).writeFilesystems,
	registry.FCHost:       (*Session).writeFCHosts,
	registry.PSICPU:       (*Session).writePSICPU,
	registry.PSIIO:        (*Session).writePSIIO,
	registry.PSIMem:       (*Session).writePSIMem,
}
