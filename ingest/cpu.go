// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// cpuOrdinal maps a value's instance to its processor table slot: the
// machine-wide row for singular values, key+1 for processor keys.
func cpuOrdinal(v *pmi.Value) (int, error) {
	if v.Inst == pmi.InstNull {
		return 0, nil
	}
	if v.Inst < 0 {
		return 0, fmt.Errorf("bad processor instance key %d", v.Inst)
	}
	return int(v.Inst) + 1, nil
}

func (s *Store) cpuRow(v *pmi.Value) (*sample.CPU, uint64, error) {
	ord, err := cpuOrdinal(v)
	if err != nil {
		return nil, 0, err
	}
	n, err := parseU64(v.Text)
	if err != nil {
		return nil, 0, err
	}
	rows := growZero(&s.cpu, ord+1)
	return &rows[ord], n, nil
}

// cpuSet stores a jiffie counter into the row field selected by p. The
// machine-wide and per-processor metrics share one reader since the
// instance picks the row.
func cpuSet(p func(*sample.CPU) *uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		c, n, err := s.cpuRow(v)
		if err != nil {
			return err
		}
		*p(c) = n
		return nil
	}
}

// cpuAdd accumulates into the selected field, for counters published
// net of a guest component that adds itself back separately.
func cpuAdd(p func(*sample.CPU) *uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		c, n, err := s.cpuRow(v)
		if err != nil {
			return err
		}
		*p(c) += n
		return nil
	}
}

// cpuFold stores a guest counter and folds it back into the plain
// counter the writer netted it out of. Arrival order does not matter:
// both sides only add into the folded field.
func cpuFold(guest, folded func(*sample.CPU) *uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		c, n, err := s.cpuRow(v)
		if err != nil {
			return err
		}
		*guest(c) = n
		*folded(c) += n
		return nil
	}
}

// cpuSkip validates the combined interrupt time counter. The hard and
// soft components carry the state.
func cpuSkip(s *Store, v *pmi.Value) error {
	if _, err := parseU64(v.Text); err != nil {
		return err
	}
	if _, err := cpuOrdinal(v); err != nil {
		return err
	}
	return nil
}

// splitCell decodes a "line::cpuN" interrupt cell instance into the
// line name and the processor's table slot.
func splitCell(inst string) (string, int, error) {
	line, cpu, ok := strings.Cut(inst, "::")
	if ok && strings.HasPrefix(cpu, "cpu") {
		if n, err := strconv.Atoi(cpu[len("cpu"):]); err == nil && n >= 0 {
			return line, n + 1, nil
		}
	}
	return "", 0, fmt.Errorf("malformed interrupt cell instance %q", inst)
}

// readIRQCell stores one (line, processor) interrupt cell. The cell
// instance encodes both coordinates.
func readIRQCell(s *Store, v *pmi.Value) error {
	line, slot, err := splitCell(v.Instance)
	if err != nil {
		return err
	}
	n, err := parseU32(v.Text)
	if err != nil {
		return err
	}
	s.irqs.row(line, s.cycle).set(slot, n)
	return nil
}

var cpuReaders = func() []applyFunc {
	user := cpuAdd(func(c *sample.CPU) *uint64 { return &c.User })
	nice := cpuAdd(func(c *sample.CPU) *uint64 { return &c.Nice })
	sys := cpuSet(func(c *sample.CPU) *uint64 { return &c.Sys })
	idle := cpuSet(func(c *sample.CPU) *uint64 { return &c.Idle })
	iowait := cpuSet(func(c *sample.CPU) *uint64 { return &c.Iowait })
	soft := cpuSet(func(c *sample.CPU) *uint64 { return &c.SoftIRQ })
	hard := cpuSet(func(c *sample.CPU) *uint64 { return &c.HardIRQ })
	steal := cpuSet(func(c *sample.CPU) *uint64 { return &c.Steal })
	guest := cpuFold(
		func(c *sample.CPU) *uint64 { return &c.Guest },
		func(c *sample.CPU) *uint64 { return &c.User },
	)
	guestNice := cpuFold(
		func(c *sample.CPU) *uint64 { return &c.GuestNice },
		func(c *sample.CPU) *uint64 { return &c.Nice },
	)
	out := make([]applyFunc, registry.CPUPerCPUInterrupts+1)
	out[registry.CPUAllCPUUser] = user
	out[registry.CPUAllCPUSys] = sys
	out[registry.CPUAllCPUNice] = nice
	out[registry.CPUAllCPUIdle] = idle
	out[registry.CPUAllCPUWaitTotal] = iowait
	out[registry.CPUAllCPUIRQTotal] = cpuSkip
	out[registry.CPUAllCPUIRQSoft] = soft
	out[registry.CPUAllCPUIRQHard] = hard
	out[registry.CPUAllCPUSteal] = steal
	out[registry.CPUAllCPUGuest] = guest
	out[registry.CPUAllCPUGuestNice] = guestNice
	out[registry.CPUPerCPUUser] = user
	out[registry.CPUPerCPUNice] = nice
	out[registry.CPUPerCPUSys] = sys
	out[registry.CPUPerCPUIdle] = idle
	out[registry.CPUPerCPUWaitTotal] = iowait
	out[registry.CPUPerCPUIRQTotal] = cpuSkip
	out[registry.CPUPerCPUIRQSoft] = soft
	out[registry.CPUPerCPUIRQHard] = hard
	out[registry.CPUPerCPUSteal] = steal
	out[registry.CPUPerCPUGuest] = guest
	out[registry.CPUPerCPUGuestNice] = guestNice
	out[registry.CPUPerCPUInterrupts] = readIRQCell
	return out
}()

// softnetField works like cpuSet for the softnet table.
func softnetField(p func(*sample.Softnet) *uint32) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		ord, err := cpuOrdinal(v)
		if err != nil {
			return err
		}
		n, err := parseU32(v.Text)
		if err != nil {
			return err
		}
		rows := growZero(&s.softnet, ord+1)
		*p(&rows[ord]) = n
		return nil
	}
}

var softnetReaders = func() []applyFunc {
	processed := softnetField(func(r *sample.Softnet) *uint32 { return &r.Processed })
	dropped := softnetField(func(r *sample.Softnet) *uint32 { return &r.Dropped })
	squeezed := softnetField(func(r *sample.Softnet) *uint32 { return &r.TimeSqueeze })
	rps := softnetField(func(r *sample.Softnet) *uint32 { return &r.ReceivedRPS })
	flow := softnetField(func(r *sample.Softnet) *uint32 { return &r.FlowLimit })
	backlog := softnetField(func(r *sample.Softnet) *uint32 { return &r.BacklogLen })
	out := make([]applyFunc, registry.SoftnetPerCPUBacklogLength+1)
	out[registry.SoftnetAllCPUProcessed] = processed
	out[registry.SoftnetAllCPUDropped] = dropped
	out[registry.SoftnetAllCPUTimeSqueeze] = squeezed
	out[registry.SoftnetAllCPUReceivedRPS] = rps
	out[registry.SoftnetAllCPUFlowLimit] = flow
	out[registry.SoftnetAllCPUBacklogLength] = backlog
	out[registry.SoftnetPerCPUProcessed] = processed
	out[registry.SoftnetPerCPUDropped] = dropped
	out[registry.SoftnetPerCPUTimeSqueeze] = squeezed
	out[registry.SoftnetPerCPUReceivedRPS] = rps
	out[registry.SoftnetPerCPUFlowLimit] = flow
	out[registry.SoftnetPerCPUBacklogLength] = backlog
	return out
}()

// Clock rates come back from MHz into the stored hundredths.
var freqReaders = []applyFunc{
	registry.PowerPerCPUClock: func(s *Store, v *pmi.Value) error {
		ord, err := cpuOrdinal(v)
		if err != nil {
			return err
		}
		f, err := parseF(v.Text)
		if err != nil {
			return err
		}
		rows := growZero(&s.freq, ord+1)
		rows[ord].Freq = uint64(math.Round(f * 100))
		return nil
	},
}

var irqReaders = []applyFunc{
	// The machine-wide total is the interrupt table's sum pseudo-line.
	registry.IRQAllIRQTotal: func(s *Store, v *pmi.Value) error {
		n, err := parseU32(v.Text)
		if err != nil {
			return err
		}
		s.irqs.row("sum", s.cycle).set(0, n)
		return nil
	},
	registry.IRQPerIRQTotal: func(s *Store, v *pmi.Value) error {
		if v.Instance == "" {
			return fmt.Errorf("interrupt line value without an instance")
		}
		n, err := parseU32(v.Text)
		if err != nil {
			return err
		}
		s.irqs.row(v.Instance, s.cycle).set(0, n)
		return nil
	},
}
