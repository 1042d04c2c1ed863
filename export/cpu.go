// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"strconv"

	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// cpuName returns the instance name of processor n.
func cpuName(n int) string {
	return "cpu" + strconv.Itoa(n)
}

// prevCPU returns the previous cycle's row for ordinal i, or a zero
// row when the processor appeared after the previous cycle.
func prevCPU(prev []sample.CPU, i int) sample.CPU {
	if i < len(prev) {
		return prev[i]
	}
	return sample.CPU{}
}

// cpuCycle summarizes one processor table pair.
type cpuCycle struct {
	// interval holds each ordinal's jiffie delta over the cycle.
	// Ordinal 0 carries the machine interval summed over the online
	// processors (the single processor pair on a uniprocessor),
	// forced to one when zero so rate derivation downstream never
	// divides by zero. A zero per-processor interval marks a
	// processor that ran tickless through the whole cycle.
	interval []uint64
	// offline marks processors with no ticks in either cycle.
	offline []bool
}

func newCPUCycle(curr, prev []sample.CPU) cpuCycle {
	c := cpuCycle{
		interval: make([]uint64, len(curr)),
		offline:  make([]bool, len(curr)),
	}
	for i := 1; i < len(curr); i++ {
		p := prevCPU(prev, i)
		if curr[i].Zero() && p.Zero() {
			c.offline[i] = true
			continue
		}
		c.interval[i] = curr[i].Total() - p.Total()
		c.interval[0] += c.interval[i]
	}
	if len(curr) == 2 {
		c.interval[0] = c.interval[1]
	}
	if c.interval[0] == 0 {
		c.interval[0] = 1
	}
	return c
}

// writeCPU emits the processor time counters. The machine-wide row is
// emitted unconditionally; per-processor rows honor the processor
// selection and skip processors that were offline for the whole
// cycle. A processor that ran tickless gets the fixed sentinel
// utilization instead of its raw counters.
func (s *Session) writeCPU(snap *sample.Snapshot) error {
	curr := snap.CPU
	if len(curr) == 0 {
		return nil
	}
	cycle := newCPUCycle(curr, snap.PrevCPU)
	if err := s.putCPUAll(&curr[0]); err != nil {
		return err
	}
	for i := 1; i < len(curr); i++ {
		if cycle.offline[i] || !s.cpus.Has(i-1) {
			continue
		}
		name := cpuName(i - 1)
		if err := s.pmi.AddInstance(registry.CPUInDom, name, int32(i-1)); err != nil {
			return err
		}
		if cycle.interval[i] == 0 {
			if err := s.putCPUTickless(name); err != nil {
				return err
			}
			continue
		}
		if err := s.putCPUPer(name, &curr[i]); err != nil {
			return err
		}
	}
	return nil
}

// Guest time is folded into user (and guest nice into nice) by the
// kernel, so the plain counters are published net of it.
func (s *Session) putCPUAll(c *sample.CPU) error {
	puts := []struct {
		idx  int
		text string
	}{
		{registry.CPUAllCPUUser, utoa(c.User - c.Guest)},
		{registry.CPUAllCPUSys, utoa(c.Sys)},
		{registry.CPUAllCPUNice, utoa(c.Nice - c.GuestNice)},
		{registry.CPUAllCPUIdle, utoa(c.Idle)},
		{registry.CPUAllCPUWaitTotal, utoa(c.Iowait)},
		{registry.CPUAllCPUIRQTotal, utoa(c.HardIRQ + c.SoftIRQ)},
		{registry.CPUAllCPUIRQSoft, utoa(c.SoftIRQ)},
		{registry.CPUAllCPUIRQHard, utoa(c.HardIRQ)},
		{registry.CPUAllCPUSteal, utoa(c.Steal)},
		{registry.CPUAllCPUGuest, utoa(c.Guest)},
		{registry.CPUAllCPUGuestNice, utoa(c.GuestNice)},
	}
	for _, p := range puts {
		if err := s.put(registry.CPU, p.idx, "", p.text); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) putCPUPer(name string, c *sample.CPU) error {
	puts := []struct {
		idx  int
		text string
	}{
		{registry.CPUPerCPUUser, utoa(c.User - c.Guest)},
		{registry.CPUPerCPUNice, utoa(c.Nice - c.GuestNice)},
		{registry.CPUPerCPUSys, utoa(c.Sys)},
		{registry.CPUPerCPUIdle, utoa(c.Idle)},
		{registry.CPUPerCPUWaitTotal, utoa(c.Iowait)},
		{registry.CPUPerCPUIRQTotal, utoa(c.HardIRQ + c.SoftIRQ)},
		{registry.CPUPerCPUIRQSoft, utoa(c.SoftIRQ)},
		{registry.CPUPerCPUIRQHard, utoa(c.HardIRQ)},
		{registry.CPUPerCPUSteal, utoa(c.Steal)},
		{registry.CPUPerCPUGuest, utoa(c.Guest)},
		{registry.CPUPerCPUGuestNice, utoa(c.GuestNice)},
	}
	for _, p := range puts {
		if err := s.put(registry.CPU, p.idx, name, p.text); err != nil {
			return err
		}
	}
	return nil
}

// putCPUTickless emits the fixed utilization of a processor that ran
// tickless through the whole cycle: zero for every busy counter and
// 100 for idle.
func (s *Session) putCPUTickless(name string) error {
	for _, idx := range []int{
		registry.CPUPerCPUUser,
		registry.CPUPerCPUNice,
		registry.CPUPerCPUSys,
		registry.CPUPerCPUWaitTotal,
		registry.CPUPerCPUIRQTotal,
		registry.CPUPerCPUIRQSoft,
		registry.CPUPerCPUIRQHard,
		registry.CPUPerCPUSteal,
		registry.CPUPerCPUGuest,
		registry.CPUPerCPUGuestNice,
	} {
		if err := s.put(registry.CPU, idx, name, "0"); err != nil {
			return err
		}
	}
	return s.put(registry.CPU, registry.CPUPerCPUIdle, name, "100")
}

func (s *Session) writeSoftnet(snap *sample.Snapshot) error {
	rows := snap.Softnet
	if len(rows) == 0 {
		return nil
	}
	all := []struct {
		idx int
		get func(*sample.Softnet) uint32
	}{
		{registry.SoftnetAllCPUProcessed, func(r *sample.Softnet) uint32 { return r.Processed }},
		{registry.SoftnetAllCPUDropped, func(r *sample.Softnet) uint32 { return r.Dropped }},
		{registry.SoftnetAllCPUTimeSqueeze, func(r *sample.Softnet) uint32 { return r.TimeSqueeze }},
		{registry.SoftnetAllCPUReceivedRPS, func(r *sample.Softnet) uint32 { return r.ReceivedRPS }},
		{registry.SoftnetAllCPUFlowLimit, func(r *sample.Softnet) uint32 { return r.FlowLimit }},
		{registry.SoftnetAllCPUBacklogLength, func(r *sample.Softnet) uint32 { return r.BacklogLen }},
	}
	per := []struct {
		idx int
		get func(*sample.Softnet) uint32
	}{
		{registry.SoftnetPerCPUProcessed, func(r *sample.Softnet) uint32 { return r.Processed }},
		{registry.SoftnetPerCPUDropped, func(r *sample.Softnet) uint32 { return r.Dropped }},
		{registry.SoftnetPerCPUTimeSqueeze, func(r *sample.Softnet) uint32 { return r.TimeSqueeze }},
		{registry.SoftnetPerCPUReceivedRPS, func(r *sample.Softnet) uint32 { return r.ReceivedRPS }},
		{registry.SoftnetPerCPUFlowLimit, func(r *sample.Softnet) uint32 { return r.FlowLimit }},
		{registry.SoftnetPerCPUBacklogLength, func(r *sample.Softnet) uint32 { return r.BacklogLen }},
	}
	for _, p := range all {
		if err := s.put(registry.Softnet, p.idx, "", utoa(p.get(&rows[0]))); err != nil {
			return err
		}
	}
	for i := 1; i < len(rows); i++ {
		if !s.cpus.Has(i - 1) {
			continue
		}
		name := cpuName(i - 1)
		if err := s.pmi.AddInstance(registry.CPUInDom, name, int32(i-1)); err != nil {
			return err
		}
		for _, p := range per {
			if err := s.put(registry.Softnet, p.idx, name, utoa(p.get(&rows[i]))); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCPUFreq emits per-processor clock rates in MHz. Ordinal 0 is
// the machine average and a zero rate marks an offline processor;
// neither is emitted.
func (s *Session) writeCPUFreq(snap *sample.Snapshot) error {
	rows := snap.CPUFreq
	for i := 1; i < len(rows); i++ {
		if rows[i].Freq == 0 || !s.cpus.Has(i-1) {
			continue
		}
		name := cpuName(i - 1)
		if err := s.pmi.AddInstance(registry.CPUInDom, name, int32(i-1)); err != nil {
			return err
		}
		mhz := ftoa(float64(rows[i].Freq) / 100)
		if err := s.put(registry.CPUFreq, registry.PowerPerCPUClock, name, mhz); err != nil {
			return err
		}
	}
	return nil
}
