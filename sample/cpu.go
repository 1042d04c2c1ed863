// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// CPU holds one processor's time counters from /proc/stat, in jiffies.
type CPU struct {
	User      uint64
	Nice      uint64
	Sys       uint64
	Idle      uint64
	Iowait    uint64
	Steal     uint64
	HardIRQ   uint64
	SoftIRQ   uint64
	Guest     uint64
	GuestNice uint64
}

// Total sums every time counter of the row. Guest times are included in
// User/Nice and must not be added again.
func (c *CPU) Total() uint64 {
	return c.User + c.Nice + c.Sys + c.Idle + c.Iowait +
		c.Steal + c.HardIRQ + c.SoftIRQ
}

// Zero reports whether the row carries no ticks at all, which is how an
// offline processor appears across a whole cycle.
func (c *CPU) Zero() bool {
	return c.Total() == 0
}

// CPUFreq holds one processor's clock rate in hundredths of MHz.
type CPUFreq struct {
	Freq uint64
}

// Softnet holds one processor's softnet counters from /proc/net/softnet_stat.
type Softnet struct {
	Processed   uint32
	Dropped     uint32
	TimeSqueeze uint32
	ReceivedRPS uint32
	FlowLimit   uint32
	BacklogLen  uint32
}

// Interrupt holds one interrupt line's counts from /proc/interrupts.
// Values is indexed by processor with index 0 carrying the count summed
// over all processors. Row 0 of an interrupt table is the "sum" line
// totaling every interrupt source.
type Interrupt struct {
	Name   string
	Values []uint32
}
