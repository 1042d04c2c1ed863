// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// PCSW holds task creation and context switch counters from /proc/stat.
type PCSW struct {
	ContextSwitches uint64
	Forks           uint64
}

// Swap holds swapping counters from /proc/vmstat, in pages.
type Swap struct {
	PagesIn  uint64
	PagesOut uint64
}

// Paging holds paging counters from /proc/vmstat. PagedIn and PagedOut
// count KB, the rest count pages or events.
type Paging struct {
	PagedIn     uint64
	PagedOut    uint64
	Faults      uint64
	MajorFaults uint64
	Freed       uint64
	ScanKswapd  uint64
	ScanDirect  uint64
	Stolen      uint64
	Promoted    uint64
	Demoted     uint64
}

// IO holds machine-wide transfer counters summed over block devices.
// The unit fields count 512-byte sectors.
type IO struct {
	Transfers    uint64
	Reads        uint64
	Writes       uint64
	Discards     uint64
	ReadUnits    uint64
	WriteUnits   uint64
	DiscardUnits uint64
}

// Memory holds /proc/meminfo gauges, in KB.
type Memory struct {
	FreeKB        uint64
	AvailableKB   uint64
	TotalKB       uint64
	BuffersKB     uint64
	CachedKB      uint64
	CommittedKB   uint64
	ActiveKB      uint64
	InactiveKB    uint64
	DirtyKB       uint64
	AnonPagesKB   uint64
	SlabKB        uint64
	KernelStackKB uint64
	PageTablesKB  uint64
	VmallocUsedKB uint64
	SwapFreeKB    uint64
	SwapTotalKB   uint64
	SwapCachedKB  uint64
}

// Huge holds huge page gauges from /proc/meminfo, in KB.
type Huge struct {
	FreeKB     uint64
	TotalKB    uint64
	ReservedKB uint64
	SurplusKB  uint64
}

// KTables holds kernel table sizes from /proc/sys/fs and /proc/sys/kernel.
type KTables struct {
	Dentries uint64
	Files    uint64
	Inodes   uint64
	PTYs     uint64
}

// Queue holds run queue and load gauges from /proc/loadavg and /proc/stat.
// Load averages are stored in hundredths.
type Queue struct {
	Running   uint64
	Threads   uint64
	Blocked   uint64
	LoadAvg1  uint32
	LoadAvg5  uint32
	LoadAvg15 uint32
}
