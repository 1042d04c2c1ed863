// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// Disk holds one block device's counters from /proc/diskstats. Sector
// counts are 512-byte sectors, tick counts are milliseconds. Name is the
// resolved device name used as the instance label.
type Disk struct {
	Major uint32
	Minor uint32
	Name  string

	IOs            uint64
	ReadSectors    uint64
	WriteSectors   uint64
	DiscardSectors uint64
	ReadTicks      uint64
	WriteTicks     uint64
	DiscardTicks   uint64
	TotalTicks     uint64
	QueueTicks     uint64
}

// NetDev holds one interface's transfer counters from /proc/net/dev.
type NetDev struct {
	Iface string

	RxPackets    uint64
	TxPackets    uint64
	RxBytes      uint64
	TxBytes      uint64
	RxCompressed uint64
	TxCompressed uint64
	Multicast    uint64
}

// NetDevErrors holds one interface's error counters from /proc/net/dev.
type NetDevErrors struct {
	Iface string

	RxErrors        uint64
	TxErrors        uint64
	Collisions      uint64
	RxDropped       uint64
	TxDropped       uint64
	TxCarrierErrors uint64
	RxFrameErrors   uint64
	RxFIFOErrors    uint64
	TxFIFOErrors    uint64
}

// Serial holds one serial line's counters from /proc/tty/driver/serial.
// Line is the kernel line number and names the instance.
type Serial struct {
	Line    uint32
	Rx      uint32
	Tx      uint32
	Frame   uint32
	Parity  uint32
	Break   uint32
	Overrun uint32
}

// Filesystem holds one mounted filesystem's capacity gauges from statfs,
// in bytes and inodes. Name is the device or mount point label used as
// the instance.
type Filesystem struct {
	Name string

	Blocks    uint64
	Free      uint64
	Available uint64
	Files     uint64
	FreeFiles uint64
}

// FCHost holds one Fibre Channel host's counters from /sys/class/fc_host.
// Word counts are 4-byte words.
type FCHost struct {
	Name string

	RxFrames uint64
	TxFrames uint64
	RxWords  uint64
	TxWords  uint64
}
