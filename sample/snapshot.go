// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

import "time"

// Snapshot carries one collection cycle's records across the export and
// ingest boundaries. Nil pointers and empty slices mark activities that
// were not collected this cycle. Processor tables (CPU, CPUFreq,
// Softnet) carry the machine-wide row at index 0 and processor n at
// index n+1.
type Snapshot struct {
	Time   time.Time
	Uptime float64 // seconds since boot

	// PrevCPU holds the previous cycle's rows for the same processors;
	// the write path derives per-processor intervals from the pair.
	CPU     []CPU
	PrevCPU []CPU

	CPUFreq    []CPUFreq
	Softnet    []Softnet
	Interrupts []Interrupt

	PCSW    *PCSW
	Swap    *Swap
	Paging  *Paging
	IO      *IO
	Memory  *Memory
	Huge    *Huge
	KTables *KTables
	Queue   *Queue

	Disks        []Disk
	NetDevs      []NetDev
	NetDevErrors []NetDevErrors
	Serial       []Serial
	Filesystems  []Filesystem
	FCHosts      []FCHost

	Fans      []Fan
	Temps     []Temp
	Voltages  []Voltage
	Batteries []Battery
	USB       []USB

	NFSClient *NFSClient
	NFSServer *NFSServer

	Sock       *Sock
	IP         *IP
	IPErrors   *IPErrors
	ICMP       *ICMP
	ICMPErrors *ICMPErrors
	TCP        *TCP
	TCPErrors  *TCPErrors
	UDP        *UDP

	Sock6       *Sock6
	IP6         *IP6
	IP6Errors   *IP6Errors
	ICMP6       *ICMP6
	ICMP6Errors *ICMP6Errors
	UDP6        *UDP6

	PSICPU *PSICPU
	PSIIO  *PSIIO
	PSIMem *PSIMem
}
