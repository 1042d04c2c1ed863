// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// PSICPU holds CPU pressure stall values from /proc/pressure/cpu.
// Averages are percentages stored in hundredths, totals in microseconds.
type PSICPU struct {
	SomeAvg10  uint32
	SomeAvg60  uint32
	SomeAvg300 uint32
	SomeTotal  uint64
}

// PSIIO holds I/O pressure stall values from /proc/pressure/io.
type PSIIO struct {
	SomeAvg10  uint32
	SomeAvg60  uint32
	SomeAvg300 uint32
	SomeTotal  uint64
	FullAvg10  uint32
	FullAvg60  uint32
	FullAvg300 uint32
	FullTotal  uint64
}

// PSIMem holds memory pressure stall values from /proc/pressure/memory.
type PSIMem struct {
	SomeAvg10  uint32
	SomeAvg60  uint32
	SomeAvg300 uint32
	SomeTotal  uint64
	FullAvg10  uint32
	FullAvg60  uint32
	FullAvg300 uint32
	FullTotal  uint64
}
