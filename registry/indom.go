// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package registry // import "github.com/sysstat/sapcp/registry"

import "github.com/sysstat/sapcp/pmi"

// Instance domains of the generated tables. Domains and serials are
// fixed by the interchange format and never reassigned.
var (
	CPUInDom     = pmi.NewInDom(60, 0)
	DiskInDom    = pmi.NewInDom(60, 1)
	LoadAvgInDom = pmi.NewInDom(60, 2)
	NetDevInDom  = pmi.NewInDom(60, 3)
	IRQInDom     = pmi.NewInDom(60, 4)
	FilesysInDom = pmi.NewInDom(60, 5)
	NFSReqInDom  = pmi.NewInDom(60, 7)
	SerialInDom  = pmi.NewInDom(60, 35)
	PSIInDom     = pmi.NewInDom(60, 37)
	FCHostInDom  = pmi.NewInDom(60, 39)
	IRQCPUInDom  = pmi.NewInDom(60, 40)
	FanInDom     = pmi.NewInDom(34, 0)
	TempInDom    = pmi.NewInDom(34, 1)
	VoltageInDom = pmi.NewInDom(34, 2)
	USBInDom     = pmi.NewInDom(34, 3)
	BatteryInDom = pmi.NewInDom(34, 4)
)

// Instance is a fixed member of an instance domain whose population is
// known up front: an external name and its stable instance key.
type Instance struct {
	Name string
	Key  int32
}

// LoadAvgWindows are the instances of the load average metric. Keys
// encode the averaging window in minutes.
var LoadAvgWindows = []Instance{
	{"1 minute", 1},
	{"5 minute", 5},
	{"15 minute", 15},
}

// PSIWindows are the instances of the pressure stall averages. Keys
// encode the averaging window in seconds.
var PSIWindows = []Instance{
	{"10 second", 10},
	{"1 minute", 60},
	{"5 minute", 300},
}

// NFSRequests are the request type instances of the NFS client and
// server request counters. Keys are the protocol operation numbers.
var NFSRequests = []Instance{
	{"getattr", 4},
	{"read", 6},
	{"write", 8},
	{"access", 18},
}
