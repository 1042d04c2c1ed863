// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

import "fmt"

// ID is a packed metric identifier: 9 bits domain, 12 bits cluster,
// 10 bits item. The top bit is unused.
type ID uint32

// NewID packs domain, cluster and item into an ID. Out-of-range bits
// are masked, matching the packing of the interoperating C tooling.
func NewID(domain, cluster, item uint32) ID {
	return ID((domain&0x1ff)<<22 | (cluster&0xfff)<<10 | item&0x3ff)
}

// Domain returns the 9 bit domain field.
func (id ID) Domain() uint32 { return uint32(id>>22) & 0x1ff }

// Cluster returns the 12 bit cluster field.
func (id ID) Cluster() uint32 { return uint32(id>>10) & 0xfff }

// Item returns the 10 bit item field.
func (id ID) Item() uint32 { return uint32(id) & 0x3ff }

func (id ID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Domain(), id.Cluster(), id.Item())
}

// InDom is a packed instance domain identifier: 9 bits domain,
// 22 bits serial.
type InDom uint32

// InDomNull marks a metric without an instance domain. Its values are
// singular and carry the InstNull instance key.
const InDomNull InDom = 0xffffffff

// NewInDom packs domain and serial into an InDom.
func NewInDom(domain, serial uint32) InDom {
	return InDom((domain&0x1ff)<<22 | serial&0x3fffff)
}

// Domain returns the 9 bit domain field.
func (d InDom) Domain() uint32 { return uint32(d>>22) & 0x1ff }

// Serial returns the 22 bit serial field.
func (d InDom) Serial() uint32 { return uint32(d) & 0x3fffff }

func (d InDom) String() string {
	if d == InDomNull {
		return "none"
	}
	return fmt.Sprintf("%d.%d", d.Domain(), d.Serial())
}

// InstNull is the instance key stored for values of metrics without an
// instance domain.
const InstNull int32 = -1
