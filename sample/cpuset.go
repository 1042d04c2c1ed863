// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package sample // import "github.com/sysstat/sapcp/sample"

// CPUSet selects processors by number. The zero value selects none;
// a nil *CPUSet passed to consumers selects every processor.
type CPUSet struct {
	bits []uint64
}

// Set marks processor n as selected.
func (s *CPUSet) Set(n int) {
	if n < 0 {
		return
	}
	word := n >> 6
	for word >= len(s.bits) {
		s.bits = append(s.bits, 0)
	}
	s.bits[word] |= 1 << (n & 63)
}

// Has reports whether processor n is selected. A nil set selects all.
func (s *CPUSet) Has(n int) bool {
	if s == nil {
		return true
	}
	if n < 0 {
		return false
	}
	word := n >> 6
	if word >= len(s.bits) {
		return false
	}
	return s.bits[word]&(1<<(n&63)) != 0
}
