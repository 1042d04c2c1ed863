// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import (
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// writeInterrupts emits the interrupt matrix: the sum row under the
// machine-wide total, each named line under the per-line total, and
// each (line, processor) cell under the per-processor matrix metric.
// The name filter applies to every row, the sum row included.
func (s *Session) writeInterrupts(snap *sample.Snapshot) error {
	rows := snap.Interrupts
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		ir := &rows[i]
		if len(ir.Values) == 0 || !selected(s.irqs, ir.Name) {
			continue
		}
		if i == 0 {
			// The sum row's metric name belongs to the cpu group when
			// both groups are registered; the jiffie counter written
			// there already covers it.
			if !s.irqOwnsSum {
				continue
			}
			if err := s.put(registry.IRQ, registry.IRQAllIRQTotal, "", utoa(ir.Values[0])); err != nil {
				return err
			}
			continue
		}
		if _, err := s.irqKeys.declare(s.pmi, ir.Name); err != nil {
			return err
		}
		if err := s.put(registry.IRQ, registry.IRQPerIRQTotal, ir.Name, utoa(ir.Values[0])); err != nil {
			return err
		}
		for j := 1; j < len(ir.Values); j++ {
			if !s.cpus.Has(j - 1) {
				continue
			}
			cell := ir.Name + "::" + cpuName(j-1)
			if _, err := s.irqCPUKeys.declare(s.pmi, cell); err != nil {
				return err
			}
			if err := s.put(registry.CPU, registry.CPUPerCPUInterrupts, cell, utoa(ir.Values[j])); err != nil {
				return err
			}
		}
	}
	return nil
}
