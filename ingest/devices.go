// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"errors"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

var errNoInstance = errors.New("value names no instance")

// entityRow looks up the value's row in a per-entity table.
func entityRow[T any](s *Store, t *table[T], v *pmi.Value) (*T, error) {
	if v.Inst == pmi.InstNull {
		return nil, errNoInstance
	}
	return t.row(v.Inst, v.Instance, s.cycle), nil
}

// entityU64 stores a decimal counter into the field of the row the
// value's instance selects.
func entityU64[T any](tbl func(*Store) *table[T], p func(*T) *uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		n, err := parseU64(v.Text)
		if err != nil {
			return err
		}
		*p(r) = n
		return nil
	}
}

func entityU32[T any](tbl func(*Store) *table[T], p func(*T) *uint32) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		n, err := parseU32(v.Text)
		if err != nil {
			return err
		}
		*p(r) = n
		return nil
	}
}

// entityU64Mul scales a published value back to its stored unit, for
// fields the writer divides on the way out.
func entityU64Mul[T any](tbl func(*Store) *table[T], p func(*T) *uint64, scale uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		n, err := parseU64(v.Text)
		if err != nil {
			return err
		}
		*p(r) = n * scale
		return nil
	}
}

// entityU64Div scales a published value back to its stored unit, for
// fields the writer multiplies on the way out.
func entityU64Div[T any](tbl func(*Store) *table[T], p func(*T) *uint64, scale uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		n, err := parseU64(v.Text)
		if err != nil {
			return err
		}
		*p(r) = n / scale
		return nil
	}
}

// entityStr stores the value text as is.
func entityStr[T any](tbl func(*Store) *table[T], p func(*T) *string) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		r, err := entityRow(s, tbl(s), v)
		if err != nil {
			return err
		}
		*p(r) = v.Text
		return nil
	}
}

// skipEntityU64 validates a derived per-entity counter. The source
// metrics carry the state.
func skipEntityU64(s *Store, v *pmi.Value) error {
	if v.Inst == pmi.InstNull {
		return errNoInstance
	}
	_, err := parseU64(v.Text)
	return err
}

// skipEntityF validates a derived per-entity gauge.
func skipEntityF(s *Store, v *pmi.Value) error {
	if v.Inst == pmi.InstNull {
		return errNoInstance
	}
	_, err := parseF(v.Text)
	return err
}

// Kilobyte totals come back into 512 byte sectors. disk.dev.read,
// disk.dev.write and disk.dev.total_bytes have no readers: the record
// has no per-direction operation or byte totals to hold them.
var diskReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Disk] { return &s.disks }
	out := make([]applyFunc, registry.DiskPerDevAvQueue+1)
	out[registry.DiskPerDevTotal] = entityU64(tbl, func(d *sample.Disk) *uint64 { return &d.IOs })
	out[registry.DiskPerDevReadBytes] = entityU64Mul(tbl, func(d *sample.Disk) *uint64 { return &d.ReadSectors }, 2)
	out[registry.DiskPerDevWriteBytes] = entityU64Mul(tbl, func(d *sample.Disk) *uint64 { return &d.WriteSectors }, 2)
	out[registry.DiskPerDevDiscardBytes] = entityU64Mul(tbl, func(d *sample.Disk) *uint64 { return &d.DiscardSectors }, 2)
	out[registry.DiskPerDevReadActive] = entityU64(tbl, func(d *sample.Disk) *uint64 { return &d.ReadTicks })
	out[registry.DiskPerDevWriteActive] = entityU64(tbl, func(d *sample.Disk) *uint64 { return &d.WriteTicks })
	out[registry.DiskPerDevTotalActive] = skipEntityU64
	out[registry.DiskPerDevDiscardActive] = entityU64(tbl, func(d *sample.Disk) *uint64 { return &d.DiscardTicks })
	out[registry.DiskPerDevAvActive] = entityU64(tbl, func(d *sample.Disk) *uint64 { return &d.TotalTicks })
	out[registry.DiskPerDevAvQueue] = entityU64(tbl, func(d *sample.Disk) *uint64 { return &d.QueueTicks })
	return out
}()

var netdevReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.NetDev] { return &s.netdevs }
	out := make([]applyFunc, registry.NetPerIntfInMulticast+1)
	out[registry.NetPerIntfInPackets] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.RxPackets })
	out[registry.NetPerIntfOutPackets] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.TxPackets })
	out[registry.NetPerIntfInBytes] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.RxBytes })
	out[registry.NetPerIntfOutBytes] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.TxBytes })
	out[registry.NetPerIntfInCompress] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.RxCompressed })
	out[registry.NetPerIntfOutCompress] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.TxCompressed })
	out[registry.NetPerIntfInMulticast] = entityU64(tbl, func(n *sample.NetDev) *uint64 { return &n.Multicast })
	return out
}()

var netErrReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.NetDevErrors] { return &s.netErrs }
	out := make([]applyFunc, registry.NetEPerIntfOutFIFO+1)
	out[registry.NetEPerIntfInErrors] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.RxErrors })
	out[registry.NetEPerIntfOutErrors] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.TxErrors })
	out[registry.NetEPerIntfCollisions] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.Collisions })
	out[registry.NetEPerIntfInDrops] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.RxDropped })
	out[registry.NetEPerIntfOutDrops] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.TxDropped })
	out[registry.NetEPerIntfOutCarrier] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.TxCarrierErrors })
	out[registry.NetEPerIntfInFrame] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.RxFrameErrors })
	out[registry.NetEPerIntfInFIFO] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.RxFIFOErrors })
	out[registry.NetEPerIntfOutFIFO] = entityU64(tbl, func(n *sample.NetDevErrors) *uint64 { return &n.TxFIFOErrors })
	return out
}()

// Line numbers rebuild from instance keys, not the value texts.
var serialReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Serial] { return &s.lines }
	out := make([]applyFunc, registry.SerialPerTTYOverrun+1)
	out[registry.SerialPerTTYRx] = entityU32(tbl, func(l *sample.Serial) *uint32 { return &l.Rx })
	out[registry.SerialPerTTYTx] = entityU32(tbl, func(l *sample.Serial) *uint32 { return &l.Tx })
	out[registry.SerialPerTTYFrame] = entityU32(tbl, func(l *sample.Serial) *uint32 { return &l.Frame })
	out[registry.SerialPerTTYParity] = entityU32(tbl, func(l *sample.Serial) *uint32 { return &l.Parity })
	out[registry.SerialPerTTYBrk] = entityU32(tbl, func(l *sample.Serial) *uint32 { return &l.Break })
	out[registry.SerialPerTTYOverrun] = entityU32(tbl, func(l *sample.Serial) *uint32 { return &l.Overrun })
	return out
}()

// Capacity gauges come back from kilobytes into bytes. The used and
// fill metrics restate capacity minus free.
var filesystemReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.Filesystem] { return &s.mounts }
	out := make([]applyFunc, registry.FilesysAvail+1)
	out[registry.FilesysCapacity] = entityU64Mul(tbl, func(f *sample.Filesystem) *uint64 { return &f.Blocks }, 1024)
	out[registry.FilesysFree] = entityU64Mul(tbl, func(f *sample.Filesystem) *uint64 { return &f.Free }, 1024)
	out[registry.FilesysUsed] = skipEntityU64
	out[registry.FilesysFull] = skipEntityF
	out[registry.FilesysMaxFiles] = entityU64(tbl, func(f *sample.Filesystem) *uint64 { return &f.Files })
	out[registry.FilesysFreeFiles] = entityU64(tbl, func(f *sample.Filesystem) *uint64 { return &f.FreeFiles })
	out[registry.FilesysUsedFiles] = skipEntityU64
	out[registry.FilesysAvail] = entityU64Mul(tbl, func(f *sample.Filesystem) *uint64 { return &f.Available }, 1024)
	return out
}()

// Byte totals come back into 4 byte words.
var fchostReaders = func() []applyFunc {
	tbl := func(s *Store) *table[sample.FCHost] { return &s.fchosts }
	out := make([]applyFunc, registry.FCHostOutBytes+1)
	out[registry.FCHostInFrames] = entityU64(tbl, func(h *sample.FCHost) *uint64 { return &h.RxFrames })
	out[registry.FCHostOutFrames] = entityU64(tbl, func(h *sample.FCHost) *uint64 { return &h.TxFrames })
	out[registry.FCHostInBytes] = entityU64Div(tbl, func(h *sample.FCHost) *uint64 { return &h.RxWords }, 4)
	out[registry.FCHostOutBytes] = entityU64Div(tbl, func(h *sample.FCHost) *uint64 { return &h.TxWords }, 4)
	return out
}()
