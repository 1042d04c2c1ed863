// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"fmt"

	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
)

// recU64 parses a decimal counter into the record field selected by p.
func recU64(p func(*records) *uint64) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		n, err := parseU64(v.Text)
		if err != nil {
			return err
		}
		*p(&s.recs) = n
		return nil
	}
}

func recU32(p func(*records) *uint32) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		n, err := parseU32(v.Text)
		if err != nil {
			return err
		}
		*p(&s.recs) = n
		return nil
	}
}

var queueReaders = []applyFunc{
	registry.KQueueRunnable:  recU64(func(r *records) *uint64 { return &r.queue.Running }),
	registry.KQueueProcesses: recU64(func(r *records) *uint64 { return &r.queue.Threads }),
	registry.KQueueBlocked:   recU64(func(r *records) *uint64 { return &r.queue.Blocked }),
	// Load averages come back from decimals into the stored
	// hundredths. The instance keys are the window lengths in minutes.
	registry.KQueueLoadAvg: func(s *Store, v *pmi.Value) error {
		n, err := parseHundredths(v.Text)
		if err != nil {
			return err
		}
		switch v.Inst {
		case 1:
			s.recs.queue.LoadAvg1 = n
		case 5:
			s.recs.queue.LoadAvg5 = n
		case 15:
			s.recs.queue.LoadAvg15 = n
		default:
			return fmt.Errorf("unknown load average window key %d", v.Inst)
		}
		return nil
	},
}

// psiAvg stores one pressure average into the window slot its instance
// key selects. Keys are the window lengths in seconds; averages come
// back from percent into the stored hundredths.
func psiAvg(a10, a60, a300 func(*records) *uint32) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		n, err := parseHundredths(v.Text)
		if err != nil {
			return err
		}
		switch v.Inst {
		case 10:
			*a10(&s.recs) = n
		case 60:
			*a60(&s.recs) = n
		case 300:
			*a300(&s.recs) = n
		default:
			return fmt.Errorf("unknown stall window key %d", v.Inst)
		}
		return nil
	}
}

var psiCPUReaders = []applyFunc{
	registry.PSICPUSomeTotal: recU64(func(r *records) *uint64 { return &r.psiCPU.SomeTotal }),
	registry.PSICPUSomeAvg: psiAvg(
		func(r *records) *uint32 { return &r.psiCPU.SomeAvg10 },
		func(r *records) *uint32 { return &r.psiCPU.SomeAvg60 },
		func(r *records) *uint32 { return &r.psiCPU.SomeAvg300 },
	),
}

var psiIOReaders = []applyFunc{
	registry.PSIIOSomeTotal: recU64(func(r *records) *uint64 { return &r.psiIO.SomeTotal }),
	registry.PSIIOSomeAvg: psiAvg(
		func(r *records) *uint32 { return &r.psiIO.SomeAvg10 },
		func(r *records) *uint32 { return &r.psiIO.SomeAvg60 },
		func(r *records) *uint32 { return &r.psiIO.SomeAvg300 },
	),
	registry.PSIIOFullTotal: recU64(func(r *records) *uint64 { return &r.psiIO.FullTotal }),
	registry.PSIIOFullAvg: psiAvg(
		func(r *records) *uint32 { return &r.psiIO.FullAvg10 },
		func(r *records) *uint32 { return &r.psiIO.FullAvg60 },
		func(r *records) *uint32 { return &r.psiIO.FullAvg300 },
	),
}

var psiMemReaders = []applyFunc{
	registry.PSIMemSomeTotal: recU64(func(r *records) *uint64 { return &r.psiMem.SomeTotal }),
	registry.PSIMemSomeAvg: psiAvg(
		func(r *records) *uint32 { return &r.psiMem.SomeAvg10 },
		func(r *records) *uint32 { return &r.psiMem.SomeAvg60 },
		func(r *records) *uint32 { return &r.psiMem.SomeAvg300 },
	),
	registry.PSIMemFullTotal: recU64(func(r *records) *uint64 { return &r.psiMem.FullTotal }),
	registry.PSIMemFullAvg: psiAvg(
		func(r *records) *uint32 { return &r.psiMem.FullAvg10 },
		func(r *records) *uint32 { return &r.psiMem.FullAvg60 },
		func(r *records) *uint32 { return &r.psiMem.FullAvg300 },
	),
}

// nfsReq stores one per-operation request counter. The instance keys
// are the protocol procedure numbers of the fixed request table.
func nfsReq(getattr, read, write, access func(*records) *uint32) applyFunc {
	return func(s *Store, v *pmi.Value) error {
		n, err := parseU32(v.Text)
		if err != nil {
			return err
		}
		switch v.Inst {
		case 4:
			*getattr(&s.recs) = n
		case 6:
			*read(&s.recs) = n
		case 8:
			*write(&s.recs) = n
		case 18:
			*access(&s.recs) = n
		default:
			return fmt.Errorf("unknown request operation key %d", v.Inst)
		}
		return nil
	}
}

var nfsClientReaders = []applyFunc{
	registry.NFSClientRPCCnt:     recU32(func(r *records) *uint32 { return &r.nfsc.RPCCalls }),
	registry.NFSClientRPCRetrans: recU32(func(r *records) *uint32 { return &r.nfsc.RPCRetrans }),
	registry.NFSClientRequests: nfsReq(
		func(r *records) *uint32 { return &r.nfsc.Getattrs },
		func(r *records) *uint32 { return &r.nfsc.Reads },
		func(r *records) *uint32 { return &r.nfsc.Writes },
		func(r *records) *uint32 { return &r.nfsc.Accesses },
	),
}

var nfsServerReaders = []applyFunc{
	registry.NFSServerRPCCnt:     recU32(func(r *records) *uint32 { return &r.nfss.RPCCalls }),
	registry.NFSServerRPCBadClnt: recU32(func(r *records) *uint32 { return &r.nfss.RPCBadCalls }),
	registry.NFSServerNetCnt:     recU32(func(r *records) *uint32 { return &r.nfss.NetPackets }),
	registry.NFSServerNetUDPCnt:  recU32(func(r *records) *uint32 { return &r.nfss.NetUDP }),
	registry.NFSServerNetTCPCnt:  recU32(func(r *records) *uint32 { return &r.nfss.NetTCP }),
	registry.NFSServerRCHits:     recU32(func(r *records) *uint32 { return &r.nfss.CacheHits }),
	registry.NFSServerRCMisses:   recU32(func(r *records) *uint32 { return &r.nfss.CacheMisses }),
	registry.NFSServerRequests: nfsReq(
		func(r *records) *uint32 { return &r.nfss.Getattrs },
		func(r *records) *uint32 { return &r.nfss.Reads },
		func(r *records) *uint32 { return &r.nfss.Writes },
		func(r *records) *uint32 { return &r.nfss.Accesses },
	),
}
