// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	log "github.com/sirupsen/logrus"

	"github.com/sysstat/sapcp/export"
	"github.com/sysstat/sapcp/ingest"
	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/pmi/logio"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/telemetry"
)

type replayCmd struct {
	// User-specified command line arguments.
	out         string
	activities  string
	cpus        string
	disks       string
	interfaces  string
	irqs        string
	filesystems string
	memDetails  bool
}

func newReplayCmd() *ffcli.Command {
	cmd := replayCmd{}
	set := flag.NewFlagSet("replay", flag.ExitOnError)
	set.StringVar(&cmd.out, "out", "", "Archive file to write. Required.")
	set.StringVar(&cmd.activities, "activities", "all",
		"Comma separated activity groups to keep.")
	set.StringVar(&cmd.cpus, "cpus", "all",
		"Processors to keep, in the kernel's \"0,3-5\" notation.")
	set.StringVar(&cmd.disks, "disks", "", "Block devices to keep. Empty keeps all.")
	set.StringVar(&cmd.interfaces, "interfaces", "",
		"Network interfaces to keep. Empty keeps all.")
	set.StringVar(&cmd.irqs, "irqs", "", "Interrupt lines to keep. Empty keeps all.")
	set.StringVar(&cmd.filesystems, "filesystems", "",
		"Mounted filesystems to keep. Empty keeps all.")
	set.BoolVar(&cmd.memDetails, "mem-details", false, "Keep the extended memory gauges.")
	return &ffcli.Command{
		Name:       "replay",
		ShortUsage: "sapcp replay -out <file> [flags] <archive>",
		ShortHelp:  "Re-export an archive into a fresh archive",
		FlagSet:    set,
		Options:    []ff.Option{ff.WithEnvVarPrefix("SAPCP")},
		Exec:       cmd.exec,
	}
}

func (cmd *replayCmd) exec(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one archive path")
	}
	if cmd.out == "" {
		return errors.New("no output file given (-out)")
	}
	acts, err := parseActivities(cmd.activities)
	if err != nil {
		return err
	}
	cpus, err := parseCPUSet(cmd.cpus)
	if err != nil {
		return err
	}

	ar, err := pmi.OpenArchive(args[0])
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer ar.Close()

	hdr := ar.Header()
	st := ingest.NewStore()

	var (
		ps       *pmi.Session
		es       *export.Session
		finished bool
	)
	defer func() {
		if ps != nil && !finished {
			_ = ps.Close()
		}
	}()

	var prevSamples, prevValues uint64
	it := ar.Samples()
	for it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := it.Sample()
		st.Begin(s.Timestamp)
		for i := range s.Values {
			if err := st.Apply(&s.Values[i]); err != nil {
				telemetry.Add(telemetry.IDDecodeErrors, 1)
				log.Debugf("Skipping value %s: %v", s.Values[i].Desc.Name, err)
			}
		}
		telemetry.AddSlice([]telemetry.Metric{
			{ID: telemetry.IDSamplesRead, Value: 1},
			{ID: telemetry.IDValuesRead, Value: telemetry.MetricValue(len(s.Values))},
		})

		if es == nil {
			es, ps, err = cmd.openOutput(st, hdr, acts, cpus)
			if err != nil {
				return err
			}
		}
		if err := es.WriteSnapshot(st.Snapshot()); err != nil {
			return fmt.Errorf("failed to write sample: %w", err)
		}

		samples, values := es.SamplesWritten(), es.ValuesWritten()
		telemetry.AddSlice([]telemetry.Metric{
			{ID: telemetry.IDSamplesWritten, Value: telemetry.MetricValue(samples - prevSamples)},
			{ID: telemetry.IDValuesWritten, Value: telemetry.MetricValue(values - prevValues)},
		})
		prevSamples, prevValues = samples, values
	}
	if err := it.Err(); err != nil {
		telemetry.Add(telemetry.IDDecodeErrors, 1)
		return fmt.Errorf("failed to read samples: %w", err)
	}
	if es == nil {
		return errors.New("archive contains no samples")
	}

	finished = true
	if err := ps.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", cmd.out, err)
	}
	if fi, err := os.Stat(cmd.out); err == nil {
		telemetry.Add(telemetry.IDArchiveBytes, telemetry.MetricValue(fi.Size()))
	}
	log.Infof("Replayed %d samples (%d values) into %s",
		es.SamplesWritten(), es.ValuesWritten(), cmd.out)
	return nil
}

// openOutput creates the output session once the first ingested sample
// has latched the source host's identity.
func (cmd *replayCmd) openOutput(st *ingest.Store, hdr *logio.Header,
	acts []registry.Activity, cpus *sample.CPUSet) (*export.Session, *pmi.Session, error) {
	h := st.Header()
	if h.CPUCount < 1 {
		return nil, nil, errors.New("archive carries no host description")
	}
	ps, err := pmi.CreateSession(cmd.out, &pmi.SessionConfig{
		Hostname: hdr.Hostname,
		Timezone: hdr.Timezone,
		RunID:    hdr.RunID,
		Labels:   hdr.Labels,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create archive: %w", err)
	}
	es, err := export.New(ps, &export.Config{
		Host: export.HostInfo{
			CPUCount: h.CPUCount,
			Hertz:    h.Hertz,
			Sysname:  h.Sysname,
			Release:  h.Release,
			Nodename: h.Nodename,
			Machine:  h.Machine,
		},
		Activities:    acts,
		CPUs:          cpus,
		Disks:         splitList(cmd.disks),
		Interfaces:    splitList(cmd.interfaces),
		IRQs:          splitList(cmd.irqs),
		Filesystems:   splitList(cmd.filesystems),
		MemoryDetails: cmd.memDetails,
	})
	if err != nil {
		_ = ps.Close()
		return nil, nil, err
	}
	return es, ps, nil
}
