// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	log "github.com/sirupsen/logrus"

	"github.com/sysstat/sapcp/collect"
	"github.com/sysstat/sapcp/devname"
	"github.com/sysstat/sapcp/export"
	"github.com/sysstat/sapcp/hostinfo"
	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/shipper"
	"github.com/sysstat/sapcp/telemetry"
	"github.com/sysstat/sapcp/telemetry/selfmetrics"
)

// monitorInterval drives the process self telemetry reports.
const monitorInterval = 5 * time.Second

type recordCmd struct {
	// User-specified command line arguments.
	out         string
	interval    time.Duration
	count       uint64
	activities  string
	cpus        string
	disks       string
	interfaces  string
	irqs        string
	filesystems string
	memDetails  bool
	labels      string

	bucket    string
	prefix    string
	endpoint  string
	region    string
	pathStyle bool
}

func newRecordCmd() *ffcli.Command {
	cmd := recordCmd{}
	set := flag.NewFlagSet("record", flag.ExitOnError)
	set.StringVar(&cmd.out, "out", "", "Archive file to write. Required.")
	set.DurationVar(&cmd.interval, "interval", 10*time.Second, "Delay between samples.")
	set.Uint64Var(&cmd.count, "count", 0,
		"Number of samples to record. 0 records until interrupted.")
	set.StringVar(&cmd.activities, "activities", "all",
		"Comma separated activity groups to record.")
	set.StringVar(&cmd.cpus, "cpus", "all",
		"Processors to record, in the kernel's \"0,3-5\" notation.")
	set.StringVar(&cmd.disks, "disks", "", "Block devices to record. Empty records all.")
	set.StringVar(&cmd.interfaces, "interfaces", "",
		"Network interfaces to record. Empty records all.")
	set.StringVar(&cmd.irqs, "irqs", "", "Interrupt lines to record. Empty records all.")
	set.StringVar(&cmd.filesystems, "filesystems", "",
		"Mounted filesystems to record. Empty records all.")
	set.BoolVar(&cmd.memDetails, "mem-details", false, "Record the extended memory gauges.")
	set.StringVar(&cmd.labels, "labels", "",
		"Comma separated key=value pairs stored in the archive header.")
	set.StringVar(&cmd.bucket, "s3-bucket", "",
		"Upload the finished archive to this S3 bucket.")
	set.StringVar(&cmd.prefix, "s3-prefix", "", "Key prefix for uploaded archives.")
	set.StringVar(&cmd.endpoint, "s3-endpoint", "",
		"S3 endpoint override, for compatible object stores.")
	set.StringVar(&cmd.region, "s3-region", "", "S3 region override.")
	set.BoolVar(&cmd.pathStyle, "s3-path-style", false,
		"Address the bucket in the URL path instead of the hostname.")
	return &ffcli.Command{
		Name:       "record",
		ShortUsage: "sapcp record -out <file> [flags]",
		ShortHelp:  "Record live system activity into an archive",
		FlagSet:    set,
		Options:    []ff.Option{ff.WithEnvVarPrefix("SAPCP")},
		Exec:       cmd.exec,
	}
}

func (cmd *recordCmd) exec(ctx context.Context, _ []string) error {
	if cmd.out == "" {
		return errors.New("no output file given (-out)")
	}
	if cmd.interval <= 0 {
		return fmt.Errorf("invalid sampling interval %v", cmd.interval)
	}
	acts, err := parseActivities(cmd.activities)
	if err != nil {
		return err
	}
	cpus, err := parseCPUSet(cmd.cpus)
	if err != nil {
		return err
	}
	labels, err := parseLabels(cmd.labels)
	if err != nil {
		return err
	}

	hi, err := hostinfo.Collect()
	if err != nil {
		return fmt.Errorf("failed to read host identity: %w", err)
	}

	names, err := devname.New("/sys")
	if err != nil {
		log.Warnf("Device name resolution unavailable: %v", err)
	}
	coll := collect.New(collect.Config{Names: names})

	zone, _ := time.Now().Zone()
	ps, err := pmi.CreateSession(cmd.out, &pmi.SessionConfig{
		Hostname: hi.Nodename,
		Timezone: zone,
		RunID:    uuid.NewString(),
		Labels:   labels,
	})
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	es, err := export.New(ps, &export.Config{
		Host: export.HostInfo{
			CPUCount: hi.CPUCount,
			Hertz:    hi.Hertz,
			Sysname:  hi.Sysname,
			Release:  hi.Release,
			Nodename: hi.Nodename,
			Machine:  hi.Machine,
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
		return err
	}

	stopSelfMetrics, err := selfmetrics.Start(ctx, monitorInterval)
	if err != nil {
		log.Warnf("Failed to start self telemetry: %v", err)
	}
	defer stopSelfMetrics()

	log.Infof("Recording to %s every %v", cmd.out, cmd.interval)
	runErr := cmd.sampleLoop(ctx, coll, es)
	closeErr := ps.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to finalize %s: %w", cmd.out, closeErr)
	}

	if fi, err := os.Stat(cmd.out); err == nil {
		telemetry.Add(telemetry.IDArchiveBytes, telemetry.MetricValue(fi.Size()))
	}
	log.Infof("Recorded %d samples (%d values) into %s",
		es.SamplesWritten(), es.ValuesWritten(), cmd.out)

	if cmd.bucket == "" {
		return nil
	}
	sh, err := shipper.New(ctx, &shipper.Config{
		Bucket:    cmd.bucket,
		Prefix:    cmd.prefix,
		Endpoint:  cmd.endpoint,
		Region:    cmd.region,
		PathStyle: cmd.pathStyle,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare upload: %w", err)
	}
	return sh.Ship(ctx, hi.Nodename, []string{cmd.out})
}

// sampleLoop collects and writes one sample per tick until the count is
// reached or the context ends. Collection failures are counted and
// logged; write failures abort the recording.
func (cmd *recordCmd) sampleLoop(ctx context.Context,
	coll *collect.Collector, es *export.Session) error {
	ticker := time.NewTicker(cmd.interval)
	defer ticker.Stop()

	var prevSamples, prevValues uint64
	for done := uint64(0); ; {
		snap, err := coll.Collect(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			telemetry.Add(telemetry.IDCollectErrors, 1)
			log.Errorf("Failed to collect sample: %v", err)
		default:
			if err := es.WriteSnapshot(snap); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
		}

		samples, values := es.SamplesWritten(), es.ValuesWritten()
		telemetry.AddSlice([]telemetry.Metric{
			{ID: telemetry.IDCollectTicks, Value: 1},
			{ID: telemetry.IDSamplesWritten, Value: telemetry.MetricValue(samples - prevSamples)},
			{ID: telemetry.IDValuesWritten, Value: telemetry.MetricValue(values - prevValues)},
		})
		prevSamples, prevValues = samples, values

		done++
		if cmd.count > 0 && done >= cmd.count {
			return nil
		}
		select {
		case <-ctx.Done():
			log.Infof("Recording interrupted")
			return nil
		case <-ticker.C:
		}
	}
}
