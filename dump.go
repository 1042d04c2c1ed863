// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	log "github.com/sirupsen/logrus"

	"github.com/sysstat/sapcp/ingest"
	"github.com/sysstat/sapcp/otelexport"
	"github.com/sysstat/sapcp/pmi"
	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/telemetry"
)

type dumpCmd struct {
	// User-specified command line arguments.
	values       bool
	otlp         string
	otlpInsecure bool
}

// activityTally counts what an archive carries for one activity.
type activityTally struct {
	samples int
	values  int
}

func newDumpCmd() *ffcli.Command {
	cmd := dumpCmd{}
	set := flag.NewFlagSet("dump", flag.ExitOnError)
	set.BoolVar(&cmd.values, "values", false, "Print every value instead of the summary only.")
	set.StringVar(&cmd.otlp, "otlp", "",
		"Forward the archive's samples to this OTLP gRPC endpoint.")
	set.BoolVar(&cmd.otlpInsecure, "otlp-insecure", false,
		"Disable TLS for the OTLP connection.")
	return &ffcli.Command{
		Name:       "dump",
		ShortUsage: "sapcp dump [flags] <archive>",
		ShortHelp:  "Summarize an archive's contents",
		FlagSet:    set,
		Options:    []ff.Option{ff.WithEnvVarPrefix("SAPCP")},
		Exec:       cmd.exec,
	}
}

func (cmd *dumpCmd) exec(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one archive path")
	}
	ar, err := pmi.OpenArchive(args[0])
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer ar.Close()

	hdr := ar.Header()
	created := time.Unix(0, hdr.CreatedUnixNano)
	fmt.Printf("archive:  %s\n", args[0])
	fmt.Printf("host:     %s\n", hdr.Hostname)
	fmt.Printf("timezone: %s\n", hdr.Timezone)
	fmt.Printf("run:      %s\n", hdr.RunID)
	fmt.Printf("created:  %s\n", created.Format(time.RFC3339))
	fmt.Printf("metrics:  %d\n", len(ar.Descs()))
	fmt.Printf("samples:  %d\n", ar.NumSamples())
	for _, k := range slices.Sorted(maps.Keys(hdr.Labels)) {
		fmt.Printf("label:    %s=%s\n", k, hdr.Labels[k])
	}

	var exp *otelexport.Exporter
	if cmd.otlp != "" {
		exp, err = otelexport.New(&otelexport.Config{
			Addr:       cmd.otlp,
			DisableTLS: cmd.otlpInsecure,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to %s: %w", cmd.otlp, err)
		}
		defer exp.Close()
	}

	reg := registry.New()
	st := ingest.NewStore()
	tallies := make(map[registry.Activity]*activityTally)
	unknown := 0

	it := ar.Samples()
	for it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := it.Sample()
		st.Begin(s.Timestamp)
		seen := make(map[registry.Activity]bool)
		for i := range s.Values {
			v := &s.Values[i]
			if cmd.values {
				printValue(s.Timestamp, v)
			}
			if err := st.Apply(v); err != nil {
				telemetry.Add(telemetry.IDDecodeErrors, 1)
				log.Debugf("Skipping value %s: %v", v.Desc.Name, err)
				unknown++
				continue
			}
			b, ok := reg.Lookup(v.Desc.ID)
			if !ok {
				continue
			}
			t := tallies[b.Act]
			if t == nil {
				t = &activityTally{}
				tallies[b.Act] = t
			}
			t.values++
			if !seen[b.Act] {
				seen[b.Act] = true
				t.samples++
			}
		}
		telemetry.AddSlice([]telemetry.Metric{
			{ID: telemetry.IDSamplesRead, Value: 1},
			{ID: telemetry.IDValuesRead, Value: telemetry.MetricValue(len(s.Values))},
		})
		if exp != nil {
			md := otelexport.Convert(hdr.Hostname, created, s.Timestamp, s.Values)
			if err := exp.Export(ctx, md); err != nil {
				return fmt.Errorf("failed to forward sample: %w", err)
			}
		}
	}
	if err := it.Err(); err != nil {
		telemetry.Add(telemetry.IDDecodeErrors, 1)
		return fmt.Errorf("failed to read samples: %w", err)
	}

	fmt.Printf("\n%-14s %9s %9s\n", "activity", "samples", "values")
	for _, a := range registry.Activities() {
		t := tallies[a]
		if t == nil {
			continue
		}
		fmt.Printf("%-14s %9d %9d\n", a, t.samples, t.values)
	}
	if unknown > 0 {
		fmt.Printf("\n%d values not understood\n", unknown)
	}
	return nil
}

func printValue(ts time.Time, v *pmi.Value) {
	if v.Inst != pmi.InstNull {
		fmt.Printf("%s %s[%s] %s\n", ts.Format(time.RFC3339), v.Desc.Name, v.Instance, v.Text)
		return
	}
	fmt.Printf("%s %s %s\n", ts.Format(time.RFC3339), v.Desc.Name, v.Text)
}
