// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// sapcp records Linux system activity into self-describing metric
// archives and reads such archives back: summarizing them, forwarding
// them over OTLP, or re-exporting them into fresh archives.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff/v3/ffcli"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/sysstat/sapcp/vc"
)

type exitCode int

const (
	exitSuccess exitCode = 0
	exitFailure exitCode = 1

	// Go 'flag' package calls os.Exit(2) on flag parse errors, if flag.ExitOnError is used
	exitParseError exitCode = 2
)

func main() {
	os.Exit(int(mainWithExitCode()))
}

func mainWithExitCode() exitCode {
	log.SetReportCaller(false)
	log.SetFormatter(&log.TextFormatter{})

	ctx, cancel := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer cancel()

	var verbose, version bool
	set := flag.NewFlagSet("sapcp", flag.ExitOnError)
	set.BoolVar(&verbose, "v", false, "Enable verbose logging and debug output.")
	set.BoolVar(&version, "version", false, "Print version and exit.")

	root := &ffcli.Command{
		Name:       "sapcp",
		ShortUsage: "sapcp [flags] <subcommand> [flags]",
		ShortHelp:  "Record system activity archives and read them back",
		FlagSet:    set,
		Subcommands: []*ffcli.Command{
			newRecordCmd(),
			newDumpCmd(),
			newReplayCmd(),
		},
		Exec: func(context.Context, []string) error {
			if version {
				fmt.Printf("sapcp %s\n", vc.Version())
				return nil
			}
			return flag.ErrHelp
		},
	}

	if err := root.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitParseError
		}
		log.Errorf("Failed to parse command line: %v", err)
		return exitParseError
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := root.Run(ctx); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitParseError
		}
		log.Errorf("%v", err)
		return exitFailure
	}
	return exitSuccess
}
