// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package selfmetrics implements the fetching and reporting of recorder runtime metrics.
package selfmetrics // import "github.com/sysstat/sapcp/telemetry/selfmetrics"

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	log "github.com/sirupsen/logrus"

	"github.com/sysstat/sapcp/periodiccaller"
	"github.com/sysstat/sapcp/telemetry"
)

// rusageTimes holds time values of a rusage call.
type rusageTimes struct {
	// utime represents the user time in usec.
	utime unix.Timeval
	// stime represents the system time in usec.
	stime unix.Timeval
}

const (
	// rusageSelf is the indicator that we get the rusage
	// of the calling process itself.
	rusageSelf = 0
)

// timeDelta calculates the difference between two time values
// and returns the difference in milliseconds.
func timeDelta(now, prev unix.Timeval) int64 {
	secDelta := (now.Sec - prev.Sec) * 1000
	usecDelta := (now.Usec - prev.Usec) / 1000
	return secDelta + usecDelta
}

// report collects runtime metrics of the recorder and forwards these
// to the telemetry package for further processing.
func (r *rusageTimes) report() {
	nGoRoutines := runtime.NumGoroutine()

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	var rusage unix.Rusage
	if err := unix.Getrusage(rusageSelf, &rusage); err != nil {
		log.Errorf("Failed to fetch Rusage: %v", err)
		return
	}

	// Get the difference to the previous call of rusage.
	deltaStime := timeDelta(rusage.Stime, r.stime)
	deltaUtime := timeDelta(rusage.Utime, r.utime)

	// Save the current values of the rusage call.
	r.stime = rusage.Stime
	r.utime = rusage.Utime

	telemetry.AddSlice([]telemetry.Metric{
		{
			ID:    telemetry.IDAgentGoRoutines,
			Value: telemetry.MetricValue(nGoRoutines),
		},
		{
			ID:    telemetry.IDAgentHeapAlloc,
			Value: telemetry.MetricValue(stats.HeapAlloc),
		},
		{
			ID:    telemetry.IDAgentUTime,
			Value: telemetry.MetricValue(deltaUtime),
		},
		{
			ID:    telemetry.IDAgentSTime,
			Value: telemetry.MetricValue(deltaStime),
		},
	})
}

// Start starts the runtime metric retrieval and reporting.
func Start(mainCtx context.Context, interval time.Duration) (func(), error) {
	var rusage unix.Rusage
	if err := unix.Getrusage(rusageSelf, &rusage); err != nil {
		log.Errorf("Failed to fetch Rusage: %v", err)
		return func() {}, err
	}

	prev := rusageTimes{
		utime: rusage.Utime,
		stime: rusage.Stime,
	}

	ctx, cancel := context.WithCancel(mainCtx)
	stopReporting := periodiccaller.Start(ctx, interval, func() {
		prev.report()
	})

	return func() {
		cancel()
		stopReporting()
	}, nil
}
