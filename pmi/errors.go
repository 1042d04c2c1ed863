// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

import "errors"

var (
	// ErrClosed is returned by operations on a session after Close.
	ErrClosed = errors.New("session closed")

	// ErrInvalidName is returned when a metric name is not a well
	// formed dotted name.
	ErrInvalidName = errors.New("invalid metric name")

	// ErrDupMetricName is returned when a metric name is registered a
	// second time.
	ErrDupMetricName = errors.New("duplicate metric name")

	// ErrDupMetricID is returned when a metric identifier is registered
	// under a second name.
	ErrDupMetricID = errors.New("duplicate metric identifier")

	// ErrNoMetric is returned when a value is put for an unregistered
	// metric name.
	ErrNoMetric = errors.New("metric not registered")

	// ErrNoInstance is returned when a value names an instance that is
	// not in the metric's instance domain.
	ErrNoInstance = errors.New("instance not in domain")

	// ErrInstanceRequired is returned when a value for a metric with an
	// instance domain names no instance.
	ErrInstanceRequired = errors.New("metric requires an instance")

	// ErrNoInstanceAllowed is returned when a value for a singular
	// metric names an instance.
	ErrNoInstanceAllowed = errors.New("metric has no instance domain")

	// ErrInstanceConflict is returned when an instance registration
	// contradicts an earlier one: the key is already bound to another
	// name, or the name to another key.
	ErrInstanceConflict = errors.New("conflicting instance registration")

	// ErrDupValue is returned when a second value is put for the same
	// metric and instance before the sample is committed.
	ErrDupValue = errors.New("duplicate value in sample")

	// ErrNoData is returned by Commit when no values are staged.
	ErrNoData = errors.New("no values staged")
)
