// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sysstat/sapcp/registry"
	"github.com/sysstat/sapcp/sample"
)

// splitList breaks a comma separated flag value into its items, with
// surrounding whitespace trimmed and empty items dropped.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// parseActivities resolves a comma separated activity list. Empty input
// and the word "all" both select every activity.
func parseActivities(s string) ([]registry.Activity, error) {
	var acts []registry.Activity
	for _, name := range splitList(s) {
		if name == "all" {
			return nil, nil
		}
		a, err := registry.ParseActivity(name)
		if err != nil {
			return nil, err
		}
		acts = append(acts, a)
	}
	return acts, nil
}

// parseCPUSet resolves a processor list in the kernel's "0,3-5"
// notation. Empty input and the word "all" select every processor.
func parseCPUSet(s string) (*sample.CPUSet, error) {
	items := splitList(s)
	if len(items) == 0 {
		return nil, nil
	}
	set := &sample.CPUSet{}
	for _, item := range items {
		if item == "all" {
			return nil, nil
		}
		lo, hi, isRange := strings.Cut(item, "-")
		first, err := strconv.Atoi(lo)
		if err != nil || first < 0 {
			return nil, fmt.Errorf("invalid processor number %q", item)
		}
		last := first
		if isRange {
			last, err = strconv.Atoi(hi)
			if err != nil || last < first {
				return nil, fmt.Errorf("invalid processor range %q", item)
			}
		}
		for n := first; n <= last; n++ {
			set.Set(n)
		}
	}
	return set, nil
}

// parseLabels resolves a comma separated key=value list into the
// free-form archive header labels.
func parseLabels(s string) (map[string]string, error) {
	items := splitList(s)
	if len(items) == 0 {
		return nil, nil
	}
	labels := make(map[string]string, len(items))
	for _, item := range items {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid label %q, expected key=value", item)
		}
		labels[key] = value
	}
	return labels, nil
}
