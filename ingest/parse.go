// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package ingest // import "github.com/sysstat/sapcp/ingest"

import (
	"math"
	"strconv"
)

func parseU64(text string) (uint64, error) {
	return strconv.ParseUint(text, 10, 64)
}

func parseU32(text string) (uint32, error) {
	v, err := strconv.ParseUint(text, 10, 32)
	return uint32(v), err
}

func parseF(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// parseHundredths reads a decimal gauge back into its stored form of
// hundredths, rounding to the nearest.
func parseHundredths(text string) (uint32, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return uint32(math.Round(f * 100)), nil
}

// parseHex16 reads a 16 bit identifier printed in lowercase hex.
func parseHex16(text string) (uint16, error) {
	v, err := strconv.ParseUint(text, 16, 16)
	return uint16(v), err
}

// setU64 parses a decimal counter into the field selected by p.
func setU64[T any](p func(*T) *uint64) func(*T, string) error {
	return func(r *T, text string) error {
		v, err := parseU64(text)
		if err != nil {
			return err
		}
		*p(r) = v
		return nil
	}
}

func setU32[T any](p func(*T) *uint32) func(*T, string) error {
	return func(r *T, text string) error {
		v, err := parseU32(text)
		if err != nil {
			return err
		}
		*p(r) = v
		return nil
	}
}

// setU64Mul scales a published value back to its stored unit, for
// fields the writer divides on the way out.
func setU64Mul[T any](p func(*T) *uint64, scale uint64) func(*T, string) error {
	return func(r *T, text string) error {
		v, err := parseU64(text)
		if err != nil {
			return err
		}
		*p(r) = v * scale
		return nil
	}
}

// setU64Div scales a published value back to its stored unit, for
// fields the writer multiplies on the way out.
func setU64Div[T any](p func(*T) *uint64, scale uint64) func(*T, string) error {
	return func(r *T, text string) error {
		v, err := parseU64(text)
		if err != nil {
			return err
		}
		*p(r) = v / scale
		return nil
	}
}

// skipU64 validates a counter the writer derives from other fields.
// The source metrics carry the state; the derived one has no backing
// field to land in.
func skipU64[T any]() func(*T, string) error {
	return func(_ *T, text string) error {
		_, err := parseU64(text)
		return err
	}
}
