// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

import "fmt"

// Scale constants for the space dimension.
const (
	SpaceByte = iota
	SpaceKByte
	SpaceMByte
	SpaceGByte
	SpaceTByte
	SpacePByte
	SpaceEByte
)

// Scale constants for the time dimension.
const (
	TimeNSec = iota
	TimeUSec
	TimeMSec
	TimeSec
	TimeMin
	TimeHour
)

// CountOne is the identity scale for the count dimension.
const CountOne = 0

// Units describes the dimensionality and scale of a metric value. Each
// dimension carries a small signed exponent and an unsigned scale from
// the constant sets above.
type Units struct {
	DimSpace   int8
	DimTime    int8
	DimCount   int8
	ScaleSpace uint8
	ScaleTime  uint8
	ScaleCount uint8
}

// MakeUnits builds Units from the six values in declaration order:
// space, time and count exponents, then space, time and count scales.
func MakeUnits(dimSpace, dimTime, dimCount, scaleSpace, scaleTime, scaleCount int) Units {
	return Units{
		DimSpace:   int8(dimSpace),
		DimTime:    int8(dimTime),
		DimCount:   int8(dimCount),
		ScaleSpace: uint8(scaleSpace),
		ScaleTime:  uint8(scaleTime),
		ScaleCount: uint8(scaleCount),
	}
}

// UnitsOrder selects how the six unit fields plus one pad element are
// laid out in the stored seven-element tuple. The layout mirrors the C
// bitfield order of the platform that produced the archive and is fixed
// once per archive, recorded in its header.
type UnitsOrder uint8

const (
	// UnitsLTOR stores fields left to right: dimensions, scales, pad.
	UnitsLTOR UnitsOrder = iota
	// UnitsRTOL stores fields right to left: pad, reversed scales,
	// reversed dimensions.
	UnitsRTOL
)

func (o UnitsOrder) String() string {
	switch o {
	case UnitsLTOR:
		return "ltor"
	case UnitsRTOL:
		return "rtol"
	}
	return fmt.Sprintf("order(%d)", uint8(o))
}

// ParseUnitsOrder is the inverse of UnitsOrder.String.
func ParseUnitsOrder(s string) (UnitsOrder, error) {
	switch s {
	case "ltor":
		return UnitsLTOR, nil
	case "rtol":
		return UnitsRTOL, nil
	}
	return 0, fmt.Errorf("unknown units order %q", s)
}

// Encode lays the units out as the stored seven-element tuple.
func (u Units) Encode(order UnitsOrder) [7]int8 {
	if order == UnitsRTOL {
		return [7]int8{
			0,
			int8(u.ScaleCount), int8(u.ScaleTime), int8(u.ScaleSpace),
			u.DimCount, u.DimTime, u.DimSpace,
		}
	}
	return [7]int8{
		u.DimSpace, u.DimTime, u.DimCount,
		int8(u.ScaleSpace), int8(u.ScaleTime), int8(u.ScaleCount),
		0,
	}
}

// DecodeUnits is the inverse of Units.Encode for the given order.
func DecodeUnits(t [7]int8, order UnitsOrder) Units {
	if order == UnitsRTOL {
		return Units{
			DimSpace:   t[6],
			DimTime:    t[5],
			DimCount:   t[4],
			ScaleSpace: uint8(t[3]),
			ScaleTime:  uint8(t[2]),
			ScaleCount: uint8(t[1]),
		}
	}
	return Units{
		DimSpace:   t[0],
		DimTime:    t[1],
		DimCount:   t[2],
		ScaleSpace: uint8(t[3]),
		ScaleTime:  uint8(t[4]),
		ScaleCount: uint8(t[5]),
	}
}
