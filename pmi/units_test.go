// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsEncode(t *testing.T) {
	countPerSecond := MakeUnits(0, -1, 1, 0, TimeSec, CountOne)
	kbytes := MakeUnits(1, 0, 0, SpaceKByte, 0, 0)
	milliseconds := MakeUnits(0, 1, 0, 0, TimeMSec, 0)

	tests := map[string]struct {
		units Units
		order UnitsOrder
		want  [7]int8
	}{
		"count per second ltor": {
			units: countPerSecond,
			order: UnitsLTOR,
			want:  [7]int8{0, -1, 1, 0, TimeSec, CountOne, 0},
		},
		"count per second rtol": {
			units: countPerSecond,
			order: UnitsRTOL,
			want:  [7]int8{0, CountOne, TimeSec, 0, 1, -1, 0},
		},
		"kbytes ltor": {
			units: kbytes,
			order: UnitsLTOR,
			want:  [7]int8{1, 0, 0, SpaceKByte, 0, 0, 0},
		},
		"kbytes rtol": {
			units: kbytes,
			order: UnitsRTOL,
			want:  [7]int8{0, 0, 0, SpaceKByte, 0, 0, 1},
		},
		"milliseconds ltor": {
			units: milliseconds,
			order: UnitsLTOR,
			want:  [7]int8{0, 1, 0, 0, TimeMSec, 0, 0},
		},
		"milliseconds rtol": {
			units: milliseconds,
			order: UnitsRTOL,
			want:  [7]int8{0, 0, TimeMSec, 0, 0, 1, 0},
		},
		"dimensionless ltor": {
			units: Units{},
			order: UnitsLTOR,
			want:  [7]int8{},
		},
		"dimensionless rtol": {
			units: Units{},
			order: UnitsRTOL,
			want:  [7]int8{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.units.Encode(tc.order)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.units, DecodeUnits(got, tc.order))
		})
	}
}

// Decoding a tuple with the wrong order must not reproduce the units,
// otherwise the header field would be dead weight.
func TestDecodeUnitsOrderMatters(t *testing.T) {
	u := MakeUnits(1, -1, 0, SpaceMByte, TimeSec, 0)
	assert.NotEqual(t, u, DecodeUnits(u.Encode(UnitsLTOR), UnitsRTOL))
	assert.NotEqual(t, u, DecodeUnits(u.Encode(UnitsRTOL), UnitsLTOR))
}

func TestUnitsOrderRoundTrip(t *testing.T) {
	assert.Equal(t, "ltor", UnitsLTOR.String())
	assert.Equal(t, "rtol", UnitsRTOL.String())

	for _, order := range []UnitsOrder{UnitsLTOR, UnitsRTOL} {
		got, err := ParseUnitsOrder(order.String())
		require.NoError(t, err)
		assert.Equal(t, order, got)
	}

	_, err := ParseUnitsOrder("boustrophedon")
	assert.Error(t, err)
}
