// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package hostinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCPURange(t *testing.T) {
	tests := map[string]struct {
		in   string
		want []int
	}{
		"single":      {in: "0\n", want: []int{0}},
		"range":       {in: "0-3\n", want: []int{0, 1, 2, 3}},
		"mixed":       {in: "0-2,4,6-7\n", want: []int{0, 1, 2, 4, 6, 7}},
		"hole at one": {in: "0,2-3", want: []int{0, 2, 3}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cpus, err := readCPURange(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cpus)
		})
	}
}

func TestReadCPURangeErrors(t *testing.T) {
	for _, in := range []string{"", "a", "0-", "0-a", "1,,2"} {
		_, err := readCPURange(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestPresentCPUs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "present")
	require.NoError(t, os.WriteFile(path, []byte("0-7,9\n"), 0o644))

	n, err := PresentCPUs(path)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = PresentCPUs(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Linux", sanitizeString([]byte("Linux\x00\x00\x00")))
	assert.Equal(t, "", sanitizeString([]byte{0, 0}))
}
