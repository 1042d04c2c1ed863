// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package shipper

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	tests := map[string]struct {
		prefix   string
		hostname string
		base     string
		want     string
	}{
		"with prefix": {"archives", "db1", "db1-20251103.pcp", "archives/db1/db1-20251103.pcp"},
		"no prefix":   {"", "db1", "db1-20251103.pcp", "db1/db1-20251103.pcp"},
		"deep prefix": {"prod/sa", "web2", "r.pcp", "prod/sa/web2/r.pcp"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, objectKey(tc.prefix, tc.hostname, tc.base))
		})
	}
}

func TestSidecarContents(t *testing.T) {
	line := sidecarContents([]byte{0xab, 0xcd, 0x01}, "run.pcp")
	assert.Equal(t, "abcd01  run.pcp\n", line)
}

func TestDigestsEqual(t *testing.T) {
	local := sidecarContents([]byte{0x12, 0x34}, "run.pcp")

	assert.True(t, digestsEqual("1234  run.pcp\n", local))
	// The file name plays no role in the comparison.
	assert.True(t, digestsEqual("1234  renamed.pcp\n", local))
	assert.False(t, digestsEqual("5678  run.pcp\n", local))
	assert.False(t, digestsEqual("", local))
	assert.False(t, digestsEqual("\n", local))
}

func TestFileDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.pcp")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	digest, size, err := fileDigest(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		fmt.Sprintf("%x", digest))

	_, _, err = fileDigest(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
