// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package devname

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSys(t *testing.T) string {
	sys := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sys, "block", "dm-0", "dm"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(sys, "block", "dm-0", "dm", "name"),
		[]byte("vg0-root\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(sys, "dev", "block"), 0o755))
	require.NoError(t, os.MkdirAll(
		filepath.Join(sys, "devices", "pci0", "sda"), 0o755))
	require.NoError(t, os.Symlink("../../devices/pci0/sda",
		filepath.Join(sys, "dev", "block", "8:0")))
	return sys
}

func TestNameFromKernelTable(t *testing.T) {
	r, err := New(testSys(t))
	require.NoError(t, err)

	assert.Equal(t, "sda", r.Name(8, 0, "sda"))
	assert.Equal(t, "sda1", r.Name(8, 1, "sda1"))
}

func TestNameDeviceMapper(t *testing.T) {
	r, err := New(testSys(t))
	require.NoError(t, err)

	assert.Equal(t, "vg0-root", r.Name(253, 0, "dm-0"))

	// No mapper table entry, keep the kernel name.
	assert.Equal(t, "dm-9", r.Name(253, 9, "dm-9"))
}

func TestNameByNumber(t *testing.T) {
	r, err := New(testSys(t))
	require.NoError(t, err)

	assert.Equal(t, "sda", r.Name(8, 0, ""))
	assert.Equal(t, "dev42-7", r.Name(42, 7, ""))
}

func TestNameCached(t *testing.T) {
	sys := testSys(t)
	r, err := New(sys)
	require.NoError(t, err)

	require.Equal(t, "vg0-root", r.Name(253, 0, "dm-0"))

	// Resolution sticks even after the source is gone.
	require.NoError(t, os.RemoveAll(filepath.Join(sys, "block")))
	assert.Equal(t, "vg0-root", r.Name(253, 0, "dm-0"))
}
