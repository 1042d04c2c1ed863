// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package procfs reads kernel statistics from /proc and /sys into
// sample records. Every file format has a pure parser working on an
// io.Reader; the FS methods bind the parsers to paths below a pair of
// mount points so tests can run against fixture trees.
package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"os"
	"path/filepath"
)

// FS locates the kernel statistics files. The zero value is not
// usable; call NewFS or use Default.
type FS struct {
	proc string
	sys  string
}

// Default reads from the usual mount points.
var Default = NewFS("/proc", "/sys")

// NewFS returns an FS reading below the given /proc and /sys mount
// points.
func NewFS(proc, sys string) FS {
	return FS{proc: proc, sys: sys}
}

func (fs FS) procPath(elem ...string) string {
	return filepath.Join(append([]string{fs.proc}, elem...)...)
}

func (fs FS) sysPath(elem ...string) string {
	return filepath.Join(append([]string{fs.sys}, elem...)...)
}

// open returns the file plus a nil error, or a nil file when the
// source does not exist on this kernel. Collectors treat a nil file as
// an absent subsystem.
func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}

// BlockDevice reports whether name is a whole block device rather than
// a partition.
func (fs FS) BlockDevice(name string) bool {
	_, err := os.Stat(fs.sysPath("block", name))
	return err == nil
}
