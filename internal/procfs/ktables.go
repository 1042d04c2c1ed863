// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"io"
	"strings"

	"github.com/sysstat/sapcp/sample"
	"github.com/sysstat/sapcp/stringutil"
)

// KTables reads the kernel table gauges below /proc/sys. Tables whose
// file is missing stay zero.
func (fs FS) KTables() (*sample.KTables, error) {
	kt := &sample.KTables{}

	// dentry-state: nr_dentry nr_unused age_limit want_pages ...
	fields, err := fs.readSysFields("sys", "fs", "dentry-state")
	if err != nil {
		return nil, err
	}
	if len(fields) >= 2 {
		kt.Dentries = parseUintField(fields[1])
	}

	// file-nr: allocated free max
	fields, err = fs.readSysFields("sys", "fs", "file-nr")
	if err != nil {
		return nil, err
	}
	if len(fields) >= 1 {
		kt.Files = parseUintField(fields[0])
	}

	// inode-state: nr_inodes nr_free_inodes ...
	fields, err = fs.readSysFields("sys", "fs", "inode-state")
	if err != nil {
		return nil, err
	}
	if len(fields) >= 2 {
		used := parseUintField(fields[0])
		free := parseUintField(fields[1])
		if free <= used {
			kt.Inodes = used - free
		}
	}

	fields, err = fs.readSysFields("sys", "kernel", "pty", "nr")
	if err != nil {
		return nil, err
	}
	if len(fields) >= 1 {
		kt.PTYs = parseUintField(fields[0])
	}
	return kt, nil
}

// readSysFields splits a single-line /proc/sys file into fields. A
// missing file yields no fields.
func (fs FS) readSysFields(elem ...string) ([]string, error) {
	f, err := open(fs.procPath(elem...))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	var fields [8]string
	n := stringutil.FieldsN(strings.TrimSpace(string(data)), fields[:])
	return fields[:n], nil
}
