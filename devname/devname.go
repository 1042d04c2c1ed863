// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

// Package devname resolves the block device numbers found in kernel
// counter tables to the names used for instance labels. Resolutions go
// through sysfs once and are then served from a bounded LRU.
package devname // import "github.com/sysstat/sapcp/devname"

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"
)

const cacheSize = 256

// Resolver maps major:minor device numbers to display names.
type Resolver struct {
	sys   string
	cache *freelru.LRU[uint64, string]
}

// New returns a Resolver reading below the given /sys mount point.
func New(sys string) (*Resolver, error) {
	cache, err := freelru.New[uint64, string](cacheSize, hashDev)
	if err != nil {
		return nil, err
	}
	return &Resolver{sys: sys, cache: cache}, nil
}

func hashDev(key uint64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return uint32(xxh3.Hash(buf[:]))
}

// Name resolves one device. kernel is the name the counter table
// printed, which may be empty. Device mapper devices resolve to their
// mapper table name.
func (r *Resolver) Name(major, minor uint32, kernel string) string {
	key := uint64(major)<<32 | uint64(minor)
	if name, ok := r.cache.Get(key); ok {
		return name
	}

	name := r.resolve(major, minor, kernel)
	r.cache.Add(key, name)
	return name
}

func (r *Resolver) resolve(major, minor uint32, kernel string) string {
	if strings.HasPrefix(kernel, "dm-") {
		if data, err := os.ReadFile(
			filepath.Join(r.sys, "block", kernel, "dm", "name")); err == nil {
			if name := strings.TrimSpace(string(data)); name != "" {
				return name
			}
		}
	}
	if kernel != "" {
		return kernel
	}

	// Tables that print only numbers go through the by-number symlink.
	link, err := os.Readlink(
		filepath.Join(r.sys, "dev", "block", fmt.Sprintf("%d:%d", major, minor)))
	if err == nil {
		if name := filepath.Base(link); name != "." && name != "/" {
			return name
		}
	}
	return fmt.Sprintf("dev%d-%d", major, minor)
}
