// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sysstat/sapcp/sample"
)

// FCHosts reads the frame and word counters of every Fibre Channel
// host below /sys/class/fc_host. The statistics attributes print hex.
func (fs FS) FCHosts() ([]sample.FCHost, error) {
	entries, err := os.ReadDir(fs.sysPath("class", "fc_host"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var hosts []sample.FCHost
	for _, e := range entries {
		stats := filepath.Join(fs.sysPath("class", "fc_host", e.Name()), "statistics")
		fc := sample.FCHost{Name: strings.Clone(e.Name())}
		var ok bool
		if fc.RxFrames, ok = readSysUint(stats, "rx_frames", 16); !ok {
			continue
		}
		fc.TxFrames, _ = readSysUint(stats, "tx_frames", 16)
		fc.RxWords, _ = readSysUint(stats, "rx_words", 16)
		fc.TxWords, _ = readSysUint(stats, "tx_words", 16)
		hosts = append(hosts, fc)
	}
	return hosts, nil
}
