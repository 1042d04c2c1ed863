// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package procfs // import "github.com/sysstat/sapcp/internal/procfs"

import (
	"bufio"
	"io"
	"strings"

	"github.com/sysstat/sapcp/stringutil"
)

// Mount is one block device mount from /proc/mounts.
type Mount struct {
	Source string
	Target string
	FSType string
}

// Mounts reads /proc/mounts and keeps the mounts backed by a block
// device. A device mounted in several places is reported once, at the
// first mount point seen.
func (fs FS) Mounts() ([]Mount, error) {
	f, err := open(fs.procPath("mounts"))
	if f == nil || err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMounts(f)
}

func parseMounts(r io.Reader) ([]Mount, error) {
	var mounts []Mount
	seen := map[string]bool{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stringutil.ByteSlice2String(scanner.Bytes())

		var fields [4]string
		if stringutil.FieldsN(line, fields[:]) < 3 {
			continue
		}
		if !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		source := strings.Clone(fields[0])
		if seen[source] {
			continue
		}
		seen[source] = true
		mounts = append(mounts, Mount{
			Source: source,
			Target: unescapeMount(fields[1]),
			FSType: strings.Clone(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mounts, nil
}

// unescapeMount decodes the octal escapes the kernel uses for
// whitespace in mount points, \040 for space and so on.
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return strings.Clone(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) &&
			isOctal(s[i+1]) && isOctal(s[i+2]) && isOctal(s[i+3]) {
			b.WriteByte((s[i+1]-'0')<<6 | (s[i+2]-'0')<<3 | (s[i+3] - '0'))
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
