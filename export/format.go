// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package export // import "github.com/sysstat/sapcp/export"

import "strconv"

type unsigned interface {
	~uint16 | ~uint32 | ~uint64
}

// utoa formats an unsigned counter as the plain decimal text stored in
// archive values.
func utoa[T unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// ftoa formats a floating gauge with the six fixed decimals of the
// interchange encoding.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// htoa formats a device identifier as lowercase hex.
func htoa(v uint16) string {
	return strconv.FormatUint(uint64(v), 16)
}
