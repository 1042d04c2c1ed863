// Copyright The sysstat Authors
// SPDX-License-Identifier: Apache-2.0

package pmi // import "github.com/sysstat/sapcp/pmi"

// The meta blob is the self-describing part of an archive: every metric
// descriptor and every instance domain registered during the session,
// serialized as JSON and stored by the container after the last sample.
// Handles are the positions metrics were registered in and are what the
// sample frames reference.

type archiveMeta struct {
	Metrics []metaMetric `json:"metrics"`
	InDoms  []metaInDom  `json:"indoms"`
}

type metaMetric struct {
	Handle uint32  `json:"handle"`
	Name   string  `json:"name"`
	ID     uint32  `json:"id"`
	Type   int32   `json:"type"`
	InDom  uint32  `json:"indom"`
	Sem    int32   `json:"sem"`
	Units  [7]int8 `json:"units"`
}

type metaInDom struct {
	ID        uint32         `json:"id"`
	Instances []metaInstance `json:"instances"`
}

type metaInstance struct {
	Key  int32  `json:"key"`
	Name string `json:"name"`
}
