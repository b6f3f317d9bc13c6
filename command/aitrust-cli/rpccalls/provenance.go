// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/aitrustd/assetrecord"
)

// DefaultProvenanceDepth - ancestor levels followed when none is given
const DefaultProvenanceDepth = 10

// RecordReader - anything that can fetch a current asset record
type RecordReader interface {
	Read(assetUUID string) (*assetrecord.Record, error)
}

// ProvenanceEntry - one asset in a lineage walk
//
// Depth is zero for the starting asset; an ancestor that could not
// be read carries the error text instead of a record
type ProvenanceEntry struct {
	Depth     int                 `json:"depth"`
	AssetUUID string              `json:"assetUUID"`
	Record    *assetrecord.Record `json:"record,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// Provenance - breadth first walk of the source assets of an asset
//
// each asset appears once, at the smallest depth it was reached;
// sources are not followed past maxDepth levels
func Provenance(r RecordReader, assetUUID string, maxDepth int) ([]ProvenanceEntry, error) {

	root, err := r.Read(assetUUID)
	if nil != err {
		return nil, err
	}

	entries := []ProvenanceEntry{
		{
			Depth:     0,
			AssetUUID: assetUUID,
			Record:    root,
		},
	}
	seen := map[string]struct{}{
		assetUUID: {},
	}

	frontier := []*assetrecord.Record{root}
	for depth := 1; depth <= maxDepth && 0 != len(frontier); depth += 1 {
		next := make([]*assetrecord.Record, 0)
		for _, record := range frontier {
			for _, source := range record.LineageInfo.SourceAssets {
				if _, ok := seen[source]; ok {
					continue
				}
				seen[source] = struct{}{}

				ancestor, err := r.Read(source)
				if nil != err {
					entries = append(entries, ProvenanceEntry{
						Depth:     depth,
						AssetUUID: source,
						Error:     err.Error(),
					})
					continue
				}
				entries = append(entries, ProvenanceEntry{
					Depth:     depth,
					AssetUUID: source,
					Record:    ancestor,
				})
				next = append(next, ancestor)
			}
		}
		frontier = next
	}

	return entries, nil
}
