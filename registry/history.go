// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/bitmark-inc/aitrustd/fault"
)

// History - every version of a record, oldest first, numbered from zero
//
// deleted records keep their history; an id that was never written is
// not found
func (r *Registry) History(assetUUID string) (entries []HistoryEntry, err error) {
	iter, err := r.store.History(assetUUID)
	if nil != err {
		return nil, err
	}
	defer func() {
		closeErr := iter.Close()
		if nil == err && nil != closeErr {
			entries = nil
			err = closeErr
		}
	}()

	entries = make([]HistoryEntry, 0, 8)
	for iter.HasNext() {
		element, err := iter.Next()
		if nil != err {
			r.log.Errorf("history: id: %s  error: %s", assetUUID, err)
			return nil, err
		}

		entry := HistoryEntry{
			Index:     len(entries),
			TxID:      element.TxID,
			Timestamp: element.Timestamp,
			IsDelete:  element.IsDelete,
		}
		if !element.IsDelete {
			entry.Record, entry.Raw = r.parse(assetUUID, element.Value)
		}
		entries = append(entries, entry)
	}

	if 0 == len(entries) {
		return nil, fault.NotFoundError(fmt.Sprintf("AITrust asset %s has no history", assetUUID))
	}
	return entries, nil
}
