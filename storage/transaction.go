// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/logger"
)

// both *leveldb.DB and *leveldb.Snapshot
type reader interface {
	Get(key []byte, ro *ldb_opt.ReadOptions) ([]byte, error)
	NewIterator(slice *ldb_util.Range, ro *ldb_opt.ReadOptions) iterator.Iterator
}

// the KeyValueStore given to a callback
//
// batch is nil for a read only transaction
type transaction struct {
	log       *logger.L
	pools     *pools
	indexes   Indexes
	read      reader
	batch     *leveldb.Batch
	cache     *dbCache
	txID      string
	timestamp time.Time
}

// TransactionID - identifier of a transaction started at a time
func TransactionID(timestamp time.Time, serial uint64) string {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], uint64(timestamp.UnixNano()))
	binary.BigEndian.PutUint64(buffer[8:], serial)
	digest := sha3.Sum256(buffer)
	return hex.EncodeToString(digest[:])
}

// Get - current value of a key, nil if absent
func (t *transaction) Get(key string) ([]byte, error) {
	if err := CheckKey(key); nil != err {
		return nil, err
	}
	return t.get(stateKey(t.pools, key))
}

// Put - store a value, append its history and maintain the indexes
func (t *transaction) Put(key string, value []byte) error {
	if nil == t.batch {
		return fault.ReadOnlyTransaction
	}
	if err := CheckKey(key); nil != err {
		return err
	}

	previous, err := t.Get(key)
	if nil != err {
		return err
	}

	err = t.appendHistory(key, false, value)
	if nil != err {
		return err
	}

	t.reindex(key, previous, value)
	t.put(stateKey(t.pools, key), value)
	return nil
}

// Delete - remove the current value, history is kept
func (t *transaction) Delete(key string) error {
	if nil == t.batch {
		return fault.ReadOnlyTransaction
	}
	if err := CheckKey(key); nil != err {
		return err
	}

	previous, err := t.Get(key)
	if nil != err {
		return err
	}
	if nil == previous {
		return nil
	}

	err = t.appendHistory(key, true, nil)
	if nil != err {
		return err
	}

	t.reindex(key, previous, nil)
	t.remove(stateKey(t.pools, key))
	return nil
}

// Query - committed values matching a selector on a declared index
func (t *transaction) Query(selector Selector) (Iterator, error) {
	d, values, err := t.indexes.Resolve(selector)
	if nil != err {
		return nil, err
	}

	searchRange := t.pools.Index.prefixRange(indexPrefix(d.Name, values))
	return &queryCursor{
		pools:    t.pools,
		read:     t.read,
		iter:     t.read.NewIterator(searchRange, nil),
		skipSize: len(searchRange.Start),
	}, nil
}

// History - committed versions of a key, oldest first
func (t *transaction) History(key string) (HistoryIterator, error) {
	if err := CheckKey(key); nil != err {
		return nil, err
	}
	searchRange := t.pools.History.prefixRange(historyPrefix(key))
	return &historyCursor{
		iter: t.read.NewIterator(searchRange, nil),
	}, nil
}

// move index entries from the previous value to the new one
func (t *transaction) reindex(key string, previous []byte, value []byte) {
	for _, d := range t.indexes {
		oldValues, hadOld := d.Extract(previous)
		newValues, hasNew := d.Extract(value)
		if hadOld && hasNew && sameValues(oldValues, newValues) {
			continue
		}
		if hadOld {
			t.remove(indexKey(t.pools, d.Name, oldValues, key))
		}
		if hasNew {
			t.put(indexKey(t.pools, d.Name, newValues, key), []byte{})
		}
	}
}

// append one entry to the key's history log
func (t *transaction) appendHistory(key string, isDelete bool, value []byte) error {
	countKey := historyCountKey(t.pools, key)

	sequence := uint64(0)
	count, err := t.get(countKey)
	if nil != err {
		return err
	}
	if nil != count {
		if 8 != len(count) {
			return fault.CorruptRecord
		}
		sequence = binary.BigEndian.Uint64(count)
	}

	entry := packHistory(&HistoryElement{
		TxID:      t.txID,
		Timestamp: t.timestamp,
		IsDelete:  isDelete,
		Value:     value,
	})
	t.put(historyKey(t.pools, key, sequence), entry)

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, sequence+1)
	t.put(countKey, next)

	return nil
}

// read through the pending writes
func (t *transaction) get(key []byte) ([]byte, error) {
	if nil != t.cache {
		value, deleted, found := t.cache.Get(key)
		if found {
			if deleted {
				return nil, nil
			}
			return value, nil
		}
	}

	value, err := t.read.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (t *transaction) put(key []byte, value []byte) {
	t.batch.Put(key, value)
	t.cache.Set(dbPut, key, value)
}

func (t *transaction) remove(key []byte) {
	t.batch.Delete(key)
	t.cache.Set(dbDelete, key, nil)
}

// history entry: timestamp:8 flags:1 txid-length:1 txid value
const (
	flagDelete = 0x01
)

func packHistory(h *HistoryElement) []byte {
	buffer := make([]byte, 10, 10+len(h.TxID)+len(h.Value))
	binary.BigEndian.PutUint64(buffer[:8], uint64(h.Timestamp.UnixNano()))
	if h.IsDelete {
		buffer[8] = flagDelete
	}
	buffer[9] = byte(len(h.TxID))
	buffer = append(buffer, h.TxID...)
	return append(buffer, h.Value...)
}

func unpackHistory(packed []byte) (*HistoryElement, error) {
	if len(packed) < 10 {
		return nil, fault.CorruptRecord
	}
	n := int(packed[9])
	if len(packed) < 10+n {
		return nil, fault.CorruptRecord
	}

	h := &HistoryElement{
		Timestamp: time.Unix(0, int64(binary.BigEndian.Uint64(packed[:8]))).UTC(),
		IsDelete:  0 != packed[8]&flagDelete,
		TxID:      string(packed[10 : 10+n]),
	}
	if !h.IsDelete {
		h.Value = append([]byte{}, packed[10+n:]...)
	}
	return h, nil
}
