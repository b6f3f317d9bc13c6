// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// key spaces within the database
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	State        *PoolHandle `prefix:"S"`
	History      *PoolHandle `prefix:"H"`
	HistoryCount *PoolHandle `prefix:"N"`
	Index        *PoolHandle `prefix:"I"`
}

// PoolHandle - a one byte prefixed key space
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// build the pools from the struct tags
func newPools() (*pools, error) {
	p := &pools{}

	poolType := reflect.TypeOf(*p)
	poolValue := reflect.ValueOf(p).Elem()

	seen := make(map[byte]string)
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}
		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("pool: %s reuses prefix: %q of: %s", fieldInfo.Name, prefixTag, other)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		handle := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(handle))
	}
	return p, nil
}

// the full database key for a pool key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// range covering keys that start with a pool key prefix
func (p *PoolHandle) prefixRange(key []byte) *ldb_util.Range {
	if 0 == len(key) {
		return &ldb_util.Range{
			Start: []byte{p.prefix},
			Limit: p.limit,
		}
	}
	return ldb_util.BytesPrefix(p.prefixKey(key))
}

// keys of the individual pools

func stateKey(pools *pools, key string) []byte {
	return pools.State.prefixKey([]byte(key))
}

func historyPrefix(key string) []byte {
	return appendField(nil, key)
}

func historyKey(pools *pools, key string, sequence uint64) []byte {
	k := historyPrefix(key)
	k = binary.BigEndian.AppendUint64(k, sequence)
	return pools.History.prefixKey(k)
}

func historyCountKey(pools *pools, key string) []byte {
	return pools.HistoryCount.prefixKey(appendField(nil, key))
}

func indexPrefix(name string, values []string) []byte {
	k := appendField(nil, name)
	for _, v := range values {
		k = appendField(k, v)
	}
	return k
}

func indexKey(pools *pools, name string, values []string, key string) []byte {
	k := appendField(indexPrefix(name, values), key)
	return pools.Index.prefixKey(k)
}
