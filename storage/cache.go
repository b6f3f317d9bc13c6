// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// pending writes of the current transaction so reads see them
type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - returns found == true if the key was written in this transaction,
// deleted == true if that write was a delete
func (c *dbCache) Get(key []byte) (value []byte, deleted bool, found bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, true
	}
	return data.value, false, true
}

func (c *dbCache) Set(op dbOperation, key []byte, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(string(key), cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
