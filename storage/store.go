// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"
)

// Element - key and current value yielded by a query
type Element struct {
	Key   string
	Value []byte
}

// HistoryElement - one version of a key
//
// a delete marker has IsDelete set and no value
type HistoryElement struct {
	TxID      string
	Timestamp time.Time
	IsDelete  bool
	Value     []byte
}

// Iterator - cursor over query results
//
// Close must be called on every path
type Iterator interface {
	HasNext() bool
	Next() (*Element, error)
	Close() error
}

// HistoryIterator - cursor over the versions of a key, oldest first
type HistoryIterator interface {
	HasNext() bool
	Next() (*HistoryElement, error)
	Close() error
}

// Selector - equality match on the fields of a declared index
type Selector struct {
	Index  string
	Fields map[string]string
}

// KeyValueStore - the view of the world state inside one transaction
//
// Get returns nil, nil for an absent key.  Query and History are not
// guaranteed to see writes made earlier in the same transaction.
type KeyValueStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Query(selector Selector) (Iterator, error)
	History(key string) (HistoryIterator, error)
}

// Backend - transaction runner over a world state
type Backend interface {
	Evaluate(fn func(KeyValueStore) error) error
	Submit(fn func(KeyValueStore) error) (string, error)
	Close() error
}
