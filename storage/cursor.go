// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/bitmark-inc/aitrustd/fault"
)

// queryCursor - walks index entries and yields the indexed values
type queryCursor struct {
	pools    *pools
	read     reader
	iter     iterator.Iterator
	skipSize int
	next     *Element
	err      error
	fetched  bool
	closed   bool
}

// fetch the next index entry whose value still exists
func (c *queryCursor) fetch() {
	if c.fetched {
		return
	}
	c.fetched = true
	c.next = nil

	for !c.closed && c.iter.Next() {
		key, _, err := splitField(c.iter.Key()[c.skipSize:])
		if nil != err {
			c.err = err
			return
		}
		value, err := c.read.Get(stateKey(c.pools, key), nil)
		if leveldb.ErrNotFound == err {
			continue
		}
		if nil != err {
			c.err = err
			return
		}
		c.next = &Element{
			Key:   key,
			Value: value,
		}
		return
	}
	if !c.closed {
		c.err = c.iter.Error()
	}
}

func (c *queryCursor) HasNext() bool {
	c.fetch()
	return nil != c.next || nil != c.err
}

func (c *queryCursor) Next() (*Element, error) {
	if c.closed {
		return nil, fault.NotInitialised
	}
	c.fetch()
	c.fetched = false
	if nil != c.err {
		err := c.err
		c.err = nil
		return nil, err
	}
	if nil == c.next {
		return nil, fault.NotFoundError("cursor is exhausted")
	}
	return c.next, nil
}

func (c *queryCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.iter.Release()
	return nil
}

// historyCursor - walks the history log of one key
type historyCursor struct {
	iter    iterator.Iterator
	next    *HistoryElement
	err     error
	fetched bool
	closed  bool
}

func (c *historyCursor) fetch() {
	if c.fetched {
		return
	}
	c.fetched = true
	c.next = nil

	if c.closed {
		return
	}
	if !c.iter.Next() {
		c.err = c.iter.Error()
		return
	}
	c.next, c.err = unpackHistory(c.iter.Value())
}

func (c *historyCursor) HasNext() bool {
	c.fetch()
	return nil != c.next || nil != c.err
}

func (c *historyCursor) Next() (*HistoryElement, error) {
	if c.closed {
		return nil, fault.NotInitialised
	}
	c.fetch()
	c.fetched = false
	if nil != c.err {
		err := c.err
		c.err = nil
		return nil, err
	}
	if nil == c.next {
		return nil, fault.NotFoundError("cursor is exhausted")
	}
	return c.next, nil
}

func (c *historyCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.iter.Release()
	return nil
}
