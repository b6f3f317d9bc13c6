// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlstore

import (
	"database/sql"
	"time"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/storage"
)

// queryCursor - walks the rows of an index join
type queryCursor struct {
	rows    *sql.Rows
	next    *storage.Element
	err     error
	fetched bool
	closed  bool
}

func (c *queryCursor) fetch() {
	if c.fetched {
		return
	}
	c.fetched = true
	c.next = nil

	if c.closed {
		return
	}
	if !c.rows.Next() {
		c.err = c.rows.Err()
		return
	}
	element := &storage.Element{}
	c.err = c.rows.Scan(&element.Key, &element.Value)
	if nil == c.err {
		c.next = element
	}
}

func (c *queryCursor) HasNext() bool {
	c.fetch()
	return nil != c.next || nil != c.err
}

func (c *queryCursor) Next() (*storage.Element, error) {
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
	return c.rows.Close()
}

// historyCursor - walks the history rows of one key
type historyCursor struct {
	rows    *sql.Rows
	next    *storage.HistoryElement
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
	if !c.rows.Next() {
		c.err = c.rows.Err()
		return
	}

	var (
		txID      string
		timestamp int64
		isDelete  int
		value     []byte
	)
	c.err = c.rows.Scan(&txID, &timestamp, &isDelete, &value)
	if nil != c.err {
		return
	}
	c.next = &storage.HistoryElement{
		TxID:      txID,
		Timestamp: time.Unix(0, timestamp).UTC(),
		IsDelete:  0 != isDelete,
	}
	if !c.next.IsDelete {
		c.next.Value = value
	}
}

func (c *historyCursor) HasNext() bool {
	c.fetch()
	return nil != c.next || nil != c.err
}

func (c *historyCursor) Next() (*storage.HistoryElement, error) {
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
	return c.rows.Close()
}
