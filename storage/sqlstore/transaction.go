// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/logger"
)

// the KeyValueStore given to a callback
type transaction struct {
	ctx       context.Context
	log       *logger.L
	tx        *sql.Tx
	dialect   dialect
	indexes   storage.Indexes
	readOnly  bool
	txID      string
	timestamp time.Time
	writes    int
}

// Get - current value of a key, nil if absent
func (t *transaction) Get(key string) ([]byte, error) {
	if err := storage.CheckKey(key); nil != err {
		return nil, err
	}

	var value []byte
	err := t.tx.QueryRowContext(
		t.ctx,
		t.dialect.rebind("SELECT item_value FROM world_state WHERE item_key = ?"),
		key,
	).Scan(&value)
	if sql.ErrNoRows == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	if nil == value {
		value = []byte{}
	}
	return value, nil
}

// Put - store a value, append its history and maintain the indexes
func (t *transaction) Put(key string, value []byte) error {
	if t.readOnly {
		return fault.ReadOnlyTransaction
	}
	previous, err := t.Get(key)
	if nil != err {
		return err
	}

	err = t.appendHistory(key, false, value)
	if nil != err {
		return err
	}

	err = t.reindex(key, previous, value)
	if nil != err {
		return err
	}

	return t.exec(
		`INSERT INTO world_state (item_key, item_value) VALUES (?, ?)
		 ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value`,
		key, value,
	)
}

// Delete - remove the current value, history is kept
func (t *transaction) Delete(key string) error {
	if t.readOnly {
		return fault.ReadOnlyTransaction
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

	err = t.reindex(key, previous, nil)
	if nil != err {
		return err
	}

	return t.exec("DELETE FROM world_state WHERE item_key = ?", key)
}

// Query - current values matching a selector on a declared index
func (t *transaction) Query(selector storage.Selector) (storage.Iterator, error) {
	d, values, err := t.indexes.Resolve(selector)
	if nil != err {
		return nil, err
	}

	rows, err := t.tx.QueryContext(
		t.ctx,
		t.dialect.rebind(
			`SELECT w.item_key, w.item_value
			 FROM index_entry i JOIN world_state w ON w.item_key = i.item_key
			 WHERE i.index_name = ? AND i.values_key = ?
			 ORDER BY i.item_key`),
		d.Name, storage.IndexValuesKey(values),
	)
	if nil != err {
		return nil, err
	}
	return &queryCursor{rows: rows}, nil
}

// History - versions of a key, oldest first
func (t *transaction) History(key string) (storage.HistoryIterator, error) {
	if err := storage.CheckKey(key); nil != err {
		return nil, err
	}

	rows, err := t.tx.QueryContext(
		t.ctx,
		t.dialect.rebind(
			`SELECT tx_id, ts, is_delete, item_value
			 FROM key_history WHERE item_key = ?
			 ORDER BY seq`),
		key,
	)
	if nil != err {
		return nil, err
	}
	return &historyCursor{rows: rows}, nil
}

// move index entries from the previous value to the new one
func (t *transaction) reindex(key string, previous []byte, value []byte) error {
	for _, d := range t.indexes {
		oldValues, hadOld := d.Extract(previous)
		newValues, hasNew := d.Extract(value)
		if hadOld && hasNew && storage.IndexValuesKey(oldValues) == storage.IndexValuesKey(newValues) {
			continue
		}
		if hadOld {
			err := t.exec(
				"DELETE FROM index_entry WHERE index_name = ? AND values_key = ? AND item_key = ?",
				d.Name, storage.IndexValuesKey(oldValues), key,
			)
			if nil != err {
				return err
			}
		}
		if hasNew {
			err := t.exec(
				`INSERT INTO index_entry (index_name, values_key, item_key) VALUES (?, ?, ?)
				 ON CONFLICT DO NOTHING`,
				d.Name, storage.IndexValuesKey(newValues), key,
			)
			if nil != err {
				return err
			}
		}
	}
	return nil
}

// append one entry to the key's history log
func (t *transaction) appendHistory(key string, isDelete bool, value []byte) error {
	sequence := int64(0)
	err := t.tx.QueryRowContext(
		t.ctx,
		t.dialect.rebind("SELECT COALESCE(MAX(seq) + 1, 0) FROM key_history WHERE item_key = ?"),
		key,
	).Scan(&sequence)
	if nil != err {
		return err
	}

	deleteFlag := 0
	if isDelete {
		deleteFlag = 1
	}
	return t.exec(
		`INSERT INTO key_history (item_key, seq, tx_id, ts, is_delete, item_value)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		key, sequence, t.txID, t.timestamp.UnixNano(), deleteFlag, value,
	)
}

func (t *transaction) exec(query string, args ...interface{}) error {
	_, err := t.tx.ExecContext(t.ctx, t.dialect.rebind(query), args...)
	if nil != err {
		t.log.Errorf("tx: %s  statement error: %s", t.txID, err)
		return err
	}
	t.writes += 1
	return nil
}
