// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	currentDBVersion = 0x100
)

// Database - world state held in SQL tables
type Database struct {
	sync.Mutex // serialises Submit

	log     *logger.L
	db      *sql.DB
	dialect dialect
	indexes storage.Indexes
	serial  uint64
}

// Open - open or create a SQL world state
//
// backend is SQLite or Postgres, dsn is passed to the driver unchanged
func Open(log *logger.L, backend string, dsn string, indexes storage.Indexes) (*Database, error) {
	if nil == log {
		return nil, fault.MissingParameters
	}
	d, err := lookupDialect(backend)
	if nil != err {
		return nil, err
	}

	err = indexes.Validate()
	if nil != err {
		return nil, err
	}

	db, err := sql.Open(d.driver, dsn)
	if nil != err {
		return nil, err
	}
	if d.singleWriter {
		db.SetMaxOpenConns(1)
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	ctx := context.Background()
	err = db.PingContext(ctx)
	if nil != err {
		return nil, err
	}

	for _, statement := range d.schema() {
		_, err = db.ExecContext(ctx, statement)
		if nil != err {
			log.Errorf("schema error: %s", err)
			return nil, err
		}
	}

	err = checkVersion(ctx, log, db, d)
	if nil != err {
		return nil, err
	}

	for _, ix := range indexes {
		log.Infof("index: %s  fields: %v", ix.Name, ix.Fields)
	}
	log.Infof("opened %s database", d.name)

	ok = true // prevent db close
	return &Database{
		log:     log,
		db:      db,
		dialect: d,
		indexes: indexes,
	}, nil
}

// Close - close the database
func (s *Database) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.NotInitialised
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Evaluate - run a read only callback in its own transaction
func (s *Database) Evaluate(fn func(storage.KeyValueStore) error) error {
	s.Lock()
	db := s.db
	s.Unlock()

	if nil == db {
		return fault.DatabaseIsNotSet
	}

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: s.dialect.readOnlyTx})
	if nil != err {
		return err
	}
	defer tx.Rollback()

	t := &transaction{
		ctx:      ctx,
		log:      s.log,
		tx:       tx,
		dialect:  s.dialect,
		indexes:  s.indexes,
		readOnly: true,
	}
	return fn(t)
}

// Submit - run a callback as one atomic write transaction
//
// an error from the callback rolls back every write it made
func (s *Database) Submit(fn func(storage.KeyValueStore) error) (string, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return "", fault.DatabaseIsNotSet
	}

	s.serial += 1
	timestamp := time.Now().UTC()
	txID := storage.TransactionID(timestamp, s.serial)

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if nil != err {
		return "", err
	}

	t := &transaction{
		ctx:       ctx,
		log:       s.log,
		tx:        tx,
		dialect:   s.dialect,
		indexes:   s.indexes,
		txID:      txID,
		timestamp: timestamp,
	}

	err = fn(t)
	if nil != err {
		s.log.Debugf("tx: %s  discarded: %s", txID, err)
		tx.Rollback()
		return "", err
	}

	err = tx.Commit()
	if nil != err {
		s.log.Errorf("tx: %s  commit error: %s", txID, err)
		return "", err
	}
	s.log.Debugf("tx: %s  committed: %d statements", txID, t.writes)

	return txID, nil
}

// tag an empty database, refuse a newer one
func checkVersion(ctx context.Context, log *logger.L, db *sql.DB, d dialect) error {
	version := 0
	err := db.QueryRowContext(ctx, "SELECT version FROM schema_version").Scan(&version)
	if sql.ErrNoRows == err {
		_, err = db.ExecContext(ctx, d.rebind("INSERT INTO schema_version (version) VALUES (?)"), currentDBVersion)
		return err
	}
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}
	return nil
}
