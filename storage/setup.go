// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/logger"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// LevelDB - world state held in a single LevelDB database
type LevelDB struct {
	sync.Mutex // serialises Submit

	log     *logger.L
	db      *leveldb.DB
	pools   *pools
	indexes Indexes
	cache   *dbCache
	serial  uint64
}

// Open - open or create a LevelDB world state
func Open(log *logger.L, database string, indexes Indexes) (*LevelDB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}
	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return nil, err
	}
	return setup(log, db, indexes)
}

// OpenMemory - a LevelDB world state that is discarded on Close
func OpenMemory(log *logger.L, indexes Indexes) (*LevelDB, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(log, db, indexes)
}

func setup(log *logger.L, db *leveldb.DB, indexes Indexes) (*LevelDB, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	if nil == log {
		return nil, fault.MissingParameters
	}

	err := indexes.Validate()
	if nil != err {
		return nil, err
	}

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// database was empty so tag as current version
	if 0 == version {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	p, err := newPools()
	if nil != err {
		return nil, err
	}

	l := &LevelDB{
		log:     log,
		db:      db,
		pools:   p,
		indexes: indexes,
		cache:   newCache(),
	}

	for _, d := range indexes {
		log.Infof("index: %s  fields: %v", d.Name, d.Fields)
	}

	ok = true // prevent db close
	return l, nil
}

// Close - close the database
func (l *LevelDB) Close() error {
	l.Lock()
	defer l.Unlock()

	if nil == l.db {
		return fault.NotInitialised
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Evaluate - run a read only callback against a snapshot
func (l *LevelDB) Evaluate(fn func(KeyValueStore) error) error {
	l.Lock()
	db := l.db
	l.Unlock()

	if nil == db {
		return fault.DatabaseIsNotSet
	}

	snapshot, err := db.GetSnapshot()
	if nil != err {
		return err
	}
	defer snapshot.Release()

	t := &transaction{
		log:     l.log,
		pools:   l.pools,
		indexes: l.indexes,
		read:    snapshot,
	}
	return fn(t)
}

// Submit - run a callback as one atomic write transaction
//
// an error from the callback discards every write it made
func (l *LevelDB) Submit(fn func(KeyValueStore) error) (string, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.db {
		return "", fault.DatabaseIsNotSet
	}

	snapshot, err := l.db.GetSnapshot()
	if nil != err {
		return "", err
	}
	defer snapshot.Release()

	l.serial += 1
	timestamp := time.Now().UTC()
	txID := TransactionID(timestamp, l.serial)

	defer l.cache.Clear()

	t := &transaction{
		log:       l.log,
		pools:     l.pools,
		indexes:   l.indexes,
		read:      snapshot,
		batch:     new(leveldb.Batch),
		cache:     l.cache,
		txID:      txID,
		timestamp: timestamp,
	}

	err = fn(t)
	if nil != err {
		l.log.Debugf("tx: %s  discarded: %s", txID, err)
		return "", err
	}

	if 0 == t.batch.Len() {
		return txID, nil
	}

	err = l.db.Write(t.batch, &ldb_opt.WriteOptions{Sync: true})
	if nil != err {
		l.log.Errorf("tx: %s  write error: %s", txID, err)
		return "", err
	}
	l.log.Debugf("tx: %s  committed: %d records", txID, t.batch.Len())

	return txID, nil
}

// return the stored version, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
