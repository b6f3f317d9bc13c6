// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/aitrustd/storage/sqlstore"
	"github.com/bitmark-inc/logger"
)

var testIndexes = storage.Indexes{
	{Name: "typeIndex", Fields: []string{"assetType"}},
	{Name: "typeAndAssetOwnerIndex", Fields: []string{"assetType", "assetOwner"}},
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newTestDB(t *testing.T) *sqlstore.Database {
	db, err := sqlstore.Open(logger.New(fixtures.LogCategory), sqlstore.SQLite, ":memory:", testIndexes)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	return db
}

func TestOpenFileKeepsData(t *testing.T) {
	name := filepath.Join(os.TempDir(), "aitrustd-sqlstore-test.sqlite")
	_ = os.Remove(name)
	defer os.Remove(name)

	log := logger.New(fixtures.LogCategory)

	db, err := sqlstore.Open(log, sqlstore.SQLite, name, testIndexes)
	assert.Nil(t, err, "open error")

	_, err = db.Submit(func(s storage.KeyValueStore) error {
		return s.Put("k1", []byte(`{"assetType":"Data"}`))
	})
	assert.Nil(t, err, "submit error")
	assert.Nil(t, db.Close(), "close error")

	db, err = sqlstore.Open(log, sqlstore.SQLite, name, testIndexes)
	assert.Nil(t, err, "reopen error")
	defer db.Close()

	err = db.Evaluate(func(s storage.KeyValueStore) error {
		value, err := s.Get("k1")
		assert.Nil(t, err, "get error")
		assert.Equal(t, []byte(`{"assetType":"Data"}`), value, "value lost")
		return nil
	})
	assert.Nil(t, err, "evaluate error")
}

func TestOpenRejectsBadArguments(t *testing.T) {
	log := logger.New(fixtures.LogCategory)

	_, err := sqlstore.Open(log, "oracle", "", testIndexes)
	assert.Equal(t, fault.UnknownBackend, err, "unknown backend accepted")

	_, err = sqlstore.Open(nil, sqlstore.SQLite, ":memory:", testIndexes)
	assert.Equal(t, fault.MissingParameters, err, "missing log accepted")

	bad := storage.Indexes{{Name: "x", Fields: nil}}
	_, err = sqlstore.Open(log, sqlstore.SQLite, ":memory:", bad)
	assert.True(t, fault.IsErrInvalid(err), "bad index accepted")
}

func TestClosedDatabase(t *testing.T) {
	db := newTestDB(t)
	assert.Nil(t, db.Close(), "close error")
	assert.Equal(t, fault.NotInitialised, db.Close(), "second close")

	_, err := db.Submit(func(s storage.KeyValueStore) error { return nil })
	assert.Equal(t, fault.DatabaseIsNotSet, err, "submit on closed database")

	err = db.Evaluate(func(s storage.KeyValueStore) error { return nil })
	assert.Equal(t, fault.DatabaseIsNotSet, err, "evaluate on closed database")
}
