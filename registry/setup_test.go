// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/events"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/identity"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newTestDB(t *testing.T) *storage.LevelDB {
	db, err := storage.OpenMemory(logger.New(fixtures.LogCategory), registry.Indexes())
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	return db
}

// run a registry operation as one transaction for an organisation
func submit(db storage.Backend, organisation string, fn func(*registry.Registry) error) ([]events.Event, error) {
	buffer := events.NewBuffer()
	txID, err := db.Submit(func(s storage.KeyValueStore) error {
		return fn(registry.New(logger.New(fixtures.LogCategory), s, buffer, identity.Caller(organisation)))
	})
	if nil != err {
		return nil, err
	}
	return buffer.Seal(txID), nil
}

func evaluate(db storage.Backend, fn func(*registry.Registry) error) error {
	return db.Evaluate(func(s storage.KeyValueStore) error {
		return fn(registry.New(logger.New(fixtures.LogCategory), s, nil, nil))
	})
}

func create(t *testing.T, db storage.Backend, organisation string, request *assetrecord.CreateRequest) *assetrecord.Record {
	var record *assetrecord.Record
	_, err := submit(db, organisation, func(r *registry.Registry) error {
		var err error
		record, err = r.Create(request)
		return err
	})
	if nil != err {
		t.Fatalf("create: %s  error: %s", request.AssetUUID, err)
	}
	return record
}

func read(db storage.Backend, assetUUID string) (*assetrecord.Record, error) {
	var record *assetrecord.Record
	err := evaluate(db, func(r *registry.Registry) error {
		var err error
		record, err = r.Read(assetUUID)
		return err
	})
	return record, err
}

func exampleRequest(assetUUID string) *assetrecord.CreateRequest {
	return &assetrecord.CreateRequest{
		AssetType:        assetrecord.Data,
		AssetUUID:        assetUUID,
		AssetHashes:      map[string]string{"f": "h1"},
		PlainTextContent: map[string]string{"f": "v1"},
		LineageInfo:      assetrecord.Lineage{},
		OtherInfo:        []interface{}{},
	}
}

func derivedRequest(assetUUID string, sources ...string) *assetrecord.CreateRequest {
	return &assetrecord.CreateRequest{
		AssetType:        assetrecord.LinearModel,
		AssetUUID:        assetUUID,
		AssetHashes:      map[string]string{"weights": "w1"},
		PlainTextContent: map[string]string{"name": "model"},
		LineageInfo: assetrecord.Lineage{
			SourceAssets:       sources,
			TransformationType: assetrecord.LinearRegressionTraining,
			TransformationInfo: map[string]interface{}{"epochs": "10"},
		},
		OtherInfo: []interface{}{"first"},
	}
}
