// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/events"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/identity"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/logger"
)

// Publisher - receives committed events
type Publisher interface {
	Send(event events.Event) error
}

// Receipt - outcome of a committed mutation
type Receipt struct {
	TxID   string              `json:"txId"`
	Record *assetrecord.Record `json:"record"`
}

// Contract - the registry bound to a backend
type Contract struct {
	log           *logger.L
	backend       storage.Backend
	organisations *identity.Organisations
	publisher     Publisher
}

// New - create a contract host
//
// publisher may be nil, events are then discarded after commit
func New(log *logger.L, backend storage.Backend, organisations *identity.Organisations, publisher Publisher) (*Contract, error) {
	if nil == log || nil == backend || nil == organisations {
		return nil, fault.MissingParameters
	}
	return &Contract{
		log:           log,
		backend:       backend,
		organisations: organisations,
		publisher:     publisher,
	}, nil
}

// Exists - true if the asset is present
func (c *Contract) Exists(organisation string, assetUUID string) (bool, error) {
	exists := false
	err := c.evaluate(organisation, func(r *registry.Registry) error {
		var err error
		exists, err = r.Exists(assetUUID)
		return err
	})
	return exists, err
}

// Create - store a new asset owned by the caller
func (c *Contract) Create(organisation string, request *assetrecord.CreateRequest) (*Receipt, error) {
	if nil == request {
		return nil, fault.MissingParameters
	}
	return c.submit(organisation, func(r *registry.Registry) (*assetrecord.Record, error) {
		return r.Create(request)
	})
}

// Read - the current asset
func (c *Contract) Read(organisation string, assetUUID string) (*assetrecord.Record, error) {
	var record *assetrecord.Record
	err := c.evaluate(organisation, func(r *registry.Registry) error {
		var err error
		record, err = r.Read(assetUUID)
		return err
	})
	return record, err
}

// Update - replace the supplied fields of an asset
func (c *Contract) Update(organisation string, request *assetrecord.UpdateRequest) (*Receipt, error) {
	if nil == request {
		return nil, fault.MissingParameters
	}
	return c.submit(organisation, func(r *registry.Registry) (*assetrecord.Record, error) {
		return r.Update(request)
	})
}

// Delete - remove an asset the caller owns
func (c *Contract) Delete(organisation string, assetUUID string) (*Receipt, error) {
	return c.submit(organisation, func(r *registry.Registry) (*assetrecord.Record, error) {
		return r.Delete(assetUUID)
	})
}

// QueryByType - current assets of one type
func (c *Contract) QueryByType(organisation string, assetType assetrecord.AssetType) ([]registry.Result, error) {
	var results []registry.Result
	err := c.evaluate(organisation, func(r *registry.Registry) error {
		var err error
		results, err = r.QueryByType(assetType)
		return err
	})
	return results, err
}

// QueryByOwner - current assets of one type owned by an organisation
func (c *Contract) QueryByOwner(organisation string, assetType assetrecord.AssetType, owner string) ([]registry.Result, error) {
	var results []registry.Result
	err := c.evaluate(organisation, func(r *registry.Registry) error {
		var err error
		results, err = r.QueryByOwner(assetType, owner)
		return err
	})
	return results, err
}

// History - every version of an asset
func (c *Contract) History(organisation string, assetUUID string) ([]registry.HistoryEntry, error) {
	var history []registry.HistoryEntry
	err := c.evaluate(organisation, func(r *registry.Registry) error {
		var err error
		history, err = r.History(assetUUID)
		return err
	})
	return history, err
}

// Organisations - names of the supported organisations
func (c *Contract) Organisations() []string {
	return c.organisations.Names()
}

func (c *Contract) evaluate(organisation string, fn func(*registry.Registry) error) error {
	caller, err := c.organisations.Resolve(organisation)
	if nil != err {
		return err
	}
	return c.backend.Evaluate(func(s storage.KeyValueStore) error {
		return fn(registry.New(c.log, s, nil, caller))
	})
}

func (c *Contract) submit(organisation string, fn func(*registry.Registry) (*assetrecord.Record, error)) (*Receipt, error) {
	caller, err := c.organisations.Resolve(organisation)
	if nil != err {
		return nil, err
	}

	var record *assetrecord.Record
	buffer := events.NewBuffer()
	txID, err := c.backend.Submit(func(s storage.KeyValueStore) error {
		var err error
		record, err = fn(registry.New(c.log, s, buffer, caller))
		return err
	})
	if nil != err {
		return nil, err
	}

	c.publish(buffer.Seal(txID))

	return &Receipt{
		TxID:   txID,
		Record: record,
	}, nil
}

func (c *Contract) publish(sealed []events.Event) {
	for _, e := range sealed {
		if nil == c.publisher {
			c.log.Debugf("no publisher, dropped event: %s", e.Name)
			continue
		}
		err := c.publisher.Send(e)
		if nil != err {
			c.log.Warnf("event: %s  tx: %s  publish error: %s", e.Name, e.TxID, err)
		}
	}
}
