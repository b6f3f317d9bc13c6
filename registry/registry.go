// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/storage"
	"github.com/bitmark-inc/logger"
)

// Registry - asset operations within one transaction
type Registry struct {
	log      *logger.L
	store    storage.KeyValueStore
	events   EventSink
	identity IdentityProvider
}

// New - registry over the capabilities of one transaction
//
// events and identity may be nil for read only use
func New(log *logger.L, store storage.KeyValueStore, events EventSink, identity IdentityProvider) *Registry {
	return &Registry{
		log:      log,
		store:    store,
		events:   events,
		identity: identity,
	}
}

// Exists - true if a current record is stored under the id
func (r *Registry) Exists(assetUUID string) (bool, error) {
	packed, err := r.store.Get(assetUUID)
	if nil != err {
		return false, err
	}
	return 0 != len(packed), nil
}

// Create - store a new record owned by the calling organisation
func (r *Registry) Create(request *assetrecord.CreateRequest) (*assetrecord.Record, error) {
	if nil == request {
		return nil, fault.MissingParameters
	}
	err := request.Validate()
	if nil != err {
		return nil, err
	}

	exists, err := r.Exists(request.AssetUUID)
	if nil != err {
		return nil, err
	}
	if exists {
		r.log.Warnf("create: id: %s  already exists", request.AssetUUID)
		return nil, fault.ExistsError(fmt.Sprintf("AITrust asset %s already exists", request.AssetUUID))
	}

	owner, err := r.caller()
	if nil != err {
		return nil, err
	}

	record := request.Record(owner)
	err = r.put(record)
	if nil != err {
		return nil, err
	}

	r.log.Infof("create: id: %s  type: %s  owner: %s", record.AssetUUID, record.AssetType, owner)

	err = r.emit(CreateVerb, record.AssetUUID, RecordEvent{Type: CreateEventType, Record: record})
	if nil != err {
		return nil, err
	}
	return record, nil
}

// Read - the current record stored under the id
func (r *Registry) Read(assetUUID string) (*assetrecord.Record, error) {
	packed, err := r.store.Get(assetUUID)
	if nil != err {
		return nil, err
	}
	if 0 == len(packed) {
		return nil, notFound(assetUUID)
	}

	record, err := assetrecord.Unpack(packed)
	if nil != err {
		r.log.Criticalf("read: id: %s  corrupt record: %s", assetUUID, err)
		return nil, fault.IntegrityError(fmt.Sprintf("AITrust asset %s is corrupt: %s", assetUUID, err))
	}
	return record, nil
}

// Update - replace the supplied fields of a record
//
// top level fields are replaced whole, lineage is merged by sub-field;
// the asset type and owner never change
func (r *Registry) Update(request *assetrecord.UpdateRequest) (*assetrecord.Record, error) {
	if nil == request {
		return nil, fault.MissingParameters
	}
	err := request.Validate()
	if nil != err {
		return nil, err
	}

	record, err := r.Read(request.AssetUUID)
	if nil != err {
		return nil, err
	}

	event := UpdateEvent{
		Type:      UpdateEventType,
		AssetUUID: record.AssetUUID,
	}

	if request.AssetHashes.Set {
		hashes := assetrecord.SomeMap(request.AssetHashes.Value).Value
		record.AssetHashes = hashes
		event.AssetHashes = &hashes
	}
	if request.PlainTextContent.Set {
		plainText := assetrecord.SomeMap(request.PlainTextContent.Value).Value
		record.PlainTextContent = plainText
		event.PlainTextContent = &plainText
	}
	if request.OtherInfo.Set {
		otherInfo := assetrecord.SomeList(request.OtherInfo.Value).Value
		record.OtherInfo = otherInfo
		event.OtherInfo = &otherInfo
	}
	record.LineageInfo, event.LineageInfo = MergeLineage(record.LineageInfo, request.LineageInfo)

	err = r.put(record)
	if nil != err {
		return nil, err
	}

	r.log.Infof("update: id: %s", record.AssetUUID)

	err = r.emit(UpdateVerb, record.AssetUUID, event)
	if nil != err {
		return nil, err
	}
	return record, nil
}

// Delete - remove the current record, only its owner may do this
//
// the history of the record is kept
func (r *Registry) Delete(assetUUID string) (*assetrecord.Record, error) {
	record, err := r.Read(assetUUID)
	if nil != err {
		return nil, err
	}

	caller, err := r.caller()
	if nil != err {
		return nil, err
	}
	if caller != record.AssetOwner {
		r.log.Warnf("delete: id: %s  owner: %s  denied to: %s", assetUUID, record.AssetOwner, caller)
		return nil, fault.ForbiddenError(fmt.Sprintf("organisation %s does not own AITrust asset %s", caller, assetUUID))
	}

	err = r.store.Delete(assetUUID)
	if nil != err {
		return nil, err
	}

	r.log.Infof("delete: id: %s  owner: %s", assetUUID, caller)

	err = r.emit(DeleteVerb, assetUUID, RecordEvent{Type: DeleteEventType, Record: record})
	if nil != err {
		return nil, err
	}
	return record, nil
}

// the authenticated organisation of the caller
func (r *Registry) caller() (string, error) {
	if nil == r.identity {
		return "", fault.UnknownOrganisation
	}
	organisation, err := r.identity.OrganisationID()
	if nil != err {
		return "", err
	}
	if "" == organisation {
		return "", fault.UnknownOrganisation
	}
	return organisation, nil
}

func (r *Registry) put(record *assetrecord.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	return r.store.Put(record.AssetUUID, packed)
}

func notFound(assetUUID string) error {
	return fault.NotFoundError(fmt.Sprintf("AITrust asset %s does not exist", assetUUID))
}
