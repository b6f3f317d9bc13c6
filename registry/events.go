// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/fault"
)

// event names are <Verb>AITrustAssetEvent-<assetUUID>
const (
	entityName = "AITrustAsset"

	CreateVerb = "Create"
	UpdateVerb = "Update"
	DeleteVerb = "Delete"
)

// type tags carried in the payloads
const (
	CreateEventType = "Create AITrust Asset"
	UpdateEventType = "Update AITrust Asset"
	DeleteEventType = "Delete AITrust Asset"
)

// EventName - name of the event for a verb and asset
func EventName(verb string, assetUUID string) string {
	return verb + entityName + "Event-" + assetUUID
}

// RecordEvent - payload of create and delete: the whole record
type RecordEvent struct {
	Type string `json:"type"`
	*assetrecord.Record
}

// UpdateEvent - payload of update: only the supplied fields
type UpdateEvent struct {
	Type             string             `json:"type"`
	AssetUUID        string             `json:"assetUUID"`
	AssetHashes      *map[string]string `json:"assetHashes,omitempty"`
	PlainTextContent *map[string]string `json:"plainTextContent,omitempty"`
	LineageInfo      *LineageDelta      `json:"lineageInfo,omitempty"`
	OtherInfo        *[]interface{}     `json:"otherInfo,omitempty"`
}

// LineageDelta - the lineage sub-fields an update replaced
type LineageDelta struct {
	SourceAssets       *[]string                       `json:"sourceAssets,omitempty"`
	TransformationType *assetrecord.TransformationType `json:"transformationType,omitempty"`
	TransformationInfo *map[string]interface{}         `json:"transformationInfo,omitempty"`
}

func (r *Registry) emit(verb string, assetUUID string, payload interface{}) error {
	if nil == r.events {
		return fault.NotInitialised
	}
	packed, err := json.Marshal(payload)
	if nil != err {
		return err
	}
	name := EventName(verb, assetUUID)
	r.log.Debugf("event: %s  payload: %s", name, packed)
	return r.events.SetEvent(name, packed)
}
