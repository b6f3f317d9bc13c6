// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/aitrustd/fault"
)

// Lineage - derivation of an asset from other assets
//
// an empty sub-field is absent from the stored form
type Lineage struct {
	SourceAssets       []string               `json:"sourceAssets,omitempty"`
	TransformationType TransformationType     `json:"transformationType,omitempty"`
	TransformationInfo map[string]interface{} `json:"transformationInfo,omitempty"`
}

// Record - the stored asset
type Record struct {
	AssetType        AssetType         `json:"assetType"`
	AssetUUID        string            `json:"assetUUID"`
	AssetHashes      map[string]string `json:"assetHashes"`
	PlainTextContent map[string]string `json:"plainTextContent"`
	LineageInfo      Lineage           `json:"lineageInfo"`
	OtherInfo        []interface{}     `json:"otherInfo"`
	AssetOwner       string            `json:"assetOwner"`
}

// IsEmpty - true if no lineage sub-field is set
func (l Lineage) IsEmpty() bool {
	return 0 == len(l.SourceAssets) && "" == l.TransformationType && 0 == len(l.TransformationInfo)
}

// Normalise - put a record into its canonical stored form
//
// top level collections are never nil so they serialise as {} and [],
// lineage sub-fields that are empty are dropped
func (r *Record) Normalise() {
	if nil == r.AssetHashes {
		r.AssetHashes = map[string]string{}
	}
	if nil == r.PlainTextContent {
		r.PlainTextContent = map[string]string{}
	}
	if nil == r.OtherInfo {
		r.OtherInfo = []interface{}{}
	}
	r.LineageInfo.normalise()
}

func (l *Lineage) normalise() {
	if 0 == len(l.SourceAssets) {
		l.SourceAssets = nil
	}
	if 0 == len(l.TransformationInfo) {
		l.TransformationInfo = nil
	}
}

// Pack - serialise a record for storage
func (r *Record) Pack() ([]byte, error) {
	r.Normalise()
	return json.Marshal(r)
}

// Unpack - parse stored bytes strictly as a record
//
// unknown fields or a missing assetUUID mean the bytes are not a record
func Unpack(packed []byte) (*Record, error) {
	d := json.NewDecoder(bytes.NewReader(packed))
	d.DisallowUnknownFields()

	r := &Record{}
	err := d.Decode(r)
	if nil != err {
		return nil, err
	}
	if d.More() {
		return nil, fault.CorruptRecord
	}
	if "" == r.AssetUUID {
		return nil, fault.MissingAssetUUID
	}
	r.Normalise()
	return r, nil
}
