// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"fmt"

	"github.com/bitmark-inc/aitrustd/fault"
)

// CreateRequest - fields of a new asset
//
// there is no owner field, the owner is the calling organisation
type CreateRequest struct {
	AssetType        AssetType         `json:"assetType"`
	AssetUUID        string            `json:"assetUUID"`
	AssetHashes      map[string]string `json:"assetHashes"`
	PlainTextContent map[string]string `json:"plainTextContent"`
	LineageInfo      Lineage           `json:"lineageInfo"`
	OtherInfo        []interface{}     `json:"otherInfo"`
}

// LineagePatch - lineage sub-fields to replace
type LineagePatch struct {
	SourceAssets       OptionalStrings        `json:"sourceAssets"`
	TransformationType OptionalTransformation `json:"transformationType"`
	TransformationInfo OptionalObject         `json:"transformationInfo"`
}

// UpdateRequest - fields to replace on an existing asset
//
// assetType and assetOwner cannot be changed
type UpdateRequest struct {
	AssetUUID        string        `json:"assetUUID"`
	AssetHashes      OptionalMap   `json:"assetHashes"`
	PlainTextContent OptionalMap   `json:"plainTextContent"`
	LineageInfo      *LineagePatch `json:"lineageInfo,omitempty"`
	OtherInfo        OptionalList  `json:"otherInfo"`
}

// Validate - check a create request before any state is touched
func (c *CreateRequest) Validate() error {
	if "" == c.AssetUUID {
		return fault.MissingAssetUUID
	}
	if "" == c.AssetType {
		return fault.MissingAssetType
	}
	if !c.AssetType.Valid() {
		return fault.InvalidError(fmt.Sprintf("invalid asset type: %q", c.AssetType))
	}
	return validateLineage(c.LineageInfo.SourceAssets, c.LineageInfo.TransformationType)
}

// Record - the record a create request produces for an owner
func (c *CreateRequest) Record(owner string) *Record {
	r := &Record{
		AssetType:        c.AssetType,
		AssetUUID:        c.AssetUUID,
		AssetHashes:      c.AssetHashes,
		PlainTextContent: c.PlainTextContent,
		LineageInfo:      c.LineageInfo,
		OtherInfo:        c.OtherInfo,
		AssetOwner:       owner,
	}
	r.Normalise()
	return r
}

// Validate - check an update request before any state is touched
func (u *UpdateRequest) Validate() error {
	if "" == u.AssetUUID {
		return fault.MissingAssetUUID
	}
	if nil == u.LineageInfo {
		return nil
	}
	return validateLineage(u.LineageInfo.SourceAssets.Value, u.LineageInfo.TransformationType.Value)
}

// IsEmpty - true if the update supplies no field at all
func (u *UpdateRequest) IsEmpty() bool {
	return !u.AssetHashes.Set &&
		!u.PlainTextContent.Set &&
		!u.OtherInfo.Set &&
		(nil == u.LineageInfo || u.LineageInfo.IsEmpty())
}

// IsEmpty - true if the patch supplies no sub-field
func (p *LineagePatch) IsEmpty() bool {
	return !p.SourceAssets.Set && !p.TransformationType.Set && !p.TransformationInfo.Set
}

// an empty transformation type is allowed and means "none"
func validateLineage(sources []string, transformation TransformationType) error {
	if "" != transformation && !transformation.Valid() {
		return fault.InvalidError(fmt.Sprintf("invalid transformation type: %q", transformation))
	}
	for i, s := range sources {
		if "" == s {
			return fault.InvalidError(fmt.Sprintf("source asset %d is blank", i))
		}
	}
	return nil
}
