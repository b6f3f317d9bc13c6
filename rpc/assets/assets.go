// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/contract"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/mode"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Assets - type for the RPC
type Assets struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Host         contract.Host
	IsNormalMode func(mode.Mode) bool
}

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// New - create the Assets RPC handler
func New(log *logger.L, host contract.Host, isNormalMode func(mode.Mode) bool) *Assets {
	return &Assets{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Host:         host,
		IsNormalMode: isNormalMode,
	}
}

// common entry checks
func (assets *Assets) admit() error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}
	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}
	return nil
}

// ---

// IdentifierArguments - arguments for requests naming one asset
type IdentifierArguments struct {
	Organisation string `json:"organisation"`
	AssetUUID    string `json:"assetUUID"`
}

// ExistsReply - result of exists request
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - check whether an asset is present
func (assets *Assets) Exists(arguments *IdentifierArguments, reply *ExistsReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.AssetUUID {
		return fault.MissingAssetUUID
	}

	assets.Log.Infof("Assets.Exists: %+v", arguments)

	exists, err := assets.Host.Exists(arguments.Organisation, arguments.AssetUUID)
	if nil != err {
		return err
	}
	reply.Exists = exists
	return nil
}

// ---

// CreateArguments - arguments for create request
type CreateArguments struct {
	Organisation string                     `json:"organisation"`
	Asset        *assetrecord.CreateRequest `json:"asset"`
}

// ReceiptReply - result of a mutation
type ReceiptReply struct {
	TxID   string              `json:"txId"`
	Record *assetrecord.Record `json:"record"`
}

// Create - register a new asset owned by the caller
func (assets *Assets) Create(arguments *CreateArguments, reply *ReceiptReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Asset {
		return fault.MissingParameters
	}

	assets.Log.Infof("Assets.Create: organisation: %q  asset: %s", arguments.Organisation, arguments.Asset.AssetUUID)

	receipt, err := assets.Host.Create(arguments.Organisation, arguments.Asset)
	if nil != err {
		return err
	}
	reply.TxID = receipt.TxID
	reply.Record = receipt.Record
	return nil
}

// ---

// RecordReply - result of read request
type RecordReply struct {
	Record *assetrecord.Record `json:"record"`
}

// Read - fetch the current asset
func (assets *Assets) Read(arguments *IdentifierArguments, reply *RecordReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.AssetUUID {
		return fault.MissingAssetUUID
	}

	assets.Log.Infof("Assets.Read: %+v", arguments)

	record, err := assets.Host.Read(arguments.Organisation, arguments.AssetUUID)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// ---

// UpdateArguments - arguments for update request
type UpdateArguments struct {
	Organisation string                     `json:"organisation"`
	Changes      *assetrecord.UpdateRequest `json:"changes"`
}

// Update - replace the supplied fields of an asset
func (assets *Assets) Update(arguments *UpdateArguments, reply *ReceiptReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Changes {
		return fault.MissingParameters
	}
	if arguments.Changes.IsEmpty() {
		return fault.NoChangesProvided
	}

	assets.Log.Infof("Assets.Update: organisation: %q  asset: %s", arguments.Organisation, arguments.Changes.AssetUUID)

	receipt, err := assets.Host.Update(arguments.Organisation, arguments.Changes)
	if nil != err {
		return err
	}
	reply.TxID = receipt.TxID
	reply.Record = receipt.Record
	return nil
}

// ---

// Delete - remove an asset the caller owns
func (assets *Assets) Delete(arguments *IdentifierArguments, reply *ReceiptReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.AssetUUID {
		return fault.MissingAssetUUID
	}

	assets.Log.Infof("Assets.Delete: %+v", arguments)

	receipt, err := assets.Host.Delete(arguments.Organisation, arguments.AssetUUID)
	if nil != err {
		return err
	}
	reply.TxID = receipt.TxID
	reply.Record = receipt.Record
	return nil
}

// ---

// QueryArguments - arguments for query request
//
// a blank owner queries by type only
type QueryArguments struct {
	Organisation string                `json:"organisation"`
	AssetType    assetrecord.AssetType `json:"assetType"`
	AssetOwner   string                `json:"assetOwner"`
}

// QueryReply - result of query request
type QueryReply struct {
	Results []registry.Result `json:"results"`
}

// Query - current assets by type and optional owner
func (assets *Assets) Query(arguments *QueryArguments, reply *QueryReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.AssetType {
		return fault.MissingAssetType
	}

	assets.Log.Infof("Assets.Query: %+v", arguments)

	var results []registry.Result
	var err error
	if "" == arguments.AssetOwner {
		results, err = assets.Host.QueryByType(arguments.Organisation, arguments.AssetType)
	} else {
		results, err = assets.Host.QueryByOwner(arguments.Organisation, arguments.AssetType, arguments.AssetOwner)
	}
	if nil != err {
		return err
	}
	reply.Results = results
	return nil
}

// ---

// HistoryReply - result of history request
type HistoryReply struct {
	History []registry.HistoryEntry `json:"history"`
}

// History - every version of an asset
func (assets *Assets) History(arguments *IdentifierArguments, reply *HistoryReply) error {
	if err := assets.admit(); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.AssetUUID {
		return fault.MissingAssetUUID
	}

	assets.Log.Infof("Assets.History: %+v", arguments)

	history, err := assets.Host.History(arguments.Organisation, arguments.AssetUUID)
	if nil != err {
		return err
	}
	reply.History = history
	return nil
}
