// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/registry"
)

// Host - the operations served to clients
//
// every call names the caller organisation, blank for the default
type Host interface {
	Exists(organisation string, assetUUID string) (bool, error)
	Create(organisation string, request *assetrecord.CreateRequest) (*Receipt, error)
	Read(organisation string, assetUUID string) (*assetrecord.Record, error)
	Update(organisation string, request *assetrecord.UpdateRequest) (*Receipt, error)
	Delete(organisation string, assetUUID string) (*Receipt, error)
	QueryByType(organisation string, assetType assetrecord.AssetType) ([]registry.Result, error)
	QueryByOwner(organisation string, assetType assetrecord.AssetType, owner string) ([]registry.Result, error)
	History(organisation string, assetUUID string) ([]registry.HistoryEntry, error)
	Organisations() []string
}

var _ Host = (*Contract)(nil)
