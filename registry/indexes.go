// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/storage"
)

// names of the declared secondary indexes
const (
	TypeIndex         = "typeIndex"
	TypeAndOwnerIndex = "typeAndAssetOwnerIndex"
)

// Indexes - the secondary indexes a world state must declare
// before the registry can query it
func Indexes() storage.Indexes {
	return storage.Indexes{
		{
			Name:   TypeIndex,
			Fields: []string{"assetType"},
		},
		{
			Name:   TypeAndOwnerIndex,
			Fields: []string{"assetType", "assetOwner"},
		},
	}
}

func typeSelector(assetType assetrecord.AssetType) storage.Selector {
	return storage.Selector{
		Index: TypeIndex,
		Fields: map[string]string{
			"assetType": string(assetType),
		},
	}
}

func ownerSelector(assetType assetrecord.AssetType, owner string) storage.Selector {
	return storage.Selector{
		Index: TypeAndOwnerIndex,
		Fields: map[string]string{
			"assetType":  string(assetType),
			"assetOwner": owner,
		},
	}
}
