// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/assetrecord"
)

func TestPackCanonicalForm(t *testing.T) {
	r := assetrecord.Record{
		AssetType:        assetrecord.Data,
		AssetUUID:        "A1",
		AssetHashes:      map[string]string{"f": "h1"},
		PlainTextContent: map[string]string{"f": "v1"},
		AssetOwner:       "Org1",
	}

	packed, err := r.Pack()
	assert.Nil(t, err, "pack error")

	expected := `{"assetType":"Data","assetUUID":"A1","assetHashes":{"f":"h1"},` +
		`"plainTextContent":{"f":"v1"},"lineageInfo":{},"otherInfo":[],"assetOwner":"Org1"}`
	assert.Equal(t, expected, string(packed), "wrong packed form")
}

func TestUnpackRoundTrip(t *testing.T) {
	r := assetrecord.Record{
		AssetType:        assetrecord.LinearModel,
		AssetUUID:        "M1",
		AssetHashes:      map[string]string{"weights": "abc"},
		PlainTextContent: map[string]string{"name": "model"},
		LineageInfo: assetrecord.Lineage{
			SourceAssets:       []string{"D1", "D2"},
			TransformationType: assetrecord.LinearRegressionTraining,
			TransformationInfo: map[string]interface{}{"epochs": "10"},
		},
		OtherInfo:  []interface{}{"note"},
		AssetOwner: "Org2",
	}

	packed, err := r.Pack()
	assert.Nil(t, err, "pack error")

	u, err := assetrecord.Unpack(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &r, u, "wrong record")
}

func TestUnpackRejectsNonRecords(t *testing.T) {
	items := []string{
		`not json`,
		`{"assetUUID":"A1","colour":"red"}`,
		`{"assetType":"Data"}`,
		`{"assetUUID":"A1"} {"assetUUID":"A2"}`,
		`[1,2,3]`,
	}

	for i, item := range items {
		_, err := assetrecord.Unpack([]byte(item))
		assert.NotNil(t, err, "%d: expected error for: %s", i, item)
	}
}

func TestNormaliseDropsEmptyLineage(t *testing.T) {
	r := assetrecord.Record{
		AssetUUID: "A1",
		LineageInfo: assetrecord.Lineage{
			SourceAssets:       []string{},
			TransformationInfo: map[string]interface{}{},
		},
	}
	r.Normalise()

	assert.Nil(t, r.LineageInfo.SourceAssets, "source assets not dropped")
	assert.Nil(t, r.LineageInfo.TransformationInfo, "transformation info not dropped")
	assert.True(t, r.LineageInfo.IsEmpty(), "lineage not empty")
	assert.NotNil(t, r.AssetHashes, "nil hashes")
	assert.NotNil(t, r.PlainTextContent, "nil plain text")
	assert.NotNil(t, r.OtherInfo, "nil other info")
}
