// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/registry"
)

func currentLineage() assetrecord.Lineage {
	return assetrecord.Lineage{
		SourceAssets:       []string{"D1", "D2"},
		TransformationType: assetrecord.Aggregation,
		TransformationInfo: map[string]interface{}{"window": "1d"},
	}
}

func TestMergeLineageWithoutPatch(t *testing.T) {
	current := currentLineage()

	merged, delta := registry.MergeLineage(current, nil)
	assert.Equal(t, current, merged, "lineage changed")
	assert.Nil(t, delta, "delta for nil patch")

	merged, delta = registry.MergeLineage(current, &assetrecord.LineagePatch{})
	assert.Equal(t, current, merged, "lineage changed")
	assert.Nil(t, delta, "delta for empty patch")
}

func TestMergeLineageReplacesSuppliedSubFields(t *testing.T) {
	tests := []struct {
		name     string
		patch    assetrecord.LineagePatch
		expected assetrecord.Lineage
	}{
		{
			name:  "sources",
			patch: assetrecord.LineagePatch{SourceAssets: assetrecord.SomeStrings([]string{"D9"})},
			expected: assetrecord.Lineage{
				SourceAssets:       []string{"D9"},
				TransformationType: assetrecord.Aggregation,
				TransformationInfo: map[string]interface{}{"window": "1d"},
			},
		},
		{
			name:  "transformation",
			patch: assetrecord.LineagePatch{TransformationType: assetrecord.SomeTransformation(assetrecord.QueryFilter)},
			expected: assetrecord.Lineage{
				SourceAssets:       []string{"D1", "D2"},
				TransformationType: assetrecord.QueryFilter,
				TransformationInfo: map[string]interface{}{"window": "1d"},
			},
		},
		{
			name:  "info",
			patch: assetrecord.LineagePatch{TransformationInfo: assetrecord.SomeObject(map[string]interface{}{"k": "v"})},
			expected: assetrecord.Lineage{
				SourceAssets:       []string{"D1", "D2"},
				TransformationType: assetrecord.Aggregation,
				TransformationInfo: map[string]interface{}{"k": "v"},
			},
		},
	}

	for _, test := range tests {
		merged, delta := registry.MergeLineage(currentLineage(), &test.patch)
		assert.Equal(t, test.expected, merged, test.name)
		assert.NotNil(t, delta, "%s: missing delta", test.name)
		assert.Equal(t, test.patch.SourceAssets.Set, nil != delta.SourceAssets, "%s: sources in delta", test.name)
		assert.Equal(t, test.patch.TransformationType.Set, nil != delta.TransformationType, "%s: transformation in delta", test.name)
		assert.Equal(t, test.patch.TransformationInfo.Set, nil != delta.TransformationInfo, "%s: info in delta", test.name)
	}
}

func TestMergeLineageCopiesValues(t *testing.T) {
	sources := []string{"D9"}
	patch := &assetrecord.LineagePatch{SourceAssets: assetrecord.SomeStrings(sources)}

	merged, _ := registry.MergeLineage(currentLineage(), patch)
	sources[0] = "changed"
	assert.Equal(t, []string{"D9"}, merged.SourceAssets, "merged shares patch storage")
}
