// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/aitrustd/assetrecord"
)

// MergeLineage - replace each lineage sub-field the patch supplies
//
// sub-fields the patch does not supply are kept as they are; a nil
// delta means the patch supplied nothing and the lineage is unchanged
func MergeLineage(current assetrecord.Lineage, patch *assetrecord.LineagePatch) (assetrecord.Lineage, *LineageDelta) {
	if nil == patch || patch.IsEmpty() {
		return current, nil
	}

	merged := current
	delta := &LineageDelta{}

	if patch.SourceAssets.Set {
		sources := append([]string{}, patch.SourceAssets.Value...)
		merged.SourceAssets = sources
		delta.SourceAssets = &sources
	}

	if patch.TransformationType.Set {
		transformation := patch.TransformationType.Value
		merged.TransformationType = transformation
		delta.TransformationType = &transformation
	}

	if patch.TransformationInfo.Set {
		info := make(map[string]interface{}, len(patch.TransformationInfo.Value))
		for k, v := range patch.TransformationInfo.Value {
			info[k] = v
		}
		merged.TransformationInfo = info
		delta.TransformationInfo = &info
	}

	return merged, delta
}
