// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

// AssetType - category of an asset
type AssetType string

// TransformationType - how an asset was derived from its sources
type TransformationType string

// the closed set of asset types
const (
	Data             AssetType = "Data"
	LinearModel      AssetType = "Linear_Model"
	PerformanceClaim AssetType = "Performance_Claim"
	ModelInference   AssetType = "Model_Inference"
)

// the closed set of transformation types
const (
	Aggregation              TransformationType = "Aggregation"
	QueryFilter              TransformationType = "QueryFilter"
	LinearRegressionTraining TransformationType = "LinearRegressionTraining"
)

var assetTypes = []AssetType{
	Data,
	LinearModel,
	PerformanceClaim,
	ModelInference,
}

var transformationTypes = []TransformationType{
	Aggregation,
	QueryFilter,
	LinearRegressionTraining,
}

// AssetTypes - list of valid asset types
func AssetTypes() []AssetType {
	return append([]AssetType(nil), assetTypes...)
}

// TransformationTypes - list of valid transformation types
func TransformationTypes() []TransformationType {
	return append([]TransformationType(nil), transformationTypes...)
}

// Valid - true if the asset type is in the closed set
func (t AssetType) Valid() bool {
	for _, v := range assetTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Valid - true if the transformation type is in the closed set
func (t TransformationType) Valid() bool {
	for _, v := range transformationTypes {
		if v == t {
			return true
		}
	}
	return false
}
