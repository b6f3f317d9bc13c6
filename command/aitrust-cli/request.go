// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/aitrustd/assetrecord"
)

// the subset of cli.Context used to build requests
type flagReader interface {
	IsSet(name string) bool
	String(name string) string
	StringSlice(name string) []string
}

func buildCreateRequest(f flagReader) (*assetrecord.CreateRequest, error) {

	request := &assetrecord.CreateRequest{}
	if f.IsSet("json") {
		if err := readJSONFile(f.String("json"), request); nil != err {
			return nil, err
		}
	}

	if f.IsSet("type") || "" == request.AssetType {
		assetType, err := checkAssetType(f.String("type"))
		if nil != err {
			return nil, err
		}
		request.AssetType = assetType
	}

	if f.IsSet("uuid") {
		request.AssetUUID = f.String("uuid")
	}
	if "" == request.AssetUUID {
		id, err := uuid.NewUUID()
		if nil != err {
			return nil, err
		}
		request.AssetUUID = id.String()
	}

	if f.IsSet("hashes") {
		if err := parseJSONFlag("hashes", f.String("hashes"), &request.AssetHashes); nil != err {
			return nil, err
		}
	}
	if f.IsSet("content") {
		if err := parseJSONFlag("content", f.String("content"), &request.PlainTextContent); nil != err {
			return nil, err
		}
	}
	if f.IsSet("source") {
		request.LineageInfo.SourceAssets = f.StringSlice("source")
	}
	if f.IsSet("transformation") {
		request.LineageInfo.TransformationType = assetrecord.TransformationType(f.String("transformation"))
	}
	if f.IsSet("transformation-info") {
		if err := parseJSONFlag("transformation-info", f.String("transformation-info"), &request.LineageInfo.TransformationInfo); nil != err {
			return nil, err
		}
	}
	if f.IsSet("other") {
		if err := parseJSONFlag("other", f.String("other"), &request.OtherInfo); nil != err {
			return nil, err
		}
	}

	return request, request.Validate()
}

func buildUpdateRequest(f flagReader) (*assetrecord.UpdateRequest, error) {

	request := &assetrecord.UpdateRequest{}
	if f.IsSet("json") {
		if err := readJSONFile(f.String("json"), request); nil != err {
			return nil, err
		}
	}

	if f.IsSet("uuid") {
		request.AssetUUID = f.String("uuid")
	}
	if _, err := checkAssetUUID(request.AssetUUID); nil != err {
		return nil, err
	}

	if f.IsSet("hashes") {
		m := map[string]string{}
		if err := parseJSONFlag("hashes", f.String("hashes"), &m); nil != err {
			return nil, err
		}
		request.AssetHashes = assetrecord.SomeMap(m)
	}
	if f.IsSet("content") {
		m := map[string]string{}
		if err := parseJSONFlag("content", f.String("content"), &m); nil != err {
			return nil, err
		}
		request.PlainTextContent = assetrecord.SomeMap(m)
	}
	if f.IsSet("other") {
		l := []interface{}{}
		if err := parseJSONFlag("other", f.String("other"), &l); nil != err {
			return nil, err
		}
		request.OtherInfo = assetrecord.SomeList(l)
	}

	lineage := func() *assetrecord.LineagePatch {
		if nil == request.LineageInfo {
			request.LineageInfo = &assetrecord.LineagePatch{}
		}
		return request.LineageInfo
	}
	if f.IsSet("source") {
		lineage().SourceAssets = assetrecord.SomeStrings(f.StringSlice("source"))
	}
	if f.IsSet("transformation") {
		lineage().TransformationType = assetrecord.SomeTransformation(assetrecord.TransformationType(f.String("transformation")))
	}
	if f.IsSet("transformation-info") {
		o := map[string]interface{}{}
		if err := parseJSONFlag("transformation-info", f.String("transformation-info"), &o); nil != err {
			return nil, err
		}
		lineage().TransformationInfo = assetrecord.SomeObject(o)
	}

	return request, request.Validate()
}
