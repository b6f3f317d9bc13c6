// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/fault"
)

var (
	ErrRequiredAssetType = fault.InvalidError("asset type is required")
	ErrRequiredAssetUUID = fault.InvalidError("asset uuid is required")
	ErrRequiredConnect   = fault.InvalidError("connect is required")
	ErrRequiredFileName  = fault.InvalidError("file name is required")
	ErrInvalidConnect    = fault.InvalidError("connect must be HOST:PORT")
	ErrInvalidDepth      = fault.InvalidError("depth must be positive")
)

// connect is required and must carry a port
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	if _, _, err := net.SplitHostPort(connect); nil != err {
		return "", ErrInvalidConnect
	}
	return connect, nil
}

func checkAssetUUID(assetUUID string) (string, error) {
	if "" == assetUUID {
		return "", ErrRequiredAssetUUID
	}
	return assetUUID, nil
}

func checkAssetType(assetType string) (assetrecord.AssetType, error) {
	if "" == assetType {
		return "", ErrRequiredAssetType
	}
	t := assetrecord.AssetType(assetType)
	if !t.Valid() {
		return "", fault.InvalidError(fmt.Sprintf("invalid asset type: %q", assetType))
	}
	return t, nil
}

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}
	return fileName, nil
}

func checkDepth(depth int) (int, error) {
	if depth < 1 {
		return 0, ErrInvalidDepth
	}
	return depth, nil
}

// decode a JSON flag value into v, naming the flag on failure
func parseJSONFlag(name string, value string, v interface{}) error {
	if err := json.Unmarshal([]byte(value), v); nil != err {
		return fault.InvalidError(fmt.Sprintf("--%s: %s", name, err))
	}
	return nil
}

// decode a whole request from a JSON file
func readJSONFile(fileName string, v interface{}) error {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}
	return parseJSONFlag("json", string(b), v)
}
