// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/sha3"
)

// prefix marking a SHA3-512 content fingerprint
const fingerprintPrefix = "01"

// Fingerprint - SHA3-512 of the content read, as prefixed hex
//
// suitable as a value in a record's assetHashes
func Fingerprint(r io.Reader) (string, error) {
	digest := sha3.New512()
	_, err := io.Copy(digest, r)
	if nil != err {
		return "", err
	}
	return fingerprintPrefix + hex.EncodeToString(digest.Sum(nil)), nil
}

// FileFingerprint - fingerprint the contents of a file
func FileFingerprint(name string) (string, error) {
	f, err := os.Open(name)
	if nil != err {
		return "", err
	}
	defer f.Close()
	return Fingerprint(f)
}
