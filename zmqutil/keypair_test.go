// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/zmqutil"
)

func TestMakeAndReadKeyPair(t *testing.T) {
	dir := filepath.Join(os.TempDir(), "aitrustd-zmqutil-test")
	_ = os.RemoveAll(dir)
	assert.Nil(t, os.MkdirAll(dir, 0o700), "mkdir error")
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	err := zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make error")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "keys overwritten")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public error")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private error")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")

	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private key read as public")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public key read as private")
}

func TestParseKey(t *testing.T) {
	hex32 := strings.Repeat("ab", 32)

	key, private, err := zmqutil.ParseKey("PUBLIC:" + hex32 + "\n")
	assert.Nil(t, err, "parse error")
	assert.False(t, private, "public parsed as private")
	assert.Equal(t, 32, len(key), "wrong length")

	_, private, err = zmqutil.ParseKey("  PRIVATE:" + hex32)
	assert.Nil(t, err, "parse error")
	assert.True(t, private, "private parsed as public")

	_, _, err = zmqutil.ParseKey("PRIVATE:abcd")
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "short key accepted")

	_, _, err = zmqutil.ParseKey("SECRET:" + hex32)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "untagged key accepted")
}
