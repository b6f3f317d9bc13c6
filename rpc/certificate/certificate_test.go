// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestGet(t *testing.T) {
	cer, key := fixtures.Certificate()

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetBadPair(t *testing.T) {
	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "bad pair accepted")
}

func TestRead(t *testing.T) {
	dir := filepath.Join(os.TempDir(), "aitrustd-certificate-test")
	_ = os.RemoveAll(dir)
	assert.Nil(t, os.MkdirAll(dir, 0o700), "mkdir error")
	defer os.RemoveAll(dir)

	cer, key := fixtures.Certificate()
	cerFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	log := logger.New(fixtures.LogCategory)

	_, _, err := certificate.Read(log, "test", cerFile, keyFile)
	assert.Equal(t, fault.CertificateFileNotFound, err, "missing files accepted")

	assert.Nil(t, os.WriteFile(cerFile, []byte(cer), 0o600), "write error")
	assert.Nil(t, os.WriteFile(keyFile, []byte(key), 0o600), "write error")

	_, fingerprint, err := certificate.Read(log, "test", cerFile, keyFile)
	assert.Nil(t, err, "read error")

	_, expected, _ := certificate.Get(log, "test", cer, key)
	assert.Equal(t, expected, fingerprint, "read and get differ")
}
