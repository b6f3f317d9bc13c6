// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/etc/aitrustd/x.crt", util.EnsureAbsolute("/etc/aitrustd", "x.crt"), "relative path")
	assert.Equal(t, "/tmp/x.crt", util.EnsureAbsolute("/etc/aitrustd", "/tmp/../tmp/x.crt"), "absolute path")
	assert.Equal(t, "", util.EnsureAbsolute("/etc/aitrustd", ""), "empty path")
}

func TestEnsureDirectoryAndFile(t *testing.T) {
	base := filepath.Join(os.TempDir(), "aitrustd-util-test")
	defer os.RemoveAll(base)

	dir := filepath.Join(base, "a", "b")
	assert.Nil(t, util.EnsureDirectory(dir), "mkdir error")
	assert.True(t, util.EnsureFileExists(dir), "directory missing")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "none")), "phantom file")
}

func TestFingerprint(t *testing.T) {
	// SHA3-512 of the empty string
	expected := "01" + "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a6" +
		"15b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"

	f, err := util.Fingerprint(strings.NewReader(""))
	assert.Nil(t, err, "fingerprint error")
	assert.Equal(t, expected, f, "wrong fingerprint")

	name := filepath.Join(os.TempDir(), "aitrustd-fingerprint-test")
	defer os.Remove(name)
	assert.Nil(t, os.WriteFile(name, []byte{}, 0o600), "write error")

	f, err = util.FileFingerprint(name)
	assert.Nil(t, err, "file fingerprint error")
	assert.Equal(t, expected, f, "file and reader differ")

	_, err = util.FileFingerprint(name + ".missing")
	assert.NotNil(t, err, "missing file fingerprinted")
}
