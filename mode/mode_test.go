// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/mode"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestModeLifecycle(t *testing.T) {
	err := mode.Initialise("mainnet")
	assert.True(t, fault.IsErrInvalid(err), "unknown chain accepted")

	err = mode.Initialise(mode.Local)
	assert.Nil(t, err, "initialise error")
	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(mode.Local), "second initialise")

	assert.True(t, mode.IsTesting(), "local is not testing")
	assert.Equal(t, mode.Local, mode.ChainName(), "wrong chain")
	assert.True(t, mode.Is(mode.Resynchronise), "wrong start mode")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "mode not set")
	assert.False(t, mode.IsNot(mode.Normal), "mode not set")
	assert.Equal(t, "Normal", mode.String(), "wrong mode string")

	mode.Set(mode.Mode(99))
	assert.True(t, mode.Is(mode.Normal), "invalid mode accepted")

	assert.Nil(t, mode.Finalise(), "finalise error")
	assert.True(t, mode.Is(mode.Stopped), "not stopped")
	assert.Equal(t, fault.NotInitialised, mode.Finalise(), "second finalise")
}
