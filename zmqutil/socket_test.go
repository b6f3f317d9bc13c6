// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"os"
	"testing"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/zmqutil"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestCurveSocketNeedsAuthentication(t *testing.T) {
	privateKey := make([]byte, 32)

	socket, err := zmqutil.NewServerSocket(zmq.PUB, "test", privateKey, false)
	assert.Nil(t, socket, "socket created")
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}

func TestPlainSocket(t *testing.T) {
	socket, err := zmqutil.NewServerSocket(zmq.PUB, "test", nil, false)
	assert.Nil(t, err, "plain socket error")
	assert.NotNil(t, socket, "no socket")
	socket.Close()
}

func TestBindRejectsBadAddress(t *testing.T) {
	log := logger.New(fixtures.LogCategory)

	for _, address := range []string{"localhost:2135", "127.0.0.1:0", "2135"} {
		s4, s6, err := zmqutil.NewBind(log, zmq.PUB, "test", nil, []string{address})
		assert.Nil(t, s4, "IPv4 socket left open: "+address)
		assert.Nil(t, s6, "IPv6 socket left open: "+address)
		assert.NotNil(t, err, "bad address accepted: "+address)
	}
}
