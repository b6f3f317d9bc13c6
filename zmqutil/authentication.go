// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
)

var authentication struct {
	sync.Mutex
	log     *logger.L
	running bool
}

// StartAuthentication - start the ZAP handler needed by CURVE sockets
//
// a second call while running does nothing
func StartAuthentication(log *logger.L) error {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.running {
		return nil
	}

	zmq.AuthSetVerbose(false)
	if err := zmq.AuthStart(); nil != err {
		log.Errorf("authentication start error: %s", err)
		return err
	}

	authentication.log = log
	authentication.running = true
	log.Info("authentication started")
	return nil
}

// StopAuthentication - stop the ZAP handler after all CURVE sockets close
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if !authentication.running {
		return
	}

	zmq.AuthStop()
	authentication.running = false
	authentication.log.Info("authentication stopped")
}

func authenticationRunning() bool {
	authentication.Lock()
	defer authentication.Unlock()
	return authentication.running
}
