// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/aitrustd/contract"
	"github.com/bitmark-inc/aitrustd/counter"
	"github.com/bitmark-inc/aitrustd/mode"
	"github.com/bitmark-inc/aitrustd/rpc/assets"
	"github.com/bitmark-inc/aitrustd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - a JSON-RPC server with the Assets and Node services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, host contract.Host) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, host, mode.Is))
	_ = server.Register(node.New(log, start, version, rpcCount, host))

	return server
}
