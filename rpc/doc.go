// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming requests
// from clients requiring aitrustd services
//
// the client_rpc listener serves JSON RPC over TLS; standard golang
// RPC services can be used on the client side to access it
//
// the https_rpc listener serves the REST gateway
package rpc
