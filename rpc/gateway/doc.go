// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gateway - REST access to the asset registry over HTTPS
//
// the asset routes call the same handlers as the JSON-RPC service so
// rate limiting, mode checks and argument validation are shared; the
// caller organisation is taken from the x-org-name header
//
// administrative routes (/aitrustd/rpc, /aitrustd/details, /metrics)
// are restricted by per-route CIDR allow lists
package gateway
