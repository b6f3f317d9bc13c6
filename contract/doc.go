// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - runs registry operations as ledger transactions
//
// every mutation is one Submit; the events it raised are published
// only after the commit succeeds, tagged with the transaction id
package contract
