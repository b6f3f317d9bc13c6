// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assetrecord - the AITrust asset record and its request messages
//
// A record is stored as JSON under its assetUUID.  Requests are typed:
// optional fields of an update distinguish "not supplied" (absent or
// null) from "supplied as empty", the latter clearing the field.
package assetrecord
