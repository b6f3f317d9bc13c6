// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - versioned key/value world state
//
// A Backend runs callbacks against a KeyValueStore either as a read
// only snapshot (Evaluate) or as a single serialised write transaction
// (Submit).  Every write appends to the key's history, which is never
// truncated, so history remains readable after a key is deleted.
//
// Secondary indexes are declared up front as Indexes and maintained by
// the backend on every write; a Selector must name one of them.
//
// The LevelDB backend uses a single database with one byte prefixes:
//
//   S<key>                  current value
//   H<len><key><seq:8>      history entry: timestamp, flags, txid, value
//   N<len><key>             next history sequence number
//   I<len><index><len><v>…<len><key>   index entry (empty value)
//   \x00VERSION             database version
package storage
