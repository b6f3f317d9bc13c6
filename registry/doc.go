// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - create, read, update and delete AITrust assets,
// query them by type and owner, and list their version history
//
// A Registry is built for one transaction from three capabilities: the
// world state, an event sink and the caller's identity.  It holds no
// other state and performs no locking; the caller's transaction runner
// serialises operations.
//
// Every mutation checks in a fixed order: existence, then ownership
// (delete only), then the write, then the event.  A failed check
// returns before anything is written.
//
// Bulk reads (Query…, History) never fail because of one bad stored
// value: an entry whose bytes do not parse as a record is returned as
// raw text.  A direct Read of such a value is an IntegrityError.
package registry
