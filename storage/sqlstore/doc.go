// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sqlstore - world state in SQLite or PostgreSQL
//
// tables:
//
//   world_state   item_key → item_value
//   key_history   item_key, seq → tx_id, ts, is_delete, item_value
//   index_entry   index_name, values_key, item_key
//
// values_key is storage.IndexValuesKey of the extracted index fields
package sqlstore
