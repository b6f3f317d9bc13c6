// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlstore

import (
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/bitmark-inc/aitrustd/fault"
)

// names accepted by Open
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// dialect - the differences between the supported databases
type dialect struct {
	name         string
	driver       string
	blob         string
	numbered     bool // $1, $2... instead of ?
	singleWriter bool // one connection only
	readOnlyTx   bool // driver honours sql.TxOptions.ReadOnly
}

var dialects = map[string]dialect{
	SQLite: {
		name:         SQLite,
		driver:       "sqlite",
		blob:         "BLOB",
		singleWriter: true,
	},
	Postgres: {
		name:       Postgres,
		driver:     "pgx",
		blob:       "BYTEA",
		numbered:   true,
		readOnlyTx: true,
	},
}

func lookupDialect(name string) (dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return dialect{}, fault.UnknownBackend
	}
	return d, nil
}

// rebind - convert ? placeholders to the dialect's form
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if '?' == c {
			n += 1
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (d dialect) schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS world_state (
			item_key   TEXT PRIMARY KEY,
			item_value ` + d.blob + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS key_history (
			item_key   TEXT    NOT NULL,
			seq        BIGINT  NOT NULL,
			tx_id      TEXT    NOT NULL,
			ts         BIGINT  NOT NULL,
			is_delete  INTEGER NOT NULL,
			item_value ` + d.blob + `,
			PRIMARY KEY (item_key, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS index_entry (
			index_name TEXT NOT NULL,
			values_key TEXT NOT NULL,
			item_key   TEXT NOT NULL,
			PRIMARY KEY (index_name, values_key, item_key)
		)`,
	}
}
