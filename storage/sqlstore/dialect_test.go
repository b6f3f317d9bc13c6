// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	query := "SELECT a FROM t WHERE b = ? AND c = ?"

	assert.Equal(t, query, dialects[SQLite].rebind(query), "sqlite rewritten")
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c = $2", dialects[Postgres].rebind(query), "postgres not rewritten")
}

func TestSchemaUsesDialectBlob(t *testing.T) {
	for _, statement := range dialects[Postgres].schema() {
		assert.NotContains(t, statement, "BLOB", "sqlite type in postgres schema")
	}
}
