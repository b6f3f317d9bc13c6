// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/events"
	"github.com/bitmark-inc/aitrustd/fault"
)

func TestBufferSeal(t *testing.T) {
	b := events.NewBuffer()

	payload := []byte(`{"type":"x"}`)
	err := b.SetEvent("CreateAITrustAssetEvent-A1", payload)
	assert.Nil(t, err, "set event error")
	payload[0] = '!'

	assert.Equal(t, 1, b.Len(), "wrong length")

	sealed := b.Seal("tx1")
	assert.Equal(t, 1, len(sealed), "wrong sealed count")
	assert.Equal(t, "CreateAITrustAssetEvent-A1", sealed[0].Name, "wrong name")
	assert.Equal(t, "tx1", sealed[0].TxID, "wrong transaction")
	assert.Equal(t, `{"type":"x"}`, string(sealed[0].Payload), "payload aliased")
	assert.False(t, sealed[0].Timestamp.IsZero(), "missing timestamp")

	assert.Equal(t, 0, b.Len(), "buffer not emptied")
}

func TestBufferRejectsBlankName(t *testing.T) {
	b := events.NewBuffer()
	assert.Equal(t, fault.MissingParameters, b.SetEvent("", nil), "blank name accepted")
	assert.Equal(t, 0, b.Len(), "blank event stored")
}
