// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - events raised inside a transaction
//
// A Buffer collects the events of one transaction; they are only
// released, stamped with the transaction id, once it has committed.
package events

import (
	"sync"
	"time"

	"github.com/bitmark-inc/aitrustd/fault"
)

// Event - a named notification with a JSON payload
type Event struct {
	Name      string    `json:"name"`
	TxID      string    `json:"txId"`
	Timestamp time.Time `json:"timestamp"`
	Payload   []byte    `json:"payload"`
}

// Buffer - the pending events of one transaction
type Buffer struct {
	sync.Mutex
	events []Event
}

// NewBuffer - an empty buffer
func NewBuffer() *Buffer {
	return &Buffer{
		events: make([]Event, 0, 1),
	}
}

// SetEvent - record an event
func (b *Buffer) SetEvent(name string, payload []byte) error {
	if "" == name {
		return fault.MissingParameters
	}

	b.Lock()
	defer b.Unlock()

	b.events = append(b.events, Event{
		Name:      name,
		Timestamp: time.Now().UTC(),
		Payload:   append([]byte{}, payload...),
	})
	return nil
}

// Len - number of pending events
func (b *Buffer) Len() int {
	b.Lock()
	defer b.Unlock()
	return len(b.events)
}

// Seal - release the events stamped with the committing transaction
func (b *Buffer) Seal(txID string) []Event {
	b.Lock()
	defer b.Unlock()

	sealed := make([]Event, len(b.events))
	for i, e := range b.events {
		e.TxID = txID
		sealed[i] = e
	}
	b.events = b.events[:0]
	return sealed
}
