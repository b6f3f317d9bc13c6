// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/aitrustd/events"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/logger"
)

// internal constants
const (
	DefaultQueueSize = 1000
)

// Queue - bounded channel of events
type Queue struct {
	sync.RWMutex

	log     *logger.L
	queue   chan events.Event
	closed  bool
	dropped atomic.Uint64
}

// New - create a queue holding up to size events
func New(log *logger.L, size int) (*Queue, error) {
	if nil == log {
		return nil, fault.MissingParameters
	}
	if size <= 0 {
		return nil, fault.InvalidCount
	}
	return &Queue{
		log:   log,
		queue: make(chan events.Event, size),
	}, nil
}

// Send - queue an event without blocking
//
// a full queue drops the event
func (q *Queue) Send(event events.Event) error {
	q.RLock()
	defer q.RUnlock()

	if q.closed {
		return fault.NotInitialised
	}

	select {
	case q.queue <- event:
		return nil
	default:
	}

	q.dropped.Add(1)
	q.log.Warnf("queue full, dropped event: %s  tx: %s", event.Name, event.TxID)
	return fault.QueueFull
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan events.Event {
	return q.queue
}

// Dropped - number of events lost to a full queue
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Close - stop accepting events and close the channel
func (q *Queue) Close() {
	q.Lock()
	defer q.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.queue)
}
