// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/background"
	"github.com/bitmark-inc/aitrustd/events"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/messagebus"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type recordingSocket struct {
	sync.Mutex
	messages [][]interface{}
	closed   bool
	done     chan struct{}
	expected int
}

func (r *recordingSocket) SendMessageDontwait(parts ...interface{}) (int, error) {
	r.Lock()
	defer r.Unlock()
	r.messages = append(r.messages, parts)
	if len(r.messages) == r.expected {
		close(r.done)
	}
	return len(parts), nil
}

func (r *recordingSocket) Close() error {
	r.Lock()
	defer r.Unlock()
	r.closed = true
	return nil
}

func TestBroadcasterSendsMultipart(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	queue, err := messagebus.New(log, 4)
	assert.Nil(t, err, "queue error")

	socket := &recordingSocket{done: make(chan struct{}), expected: 2}
	brdc := &broadcaster{
		log:     log,
		queue:   queue,
		sockets: []sender{socket},
	}

	p := background.Start(background.Processes{brdc}, nil)

	_ = queue.Send(events.Event{Name: "CreateAITrustAssetEvent-A1", TxID: "t1", Payload: []byte(`{"a":1}`)})
	_ = queue.Send(events.Event{Name: "DeleteAITrustAssetEvent-A1", TxID: "t2", Payload: []byte(`{}`)})

	<-socket.done
	p.Stop()

	socket.Lock()
	defer socket.Unlock()
	assert.True(t, socket.closed, "socket not closed")
	assert.Equal(t, []interface{}{"event", "CreateAITrustAssetEvent-A1", "t1", []byte(`{"a":1}`)}, socket.messages[0], "wrong first message")
	assert.Equal(t, "t2", socket.messages[1][2], "wrong second transaction")
}

func TestBroadcasterWithoutAddressesDrains(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	queue, err := messagebus.New(log, 1)
	assert.Nil(t, err, "queue error")

	brdc := &broadcaster{}
	err = brdc.initialise(log, nil, nil, queue)
	assert.Nil(t, err, "initialise error")

	p := background.Start(background.Processes{brdc}, nil)
	_ = queue.Send(events.Event{Name: "e1"})
	queue.Close()
	p.Stop()

	assert.Equal(t, uint64(1), brdc.sent, "event not drained")
}

func TestInitialiseFinalise(t *testing.T) {
	queue, err := messagebus.New(logger.New(fixtures.LogCategory), 1)
	assert.Nil(t, err, "queue error")

	err = Initialise(nil, queue)
	assert.Equal(t, fault.MissingParameters, err, "missing configuration accepted")

	err = Initialise(&Configuration{Broadcast: []string{"127.0.0.1:0"}}, queue)
	assert.Equal(t, fault.InvalidPortNumber, err, "bad address accepted")

	err = Initialise(&Configuration{}, queue)
	assert.Nil(t, err, "initialise error")

	err = Initialise(&Configuration{}, queue)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	assert.Nil(t, Finalise(), "finalise error")
	assert.Equal(t, fault.NotInitialised, Finalise(), "second finalise")
}
