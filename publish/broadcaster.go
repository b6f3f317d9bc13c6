// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/aitrustd/events"
	"github.com/bitmark-inc/aitrustd/messagebus"
	"github.com/bitmark-inc/aitrustd/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	publisherZapDomain = "publisher"
	eventTag           = "event"
)

// *zmq.Socket
type sender interface {
	SendMessageDontwait(parts ...interface{}) (int, error)
	Close() error
}

type broadcaster struct {
	log     *logger.L
	queue   *messagebus.Queue
	sockets []sender
	sent    uint64
}

// bind the PUB sockets
func (brdc *broadcaster) initialise(log *logger.L, privateKey []byte, broadcast []string, queue *messagebus.Queue) error {
	brdc.log = log
	brdc.queue = queue
	brdc.sockets = nil
	brdc.sent = 0

	if 0 == len(broadcast) {
		log.Warn("no broadcast addresses, events will be discarded")
		return nil
	}

	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, publisherZapDomain, privateKey, broadcast)
	if nil != err {
		return err
	}
	if nil != socket4 {
		brdc.sockets = append(brdc.sockets, socket4)
	}
	if nil != socket6 {
		brdc.sockets = append(brdc.sockets, socket6)
	}
	return nil
}

// wait for events and broadcast them
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-queue:
			if !ok {
				break loop
			}
			brdc.process(item)
		}
	}

	// flush whatever is already queued
drain:
	for {
		select {
		case item, ok := <-queue:
			if !ok {
				break drain
			}
			brdc.process(item)
		default:
			break drain
		}
	}

	for _, socket := range brdc.sockets {
		socket.Close()
	}
	log.Infof("stopped after: %d events", brdc.sent)
}

// send one event as [tag, name, txID, payload] on every socket
func (brdc *broadcaster) process(e events.Event) {
	brdc.log.Debugf("event: %s  tx: %s", e.Name, e.TxID)

	for _, socket := range brdc.sockets {
		_, err := socket.SendMessageDontwait(eventTag, e.Name, e.TxID, e.Payload)
		if nil != err {
			brdc.log.Errorf("event: %s  send error: %s", e.Name, err)
			continue
		}
	}
	brdc.sent += 1
}
