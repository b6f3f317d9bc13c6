// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/aitrustd/contract"
	"github.com/bitmark-inc/aitrustd/counter"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/mode"
	"github.com/bitmark-inc/aitrustd/rpc/assets"
	"github.com/bitmark-inc/aitrustd/rpc/certificate"
	"github.com/bitmark-inc/aitrustd/rpc/gateway"
	"github.com/bitmark-inc/aitrustd/rpc/listeners"
	"github.com/bitmark-inc/aitrustd/rpc/node"
	"github.com/bitmark-inc/aitrustd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection counts shared by both listeners
var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	host contract.Host,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == rpcConfiguration || nil == httpsConfiguration || nil == host {
		return fault.MissingParameters
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Read(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcServer := server.Create(log, version, &connectionCountRPC, host)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		rpcServer,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, version, host)
	if nil != err {
		return err
	}

	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsListener {
		if err := httpsListener.Serve(); nil != err {
			_ = rpcListener.Close()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// the gateway gets its own handlers so its rate limits are independent
func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, host contract.Host) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Read(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	a := assets.New(log, host, mode.Is)
	n := node.New(log, time.Now().UTC(), version, &connectionCountRPC, host)

	g, err := gateway.New(
		log,
		a,
		n,
		server.Create(log, version, &connectionCountRPC, host),
		&connectionCountRPC,
		configuration.Allow,
	)
	if nil != err {
		return nil, err
	}

	return listeners.NewHTTPS(configuration, log, tlsConfig, g)
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Warnf("listener close error: %s", err)
		}
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
