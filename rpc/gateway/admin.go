// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"io"
	"net/http"
	"net/rpc/jsonrpc"

	"github.com/julienschmidt/httprouter"

	"github.com/bitmark-inc/aitrustd/rpc/node"
)

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// POST /aitrustd/rpc - one JSON-RPC request per HTTP request
func (g *Gateway) rpc(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	g.count.Increment()
	defer g.count.Decrement()

	body := http.MaxBytesReader(w, r.Body, maximumBodySize)
	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if err := g.server.ServeRequest(serverCodec); nil != err {
		g.log.Warnf("rpc: serve error: %s", err)
	}
}

// GET /aitrustd/details - the Node.Info reply
func (g *Gateway) details(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	var reply node.InfoReply
	if err := g.node.Info(&node.InfoArguments{}, &reply); nil != err {
		g.fail(w, "details", err)
		return
	}
	sendReply(w, http.StatusOK, reply)
}
