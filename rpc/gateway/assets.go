// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/rpc/assets"
)

// request bodies are limited to this size
const maximumBodySize = 50 << 20

const serverName = "AITrust Asset Server"

type healthReply struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// GET / and GET /health
func (g *Gateway) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	sendReply(w, http.StatusOK, healthReply{Name: serverName, Status: "UP"})
}

// decode a JSON body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maximumBodySize))
	if err := decoder.Decode(v); nil != err {
		return fault.InvalidError("invalid request body: " + err.Error())
	}
	return nil
}

func (g *Gateway) fail(w http.ResponseWriter, route string, err error) {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		g.log.Errorf("%s: error: %s", route, err)
	} else {
		g.log.Debugf("%s: error: %s", route, err)
	}
	sendFault(w, err)
}

// POST /AITrustAssets
func (g *Gateway) create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request assetrecord.CreateRequest
	if err := decodeBody(w, r, &request); nil != err {
		g.fail(w, "create", err)
		return
	}

	if "" == request.AssetUUID {
		id, err := uuid.NewUUID()
		if nil != err {
			g.fail(w, "create", err)
			return
		}
		request.AssetUUID = id.String()
	}

	arguments := assets.CreateArguments{
		Organisation: organisation(r),
		Asset:        &request,
	}
	var reply assets.ReceiptReply
	if err := g.assets.Create(&arguments, &reply); nil != err {
		g.fail(w, "create", err)
		return
	}
	sendReply(w, http.StatusCreated, reply)
}

// GET /AITrustAssets?assetType=T[&assetOwner=O]
func (g *Gateway) query(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	values := r.URL.Query()

	arguments := assets.QueryArguments{
		Organisation: organisation(r),
		AssetType:    assetrecord.AssetType(values.Get("assetType")),
		AssetOwner:   values.Get("assetOwner"),
	}
	var reply assets.QueryReply
	if err := g.assets.Query(&arguments, &reply); nil != err {
		g.fail(w, "query", err)
		return
	}
	if nil == reply.Results {
		reply.Results = []registry.Result{}
	}
	sendReply(w, http.StatusOK, reply.Results)
}

// GET /AITrustAssets/:assetId
func (g *Gateway) read(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	arguments := assets.IdentifierArguments{
		Organisation: organisation(r),
		AssetUUID:    ps.ByName("assetId"),
	}
	var reply assets.RecordReply
	if err := g.assets.Read(&arguments, &reply); nil != err {
		g.fail(w, "read", err)
		return
	}
	sendReply(w, http.StatusOK, reply.Record)
}

// PATCH /AITrustAssets/:assetId
//
// the body supplies only the fields to replace
func (g *Gateway) update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var changes assetrecord.UpdateRequest
	if err := decodeBody(w, r, &changes); nil != err {
		g.fail(w, "update", err)
		return
	}
	changes.AssetUUID = ps.ByName("assetId")

	arguments := assets.UpdateArguments{
		Organisation: organisation(r),
		Changes:      &changes,
	}
	var reply assets.ReceiptReply
	if err := g.assets.Update(&arguments, &reply); nil != err {
		g.fail(w, "update", err)
		return
	}
	sendReply(w, http.StatusOK, reply)
}

// DELETE /AITrustAssets/:assetId
func (g *Gateway) delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	arguments := assets.IdentifierArguments{
		Organisation: organisation(r),
		AssetUUID:    ps.ByName("assetId"),
	}
	var reply assets.ReceiptReply
	if err := g.assets.Delete(&arguments, &reply); nil != err {
		g.fail(w, "delete", err)
		return
	}
	sendReply(w, http.StatusOK, reply)
}

type historyRequest struct {
	AssetID string `json:"assetId"`
}

// POST /getHistoryForAITrustAsset
func (g *Gateway) history(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request historyRequest
	if err := decodeBody(w, r, &request); nil != err {
		g.fail(w, "history", err)
		return
	}

	arguments := assets.IdentifierArguments{
		Organisation: organisation(r),
		AssetUUID:    request.AssetID,
	}
	var reply assets.HistoryReply
	if err := g.assets.History(&arguments, &reply); nil != err {
		g.fail(w, "history", err)
		return
	}
	sendReply(w, http.StatusOK, reply.History)
}
