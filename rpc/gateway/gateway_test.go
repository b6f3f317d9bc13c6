// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/contract"
	"github.com/bitmark-inc/aitrustd/contract/mocks"
	"github.com/bitmark-inc/aitrustd/counter"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/fixtures"
	"github.com/bitmark-inc/aitrustd/mode"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/rpc/assets"
	"github.com/bitmark-inc/aitrustd/rpc/gateway"
	"github.com/bitmark-inc/aitrustd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// httptest.NewRequest uses 192.0.2.1:1234 as the remote address
var allow = map[string][]string{
	"rpc":     {"192.0.2.0/24"},
	"details": {"192.0.2.0/24"},
	"metrics": {"192.0.2.0/24", "::1/128"},
}

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T, host contract.Host, isNormal func(mode.Mode) bool) *gateway.Gateway {
	log := logger.New(fixtures.LogCategory)
	c := counter.Counter(0)

	a := assets.New(log, host, isNormal)
	n := node.New(log, time.Now(), "1.0", &c, host)

	server := rpc.NewServer()
	_ = server.Register(a)
	_ = server.Register(n)

	g, err := gateway.New(log, a, n, server, &c, allow)
	if nil != err {
		t.Fatalf("gateway.New error: %s", err)
	}
	return g
}

func normal(_ mode.Mode) bool { return true }

func do(g http.Handler, method string, target string, body string, org string) *httptest.ResponseRecorder {
	var reader io.Reader
	if "" != body {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if "" != org {
		req.Header.Set("x-org-name", org)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) eResp {
	var e eResp
	err := json.Unmarshal(w.Body.Bytes(), &e)
	assert.Nil(t, err, "error body not JSON")
	return e
}

func TestGatewayHealth(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	for _, path := range []string{"/", "/health"} {
		w := do(g, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, "wrong status: "+path)
		assert.JSONEq(t, `{"name":"AITrust Asset Server","status":"UP"}`, w.Body.String(), "wrong body: "+path)
	}
}

func TestGatewayRateLimit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	limited := 0
	for i := 0; i < 300; i += 1 {
		w := do(g, http.MethodGet, "/health", "", "")
		if http.StatusTooManyRequests == w.Code {
			limited += 1
			assert.Equal(t, "rate limiting", decodeError(t, w).Error, "wrong error")
		}
	}
	assert.True(t, limited > 0, "burst was never limited")
}

func TestGatewayCreateGeneratesIdentifier(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	var seen *assetrecord.CreateRequest
	h.EXPECT().Create("Org1", gomock.Any()).DoAndReturn(
		func(org string, request *assetrecord.CreateRequest) (*contract.Receipt, error) {
			seen = request
			return &contract.Receipt{TxID: "t1", Record: request.Record(org)}, nil
		},
	).Times(1)

	w := do(g, http.MethodPost, "/AITrustAssets", `{"assetType":"Data","assetHashes":{"h":"1"},"plainTextContent":{},"otherInfo":[]}`, "Org1")
	assert.Equal(t, http.StatusCreated, w.Code, "wrong status")
	if assert.NotNil(t, seen, "create not called") {
		assert.NotEqual(t, "", seen.AssetUUID, "identifier not generated")
	}

	var reply assets.ReceiptReply
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "wrong reply body")
	assert.Equal(t, "t1", reply.TxID, "wrong transaction")
	assert.Equal(t, "Org1", reply.Record.AssetOwner, "wrong owner")
}

func TestGatewayCreateConflict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	h.EXPECT().Create("", gomock.Any()).Return(nil, fault.ExistsError("AITrust asset A1 already exists")).Times(1)

	w := do(g, http.MethodPost, "/AITrustAssets", `{"assetType":"Data","assetUUID":"A1"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code, "wrong status")
	e := decodeError(t, w)
	assert.Equal(t, http.StatusConflict, e.Code, "wrong error code")
	assert.Equal(t, "AITrust asset A1 already exists", e.Error, "wrong error message")
}

func TestGatewayCreateBadBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	w := do(g, http.MethodPost, "/AITrustAssets", `{"assetType":`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status")
}

func TestGatewayQuery(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	record := &assetrecord.Record{AssetType: assetrecord.Data, AssetUUID: "A1", AssetOwner: "Org2"}
	record.Normalise()

	h.EXPECT().QueryByType("Org1", assetrecord.Data).Return(nil, nil).Times(1)
	h.EXPECT().QueryByOwner("Org1", assetrecord.Data, "Org2").Return([]registry.Result{{Key: "A1", Record: record}}, nil).Times(1)

	w := do(g, http.MethodGet, "/AITrustAssets?assetType=Data", "", "Org1")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")
	assert.Equal(t, "[]", w.Body.String(), "wrong empty result")

	w = do(g, http.MethodGet, "/AITrustAssets?assetType=Data&assetOwner=Org2", "", "Org1")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var results []registry.Result
	err := json.Unmarshal(w.Body.Bytes(), &results)
	assert.Nil(t, err, "wrong body")
	assert.Equal(t, 1, len(results), "wrong result count")
	assert.Equal(t, "A1", results[0].Key, "wrong key")
}

func TestGatewayQueryMissingType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	w := do(g, http.MethodGet, "/AITrustAssets", "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status")
	assert.Equal(t, fault.MissingAssetType.Error(), decodeError(t, w).Error, "wrong error")
}

func TestGatewayReadNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	h.EXPECT().Read("", "B1").Return(nil, fault.NotFoundError("AITrust asset B1 does not exist")).Times(1)

	w := do(g, http.MethodGet, "/AITrustAssets/B1", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status")
}

func TestGatewayUpdate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	w := do(g, http.MethodPatch, "/AITrustAssets/A1", `{}`, "Org1")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status")
	assert.Equal(t, "No changes were provided", decodeError(t, w).Error, "wrong error")

	h.EXPECT().Update("Org1", gomock.Any()).DoAndReturn(
		func(_ string, changes *assetrecord.UpdateRequest) (*contract.Receipt, error) {
			assert.Equal(t, "A1", changes.AssetUUID, "identifier not taken from path")
			assert.True(t, changes.OtherInfo.Set, "otherInfo not supplied")
			assert.False(t, changes.AssetHashes.Set, "assetHashes supplied")
			return &contract.Receipt{TxID: "t2"}, nil
		},
	).Times(1)

	w = do(g, http.MethodPatch, "/AITrustAssets/A1", `{"otherInfo":["x"]}`, "Org1")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")
}

func TestGatewayDeleteForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	h.EXPECT().Delete("Org2", "A1").Return(nil, fault.NotOwner).Times(1)

	w := do(g, http.MethodDelete, "/AITrustAssets/A1", "", "Org2")
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status")
}

func TestGatewayHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	ts := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	h.EXPECT().History("", "A1").Return([]registry.HistoryEntry{{Index: 0, TxID: "abc", Timestamp: ts, IsDelete: true}}, nil).Times(1)

	w := do(g, http.MethodPost, "/getHistoryForAITrustAsset", `{"assetId":"A1"}`, "")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")
	assert.JSONEq(t, `[{"Key":0,"TxId":"abc","Timestamp":"2020-05-01T12:00:00Z","IsDelete":true,"Record":null}]`, w.Body.String(), "wrong history")
}

func TestGatewayNotAvailableDuringStartup(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), func(mode.Mode) bool { return false })

	w := do(g, http.MethodGet, "/AITrustAssets/A1", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status")
}

func TestGatewayMethodNotAllowed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	w := do(g, http.MethodPut, "/AITrustAssets/A1", `{}`, "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "wrong status")

	w = do(g, http.MethodGet, "/nothing/here", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status")
}

func TestGatewayDetails(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	h.EXPECT().Organisations().Return([]string{"Org1"}).Times(1)

	w := do(g, http.MethodGet, "/aitrustd/details", "", "")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply node.InfoReply
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "wrong body")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, []string{"Org1"}, reply.Organisations, "wrong organisations")
}

func TestGatewayDetailsDenied(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	req := httptest.NewRequest(http.MethodGet, "/aitrustd/details", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status")
}

func TestGatewayMetrics(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := setup(t, mocks.NewMockHost(ctl), normal)

	_ = do(g, http.MethodGet, "/health", "", "")

	w := do(g, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")
	assert.Contains(t, w.Body.String(), `aitrustd_gateway_requests_total{code="200",method="GET",route="health"} 1`, "missing request counter")
}

func TestGatewayRPC(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHost(ctl)
	g := setup(t, h, normal)

	h.EXPECT().Exists("Org1", "A1").Return(true, nil).Times(1)

	body := `{"id":1,"method":"Assets.Exists","params":[{"organisation":"Org1","assetUUID":"A1"}]}`
	w := do(g, http.MethodPost, "/aitrustd/rpc", body, "")
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply struct {
		ID     int                `json:"id"`
		Result assets.ExistsReply `json:"result"`
		Error  interface{}        `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "wrong body")
	assert.Equal(t, 1, reply.ID, "wrong id")
	assert.True(t, reply.Result.Exists, "wrong result")
	assert.Nil(t, reply.Error, "unexpected error")
}
