// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/bitmark-inc/aitrustd/fault"
)

// send a JSON encoded reply
func sendReply(w http.ResponseWriter, code int, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

// selected errors
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}

// send a registry error with the status for its class
func sendFault(w http.ResponseWriter, err error) {
	code := statusOf(err)
	if http.StatusInternalServerError == code && !fault.IsErrIntegrity(err) {
		sendInternalServerError(w)
		return
	}
	sendError(w, err.Error(), code)
}

// statusOf - HTTP status for an error class
func statusOf(err error) int {
	switch {
	case fault.RateLimiting == err:
		return http.StatusTooManyRequests
	case fault.NotAvailableDuringStartup == err:
		return http.StatusServiceUnavailable
	case fault.IsErrExists(err):
		return http.StatusConflict
	case fault.IsErrNotFound(err):
		return http.StatusNotFound
	case fault.IsErrForbidden(err):
		return http.StatusForbidden
	case fault.IsErrInvalid(err), fault.IsErrLength(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
