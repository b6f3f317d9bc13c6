// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/aitrustd/assetrecord"
)

// Result - a query hit
//
// Record is nil and Raw holds the stored text when the value does not
// parse as a record
type Result struct {
	Key    string
	Record *assetrecord.Record
	Raw    string
}

// HistoryEntry - one version of a record
//
// a delete marker has IsDelete set and neither Record nor Raw
type HistoryEntry struct {
	Index     int
	TxID      string
	Timestamp time.Time
	IsDelete  bool
	Record    *assetrecord.Record
	Raw       string
}

// the JSON forms carry "Record" as either an object or a string
type resultJSON struct {
	Key    string          `json:"Key"`
	Record json.RawMessage `json:"Record"`
}

type historyJSON struct {
	Key       int             `json:"Key"`
	TxID      string          `json:"TxId"`
	Timestamp time.Time       `json:"Timestamp"`
	IsDelete  bool            `json:"IsDelete"`
	Record    json.RawMessage `json:"Record"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	value, err := packValue(r.Record, r.Raw)
	if nil != err {
		return nil, err
	}
	return json.Marshal(resultJSON{Key: r.Key, Record: value})
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var j resultJSON
	err := json.Unmarshal(b, &j)
	if nil != err {
		return err
	}
	r.Key = j.Key
	r.Record, r.Raw, err = unpackValue(j.Record)
	return err
}

func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	value, err := packValue(h.Record, h.Raw)
	if nil != err {
		return nil, err
	}
	return json.Marshal(historyJSON{
		Key:       h.Index,
		TxID:      h.TxID,
		Timestamp: h.Timestamp,
		IsDelete:  h.IsDelete,
		Record:    value,
	})
}

func (h *HistoryEntry) UnmarshalJSON(b []byte) error {
	var j historyJSON
	err := json.Unmarshal(b, &j)
	if nil != err {
		return err
	}
	h.Index = j.Key
	h.TxID = j.TxID
	h.Timestamp = j.Timestamp
	h.IsDelete = j.IsDelete
	h.Record, h.Raw, err = unpackValue(j.Record)
	return err
}

func packValue(record *assetrecord.Record, raw string) (json.RawMessage, error) {
	if nil != record {
		return json.Marshal(record)
	}
	if "" != raw {
		return json.Marshal(raw)
	}
	return json.RawMessage("null"), nil
}

func unpackValue(value json.RawMessage) (*assetrecord.Record, string, error) {
	if 0 == len(value) || "null" == string(value) {
		return nil, "", nil
	}
	if '"' == value[0] {
		var raw string
		err := json.Unmarshal(value, &raw)
		return nil, raw, err
	}
	record := &assetrecord.Record{}
	err := json.Unmarshal(value, record)
	if nil != err {
		return nil, "", err
	}
	return record, "", nil
}

// parse a stored value, falling back to its raw text
func (r *Registry) parse(key string, value []byte) (*assetrecord.Record, string) {
	record, err := assetrecord.Unpack(value)
	if nil != err {
		r.log.Warnf("key: %s  unparseable value returned as text: %s", key, err)
		return nil, string(value)
	}
	return record, ""
}
