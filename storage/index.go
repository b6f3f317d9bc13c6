// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/aitrustd/fault"
)

// IndexDefinition - a secondary index over string fields of JSON values
type IndexDefinition struct {
	Name   string
	Fields []string
}

// Indexes - the declared secondary indexes of a database
type Indexes []IndexDefinition

// Validate - check the declarations are usable
func (ix Indexes) Validate() error {
	seen := make(map[string]struct{})
	for _, d := range ix {
		if "" == d.Name || 0 == len(d.Fields) {
			return fault.InvalidError(fmt.Sprintf("index %q has no name or no fields", d.Name))
		}
		if _, ok := seen[d.Name]; ok {
			return fault.ExistsError(fmt.Sprintf("index %q declared twice", d.Name))
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}

// Lookup - find a declared index
func (ix Indexes) Lookup(name string) (IndexDefinition, bool) {
	for _, d := range ix {
		if d.Name == name {
			return d, true
		}
	}
	return IndexDefinition{}, false
}

// Resolve - the declared index and ordered values a selector names
func (ix Indexes) Resolve(selector Selector) (IndexDefinition, []string, error) {
	d, ok := ix.Lookup(selector.Index)
	if !ok {
		return d, nil, fault.IndexNotDeclared
	}
	if len(selector.Fields) != len(d.Fields) {
		return d, nil, fault.SelectorMismatch
	}
	values := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		v, ok := selector.Fields[f]
		if !ok {
			return d, nil, fault.SelectorMismatch
		}
		values[i] = v
	}
	return d, values, nil
}

// Extract - the index values of a stored JSON object
//
// returns false if the value is not a JSON object or any indexed field
// is missing or not a string
func (d IndexDefinition) Extract(value []byte) ([]string, bool) {
	if 0 == len(value) {
		return nil, false
	}
	var object map[string]interface{}
	if err := json.Unmarshal(value, &object); nil != err {
		return nil, false
	}
	values := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		s, ok := object[f].(string)
		if !ok {
			return nil, false
		}
		values[i] = s
	}
	return values, true
}

func sameValues(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
