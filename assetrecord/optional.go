// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"bytes"
	"encoding/json"
)

// optional values for update requests
//
// Set is false when the JSON field is absent or null, Set is true when
// any other value is supplied, including an empty one
type OptionalMap struct {
	Set   bool
	Value map[string]string
}

type OptionalStrings struct {
	Set   bool
	Value []string
}

type OptionalList struct {
	Set   bool
	Value []interface{}
}

type OptionalObject struct {
	Set   bool
	Value map[string]interface{}
}

type OptionalTransformation struct {
	Set   bool
	Value TransformationType
}

// constructors for supplied values
func SomeMap(v map[string]string) OptionalMap {
	if nil == v {
		v = map[string]string{}
	}
	return OptionalMap{Set: true, Value: v}
}

func SomeStrings(v []string) OptionalStrings {
	if nil == v {
		v = []string{}
	}
	return OptionalStrings{Set: true, Value: v}
}

func SomeList(v []interface{}) OptionalList {
	if nil == v {
		v = []interface{}{}
	}
	return OptionalList{Set: true, Value: v}
}

func SomeObject(v map[string]interface{}) OptionalObject {
	if nil == v {
		v = map[string]interface{}{}
	}
	return OptionalObject{Set: true, Value: v}
}

func SomeTransformation(v TransformationType) OptionalTransformation {
	return OptionalTransformation{Set: true, Value: v}
}

var null = []byte("null")

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), null)
}

func (o OptionalMap) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return null, nil
	}
	return json.Marshal(SomeMap(o.Value).Value)
}

func (o *OptionalMap) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*o = OptionalMap{}
		return nil
	}
	var v map[string]string
	if err := json.Unmarshal(b, &v); nil != err {
		return err
	}
	*o = SomeMap(v)
	return nil
}

func (o OptionalStrings) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return null, nil
	}
	return json.Marshal(SomeStrings(o.Value).Value)
}

func (o *OptionalStrings) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*o = OptionalStrings{}
		return nil
	}
	var v []string
	if err := json.Unmarshal(b, &v); nil != err {
		return err
	}
	*o = SomeStrings(v)
	return nil
}

func (o OptionalList) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return null, nil
	}
	return json.Marshal(SomeList(o.Value).Value)
}

func (o *OptionalList) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*o = OptionalList{}
		return nil
	}
	var v []interface{}
	if err := json.Unmarshal(b, &v); nil != err {
		return err
	}
	*o = SomeList(v)
	return nil
}

func (o OptionalObject) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return null, nil
	}
	return json.Marshal(SomeObject(o.Value).Value)
}

func (o *OptionalObject) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*o = OptionalObject{}
		return nil
	}
	var v map[string]interface{}
	if err := json.Unmarshal(b, &v); nil != err {
		return err
	}
	*o = SomeObject(v)
	return nil
}

func (o OptionalTransformation) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return null, nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalTransformation) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*o = OptionalTransformation{}
		return nil
	}
	var v TransformationType
	if err := json.Unmarshal(b, &v); nil != err {
		return err
	}
	*o = SomeTransformation(v)
	return nil
}
