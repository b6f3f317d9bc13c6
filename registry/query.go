// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/fault"
	"github.com/bitmark-inc/aitrustd/storage"
)

// QueryByType - all current records of one asset type
func (r *Registry) QueryByType(assetType assetrecord.AssetType) ([]Result, error) {
	if !assetType.Valid() {
		return nil, fault.InvalidError(fmt.Sprintf("invalid asset type: %q", assetType))
	}
	return r.query(typeSelector(assetType))
}

// QueryByOwner - all current records of one asset type owned by an organisation
func (r *Registry) QueryByOwner(assetType assetrecord.AssetType, owner string) ([]Result, error) {
	if !assetType.Valid() {
		return nil, fault.InvalidError(fmt.Sprintf("invalid asset type: %q", assetType))
	}
	if "" == owner {
		return nil, fault.InvalidOrganisation
	}
	return r.query(ownerSelector(assetType, owner))
}

// drain a query cursor, it is closed on every path
func (r *Registry) query(selector storage.Selector) (results []Result, err error) {
	iter, err := r.store.Query(selector)
	if nil != err {
		return nil, err
	}
	defer func() {
		closeErr := iter.Close()
		if nil == err && nil != closeErr {
			results = nil
			err = closeErr
		}
	}()

	results = make([]Result, 0, 16)
	for iter.HasNext() {
		element, err := iter.Next()
		if nil != err {
			r.log.Errorf("query: %s  %v  error: %s", selector.Index, selector.Fields, err)
			return nil, err
		}
		record, raw := r.parse(element.Key, element.Value)
		results = append(results, Result{
			Key:    element.Key,
			Record: record,
			Raw:    raw,
		})
	}

	r.log.Debugf("query: %s  %v  results: %d", selector.Index, selector.Fields, len(results))
	return results, nil
}
