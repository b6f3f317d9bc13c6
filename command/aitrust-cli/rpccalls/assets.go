// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/aitrustd/assetrecord"
	"github.com/bitmark-inc/aitrustd/registry"
	"github.com/bitmark-inc/aitrustd/rpc/assets"
)

// Exists - check whether an asset is present
func (client *Client) Exists(assetUUID string) (bool, error) {
	args := assets.IdentifierArguments{
		Organisation: client.organisation,
		AssetUUID:    assetUUID,
	}

	client.printJson("Exists Request", args)

	var reply assets.ExistsReply
	if err := client.client.Call("Assets.Exists", args, &reply); nil != err {
		return false, err
	}

	client.printJson("Exists Reply", reply)

	return reply.Exists, nil
}

// Create - register a new asset
func (client *Client) Create(request *assetrecord.CreateRequest) (*assets.ReceiptReply, error) {
	args := assets.CreateArguments{
		Organisation: client.organisation,
		Asset:        request,
	}

	client.printJson("Create Request", args)

	var reply assets.ReceiptReply
	if err := client.client.Call("Assets.Create", args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Create Reply", reply)

	return &reply, nil
}

// Read - fetch the current version of an asset
func (client *Client) Read(assetUUID string) (*assetrecord.Record, error) {
	args := assets.IdentifierArguments{
		Organisation: client.organisation,
		AssetUUID:    assetUUID,
	}

	client.printJson("Read Request", args)

	var reply assets.RecordReply
	if err := client.client.Call("Assets.Read", args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Read Reply", reply)

	return reply.Record, nil
}

// Update - replace the supplied fields of an asset
func (client *Client) Update(changes *assetrecord.UpdateRequest) (*assets.ReceiptReply, error) {
	args := assets.UpdateArguments{
		Organisation: client.organisation,
		Changes:      changes,
	}

	client.printJson("Update Request", args)

	var reply assets.ReceiptReply
	if err := client.client.Call("Assets.Update", args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Update Reply", reply)

	return &reply, nil
}

// Delete - remove an asset
func (client *Client) Delete(assetUUID string) (*assets.ReceiptReply, error) {
	args := assets.IdentifierArguments{
		Organisation: client.organisation,
		AssetUUID:    assetUUID,
	}

	client.printJson("Delete Request", args)

	var reply assets.ReceiptReply
	if err := client.client.Call("Assets.Delete", args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Delete Reply", reply)

	return &reply, nil
}

// Query - current assets of a type, optionally of one owner
func (client *Client) Query(assetType assetrecord.AssetType, owner string) ([]registry.Result, error) {
	args := assets.QueryArguments{
		Organisation: client.organisation,
		AssetType:    assetType,
		AssetOwner:   owner,
	}

	client.printJson("Query Request", args)

	var reply assets.QueryReply
	if err := client.client.Call("Assets.Query", args, &reply); nil != err {
		return nil, err
	}

	client.printJson("Query Reply", reply)

	return reply.Results, nil
}

// History - every version of an asset
func (client *Client) History(assetUUID string) ([]registry.HistoryEntry, error) {
	args := assets.IdentifierArguments{
		Organisation: client.organisation,
		AssetUUID:    assetUUID,
	}

	client.printJson("History Request", args)

	var reply assets.HistoryReply
	if err := client.client.Call("Assets.History", args, &reply); nil != err {
		return nil, err
	}

	client.printJson("History Reply", reply)

	return reply.History, nil
}
