// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/aitrustd/command/aitrust-cli/rpccalls"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.organisation, m.verbose, m.e)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	request, err := buildCreateRequest(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(request)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetUUID, err := checkAssetUUID(c.String("uuid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Read(assetUUID)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runExists(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetUUID, err := checkAssetUUID(c.String("uuid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	exists, err := client.Exists(assetUUID)
	if nil != err {
		return err
	}

	out := struct {
		AssetUUID string `json:"assetUUID"`
		Exists    bool   `json:"exists"`
	}{
		AssetUUID: assetUUID,
		Exists:    exists,
	}
	printJson(m.w, out)
	return nil
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	request, err := buildUpdateRequest(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Update(request)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetUUID, err := checkAssetUUID(c.String("uuid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Delete(assetUUID)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetType, err := checkAssetType(c.String("type"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Query(assetType, c.String("owner"))
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetUUID, err := checkAssetUUID(c.String("uuid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.History(assetUUID)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
