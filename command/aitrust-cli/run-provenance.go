// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/aitrustd/command/aitrust-cli/rpccalls"
)

func runProvenance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetUUID, err := checkAssetUUID(c.String("uuid"))
	if nil != err {
		return err
	}

	depth, err := checkDepth(c.Int("depth"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "provenance of: %s  depth: %d\n", assetUUID, depth)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	entries, err := rpccalls.Provenance(client, assetUUID, depth)
	if nil != err {
		return err
	}

	printJson(m.w, entries)
	return nil
}
