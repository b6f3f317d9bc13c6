// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/aitrustd/rpc/node"
)

// GetInfo - status of the connected aitrustd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := client.client.Call("Node.Info", node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}
