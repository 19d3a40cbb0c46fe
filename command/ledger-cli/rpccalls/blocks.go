// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/blockdump"
	"github.com/bitmark-inc/ledgerd/rpc/blocks"
)

// GetBlocks - export a range of transaction log entries
func (c *Client) GetBlocks(start uint64, count int) (*blockdump.BlocksResult, error) {

	getArgs := blocks.GetArguments{
		Start: start,
		Count: count,
	}

	c.printJson("Blocks Request", getArgs)

	reply := &blockdump.BlocksResult{}
	err := c.client.Call("Block.Get", getArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Blocks Reply", reply)

	return reply, nil
}
