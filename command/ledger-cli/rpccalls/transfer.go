// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/rpc/transfer"
)

// Send - transfer from the caller's account
func (c *Client) Send(sendArgs *transfer.SendArguments) (*transfer.SendReply, error) {

	c.printJson("Send Request", sendArgs)

	reply := &transfer.SendReply{}
	err := c.client.Call("Transfer.Send", sendArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Send Reply", reply)

	return reply, nil
}

// SendFrom - transfer from another account against an allowance
func (c *Client) SendFrom(sendFromArgs *transfer.SendFromArguments) (*transfer.SendReply, error) {

	c.printJson("SendFrom Request", sendFromArgs)

	reply := &transfer.SendReply{}
	err := c.client.Call("Transfer.SendFrom", sendFromArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("SendFrom Reply", reply)

	return reply, nil
}
