// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/rpc/token"
)

// GetInfo - retrieve the static token fields and the supply
func (c *Client) GetInfo() (*token.InfoReply, error) {

	reply := &token.InfoReply{}
	err := c.client.Call("Token.Info", token.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Info Reply", reply)

	return reply, nil
}

// GetMetadata - retrieve the fixed metadata listing
func (c *Client) GetMetadata() (*token.MetadataReply, error) {

	reply := &token.MetadataReply{}
	err := c.client.Call("Token.Metadata", token.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Metadata Reply", reply)

	return reply, nil
}

// GetBalance - retrieve the balance of one account
func (c *Client) GetBalance(acc *account.Account) (*token.BalanceReply, error) {

	balanceArgs := token.BalanceArguments{
		Account: acc,
	}

	c.printJson("Balance Request", balanceArgs)

	reply := &token.BalanceReply{}
	err := c.client.Call("Token.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Balance Reply", reply)

	return reply, nil
}
