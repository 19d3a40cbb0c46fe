// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/rpc/allowance"
)

// Approve - set the allowance for one spender
func (c *Client) Approve(approveArgs *allowance.ApproveArguments) (*allowance.ApproveReply, error) {

	c.printJson("Approve Request", approveArgs)

	reply := &allowance.ApproveReply{}
	err := c.client.Call("Allowance.Approve", approveArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Approve Reply", reply)

	return reply, nil
}

// GetAllowance - retrieve the allowance for one owner and spender pair
func (c *Client) GetAllowance(owner *account.Account, spender *account.Account) (*allowance.GetReply, error) {

	getArgs := allowance.GetArguments{
		Owner:   owner,
		Spender: spender,
	}

	c.printJson("Allowance Request", getArgs)

	reply := &allowance.GetReply{}
	err := c.client.Call("Allowance.Get", getArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Allowance Reply", reply)

	return reply, nil
}
