// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/ledgerd/rpc/supply"
)

// Mint - create tokens into an account
func (c *Client) Mint(mintArgs *supply.MintArguments) (*supply.IndexReply, error) {

	c.printJson("Mint Request", mintArgs)

	reply := &supply.IndexReply{}
	err := c.client.Call("Supply.Mint", mintArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Mint Reply", reply)

	return reply, nil
}

// Burn - destroy tokens from the caller's own account
func (c *Client) Burn(burnArgs *supply.BurnArguments) (*supply.IndexReply, error) {

	c.printJson("Burn Request", burnArgs)

	reply := &supply.IndexReply{}
	err := c.client.Call("Supply.Burn", burnArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("Burn Reply", reply)

	return reply, nil
}

// UpdateMintingAccount - replace the minting authority
func (c *Client) UpdateMintingAccount(updateArgs *supply.UpdateMintingAccountArguments) (*supply.UpdateMintingAccountReply, error) {

	c.printJson("UpdateMintingAccount Request", updateArgs)

	reply := &supply.UpdateMintingAccountReply{}
	err := c.client.Call("Supply.UpdateMintingAccount", updateArgs, reply)
	if nil != err {
		return nil, err
	}

	c.printJson("UpdateMintingAccount Reply", reply)

	return reply, nil
}
