// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/ledgerd/rpc/allowance"
)

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m)
	if nil != err {
		return err
	}
	spender, err := checkAccount("spender", c.String("spender"))
	if nil != err {
		return err
	}
	approveAmount, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}
	expected, err := checkOptionalAmount("expected", c.String("expected"))
	if nil != err {
		return err
	}
	fee, err := checkOptionalAmount("fee", c.String("fee"))
	if nil != err {
		return err
	}
	subaccount, err := checkSubaccount(c.String("subaccount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "spender: %s\n", spender)
		fmt.Fprintf(m.e, "amount: %s\n", approveAmount)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(&allowance.ApproveArguments{
		Caller:            caller,
		FromSubaccount:    subaccount,
		Spender:           spender,
		Amount:            approveAmount,
		ExpectedAllowance: expected,
		ExpiresAt:         c.Uint64("expires-at"),
		Fee:               fee,
		Memo:              []byte(c.String("memo")),
		CreatedAt:         c.Uint64("created-at"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
