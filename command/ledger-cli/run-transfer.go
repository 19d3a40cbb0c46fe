// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/ledgerd/rpc/transfer"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m)
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	transferAmount, err := checkAmount("amount", c.String("amount"))
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
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %s\n", transferAmount)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Send(&transfer.SendArguments{
		Caller:         caller,
		FromSubaccount: subaccount,
		To:             to,
		Amount:         transferAmount,
		Fee:            fee,
		Memo:           []byte(c.String("memo")),
		CreatedAt:      c.Uint64("created-at"),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runTransferFrom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m)
	if nil != err {
		return err
	}
	from, err := checkAccount("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	transferAmount, err := checkAmount("amount", c.String("amount"))
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
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %s\n", transferAmount)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SendFrom(&transfer.SendFromArguments{
		Caller:            caller,
		SpenderSubaccount: subaccount,
		From:              from,
		To:                to,
		Amount:            transferAmount,
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
