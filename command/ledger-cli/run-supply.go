// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/command/ledger-cli/rpccalls"
	"github.com/bitmark-inc/ledgerd/rpc/supply"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m)
	if nil != err {
		return err
	}
	to, err := checkAccount("to", c.String("to"))
	if nil != err {
		return err
	}
	mintAmount, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %s\n", mintAmount)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(&supply.MintArguments{
		Caller: caller,
		To:     to,
		Amount: mintAmount,
		Memo:   []byte(c.String("memo")),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runBurn(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m)
	if nil != err {
		return err
	}
	from, err := checkAccount("from", c.String("from"))
	if nil != err {
		return err
	}
	burnAmount, err := checkAmount("amount", c.String("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "amount: %s\n", burnAmount)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(&supply.BurnArguments{
		Caller: caller,
		From:   from,
		Amount: burnAmount,
		Memo:   []byte(c.String("memo")),
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}

func runSetMinter(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkIdentity(m)
	if nil != err {
		return err
	}
	acc, err := checkAccount("minting", c.String("account"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "minting account: %s\n", acc)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.UpdateMintingAccount(&supply.UpdateMintingAccountArguments{
		Caller:  caller,
		Account: acc,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
