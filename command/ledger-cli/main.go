// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "connect to a ledgerd and operate on the token ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*ledgerd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " caller identity `KEY` (base58) for update operations",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "display the token name, symbol, fee and supply",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "metadata",
			Usage:     "display the fixed token metadata listing",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runMetadata,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account to query `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens from the caller's account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*destination `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to transfer `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: "",
					Usage: " fee to pay, must match the token fee `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "subaccount, s",
					Value: "",
					Usage: " source subaccount `HEX`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " short memo `STRING`",
				},
				cli.Uint64Flag{
					Name:  "created-at",
					Value: 0,
					Usage: " client timestamp in nanoseconds for deduplication `NS`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "transfer-from",
			Usage:     "transfer tokens from another account against an allowance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from",
					Value: "",
					Usage: "*source `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*destination `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to transfer `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: "",
					Usage: " fee to pay, must match the token fee `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "subaccount, s",
					Value: "",
					Usage: " spender subaccount `HEX`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " short memo `STRING`",
				},
				cli.Uint64Flag{
					Name:  "created-at",
					Value: 0,
					Usage: " client timestamp in nanoseconds for deduplication `NS`",
				},
			},
			Action: runTransferFrom,
		},
		{
			Name:      "approve",
			Usage:     "set the allowance for a spender",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*new allowance `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "expected",
					Value: "",
					Usage: " only apply if the current allowance is `AMOUNT`",
				},
				cli.Uint64Flag{
					Name:  "expires-at",
					Value: 0,
					Usage: " allowance expiry in nanoseconds `NS`",
				},
				cli.StringFlag{
					Name:  "fee, f",
					Value: "",
					Usage: " fee to pay, must match the token fee `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "subaccount",
					Value: "",
					Usage: " owner subaccount `HEX`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " short memo `STRING`",
				},
				cli.Uint64Flag{
					Name:  "created-at",
					Value: 0,
					Usage: " client timestamp in nanoseconds for deduplication `NS`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "allowance",
			Usage:     "display the allowance for an owner and spender pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "spender, s",
					Value: "",
					Usage: "*spender `ACCOUNT`",
				},
			},
			Action: runAllowance,
		},
		{
			Name:      "mint",
			Usage:     "create tokens, caller must own the minting account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*destination `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to mint `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " short memo `STRING`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "burn",
			Usage:     "destroy tokens from the caller's own account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from",
					Value: "",
					Usage: "*source `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*amount to burn `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " short memo `STRING`",
				},
			},
			Action: runBurn,
		},
		{
			Name:      "set-minter",
			Usage:     "replace the minting account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*new minting `ACCOUNT`",
				},
			},
			Action: runSetMinter,
		},
		{
			Name:      "blocks",
			Usage:     "export a range of transaction log entries",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first log index `N`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 10,
					Usage: " number of entries `N`",
				},
			},
			Action: runBlocks,
		},
	}

	app.Before = func(c *cli.Context) error {
		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("missing connect")
		}
		c.App.Metadata["config"] = &metadata{
			connect:  connect,
			identity: c.GlobalString("identity"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
