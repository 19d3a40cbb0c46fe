// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// the caller identity is required for all update operations
func checkIdentity(m *metadata) (*account.Identity, error) {
	if "" == m.identity {
		return nil, fmt.Errorf("missing identity")
	}
	return account.IdentityFromBase58(m.identity)
}

// parse an account of the form: OWNER or OWNER.SUBACCOUNT
func checkAccount(name string, s string) (*account.Account, error) {
	if "" == s {
		return nil, fmt.Errorf("missing %s account", name)
	}
	acc := &account.Account{}
	if err := acc.UnmarshalText([]byte(s)); nil != err {
		return nil, fmt.Errorf("invalid %s account: %q  error: %s", name, s, err)
	}
	return acc, nil
}

// parse a required decimal amount
func checkAmount(name string, s string) (*amount.Amount, error) {
	if "" == s {
		return nil, fmt.Errorf("missing %s", name)
	}
	a, err := amount.FromString(s)
	if nil != err {
		return nil, fmt.Errorf("invalid %s: %q  error: %s", name, s, err)
	}
	return a, nil
}

// parse an optional decimal amount, nil when absent
func checkOptionalAmount(name string, s string) (*amount.Amount, error) {
	if "" == s {
		return nil, nil
	}
	return checkAmount(name, s)
}

// parse an optional hex subaccount, nil when absent
func checkSubaccount(s string) ([]byte, error) {
	if "" == s {
		return nil, nil
	}
	subaccount, err := hex.DecodeString(s)
	if nil != err {
		return nil, fmt.Errorf("invalid subaccount: %q  error: %s", s, err)
	}
	return subaccount, nil
}
