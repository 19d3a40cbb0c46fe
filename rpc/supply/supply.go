// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package supply

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/rpc/ratelimit"
)

const (
	rateLimitSupply = 200
	rateBurstSupply = 100
)

// Supply - an RPC entry for the privileged supply operations
type Supply struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the supply service
func New(log *logger.L, l *ledger.Ledger) *Supply {
	return &Supply{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSupply, rateBurstSupply),
		Ledger:  l,
	}
}

// MintArguments - arguments to create new tokens
type MintArguments struct {
	Caller *account.Identity `json:"caller"` // base58
	To     *account.Account  `json:"to"`
	Amount *amount.Amount    `json:"amount"`
	Memo   []byte            `json:"memo,omitempty"`
}

// IndexReply - the log index of the applied operation
type IndexReply struct {
	Index uint64 `json:"index"`
}

// Mint - create tokens into an account
//
// only the current minting account owner may call this
func (supply *Supply) Mint(arguments *MintArguments, reply *IndexReply) error {

	if err := ratelimit.Limit(supply.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	supply.Log.Infof("Supply.Mint: %+v", arguments)

	index, err := supply.Ledger.Mint(arguments.Caller, arguments.To, arguments.Amount, arguments.Memo)
	if nil != err {
		return err
	}

	reply.Index = index
	return nil
}

// BurnArguments - arguments to destroy tokens
type BurnArguments struct {
	Caller *account.Identity `json:"caller"` // base58
	From   *account.Account  `json:"from"`
	Amount *amount.Amount    `json:"amount"`
	Memo   []byte            `json:"memo,omitempty"`
}

// Burn - destroy tokens from the caller's own account
func (supply *Supply) Burn(arguments *BurnArguments, reply *IndexReply) error {

	if err := ratelimit.Limit(supply.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	supply.Log.Infof("Supply.Burn: %+v", arguments)

	index, err := supply.Ledger.Burn(arguments.Caller, arguments.From, arguments.Amount, arguments.Memo)
	if nil != err {
		return err
	}

	reply.Index = index
	return nil
}

// UpdateMintingAccountArguments - arguments to replace the minting authority
type UpdateMintingAccountArguments struct {
	Caller  *account.Identity `json:"caller"` // base58
	Account *account.Account  `json:"account"`
}

// UpdateMintingAccountReply - confirmation of the new authority
type UpdateMintingAccountReply struct {
	MintingAccount *account.Account `json:"mintingAccount"`
}

// UpdateMintingAccount - replace the minting authority
//
// the first call on a fresh ledger sets the account unconditionally,
// afterwards only the current authority may hand over
func (supply *Supply) UpdateMintingAccount(arguments *UpdateMintingAccountArguments, reply *UpdateMintingAccountReply) error {

	if err := ratelimit.Limit(supply.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	supply.Log.Infof("Supply.UpdateMintingAccount: %+v", arguments)

	err := supply.Ledger.UpdateMintingAccount(arguments.Caller, arguments.Account)
	if nil != err {
		return err
	}

	reply.MintingAccount = supply.Ledger.MintingAccount()
	return nil
}
