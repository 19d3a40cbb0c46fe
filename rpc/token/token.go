// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

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
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - an RPC entry for the static token queries
type Token struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the token query service
func New(log *logger.L, l *ledger.Ledger) *Token {
	return &Token{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
		Ledger:  l,
	}
}

// InfoArguments - empty arguments for the info queries
type InfoArguments struct{}

// InfoReply - the static and supply fields in one reply
type InfoReply struct {
	Name           string           `json:"name"`
	Symbol         string           `json:"symbol"`
	Decimals       uint64           `json:"decimals"`
	Fee            *amount.Amount   `json:"fee"`
	TotalSupply    *amount.Amount   `json:"totalSupply"`
	MintingAccount *account.Account `json:"mintingAccount,omitempty"`
}

// Info - all static token fields and the live supply
func (token *Token) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	reply.Name = token.Ledger.Name()
	reply.Symbol = token.Ledger.Symbol()
	reply.Decimals = uint64(token.Ledger.Decimals())
	reply.Fee = token.Ledger.Fee()
	reply.TotalSupply = token.Ledger.TotalSupply()
	reply.MintingAccount = token.Ledger.MintingAccount()
	return nil
}

// MetadataReply - results from the metadata listing
type MetadataReply struct {
	Metadata []ledger.MetadataItem `json:"metadata"`
}

// Metadata - the fixed key/value metadata listing
func (token *Token) Metadata(arguments *InfoArguments, reply *MetadataReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	reply.Metadata = token.Ledger.Metadata()
	return nil
}

// BalanceArguments - the account to query
type BalanceArguments struct {
	Account *account.Account `json:"account"`
}

// BalanceReply - the current balance, zero for unknown accounts
type BalanceReply struct {
	Balance *amount.Amount `json:"balance"`
}

// Balance - query the balance of one account
func (token *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Account {
		return fault.MissingParameters
	}

	token.Log.Infof("Token.Balance: %s", arguments.Account)

	reply.Balance = token.Ledger.BalanceOf(arguments.Account)
	return nil
}
