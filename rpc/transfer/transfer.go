// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transfer

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
	rateLimitTransfer = 200
	rateBurstTransfer = 100
)

// Transfer - an RPC entry for the update operations moving value
type Transfer struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the transfer service
func New(log *logger.L, l *ledger.Ledger) *Transfer {
	return &Transfer{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransfer, rateBurstTransfer),
		Ledger:  l,
	}
}

// SendArguments - arguments for a direct transfer
//
// the caller identity is the authenticated sender, the source is
// always one of the caller's own subaccounts
type SendArguments struct {
	Caller         *account.Identity `json:"caller"` // base58
	FromSubaccount []byte            `json:"fromSubaccount,omitempty"`
	To             *account.Account  `json:"to"`
	Amount         *amount.Amount    `json:"amount"`
	Fee            *amount.Amount    `json:"fee,omitempty"`
	Memo           []byte            `json:"memo,omitempty"`
	CreatedAt      uint64            `json:"createdAt,omitempty"`
}

// SendReply - the log index of the applied transfer
type SendReply struct {
	Index uint64 `json:"index"`
}

// Send - transfer from the caller's account
func (transfer *Transfer) Send(arguments *SendArguments, reply *SendReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	transfer.Log.Infof("Transfer.Send: %+v", arguments)

	index, err := transfer.Ledger.Transfer(arguments.Caller, ledger.TransferArgs{
		FromSubaccount: arguments.FromSubaccount,
		To:             arguments.To,
		Amount:         arguments.Amount,
		Fee:            arguments.Fee,
		Memo:           arguments.Memo,
		CreatedAt:      arguments.CreatedAt,
	})
	if nil != err {
		return err
	}

	reply.Index = index
	return nil
}

// SendFromArguments - arguments for a spender initiated transfer
type SendFromArguments struct {
	Caller            *account.Identity `json:"caller"` // base58
	SpenderSubaccount []byte            `json:"spenderSubaccount,omitempty"`
	From              *account.Account  `json:"from"`
	To                *account.Account  `json:"to"`
	Amount            *amount.Amount    `json:"amount"`
	Fee               *amount.Amount    `json:"fee,omitempty"`
	Memo              []byte            `json:"memo,omitempty"`
	CreatedAt         uint64            `json:"createdAt,omitempty"`
}

// SendFrom - transfer from another account against an allowance
func (transfer *Transfer) SendFrom(arguments *SendFromArguments, reply *SendReply) error {

	if err := ratelimit.Limit(transfer.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	transfer.Log.Infof("Transfer.SendFrom: %+v", arguments)

	index, err := transfer.Ledger.TransferFrom(arguments.Caller, ledger.TransferFromArgs{
		SpenderSubaccount: arguments.SpenderSubaccount,
		From:              arguments.From,
		To:                arguments.To,
		Amount:            arguments.Amount,
		Fee:               arguments.Fee,
		Memo:              arguments.Memo,
		CreatedAt:         arguments.CreatedAt,
	})
	if nil != err {
		return err
	}

	reply.Index = index
	return nil
}
