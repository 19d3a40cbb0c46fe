// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allowance

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
	rateLimitAllowance = 200
	rateBurstAllowance = 100
)

// Allowance - an RPC entry for delegated spending rights
type Allowance struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the allowance service
func New(log *logger.L, l *ledger.Ledger) *Allowance {
	return &Allowance{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAllowance, rateBurstAllowance),
		Ledger:  l,
	}
}

// ApproveArguments - arguments to set an allowance
//
// the new allowance replaces any previous one; an expected allowance
// makes the replacement conditional on the current value
type ApproveArguments struct {
	Caller            *account.Identity `json:"caller"` // base58
	FromSubaccount    []byte            `json:"fromSubaccount,omitempty"`
	Spender           *account.Account  `json:"spender"`
	Amount            *amount.Amount    `json:"amount"`
	ExpectedAllowance *amount.Amount    `json:"expectedAllowance,omitempty"`
	ExpiresAt         uint64            `json:"expiresAt,omitempty"`
	Fee               *amount.Amount    `json:"fee,omitempty"`
	Memo              []byte            `json:"memo,omitempty"`
	CreatedAt         uint64            `json:"createdAt,omitempty"`
}

// ApproveReply - the log index of the applied approval
type ApproveReply struct {
	Index uint64 `json:"index"`
}

// Approve - set the allowance for one spender
func (allowance *Allowance) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := ratelimit.Limit(allowance.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.MissingParameters
	}

	allowance.Log.Infof("Allowance.Approve: %+v", arguments)

	index, err := allowance.Ledger.Approve(arguments.Caller, ledger.ApproveArgs{
		FromSubaccount:    arguments.FromSubaccount,
		Spender:           arguments.Spender,
		Amount:            arguments.Amount,
		ExpectedAllowance: arguments.ExpectedAllowance,
		ExpiresAt:         arguments.ExpiresAt,
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

// GetArguments - the owner and spender pair to query
type GetArguments struct {
	Owner   *account.Account `json:"owner"`
	Spender *account.Account `json:"spender"`
}

// GetReply - the current allowance, zero if none exists
type GetReply struct {
	Allowance *amount.Amount `json:"allowance"`
	ExpiresAt uint64         `json:"expiresAt,omitempty"`
}

// Get - query the allowance for one owner and spender pair
func (allowance *Allowance) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(allowance.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.Spender {
		return fault.MissingParameters
	}

	current := allowance.Ledger.AllowanceOf(arguments.Owner, arguments.Spender)
	reply.Allowance = current.Amount
	reply.ExpiresAt = current.ExpiresAt
	return nil
}
