// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// ApproveArgs - parameters of an approval
//
// the owning account is the caller identity plus the optional
// subaccount; a non-nil ExpectedAllowance is a compare-and-swap
// guard against a lost update between the caller's read and this
// call; zero ExpiresAt means the allowance never expires
type ApproveArgs struct {
	FromSubaccount    []byte           `json:"fromSubaccount,omitempty"`
	Spender           *account.Account `json:"spender"`
	Amount            *amount.Amount   `json:"amount"`
	ExpectedAllowance *amount.Amount   `json:"expectedAllowance,omitempty"`
	ExpiresAt         uint64           `json:"expiresAt,string,omitempty"`
	Fee               *amount.Amount   `json:"fee,omitempty"`
	Memo              []byte           `json:"memo,omitempty"`
	CreatedAt         uint64           `json:"createdAt,string,omitempty"`
}

// Approve - set the allowance granted to a spender
//
// the approved amount replaces any previous allowance, it does not
// accumulate; the fee is debited from the owner and burned; the
// approved amount itself does not need to be backed by funds
func (l *Ledger) Approve(caller *account.Identity, args ApproveArgs) (uint64, error) {
	if nil == caller || nil == args.Spender || nil == args.Amount {
		return 0, fault.MissingParameters
	}
	if len(args.Memo) > transactionrecord.MaximumMemoLength {
		return 0, fault.MemoTooLong
	}
	from, err := account.NewAccount(caller, args.FromSubaccount)
	if nil != err {
		return 0, err
	}

	l.Lock()
	defer l.Unlock()

	now := l.now()

	err = checkFreshness(args.CreatedAt, now)
	if nil != err {
		return 0, err
	}

	fee, err := l.checkFee(args.Fee)
	if nil != err {
		return 0, err
	}

	// only the fee needs to be covered
	balance := l.balance(from)
	if balance.Cmp(fee) < 0 {
		return 0, InsufficientFundsError{Balance: balance}
	}

	if nil != args.ExpectedAllowance {
		current := l.allowance(from, args.Spender).Amount
		if !current.Equal(args.ExpectedAllowance) {
			return 0, AllowanceChangedError{CurrentAllowance: current}
		}
	}

	if 0 != args.ExpiresAt && args.ExpiresAt < now {
		return 0, ExpiredError{LedgerTime: now}
	}

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	l.debit(trx, from, fee)
	l.setAllowance(trx, from, args.Spender, Allowance{
		Amount:    args.Amount.Copy(),
		ExpiresAt: args.ExpiresAt,
	})

	index := l.appendRecord(trx, &transactionrecord.ApproveData{
		From:              from,
		Spender:           args.Spender,
		Amount:            args.Amount.Copy(),
		ExpectedAllowance: args.ExpectedAllowance,
		ExpiresAt:         args.ExpiresAt,
		Fee:               fee,
		Memo:              args.Memo,
		Timestamp:         now,
	})
	l.commit(trx)
	return index, nil
}
