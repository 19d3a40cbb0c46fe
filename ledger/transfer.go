// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/amount"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// TransferArgs - parameters of a direct transfer
//
// the sending account is the caller identity plus the optional
// subaccount; zero CreatedAt means the caller supplied no creation
// timestamp
type TransferArgs struct {
	FromSubaccount []byte           `json:"fromSubaccount,omitempty"`
	To             *account.Account `json:"to"`
	Amount         *amount.Amount   `json:"amount"`
	Fee            *amount.Amount   `json:"fee,omitempty"`
	Memo           []byte           `json:"memo,omitempty"`
	CreatedAt      uint64           `json:"createdAt,string,omitempty"`
}

// TransferFromArgs - parameters of a delegated transfer
//
// the spending account is the caller identity plus the optional
// subaccount; funds move from From to To against the (From, spender)
// allowance
type TransferFromArgs struct {
	SpenderSubaccount []byte           `json:"spenderSubaccount,omitempty"`
	From              *account.Account `json:"from"`
	To                *account.Account `json:"to"`
	Amount            *amount.Amount   `json:"amount"`
	Fee               *amount.Amount   `json:"fee,omitempty"`
	Memo              []byte           `json:"memo,omitempty"`
	CreatedAt         uint64           `json:"createdAt,string,omitempty"`
}

// Transfer - move tokens from the caller's account
//
// the fee is debited from the sender along with the amount and is
// burned, not credited anywhere; returns the index of the appended
// log record
func (l *Ledger) Transfer(caller *account.Identity, args TransferArgs) (uint64, error) {
	if nil == caller || nil == args.To || nil == args.Amount {
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

	totalDeduction := args.Amount.Add(fee)
	balance := l.balance(from)
	if balance.Cmp(totalDeduction) < 0 {
		return 0, InsufficientFundsError{Balance: balance}
	}

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	l.debit(trx, from, totalDeduction)
	l.credit(trx, args.To, args.Amount)

	index := l.appendRecord(trx, &transactionrecord.TransferData{
		From:      from,
		To:        args.To,
		Amount:    args.Amount.Copy(),
		Fee:       fee,
		Memo:      args.Memo,
		Timestamp: now,
	})
	l.commit(trx)
	return index, nil
}

// TransferFrom - move tokens from another account under an allowance
//
// amount plus fee is debited from the From account; only the amount
// counts against the allowance, which is decremented and removed if
// it reaches exactly zero
func (l *Ledger) TransferFrom(caller *account.Identity, args TransferFromArgs) (uint64, error) {
	if nil == caller || nil == args.From || nil == args.To || nil == args.Amount {
		return 0, fault.MissingParameters
	}
	if len(args.Memo) > transactionrecord.MaximumMemoLength {
		return 0, fault.MemoTooLong
	}
	spender, err := account.NewAccount(caller, args.SpenderSubaccount)
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

	totalDeduction := args.Amount.Add(fee)
	balance := l.balance(args.From)
	if balance.Cmp(totalDeduction) < 0 {
		return 0, InsufficientFundsError{Balance: balance}
	}

	allowance := l.allowance(args.From, spender)
	if 0 != allowance.ExpiresAt && allowance.ExpiresAt < now {
		return 0, InsufficientAllowanceError{Allowance: amount.Zero()}
	}
	if allowance.Amount.Cmp(args.Amount) < 0 {
		return 0, InsufficientAllowanceError{Allowance: allowance.Amount}
	}

	trx, err := l.store.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	l.debit(trx, args.From, totalDeduction)
	l.credit(trx, args.To, args.Amount)

	remainder, err := allowance.Amount.Sub(args.Amount)
	logger.PanicIfError("ledger.TransferFrom", err)
	l.setAllowance(trx, args.From, spender, Allowance{
		Amount:    remainder,
		ExpiresAt: allowance.ExpiresAt,
	})

	index := l.appendRecord(trx, &transactionrecord.TransferData{
		From:      args.From,
		To:        args.To,
		Spender:   spender,
		Amount:    args.Amount.Copy(),
		Fee:       fee,
		Memo:      args.Memo,
		Timestamp: now,
	})
	l.commit(trx)
	return index, nil
}

// freshness of a caller supplied creation timestamp
//
// created in future takes precedence over too old and is checked
// against the current ledger time
func checkFreshness(createdAt uint64, now uint64) error {
	if 0 == createdAt {
		return nil
	}
	if createdAt > now {
		return CreatedInFutureError{LedgerTime: now}
	}
	if now > createdAt+TxWindow {
		return fault.TransactionTooOld
	}
	return nil
}

// resolve the effective fee, the caller must hold the write lock
//
// a caller supplied fee must match the configured fee exactly
func (l *Ledger) checkFee(fee *amount.Amount) (*amount.Amount, error) {
	if nil == fee {
		return l.token.Fee.Copy(), nil
	}
	if !fee.Equal(l.token.Fee) {
		return nil, BadFeeError{ExpectedFee: l.token.Fee.Copy()}
	}
	return fee.Copy(), nil
}

// a commit failure means the substrate is broken, treat as fatal
func (l *Ledger) commit(trx storage.Transaction) {
	err := trx.Commit()
	logger.PanicIfError("ledger.commit", err)
}
